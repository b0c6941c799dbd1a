package fsutil

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
)

// CopyFile copies src to dst byte for byte, replacing dst if it exists.
// Permission bits and modification time are carried over.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return goerr.Wrap(err, "failed to open source file", goerr.V("src", src))
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return goerr.Wrap(err, "failed to stat source file", goerr.V("src", src))
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm()|0600)
	if err != nil {
		return goerr.Wrap(err, "failed to create destination file", goerr.V("dst", dst))
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return goerr.Wrap(err, "failed to copy file content", goerr.V("src", src), goerr.V("dst", dst))
	}
	if err := out.Close(); err != nil {
		return goerr.Wrap(err, "failed to close destination file", goerr.V("dst", dst))
	}

	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return goerr.Wrap(err, "failed to set modification time", goerr.V("dst", dst))
	}

	return nil
}

// RegularFiles returns every regular file under root in lexical walk order
func RegularFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to walk directory", goerr.V("root", root))
	}
	return files, nil
}
