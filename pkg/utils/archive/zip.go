package archive

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Suffix is the file name suffix of archives handled by this package
const Suffix = ".zip"

// Result describes what ExtractZip wrote
type Result struct {
	Files []string // Entry names in archive order
	Size  int64    // Total uncompressed size in bytes
}

// ExtractZip extracts every entry of the zip file at path into destDir,
// keeping the entries' relative paths. Existing files are overwritten.
// Entries that would land outside destDir are rejected.
func ExtractZip(ctx context.Context, path, destDir string) (*Result, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		// zip.ErrInsecurePath comes with a usable reader
		if r != nil {
			_ = r.Close()
		}
		return nil, goerr.Wrap(err, "failed to open zip", goerr.V("path", path))
	}
	defer r.Close()

	result := &Result{}
	for _, file := range r.File {
		if err := ctx.Err(); err != nil {
			return nil, goerr.Wrap(err, "extraction interrupted", goerr.V("path", path))
		}

		if err := extractFile(file, destDir); err != nil {
			return nil, goerr.Wrap(err, "failed to extract file",
				goerr.V("archive", path),
				goerr.V("entry", file.Name),
			)
		}

		result.Files = append(result.Files, file.Name)
		result.Size += int64(file.UncompressedSize64)
	}

	return result, nil
}

// extractFile extracts a single entry into destDir
func extractFile(file *zip.File, destDir string) error {
	root := filepath.Clean(destDir)
	destPath := filepath.Join(root, file.Name)
	if destPath != root && !strings.HasPrefix(destPath, root+string(os.PathSeparator)) {
		return goerr.New("invalid file path detected",
			goerr.V("file", file.Name),
			goerr.V("dest", destPath),
		)
	}

	info := file.FileInfo()
	if info.IsDir() {
		if err := os.MkdirAll(destPath, 0755); err != nil {
			return goerr.Wrap(err, "failed to create directory", goerr.V("path", destPath))
		}
		return nil
	}
	if destPath == root {
		return goerr.New("file entry resolves to destination directory", goerr.V("file", file.Name))
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return goerr.Wrap(err, "failed to create parent directories", goerr.V("path", filepath.Dir(destPath)))
	}

	rc, err := file.Open()
	if err != nil {
		return goerr.Wrap(err, "failed to open file in zip")
	}
	defer rc.Close()

	mode := info.Mode().Perm() | 0600
	destFile, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return goerr.Wrap(err, "failed to create destination file", goerr.V("path", destPath))
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, rc); err != nil {
		return goerr.Wrap(err, "failed to copy file content", goerr.V("path", destPath))
	}

	return destFile.Close()
}
