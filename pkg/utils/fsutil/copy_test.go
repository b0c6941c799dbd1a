package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/kagglefetch/pkg/utils/fsutil"
)

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.csv")
	dst := filepath.Join(dir, "dst.csv")
	gt.NoError(t, os.WriteFile(src, []byte("a,b\n1,2\n"), 0640))

	mtime := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	gt.NoError(t, os.Chtimes(src, mtime, mtime))

	gt.NoError(t, fsutil.CopyFile(src, dst))

	content, err := os.ReadFile(dst)
	gt.NoError(t, err)
	gt.String(t, string(content)).Equal("a,b\n1,2\n")

	info, err := os.Stat(dst)
	gt.NoError(t, err)
	gt.Value(t, info.ModTime().Equal(mtime)).Equal(true)
}

func TestCopyFile_Overwrite(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	gt.NoError(t, os.WriteFile(src, []byte("short"), 0644))
	gt.NoError(t, os.WriteFile(dst, []byte("much longer previous content"), 0644))

	gt.NoError(t, fsutil.CopyFile(src, dst))
	gt.NoError(t, fsutil.CopyFile(src, dst))

	content, err := os.ReadFile(dst)
	gt.NoError(t, err)
	gt.String(t, string(content)).Equal("short")
}

func TestCopyFile_MissingSource(t *testing.T) {
	dir := t.TempDir()
	err := fsutil.CopyFile(filepath.Join(dir, "nope"), filepath.Join(dir, "dst"))
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("failed to open source file")
}

func TestRegularFiles(t *testing.T) {
	dir := t.TempDir()
	gt.NoError(t, os.MkdirAll(filepath.Join(dir, "a", "b"), 0755))
	gt.NoError(t, os.WriteFile(filepath.Join(dir, "top.txt"), []byte("1"), 0644))
	gt.NoError(t, os.WriteFile(filepath.Join(dir, "a", "mid.txt"), []byte("2"), 0644))
	gt.NoError(t, os.WriteFile(filepath.Join(dir, "a", "b", "leaf.txt"), []byte("3"), 0644))

	files, err := fsutil.RegularFiles(dir)
	gt.NoError(t, err)
	gt.Value(t, files).Equal([]string{
		filepath.Join(dir, "a", "b", "leaf.txt"),
		filepath.Join(dir, "a", "mid.txt"),
		filepath.Join(dir, "top.txt"),
	})
}
