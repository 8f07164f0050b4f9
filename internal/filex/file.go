package filex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	ErrNotRegular = errors.New("not a regular file")
	ErrEmptyFile  = errors.New("file is empty")
)

// EnsureParentDir creates the directory that will hold path, if any.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// OpenUpload opens path for upload. Directories, devices and empty files are
// refused. The caller closes the returned file.
func OpenUpload(path string) (*os.File, os.FileInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}

	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !fi.Mode().IsRegular() {
		_ = f.Close()
		return nil, nil, fmt.Errorf("%s: %w", path, ErrNotRegular)
	}
	if fi.Size() == 0 {
		_ = f.Close()
		return nil, nil, fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}
	return f, fi, nil
}
