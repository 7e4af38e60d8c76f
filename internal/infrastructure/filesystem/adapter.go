// Package filesystem implements port.FileSystem on the OS filesystem.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bnema/themesync/internal/application/port"
)

const dirPerm = 0o755

// Adapter implements port.FileSystem using the OS filesystem.
type Adapter struct{}

// New creates a new filesystem adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (a *Adapter) IsDirectory(_ context.Context, path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

func (a *Adapter) MkdirAll(_ context.Context, path string) error {
	return os.MkdirAll(path, dirPerm)
}

func (a *Adapter) Readlink(_ context.Context, path string) (string, error) {
	return os.Readlink(path)
}

// ReplaceSymlink removes link if anything (including a dangling symlink)
// is there, then links it to target. Directories that are not symlinks are
// refused rather than removed recursively.
func (a *Adapter) ReplaceSymlink(_ context.Context, target, link string) error {
	info, err := os.Lstat(link)
	switch {
	case err == nil:
		if info.IsDir() {
			return fmt.Errorf("%s is a directory, not a link", link)
		}
		if err := os.Remove(link); err != nil {
			return fmt.Errorf("remove %s: %w", link, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	if err := os.MkdirAll(filepath.Dir(link), dirPerm); err != nil {
		return err
	}
	return os.Symlink(target, link)
}

var _ port.FileSystem = (*Adapter)(nil)
