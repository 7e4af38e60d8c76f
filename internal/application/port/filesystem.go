package port

import "context"

// FileSystem provides file system operations for the application layer.
type FileSystem interface {
	// Exists reports whether path exists, following symlinks.
	Exists(ctx context.Context, path string) (bool, error)
	// IsDirectory reports whether path is an existing directory. A missing
	// path is (false, nil).
	IsDirectory(ctx context.Context, path string) (bool, error)
	// MkdirAll creates path and any missing parents.
	MkdirAll(ctx context.Context, path string) error
	// Readlink returns the target of the symlink at path.
	Readlink(ctx context.Context, path string) (string, error)
	// ReplaceSymlink removes whatever is at link (file, symlink, dangling
	// symlink) and creates a symlink to target in its place.
	ReplaceSymlink(ctx context.Context, target, link string) error
}
