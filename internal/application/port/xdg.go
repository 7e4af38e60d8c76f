package port

// XDGPaths provides XDG Base Directory paths scoped to themesync.
type XDGPaths interface {
	ConfigDir() (string, error)
	CacheDir() (string, error)
	StateDir() (string, error)
	LogDir() (string, error)
}
