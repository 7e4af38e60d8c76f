package xdg

import (
	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths using config.GetXDGDirs().
type Adapter struct{}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ConfigDir() (string, error) {
	return config.GetConfigDir()
}

func (a *Adapter) CacheDir() (string, error) {
	return config.GetCacheDir()
}

func (a *Adapter) StateDir() (string, error) {
	return config.GetStateDir()
}

func (a *Adapter) LogDir() (string, error) {
	return config.GetLogDir()
}

var _ port.XDGPaths = (*Adapter)(nil)

// ManDir returns the user man page directory (not part of port.XDGPaths).
func (a *Adapter) ManDir() (string, error) {
	return config.GetManDir()
}
