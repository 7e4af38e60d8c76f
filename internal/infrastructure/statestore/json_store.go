// Package statestore persists the last applied theme bundle as JSON.
package statestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/logging"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// JSONStore implements port.ThemeStateStore on a single JSON file.
type JSONStore struct {
	path string
}

// NewJSONStore creates a store backed by path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the backing file.
func (s *JSONStore) Path() string {
	return s.path
}

// Save writes the record atomically through a temp file in the same directory.
func (s *JSONStore) Save(ctx context.Context, state entity.ThemeState) error {
	data, err := json.MarshalIndent(entity.CachedFromState(state), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal theme state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write state: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close state: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("path", s.path).Msg("theme state saved")
	return nil
}

// Load reads the record. Missing or malformed files yield (nil, false).
func (s *JSONStore) Load(ctx context.Context) (*entity.CachedThemeState, bool) {
	log := logging.FromContext(ctx)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Debug().Err(err).Str("path", s.path).Msg("cannot read cached theme state")
		}
		return nil, false
	}

	var cached entity.CachedThemeState
	if err := json.Unmarshal(data, &cached); err != nil {
		log.Debug().Err(err).Str("path", s.path).Msg("ignoring malformed cached theme state")
		return nil, false
	}
	return &cached, true
}

var _ port.ThemeStateStore = (*JSONStore)(nil)
