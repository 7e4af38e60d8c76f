package port

import (
	"context"

	"github.com/bnema/themesync/internal/domain/entity"
)

// ThemeStateStore persists the last successfully applied theme bundle.
// The record is diagnostic only and never gates a reconciliation.
type ThemeStateStore interface {
	// Save writes the record for state, creating parent directories.
	Save(ctx context.Context, state entity.ThemeState) error

	// Load returns the cached record. A missing or malformed record yields
	// (nil, false); it is never an error.
	Load(ctx context.Context) (*entity.CachedThemeState, bool)
}
