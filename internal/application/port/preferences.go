package port

import "errors"

// GSettings schemas and keys the daemon reads or writes.
const (
	InterfaceSchema = "org.gnome.desktop.interface"
	ShellSchema     = "org.gnome.shell.extensions.user-theme"

	ColorSchemeKey = "color-scheme"
	AccentColorKey = "accent-color"
	GTKThemeKey    = "gtk-theme"
	IconThemeKey   = "icon-theme"
	ShellThemeKey  = "name"
)

var (
	// ErrSchemaNotFound is returned when a schema is not installed or was
	// not loaded by the store.
	ErrSchemaNotFound = errors.New("settings schema not found")
	// ErrKeyNotFound is returned when a schema does not define a key.
	ErrKeyNotFound = errors.New("settings key not found")
	// ErrWriteRejected is returned when the backend refuses a write
	// (read-only key, lockdown, invalid value).
	ErrWriteRejected = errors.New("settings write rejected")
)

// PreferenceStore is a key/value settings service with change notifications.
// Implementations are GSettings in production and in-memory fakes in tests.
type PreferenceStore interface {
	// HasSchema reports whether schema is available for reads and writes.
	HasSchema(schema string) bool

	// HasKey reports whether schema defines key.
	// Returns false when the schema itself is unavailable.
	HasKey(schema, key string) bool

	// GetString returns the current value of a string key.
	GetString(schema, key string) (string, error)

	// SetString writes a string key.
	SetString(schema, key, value string) error

	// Subscribe registers callback for changes of key.
	// The callback runs on the store's dispatch thread.
	// The returned function removes the subscription.
	Subscribe(schema, key string, callback func()) (unsubscribe func(), err error)
}

// PreferenceFlusher is implemented by stores that buffer writes.
// One-shot commands call Flush before exiting.
type PreferenceFlusher interface {
	Flush()
}
