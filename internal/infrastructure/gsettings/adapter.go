// Package gsettings implements port.PreferenceStore on GIO GSettings.
package gsettings

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/diamondburned/gotk4/pkg/gio/v2"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/logging"
)

// Options selects which optional schemas the adapter loads.
type Options struct {
	// ShellEnabled allows loading the user-theme extension schema.
	ShellEnabled bool
	// ExtensionSchemaDir is a compiled schema directory consulted when the
	// default schema source does not provide the user-theme schema.
	ExtensionSchemaDir string
}

type binding struct {
	schema   *gio.SettingsSchema
	settings *gio.Settings
}

// Adapter implements port.PreferenceStore using GSettings.
// A GSettings object is created only after its schema was found: creating
// one for a missing schema, or reading a missing key, aborts the process.
type Adapter struct {
	opts Options

	mu       sync.Mutex
	bindings map[string]*binding
	missing  map[string]bool
}

// New creates a GSettings adapter. Schemas are resolved lazily.
func New(opts Options) *Adapter {
	return &Adapter{
		opts:     opts,
		bindings: make(map[string]*binding),
		missing:  make(map[string]bool),
	}
}

// Load resolves the interface and shell schemas up front and logs what is
// available.
func (a *Adapter) Load(ctx context.Context) {
	log := logging.FromContext(ctx)
	for _, id := range []string{port.InterfaceSchema, port.ShellSchema} {
		if a.HasSchema(id) {
			log.Debug().Str("schema", id).Msg("settings schema loaded")
		} else {
			log.Debug().Str("schema", id).Msg("settings schema unavailable")
		}
	}
}

func (a *Adapter) HasSchema(schema string) bool {
	_, err := a.bind(schema)
	return err == nil
}

func (a *Adapter) HasKey(schema, key string) bool {
	b, err := a.bind(schema)
	if err != nil {
		return false
	}
	return b.schema.HasKey(key)
}

func (a *Adapter) GetString(schema, key string) (string, error) {
	b, err := a.keyBinding(schema, key)
	if err != nil {
		return "", err
	}
	return b.settings.String(key), nil
}

func (a *Adapter) SetString(schema, key, value string) error {
	b, err := a.keyBinding(schema, key)
	if err != nil {
		return err
	}
	if !b.settings.SetString(key, value) {
		return fmt.Errorf("%s %s=%q: %w", schema, key, value, port.ErrWriteRejected)
	}
	return nil
}

func (a *Adapter) Subscribe(schema, key string, callback func()) (func(), error) {
	b, err := a.keyBinding(schema, key)
	if err != nil {
		return nil, err
	}

	handle := b.settings.ConnectChanged(func(changed string) {
		if changed == key {
			callback()
		}
	})
	// GSettings only emits changed for keys that were read at least once.
	_ = b.settings.String(key)

	var once sync.Once
	return func() {
		once.Do(func() { b.settings.HandlerDisconnect(handle) })
	}, nil
}

// Flush blocks until pending writes reach the backend.
func (a *Adapter) Flush() {
	gio.SettingsSync()
}

func (a *Adapter) keyBinding(schema, key string) (*binding, error) {
	b, err := a.bind(schema)
	if err != nil {
		return nil, err
	}
	if !b.schema.HasKey(key) {
		return nil, fmt.Errorf("%s %s: %w", schema, key, port.ErrKeyNotFound)
	}
	return b, nil
}

func (a *Adapter) bind(id string) (*binding, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if b, ok := a.bindings[id]; ok {
		return b, nil
	}
	if a.missing[id] {
		return nil, fmt.Errorf("%s: %w", id, port.ErrSchemaNotFound)
	}

	schema := a.lookup(id)
	if schema == nil {
		a.missing[id] = true
		return nil, fmt.Errorf("%s: %w", id, port.ErrSchemaNotFound)
	}

	b := &binding{
		schema:   schema,
		settings: gio.NewSettingsFull(schema, nil, ""),
	}
	a.bindings[id] = b
	return b, nil
}

func (a *Adapter) lookup(id string) *gio.SettingsSchema {
	if id == port.ShellSchema && !a.opts.ShellEnabled {
		return nil
	}

	source := gio.SettingsSchemaSourceGetDefault()
	if source != nil {
		if schema := source.Lookup(id, true); schema != nil {
			return schema
		}
	}

	if id != port.ShellSchema || a.opts.ExtensionSchemaDir == "" {
		return nil
	}
	if _, err := os.Stat(a.opts.ExtensionSchemaDir); err != nil {
		return nil
	}

	extension, err := gio.NewSettingsSchemaSourceFromDirectory(a.opts.ExtensionSchemaDir, source, false)
	if err != nil || extension == nil {
		return nil
	}
	return extension.Lookup(id, false)
}

var (
	_ port.PreferenceStore   = (*Adapter)(nil)
	_ port.PreferenceFlusher = (*Adapter)(nil)
)
