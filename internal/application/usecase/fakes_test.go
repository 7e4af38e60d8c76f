package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/application/usecase"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

var testPaths = usecase.AssetPaths{
	ThemesDir:     "/home/u/.themes",
	IconsDir:      "/home/u/.local/share/icons",
	GTK4ConfigDir: "/home/u/.config/gtk-4.0",
}

// fakePrefs is an in-memory PreferenceStore. Schemas must be added before
// their keys can be read or written.
type fakePrefs struct {
	mu          sync.Mutex
	values      map[string]map[string]string
	writes      map[string]int
	failSet     map[string]error
	failGet     map[string]error
	panicOnSet  map[string]bool
	subscribers map[string][]*func()
}

func newFakePrefs() *fakePrefs {
	return &fakePrefs{
		values:      make(map[string]map[string]string),
		writes:      make(map[string]int),
		failSet:     make(map[string]error),
		failGet:     make(map[string]error),
		panicOnSet:  make(map[string]bool),
		subscribers: make(map[string][]*func()),
	}
}

// gnomeDesktop returns a store with both schemas and every key present.
func gnomeDesktop(colorScheme, accent string) *fakePrefs {
	p := newFakePrefs()
	p.addSchema(port.InterfaceSchema, map[string]string{
		port.ColorSchemeKey: colorScheme,
		port.AccentColorKey: accent,
		port.GTKThemeKey:    "Adwaita",
		port.IconThemeKey:   "Adwaita",
	})
	p.addSchema(port.ShellSchema, map[string]string{port.ShellThemeKey: ""})
	return p
}

func (p *fakePrefs) addSchema(schema string, keys map[string]string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[schema] = keys
}

func (p *fakePrefs) removeKey(schema, key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.values[schema], key)
}

// set changes a value without notifying, like an external writer whose
// signal has not been dispatched yet.
func (p *fakePrefs) set(schema, key, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[schema][key] = value
}

// emit delivers a change notification for key.
func (p *fakePrefs) emit(schema, key string) {
	p.mu.Lock()
	subs := append([]*func(){}, p.subscribers[schema+"/"+key]...)
	p.mu.Unlock()
	for _, fn := range subs {
		(*fn)()
	}
}

func (p *fakePrefs) value(schema, key string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.values[schema][key]
}

func (p *fakePrefs) writeCount(key string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writes[key]
}

func (p *fakePrefs) totalWrites() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	total := 0
	for _, n := range p.writes {
		total += n
	}
	return total
}

func (p *fakePrefs) subscriberCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	total := 0
	for _, subs := range p.subscribers {
		total += len(subs)
	}
	return total
}

func (p *fakePrefs) HasSchema(schema string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.values[schema]
	return ok
}

func (p *fakePrefs) HasKey(schema, key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.values[schema][key]
	return ok
}

func (p *fakePrefs) lookup(schema, key string) error {
	keys, ok := p.values[schema]
	if !ok {
		return fmt.Errorf("%s: %w", schema, port.ErrSchemaNotFound)
	}
	if _, ok := keys[key]; !ok {
		return fmt.Errorf("%s %s: %w", schema, key, port.ErrKeyNotFound)
	}
	return nil
}

func (p *fakePrefs) GetString(schema, key string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.lookup(schema, key); err != nil {
		return "", err
	}
	if err := p.failGet[key]; err != nil {
		return "", err
	}
	return p.values[schema][key], nil
}

func (p *fakePrefs) SetString(schema, key, value string) error {
	p.mu.Lock()
	if p.panicOnSet[key] {
		p.mu.Unlock()
		panic("backend crashed writing " + key)
	}
	if err := p.lookup(schema, key); err != nil {
		p.mu.Unlock()
		return err
	}
	p.writes[key]++
	if err := p.failSet[key]; err != nil {
		p.mu.Unlock()
		return err
	}
	p.values[schema][key] = value
	p.mu.Unlock()
	return nil
}

func (p *fakePrefs) Subscribe(schema, key string, callback func()) (func(), error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.lookup(schema, key); err != nil {
		return nil, err
	}
	id := schema + "/" + key
	fn := &callback
	p.subscribers[id] = append(p.subscribers[id], fn)
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		subs := p.subscribers[id]
		for i, s := range subs {
			if s == fn {
				p.subscribers[id] = append(subs[:i], subs[i+1:]...)
				return
			}
		}
	}, nil
}

var _ port.PreferenceStore = (*fakePrefs)(nil)

// memFS is an in-memory FileSystem.
type memFS struct {
	mu        sync.Mutex
	dirs      map[string]bool
	files     map[string]bool
	links     map[string]string
	failLinks map[string]error
	linkCalls int
}

func newMemFS() *memFS {
	return &memFS{
		dirs:      make(map[string]bool),
		files:     make(map[string]bool),
		links:     make(map[string]string),
		failLinks: make(map[string]error),
	}
}

func (f *memFS) addDir(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dirs[path] = true
}

func (f *memFS) removeDir(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.dirs, path)
}

// install adds every asset state needs.
func (f *memFS) install(state entity.ThemeState) {
	f.installWindow(state.WindowTheme())
	f.addDir(filepath.Join(testPaths.IconsDir, state.IconTheme()))
}

func (f *memFS) installWindow(name string) {
	f.addDir(filepath.Join(testPaths.ThemesDir, name))
	f.addDir(filepath.Join(testPaths.ThemesDir, name, "gtk-4.0"))
}

func (f *memFS) linkTarget(link string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.links[link]
}

func (f *memFS) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.linkCalls
}

func (f *memFS) Exists(_ context.Context, path string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, isLink := f.links[path]
	return f.dirs[path] || f.files[path] || isLink, nil
}

func (f *memFS) IsDirectory(_ context.Context, path string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dirs[path], nil
}

func (f *memFS) MkdirAll(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dirs[path] = true
	return nil
}

func (f *memFS) Readlink(_ context.Context, path string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	target, ok := f.links[path]
	if !ok {
		return "", errors.New("not a link")
	}
	return target, nil
}

func (f *memFS) ReplaceSymlink(_ context.Context, target, link string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.linkCalls++
	if err := f.failLinks[link]; err != nil {
		return err
	}
	f.links[link] = target
	return nil
}

var _ port.FileSystem = (*memFS)(nil)

func newReconciler(prefs port.PreferenceStore, fs port.FileSystem) *usecase.ReconcileThemeUseCase {
	return usecase.NewReconcileThemeUseCase(
		prefs,
		usecase.NewValidateAssetsUseCase(fs, testPaths),
		usecase.NewLinkStyleOverrideUseCase(fs, testPaths),
	)
}
