package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
)

var (
	ErrNotExist  = errors.New("assets: asset does not exist")
	ErrNotLoaded = errors.New("assets: asset not loaded")
)

// Kind selects the loader used for an asset.
type Kind int

const (
	KindTexture Kind = iota
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindTexture:
		return "texture"
	case KindMap:
		return "map"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// LoaderFunc decodes the asset at path.
type LoaderFunc func(fsys fs.FS, path string) (any, error)

// deallocator is implemented by assets owning GPU memory (*ebiten.Image).
type deallocator interface {
	Deallocate()
}

type entry struct {
	kind  Kind
	value any
}

type request struct {
	path string
	kind Kind
}

// Manager caches decoded assets by path. Loading is queue based: Enqueue
// followed by Update polls one asset at a time, while Load blocks until the
// requested asset is decoded. Both paths end in the same cache state, so
// callers only ever check IsLoaded/Get.
type Manager struct {
	fsys    fs.FS
	loaders map[Kind]LoaderFunc
	loaded  map[string]*entry
	queue   []request

	// progress bookkeeping for the current batch of queued requests
	requested int
	completed int

	log *slog.Logger
}

// NewManager creates a manager reading from fsys. A texture loader is
// registered by default; other kinds are added with SetLoader.
func NewManager(fsys fs.FS, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{
		fsys:    fsys,
		loaders: make(map[Kind]LoaderFunc),
		loaded:  make(map[string]*entry),
		log:     logger.With("component", "Assets"),
	}
	m.loaders[KindTexture] = loadTexture
	return m
}

// SetLoader registers the loader used for kind.
func (m *Manager) SetLoader(kind Kind, fn LoaderFunc) {
	if m == nil || fn == nil {
		return
	}
	m.loaders[kind] = fn
}

// FS returns the file system assets are read from.
func (m *Manager) FS() fs.FS {
	if m == nil {
		return nil
	}
	return m.fsys
}

// Exists reports whether path resolves to a file.
func (m *Manager) Exists(path string) bool {
	if m == nil || m.fsys == nil || path == "" {
		return false
	}
	_, err := fs.Stat(m.fsys, CleanPath(path))
	return err == nil
}

// Load synchronously loads the asset at path. Loading an asset that is
// already cached is a no-op, as is loading a path that does not exist.
func (m *Manager) Load(path string, kind Kind) {
	if m == nil || path == "" {
		return
	}
	if m.IsLoaded(path) {
		m.log.Debug("asset already loaded", "path", path)
		return
	}
	if !m.Exists(path) {
		m.log.Debug("asset doesn't exist", "path", path, "kind", kind)
		return
	}
	m.log.Debug("loading asset", "path", path, "kind", kind)
	m.Enqueue(path, kind)
	m.FinishLoading(path)
}

// Enqueue schedules path for loading on a later Update.
func (m *Manager) Enqueue(path string, kind Kind) {
	if m == nil || path == "" || m.IsLoaded(path) || m.queued(path) >= 0 {
		return
	}
	m.queue = append(m.queue, request{path: path, kind: kind})
	m.requested++
}

// Update loads the next queued asset. It returns true once the queue is empty.
func (m *Manager) Update() bool {
	if m == nil {
		return true
	}
	if len(m.queue) > 0 {
		req := m.queue[0]
		m.queue = m.queue[1:]
		m.loadNow(req)
	}
	return m.drained()
}

// FinishLoading blocks until the queued asset at path has been processed.
func (m *Manager) FinishLoading(path string) {
	if m == nil {
		return
	}
	idx := m.queued(path)
	if idx < 0 {
		return
	}
	req := m.queue[idx]
	m.queue = append(m.queue[:idx], m.queue[idx+1:]...)
	m.loadNow(req)
	m.drained()
}

// Progress returns the completed fraction of the current queue batch.
func (m *Manager) Progress() float64 {
	if m == nil || m.requested == 0 {
		return 1
	}
	return float64(m.completed) / float64(m.requested)
}

// Queued returns the number of pending requests.
func (m *Manager) Queued() int {
	if m == nil {
		return 0
	}
	return len(m.queue)
}

// IsLoaded reports whether path is cached.
func (m *Manager) IsLoaded(path string) bool {
	if m == nil {
		return false
	}
	_, ok := m.loaded[CleanPath(path)]
	return ok
}

// Get returns the cached asset at path. Callers should check IsLoaded first;
// an absent asset yields (nil, false).
func (m *Manager) Get(path string) (any, bool) {
	if m == nil {
		return nil, false
	}
	e, ok := m.loaded[CleanPath(path)]
	if !ok {
		m.log.Debug("asset is not loaded", "path", path)
		return nil, false
	}
	return e.value, true
}

// Get returns the cached asset at path as T.
func Get[T any](m *Manager, path string) (T, bool) {
	var zero T
	value, ok := m.Get(path)
	if !ok {
		return zero, false
	}
	cast, ok := value.(T)
	if !ok {
		return zero, false
	}
	return cast, true
}

// Unload drops the asset at path. Unloading an asset that is not cached only
// logs.
func (m *Manager) Unload(path string) {
	if m == nil {
		return
	}
	key := CleanPath(path)
	e, ok := m.loaded[key]
	if !ok {
		m.log.Debug("asset is not loaded; nothing to unload", "path", path)
		return
	}
	m.log.Debug("unload", "path", path)
	if d, ok := e.value.(deallocator); ok {
		d.Deallocate()
	}
	delete(m.loaded, key)
}

// Reload decodes path again and swaps the result into the cache. The cached
// value is kept when the file is missing or fails to decode.
func (m *Manager) Reload(path string, kind Kind) bool {
	if m == nil || !m.Exists(path) {
		return false
	}
	loader, ok := m.loaders[kind]
	if !ok {
		m.log.Debug("no loader registered", "path", path, "kind", kind)
		return false
	}
	key := CleanPath(path)
	value, err := loader(m.fsys, key)
	if err != nil {
		m.log.Debug("asset failed to reload", "path", path, "kind", kind, "error", err)
		return false
	}
	if old, ok := m.loaded[key]; ok {
		if d, ok := old.value.(deallocator); ok && old.value != value {
			d.Deallocate()
		}
	}
	m.loaded[key] = &entry{kind: kind, value: value}
	m.log.Debug("asset has been reloaded", "path", path, "kind", kind)
	return true
}

// Clear unloads every cached asset and drops pending requests.
func (m *Manager) Clear() {
	if m == nil {
		return
	}
	for path := range m.loaded {
		m.Unload(path)
	}
	m.queue = nil
	m.requested = 0
	m.completed = 0
}

func (m *Manager) loadNow(req request) {
	defer func() { m.completed++ }()

	loader, ok := m.loaders[req.kind]
	if !ok {
		m.log.Debug("no loader registered", "path", req.path, "kind", req.kind)
		return
	}
	value, err := loader(m.fsys, CleanPath(req.path))
	if err != nil {
		m.log.Debug("asset failed to load", "path", req.path, "kind", req.kind, "error", err)
		return
	}
	m.loaded[CleanPath(req.path)] = &entry{kind: req.kind, value: value}
	m.log.Debug("asset has been loaded", "path", req.path, "kind", req.kind)
}

func (m *Manager) queued(path string) int {
	key := CleanPath(path)
	for i, req := range m.queue {
		if CleanPath(req.path) == key {
			return i
		}
	}
	return -1
}

// drained resets batch progress once the queue is empty.
func (m *Manager) drained() bool {
	if len(m.queue) > 0 {
		return false
	}
	m.requested = 0
	m.completed = 0
	return true
}
