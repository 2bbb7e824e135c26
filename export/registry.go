package export

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Factory creates an exporter.
type Factory func() Exporter

var (
	registryMu sync.RWMutex
	exporters  = make(map[string]Factory)
)

// Register makes an exporter available under name, which is also the
// file extension it handles. It panics when factory is nil or the name
// is taken, so clashes surface at init.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("export: Register factory is nil")
	}
	name = strings.ToLower(name)
	if _, dup := exporters[name]; dup {
		panic("export: Register called twice for " + name)
	}
	exporters[name] = factory
}

// Unregister removes an exporter. Unknown names are ignored.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(exporters, strings.ToLower(name))
}

// New returns the exporter registered under name.
func New(name string) (Exporter, error) {
	registryMu.RLock()
	factory, ok := exporters[strings.ToLower(name)]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownFormat, name, strings.Join(Formats(), ", "))
	}
	return factory(), nil
}

// ForPath returns the exporter for the extension of path.
func ForPath(path string) (Exporter, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil, fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}
	return New(ext)
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(exporters))
	for name := range exporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether name has an exporter.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := exporters[strings.ToLower(name)]
	return ok
}
