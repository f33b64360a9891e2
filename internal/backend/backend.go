// Package backend implements the three read-only back ends spec.md §4.4
// specifies over a typed Method + symbol Table: native/linear-algebra,
// typesetting, and graph. Each is a registry entry selected by name, as
// the public API's translate(source, backend, options) requires.
package backend

import (
	"fmt"

	"github.com/mdsl-lang/mdslc/internal/ast"
	"github.com/mdsl-lang/mdslc/internal/symbols"
)

// Backend is one named emitter. Options carries back-end-specific flags;
// none of the three registered back ends reads any option.
type Backend interface {
	Name() string
	Translate(m *ast.Method, table *symbols.Table, options map[string]string) (string, error)
}

var registry = map[string]Backend{}

func register(b Backend) {
	registry[b.Name()] = b
}

func init() {
	register(&nativeBackend{})
	register(&typesetBackend{})
	register(&graphBackend{})
}

// Lookup returns the registered Backend for name.
func Lookup(name string) (Backend, bool) {
	b, ok := registry[name]
	return b, ok
}

// Names lists every registered back-end name, for CLI usage text.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

func unsupported(kind string) error {
	return fmt.Errorf("backend: unsupported node kind %s", kind)
}
