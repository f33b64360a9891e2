// Package elements holds the compiler's one piece of process-wide state:
// a read-only table of known chemical element symbols, parsed once, on the
// first lookup, from a bundled YAML resource (spec.md §5). It then lives
// until program exit; it is never mutated after load, so it needs no locking.
package elements

import (
	_ "embed"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed elements.yaml
var bundled []byte

type table struct {
	Elements []struct {
		Symbol string `yaml:"symbol"`
		Name   string `yaml:"name"`
	} `yaml:"elements"`
}

var (
	once    sync.Once
	known   map[string]string
	loadErr error
)

func load() {
	var t table
	if loadErr = yaml.Unmarshal(bundled, &t); loadErr != nil {
		return
	}
	known = make(map[string]string, len(t.Elements))
	for _, e := range t.Elements {
		known[e.Symbol] = e.Name
	}
}

// Known reports whether symbol names a recognized chemical element, as used
// by the `element(Atom, String)` predicate's literal-String argument check
// (spec.md §4.2 "Predicate checking").
func Known(symbol string) bool {
	once.Do(load)
	_, ok := known[symbol]
	return ok
}

// Name returns the informal element name for symbol, if known.
func Name(symbol string) (string, bool) {
	once.Do(load)
	name, ok := known[symbol]
	return name, ok
}

// LoadError reports whether the bundled resource failed to parse. It is
// exposed only so tests and the CLI can fail loudly on a corrupt bundle
// rather than silently treating every element as unknown.
func LoadError() error {
	once.Do(load)
	return loadErr
}
