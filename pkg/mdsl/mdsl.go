// Package mdsl is the public, programmatic entry point into the
// compiler: parse, analyze, estimate complexity, and translate one
// method source into any registered back end. The CLI wrapper in
// cmd/mdslc is a thin shell over this package; nothing here depends on
// it, so the package is equally usable as a library.
package mdsl

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mdsl-lang/mdslc/internal/analyzer"
	"github.com/mdsl-lang/mdslc/internal/ast"
	"github.com/mdsl-lang/mdslc/internal/backend"
	"github.com/mdsl-lang/mdslc/internal/cache"
	"github.com/mdsl-lang/mdslc/internal/complexity"
	"github.com/mdsl-lang/mdslc/internal/parser"
	"github.com/mdsl-lang/mdslc/internal/symbols"
)

// Compile parses and semantically analyzes source, returning the typed
// tree and its symbol table. It is the shared first step of every other
// entry point in this package.
func Compile(source string) (*ast.Method, *symbols.Table, error) {
	m, err := parser.Parse(source)
	if err != nil {
		return nil, nil, err
	}
	table, err := analyzer.Analyze(m)
	if err != nil {
		return nil, nil, err
	}
	return m, table, nil
}

// Complexity compiles source and estimates its running-time cost as a
// polynomial in the atom count N and bond count M. mode selects between
// the full symbolic polynomial ("full") and its single dominant
// asymptotic term ("asymptotic"); any other mode is an error.
func Complexity(source, mode string) (string, error) {
	m, table, err := Compile(source)
	if err != nil {
		return "", err
	}
	switch mode {
	case "full":
		return complexity.Complexity(m, table, false)
	case "asymptotic":
		return complexity.Complexity(m, table, true)
	default:
		return "", fmt.Errorf("mdsl: unknown complexity mode %q", mode)
	}
}

// Translate compiles source and renders it through the named back end
// ("native", "tex", or "graph"), passing options through unchanged.
func Translate(source, backendName string, options map[string]string) (string, error) {
	m, table, err := Compile(source)
	if err != nil {
		return "", err
	}
	b, ok := backend.Lookup(backendName)
	if !ok {
		return "", fmt.Errorf("mdsl: unknown back end %q, have %v", backendName, backend.Names())
	}
	return b.Translate(m, table, options)
}

// HasRegressionPlaceholder reports whether source parses and still
// contains an unresolved `{}` placeholder left for an external search
// process to fill (spec.md §9). A parse error reports false: a source
// that doesn't even parse has no placeholder to report on, and the
// caller will see the parse error from Compile regardless.
func HasRegressionPlaceholder(source string) bool {
	m, err := parser.Parse(source)
	if err != nil {
		return false
	}
	return ast.ContainsPlaceholder(m)
}

// BackendNames lists every registered back end, for CLI usage text.
func BackendNames() []string {
	return backend.Names()
}

// CachedTranslate is Translate, memoized in store by (source, backendName,
// options): repeated translation requests for the same method against the
// same back end skip re-running the analyzer and the back end entirely.
func CachedTranslate(store *cache.Store, source, backendName string, options map[string]string) (string, error) {
	key := cache.Key(source, backendName, optionsKey(options))
	if hit, ok, err := store.Get("translate", key); err != nil {
		return "", err
	} else if ok {
		return hit, nil
	}

	out, err := Translate(source, backendName, options)
	if err != nil {
		return "", err
	}
	if err := store.Put("translate", key, out, time.Now().Unix()); err != nil {
		return "", err
	}
	return out, nil
}

// CachedComplexity is Complexity, memoized in store by (source, mode).
func CachedComplexity(store *cache.Store, source, mode string) (string, error) {
	key := cache.Key(source, mode)
	if hit, ok, err := store.Get("complexity", key); err != nil {
		return "", err
	} else if ok {
		return hit, nil
	}

	out, err := Complexity(source, mode)
	if err != nil {
		return "", err
	}
	if err := store.Put("complexity", key, out, time.Now().Unix()); err != nil {
		return "", err
	}
	return out, nil
}

func optionsKey(options map[string]string) string {
	if len(options) == 0 {
		return ""
	}
	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%s;", k, options[k])
	}
	return b.String()
}
