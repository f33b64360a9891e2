// Package config holds build/version metadata and the handful of named
// constants shared across the compiler's stages, mirrored after the
// teacher's own internal/config package.
package config

// Version is the compiler's version. Set at build time via
// -ldflags "-X github.com/mdsl-lang/mdslc/internal/config.Version=...".
var Version = "0.1.0"

// SourceFileExt is the canonical recognized source file extension.
const SourceFileExt = ".mth"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".mth"}

// HasSourceExt reports whether path ends with a recognized source
// extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// TrimSourceExt removes a recognized source extension from name, if
// present.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// Back-end names accepted by Translate and the CLI's `translate`
// subcommand (spec.md §4.4, §6).
const (
	BackendNative = "native"
	BackendTeX    = "tex"
	BackendGraph  = "graph"
)

// Backends lists every recognized back-end name, in the order the CLI
// prints them in its usage text.
var Backends = []string{BackendNative, BackendTeX, BackendGraph}
