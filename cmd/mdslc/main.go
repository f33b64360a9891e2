// Command mdslc is the compiler's command-line front end: a thin shell
// over pkg/mdsl with manual subcommand dispatch, in the style of the
// interpreter this tree is adapted from.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/mdsl-lang/mdslc/internal/cache"
	"github.com/mdsl-lang/mdslc/internal/config"
	"github.com/mdsl-lang/mdslc/internal/diagnostics"
	"github.com/mdsl-lang/mdslc/pkg/mdsl"
)

// workspaceConfigFile is the per-project defaults file consulted for
// backend/complexity-mode/cache-file defaults, relative to the working
// directory mdslc is invoked from.
const workspaceConfigFile = ".mdslc.yaml"

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: mdslc <command> <file%s> [options]\n\n", config.SourceFileExt)
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  compile <file>                check a method for errors\n")
	fmt.Fprintf(os.Stderr, "  complexity <file> [--full]    estimate running-time cost (default: asymptotic)\n")
	fmt.Fprintf(os.Stderr, "  translate <file> --backend=B  render via one of: %s\n", strings.Join(config.Backends, ", "))
	fmt.Fprintf(os.Stderr, "  check-regression <file>       report whether a placeholder {} remains\n")
	fmt.Fprintf(os.Stderr, "  version                       print the compiler version\n")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	if cmd == "version" {
		fmt.Println(config.Version)
		return
	}
	if cmd == "-help" || cmd == "--help" || cmd == "help" {
		usage()
		return
	}

	if len(os.Args) < 3 {
		usage()
		os.Exit(2)
	}
	path := os.Args[2]
	rest := os.Args[3:]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mdslc: %s\n", err)
		os.Exit(1)
	}

	ws, err := config.LoadWorkspace(workspaceConfigFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mdslc: %s\n", err)
		os.Exit(1)
	}

	var runErr error
	switch cmd {
	case "compile":
		_, _, runErr = mdsl.Compile(string(source))
		if runErr == nil {
			fmt.Println("ok")
		}

	case "complexity":
		mode := firstNonEmpty(ws.ComplexityMode, "asymptotic")
		if hasFlag(rest, "--full") {
			mode = "full"
		}
		store, storeErr := openCacheStore(ws)
		if storeErr != nil {
			fmt.Fprintf(os.Stderr, "mdslc: %s\n", storeErr)
			os.Exit(1)
		}
		defer store.Close()
		var result string
		result, runErr = mdsl.CachedComplexity(store, string(source), mode)
		if runErr == nil {
			fmt.Println(result)
		}

	case "translate":
		backendName := firstNonEmpty(flagValue(rest, "--backend"), ws.Backend)
		if backendName == "" {
			fmt.Fprintf(os.Stderr, "mdslc: translate requires --backend=%s\n", strings.Join(config.Backends, "|"))
			os.Exit(2)
		}
		store, storeErr := openCacheStore(ws)
		if storeErr != nil {
			fmt.Fprintf(os.Stderr, "mdslc: %s\n", storeErr)
			os.Exit(1)
		}
		defer store.Close()
		var out string
		out, runErr = mdsl.CachedTranslate(store, string(source), backendName, ws.BackendOptions)
		if runErr == nil {
			fmt.Println(out)
		}

	case "check-regression":
		if mdsl.HasRegressionPlaceholder(string(source)) {
			fmt.Println("placeholder present")
			os.Exit(1)
		}
		fmt.Println("no placeholder")

	default:
		usage()
		os.Exit(2)
	}

	if runErr != nil {
		reportError(string(source), runErr)
		os.Exit(1)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func openCacheStore(ws config.Workspace) (*cache.Store, error) {
	return cache.Open(ws.CacheFile)
}

func hasFlag(args []string, name string) bool {
	for _, a := range args {
		if a == name {
			return true
		}
	}
	return false
}

func flagValue(args []string, name string) string {
	prefix := name + "="
	for _, a := range args {
		if strings.HasPrefix(a, prefix) {
			return strings.TrimPrefix(a, prefix)
		}
	}
	return ""
}

// reportError prints a diagnostic as "line:column: message" followed by
// the offending source line and a caret under the column, colorized when
// stderr is a terminal.
func reportError(source string, err error) {
	de, ok := err.(diagnostics.Error)
	if !ok {
		fmt.Fprintf(os.Stderr, "mdslc: %s\n", err)
		return
	}

	line, column := de.Position()
	red, reset := "", ""
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		red, reset = "\033[31m", "\033[0m"
	}

	fmt.Fprintf(os.Stderr, "%s%s%s\n", red, de.Error(), reset)

	lines := strings.Split(source, "\n")
	if line >= 1 && line <= len(lines) {
		srcLine := lines[line-1]
		fmt.Fprintf(os.Stderr, "  %s\n", srcLine)
		if column >= 1 {
			fmt.Fprintf(os.Stderr, "  %s%s^%s\n", strings.Repeat(" ", column-1), red, reset)
		}
	}
}
