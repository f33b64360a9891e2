package mdsl_test

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/mdsl-lang/mdslc/pkg/mdsl"
)

// TestGoldenScenarios runs every testdata/scenarios/*.txtar fixture: each
// archive holds one method source (input.mth) plus either the expected
// asymptotic complexity (complexity.txt) or a substring of the expected
// error kind's type name (error.txt). These are the spec's S1-S5
// scenarios, fixed as on-disk golden files so a regression in the
// analyzer or complexity walker shows up as a diff against checked-in
// expectations rather than only inside hand-written assertions.
func TestGoldenScenarios(t *testing.T) {
	paths, err := filepath.Glob("../../testdata/scenarios/*.txtar")
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			archive, err := txtar.ParseFile(path)
			require.NoError(t, err)

			var source, wantComplexity, wantErrorKind string
			for _, f := range archive.Files {
				switch f.Name {
				case "input.mth":
					source = string(f.Data)
				case "complexity.txt":
					wantComplexity = strings.TrimSpace(string(f.Data))
				case "error.txt":
					wantErrorKind = strings.TrimSpace(string(f.Data))
				}
			}
			require.NotEmpty(t, source, "fixture must have an input.mth file")

			_, _, err = mdsl.Compile(source)

			if wantErrorKind != "" {
				require.Error(t, err)
				require.Contains(t, fmt.Sprintf("%T", err), wantErrorKind)
				return
			}

			require.NoError(t, err)
			got, err := mdsl.Complexity(source, "asymptotic")
			require.NoError(t, err)
			require.Equal(t, wantComplexity, got)
		})
	}
}
