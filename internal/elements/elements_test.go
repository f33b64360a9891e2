package elements_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdsl-lang/mdslc/internal/elements"
)

func TestKnown(t *testing.T) {
	require.NoError(t, elements.LoadError())
	require.True(t, elements.Known("H"))
	require.True(t, elements.Known("Fe"))
	require.False(t, elements.Known("Xx"))
}

func TestName(t *testing.T) {
	name, ok := elements.Name("O")
	require.True(t, ok)
	require.Equal(t, "oxygen", name)
}
