package pipeline_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdsl-lang/mdslc/internal/pipeline"
)

func TestPipelineStopsAtFirstError(t *testing.T) {
	var ran []string
	boom := errors.New("boom")

	p := pipeline.New(
		pipeline.FuncStage{StageName: "one", Fn: func(*pipeline.Context) error {
			ran = append(ran, "one")
			return nil
		}},
		pipeline.FuncStage{StageName: "two", Fn: func(*pipeline.Context) error {
			ran = append(ran, "two")
			return boom
		}},
		pipeline.FuncStage{StageName: "three", Fn: func(*pipeline.Context) error {
			ran = append(ran, "three")
			return nil
		}},
	)

	err := p.Run(&pipeline.Context{Source: "name x"})
	require.ErrorIs(t, err, boom)
	require.Equal(t, []string{"one", "two"}, ran)
}
