// Package pipeline sequences the compiler's stages (parse, analyze,
// complexity, translate) over one shared Context. Unlike the interpreter
// this is adapted from, which keeps every stage's Processor running so an
// LSP client can collect parse and semantic diagnostics together, a DSL
// compilation aborts at its first error (spec.md §7): Pipeline.Run stops
// and returns as soon as a Stage fails.
package pipeline

import (
	"github.com/mdsl-lang/mdslc/internal/ast"
	"github.com/mdsl-lang/mdslc/internal/symbols"
)

// Context is threaded through every Stage of one compilation. It is owned
// by that compilation alone; nothing outside the call that built it holds a
// reference once the call returns (spec.md §5).
type Context struct {
	Source string
	Method *ast.Method
	Table  *symbols.Table
}

// Stage is one named step of a compilation pipeline.
type Stage interface {
	Name() string
	Run(ctx *Context) error
}

// FuncStage adapts a plain function to the Stage interface.
type FuncStage struct {
	StageName string
	Fn        func(ctx *Context) error
}

func (f FuncStage) Name() string           { return f.StageName }
func (f FuncStage) Run(ctx *Context) error { return f.Fn(ctx) }

// Pipeline runs a fixed sequence of Stages over one Context.
type Pipeline struct {
	stages []Stage
}

// New builds a Pipeline from stages, run in order.
func New(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// Run executes every stage in order, stopping at (and returning) the first
// error, exactly as spec.md §7 requires of the analyzer itself.
func (p *Pipeline) Run(ctx *Context) error {
	for _, s := range p.stages {
		if err := s.Run(ctx); err != nil {
			return err
		}
	}
	return nil
}
