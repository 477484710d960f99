// Package pipeline runs a sequence of stages (in the CLI: lexer,
// parser, then the driver, which resolves and checks each declaration)
// over a shared context, generalised from the
// teacher's multi-pass PipelineContext down to this checker's
// single-pass-per-declaration context.
package pipeline

import (
	"github.com/funvibe/proofcheck/internal/ast"
	"github.com/funvibe/proofcheck/internal/environment"
	"github.com/funvibe/proofcheck/internal/kernel"
	"github.com/funvibe/proofcheck/internal/token"
)

// Context holds everything a Stage needs to read from and write to as
// a source file moves through the pipeline.
type Context struct {
	SourceCode string
	FilePath   string

	Tokens []token.Token
	Decls  []*ast.Declaration

	Env *environment.Environment

	// Resolved, per-declaration kernel expressions, populated by the
	// driver stage as it resolves each declaration. Indexed the same
	// as Decls.
	ResolvedTy  []kernel.Expr
	ResolvedDef []kernel.Expr // nil entries for axioms

	// Passed reports, per declaration, whether its body (if any) was
	// verified to inhabit its declared type.
	Passed []bool
}

// NewContext creates a context over source, with a freshly seeded
// global environment.
func NewContext(source string) *Context {
	return &Context{
		SourceCode: source,
		Env:        environment.New(),
	}
}
