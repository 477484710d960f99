package parser

import (
	"github.com/funvibe/proofcheck/internal/diagnostics"
	"github.com/funvibe/proofcheck/internal/pipeline"
)

// Stage parses ctx.Tokens into ctx.Decls.
type Stage struct{}

func (Stage) Process(ctx *pipeline.Context) *diagnostics.Error {
	decls, err := ParseProgram(ctx.Tokens)
	if err != nil {
		return err
	}
	ctx.Decls = decls
	return nil
}

var _ pipeline.Stage = Stage{}
