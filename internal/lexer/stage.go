package lexer

import (
	"github.com/funvibe/proofcheck/internal/diagnostics"
	"github.com/funvibe/proofcheck/internal/pipeline"
)

// Stage tokenizes ctx.SourceCode into ctx.Tokens.
type Stage struct{}

func (Stage) Process(ctx *pipeline.Context) *diagnostics.Error {
	toks, err := Tokenize(ctx.SourceCode)
	if err != nil {
		return err
	}
	ctx.Tokens = toks
	return nil
}

var _ pipeline.Stage = Stage{}
