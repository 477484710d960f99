// Package diagnostics renders the single fatal error that ends a run.
package diagnostics

import (
	"fmt"

	"github.com/funvibe/proofcheck/internal/token"
)

// Phase identifies which pipeline stage raised an error.
type Phase string

const (
	PhaseLexer    Phase = "lexer"
	PhaseParser   Phase = "parser"
	PhaseResolver Phase = "resolver"
	PhaseChecker  Phase = "checker"
)

type ErrorCode string

const (
	ErrL001 ErrorCode = "L001" // no token matched at a non-EOF offset

	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // expected token, got EOF
	ErrP003 ErrorCode = "P003" // no prefix parse for this token

	ErrR001 ErrorCode = "R001" // name undefined
	ErrR002 ErrorCode = "R002" // Binding outside a Lambda/Pi head
	ErrR003 ErrorCode = "R003" // Ref or Error in surface input

	ErrC001 ErrorCode = "C001" // no typing rule for this shape
	ErrC002 ErrorCode = "C002" // apply_type on a non-function, non-SORRY type
	ErrC003 ErrorCode = "C003" // member_of returned false
)

var errorTemplates = map[ErrorCode]string{
	ErrL001: "no token matched at offset %d",
	ErrP001: "unexpected token: expected %q, got %q",
	ErrP002: "expected %q, found end of input",
	ErrP003: "cannot parse expression starting with %q",
	ErrR001: "%s not defined",
	ErrR002: "annotated binding %q is only valid as the head of a lambda or pi",
	ErrR003: "%s cannot appear in surface input",
	ErrC001: "no typing rule for %s",
	ErrC002: "%s is not a function type",
	ErrC003: "Type mismatch: %s has type %s, which is not a member of %s",
}

// Error is a single fatal diagnostic. Every failure kind the checker can
// raise is represented by one of these, so the driver always renders a
// single consistent line before exiting.
type Error struct {
	Code  ErrorCode
	Phase Phase
	Args  []interface{}
	Token token.Token
	File  string
	RunID string // correlates this error with a dump.json / cache entry
}

func (e *Error) Error() string {
	template, ok := errorTemplates[e.Code]
	if !ok {
		return fmt.Sprintf("unknown error code: %s", e.Code)
	}
	message := fmt.Sprintf(template, e.Args...)

	prefix := ""
	if e.File != "" {
		prefix = fmt.Sprintf("%s: ", e.File)
	}

	if e.Token.Line > 0 {
		return fmt.Sprintf("%s[%s] error at %d:%d [%s]: %s", prefix, e.Phase, e.Token.Line, e.Token.Column, e.Code, message)
	}
	return fmt.Sprintf("%s[%s] error [%s]: %s", prefix, e.Phase, e.Code, message)
}

func New(phase Phase, code ErrorCode, tok token.Token, args ...interface{}) *Error {
	return &Error{Phase: phase, Code: code, Token: tok, Args: args}
}
