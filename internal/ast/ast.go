// Package ast is the surface syntax tree produced by the parser: named
// binders, no de Bruijn indices yet.
package ast

import "github.com/funvibe/proofcheck/internal/token"

// Expr is the base interface for every surface expression node.
type Expr interface {
	GetToken() token.Token
	exprNode()
}

// Ident is an unresolved identifier.
type Ident struct {
	Token token.Token
	Name  string
}

func (e *Ident) GetToken() token.Token { return e.Token }
func (e *Ident) exprNode()             {}

// App is a function application, fun applied to arg.
type App struct {
	Token token.Token // the token at the application site
	Fun   Expr
	Arg   Expr
}

func (e *App) GetToken() token.Token { return e.Token }
func (e *App) exprNode()             {}

// Lambda is a value abstraction `head => body`.
type Lambda struct {
	Token token.Token // the '=>' token
	Head  Expr        // a *Binding, or a bare expression (anonymous binder type)
	Body  Expr
}

func (e *Lambda) GetToken() token.Token { return e.Token }
func (e *Lambda) exprNode()             {}

// Pi is a dependent function type `head -> tail`.
type Pi struct {
	Token token.Token // the '->' token
	Head  Expr        // a *Binding, or a bare expression (anonymous binder type)
	Tail  Expr
}

func (e *Pi) GetToken() token.Token { return e.Token }
func (e *Pi) exprNode()             {}

// Binding is an annotated binder `(name : ty)`. Valid only as the Head
// of a Lambda or Pi; resolving it anywhere else is a resolver error.
type Binding struct {
	Token token.Token
	Name  string
	Ty    Expr
}

func (e *Binding) GetToken() token.Token { return e.Token }
func (e *Binding) exprNode()             {}

// Error is a parser sentinel. The parser in this repository never builds
// one (it stops at the first error); the resolver rejects it if it
// appears.
type Error struct {
	Token token.Token
	Msg   string
}

func (e *Error) GetToken() token.Token { return e.Token }
func (e *Error) exprNode()             {}

// Declaration is one `name : ty (:= def)? ;` entry.
type Declaration struct {
	Token token.Token // the name token
	Name  string
	Ty    Expr
	Def   Expr // nil for an axiom
}
