// Package kernel is the locally-nameless term representation: the
// post-resolution expression tree, substitution, normalisation, and
// structural equality that the type checker builds on.
//
// Expr is closed over five shapes: Ident, App, Lambda, Pi, Ref, plus the
// two sentinels (ErrorSentinel, SorrySentinel) stored as the types of
// Type and SORRY. Unlike the surface ast.Expr, a kernel Expr never
// contains a Binding — every binder is anonymous, and its identity is
// purely positional (a de Bruijn index counted outward from the use site).
package kernel

import "github.com/funvibe/proofcheck/internal/token"

// Expr is any kernel expression.
type Expr interface {
	GetToken() token.Token
	exprNode()
}

// Ident is an opaque global name: an axiom, or the predeclared Type /
// SORRY sentinels. Global definitions are never represented this way —
// the resolver inlines them at resolve time (see resolve.go).
type Ident struct {
	Token token.Token
	Name  string
}

func (e *Ident) GetToken() token.Token { return e.Token }
func (e *Ident) exprNode()             {}

// App is function application.
type App struct {
	Token   token.Token
	Fun, Arg Expr
}

func (e *App) GetToken() token.Token { return e.Token }
func (e *App) exprNode()             {}

// Lambda is a value abstraction. Head is the (resolved) type of the
// bound variable; Body is resolved with that variable at de Bruijn
// depth 1.
type Lambda struct {
	Token    token.Token
	Head     Expr
	Body     Expr
}

func (e *Lambda) GetToken() token.Token { return e.Token }
func (e *Lambda) exprNode()             {}

// Pi is a dependent function type. Tail may mention the bound variable
// via Ref(1) inside it.
type Pi struct {
	Token    token.Token
	Head     Expr
	Tail     Expr
}

func (e *Pi) GetToken() token.Token { return e.Token }
func (e *Pi) exprNode()             {}

// Ref is a 1-based de Bruijn index: Ref(1) names the innermost
// enclosing binder, Ref(2) the next one out, and so on.
type Ref struct {
	Token token.Token
	Index int
}

func (e *Ref) GetToken() token.Token { return e.Token }
func (e *Ref) exprNode()             {}

// Sentinel identifiers seeded into every global environment before any
// user declaration is read.
const (
	TypeName  = "Type"
	SorryName = "SORRY"
)

// ErrorSentinel is the stored "type" of Type itself: it is never
// inspected by any typing rule (the type of a Pi is Type by fiat, not
// derived from this value), so its shape carries no meaning.
type ErrorSentinel struct{}

func (e *ErrorSentinel) GetToken() token.Token { return token.Token{} }
func (e *ErrorSentinel) exprNode()             {}

// SorrySentinel is the stored type of SORRY. apply_type recognises it
// by type-switch and special-cases it: SORRY applied to any v reduces
// to v and is deemed to have whatever type the surrounding context
// demands. This is intentionally unsound; see SPEC_FULL.md §8.
type SorrySentinel struct{}

func (e *SorrySentinel) GetToken() token.Token { return token.Token{} }
func (e *SorrySentinel) exprNode()             {}

// IsSorry reports whether e is itself a bare reference to the SORRY
// axiom. Simp uses this to fire the SORRY-application reduction rule
// at the head of an App; it says nothing about whether SORRY occurs
// somewhere inside a larger term (see MentionsSorry for that).
func IsSorry(e Expr) bool {
	id, ok := e.(*Ident)
	return ok && id.Name == SorryName
}

// MentionsSorry reports whether the SORRY axiom occurs anywhere inside
// e, including applied (the only form that ever actually type-checks:
// a bare SORRY has type SorrySentinel and can't pass MemberOf against
// a real declared type). Global definitions are already inlined by the
// time resolve.go hands back a kernel.Expr, so walking e alone also
// covers every transitive reference through a global it mentions.
func MentionsSorry(e Expr) bool {
	switch n := e.(type) {
	case *Ident:
		return n.Name == SorryName
	case *App:
		return MentionsSorry(n.Fun) || MentionsSorry(n.Arg)
	case *Lambda:
		return MentionsSorry(n.Head) || MentionsSorry(n.Body)
	case *Pi:
		return MentionsSorry(n.Head) || MentionsSorry(n.Tail)
	default:
		return false
	}
}
