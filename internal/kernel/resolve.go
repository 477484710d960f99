package kernel

import (
	"github.com/funvibe/proofcheck/internal/ast"
	"github.com/funvibe/proofcheck/internal/diagnostics"
)

// Global is the subset of the global environment the resolver needs:
// given a name, tell it whether the name is bound at all, and if so,
// whether it has a defining body to inline.
//
// Kept as an interface (rather than importing the environment package
// directly) so that kernel has no dependency on how declarations are
// stored — only environment depends on kernel, never the reverse.
type Global interface {
	Lookup(name string) (ty Expr, def Expr, hasDef bool, ok bool)
}

// scope is the stack of in-scope binder names the resolver threads
// through a resolve pass. A nil entry marks an anonymous binder (one
// whose surface head was not a Binding), which can never be referenced
// by name but still occupies a de Bruijn level.
type scope []*string

// depthOf searches innermost-to-outermost for name, returning the
// 1-based depth of the first match, or 0 if name is not locally bound.
func (s scope) depthOf(name string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] != nil && *s[i] == name {
			return len(s) - i
		}
	}
	return 0
}

// Resolve replaces bound identifiers in e with de Bruijn indices and
// inlines global definitions.
func Resolve(e ast.Expr, bound scope, globals Global) (Expr, *diagnostics.Error) {
	switch n := e.(type) {
	case *ast.Ident:
		if depth := bound.depthOf(n.Name); depth > 0 {
			return &Ref{Token: n.Token, Index: depth}, nil
		}
		ty, def, hasDef, ok := globals.Lookup(n.Name)
		if !ok {
			return nil, diagnostics.New(diagnostics.PhaseResolver, diagnostics.ErrR001, n.Token, n.Name)
		}
		if hasDef {
			return def, nil
		}
		_ = ty
		return &Ident{Token: n.Token, Name: n.Name}, nil

	case *ast.App:
		fn, err := Resolve(n.Fun, bound, globals)
		if err != nil {
			return nil, err
		}
		arg, err := Resolve(n.Arg, bound, globals)
		if err != nil {
			return nil, err
		}
		return &App{Token: n.Token, Fun: fn, Arg: arg}, nil

	case *ast.Lambda:
		head, body, err := resolveBinder(n.Head, n.Body, bound, globals)
		if err != nil {
			return nil, err
		}
		return &Lambda{Token: n.Token, Head: head, Body: body}, nil

	case *ast.Pi:
		head, tail, err := resolveBinder(n.Head, n.Tail, bound, globals)
		if err != nil {
			return nil, err
		}
		return &Pi{Token: n.Token, Head: head, Tail: tail}, nil

	case *ast.Binding:
		return nil, diagnostics.New(diagnostics.PhaseResolver, diagnostics.ErrR002, n.Token, n.Name)

	case *ast.Error:
		return nil, diagnostics.New(diagnostics.PhaseResolver, diagnostics.ErrR003, n.Token, "a parser error sentinel")

	default:
		return nil, diagnostics.New(diagnostics.PhaseResolver, diagnostics.ErrR003, e.GetToken(), "an unresolvable expression")
	}
}

// resolveBinder resolves the head of a Lambda/Pi, pushes the bound
// name (or an anonymous slot) onto the scope, resolves the body, then
// pops.
func resolveBinder(head, body ast.Expr, bound scope, globals Global) (Expr, Expr, *diagnostics.Error) {
	if b, ok := head.(*ast.Binding); ok {
		ty, err := Resolve(b.Ty, bound, globals)
		if err != nil {
			return nil, nil, err
		}
		name := b.Name
		innerBound := append(append(scope{}, bound...), &name)
		resolvedBody, err := Resolve(body, innerBound, globals)
		if err != nil {
			return nil, nil, err
		}
		return ty, resolvedBody, nil
	}

	ty, err := Resolve(head, bound, globals)
	if err != nil {
		return nil, nil, err
	}
	innerBound := append(append(scope{}, bound...), nil)
	resolvedBody, err := Resolve(body, innerBound, globals)
	if err != nil {
		return nil, nil, err
	}
	return ty, resolvedBody, nil
}
