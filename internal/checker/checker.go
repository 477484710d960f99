// Package checker implements the checking judgement Γ ⊢ e : τ: two
// mutually recursive operations, type_of and apply_type, plus the
// member_of membership test the driver uses at the top level.
package checker

import (
	"github.com/funvibe/proofcheck/internal/diagnostics"
	"github.com/funvibe/proofcheck/internal/environment"
	"github.com/funvibe/proofcheck/internal/kernel"
	"github.com/funvibe/proofcheck/internal/prettyprinter"
)

func render(e kernel.Expr) string { return prettyprinter.Print(e) }

// Refs is the stack of binder-head types that TypeOf threads through a
// synthesis pass, indexed the same way as kernel.Ref: refs[len-1] is
// the innermost enclosing binder's declared type.
type Refs []kernel.Expr

func (r Refs) push(t kernel.Expr) Refs { return append(append(Refs{}, r...), t) }

// TypeOf synthesises the type of e under refs and the global
// environment env.
func TypeOf(e kernel.Expr, refs Refs, env *environment.Environment) (kernel.Expr, *diagnostics.Error) {
	switch n := e.(type) {
	case *kernel.Ident:
		d, ok := env.Get(n.Name)
		if !ok {
			return nil, diagnostics.New(diagnostics.PhaseChecker, diagnostics.ErrC001, n.Token, n.Name)
		}
		return d.Ty, nil

	case *kernel.Ref:
		if n.Index < 1 || n.Index > len(refs) {
			return nil, diagnostics.New(diagnostics.PhaseChecker, diagnostics.ErrC001, n.Token, "an out-of-scope reference")
		}
		// The stored head type sits n.Index binders above where it was
		// declared; every one of those binders it crosses on the way
		// out adds one to any free Ref already inside it.
		stored := refs[len(refs)-n.Index]
		return kernel.Shift(stored, n.Index), nil

	case *kernel.Lambda:
		bodyType, err := TypeOf(n.Body, refs.push(n.Head), env)
		if err != nil {
			return nil, err
		}
		return &kernel.Pi{Token: n.Token, Head: n.Head, Tail: bodyType}, nil

	case *kernel.Pi:
		return &kernel.Ident{Token: n.Token, Name: kernel.TypeName}, nil

	case *kernel.App:
		fnType, err := TypeOf(n.Fun, refs, env)
		if err != nil {
			return nil, err
		}
		return ApplyType(fnType, n.Arg, refs, env)

	default:
		return nil, diagnostics.New(diagnostics.PhaseChecker, diagnostics.ErrC001, e.GetToken(), "this expression shape")
	}
}

// ApplyType computes the result type of applying a function of type F
// to argument v.
func ApplyType(f kernel.Expr, v kernel.Expr, refs Refs, env *environment.Environment) (kernel.Expr, *diagnostics.Error) {
	switch fn := f.(type) {
	case *kernel.Pi:
		ok, err := MemberOf(v, fn.Head, refs, env)
		if err != nil {
			return nil, err
		}
		if !ok {
			vType, _ := TypeOf(v, refs, env)
			return nil, diagnostics.New(diagnostics.PhaseChecker, diagnostics.ErrC003, v.GetToken(),
				render(v), render(vType), render(fn.Head))
		}
		return kernel.Simp(kernel.Subst(fn.Tail, v, 1)), nil

	case *kernel.SorrySentinel:
		// The unsound escape hatch: SORRY accepts any argument and is
		// deemed to have whatever type the context demands.
		return v, nil

	default:
		return nil, diagnostics.New(diagnostics.PhaseChecker, diagnostics.ErrC002, f.GetToken(), render(f))
	}
}

// MemberOf reports whether e is a member of declared type τ: the
// checker's notion of typing is syntactic equality of e's synthesised
// type against τ, not full definitional equality.
func MemberOf(e, tau kernel.Expr, refs Refs, env *environment.Environment) (bool, *diagnostics.Error) {
	t, err := TypeOf(e, refs, env)
	if err != nil {
		return false, err
	}
	return kernel.Eq(t, tau), nil
}
