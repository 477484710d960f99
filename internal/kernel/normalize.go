package kernel

// Simp is call-by-value normalisation: arguments are normalised before
// a redex is reduced, and Simp recurses under binders so the bodies of
// Lambdas and Pis are normal too. Not proven terminating — the
// language admits non-terminating terms via axioms of arbitrary type —
// but user proofs are expected to be strongly normalising in practice.
func Simp(e Expr) Expr {
	switch n := e.(type) {
	case *App:
		fn := Simp(n.Fun)
		arg := Simp(n.Arg)
		if lam, ok := fn.(*Lambda); ok {
			return Simp(Subst(lam.Body, arg, 1))
		}
		if IsSorry(fn) {
			// SORRY v reduces to v: the escape hatch is unsound by
			// design, not just untyped.
			return arg
		}
		return &App{Token: n.Token, Fun: fn, Arg: arg}
	case *Lambda:
		return &Lambda{Token: n.Token, Head: Simp(n.Head), Body: Simp(n.Body)}
	case *Pi:
		return &Pi{Token: n.Token, Head: Simp(n.Head), Tail: Simp(n.Tail)}
	default:
		return e
	}
}
