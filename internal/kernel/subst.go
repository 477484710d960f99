package kernel

// Shift adds k to the index of every Ref in e. It does not track
// depth: shifts are applied during substitution to a value that is
// being relocated wholesale into a new binder context, so every free
// reference inside it needs the same adjustment, regardless of how
// deep inside e (syntactically) that reference sits.
func Shift(e Expr, k int) Expr {
	if k == 0 {
		return e
	}
	switch n := e.(type) {
	case *Ref:
		return &Ref{Token: n.Token, Index: n.Index + k}
	case *App:
		return &App{Token: n.Token, Fun: Shift(n.Fun, k), Arg: Shift(n.Arg, k)}
	case *Pi:
		return &Pi{Token: n.Token, Head: Shift(n.Head, k), Tail: Shift(n.Tail, k)}
	case *Lambda:
		return &Lambda{Token: n.Token, Head: Shift(n.Head, k), Body: Shift(n.Body, k)}
	case *Ident:
		return n
	default:
		return e
	}
}

// Subst replaces the binder at depth inside tail with value, then
// contracts tail's index space to account for the eliminated binder.
// depth counts from 1 (the innermost).
//
// The critical, easy-to-get-wrong case is Ref(depth) == the binder
// being eliminated: value is substituted in at a position depth-1
// binders deeper than where it was originally well-scoped (every
// binder strictly between the substitution site and the top of tail
// that isn't the one being eliminated), so any free Ref inside value
// must be shifted up by depth-1 to keep pointing at the same outer
// binder. Deriving this from "a free reference must still name the
// same thing after the substituted term moves under more binders" is
// the only way to get it right — copying the formula without that
// invariant in mind is how off-by-one errors creep back in.
func Subst(tail Expr, value Expr, depth int) Expr {
	switch n := tail.(type) {
	case *Ref:
		switch {
		case n.Index == depth:
			return Shift(value, depth-1)
		case n.Index > depth:
			return &Ref{Token: n.Token, Index: n.Index - 1}
		default:
			return n
		}
	case *App:
		return &App{Token: n.Token, Fun: Subst(n.Fun, value, depth), Arg: Subst(n.Arg, value, depth)}
	case *Pi:
		return &Pi{Token: n.Token, Head: Subst(n.Head, value, depth), Tail: Subst(n.Tail, value, depth+1)}
	case *Lambda:
		return &Lambda{Token: n.Token, Head: Subst(n.Head, value, depth), Body: Subst(n.Body, value, depth+1)}
	case *Ident:
		return n
	default:
		return tail
	}
}
