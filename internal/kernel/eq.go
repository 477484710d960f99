package kernel

// Eq is structural equality: same constructor, recursively equal
// components. Because binders are anonymised (de Bruijn, not named),
// no alpha-equivalence pass is needed, and the language has no eta.
func Eq(a, b Expr) bool {
	switch x := a.(type) {
	case *Ident:
		y, ok := b.(*Ident)
		return ok && x.Name == y.Name
	case *Ref:
		y, ok := b.(*Ref)
		return ok && x.Index == y.Index
	case *App:
		y, ok := b.(*App)
		return ok && Eq(x.Fun, y.Fun) && Eq(x.Arg, y.Arg)
	case *Lambda:
		y, ok := b.(*Lambda)
		return ok && Eq(x.Head, y.Head) && Eq(x.Body, y.Body)
	case *Pi:
		y, ok := b.(*Pi)
		return ok && Eq(x.Head, y.Head) && Eq(x.Tail, y.Tail)
	default:
		return false
	}
}
