// Package environment holds the ordered global mapping from names to
// declarations that the driver builds up one declaration at a time.
package environment

import "github.com/funvibe/proofcheck/internal/kernel"

// Declaration is one bound name: its declared type, and, unless it is
// an axiom, the kernel expression that inhabits it.
type Declaration struct {
	Name string
	Ty   kernel.Expr
	Def  kernel.Expr // nil for an axiom
}

// IsAxiom reports whether this declaration has no defining body.
func (d *Declaration) IsAxiom() bool { return d.Def == nil }

// Environment is the append-only, ordered global environment of
// names are never mutated once bound, only appended
// (re-declaring a name shadows the earlier one: the name stays in
// Order twice, but Get, Lookup and the dump see only the latest binding).
type Environment struct {
	Order []string
	decls map[string]*Declaration
}

// New returns an environment seeded with Type and SORRY.
func New() *Environment {
	env := &Environment{decls: make(map[string]*Declaration)}
	env.Extend(kernel.TypeName, &kernel.ErrorSentinel{}, nil)
	env.Extend(kernel.SorryName, &kernel.SorrySentinel{}, nil)
	return env
}

// Extend appends a new declaration. A duplicate name shadows the prior
// binding for Lookup but both entries remain in Order.
func (env *Environment) Extend(name string, ty, def kernel.Expr) {
	env.Order = append(env.Order, name)
	env.decls[name] = &Declaration{Name: name, Ty: ty, Def: def}
}

// Lookup implements kernel.Global: it is how the resolver finds a
// global's stored type and, if present, its body to inline.
func (env *Environment) Lookup(name string) (ty kernel.Expr, def kernel.Expr, hasDef bool, ok bool) {
	d, ok := env.decls[name]
	if !ok {
		return nil, nil, false, false
	}
	return d.Ty, d.Def, d.Def != nil, true
}

// Get returns the current declaration bound to name, if any.
func (env *Environment) Get(name string) (*Declaration, bool) {
	d, ok := env.decls[name]
	return d, ok
}

var _ kernel.Global = (*Environment)(nil)
