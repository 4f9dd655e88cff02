package termkit

import "github.com/clauseforge/sldcore/pkg/sld"

// Bindings is an association map from variable keys to terms; it
// satisfies sld.Env.
type Bindings struct {
	m map[varKey]Value
}

// NewBindings returns the identity substitution.
func NewBindings() *Bindings {
	return &Bindings{m: make(map[varKey]Value)}
}

// Empty implements sld.Env.
func (b *Bindings) Empty() sld.Env { return NewBindings() }

// Compose implements sld.Env: the receiver plays the role of `a` and
// other plays the role of `b` in compose(a, b) = "apply b then a". A
// variable bound directly by other (b) takes priority on conflict,
// since b is applied first; walking through the merged map still lets
// a variable resolved only by other (b) continue resolving through
// receiver's (a's) bindings, reproducing full composition.
func (b *Bindings) Compose(other sld.Env) sld.Env {
	ob, ok := other.(*Bindings)
	if !ok {
		panic("termkit: Compose called with a foreign Env implementation")
	}

	merged := make(map[varKey]Value, len(b.m)+len(ob.m))
	for k, v := range b.m {
		merged[k] = v
	}
	for k, v := range ob.m {
		merged[k] = v
	}
	return &Bindings{m: merged}
}

// bind returns a fresh Bindings with one extra mapping.
func (b *Bindings) bind(v *Var, val Value) *Bindings {
	next := make(map[varKey]Value, len(b.m)+1)
	for k, existing := range b.m {
		next[k] = existing
	}
	next[v.key()] = val
	return &Bindings{m: next}
}

// walk follows a chain of variable bindings to a non-variable term or an
// unbound variable.
func (b *Bindings) walk(v Value) Value {
	for {
		lv, ok := v.(*Var)
		if !ok {
			return v
		}
		bound, found := b.m[lv.key()]
		if !found {
			return v
		}
		v = bound
	}
}

// Size returns the number of direct bindings, for diagnostics.
func (b *Bindings) Size() int { return len(b.m) }

// Lookup walks v fully and reports the result together with whether any
// binding at all was followed.
func (b *Bindings) Lookup(v Value) (Value, bool) {
	walked := b.walk(v)
	return walked, walked != v
}
