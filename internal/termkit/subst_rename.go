package termkit

import "github.com/clauseforge/sldcore/pkg/sld"

// substValue walks v under b and, for a compound, rebuilds it with every
// argument recursively substituted. Atoms and unbound variables are
// returned unchanged.
func substValue(v Value, b *Bindings) Value {
	v = b.walk(v)
	c, ok := v.(*Compound)
	if !ok {
		return v
	}
	newArgs := make([]Value, len(c.Args))
	for i, a := range c.Args {
		newArgs[i] = substValue(a, b)
	}
	return &Compound{Functor: c.Functor, Args: newArgs}
}

// renameValue replaces every unrenamed (Index == 0) variable in v with
// the corresponding variable at the given index. The mapping is a pure
// function of (Name, index), so calling renameValue independently on a
// clause's head and on its body — as package sld does — still produces
// matching variable identities for names shared between the two. An
// already-renamed variable (Index != 0) is left untouched, which is
// what makes Rename idempotent for a fixed index: repeated calls against
// the same immutable, never-renamed clause template are reproducible.
func renameValue(v Value, index uint64) Value {
	switch t := v.(type) {
	case *Var:
		if t.Index != 0 {
			return t
		}
		return &Var{Name: t.Name, Index: index}
	case *Compound:
		newArgs := make([]Value, len(t.Args))
		for i, a := range t.Args {
			newArgs[i] = renameValue(a, index)
		}
		return &Compound{Functor: t.Functor, Args: newArgs}
	default:
		return v
	}
}

// Goal adapts a *Compound so it implements sld.Term and sld.Head, the
// two capability interfaces the engine needs for a single goal/clause
// head. A Goal is just a *Compound viewed through the engine's eyes.
type Goal struct {
	*Compound
}

// NewGoal wraps a compound as an engine-facing goal/head.
func NewGoal(c *Compound) Goal { return Goal{Compound: c} }

// Subst implements sld.Term.
func (g Goal) Subst(env sld.Env) sld.Term {
	b, ok := env.(*Bindings)
	if !ok {
		panic("termkit: Subst called with a foreign Env implementation")
	}
	return Goal{Compound: substValue(g.Compound, b).(*Compound)}
}

// Unify implements sld.Term: g must already be substituted by the
// caller (package sld does this before calling Unify).
func (g Goal) Unify(head sld.Head) (sld.Env, bool) {
	h, ok := head.(Goal)
	if !ok {
		panic("termkit: Unify called against a foreign Head implementation")
	}
	result, ok := unify(g.Compound, h.Compound, NewBindings())
	if !ok {
		return nil, false
	}
	return result, true
}

// Rename implements sld.Head.
func (g Goal) Rename(index uint64) sld.Head {
	return Goal{Compound: renameValue(g.Compound, index).(*Compound)}
}
