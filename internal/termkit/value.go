// Package termkit is a reference implementation of the term, head,
// goal-set, and environment capabilities that package sld's resolution
// engine requires (see sld.Term, sld.Head, sld.GoalSet, and sld.Env). It
// exists to exercise the engine end to end in tests and in the sldquery
// demonstration command; the engine itself never imports
// this package.
//
// Terms are first-order: atoms, logic variables, and compound structures
// (functor plus argument list). Prolog-style lists are sugar over cons
// compounds with functor "." and the atom "[]" as the empty list, which
// is enough to express relations like member/2 and append/3.
//
// The unifier performs no occurs check, a deliberate simplification: the
// concrete unification algorithm, occurs check included, is this
// package's concern, not the resolution engine's.
package termkit

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Value is any term: an Atom, a *Var, or a *Compound.
type Value interface {
	fmt.Stringer
	isValue()
}

// Atom is a ground, atomic value: a symbol, number, string, or any
// comparable Go value used as one.
type Atom struct {
	val interface{}
}

// NewAtom wraps a comparable Go value as an Atom.
func NewAtom(v interface{}) Atom { return Atom{val: v} }

func (a Atom) isValue() {}
func (a Atom) String() string {
	return fmt.Sprintf("%v", a.val)
}

// Equal reports whether two atoms carry the same underlying value.
func (a Atom) Equal(other Atom) bool { return a.val == other.val }

// Value returns the underlying Go value wrapped by the atom.
func (a Atom) Value() interface{} { return a.val }

// Var is a logic variable identified by (Name, Index). Fresh variables are
// built with index 0 via NewVar; the engine-facing Rename transition
// from 0 to a positive depth happens exactly once per clause selection,
// so a query's own variables (always index 0) never collide with a
// clause's variables (always renamed to index >= 1 before they enter
// any goal-set the engine dispatches).
type Var struct {
	Name  string
	Index uint64
}

// NewVar creates a fresh, unrenamed logic variable. Index is always 0;
// it is not a constructor parameter so a caller cannot accidentally
// manufacture a variable that collides with a renamed clause variable.
func NewVar(name string) *Var { return &Var{Name: name} }

var anonCounter uint64

// Anon returns a wildcard variable with a name guaranteed unique among
// calls to Anon, so two unrelated "don't care" positions — even within
// the same clause — never accidentally unify with each other once
// renamed. Plain NewVar is for named variables the clause author
// intends to share across multiple positions.
func Anon() *Var {
	n := atomic.AddUint64(&anonCounter, 1)
	return &Var{Name: fmt.Sprintf("_anon%d", n)}
}

func (v *Var) isValue() {}
func (v *Var) String() string {
	if v.Index == 0 {
		return "_" + v.Name
	}
	return fmt.Sprintf("_%s#%d", v.Name, v.Index)
}

func (v *Var) key() varKey { return varKey{v.Name, v.Index} }

type varKey struct {
	name  string
	index uint64
}

// Compound is a functor applied to zero or more arguments:
// parent(alice, bob), ancestor(X, Y), or a zero-arity atomic goal such
// as base (represented as Compound{Functor: "base"}).
type Compound struct {
	Functor string
	Args    []Value
}

// NewCompound builds a compound term.
func NewCompound(functor string, args ...Value) *Compound {
	return &Compound{Functor: functor, Args: args}
}

func (c *Compound) isValue() {}
func (c *Compound) String() string {
	if len(c.Args) == 0 {
		return c.Functor
	}
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Functor + "(" + strings.Join(parts, ", ") + ")"
}

// Nil is the empty-list atom, conventionally written [].
var Nil = NewAtom("[]")

const consFunctor = "."

// Cons builds a single list cell head :: tail.
func Cons(head, tail Value) *Compound {
	return NewCompound(consFunctor, head, tail)
}

// List builds a proper Prolog-style list from the given elements,
// terminated by Nil.
func List(elems ...Value) Value {
	var tail Value = Nil
	for i := len(elems) - 1; i >= 0; i-- {
		tail = Cons(elems[i], tail)
	}
	return tail
}

func isCons(v Value) (*Compound, bool) {
	c, ok := v.(*Compound)
	if !ok || c.Functor != consFunctor || len(c.Args) != 2 {
		return nil, false
	}
	return c, true
}
