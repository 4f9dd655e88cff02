// Package sld implements a generic SLD-style resolution engine: the
// choice-point stack, one-step clause matching, variable renaming across
// recursion depths, environment composition, and the pluggable search
// strategies (DFS, BFS, depth-limited DFS) that drive a logic-programming
// query to its answer substitutions.
//
// The package is deliberately agnostic to any concrete term
// representation. Callers supply their own terms, clause heads, goal-sets,
// and environments through the small capability interfaces in this file;
// see internal/termkit for a reference implementation used by this
// package's own tests.
package sld

// Env is an opaque substitution mapping logic variables to terms.
//
// Compose returns the substitution equivalent to applying other first and
// then the receiver — i.e. receiver ∘ other. Implementations must return a
// fresh value and must satisfy empty.Compose(x) == x and x.Compose(empty)
// == x for the identity substitution returned by Empty.
type Env interface {
	// Compose returns receiver ∘ other: apply other, then the receiver.
	Compose(other Env) Env

	// Empty returns the identity substitution for this Env implementation.
	// It exists so the engine never has to know how to construct a
	// concrete Env value from nothing; any Env instance can produce one.
	Empty() Env
}

// Term is a substituted, ground-or-partial value that can attempt to
// unify against a clause head. Implementations are responsible for their
// own unification algorithm (occurs check or not) and variable binding.
type Term interface {
	// Subst returns the term with env applied. It must not mutate env and
	// must not mutate the receiver.
	Subst(env Env) Term

	// Unify attempts to unify the receiver (already substituted by the
	// caller) against head, returning the most general unifier as a fresh
	// Env. ok is false if the two sides do not unify; in that case the
	// returned Env must be ignored.
	Unify(head Head) (Env, bool)
}

// Head is a clause head: the left-hand side a goal is matched against.
// Heads are owned by the clause database and are never mutated in place.
type Head interface {
	// Rename returns a clone of the receiver with every variable it
	// contains stamped with index. Rename must be idempotent for a fixed
	// index: renaming an already-renamed-at-index value again with the
	// same index must be a no-op equivalent to the first rename.
	Rename(index uint64) Head
}

// GoalSet is an ordered conjunction of goals awaiting resolution,
// left-to-right.
type GoalSet interface {
	// Empty reports whether the goal-set has no remaining goals.
	Empty() bool

	// First splits the goal-set into its first goal and the remaining
	// goal-set. It must not be called when Empty() is true.
	First() (goal Term, rest GoalSet)

	// Rename returns a clone of the receiver with every variable it
	// contains stamped with index.
	Rename(index uint64) GoalSet

	// Append returns a fresh goal-set consisting of the receiver's goals
	// followed by other's goals, in order.
	Append(other GoalSet) GoalSet
}

// Body is the right-hand side of a clause: a goal-set that replaces a
// matched goal once its head has unified.
type Body = GoalSet

// Clause is a single (body, head) pair of the clause database.
type Clause struct {
	Body Body
	Head Head
}

// Database is an ordered, indexable, immutable sequence of clauses. The
// engine never mutates a Database and never reorders it; it only takes
// contiguous suffixes ("tails") while scanning for a matching clause.
type Database interface {
	// Len returns the number of clauses in the database.
	Len() int

	// At returns the clause at the given 0-based index. It must not be
	// called with an index outside [0, Len()).
	At(i int) Clause
}

// PrimitiveSolver resolves a goal outside the clause database — for
// arithmetic, I/O, or any other built-in the concrete term language
// wants to support. Returning ok=true short-circuits clause resolution
// for that goal and supplies delta as the environment contribution;
// returning ok=false defers to the one-step resolver.
type PrimitiveSolver func(goal Term, env Env) (delta Env, ok bool)
