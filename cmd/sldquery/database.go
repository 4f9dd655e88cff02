package main

import (
	"fmt"

	"github.com/clauseforge/sldcore/internal/termkit"
	"github.com/clauseforge/sldcore/pkg/sld"
)

func atom(v interface{}) termkit.Atom { return termkit.NewAtom(v) }

func c(functor string, args ...termkit.Value) *termkit.Compound {
	return termkit.NewCompound(functor, args...)
}

// buildDatabase returns the family-relationship and list-membership
// database used by the end-to-end scenarios this library's tests also
// exercise (parent/ancestor facts and rules, member/2, append/3).
func buildDatabase() (*termkit.Program, error) {
	x, y, z := termkit.NewVar("X"), termkit.NewVar("Y"), termkit.NewVar("Z")
	h, t, l, r := termkit.NewVar("H"), termkit.NewVar("T"), termkit.NewVar("L"), termkit.NewVar("R")

	return termkit.NewProgram(
		termkit.Fact(c("parent", atom("alice"), atom("bob"))),
		termkit.Fact(c("parent", atom("bob"), atom("carol"))),

		termkit.Rule(c("ancestor", x, y),
			c("parent", x, y)),
		termkit.Rule(c("ancestor", x, y),
			c("parent", x, z), c("ancestor", z, y)),

		termkit.Fact(c("member", h, termkit.Cons(h, termkit.Anon()))),
		termkit.Rule(c("member", x, termkit.Cons(termkit.Anon(), t)),
			c("member", x, t)),

		termkit.Fact(c("append", termkit.Nil, l, l)),
		termkit.Rule(c("append", termkit.Cons(h, t), l, termkit.Cons(h, r)),
			c("append", t, l, r)),

		termkit.Fact(c("loop")),
		termkit.Rule(c("loop"), c("loop")),
		termkit.Fact(c("base")),
	)
}

// buildGoal resolves one of the canned demonstration queries by name.
func buildGoal(name string) (sld.GoalSet, error) {
	switch name {
	case "ancestor":
		return termkit.Goals(c("ancestor", atom("alice"), termkit.NewVar("W"))), nil
	case "member":
		return termkit.Goals(c("member", termkit.NewVar("X"),
			termkit.List(atom("a"), atom("b"), atom("a")))), nil
	case "append":
		return termkit.Goals(c("append",
			termkit.List(atom(1), atom(2)),
			termkit.List(atom(3), atom(4)),
			termkit.NewVar("Q"))), nil
	case "loop":
		return termkit.Goals(c("loop")), nil
	case "base":
		return termkit.Goals(c("base")), nil
	default:
		return nil, fmt.Errorf("sldquery: unknown demonstration goal %q (want ancestor, member, append, loop, or base)", name)
	}
}
