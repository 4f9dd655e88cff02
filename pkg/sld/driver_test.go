package sld_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clauseforge/sldcore/internal/termkit"
	"github.com/clauseforge/sldcore/pkg/sld"
)

func atom(v interface{}) termkit.Atom { return termkit.NewAtom(v) }

func compound(functor string, args ...termkit.Value) *termkit.Compound {
	return termkit.NewCompound(functor, args...)
}

func familyDB(t *testing.T) *termkit.Program {
	t.Helper()
	x, y, z := termkit.NewVar("X"), termkit.NewVar("Y"), termkit.NewVar("Z")
	db, err := termkit.NewProgram(
		termkit.Fact(compound("parent", atom("alice"), atom("bob"))),
		termkit.Fact(compound("parent", atom("bob"), atom("carol"))),
		termkit.Rule(compound("ancestor", x, y), compound("parent", x, y)),
		termkit.Rule(compound("ancestor", x, y), compound("parent", x, z), compound("ancestor", z, y)),
	)
	require.NoError(t, err)
	return db
}

func listDB(t *testing.T) *termkit.Program {
	t.Helper()
	h, t1, l, r := termkit.NewVar("H"), termkit.NewVar("T"), termkit.NewVar("L"), termkit.NewVar("R")
	db, err := termkit.NewProgram(
		termkit.Fact(compound("member", h, termkit.Cons(h, termkit.Anon()))),
		termkit.Rule(compound("member", termkit.NewVar("X"), termkit.Cons(termkit.Anon(), t1)),
			compound("member", termkit.NewVar("X"), t1)),
		termkit.Fact(compound("append", termkit.Nil, l, l)),
		termkit.Rule(compound("append", termkit.Cons(h, t1), l, termkit.Cons(h, r)),
			compound("append", t1, l, r)),
	)
	require.NoError(t, err)
	return db
}

func drain(t *testing.T, d *sld.Driver, max int) []sld.Env {
	t.Helper()
	var out []sld.Env
	for i := 0; i < max; i++ {
		env, ok, err := d.Next(context.Background())
		require.NoError(t, err)
		if !ok {
			break
		}
		out = append(out, env)
	}
	return out
}

func TestFactsOnly(t *testing.T) {
	db := familyDB(t)
	goal := termkit.Goals(compound("parent", termkit.NewVar("X"), atom("bob")))

	d, err := sld.SolveGoals(db, goal, termkit.NewBindings(), nil)
	require.NoError(t, err)

	envs := drain(t, d, 10)
	require.Len(t, envs, 1)
	require.Equal(t, atom("alice"), termkit.Reify(termkit.NewVar("X"), envs[0]))
}

func TestRecursiveAncestor(t *testing.T) {
	db := familyDB(t)
	goal := termkit.Goals(compound("ancestor", atom("alice"), termkit.NewVar("W")))

	d, err := sld.SolveGoals(db, goal, termkit.NewBindings(), nil)
	require.NoError(t, err)

	envs := drain(t, d, 10)
	require.Len(t, envs, 2)
	require.Equal(t, atom("bob"), termkit.Reify(termkit.NewVar("W"), envs[0]))
	require.Equal(t, atom("carol"), termkit.Reify(termkit.NewVar("W"), envs[1]))
}

func TestListMembership(t *testing.T) {
	db := listDB(t)
	goal := termkit.Goals(compound("member", atom(2), termkit.List(atom(1), atom(2), atom(3))))

	d, err := sld.SolveGoals(db, goal, termkit.NewBindings(), nil)
	require.NoError(t, err)

	envs := drain(t, d, 10)
	require.Len(t, envs, 1)
}

func TestMultipleAnswersBacktracking(t *testing.T) {
	db := listDB(t)
	goal := termkit.Goals(compound("member", termkit.NewVar("X"), termkit.List(atom("a"), atom("b"), atom("a"))))

	d, err := sld.SolveGoals(db, goal, termkit.NewBindings(), nil)
	require.NoError(t, err)

	envs := drain(t, d, 10)
	require.Len(t, envs, 3)
	require.Equal(t, atom("a"), termkit.Reify(termkit.NewVar("X"), envs[0]))
	require.Equal(t, atom("b"), termkit.Reify(termkit.NewVar("X"), envs[1]))
	require.Equal(t, atom("a"), termkit.Reify(termkit.NewVar("X"), envs[2]))
}

func TestAppend(t *testing.T) {
	db := listDB(t)
	goal := termkit.Goals(compound("append",
		termkit.List(atom(1), atom(2)), termkit.List(atom(3), atom(4)), termkit.NewVar("Q")))

	d, err := sld.SolveGoals(db, goal, termkit.NewBindings(), nil)
	require.NoError(t, err)

	envs := drain(t, d, 10)
	require.Len(t, envs, 1)
	require.Equal(t, termkit.List(atom(1), atom(2), atom(3), atom(4)), termkit.Reify(termkit.NewVar("Q"), envs[0]))
}

func TestPrimitiveShortCircuit(t *testing.T) {
	db, err := termkit.NewProgram(
		termkit.Fact(compound("small", atom(1))),
		termkit.Fact(compound("small", atom(2))),
		termkit.Fact(compound("small", atom(3))),
		termkit.Fact(compound("small", atom(4))),
	)
	require.NoError(t, err)

	primitive := func(goal sld.Term, env sld.Env) (sld.Env, bool) {
		g, ok := goal.(termkit.Goal)
		if !ok || g.Functor != "is_even" || len(g.Args) != 1 {
			return nil, false
		}
		reified := termkit.Reify(g.Args[0], env)
		n, ok := reified.(termkit.Atom)
		if !ok {
			return nil, false
		}
		val, ok := n.Value().(int)
		if !ok || val%2 != 0 {
			return nil, false
		}
		return termkit.NewBindings(), true
	}

	goal := termkit.Goals(
		compound("small", termkit.NewVar("X")),
		compound("is_even", termkit.NewVar("X")),
	)

	d, err := sld.SolveGoals(db, goal, termkit.NewBindings(), primitive)
	require.NoError(t, err)

	envs := drain(t, d, 10)
	require.Len(t, envs, 2)
	require.Equal(t, atom(2), termkit.Reify(termkit.NewVar("X"), envs[0]))
	require.Equal(t, atom(4), termkit.Reify(termkit.NewVar("X"), envs[1]))
}

func TestDepthLimitedIncompleteness(t *testing.T) {
	db, err := termkit.NewProgram(
		termkit.Rule(compound("loop"), compound("loop")),
		termkit.Fact(compound("base")),
	)
	require.NoError(t, err)

	opts, err := sld.NewDLS(10, nil)
	require.NoError(t, err)

	d, err := sld.SolveGoalsWith(db, termkit.Goals(compound("loop")), termkit.NewBindings(), nil, opts)
	require.NoError(t, err)

	_, ok, err := d.Next(context.Background())
	require.NoError(t, err)
	require.False(t, ok)

	opts1, err := sld.NewDLS(1, nil)
	require.NoError(t, err)
	d2, err := sld.SolveGoalsWith(db, termkit.Goals(compound("base")), termkit.NewBindings(), nil, opts1)
	require.NoError(t, err)

	_, ok, err = d2.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
}

func TestNewDLSRejectsZero(t *testing.T) {
	_, err := sld.NewDLS(0, nil)
	require.Error(t, err)
}

func TestEmptyGoalSetIsImmediateDone(t *testing.T) {
	db, err := termkit.NewProgram()
	require.NoError(t, err)

	d, err := sld.SolveGoals(db, termkit.Conjunction{}, termkit.NewBindings(), nil)
	require.NoError(t, err)

	_, ok, err := d.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = d.Next(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBFSVisitsShallowerForksFirst(t *testing.T) {
	// A database whose first matching clause recurses one level deeper
	// before the alternative branch is even considered: under DFS the
	// search descends into the recursive branch forever and never yields;
	// under BFS the shallow sibling answer surfaces first.
	x := termkit.NewVar("X")
	db, err := termkit.NewProgram(
		termkit.Rule(compound("p", x), compound("p", x)), // never succeeds, recurses forever
		termkit.Fact(compound("p", atom("shallow"))),
	)
	require.NoError(t, err)

	d, err := sld.SolveGoalsWith(db, termkit.Goals(compound("p", termkit.NewVar("Y"))),
		termkit.NewBindings(), nil, sld.DriverOptions{Strategy: sld.StrategyBFS})
	require.NoError(t, err)

	env, ok, err := d.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, atom("shallow"), termkit.Reify(termkit.NewVar("Y"), env))
}

func TestClauseOrderDeterminism(t *testing.T) {
	forward, err := termkit.NewProgram(
		termkit.Fact(compound("color", atom("red"))),
		termkit.Fact(compound("color", atom("green"))),
		termkit.Fact(compound("color", atom("blue"))),
	)
	require.NoError(t, err)

	reversed, err := termkit.NewProgram(
		termkit.Fact(compound("color", atom("blue"))),
		termkit.Fact(compound("color", atom("green"))),
		termkit.Fact(compound("color", atom("red"))),
	)
	require.NoError(t, err)

	run := func(db *termkit.Program) []termkit.Value {
		d, err := sld.SolveGoals(db, termkit.Goals(compound("color", termkit.NewVar("C"))), termkit.NewBindings(), nil)
		require.NoError(t, err)
		var out []termkit.Value
		for _, env := range drain(t, d, 10) {
			out = append(out, termkit.Reify(termkit.NewVar("C"), env))
		}
		return out
	}

	fwd := run(forward)
	rev := run(reversed)
	require.Equal(t, []termkit.Value{atom("red"), atom("green"), atom("blue")}, fwd)
	require.Equal(t, []termkit.Value{atom("blue"), atom("green"), atom("red")}, rev)
}

func TestLazyExhaustionStopsEarly(t *testing.T) {
	// A predicate with an infinite answer sequence (one fact plus a
	// self-recursive rule); taking one answer must not force the
	// resolver to scan past the first matching clause.
	x := termkit.NewVar("X")
	db, err := termkit.NewProgram(
		termkit.Fact(compound("nat", atom(0))),
		termkit.Rule(compound("nat", x), compound("nat", x)), // would recurse forever if ever reached
	)
	require.NoError(t, err)

	d, err := sld.SolveGoals(db, termkit.Goals(compound("nat", termkit.NewVar("N"))), termkit.NewBindings(), nil)
	require.NoError(t, err)

	env, ok, err := d.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, atom(0), termkit.Reify(termkit.NewVar("N"), env))
}

func TestContextCancellation(t *testing.T) {
	db, err := termkit.NewProgram(termkit.Fact(compound("base")))
	require.NoError(t, err)

	d, err := sld.SolveGoals(db, termkit.Goals(compound("base")), termkit.NewBindings(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = d.Next(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
