package sld

import (
	"fmt"

	"github.com/pkg/errors"
)

// ContractViolationError wraps a panic raised by a term-capability
// callback (Rename, Subst, Unify, or Env.Compose). The dispatcher treats
// such a panic as a defect in the caller-supplied term layer, not in the
// search itself, and surfaces it as a normal error from Driver.Next
// instead of crashing the process.
type ContractViolationError struct {
	Goal  Term
	Panic interface{}
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("sld: term-capability callback panicked for goal %v: %v", e.Goal, e.Panic)
}

// dispatch classifies a single choice point: emit an answer, try the
// primitive solver, fall back to the one-step resolver, or report
// failure. depthBound is 0 for unbounded strategies (DFS, BFS) and a
// positive depth for DLS(n); a clause match at a choice point whose own
// depth exceeds the bound (so the clause would be renamed at a depth
// beyond n) is reported as Fail instead of a Fork. cp_expand choice
// points therefore reach depth n+1 at most: at most n clause expansions
// lie along any branch.
func dispatch(cp CPoint, solvePrimitive PrimitiveSolver, depthBound uint64) (sol solution, err error) {
	defer func() {
		if r := recover(); r != nil {
			var g Term
			if !cp.Goals.Empty() {
				g, _ = cp.Goals.First()
			}
			err = &ContractViolationError{Goal: g, Panic: r}
		}
	}()

	if cp.Goals.Empty() {
		return solution{tag: tagDone, env: cp.Env}, nil
	}

	goal, rest := cp.Goals.First()

	if solvePrimitive != nil {
		if delta, ok := solvePrimitive(goal, cp.Env); ok {
			next := cp
			next.Goals = rest
			next.Env = delta.Compose(cp.Env)
			return solution{tag: tagOne, one: next}, nil
		}
	}

	body, env2, dbNext, matched := resolveOneStep(goal, cp.Env, cp.DB, cp.dbStart, cp.Depth)
	if !matched {
		return solution{tag: tagFail}, nil
	}

	if depthBound > 0 && cp.Depth > depthBound {
		return solution{tag: tagFail}, nil
	}

	expand := CPoint{
		Goals:   body.Append(rest),
		Env:     env2,
		DB:      cp.DB,
		dbStart: 0,
		Depth:   cp.Depth + 1,
	}
	retry := cp
	retry.dbStart = dbNext

	return solution{tag: tagFork, expand: expand, retry: retry}, nil
}

// errInvalidDepthBound is returned by NewDLS for a non-positive depth.
var errInvalidDepthBound = errors.New("sld: DLS depth bound must be >= 1")
