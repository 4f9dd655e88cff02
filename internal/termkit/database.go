// database.go adapts pldb's relation/fact bookkeeping (name, arity,
// indexed columns) into a plain ordered clause list: the generic
// resolution engine only needs Len/At over (body, head) pairs, so the
// indexing half of pldb's design is intentionally not carried over here
// (clause indexing is a named Non-goal of the engine itself).
package termkit

import (
	"fmt"

	"github.com/clauseforge/sldcore/pkg/sld"
	"github.com/hashicorp/go-multierror"
)

// Program is an ordered, immutable clause database: the concrete
// sld.Database this package supplies.
type Program struct {
	clauses []sld.Clause
}

// Len implements sld.Database.
func (p *Program) Len() int { return len(p.clauses) }

// At implements sld.Database.
func (p *Program) At(i int) sld.Clause { return p.clauses[i] }

// ClauseSpec is a (head, body) pair as supplied by a program builder,
// before it is checked and frozen into a Program.
type ClauseSpec struct {
	Head *Compound
	Body Conjunction // nil or empty means a fact
}

// Fact is shorthand for a ClauseSpec with an empty body.
func Fact(head *Compound) ClauseSpec { return ClauseSpec{Head: head} }

// Rule is shorthand for a ClauseSpec with a non-empty body.
func Rule(head *Compound, body ...*Compound) ClauseSpec {
	return ClauseSpec{Head: head, Body: Goals(body...)}
}

// NewProgram validates and freezes a sequence of clause specs into a
// Program. Validation failures (a nil head, or a head whose arity
// disagrees with an earlier clause of the same functor — almost always
// a copy-paste mistake in a hand-built database) are collected rather
// than reported one at a time, so a caller building a database by hand
// sees every problem in one pass.
func NewProgram(specs ...ClauseSpec) (*Program, error) {
	var errs *multierror.Error
	arities := make(map[string]int, len(specs))

	clauses := make([]sld.Clause, 0, len(specs))
	for i, spec := range specs {
		if spec.Head == nil {
			errs = multierror.Append(errs, fmt.Errorf("clause %d: nil head", i))
			continue
		}
		if want, seen := arities[spec.Head.Functor]; seen && want != len(spec.Head.Args) {
			errs = multierror.Append(errs, fmt.Errorf(
				"clause %d: %s/%d disagrees with an earlier %s/%d clause",
				i, spec.Head.Functor, len(spec.Head.Args), spec.Head.Functor, want))
			continue
		}
		arities[spec.Head.Functor] = len(spec.Head.Args)

		clauses = append(clauses, sld.Clause{
			Head: NewGoal(spec.Head),
			Body: spec.Body,
		})
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return &Program{clauses: clauses}, nil
}
