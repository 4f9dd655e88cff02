package termkit

import (
	"strings"

	"github.com/clauseforge/sldcore/pkg/sld"
)

// Conjunction is an ordered sequence of goals; it implements
// sld.GoalSet (and, since a clause body is just a goal-set, sld.Body).
type Conjunction []Goal

// Goals builds a Conjunction from compound terms.
func Goals(cs ...*Compound) Conjunction {
	out := make(Conjunction, len(cs))
	for i, c := range cs {
		out[i] = NewGoal(c)
	}
	return out
}

// Empty implements sld.GoalSet.
func (cj Conjunction) Empty() bool { return len(cj) == 0 }

// First implements sld.GoalSet.
func (cj Conjunction) First() (sld.Term, sld.GoalSet) {
	return cj[0], cj[1:]
}

// Rename implements sld.GoalSet. Each goal is renamed independently,
// but renameValue is deterministic in (Name, index), so a variable name
// shared across multiple goals in the conjunction — or across this body
// and its clause's head, renamed via a separate call — ends up with an
// identical renamed identity without any shared state between calls.
func (cj Conjunction) Rename(index uint64) sld.GoalSet {
	out := make(Conjunction, len(cj))
	for i, g := range cj {
		out[i] = Goal{Compound: renameValue(g.Compound, index).(*Compound)}
	}
	return out
}

// Append implements sld.GoalSet.
func (cj Conjunction) Append(other sld.GoalSet) sld.GoalSet {
	oc, ok := other.(Conjunction)
	if !ok {
		panic("termkit: Append called with a foreign GoalSet implementation")
	}
	out := make(Conjunction, 0, len(cj)+len(oc))
	out = append(out, cj...)
	out = append(out, oc...)
	return out
}

func (cj Conjunction) String() string {
	parts := make([]string, len(cj))
	for i, g := range cj {
		parts[i] = g.String()
	}
	return strings.Join(parts, ", ")
}
