package sld

// CPoint is an immutable snapshot of a search state: the goals still to
// be proved, the environment accumulated so far, the clause database
// (together with the index marking where scanning for the current first
// goal should resume), and the renaming depth in effect.
//
// CPoint is a value type. It carries no methods beyond construction and
// field access — the driver owns all the behavior around it.
type CPoint struct {
	Goals GoalSet
	Env   Env
	DB    Database

	// dbStart is the index into DB at which scanning for the current
	// first goal resumes; DB[dbStart:] is the remaining tail to scan.
	dbStart int

	// Depth is the renaming index stamped onto any clause consumed while
	// this choice point is expanded. It strictly increases along any
	// ancestor chain formed by clause expansion, and is preserved across
	// a retry (only dbStart changes).
	Depth uint64
}

// newRoot builds the initial choice point for a query: the full goal-set,
// the caller-supplied starting environment, the whole database, and
// depth 1.
func newRoot(db Database, goals GoalSet, env0 Env) CPoint {
	return CPoint{
		Goals:   goals,
		Env:     env0,
		DB:      db,
		dbStart: 0,
		Depth:   1,
	}
}

// tag identifies which branch of the dispatcher's decision tree a
// solution took.
type tag int

const (
	tagDone tag = iota
	tagOne
	tagFork
	tagFail
)

// solution is the dispatcher's verdict for a single choice point.
type solution struct {
	tag tag

	// env is populated when tag == tagDone.
	env Env

	// one is populated when tag == tagOne (the primitive-solver path:
	// the same choice point, minus its first goal).
	one CPoint

	// expand and retry are populated when tag == tagFork.
	expand CPoint
	retry  CPoint
}
