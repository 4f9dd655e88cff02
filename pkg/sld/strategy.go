package sld

// Strategy selects the search policy over the choice-point tree.
type Strategy int

const (
	// StrategyDFS explores the chosen clause immediately on a fork,
	// retrying later clauses only once that subtree is exhausted. This
	// is the classic left-to-right, depth-first SLD order.
	StrategyDFS Strategy = iota

	// StrategyBFS explores the choice-point tree in level order: both
	// branches of a fork are enqueued, and the driver always dequeues
	// the oldest pending choice point. Unlike a LIFO re-ordering trick,
	// this is true breadth-first order.
	StrategyBFS

	// StrategyDLS is depth-first search bounded by a fixed renaming
	// depth: any clause expansion that would exceed the bound is
	// treated as failure instead. Sound but incomplete.
	StrategyDLS
)

func (s Strategy) String() string {
	switch s {
	case StrategyDFS:
		return "dfs"
	case StrategyBFS:
		return "bfs"
	case StrategyDLS:
		return "dls"
	default:
		return "unknown"
	}
}

// frontier is the driver's choice-point container. DFS and DLS treat it
// as a LIFO stack; BFS treats it as a FIFO queue. Both behaviors share a
// backing slice: the only difference is which end Pop reads from.
type frontier struct {
	items    []CPoint
	headIdx  int // consumed prefix for FIFO mode; unused in LIFO mode
	strategy Strategy
}

func newFrontier(strategy Strategy, root CPoint) *frontier {
	f := &frontier{strategy: strategy}
	f.items = append(f.items, root)
	return f
}

func (f *frontier) empty() bool {
	return f.headIdx >= len(f.items)
}

// pushOne pushes the single successor produced by a primitive-solver
// step (Solution tag One).
func (f *frontier) pushOne(cp CPoint) {
	f.items = append(f.items, cp)
}

// pushFork pushes both successors of a clause-resolution fork, ordered
// so that Pop respects the configured strategy.
func (f *frontier) pushFork(expand, retry CPoint) {
	switch f.strategy {
	case StrategyBFS:
		// Enqueue both at the back, expand before retry, so dequeue
		// order across a whole frontier level stays left-to-right.
		f.items = append(f.items, expand, retry)
	default: // StrategyDFS, StrategyDLS
		// Push retry first so expand sits on top and is popped next.
		f.items = append(f.items, retry, expand)
	}
}

// pop removes and returns the next choice point to dispatch.
func (f *frontier) pop() (CPoint, bool) {
	if f.empty() {
		return CPoint{}, false
	}

	switch f.strategy {
	case StrategyBFS:
		cp := f.items[f.headIdx]
		f.items[f.headIdx] = CPoint{} // drop references promptly
		f.headIdx++
		// Reclaim the consumed prefix once it dominates the slice, so a
		// long-running BFS query doesn't grow memory unbounded.
		if f.headIdx > 64 && f.headIdx*2 > len(f.items) {
			f.items = append([]CPoint(nil), f.items[f.headIdx:]...)
			f.headIdx = 0
		}
		return cp, true
	default: // StrategyDFS, StrategyDLS
		last := len(f.items) - 1
		cp := f.items[last]
		f.items[last] = CPoint{}
		f.items = f.items[:last]
		return cp, true
	}
}

// size returns the number of choice points currently pending, used only
// for diagnostic logging.
func (f *frontier) size() int {
	return len(f.items) - f.headIdx
}
