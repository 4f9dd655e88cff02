package sld

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DriverOptions configures a Driver. The zero value is DFS with no
// logging and no step budget, which matches SolveGoals's defaults.
type DriverOptions struct {
	Strategy Strategy

	// DepthBound is only consulted when Strategy == StrategyDLS, and
	// must then be >= 1. NewDLS builds a DriverOptions with this field
	// already validated.
	DepthBound uint64

	// Logger receives per-step diagnostics at Debug level and
	// term-layer contract violations at Error level. A nil Logger
	// disables logging entirely (a discard logger is installed
	// internally so the driver's own code never has to nil-check it).
	Logger *logrus.Logger

	// StepBudget caps the number of choice points the driver will
	// dispatch before Next gives up with an error. Zero means
	// unbounded. This is a safety valve for runaway or buggy primitive
	// solvers; it is not part of the resolution semantics.
	StepBudget uint64
}

// NewDLS builds DriverOptions for depth-limited search, rejecting a
// non-positive bound at construction time rather than deferring the
// problem to an empty answer sequence discovered only at iteration time.
func NewDLS(depthBound uint64, logger *logrus.Logger) (DriverOptions, error) {
	if depthBound == 0 {
		return DriverOptions{}, errors.Wrap(errInvalidDepthBound, "sld.NewDLS")
	}
	return DriverOptions{Strategy: StrategyDLS, DepthBound: depthBound, Logger: logger}, nil
}

// Driver owns the choice-point frontier for one query and yields answer
// environments lazily through repeated calls to Next. A Driver is not
// safe for concurrent use; run separate queries through separate
// Drivers.
type Driver struct {
	frontier  *frontier
	opts      DriverOptions
	solvePrim PrimitiveSolver
	steps     uint64
	log       *logrus.Entry
}

// SolveGoalsWith is the full-control entry point: an explicit starting
// environment and search strategy.
func SolveGoalsWith(db Database, goals GoalSet, env0 Env, solvePrimitive PrimitiveSolver, opts DriverOptions) (*Driver, error) {
	if opts.Strategy == StrategyDLS && opts.DepthBound == 0 {
		return nil, errors.Wrap(errInvalidDepthBound, "sld.SolveGoalsWith")
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(discardWriter{})
	}

	root := newRoot(db, goals, env0)
	d := &Driver{
		frontier:  newFrontier(opts.Strategy, root),
		opts:      opts,
		solvePrim: solvePrimitive,
		log: logger.WithFields(logrus.Fields{
			"component": "sld.Driver",
			"strategy":  opts.Strategy.String(),
		}),
	}
	return d, nil
}

// SolveGoals is the convenience entry point: DFS strategy, no step
// budget, and the identity environment as the starting environment. Go
// has no ambient way to conjure an identity value of an opaque interface
// type, so an Env is still taken explicitly: SolveGoals starts from
// env0.Empty(), so env0's own bindings are not used and any Env of the
// term layer will do.
func SolveGoals(db Database, goals GoalSet, env0 Env, solvePrimitive PrimitiveSolver) (*Driver, error) {
	return SolveGoalsWith(db, goals, env0.Empty(), solvePrimitive, DriverOptions{Strategy: StrategyDFS})
}

// Next advances the search until it produces an answer environment or
// exhausts the frontier. ok is false with a nil error on exhaustion; a
// non-nil error indicates a term-capability contract violation or an
// exceeded step budget, and the Driver should not be reused afterward.
func (d *Driver) Next(ctx context.Context) (env Env, ok bool, err error) {
	for {
		select {
		case <-ctx.Done():
			return nil, false, ctx.Err()
		default:
		}

		cp, has := d.frontier.pop()
		if !has {
			return nil, false, nil
		}

		d.steps++
		if d.opts.StepBudget > 0 && d.steps > d.opts.StepBudget {
			return nil, false, errors.Errorf("sld: step budget of %d exceeded", d.opts.StepBudget)
		}

		d.log.WithFields(logrus.Fields{
			"depth":    cp.Depth,
			"frontier": d.frontier.size(),
			"step":     d.steps,
		}).Debug("dispatching choice point")

		var depthBound uint64
		if d.opts.Strategy == StrategyDLS {
			depthBound = d.opts.DepthBound
		}
		sol, derr := dispatch(cp, d.solvePrim, depthBound)
		if derr != nil {
			d.log.WithError(derr).Error("term-capability contract violation")
			return nil, false, derr
		}

		switch sol.tag {
		case tagDone:
			return sol.env, true, nil
		case tagOne:
			d.frontier.pushOne(sol.one)
		case tagFork:
			d.frontier.pushFork(sol.expand, sol.retry)
		case tagFail:
			// dead branch; loop and try the next pending choice point.
		}
	}
}

// discardWriter is an io.Writer that drops everything written to it, so
// a Driver constructed without an explicit Logger produces no output.
type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
