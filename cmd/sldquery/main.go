// sldquery is a small demonstration command for package sld. It wires
// the engine up against internal/termkit and a tiny embedded family and
// list database, printing each answer environment as it is produced.
//
// It exists to prove the library is assembled correctly end to end, the
// way the reference corpus's cmd/example does for its own engine. It is
// not a general-purpose logic-programming REPL or file-loading tool —
// the clause database below is hard-coded.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/clauseforge/sldcore/internal/termkit"
	"github.com/clauseforge/sldcore/pkg/sld"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	strategyFlag string
	depthFlag    uint64
	verboseFlag  bool
	limitFlag    int
)

var rootCmd = &cobra.Command{
	Use:   "sldquery [goal]",
	Short: "Run a demonstration query against an embedded clause database",
	Long: `sldquery runs one of a handful of canned goals (ancestor, member,
append, loop, base) against a small embedded family/list database and prints every
answer environment the resolution engine yields, in order.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	rootCmd.Flags().StringVar(&strategyFlag, "strategy", "dfs", "search strategy: dfs, bfs, or dls")
	rootCmd.Flags().Uint64Var(&depthFlag, "depth", 10, "depth bound, only used when --strategy=dls")
	rootCmd.Flags().BoolVar(&verboseFlag, "verbose", false, "log driver diagnostics to stderr")
	rootCmd.Flags().IntVar(&limitFlag, "limit", 0, "stop after N answers (0 means unbounded)")
}

func runQuery(cmd *cobra.Command, args []string) error {
	db, err := buildDatabase()
	if err != nil {
		return err
	}

	goal, err := buildGoal(args[0])
	if err != nil {
		return err
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	driver, err := sld.SolveGoalsWith(db, goal, termkit.NewBindings(), nil, opts)
	if err != nil {
		return err
	}

	ctx := context.Background()
	count := 0
	for {
		env, ok, err := driver.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		count++
		fmt.Printf("answer %d: %s\n", count, describe(goal, env))
		if limitFlag > 0 && count >= limitFlag {
			break
		}
	}
	if count == 0 {
		fmt.Println("no answers")
	}
	return nil
}

func buildOptions() (sld.DriverOptions, error) {
	var logger *logrus.Logger
	if verboseFlag {
		logger = logrus.New()
		logger.SetLevel(logrus.DebugLevel)
	}

	switch strategyFlag {
	case "dfs":
		return sld.DriverOptions{Strategy: sld.StrategyDFS, Logger: logger}, nil
	case "bfs":
		return sld.DriverOptions{Strategy: sld.StrategyBFS, Logger: logger}, nil
	case "dls":
		return sld.NewDLS(depthFlag, logger)
	default:
		return sld.DriverOptions{}, fmt.Errorf("sldquery: unknown strategy %q (want dfs, bfs, or dls)", strategyFlag)
	}
}

// describe renders the first goal of goal with env applied to it.
func describe(goal sld.GoalSet, env sld.Env) string {
	cj, ok := goal.(termkit.Conjunction)
	if !ok || len(cj) == 0 {
		return "(no goal)"
	}
	return termkit.Reify(cj[0].Compound, env).String()
}
