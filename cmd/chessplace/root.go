package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/amoffat/chessplace/format"
	"github.com/amoffat/chessplace/search"
)

// cliFlags holds the pflag-bound values for the root command.
type cliFlags struct {
	kings, queens, bishops, rooks, knights int
	count                                  bool
	interactive                            bool
	verbose                                bool
	compare                                bool
}

func newRootCmd() *cobra.Command {
	flags := &cliFlags{}

	cmd := &cobra.Command{
		Use:   "chessplace [rows cols]",
		Short: "Enumerate non-attacking placements of chess pieces on a board",
		Long: "chessplace enumerates every distinct placement of the requested chess\n" +
			"pieces on a rows x cols board such that no two pieces attack each other.",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, flags)
		},
	}

	bindFlags(cmd.Flags(), flags)

	return cmd
}

// bindFlags registers the piece-count and behavior flags on fs. It takes
// a *pflag.FlagSet directly, rather than going through cobra.Command, so
// it can be unit-tested against a bare FlagSet and so the piece-count
// flags stay in one place shared by any future subcommand.
func bindFlags(fs *pflag.FlagSet, flags *cliFlags) {
	fs.IntVarP(&flags.kings, "kings", "k", 0, "number of kings to place")
	fs.IntVarP(&flags.queens, "queens", "q", 0, "number of queens to place")
	fs.IntVarP(&flags.bishops, "bishops", "b", 0, "number of bishops to place")
	fs.IntVarP(&flags.rooks, "rooks", "r", 0, "number of rooks to place")
	fs.IntVarP(&flags.knights, "knights", "n", 0, "number of knights to place")
	fs.BoolVarP(&flags.count, "count", "c", false, "print only the number of solutions, not each board")
	fs.BoolVar(&flags.interactive, "interactive", false, "prompt for rows, cols, and counts instead of reading flags")
	fs.BoolVar(&flags.verbose, "verbose", false, "log search diagnostics (nodes visited/pruned, elapsed time) to stderr")
	fs.BoolVar(&flags.compare, "compare", false, "cross-check StrategyStack, StrategyRecursive, and StrategyQueue instead of enumerating once")
}

// runRoot resolves (rows, cols, counts) from positional args, flags, or
// an interactive prompt, then dispatches to either the comparison path
// or the enumerate-and-print/count path.
func runRoot(cmd *cobra.Command, args []string, flags *cliFlags) error {
	rows, cols, counts, err := resolveProblem(cmd, args, flags)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), flags.verbose)

	if flags.compare {
		return runCompare(cmd.OutOrStdout(), logger, rows, cols, counts)
	}
	return runEnumerate(cmd.OutOrStdout(), logger, rows, cols, counts, flags.count)
}

// resolveProblem builds the (rows, cols, counts) triple either from
// positional args + flags, or, when flags.interactive is set (or no
// dimensions were given at all), by prompting on stdin/stdout. Grounded
// in the Python original's main.py/cmd_util.input_int, which prompts for
// exactly the same fields when invoked without arguments.
func resolveProblem(cmd *cobra.Command, args []string, flags *cliFlags) (int, int, map[byte]int, error) {
	if flags.interactive || len(args) == 0 {
		return promptProblem(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	if len(args) != 2 {
		return 0, 0, nil, fmt.Errorf("expected exactly 2 positional args (rows cols), got %d", len(args))
	}

	rows, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, nil, fmt.Errorf("invalid rows %q: %w", args[0], err)
	}
	cols, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, nil, fmt.Errorf("invalid cols %q: %w", args[1], err)
	}

	counts := map[byte]int{
		'K': flags.kings,
		'Q': flags.queens,
		'B': flags.bishops,
		'R': flags.rooks,
		'N': flags.knights,
	}
	return rows, cols, counts, nil
}

// newLogger builds a zerolog.Logger writing human-readable output to w.
// When verbose is false the logger is set above zerolog's top level so
// every Info/Debug call is a no-op, keeping the core's "never writes to
// stdout/stderr" contract intact for the default, non-verbose path.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.Disabled
	if verbose {
		level = zerolog.InfoLevel
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// runEnumerate drives a single Solutions call to completion, either
// printing each board with format.Format or, if countOnly, just the
// final count.
func runEnumerate(out io.Writer, log zerolog.Logger, rows, cols int, counts map[byte]int, countOnly bool) error {
	var stats search.Stats
	start := time.Now()

	solutions, stop, err := search.Solutions(rows, cols, counts, search.WithStats(&stats))
	if err != nil {
		return err
	}
	defer stop()

	n := 0
	for b := range solutions {
		n++
		if !countOnly {
			fmt.Fprintln(out, format.Format(b, rows, cols))
		}
		log.Info().
			Int("solution", n).
			Dur("elapsed", time.Since(start)).
			Msg("solution found")
	}

	log.Info().
		Int("total", n).
		Int("visited", stats.Visited).
		Int("pruned", stats.Pruned).
		Dur("elapsed", time.Since(start)).
		Msg("search complete")

	fmt.Fprintf(out, "solutions = %d\n", n)
	return nil
}

// runCompare runs search.CompareStrategies and reports whether all three
// traversal strategies agree on the set of boards they produce (P5).
func runCompare(out io.Writer, log zerolog.Logger, rows, cols int, counts map[byte]int) error {
	start := time.Now()
	result, err := search.CompareStrategies(rows, cols, counts)
	if err != nil {
		return err
	}

	log.Info().Dur("elapsed", time.Since(start)).Msg("comparison complete")

	for _, strat := range result.Strategies {
		fmt.Fprintf(out, "%s: %d solutions\n", strategyName(strat), result.Counts[strat])
	}
	if !result.Equal {
		return fmt.Errorf("strategies disagreed on the solution set: %+v", result.Counts)
	}
	fmt.Fprintln(out, "all strategies agree")
	return nil
}

func strategyName(s search.Strategy) string {
	switch s {
	case search.StrategyStack:
		return "stack"
	case search.StrategyRecursive:
		return "recursive"
	case search.StrategyQueue:
		return "queue"
	default:
		return "unknown"
	}
}
