package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/killerbee13/tis100-go/asm"
	"github.com/killerbee13/tis100-go/catalog"
	"github.com/killerbee13/tis100-go/grader"
)

type runFlags struct {
	puzzleID     string
	luaFile      string
	limit        string
	totalLimit   string
	randomCount  int
	seed         int64
	seeds        string
	threads      int
	noFixed      bool
	stats        bool
	cheatRate    float64
	multiplier   float64
	t21Size      int
	t30Size      int
	permissive   bool
	logLevel     string
	color        bool
	colorLogs    bool
}

func newRunCmd() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run <solution-file>...",
		Short: "Assemble and grade solutions against a puzzle",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Each solution gets a clean slate: an error grading one file
			// never stops the remaining files, it only taints the exit code.
			w := cmd.OutOrStdout()
			worst := exitOK
			for _, path := range args {
				code, err := runRun(w, path, f)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					code = exitException
				}
				if code > worst {
					worst = code
				}
			}
			if worst != exitOK {
				atexit.Exit(worst)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.puzzleID, "puzzle", "l", "", "built-in puzzle by segment id or display name")
	flags.StringVarP(&f.luaFile, "lua", "L", "", "Lua-scripted puzzle file (not supported)")
	flags.StringVar(&f.limit, "limit", "150000", "per-test cycle cap (accepts K/M/B suffix)")
	flags.StringVar(&f.totalLimit, "total-limit", "0", "aggregate cycle cap across random tests, 0 = unbounded")
	flags.IntVarP(&f.randomCount, "random-count", "r", 0, "run N random tests starting at --seed")
	flags.Int64Var(&f.seed, "seed", -1, "starting seed for -r (default: random)")
	flags.StringVar(&f.seeds, "seeds", "", "explicit seed expression \"a..b,c..d\"")
	flags.IntVarP(&f.threads, "threads", "j", 0, "worker threads, 0 = hardware concurrency")
	flags.BoolVar(&f.noFixed, "no-fixed", false, "skip the static test battery")
	flags.BoolVarP(&f.stats, "stats", "S", false, "run every random test; disable early stopping")
	flags.Float64Var(&f.cheatRate, "cheat-rate", grader.DefaultParams().CheatRate, "cheat/hardcoded threshold in [0,1]")
	flags.Float64VarP(&f.multiplier, "limit-multiplier", "k", grader.DefaultParams().LimitMultiplier, "random-test timeout multiplier")
	flags.IntVar(&f.t21Size, "T21-size", 0, "per-cell instruction capacity (default 15)")
	flags.IntVar(&f.t30Size, "T30-size", 0, "per-cell stack capacity (default 15)")
	flags.BoolVar(&f.permissive, "permissive", false, "relaxed assembler parsing")
	flags.StringVar(&f.logLevel, "loglevel", "info", "none|err|warn|notice|info|trace|debug")
	flags.BoolVarP(&f.color, "color", "c", false, "color output")
	flags.BoolVarP(&f.colorLogs, "color-logs", "C", false, "color log output")

	return cmd
}

func runRun(w io.Writer, solutionPath string, f runFlags) (int, error) {
	if err := setLogLevel(f.logLevel); err != nil {
		return exitException, err
	}
	if f.luaFile != "" {
		return exitException, fmt.Errorf("run: Lua-scripted puzzles are not supported")
	}

	src, err := readSolution(solutionPath)
	if err != nil {
		return exitException, fmt.Errorf("run: %w", err)
	}

	if isYAMLBundle(solutionPath) {
		bundle, err := asm.LoadBundleYAML([]byte(src))
		if err != nil {
			return exitException, fmt.Errorf("run: %w", err)
		}
		src = bundle.Source
		if f.puzzleID == "" {
			f.puzzleID = bundle.Puzzle
		}
		if f.seeds == "" && len(bundle.Seeds) > 0 {
			f.seeds = joinSeedExprs(bundle.Seeds)
		}
	}
	if f.puzzleID == "" {
		return exitException, fmt.Errorf("run: -l is required")
	}
	puzzle, err := catalog.Lookup(f.puzzleID)
	if err != nil {
		return exitException, err
	}

	limit, err := parseScaledInt(f.limit)
	if err != nil {
		return exitException, fmt.Errorf("run: --limit: %w", err)
	}
	totalLimit, err := parseScaledInt(f.totalLimit)
	if err != nil {
		return exitException, fmt.Errorf("run: --total-limit: %w", err)
	}

	params := grader.DefaultParams()
	params.CyclesLimit = limit
	params.TotalCyclesLimit = totalLimit
	params.LimitMultiplier = f.multiplier
	params.CheatRate = f.cheatRate
	params.NumThreads = f.threads
	params.RunFixed = !f.noFixed
	params.ComputeStats = f.stats
	if f.t21Size > 0 {
		params.T21Size = f.t21Size
	}
	if f.t30Size > 0 {
		params.T30Size = f.t30Size
	}

	seeds, err := resolveSeeds(f)
	if err != nil {
		return exitException, fmt.Errorf("run: %w", err)
	}

	prog, diags := asm.Assemble(src, asm.Options{
		Permissive: f.permissive,
		T21Size:    params.T21Size,
	})
	if len(diags) > 0 {
		printDiagnostics(w, diags)
		return exitException, nil
	}

	score, err := grader.Run(puzzle, prog, seeds, params)
	if err != nil {
		return exitException, fmt.Errorf("run: %w", err)
	}

	printScore(w, puzzle, score, f.color)
	if !score.Validated {
		return exitValidation, nil
	}
	return exitOK, nil
}

// resolveSeeds derives the seed ranges a run should cover, preferring an
// explicit --seeds expression, then falling back to -r/--seed as the two
// ways to request random tests.
func resolveSeeds(f runFlags) ([]grader.SeedRange, error) {
	if f.seeds != "" {
		return grader.ParseSeedRanges(f.seeds)
	}
	if f.randomCount <= 0 {
		return nil, nil
	}
	start := f.seed
	if start < 0 {
		start = int64(randomStartSeed())
	}
	return []grader.SeedRange{{
		Start: uint32(start),
		End:   uint32(start) + uint32(f.randomCount) - 1,
	}}, nil
}

func readSolution(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

// isYAMLBundle reports whether path names a YAML batch bundle (asm.Bundle)
// rather than a plain "@N"-block solution file, by its extension.
func isYAMLBundle(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}

func joinSeedExprs(exprs []string) string {
	return strings.Join(exprs, ",")
}

func printDiagnostics(w io.Writer, diags []asm.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(w, d.Error())
	}
}

func printScore(w io.Writer, puzzle catalog.Puzzle, sc grader.Score, color bool) {
	bold := func(s string) string { return s }
	if color {
		bold = func(s string) string { return "\x1b[1m" + s + "\x1b[0m" }
	}
	fmt.Fprintf(w, "%s: %s\n", bold(puzzle.DisplayName()), validatedLabel(sc.Validated))
	fmt.Fprintf(w, "  cycles=%d nodes=%d instructions=%d\n", sc.Cycles, sc.Nodes, sc.Instructions)
	if sc.RandomTestRan > 0 {
		fmt.Fprintf(w, "  random: %d/%d passed\n", sc.RandomTestValid, sc.RandomTestRan)
	}
	if sc.Achievement {
		fmt.Fprintln(w, "  achievement unlocked")
	}
	if sc.Cheat {
		fmt.Fprintln(w, "  flagged: cheat")
	}
	if sc.Hardcoded {
		fmt.Fprintln(w, "  flagged: hardcoded")
	}
	if sc.FailureReason != "" {
		fmt.Fprintf(w, "  reason: %s\n", sc.FailureReason)
	}
}

func validatedLabel(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}
