// Command tis100 is the reference grading tool: it assembles a solution
// against a built-in puzzle and reports a Score. Every subcommand funnels
// through atexit.Exit as its single exit path, so deferred cleanup
// always runs even when a subcommand returns early.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/killerbee13/tis100-go/grader"
	"github.com/killerbee13/tis100-go/internal/tislog"
)

// Exit codes: 0 success, 1 at least one solution failed validation,
// 2 exception (usage error, assembly error, I/O error).
const (
	exitOK         = 0
	exitValidation = 1
	exitException  = 2
)

func main() {
	defer atexit.Exit(0)

	// SIGINT/SIGTERM request a cooperative stop: every in-flight run
	// notices at its next cycle and reports whatever score it has.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		tislog.Logger.Warn("stop requested")
		grader.RequestStop()
	}()

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(exitException)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "tis100",
		Short:        "Assemble and grade TIS-100-style solutions",
		SilenceUsage: true,
	}
	cmd.AddCommand(newRunCmd(), newCheckCmd(), newListPuzzlesCmd())
	return cmd
}

// setLogLevel resolves the --loglevel flag and installs it as the
// package logger's level, reporting an error for an unrecognized name.
func setLogLevel(name string) error {
	lvl, ok := tislog.ParseLevel(name)
	if !ok {
		return fmt.Errorf("invalid --loglevel %q", name)
	}
	tislog.SetLevel(lvl)
	return nil
}
