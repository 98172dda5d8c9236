package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/killerbee13/tis100-go/asm"
)

// newCheckCmd implements "tis100 check": assembly-only validation with
// no grading, reporting every asm.Diagnostic and exiting non-zero if any
// were produced.
func newCheckCmd() *cobra.Command {
	var permissive bool
	var t21Size int

	cmd := &cobra.Command{
		Use:   "check <solution-file>",
		Short: "Validate a solution's assembly without grading it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), args[0], permissive, t21Size)
		},
	}
	cmd.Flags().BoolVar(&permissive, "permissive", false, "relaxed assembler parsing")
	cmd.Flags().IntVar(&t21Size, "T21-size", 0, "per-cell instruction capacity (default 15)")
	return cmd
}

func runCheck(w io.Writer, path string, permissive bool, t21Size int) error {
	src, err := readSolution(path)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}
	_, diags := asm.Assemble(src, asm.Options{Permissive: permissive, T21Size: t21Size})
	if len(diags) == 0 {
		fmt.Fprintln(w, "OK")
		return nil
	}
	printDiagnostics(w, diags)
	atexit.Exit(exitException)
	return nil
}
