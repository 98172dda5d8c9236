package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/killerbee13/tis100-go/catalog"
	"github.com/killerbee13/tis100-go/field"
)

// newListPuzzlesCmd implements "tis100 list-puzzles": a table of every
// built-in puzzle's segment id, display name, layout size, and IO shape.
func newListPuzzlesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-puzzles",
		Short: "List every built-in puzzle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printPuzzleTable(cmd.OutOrStdout())
			return nil
		},
	}
}

func printPuzzleTable(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("Built-in puzzles (%d)", len(catalog.All())))
	t.AppendHeader(table.Row{"Segment", "Name", "Layout", "I/O"})
	for _, p := range catalog.All() {
		t.AppendRow(table.Row{
			p.Segment,
			p.DisplayName(),
			fmt.Sprintf("%dx%d", p.Layout.Rows, p.Layout.Cols),
			ioSummary(p.Layout),
		})
	}
	t.Render()
}

func ioSummary(l field.Layout) string {
	ins, outs, images := 0, 0, 0
	for _, k := range l.Inputs {
		if k == field.IOIn {
			ins++
		}
	}
	for _, k := range l.Outputs {
		switch k {
		case field.IOOut:
			outs++
		case field.IOImage:
			images++
		}
	}
	s := fmt.Sprintf("%d in, %d out", ins, outs)
	if images > 0 {
		s += fmt.Sprintf(", %d image", images)
	}
	return s
}
