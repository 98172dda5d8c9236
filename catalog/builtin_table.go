package catalog

import "github.com/killerbee13/tis100-go/field"

// builtinTable holds all 51 reference puzzle layouts, segment ids, display
// names, and base seeds, transcribed from the original engine's own table.
// The per-segment generators live in generators.go (campaign levels, the
// xorshift era) and generators_nexus.go (TIS-NET levels, the Lua era).
var builtinTable = []Puzzle{
	{
		Segment: "00150", Name: "SELF-TEST DIAGNOSTIC", BaseSeed: 50,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellDamaged, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IOIn, field.IONone, field.IONone, field.IOIn},
			Outputs: []field.IOKind{field.IOOut, field.IONone, field.IONone, field.IOOut},
		},
	},
	{
		Segment: "10981", Name: "SIGNAL AMPLIFIER", BaseSeed: 2,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "20176", Name: "DIFFERENTIAL CONVERTER", BaseSeed: 3,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IOIn, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IOOut, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "21340", Name: "SIGNAL COMPARATOR", BaseSeed: 4,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellDamaged, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IOIn, field.IONone, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IOOut, field.IOOut, field.IOOut},
		},
	},
	{
		Segment: "22280", Name: "SIGNAL MULTIPLEXER", BaseSeed: 22,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IOIn, field.IOIn},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "30647", Name: "SEQUENCE GENERATOR", BaseSeed: 5,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IOIn, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "31904", Name: "SEQUENCE COUNTER", BaseSeed: 9,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IOOut, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "32050", Name: "SIGNAL EDGE DETECTOR", BaseSeed: 7,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "33762", Name: "INTERRUPT HANDLER", BaseSeed: 19,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IOIn, field.IOIn, field.IOIn, field.IOIn},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "USEG0", Name: "SIMPLE SANDBOX", BaseSeed: 1,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "40196", Name: "SIGNAL PATTERN DETECTOR", BaseSeed: 888,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "41427", Name: "SEQUENCE PEAK DETECTOR", BaseSeed: 18,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IOOut, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "42656", Name: "SEQUENCE REVERSER", BaseSeed: 10,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT30, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT30, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "43786", Name: "SIGNAL MULTIPLIER", BaseSeed: 6,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT30, field.CellT21, field.CellT21, field.CellT30, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IOIn, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "USEG1", Name: "STACK MEMORY SANDBOX", BaseSeed: 1,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT30, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT30, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "50370", Name: "IMAGE TEST PATTERN 1", BaseSeed: 13,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IONone, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOImage, field.IONone},
		},
	},
	{
		Segment: "51781", Name: "IMAGE TEST PATTERN 2", BaseSeed: 14,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellDamaged, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IONone, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOImage, field.IONone},
		},
	},
	{
		Segment: "52544", Name: "EXPOSURE MASK VIEWER", BaseSeed: 60,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOImage, field.IONone},
		},
	},
	{
		Segment: "53897", Name: "HISTOGRAM VIEWER", BaseSeed: 15,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOImage, field.IONone},
		},
	},
	{
		Segment: "USEG2", Name: "IMAGE CONSOLE SANDBOX", BaseSeed: 1,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOImage, field.IONone},
		},
	},
	{
		Segment: "60099", Name: "SIGNAL WINDOW FILTER", BaseSeed: 55,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellDamaged, field.CellT21, field.CellT21, field.CellT30, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT30},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IOOut, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "61212", Name: "SIGNAL DIVIDER", BaseSeed: 16,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT30, field.CellT21, field.CellT21, field.CellT30, field.CellT21, field.CellT21, field.CellT21, field.CellDamaged},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IOIn, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IOOut, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "62711", Name: "SEQUENCE INDEXER", BaseSeed: 11,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT30, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT30, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IOIn, field.IONone, field.IOIn, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "63534", Name: "SEQUENCE SORTER", BaseSeed: 12,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellDamaged, field.CellT21, field.CellT30, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT30, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "70601", Name: "STORED IMAGE DECODER", BaseSeed: 21,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOImage, field.IONone},
		},
	},
	{
		Segment: "UNKNOWN", Name: "UNKNOWN", BaseSeed: 23,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IOOut, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "NEXUS.00.526.6", Name: "SEQUENCE MERGER", BaseSeed: 0,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT30, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT30},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IONone, field.IOIn},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "NEXUS.01.874.8", Name: "INTEGER SERIES CALCULATOR", BaseSeed: 23,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellDamaged},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IOOut, field.IONone, field.IONone},
		},
	},
	{
		Segment: "NEXUS.02.981.2", Name: "SEQUENCE RANGE LIMITER", BaseSeed: 46,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IOIn, field.IOIn, field.IOIn, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IOOut, field.IONone, field.IONone},
		},
	},
	{
		Segment: "NEXUS.03.176.9", Name: "SIGNAL ERROR CORRECTOR", BaseSeed: 69,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellDamaged, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IOIn, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IOOut, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "NEXUS.04.340.5", Name: "SUBSEQUENCE EXTRACTOR", BaseSeed: 92,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IOIn, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "NEXUS.05.647.1", Name: "SIGNAL PRESCALER", BaseSeed: 115,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellDamaged, field.CellDamaged, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IOIn, field.IONone, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IOOut, field.IOOut, field.IOOut},
		},
	},
	{
		Segment: "NEXUS.06.786.0", Name: "SIGNAL AVERAGER", BaseSeed: 138,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IOIn, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "NEXUS.07.050.0", Name: "SUBMAXIMUM SELECTOR", BaseSeed: 161,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IOIn, field.IOIn, field.IOIn, field.IOIn},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "NEXUS.08.633.9", Name: "DECIMAL DECOMPOSER", BaseSeed: 184,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IOOut, field.IOOut, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "NEXUS.09.904.9", Name: "SEQUENCE MODE CALCULATOR", BaseSeed: 207,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT30, field.CellT21, field.CellT30, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21, field.CellDamaged},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IOOut, field.IONone, field.IONone},
		},
	},
	{
		Segment: "NEXUS.10.656.5", Name: "SEQUENCE NORMALIZER", BaseSeed: 230,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT30, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT30, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "NEXUS.11.711.2", Name: "IMAGE TEST PATTERN 3", BaseSeed: 253,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellDamaged, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IONone, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOImage, field.IONone},
		},
	},
	{
		Segment: "NEXUS.12.534.4", Name: "IMAGE TEST PATTERN 4", BaseSeed: 276,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellDamaged, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IONone, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOImage, field.IONone},
		},
	},
	{
		Segment: "NEXUS.13.370.9", Name: "SPATIAL PATH VIEWER", BaseSeed: 299,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOImage, field.IONone},
		},
	},
	{
		Segment: "NEXUS.14.781.3", Name: "CHARACTER TERMINAL", BaseSeed: 322,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT30, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT30, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOImage, field.IONone},
		},
	},
	{
		Segment: "NEXUS.15.897.9", Name: "BACK-REFERENCE REIFIER", BaseSeed: 345,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IOIn, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "NEXUS.16.212.8", Name: "DYNAMIC PATTERN DETECTOR", BaseSeed: 368,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellDamaged},
			Inputs: []field.IOKind{field.IOIn, field.IONone, field.IOIn, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "NEXUS.17.135.0", Name: "SEQUENCE GAP INTERPOLATOR", BaseSeed: 391,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellDamaged, field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT30, field.CellT21, field.CellT30, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IONone, field.IOIn, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "NEXUS.18.427.7", Name: "DECIMAL TO OCTAL CONVERTER", BaseSeed: 414,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "NEXUS.19.762.9", Name: "PROLONGED SEQUENCE SORTER", BaseSeed: 437,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellDamaged, field.CellT30, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT30, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IONone, field.IOIn, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "NEXUS.20.433.1", Name: "PRIME FACTOR CALCULATOR", BaseSeed: 460,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IONone, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IOOut, field.IONone, field.IONone},
		},
	},
	{
		Segment: "NEXUS.21.601.6", Name: "SIGNAL EXPONENTIATOR", BaseSeed: 483,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT30, field.CellT21, field.CellT21, field.CellT30, field.CellDamaged, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IOIn, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "NEXUS.22.280.8", Name: "T20 NODE EMULATOR", BaseSeed: 506,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellDamaged},
			Inputs: []field.IOKind{field.IONone, field.IOIn, field.IOIn, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IOOut, field.IONone, field.IONone},
		},
	},
	{
		Segment: "NEXUS.23.727.9", Name: "T31 NODE EMULATOR", BaseSeed: 529,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellDamaged, field.CellT30, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT30, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IONone, field.IONone, field.IOIn, field.IONone},
			Outputs: []field.IOKind{field.IONone, field.IONone, field.IOOut, field.IONone},
		},
	},
	{
		Segment: "NEXUS.24.511.7", Name: "WAVE COLLAPSE SUPERVISOR", BaseSeed: 552,
		Layout: field.Layout{
			Rows: 3, Cols: 4,
			Cells: []field.CellKind{field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21, field.CellT21},
			Inputs: []field.IOKind{field.IOIn, field.IOIn, field.IOIn, field.IOIn},
			Outputs: []field.IOKind{field.IONone, field.IOOut, field.IONone, field.IONone},
		},
	},
}
