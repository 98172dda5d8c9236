package catalog

// The TIS-NET ("NEXUS") levels were authored against the game's embedded
// Lua runtime, so their generators draw from the Mono-System.Random clone
// (rng.LuaRandom) rather than the campaign's xorshift engine. Draw order is
// load-bearing throughout this file: every call site consumes the stream in
// exactly the reference order, including draws whose results are discarded.

import (
	"slices"

	"github.com/killerbee13/tis100-go/node"
	"github.com/killerbee13/tis100-go/rng"
	"github.com/killerbee13/tis100-go/word"
)

func randomTestSequenceMerger(seed uint32) (*Test, error) {
	engine := rng.NewLuaRandom(int32(seed))
	var in1, in2, out []word.Word
	prevEmpty := true
	canZero := true
	for {
		var maxMax int
		switch {
		case len(out) == 26:
			maxMax = 10
		case len(out) < 28:
			maxMax = 11
		default:
			maxMax = 38 - len(out)
		}

		var maxOut int
		if maxMax < 10 {
			maxOut = maxMax
		} else {
			for {
				maxOut = engine.NextWord(0, maxMax)
				if canZero || maxOut != 0 {
					break
				}
			}
		}

		var count1 int
		if prevEmpty && maxOut >= 2 {
			count1 = engine.NextWord(1, maxOut-1)
		} else {
			count1 = engine.NextWord(0, maxOut)
		}
		if maxOut == 0 {
			canZero = false
		}
		prevEmpty = count1 == 0 || count1 == maxOut

		if maxOut > 0 {
			outSeq := make([]word.Word, maxOut)
			for i := 0; i < maxOut; i++ {
				var val word.Word
				for {
					val = word.Word(engine.NextWord(10, 99))
					if !slices.Contains(outSeq, val) {
						break
					}
				}
				outSeq[i] = val
			}
			in1Seq := append([]word.Word(nil), outSeq[:count1]...)
			in2Seq := append([]word.Word(nil), outSeq[count1:]...)
			slices.Sort(outSeq)
			slices.Sort(in1Seq)
			slices.Sort(in2Seq)
			out = append(out, outSeq...)
			in1 = append(in1, in1Seq...)
			in2 = append(in2, in2Seq...)
		}
		out = append(out, 0)
		in1 = append(in1, 0)
		in2 = append(in2, 0)
		if len(out) >= MaxTestLength {
			break
		}
	}
	return &Test{Inputs: [][]word.Word{in1, in2}, Outputs: [][]word.Word{out}}, nil
}

func randomTestIntegerSeriesCalculator(seed uint32) (*Test, error) {
	engine := rng.NewLuaRandom(int32(seed))
	in0, out0 := zeroVec(), zeroVec()
	for i := 0; i < MaxTestLength; i++ {
		n := engine.NextWord(1, 44)
		in0[i] = word.Word(n)
		out0[i] = word.Word(n * (n + 1) / 2)
	}
	return &Test{Inputs: [][]word.Word{in0}, Outputs: [][]word.Word{out0}}, nil
}

func randomTestSequenceRangeLimiter(seed uint32) (*Test, error) {
	engine := rng.NewLuaRandom(int32(seed))
	minIn := make([]word.Word, 6)
	maxIn := make([]word.Word, 6)
	for i := range minIn {
		minIn[i] = word.Word(engine.NextWord(3, 9) * 5)
	}
	for i := range maxIn {
		maxIn[i] = word.Word(engine.NextWord(10, 17) * 5)
	}
	var input, output []word.Word
	for i := 0; i < 6; i++ {
		for j := 0; j < 5; j++ {
			val := word.Word(engine.NextWord(10, 99))
			input = append(input, val)
			v := val
			if v < minIn[i] {
				v = minIn[i]
			}
			if v > maxIn[i] {
				v = maxIn[i]
			}
			output = append(output, v)
		}
		input = append(input, 0)
		output = append(output, 0)
	}
	return &Test{Inputs: [][]word.Word{minIn, input, maxIn}, Outputs: [][]word.Word{output}}, nil
}

func randomTestSignalErrorCorrector(seed uint32) (*Test, error) {
	engine := rng.NewLuaRandom(int32(seed))
	inA, inB := zeroVec(), zeroVec()
	outA, outB := zeroVec(), zeroVec()
	for i := 0; i < MaxTestLength; i++ {
		r := engine.NextWord(1, 4)
		a := word.Word(engine.NextWord(10, 99))
		b := word.Word(engine.NextWord(10, 99))
		switch r {
		case 1:
			inA[i], inB[i] = -1, b
			outA[i], outB[i] = b, b
		case 2:
			inA[i], inB[i] = a, -1
			outA[i], outB[i] = a, a
		default:
			inA[i], inB[i] = a, b
			outA[i], outB[i] = a, b
		}
	}
	return &Test{Inputs: [][]word.Word{inA, inB}, Outputs: [][]word.Word{outA, outB}}, nil
}

func randomTestSubsequenceExtractor(seed uint32) (*Test, error) {
	engine := rng.NewLuaRandom(int32(seed))
	lengths := []int{2, 3, 3, 4, 4, 4, 5, 6}
	for i := len(lengths) - 1; i >= 1; i-- {
		j := engine.NextWord(0, i)
		lengths[i], lengths[j] = lengths[j], lengths[i]
	}

	var inIndexes, inSeq, out []word.Word
	for _, l := range lengths {
		for j := 0; j < l; j++ {
			inSeq = append(inSeq, word.Word(engine.NextWord(10, 99)))
		}
		inSeq = append(inSeq, 0)
		subLen := engine.NextWord(2, l)
		first := engine.NextWord(0, l-subLen)
		last := first + subLen - 1
		inIndexes = append(inIndexes, word.Word(first), word.Word(last))
		start := len(inSeq) - l - 1 + first
		out = append(out, inSeq[start:start+subLen]...)
		out = append(out, 0)
	}
	return &Test{Inputs: [][]word.Word{inIndexes, inSeq}, Outputs: [][]word.Word{out}}, nil
}

func randomTestSignalPrescaler(seed uint32) (*Test, error) {
	engine := rng.NewLuaRandom(int32(seed))
	in0 := zeroVec()
	out0, out1, out2 := zeroVec(), zeroVec(), zeroVec()
	for i := 0; i < MaxTestLength; i++ {
		val := engine.NextWord(1, 120)
		out2[i] = word.Word(val)
		out1[i] = word.Word(val * 2)
		out0[i] = word.Word(val * 4)
		in0[i] = word.Word(val * 8)
	}
	return &Test{Inputs: [][]word.Word{in0}, Outputs: [][]word.Word{out0, out1, out2}}, nil
}

func randomTestSignalAverager(seed uint32) (*Test, error) {
	engine := rng.NewLuaRandom(int32(seed))
	inA, inB, out0 := zeroVec(), zeroVec(), zeroVec()
	for i := 0; i < MaxTestLength; i++ {
		a := engine.NextWord(100, 999)
		b := engine.NextWord(100, 999)
		inA[i] = word.Word(a)
		inB[i] = word.Word(b)
		out0[i] = word.Word((a + b) / 2)
	}
	return &Test{Inputs: [][]word.Word{inA, inB}, Outputs: [][]word.Word{out0}}, nil
}

func randomTestSubmaximumSelector(seed uint32) (*Test, error) {
	engine := rng.NewLuaRandom(int32(seed))
	inputs := [][]word.Word{zeroVec(), zeroVec(), zeroVec(), zeroVec()}
	out0 := zeroVec()
	for i := 0; i < MaxTestLength; i++ {
		var group [4]word.Word
		for j := 0; j < 4; j++ {
			v := word.Word(engine.NextWord(0, 99))
			group[j] = v
			inputs[j][i] = v
		}
		sorted := group
		slices.Sort(sorted[:])
		out0[i] = sorted[2]
	}
	return &Test{Inputs: inputs, Outputs: [][]word.Word{out0}}, nil
}

func randomTestDecimalDecomposer(seed uint32) (*Test, error) {
	engine := rng.NewLuaRandom(int32(seed))
	in0 := zeroVec()
	hundreds, tens, ones := zeroVec(), zeroVec(), zeroVec()
	for i := 0; i < MaxTestLength; i++ {
		var val word.Word
		switch engine.NextWord(0, 2) {
		case 0:
			val = word.Word(engine.NextWord(0, 9))
		case 1:
			val = word.Word(engine.NextWord(10, 99))
		default:
			val = word.Word(engine.NextWord(100, 999))
		}
		in0[i] = val
		hundreds[i] = val / 100
		tens[i] = (val % 100) / 10
		ones[i] = val % 10
	}
	return &Test{Inputs: [][]word.Word{in0}, Outputs: [][]word.Word{hundreds, tens, ones}}, nil
}

func randomTestSequenceModeCalculator(seed uint32) (*Test, error) {
	engine := rng.NewLuaRandom(int32(seed))
	in0 := zeroVec()
	lastZero := -1
	for i := 0; i < MaxTestLength-1; i++ {
		in0[i] = word.Word(engine.NextWord(1, 5))
		if i-lastZero > 3 && engine.NextDouble() < 0.5 && i < MaxTestLength-2 {
			in0[i] = 0
			lastZero = i
		}
	}
	in0[MaxTestLength-1] = 0

	var out0 []word.Word
	var frequency [5]int
	for _, v := range in0 {
		if v == 0 {
			maxFrequency := 0
			mostFrequent := 0
			for k := 0; k < 5; k++ {
				if frequency[k] > maxFrequency {
					mostFrequent = k + 1
					maxFrequency = frequency[k]
				} else if frequency[k] == maxFrequency {
					mostFrequent = 0
				}
			}
			out0 = append(out0, word.Word(mostFrequent))
			frequency = [5]int{}
		} else {
			frequency[v-1]++
		}
	}
	return &Test{Inputs: [][]word.Word{in0}, Outputs: [][]word.Word{out0}}, nil
}

func randomTestSequenceNormalizer(seed uint32) (*Test, error) {
	engine := rng.NewLuaRandom(int32(seed))
	in0 := make([]word.Word, MaxTestLength-1)
	out0 := make([]word.Word, MaxTestLength-1)
	currStart := 0
	for i := 0; i < MaxTestLength-1; i++ {
		val := word.Word(engine.NextWord(1, 99))
		in0[i] = val
		out0[i] = val
		seq := out0[currStart : i+1]
		if (engine.NextWord(1, 3) == 3 && len(seq) > 2) || len(seq) > 7 || i == MaxTestLength-3 {
			minInSeq := slices.Min(seq)
			for k := range seq {
				seq[k] -= minInSeq
			}
			i++
			in0[i] = -1
			out0[i] = -1
			currStart = i + 1
		}
	}
	out0 = out0[:currStart]
	return &Test{Inputs: [][]word.Word{in0}, Outputs: [][]word.Word{out0}}, nil
}

func randomTestImageTestPattern3(uint32) (*Test, error) {
	return &Test{Images: []node.Image{imageFromGlyphs([]string{
		"██████████████████████████████",
		"█                            █",
		"█ ██████████████████████████ █",
		"█ █                        █ █",
		"█ █ ██████████████████████ █ █",
		"█ █ █                    █ █ █",
		"█ █ █ ██████████████████ █ █ █",
		"█ █ █ █                █ █ █ █",
		"█ █ █ █ ██████████████ █ █ █ █",
		"█ █ █ █ ██████████████ █ █ █ █",
		"█ █ █ █                █ █ █ █",
		"█ █ █ ██████████████████ █ █ █",
		"█ █ █                    █ █ █",
		"█ █ ██████████████████████ █ █",
		"█ █                        █ █",
		"█ ██████████████████████████ █",
		"█                            █",
		"██████████████████████████████",
	})}}, nil
}

func randomTestImageTestPattern4(uint32) (*Test, error) {
	return &Test{Images: []node.Image{imageFromGlyphs([]string{
		" ░▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░",
		"░ █▒░ █▒░ █▒░ █▒░ █▒░ █▒░ █▒░ ",
		"▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░▒█",
		"█▒░ █▒░ █▒░ █▒░ █▒░ █▒░ █▒░ █▒",
		" ░▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░",
		"░ █▒░ █▒░ █▒░ █▒░ █▒░ █▒░ █▒░ ",
		"▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░▒█",
		"█▒░ █▒░ █▒░ █▒░ █▒░ █▒░ █▒░ █▒",
		" ░▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░",
		"░ █▒░ █▒░ █▒░ █▒░ █▒░ █▒░ █▒░ ",
		"▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░▒█",
		"█▒░ █▒░ █▒░ █▒░ █▒░ █▒░ █▒░ █▒",
		" ░▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░",
		"░ █▒░ █▒░ █▒░ █▒░ █▒░ █▒░ █▒░ ",
		"▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░▒█",
		"█▒░ █▒░ █▒░ █▒░ █▒░ █▒░ █▒░ █▒",
		" ░▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░▒█ ░",
		"░ █▒░ █▒░ █▒░ █▒░ █▒░ █▒░ █▒░ ",
	})}}, nil
}

// imageFromGlyphs decodes the one-rune-per-pixel art the static pattern
// levels are drawn in: ' ' black, '░' dark grey, '▒' light grey, '█'
// white, '#' red.
func imageFromGlyphs(rows []string) node.Image {
	height := len(rows)
	width := len([]rune(rows[0]))
	img := node.NewImage(width, height)
	for y, row := range rows {
		for x, r := range []rune(row) {
			var p node.Pixel
			switch r {
			case ' ':
				p = node.Black
			case '░':
				p = node.DarkGrey
			case '▒':
				p = node.LightGrey
			case '█':
				p = node.White
			case '#':
				p = node.Red
			}
			img.Set(x, y, p)
		}
	}
	return img
}

// randomTestSpatialPathViewer constructs an 11-point rectilinear path where
// no two points share a coordinate and adjacent points are 3..14 apart on
// each axis, then encodes it as (heading, run-length) word pairs.
func randomTestSpatialPathViewer(seed uint32) (*Test, error) {
	engine := rng.NewLuaRandom(int32(seed))
	const points = 11

	makeCoords := func(size, max int) []int {
		coords := make([]int, max+1)
		for i := range coords {
			coords[i] = i
		}
		for i := max; i > 1; i-- {
			k := engine.NextWord(1, i)
			coords[i], coords[k] = coords[k], coords[i]
		}
		// Pull forward a chain where each successive coordinate is a valid
		// distance from the previous, restarting the scan after each find.
		good := 1
		for i := good; i < len(coords); i++ {
			d := coords[good-1] - coords[i]
			if d < 0 {
				d = -d
			}
			if d >= 3 && d <= 14 {
				v := coords[i]
				copy(coords[good+1:i+1], coords[good:i])
				coords[good] = v
				good++
				if good == size {
					break
				}
				i = good - 1
			}
		}
		return coords[:size]
	}

	coordsX := makeCoords(points, ImageWidth-1)
	coordsY := makeCoords(points, ImageHeight-1)

	img := node.NewImage(ImageWidth, ImageHeight)
	var in0 []word.Word
	for i := 1; i < points; i++ {
		xOne, xTwo := coordsX[i-1], coordsX[i]
		yOne, yTwo := coordsY[i-1], coordsY[i]

		dx := 1
		if xTwo < xOne {
			in0 = append(in0, 180)
			dx = -1
		} else {
			in0 = append(in0, 0)
		}
		for x := xOne; x != xTwo+dx; x += dx {
			img.Set(x, yOne, node.White)
		}
		in0 = append(in0, word.Word(intAbs(xOne-xTwo)+1))

		if len(in0) == MaxTestLength-1 {
			break
		}

		dy := 1
		if yTwo < yOne {
			in0 = append(in0, 90)
			dy = -1
		} else {
			in0 = append(in0, 270)
		}
		for y := yOne; y != yTwo+dy; y += dy {
			img.Set(xTwo, y, node.White)
		}
		in0 = append(in0, word.Word(intAbs(yOne-yTwo)+1))
	}
	return &Test{Inputs: [][]word.Word{in0}, Images: []node.Image{img}}, nil
}

func randomTestCharacterTerminal(seed uint32) (*Test, error) {
	engine := rng.NewLuaRandom(int32(seed))
	charDecode := [5][2][2]bool{
		{{false, false}, {false, false}},
		{{true, true}, {false, false}},
		{{true, false}, {false, true}},
		{{false, true}, {true, false}},
		{{true, true}, {true, false}},
	}

	img := node.NewImage(ImageWidth, ImageHeight)
	render := func(x, y int, c word.Word) {
		ch := charDecode[c]
		for a := 0; a < 2; a++ {
			for b := 0; b < 2; b++ {
				if ch[a][b] && x+a < ImageWidth && y+b < ImageHeight {
					img.Set(x+a, y+b, node.White)
				}
			}
		}
	}

	input := make([]word.Word, 0, MaxTestLength+1)
	for i := 0; i < MaxTestLength; i++ {
		input = append(input, word.Word(engine.NextWord(1, 4)))
	}
	input = append(input, 0)
	input[engine.NextWord(12, 16)] = 0
	input[engine.NextWord(28, 31)] = 0

	x, y := -1, 0
	for i := 0; i < MaxTestLength; i++ {
		if input[i] == 0 || x == 9 {
			x = 0
			y++
		} else {
			x++
		}
		render(x*3, y*3, input[i+1])
	}
	input = input[1:]
	return &Test{Inputs: [][]word.Word{input}, Images: []node.Image{img}}, nil
}

func randomTestBackReferenceReifier(seed uint32) (*Test, error) {
	engine := rng.NewLuaRandom(int32(seed))
	inputRefs, inputValues := zeroVec(), zeroVec()
	out0 := zeroVec()
	for i := 0; i < MaxTestLength; i++ {
		ref := 0
		if engine.NextWord(0, 1) == 0 {
			ref = engine.NextWord(-4, -1)
			if i+ref < 0 {
				ref = 0
			}
		}
		inputValues[i] = word.Word(engine.NextWord(10, 99))
		inputRefs[i] = word.Word(ref)
		out0[i] = inputValues[i+ref]
	}
	return &Test{Inputs: [][]word.Word{inputRefs, inputValues}, Outputs: [][]word.Word{out0}}, nil
}

// randomTestDynamicPatternDetector plants the 3-word pattern (and several
// near-miss prefixes) at randomized offsets so a sliding-window solution
// can't shortcut on position.
func randomTestDynamicPatternDetector(seed uint32) (*Test, error) {
	engine := rng.NewLuaRandom(int32(seed))
	pattern := make([]word.Word, 4)
	input := make([]word.Word, MaxTestLength)
	output := make([]word.Word, MaxTestLength)

	for i := 0; i < 12; i++ {
		engine.NextDouble()
	}

	for i := 0; i < 3; i++ {
		pattern[i] = word.Word(engine.NextWord(1, 42))
	}
	pattern[3] = 0
	for i := range input {
		input[i] = word.Word(engine.NextWord(1, 42))
	}

	for k := 0; k < 2; k++ {
		j := engine.NextWord(1, 37)
		for i := 0; i < 3; i++ {
			input[i+j-1] = pattern[i]
		}
	}
	for k := 0; k < 3; k++ {
		j := engine.NextWord(1, 37)
		for i := 1; i < 3; i++ {
			input[i+j-1] = pattern[i]
		}
	}

	j := engine.NextWord(1, 7)
	for i := 0; i < 3; i++ {
		input[i+j-1] = pattern[i]
	}

	j = engine.NextWord(10, 13)
	for i := 0; i < 2; i++ {
		input[i+j-1] = pattern[i]
	}
	for i := 1; i < 3; i++ {
		input[i+j] = pattern[i]
	}

	j = engine.NextWord(17, 23)
	input[j-1] = pattern[0]
	for i := 0; i < 3; i++ {
		input[j+i] = pattern[i]
	}

	j = engine.NextWord(27, 35)
	input[j-1] = pattern[0]
	input[j] = pattern[1]
	for i := 0; i < 3; i++ {
		input[j+i+1] = pattern[i]
	}

	for i := 2; i < MaxTestLength; i++ {
		if input[i-2] == pattern[0] && input[i-1] == pattern[1] && input[i] == pattern[2] {
			output[i] = 1
		}
	}
	return &Test{Inputs: [][]word.Word{pattern, input}, Outputs: [][]word.Word{output}}, nil
}

func randomTestSequenceGapInterpolator(seed uint32) (*Test, error) {
	engine := rng.NewLuaRandom(int32(seed))
	lengths := []int{5, 4, 4, 4, 5, 4, 5, 4, 4}
	var in0, out0 []word.Word
	for _, length := range lengths {
		min := engine.NextWord(10, 90)
		max := min + length - 1
		missing := engine.NextWord(min+1, max-1)
		start := len(in0)
		for v := min; v <= max; v++ {
			if v != missing {
				in0 = append(in0, word.Word(v))
			}
		}
		for i := len(in0) - 1; i > start; i-- {
			j := engine.NextWord(start, i)
			in0[i], in0[j] = in0[j], in0[i]
		}
		in0 = append(in0, 0)
		out0 = append(out0, word.Word(missing))
	}
	return &Test{Inputs: [][]word.Word{in0}, Outputs: [][]word.Word{out0}}, nil
}

func randomTestDecimalToOctalConverter(seed uint32) (*Test, error) {
	engine := rng.NewLuaRandom(int32(seed))
	in0, out0 := zeroVec(), zeroVec()
	for i := 0; i < MaxTestLength; i++ {
		v := engine.NextWord(1, 63)
		in0[i] = word.Word(v)
		out0[i] = word.Word((v/8)*10 + v%8)
	}
	return &Test{Inputs: [][]word.Word{in0}, Outputs: [][]word.Word{out0}}, nil
}

// randomTestProlongedSequenceSorter forces at least one digit to never
// appear in the input; without a guaranteed absentee there are counting
// shortcuts that trivialize the level.
func randomTestProlongedSequenceSorter(seed uint32) (*Test, error) {
	engine := rng.NewLuaRandom(int32(seed))
	in0 := zeroVec()
	var seen [10]bool
	unseen := 10
	for i := 0; i < MaxTestLength-1; i++ {
		for {
			in0[i] = word.Word(engine.NextWord(0, 9))
			if unseen != 1 || seen[in0[i]] {
				break
			}
		}
		if !seen[in0[i]] {
			seen[in0[i]] = true
			unseen--
		}
	}
	in0[MaxTestLength-1] = -1

	out0 := append([]word.Word(nil), in0...)
	slices.Sort(out0[:MaxTestLength-1])
	return &Test{Inputs: [][]word.Word{in0}, Outputs: [][]word.Word{out0}}, nil
}

// primeFactorCache holds the ascending prime factorization of every two
// digit number. The generator's accept loop re-rolls entire input sets
// until the factor stream is exactly one test long, so factoring inline
// would dominate generation time.
var primeFactorCache = func() [100][]word.Word {
	var res [100][]word.Word
	for n := 10; n < 100; n++ {
		v := n
		fac := 2
		for v >= fac*fac {
			if v%fac == 0 {
				res[n] = append(res[n], word.Word(fac))
				v /= fac
			} else {
				fac++
			}
		}
		res[n] = append(res[n], word.Word(v))
	}
	return res
}()

func randomTestPrimeFactorCalculator(seed uint32) (*Test, error) {
	engine := rng.NewLuaRandom(int32(seed))
	in0 := make([]word.Word, 10)
	for {
		sum := 0
		for i := 0; i < 10; i++ {
			v := engine.NextWord(10, 99)
			in0[i] = word.Word(v)
			sum += len(primeFactorCache[v]) + 1
		}
		if sum == MaxTestLength-1 {
			break
		}
	}
	out0 := make([]word.Word, 0, MaxTestLength-1)
	for _, v := range in0 {
		out0 = append(out0, primeFactorCache[v]...)
		out0 = append(out0, 0)
	}
	return &Test{Inputs: [][]word.Word{in0}, Outputs: [][]word.Word{out0}}, nil
}

func randomTestSignalExponentiator(seed uint32) (*Test, error) {
	engine := rng.NewLuaRandom(int32(seed))
	inA, inB, out0 := zeroVec(), zeroVec(), zeroVec()
	// Highest exponent per base that stays within the word range; slot 0 is
	// padding since the Lua original indexes from 1.
	maxExp := [11]int{0, 10, 9, 6, 4, 4, 3, 3, 3, 3, 2}
	for i := 0; i < MaxTestLength; i++ {
		a := engine.NextWord(1, 10)
		b := engine.NextWord(1, maxExp[a])
		inA[i] = word.Word(a)
		inB[i] = word.Word(b)
		pow := 1
		for k := 0; k < b; k++ {
			pow *= a
		}
		out0[i] = word.Word(pow)
	}
	return &Test{Inputs: [][]word.Word{inA, inB}, Outputs: [][]word.Word{out0}}, nil
}

// randomTestT20NodeEmulator scripts a tiny two-register machine: opcode 0/1
// load P/Q from the value stream, 2 swaps, 3 adds Q into P, 4 emits P.
func randomTestT20NodeEmulator(seed uint32) (*Test, error) {
	engine := rng.NewLuaRandom(int32(seed))
	instructions := zeroVec()
	instructions[0] = 0
	instructions[1] = 1
	values := []word.Word{0, 0}
	var out0 []word.Word

	p, q := 0, 0
	for i := 2; i < MaxTestLength; i++ {
		op := engine.NextWord(0, 4)
		instructions[i] = word.Word(op)
		switch op {
		case 0:
			p = engine.NextWord(10, 99)
			values = append(values, word.Word(p))
		case 1:
			q = engine.NextWord(10, 99)
			values = append(values, word.Word(q))
		case 2:
			p, q = q, p
		case 3:
			p += q
		default:
			out0 = append(out0, word.Clamp(p))
		}
	}
	t := &Test{Inputs: [][]word.Word{instructions, values}, Outputs: [][]word.Word{out0}}
	clampTestValues(t)
	return t, nil
}

// randomTestT31NodeEmulator scripts an 8-slot RAM: a 0 command writes
// (index, value), a 1 command reads back an index. Reads of never-written
// slots are not emitted, so 0 doubles as the empty-slot sentinel.
func randomTestT31NodeEmulator(seed uint32) (*Test, error) {
	engine := rng.NewLuaRandom(int32(seed))
	var in0, out0 []word.Word
	var memory [8]int
	for {
		index := engine.NextWord(0, 7)
		value := engine.NextWord(10, 99)
		if engine.NextWord(0, 1) != 0 {
			if memory[index] != 0 {
				in0 = append(in0, 1, word.Word(index))
				out0 = append(out0, word.Word(memory[index]))
			}
		} else {
			in0 = append(in0, 0, word.Word(index), word.Word(value))
			memory[index] = value
		}
		if len(in0) > 36 {
			break
		}
	}
	return &Test{Inputs: [][]word.Word{in0}, Outputs: [][]word.Word{out0}}, nil
}

func randomTestWaveCollapseSupervisor(seed uint32) (*Test, error) {
	engine := rng.NewLuaRandom(int32(seed))
	inputs := [][]word.Word{zeroVec(), zeroVec(), zeroVec(), zeroVec()}
	out0 := zeroVec()
	var sums [4]int
	for i := 0; i < MaxTestLength; i++ {
		for j := 0; j < 4; j++ {
			n := engine.NextWord(0, 1)
			if i > 0 && int(out0[i-1]) == j+1 {
				n = engine.NextWord(-1, 0)
			}
			inputs[j][i] = word.Word(n)
			sums[j] += n
		}
		best := 0
		for j := 1; j < 4; j++ {
			if sums[j] > sums[best] {
				best = j
			}
		}
		out0[i] = word.Word(best + 1)
	}
	return &Test{Inputs: inputs, Outputs: [][]word.Word{out0}}, nil
}

func intAbs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
