package catalog

import (
	"slices"

	"github.com/killerbee13/tis100-go/node"
	"github.com/killerbee13/tis100-go/rng"
	"github.com/killerbee13/tis100-go/word"
)

// zeroVec returns a MaxTestLength-long slice of zero words, matching the
// reference's zero_vec() helper used to pre-size output columns before
// filling them in by index.
func zeroVec() []word.Word {
	return make([]word.Word, MaxTestLength)
}

// makeRandomArray fills size words drawn from engine.NextWord(min,max),
// matching make_random_array.
func makeRandomArray(engine *rng.XorShift128, size int, min, max int) []word.Word {
	out := make([]word.Word, size)
	for i := range out {
		out[i] = word.Word(engine.NextWord(min, max))
	}
	return out
}

// makeCompositeArray fills a 0-terminated run-length sequence: each
// iteration draws a sublist length in [sublistMin,sublistMax), fills it
// with random values, and appends a terminating 0, until size words have
// accumulated; the last word is always forced back to 0 if truncation
// landed mid-sublist. Matches make_composite_array.
func makeCompositeArray(engine *rng.XorShift128, size, sublistMin, sublistMax int, valueMin, valueMax int) []word.Word {
	var list []word.Word
	for len(list) < size {
		sublistSize := int(engine.NextUint32In(uint32(sublistMin), uint32(sublistMax)))
		for i := 0; i < sublistSize; i++ {
			list = append(list, word.Word(engine.NextWord(valueMin, valueMax)))
		}
		list = append(list, 0)
	}
	if len(list) > size {
		list = list[:size]
		list[size-1] = 0
	}
	return list
}

// clampTestValues saturates every input/output value in t into
// [word.Min, word.Max]; generators are not individually responsible for
// staying in range.
func clampTestValues(t *Test) {
	clamp := func(vs []word.Word) {
		for i, v := range vs {
			vs[i] = word.Clamp(int(v))
		}
	}
	for i := range t.Inputs {
		clamp(t.Inputs[i])
	}
	for i := range t.Outputs {
		clamp(t.Outputs[i])
	}
}

// forEachSubsequence calls f on each maximal run of vs delimited by
// (and excluding) occurrences of delim, matching for_each_subsequence_of.
func forEachSubsequence(vs []word.Word, delim word.Word, f func(sub []word.Word)) {
	start := 0
	for i, v := range vs {
		if v == delim {
			f(vs[start:i])
			start = i + 1
		}
	}
}

func randomTestSelfTestDiagnostic(seed uint32) (*Test, error) {
	in0 := makeRandomArray(rng.NewXorShift128(seed), MaxTestLength, 10, 100)
	in1 := makeRandomArray(rng.NewXorShift128(seed+1), MaxTestLength, 10, 100)
	out0 := append([]word.Word(nil), in0...)
	out1 := append([]word.Word(nil), in1...)
	return &Test{
		Inputs:  [][]word.Word{in0, in1},
		Outputs: [][]word.Word{out0, out1},
	}, nil
}

func randomTestSignalAmplifier(seed uint32) (*Test, error) {
	in0 := makeRandomArray(rng.NewXorShift128(seed), MaxTestLength, 10, 100)
	out0 := zeroVec()
	for i, x := range in0 {
		out0[i] = word.Clamp(2 * int(x))
	}
	return &Test{Inputs: [][]word.Word{in0}, Outputs: [][]word.Word{out0}}, nil
}

func randomTestDifferentialConverter(seed uint32) (*Test, error) {
	in0 := makeRandomArray(rng.NewXorShift128(seed), MaxTestLength, 10, 100)
	in1 := makeRandomArray(rng.NewXorShift128(seed+1), MaxTestLength, 10, 100)
	out0, out1 := zeroVec(), zeroVec()
	for i := range in0 {
		out0[i] = word.Sub(in0[i], in1[i])
		out1[i] = word.Sub(in1[i], in0[i])
	}
	return &Test{Inputs: [][]word.Word{in0, in1}, Outputs: [][]word.Word{out0, out1}}, nil
}

func randomTestSignalComparator(seed uint32) (*Test, error) {
	in0 := makeRandomArray(rng.NewXorShift128(seed), MaxTestLength, -2, 3)
	gt, eq, lt := zeroVec(), zeroVec(), zeroVec()
	for i, x := range in0 {
		gt[i] = boolWord(x > 0)
		eq[i] = boolWord(x == 0)
		lt[i] = boolWord(x < 0)
	}
	return &Test{Inputs: [][]word.Word{in0}, Outputs: [][]word.Word{gt, eq, lt}}, nil
}

func randomTestSignalMultiplexer(seed uint32) (*Test, error) {
	in0 := makeRandomArray(rng.NewXorShift128(seed), MaxTestLength, -30, 1)
	in2 := makeRandomArray(rng.NewXorShift128(seed+1), MaxTestLength, 0, 31)
	in1 := makeRandomArray(rng.NewXorShift128(seed+2), MaxTestLength, -1, 2)
	out0 := zeroVec()
	for i, x := range in1 {
		if x <= 0 {
			out0[i] = word.Add(out0[i], in0[i])
		}
		if x >= 0 {
			out0[i] = word.Add(out0[i], in2[i])
		}
	}
	t := &Test{Inputs: [][]word.Word{in0, in1, in2}, Outputs: [][]word.Word{out0}}
	clampTestValues(t)
	return t, nil
}

func randomTestSequenceGenerator(seed uint32) (*Test, error) {
	const n = 13
	in0 := makeRandomArray(rng.NewXorShift128(seed), n, 10, 100)
	engine := rng.NewXorShift128(seed + 1)
	in1 := makeRandomArray(engine, n, 10, 100)
	idx := int(engine.NextUint32In(0, n))
	same := word.Word(engine.NextWord(10, 100))
	in0[idx], in1[idx] = same, same

	out0 := make([]word.Word, 0, n*3)
	for i := 0; i < n; i++ {
		lo, hi := in0[i], in1[i]
		if lo > hi {
			lo, hi = hi, lo
		}
		out0 = append(out0, lo, hi, 0)
	}
	return &Test{Inputs: [][]word.Word{in0, in1}, Outputs: [][]word.Word{out0}}, nil
}

func randomTestSequenceCounter(seed uint32) (*Test, error) {
	in0 := makeCompositeArray(rng.NewXorShift128(seed), MaxTestLength, 0, 6, 10, 100)
	var outSum, outCount []word.Word
	var sum, count word.Word
	for _, w := range in0 {
		if w == 0 {
			outSum = append(outSum, sum)
			outCount = append(outCount, count)
			sum, count = 0, 0
		} else {
			count = word.Add(count, 1)
			sum = word.Add(sum, w)
		}
	}
	t := &Test{Inputs: [][]word.Word{in0}, Outputs: [][]word.Word{outSum, outCount}}
	clampTestValues(t)
	return t, nil
}

func randomTestSequenceReverser(seed uint32) (*Test, error) {
	in0 := makeCompositeArray(rng.NewXorShift128(seed), MaxTestLength, 0, 6, 10, 100)
	out0 := append([]word.Word(nil), in0...)
	forEachSubsequence(out0, 0, reverseInPlace)
	return &Test{Inputs: [][]word.Word{in0}, Outputs: [][]word.Word{out0}}, nil
}

func randomTestImageTestPattern1(uint32) (*Test, error) {
	img := node.NewImage(ImageWidth, ImageHeight)
	for i := range img.Pixels {
		img.Pixels[i] = node.White
	}
	return &Test{Images: []node.Image{img}}, nil
}

func randomTestSignalEdgeDetector(seed uint32) (*Test, error) {
	engine := rng.NewXorShift128(seed)
	in0 := zeroVec()
	in0[1] = word.Word(engine.NextWord(25, 75))
	for i := 2; i < MaxTestLength; i++ {
		var delta int
		switch engine.NextUint32In(0, 6) {
		case 1:
			delta = engine.NextWord(-11, -8)
		case 2:
			delta = engine.NextWord(9, 12)
		default:
			delta = engine.NextWord(-4, 5)
		}
		in0[i] = in0[i-1] + word.Word(delta)
	}
	out0 := zeroVec()
	var prev word.Word
	for i, w := range in0 {
		d := int(w) - int(prev)
		if d < 0 {
			d = -d
		}
		out0[i] = boolWord(d >= 10)
		prev = w
	}
	t := &Test{Inputs: [][]word.Word{in0}, Outputs: [][]word.Word{out0}}
	clampTestValues(t)
	return t, nil
}

func randomTestInterruptHandler(seed uint32) (*Test, error) {
	engine := rng.NewXorShift128(seed)
	inputs := [][]word.Word{zeroVec(), zeroVec(), zeroVec(), zeroVec()}
	out0 := zeroVec()
	var lines [4]bool
	for m := 1; m < MaxTestLength; m++ {
		r := engine.NextUint32In(0, 6)
		if r < 4 {
			lines[r] = !lines[r]
			if lines[r] {
				out0[m] = word.Word(r + 1)
			} else {
				out0[m] = 0
			}
		} else {
			out0[m] = 0
		}
		for n := 0; n < 4; n++ {
			inputs[n][m] = boolWord(lines[n])
		}
	}
	return &Test{Inputs: inputs, Outputs: [][]word.Word{out0}}, nil
}

// Sandbox levels have no data to validate against: one empty input column
// and one empty output column means every run trivially completes.
func randomTestSimpleSandbox(uint32) (*Test, error) {
	return &Test{Inputs: [][]word.Word{nil}, Outputs: [][]word.Word{nil}}, nil
}

func randomTestStackMemorySandbox(uint32) (*Test, error) {
	return &Test{Inputs: [][]word.Word{nil}, Outputs: [][]word.Word{nil}}, nil
}

func randomTestSignalPatternDetector(seed uint32) (*Test, error) {
	engine := rng.NewXorShift128(seed)
	in0 := makeRandomArray(engine, MaxTestLength, 0, 6)
	for i := 0; i < 8; i++ {
		num := int(engine.NextUint32In(0, 36))
		in0[num], in0[num+1], in0[num+2] = 0, 0, 0
		num = int(engine.NextUint32In(0, 35))
		in0[num] = word.Word(engine.NextWord(1, 6))
		in0[num+1] = 0
		in0[num+2] = 0
		in0[num+3] = word.Word(engine.NextWord(1, 6))
	}
	out0 := zeroVec()
	for j := 0; j < MaxTestLength; j++ {
		out0[j] = boolWord(j > 1 && in0[j-2] == 0 && in0[j-1] == 0 && in0[j] == 0)
	}
	return &Test{Inputs: [][]word.Word{in0}, Outputs: [][]word.Word{out0}}, nil
}

func randomTestSequencePeakDetector(seed uint32) (*Test, error) {
	engine := rng.NewXorShift128(seed)
	in0 := makeCompositeArray(engine, MaxTestLength, 3, 6, 10, 100)
	in0[MaxTestLength-2] = word.Word(engine.NextWord(10, 100))
	in0[len(in0)-1] = 0
	var outMin, outMax []word.Word
	forEachSubsequence(in0, 0, func(sub []word.Word) {
		if len(sub) == 0 {
			return
		}
		mn, mx := sub[0], sub[0]
		for _, v := range sub[1:] {
			if v < mn {
				mn = v
			}
			if v > mx {
				mx = v
			}
		}
		outMin = append(outMin, mn)
		outMax = append(outMax, mx)
	})
	return &Test{Inputs: [][]word.Word{in0}, Outputs: [][]word.Word{outMin, outMax}}, nil
}

func randomTestSignalMultiplier(seed uint32) (*Test, error) {
	in0 := makeRandomArray(rng.NewXorShift128(seed), MaxTestLength, 0, 10)
	in1 := makeRandomArray(rng.NewXorShift128(seed+1), MaxTestLength, 0, 10)
	out0 := zeroVec()
	for i := range out0 {
		out0[i] = in0[i] * in1[i]
	}
	return &Test{Inputs: [][]word.Word{in0, in1}, Outputs: [][]word.Word{out0}}, nil
}

func randomTestImageTestPattern2(uint32) (*Test, error) {
	img := node.NewImage(ImageWidth, ImageHeight)
	for y := 0; y < ImageHeight; y++ {
		for x := 0; x < ImageWidth; x++ {
			if (x^y)%2 == 0 {
				img.Set(x, y, node.White)
			}
		}
	}
	return &Test{Images: []node.Image{img}}, nil
}

// randomTestExposureMaskViewer places nine non-touching rectangles. Some
// seeds pack the first eight so tightly that no ninth position exists; once
// more than 250 placements of one rectangle have failed (the 251st failure)
// the seed is skipped (nil, nil) rather than looping
// forever. The 250 cutoff has rare false positives, which is acceptable:
// a skip is a non-event for the grader.
func randomTestExposureMaskViewer(seed uint32) (*Test, error) {
	engine := rng.NewXorShift128(seed)
	img := node.NewImage(ImageWidth, ImageHeight)
	var in0 []word.Word
	for i := 0; i < 9; i++ {
		iterations := 0
		var w, h, xc, yc int
		for {
			if iterations > 250 {
				return nil, nil
			}
			w = engine.NextWord(3, 6)
			h = engine.NextWord(3, 6)
			xc = engine.NextWord(1, ImageWidth-1-w)
			yc = engine.NextWord(1, ImageHeight-1-h)
			overlap := false
		scan:
			for k := -1; k < h+1; k++ {
				for j := -1; j < w+1; j++ {
					if img.At(xc+j, yc+k) != node.Black {
						overlap = true
						break scan
					}
				}
			}
			if !overlap {
				break
			}
			iterations++
		}
		in0 = append(in0, word.Word(xc), word.Word(yc), word.Word(w), word.Word(h))
		for k := 0; k < h; k++ {
			for j := 0; j < w; j++ {
				img.Set(xc+j, yc+k, node.White)
			}
		}
	}
	return &Test{Inputs: [][]word.Word{in0}, Images: []node.Image{img}}, nil
}

func randomTestHistogramViewer(seed uint32) (*Test, error) {
	engine := rng.NewXorShift128(seed)
	in0 := make([]word.Word, ImageWidth)
	in0[0] = word.Word(engine.NextWord(3, 14))
	for x := 1; x < ImageWidth; x++ {
		if engine.NextUint32In(0, 4) != 0 {
			v := int(in0[x-1]) + engine.NextWord(-2, 3)
			if v < 1 {
				v = 1
			}
			if v > ImageHeight-1 {
				v = ImageHeight - 1
			}
			in0[x] = word.Word(v)
		} else {
			in0[x] = word.Word(engine.NextWord(3, 14))
		}
	}
	img := node.NewImage(ImageWidth, ImageHeight)
	for x := 0; x < ImageWidth; x++ {
		for y := ImageHeight - int(in0[x]); y < ImageHeight; y++ {
			img.Set(x, y, node.White)
		}
	}
	return &Test{Inputs: [][]word.Word{in0}, Images: []node.Image{img}}, nil
}

// The console sandbox's canvas is the one image in the catalog that is not
// 30x18: the full 36x22 console.
func randomTestImageConsoleSandbox(uint32) (*Test, error) {
	return &Test{Inputs: [][]word.Word{nil}, Images: []node.Image{node.NewImage(36, 22)}}, nil
}

func randomTestSignalWindowFilter(seed uint32) (*Test, error) {
	in0 := makeRandomArray(rng.NewXorShift128(seed), MaxTestLength, 10, 100)
	out3, out5 := zeroVec(), zeroVec()
	t3, t5 := 0, 0
	for i := 0; i < MaxTestLength; i++ {
		t3 += int(in0[i])
		t5 += int(in0[i])
		if i >= 3 {
			t3 -= int(in0[i-3])
		}
		if i >= 5 {
			t5 -= int(in0[i-5])
		}
		out3[i] = word.Word(t3)
		out5[i] = word.Word(t5)
	}
	return &Test{Inputs: [][]word.Word{in0}, Outputs: [][]word.Word{out3, out5}}, nil
}

func randomTestSignalDivider(seed uint32) (*Test, error) {
	in0 := makeRandomArray(rng.NewXorShift128(seed), MaxTestLength, 10, 100)
	in1 := makeRandomArray(rng.NewXorShift128(seed+1), MaxTestLength, 1, 10)
	quo, rem := zeroVec(), zeroVec()
	for i := 0; i < MaxTestLength; i++ {
		quo[i] = in0[i] / in1[i]
		rem[i] = in0[i] % in1[i]
	}
	return &Test{Inputs: [][]word.Word{in0, in1}, Outputs: [][]word.Word{quo, rem}}, nil
}

// Note: both input columns reseed from the same value; the index stream
// deliberately replays the prefix of the table stream's randomness.
func randomTestSequenceIndexer(seed uint32) (*Test, error) {
	table := makeRandomArray(rng.NewXorShift128(seed), 10, 100, 1000)
	table = append(table, 0)
	indexes := makeRandomArray(rng.NewXorShift128(seed), MaxTestLength, 0, 10)
	out0 := zeroVec()
	for i := 0; i < MaxTestLength; i++ {
		out0[i] = table[indexes[i]]
	}
	return &Test{Inputs: [][]word.Word{table, indexes}, Outputs: [][]word.Word{out0}}, nil
}

func randomTestSequenceSorter(seed uint32) (*Test, error) {
	in0 := makeCompositeArray(rng.NewXorShift128(seed), MaxTestLength, 4, 8, 10, 100)
	out0 := append([]word.Word(nil), in0...)
	forEachSubsequence(out0, 0, func(sub []word.Word) {
		slices.Sort(sub)
	})
	return &Test{Inputs: [][]word.Word{in0}, Outputs: [][]word.Word{out0}}, nil
}

// randomTestStoredImageDecoder emits (count, color) run-length pairs; runs
// can overshoot the canvas by up to 44 pixels, so the canvas is built with
// slack and truncated. Some seeds legitimately produce inputs longer than
// MaxTestLength; the level runs with the oversized test.
func randomTestStoredImageDecoder(seed uint32) (*Test, error) {
	engine := rng.NewXorShift128(seed)
	const imageSize = ImageWidth * ImageHeight
	var in0 []word.Word
	pixels := make([]node.Pixel, 0, imageSize+45)
	for len(pixels) < imageSize {
		count := engine.NextWord(20, 45)
		pix := engine.NextWord(0, 4)
		in0 = append(in0, word.Word(count), word.Word(pix))
		for c := 0; c < count; c++ {
			pixels = append(pixels, node.Pixel(pix))
		}
	}
	img := node.Image{Width: ImageWidth, Height: ImageHeight, Pixels: pixels[:imageSize]}
	return &Test{Inputs: [][]word.Word{in0}, Images: []node.Image{img}}, nil
}

func randomTestUnknown(seed uint32) (*Test, error) {
	engine := rng.NewXorShift128(seed)
	var out0 []word.Word
	for len(out0) < MaxTestLength {
		item := word.Word(engine.NextWord(0, 4))
		size := int(engine.NextUint32In(2, 5))
		for s := 0; s < size; s++ {
			out0 = append(out0, item)
		}
	}
	out0 = out0[:MaxTestLength]
	in0 := zeroVec()
	for j := 0; j < MaxTestLength; j++ {
		in0[j] = word.Word(int(out0[j])*25 + 12 + engine.NextWord(-6, 7))
	}
	out0[MaxTestLength-1] = -1
	in0[MaxTestLength-1] = -1
	var out1 []word.Word
	prev, count := word.Word(-1), word.Word(0)
	for _, curr := range out0 {
		if prev != curr {
			if prev >= 0 {
				out1 = append(out1, count, prev)
			}
			prev, count = curr, 1
		} else {
			count++
		}
	}
	return &Test{Inputs: [][]word.Word{in0}, Outputs: [][]word.Word{out0, out1}}, nil
}

func reverseInPlace(vs []word.Word) {
	for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
		vs[i], vs[j] = vs[j], vs[i]
	}
}

func boolWord(b bool) word.Word {
	if b {
		return 1
	}
	return 0
}
