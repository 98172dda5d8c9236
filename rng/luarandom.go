package rng

const (
	int32Max = int32(1<<31 - 1)
	int32Min = int32(-1 << 31)
)

// LuaRandom is a lagged-Fibonacci generator matching the initialization
// and stepping of Mono 2.6's System.Random, which is what the puzzle
// generators that target custom/Lua-flavored levels were built against.
// Reimplemented from the documented algorithm (seed-array construction,
// the two rolling cursors, and the double-to-int conversion), not
// transliterated from any third-party source text.
type LuaRandom struct {
	inext, inextp uint32
	seedArray     [56]int32
}

// NewLuaRandom seeds the generator from a signed 32-bit seed.
func NewLuaRandom(seed int32) *LuaRandom {
	r := &LuaRandom{inextp: 31}

	subtraction := seed
	if seed == int32Min {
		subtraction = int32Max
	} else if subtraction < 0 {
		subtraction = -subtraction
	}

	mj := int32(161803398) - subtraction
	r.seedArray[55] = mj
	mk := int32(1)
	for i := uint32(1); i < 55; i++ {
		ii := (21 * i) % 55
		r.seedArray[ii] = mk
		mk = mapNegative(mj - mk)
		mj = r.seedArray[ii]
	}
	for k := 0; k < 4; k++ {
		for i := uint32(1); i < 56; i++ {
			r.seedArray[i] = mapNegative(int32(uint32(r.seedArray[i]) - uint32(r.seedArray[1+(i+30)%55])))
		}
	}
	return r
}

func mapNegative(x int32) int32 {
	if x < 0 {
		x += int32Max
	}
	return x
}

// NextDouble returns the primitive [0,1) draw the integer generators are
// built on.
func (r *LuaRandom) NextDouble() float64 {
	r.inext++
	if r.inext >= 56 {
		r.inext = 1
	}
	r.inextp++
	if r.inextp >= 56 {
		r.inextp = 1
	}

	ret := r.seedArray[r.inext] - r.seedArray[r.inextp]
	if ret == int32Max {
		ret--
	}
	if ret < 0 {
		ret += int32Max
	}
	r.seedArray[r.inext] = ret

	return float64(ret) * (1.0 / float64(int32Max))
}

// NextInt returns a value in [min,max).
func (r *LuaRandom) NextInt(min, max int32) int32 {
	if max == min+1 {
		return min
	}
	return int32(r.NextDouble()*float64(max-min)) + min
}

// NextWord returns a value in [min,max] (inclusive). Unlike the word
// type itself, the result is NOT clamped into [-999,999]; callers that
// draw outside the word range are expected to clamp the finished test
// (clampTestValues), not individual draws.
func (r *LuaRandom) NextWord(min, max int) int {
	return int(r.NextInt(int32(min), int32(max)+1))
}

// LuaNext reproduces the wide-contract Lua-compatibility entry point:
// a and b may arrive in either order, and the result lies in
// [min(a,b), max(a,b)].
func (r *LuaRandom) LuaNext(a, b int32) int32 {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return r.NextInt(lo, hi+1)
}

// LuaNextUpTo reproduces the one-argument Lua form: LuaNext(1, max).
func (r *LuaRandom) LuaNextUpTo(max int32) int32 {
	return r.LuaNext(1, max)
}
