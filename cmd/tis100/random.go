package main

import "math/rand/v2"

// randomStartSeed picks a starting seed for "-r N" when --seed was not
// given explicitly.
func randomStartSeed() uint32 {
	return rand.Uint32()
}
