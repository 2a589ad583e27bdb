package skl

import (
	"crypto/rand"
	"math/bits"
	mrand "math/rand/v2"
)

// LevelGen draws the tower height of a newly inserted node, given the
// queue's current element count. It must return a value in [1, NumLevels].
type LevelGen func(currentLen int64) int32

// NewDynamicLevelGen returns a LevelGen seeded from crypto/rand so every
// Queue draws from its own independent source instead of math/rand's
// globally-locked default -- sharing that lock across every Insert would
// turn the fast path into a contention point.
//
// The height is a classic geometric draw (p=1/2), capped at
// bits.Len64(currentLen+2)+1 -- that is, floor(log2(currentLen+2))+2 -- so a
// small queue never grows a tower taller than it can use.
func NewDynamicLevelGen() LevelGen {
	var seed [32]byte
	if _, err := rand.Read(seed[:]); err != nil {
		seed[0] = 1
	}
	r := mrand.New(mrand.NewChaCha8(seed))

	return func(currentLen int64) int32 {
		maxLvl := int32(bits.Len64(uint64(currentLen)+2)) + 1
		if maxLvl > NumLevels {
			maxLvl = NumLevels
		}
		level := int32(1)
		for level < maxLvl && r.Uint64()&1 == 0 {
			level++
		}
		return level
	}
}
