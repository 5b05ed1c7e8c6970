// SPDX-License-Identifier: MIT

package permute

import (
	"errors"
	"math/rand"
)

// DefaultSeed is the fixed seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// ErrNegativeLength is returned by Range for n < 0.
var ErrNegativeLength = errors.New("permute: negative length")

// Generator produces uniformly random permutations from a seeded stream.
type Generator struct {
	seed int64
	rng  *rand.Rand
}

// New returns a Generator seeded with seed (0 ⇒ DefaultSeed).
//
// Complexity: O(1).
func New(seed int64) *Generator {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}
	return &Generator{seed: s, rng: rand.New(rand.NewSource(s))}
}

// Seed returns the effective seed.
func (g *Generator) Seed() int64 { return g.seed }

// UniquePermutation returns a uniformly random bijection on [0, n).
// n <= 0 yields an empty permutation.
//
// Complexity: O(n) time, O(n) space.
func (g *Generator) UniquePermutation(n int) []int {
	if n <= 0 {
		return []int{}
	}
	p, _ := Range(n, g.rng)
	return p
}

// Derive creates an independent deterministic Generator for a stream id.
// The parent advances by one draw, so repeated Derive calls with the same
// id still yield different children.
//
// Complexity: O(1).
func (g *Generator) Derive(stream uint64) *Generator {
	s := deriveSeed(g.rng.Int63(), stream)
	if s == 0 {
		s = DefaultSeed
	}
	return &Generator{seed: s, rng: rand.New(rand.NewSource(s))}
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64-style finalizer (Vigna 2014 constants).
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Shuffle performs an in-place Fisher–Yates shuffle of a using rng.
// If rng==nil, the DefaultSeed stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle(a []int, rng *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}
	r := rng
	if r == nil {
		r = rand.New(rand.NewSource(DefaultSeed))
	}
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Range returns a random permutation of 0..n-1 drawn from rng
// (nil ⇒ DefaultSeed stream).
//
// Errors: ErrNegativeLength for n < 0.
// Complexity: O(n) time, O(n) space.
func Range(n int, rng *rand.Rand) ([]int, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(p, rng)
	return p, nil
}
