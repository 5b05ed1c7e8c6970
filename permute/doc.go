// SPDX-License-Identifier: MIT

// Package permute supplies deterministic random permutations.
//
// Goals:
//   - Determinism: same seed ⇒ identical permutations across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; every permutation is a bijection on [0, n).
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A Generator must not be shared
//     across goroutines; use Derive to create independent streams.
//
// A *Generator satisfies typedarray.Permuter:
//
//	g := permute.New(42)
//	shuffled, perm, err := arr.Randomize(g)
package permute
