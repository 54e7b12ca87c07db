// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package prng provides the seeded pseudo-random generator used to shuffle
voting rounds.

# Why a fixed algorithm

A saved round stores only its original item order and a 32-bit seed. Loading
re-derives the shuffled order, so the generator output must never change
between releases or platforms. MT19937 (init_genrand seeding) is used with a
descending Fisher-Yates shuffle and rejection-sampled bounded draws:

	rng := prng.New(seed)
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})

Each round owns its generator; there is no package-level state.
*/
package prng
