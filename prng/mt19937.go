// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package prng

const (
	stateSize   = 624
	shiftSize   = 397
	matrixA     = 0x9908b0df
	upperMask   = 0x80000000
	lowerMask   = 0x7fffffff
	initMult    = 1812433253
	DefaultSeed = 5489
)

// MT19937 is the 32-bit Mersenne Twister seeded with init_genrand.
// The output sequence for a given seed matches the reference implementation
// by Matsumoto and Nishimura (and C++ std::mt19937).
type MT19937 struct {
	state [stateSize]uint32
	index int
}

// New returns a generator seeded with seed
func New(seed uint32) *MT19937 {
	m := &MT19937{}
	m.Seed(seed)
	return m
}

// Seed resets the generator state
func (m *MT19937) Seed(seed uint32) {
	m.state[0] = seed
	for i := 1; i < stateSize; i++ {
		prev := m.state[i-1]
		m.state[i] = initMult*(prev^(prev>>30)) + uint32(i)
	}
	m.index = stateSize
}

func (m *MT19937) twist() {
	for i := 0; i < stateSize; i++ {
		y := (m.state[i] & upperMask) | (m.state[(i+1)%stateSize] & lowerMask)
		next := m.state[(i+shiftSize)%stateSize] ^ (y >> 1)
		if y&1 != 0 {
			next ^= matrixA
		}
		m.state[i] = next
	}
	m.index = 0
}

// Uint32 returns the next tempered output
func (m *MT19937) Uint32() uint32 {
	if m.index >= stateSize {
		m.twist()
	}
	y := m.state[m.index]
	m.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Uint32n returns a uniform value in [0, n). Values from the top of the
// 32-bit range that would bias the modulo are rejected and redrawn.
// n must be > 0.
func (m *MT19937) Uint32n(n uint32) uint32 {
	if n == 0 {
		panic("prng: Uint32n called with n == 0")
	}
	const span = uint64(1) << 32
	limit := span - span%uint64(n)
	for {
		v := uint64(m.Uint32())
		if v < limit {
			return uint32(v % uint64(n))
		}
	}
}

// Shuffle permutes n elements with a descending Fisher-Yates walk:
// for i from n-1 down to 1, swap(i, j) with j = Uint32n(i+1).
func (m *MT19937) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(m.Uint32n(uint32(i + 1)))
		swap(i, j)
	}
}
