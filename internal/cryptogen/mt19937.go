// mt19937.go
package cryptogen

const (
	mtArraySize   = 624
	mtOffset      = 397
	mtMultiplier  = 1812433253
	mtUpperMask   = 0x80000000
	mtLowerMask   = 0x7fffffff
	mtCoefficient = 0x9908b0df
	mtTemperMask1 = 0x9d2c5680
	mtTemperMask2 = 0xefc60000
)

// mt19937 is a 32-bit Mersenne Twister PRNG.
type mt19937 struct {
	state [mtArraySize]uint32
	pos   int
}

// newMT19937 initializes the state array from a 32-bit seed.
func newMT19937(seed uint32) *mt19937 {
	var mt mt19937
	mt.state[0] = seed
	for i := 1; i < len(mt.state); i++ {
		mt.state[i] = mtMultiplier*
			(mt.state[i-1]^(mt.state[i-1]>>30)) +
			uint32(i)
	}
	mt.twist()
	return &mt
}

// twist scrambles the state array.
func (mt *mt19937) twist() {
	for i := range mt.state {
		n := (mt.state[i] & mtUpperMask) | (mt.state[(i+1)%len(mt.state)] & mtLowerMask)
		mt.state[i] = mt.state[(i+mtOffset)%len(mt.state)] ^ (n >> 1)
		if n&1 == 1 {
			mt.state[i] ^= mtCoefficient
		}
	}
}

// temper applies the output transformation.
func temper(n uint32) uint32 {
	n ^= n >> 11
	n ^= (n << 7) & mtTemperMask1
	n ^= (n << 15) & mtTemperMask2
	n ^= n >> 18

	return n
}

// uint32 returns the next pseudo-random 32-bit value.
func (mt *mt19937) uint32() uint32 {
	n := temper(mt.state[mt.pos])
	mt.pos++
	if mt.pos == len(mt.state) {
		mt.twist()
		mt.pos = 0
	}
	return n
}

// intn returns a uniform value in [0, n) using rejection sampling.
// n must be in [1, 1<<32].
func (mt *mt19937) intn(n int) int {
	max := uint64(n)
	limit := uint32((1 << 32 / max) * max - 1)
	for {
		if v := mt.uint32(); v <= limit {
			return int(uint64(v) % max)
		}
	}
}
