package seed

import (
	"math"
	"math/bits"
)

// Random is an sfc32 generator. The zero value is usable but degenerate;
// construct one with [New] or [FromToken].
type Random struct {
	a, b, c, d uint32
}

// New returns a generator starting at s.
func New(s State) *Random {
	return &Random{a: s.A, b: s.B, c: s.C, d: s.D}
}

// FromToken decodes tok and returns a generator seeded from it.
func FromToken(tok Token) (*Random, error) {
	s, err := DeriveState(tok)
	if err != nil {
		return nil, err
	}
	return New(s), nil
}

// State returns a snapshot of the current state. New(r.State()) continues
// the exact sequence r would produce.
func (r *Random) State() State {
	return State{A: r.a, B: r.b, C: r.c, D: r.d}
}

// Uint32 advances the generator and returns the raw 32-bit output.
func (r *Random) Uint32() uint32 {
	t := r.a + r.b
	r.a = r.b ^ (r.b >> 9)
	r.b = r.c + (r.c << 3)
	r.c = bits.RotateLeft32(r.c, 21)
	r.d++
	t += r.d
	r.c += t
	return t
}

// Float64 returns a number in [0, 1) with 32 bits of resolution.
func (r *Random) Float64() float64 {
	return float64(r.Uint32()) / (1 << 32)
}

// Int returns an integer in [lo, hi], both ends inclusive.
func (r *Random) Int(lo, hi int) int {
	return int(math.Floor(r.Float64()*float64(hi-lo+1))) + lo
}

// CoinToss reports true with the given percent chance.
func (r *Random) CoinToss(percent float64) bool {
	return r.Float64()*100 < percent
}

// Shuffle returns a Fisher-Yates shuffled copy of s. The input is not
// modified.
func Shuffle[T any](r *Random, s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	for i := len(out) - 1; i > 0; i-- {
		j := int(math.Floor(r.Float64() * float64(i+1)))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Pick returns a uniformly chosen element of s. It panics if s is empty.
func Pick[T any](r *Random, s []T) T {
	return s[int(math.Floor(r.Float64()*float64(len(s))))]
}
