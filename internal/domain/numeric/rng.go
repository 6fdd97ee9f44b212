package numeric

import "hash/fnv"

// RNG is a mulberry32 generator. It is a plain value: every draw returns the
// advanced generator, so callers thread it explicitly.
type RNG struct {
	State uint32 `json:"state"`
}

func NewRNG(seed uint32) RNG {
	return RNG{State: seed}
}

// Next returns a value in [0, 1).
func (r RNG) Next() (float64, RNG) {
	s := r.State + 0x6D2B79F5
	t := s
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	v := t ^ (t >> 14)
	return float64(v) / 4294967296.0, RNG{State: s}
}

func (r RNG) Range(lo, hi float64) (float64, RNG) {
	v, next := r.Next()
	return lo + (hi-lo)*v, next
}

func SeedFromString(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}
