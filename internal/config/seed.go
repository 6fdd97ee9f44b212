package config

import (
	"strconv"

	"voidminer/internal/domain/numeric"
)

// SeedValue turns the configured seed into the generator seed. Numeric
// strings are used as-is; anything else is hashed.
func (s SectorConfig) SeedValue() uint32 {
	if n, err := strconv.ParseUint(s.Seed, 10, 32); err == nil {
		return uint32(n)
	}
	seed := s.Seed
	if seed == "" {
		seed = s.ID
	}
	return numeric.SeedFromString(seed)
}
