package worldgen

import (
	"fmt"
	"math"

	"voidminer/internal/domain/numeric"
)

const (
	IntegrityJitter      = 12
	MinIntegrity         = 35
	MaxIntegrity         = 100
	MinYieldScale        = 0.85
	MaxYieldScale        = 2.2
	DirectionMaxAttempts = 24
)

var fallbackDirection = Vec3{X: 0, Y: 1, Z: 0}

// Generate spawns every zone's targets from one RNG stream seeded by seed.
// Zones are processed in the given order and targets in spawn-index order,
// so the output is a pure function of (seed, zones, classes).
func Generate(seed uint32, zones []ZoneDefinition, classes ClassCatalog) (WorldModel, error) {
	rng := numeric.NewRNG(seed)
	targets := make([]Target, 0, TotalPopulation(zones))
	for _, zone := range zones {
		for i := 0; i < zone.TargetCount; i++ {
			var t Target
			var err error
			t, rng, err = spawnTarget(rng, zone, i, classes)
			if err != nil {
				return WorldModel{}, err
			}
			targets = append(targets, t)
		}
	}
	zonesCopy := make([]ZoneDefinition, len(zones))
	copy(zonesCopy, zones)
	return WorldModel{Seed: seed, Zones: zonesCopy, Targets: targets}, nil
}

func spawnTarget(rng numeric.RNG, zone ZoneDefinition, index int, classes ClassCatalog) (Target, numeric.RNG, error) {
	classID, rng := pickClass(rng, zone.ClassWeights)
	class, err := classes.Class(classID)
	if err != nil {
		return Target{}, rng, fmt.Errorf("zone %s: %w", zone.ID, err)
	}

	radius, rng := rng.Range(class.MinRadius, class.MaxRadius)
	jitter, rng := rng.Range(-IntegrityJitter, IntegrityJitter)
	integrity := numeric.Clamp(class.BaseIntegrity+jitter, MinIntegrity, MaxIntegrity)

	u, rng := rng.Next()
	distance := math.Cbrt(u) * zone.MaxSpawnRadius
	dir, rng := sampleDirection(rng)

	return Target{
		ID:      fmt.Sprintf("%s-%03d", zone.ID, index),
		ZoneID:  zone.ID,
		ClassID: class.ID,
		Position: Vec3{
			X: numeric.Round4(zone.Center.X + dir.X*distance),
			Y: numeric.Round4(zone.Center.Y + dir.Y*distance),
			Z: numeric.Round4(zone.Center.Z + dir.Z*distance),
		},
		Radius:        numeric.Round4(radius),
		Integrity:     numeric.Round4(integrity),
		ExpectedYield: scaleYield(class, radius),
	}, rng, nil
}

func pickClass(rng numeric.RNG, weights []ClassWeight) (string, numeric.RNG) {
	total := 0.0
	for _, w := range weights {
		if w.Weight > 0 {
			total += w.Weight
		}
	}
	r, rng := rng.Next()
	if len(weights) == 0 {
		return "", rng
	}
	roll := r * total
	acc := 0.0
	for _, w := range weights {
		if w.Weight <= 0 {
			continue
		}
		acc += w.Weight
		if roll < acc {
			return w.ClassID, rng
		}
	}
	return weights[len(weights)-1].ClassID, rng
}

// sampleDirection draws cube points until one lands inside the unit ball
// (excluding the origin). After DirectionMaxAttempts rejections it returns
// the fixed up vector; existing seeds depend on that fallback.
func sampleDirection(rng numeric.RNG) (Vec3, numeric.RNG) {
	for attempt := 0; attempt < DirectionMaxAttempts; attempt++ {
		var x, y, z float64
		x, rng = rng.Range(-1, 1)
		y, rng = rng.Range(-1, 1)
		z, rng = rng.Range(-1, 1)
		lenSq := x*x + y*y + z*z
		if lenSq <= 0 || lenSq > 1 {
			continue
		}
		l := math.Sqrt(lenSq)
		return Vec3{X: x / l, Y: y / l, Z: z / l}, rng
	}
	return fallbackDirection, rng
}

func scaleYield(class ClassDefinition, radius float64) map[string]float64 {
	scale := 1.0
	if class.MinRadius > 0 {
		scale = radius / class.MinRadius
	}
	scale = numeric.Clamp(scale, MinYieldScale, MaxYieldScale)
	out := make(map[string]float64, len(class.Yield))
	for id, amount := range class.Yield {
		out[id] = numeric.Round4(amount * scale)
	}
	return out
}
