package worldgen

import (
	"errors"
	"fmt"
)

var ErrUnknownClass = errors.New("unknown target class")

type Vec3 struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

type ClassDefinition struct {
	ID               string             `yaml:"id" json:"id"`
	Label            string             `yaml:"label" json:"label"`
	RiskRating       int                `yaml:"risk_rating" json:"risk_rating"`
	SignatureElement string             `yaml:"signature_element" json:"signature_element"`
	BaseIntegrity    float64            `yaml:"base_integrity" json:"base_integrity"`
	MinRadius        float64            `yaml:"min_radius" json:"min_radius"`
	MaxRadius        float64            `yaml:"max_radius" json:"max_radius"`
	Yield            map[string]float64 `yaml:"yield" json:"yield"`
}

// MixedYield reports whether at least two resources have a positive amount.
func (c ClassDefinition) MixedYield() bool {
	n := 0
	for _, v := range c.Yield {
		if v > 0 {
			n++
		}
	}
	return n >= 2
}

type ClassWeight struct {
	ClassID string  `yaml:"class" json:"class"`
	Weight  float64 `yaml:"weight" json:"weight"`
}

type ZoneDefinition struct {
	ID             string        `yaml:"id" json:"id"`
	Label          string        `yaml:"label" json:"label"`
	Center         Vec3          `yaml:"center" json:"center"`
	MaxSpawnRadius float64       `yaml:"max_spawn_radius" json:"max_spawn_radius"`
	TargetCount    int           `yaml:"target_count" json:"target_count"`
	ClassWeights   []ClassWeight `yaml:"class_weights" json:"class_weights"`
}

type Target struct {
	ID            string             `json:"id"`
	ZoneID        string             `json:"zone_id"`
	ClassID       string             `json:"class_id"`
	Position      Vec3               `json:"position"`
	Radius        float64            `json:"radius"`
	Integrity     float64            `json:"integrity"`
	ExpectedYield map[string]float64 `json:"expected_yield"`
}

type WorldModel struct {
	Seed    uint32           `json:"seed"`
	Zones   []ZoneDefinition `json:"zones"`
	Targets []Target         `json:"targets"`
}

type ClassCatalog map[string]ClassDefinition

func NewClassCatalog(defs []ClassDefinition) ClassCatalog {
	out := make(ClassCatalog, len(defs))
	for _, d := range defs {
		out[d.ID] = d
	}
	return out
}

func (c ClassCatalog) Class(id string) (ClassDefinition, error) {
	d, ok := c[id]
	if !ok {
		return ClassDefinition{}, fmt.Errorf("%w: %q", ErrUnknownClass, id)
	}
	return d, nil
}

func (w WorldModel) TargetByID(id string) (Target, bool) {
	for _, t := range w.Targets {
		if t.ID == id {
			return t, true
		}
	}
	return Target{}, false
}

func (w WorldModel) TotalPopulation() int {
	return len(w.Targets)
}

func TotalPopulation(zones []ZoneDefinition) int {
	total := 0
	for _, z := range zones {
		if z.TargetCount > 0 {
			total += z.TargetCount
		}
	}
	return total
}

func Fingerprint(t Target) string {
	return fmt.Sprintf("%s|%s|%.4f,%.4f,%.4f", t.ID, t.ClassID, t.Position.X, t.Position.Y, t.Position.Z)
}
