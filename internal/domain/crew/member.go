package crew

import (
	"fmt"

	"voidminer/internal/domain/numeric"
)

type Member struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Hunger            float64 `json:"hunger"`
	Thirst            float64 `json:"thirst"`
	Debuff            float64 `json:"debuff"`
	Starving          bool    `json:"starving"`
	Dehydrated        bool    `json:"dehydrated"`
	Sleeping          bool    `json:"sleeping"`
	MealsEaten        int     `json:"meals_eaten"`
	DrinksTaken       int     `json:"drinks_taken"`
	SecondsSinceMeal  int64   `json:"seconds_since_meal"`
	SecondsSinceDrink int64   `json:"seconds_since_drink"`
	SleepShiftHour    int     `json:"sleep_shift_hour"`
}

// Aggregates is derived from the member list and never stored on its own.
type Aggregates struct {
	Total      int     `json:"total"`
	Awake      int     `json:"awake"`
	Starving   int     `json:"starving"`
	Dehydrated int     `json:"dehydrated"`
	AvgHunger  float64 `json:"avg_hunger"`
	AvgThirst  float64 `json:"avg_thirst"`
	AvgDebuff  float64 `json:"avg_debuff"`
	MaxDebuff  float64 `json:"max_debuff"`
}

func DefaultMembers() []Member {
	names := []string{"Ada", "Bram", "Cleo", "Dex"}
	out := make([]Member, 0, len(names))
	for i, n := range names {
		out = append(out, Member{
			ID:             fmt.Sprintf("crew-%d", i+1),
			Name:           n,
			Hunger:         80,
			Thirst:         80,
			SleepShiftHour: (i * 6) % 24,
		})
	}
	return out
}

func Clone(members []Member) []Member {
	return append([]Member(nil), members...)
}

func Aggregate(members []Member) Aggregates {
	agg := Aggregates{Total: len(members)}
	if len(members) == 0 {
		return agg
	}
	var hunger, thirst, debuff float64
	for _, m := range members {
		if !m.Sleeping {
			agg.Awake++
		}
		if m.Starving {
			agg.Starving++
		}
		if m.Dehydrated {
			agg.Dehydrated++
		}
		hunger += m.Hunger
		thirst += m.Thirst
		debuff += m.Debuff
		if m.Debuff > agg.MaxDebuff {
			agg.MaxDebuff = m.Debuff
		}
	}
	n := float64(len(members))
	agg.AvgHunger = numeric.Round4(hunger / n)
	agg.AvgThirst = numeric.Round4(thirst / n)
	agg.AvgDebuff = numeric.Round4(debuff / n)
	return agg
}

// Normalize clamps every bounded field and recomputes the threshold flags.
func Normalize(m Member, cfg Config) Member {
	m.Hunger = numeric.Round4(numeric.ClampPercent(m.Hunger))
	m.Thirst = numeric.Round4(numeric.ClampPercent(m.Thirst))
	m.Debuff = numeric.Round4(numeric.ClampPercent(m.Debuff))
	m.Starving = m.Hunger <= cfg.StarvingThreshold
	m.Dehydrated = m.Thirst <= cfg.DehydratedThreshold
	if m.MealsEaten < 0 {
		m.MealsEaten = 0
	}
	if m.DrinksTaken < 0 {
		m.DrinksTaken = 0
	}
	if m.SecondsSinceMeal < 0 {
		m.SecondsSinceMeal = 0
	}
	if m.SecondsSinceDrink < 0 {
		m.SecondsSinceDrink = 0
	}
	m.SleepShiftHour = ((m.SleepShiftHour % 24) + 24) % 24
	return m
}

// GameHour maps the logical clock onto a 24-hour day.
func GameHour(cycleSeconds int64, cfg Config) int {
	if cfg.SecondsPerGameHr <= 0 {
		return 0
	}
	h := (cycleSeconds / cfg.SecondsPerGameHr) % 24
	if h < 0 {
		h += 24
	}
	return int(h)
}

func IsSleepingAt(m Member, hour int, cfg Config) bool {
	if cfg.SleepShiftHours <= 0 {
		return false
	}
	offset := ((hour-m.SleepShiftHour)%24 + 24) % 24
	return offset < cfg.SleepShiftHours
}

// Decay advances one member by one second of life support.
func Decay(m Member, hour int, cfg Config) Member {
	m.Sleeping = IsSleepingAt(m, hour, cfg)
	mult := 1.0
	if m.Sleeping {
		mult = cfg.SleepDecayMultiplier
	}
	m.Hunger -= cfg.HungerDecayPerSecond * mult
	m.Thirst -= cfg.ThirstDecayPerSecond * mult
	m.SecondsSinceMeal++
	m.SecondsSinceDrink++
	m = Normalize(m, cfg)
	switch {
	case m.Starving || m.Dehydrated:
		m.Debuff += cfg.DebuffGrowthPerSecond
	case m.Hunger > cfg.DebuffRecoveryFloor && m.Thirst > cfg.DebuffRecoveryFloor:
		m.Debuff -= cfg.DebuffRecoveryPerSecond
	}
	return Normalize(m, cfg)
}
