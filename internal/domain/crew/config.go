package crew

type Config struct {
	BarResourceID   string `yaml:"bar_resource_id" json:"bar_resource_id"`
	WaterResourceID string `yaml:"water_resource_id" json:"water_resource_id"`

	HungerDecayPerSecond    float64 `yaml:"hunger_decay_per_second" json:"hunger_decay_per_second"`
	ThirstDecayPerSecond    float64 `yaml:"thirst_decay_per_second" json:"thirst_decay_per_second"`
	SleepDecayMultiplier    float64 `yaml:"sleep_decay_multiplier" json:"sleep_decay_multiplier"`
	StarvingThreshold       float64 `yaml:"starving_threshold" json:"starving_threshold"`
	DehydratedThreshold     float64 `yaml:"dehydrated_threshold" json:"dehydrated_threshold"`
	DebuffGrowthPerSecond   float64 `yaml:"debuff_growth_per_second" json:"debuff_growth_per_second"`
	DebuffRecoveryPerSecond float64 `yaml:"debuff_recovery_per_second" json:"debuff_recovery_per_second"`
	DebuffRecoveryFloor     float64 `yaml:"debuff_recovery_floor" json:"debuff_recovery_floor"`

	MealRestore      float64 `yaml:"meal_restore" json:"meal_restore"`
	DrinkRestore     float64 `yaml:"drink_restore" json:"drink_restore"`
	WaterPerDrink    float64 `yaml:"water_per_drink" json:"water_per_drink"`
	FullThreshold    float64 `yaml:"full_threshold" json:"full_threshold"`
	MealThreshold    float64 `yaml:"meal_threshold" json:"meal_threshold"`
	DrinkThreshold   float64 `yaml:"drink_threshold" json:"drink_threshold"`
	MealGapSeconds   int64   `yaml:"meal_gap_seconds" json:"meal_gap_seconds"`
	DrinkGapSeconds  int64   `yaml:"drink_gap_seconds" json:"drink_gap_seconds"`
	SleepShiftHours  int     `yaml:"sleep_shift_hours" json:"sleep_shift_hours"`
	SecondsPerGameHr int64   `yaml:"seconds_per_game_hour" json:"seconds_per_game_hour"`

	StarvationWarningDebuff  float64 `yaml:"starvation_warning_debuff" json:"starvation_warning_debuff"`
	StarvationCriticalDebuff float64 `yaml:"starvation_critical_debuff" json:"starvation_critical_debuff"`
	StarvationSafeLevel      float64 `yaml:"starvation_safe_level" json:"starvation_safe_level"`
}

func DefaultConfig() Config {
	return Config{
		BarResourceID:   "galaxyBar",
		WaterResourceID: "water",

		HungerDecayPerSecond:    0.02,
		ThirstDecayPerSecond:    0.03,
		SleepDecayMultiplier:    0.5,
		StarvingThreshold:       10,
		DehydratedThreshold:     10,
		DebuffGrowthPerSecond:   0.05,
		DebuffRecoveryPerSecond: 0.02,
		DebuffRecoveryFloor:     20,

		MealRestore:      35,
		DrinkRestore:     40,
		WaterPerDrink:    0.5,
		FullThreshold:    99.5,
		MealThreshold:    60,
		DrinkThreshold:   60,
		MealGapSeconds:   240,
		DrinkGapSeconds:  180,
		SleepShiftHours:  8,
		SecondsPerGameHr: 150,

		StarvationWarningDebuff:  45,
		StarvationCriticalDebuff: 100,
		StarvationSafeLevel:      35,
	}
}
