package economy

type Config struct {
	LaserShotEnergyCost       float64 `yaml:"laser_shot_energy_cost" json:"laser_shot_energy_cost"`
	LaserBaseCooldownMs       int64   `yaml:"laser_base_cooldown_ms" json:"laser_base_cooldown_ms"`
	LaserDebuffCooldownFactor float64 `yaml:"laser_debuff_cooldown_factor" json:"laser_debuff_cooldown_factor"`
	LaserWarningThrottleMs    int64   `yaml:"laser_warning_throttle_ms" json:"laser_warning_throttle_ms"`

	DockingCorridorMeters float64 `yaml:"docking_corridor_meters" json:"docking_corridor_meters"`
	ChargingRangeMeters   float64 `yaml:"charging_range_meters" json:"charging_range_meters"`
	ChargingRatePerSecond float64 `yaml:"charging_rate_per_second" json:"charging_rate_per_second"`
	ContainmentDrainMax   float64 `yaml:"containment_drain_max" json:"containment_drain_max"`

	EnergyCells map[string]float64 `yaml:"energy_cells" json:"energy_cells"`

	MarketRecoveryPerTick float64 `yaml:"market_recovery_per_tick" json:"market_recovery_per_tick"`
	MarketHeatPerUnit     float64 `yaml:"market_heat_per_unit" json:"market_heat_per_unit"`
	MarketMinHeat         float64 `yaml:"market_min_heat" json:"market_min_heat"`
	MarketMaxHeat         float64 `yaml:"market_max_heat" json:"market_max_heat"`

	RepairCost            map[string]float64 `yaml:"repair_cost" json:"repair_cost"`
	FailureBaseCredits    float64            `yaml:"failure_base_credits" json:"failure_base_credits"`
	FailureShortageRate   float64            `yaml:"failure_shortage_rate" json:"failure_shortage_rate"`
	FailureEnergyFraction float64            `yaml:"failure_energy_fraction" json:"failure_energy_fraction"`

	AutoCraftProcessID       string  `yaml:"auto_craft_process_id" json:"auto_craft_process_id"`
	AutoCraftIntervalSeconds int64   `yaml:"auto_craft_interval_seconds" json:"auto_craft_interval_seconds"`
	AutoCraftTargetBars      float64 `yaml:"auto_craft_target_bars" json:"auto_craft_target_bars"`
}

func DefaultConfig() Config {
	return Config{
		LaserShotEnergyCost:       6,
		LaserBaseCooldownMs:       450,
		LaserDebuffCooldownFactor: 1.5,
		LaserWarningThrottleMs:    2500,

		DockingCorridorMeters: 250,
		ChargingRangeMeters:   120,
		ChargingRatePerSecond: 2.5,
		ContainmentDrainMax:   1.2,

		EnergyCells: map[string]float64{"energyCell": 40, "battery": 120},

		MarketRecoveryPerTick: 0.002,
		MarketHeatPerUnit:     0.015,
		MarketMinHeat:         0.5,
		MarketMaxHeat:         3,

		RepairCost:            map[string]float64{"steel": 0.4, "silicaSand": 0.8, "carbon": 0.2},
		FailureBaseCredits:    120,
		FailureShortageRate:   45,
		FailureEnergyFraction: 0.35,

		AutoCraftProcessID:       "galaxyBar",
		AutoCraftIntervalSeconds: 30,
		AutoCraftTargetBars:      6,
	}
}
