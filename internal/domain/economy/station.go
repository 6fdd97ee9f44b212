package economy

import (
	"fmt"

	"voidminer/internal/domain/numeric"
	"voidminer/internal/domain/outcome"
)

type StationState struct {
	Docked            bool    `json:"docked"`
	Charging          bool    `json:"charging"`
	ContainmentOn     bool    `json:"containment_on"`
	ContainmentPower  float64 `json:"containment_power"`
	UseSceneTelemetry bool    `json:"use_scene_telemetry"`
	SceneDistance     float64 `json:"scene_distance"`
	ManualDistance    float64 `json:"manual_distance"`
}

func DefaultStation() StationState {
	return StationState{Docked: true, ContainmentPower: 60, ManualDistance: 0}
}

type PowerSummary struct {
	Distance         float64 `json:"distance"`
	InChargingRange  bool    `json:"in_charging_range"`
	ChargingRate     float64 `json:"charging_rate"`
	ContainmentDrain float64 `json:"containment_drain"`
	NetPerSecond     float64 `json:"net_per_second"`
}

type StationResult struct {
	Outcome outcome.Outcome
	Station StationState
	Summary PowerSummary
	LogLine string
}

// ResolveDistance picks scene telemetry or the manual override by flag.
func ResolveDistance(s StationState) float64 {
	d := s.ManualDistance
	if s.UseSceneTelemetry {
		d = s.SceneDistance
	}
	if d < 0 {
		return 0
	}
	return d
}

// EffectiveDistance is pinned to 0 while docked.
func EffectiveDistance(s StationState) float64 {
	if s.Docked {
		return 0
	}
	return ResolveDistance(s)
}

func BuildPowerSummary(distance float64, charging, containmentOn bool, power float64, cfg Config) PowerSummary {
	sum := PowerSummary{Distance: numeric.Round4(distance)}
	sum.InChargingRange = distance <= cfg.ChargingRangeMeters
	if charging && sum.InChargingRange && cfg.ChargingRangeMeters > 0 {
		falloff := 1 - 0.5*numeric.Clamp(distance/cfg.ChargingRangeMeters, 0, 1)
		sum.ChargingRate = numeric.Round4(cfg.ChargingRatePerSecond * falloff)
	}
	if containmentOn {
		sum.ContainmentDrain = numeric.Round4(numeric.ClampPercent(power) / 100 * cfg.ContainmentDrainMax)
	}
	sum.NetPerSecond = numeric.Round4(sum.ChargingRate - sum.ContainmentDrain)
	return sum
}

func SummaryFor(s StationState, cfg Config) PowerSummary {
	return BuildPowerSummary(EffectiveDistance(s), s.Charging, s.ContainmentOn, s.ContainmentPower, cfg)
}

func stationResult(o outcome.Outcome, s StationState, cfg Config, line string) StationResult {
	return StationResult{Outcome: o, Station: s, Summary: SummaryFor(s, cfg), LogLine: line}
}

func Dock(s StationState, distance float64, cfg Config) StationResult {
	if s.Docked {
		return stationResult(outcome.NoOp("Already docked."), s, cfg, "")
	}
	if distance > cfg.DockingCorridorMeters {
		reason := fmt.Sprintf("Station is %.0f m away; out of docking corridor (<= %.0f m).", distance, cfg.DockingCorridorMeters)
		return stationResult(outcome.Blocked(reason), s, cfg, "")
	}
	s.Docked = true
	return stationResult(outcome.Applied(), s, cfg, "Docked with the station.")
}

func Undock(s StationState, cfg Config) StationResult {
	if !s.Docked {
		return stationResult(outcome.NoOp("Not docked."), s, cfg, "")
	}
	s.Docked = false
	s.Charging = false
	return stationResult(outcome.Applied(), s, cfg, "Undocked from the station.")
}

func StartCharging(s StationState, distance float64, cfg Config) StationResult {
	if !s.Docked {
		return stationResult(outcome.Blocked("Dock with the station before charging."), s, cfg, "")
	}
	if distance > cfg.ChargingRangeMeters {
		reason := fmt.Sprintf("Station is %.0f m away; charging requires <= %.0f m.", distance, cfg.ChargingRangeMeters)
		return stationResult(outcome.Blocked(reason), s, cfg, "")
	}
	if s.Charging {
		return stationResult(outcome.NoOp("Already charging."), s, cfg, "")
	}
	s.Charging = true
	return stationResult(outcome.Applied(), s, cfg, "Charging started.")
}

func StopCharging(s StationState, cfg Config) StationResult {
	if !s.Charging {
		return stationResult(outcome.NoOp("Not charging."), s, cfg, "")
	}
	s.Charging = false
	return stationResult(outcome.Applied(), s, cfg, "Charging stopped.")
}

func SetContainment(s StationState, on bool, cfg Config) StationResult {
	if s.ContainmentOn == on {
		return stationResult(outcome.NoOp("Containment unchanged."), s, cfg, "")
	}
	s.ContainmentOn = on
	line := "Containment field offline."
	if on {
		line = "Containment field online."
	}
	return stationResult(outcome.Applied(), s, cfg, line)
}

func SetContainmentPower(s StationState, power float64, cfg Config) StationResult {
	p := numeric.Round4(numeric.ClampPercent(power))
	if p == s.ContainmentPower {
		return stationResult(outcome.NoOp("Containment power unchanged."), s, cfg, "")
	}
	s.ContainmentPower = p
	return stationResult(outcome.Applied(), s, cfg, "")
}

// SetTelemetry updates the distance sources. Corridor enforcement happens in
// EnforceCorridor.
func SetTelemetry(s StationState, useScene bool, sceneDistance, manualDistance float64, cfg Config) StationResult {
	s.UseSceneTelemetry = useScene
	s.SceneDistance = numeric.NonNegative4(sceneDistance)
	s.ManualDistance = numeric.NonNegative4(manualDistance)
	return EnforceCorridor(s, cfg)
}

// EnforceCorridor auto-undocks when live telemetry reports the ship outside
// the docking corridor.
func EnforceCorridor(s StationState, cfg Config) StationResult {
	if !s.Docked || !s.UseSceneTelemetry || s.SceneDistance <= cfg.DockingCorridorMeters {
		return stationResult(outcome.NoOp(""), s, cfg, "")
	}
	s.Docked = false
	s.Charging = false
	line := fmt.Sprintf("Drifted %.0f m from the station; auto-undocked and charging stopped.", s.SceneDistance)
	return stationResult(outcome.Applied(), s, cfg, line)
}
