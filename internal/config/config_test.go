package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 6.0, cfg.Tuning.Economy.LaserShotEnergyCost)
	assert.Equal(t, 120.0, cfg.Tuning.Economy.ChargingRangeMeters)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voidminer.yaml")
	raw := []byte(`
server:
  addr: ":9090"
sector:
  id: sector-beta
tuning:
  economy:
    charging_range_meters: 90
  crew:
    meal_restore: 30
`)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "sector-beta", cfg.Sector.ID)
	assert.Equal(t, 90.0, cfg.Tuning.Economy.ChargingRangeMeters)
	assert.Equal(t, 30.0, cfg.Tuning.Crew.MealRestore)
	// untouched tuning keeps its default
	assert.Equal(t, 250.0, cfg.Tuning.Economy.DockingCorridorMeters)
}

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv("VOIDMINER_ADDR", ":7000")
	t.Setenv("VOIDMINER_DB_DRIVER", "sqlite")
	t.Setenv("VOIDMINER_DB_DSN", "file:test.db")
	t.Setenv("VOIDMINER_MAX_CATCHUP_SECONDS", "600")
	t.Setenv("VOIDMINER_SEED", "1234")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "file:test.db", cfg.Storage.DSN)
	assert.Equal(t, int64(600), cfg.Session.MaxCatchUpSeconds)
	assert.Equal(t, uint32(1234), cfg.Sector.SeedValue())
}

func TestApplyEnv_BadNumberKeepsFallback(t *testing.T) {
	t.Setenv("VOIDMINER_MAX_CATCHUP_SECONDS", "soon")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Session.MaxCatchUpSeconds, cfg.Session.MaxCatchUpSeconds)
}

func TestValidate_RejectsMissingDSN(t *testing.T) {
	cfg := Default()
	cfg.Storage.Driver = DriverPostgres
	assert.Error(t, cfg.Validate())
	cfg.Storage.Driver = "mongo"
	assert.Error(t, cfg.Validate())
}

func TestValidate_RequiresPositiveCatchUpCap(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	cfg.Session.MaxCatchUpSeconds = 0
	assert.Error(t, cfg.Validate())
	cfg.Session.MaxCatchUpSeconds = -5
	assert.Error(t, cfg.Validate())
}

func TestSeedValue_HashesText(t *testing.T) {
	a := SectorConfig{ID: "x", Seed: "sector-alpha"}.SeedValue()
	b := SectorConfig{ID: "x", Seed: "sector-alpha"}.SeedValue()
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, SectorConfig{ID: "x", Seed: "sector-beta"}.SeedValue())
}
