package session

import (
	"voidminer/internal/app/savegame"
	"voidminer/internal/domain/economy"
	"voidminer/internal/domain/tick"
	"voidminer/internal/domain/worldgen"
)

type ActionType string

const (
	ActionFire             ActionType = "fire"
	ActionDock             ActionType = "dock"
	ActionUndock           ActionType = "undock"
	ActionStartCharging    ActionType = "start_charging"
	ActionStopCharging     ActionType = "stop_charging"
	ActionContainment      ActionType = "containment"
	ActionContainmentPower ActionType = "containment_power"
	ActionTelemetry        ActionType = "telemetry"
	ActionFeed             ActionType = "feed"
	ActionHydrate          ActionType = "hydrate"
	ActionLoadBars         ActionType = "load_bars"
	ActionLoadWater        ActionType = "load_water"
	ActionSell             ActionType = "sell"
	ActionUseCell          ActionType = "use_cell"
	ActionCraft            ActionType = "craft"
	ActionAutoCraft        ActionType = "auto_craft"
	ActionFail             ActionType = "fail"
)

type Action struct {
	Type          ActionType `json:"type"`
	TargetID      string     `json:"target_id,omitempty"`
	ResourceID    string     `json:"resource_id,omitempty"`
	ItemID        string     `json:"item_id,omitempty"`
	ProcessID     string     `json:"process_id,omitempty"`
	Quantity      float64    `json:"quantity,omitempty"`
	On            bool       `json:"on,omitempty"`
	Power         float64    `json:"power,omitempty"`
	Distance      float64    `json:"distance,omitempty"`
	UseScene      bool       `json:"use_scene,omitempty"`
	SceneDistance float64    `json:"scene_distance,omitempty"`
	Reason        string     `json:"reason,omitempty"`
}

type LedgerView struct {
	SectorID     string         `json:"sector_id"`
	Seed         uint32         `json:"seed"`
	Total        int            `json:"total"`
	Active       int            `json:"active"`
	Depleted     int            `json:"depleted"`
	Floor        int            `json:"floor"`
	ZoneCounts   map[string]int `json:"zone_counts"`
	ClassCounts  map[string]int `json:"class_counts"`
	VisitedZones []string       `json:"visited_zones"`
}

type View struct {
	Profile      string         `json:"profile"`
	State        tick.State     `json:"state"`
	Ledger       LedgerView     `json:"ledger"`
	LastSyncUnix int64          `json:"last_sync_unix"`
	Stats        savegame.Stats `json:"stats"`
}

type SyncResponse struct {
	View             View                  `json:"view"`
	Result           string                `json:"result"`
	Ticks            int64                 `json:"ticks"`
	FeedingEvents    int                   `json:"feeding_events"`
	HydrationEvents  int                   `json:"hydration_events"`
	FailureTriggered bool                  `json:"failure_triggered"`
	FailureReason    economy.FailureReason `json:"failure_reason,omitempty"`
}

type ActionResponse struct {
	Type   ActionType `json:"type"`
	Result string     `json:"result"`
	Reason string     `json:"reason,omitempty"`
	View   View       `json:"view"`
}

type TargetView struct {
	worldgen.Target
	Depleted bool `json:"depleted"`
}

type WorldResponse struct {
	Seed    uint32                    `json:"seed"`
	Zones   []worldgen.ZoneDefinition `json:"zones"`
	Targets []TargetView              `json:"targets"`
	Ledger  LedgerView                `json:"ledger"`
}
