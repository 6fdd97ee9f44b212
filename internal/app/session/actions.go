package session

import (
	"context"
	"fmt"

	"voidminer/internal/domain/crew"
	"voidminer/internal/domain/economy"
	"voidminer/internal/domain/ledger"
	"voidminer/internal/domain/outcome"
	"voidminer/internal/domain/tick"
)

type ActionSpec struct {
	Type    ActionType
	Handler ActionHandler
	// Validate rejects malformed requests before the session is synced.
	Validate func(Action) bool
}

type ActionHandler func(u UseCase, ac *actionContext) (outcome.Outcome, error)

type actionContext struct {
	Action Action
	NowMs  int64
	Sess   *Session
	Lines  []string
}

func (ac *actionContext) log(line string) {
	if line != "" {
		ac.Lines = append(ac.Lines, line)
	}
}

func actionRegistry() map[ActionType]ActionSpec {
	return map[ActionType]ActionSpec{
		ActionFire:             {Type: ActionFire, Handler: fireAction, Validate: requireTarget},
		ActionDock:             {Type: ActionDock, Handler: dockAction},
		ActionUndock:           {Type: ActionUndock, Handler: undockAction},
		ActionStartCharging:    {Type: ActionStartCharging, Handler: startChargingAction},
		ActionStopCharging:     {Type: ActionStopCharging, Handler: stopChargingAction},
		ActionContainment:      {Type: ActionContainment, Handler: containmentAction},
		ActionContainmentPower: {Type: ActionContainmentPower, Handler: containmentPowerAction},
		ActionTelemetry:        {Type: ActionTelemetry, Handler: telemetryAction, Validate: nonNegativeDistances},
		ActionFeed:             {Type: ActionFeed, Handler: feedAction},
		ActionHydrate:          {Type: ActionHydrate, Handler: hydrateAction},
		ActionLoadBars:         {Type: ActionLoadBars, Handler: loadBarsAction},
		ActionLoadWater:        {Type: ActionLoadWater, Handler: loadWaterAction},
		ActionSell:             {Type: ActionSell, Handler: sellAction, Validate: requireResource},
		ActionUseCell:          {Type: ActionUseCell, Handler: useCellAction, Validate: requireItem},
		ActionCraft:            {Type: ActionCraft, Handler: craftAction, Validate: requireProcess},
		ActionAutoCraft:        {Type: ActionAutoCraft, Handler: autoCraftAction},
		ActionFail:             {Type: ActionFail, Handler: failAction, Validate: knownFailureReason},
	}
}

func requireTarget(a Action) bool   { return a.TargetID != "" }
func requireResource(a Action) bool { return a.ResourceID != "" && a.Quantity >= 0 }
func requireItem(a Action) bool     { return a.ItemID != "" }
func requireProcess(a Action) bool  { return a.ProcessID != "" }

func nonNegativeDistances(a Action) bool {
	return a.Distance >= 0 && a.SceneDistance >= 0
}

func knownFailureReason(a Action) bool {
	switch economy.FailureReason(a.Reason) {
	case economy.FailureCombat, economy.FailureStarvation:
		return true
	}
	return false
}

// Act brings the session up to the wall clock and then applies one
// player action.
func (u UseCase) Act(ctx context.Context, profile string, a Action) (ActionResponse, error) {
	if !profilePattern.MatchString(profile) {
		return ActionResponse{}, ErrInvalidRequest
	}
	spec, ok := actionRegistry()[a.Type]
	if !ok {
		return ActionResponse{}, fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}
	if spec.Validate != nil && !spec.Validate(a) {
		return ActionResponse{}, fmt.Errorf("%w: bad parameters for %s", ErrInvalidRequest, a.Type)
	}

	unlock := u.Locks.Lock(profile)
	defer unlock()

	sess := u.load(ctx, profile)
	u.catchUp(ctx, sess)

	ac := &actionContext{Action: a, NowMs: u.now().UnixMilli(), Sess: sess}
	res, err := spec.Handler(u, ac)
	if err != nil {
		return ActionResponse{}, err
	}
	if len(ac.Lines) > 0 {
		sess.State.Log = economy.AppendLogs(sess.State.Log, ac.NowMs, ac.Lines...)
		sess.dirty.simulation = true
	}
	sess.State = tick.Refresh(sess.State, u.Tuning)
	if sess.dirty.any() {
		u.persist(ctx, sess)
	}
	u.metrics().RecordAction(string(a.Type), string(res.Kind))

	return ActionResponse{
		Type:   a.Type,
		Result: string(res.Kind),
		Reason: res.Reason,
		View:   u.view(sess),
	}, nil
}

func fireAction(u UseCase, ac *actionContext) (outcome.Outcome, error) {
	s := &ac.Sess.State
	target, ok := u.Sector.TargetByID(ac.Action.TargetID)
	if !ok {
		return blockFire(ac, "No such target in this sector."), nil
	}
	if ac.Sess.Ledger.IsDepleted(target.ID) {
		return blockFire(ac, "Target is already depleted."), nil
	}

	fire := economy.AttemptFire(economy.FireInput{
		Energy:          s.Energy,
		MaxEnergy:       s.MaxEnergy,
		CrewDebuff:      s.Summary.Crew.AvgDebuff,
		NowMs:           ac.NowMs,
		TargetID:        target.ID,
		Events:          s.Events,
		LastFiredAtMs:   s.LastFiredAtMs,
		LastWarningAtMs: s.LastWarningAtMs,
	}, u.Tuning.Economy)
	s.Energy = fire.Energy
	s.Events = fire.Events
	s.LastFiredAtMs = fire.LastFiredAtMs
	s.LastWarningAtMs = fire.LastWarningAtMs
	ac.log(fire.Warning)
	ac.Sess.dirty.simulation = true
	if !fire.Outcome.IsApplied() {
		return fire.Outcome, nil
	}

	hit := economy.ResolveExtractionHit(s.Inventory, target)
	if hit.Changed {
		s.Inventory = hit.Inventory
		s.Events = economy.RecordExtraction(s.Events, target.ID, hit.Gained, ac.NowMs)
		ac.Sess.dirty.inventory = true
	}
	ac.Sess.Stats.Extractions++

	dep := ledger.RecordDepletion(ac.Sess.Ledger, ledger.WorldTargetDepletedEvent{
		TargetID: target.ID,
		ClassID:  target.ClassID,
		ZoneID:   target.ZoneID,
	}, u.Sector.TotalPopulation())
	if dep.Kind == ledger.Recorded {
		ac.Sess.Ledger = dep.Ledger
		ac.Sess.dirty.ledger = true
		ac.log(dep.LogLine)
	}
	return fire.Outcome, nil
}

func blockFire(ac *actionContext, reason string) outcome.Outcome {
	s := &ac.Sess.State
	s.Events = economy.RecordEvent(s.Events, economy.ExtractionEvent{
		Kind:     economy.EventBlocked,
		TargetID: ac.Action.TargetID,
		Reason:   reason,
		AtMs:     ac.NowMs,
	})
	ac.Sess.dirty.simulation = true
	return outcome.Blocked(reason)
}

func applyStation(ac *actionContext, res economy.StationResult) outcome.Outcome {
	if res.Outcome.IsApplied() {
		ac.Sess.State.Station = res.Station
		ac.Sess.dirty.simulation = true
	}
	ac.log(res.LogLine)
	return res.Outcome
}

func dockAction(u UseCase, ac *actionContext) (outcome.Outcome, error) {
	st := ac.Sess.State.Station
	return applyStation(ac, economy.Dock(st, economy.ResolveDistance(st), u.Tuning.Economy)), nil
}

func undockAction(u UseCase, ac *actionContext) (outcome.Outcome, error) {
	return applyStation(ac, economy.Undock(ac.Sess.State.Station, u.Tuning.Economy)), nil
}

func startChargingAction(u UseCase, ac *actionContext) (outcome.Outcome, error) {
	st := ac.Sess.State.Station
	return applyStation(ac, economy.StartCharging(st, economy.ResolveDistance(st), u.Tuning.Economy)), nil
}

func stopChargingAction(u UseCase, ac *actionContext) (outcome.Outcome, error) {
	return applyStation(ac, economy.StopCharging(ac.Sess.State.Station, u.Tuning.Economy)), nil
}

func containmentAction(u UseCase, ac *actionContext) (outcome.Outcome, error) {
	return applyStation(ac, economy.SetContainment(ac.Sess.State.Station, ac.Action.On, u.Tuning.Economy)), nil
}

func containmentPowerAction(u UseCase, ac *actionContext) (outcome.Outcome, error) {
	return applyStation(ac, economy.SetContainmentPower(ac.Sess.State.Station, ac.Action.Power, u.Tuning.Economy)), nil
}

func telemetryAction(u UseCase, ac *actionContext) (outcome.Outcome, error) {
	a := ac.Action
	return applyStation(ac, economy.SetTelemetry(ac.Sess.State.Station, a.UseScene, a.SceneDistance, a.Distance, u.Tuning.Economy)), nil
}

func applyConsume(ac *actionContext, res crew.ConsumeResult) outcome.Outcome {
	if !res.Outcome.IsApplied() {
		return res.Outcome
	}
	s := &ac.Sess.State
	if !res.Inventory.Equal(s.Inventory) {
		ac.Sess.dirty.inventory = true
	}
	s.Crew = res.Members
	s.Fridge = res.Fridge
	s.Inventory = res.Inventory
	ac.Sess.dirty.crew = true
	return res.Outcome
}

func feedAction(u UseCase, ac *actionContext) (outcome.Outcome, error) {
	s := ac.Sess.State
	res := crew.FeedCrew(s.Crew, s.Fridge, s.Inventory, u.Tuning.Crew)
	if res.Outcome.IsApplied() {
		ac.Sess.Stats.Meals++
		ac.log(fmt.Sprintf("%s ate a galaxy bar from the %s.", memberName(res.Members, res.MemberID), res.Source))
	}
	return applyConsume(ac, res), nil
}

func hydrateAction(u UseCase, ac *actionContext) (outcome.Outcome, error) {
	s := ac.Sess.State
	res := crew.HydrateCrew(s.Crew, s.Fridge, s.Inventory, u.Tuning.Crew)
	if res.Outcome.IsApplied() {
		ac.Sess.Stats.Drinks++
		ac.log(fmt.Sprintf("%s drank water from the %s.", memberName(res.Members, res.MemberID), res.Source))
	}
	return applyConsume(ac, res), nil
}

func memberName(members []crew.Member, id string) string {
	for _, m := range members {
		if m.ID == id {
			return m.Name
		}
	}
	return id
}

func applyTransfer(ac *actionContext, res crew.TransferResult, what string) outcome.Outcome {
	if !res.Outcome.IsApplied() {
		return res.Outcome
	}
	ac.Sess.State.Fridge = res.Fridge
	ac.Sess.State.Inventory = res.Inventory
	ac.Sess.dirty.inventory = true
	ac.Sess.dirty.crew = true
	ac.log(fmt.Sprintf("Loaded %.1f %s into the fridge.", res.Moved, what))
	return res.Outcome
}

func loadBarsAction(u UseCase, ac *actionContext) (outcome.Outcome, error) {
	s := ac.Sess.State
	res := crew.LoadBars(s.Fridge, s.Inventory, ac.Action.Quantity, u.Tuning.Crew)
	return applyTransfer(ac, res, "galaxy bars"), nil
}

func loadWaterAction(u UseCase, ac *actionContext) (outcome.Outcome, error) {
	s := ac.Sess.State
	res := crew.LoadWater(s.Fridge, s.Inventory, ac.Action.Quantity, u.Tuning.Crew)
	return applyTransfer(ac, res, "liters of water"), nil
}

func sellAction(u UseCase, ac *actionContext) (outcome.Outcome, error) {
	s := &ac.Sess.State
	res := economy.SellResource(s.Inventory, s.Market, s.Credits, ac.Action.ResourceID, ac.Action.Quantity, u.Tuning.Catalog, u.Tuning.Economy)
	if !res.Outcome.IsApplied() {
		return res.Outcome, nil
	}
	s.Inventory = res.Inventory
	s.Market = res.Market
	s.Credits = res.Credits
	ac.Sess.dirty.inventory = true
	ac.Sess.dirty.simulation = true
	ac.log(fmt.Sprintf("Sold %.2f %s for %.2f credits.", res.Sold, ac.Action.ResourceID, res.Earned))
	return res.Outcome, nil
}

func useCellAction(u UseCase, ac *actionContext) (outcome.Outcome, error) {
	s := &ac.Sess.State
	res := economy.UseEnergyCell(s.Inventory, s.Energy, s.MaxEnergy, ac.Action.ItemID, u.Tuning.Economy)
	if !res.Outcome.IsApplied() {
		return res.Outcome, nil
	}
	s.Inventory = res.Inventory
	s.Energy = res.Energy
	ac.Sess.dirty.inventory = true
	ac.Sess.dirty.simulation = true
	ac.log(fmt.Sprintf("Discharged %s for %.1f energy.", ac.Action.ItemID, res.Added))
	return res.Outcome, nil
}

func craftAction(u UseCase, ac *actionContext) (outcome.Outcome, error) {
	s := &ac.Sess.State
	res, err := economy.Craft(s.Inventory, u.Tuning.Catalog, ac.Action.ProcessID)
	if err != nil {
		return outcome.Blocked(fmt.Sprintf("Unknown process %s.", ac.Action.ProcessID)), nil
	}
	if !res.Outcome.IsApplied() {
		return res.Outcome, nil
	}
	s.Inventory = res.Inventory
	ac.Sess.dirty.inventory = true
	ac.log(res.LogLine)
	if ac.Action.ProcessID == u.Tuning.Economy.AutoCraftProcessID && !s.AutoCraftUnlocked {
		s.AutoCraftUnlocked = true
		ac.Sess.dirty.simulation = true
		ac.log("Auto-craft unlocked.")
	}
	return res.Outcome, nil
}

func autoCraftAction(_ UseCase, ac *actionContext) (outcome.Outcome, error) {
	s := &ac.Sess.State
	if !s.AutoCraftUnlocked {
		return outcome.Blocked("Craft a galaxy bar by hand to unlock auto-craft."), nil
	}
	if s.AutoCraftEnabled == ac.Action.On {
		return outcome.NoOp("Auto-craft already in that mode."), nil
	}
	s.AutoCraftEnabled = ac.Action.On
	ac.Sess.dirty.simulation = true
	if ac.Action.On {
		ac.log("Auto-craft enabled.")
	} else {
		ac.log("Auto-craft disabled.")
	}
	return outcome.Applied(), nil
}

func failAction(u UseCase, ac *actionContext) (outcome.Outcome, error) {
	u.applyFailure(ac.Sess, economy.FailureReason(ac.Action.Reason), ac.NowMs)
	return outcome.Applied(), nil
}
