package session

import (
	"context"
	"errors"
	"regexp"
	"time"

	"voidminer/internal/app/ports"
	"voidminer/internal/app/savegame"
	"voidminer/internal/domain/economy"
	"voidminer/internal/domain/ledger"
	"voidminer/internal/domain/outcome"
	"voidminer/internal/domain/tick"
	"voidminer/internal/domain/worldgen"
)

var (
	ErrInvalidRequest = errors.New("invalid session request")
	ErrUnknownAction  = errors.New("unknown action type")
)

// DefaultMaxCatchUpSeconds applies when MaxCatchUpSeconds is not positive.
const DefaultMaxCatchUpSeconds = 8 * 3600

var profilePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

type UseCase struct {
	Store   ports.SaveStore
	Tx      ports.TxManager
	Metrics ports.SessionMetrics
	Locks   *ProfileLocks

	Tuning            tick.Config
	Sector            worldgen.WorldModel
	SectorID          string
	MaxCatchUpSeconds int64
	Now               func() time.Time
}

// Session is one profile's loaded state plus the bookkeeping needed to write
// it back.
type Session struct {
	Profile      string
	State        tick.State
	Ledger       ledger.Ledger
	LastSyncUnix int64
	Stats        savegame.Stats

	dirty dirtySet
}

type dirtySet struct {
	inventory  bool
	crew       bool
	simulation bool
	ledger     bool
}

func (d *dirtySet) all() {
	d.inventory, d.crew, d.simulation, d.ledger = true, true, true, true
}

func (d dirtySet) any() bool {
	return d.inventory || d.crew || d.simulation || d.ledger
}

func (u UseCase) Get(ctx context.Context, profile string) (View, error) {
	if !profilePattern.MatchString(profile) {
		return View{}, ErrInvalidRequest
	}
	unlock := u.Locks.Lock(profile)
	defer unlock()

	sess := u.load(ctx, profile)
	if sess.dirty.any() {
		u.persist(ctx, sess)
	}
	return u.view(sess), nil
}

// Sync replays every second since the last sync, capped at MaxCatchUpSeconds.
func (u UseCase) Sync(ctx context.Context, profile string) (SyncResponse, error) {
	if !profilePattern.MatchString(profile) {
		return SyncResponse{}, ErrInvalidRequest
	}
	unlock := u.Locks.Lock(profile)
	defer unlock()

	sess := u.load(ctx, profile)
	res := u.catchUp(ctx, sess)
	if sess.dirty.any() {
		u.persist(ctx, sess)
	}
	return SyncResponse{
		View:             u.view(sess),
		Result:           string(res.Kind),
		Ticks:            res.Ticks,
		FeedingEvents:    res.FeedingEvents,
		HydrationEvents:  res.HydrationEvents,
		FailureTriggered: res.FailureTriggered,
		FailureReason:    res.FailureReason,
	}, nil
}

func (u UseCase) World(ctx context.Context, profile string) (WorldResponse, error) {
	if !profilePattern.MatchString(profile) {
		return WorldResponse{}, ErrInvalidRequest
	}
	unlock := u.Locks.Lock(profile)
	defer unlock()

	sess := u.load(ctx, profile)
	targets := make([]TargetView, 0, len(u.Sector.Targets))
	for _, t := range u.Sector.Targets {
		targets = append(targets, TargetView{Target: t, Depleted: sess.Ledger.IsDepleted(t.ID)})
	}
	return WorldResponse{
		Seed:    u.Sector.Seed,
		Zones:   u.Sector.Zones,
		Targets: targets,
		Ledger:  u.ledgerView(sess.Ledger),
	}, nil
}

func (u UseCase) catchUp(ctx context.Context, sess *Session) tick.CatchUpResult {
	now := u.now().Unix()
	start := sess.LastSyncUnix
	limit := u.MaxCatchUpSeconds
	if limit <= 0 {
		limit = DefaultMaxCatchUpSeconds
	}
	if now-start > limit {
		start = now - limit
	}
	res := tick.CatchUp(start, now, sess.State, u.Tuning)
	if res.Kind == outcome.KindNoOp {
		return res
	}
	sess.State = res.State
	sess.LastSyncUnix = now
	sess.Stats.Ticks += res.Ticks
	sess.Stats.Meals += res.FeedingEvents
	sess.Stats.Drinks += res.HydrationEvents
	sess.dirty.crew = true
	sess.dirty.simulation = true
	if res.PersistInventory {
		sess.dirty.inventory = true
	}
	u.metrics().RecordTicks(res.Ticks)
	u.metrics().RecordCatchUp()

	if res.FailureTriggered {
		u.applyFailure(sess, res.FailureReason, now*1000)
	}
	return res
}

func (u UseCase) applyFailure(sess *Session, reason economy.FailureReason, nowMs int64) economy.FailureReportEntry {
	state, report := tick.ApplyFailure(sess.State, reason, u.Tuning, nowMs)
	sess.State = state
	sess.Stats.Failures++
	sess.dirty.inventory, sess.dirty.crew, sess.dirty.simulation = true, true, true
	u.metrics().RecordFailure(string(reason))
	return report
}

func (u UseCase) view(sess *Session) View {
	return View{
		Profile:      sess.Profile,
		State:        sess.State,
		Ledger:       u.ledgerView(sess.Ledger),
		LastSyncUnix: sess.LastSyncUnix,
		Stats:        sess.Stats,
	}
}

func (u UseCase) ledgerView(l ledger.Ledger) LedgerView {
	total := u.Sector.TotalPopulation()
	return LedgerView{
		SectorID:     l.SectorID,
		Seed:         l.Seed,
		Total:        total,
		Active:       l.ActiveCount(total),
		Depleted:     l.DepletedCount(),
		Floor:        ledger.MinActiveWorldTargetCount(total),
		ZoneCounts:   l.ZoneCounts,
		ClassCounts:  l.ClassCounts,
		VisitedZones: l.VisitedZones,
	}
}

func (u UseCase) now() time.Time {
	if u.Now == nil {
		return time.Now()
	}
	return u.Now()
}

func (u UseCase) metrics() ports.SessionMetrics {
	if u.Metrics == nil {
		return ports.NopMetrics{}
	}
	return u.Metrics
}
