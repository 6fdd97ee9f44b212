package session

import (
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"voidminer/internal/app/ports"
	"voidminer/internal/app/savegame"
	"voidminer/internal/domain/economy"
	"voidminer/internal/domain/ledger"
	"voidminer/internal/domain/tick"
)

// load reads the four profile records. Missing or unreadable records fall
// back to bootstrap values and are marked for rewrite.
func (u UseCase) load(ctx context.Context, profile string) *Session {
	boot := tick.NewState(u.Tuning)
	bootInv, bootCrew, bootSim := savegame.Split(boot, u.now().Unix(), savegame.Stats{})

	sess := &Session{Profile: profile}

	inv := bootInv
	if raw, ok := u.read(ctx, ports.InventoryKey(profile)); ok {
		inv = savegame.DecodeInventory(raw, bootInv)
	} else {
		sess.dirty.inventory = true
	}

	crewRec := bootCrew
	if raw, ok := u.read(ctx, ports.CrewKey(profile)); ok {
		crewRec = savegame.DecodeCrew(raw, bootCrew, u.Tuning.Crew)
	} else {
		sess.dirty.crew = true
	}

	sim := bootSim
	if raw, ok := u.read(ctx, ports.SimulationKey(profile)); ok {
		sim = savegame.DecodeSimulation(raw, bootSim)
	} else {
		sess.dirty.simulation = true
	}

	sess.State = savegame.Assemble(inv, crewRec, sim, u.Tuning)
	sess.LastSyncUnix = sim.LastSyncUnix
	sess.Stats = sim.Stats
	sess.Ledger = u.loadLedger(ctx, sess)
	return sess
}

func (u UseCase) loadLedger(ctx context.Context, sess *Session) ledger.Ledger {
	total := u.Sector.TotalPopulation()
	raw, ok := u.read(ctx, ports.WorldSessionKey(sess.Profile, u.SectorID))
	if !ok {
		sess.dirty.ledger = true
		return ledger.New(u.SectorID, u.Sector.Seed)
	}
	rec, ok := savegame.DecodeLedger(raw)
	if !ok {
		sess.dirty.ledger = true
		return ledger.New(u.SectorID, u.Sector.Seed)
	}
	res := ledger.Hydrate(rec, u.SectorID, u.Sector.Seed, total)
	if res.Fresh || len(res.Replenished) > 0 {
		sess.dirty.ledger = true
	}
	if res.LogLine != "" {
		sess.State.Log = economy.AppendLog(sess.State.Log, res.LogLine, u.now().UnixMilli())
		sess.dirty.simulation = true
	}
	return res.Ledger
}

func (u UseCase) read(ctx context.Context, key string) ([]byte, bool) {
	if u.Store == nil {
		return nil, false
	}
	raw, err := u.Store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ports.ErrNotFound) {
			hlog.CtxWarnf(ctx, "save store read %s failed: %v", key, err)
			u.metrics().RecordPersistError()
		}
		return nil, false
	}
	return raw, true
}

// persist writes the dirty records. Failures are logged and dropped;
// gameplay continues on the in-memory state.
func (u UseCase) persist(ctx context.Context, sess *Session) {
	if u.Store == nil {
		return
	}
	inv, crewRec, sim := savegame.Split(sess.State, sess.LastSyncUnix, sess.Stats)
	writes := make([]write, 0, 4)
	if sess.dirty.inventory {
		writes = append(writes, write{ports.InventoryKey(sess.Profile), inv})
	}
	if sess.dirty.crew {
		writes = append(writes, write{ports.CrewKey(sess.Profile), crewRec})
	}
	if sess.dirty.simulation {
		writes = append(writes, write{ports.SimulationKey(sess.Profile), sim})
	}
	if sess.dirty.ledger {
		writes = append(writes, write{ports.WorldSessionKey(sess.Profile, u.SectorID), sess.Ledger})
	}
	fn := func(ctx context.Context) error {
		for _, w := range writes {
			b, err := savegame.Encode(w.value)
			if err != nil {
				return err
			}
			if err := u.Store.Put(ctx, w.key, b); err != nil {
				return err
			}
		}
		return nil
	}
	var err error
	if u.Tx != nil {
		err = u.Tx.RunInTx(ctx, fn)
	} else {
		err = fn(ctx)
	}
	if err != nil {
		hlog.CtxWarnf(ctx, "persist profile %s failed: %v", sess.Profile, err)
		u.metrics().RecordPersistError()
		return
	}
	sess.dirty = dirtySet{}
}

type write struct {
	key   string
	value any
}

