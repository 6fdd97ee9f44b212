package bootstrap

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	metricsinmem "voidminer/internal/adapter/metrics/inmemory"
	gormrepo "voidminer/internal/adapter/repo/gorm"
	"voidminer/internal/adapter/repo/memory"
	"voidminer/internal/app/ports"
	"voidminer/internal/app/session"
	"voidminer/internal/config"
	"voidminer/internal/content"
	"voidminer/internal/domain/worldgen"
)

// Runtime is everything a process needs to serve sessions for one sector.
type Runtime struct {
	Config  config.Config
	Pack    content.Pack
	World   worldgen.WorldModel
	Store   ports.SaveStore
	Tx      ports.TxManager
	Metrics *metricsinmem.Recorder
	Session session.UseCase

	db *gorm.DB
}

func LoadPack(cfg config.Config) (content.Pack, error) {
	if cfg.ContentPath == "" {
		return content.Default()
	}
	return content.Load(cfg.ContentPath)
}

func GenerateWorld(cfg config.Config, pack content.Pack) (worldgen.WorldModel, error) {
	w, err := worldgen.Generate(cfg.Sector.SeedValue(), pack.Zones, pack.ClassCatalog())
	if err != nil {
		return worldgen.WorldModel{}, fmt.Errorf("generate sector %s: %w", cfg.Sector.ID, err)
	}
	return w, nil
}

// OpenStorage opens the configured driver and, for SQL drivers, applies
// pending migrations.
func OpenStorage(ctx context.Context, cfg config.StorageConfig) (ports.SaveStore, ports.TxManager, *gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Driver {
	case config.DriverMemory:
		store := memory.NewStore()
		return store, memory.NewTxManager(store), nil, nil
	case config.DriverSQLite:
		db, err = gormrepo.OpenSQLite(cfg.DSN)
	case config.DriverPostgres:
		db, err = gormrepo.OpenPostgres(cfg.DSN)
	default:
		return nil, nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, nil, nil, err
	}
	if err := gormrepo.ApplyMigrations(ctx, db); err != nil {
		return nil, nil, nil, err
	}
	return gormrepo.NewSaveStore(db), gormrepo.NewTxManager(db), db, nil
}

func Build(ctx context.Context, cfg config.Config) (*Runtime, error) {
	pack, err := LoadPack(cfg)
	if err != nil {
		return nil, err
	}
	world, err := GenerateWorld(cfg, pack)
	if err != nil {
		return nil, err
	}
	store, tx, db, err := OpenStorage(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}

	tuning := cfg.Tuning
	tuning.Catalog = pack.Catalog()
	recorder := metricsinmem.NewRecorder()

	return &Runtime{
		Config:  cfg,
		Pack:    pack,
		World:   world,
		Store:   store,
		Tx:      tx,
		Metrics: recorder,
		Session: session.UseCase{
			Store:             store,
			Tx:                tx,
			Metrics:           recorder,
			Locks:             session.NewProfileLocks(),
			Tuning:            tuning,
			Sector:            world,
			SectorID:          cfg.Sector.ID,
			MaxCatchUpSeconds: cfg.Session.MaxCatchUpSeconds,
		},
		db: db,
	}, nil
}

func (r *Runtime) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
