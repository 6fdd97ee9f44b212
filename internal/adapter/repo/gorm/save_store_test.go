package gormrepo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"voidminer/internal/app/ports"
)

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("VOIDMINER_DB_DSN")
	if dsn == "" {
		t.Skip("VOIDMINER_DB_DSN is required for integration test")
	}
	return dsn
}

func openTestSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "voidminer_test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := ApplyMigrations(context.Background(), db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return db
}

func TestSaveStore_SQLiteRoundTripAndUpsert(t *testing.T) {
	ctx := context.Background()
	store := NewSaveStore(openTestSQLite(t))

	if _, err := store.Get(ctx, "inventory:ada"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := store.Put(ctx, "inventory:ada", []byte("one")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Put(ctx, "inventory:ada", []byte("two")); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, err := store.Get(ctx, "inventory:ada")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "two" {
		t.Fatalf("payload = %q, want two", got)
	}
}

func TestApplyMigrations_Idempotent(t *testing.T) {
	db := openTestSQLite(t)
	if err := ApplyMigrations(context.Background(), db); err != nil {
		t.Fatalf("second migration run: %v", err)
	}
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := openTestSQLite(t)
	store := NewSaveStore(db)
	tx := NewTxManager(db)

	boom := errors.New("boom")
	err := tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := store.Put(ctx, "crew:ada", []byte("x")); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if _, err := store.Get(ctx, "crew:ada"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected rollback, got %v", err)
	}
}

func TestSaveStore_PostgresRoundTrip(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	ctx := context.Background()
	if err := ApplyMigrations(ctx, db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	key := "simulation:it-roundtrip"
	_ = db.Exec("DELETE FROM save_blobs WHERE save_key = ?", key).Error

	store := NewSaveStore(db)
	if err := NewTxManager(db).RunInTx(ctx, func(ctx context.Context) error {
		return store.Put(ctx, key, []byte{1, 2, 3})
	}); err != nil {
		t.Fatalf("put in tx: %v", err)
	}
	got, err := store.Get(ctx, key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 3 || got[2] != 3 {
		t.Fatalf("unexpected payload %v", got)
	}
}
