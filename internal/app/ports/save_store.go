package ports

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// SaveStore is the key/value persistence boundary. Get returns ErrNotFound
// when nothing was written under key.
type SaveStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// TxManager groups the Puts of one session write.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

func InventoryKey(profile string) string  { return "inventory:" + profile }
func CrewKey(profile string) string       { return "crew:" + profile }
func SimulationKey(profile string) string { return "simulation:" + profile }

func WorldSessionKey(profile, sectorID string) string {
	return "world-session:" + profile + ":" + sectorID
}
