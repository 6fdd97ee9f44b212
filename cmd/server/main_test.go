package main

import (
	"context"
	"testing"

	"voidminer/internal/bootstrap"
	"voidminer/internal/config"
)

func TestNewHandler_WiresRuntime(t *testing.T) {
	cfg := config.Default()
	cfg.Server.AllowedOrigins = []string{"https://play.example"}
	rt, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	h := newHandler(rt)
	if h.KPI == nil {
		t.Fatalf("expected kpi provider")
	}
	if h.Limiter == nil {
		t.Fatalf("expected rate limiter")
	}
	if len(h.AllowedOrigins) != 1 || h.AllowedOrigins[0] != "https://play.example" {
		t.Fatalf("unexpected origins %v", h.AllowedOrigins)
	}
	if h.SessionUC.SectorID != cfg.Sector.ID {
		t.Fatalf("sector = %q, want %q", h.SessionUC.SectorID, cfg.Sector.ID)
	}
}
