package main

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	httpadapter "voidminer/internal/adapter/http"
	"voidminer/internal/bootstrap"
	"voidminer/internal/config"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		hlog.Fatalf("load config: %v", err)
	}
	rt, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		hlog.Fatalf("bootstrap: %v", err)
	}
	defer func() {
		if err := rt.Close(); err != nil {
			hlog.Warnf("close storage: %v", err)
		}
	}()

	s := server.Default(server.WithHostPorts(cfg.Server.Addr))
	newHandler(rt).RegisterRoutes(s)

	hlog.Infof("voidminer listening on %s (sector %s, %d targets, storage %s)",
		cfg.Server.Addr, cfg.Sector.ID, rt.World.TotalPopulation(), cfg.Storage.Driver)
	s.Spin()
}

func newHandler(rt *bootstrap.Runtime) httpadapter.Handler {
	return httpadapter.Handler{
		SessionUC:      rt.Session,
		KPI:            rt.Metrics,
		AllowedOrigins: rt.Config.Server.AllowedOrigins,
		Limiter:        httpadapter.NewProfileLimiter(rt.Config.Server.RatePerSecond, rt.Config.Server.RateBurst),
	}
}
