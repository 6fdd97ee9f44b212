package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/urfave/cli/v3"

	"voidminer/internal/bootstrap"
	"voidminer/internal/config"
	"voidminer/internal/domain/tick"
)

func main() {
	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		hlog.Fatal(err)
	}
}

func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "voidminer-ops",
		Usage: "Operator tooling for voidminer sectors",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "YAML config path", Sources: cli.EnvVars("VOIDMINER_CONFIG")},
		},
		Commands: []*cli.Command{
			worldgenCommand(out),
			simulateCommand(out),
			migrateCommand(out),
			inspectCommand(out),
		},
	}
}

func loadConfig(c *cli.Command) (config.Config, error) {
	return config.Load(c.String("config"))
}

func worldgenCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "worldgen",
		Usage: "Print the generated sector as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "seed", Usage: "override the sector seed"},
			&cli.StringFlag{Name: "content", Usage: "content catalog YAML (defaults to the embedded pack)"},
			&cli.BoolFlag{Name: "summary", Usage: "print per-zone counts only"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			if s := c.String("seed"); s != "" {
				cfg.Sector.Seed = s
			}
			if p := c.String("content"); p != "" {
				cfg.ContentPath = p
			}
			pack, err := bootstrap.LoadPack(cfg)
			if err != nil {
				return err
			}
			world, err := bootstrap.GenerateWorld(cfg, pack)
			if err != nil {
				return err
			}
			if c.Bool("summary") {
				counts := map[string]int{}
				for _, t := range world.Targets {
					counts[t.ZoneID]++
				}
				return printJSON(out, map[string]any{"seed": world.Seed, "total": world.TotalPopulation(), "zones": counts})
			}
			return printJSON(out, world)
		},
	}
}

func simulateCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "simulate",
		Usage: "Run a fresh session offline for a number of seconds",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "seconds", Value: 3600, Usage: "seconds to replay"},
			&cli.BoolFlag{Name: "auto-craft", Usage: "unlock and enable auto-craft first"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			pack, err := bootstrap.LoadPack(cfg)
			if err != nil {
				return err
			}
			tuning := cfg.Tuning
			tuning.Catalog = pack.Catalog()

			state := tick.NewState(tuning)
			if c.Bool("auto-craft") {
				state.AutoCraftUnlocked = true
				state.AutoCraftEnabled = true
			}
			res := tick.CatchUp(0, int64(c.Int("seconds")), state, tuning)
			return printJSON(out, map[string]any{
				"ticks":             res.Ticks,
				"failure_triggered": res.FailureTriggered,
				"failure_reason":    res.FailureReason,
				"feeding_events":    res.FeedingEvents,
				"hydration_events":  res.HydrationEvents,
				"state":             res.State,
			})
		},
	}
}

func migrateCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply storage migrations for the configured SQL driver",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "driver", Usage: "sqlite or postgres"},
			&cli.StringFlag{Name: "dsn", Usage: "database path or connection string"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			if d := c.String("driver"); d != "" {
				cfg.Storage.Driver = d
			}
			if dsn := c.String("dsn"); dsn != "" {
				cfg.Storage.DSN = dsn
			}
			if cfg.Storage.Driver == config.DriverMemory {
				_, err := fmt.Fprintln(out, "memory driver has no schema")
				return err
			}
			start := time.Now()
			_, _, db, err := bootstrap.OpenStorage(ctx, cfg.Storage)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}
			_, err = fmt.Fprintf(out, "%s schema up to date (%s)\n", cfg.Storage.Driver, time.Since(start).Round(time.Millisecond))
			return err
		},
	}
}

func inspectCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Load a profile through the session use case and print its view",
		ArgsUsage: "<profile>",
		Action: func(ctx context.Context, c *cli.Command) error {
			profile := c.Args().First()
			if profile == "" {
				return fmt.Errorf("profile argument is required")
			}
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			rt, err := bootstrap.Build(ctx, cfg)
			if err != nil {
				return err
			}
			defer rt.Close()
			view, err := rt.Session.Get(ctx, profile)
			if err != nil {
				return err
			}
			return printJSON(out, view)
		},
	}
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
