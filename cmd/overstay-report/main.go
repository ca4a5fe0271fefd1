// Command overstay-report lists the rooms of a hotel whose guests are past
// their checkout time. It is meant for the night audit and for cron.
//
// Flags:
//
//	--tenant   hotel (tenant) id, required
//	--format   text or json (default: text)
//	--config   YAML config file (default: $CONFIG_PATH or ./config.yaml)
//
// Exit codes: 0 = success, 1 = error, 2 = bad usage.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/pflag"

	"github.com/waspershola/africa-lodge-90-sub002/internal/adapter/postgres"
	"github.com/waspershola/africa-lodge-90-sub002/internal/adapter/postgres/folio"
	"github.com/waspershola/africa-lodge-90-sub002/internal/adapter/postgres/reservation"
	"github.com/waspershola/africa-lodge-90-sub002/internal/adapter/postgres/room"
	"github.com/waspershola/africa-lodge-90-sub002/internal/app"
	"github.com/waspershola/africa-lodge-90-sub002/internal/cache"
	"github.com/waspershola/africa-lodge-90-sub002/internal/config"
	"github.com/waspershola/africa-lodge-90-sub002/internal/service/board"
	"github.com/waspershola/africa-lodge-90-sub002/internal/transport/loader"
)

func main() {
	var tenant, format, configPath string

	flags := pflag.NewFlagSet("overstay-report", pflag.ContinueOnError)
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file")
	flags.StringVar(&tenant, "tenant", "", "hotel (tenant) id")
	flags.StringVar(&format, "format", formatText, "output format: text or json")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	tenantID, err := uuid.Parse(tenant)
	if err != nil {
		fmt.Fprintln(os.Stderr, "overstay-report: --tenant must be a hotel id")
		os.Exit(2)
	}
	if format != formatText && format != formatJSON {
		fmt.Fprintf(os.Stderr, "overstay-report: unknown format %q\n", format)
		os.Exit(2)
	}

	cfg, err := config.LoadPath(configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	clock := clockwork.NewRealClock()
	rooms := board.NewService(
		logger, clock,
		room.New(pool), reservation.New(pool), loader.NewFolios(folio.New(pool)),
		cache.NewLRU(1, time.Second),
		board.Settings{PendingTTL: cfg.Board.PendingTTL, ReservationWindow: cfg.Board.ReservationWindow},
	)

	states, err := rooms.TenantRooms(ctx, tenantID)
	if err != nil {
		logger.Error("load rooms", slog.String("tenant_id", tenantID.String()), slog.String("error", err.Error()))
		os.Exit(1)
	}

	rows := collect(states, clock.Now())
	if err := render(os.Stdout, format, rows); err != nil {
		logger.Error("write report", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("overstay report completed",
		slog.String("tenant_id", tenantID.String()),
		slog.Int("rooms", len(states)),
		slog.Int("overstays", len(rows)),
	)
}
