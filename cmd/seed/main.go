package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/spf13/pflag"

	"github.com/ganot/soporte-mcp/internal/seed"
)

func main() {
	var (
		dbPath  = pflag.String("db", "soporte.db", "path of the database file to create")
		tickets = pflag.Int("tickets", seed.DefaultTickets, "number of tickets to generate")
		rngSeed = pflag.Int64("seed", 0, "random seed (0 uses the current time)")
	)
	pflag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	opts := seed.Options{
		Path:    *dbPath,
		Tickets: *tickets,
	}
	if *rngSeed != 0 {
		opts.Rand = rand.New(rand.NewSource(*rngSeed))
	}

	summary, err := seed.Run(context.Background(), opts)
	if err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	logger.Info("database created", "path", *dbPath, "total", summary.Total, "urgentes_hoy", summary.UrgentToday)
	for _, group := range summary.ByPriority {
		logger.Info("distribution", "prioridad", group.Value, "tickets", group.Count)
	}
	for _, group := range summary.ByStatus {
		logger.Info("distribution", "estado", group.Value, "tickets", group.Count)
	}
	fmt.Printf("Base de datos lista: %s (%d tickets)\n", *dbPath, summary.Total)
}
