package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"projectvault/config"
	"projectvault/database"
	"projectvault/logging"
)

func main() {
	seed := flag.Bool("seed", true, "load the showcase projects")
	list := flag.Bool("list", false, "print the migrations and exit")
	flag.Parse()

	if *list {
		names, err := database.MigrationNames()
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to read migrations")
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid configuration")
	}
	logging.Init(cfg.Log)
	if cfg.Database.Backend != "postgres" {
		logging.Fatal().Str("store", cfg.Database.Backend).Msg("Migrations need STORE=postgres")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.Connect(ctx, cfg.Database.URL, cfg.Database.AccessKey)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect")
	}
	defer db.Close()

	if err := db.Migrate(ctx, *seed); err != nil {
		logging.Fatal().Err(err).Msg("Migration failed")
	}

	fmt.Println("\nAll migrations completed!")
}
