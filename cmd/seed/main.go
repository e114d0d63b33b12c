package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/logging"
	"github.com/2beens/fittrack/internal/seed"
	"github.com/2beens/fittrack/internal/store"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	envFile := flag.String("env-file", ".env", "optional file with env vars (secrets), ignored if missing")
	username := flag.String("username", "demo", "username of the demo user")
	password := flag.String("password", "", "password of the demo user (required)")
	workouts := flag.Int("workouts", 40, "number of workouts to generate")
	randSeed := flag.Int64("seed", 0, "seed for reproducible data, 0 for random")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		fmt.Printf("failed to load env file [%s]: %s\n", *envFile, err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    "info",
	})

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}
	if cfg.StoreBackend != config.StoreBackendPostgres {
		log.Fatalf("seeding needs the postgres store backend, got [%s]", cfg.StoreBackend)
	}
	if *password == "" {
		log.Fatalln("password not set, use -password")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     os.Getenv("FITTRACK_POSTGRES_USER"),
		DBPassword: os.Getenv("FITTRACK_POSTGRES_PASS"),
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer pool.Close()

	pgStore := store.NewPostgres(pool)
	if err := pgStore.Migrate(ctx); err != nil {
		log.Errorf("migrate db: %s", err)
		return
	}

	res, err := seed.Run(ctx, pgStore, seed.Params{
		Username: *username,
		Password: *password,
		Workouts: *workouts,
		Until:    time.Now().UTC(),
		Seed:     *randSeed,
	})
	if err != nil {
		log.Errorf("seed: %s", err)
		return
	}

	fmt.Printf("user [%s] (id %d): %d workouts, %d sets\n", res.User.Username, res.User.ID, res.Workouts, res.Sets)
}
