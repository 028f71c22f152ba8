package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	api "github.com/rpupo63/portfolio-backend/api"
	"github.com/rpupo63/portfolio-backend/app"
	"github.com/rpupo63/portfolio-backend/config"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()
	setupLogger(c)

	log.Info().Msg("Initializing app...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	application, err := app.New(ctx, c)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing app")
	}
	defer application.Close()

	// If generating column mismatch report, run report and exit
	if config.GetBool(c, "GENERATE_COLUMN_REPORT", false) {
		if application.DB == nil {
			log.Fatal().Msg("GENERATE_COLUMN_REPORT requires a database")
		}
		report, err := application.DB.ColumnReport()
		if err != nil {
			log.Fatal().Err(err).Msg("Error generating column report")
		}
		report.Write(os.Stdout)
		return
	}

	// A failed initial fetch leaves defaults and cache in place.
	initCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := application.Reconciler.Init(initCtx); err != nil {
		log.Warn().Err(err).Msg("Initial content fetch failed, serving cached content")
	}
	cancel()

	// Buffered so the losing sender does not block after shutdown.
	errChannel := make(chan error, 2)

	server, err := api.NewServer(c, api.Dependencies{
		Reconciler: application.Reconciler,
		Auth:       application.Auth,
		Tokens:     application.Tokens,
		Assets:     application.Assets,
		AssetDir:   application.AssetDir,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Err(fatalErr).Msg("Closing server")

	server.ShutdownGracefully(30 * time.Second)
}

// setupLogger switches to console output unless LOG_FORMAT=json.
func setupLogger(c map[string]string) {
	level, err := zerolog.ParseLevel(strings.ToLower(config.GetString(c, "LOG_LEVEL", "info")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if config.GetString(c, "LOG_FORMAT", "console") != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
