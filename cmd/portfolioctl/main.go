// Command portfolioctl inspects and edits the portfolio content from a
// terminal, using the same environment as the server.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rpupo63/portfolio-backend/app"
	"github.com/rpupo63/portfolio-backend/config"
)

var (
	envFile string
	verbose bool
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "portfolioctl",
	Short:         "Manage the bilingual portfolio content",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		zerolog.SetGlobalLevel(level)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "overall timeout for remote calls")

	rootCmd.AddCommand(showCmd, saveCmd, uploadCmd, schemaCmd, hashCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openApp loads the environment and wires the components. When fetch is
// set the remote content is merged in before returning.
func openApp(ctx context.Context, fetch bool) (*app.App, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	a, err := app.New(ctx, config.New())
	if err != nil {
		return nil, err
	}
	if fetch {
		if err := a.Reconciler.Init(ctx); err != nil {
			log.Warn().Err(err).Msg("remote fetch failed, using cached content")
		}
	}
	return a, nil
}
