// Package cmd wires the deckforge command line interface.
package cmd

import (
	"deckforge/core"
	"deckforge/logging"

	"github.com/spf13/cobra"
)

var (
	devMode bool
	logFile string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "deckforge",
	Short: "Generate complete tarot and oracle card decks with AI image models",
	Long: `Deckforge generates complete, stylistically coherent card decks using
hosted image generation models (Replicate Flux/SDXL or OpenAI DALL-E).

Every card gets a deterministic seed derived from a single base seed, so a
deck can be regenerated exactly. Output images are cropped to the target
card aspect ratio with seeded variety, and named <numeral>_<card_slug>.png.`,
}

func init() {
	// Flag defaults can be preset through the environment so a .env
	// file configures logging without repeating flags on every run.
	RootCmd.PersistentFlags().BoolVar(&devMode, "dev",
		core.ParseBoolEnv("DECKFORGE_DEV", false),
		"development logging: colored debug console output")
	RootCmd.PersistentFlags().StringVar(&logFile, "log-file",
		core.GetEnvOrDefault("DECKFORGE_LOG_FILE", "logs/deckforge.log"),
		"structured log file path")
}

// newLogger builds the run logger from the persistent flags.
func newLogger() (*logging.Logger, error) {
	return logging.NewLogger(devMode, logFile)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
