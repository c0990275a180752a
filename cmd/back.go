package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"deckforge/core"
	"deckforge/imagegen"
	"deckforge/prompt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var backOpts = core.DefaultOptions()
var backSeed int64

var backCmd = &cobra.Command{
	Use:   "back <style>",
	Short: "Generate a symmetric card back design",
	Long: `Back generates a single shared card back: one image in the given style,
cropped to the card aspect ratio and mirrored into perfect 4-way symmetry
so the back reads identically upright and reversed.

Examples:
  deckforge back "dark gothic ink wash style"
  deckforge back "art deco gold leaf" --seed 99 --aspect-ratio 2:3`,
	Args: cobra.ExactArgs(1),
	RunE: runBack,
}

func init() {
	RootCmd.AddCommand(backCmd)

	f := backCmd.Flags()
	f.StringVar(&backOpts.Model, "model", backOpts.Model, "image model: flux-schnell, sdxl, dall-e-3, or owner/name[:version]")
	f.StringVarP(&backOpts.OutputDir, "output", "o", backOpts.OutputDir, "output directory")
	f.Int64Var(&backSeed, "seed", 0, "generation seed for the back design")
	f.StringVar(&backOpts.AspectRatio, "aspect-ratio", backOpts.AspectRatio, "card aspect ratio (e.g. 2:3, 1:1)")
	f.StringVar(&backOpts.NegativeExtra, "negative", "", "extra negative prompt terms")
}

func runBack(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	backOpts.Style = prompt.Sanitize(args[0])
	if err := backOpts.Validate(); err != nil {
		return err
	}

	provider, err := buildProvider(backOpts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	generator, err := imagegen.NewGenerator(provider, imagegen.NewDownloader(nil), logger, backOpts)
	if err != nil {
		return err
	}

	path, err := generator.GenerateCardBack(ctx, backSeed)
	if err != nil {
		return err
	}

	color.Green("Card back written to %s", path)
	return nil
}
