package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"deckforge/core"
	"deckforge/deck"
	"deckforge/imagegen"
	"deckforge/prompt"
	"deckforge/replicate"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var genOpts = core.DefaultOptions()
var genRandomSeed bool

var generateCmd = &cobra.Command{
	Use:   "generate [style]",
	Short: "Generate a full deck of card images",
	Long: `Generate produces one image per card in the selected deck, all sharing
the given art style. If the style argument is omitted you are prompted for it.

The deck defaults to the builtin 78 card tarot catalog. Supply --cards-file
for a custom tarot deck definition or --oracle-file for a free-form oracle
deck. Seeds are derived as base+index, so rerunning with the same --seed
reproduces the deck.

Examples:
  deckforge generate "dark gothic ink wash style"
  deckforge generate "watercolor botanical" --cards sample --seed 7
  deckforge generate "art deco gold leaf" --model sdxl --key-card ref.png
  deckforge generate "pastel storybook" --oracle-file my_oracle.yaml --decks 3`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	RootCmd.AddCommand(generateCmd)

	f := generateCmd.Flags()
	f.StringVar(&genOpts.Model, "model", genOpts.Model, "image model: flux-schnell, sdxl, dall-e-3, or owner/name[:version]")
	f.StringVarP(&genOpts.OutputDir, "output", "o", genOpts.OutputDir, "output directory for generated images")
	f.StringVar(&genOpts.Subset, "cards", genOpts.Subset, "card subset: all, major, minor, or sample")
	f.IntVar(&genOpts.CardIndex, "card", genOpts.CardIndex, "generate a single card by index (0 = The Fool)")
	f.StringVar(&genOpts.CardsFile, "cards-file", "", "YAML tarot deck definition overriding the builtin catalog")
	f.StringVar(&genOpts.OracleFile, "oracle-file", "", "YAML oracle deck definition (1-100 free-form cards)")
	f.Int64Var(&genOpts.BaseSeed, "seed", genOpts.BaseSeed, "base seed for deterministic generation")
	f.BoolVar(&genRandomSeed, "random-seed", false, "draw the base seed from the OS entropy source")
	f.IntVarP(&genOpts.Parallel, "parallel", "p", genOpts.Parallel, "concurrent generation workers")
	f.StringVar(&genOpts.AspectRatio, "aspect-ratio", genOpts.AspectRatio, "card aspect ratio (e.g. 2:3, 1:1, 9:16)")
	f.StringVar(&genOpts.Diversity, "diversity", genOpts.Diversity, "crop variety tier: low, medium, or high")
	f.Float64Var(&genOpts.PromptStrength, "prompt-strength", genOpts.PromptStrength, "img2img drift from the key card (0-1, sdxl only)")
	f.StringVar(&genOpts.NegativeExtra, "negative", "", "extra negative prompt terms")
	f.StringVar(&genOpts.KeyCardPath, "key-card", "", "reference image anchoring the deck style (sdxl only)")
	f.IntVar(&genOpts.Decks, "decks", genOpts.Decks, "number of deck variants to generate")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	style := ""
	if len(args) > 0 {
		style = args[0]
	} else {
		style, err = promptForStyle(cmd)
		if err != nil {
			return err
		}
	}
	genOpts.Style = prompt.Sanitize(style)

	if genRandomSeed {
		genOpts.BaseSeed, err = imagegen.RandomSeed()
		if err != nil {
			return err
		}
	}
	if err := genOpts.Validate(); err != nil {
		return err
	}

	d, cards, err := loadDeck(genOpts)
	if err != nil {
		return err
	}

	provider, err := buildProvider(genOpts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	generator, err := imagegen.NewGenerator(provider, imagegen.NewDownloader(nil), logger, genOpts)
	if err != nil {
		return err
	}

	color.Cyan("Generating %d cards from %s with %s (seed %d)",
		len(cards), d.Name, provider.Name(), genOpts.BaseSeed)

	result, err := generator.Run(ctx, *d, cards)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			color.Yellow("Generation interrupted")
		} else if result != nil && len(result.Results) > 0 {
			color.Yellow("Generated %d of %d images; the rest failed",
				len(result.Results), len(cards)*genOpts.Decks)
		}
		return err
	}

	color.Green("Generated %d images in %s", len(result.Results), result.Duration.Round(time.Second))
	stats := generator.Stats()
	if stats.TotalRetries > 0 {
		color.Yellow("Recovered from %d retried attempts (avg %s per card)",
			stats.TotalRetries, stats.AvgDuration.Round(time.Second))
	}
	color.Cyan("Output: %s (run %s)", genOpts.OutputDir, result.RunID)
	return nil
}

// promptForStyle interactively asks for the art style when the
// argument was omitted.
func promptForStyle(cmd *cobra.Command) (string, error) {
	color.Cyan("Describe the art style for the deck (e.g. \"dark gothic ink wash style\"):")
	fmt.Fprint(cmd.OutOrStdout(), "> ")

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading style: %w", err)
	}
	style := strings.TrimSpace(line)
	if style == "" {
		return "", core.ErrInvalidOption("style", "style prompt cannot be empty")
	}
	return style, nil
}

// loadDeck resolves the deck source: oracle file, tarot deck file, or
// the builtin catalog, filtered by the subset flag. A card index picks
// a single card out of the resolved deck.
func loadDeck(opts core.Options) (*deck.Deck, []deck.Card, error) {
	var d *deck.Deck
	switch {
	case opts.OracleFile != "":
		loaded, err := deck.LoadOracleDeck(opts.OracleFile)
		if err != nil {
			return nil, nil, err
		}
		d = loaded
	case opts.CardsFile != "":
		loaded, err := deck.LoadDeckFile(opts.CardsFile)
		if err != nil {
			return nil, nil, err
		}
		d = loaded
	default:
		d = deck.Builtin()
	}

	if opts.CardIndex >= 0 {
		card, err := d.ByIndex(opts.CardIndex)
		if err != nil {
			return nil, nil, err
		}
		return d, []deck.Card{card}, nil
	}

	if opts.OracleFile != "" {
		return d, d.All(), nil
	}
	cards, err := d.Cards(opts.Subset)
	if err != nil {
		return nil, nil, err
	}
	return d, cards, nil
}

// buildProvider selects the generation backend from the model flag.
func buildProvider(opts core.Options) (imagegen.Provider, error) {
	if opts.Model == core.ModelDallE3 {
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return nil, core.ErrMissingAuth("openai")
		}
		return imagegen.NewOpenAIProvider(imagegen.OpenAIProviderConfig{
			APIKey: key,
			Model:  opts.Model,
		})
	}

	client, err := replicate.NewClientFromEnv()
	if err != nil {
		if errors.Is(err, replicate.ErrMissingToken) {
			return nil, core.ErrMissingAuth("replicate")
		}
		return nil, err
	}
	return imagegen.NewReplicateProvider(client, opts.Model)
}
