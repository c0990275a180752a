package cmd

import (
	"fmt"

	"deckforge/core"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var cardsOpts = core.DefaultOptions()

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "List the cards that a generation run would produce",
	Long: `Cards prints the deck's card list with the numerals and filenames a
generate run would use, without calling any API.

Examples:
  deckforge cards
  deckforge cards --cards sample
  deckforge cards --oracle-file my_oracle.yaml`,
	Args: cobra.NoArgs,
	RunE: runCards,
}

func init() {
	RootCmd.AddCommand(cardsCmd)

	f := cardsCmd.Flags()
	f.StringVar(&cardsOpts.Subset, "cards", cardsOpts.Subset, "card subset: all, major, minor, or sample")
	f.StringVar(&cardsOpts.CardsFile, "cards-file", "", "YAML tarot deck definition overriding the builtin catalog")
	f.StringVar(&cardsOpts.OracleFile, "oracle-file", "", "YAML oracle deck definition")
}

func runCards(cmd *cobra.Command, args []string) error {
	d, cards, err := loadDeck(cardsOpts)
	if err != nil {
		return err
	}

	color.Cyan("%s (%d cards)\n", d.Name, len(cards))
	for _, c := range cards {
		label := string(c.Arcana)
		if c.Suit != "" {
			label = c.Suit
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %s  %-28s %-10s %s\n",
			color.HiWhiteString(c.Numeral),
			c.Name,
			color.YellowString(label),
			color.HiBlackString(c.Filename()))
	}
	return nil
}
