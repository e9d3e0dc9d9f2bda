package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/naijatax/paye-calculator/internal/currency"
)

func (a *app) newConvertCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "convert AMOUNT",
		Short: "Convert between naira and USD, GBP or EUR at the built-in rates",
		Example: `  paye convert 500000 --to USD
  paye convert 2500 --from GBP`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(strings.ReplaceAll(args[0], ",", ""))
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			switch {
			case from != "" && to != "":
				return fmt.Errorf("use either --from or --to, not both")
			case from != "":
				naira, err := currency.ConvertToNGN(amount, from)
				if err != nil {
					return err
				}
				shown, _ := currency.FormatForeign(amount, from)
				fmt.Fprintf(a.out, "%s = %s\n", shown, currency.FormatCurrency(naira))
			case to != "":
				foreign, err := currency.ConvertFromNGN(amount, to)
				if err != nil {
					return err
				}
				shown, _ := currency.FormatForeign(foreign, to)
				fmt.Fprintf(a.out, "%s = %s\n", currency.FormatCurrency(amount), shown)
			default:
				for _, c := range currency.All() {
					foreign := amount.Div(c.Rate)
					shown, _ := currency.FormatForeign(foreign, c.Code)
					fmt.Fprintf(a.out, "%s = %s (%s)\n", currency.FormatCurrency(amount), shown, c.Name)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "convert AMOUNT from this currency into naira")
	cmd.Flags().StringVar(&to, "to", "", "convert AMOUNT naira into this currency")
	return cmd
}
