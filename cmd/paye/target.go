package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/naijatax/paye-calculator/internal/domain"
	"github.com/naijatax/paye-calculator/internal/output"
)

func (a *app) newTargetCmd() *cobra.Command {
	var (
		net     float64
		pension bool
		nhf     bool
	)
	cmd := &cobra.Command{
		Use:   "target",
		Short: "Find the gross salary that yields a desired monthly take-home",
		Example: `  paye target --net 400000
  paye target --net 1000000 --nhf=true --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if net < 0 {
				return errNegativeAmount
			}
			res := a.engine.FindGrossFromNet(decimal.NewFromFloat(net), pension, nhf)

			fmt.Fprintf(a.out, "Required gross: %s / year (%s / month)\n",
				output.FormatCurrency(res.RequiredGross), output.FormatCurrency(res.RequiredGross.Div(decimal.NewFromInt(12))))
			if !res.Converged {
				fmt.Fprintf(a.out, "Note: closest gross found after %d iterations\n", res.Iterations)
			}
			fmt.Fprintln(a.out)

			in := domain.TaxInputs{GrossSalary: res.RequiredGross, IsAnnual: true, PensionEnabled: pension, NHFEnabled: nhf}
			return a.report(&domain.TaxReport{Inputs: in, Result: res.Result}, "")
		},
	}
	cmd.Flags().Float64VarP(&net, "net", "n", 0, "desired monthly take-home in naira")
	cmd.Flags().BoolVar(&pension, "pension", true, "deduct 8% pension")
	cmd.Flags().BoolVar(&nhf, "nhf", false, "deduct 2.5% National Housing Fund")
	_ = cmd.MarkFlagRequired("net")
	return cmd
}
