package main

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/naijatax/paye-calculator/internal/currency"
	"github.com/naijatax/paye-calculator/internal/domain"
)

// salaryFlags are shared by every command that evaluates one salary
type salaryFlags struct {
	gross         float64
	annual        bool
	rent          float64
	pension       bool
	nhf           bool
	lifeAssurance bool
	lifeInsurance float64
}

func (f *salaryFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&f.gross, "gross", "g", 0, "gross salary in naira (monthly unless --annual)")
	cmd.Flags().BoolVar(&f.annual, "annual", false, "treat --gross as an annual amount")
	cmd.Flags().Float64Var(&f.rent, "rent", 0, "annual rent paid, for rent relief")
	cmd.Flags().BoolVar(&f.pension, "pension", true, "deduct 8% pension")
	cmd.Flags().BoolVar(&f.nhf, "nhf", false, "deduct 2.5% National Housing Fund")
	cmd.Flags().BoolVar(&f.lifeAssurance, "life-assurance", false, "deduct 2% life assurance")
	cmd.Flags().Float64Var(&f.lifeInsurance, "life-insurance", 0, "annual life insurance premium actually paid")
	_ = cmd.MarkFlagRequired("gross")
}

func (f *salaryFlags) inputs() (domain.TaxInputs, error) {
	if f.gross < 0 || f.rent < 0 || f.lifeInsurance < 0 {
		return domain.TaxInputs{}, errNegativeAmount
	}
	return domain.TaxInputs{
		GrossSalary:          decimal.NewFromFloat(f.gross),
		IsAnnual:             f.annual,
		AnnualRent:           decimal.NewFromFloat(f.rent),
		PensionEnabled:       f.pension,
		NHFEnabled:           f.nhf,
		LifeAssuranceEnabled: f.lifeAssurance,
		LifeInsurancePaid:    decimal.NewFromFloat(f.lifeInsurance),
	}, nil
}

func (a *app) newCalcCmd() *cobra.Command {
	var (
		salary     salaryFlags
		currencies []string
		outputDir  string
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate PAYE under the 2026 act and compare with the 2021 law",
		Example: `  paye calc --gross 500000
  paye calc --gross 12000000 --annual --rent 2400000 --nhf --format html --output-dir reports`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := salary.inputs()
			if err != nil {
				return err
			}
			report := &domain.TaxReport{Inputs: in, Result: a.engine.CalculateTax(in)}
			if len(currencies) > 0 {
				report.Conversions, err = currency.Convert(report.Result, currencies...)
				if err != nil {
					return err
				}
			}
			return a.report(report, outputDir)
		},
	}
	salary.register(cmd)
	cmd.Flags().StringSliceVar(&currencies, "currencies", nil, "show monthly figures in these currencies (USD,GBP,EUR)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "write the report to a timestamped file in this directory")
	return cmd
}
