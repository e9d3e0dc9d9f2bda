package output

import (
	"bytes"
	"encoding/csv"

	"github.com/naijatax/paye-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per evaluation).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.TaxReport) ([]byte, error) {
	r := report.Result
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"AnnualGross", "MonthlyGross", "Pension", "NHF", "LifeAssurance", "RentRelief", "ChargeableIncome", "AnnualTax", "MonthlyTax", "AnnualTakeHome", "MonthlyTakeHome", "OldLawAnnualTax", "TaxSavings", "SavingsPercentage", "EffectiveRate", "IsTaxFree"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	row := []string{
		r.AnnualGross.StringFixed(2),
		r.MonthlyGross.StringFixed(2),
		r.PensionDeduction.StringFixed(2),
		r.NHFDeduction.StringFixed(2),
		r.LifeAssuranceDeduction.StringFixed(2),
		r.RentRelief.StringFixed(2),
		r.ChargeableIncome.StringFixed(2),
		r.AnnualTax.StringFixed(2),
		r.MonthlyTax.StringFixed(2),
		r.AnnualTakeHome.StringFixed(2),
		r.MonthlyTakeHome.StringFixed(2),
		r.OldLawAnnualTax.StringFixed(2),
		r.TaxSavings.StringFixed(2),
		r.SavingsPercentage.StringFixed(2),
		r.EffectiveRate.StringFixed(2),
		boolToString(r.IsTaxFree),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVBandsExporter writes one row per 2026 band the income reached.
type CSVBandsExporter struct{}

func (c CSVBandsExporter) Name() string { return "detailed-csv" }

func (c CSVBandsExporter) Format(report *domain.TaxReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Band", "Label", "Rate", "Width", "TaxableAmount", "TaxAmount"}); err != nil {
		return nil, err
	}
	for i, b := range report.Result.TaxBands {
		width := b.Threshold.StringFixed(2)
		if b.Unbounded {
			width = "unbounded"
		}
		row := []string{
			intToString(i + 1),
			b.Label,
			b.Rate.StringFixed(2),
			width,
			b.TaxableAmount.StringFixed(2),
			b.TaxAmount.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
