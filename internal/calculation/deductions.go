package calculation

import (
	"github.com/naijatax/paye-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// DeductionCalculator handles statutory deductions, reliefs and the 2021-law tax
type DeductionCalculator struct {
	Rules domain.TaxRules
}

// NewDeductionCalculator creates a calculator over the statutory defaults
func NewDeductionCalculator() *DeductionCalculator {
	return &DeductionCalculator{Rules: DefaultRules()}
}

// NewDeductionCalculatorWithRules creates a calculator with configurable rules
func NewDeductionCalculatorWithRules(rules domain.TaxRules) *DeductionCalculator {
	return &DeductionCalculator{Rules: rules}
}

// ComputeDeductions returns pension, NHF, life assurance and rent relief for an annual gross.
// Negative inputs are not rejected and propagate as negative amounts.
func (dc *DeductionCalculator) ComputeDeductions(annualGross decimal.Decimal, inputs domain.TaxInputs) domain.Deductions {
	return domain.Deductions{
		Pension:       dc.Pension(annualGross, inputs.PensionEnabled),
		NHF:           dc.NHF(annualGross, inputs.NHFEnabled),
		LifeAssurance: dc.LifeAssurance(annualGross, inputs.LifeAssuranceEnabled, inputs.LifeInsurancePaid),
		RentRelief:    dc.RentRelief(inputs.AnnualRent),
	}
}

// Pension is 8% of gross when enabled
func (dc *DeductionCalculator) Pension(annualGross decimal.Decimal, enabled bool) decimal.Decimal {
	if !enabled {
		return decimal.Zero
	}
	return annualGross.Mul(dc.Rules.PensionRate)
}

// NHF is the National Housing Fund contribution, 2.5% of gross when enabled
func (dc *DeductionCalculator) NHF(annualGross decimal.Decimal, enabled bool) decimal.Decimal {
	if !enabled {
		return decimal.Zero
	}
	return annualGross.Mul(dc.Rules.NHFRate)
}

// LifeAssurance uses the premium actually paid when one is given, else 2% of gross when enabled
func (dc *DeductionCalculator) LifeAssurance(annualGross decimal.Decimal, enabled bool, premiumPaid decimal.Decimal) decimal.Decimal {
	if premiumPaid.IsPositive() {
		return premiumPaid
	}
	if !enabled {
		return decimal.Zero
	}
	return annualGross.Mul(dc.Rules.LifeAssuranceRate)
}

// RentRelief is 20% of annual rent capped at ₦500,000. It has no enable flag.
func (dc *DeductionCalculator) RentRelief(annualRent decimal.Decimal) decimal.Decimal {
	return decimal.Min(annualRent.Mul(dc.Rules.RentReliefRate), dc.Rules.RentReliefCap)
}

// ConsolidatedReliefAllowance = max(₦200,000, 1% of gross) + 20% of gross
func (dc *DeductionCalculator) ConsolidatedReliefAllowance(annualGross decimal.Decimal) decimal.Decimal {
	fixedOrPercent := decimal.Max(dc.Rules.CRAFixed, annualGross.Mul(dc.Rules.CRAGrossRate))
	return fixedOrPercent.Add(annualGross.Mul(dc.Rules.CRAAdditionalRate))
}

// OldLawTax computes tax under the 2021 bands, including the minimum tax rule.
// Minimum tax replaces the band tax only when it is higher and there is a
// positive chargeable income; a fully relieved taxpayer owes nothing.
func (dc *DeductionCalculator) OldLawTax(annualGross, pension, nhf decimal.Decimal) domain.OldTaxBreakdown {
	adjustedGross := annualGross.Sub(pension).Sub(nhf)
	cra := dc.ConsolidatedReliefAllowance(annualGross)

	chargeable := adjustedGross.Sub(cra)
	if chargeable.IsNegative() {
		chargeable = decimal.Zero
	}

	calculatedTax := BandTaxTotal(chargeable, dc.Rules.Bands2021)
	minimumTax := annualGross.Mul(dc.Rules.MinimumTaxRate)

	usedMinimum := calculatedTax.LessThan(minimumTax) && chargeable.IsPositive()
	finalTax := calculatedTax
	if usedMinimum {
		finalTax = minimumTax
	}

	return domain.OldTaxBreakdown{
		AdjustedGross:    adjustedGross,
		CRA:              cra,
		ChargeableIncome: chargeable,
		CalculatedTax:    calculatedTax,
		MinimumTax:       minimumTax,
		FinalTax:         finalTax,
		UsedMinimumTax:   usedMinimum,
	}
}
