package calculation

import (
	"github.com/naijatax/paye-calculator/internal/domain"
	money "github.com/naijatax/paye-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

var (
	monthsPerYear = decimal.NewFromInt(12)
	hundred       = decimal.NewFromInt(100)
)

// TaxEngine evaluates a salary under the 2026 act and compares it with the 2021 law
type TaxEngine struct {
	Rules      domain.TaxRules
	Deductions *DeductionCalculator
	Logger     Logger
}

// NewTaxEngine creates an engine over the statutory defaults
func NewTaxEngine() *TaxEngine {
	return NewTaxEngineWithRules(DefaultRules())
}

// NewTaxEngineWithRules creates an engine with configurable rules
func NewTaxEngineWithRules(rules domain.TaxRules) *TaxEngine {
	return &TaxEngine{
		Rules:      rules,
		Deductions: NewDeductionCalculatorWithRules(rules),
		Logger:     NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (te *TaxEngine) SetLogger(l Logger) {
	if l == nil {
		te.Logger = NopLogger{}
		return
	}
	te.Logger = l
}

// AnnualGross normalizes the salary input to an annual figure
func AnnualGross(inputs domain.TaxInputs) decimal.Decimal {
	if inputs.IsAnnual {
		return inputs.GrossSalary
	}
	return money.NewMoneyFromDecimal(inputs.GrossSalary).Annual().Decimal
}

// CalculateTax is the single entry point for one evaluation. It never fails;
// degenerate inputs produce degenerate but defined results.
func (te *TaxEngine) CalculateTax(inputs domain.TaxInputs) domain.TaxResult {
	annualGross := AnnualGross(inputs)

	if annualGross.LessThanOrEqual(te.Rules.TaxFreeThreshold) {
		return te.taxFreeResult(annualGross, inputs)
	}

	d := te.Deductions.ComputeDeductions(annualGross, inputs)
	totalDeductions := d.Total()

	chargeable := annualGross.Sub(totalDeductions)
	if chargeable.IsNegative() {
		chargeable = decimal.Zero
	}

	annualTax, bands := EvaluateBands(chargeable, te.Rules.Bands2026)
	old := te.Deductions.OldLawTax(annualGross, d.Pension, d.NHF)

	taxSavings := old.FinalTax.Sub(annualTax)
	savingsPct := decimal.Zero
	if !old.FinalTax.IsZero() {
		savingsPct = taxSavings.Div(old.FinalTax).Mul(hundred)
	}

	// Rent relief only lowers the tax base; it is not cash out of pay.
	takeHome := annualGross.Sub(annualTax).Sub(d.Pension).Sub(d.NHF).Sub(d.LifeAssurance)

	result := domain.TaxResult{
		AnnualGross:            annualGross,
		MonthlyGross:           annualGross.Div(monthsPerYear),
		PensionDeduction:       d.Pension,
		NHFDeduction:           d.NHF,
		LifeAssuranceDeduction: d.LifeAssurance,
		RentRelief:             d.RentRelief,
		TotalDeductions:        totalDeductions,
		ChargeableIncome:       chargeable,
		AnnualTax:              annualTax,
		MonthlyTax:             annualTax.Div(monthsPerYear),
		AnnualTakeHome:         takeHome,
		MonthlyTakeHome:        takeHome.Div(monthsPerYear),
		TaxBands:               bands,
		OldLawAnnualTax:        old.FinalTax,
		OldLawMonthlyTax:       old.FinalTax.Div(monthsPerYear),
		OldTaxBreakdown:        old,
		TaxSavings:             taxSavings,
		MonthlySavings:         taxSavings.Div(monthsPerYear),
		SavingsPercentage:      savingsPct,
		IsNewLawBetter:         !taxSavings.IsNegative(),
		EffectiveRate:          ratePercent(annualTax, annualGross),
		OldEffectiveRate:       ratePercent(old.FinalTax, annualGross),
	}

	te.Logger.Debugf("paye: gross=%s chargeable=%s tax=%s old_tax=%s",
		annualGross.StringFixed(2), chargeable.StringFixed(2), annualTax.StringFixed(2), old.FinalTax.StringFixed(2))
	return result
}

// taxFreeResult covers gross at or below the threshold. Only pension and NHF
// apply; the 2021 comparison is still computed so savings can be shown.
func (te *TaxEngine) taxFreeResult(annualGross decimal.Decimal, inputs domain.TaxInputs) domain.TaxResult {
	pension := te.Deductions.Pension(annualGross, inputs.PensionEnabled)
	nhf := te.Deductions.NHF(annualGross, inputs.NHFEnabled)
	old := te.Deductions.OldLawTax(annualGross, pension, nhf)

	savingsPct := decimal.Zero
	if old.FinalTax.IsPositive() {
		savingsPct = hundred
	}
	takeHome := annualGross.Sub(pension).Sub(nhf)

	chargeable := annualGross.Sub(pension).Sub(nhf)
	if chargeable.IsNegative() {
		chargeable = decimal.Zero
	}
	// The breakdown still places the base in bands; the exemption waives the tax in each.
	_, bands := EvaluateBands(chargeable, te.Rules.Bands2026)
	for i := range bands {
		bands[i].TaxAmount = decimal.Zero
	}

	te.Logger.Debugf("paye: gross=%s at or below tax-free threshold %s",
		annualGross.StringFixed(2), te.Rules.TaxFreeThreshold.StringFixed(2))

	return domain.TaxResult{
		AnnualGross:            annualGross,
		MonthlyGross:           annualGross.Div(monthsPerYear),
		PensionDeduction:       pension,
		NHFDeduction:           nhf,
		LifeAssuranceDeduction: decimal.Zero,
		RentRelief:             decimal.Zero,
		TotalDeductions:        pension.Add(nhf),
		ChargeableIncome:       chargeable,
		AnnualTax:              decimal.Zero,
		MonthlyTax:             decimal.Zero,
		AnnualTakeHome:         takeHome,
		MonthlyTakeHome:        takeHome.Div(monthsPerYear),
		TaxBands:               bands,
		OldLawAnnualTax:        old.FinalTax,
		OldLawMonthlyTax:       old.FinalTax.Div(monthsPerYear),
		OldTaxBreakdown:        old,
		TaxSavings:             old.FinalTax,
		MonthlySavings:         old.FinalTax.Div(monthsPerYear),
		SavingsPercentage:      savingsPct,
		IsNewLawBetter:         true,
		EffectiveRate:          decimal.Zero,
		OldEffectiveRate:       ratePercent(old.FinalTax, annualGross),
		IsTaxFree:              true,
	}
}

// ratePercent returns part/whole*100, or zero when whole is zero
func ratePercent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

var defaultEngine = NewTaxEngine()

// CalculateTax evaluates inputs with the statutory default rules
func CalculateTax(inputs domain.TaxInputs) domain.TaxResult {
	return defaultEngine.CalculateTax(inputs)
}
