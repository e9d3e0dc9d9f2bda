package domain

import (
	"github.com/shopspring/decimal"
)

// TaxInputs is one caller-supplied salary evaluation request
type TaxInputs struct {
	GrossSalary          decimal.Decimal `yaml:"gross_salary" json:"gross_salary"`
	IsAnnual             bool            `yaml:"is_annual" json:"is_annual"` // false: GrossSalary is monthly
	AnnualRent           decimal.Decimal `yaml:"annual_rent" json:"annual_rent"`
	PensionEnabled       bool            `yaml:"pension_enabled" json:"pension_enabled"`
	NHFEnabled           bool            `yaml:"nhf_enabled" json:"nhf_enabled"`
	LifeAssuranceEnabled bool            `yaml:"life_assurance_enabled" json:"life_assurance_enabled"`

	// LifeInsurancePaid is an absolute annual premium. When positive it replaces
	// the rate-based life assurance deduction.
	LifeInsurancePaid decimal.Decimal `yaml:"life_insurance_paid,omitempty" json:"life_insurance_paid,omitempty"`
}

// TaxBand is the share of chargeable income that fell into one 2026 band
type TaxBand struct {
	Threshold     decimal.Decimal `json:"threshold"` // band width; zero when Unbounded
	Unbounded     bool            `json:"unbounded"`
	Rate          decimal.Decimal `json:"rate"`
	Label         string          `json:"label"`
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
}

// OldTaxBreakdown details the 2021-law computation
type OldTaxBreakdown struct {
	AdjustedGross    decimal.Decimal `json:"adjusted_gross"`
	CRA              decimal.Decimal `json:"cra"`
	ChargeableIncome decimal.Decimal `json:"chargeable_income"`
	CalculatedTax    decimal.Decimal `json:"calculated_tax"`
	MinimumTax       decimal.Decimal `json:"minimum_tax"`
	FinalTax         decimal.Decimal `json:"final_tax"`
	UsedMinimumTax   bool            `json:"used_minimum_tax"`
}

// Deductions are the statutory and relief amounts for one annual gross
type Deductions struct {
	Pension       decimal.Decimal `json:"pension"`
	NHF           decimal.Decimal `json:"nhf"`
	LifeAssurance decimal.Decimal `json:"life_assurance"`
	RentRelief    decimal.Decimal `json:"rent_relief"`
}

// Total sums every deduction, rent relief included
func (d Deductions) Total() decimal.Decimal {
	return d.Pension.Add(d.NHF).Add(d.LifeAssurance).Add(d.RentRelief)
}

// TaxResult is the complete outcome of one evaluation under both laws
type TaxResult struct {
	AnnualGross  decimal.Decimal `json:"annual_gross"`
	MonthlyGross decimal.Decimal `json:"monthly_gross"`

	PensionDeduction       decimal.Decimal `json:"pension_deduction"`
	NHFDeduction           decimal.Decimal `json:"nhf_deduction"`
	LifeAssuranceDeduction decimal.Decimal `json:"life_assurance_deduction"`
	RentRelief             decimal.Decimal `json:"rent_relief"`
	TotalDeductions        decimal.Decimal `json:"total_deductions"`

	ChargeableIncome decimal.Decimal `json:"chargeable_income"`
	AnnualTax        decimal.Decimal `json:"annual_tax"`
	MonthlyTax       decimal.Decimal `json:"monthly_tax"`

	AnnualTakeHome  decimal.Decimal `json:"annual_take_home"`
	MonthlyTakeHome decimal.Decimal `json:"monthly_take_home"`

	TaxBands []TaxBand `json:"tax_bands"`

	OldLawAnnualTax   decimal.Decimal `json:"old_law_annual_tax"`
	OldLawMonthlyTax  decimal.Decimal `json:"old_law_monthly_tax"`
	OldTaxBreakdown   OldTaxBreakdown `json:"old_tax_breakdown"`
	TaxSavings        decimal.Decimal `json:"tax_savings"`
	MonthlySavings    decimal.Decimal `json:"monthly_savings"`
	SavingsPercentage decimal.Decimal `json:"savings_percentage"`
	IsNewLawBetter    bool            `json:"is_new_law_better"`

	EffectiveRate    decimal.Decimal `json:"effective_rate"`
	OldEffectiveRate decimal.Decimal `json:"old_effective_rate"`

	IsTaxFree bool `json:"is_tax_free"`
}

// GrossFromNetResult is the answer to an inverse (net to gross) query
type GrossFromNetResult struct {
	RequiredGross decimal.Decimal `json:"required_gross"` // annual
	Result        TaxResult       `json:"result"`
	Converged     bool            `json:"converged"`
	Iterations    int             `json:"iterations"`
}

// BandSpec is one row of a progressive band table
type BandSpec struct {
	Width decimal.Decimal `yaml:"width" json:"width"` // ignored for the final band
	Rate  decimal.Decimal `yaml:"rate" json:"rate"`
	Label string          `yaml:"label" json:"label"`
}

// TaxRules holds every statutory constant the engine applies
type TaxRules struct {
	Bands2026 []BandSpec `yaml:"bands_2026" json:"bands_2026"`
	Bands2021 []BandSpec `yaml:"bands_2021" json:"bands_2021"`

	TaxFreeThreshold  decimal.Decimal `yaml:"tax_free_threshold" json:"tax_free_threshold"`
	PensionRate       decimal.Decimal `yaml:"pension_rate" json:"pension_rate"`
	NHFRate           decimal.Decimal `yaml:"nhf_rate" json:"nhf_rate"`
	LifeAssuranceRate decimal.Decimal `yaml:"life_assurance_rate" json:"life_assurance_rate"`
	RentReliefRate    decimal.Decimal `yaml:"rent_relief_rate" json:"rent_relief_rate"`
	RentReliefCap     decimal.Decimal `yaml:"rent_relief_cap" json:"rent_relief_cap"`

	// Consolidated relief allowance: max(CRAFixed, gross*CRAGrossRate) + gross*CRAAdditionalRate
	CRAFixed          decimal.Decimal `yaml:"cra_fixed" json:"cra_fixed"`
	CRAGrossRate      decimal.Decimal `yaml:"cra_gross_rate" json:"cra_gross_rate"`
	CRAAdditionalRate decimal.Decimal `yaml:"cra_additional_rate" json:"cra_additional_rate"`
	MinimumTaxRate    decimal.Decimal `yaml:"minimum_tax_rate" json:"minimum_tax_rate"`
}
