package calculation

import (
	"github.com/naijatax/paye-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// SolverMaxIterations bounds the binary search
	SolverMaxIterations = 100
)

var (
	// SolverTolerance is the accepted distance, in naira per year, from the target take-home
	SolverTolerance = decimal.NewFromInt(10)

	// take-home is assumed never to fall below a third of gross
	solverUpperMultiple = decimal.NewFromInt(3)
	two                 = decimal.NewFromInt(2)
)

// FindGrossFromNet binary-searches the annual gross whose take-home matches a
// monthly net target. Rent is zero and life assurance off during the search.
// Take-home is assumed non-decreasing in gross. When the search runs out of
// iterations the best gross seen above target is returned with Converged=false.
func (te *TaxEngine) FindGrossFromNet(targetMonthlyNet decimal.Decimal, pensionEnabled, nhfEnabled bool) domain.GrossFromNetResult {
	targetAnnualNet := targetMonthlyNet.Mul(monthsPerYear)

	low := targetAnnualNet
	high := targetAnnualNet.Mul(solverUpperMultiple)
	bestGross := targetAnnualNet
	var best *domain.TaxResult

	evaluate := func(gross decimal.Decimal) domain.TaxResult {
		return te.CalculateTax(domain.TaxInputs{
			GrossSalary:    gross,
			IsAnnual:       true,
			AnnualRent:     decimal.Zero,
			PensionEnabled: pensionEnabled,
			NHFEnabled:     nhfEnabled,
		})
	}

	for i := 1; i <= SolverMaxIterations; i++ {
		mid := low.Add(high).Div(two).Floor()
		result := evaluate(mid)
		netDiff := result.AnnualTakeHome.Sub(targetAnnualNet)

		if netDiff.Abs().LessThanOrEqual(SolverTolerance) {
			te.Logger.Debugf("solver: converged gross=%s after %d iterations", mid.StringFixed(0), i)
			return domain.GrossFromNetResult{RequiredGross: mid, Result: result, Converged: true, Iterations: i}
		}

		if netDiff.IsPositive() {
			high = mid
			bestGross = mid
			best = &result
		} else {
			low = mid
		}
	}

	te.Logger.Warnf("solver: no gross within %s of net %s after %d iterations; using %s",
		SolverTolerance.String(), targetAnnualNet.StringFixed(2), SolverMaxIterations, bestGross.StringFixed(0))

	if best == nil {
		r := evaluate(bestGross)
		best = &r
	}
	return domain.GrossFromNetResult{RequiredGross: bestGross, Result: *best, Converged: false, Iterations: SolverMaxIterations}
}

// FindGrossFromNet runs the inverse search with the statutory default rules
func FindGrossFromNet(targetMonthlyNet decimal.Decimal, pensionEnabled, nhfEnabled bool) domain.GrossFromNetResult {
	return defaultEngine.FindGrossFromNet(targetMonthlyNet, pensionEnabled, nhfEnabled)
}
