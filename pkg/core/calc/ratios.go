package calc

import "math"

// =============================================================================
// FUNDAMENTAL RATIO DERIVATION
// =============================================================================
// All ratios are pure functions of vendor-reported statement fields.
// Division by a zero denominator yields 0 rather than NaN/Inf so that a
// missing vendor field degrades to "no signal" instead of poisoning
// downstream aggregates.

func safeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// =============================================================================
// LIQUIDITY
// =============================================================================

func CurrentRatio(currentAssets, currentLiabilities float64) float64 {
	return safeDiv(currentAssets, currentLiabilities)
}

func QuickRatio(cash, stInvestments, accountsReceivable, currentLiabilities float64) float64 {
	return safeDiv(cash+stInvestments+accountsReceivable, currentLiabilities)
}

func WorkingCapital(currentAssets, currentLiabilities float64) float64 {
	return currentAssets - currentLiabilities
}

// =============================================================================
// SOLVENCY
// =============================================================================

func DebtToEquity(totalDebt, totalEquity float64) float64 {
	return safeDiv(totalDebt, totalEquity)
}

func LTDebtToCapital(ltDebt, totalEquity float64) float64 {
	return safeDiv(ltDebt, ltDebt+totalEquity)
}

func InterestCoverageRatio(operatingIncome, interestExpense float64) float64 {
	return safeDiv(operatingIncome+math.Abs(interestExpense), math.Abs(interestExpense))
}

// =============================================================================
// CASH FLOW
// =============================================================================

// FreeCashFlow is operating cash flow minus capital expenditures. Vendors
// commonly report capex as a negative investing outflow, so the absolute
// value is subtracted regardless of sign convention.
func FreeCashFlow(operatingCashFlow, capitalExpenditures float64) float64 {
	return operatingCashFlow - math.Abs(capitalExpenditures)
}

func FCFMargin(freeCashFlow, revenue float64) float64 {
	return safeDiv(freeCashFlow, revenue)
}

// =============================================================================
// PROFITABILITY
// =============================================================================

func GrossMargin(grossProfit, revenue float64) float64 {
	return safeDiv(grossProfit, revenue)
}

func OperatingMargin(operatingIncome, revenue float64) float64 {
	return safeDiv(operatingIncome, revenue)
}

func NetMargin(netIncome, revenue float64) float64 {
	return safeDiv(netIncome, revenue)
}

func ROE(netIncome, totalEquity float64) float64 {
	return safeDiv(netIncome, totalEquity)
}

func ROA(netIncome, totalAssets float64) float64 {
	return safeDiv(netIncome, totalAssets)
}

// =============================================================================
// GROWTH
// =============================================================================

func GrowthRate(current, prior float64) float64 {
	if prior == 0 {
		return 0
	}
	return (current - prior) / math.Abs(prior)
}

func CAGR(endingValue, beginningValue float64, years int) float64 {
	if beginningValue == 0 || years == 0 {
		return 0
	}
	return math.Pow(endingValue/beginningValue, 1.0/float64(years)) - 1
}
