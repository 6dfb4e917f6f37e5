package main

import (
	"fmt"

	"filingqa/pkg/core/calc"
	"filingqa/pkg/core/findata"
)

// Offline verification of the ratio formulas against hand-checked Apple
// FY2024 figures (millions USD). Run when touching pkg/core/calc.
func main() {
	bs := &findata.BalanceSheetRecord{
		Ticker:                  "AAPL",
		Year:                    2024,
		CashAndEquivalents:      29943,
		ShortTermInvestments:    35228,
		NetReceivables:          66243,
		TotalCurrentAssets:      152987,
		TotalCurrentLiabilities: 176392,
		TotalAssets:             364980,
		LongTermDebt:            85750,
		TotalDebt:               106629,
		TotalEquity:             56950,
	}
	cf := &findata.CashFlowRecord{
		Ticker:              "AAPL",
		Year:                2024,
		OperatingCashFlow:   118254,
		CapitalExpenditures: -9447,
	}
	is := &findata.IncomeStatementRecord{
		Ticker:          "AAPL",
		Year:            2024,
		Revenue:         391035,
		GrossProfit:     180683,
		OperatingIncome: 123216,
		NetIncome:       93736,
	}

	r := findata.DeriveRatios(bs, cf, is)

	fmt.Println("--- Ratio Verification (AAPL FY2024) ---")
	check("Current Ratio", r.CurrentRatio, 152987.0/176392.0)
	check("Quick Ratio", r.QuickRatio, (29943.0+35228.0+66243.0)/176392.0)
	check("Debt/Equity", r.DebtToEquity, 106629.0/56950.0)
	check("Free Cash Flow", r.FreeCashFlow, 118254.0-9447.0)
	check("Gross Margin", r.GrossMargin, 180683.0/391035.0)
	check("Net Margin", r.NetMargin, 93736.0/391035.0)
	check("ROE", r.ROE, 93736.0/56950.0)

	// Degenerate input behavior: zero denominators stay finite
	fmt.Println("\n--- Degenerate Inputs ---")
	check("CurrentRatio(x, 0)", calc.CurrentRatio(100, 0), 0)
	check("DebtToEquity(x, 0)", calc.DebtToEquity(100, 0), 0)
	check("GrowthRate(x, 0)", calc.GrowthRate(100, 0), 0)
}

func check(label string, got, want float64) {
	status := "OK"
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		status = "MISMATCH"
	}
	fmt.Printf("%-22s got=%.6f want=%.6f [%s]\n", label, got, want, status)
}
