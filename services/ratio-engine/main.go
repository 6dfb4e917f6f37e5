package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"filingqa/pkg/core/calc"
)

// StatementData is the minimal payload the engine operates on. Callers pass
// vendor-reported figures; the engine never fetches.
type StatementData struct {
	CurrentAssets       float64 `json:"current_assets"`
	CurrentLiabilities  float64 `json:"current_liabilities"`
	TotalDebt           float64 `json:"total_debt"`
	TotalEquity         float64 `json:"total_equity"`
	OperatingCashFlow   float64 `json:"operating_cash_flow"`
	CapitalExpenditures float64 `json:"capital_expenditures"`
}

func main() {
	mode := flag.String("mode", "derive", "Mode: check or derive")
	dataStr := flag.String("data", "", "JSON data payload")
	flag.Parse()

	if *dataStr == "" {
		fmt.Println("Error: No data provided")
		os.Exit(1)
	}

	var data StatementData
	if err := json.Unmarshal([]byte(*dataStr), &data); err != nil {
		fmt.Printf("Error unmarshaling data: %v\n", err)
		os.Exit(1)
	}

	switch *mode {
	case "check":
		runChecks(data)
	case "derive":
		runDerivation(data)
	default:
		fmt.Printf("Unknown mode: %s\n", *mode)
	}
}

// runChecks flags degenerate inputs before any ratio is trusted.
func runChecks(data StatementData) {
	ok := true
	if data.CurrentLiabilities == 0 {
		fmt.Println("Warning: current liabilities are zero; current ratio is undefined")
		ok = false
	}
	if data.TotalEquity == 0 {
		fmt.Println("Warning: total equity is zero; debt-to-equity is undefined")
		ok = false
	}
	if ok {
		fmt.Println("Success: denominators are well-formed")
	}
}

func runDerivation(data StatementData) {
	out := map[string]float64{
		"current_ratio":  calc.CurrentRatio(data.CurrentAssets, data.CurrentLiabilities),
		"debt_to_equity": calc.DebtToEquity(data.TotalDebt, data.TotalEquity),
		"free_cash_flow": calc.FreeCashFlow(data.OperatingCashFlow, data.CapitalExpenditures),
	}
	encoded, _ := json.Marshal(out)
	fmt.Println(string(encoded))
}
