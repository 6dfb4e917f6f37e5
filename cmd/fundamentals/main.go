package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"filingqa/pkg/core/findata"

	"github.com/joho/godotenv"
)

func main() {
	ticker := flag.String("ticker", "AAPL", "Stock ticker to analyze")
	years := flag.Int("years", 3, "Number of annual periods to fetch")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	apiKey := os.Getenv("FINDATA_API_KEY")
	client, err := findata.NewClient(apiKey)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	ctx := context.Background()
	ratios, err := client.FetchRatios(ctx, *ticker, *years)
	if err != nil {
		log.Fatalf("Error: failed to fetch fundamentals for %s: %v", *ticker, err)
	}
	if len(ratios) == 0 {
		log.Fatalf("Error: vendor returned no annual records for %s", *ticker)
	}

	fmt.Println("################################################################################")
	fmt.Printf("                FUNDAMENTALS REPORT - %s\n", strings.ToUpper(*ticker))
	fmt.Println("################################################################################")

	fmt.Println("\n[1] LIQUIDITY")
	fmt.Printf("%-6s | %12s | %12s | %15s\n", "Year", "Current", "Quick", "Working Cap")
	fmt.Println(strings.Repeat("-", 55))
	for _, r := range ratios {
		fmt.Printf("%-6d | %12.2f | %12.2f | %15.0f\n", r.Year, r.CurrentRatio, r.QuickRatio, r.WorkingCapital)
	}

	fmt.Println("\n[2] SOLVENCY")
	fmt.Printf("%-6s | %12s | %12s | %12s\n", "Year", "D/E", "LTD/Cap", "Int Cover")
	fmt.Println(strings.Repeat("-", 50))
	for _, r := range ratios {
		fmt.Printf("%-6d | %12.2f | %12.2f | %12.1f\n", r.Year, r.DebtToEquity, r.LTDebtToCapital, r.InterestCoverage)
	}

	fmt.Println("\n[3] CASH FLOW & PROFITABILITY")
	fmt.Printf("%-6s | %15s | %9s | %9s | %9s | %9s\n", "Year", "FCF", "FCF Mgn", "Op Mgn", "Net Mgn", "ROE")
	fmt.Println(strings.Repeat("-", 70))
	for _, r := range ratios {
		fmt.Printf("%-6d | %15.0f | %8.1f%% | %8.1f%% | %8.1f%% | %8.1f%%\n",
			r.Year, r.FreeCashFlow, r.FCFMargin*100, r.OperatingMargin*100, r.NetMargin*100, r.ROE*100)
	}

	fmt.Println("\n[!] DATA CAVEATS")
	fmt.Println("Vendor prices are unadjusted; no trading calendar or canonical security")
	fmt.Println("identifiers are provided. Validate against an authoritative source before")
	fmt.Println("using these numbers for risk or pricing decisions.")
}
