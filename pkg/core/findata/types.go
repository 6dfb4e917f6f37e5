// Package findata retrieves fundamental statement records from the market
// data vendor API and derives standard ratios from them.
//
// Known vendor data-quality caveats, carried here so downstream consumers do
// not have to rediscover them:
//   - Price series are unadjusted: no split or dividend adjustment is applied.
//   - No trading-calendar metadata: gaps in daily series are indistinguishable
//     from halts or holidays without an external calendar.
//   - No canonical security identifiers (CUSIP/ISIN/FIGI): tickers are the
//     only join key and are ambiguous across exchanges and over time.
//   - No sentiment data of any kind.
//
// Validate against an authoritative source before using vendor numbers for
// risk or pricing decisions.
package findata

// Period identifies the reporting cadence of a statement record.
type Period string

const (
	PeriodAnnual    Period = "FY"
	PeriodQuarterly Period = "Q"
)

// BalanceSheetRecord holds the vendor-reported balance sheet fields for one
// ticker-period. All monetary values are in the reporting currency as
// returned, unscaled.
type BalanceSheetRecord struct {
	Ticker string `json:"symbol"`
	Date   string `json:"date"`
	Period string `json:"period"`
	Year   int    `json:"calendarYear,string"`

	CashAndEquivalents    float64 `json:"cashAndCashEquivalents"`
	ShortTermInvestments  float64 `json:"shortTermInvestments"`
	NetReceivables        float64 `json:"netReceivables"`
	Inventory             float64 `json:"inventory"`
	TotalCurrentAssets    float64 `json:"totalCurrentAssets"`
	PropertyPlantEquipNet float64 `json:"propertyPlantEquipmentNet"`
	TotalAssets           float64 `json:"totalAssets"`

	AccountsPayable         float64 `json:"accountPayables"`
	ShortTermDebt           float64 `json:"shortTermDebt"`
	TotalCurrentLiabilities float64 `json:"totalCurrentLiabilities"`
	LongTermDebt            float64 `json:"longTermDebt"`
	TotalLiabilities        float64 `json:"totalLiabilities"`
	TotalDebt               float64 `json:"totalDebt"`
	TotalEquity             float64 `json:"totalStockholdersEquity"`
}

// CashFlowRecord holds the vendor-reported cash flow statement fields.
type CashFlowRecord struct {
	Ticker string `json:"symbol"`
	Date   string `json:"date"`
	Period string `json:"period"`
	Year   int    `json:"calendarYear,string"`

	OperatingCashFlow   float64 `json:"operatingCashFlow"`
	CapitalExpenditures float64 `json:"capitalExpenditure"`
	FreeCashFlow        float64 `json:"freeCashFlow"` // Vendor-derived; recomputed locally for verification
	DividendsPaid       float64 `json:"dividendsPaid"`
	StockRepurchased    float64 `json:"commonStockRepurchased"`
	NetChangeInCash     float64 `json:"netChangeInCash"`
}

// IncomeStatementRecord holds the vendor-reported income statement fields.
type IncomeStatementRecord struct {
	Ticker string `json:"symbol"`
	Date   string `json:"date"`
	Period string `json:"period"`
	Year   int    `json:"calendarYear,string"`

	Revenue          float64 `json:"revenue"`
	CostOfRevenue    float64 `json:"costOfRevenue"`
	GrossProfit      float64 `json:"grossProfit"`
	OperatingIncome  float64 `json:"operatingIncome"`
	InterestExpense  float64 `json:"interestExpense"`
	IncomeBeforeTax  float64 `json:"incomeBeforeTax"`
	IncomeTaxExpense float64 `json:"incomeTaxExpense"`
	NetIncome        float64 `json:"netIncome"`
	EPS              float64 `json:"eps"`
}

// StatementRatios are the derived scalars for one ticker-year. Pure functions
// of the three statement records; zero denominators yield 0.
type StatementRatios struct {
	Ticker string `json:"ticker"`
	Year   int    `json:"year"`
	Period string `json:"period"`

	CurrentRatio   float64 `json:"current_ratio"`
	QuickRatio     float64 `json:"quick_ratio"`
	WorkingCapital float64 `json:"working_capital"`

	DebtToEquity     float64 `json:"debt_to_equity"`
	LTDebtToCapital  float64 `json:"lt_debt_to_capital"`
	InterestCoverage float64 `json:"interest_coverage"`

	FreeCashFlow float64 `json:"free_cash_flow"`
	FCFMargin    float64 `json:"fcf_margin"`

	GrossMargin     float64 `json:"gross_margin"`
	OperatingMargin float64 `json:"operating_margin"`
	NetMargin       float64 `json:"net_margin"`
	ROE             float64 `json:"roe"`
	ROA             float64 `json:"roa"`
}
