package findata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"filingqa/pkg/core/calc"
)

const (
	defaultBaseURL = "https://financialmodelingprep.com/api/v3"

	balanceSheetPath    = "balance-sheet-statement"
	cashFlowPath        = "cash-flow-statement"
	incomeStatementPath = "income-statement"
)

// Client calls the fundamentals vendor API. The API key is validated at
// construction so a missing credential fails before any network call.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewClient validates the credential and returns a ready client.
func NewClient(apiKey string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("FINDATA_API_KEY_MISSING: vendor API key is required")
	}
	return &Client{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
	}, nil
}

// SetBaseURL overrides the vendor endpoint (used in tests).
func (c *Client) SetBaseURL(base string) {
	c.baseURL = strings.TrimRight(base, "/")
}

// BalanceSheets returns up to limit annual balance sheet records, most
// recent first (the vendor's ordering).
func (c *Client) BalanceSheets(ctx context.Context, ticker string, limit int) ([]BalanceSheetRecord, error) {
	var records []BalanceSheetRecord
	if err := c.fetchStatements(ctx, balanceSheetPath, ticker, limit, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CashFlows returns up to limit annual cash flow records.
func (c *Client) CashFlows(ctx context.Context, ticker string, limit int) ([]CashFlowRecord, error) {
	var records []CashFlowRecord
	if err := c.fetchStatements(ctx, cashFlowPath, ticker, limit, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// IncomeStatements returns up to limit annual income statement records.
func (c *Client) IncomeStatements(ctx context.Context, ticker string, limit int) ([]IncomeStatementRecord, error) {
	var records []IncomeStatementRecord
	if err := c.fetchStatements(ctx, incomeStatementPath, ticker, limit, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) fetchStatements(ctx context.Context, path, ticker string, limit int, out interface{}) error {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return fmt.Errorf("ticker is required")
	}
	if limit <= 0 {
		limit = 5
	}

	endpoint := fmt.Sprintf("%s/%s/%s?period=annual&limit=%d&apikey=%s",
		c.baseURL, path, url.PathEscape(ticker), limit, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build vendor request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("vendor request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read vendor response: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("vendor API error: status=%d body=%s", res.StatusCode, truncate(string(body), 200))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode vendor %s response: %w", path, err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// DeriveRatios computes the ratio set for one ticker-year from its three
// statement records. Any record may be nil; the ratios depending on it are
// left at zero.
func DeriveRatios(bs *BalanceSheetRecord, cf *CashFlowRecord, is *IncomeStatementRecord) StatementRatios {
	var r StatementRatios

	if bs != nil {
		r.Ticker = bs.Ticker
		r.Year = bs.Year
		r.Period = bs.Period
		r.CurrentRatio = calc.CurrentRatio(bs.TotalCurrentAssets, bs.TotalCurrentLiabilities)
		r.QuickRatio = calc.QuickRatio(bs.CashAndEquivalents, bs.ShortTermInvestments, bs.NetReceivables, bs.TotalCurrentLiabilities)
		r.WorkingCapital = calc.WorkingCapital(bs.TotalCurrentAssets, bs.TotalCurrentLiabilities)
		r.DebtToEquity = calc.DebtToEquity(bs.TotalDebt, bs.TotalEquity)
		r.LTDebtToCapital = calc.LTDebtToCapital(bs.LongTermDebt, bs.TotalEquity)
	}

	if cf != nil {
		if r.Ticker == "" {
			r.Ticker, r.Year, r.Period = cf.Ticker, cf.Year, cf.Period
		}
		r.FreeCashFlow = calc.FreeCashFlow(cf.OperatingCashFlow, cf.CapitalExpenditures)
	}

	if is != nil {
		if r.Ticker == "" {
			r.Ticker, r.Year, r.Period = is.Ticker, is.Year, is.Period
		}
		r.GrossMargin = calc.GrossMargin(is.GrossProfit, is.Revenue)
		r.OperatingMargin = calc.OperatingMargin(is.OperatingIncome, is.Revenue)
		r.NetMargin = calc.NetMargin(is.NetIncome, is.Revenue)
		r.InterestCoverage = calc.InterestCoverageRatio(is.OperatingIncome, is.InterestExpense)
		r.FCFMargin = calc.FCFMargin(r.FreeCashFlow, is.Revenue)
		if bs != nil {
			r.ROE = calc.ROE(is.NetIncome, bs.TotalEquity)
			r.ROA = calc.ROA(is.NetIncome, bs.TotalAssets)
		}
	}

	return r
}

// FetchRatios retrieves the latest annual statements for ticker and derives
// ratios per year, aligned on calendar year.
func (c *Client) FetchRatios(ctx context.Context, ticker string, years int) ([]StatementRatios, error) {
	bsRecords, err := c.BalanceSheets(ctx, ticker, years)
	if err != nil {
		return nil, err
	}
	cfRecords, err := c.CashFlows(ctx, ticker, years)
	if err != nil {
		return nil, err
	}
	isRecords, err := c.IncomeStatements(ctx, ticker, years)
	if err != nil {
		return nil, err
	}

	cfByYear := make(map[int]*CashFlowRecord, len(cfRecords))
	for i := range cfRecords {
		cfByYear[cfRecords[i].Year] = &cfRecords[i]
	}
	isByYear := make(map[int]*IncomeStatementRecord, len(isRecords))
	for i := range isRecords {
		isByYear[isRecords[i].Year] = &isRecords[i]
	}

	ratios := make([]StatementRatios, 0, len(bsRecords))
	for i := range bsRecords {
		bs := &bsRecords[i]
		ratios = append(ratios, DeriveRatios(bs, cfByYear[bs.Year], isByYear[bs.Year]))
	}
	return ratios, nil
}
