package config

// DefaultFinance returns the tax and portfolio data backing the financial
// document generators.
func DefaultFinance() FinanceConfig {
	return FinanceConfig{
		TaxYears: []int{2022, 2023, 2024, 2025},
		Federal: map[int]TaxSummary{
			2022: {Income: 95000, TaxPaid: 14250, Refund: 450},
			2023: {Income: 102000, TaxPaid: 16800, Refund: 0},
			2024: {Income: 108000, TaxPaid: 18200, Refund: 320},
			2025: {Income: 115000, TaxPaid: 19500, Refund: 0},
		},
		State: map[int]TaxSummary{
			2022: {Income: 95000, TaxPaid: 5700, Refund: 180},
			2023: {Income: 102000, TaxPaid: 6630, Refund: 0},
			2024: {Income: 108000, TaxPaid: 7020, Refund: 95},
			2025: {Income: 115000, TaxPaid: 7475, Refund: 0},
		},
		Stocks: []string{
			"AAPL", "GOOGL", "MSFT", "AMZN", "TSLA", "NVDA", "META",
			"NFLX", "AMD", "INTC", "JPM", "BAC", "V", "MA", "DIS",
			"PYPL", "ADBE", "SMCI", "MSTR",
		},
		ETFs: []string{
			"SPY", "QQQ", "VTI", "VOO", "IVV", "VEA", "VWO", "AGG", "BND", "TLT",
		},
		Bonds: []string{
			"US Treasury 10Y",
			"US Treasury 5Y",
			"Corporate Bond AAA",
			"Municipal Bond CA",
			"TIPS 2030",
		},
	}
}
