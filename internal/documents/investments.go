package documents

import (
	"fmt"
	"math"
	"math/rand"
	"path/filepath"
	"sort"
	"time"

	"github.com/runnerr0/patina/internal/config"
	"github.com/runnerr0/patina/internal/format"
	"github.com/runnerr0/patina/internal/layout"
	"github.com/runnerr0/patina/internal/randutil"
	"github.com/runnerr0/patina/internal/render"
)

// Trading ranges per instrument. Symbols outside these tables fall back
// to a broad default so configured portfolios can add tickers freely.
var (
	stockPriceRanges = map[string][2]float64{
		"AAPL": {150, 195}, "GOOGL": {90, 145}, "MSFT": {250, 380},
		"AMZN": {95, 175}, "TSLA": {150, 410}, "NVDA": {200, 495},
		"META": {120, 350}, "NFLX": {300, 600}, "AMD": {75, 165},
		"INTC": {25, 50}, "JPM": {120, 165}, "BAC": {25, 40},
		"V": {200, 275}, "MA": {320, 450}, "DIS": {80, 180},
	}
	etfPriceRanges = map[string][2]float64{
		"SPY": {360, 470}, "QQQ": {300, 420}, "VTI": {190, 250},
		"VOO": {350, 450}, "IVV": {360, 470}, "VEA": {40, 52},
		"VWO": {38, 50}, "AGG": {95, 108}, "BND": {70, 82},
		"TLT": {90, 105},
	}
	bondPriceRanges = map[string][2]float64{
		"US Treasury 10Y": {95, 102}, "US Treasury 5Y": {97, 101},
		"Corporate Bond AAA": {98, 103}, "Municipal Bond CA": {99, 104},
		"TIPS 2030": {96, 101},
	}

	defaultStockRange = [2]float64{50, 200}
	defaultETFRange   = [2]float64{100, 300}
	defaultBondRange  = [2]float64{95, 105}
)

var (
	stockShareLots = []int{5, 10, 15, 20, 25, 50, 100}
	etfShareLots   = []int{10, 20, 30, 50, 100}
	bondFaceValues = []int{1000, 5000, 10000}
	bondUnitLots   = []int{1, 5, 10}
)

type securityTxn struct {
	date   time.Time
	kind   string
	symbol string
	shares int
	price  float64
	total  float64
}

type bondTxn struct {
	date  time.Time
	kind  string
	name  string
	face  int
	units int
	price float64
	total float64
}

func priceIn(rng *rand.Rand, ranges map[string][2]float64, key string, fallback [2]float64) float64 {
	r, ok := ranges[key]
	if !ok {
		r = fallback
	}
	price := r[0] + rng.Float64()*(r[1]-r[0])
	return math.Round(price*100) / 100
}

func tradeDate(rng *rand.Rand, year int) time.Time {
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)
	return randutil.TimeBetween(rng, start, end)
}

// sample picks n distinct entries from list in shuffled order.
func sample(rng *rand.Rand, list []string, n int) []string {
	if n > len(list) {
		n = len(list)
	}
	picked := make([]string, 0, n)
	for _, i := range rng.Perm(len(list))[:n] {
		picked = append(picked, list[i])
	}
	return picked
}

func stockTrade(rng *rand.Rand, symbol string, year int, kind string) securityTxn {
	price := priceIn(rng, stockPriceRanges, symbol, defaultStockRange)
	shares := randutil.Pick(rng, stockShareLots)
	return securityTxn{
		date:   tradeDate(rng, year),
		kind:   kind,
		symbol: symbol,
		shares: shares,
		price:  price,
		total:  math.Round(price*float64(shares)*100) / 100,
	}
}

func etfTrade(rng *rand.Rand, symbol string, year int) securityTxn {
	price := priceIn(rng, etfPriceRanges, symbol, defaultETFRange)
	shares := randutil.Pick(rng, etfShareLots)
	return securityTxn{
		date:   tradeDate(rng, year),
		kind:   "BUY",
		symbol: symbol,
		shares: shares,
		price:  price,
		total:  math.Round(price*float64(shares)*100) / 100,
	}
}

func bondTrade(rng *rand.Rand, name string, year int) bondTxn {
	price := priceIn(rng, bondPriceRanges, name, defaultBondRange)
	face := randutil.Pick(rng, bondFaceValues)
	units := randutil.Pick(rng, bondUnitLots)
	return bondTxn{
		date:  tradeDate(rng, year),
		kind:  "BUY",
		name:  name,
		face:  face,
		units: units,
		price: price,
		total: math.Round((price/100)*float64(face)*float64(units)*100) / 100,
	}
}

// GenerateInvestmentDocuments writes one brokerage statement workbook
// per configured tax year under Desktop/Investments and returns the
// written paths.
func GenerateInvestmentDocuments(cfg *config.Config, tree layout.Tree, rng *rand.Rand) ([]string, error) {
	dir := filepath.Join(tree.Desktop(), "Investments")

	var written []string
	for _, year := range cfg.Finance.TaxYears {
		path := filepath.Join(dir, fmt.Sprintf("Investment_Statement_%d.xlsx", year))
		sheets := annualStatementSheets(cfg, rng, year)
		if err := render.WriteWorkbook(path, sheets); err != nil {
			return nil, err
		}
		written = append(written, path)
	}
	return written, nil
}

// annualStatementSheets builds the workbook for one year: summary,
// per-class transaction ledgers, year-end holdings, and tax figures.
func annualStatementSheets(cfg *config.Config, rng *rand.Rand, year int) []render.Sheet {
	stocks := sample(rng, cfg.Finance.Stocks, randutil.Between(rng, 5, 10))
	etfs := sample(rng, cfg.Finance.ETFs, randutil.Between(rng, 3, 6))
	bonds := sample(rng, cfg.Finance.Bonds, randutil.Between(rng, 2, 4))

	var stockTxns, etfTxns []securityTxn
	var bondTxns []bondTxn

	for _, s := range stocks {
		stockTxns = append(stockTxns, stockTrade(rng, s, year, "BUY"))
		if rng.Float64() > 0.6 {
			stockTxns = append(stockTxns, stockTrade(rng, s, year, "SELL"))
		}
	}
	for _, e := range etfs {
		etfTxns = append(etfTxns, etfTrade(rng, e, year))
	}
	for _, bnd := range bonds {
		bondTxns = append(bondTxns, bondTrade(rng, bnd, year))
	}

	sort.Slice(stockTxns, func(i, j int) bool { return stockTxns[i].date.Before(stockTxns[j].date) })
	sort.Slice(etfTxns, func(i, j int) bool { return etfTxns[i].date.Before(etfTxns[j].date) })
	sort.Slice(bondTxns, func(i, j int) bool { return bondTxns[i].date.Before(bondTxns[j].date) })

	var invested, proceeds, stockBuys, stockSells, etfTotal, bondTotal float64
	for _, t := range stockTxns {
		if t.kind == "BUY" {
			invested += t.total
			stockBuys += t.total
		} else {
			proceeds += t.total
			stockSells += t.total
		}
	}
	for _, t := range etfTxns {
		invested += t.total
		etfTotal += t.total
	}
	for _, t := range bondTxns {
		invested += t.total
		bondTotal += t.total
	}

	gain := float64(randutil.Between(rng, 5000, 25000))
	endingBalance := invested - proceeds + gain

	summary := render.Sheet{
		Name: "Summary",
		Rows: [][]interface{}{
			{"ANNUAL INVESTMENT STATEMENT"},
			{"Year", year},
			{},
			{"Account Holder", cfg.Identity.Name},
			{"Account Number", "****-****-5827"},
			{"Account Type", "Individual Brokerage Account"},
			{"Statement Period", fmt.Sprintf("January 1, %d - December 31, %d", year, year)},
			{},
			{"Brokerage Firm", "Fidelity Investments"},
			{"Address", "245 Summer Street, Boston, MA 02210"},
			{"Phone", "1-800-343-3548"},
			{},
			{"Beginning Balance (Jan 1)", format.Currency(gain)},
			{"Deposits & Contributions", format.Currency(invested)},
			{"Withdrawals & Distributions", format.Currency(proceeds)},
			{"Net Investment Gain/Loss", format.Currency(float64(randutil.Between(rng, 2000, 15000)))},
			{"Ending Balance (Dec 31)", format.Currency(endingBalance)},
		},
	}

	stockSheet := render.Sheet{Name: "Stock Transactions"}
	stockSheet.Rows = append(stockSheet.Rows,
		[]interface{}{"Date", "Type", "Symbol", "Shares", "Price", "Commission", "Total"})
	for _, t := range stockTxns {
		stockSheet.Rows = append(stockSheet.Rows,
			[]interface{}{t.date.Format("01/02/2006"), t.kind, t.symbol, t.shares, t.price, 0.0, t.total})
	}
	stockSheet.Rows = append(stockSheet.Rows,
		[]interface{}{},
		[]interface{}{"Total Stock Purchases", format.Currency(stockBuys)},
		[]interface{}{"Total Stock Sales", format.Currency(stockSells)})

	etfSheet := render.Sheet{Name: "ETF Transactions"}
	etfSheet.Rows = append(etfSheet.Rows,
		[]interface{}{"Date", "Type", "Symbol", "Shares", "Price", "Commission", "Total"})
	for _, t := range etfTxns {
		etfSheet.Rows = append(etfSheet.Rows,
			[]interface{}{t.date.Format("01/02/2006"), t.kind, t.symbol, t.shares, t.price, 0.0, t.total})
	}
	etfSheet.Rows = append(etfSheet.Rows,
		[]interface{}{},
		[]interface{}{"Total ETF Purchases", format.Currency(etfTotal)})

	bondSheet := render.Sheet{Name: "Bond Transactions"}
	bondSheet.Rows = append(bondSheet.Rows,
		[]interface{}{"Date", "Type", "Bond Name", "Face Value", "Units", "Price", "Total"})
	for _, t := range bondTxns {
		bondSheet.Rows = append(bondSheet.Rows,
			[]interface{}{t.date.Format("01/02/2006"), t.kind, t.name, t.face, t.units, t.price, t.total})
	}
	bondSheet.Rows = append(bondSheet.Rows,
		[]interface{}{},
		[]interface{}{"Total Bond Purchases", format.Currency(bondTotal)})

	holdings := render.Sheet{Name: "Holdings"}
	holdings.Rows = append(holdings.Rows,
		[]interface{}{fmt.Sprintf("CURRENT HOLDINGS (as of December 31, %d)", year)},
		[]interface{}{},
		[]interface{}{"STOCKS"})
	for _, s := range stocks {
		owned := 0
		for _, t := range stockTxns {
			if t.symbol != s {
				continue
			}
			if t.kind == "BUY" {
				owned += t.shares
			} else {
				owned -= t.shares
			}
		}
		if owned <= 0 {
			continue
		}
		price := priceIn(rng, stockPriceRanges, s, defaultStockRange)
		holdings.Rows = append(holdings.Rows,
			[]interface{}{s, owned, price, format.Currency(float64(owned) * price)})
	}
	holdings.Rows = append(holdings.Rows, []interface{}{}, []interface{}{"ETFs"})
	for _, e := range etfs {
		owned := 0
		for _, t := range etfTxns {
			if t.symbol == e {
				owned += t.shares
			}
		}
		price := priceIn(rng, etfPriceRanges, e, defaultETFRange)
		holdings.Rows = append(holdings.Rows,
			[]interface{}{e, owned, price, format.Currency(float64(owned) * price)})
	}
	holdings.Rows = append(holdings.Rows, []interface{}{}, []interface{}{"BONDS"})
	for _, name := range bonds {
		var total float64
		for _, t := range bondTxns {
			if t.name == name {
				total += t.total
			}
		}
		holdings.Rows = append(holdings.Rows, []interface{}{name, format.Currency(total)})
	}

	taxInfo := render.Sheet{
		Name: "Tax Information",
		Rows: [][]interface{}{
			{"YEAR-END TAX INFORMATION"},
			{},
			{"Total Dividends Received", format.Currency(float64(randutil.Between(rng, 500, 2500)))},
			{"Total Interest Received", format.Currency(float64(randutil.Between(rng, 200, 800)))},
			{"Short-term Capital Gains", format.Currency(float64(randutil.Between(rng, 0, 3000)))},
			{"Long-term Capital Gains", format.Currency(float64(randutil.Between(rng, 1000, 8000)))},
			{},
			{fmt.Sprintf("Form 1099-DIV and 1099-INT will be mailed by January 31, %d", year+1)},
		},
	}

	return []render.Sheet{summary, stockSheet, etfSheet, bondSheet, holdings, taxInfo}
}
