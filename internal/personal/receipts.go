package personal

import (
	"fmt"
	"math"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/runnerr0/patina/internal/config"
	"github.com/runnerr0/patina/internal/format"
	"github.com/runnerr0/patina/internal/randutil"
	"github.com/runnerr0/patina/internal/render"
)

const (
	receiptCount = 8
	salesTaxRate = 0.0875
)

type store struct {
	name     string
	category string
}

var receiptStores = []store{
	{"Whole Foods Market", "Groceries"},
	{"Best Buy", "Electronics"},
	{"Target", "General Merchandise"},
	{"CVS Pharmacy", "Pharmacy/Health"},
	{"Home Depot", "Home Improvement"},
	{"Amazon.com", "Online Shopping"},
	{"Costco", "Wholesale"},
}

type lineItem struct {
	name  string
	price float64
}

var receiptItems = []lineItem{
	{"Organic Bananas", 3.99},
	{"Greek Yogurt", 5.49},
	{"Whole Wheat Bread", 4.29},
	{"Chicken Breast", 12.99},
	{"Mixed Greens", 4.99},
	{"Coffee Beans", 14.99},
	{"Almond Milk", 3.79},
	{"Pasta", 2.99},
	{"Olive Oil", 9.99},
	{"Tomatoes", 4.50},
}

func generateReceipts(id config.Identity, rng *rand.Rand, now time.Time, receiptsDir string) ([]string, error) {
	var written []string
	for i := 1; i <= receiptCount; i++ {
		date := randutil.DaysAgo(rng, now, 1, 90)
		path := filepath.Join(receiptsDir, fmt.Sprintf("Receipt_%s_%d.pdf", date.Format("20060102"), i))
		err := render.WritePDF(path, "Purchase Receipt", []render.Section{
			{Heading: "Receipt", Body: receiptText(id, rng, date)},
		})
		if err != nil {
			return nil, err
		}
		written = append(written, path)
	}
	return written, nil
}

func receiptText(id config.Identity, rng *rand.Rand, date time.Time) string {
	s := randutil.Pick(rng, receiptStores)

	count := randutil.Between(rng, 3, 7)
	picked := make([]lineItem, 0, count)
	for _, i := range rng.Perm(len(receiptItems))[:count] {
		picked = append(picked, receiptItems[i])
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", s.name, s.category)
	fmt.Fprintf(&b, "%s\n%s, %s %s\n", id.Address, id.City, id.State, id.Zip)
	fmt.Fprintf(&b, "Phone: %s\n\n%s\n\n", id.Phone, heavyRule)

	fmt.Fprintf(&b, "Transaction #%d\n", randutil.Between(rng, 100000, 999999))
	fmt.Fprintf(&b, "Date: %s\n", date.Format("01/02/2006 03:04 PM"))
	fmt.Fprintf(&b, "Cashier: #%d\n\n%s\n\n", randutil.Between(rng, 100, 999), heavyRule)

	b.WriteString("ITEMS PURCHASED:\n\n")
	subtotal := 0.0
	for _, item := range picked {
		fmt.Fprintf(&b, "%-40s %10s\n", item.name, format.Currency(item.price))
		subtotal += item.price
	}
	tax := math.Round(subtotal*salesTaxRate*100) / 100
	total := subtotal + tax

	b.WriteString("\n" + strings.Repeat("─", 70) + "\n")
	fmt.Fprintf(&b, "%-40s %10s\n", "SUBTOTAL", format.Currency(subtotal))
	fmt.Fprintf(&b, "%-40s %10s\n", "TAX (8.75%)", format.Currency(tax))
	b.WriteString(strings.Repeat("─", 70) + "\n")
	fmt.Fprintf(&b, "%-40s %10s\n\n", "TOTAL", format.Currency(total))

	b.WriteString("PAYMENT METHOD: Visa ending in 5847\n")
	fmt.Fprintf(&b, "APPROVAL CODE: %d\n\n", randutil.Between(rng, 100000, 999999))

	b.WriteString("Thank you for shopping with us!\n")
	fmt.Fprintf(&b, "Please visit www.%s.com for deals\n", strings.ToLower(strings.ReplaceAll(s.name, " ", "")))
	fmt.Fprintf(&b, "\n%s\n", heavyRule)

	return b.String()
}
