package documents

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/runnerr0/patina/internal/config"
	"github.com/runnerr0/patina/internal/format"
	"github.com/runnerr0/patina/internal/layout"
	"github.com/runnerr0/patina/internal/render"
)

var heavyRule = strings.Repeat("═", 75)

// Standard deductions step with the filing year.
func federalStandardDeduction(year int) int {
	switch {
	case year <= 2022:
		return 12950
	case year <= 2023:
		return 13850
	default:
		return 14600
	}
}

func stateStandardDeduction(year int) int {
	switch {
	case year <= 2022:
		return 5202
	case year <= 2023:
		return 5363
	default:
		return 5552
	}
}

// GenerateTaxDocuments writes the per-year tax return set (federal 1040,
// state 540, W-2) under Desktop/Tax Documents and returns the written
// paths. Amounts come straight from the configured tax summaries.
func GenerateTaxDocuments(cfg *config.Config, tree layout.Tree) ([]string, error) {
	taxDir := filepath.Join(tree.Desktop(), "Tax Documents")

	var written []string
	for _, year := range cfg.Finance.TaxYears {
		federal, ok := cfg.Finance.Federal[year]
		if !ok {
			return nil, fmt.Errorf("no federal tax data for year %d", year)
		}
		state, ok := cfg.Finance.State[year]
		if !ok {
			return nil, fmt.Errorf("no state tax data for year %d", year)
		}

		yearDir := filepath.Join(taxDir, strconv.Itoa(year))

		federalPath := filepath.Join(yearDir, fmt.Sprintf("Form_1040_Federal_%d.pdf", year))
		err := render.WritePDF(federalPath, fmt.Sprintf("Form 1040 Federal %d", year), []render.Section{
			{Heading: "Return", Body: federalReturnText(cfg.Identity, year, federal)},
		})
		if err != nil {
			return nil, err
		}
		written = append(written, federalPath)

		statePath := filepath.Join(yearDir, fmt.Sprintf("Form_540_California_%d.pdf", year))
		err = render.WritePDF(statePath, fmt.Sprintf("Form 540 California %d", year), []render.Section{
			{Heading: "Return", Body: stateReturnText(cfg.Identity, year, state)},
		})
		if err != nil {
			return nil, err
		}
		written = append(written, statePath)

		w2Path := filepath.Join(yearDir, fmt.Sprintf("W2_Form_%d.pdf", year))
		err = render.WritePDF(w2Path, fmt.Sprintf("W-2 %d", year), []render.Section{
			{Heading: "W-2", Body: w2Text(cfg.Identity, year, federal, state)},
		})
		if err != nil {
			return nil, err
		}
		written = append(written, w2Path)
	}
	return written, nil
}

// federalReturnText lays out a Form 1040 in the fixed-column style of a
// transcribed return.
func federalReturnText(id config.Identity, year int, tax config.TaxSummary) string {
	deduction := federalStandardDeduction(year)
	taxable := tax.Income - deduction
	totalTax := tax.TaxPaid + tax.Refund

	var b strings.Builder
	fmt.Fprintf(&b, "FORM 1040 - U.S. INDIVIDUAL INCOME TAX RETURN\nTax Year: %d\n\n%s\n\n", year, heavyRule)

	fmt.Fprintf(&b, "TAXPAYER INFORMATION\n\n")
	fmt.Fprintf(&b, "Name: %s\n", id.Name)
	fmt.Fprintf(&b, "Social Security Number: %s\n", id.SSN)
	fmt.Fprintf(&b, "Address: %s\n", id.Address)
	fmt.Fprintf(&b, "City, State, ZIP: %s, %s %s\n\n", id.City, id.State, id.Zip)
	fmt.Fprintf(&b, "Filing Status: ☒ Single  ☐ Married Filing Jointly  ☐ Head of Household\n\n%s\n\n", heavyRule)

	fmt.Fprintf(&b, "INCOME\n\n")
	fmt.Fprintf(&b, "1.  Wages, salaries, tips (W-2)                          %s\n", format.Currency(float64(tax.Income)))
	fmt.Fprintf(&b, "2.  Interest income                                      %s\n", format.Currency(325))
	fmt.Fprintf(&b, "3.  Dividend income                                      %s\n", format.Currency(892))
	fmt.Fprintf(&b, "4.  State tax refund                                     %s\n", format.Currency(0))
	fmt.Fprintf(&b, "5.  Business income                                      %s\n\n", format.Currency(0))
	fmt.Fprintf(&b, "    TOTAL INCOME (Lines 1-5)                            %s\n\n%s\n\n", format.Currency(float64(tax.Income+1217)), heavyRule)

	fmt.Fprintf(&b, "ADJUSTED GROSS INCOME\n\n")
	fmt.Fprintf(&b, "6.  Educator expenses                                    %s\n", format.Currency(0))
	fmt.Fprintf(&b, "7.  Student loan interest                                %s\n", format.Currency(0))
	fmt.Fprintf(&b, "8.  IRA contributions                                    %s\n\n", format.Currency(6500))
	fmt.Fprintf(&b, "9.  ADJUSTED GROSS INCOME (Total Income - Lines 6-8)    %s\n\n%s\n\n", format.Currency(float64(tax.Income+1217-6500)), heavyRule)

	fmt.Fprintf(&b, "DEDUCTIONS\n\n")
	fmt.Fprintf(&b, "10. Standard Deduction                                   %s\n", format.Currency(float64(deduction)))
	fmt.Fprintf(&b, "    OR Itemized Deductions                               %s\n\n", format.Currency(0))
	fmt.Fprintf(&b, "11. TAXABLE INCOME (Line 9 - Line 10)                   %s\n\n%s\n\n", format.Currency(float64(taxable)), heavyRule)

	fmt.Fprintf(&b, "TAX COMPUTATION\n\n")
	fmt.Fprintf(&b, "12. Tax from tax tables                                  %s\n", format.Currency(float64(totalTax)))
	fmt.Fprintf(&b, "13. Child tax credit                                     %s\n", format.Currency(0))
	fmt.Fprintf(&b, "14. Other credits                                        %s\n\n", format.Currency(0))
	fmt.Fprintf(&b, "15. TOTAL TAX (Line 12 - Lines 13-14)                   %s\n\n%s\n\n", format.Currency(float64(totalTax)), heavyRule)

	fmt.Fprintf(&b, "PAYMENTS\n\n")
	fmt.Fprintf(&b, "16. Federal income tax withheld (W-2)                    %s\n", format.Currency(float64(tax.TaxPaid)))
	fmt.Fprintf(&b, "17. Estimated tax payments                               %s\n", format.Currency(0))
	fmt.Fprintf(&b, "18. Earned income credit                                 %s\n\n", format.Currency(0))
	fmt.Fprintf(&b, "19. TOTAL PAYMENTS (Lines 16-18)                        %s\n\n%s\n\n", format.Currency(float64(tax.TaxPaid)), heavyRule)

	fmt.Fprintf(&b, "REFUND OR AMOUNT OWED\n\n")
	fmt.Fprintf(&b, "20. Total Tax (Line 15)                                  %s\n", format.Currency(float64(totalTax)))
	fmt.Fprintf(&b, "21. Total Payments (Line 19)                             %s\n\n", format.Currency(float64(tax.TaxPaid)))

	if tax.Refund > 0 {
		fmt.Fprintf(&b, "22. REFUND (Line 21 - Line 20)                          %s\n\n", format.Currency(float64(tax.Refund)))
		b.WriteString("    ☒ Direct deposit to checking account\n")
		b.WriteString("    Routing Number: 121000248\n")
		b.WriteString("    Account Number: ****5678\n")
	} else {
		fmt.Fprintf(&b, "22. AMOUNT YOU OWE (Line 20 - Line 21)                  %s\n", format.Currency(float64(-tax.Refund)))
	}

	fmt.Fprintf(&b, "\n%s\n\nSIGNATURE\n\n", heavyRule)
	b.WriteString("Under penalties of perjury, I declare that I have examined this return and\n")
	b.WriteString("accompanying schedules and statements, and to the best of my knowledge and\n")
	b.WriteString("belief, they are true, correct, and complete.\n\n")
	fmt.Fprintf(&b, "Taxpayer's signature: %s                    Date: 04/12/%d\n\n%s\n\n", id.Name, year+1, heavyRule)

	fmt.Fprintf(&b, "For IRS Use Only\n\n")
	fmt.Fprintf(&b, "Return processed: 04/28/%d\n", year+1)
	if tax.Refund > 0 {
		fmt.Fprintf(&b, "Refund issued: 05/10/%d\n", year+1)
	} else {
		fmt.Fprintf(&b, "Payment received: 04/15/%d\n", year+1)
	}
	fmt.Fprintf(&b, "\n%s\n", heavyRule)

	return b.String()
}

// stateReturnText lays out a California Form 540.
func stateReturnText(id config.Identity, year int, tax config.TaxSummary) string {
	deduction := stateStandardDeduction(year)
	taxable := tax.Income - deduction
	totalTax := tax.TaxPaid + tax.Refund

	var b strings.Builder
	fmt.Fprintf(&b, "FORM 540 - CALIFORNIA RESIDENT INCOME TAX RETURN\nTax Year: %d\n\n%s\n\n", year, heavyRule)

	fmt.Fprintf(&b, "TAXPAYER INFORMATION\n\n")
	fmt.Fprintf(&b, "Name: %s\n", id.Name)
	fmt.Fprintf(&b, "Social Security Number: %s\n", id.SSN)
	fmt.Fprintf(&b, "Address: %s\n", id.Address)
	fmt.Fprintf(&b, "City: %s      State: CA      ZIP: %s\n\n", id.City, id.Zip)
	fmt.Fprintf(&b, "Filing Status: ☒ Single  ☐ Married/RDP Filing Jointly\n\n%s\n\n", heavyRule)

	fmt.Fprintf(&b, "CALIFORNIA INCOME\n\n")
	fmt.Fprintf(&b, "1.  Federal Adjusted Gross Income                        %s\n", format.Currency(float64(tax.Income)))
	fmt.Fprintf(&b, "2.  CA income adjustments                                %s\n", format.Currency(0))
	fmt.Fprintf(&b, "3.  CA additions to income                               %s\n", format.Currency(0))
	fmt.Fprintf(&b, "4.  CA subtractions from income                          %s\n\n", format.Currency(0))
	fmt.Fprintf(&b, "5.  CA ADJUSTED GROSS INCOME                            %s\n\n%s\n\n", format.Currency(float64(tax.Income)), heavyRule)

	fmt.Fprintf(&b, "DEDUCTIONS\n\n")
	fmt.Fprintf(&b, "6.  CA Standard Deduction                                %s\n", format.Currency(float64(deduction)))
	fmt.Fprintf(&b, "    OR CA Itemized Deductions                            %s\n\n", format.Currency(0))
	fmt.Fprintf(&b, "7.  Exemption credits                                    %s\n\n", format.Currency(118))
	fmt.Fprintf(&b, "8.  CA TAXABLE INCOME (Line 5 - Line 6)                 %s\n\n%s\n\n", format.Currency(float64(taxable)), heavyRule)

	fmt.Fprintf(&b, "TAX COMPUTATION\n\n")
	fmt.Fprintf(&b, "9.  Tax from tax table                                   %s\n", format.Currency(float64(totalTax)))
	fmt.Fprintf(&b, "10. Other state tax credit (540)                         %s\n", format.Currency(0))
	fmt.Fprintf(&b, "11. Dependent parent credit                              %s\n", format.Currency(0))
	fmt.Fprintf(&b, "12. Renters credit                                       %s\n\n", format.Currency(60))
	fmt.Fprintf(&b, "13. TOTAL TAX (Line 9 - Lines 10-12)                    %s\n\n%s\n\n", format.Currency(float64(totalTax-60)), heavyRule)

	fmt.Fprintf(&b, "PAYMENTS\n\n")
	fmt.Fprintf(&b, "14. CA income tax withheld                               %s\n", format.Currency(float64(tax.TaxPaid)))
	fmt.Fprintf(&b, "15. CA estimated tax payments                            %s\n", format.Currency(0))
	fmt.Fprintf(&b, "16. Other payments                                       %s\n\n", format.Currency(0))
	fmt.Fprintf(&b, "17. TOTAL PAYMENTS                                       %s\n\n%s\n\n", format.Currency(float64(tax.TaxPaid)), heavyRule)

	fmt.Fprintf(&b, "REFUND OR AMOUNT OWED\n\n")
	if tax.Refund > 0 {
		fmt.Fprintf(&b, "18. REFUND (Payments - Total Tax)                       %s\n\n", format.Currency(float64(tax.Refund)))
		b.WriteString("    Direct deposit information:\n")
		b.WriteString("    ☒ Checking  ☐ Savings\n")
		b.WriteString("    Routing: 121000248  Account: ****5678\n")
	} else {
		fmt.Fprintf(&b, "18. AMOUNT YOU OWE                                       %s\n", format.Currency(float64(-tax.Refund)))
	}

	fmt.Fprintf(&b, "\n%s\n\nSIGNATURE AND DECLARATION\n\n", heavyRule)
	b.WriteString("I declare under penalty of perjury that I have examined this return,\n")
	b.WriteString("including accompanying schedules and statements, and to the best of my\n")
	b.WriteString("knowledge and belief, it is true, correct, and complete.\n\n")
	fmt.Fprintf(&b, "Your signature: %s                         Date: 04/12/%d\n\n%s\n\n", id.Name, year+1, heavyRule)

	fmt.Fprintf(&b, "FRANCHISE TAX BOARD USE ONLY\n\n")
	fmt.Fprintf(&b, "Processed: 05/02/%d\n", year+1)
	if tax.Refund > 0 {
		fmt.Fprintf(&b, "Refund issued: 05/15/%d\n", year+1)
	} else {
		fmt.Fprintf(&b, "Payment due: 04/15/%d\n", year+1)
	}
	fmt.Fprintf(&b, "\nCalifornia Franchise Tax Board\nSacramento, CA 95827\n\n%s\n", heavyRule)

	return b.String()
}

// w2Text lays out the W-2 wage statement for one year. Social security
// and medicare withholding derive from the wage at the statutory rates.
func w2Text(id config.Identity, year int, federal, state config.TaxSummary) string {
	ssTax := float64(federal.Income) * 0.062
	medicareTax := float64(federal.Income) * 0.0145

	var b strings.Builder
	fmt.Fprintf(&b, "W-2 WAGE AND TAX STATEMENT\nTax Year: %d\n\n%s\n\n", year, heavyRule)

	fmt.Fprintf(&b, "EMPLOYER INFORMATION\n\n")
	fmt.Fprintf(&b, "Employer: %s Inc.\n", id.Company)
	b.WriteString("EIN: 94-1234567\n")
	b.WriteString("Address: 450 Market Street, Suite 1200\n")
	fmt.Fprintf(&b, "City, State, ZIP: San Francisco, CA 94111\n\n%s\n\n", heavyRule)

	fmt.Fprintf(&b, "EMPLOYEE INFORMATION\n\n")
	fmt.Fprintf(&b, "Employee: %s\n", id.Name)
	fmt.Fprintf(&b, "SSN: %s\n", id.SSN)
	fmt.Fprintf(&b, "Address: %s\n", id.Address)
	fmt.Fprintf(&b, "City, State, ZIP: %s, %s %s\n\n%s\n\n", id.City, id.State, id.Zip, heavyRule)

	fmt.Fprintf(&b, "WAGES AND WITHHOLDING\n\n")
	fmt.Fprintf(&b, "Box 1  - Wages, tips, other compensation              %s\n", format.Currency(float64(federal.Income)))
	fmt.Fprintf(&b, "Box 2  - Federal income tax withheld                  %s\n", format.Currency(float64(federal.TaxPaid)))
	fmt.Fprintf(&b, "Box 3  - Social security wages                        %s\n", format.Currency(float64(federal.Income)))
	fmt.Fprintf(&b, "Box 4  - Social security tax withheld                 %s\n", format.Currency(ssTax))
	fmt.Fprintf(&b, "Box 5  - Medicare wages and tips                      %s\n", format.Currency(float64(federal.Income)))
	fmt.Fprintf(&b, "Box 6  - Medicare tax withheld                        %s\n\n", format.Currency(medicareTax))
	fmt.Fprintf(&b, "Box 12a - DD: %s  (Cost of employer-sponsored health coverage)\n\n", format.Currency(8500))

	b.WriteString("Box 15 - State: CA\n")
	fmt.Fprintf(&b, "Box 16 - State wages, tips, etc.                      %s\n", format.Currency(float64(federal.Income)))
	fmt.Fprintf(&b, "Box 17 - State income tax                             %s\n", format.Currency(float64(state.TaxPaid)))
	fmt.Fprintf(&b, "Box 18 - Local wages, tips, etc.                      %s\n", format.Currency(0))
	fmt.Fprintf(&b, "Box 19 - Local income tax                             %s\n\n%s\n\n", format.Currency(0), heavyRule)

	fmt.Fprintf(&b, "This is a copy of your W-2 wage statement for tax year %d.\n", year)
	b.WriteString("Please retain for your records and use when filing your tax return.\n\n")
	fmt.Fprintf(&b, "Issued: January 28, %d\n\n%s\n", year+1, heavyRule)

	return b.String()
}
