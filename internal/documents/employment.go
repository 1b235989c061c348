package documents

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/runnerr0/patina/internal/config"
	"github.com/runnerr0/patina/internal/format"
	"github.com/runnerr0/patina/internal/layout"
	"github.com/runnerr0/patina/internal/randutil"
	"github.com/runnerr0/patina/internal/render"
)

const reviewedYears = 3

var trainingCourses = []string{
	"AWS Solutions Architect Professional",
	"Kubernetes Administration",
	"Advanced Python Programming",
	"Microservices Architecture Patterns",
	"Security Best Practices for Developers",
}

var courseDurations = []int{8, 16, 24, 40}

// GenerateEmploymentDocuments writes the employment paper trail under
// Documents: the signed contract, one performance review per completed
// year, training certificates, and the health insurance policy.
func GenerateEmploymentDocuments(cfg *config.Config, tree layout.Tree, rng *rand.Rand, now time.Time) ([]string, error) {
	docs := tree.Documents()
	var written []string

	contractPath := filepath.Join(docs, "Contracts", "Employment_Contract_2020.txt")
	if err := layout.WriteString(contractPath, contractText(cfg.Identity)); err != nil {
		return nil, err
	}
	written = append(written, contractPath)

	reviewDir := filepath.Join(docs, "Work", "Performance_Reviews")
	firstYear := now.Year() - reviewedYears
	for year := firstYear; year < now.Year(); year++ {
		path := filepath.Join(reviewDir, fmt.Sprintf("Performance_Review_%d.txt", year))
		if err := layout.WriteString(path, performanceReviewText(cfg.Identity, rng, year, firstYear)); err != nil {
			return nil, err
		}
		written = append(written, path)
	}

	trainingDir := filepath.Join(docs, "Work", "Training_Materials")
	for i := 1; i <= 3; i++ {
		path := filepath.Join(trainingDir, fmt.Sprintf("Training_Certificate_%d.txt", i))
		if err := layout.WriteString(path, trainingCertificateText(cfg.Identity, rng, now)); err != nil {
			return nil, err
		}
		written = append(written, path)
	}

	policyPath := filepath.Join(docs, "Personal", "Insurance", fmt.Sprintf("Health_Insurance_Policy_%d.txt", now.Year()))
	if err := layout.WriteString(policyPath, insurancePolicyText(cfg.Identity, rng, now.Year())); err != nil {
		return nil, err
	}
	written = append(written, policyPath)

	offerPath := filepath.Join(docs, "Contracts", "Offer_Letter_2020.pdf")
	err := render.WritePDF(offerPath, "Offer of Employment", []render.Section{
		{Heading: "Offer", Body: offerLetterText(cfg.Identity)},
	})
	if err != nil {
		return nil, err
	}
	written = append(written, offerPath)

	return written, nil
}

func contractText(id config.Identity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "EMPLOYMENT CONTRACT\n\n%s\n\n", heavyRule)

	b.WriteString("THIS AGREEMENT is entered into as of January 15, 2020\n\n")
	b.WriteString("BETWEEN:\n\n")
	fmt.Fprintf(&b, "%s Inc.\n", id.Company)
	b.WriteString("450 Market Street, Suite 1200\n")
	b.WriteString("San Francisco, CA 94111\n")
	b.WriteString("(\"Employer\")\n\n")
	b.WriteString("AND:\n\n")
	fmt.Fprintf(&b, "%s\n", id.Name)
	fmt.Fprintf(&b, "%s\n", id.Address)
	fmt.Fprintf(&b, "%s, %s %s\n", id.City, id.State, id.Zip)
	fmt.Fprintf(&b, "(\"Employee\")\n\n%s\n\n", heavyRule)

	b.WriteString("1. POSITION AND DUTIES\n\n")
	b.WriteString("The Employee is employed as Senior Software Engineer and will perform duties\n")
	b.WriteString("including but not limited to:\n\n")
	b.WriteString("• Design and develop software applications\n")
	b.WriteString("• Collaborate with cross-functional teams\n")
	b.WriteString("• Participate in code reviews and technical discussions\n")
	b.WriteString("• Mentor junior team members\n")
	fmt.Fprintf(&b, "• Contribute to architectural decisions\n\n%s\n\n", heavyRule)

	b.WriteString("2. COMPENSATION\n\n")
	b.WriteString("Base Salary: $115,000 per year, payable bi-weekly\n")
	b.WriteString("Performance Bonus: Up to 15% of base salary annually\n")
	fmt.Fprintf(&b, "Stock Options: 10,000 shares vesting over 4 years\n\n%s\n\n", heavyRule)

	b.WriteString("3. BENEFITS\n\n")
	b.WriteString("• Health insurance (medical, dental, vision)\n")
	b.WriteString("• 401(k) retirement plan with 4% company match\n")
	b.WriteString("• 15 days paid vacation per year\n")
	b.WriteString("• 10 days sick leave per year\n")
	fmt.Fprintf(&b, "• Professional development budget: $2,000/year\n\n%s\n\n", heavyRule)

	b.WriteString("4. WORKING HOURS\n\n")
	b.WriteString("Standard working hours: 40 hours per week\n")
	b.WriteString("Flexible schedule with core hours 10 AM - 4 PM\n")
	fmt.Fprintf(&b, "Remote work: Up to 3 days per week\n\n%s\n\n", heavyRule)

	b.WriteString("5. CONFIDENTIALITY\n\n")
	b.WriteString("Employee agrees to maintain confidentiality of all proprietary information\n")
	fmt.Fprintf(&b, "and trade secrets of the Employer during and after employment.\n\n%s\n\n", heavyRule)

	b.WriteString("6. TERMINATION\n\n")
	b.WriteString("Either party may terminate this agreement with 30 days written notice.\n")
	fmt.Fprintf(&b, "Severance: 2 weeks pay per year of service (minimum 4 weeks).\n\n%s\n\n", heavyRule)

	b.WriteString("SIGNATURES:\n\n")
	fmt.Fprintf(&b, "Employee: %s\n", id.Name)
	b.WriteString("Signature: ________________________    Date: January 15, 2020\n\n")
	b.WriteString("Employer: Sarah Johnson, VP Human Resources\n")
	fmt.Fprintf(&b, "Signature: ________________________    Date: January 15, 2020\n\n%s\n", heavyRule)

	return b.String()
}

// performanceReviewText lays out one annual review. The salary ladder
// climbs $5,000 per reviewed year from a $95,000 base.
func performanceReviewText(id config.Identity, rng *rand.Rand, year, firstYear int) string {
	currentSalary := 95000 + (year-firstYear)*5000
	newSalary := currentSalary + 5000
	bonus := randutil.Between(rng, 8000, 15000)

	var b strings.Builder
	fmt.Fprintf(&b, "ANNUAL PERFORMANCE REVIEW\n%d\n\n%s\n\n", year, heavyRule)

	b.WriteString("EMPLOYEE INFORMATION\n\n")
	fmt.Fprintf(&b, "Name: %s\n", id.Name)
	b.WriteString("Position: Senior Software Engineer\n")
	b.WriteString("Department: Engineering\n")
	fmt.Fprintf(&b, "Review Period: January 1, %d - December 31, %d\n", year, year)
	fmt.Fprintf(&b, "Review Date: January 15, %d\n", year+1)
	fmt.Fprintf(&b, "Manager: Mike Chen, Engineering Manager\n\n%s\n\n", heavyRule)

	b.WriteString("PERFORMANCE RATINGS\n")
	b.WriteString("(Scale: 1=Needs Improvement, 2=Meets Expectations, 3=Exceeds Expectations,\n")
	b.WriteString("        4=Outstanding)\n\n")
	b.WriteString("Technical Skills                              4\n")
	b.WriteString("Problem Solving                               4\n")
	b.WriteString("Communication                                 3\n")
	b.WriteString("Teamwork & Collaboration                      4\n")
	b.WriteString("Leadership & Mentorship                       3\n")
	b.WriteString("Project Management                            3\n")
	b.WriteString("Innovation                                    4\n\n")
	fmt.Fprintf(&b, "OVERALL RATING: 3.6 - EXCEEDS EXPECTATIONS\n\n%s\n\n", heavyRule)

	b.WriteString("KEY ACCOMPLISHMENTS\n\n")
	b.WriteString("1. Successfully led the microservices migration project, completing ahead\n")
	b.WriteString("   of schedule and under budget.\n\n")
	b.WriteString("2. Mentored 3 junior engineers, contributing to their professional growth\n")
	b.WriteString("   and team capabilities.\n\n")
	b.WriteString("3. Implemented performance optimizations that reduced API response time\n")
	b.WriteString("   by 40%, significantly improving user experience.\n\n")
	b.WriteString("4. Contributed to open-source projects that enhanced company's technical\n")
	b.WriteString("   reputation in the developer community.\n\n")
	b.WriteString("5. Designed and documented system architecture for new payment processing\n")
	fmt.Fprintf(&b, "   service, now used as reference by entire team.\n\n%s\n\n", heavyRule)

	b.WriteString("AREAS FOR DEVELOPMENT\n\n")
	b.WriteString("1. Continue developing project management skills through formal training\n\n")
	b.WriteString("2. Increase involvement in cross-departmental initiatives\n\n")
	fmt.Fprintf(&b, "3. Enhance technical writing and documentation practices\n\n%s\n\n", heavyRule)

	fmt.Fprintf(&b, "GOALS FOR %d\n\n", year+1)
	b.WriteString("1. Lead 2 major technical initiatives from conception to production\n\n")
	b.WriteString("2. Present at 2 technical conferences or meetups\n\n")
	b.WriteString("3. Complete AWS Solutions Architect certification\n\n")
	b.WriteString("4. Improve system observability and monitoring capabilities\n\n")
	fmt.Fprintf(&b, "5. Contribute to technical hiring and interview process\n\n%s\n\n", heavyRule)

	b.WriteString("COMPENSATION ADJUSTMENT\n\n")
	fmt.Fprintf(&b, "Current Base Salary: $%d\n", currentSalary)
	fmt.Fprintf(&b, "New Base Salary: $%d\n", newSalary)
	b.WriteString("Increase: 5.3%\n")
	fmt.Fprintf(&b, "Effective Date: January 1, %d\n\n", year+1)
	fmt.Fprintf(&b, "Performance Bonus: %s\n\n%s\n\n", format.Currency(float64(bonus)), heavyRule)

	b.WriteString("EMPLOYEE COMMENTS\n\n")
	b.WriteString("I appreciate the feedback and recognition. I'm excited about the goals we've\n")
	b.WriteString("set for next year and look forward to continuing to contribute to the team's\n")
	b.WriteString("success. I plan to focus especially on expanding my leadership capabilities\n")
	fmt.Fprintf(&b, "and sharing knowledge more effectively across the organization.\n\n%s\n\n", heavyRule)

	b.WriteString("SIGNATURES\n\n")
	fmt.Fprintf(&b, "Employee: %s\n", id.Name)
	b.WriteString("Signature: ________________________    Date: _______________\n\n")
	b.WriteString("Manager: Mike Chen\n")
	b.WriteString("Signature: ________________________    Date: _______________\n\n")
	b.WriteString("HR Representative: Sarah Johnson\n")
	fmt.Fprintf(&b, "Signature: ________________________    Date: _______________\n\n%s\n", heavyRule)

	return b.String()
}

func trainingCertificateText(id config.Identity, rng *rand.Rand, now time.Time) string {
	course := randutil.Pick(rng, trainingCourses)
	completed := randutil.DaysAgo(rng, now, 30, 365)

	var b strings.Builder
	fmt.Fprintf(&b, "CERTIFICATE OF COMPLETION\n\n%s\n\n", heavyRule)

	b.WriteString("This is to certify that\n\n")
	fmt.Fprintf(&b, "%s\n\n", id.Name)
	b.WriteString("has successfully completed the course\n\n")
	fmt.Fprintf(&b, "%s\n\n", course)
	fmt.Fprintf(&b, "Date of Completion: %s\n", completed.Format("January 02, 2006"))
	fmt.Fprintf(&b, "Duration: %d hours\n", randutil.Pick(rng, courseDurations))
	fmt.Fprintf(&b, "Provider: TechAcademy Online Learning\n\n%s\n\n", heavyRule)

	b.WriteString("COURSE OBJECTIVES MET:\n\n")
	b.WriteString("✓ Understand core concepts and principles\n")
	b.WriteString("✓ Apply knowledge to real-world scenarios\n")
	b.WriteString("✓ Demonstrate proficiency through hands-on projects\n")
	fmt.Fprintf(&b, "✓ Pass final assessment with score of %d%%\n\n%s\n\n", randutil.Between(rng, 85, 98), heavyRule)

	fmt.Fprintf(&b, "Certificate ID: CERT-%d\n", randutil.Between(rng, 100000, 999999))
	b.WriteString("Verify at: www.techacademy.com/verify\n\n")
	b.WriteString("Instructor: Dr. Robert Anderson\n")
	fmt.Fprintf(&b, "Academic Director\n\n%s\n", heavyRule)

	return b.String()
}

func insurancePolicyText(id config.Identity, rng *rand.Rand, year int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "INSURANCE POLICY DOCUMENT\nPolicy Number: POL-%d\n\n%s\n\n", randutil.Between(rng, 100000000, 999999999), heavyRule)

	b.WriteString("POLICYHOLDER INFORMATION\n\n")
	fmt.Fprintf(&b, "Name: %s\n", id.Name)
	fmt.Fprintf(&b, "Address: %s\n", id.Address)
	fmt.Fprintf(&b, "         %s, %s %s\n", id.City, id.State, id.Zip)
	fmt.Fprintf(&b, "Email: %s\n\n%s\n\n", id.Email, heavyRule)

	b.WriteString("POLICY DETAILS\n\n")
	b.WriteString("Policy Type: Comprehensive Health Insurance\n")
	b.WriteString("Insurance Company: Blue Cross Blue Shield\n")
	b.WriteString("Plan Name: PPO Gold Plus\n")
	fmt.Fprintf(&b, "Effective Date: January 1, %d\n", year)
	fmt.Fprintf(&b, "Expiration Date: December 31, %d\n", year)
	fmt.Fprintf(&b, "Premium: $450/month\n\n%s\n\n", heavyRule)

	b.WriteString("COVERAGE SUMMARY\n\n")
	b.WriteString("Annual Deductible:\n")
	b.WriteString("  Individual: $1,500\n")
	b.WriteString("  Family: $3,000\n\n")
	b.WriteString("Out-of-Pocket Maximum:\n")
	b.WriteString("  Individual: $6,000\n")
	b.WriteString("  Family: $12,000\n\n")
	fmt.Fprintf(&b, "Coinsurance: 80/20 (Plan pays 80%% after deductible)\n\n%s\n\n", heavyRule)

	b.WriteString("COVERED SERVICES\n\n")
	b.WriteString("Office Visits:\n")
	b.WriteString("  Primary Care: $25 copay\n")
	b.WriteString("  Specialist: $50 copay\n\n")
	b.WriteString("Emergency Care:\n")
	b.WriteString("  Emergency Room: $500 copay (waived if admitted)\n")
	b.WriteString("  Urgent Care: $75 copay\n\n")
	b.WriteString("Hospital Services:\n")
	b.WriteString("  Inpatient: 20% coinsurance after deductible\n")
	b.WriteString("  Outpatient Surgery: 20% coinsurance after deductible\n\n")
	b.WriteString("Preventive Care: Covered 100% (no copay or deductible)\n\n")
	b.WriteString("Prescription Drugs:\n")
	b.WriteString("  Tier 1 (Generic): $10 copay\n")
	b.WriteString("  Tier 2 (Preferred Brand): $40 copay\n")
	b.WriteString("  Tier 3 (Non-Preferred Brand): $70 copay\n\n")
	fmt.Fprintf(&b, "Mental Health: Same as office visit copays\n\n%s\n\n", heavyRule)

	b.WriteString("PROVIDER NETWORK\n\n")
	b.WriteString("In-Network: Full coverage as outlined above\n")
	b.WriteString("Out-of-Network: 60/40 coinsurance, higher deductible applies\n\n")
	b.WriteString("Provider Directory: www.bcbs.com/find-a-doctor\n")
	fmt.Fprintf(&b, "Customer Service: 1-800-123-4567 (24/7)\n\n%s\n\n", heavyRule)

	b.WriteString("EXCLUSIONS\n\n")
	b.WriteString("This policy does not cover:\n")
	b.WriteString("• Cosmetic procedures\n")
	b.WriteString("• Experimental treatments\n")
	b.WriteString("• Services not medically necessary\n")
	fmt.Fprintf(&b, "• Services provided by non-licensed practitioners\n\n%s\n\n", heavyRule)

	b.WriteString("IMPORTANT NOTICES\n\n")
	b.WriteString("• ID cards will arrive within 10 business days\n")
	b.WriteString("• For emergencies, call 911 or go to nearest ER\n")
	b.WriteString("• Pre-authorization required for some services\n")
	fmt.Fprintf(&b, "• Claims must be filed within 12 months\n\n%s\n\n", heavyRule)

	b.WriteString("For questions or to file a claim:\n")
	b.WriteString("Phone: 1-800-123-4567\n")
	b.WriteString("Website: www.bcbs.com\n")
	fmt.Fprintf(&b, "Email: customerservice@bcbs.com\n\n%s\n", heavyRule)

	return b.String()
}

// offerLetterText is the original offer matching the contract terms.
func offerLetterText(id config.Identity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Inc.\n450 Market Street, Suite 1200\nSan Francisco, CA 94111\n\n", id.Company)
	b.WriteString("January 8, 2020\n\n")
	fmt.Fprintf(&b, "%s\n%s\n%s, %s %s\n\n", id.Name, id.Address, id.City, id.State, id.Zip)
	fmt.Fprintf(&b, "Dear %s,\n\n", id.FirstName)
	fmt.Fprintf(&b, "We are pleased to offer you the position of Senior Software Engineer at\n%s Inc. This letter confirms the terms of our offer.\n\n", id.Company)
	b.WriteString("Start Date: January 15, 2020\n")
	b.WriteString("Base Salary: $115,000 per year\n")
	b.WriteString("Performance Bonus: Up to 15% of base salary annually\n")
	b.WriteString("Stock Options: 10,000 shares vesting over 4 years\n")
	b.WriteString("Benefits: Medical, dental, vision, 401(k) with 4% match\n\n")
	b.WriteString("This offer is contingent on successful completion of a background check.\n")
	b.WriteString("Please sign and return the enclosed employment contract by January 13.\n\n")
	b.WriteString("We look forward to having you on the team.\n\n")
	b.WriteString("Sincerely,\n\nSarah Johnson\nVP Human Resources\n")
	return b.String()
}
