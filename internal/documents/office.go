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

var quarterMonths = map[int][3]string{
	1: {"January", "February", "March"},
	2: {"April", "May", "June"},
	3: {"July", "August", "September"},
	4: {"October", "November", "December"},
}

var proposalProjects = []string{
	"Customer Portal Redesign",
	"Mobile App Enhancement",
	"Data Analytics Platform",
	"Payment System Upgrade",
	"Real-time Notification Service",
}

var presentationTopics = []string{
	"Q4 Engineering Roadmap",
	"System Architecture Review",
	"New Product Launch Strategy",
	"Team Performance Metrics",
	"Technology Stack Modernization",
}

var adHocDeckTopics = []string{
	"Quarterly Townhall",
	"Incident Postmortem",
	"Recruiting Update",
	"Product Strategy",
}

// budgetRows is the engineering department budget table: category, three
// monthly actuals, quarter total, budget, variance.
var budgetRows = [][]interface{}{
	{"Salaries", 85000, 85000, 87000, 257000, 255000, -2000},
	{"Cloud Services", 12500, 13200, 12800, 38500, 40000, 1500},
	{"Software Licenses", 5400, 5400, 5600, 16400, 18000, 1600},
	{"Office Supplies", 450, 380, 520, 1350, 1500, 150},
	{"Training", 2000, 1500, 3000, 6500, 6000, -500},
	{"Travel & Meals", 1800, 2100, 950, 4850, 5000, 150},
	{"Equipment", 3200, 0, 5600, 8800, 10000, 1200},
	{"Contractors", 8500, 7200, 9100, 24800, 25000, 200},
}

// GenerateOfficeDocuments writes the Desktop/Office tree: quarterly report
// PDFs for every finished quarter, meeting decks, budget workbooks, and
// project proposal PDFs. Returns the written paths.
func GenerateOfficeDocuments(cfg *config.Config, tree layout.Tree, rng *rand.Rand, now time.Time) ([]string, error) {
	officeDir := filepath.Join(tree.Desktop(), "Office")
	var written []string

	reportsDir := filepath.Join(officeDir, "Reports")
	for _, p := range reportPeriods(now) {
		path := filepath.Join(reportsDir, fmt.Sprintf("Q%d_%d_Report.pdf", p.quarter, p.year))
		title := fmt.Sprintf("Q%d %d Business Report", p.quarter, p.year)
		err := render.WritePDF(path, title, []render.Section{
			{Heading: "Content", Body: quarterlyReportText(cfg.Identity, rng, p.quarter, p.year)},
		})
		if err != nil {
			return nil, err
		}
		written = append(written, path)
	}

	decksDir := filepath.Join(officeDir, "Presentations")
	topic := randutil.Pick(rng, presentationTopics)
	roadmapPath := filepath.Join(decksDir, "Quarterly_Roadmap.md")
	if err := render.WriteDeck(roadmapPath, topic, meetingSlides(cfg.Identity, topic, now)); err != nil {
		return nil, err
	}
	written = append(written, roadmapPath)

	for _, deckTopic := range adHocDeckTopics {
		deckPath := filepath.Join(decksDir, strings.ReplaceAll(deckTopic, " ", "_")+".md")
		slides := []render.Slide{
			{Title: deckTopic, Bullets: []string{"Overview", "Highlights", "Challenges", "Next Steps", "Q&A"}},
			{Title: "Highlights", Bullets: []string{"Key wins", "Metrics", "Customer feedback"}},
			{Title: "Risks", Bullets: []string{"Staffing", "Timeline", "Dependencies"}},
		}
		if err := render.WriteDeck(deckPath, deckTopic, slides); err != nil {
			return nil, err
		}
		written = append(written, deckPath)
	}

	sheetsDir := filepath.Join(officeDir, "Spreadsheets")
	budgetPath := filepath.Join(sheetsDir, fmt.Sprintf("Budget_Tracking_%d.xlsx", now.Year()))
	if err := render.WriteWorkbook(budgetPath, budgetSheets(cfg.Identity, now)); err != nil {
		return nil, err
	}
	written = append(written, budgetPath)

	projectsDir := filepath.Join(officeDir, "Projects")
	for i := 1; i <= 2; i++ {
		path := filepath.Join(projectsDir, fmt.Sprintf("Project_Proposal_%d.pdf", i))
		err := render.WritePDF(path, "Project Proposal", []render.Section{
			{Heading: "Proposal", Body: projectProposalText(cfg.Identity, rng, now)},
		})
		if err != nil {
			return nil, err
		}
		written = append(written, path)
	}

	return written, nil
}

type reportPeriod struct {
	quarter int
	year    int
}

// reportPeriods lists every quarter that has fully elapsed by now, covering
// the previous calendar year and the current one.
func reportPeriods(now time.Time) []reportPeriod {
	var periods []reportPeriod
	for q := 1; q <= 4; q++ {
		periods = append(periods, reportPeriod{q, now.Year() - 1})
	}
	for q := 1; q <= (int(now.Month())-1)/3; q++ {
		periods = append(periods, reportPeriod{q, now.Year()})
	}
	return periods
}

func quarterlyReportText(id config.Identity, rng *rand.Rand, quarter, year int) string {
	months := quarterMonths[quarter]
	nextQuarter, nextYear := quarter+1, year
	if quarter == 4 {
		nextQuarter, nextYear = 1, year+1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "QUARTERLY BUSINESS REPORT\nQ%d %d\n\n%s\n\n", quarter, year, heavyRule)

	fmt.Fprintf(&b, "COMPANY: %s\n", id.Company)
	fmt.Fprintf(&b, "PREPARED BY: %s\n", id.Name)
	fmt.Fprintf(&b, "DATE: %s 30, %d\n", months[2], year)
	fmt.Fprintf(&b, "DEPARTMENT: Engineering & Technology\n\n%s\n\n", heavyRule)

	b.WriteString("EXECUTIVE SUMMARY\n\n")
	fmt.Fprintf(&b, "This report summarizes the key achievements, challenges, and metrics for the\nEngineering department during Q%d %d (%s-%s).\n\n", quarter, year, months[0], months[2])
	b.WriteString("Key Highlights:\n")
	b.WriteString("• Successfully deployed 3 major feature releases\n")
	b.WriteString("• Improved system uptime to 99.97%\n")
	b.WriteString("• Reduced average response time by 23%\n")
	fmt.Fprintf(&b, "• Onboarded 2 new senior engineers\n\n%s\n\n", heavyRule)

	b.WriteString("PERFORMANCE METRICS\n\n")
	b.WriteString("Development Velocity:\n")
	fmt.Fprintf(&b, "  - Story points completed: %d\n", randutil.Between(rng, 180, 250))
	fmt.Fprintf(&b, "  - Sprint velocity average: %d points/sprint\n", randutil.Between(rng, 35, 50))
	fmt.Fprintf(&b, "  - Code commits: %d\n", randutil.Between(rng, 450, 750))
	fmt.Fprintf(&b, "  - Pull requests merged: %d\n\n", randutil.Between(rng, 120, 200))
	b.WriteString("System Performance:\n")
	fmt.Fprintf(&b, "  - Uptime: 99.%d%%\n", randutil.Between(rng, 94, 99))
	fmt.Fprintf(&b, "  - Average response time: %dms\n", randutil.Between(rng, 85, 150))
	fmt.Fprintf(&b, "  - Error rate: 0.%02d%%\n", randutil.Between(rng, 1, 5))
	fmt.Fprintf(&b, "  - Peak concurrent users: %s\n\n", format.Thousands(int64(randutil.Between(rng, 8000, 15000))))
	b.WriteString("Quality Metrics:\n")
	fmt.Fprintf(&b, "  - Test coverage: %d%%\n", randutil.Between(rng, 82, 94))
	fmt.Fprintf(&b, "  - Bugs resolved: %d\n", randutil.Between(rng, 45, 85))
	fmt.Fprintf(&b, "  - Production incidents: %d\n", randutil.Between(rng, 2, 6))
	fmt.Fprintf(&b, "  - Customer-reported issues: %d\n\n%s\n\n", randutil.Between(rng, 8, 18), heavyRule)

	b.WriteString("MAJOR ACCOMPLISHMENTS\n\n")
	b.WriteString("1. MICROSERVICES MIGRATION\n")
	b.WriteString("   Successfully migrated payment processing service to new microservices\n")
	b.WriteString("   architecture, resulting in improved scalability and maintainability.\n\n")
	b.WriteString("2. SECURITY ENHANCEMENTS\n")
	b.WriteString("   Implemented multi-factor authentication and enhanced encryption for\n")
	b.WriteString("   sensitive data storage, passing security audit with zero critical findings.\n\n")
	b.WriteString("3. API PERFORMANCE OPTIMIZATION\n")
	b.WriteString("   Reduced API latency by 35% through query optimization and caching\n")
	b.WriteString("   strategies, improving overall user experience.\n\n")
	b.WriteString("4. DATABASE UPGRADE\n")
	b.WriteString("   Completed PostgreSQL upgrade to version 15 with zero downtime,\n")
	fmt.Fprintf(&b, "   leveraging blue-green deployment strategy.\n\n%s\n\n", heavyRule)

	b.WriteString("CHALLENGES & LESSONS LEARNED\n\n")
	b.WriteString("Challenges:\n")
	b.WriteString("• Integration issues with third-party payment gateway caused delays\n")
	b.WriteString("• Unexpected spike in traffic required emergency scaling\n")
	b.WriteString("• Two key team members left for other opportunities\n\n")
	b.WriteString("Lessons Learned:\n")
	b.WriteString("• Need better integration testing environment\n")
	b.WriteString("• Auto-scaling policies need refinement\n")
	fmt.Fprintf(&b, "• Knowledge transfer and documentation are critical\n\n%s\n\n", heavyRule)

	fmt.Fprintf(&b, "UPCOMING PRIORITIES FOR Q%d %d\n\n", nextQuarter, nextYear)
	b.WriteString("1. Launch mobile app version 2.0\n")
	b.WriteString("2. Implement real-time analytics dashboard\n")
	b.WriteString("3. Complete migration to Kubernetes\n")
	b.WriteString("4. Enhance monitoring and alerting systems\n")
	fmt.Fprintf(&b, "5. Hire 3 additional engineers\n\n%s\n\n", heavyRule)

	b.WriteString("BUDGET SUMMARY\n\n")
	b.WriteString("                        Budgeted        Actual       Variance\n")
	fmt.Fprintf(&b, "Personnel              %s    %s     %s\n", format.Currency(180000), format.Currency(175000), format.Currency(5000))
	fmt.Fprintf(&b, "Infrastructure         %s     %s    (%s)\n", format.Currency(45000), format.Currency(48500), format.Currency(3500))
	fmt.Fprintf(&b, "Software/Tools         %s     %s      %s\n", format.Currency(25000), format.Currency(24200), format.Currency(800))
	fmt.Fprintf(&b, "Training               %s     %s      %s\n", format.Currency(10000), format.Currency(8500), format.Currency(1500))
	b.WriteString("                       ──────────────────────────────────────────────\n")
	fmt.Fprintf(&b, "TOTAL                  %s    %s     %s\n\n%s\n\n", format.Currency(260000), format.Currency(256200), format.Currency(3800), heavyRule)

	b.WriteString("CONCLUSION\n\n")
	fmt.Fprintf(&b, "Q%d was a productive quarter with significant progress on key initiatives.\n", quarter)
	b.WriteString("The team demonstrated resilience and adaptability in addressing challenges while\n")
	b.WriteString("maintaining high quality standards. Looking ahead, we are well-positioned to\n")
	b.WriteString("execute on our roadmap for the next quarter.\n\n")
	fmt.Fprintf(&b, "Prepared by: %s\n", id.Name)
	b.WriteString("Title: Senior Engineering Manager\n")
	fmt.Fprintf(&b, "Date: %s 30, %d\n\n%s\n", months[2], year, heavyRule)

	return b.String()
}

func projectProposalText(id config.Identity, rng *rand.Rand, now time.Time) string {
	project := randutil.Pick(rng, proposalProjects)

	var b strings.Builder
	fmt.Fprintf(&b, "PROJECT PROPOSAL\n\n%s\n\n", heavyRule)

	fmt.Fprintf(&b, "PROJECT TITLE: %s\n\n", project)
	fmt.Fprintf(&b, "Submitted by: %s\n", id.Name)
	b.WriteString("Department: Engineering\n")
	fmt.Fprintf(&b, "Date: %s\n", now.Format("January 02, 2006"))
	fmt.Fprintf(&b, "Version: 1.0\n\n%s\n\n", heavyRule)

	b.WriteString("1. PROJECT OVERVIEW\n\n")
	fmt.Fprintf(&b, "This proposal outlines the plan to develop and implement %s.\n", project)
	b.WriteString("The project aims to improve user experience, increase system efficiency,\n")
	fmt.Fprintf(&b, "and provide better insights into business operations.\n\n%s\n\n", heavyRule)

	b.WriteString("2. BUSINESS JUSTIFICATION\n\n")
	b.WriteString("Current Challenges:\n")
	b.WriteString("• Outdated user interface affecting user satisfaction\n")
	b.WriteString("• Performance bottlenecks during peak usage\n")
	b.WriteString("• Limited analytics capabilities\n")
	b.WriteString("• Increasing maintenance costs\n\n")
	b.WriteString("Expected Benefits:\n")
	b.WriteString("• 40% improvement in user engagement\n")
	b.WriteString("• 50% reduction in page load times\n")
	b.WriteString("• Enhanced data-driven decision making\n")
	b.WriteString("• Lower operational costs\n\n")
	b.WriteString("ROI: Expected payback period of 18 months with projected annual savings\n")
	fmt.Fprintf(&b, "     of %s\n\n%s\n\n", format.Currency(150000), heavyRule)

	b.WriteString("3. PROJECT SCOPE\n\n")
	b.WriteString("In Scope:\n")
	b.WriteString("✓ Complete UI/UX redesign\n")
	b.WriteString("✓ Backend API modernization\n")
	b.WriteString("✓ Database optimization\n")
	b.WriteString("✓ Comprehensive testing\n")
	b.WriteString("✓ User documentation\n")
	b.WriteString("✓ Staff training\n\n")
	b.WriteString("Out of Scope:\n")
	b.WriteString("✗ Mobile application (separate project)\n")
	b.WriteString("✗ Third-party integrations (Phase 2)\n")
	fmt.Fprintf(&b, "✗ Marketing campaigns\n\n%s\n\n", heavyRule)

	b.WriteString("4. PROJECT TIMELINE\n\n")
	b.WriteString("Phase 1: Planning & Design         Weeks 1-3\n")
	b.WriteString("  - Requirements gathering\n")
	b.WriteString("  - Architecture design\n")
	b.WriteString("  - UI/UX mockups\n\n")
	b.WriteString("Phase 2: Development               Weeks 4-10\n")
	b.WriteString("  - Frontend development\n")
	b.WriteString("  - Backend API development\n")
	b.WriteString("  - Database implementation\n\n")
	b.WriteString("Phase 3: Testing & QA              Weeks 11-13\n")
	b.WriteString("  - Unit testing\n")
	b.WriteString("  - Integration testing\n")
	b.WriteString("  - User acceptance testing\n\n")
	b.WriteString("Phase 4: Deployment                Week 14\n")
	b.WriteString("  - Production deployment\n")
	b.WriteString("  - Monitoring setup\n")
	b.WriteString("  - Documentation\n\n")
	fmt.Fprintf(&b, "Total Duration: 14 weeks\n\n%s\n\n", heavyRule)

	b.WriteString("5. RESOURCE REQUIREMENTS\n\n")
	b.WriteString("Personnel:\n")
	b.WriteString("  - Project Manager: 1 (full-time)\n")
	b.WriteString("  - Senior Engineers: 2 (full-time)\n")
	b.WriteString("  - Frontend Developers: 2 (full-time)\n")
	b.WriteString("  - QA Engineers: 1 (full-time)\n")
	b.WriteString("  - UI/UX Designer: 1 (part-time)\n\n")
	b.WriteString("Infrastructure:\n")
	b.WriteString("  - Development environments\n")
	b.WriteString("  - Staging environment\n")
	fmt.Fprintf(&b, "  - Testing tools and frameworks\n\n%s\n\n", heavyRule)

	b.WriteString("6. BUDGET ESTIMATE\n\n")
	fmt.Fprintf(&b, "Personnel Costs                    %s\n", format.Currency(280000))
	fmt.Fprintf(&b, "Infrastructure & Tools             %s\n", format.Currency(45000))
	fmt.Fprintf(&b, "Software Licenses                  %s\n", format.Currency(15000))
	fmt.Fprintf(&b, "Training & Documentation           %s\n", format.Currency(10000))
	fmt.Fprintf(&b, "Contingency (10%%)                  %s\n", format.Currency(35000))
	b.WriteString("                                   ─────────────\n")
	fmt.Fprintf(&b, "TOTAL PROJECT COST                 %s\n\n%s\n\n", format.Currency(385000), heavyRule)

	b.WriteString("7. RISK ANALYSIS\n\n")
	b.WriteString("Risk                           Probability    Impact      Mitigation\n")
	b.WriteString("──────────────────────────────────────────────────────────────────────\n")
	b.WriteString("Scope creep                    Medium         High        Clear requirements & change control\n")
	b.WriteString("Technical challenges           Medium         Medium      Proof of concept early\n")
	b.WriteString("Resource availability          Low            High        Secure commitments upfront\n")
	b.WriteString("Third-party dependencies       Medium         Medium      Identify alternatives\n")
	fmt.Fprintf(&b, "Timeline delays                Medium         Medium      Buffer time in schedule\n\n%s\n\n", heavyRule)

	b.WriteString("8. SUCCESS CRITERIA\n\n")
	b.WriteString("The project will be considered successful when:\n")
	b.WriteString("✓ All functional requirements are met\n")
	b.WriteString("✓ Performance targets are achieved (sub-200ms response time)\n")
	b.WriteString("✓ User satisfaction score > 85%\n")
	b.WriteString("✓ Zero critical bugs in production\n")
	b.WriteString("✓ Deployment completed on schedule\n")
	fmt.Fprintf(&b, "✓ Budget variance < 10%%\n\n%s\n\n", heavyRule)

	b.WriteString("9. RECOMMENDATION\n\n")
	b.WriteString("Based on the analysis above, I recommend approval of this project. The\n")
	b.WriteString("expected benefits significantly outweigh the costs, and the project aligns\n")
	fmt.Fprintf(&b, "well with our strategic objectives for digital transformation.\n\n%s\n\n", heavyRule)

	b.WriteString("APPROVALS\n\n")
	b.WriteString("Prepared by:\n")
	fmt.Fprintf(&b, "  Name: %s\n", id.Name)
	b.WriteString("  Title: Senior Engineering Manager\n")
	b.WriteString("  Signature: ________________________    Date: _______________\n\n")
	b.WriteString("Approved by:\n")
	b.WriteString("  Name: ___________________________\n")
	b.WriteString("  Title: VP of Engineering\n")
	fmt.Fprintf(&b, "  Signature: ________________________    Date: _______________\n\n%s\n", heavyRule)

	return b.String()
}

// meetingSlides expands a presentation topic into the standard executive
// briefing outline.
func meetingSlides(id config.Identity, topic string, now time.Time) []render.Slide {
	return []render.Slide{
		{Title: topic, Bullets: []string{
			fmt.Sprintf("%s, %s", id.Name, id.Company),
			now.Format("January 2006"),
			"Audience: Executive Team & Stakeholders",
			"Duration: 45 minutes",
		}},
		{Title: "Agenda", Bullets: []string{
			"Current State Overview",
			"Key Challenges",
			"Proposed Solutions",
			"Implementation Timeline",
			"Expected Outcomes",
			"Q&A",
		}},
		{Title: "Current State Overview", Bullets: []string{
			"System architecture diagram",
			"Uptime: 99.9%",
			"Response time: 120ms avg",
			"Daily active users: 50,000+",
			"Team structure (15 engineers)",
		}},
		{Title: "Key Challenges", Bullets: []string{
			"Legacy codebase maintenance",
			"Scaling limitations",
			"Technical debt accumulation",
			"Slow deployment cycles",
			"Limited observability",
		}},
		{Title: "Proposed Solutions", Bullets: []string{
			"Microservices architecture migration",
			"Containerization with Kubernetes",
			"CI/CD pipeline improvements",
			"Enhanced monitoring & logging",
			"Code quality initiatives",
		}},
		{Title: "Implementation Timeline", Bullets: []string{
			"Month 1-2: Planning & Design (architecture, training, tooling)",
			"Month 3-5: Development (service migration, infrastructure, testing)",
			"Month 6: Deployment & Optimization (rollout, tuning, documentation)",
		}},
		{Title: "Expected Outcomes", Bullets: []string{
			"50% faster deployment cycles",
			"99.99% uptime target",
			"40% reduction in response time",
			"Better fault isolation",
			"Faster time to market",
			"Reduced operational costs",
		}},
		{Title: "Budget & Resources", Bullets: []string{
			"Total investment: " + format.Currency(450000),
			"Infrastructure: " + format.Currency(200000),
			"Tools & licenses: " + format.Currency(80000),
			"Training: " + format.Currency(40000),
			"Consulting: " + format.Currency(100000),
			"Contingency: " + format.Currency(30000),
		}},
		{Title: "Risk Mitigation", Bullets: []string{
			"Phased rollout approach",
			"Comprehensive testing at each stage",
			"Rollback procedures in place",
			"Regular stakeholder updates",
			"External expert consultation",
		}},
		{Title: "Next Steps", Bullets: []string{
			"This month: executive approval, budget allocation, project team",
			"Next 3 months: architecture design, infrastructure setup, team training",
		}},
		{Title: "Q&A", Bullets: []string{
			"Questions?",
			"Contact: " + id.Name,
			id.Email,
		}},
	}
}

// budgetSheets builds the department budget workbook: the tracking table
// plus a notes sheet explaining the variances.
func budgetSheets(id config.Identity, now time.Time) []render.Sheet {
	rows := [][]interface{}{
		{"Category", "Jan", "Feb", "Mar", "Q1 Total", "Budget", "Variance"},
	}
	rows = append(rows, budgetRows...)
	rows = append(rows, []interface{}{"TOTAL", 118850, 114780, 124570, 358200, 360500, 2300})

	notes := [][]interface{}{
		{"Budget Tracking Notes", ""},
		{"Department", fmt.Sprintf("Engineering - %d", now.Year())},
		{"Prepared by", id.Name},
		{"Date", now.Format("January 02, 2006")},
		{"", ""},
		{"Note", "Salary increase in March due to annual raises"},
		{"Note", "Cloud costs higher in Feb due to increased traffic"},
		{"Note", "Training exceeded budget due to conference attendance"},
		{"Note", "Equipment purchased for new hires in Q1"},
		{"Note", "Overall Q1 came in under budget by $2,300"},
	}

	return []render.Sheet{
		{Name: "Budget", Rows: rows},
		{Name: "Notes", Rows: notes},
	}
}
