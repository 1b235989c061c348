package appdata

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/runnerr0/patina/internal/config"
	"github.com/runnerr0/patina/internal/layout"
	"github.com/runnerr0/patina/internal/randutil"
)

var heavyRule = strings.Repeat("═", 75)

var activityHighlights = []struct {
	app      string
	activity string
}{
	{"Google Chrome", "Browsing sessions, 50+ tabs managed"},
	{"Visual Studio Code", "Active development, 15 projects"},
	{"Microsoft Office", "Document editing, presentations"},
	{"Zoom", "Video meetings, 20+ calls this month"},
	{"Slack", "Team communication, daily active"},
	{"Git", "Version control, 150+ commits"},
	{"Docker Desktop", "Container management, 8 running containers"},
	{"Spotify", "Music streaming, 40+ hours this month"},
}

type license struct {
	software string
	kind     string
	billing  string
	cost     string
	status   string
}

var licenseCatalog = []license{
	{"Microsoft Office 365", "Subscription", "Annual", "$99.99/year", "Active"},
	{"Adobe Acrobat Pro", "Perpetual", "One-time", "$449.99", "Active"},
	{"WinRAR", "Trial", "40-day trial", "Free", "Expired (Still works)"},
	{"Zoom Pro", "Subscription", "Monthly", "$14.99/month", "Active"},
	{"Spotify Premium", "Subscription", "Monthly", "$9.99/month", "Active"},
	{"JetBrains All Products", "Subscription", "Annual", "$249/year", "Active"},
	{"Slack Business+", "Subscription", "Per user/month", "$12.50/user", "Active"},
}

func writeInventory(id config.Identity, profiles []appProfile, rng *rand.Rand, now time.Time, downloadsDir string) ([]string, error) {
	files := []struct {
		name    string
		content string
	}{
		{"Installed_Applications.txt", installedAppsText(id, profiles, now)},
		{"Recent_App_Activity.txt", recentActivityText(id, rng, now)},
		{"Software_Licenses.txt", licensesText(id, rng, now)},
		{"Download_History.txt", downloadHistoryText(id, rng, now)},
	}

	var written []string
	for _, f := range files {
		path := filepath.Join(downloadsDir, f.name)
		if err := layout.WriteString(path, f.content); err != nil {
			return nil, err
		}
		written = append(written, path)
	}
	return written, nil
}

func installedAppsText(id config.Identity, profiles []appProfile, now time.Time) string {
	var b strings.Builder
	b.WriteString("INSTALLED APPLICATIONS\n")
	fmt.Fprintf(&b, "Computer: %s's Workstation\n", id.Name)
	fmt.Fprintf(&b, "Last Updated: %s\n\n%s\n\n", now.Format("January 02, 2006 15:04:05"), heavyRule)
	b.WriteString("        This system has the following applications installed:\n\n")

	for i, p := range profiles {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, p.name)
		fmt.Fprintf(&b, "   Version: %s\n", p.version)
		fmt.Fprintf(&b, "   Installed: %s\n", p.installDate.Format("01/02/2006"))
		fmt.Fprintf(&b, "   Size: %s\n", randutil.FileSizeString(int64(p.sizeMB)*1024*1024))
		fmt.Fprintf(&b, "   Last Used: %s\n", p.lastUsed.Format("01/02/2006"))
	}

	fmt.Fprintf(&b, "\n\n%s\n\nSYSTEM INFORMATION\n\n", heavyRule)
	b.WriteString("Operating System: Windows 11 Pro\n")
	b.WriteString("Version: 22H2\n")
	b.WriteString("Build: 22621.2715\n")
	b.WriteString("Processor: Intel Core i7-12700K @ 3.60GHz\n")
	b.WriteString("RAM: 32 GB\n")
	fmt.Fprintf(&b, "Storage: 1 TB SSD\n\n%s\n", heavyRule)

	return b.String()
}

func recentActivityText(id config.Identity, rng *rand.Rand, now time.Time) string {
	var b strings.Builder
	b.WriteString("RECENT APPLICATION ACTIVITY\n")
	fmt.Fprintf(&b, "User: %s\n", id.Name)
	fmt.Fprintf(&b, "Period: Last 30 Days\n\n%s\n\n", heavyRule)

	for _, h := range activityHighlights {
		lastUsed := now.Add(-time.Duration(randutil.Between(rng, 1, 48)) * time.Hour)
		fmt.Fprintf(&b, "%s\n", h.app)
		fmt.Fprintf(&b, "  Last Used: %s\n", lastUsed.Format("January 02, 2006 at 03:04 PM"))
		fmt.Fprintf(&b, "  Total Time: %d hours\n", randutil.Between(rng, 20, 300))
		fmt.Fprintf(&b, "  Activity: %s\n", h.activity)
		b.WriteString(strings.Repeat("-", 70) + "\n\n")
	}
	return b.String()
}

func licensesText(id config.Identity, rng *rand.Rand, now time.Time) string {
	var b strings.Builder
	b.WriteString("SOFTWARE LICENSE INFORMATION\n")
	fmt.Fprintf(&b, "%s\n%s\n\n", id.Name, id.Email)
	fmt.Fprintf(&b, "Generated: %s\n\n%s\n\n", now.Format("January 02, 2006"), heavyRule)

	for _, l := range licenseCatalog {
		fmt.Fprintf(&b, "SOFTWARE: %s\n", l.software)
		fmt.Fprintf(&b, "License Type: %s\n", l.kind)
		fmt.Fprintf(&b, "Billing: %s\n", l.billing)
		fmt.Fprintf(&b, "Cost: %s\n", l.cost)
		fmt.Fprintf(&b, "Status: %s\n", l.status)
		fmt.Fprintf(&b, "License Key: %s\n", licenseKey(rng))
		if l.status == "Active" && l.kind == "Subscription" {
			renewal := now.AddDate(0, 0, randutil.Between(rng, 30, 365))
			fmt.Fprintf(&b, "Next Renewal: %s\n", renewal.Format("January 02, 2006"))
		}
		b.WriteString(strings.Repeat("-", 70) + "\n\n")
	}

	fmt.Fprintf(&b, "\nTOTAL ANNUAL SOFTWARE COSTS: Approximately $600/year\n\n%s\n\n", heavyRule)
	b.WriteString("NOTES:\n")
	b.WriteString("• All subscriptions set to auto-renew\n")
	b.WriteString("• Payment method: Visa ending in 5847\n")
	fmt.Fprintf(&b, "• Renewal notifications sent to %s\n", id.Email)
	fmt.Fprintf(&b, "• Keep licenses backed up in secure location\n\n%s\n", heavyRule)

	return b.String()
}

// licenseKey draws a deterministic activation key from the seeded source.
func licenseKey(rng *rand.Rand) string {
	key, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		key = uuid.Nil
	}
	return strings.ToUpper(key.String())
}

func downloadHistoryText(id config.Identity, rng *rand.Rand, now time.Time) string {
	var b strings.Builder
	b.WriteString("DOWNLOAD HISTORY\n")
	fmt.Fprintf(&b, "User: %s\n", id.Name)
	fmt.Fprintf(&b, "Last 30 Days\n\n%s\n\n", heavyRule)

	for _, d := range downloadCatalog(now) {
		downloaded := randutil.DaysAgo(rng, now, 1, 30)
		fmt.Fprintf(&b, "File: %s\n", d.name)
		fmt.Fprintf(&b, "Description: %s\n", d.description)
		fmt.Fprintf(&b, "Size: %s\n", randutil.FileSizeString(int64(d.sizeMB*1024*1024)))
		fmt.Fprintf(&b, "Downloaded: %s\n", downloaded.Format("January 02, 2006 at 03:04 PM"))
		fmt.Fprintf(&b, "Status: Complete via %s\n", d.source)
		b.WriteString(strings.Repeat("-", 70) + "\n\n")
	}
	return b.String()
}
