package browser

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/runnerr0/patina/internal/layout"
)

// The history digest keeps only the most recent slice of the timeline.
const historySummaryMaxEntries = 50

const summarySeparator = 70

// WriteHistorySummary writes the human-readable browsing digest for one
// browser into summaryDir and returns its path. Events must already be
// in ascending visit order; the digest shows the trailing entries.
func WriteHistorySummary(label, userName string, events []ActivityEvent, summaryDir string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s Browsing History Summary\n", label)
	fmt.Fprintf(&b, "# User: %s\n", userName)
	b.WriteString("# Generated for sandbox realism\n\n")

	tail := events
	if len(tail) > historySummaryMaxEntries {
		tail = tail[len(tail)-historySummaryMaxEntries:]
	}
	for _, ev := range tail {
		fmt.Fprintf(&b, "[%s] %s\n", ev.VisitTime.Format("2006-01-02 15:04:05"), ev.Title)
		fmt.Fprintf(&b, "  URL: %s\n", ev.URL)
		fmt.Fprintf(&b, "  Visits: %d\n\n", ev.VisitCount)
	}

	path := filepath.Join(summaryDir, "History_Summary.txt")
	if err := layout.WriteString(path, b.String()); err != nil {
		return "", err
	}
	return path, nil
}

// passwordSummaryStyle captures the wording differences between the
// per-browser password digests. Each browser's export UI phrases the
// same fields slightly differently.
type passwordSummaryStyle struct {
	fileName      string
	totalFormat   string
	siteLabel     string
	createdLabel  string
	createdLayout string
	usageFormat   string
}

// passwordStyleFor selects the digest wording for a browser by its short
// name. Unknown browsers fall back to the Chrome wording with a
// browser-specific file name.
func passwordStyleFor(name string) passwordSummaryStyle {
	switch name {
	case "chrome":
		return passwordSummaryStyle{
			fileName:      "Saved_Passwords.txt",
			totalFormat:   "Total saved passwords: %d",
			siteLabel:     "Website",
			createdLabel:  "Created",
			createdLayout: "2006-01-02",
			usageFormat:   "Times Used: %d",
		}
	case "firefox":
		return passwordSummaryStyle{
			fileName:      "Saved_Passwords_Firefox.txt",
			totalFormat:   "Total saved logins: %d",
			siteLabel:     "Site",
			createdLabel:  "Date Created",
			createdLayout: "2006-01-02 15:04:05",
			usageFormat:   "Used %d times",
		}
	case "edge":
		return passwordSummaryStyle{
			fileName:      "Saved_Passwords_Edge.txt",
			totalFormat:   "Total passwords saved: %d",
			siteLabel:     "URL",
			createdLabel:  "Created",
			createdLayout: "2006-01-02",
			usageFormat:   "Usage Count: %d",
		}
	default:
		return passwordSummaryStyle{
			fileName:      "Saved_Passwords_" + capitalize(name) + ".txt",
			totalFormat:   "Total saved passwords: %d",
			siteLabel:     "Website",
			createdLabel:  "Created",
			createdLayout: "2006-01-02",
			usageFormat:   "Times Used: %d",
		}
	}
}

// WritePasswordSummary writes the saved-password digest for one browser
// into summaryDir and returns its path. The wording follows the
// browser's own export style; name is the short browser name, label the
// display name shown in the header.
func WritePasswordSummary(name, label, userName, userEmail string, creds []CredentialRecord, summaryDir string) (string, error) {
	style := passwordStyleFor(name)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s - Saved Passwords (summary)\n", label)
	fmt.Fprintf(&b, "# User: %s (%s)\n", userName, userEmail)
	b.WriteString("# WARNING: FAKE credentials for sandbox analysis\n\n")
	fmt.Fprintf(&b, style.totalFormat+"\n\n", len(creds))
	b.WriteString(strings.Repeat("=", summarySeparator) + "\n\n")

	for _, c := range creds {
		fmt.Fprintf(&b, "%s: https://%s\n", style.siteLabel, c.Site)
		fmt.Fprintf(&b, "Username: %s\n", c.Principal)
		fmt.Fprintf(&b, "Password: %s\n", c.Secret)
		fmt.Fprintf(&b, "%s: %s\n", style.createdLabel, c.Created.Format(style.createdLayout))
		fmt.Fprintf(&b, style.usageFormat+"\n", c.TimesUsed)
		b.WriteString(strings.Repeat("-", summarySeparator) + "\n\n")
	}

	path := filepath.Join(summaryDir, style.fileName)
	if err := layout.WriteString(path, b.String()); err != nil {
		return "", err
	}
	return path, nil
}

// WriteCookieInfo writes the cookie digest for one browser into
// summaryDir and returns its path.
func WriteCookieInfo(label, userName string, cookies []CookieRecord, now time.Time, summaryDir string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s - Cookies Information\n", label)
	fmt.Fprintf(&b, "# User: %s\n", userName)
	fmt.Fprintf(&b, "# Generated: %s\n\n", now.Format("2006-01-02 15:04:05"))
	b.WriteString("Common cookies stored:\n\n")

	for _, c := range cookies {
		fmt.Fprintf(&b, "Domain: %s\n", c.Domain)
		fmt.Fprintf(&b, "  Cookie: %s\n", c.Name)
		fmt.Fprintf(&b, "  Description: %s\n", c.Description)
		fmt.Fprintf(&b, "  Value: %s\n", c.Value)
		fmt.Fprintf(&b, "  Expires: %s\n", c.Expires.Format("2006-01-02"))
		fmt.Fprintf(&b, "  Secure: %s\n", yesNo(c.Secure))
		fmt.Fprintf(&b, "  HttpOnly: %s\n\n", yesNo(c.HTTPOnly))
	}

	path := filepath.Join(summaryDir, "Cookies_Info.txt")
	if err := layout.WriteString(path, b.String()); err != nil {
		return "", err
	}
	return path, nil
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// capitalize upper-cases the first byte of an ASCII name.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
