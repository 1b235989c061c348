package browser

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"path/filepath"
	"sort"
	"time"

	"github.com/runnerr0/patina/internal/layout"
	"github.com/runnerr0/patina/internal/randutil"
)

// Cookie lifetime from derivation time.
const cookieLifetimeDays = 365

// cookieArchetypes are the cookie kinds browsers commonly hold, with the
// descriptions shown in the summary file.
var cookieArchetypes = []struct {
	name        string
	description string
}{
	{"session_id", "Session identifier"},
	{"auth_token", "Authentication token"},
	{"user_prefs", "User preferences"},
	{"tracking_id", "Analytics tracking"},
	{"csrf_token", "CSRF protection"},
	{"language", "Language preference"},
	{"timezone", "Timezone setting"},
}

// DeriveCookies samples one cookie per site category: a representative
// site, a random archetype, an opaque value, and a one-year expiry.
// Categories are visited in sorted order for seeded reproducibility.
func DeriveCookies(categories map[string][]string, rng *rand.Rand, now time.Time) []CookieRecord {
	names := make([]string, 0, len(categories))
	for name, sites := range categories {
		if len(sites) == 0 {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	records := make([]CookieRecord, 0, len(names))
	for _, name := range names {
		site := randutil.Pick(rng, categories[name])
		arch := randutil.Pick(rng, cookieArchetypes)
		records = append(records, CookieRecord{
			Domain:      "." + site,
			Name:        arch.name,
			Description: arch.description,
			Value:       randutil.String(rng, 32),
			Expires:     now.AddDate(0, 0, cookieLifetimeDays),
			Secure:      true,
			HTTPOnly:    true,
		})
	}
	return records
}

type cookieJSON struct {
	Domain         string `json:"domain"`
	Name           string `json:"name"`
	Value          string `json:"value"`
	ExpirationDate string `json:"expirationDate"`
	Secure         bool   `json:"secure"`
	HTTPOnly       bool   `json:"httpOnly"`
}

// WriteCookieFile writes the profile-side Cookies.json and returns its
// path.
func WriteCookieFile(cookies []CookieRecord, profileDir string) (string, error) {
	entries := make([]cookieJSON, 0, len(cookies))
	for _, c := range cookies {
		entries = append(entries, cookieJSON{
			Domain:         c.Domain,
			Name:           c.Name,
			Value:          c.Value,
			ExpirationDate: c.Expires.Format("2006-01-02"),
			Secure:         c.Secure,
			HTTPOnly:       c.HTTPOnly,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal cookies: %w", err)
	}

	path := filepath.Join(profileDir, "Cookies.json")
	if err := layout.WriteFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}
