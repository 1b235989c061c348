package browser

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/patina/internal/config"
	"github.com/runnerr0/patina/internal/layout"
)

func coordinatorConfig() *config.Config {
	return &config.Config{
		Identity: config.Identity{
			Name:     "John Mathew",
			Username: "jmathew",
			Email:    "john.mathew@beingMalicious.com",
		},
		Browsing: config.BrowsingConfig{
			Categories: map[string][]string{
				"work":  {"github.com", "stackoverflow.com"},
				"email": {"mail.google.com"},
			},
			Weights:      map[string]int{"work": 80, "email": 20},
			LookbackDays: 30,
		},
		Browsers: []config.BrowserConfig{
			{Name: "chrome", Label: "Google Chrome", Family: config.FamilyChromium, Profile: "Default", HistoryEvents: 25},
			{Name: "firefox", Label: "Mozilla Firefox", Family: config.FamilyGecko, Profile: "default-release", HistoryEvents: 20},
			{Name: "edge", Label: "Microsoft Edge", Family: config.FamilyChromium, Profile: "Default", HistoryEvents: 15},
		},
		Credentials: map[string]config.ServiceCredential{
			"github.com":  {Username: "jmathew", Password: "CodeMaster2024!"},
			"netflix.com": {Email: "jm@example.com", Password: "Netf1ixFun!"},
		},
	}
}

func TestProfileDir(t *testing.T) {
	tree := layout.New("/base")

	tests := []struct {
		browser config.BrowserConfig
		want    string
	}{
		{
			config.BrowserConfig{Name: "chrome", Family: config.FamilyChromium, Profile: "Default"},
			"/base/AppData/Local/Google/Chrome/User Data/Default",
		},
		{
			config.BrowserConfig{Name: "edge", Family: config.FamilyChromium, Profile: "Default"},
			"/base/AppData/Local/Microsoft/Edge/User Data/Default",
		},
		{
			config.BrowserConfig{Name: "firefox", Family: config.FamilyGecko, Profile: "default-release"},
			"/base/AppData/Roaming/Mozilla/Firefox/Profiles/jmathew.default-release",
		},
		{
			config.BrowserConfig{Name: "brave", Family: config.FamilyChromium, Profile: "Default"},
			"/base/AppData/Local/Brave/User Data/Default",
		},
		{
			config.BrowserConfig{Name: "waterfox", Family: config.FamilyGecko, Profile: "main"},
			"/base/AppData/Roaming/Waterfox/Profiles/jmathew.main",
		},
	}
	for _, tt := range tests {
		got := ProfileDir(tree, tt.browser, "jmathew")
		assert.Equal(t, filepath.FromSlash(tt.want), got, "browser %s", tt.browser.Name)
	}
}

func TestSummaryDir(t *testing.T) {
	tree := layout.New("/base")
	got := SummaryDir(tree, config.BrowserConfig{Name: "firefox"})
	assert.Equal(t, filepath.FromSlash("/base/Documents/Browser_Data_Firefox"), got)
}

func TestGeneratorRunWritesAllArtifacts(t *testing.T) {
	cfg := coordinatorConfig()
	tree := layout.New(t.TempDir())
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	results, err := NewGenerator(cfg, tree, nil).Run(42, now)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, b := range cfg.Browsers {
		assert.Equal(t, b.Name, results[i].Browser)
		assert.NotEmpty(t, results[i].Paths)
		for _, p := range results[i].Paths {
			_, err := os.Stat(p)
			assert.NoError(t, err, "missing artifact %s", p)
		}
	}

	// Family-specific stores land in the right profile trees.
	chromeProfile := ProfileDir(tree, cfg.Browsers[0], "jmathew")
	firefoxProfile := ProfileDir(tree, cfg.Browsers[1], "jmathew")

	for _, p := range []string{
		filepath.Join(chromeProfile, "History"),
		filepath.Join(chromeProfile, "Login Data.json"),
		filepath.Join(chromeProfile, "Cookies.json"),
		filepath.Join(firefoxProfile, "places.sqlite"),
		filepath.Join(firefoxProfile, "logins.json"),
		filepath.Join(firefoxProfile, "Cookies.json"),
	} {
		_, err := os.Stat(p)
		assert.NoError(t, err, "missing artifact %s", p)
	}

	// Summaries land in the documents area, one folder per browser.
	for _, name := range []string{"Chrome", "Firefox", "Edge"} {
		dir := filepath.Join(tree.Documents(), "Browser_Data_"+name)
		_, err := os.Stat(filepath.Join(dir, "History_Summary.txt"))
		assert.NoError(t, err, "missing history summary for %s", name)
		_, err = os.Stat(filepath.Join(dir, "Cookies_Info.txt"))
		assert.NoError(t, err, "missing cookie info for %s", name)
	}
	_, err = os.Stat(filepath.Join(tree.Documents(), "Browser_Data_Chrome", "Saved_Passwords.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(tree.Documents(), "Browser_Data_Firefox", "Saved_Passwords_Firefox.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(tree.Documents(), "Browser_Data_Edge", "Saved_Passwords_Edge.txt"))
	assert.NoError(t, err)
}

func TestGeneratorStoreMatchesSummary(t *testing.T) {
	// Every URL the digest mentions must exist in the structured store,
	// because both are rendered from the same timeline.
	cfg := coordinatorConfig()
	tree := layout.New(t.TempDir())
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	_, err := NewGenerator(cfg, tree, nil).Run(7, now)
	require.NoError(t, err)

	summary, err := os.ReadFile(filepath.Join(tree.Documents(), "Browser_Data_Chrome", "History_Summary.txt"))
	require.NoError(t, err)

	db, err := sql.Open("sqlite3", filepath.Join(ProfileDir(tree, cfg.Browsers[0], "jmathew"), "History"))
	require.NoError(t, err)
	defer db.Close()

	var checked int
	for _, line := range strings.Split(string(summary), "\n") {
		if !strings.HasPrefix(line, "  URL: ") {
			continue
		}
		url := strings.TrimPrefix(line, "  URL: ")
		var n int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM urls WHERE url = ?", url).Scan(&n))
		assert.Equal(t, 1, n, "summary URL %q missing from store", url)
		checked++
	}
	assert.Greater(t, checked, 0, "summary contained no URL lines")
}

func TestGeneratorRunSeedDeterminism(t *testing.T) {
	cfg := coordinatorConfig()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	treeA := layout.New(t.TempDir())
	treeB := layout.New(t.TempDir())

	_, err := NewGenerator(cfg, treeA, nil).Run(1234, now)
	require.NoError(t, err)
	_, err = NewGenerator(cfg, treeB, nil).Run(1234, now)
	require.NoError(t, err)

	for _, b := range cfg.Browsers {
		a, err := os.ReadFile(filepath.Join(ProfileDir(treeA, b, "jmathew"), "Cookies.json"))
		require.NoError(t, err)
		bb, err := os.ReadFile(filepath.Join(ProfileDir(treeB, b, "jmathew"), "Cookies.json"))
		require.NoError(t, err)
		assert.Equal(t, string(a), string(bb), "cookie artifacts diverged for %s", b.Name)
	}
}

func TestGeneratorRunUnknownFamily(t *testing.T) {
	cfg := coordinatorConfig()
	cfg.Browsers = []config.BrowserConfig{
		{Name: "ie", Label: "Internet Explorer", Family: "trident", Profile: "Default", HistoryEvents: 5},
	}
	tree := layout.New(t.TempDir())

	_, err := NewGenerator(cfg, tree, nil).Run(1, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown browser family")
	assert.Contains(t, err.Error(), "ie")
}
