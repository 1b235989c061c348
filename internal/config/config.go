package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default config file path.
const DefaultConfigPath = "~/.config/fabric/patina/config.yaml"

// Browser engine families. Each family has its own on-disk store format.
const (
	FamilyChromium = "chromium"
	FamilyGecko    = "gecko"
)

// Config holds the full description of the synthetic user environment:
// who the user is, what they browse, which browsers they run, and what
// their documents and applications look like.
type Config struct {
	Identity     Identity                     `yaml:"identity"`
	Browsing     BrowsingConfig               `yaml:"browsing"`
	Browsers     []BrowserConfig              `yaml:"browsers"`
	Credentials  map[string]ServiceCredential `yaml:"credentials"`
	Documents    DocumentsConfig              `yaml:"documents"`
	Applications []string                     `yaml:"applications"`
	Finance      FinanceConfig                `yaml:"finance"`
}

// Identity is the synthetic user every artifact is attributed to.
type Identity struct {
	Name      string `yaml:"name"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Username  string `yaml:"username"`
	Company   string `yaml:"company"`
	SSN       string `yaml:"ssn"`
	Address   string `yaml:"address"`
	City      string `yaml:"city"`
	State     string `yaml:"state"`
	Zip       string `yaml:"zip"`
	Phone     string `yaml:"phone"`
	BirthDate string `yaml:"birth_date"`
}

// BrowsingConfig drives timeline synthesis: which sites exist, how often
// each category is visited, and how far back history reaches.
type BrowsingConfig struct {
	Categories   map[string][]string `yaml:"categories"`
	Weights      map[string]int      `yaml:"weights"`
	LookbackDays int                 `yaml:"lookback_days"`
}

// BrowserConfig describes one installed browser.
type BrowserConfig struct {
	Name          string `yaml:"name"`
	Label         string `yaml:"label"`
	Family        string `yaml:"family"`
	Profile       string `yaml:"profile"`
	HistoryEvents int    `yaml:"history_events"`
}

// ServiceCredential is a saved login for one service. At least one of
// Username and Email must be set; Username wins when both are present.
type ServiceCredential struct {
	Username string `yaml:"username,omitempty"`
	Email    string `yaml:"email,omitempty"`
	Password string `yaml:"password"`
}

// DocumentsConfig shapes the document trees and per-kind item counts.
type DocumentsConfig struct {
	DesktopFolders   map[string][]string `yaml:"desktop_folders"`
	DocumentsFolders map[string][]string `yaml:"documents_folders"`
	DownloadsFolders []string            `yaml:"downloads_folders"`
	MeetingNotes     int                 `yaml:"meeting_notes"`
	Photos           int                 `yaml:"photos"`
	MusicTracks      int                 `yaml:"music_tracks"`
}

// FinanceConfig feeds the tax and investment document generators.
type FinanceConfig struct {
	TaxYears []int              `yaml:"tax_years"`
	Federal  map[int]TaxSummary `yaml:"federal"`
	State    map[int]TaxSummary `yaml:"state"`
	Stocks   []string           `yaml:"stocks"`
	ETFs     []string           `yaml:"etfs"`
	Bonds    []string           `yaml:"bonds"`
}

// TaxSummary is one year's filed numbers, in whole dollars.
type TaxSummary struct {
	Income  int `yaml:"income"`
	TaxPaid int `yaml:"tax_paid"`
	Refund  int `yaml:"refund"`
}

// Load reads a YAML config file at path and merges it with defaults.
// Returns an error if the file cannot be read or contains invalid YAML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// LoadOrCreate loads the config from the default path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreate() (*Config, error) {
	path, err := expandPath(DefaultConfigPath)
	if err != nil {
		return nil, err
	}
	return LoadOrCreateAt(path)
}

// LoadOrCreateAt loads the config from the given path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreateAt(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()

		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating config directory: %w", err)
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("marshaling default config: %w", err)
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("writing default config: %w", err)
		}

		return cfg, nil
	}

	return Load(path)
}

// Validate checks everything synthesis depends on. It runs before any
// artifact is written so a bad config never produces a partial tree.
func (c *Config) Validate() error {
	if c.Identity.Name == "" {
		return fmt.Errorf("identity: name is required")
	}
	if c.Identity.Email == "" {
		return fmt.Errorf("identity: email is required")
	}
	if c.Identity.Username == "" {
		return fmt.Errorf("identity: username is required")
	}

	if len(c.Browsing.Categories) == 0 {
		return fmt.Errorf("browsing: site catalog is empty")
	}
	if c.Browsing.LookbackDays <= 0 {
		return fmt.Errorf("browsing: lookback_days must be positive, got %d", c.Browsing.LookbackDays)
	}
	totalWeight := 0
	for category, weight := range c.Browsing.Weights {
		if weight < 0 {
			return fmt.Errorf("browsing: category %q has negative weight %d", category, weight)
		}
		if weight == 0 {
			continue
		}
		totalWeight += weight
		sites, ok := c.Browsing.Categories[category]
		if !ok {
			return fmt.Errorf("browsing: weighted category %q missing from site catalog", category)
		}
		if len(sites) == 0 {
			return fmt.Errorf("browsing: weighted category %q has no sites", category)
		}
	}
	if totalWeight <= 0 {
		return fmt.Errorf("browsing: category weights sum to zero")
	}

	if len(c.Browsers) == 0 {
		return fmt.Errorf("browsers: at least one browser is required")
	}
	seen := make(map[string]bool, len(c.Browsers))
	for _, b := range c.Browsers {
		if b.Name == "" {
			return fmt.Errorf("browsers: entry with empty name")
		}
		if seen[b.Name] {
			return fmt.Errorf("browsers: duplicate name %q", b.Name)
		}
		seen[b.Name] = true
		if b.Family != FamilyChromium && b.Family != FamilyGecko {
			return fmt.Errorf("browsers: %s has unknown family %q", b.Name, b.Family)
		}
		if b.Profile == "" {
			return fmt.Errorf("browsers: %s has empty profile name", b.Name)
		}
		if b.HistoryEvents <= 0 {
			return fmt.Errorf("browsers: %s history_events must be positive, got %d", b.Name, b.HistoryEvents)
		}
	}

	for site, cred := range c.Credentials {
		if cred.Password == "" {
			return fmt.Errorf("credentials: %s has no password", site)
		}
		if cred.Username == "" && cred.Email == "" {
			return fmt.Errorf("credentials: %s has neither username nor email", site)
		}
	}

	return nil
}
