package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/runnerr0/patina/internal/config"
	"github.com/runnerr0/patina/internal/layout"
	"github.com/runnerr0/patina/internal/populate"
)

// statusJSON is the JSON output structure for the status command.
type statusJSON struct {
	Version  string              `json:"version"`
	Root     string              `json:"root"`
	Manifest *manifestJSON       `json:"manifest,omitempty"`
	Browsers []browserStatusJSON `json:"browsers"`
}

type manifestJSON struct {
	RunID     string `json:"run_id"`
	Seed      int64  `json:"seed"`
	Generated string `json:"generated"`
}

type browserStatusJSON struct {
	Name       string `json:"name"`
	Family     string `json:"family"`
	StoreFound bool   `json:"store_found"`
	URLRows    int64  `json:"url_rows"`
	VisitRows  int64  `json:"visit_rows"`
	Logins     bool   `json:"logins"`
	Cookies    bool   `json:"cookies"`
	Summary    bool   `json:"summary"`
}

// Execute implements the go-flags Commander interface for StatusCommand.
func (c *StatusCommand) Execute(args []string) error {
	if c.Root == "" {
		return fmt.Errorf("--root is required for status command")
	}

	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}

	return c.executeWithConfig(cfg)
}

// executeWithConfig inspects the tree against a provided config (for testing).
func (c *StatusCommand) executeWithConfig(cfg *config.Config) error {
	st, err := populate.Inspect(cfg, layout.New(c.Root))
	if err != nil {
		return fmt.Errorf("inspect tree: %w", err)
	}

	if c.JSON {
		return c.printJSON(st)
	}
	return c.printHuman(st)
}

func (c *StatusCommand) printHuman(st *populate.TreeStatus) error {
	fmt.Println("Patina Status")
	fmt.Println("=============")
	fmt.Printf("Version:   %s\n", c.version)
	fmt.Printf("Root:      %s\n", st.Root)
	if st.Manifest != nil {
		fmt.Printf("Manifest:  run %s (seed %d, generated %s)\n",
			st.Manifest.RunID, st.Manifest.Seed, st.Manifest.Generated)
	} else {
		fmt.Println("Manifest:  not found")
	}

	fmt.Println()
	fmt.Println("Browsers:")
	for _, bs := range st.Browsers {
		fmt.Printf("  %-10s %-9s %s\n", bs.Name, bs.Family, describeBrowser(bs))
	}

	return nil
}

// describeBrowser renders one browser's artifact health as a single line.
func describeBrowser(bs populate.BrowserStatus) string {
	if !bs.StoreFound {
		return "store not found"
	}
	return fmt.Sprintf("%s urls, %s visits; logins %s; cookies %s; summary %s",
		formatNumber(bs.URLRows), formatNumber(bs.VisitRows),
		presence(bs.LoginsFound), presence(bs.CookiesFound), presence(bs.SummaryFound))
}

func presence(found bool) string {
	if found {
		return "yes"
	}
	return "no"
}

func (c *StatusCommand) printJSON(st *populate.TreeStatus) error {
	out := statusJSON{
		Version:  c.version,
		Root:     st.Root,
		Browsers: make([]browserStatusJSON, len(st.Browsers)),
	}
	if st.Manifest != nil {
		out.Manifest = &manifestJSON{
			RunID:     st.Manifest.RunID,
			Seed:      st.Manifest.Seed,
			Generated: st.Manifest.Generated,
		}
	}
	for i, bs := range st.Browsers {
		out.Browsers[i] = browserStatusJSON{
			Name:       bs.Name,
			Family:     bs.Family,
			StoreFound: bs.StoreFound,
			URLRows:    bs.URLRows,
			VisitRows:  bs.VisitRows,
			Logins:     bs.LoginsFound,
			Cookies:    bs.CookiesFound,
			Summary:    bs.SummaryFound,
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
