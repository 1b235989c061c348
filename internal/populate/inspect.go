package populate

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/runnerr0/patina/internal/browser"
	"github.com/runnerr0/patina/internal/config"
	"github.com/runnerr0/patina/internal/layout"
)

// BrowserStatus reports the on-disk artifacts found for one configured
// browser: profile store presence and row counts, plus the sidecar and
// digest files its pipeline writes.
type BrowserStatus struct {
	Name         string
	Family       string
	ProfileDir   string
	StoreFound   bool
	URLRows      int64
	VisitRows    int64
	LoginsFound  bool
	CookiesFound bool
	SummaryFound bool
}

// ManifestInfo is the parsed header of a run manifest.
type ManifestInfo struct {
	RunID     string
	Seed      int64
	Generated string
}

// TreeStatus is the result of inspecting a populated root.
type TreeStatus struct {
	Root     string
	Manifest *ManifestInfo
	Browsers []BrowserStatus
}

// Inspect examines a populated tree without modifying it: manifest header,
// and per-browser store row counts read back through the SQLite driver.
// A missing store is reported as absent; an unreadable one is an error.
func Inspect(cfg *config.Config, tree layout.Tree) (*TreeStatus, error) {
	st := &TreeStatus{
		Root:     tree.Root(),
		Manifest: readManifestInfo(filepath.Join(tree.Root(), ManifestName)),
	}

	for _, bc := range cfg.Browsers {
		profileDir := browser.ProfileDir(tree, bc, cfg.Identity.Username)
		bs := BrowserStatus{Name: bc.Name, Family: bc.Family, ProfileDir: profileDir}

		storeName, urlTable, visitTable := storeSchema(bc.Family)
		storePath := filepath.Join(profileDir, storeName)
		if fileExists(storePath) {
			bs.StoreFound = true
			urls, visits, err := readStoreCounts(storePath, urlTable, visitTable)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", bc.Name, err)
			}
			bs.URLRows, bs.VisitRows = urls, visits
		}

		loginName := "Login Data.json"
		if bc.Family == config.FamilyGecko {
			loginName = "logins.json"
		}
		bs.LoginsFound = fileExists(filepath.Join(profileDir, loginName))
		bs.CookiesFound = fileExists(filepath.Join(profileDir, "Cookies.json"))
		bs.SummaryFound = fileExists(filepath.Join(browser.SummaryDir(tree, bc), "History_Summary.txt"))

		st.Browsers = append(st.Browsers, bs)
	}

	return st, nil
}

// storeSchema maps a browser family to its history store filename and the
// tables holding page and visit rows.
func storeSchema(family string) (file, urlTable, visitTable string) {
	if family == config.FamilyGecko {
		return "places.sqlite", "moz_places", "moz_historyvisits"
	}
	return "History", "urls", "visits"
}

// readStoreCounts opens a history store read-only and counts its rows.
func readStoreCounts(path, urlTable, visitTable string) (int64, int64, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return 0, 0, fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	var urls, visits int64
	if err := db.QueryRow("SELECT COUNT(*) FROM " + urlTable).Scan(&urls); err != nil {
		return 0, 0, fmt.Errorf("count %s: %w", urlTable, err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM " + visitTable).Scan(&visits); err != nil {
		return 0, 0, fmt.Errorf("count %s: %w", visitTable, err)
	}
	return urls, visits, nil
}

// readManifestInfo parses the manifest header lines. A missing or
// unreadable manifest yields nil rather than an error: an unpopulated
// tree is a normal thing to inspect.
func readManifestInfo(path string) *ManifestInfo {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	info := &ManifestInfo{}
	for _, line := range strings.Split(string(data), "\n") {
		if v, ok := strings.CutPrefix(line, "# Run ID: "); ok {
			info.RunID = v
		} else if v, ok := strings.CutPrefix(line, "# Seed: "); ok {
			info.Seed, _ = strconv.ParseInt(v, 10, 64)
		} else if v, ok := strings.CutPrefix(line, "# Generated: "); ok {
			info.Generated = v
		}
	}
	return info
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
