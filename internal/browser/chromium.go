package browser

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/runnerr0/patina/internal/config"
	"github.com/runnerr0/patina/internal/layout"
	"github.com/runnerr0/patina/internal/randutil"
)

// Transition value Chromium records for a plain link click
// (CORE_PAGE_TRANSITION_LINK with qualifier bits).
const chromiumTransitionLink = 805306368

// Visit dwell time bounds in seconds, stored in the visits table as
// microseconds.
const (
	visitDurationMinSeconds = 5
	visitDurationMaxSeconds = 180
)

// ChromiumEncoder writes the History database and Login Data sidecar used
// by Chromium-derived browsers (Chrome, Edge). It implements Encoder.
type ChromiumEncoder struct {
	rng *rand.Rand
}

// NewChromiumEncoder returns an encoder drawing visit durations from rng.
func NewChromiumEncoder(rng *rand.Rand) *ChromiumEncoder {
	return &ChromiumEncoder{rng: rng}
}

// Family reports the browser family this encoder serves.
func (e *ChromiumEncoder) Family() string {
	return config.FamilyChromium
}

// urlRollup is the per-distinct-URL aggregate backing one urls row.
// Counts are recomputed from the event list so the store can never
// disagree with the timeline that produced it.
type urlRollup struct {
	url       string
	title     string
	visits    int
	typed     int
	lastVisit time.Time
}

// rollupEvents folds a timeline into one rollup per distinct URL,
// preserving first-seen order. Visit and typed counts are summed across
// events; the last-visit time is the maximum.
func rollupEvents(events []ActivityEvent) []urlRollup {
	index := make(map[string]int, len(events))
	rollups := make([]urlRollup, 0, len(events))
	for _, ev := range events {
		i, ok := index[ev.URL]
		if !ok {
			index[ev.URL] = len(rollups)
			rollups = append(rollups, urlRollup{url: ev.URL, title: ev.Title})
			i = len(rollups) - 1
		}
		r := &rollups[i]
		r.visits += ev.VisitCount
		r.typed += ev.TypedCount
		if ev.VisitTime.After(r.lastVisit) {
			r.lastVisit = ev.VisitTime
		}
	}
	return rollups
}

// Encode writes the History SQLite database and the Login Data.json
// sidecar under profileDir, recreating both from scratch. It returns the
// written paths.
func (e *ChromiumEncoder) Encode(events []ActivityEvent, creds []CredentialRecord, profileDir string) ([]string, error) {
	if err := layout.EnsureDir(profileDir); err != nil {
		return nil, err
	}

	historyPath := filepath.Join(profileDir, "History")
	if err := e.writeHistoryDB(events, historyPath); err != nil {
		return nil, err
	}

	loginPath, err := writeChromiumLogins(creds, profileDir)
	if err != nil {
		return nil, err
	}

	return []string{historyPath, loginPath}, nil
}

// writeHistoryDB recreates the History database at dbPath. Any existing
// file is removed first so reruns never merge with stale rows.
func (e *ChromiumEncoder) writeHistoryDB(events []ActivityEvent, dbPath string) error {
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stale history db: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("open history db: %w", err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmts := []string{
		// ── Schema ──────────────────────────────────────────────

		`CREATE TABLE IF NOT EXISTS urls (
			id INTEGER PRIMARY KEY,
			url LONGVARCHAR,
			title LONGVARCHAR,
			visit_count INTEGER,
			typed_count INTEGER,
			last_visit_time INTEGER,
			hidden INTEGER DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS visits (
			id INTEGER PRIMARY KEY,
			url INTEGER NOT NULL,
			visit_time INTEGER,
			from_visit INTEGER DEFAULT 0,
			transition INTEGER DEFAULT 805306368,
			segment_id INTEGER,
			visit_duration INTEGER DEFAULT 0
		)`,
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	insertURL, err := tx.Prepare(`
		INSERT INTO urls (id, url, title, visit_count, typed_count, last_visit_time, hidden)
		VALUES (?, ?, ?, ?, ?, ?, 0)
	`)
	if err != nil {
		return fmt.Errorf("prepare urls insert: %w", err)
	}
	defer insertURL.Close()

	insertVisit, err := tx.Prepare(`
		INSERT INTO visits (id, url, visit_time, from_visit, transition, segment_id, visit_duration)
		VALUES (?, ?, ?, 0, ?, NULL, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare visits insert: %w", err)
	}
	defer insertVisit.Close()

	rollups := rollupEvents(events)
	urlIDs := make(map[string]int, len(rollups))
	for i, r := range rollups {
		id := i + 1
		urlIDs[r.url] = id
		_, err := insertURL.Exec(id, r.url, r.title, r.visits, r.typed, ChromiumMicros(r.lastVisit))
		if err != nil {
			return fmt.Errorf("insert url row: %w", err)
		}
	}

	for i, ev := range events {
		duration := int64(randutil.Between(e.rng, visitDurationMinSeconds, visitDurationMaxSeconds)) * 1000000
		_, err := insertVisit.Exec(i+1, urlIDs[ev.URL], ChromiumMicros(ev.VisitTime), chromiumTransitionLink, duration)
		if err != nil {
			return fmt.Errorf("insert visit row: %w", err)
		}
	}

	return tx.Commit()
}

type chromiumLoginJSON struct {
	OriginURL   string `json:"origin_url"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	DateCreated string `json:"date_created"`
	TimesUsed   int    `json:"times_used"`
}

// writeChromiumLogins writes the flat Login Data.json export and returns
// its path.
func writeChromiumLogins(creds []CredentialRecord, profileDir string) (string, error) {
	entries := make([]chromiumLoginJSON, 0, len(creds))
	for _, c := range creds {
		entries = append(entries, chromiumLoginJSON{
			OriginURL:   "https://" + c.Site,
			Username:    c.Principal,
			Password:    c.Secret,
			DateCreated: c.Created.Format(time.RFC3339),
			TimesUsed:   c.TimesUsed,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal logins: %w", err)
	}

	path := filepath.Join(profileDir, "Login Data.json")
	if err := layout.WriteFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}
