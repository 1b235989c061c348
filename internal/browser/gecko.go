package browser

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/runnerr0/patina/internal/config"
	"github.com/runnerr0/patina/internal/layout"
)

// Visit type Gecko records for a followed link.
const geckoVisitTypeLink = 1

// Frecency is Gecko's ranking score; the synthesized value is a plain
// multiple of the aggregate visit count.
const frecencyPerVisit = 100

// GeckoEncoder writes the places.sqlite database and logins.json sidecar
// used by Gecko-derived browsers (Firefox). It implements Encoder.
type GeckoEncoder struct{}

// NewGeckoEncoder returns a Gecko-family encoder.
func NewGeckoEncoder() *GeckoEncoder {
	return &GeckoEncoder{}
}

// Family reports the browser family this encoder serves.
func (e *GeckoEncoder) Family() string {
	return config.FamilyGecko
}

// reverseHost builds the moz_places rev_host value: the URL's host with
// its dot-separated labels reversed, so "news.example.com" becomes
// "com.example.news". Unparseable URLs yield an empty string.
func reverseHost(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := u.Hostname()
	if host == "" {
		return ""
	}
	labels := strings.Split(host, ".")
	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
	}
	return strings.Join(labels, ".")
}

// Encode writes places.sqlite and logins.json under profileDir,
// recreating both from scratch. It returns the written paths.
func (e *GeckoEncoder) Encode(events []ActivityEvent, creds []CredentialRecord, profileDir string) ([]string, error) {
	if err := layout.EnsureDir(profileDir); err != nil {
		return nil, err
	}

	placesPath := filepath.Join(profileDir, "places.sqlite")
	if err := writePlacesDB(events, placesPath); err != nil {
		return nil, err
	}

	loginPath, err := writeGeckoLogins(creds, profileDir)
	if err != nil {
		return nil, err
	}

	return []string{placesPath, loginPath}, nil
}

// writePlacesDB recreates the places database at dbPath. Any existing
// file is removed first so reruns never merge with stale rows.
func writePlacesDB(events []ActivityEvent, dbPath string) error {
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stale places db: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("open places db: %w", err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmts := []string{
		// ── Schema ──────────────────────────────────────────────

		`CREATE TABLE IF NOT EXISTS moz_places (
			id INTEGER PRIMARY KEY,
			url LONGVARCHAR,
			title LONGVARCHAR,
			rev_host TEXT,
			visit_count INTEGER,
			hidden INTEGER DEFAULT 0,
			typed INTEGER DEFAULT 0,
			frecency INTEGER DEFAULT 0,
			last_visit_date INTEGER
		)`,

		`CREATE TABLE IF NOT EXISTS moz_historyvisits (
			id INTEGER PRIMARY KEY,
			from_visit INTEGER,
			place_id INTEGER,
			visit_date INTEGER,
			visit_type INTEGER,
			session INTEGER
		)`,
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	insertPlace, err := tx.Prepare(`
		INSERT INTO moz_places (id, url, title, rev_host, visit_count, typed, frecency, last_visit_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare places insert: %w", err)
	}
	defer insertPlace.Close()

	insertVisit, err := tx.Prepare(`
		INSERT INTO moz_historyvisits (id, from_visit, place_id, visit_date, visit_type, session)
		VALUES (?, 0, ?, ?, ?, 0)
	`)
	if err != nil {
		return fmt.Errorf("prepare visits insert: %w", err)
	}
	defer insertVisit.Close()

	rollups := rollupEvents(events)
	placeIDs := make(map[string]int, len(rollups))
	for i, r := range rollups {
		id := i + 1
		placeIDs[r.url] = id

		// Gecko keeps typed as a flag, not a counter.
		typed := 0
		if r.typed > 0 {
			typed = 1
		}

		_, err := insertPlace.Exec(
			id, r.url, r.title, reverseHost(r.url),
			r.visits, typed, r.visits*frecencyPerVisit, GeckoMicros(r.lastVisit),
		)
		if err != nil {
			return fmt.Errorf("insert place row: %w", err)
		}
	}

	for i, ev := range events {
		_, err := insertVisit.Exec(i+1, placeIDs[ev.URL], GeckoMicros(ev.VisitTime), geckoVisitTypeLink)
		if err != nil {
			return fmt.Errorf("insert visit row: %w", err)
		}
	}

	return tx.Commit()
}

type geckoLoginJSON struct {
	ID                  int     `json:"id"`
	Hostname            string  `json:"hostname"`
	HTTPRealm           *string `json:"httpRealm"`
	FormSubmitURL       string  `json:"formSubmitURL"`
	UsernameField       string  `json:"usernameField"`
	PasswordField       string  `json:"passwordField"`
	EncryptedUsername   string  `json:"encryptedUsername"`
	EncryptedPassword   string  `json:"encryptedPassword"`
	TimeCreated         int64   `json:"timeCreated"`
	TimePasswordChanged int64   `json:"timePasswordChanged"`
	TimesUsed           int     `json:"timesUsed"`
}

type geckoLoginsFile struct {
	NextID int              `json:"nextId"`
	Logins []geckoLoginJSON `json:"logins"`
}

// writeGeckoLogins writes the logins.json export and returns its path.
// Secrets are stored as-is; nothing here performs real NSS encryption.
func writeGeckoLogins(creds []CredentialRecord, profileDir string) (string, error) {
	doc := geckoLoginsFile{
		NextID: len(creds) + 1,
		Logins: make([]geckoLoginJSON, 0, len(creds)),
	}
	for i, c := range creds {
		hostname := "https://" + c.Site
		doc.Logins = append(doc.Logins, geckoLoginJSON{
			ID:                  i + 1,
			Hostname:            hostname,
			FormSubmitURL:       hostname,
			UsernameField:       "username",
			PasswordField:       "password",
			EncryptedUsername:   c.Principal,
			EncryptedPassword:   c.Secret,
			TimeCreated:         GeckoMicros(c.Created),
			TimePasswordChanged: GeckoMicros(c.Created),
			TimesUsed:           c.TimesUsed,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal logins: %w", err)
	}

	path := filepath.Join(profileDir, "logins.json")
	if err := layout.WriteFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}
