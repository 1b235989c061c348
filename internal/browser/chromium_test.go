package browser

import (
	"database/sql"
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/patina/internal/config"
)

func TestChromiumEncoderFamily(t *testing.T) {
	enc := NewChromiumEncoder(rand.New(rand.NewSource(1)))
	assert.Equal(t, config.FamilyChromium, enc.Family())
}

func TestChromiumEncodeDistinctURLRollup(t *testing.T) {
	// Three github events (counts 1, 2, 1) plus one gmail event (count 5)
	// must yield two url rows, github aggregated to 4, and four visit rows.
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	events := []ActivityEvent{
		{URL: "https://github.com", Title: "GitHub", VisitTime: base, VisitCount: 1},
		{URL: "https://github.com", Title: "GitHub", VisitTime: base.Add(1 * time.Hour), VisitCount: 2},
		{URL: "https://gmail.com", Title: "Gmail", VisitTime: base.Add(2 * time.Hour), VisitCount: 5},
		{URL: "https://github.com", Title: "GitHub", VisitTime: base.Add(3 * time.Hour), VisitCount: 1},
	}

	dir := t.TempDir()
	enc := NewChromiumEncoder(rand.New(rand.NewSource(2)))
	paths, err := enc.Encode(events, nil, dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	db, err := sql.Open("sqlite3", filepath.Join(dir, "History"))
	require.NoError(t, err)
	defer db.Close()

	var urlRows int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM urls").Scan(&urlRows))
	assert.Equal(t, 2, urlRows)

	var githubCount int
	require.NoError(t, db.QueryRow(
		"SELECT visit_count FROM urls WHERE url = ?", "https://github.com",
	).Scan(&githubCount))
	assert.Equal(t, 4, githubCount)

	var visitRows int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM visits").Scan(&visitRows))
	assert.Equal(t, 4, visitRows)

	// Every visit row must reference an existing url row.
	var orphans int
	require.NoError(t, db.QueryRow(`
		SELECT COUNT(*) FROM visits v LEFT JOIN urls u ON v.url = u.id
		WHERE u.id IS NULL
	`).Scan(&orphans))
	assert.Zero(t, orphans)
}

func TestChromiumEncodeTimestampsAndAggregates(t *testing.T) {
	base := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	last := base.Add(48 * time.Hour)
	events := []ActivityEvent{
		{URL: "https://github.com/docs", Title: "GitHub", VisitTime: base, VisitCount: 10, TypedCount: 1},
		{URL: "https://github.com/docs", Title: "GitHub", VisitTime: last, VisitCount: 10, TypedCount: 1},
	}

	dir := t.TempDir()
	enc := NewChromiumEncoder(rand.New(rand.NewSource(3)))
	_, err := enc.Encode(events, nil, dir)
	require.NoError(t, err)

	db, err := sql.Open("sqlite3", filepath.Join(dir, "History"))
	require.NoError(t, err)
	defer db.Close()

	var visitCount, typedCount int
	var lastVisit int64
	require.NoError(t, db.QueryRow(
		"SELECT visit_count, typed_count, last_visit_time FROM urls WHERE url = ?",
		"https://github.com/docs",
	).Scan(&visitCount, &typedCount, &lastVisit))

	assert.Equal(t, 20, visitCount)
	assert.Equal(t, 2, typedCount)
	assert.Equal(t, ChromiumMicros(last), lastVisit, "last_visit_time is the max visit in 1601-epoch micros")

	// Visit rows carry the per-event timestamp plus schema constants.
	rows, err := db.Query("SELECT visit_time, from_visit, transition, visit_duration FROM visits ORDER BY id")
	require.NoError(t, err)
	defer rows.Close()

	var seen int
	for rows.Next() {
		var visitTime, duration int64
		var fromVisit, transition int
		require.NoError(t, rows.Scan(&visitTime, &fromVisit, &transition, &duration))
		assert.Equal(t, ChromiumMicros(events[seen].VisitTime), visitTime)
		assert.Zero(t, fromVisit)
		assert.Equal(t, chromiumTransitionLink, transition)
		assert.GreaterOrEqual(t, duration, int64(5*1000000))
		assert.LessOrEqual(t, duration, int64(180*1000000))
		seen++
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, len(events), seen)
}

func TestChromiumEncodeRecreatesStore(t *testing.T) {
	dir := t.TempDir()
	enc := NewChromiumEncoder(rand.New(rand.NewSource(4)))
	now := time.Date(2024, 5, 5, 5, 0, 0, 0, time.UTC)

	first := []ActivityEvent{
		{URL: "https://old.example", Title: "Old", VisitTime: now, VisitCount: 3},
		{URL: "https://stale.example", Title: "Stale", VisitTime: now, VisitCount: 1},
	}
	_, err := enc.Encode(first, nil, dir)
	require.NoError(t, err)

	second := []ActivityEvent{
		{URL: "https://fresh.example", Title: "Fresh", VisitTime: now, VisitCount: 2},
	}
	_, err = enc.Encode(second, nil, dir)
	require.NoError(t, err)

	db, err := sql.Open("sqlite3", filepath.Join(dir, "History"))
	require.NoError(t, err)
	defer db.Close()

	// Only the second run's rows survive.
	var urlRows int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM urls").Scan(&urlRows))
	assert.Equal(t, 1, urlRows)

	var gone int
	require.NoError(t, db.QueryRow(
		"SELECT COUNT(*) FROM urls WHERE url LIKE ?", "%old.example%",
	).Scan(&gone))
	assert.Zero(t, gone)
}

func TestChromiumEncodeLoginData(t *testing.T) {
	created := time.Date(2023, 11, 20, 14, 30, 0, 0, time.UTC)
	creds := []CredentialRecord{
		{Site: "github.com", Principal: "jmathew", Secret: "hunter2", Created: created, TimesUsed: 42},
	}

	dir := t.TempDir()
	enc := NewChromiumEncoder(rand.New(rand.NewSource(5)))
	paths, err := enc.Encode(nil, creds, dir)
	require.NoError(t, err)
	assert.Contains(t, paths, filepath.Join(dir, "Login Data.json"))

	data, err := os.ReadFile(filepath.Join(dir, "Login Data.json"))
	require.NoError(t, err)

	var logins []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &logins))
	require.Len(t, logins, 1)

	entry := logins[0]
	assert.Equal(t, "https://github.com", entry["origin_url"])
	assert.Equal(t, "jmathew", entry["username"])
	assert.Equal(t, "hunter2", entry["password"])
	assert.Equal(t, "2023-11-20T14:30:00Z", entry["date_created"])
	assert.Equal(t, float64(42), entry["times_used"])
}

func TestChromiumEncodeEmptyTimeline(t *testing.T) {
	dir := t.TempDir()
	enc := NewChromiumEncoder(rand.New(rand.NewSource(6)))

	paths, err := enc.Encode(nil, nil, dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	db, err := sql.Open("sqlite3", filepath.Join(dir, "History"))
	require.NoError(t, err)
	defer db.Close()

	var urlRows int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM urls").Scan(&urlRows))
	assert.Zero(t, urlRows)
}

func TestRollupEventsFirstSeenOrder(t *testing.T) {
	now := time.Now()
	events := []ActivityEvent{
		{URL: "https://b.example", Title: "B", VisitTime: now, VisitCount: 1},
		{URL: "https://a.example", Title: "A", VisitTime: now, VisitCount: 1},
		{URL: "https://b.example", Title: "B", VisitTime: now.Add(time.Hour), VisitCount: 2, TypedCount: 1},
	}

	rollups := rollupEvents(events)
	require.Len(t, rollups, 2)
	assert.Equal(t, "https://b.example", rollups[0].url)
	assert.Equal(t, "https://a.example", rollups[1].url)
	assert.Equal(t, 3, rollups[0].visits)
	assert.Equal(t, 1, rollups[0].typed)
	assert.Equal(t, now.Add(time.Hour), rollups[0].lastVisit)
}
