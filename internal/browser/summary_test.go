package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHistorySummary(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2024, 7, 1, 14, 30, 0, 0, time.UTC)
	events := []ActivityEvent{
		{URL: "https://github.com", Title: "GitHub: Where the world builds software", VisitTime: base, VisitCount: 3},
		{URL: "https://reddit.com/about", Title: "Reddit - Dive into anything", VisitTime: base.Add(time.Hour), VisitCount: 1},
	}

	path, err := WriteHistorySummary("Google Chrome", "John Mathew", events, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "History_Summary.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.True(t, strings.HasPrefix(content,
		"# Google Chrome Browsing History Summary\n# User: John Mathew\n# Generated for sandbox realism\n\n"))
	assert.Contains(t, content, "[2024-07-01 14:30:00] GitHub: Where the world builds software\n")
	assert.Contains(t, content, "  URL: https://github.com\n")
	assert.Contains(t, content, "  Visits: 3\n")
	assert.Contains(t, content, "[2024-07-01 15:30:00] Reddit - Dive into anything\n")
}

func TestWriteHistorySummaryKeepsTail(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	events := make([]ActivityEvent, 0, 80)
	for i := 0; i < 80; i++ {
		events = append(events, ActivityEvent{
			URL:        fmt.Sprintf("https://site%02d.example", i),
			Title:      fmt.Sprintf("Site %02d", i),
			VisitTime:  base.Add(time.Duration(i) * time.Hour),
			VisitCount: 1,
		})
	}

	path, err := WriteHistorySummary("Mozilla Firefox", "John Mathew", events, dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	// Only the 50 most recent entries survive.
	assert.Equal(t, historySummaryMaxEntries, strings.Count(content, "URL: "))
	assert.NotContains(t, content, "https://site29.example")
	assert.Contains(t, content, "https://site30.example")
	assert.Contains(t, content, "https://site79.example")
}

func TestWritePasswordSummaryStyles(t *testing.T) {
	created := time.Date(2023, 12, 24, 18, 45, 30, 0, time.UTC)
	creds := []CredentialRecord{
		{Site: "github.com", Principal: "jmathew", Secret: "pw", Created: created, TimesUsed: 9},
	}

	tests := []struct {
		name     string
		label    string
		fileName string
		want     []string
	}{
		{
			name: "chrome", label: "Google Chrome", fileName: "Saved_Passwords.txt",
			want: []string{
				"# Google Chrome - Saved Passwords (summary)",
				"Total saved passwords: 1",
				"Website: https://github.com",
				"Created: 2023-12-24",
				"Times Used: 9",
			},
		},
		{
			name: "firefox", label: "Mozilla Firefox", fileName: "Saved_Passwords_Firefox.txt",
			want: []string{
				"# Mozilla Firefox - Saved Passwords (summary)",
				"Total saved logins: 1",
				"Site: https://github.com",
				"Date Created: 2023-12-24 18:45:30",
				"Used 9 times",
			},
		},
		{
			name: "edge", label: "Microsoft Edge", fileName: "Saved_Passwords_Edge.txt",
			want: []string{
				"# Microsoft Edge - Saved Passwords (summary)",
				"Total passwords saved: 1",
				"URL: https://github.com",
				"Created: 2023-12-24",
				"Usage Count: 9",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path, err := WritePasswordSummary(tt.name, tt.label, "John Mathew", "john.mathew@beingMalicious.com", creds, dir)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tt.fileName), path)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			content := string(data)

			assert.Contains(t, content, "# User: John Mathew (john.mathew@beingMalicious.com)")
			assert.Contains(t, content, "# WARNING: FAKE credentials for sandbox analysis")
			assert.Contains(t, content, "Username: jmathew")
			assert.Contains(t, content, "Password: pw")
			assert.Contains(t, content, strings.Repeat("=", 70))
			assert.Contains(t, content, strings.Repeat("-", 70))
			for _, want := range tt.want {
				assert.Contains(t, content, want)
			}
		})
	}
}

func TestWritePasswordSummaryUnknownBrowser(t *testing.T) {
	dir := t.TempDir()
	path, err := WritePasswordSummary("brave", "Brave", "John Mathew", "jm@example.com", nil, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Saved_Passwords_Brave.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Total saved passwords: 0")
}

func TestWriteCookieInfo(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 8, 15, 11, 22, 33, 0, time.UTC)
	cookies := []CookieRecord{
		{
			Domain:      ".netflix.com",
			Name:        "auth_token",
			Description: "Authentication token",
			Value:       "v4lu3",
			Expires:     now.AddDate(0, 0, 365),
			Secure:      true,
			HTTPOnly:    true,
		},
	}

	path, err := WriteCookieInfo("Microsoft Edge", "John Mathew", cookies, now, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Cookies_Info.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "# Microsoft Edge - Cookies Information\n")
	assert.Contains(t, content, "# User: John Mathew\n")
	assert.Contains(t, content, "# Generated: 2024-08-15 11:22:33\n")
	assert.Contains(t, content, "Common cookies stored:\n")
	assert.Contains(t, content, "Domain: .netflix.com\n")
	assert.Contains(t, content, "  Cookie: auth_token\n")
	assert.Contains(t, content, "  Description: Authentication token\n")
	assert.Contains(t, content, "  Value: v4lu3\n")
	assert.Contains(t, content, "  Expires: 2025-08-15\n")
	assert.Contains(t, content, "  Secure: Yes\n")
	assert.Contains(t, content, "  HttpOnly: Yes\n")
}
