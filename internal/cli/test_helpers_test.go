package cli

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/runnerr0/patina/internal/config"
)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// testConfig is the default config shrunk for fast full-pipeline runs.
func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Browsers = []config.BrowserConfig{
		{Name: "chrome", Label: "Google Chrome", Family: config.FamilyChromium, Profile: "Default", HistoryEvents: 10},
		{Name: "firefox", Label: "Mozilla Firefox", Family: config.FamilyGecko, Profile: "default-release", HistoryEvents: 8},
	}
	cfg.Applications = cfg.Applications[:2]
	cfg.Documents.Photos = 2
	return cfg
}
