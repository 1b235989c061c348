package cli

import (
	"fmt"
	"strings"

	"github.com/runnerr0/patina/internal/config"
)

// loadConfig resolves the active configuration. --config points at a YAML
// file that is scaffolded with defaults on first use; without the flag the
// default path under ~/.config/fabric/patina applies.
func loadConfig(globals *GlobalFlags) (*config.Config, error) {
	path := ""
	if globals != nil {
		path = globals.Config
	}

	var (
		cfg *config.Config
		err error
	)
	if path == "" {
		cfg, err = config.LoadOrCreate()
	} else {
		cfg, err = config.LoadOrCreateAt(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// formatNumber formats an int64 with comma separators.
func formatNumber(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
		if len(s) > remainder {
			result.WriteString(",")
		}
	}
	for i := remainder; i < len(s); i += 3 {
		if i > remainder {
			result.WriteString(",")
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
