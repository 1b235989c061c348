// Package appdata fabricates the application footprint of the machine:
// inventory and license summaries in Downloads, installer binaries with a
// checksum manifest, per-application install directories, and usage logs.
// All generators share one metadata table so dates and versions agree
// across every artifact.
package appdata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/runnerr0/patina/internal/config"
	"github.com/runnerr0/patina/internal/layout"
	"github.com/runnerr0/patina/internal/randutil"
)

type appProfile struct {
	name        string
	version     string
	installDate time.Time
	lastUsed    time.Time
	sizeMB      int
}

// buildProfiles rolls consistent metadata for every installed application,
// in configuration order.
func buildProfiles(apps []string, rng *rand.Rand, now time.Time) []appProfile {
	profiles := make([]appProfile, 0, len(apps))
	for _, app := range apps {
		profiles = append(profiles, appProfile{
			name:        app,
			version:     fmt.Sprintf("%d.%d.%d", randutil.Between(rng, 1, 20), randutil.Between(rng, 0, 9), randutil.Between(rng, 0, 99)),
			installDate: randutil.DaysAgo(rng, now, 30, 1000),
			lastUsed:    randutil.DaysAgo(rng, now, 0, 30),
			sizeMB:      randutil.Between(rng, 50, 2000),
		})
	}
	return profiles
}

// Generate writes every application artifact and returns the written paths.
func Generate(cfg *config.Config, tree layout.Tree, rng *rand.Rand, now time.Time) ([]string, error) {
	profiles := buildProfiles(cfg.Applications, rng, now)
	id := cfg.Identity

	var written []string

	inventoryFiles, err := writeInventory(id, profiles, rng, now, tree.Downloads())
	if err != nil {
		return nil, err
	}
	written = append(written, inventoryFiles...)

	footprintFiles, err := writeFootprints(id, profiles, rng, now, tree)
	if err != nil {
		return nil, err
	}
	written = append(written, footprintFiles...)

	installerFiles, err := writeInstallers(profiles, rng, tree.Downloads())
	if err != nil {
		return nil, err
	}
	written = append(written, installerFiles...)

	downloadFiles, err := writeDownloadArtifacts(id, rng, now, tree.Downloads())
	if err != nil {
		return nil, err
	}
	written = append(written, downloadFiles...)

	usagePath, err := writeUsageHistory(id, profiles, rng, now, tree.Downloads())
	if err != nil {
		return nil, err
	}
	written = append(written, usagePath)

	return written, nil
}

// stubBinary returns a placeholder Windows executable image: the MZ magic
// followed by random padding so each file has a distinct checksum.
func stubBinary(rng *rand.Rand, sizeKB int) []byte {
	if sizeKB < 32 {
		sizeKB = 32
	}
	buf := make([]byte, sizeKB*1024)
	rng.Read(buf)
	buf[0], buf[1] = 'M', 'Z'
	return buf
}

func writeStub(path string, rng *rand.Rand, sizeKB int) error {
	return layout.WriteFile(path, stubBinary(rng, sizeKB))
}
