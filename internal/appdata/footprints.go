package appdata

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/runnerr0/patina/internal/config"
	"github.com/runnerr0/patina/internal/layout"
	"github.com/runnerr0/patina/internal/randutil"
)

// writeFootprints creates the install directory for every application
// under Program Files, plus its roaming profile with a usage log, so the
// tree looks like software actually ran here.
func writeFootprints(id config.Identity, profiles []appProfile, rng *rand.Rand, now time.Time, tree layout.Tree) ([]string, error) {
	var written []string

	for _, p := range profiles {
		safeName := strings.ReplaceAll(p.name, " ", "_")
		installDir := filepath.Join(tree.ProgramFiles(), safeName)

		logPath := filepath.Join(installDir, "install.log")
		logText := fmt.Sprintf("%s installation log\nVersion: %s\nInstalled: %s\nLast Launched: %s\nStatus: Completed successfully\n",
			p.name, p.version,
			p.installDate.Format("2006-01-02 15:04:05"),
			p.lastUsed.Format("2006-01-02 15:04:05"))
		if err := layout.WriteString(logPath, logText); err != nil {
			return nil, err
		}
		written = append(written, logPath)

		iniPath := filepath.Join(installDir, "config.ini")
		iniText := fmt.Sprintf("[General]\ninstall_path=%s\nuser=%s\nauto_update=true\nlast_update_check=%s\n",
			installDir, id.Name, now.Format("2006-01-02"))
		if err := layout.WriteString(iniPath, iniText); err != nil {
			return nil, err
		}
		written = append(written, iniPath)

		usagePath := filepath.Join(tree.AppDataRoaming(), safeName, "usage.log")
		usageText := fmt.Sprintf("App: %s\nSessions this month: %d\nLast used: %s\nRecent files opened: cache.db; settings.json; preferences.xml\n",
			p.name, randutil.Between(rng, 3, 40), p.lastUsed.Format("2006-01-02 15:04:05"))
		if err := layout.WriteString(usagePath, usageText); err != nil {
			return nil, err
		}
		written = append(written, usagePath)
	}

	return written, nil
}
