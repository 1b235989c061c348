package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/runnerr0/patina/internal/layout"
	"github.com/runnerr0/patina/internal/populate"
)

// Execute implements the go-flags Commander interface for WipeCommand.
func (c *WipeCommand) Execute(args []string) error {
	if c.Root == "" {
		return fmt.Errorf("--root is required for wipe command")
	}
	if !c.All {
		return fmt.Errorf("wipe requires --all flag for safety")
	}

	root, err := filepath.Abs(c.Root)
	if err != nil {
		return fmt.Errorf("resolve root: %w", err)
	}
	if err := guardRoot(root); err != nil {
		return err
	}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return fmt.Errorf("root %s does not exist", root)
	}

	// Confirmation prompt unless --force
	if !c.Force {
		fmt.Println("⚠ WARNING: This will permanently delete the synthetic environment under:")
		fmt.Printf("  %s\n", root)
		fmt.Println()
		fmt.Println("Removed: Desktop, Documents, Downloads, Pictures, Music, Videos,")
		fmt.Println("AppData, Program Files, and the run manifest.")
		fmt.Println()
		fmt.Println("This action cannot be undone.")
		fmt.Println()
		fmt.Print(`Type "WIPE" to confirm: `)

		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			return fmt.Errorf("aborted: no input received")
		}
		input := strings.TrimSpace(scanner.Text())
		if input != "WIPE" {
			return fmt.Errorf("aborted: confirmation text did not match")
		}
	}

	removed := 0
	for _, target := range wipeTargets(layout.New(root)) {
		if _, err := os.Stat(target); os.IsNotExist(err) {
			continue
		}
		if err := os.RemoveAll(target); err != nil {
			return fmt.Errorf("remove %s: %w", target, err)
		}
		removed++
	}

	fmt.Printf("Wiped %d entries under %s.\n", removed, root)
	return nil
}

// wipeTargets lists everything a population run creates under a root. The
// root directory itself is left in place.
func wipeTargets(tree layout.Tree) []string {
	return []string{
		tree.Desktop(),
		tree.Documents(),
		tree.Downloads(),
		tree.Pictures(),
		tree.Music(),
		tree.Videos(),
		filepath.Join(tree.Root(), "AppData"),
		tree.ProgramFiles(),
		filepath.Join(tree.Root(), populate.ManifestName),
	}
}

// guardRoot refuses roots whose deletion would reach far outside a
// sandbox tree.
func guardRoot(root string) error {
	if root == string(filepath.Separator) {
		return fmt.Errorf("refusing to wipe filesystem root")
	}
	if home, err := os.UserHomeDir(); err == nil && root == home {
		return fmt.Errorf("refusing to wipe home directory")
	}
	return nil
}
