// Package layout models the Windows-convention directory tree that a
// populated user environment lives in. All generators resolve output
// locations through a Tree so one run stays inside one root.
package layout

import (
	"fmt"
	"os"
	"path/filepath"
)

// Tree is the set of well-known user directories under a single root.
type Tree struct {
	root string
}

// New returns a Tree rooted at the given directory. The directory does not
// need to exist yet.
func New(root string) Tree {
	return Tree{root: root}
}

func (t Tree) Root() string           { return t.root }
func (t Tree) Desktop() string        { return filepath.Join(t.root, "Desktop") }
func (t Tree) Documents() string      { return filepath.Join(t.root, "Documents") }
func (t Tree) Downloads() string      { return filepath.Join(t.root, "Downloads") }
func (t Tree) Pictures() string       { return filepath.Join(t.root, "Pictures") }
func (t Tree) Music() string          { return filepath.Join(t.root, "Music") }
func (t Tree) Videos() string         { return filepath.Join(t.root, "Videos") }
func (t Tree) AppDataLocal() string   { return filepath.Join(t.root, "AppData", "Local") }
func (t Tree) AppDataRoaming() string { return filepath.Join(t.root, "AppData", "Roaming") }
func (t Tree) ProgramFiles() string   { return filepath.Join(t.root, "Program Files") }

// EnsureBase creates the standard user directories.
func (t Tree) EnsureBase() error {
	dirs := []string{
		t.Desktop(), t.Documents(), t.Downloads(), t.Pictures(),
		t.Music(), t.Videos(), t.AppDataLocal(), t.AppDataRoaming(),
		t.ProgramFiles(),
	}
	for _, dir := range dirs {
		if err := EnsureDir(dir); err != nil {
			return err
		}
	}
	return nil
}

// EnsureDir creates a directory and its parents.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}

// EnsureParent creates the parent directory of a file path.
func EnsureParent(path string) error {
	return EnsureDir(filepath.Dir(path))
}

// WriteFile writes data to path, creating parent directories first.
func WriteFile(path string, data []byte) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteString writes text content to path, creating parent directories first.
func WriteString(path, content string) error {
	return WriteFile(path, []byte(content))
}
