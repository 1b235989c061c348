// Package personal populates the Desktop/Personal tree: music playlists,
// a photo library with renderable images, health records, and shopping
// receipts. Everything derives from the configured identity and a seeded
// source so runs are reproducible.
package personal

import (
	"math/rand"
	"path/filepath"
	"time"

	"github.com/runnerr0/patina/internal/config"
	"github.com/runnerr0/patina/internal/layout"
)

// Generate writes all personal artifacts and returns the written paths.
func Generate(cfg *config.Config, tree layout.Tree, rng *rand.Rand, now time.Time) ([]string, error) {
	personalDir := filepath.Join(tree.Desktop(), "Personal")

	var written []string

	musicFiles, err := generateMusic(cfg.Identity, rng, now, filepath.Join(personalDir, "Music"))
	if err != nil {
		return nil, err
	}
	written = append(written, musicFiles...)

	photoFiles, err := generatePhotos(cfg, rng, now, filepath.Join(personalDir, "Photos"))
	if err != nil {
		return nil, err
	}
	written = append(written, photoFiles...)

	healthFiles, err := generateHealth(cfg.Identity, now, filepath.Join(personalDir, "Health"))
	if err != nil {
		return nil, err
	}
	written = append(written, healthFiles...)

	receiptFiles, err := generateReceipts(cfg.Identity, rng, now, filepath.Join(personalDir, "Receipts"))
	if err != nil {
		return nil, err
	}
	written = append(written, receiptFiles...)

	return written, nil
}
