package personal

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/runnerr0/patina/internal/config"
	"github.com/runnerr0/patina/internal/layout"
	"github.com/runnerr0/patina/internal/randutil"
	"github.com/runnerr0/patina/internal/render"
)

var photoCategories = []string{
	"Vacation", "Family", "Friends", "Work Event", "Birthday",
	"Holiday", "Weekend Trip", "Concert", "Sports", "Nature",
}

// Camera-native capture sizes. Rendered previews are stored at 1/8 scale
// to keep the tree small while the catalog reports the full resolution.
var captureSizes = [][2]int{
	{4032, 3024},
	{3024, 4032},
	{1920, 1080},
	{3840, 2160},
}

const previewScale = 8

type photoEntry struct {
	fileName   string
	date       time.Time
	category   string
	resolution string
	sizeLabel  string
	width      int
	height     int
}

func generatePhotos(cfg *config.Config, rng *rand.Rand, now time.Time, photosDir string) ([]string, error) {
	count := cfg.Documents.Photos
	if count <= 0 {
		count = 15
	}
	entries := buildPhotoEntries(rng, now, count)

	var written []string

	catalogPath := filepath.Join(photosDir, "Photo_Catalog.txt")
	if err := layout.WriteString(catalogPath, photoCatalogText(cfg.Identity.Name, now, entries)); err != nil {
		return nil, err
	}
	written = append(written, catalogPath)

	metadataDir := filepath.Join(photosDir, "metadata")
	for _, entry := range entries {
		photoPath := filepath.Join(photosDir, entry.fileName)
		caption := fmt.Sprintf("%s %d", entry.category, entry.date.Year())
		if err := render.WritePhoto(photoPath, caption, entry.width/previewScale, entry.height/previewScale, rng); err != nil {
			return nil, err
		}
		written = append(written, photoPath)

		sidecar := filepath.Join(metadataDir, strings.TrimSuffix(entry.fileName, filepath.Ext(entry.fileName))+".xmp")
		meta := fmt.Sprintf("filename=%s\ncaptured_at=%s\ncategory=%s\nresolution=%s\nsize=%s\ncamera=Pixel 7 Pro\n",
			entry.fileName, entry.date.Format(time.RFC3339), entry.category, entry.resolution, entry.sizeLabel)
		if err := layout.WriteString(sidecar, meta); err != nil {
			return nil, err
		}
		written = append(written, sidecar)
	}

	return written, nil
}

// buildPhotoEntries draws count photos from the past three years with
// distinct camera-roll file names.
func buildPhotoEntries(rng *rand.Rand, now time.Time, count int) []photoEntry {
	entries := make([]photoEntry, 0, count)
	used := make(map[string]bool, count)

	for len(entries) < count {
		name := fmt.Sprintf("IMG_%d.png", randutil.Between(rng, 1000, 9999))
		if used[name] {
			continue
		}
		used[name] = true

		size := randutil.Pick(rng, captureSizes)
		entries = append(entries, photoEntry{
			fileName:   name,
			date:       randutil.DaysAgo(rng, now, 1, 365*3),
			category:   randutil.Pick(rng, photoCategories),
			resolution: fmt.Sprintf("%dx%d", size[0], size[1]),
			sizeLabel:  fmt.Sprintf("%d.%dMB", randutil.Between(rng, 1, 8), randutil.Between(rng, 1, 9)),
			width:      size[0],
			height:     size[1],
		})
	}
	return entries
}

func photoCatalogText(owner string, now time.Time, entries []photoEntry) string {
	var b strings.Builder
	b.WriteString("PHOTO CATALOG\n")
	fmt.Fprintf(&b, "Owner: %s\n", owner)
	fmt.Fprintf(&b, "Last Updated: %s\n\n", now.Format("January 02, 2006"))
	b.WriteString(strings.Repeat("=", 70) + "\n\n")

	for _, entry := range entries {
		fmt.Fprintf(&b, "File: %s\n", entry.fileName)
		fmt.Fprintf(&b, "Date: %s\n", entry.date.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(&b, "Category: %s\n", entry.category)
		fmt.Fprintf(&b, "Size: %s\n", entry.sizeLabel)
		fmt.Fprintf(&b, "Resolution: %s\n", entry.resolution)
		b.WriteString(strings.Repeat("-", 70) + "\n\n")
	}
	return b.String()
}
