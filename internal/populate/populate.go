// Package populate orchestrates a full environment build: it runs every
// artifact generator against one destination tree in a fixed order and
// records what was written in a run manifest.
package populate

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/runnerr0/patina/internal/appdata"
	"github.com/runnerr0/patina/internal/browser"
	"github.com/runnerr0/patina/internal/config"
	"github.com/runnerr0/patina/internal/documents"
	"github.com/runnerr0/patina/internal/layout"
	"github.com/runnerr0/patina/internal/personal"
	"github.com/runnerr0/patina/internal/randutil"
)

// ManifestName is the run manifest file written at the tree root.
const ManifestName = "populate_manifest.txt"

// Stage groups selectable via Run's only argument.
const (
	GroupBrowsers  = "browsers"
	GroupDocuments = "documents"
	GroupAppData   = "appdata"
)

// Groups lists the valid stage group selectors.
func Groups() []string {
	return []string{GroupBrowsers, GroupDocuments, GroupAppData}
}

// stageSeedStride spaces the per-stage seeds. The browsers stage offsets
// its seed by the browser index internally, so the stride must exceed any
// plausible browser count to keep stage randomness streams disjoint.
const stageSeedStride = 101

// stage couples a named generation step with the group it belongs to.
// Each stage receives its own seed so that skipping stages (via only)
// cannot shift the sampling of the stages that do run.
type stage struct {
	name  string
	group string
	run   func(p *Populator, seed int64, now time.Time) ([]string, error)
}

// stages is the full pipeline in run order.
var stages = []stage{
	{"browsers", GroupBrowsers, runBrowsers},
	{"tax", GroupDocuments, runTax},
	{"investments", GroupDocuments, runInvestments},
	{"office", GroupDocuments, runOffice},
	{"personal", GroupDocuments, runPersonal},
	{"credentials", GroupDocuments, runCredentials},
	{"appdata", GroupAppData, runAppData},
	{"employment", GroupDocuments, runEmployment},
}

func runBrowsers(p *Populator, seed int64, now time.Time) ([]string, error) {
	results, err := browser.NewGenerator(p.cfg, p.tree, p.log).Run(seed, now)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, r := range results {
		paths = append(paths, r.Paths...)
	}
	return paths, nil
}

func runTax(p *Populator, seed int64, now time.Time) ([]string, error) {
	return documents.GenerateTaxDocuments(p.cfg, p.tree)
}

func runInvestments(p *Populator, seed int64, now time.Time) ([]string, error) {
	return documents.GenerateInvestmentDocuments(p.cfg, p.tree, rand.New(rand.NewSource(seed)))
}

func runOffice(p *Populator, seed int64, now time.Time) ([]string, error) {
	return documents.GenerateOfficeDocuments(p.cfg, p.tree, rand.New(rand.NewSource(seed)), now)
}

func runPersonal(p *Populator, seed int64, now time.Time) ([]string, error) {
	return personal.Generate(p.cfg, p.tree, rand.New(rand.NewSource(seed)), now)
}

func runCredentials(p *Populator, seed int64, now time.Time) ([]string, error) {
	return documents.GenerateCredentialDocuments(p.cfg, p.tree, rand.New(rand.NewSource(seed)), now)
}

func runAppData(p *Populator, seed int64, now time.Time) ([]string, error) {
	return appdata.Generate(p.cfg, p.tree, rand.New(rand.NewSource(seed)), now)
}

func runEmployment(p *Populator, seed int64, now time.Time) ([]string, error) {
	return documents.GenerateEmploymentDocuments(p.cfg, p.tree, rand.New(rand.NewSource(seed)), now)
}

// StageResult records one completed stage.
type StageResult struct {
	Name  string
	Files int
	Bytes int64
}

// Manifest summarizes one population run.
type Manifest struct {
	RunID       string
	Seed        int64
	Started     time.Time
	Root        string
	User        string
	Email       string
	Stages      []StageResult
	TotalFiles  int
	TotalBytes  int64
	Directories int
	Path        string
}

// Populator drives the full pipeline against one destination tree.
type Populator struct {
	cfg  *config.Config
	tree layout.Tree
	log  *zap.SugaredLogger
}

// New builds a Populator. A nil logger disables logging.
func New(cfg *config.Config, tree layout.Tree, log *zap.SugaredLogger) *Populator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Populator{cfg: cfg, tree: tree, log: log}
}

// Run validates the configuration, ensures the base directory layout, and
// executes every stage whose group matches only (empty = all groups).
// Seed 0 derives a seed from now, making the run non-reproducible; any
// other seed fixes the entire output. The first failing stage aborts the
// run; files already written by earlier stages are left in place.
func (p *Populator) Run(seed int64, only string, now time.Time) (*Manifest, error) {
	if err := p.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if only != "" && !validGroup(only) {
		return nil, fmt.Errorf("unknown stage group %q (valid: %s)", only, strings.Join(Groups(), ", "))
	}
	if seed == 0 {
		seed = now.UnixNano()
	}

	if err := p.tree.EnsureBase(); err != nil {
		return nil, fmt.Errorf("create base layout: %w", err)
	}
	p.log.Infow("base layout ready", "root", p.tree.Root())

	man := &Manifest{
		RunID:   runID(seed, now),
		Seed:    seed,
		Started: now,
		Root:    p.tree.Root(),
		User:    p.cfg.Identity.Name,
		Email:   p.cfg.Identity.Email,
	}

	dirs := make(map[string]struct{})
	for i, st := range stages {
		if only != "" && st.group != only {
			continue
		}
		stageSeed := seed + int64(i)*stageSeedStride

		paths, err := st.run(p, stageSeed, now)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", st.name, err)
		}

		var bytes int64
		for _, path := range paths {
			if info, statErr := os.Stat(path); statErr == nil {
				bytes += info.Size()
			}
			dirs[filepath.Dir(path)] = struct{}{}
		}

		man.Stages = append(man.Stages, StageResult{Name: st.name, Files: len(paths), Bytes: bytes})
		man.TotalFiles += len(paths)
		man.TotalBytes += bytes
		p.log.Infow("stage complete", "stage", st.name, "files", len(paths), "bytes", bytes)
	}
	man.Directories = len(dirs)

	manifestPath := filepath.Join(p.tree.Root(), ManifestName)
	if err := layout.WriteString(manifestPath, manifestText(man)); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}
	man.Path = manifestPath
	p.log.Infow("run complete", "run_id", man.RunID, "files", man.TotalFiles, "bytes", man.TotalBytes)

	return man, nil
}

func validGroup(name string) bool {
	for _, g := range Groups() {
		if g == name {
			return true
		}
	}
	return false
}

// runID builds the run identifier. Entropy comes from the run seed, so a
// fixed seed and clock give a stable ID.
func runID(seed int64, now time.Time) string {
	rng := rand.New(rand.NewSource(seed))
	return ulid.MustNew(ulid.Timestamp(now), ulid.Monotonic(rng, 0)).String()
}

// manifestText renders the manifest in the same header style as the
// artifact digests the generators write.
func manifestText(m *Manifest) string {
	var b strings.Builder

	b.WriteString("# Patina Run Manifest\n")
	fmt.Fprintf(&b, "# Run ID: %s\n", m.RunID)
	fmt.Fprintf(&b, "# Seed: %d\n", m.Seed)
	fmt.Fprintf(&b, "# Generated: %s\n", m.Started.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "# Root: %s\n", m.Root)
	fmt.Fprintf(&b, "# User: %s <%s>\n", m.User, m.Email)
	b.WriteString("\n")

	rule := strings.Repeat("-", 44)
	fmt.Fprintf(&b, "%-20s %6s %14s\n", "STAGE", "FILES", "SIZE")
	b.WriteString(rule + "\n")
	for _, st := range m.Stages {
		fmt.Fprintf(&b, "%-20s %6d %14s\n", st.Name, st.Files, randutil.FileSizeString(st.Bytes))
	}
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%-20s %6d %14s\n", "TOTAL", m.TotalFiles, randutil.FileSizeString(m.TotalBytes))
	b.WriteString("\n")

	fmt.Fprintf(&b, "Directories used: %d\n", m.Directories)
	b.WriteString("\nAll content is synthetic, generated for sandbox realism.\n")

	return b.String()
}
