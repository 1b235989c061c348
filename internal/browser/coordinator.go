package browser

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/runnerr0/patina/internal/config"
	"github.com/runnerr0/patina/internal/layout"
)

// ProfileDir resolves the on-disk profile directory for a browser under
// the user tree, mirroring each family's Windows layout. Firefox nests
// its profile under a <username>.<profile> folder.
func ProfileDir(tree layout.Tree, b config.BrowserConfig, username string) string {
	switch b.Name {
	case "chrome":
		return filepath.Join(tree.AppDataLocal(), "Google", "Chrome", "User Data", b.Profile)
	case "edge":
		return filepath.Join(tree.AppDataLocal(), "Microsoft", "Edge", "User Data", b.Profile)
	case "firefox":
		return filepath.Join(tree.AppDataRoaming(), "Mozilla", "Firefox", "Profiles", username+"."+b.Profile)
	}
	if b.Family == config.FamilyGecko {
		return filepath.Join(tree.AppDataRoaming(), capitalize(b.Name), "Profiles", username+"."+b.Profile)
	}
	return filepath.Join(tree.AppDataLocal(), capitalize(b.Name), "User Data", b.Profile)
}

// SummaryDir resolves the documents-area folder holding a browser's
// human-readable digests.
func SummaryDir(tree layout.Tree, b config.BrowserConfig) string {
	return filepath.Join(tree.Documents(), "Browser_Data_"+capitalize(b.Name))
}

// Generator runs the full artifact pass for every configured browser.
// Each browser gets one synthesized timeline, and that single timeline
// feeds both the family's store encoder and the summary writers, so the
// structured store and the digest text can never disagree.
type Generator struct {
	cfg  *config.Config
	tree layout.Tree
	log  *zap.SugaredLogger
}

// NewGenerator builds a Generator over a validated config and user tree.
// A nil logger disables logging.
func NewGenerator(cfg *config.Config, tree layout.Tree, log *zap.SugaredLogger) *Generator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Generator{cfg: cfg, tree: tree, log: log}
}

// Result lists the artifact paths produced for one browser.
type Result struct {
	Browser string
	Paths   []string
}

// Run generates artifacts for all configured browsers, parallelized one
// goroutine per browser. Browsers write to disjoint subtrees, so the
// only synchronization is waiting for all pipelines to finish. Each
// pipeline derives its randomness from seed plus the browser's index,
// keeping runs reproducible for a fixed seed and browser list.
func (g *Generator) Run(seed int64, now time.Time) ([]Result, error) {
	results := make([]Result, len(g.cfg.Browsers))

	var eg errgroup.Group
	for i, b := range g.cfg.Browsers {
		i, b := i, b
		eg.Go(func() error {
			paths, err := g.generateBrowser(b, seed+int64(i), now)
			if err != nil {
				return fmt.Errorf("%s: %w", b.Name, err)
			}
			results[i] = Result{Browser: b.Name, Paths: paths}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// generateBrowser runs one browser's pipeline: synthesize, encode,
// summarize. All artifacts derive from the same timeline and credential
// slice.
func (g *Generator) generateBrowser(b config.BrowserConfig, seed int64, now time.Time) ([]string, error) {
	rng := rand.New(rand.NewSource(seed))
	start := now.AddDate(0, 0, -g.cfg.Browsing.LookbackDays)

	synth := NewSynthesizer(g.cfg.Browsing.Categories, g.cfg.Browsing.Weights, rng)
	events, err := synth.Generate(b.HistoryEvents, start, now)
	if err != nil {
		return nil, err
	}

	creds := DeriveCredentials(g.cfg.Credentials, rng, now)
	cookies := DeriveCookies(g.cfg.Browsing.Categories, rng, now)

	var enc Encoder
	switch b.Family {
	case config.FamilyChromium:
		enc = NewChromiumEncoder(rng)
	case config.FamilyGecko:
		enc = NewGeckoEncoder()
	default:
		return nil, fmt.Errorf("unknown browser family %q", b.Family)
	}

	profileDir := ProfileDir(g.tree, b, g.cfg.Identity.Username)
	summaryDir := SummaryDir(g.tree, b)

	paths, err := enc.Encode(events, creds, profileDir)
	if err != nil {
		return nil, err
	}
	g.log.Debugw("encoded browser store",
		"browser", b.Name, "family", b.Family, "events", len(events), "profile", profileDir)

	historyPath, err := WriteHistorySummary(b.Label, g.cfg.Identity.Name, events, summaryDir)
	if err != nil {
		return nil, err
	}
	passwordPath, err := WritePasswordSummary(b.Name, b.Label, g.cfg.Identity.Name, g.cfg.Identity.Email, creds, summaryDir)
	if err != nil {
		return nil, err
	}
	cookiePath, err := WriteCookieFile(cookies, profileDir)
	if err != nil {
		return nil, err
	}
	cookieInfoPath, err := WriteCookieInfo(b.Label, g.cfg.Identity.Name, cookies, now, summaryDir)
	if err != nil {
		return nil, err
	}

	return append(paths, historyPath, passwordPath, cookiePath, cookieInfoPath), nil
}
