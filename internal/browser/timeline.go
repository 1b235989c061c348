package browser

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/runnerr0/patina/internal/randutil"
)

// pathSuffixes is the fixed set of plausible page paths appended to a
// sampled site.
var pathSuffixes = []string{
	"", "/dashboard", "/search?q=python+tutorial", "/docs",
	"/settings", "/profile", "/notifications", "/about",
}

// Visit-count distribution: most pages are seen once, a long tail gets
// revisited. A count above typedThreshold marks the URL as typed.
var (
	visitCountChoices = []int{1, 2, 3, 5, 10}
	visitCountWeights = []int{50, 25, 15, 7, 3}
)

const typedThreshold = 5

// Page titles for well-known sites, matched by substring. Anything else
// gets a generic "<Name> - Home" title.
var pageTitles = []struct {
	domain string
	title  string
}{
	{"github.com", "GitHub: Where the world builds software"},
	{"stackoverflow.com", "Stack Overflow - Where Developers Learn"},
	{"linkedin.com", "LinkedIn: Log In or Sign Up"},
	{"amazon.com", "Amazon.com: Online Shopping"},
	{"youtube.com", "YouTube"},
	{"gmail.com", "Gmail - Email by Google"},
	{"netflix.com", "Netflix - Watch TV Shows Online"},
	{"reddit.com", "Reddit - Dive into anything"},
}

// Synthesizer draws browsing timelines from a categorized site catalog.
// It owns no mutable state besides its randomness source, so one
// Synthesizer serves one browser pipeline.
type Synthesizer struct {
	categories map[string][]string
	weights    map[string]int
	rng        *rand.Rand
}

// NewSynthesizer builds a Synthesizer over the given catalog and
// per-category weights. The source is used for every draw.
func NewSynthesizer(categories map[string][]string, weights map[string]int, rng *rand.Rand) *Synthesizer {
	return &Synthesizer{categories: categories, weights: weights, rng: rng}
}

// Generate produces n visit events with timestamps uniform in
// [start, end), sorted ascending by visit time. The ordering is part of
// the contract: encoders assume insertion order matches visit recency.
func (s *Synthesizer) Generate(n int, start, end time.Time) ([]ActivityEvent, error) {
	if n <= 0 {
		return nil, fmt.Errorf("timeline: event count must be positive, got %d", n)
	}
	if len(s.categories) == 0 {
		return nil, fmt.Errorf("timeline: site catalog is empty")
	}
	if !end.After(start) {
		return nil, fmt.Errorf("timeline: empty time window [%s, %s]", start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	events := make([]ActivityEvent, 0, n)
	for i := 0; i < n; i++ {
		category, err := randutil.WeightedKey(s.rng, s.weights)
		if err != nil {
			return nil, fmt.Errorf("timeline: %w", err)
		}
		sites := s.categories[category]
		if len(sites) == 0 {
			return nil, fmt.Errorf("timeline: category %q has no sites", category)
		}

		site := randutil.Pick(s.rng, sites)
		path := randutil.Pick(s.rng, pathSuffixes)
		count := s.drawVisitCount()
		typed := 0
		if count > typedThreshold {
			typed = 1
		}

		events = append(events, ActivityEvent{
			URL:        "https://" + site + path,
			Title:      pageTitle(site),
			VisitTime:  randutil.TimeBetween(s.rng, start, end),
			VisitCount: count,
			TypedCount: typed,
		})
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].VisitTime.Before(events[j].VisitTime)
	})
	return events, nil
}

func (s *Synthesizer) drawVisitCount() int {
	total := 0
	for _, w := range visitCountWeights {
		total += w
	}
	n := s.rng.Intn(total)
	for i, w := range visitCountWeights {
		n -= w
		if n < 0 {
			return visitCountChoices[i]
		}
	}
	return visitCountChoices[len(visitCountChoices)-1]
}

// pageTitle returns the display title for a site.
func pageTitle(site string) string {
	for _, pt := range pageTitles {
		if strings.Contains(site, pt.domain) {
			return pt.title
		}
	}
	label := site
	if i := strings.IndexByte(site, '.'); i > 0 {
		label = site[:i]
	}
	if label == "" {
		return "Home"
	}
	return capitalize(label) + " - Home"
}
