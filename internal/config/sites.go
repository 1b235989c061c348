package config

// DefaultSiteCatalog returns the categorized site universe used for
// browsing-history synthesis. Categories are sampled by weight; sites
// within a category are sampled uniformly.
func DefaultSiteCatalog() map[string][]string {
	return map[string][]string{
		"work": {
			"github.com",
			"stackoverflow.com",
			"docs.microsoft.com",
			"aws.amazon.com",
			"gitlab.com",
			"jenkins.io",
			"docker.com",
			"kubernetes.io",
		},
		"social": {
			"linkedin.com",
			"twitter.com",
			"reddit.com",
			"facebook.com",
		},
		"news": {
			"news.ycombinator.com",
			"techcrunch.com",
			"arstechnica.com",
			"theverge.com",
			"wired.com",
		},
		"finance": {
			"chase.com",
			"wellsfargo.com",
			"mint.com",
			"robinhood.com",
			"fidelity.com",
			"vanguard.com",
		},
		"shopping": {
			"amazon.com",
			"ebay.com",
			"walmart.com",
			"target.com",
			"bestbuy.com",
		},
		"entertainment": {
			"youtube.com",
			"netflix.com",
			"spotify.com",
			"reddit.com",
			"twitch.tv",
		},
		"email": {
			"gmail.com",
			"outlook.com",
			"yahoo.com",
		},
	}
}
