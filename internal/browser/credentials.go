package browser

import (
	"math/rand"
	"sort"
	"time"

	"github.com/runnerr0/patina/internal/config"
	"github.com/runnerr0/patina/internal/randutil"
)

// Lookback window for credential creation times, in days.
const (
	credentialMinAgeDays = 30
	credentialMaxAgeDays = 500
)

// DeriveCredentials produces exactly one saved-login record per entry in
// the credential map: same cardinality, no omissions, no duplicates.
// Records come back ordered by site so a seeded source yields a stable
// sequence regardless of map iteration order.
func DeriveCredentials(credMap map[string]config.ServiceCredential, rng *rand.Rand, now time.Time) []CredentialRecord {
	sites := make([]string, 0, len(credMap))
	for site := range credMap {
		sites = append(sites, site)
	}
	sort.Strings(sites)

	records := make([]CredentialRecord, 0, len(sites))
	for _, site := range sites {
		cred := credMap[site]
		principal := cred.Username
		if principal == "" {
			principal = cred.Email
		}
		records = append(records, CredentialRecord{
			Site:      site,
			Principal: principal,
			Secret:    cred.Password,
			Created:   randutil.DaysAgo(rng, now, credentialMinAgeDays, credentialMaxAgeDays),
			TimesUsed: randutil.Between(rng, 5, 100),
		})
	}
	return records
}
