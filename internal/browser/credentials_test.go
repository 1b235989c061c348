package browser

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/patina/internal/config"
)

func TestDeriveCredentialsOnePerService(t *testing.T) {
	credMap := map[string]config.ServiceCredential{
		"github.com":      {Username: "jm", Email: "jm@example.com", Password: "pw1"},
		"chase.com":       {Username: "jmathew", Password: "pw2"},
		"mail.google.com": {Email: "jm@gmail.com", Password: "pw3"},
	}
	rng := rand.New(rand.NewSource(7))
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	records := DeriveCredentials(credMap, rng, now)
	require.Len(t, records, len(credMap))

	seen := make(map[string]bool)
	for _, rec := range records {
		seen[rec.Site] = true
	}
	assert.Len(t, seen, len(credMap))
}

func TestDeriveCredentialsPrincipal(t *testing.T) {
	credMap := map[string]config.ServiceCredential{
		"both.example":  {Username: "user", Email: "user@example.com", Password: "a"},
		"email.example": {Email: "only@example.com", Password: "b"},
		"user.example":  {Username: "onlyuser", Password: "c"},
	}
	rng := rand.New(rand.NewSource(1))
	now := time.Now()

	byDomain := make(map[string]CredentialRecord)
	for _, rec := range DeriveCredentials(credMap, rng, now) {
		byDomain[rec.Site] = rec
	}

	// Username wins when both are configured.
	assert.Equal(t, "user", byDomain["both.example"].Principal)
	assert.Equal(t, "only@example.com", byDomain["email.example"].Principal)
	assert.Equal(t, "onlyuser", byDomain["user.example"].Principal)

	assert.Equal(t, "a", byDomain["both.example"].Secret)
	assert.Equal(t, "b", byDomain["email.example"].Secret)
	assert.Equal(t, "c", byDomain["user.example"].Secret)
}

func TestDeriveCredentialsRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	now := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

	records := DeriveCredentials(config.DefaultCredentialMap(), rng, now)
	require.NotEmpty(t, records)

	earliest := now.AddDate(0, 0, -credentialMaxAgeDays)
	latest := now.AddDate(0, 0, -credentialMinAgeDays)
	for _, rec := range records {
		assert.False(t, rec.Created.Before(earliest), "created %v before %v", rec.Created, earliest)
		assert.False(t, rec.Created.After(latest), "created %v after %v", rec.Created, latest)
		assert.GreaterOrEqual(t, rec.TimesUsed, 5)
		assert.LessOrEqual(t, rec.TimesUsed, 100)
	}
}

func TestDeriveCredentialsDeterministic(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	credMap := config.DefaultCredentialMap()

	first := DeriveCredentials(credMap, rand.New(rand.NewSource(99)), now)
	second := DeriveCredentials(credMap, rand.New(rand.NewSource(99)), now)
	assert.Equal(t, first, second)

	// Sites come out in sorted order regardless of map iteration.
	for i := 1; i < len(first); i++ {
		assert.Less(t, first[i-1].Site, first[i].Site)
	}
}

func TestDeriveCredentialsDefaultMap(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	records := DeriveCredentials(config.DefaultCredentialMap(), rng, time.Now())

	// Every configured service yields exactly one record.
	assert.Len(t, records, len(config.DefaultCredentialMap()))
}
