package randutil

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// --- strings ---

func TestStringLengthAndAlphabet(t *testing.T) {
	rng := testRNG()
	s := String(rng, 32)
	require.Len(t, s, 32)
	for _, r := range s {
		assert.Contains(t, alphanumeric, string(r))
	}
}

func TestUpperStringAlphabet(t *testing.T) {
	rng := testRNG()
	s := UpperString(rng, 40)
	require.Len(t, s, 40)
	assert.Equal(t, strings.ToUpper(s), s)
}

func TestStringSeededReproducibility(t *testing.T) {
	a := String(rand.New(rand.NewSource(7)), 16)
	b := String(rand.New(rand.NewSource(7)), 16)
	assert.Equal(t, a, b)
}

// --- numeric and time ranges ---

func TestBetweenBounds(t *testing.T) {
	rng := testRNG()
	for i := 0; i < 1000; i++ {
		n := Between(rng, 5, 100)
		assert.GreaterOrEqual(t, n, 5)
		assert.LessOrEqual(t, n, 100)
	}
	assert.Equal(t, 3, Between(rng, 3, 3))
}

func TestTimeBetweenStaysInWindow(t *testing.T) {
	rng := testRNG()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 90)
	for i := 0; i < 200; i++ {
		ts := TimeBetween(rng, start, end)
		assert.False(t, ts.Before(start))
		assert.True(t, ts.Before(end))
	}
}

func TestTimeBetweenEmptyWindow(t *testing.T) {
	rng := testRNG()
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, at, TimeBetween(rng, at, at))
	assert.Equal(t, at, TimeBetween(rng, at, at.Add(-time.Hour)))
}

func TestDaysAgoRange(t *testing.T) {
	rng := testRNG()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 200; i++ {
		ts := DaysAgo(rng, now, 30, 500)
		assert.False(t, ts.After(now.AddDate(0, 0, -30)))
		assert.False(t, ts.Before(now.AddDate(0, 0, -500)))
	}
}

// --- weighted choice ---

func TestWeightedKeySingleMass(t *testing.T) {
	rng := testRNG()
	weights := map[string]int{"only": 10, "never": 0}
	for i := 0; i < 50; i++ {
		k, err := WeightedKey(rng, weights)
		require.NoError(t, err)
		assert.Equal(t, "only", k)
	}
}

func TestWeightedKeyCoversAllKeys(t *testing.T) {
	rng := testRNG()
	weights := map[string]int{"a": 1, "b": 1, "c": 1}
	seen := map[string]bool{}
	for i := 0; i < 300; i++ {
		k, err := WeightedKey(rng, weights)
		require.NoError(t, err)
		seen[k] = true
	}
	assert.Len(t, seen, 3)
}

func TestWeightedKeyNoPositiveWeights(t *testing.T) {
	rng := testRNG()
	_, err := WeightedKey(rng, map[string]int{})
	assert.Error(t, err)
	_, err = WeightedKey(rng, map[string]int{"a": 0, "b": -3})
	assert.Error(t, err)
}

func TestWeightedKeySeededReproducibility(t *testing.T) {
	weights := map[string]int{"work": 35, "social": 15, "news": 20}
	var first []string
	for _, seed := range []int64{99, 99} {
		rng := rand.New(rand.NewSource(seed))
		var draws []string
		for i := 0; i < 20; i++ {
			k, err := WeightedKey(rng, weights)
			require.NoError(t, err)
			draws = append(draws, k)
		}
		if first == nil {
			first = draws
		} else {
			assert.Equal(t, first, draws)
		}
	}
}

// --- misc ---

func TestPick(t *testing.T) {
	rng := testRNG()
	items := []string{"x", "y", "z"}
	for i := 0; i < 50; i++ {
		assert.Contains(t, items, Pick(rng, items))
	}
}

func TestIPv4Shape(t *testing.T) {
	rng := testRNG()
	parts := strings.Split(IPv4(rng), ".")
	assert.Len(t, parts, 4)
}

func TestMACShape(t *testing.T) {
	rng := testRNG()
	mac := MAC(rng)
	assert.Len(t, mac, 17)
	assert.Len(t, strings.Split(mac, ":"), 6)
}

func TestFileSizeString(t *testing.T) {
	assert.Equal(t, "512.0 B", FileSizeString(512))
	assert.Equal(t, "1.5 KB", FileSizeString(1536))
	assert.Equal(t, "2.0 MB", FileSizeString(2*1024*1024))
	assert.Equal(t, "3.0 GB", FileSizeString(3*1024*1024*1024))
}
