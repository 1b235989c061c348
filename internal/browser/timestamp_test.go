package browser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestChromiumMicrosKnownInstant(t *testing.T) {
	// 2024-01-01T00:00:00Z is 1704067200 Unix seconds; the 1601 epoch
	// precedes 1970 by 11644473600 seconds.
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	want := (int64(11644473600) + 1704067200) * 1000000
	assert.Equal(t, want, ChromiumMicros(at))
	assert.Equal(t, int64(13348540800000000), ChromiumMicros(at))
}

func TestGeckoMicrosKnownInstant(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, int64(1704067200000000), GeckoMicros(at))
}

func TestChromiumMicrosAtUnixEpoch(t *testing.T) {
	epoch := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, int64(11644473600)*1000000, ChromiumMicros(epoch))
}

func TestChromiumMicrosAtOwnEpoch(t *testing.T) {
	epoch := time.Date(1601, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, int64(0), ChromiumMicros(epoch))
}

func TestSubSecondPrecisionTruncates(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 123456789, time.UTC)
	assert.Equal(t, int64(1704067200123456), GeckoMicros(at))
	assert.Equal(t, int64(13348540800123456), ChromiumMicros(at))
}

func TestCodecsAreInverseConsistent(t *testing.T) {
	instants := []time.Time{
		time.Date(2020, 6, 15, 9, 30, 45, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2031, 12, 31, 23, 59, 59, 0, time.UTC),
	}
	for _, at := range instants {
		assert.True(t, FromChromiumMicros(ChromiumMicros(at)).Equal(at), at)
		assert.True(t, FromGeckoMicros(GeckoMicros(at)).Equal(at), at)
	}
}

func TestCodecUnitsDifferByConstantOffset(t *testing.T) {
	at := time.Date(2023, 3, 17, 14, 5, 9, 0, time.UTC)
	diff := ChromiumMicros(at) - GeckoMicros(at)
	assert.Equal(t, int64(11644473600)*1000000, diff)
}
