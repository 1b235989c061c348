package browser

import "time"

// Seconds between the Windows FILETIME epoch (1601-01-01) and the Unix
// epoch (1970-01-01). The conversion goes through Unix microseconds
// because a time.Duration cannot span 423 years without overflowing.
const chromiumEpochOffsetSeconds int64 = 11644473600

// ChromiumMicros converts t to the Chromium history timestamp unit:
// whole microseconds since 1601-01-01T00:00:00 UTC.
func ChromiumMicros(t time.Time) int64 {
	return t.UnixMicro() + chromiumEpochOffsetSeconds*1000000
}

// GeckoMicros converts t to the Gecko history timestamp unit: whole
// microseconds since the Unix epoch.
func GeckoMicros(t time.Time) int64 {
	return t.UnixMicro()
}

// FromChromiumMicros decodes a Chromium timestamp back to UTC wall time,
// exact to the microsecond.
func FromChromiumMicros(us int64) time.Time {
	return time.UnixMicro(us - chromiumEpochOffsetSeconds*1000000).UTC()
}

// FromGeckoMicros decodes a Gecko timestamp back to UTC wall time.
func FromGeckoMicros(us int64) time.Time {
	return time.UnixMicro(us).UTC()
}
