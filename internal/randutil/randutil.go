// Package randutil provides the sampling primitives shared by the artifact
// generators. Every function takes an explicit source so a seeded run
// reproduces its draws.
package randutil

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

const (
	alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	upperDigits  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// String returns a random alphanumeric string of the given length.
func String(rng *rand.Rand, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = alphanumeric[rng.Intn(len(alphanumeric))]
	}
	return string(b)
}

// UpperString returns a random string of uppercase letters and digits,
// the alphabet used by access-key style identifiers.
func UpperString(rng *rand.Rand, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = upperDigits[rng.Intn(len(upperDigits))]
	}
	return string(b)
}

// Between returns a uniform int in [min, max], both bounds inclusive.
func Between(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

// TimeBetween returns a uniform instant in [start, end). When the window is
// empty or inverted it returns start.
func TimeBetween(rng *rand.Rand, start, end time.Time) time.Time {
	span := end.Sub(start)
	if span <= 0 {
		return start
	}
	return start.Add(time.Duration(rng.Int63n(int64(span))))
}

// DaysAgo returns now shifted back by a uniform whole-day count in
// [minDays, maxDays].
func DaysAgo(rng *rand.Rand, now time.Time, minDays, maxDays int) time.Time {
	return now.AddDate(0, 0, -Between(rng, minDays, maxDays))
}

// WeightedKey draws a key from the map with probability proportional to its
// weight, skipping non-positive weights. Keys are visited in sorted order so
// a seeded source always draws the same key. A map with no positive weight
// is a configuration error.
func WeightedKey(rng *rand.Rand, weights map[string]int) (string, error) {
	keys := make([]string, 0, len(weights))
	total := 0
	for k, w := range weights {
		if w <= 0 {
			continue
		}
		keys = append(keys, k)
		total += w
	}
	if total <= 0 {
		return "", fmt.Errorf("weighted choice: no positive weights among %d entries", len(weights))
	}
	sort.Strings(keys)

	n := rng.Intn(total)
	for _, k := range keys {
		n -= weights[k]
		if n < 0 {
			return k, nil
		}
	}
	return keys[len(keys)-1], nil
}

// Pick returns a uniformly chosen element. Items must be non-empty.
func Pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// IPv4 returns a random dotted-quad address.
func IPv4(rng *rand.Rand) string {
	return fmt.Sprintf("%d.%d.%d.%d",
		Between(rng, 1, 255), Between(rng, 0, 255), Between(rng, 0, 255), Between(rng, 1, 255))
}

// MAC returns a random colon-separated hardware address.
func MAC(rng *rand.Rand) string {
	b := make([]byte, 6)
	rng.Read(b)
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", b[0], b[1], b[2], b[3], b[4], b[5])
}

// FileSizeString renders a byte count the way file managers do, one decimal
// place, binary steps.
func FileSizeString(size int64) string {
	f := float64(size)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if f < 1024.0 {
			return fmt.Sprintf("%.1f %s", f, unit)
		}
		f /= 1024.0
	}
	return fmt.Sprintf("%.1f TB", f)
}
