// Package browser synthesizes per-browser artifact stores: browsing
// history in each engine family's native SQLite schema, saved-login and
// cookie sidecars, and human-readable summaries, all derived from one
// timeline per browser so no two artifacts can disagree.
package browser

import "time"

// ActivityEvent is one synthesized page visit. Events are immutable once
// created; a slice of them is consumed by exactly one encoder and one
// summary writer pairing.
type ActivityEvent struct {
	URL        string
	Title      string
	VisitTime  time.Time
	VisitCount int
	TypedCount int
}

// CredentialRecord is one saved login. Principal is the username when the
// service credential has one, otherwise the email.
type CredentialRecord struct {
	Site      string
	Principal string
	Secret    string
	Created   time.Time
	TimesUsed int
}

// CookieRecord is one stored cookie, sampled per site category rather
// than per visit.
type CookieRecord struct {
	Domain      string
	Name        string
	Description string
	Value       string
	Expires     time.Time
	Secure      bool
	HTTPOnly    bool
}

// Encoder materializes one browser family's artifact store under a
// profile directory, deleting any pre-existing store file first, and
// returns the paths it wrote. Encoders never merge with prior contents.
type Encoder interface {
	Family() string
	Encode(events []ActivityEvent, creds []CredentialRecord, profileDir string) ([]string, error)
}
