package config

// Default identity fields referenced by the credential map. Kept in sync
// with DefaultConfig's Identity.
const (
	defaultEmail    = "john.mathew@beingMalicious.com"
	defaultUsername = "jmathew"
)

// DefaultCredentialMap returns the saved-login map for the default
// identity: one entry per service the synthetic user has an account with.
// Passwords are fabrications for sandbox analysis, not real secrets.
func DefaultCredentialMap() map[string]ServiceCredential {
	return map[string]ServiceCredential{
		// Developer services
		"github.com": {
			Username: defaultUsername,
			Email:    defaultEmail,
			Password: "SecureP@ss123!",
		},
		"gitlab.com": {
			Username: defaultUsername,
			Email:    defaultEmail,
			Password: "GitL@b2024!",
		},
		"docker.com": {
			Username: defaultUsername,
			Email:    defaultEmail,
			Password: "D0cker!Hub",
		},
		"aws.amazon.com": {
			Username: defaultUsername,
			Email:    defaultEmail,
			Password: "AWS@ccess2024",
		},

		// Mail & collaboration
		"gmail.com": {
			Email:    defaultEmail,
			Password: "Gm@ilPass456",
		},
		"zoom.us": {
			Email:    defaultEmail,
			Password: "Zo0m!Meeting",
		},
		"slack.com": {
			Email:    defaultEmail,
			Password: "Sl@ckWork123",
		},
		"office.com": {
			Email:    defaultEmail,
			Password: "Office365@!",
		},
		"dropbox.com": {
			Email:    defaultEmail,
			Password: "Dr0pb0x#Secure",
		},

		// Social & shopping
		"linkedin.com": {
			Email:    defaultEmail,
			Password: "LinkedIn#789",
		},
		"amazon.com": {
			Email:    defaultEmail,
			Password: "Am@z0nSecure",
		},

		// Banking & investments
		"chase.com": {
			Username: defaultUsername,
			Password: "Ch@seBank999",
		},
		"fidelity.com": {
			Username: defaultUsername,
			Password: "Invest$2024",
		},

		// Entertainment
		"spotify.com": {
			Email:    defaultEmail,
			Password: "Sp0tify#Music",
		},
		"netflix.com": {
			Email:    defaultEmail,
			Password: "Netfl1x!Stream",
		},
	}
}
