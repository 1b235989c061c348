package documents

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/runnerr0/patina/internal/config"
	"github.com/runnerr0/patina/internal/layout"
	"github.com/runnerr0/patina/internal/randutil"
)

// credentialFileNames lists every artifact written to the Credentials
// folder, in write order.
var credentialFileNames = []string{
	"Master_Credentials.txt",
	"gitconfig.txt",
	"git_credentials.txt",
	"ssh_config.txt",
	"docker_credentials.txt",
	"aws_credentials.txt",
	"npm_config.txt",
}

// GenerateCredentialDocuments writes the user's credential stash under
// Documents/Credentials: the master password list plus the dotfile-style
// exports an engineer keeps copies of (git, SSH, Docker, AWS, npm).
func GenerateCredentialDocuments(cfg *config.Config, tree layout.Tree, rng *rand.Rand, now time.Time) ([]string, error) {
	dir := filepath.Join(tree.Documents(), "Credentials")
	id := cfg.Identity

	contents := map[string]string{
		"Master_Credentials.txt": masterCredentialsText(cfg, rng, now),
		"gitconfig.txt":          gitConfigText(id),
		"git_credentials.txt":    gitCredentialsText(id, cfg.Credentials, now),
		"ssh_config.txt":         sshConfigText(id),
		"docker_credentials.txt": dockerCredentialsText(id, cfg.Credentials, now),
		"aws_credentials.txt":    awsCredentialsText(rng, now),
		"npm_config.txt":         npmConfigText(id, rng),
	}

	var written []string
	for _, name := range credentialFileNames {
		path := filepath.Join(dir, name)
		if err := layout.WriteString(path, contents[name]); err != nil {
			return nil, err
		}
		written = append(written, path)
	}
	return written, nil
}

func masterCredentialsText(cfg *config.Config, rng *rand.Rand, now time.Time) string {
	id := cfg.Identity
	lightRule := strings.Repeat("─", 70)

	var b strings.Builder
	fmt.Fprintf(&b, "MASTER CREDENTIALS DOCUMENT\nCONFIDENTIAL - FOR PERSONAL USE ONLY\n\n%s\n\n", heavyRule)
	fmt.Fprintf(&b, "Owner: %s\n", id.Name)
	fmt.Fprintf(&b, "Email: %s\n", id.Email)
	fmt.Fprintf(&b, "Last Updated: %s\n\n", now.Format("January 02, 2006"))
	b.WriteString("WARNING: This file contains sensitive login information. Keep secure!\n\n")
	fmt.Fprintf(&b, "%s\n\nWEB SERVICES & APPLICATIONS\n\n", heavyRule)

	sites := make([]string, 0, len(cfg.Credentials))
	for site := range cfg.Credentials {
		sites = append(sites, site)
	}
	sort.Strings(sites)

	for _, site := range sites {
		cred := cfg.Credentials[site]
		fmt.Fprintf(&b, "\n%s\nSERVICE: %s\n%s\n", lightRule, site, lightRule)
		if cred.Username != "" {
			fmt.Fprintf(&b, "Username: %s\n", cred.Username)
		}
		if cred.Email != "" {
			fmt.Fprintf(&b, "Email: %s\n", cred.Email)
		}
		fmt.Fprintf(&b, "Password: %s\n", cred.Password)
		fmt.Fprintf(&b, "Last Login: %s\n", now.Format("January 02, 2006"))

		switch {
		case strings.Contains(site, "github") || strings.Contains(site, "gitlab"):
			b.WriteString("2FA Enabled: Yes\n")
			b.WriteString("SSH Key: ~/.ssh/id_rsa\n")
		case strings.Contains(site, "aws"):
			fmt.Fprintf(&b, "Access Key ID: AKIA%s\n", randutil.UpperString(rng, 16))
			b.WriteString("Region: us-west-2\n")
		case strings.Contains(site, "bank") || strings.Contains(site, "chase") || strings.Contains(site, "fidelity"):
			b.WriteString("Security Question 1: Mother's maiden name -> Johnson\n")
			b.WriteString("Security Question 2: First pet's name -> Max\n")
			fmt.Fprintf(&b, "2FA: SMS to %s\n", id.Phone)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n%s\n\nWIFI NETWORKS\n\n", heavyRule)
	b.WriteString("Home Network:\n")
	b.WriteString("  SSID: HOME_NETWORK_5G\n")
	b.WriteString("  Password: SecureHome2024!\n")
	b.WriteString("  Security: WPA3\n\n")
	b.WriteString("Work Network:\n")
	fmt.Fprintf(&b, "  SSID: %s\n", corpSSID(id.Company))
	b.WriteString("  Password: [Auto-connect via certificate]\n")
	fmt.Fprintf(&b, "  Security: WPA2-Enterprise\n\n%s\n\n", heavyRule)

	b.WriteString("NOTES\n\n")
	b.WriteString("• All passwords should be updated every 90 days\n")
	b.WriteString("• Enable 2FA wherever possible\n")
	b.WriteString("• Never share these credentials\n")
	b.WriteString("• Backup this file in encrypted storage\n")
	fmt.Fprintf(&b, "• Use password manager for new accounts\n\n%s\n", heavyRule)

	return b.String()
}

// corpSSID turns the employer domain into its office network name, e.g.
// "northwind.io" becomes "Northwind_Corp".
func corpSSID(company string) string {
	base := company
	if i := strings.IndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	if base == "" {
		return "Corp_WiFi"
	}
	return strings.ToUpper(base[:1]) + base[1:] + "_Corp"
}

func gitConfigText(id config.Identity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Git Configuration File\n# User: %s\n\n", id.Name)
	fmt.Fprintf(&b, "[user]\n    name = %s\n    email = %s\n    signingkey = GPG_KEY_HERE\n\n", id.Name, id.Email)
	b.WriteString("[core]\n    editor = code --wait\n    autocrlf = input\n    excludesfile = ~/.gitignore_global\n\n")
	b.WriteString("[init]\n    defaultBranch = main\n\n")
	b.WriteString("[pull]\n    rebase = false\n\n")
	b.WriteString("[push]\n    default = simple\n    followTags = true\n\n")
	b.WriteString("[alias]\n")
	b.WriteString("    st = status\n    co = checkout\n    br = branch\n    ci = commit\n")
	b.WriteString("    lg = log --oneline --graph --decorate --all\n")
	b.WriteString("    last = log -1 HEAD\n    unstage = reset HEAD --\n\n")
	b.WriteString("[color]\n    ui = auto\n    branch = auto\n    diff = auto\n    status = auto\n\n")
	b.WriteString("[diff]\n    tool = vscode\n\n")
	b.WriteString("[merge]\n    tool = vscode\n    conflictstyle = diff3\n\n")
	b.WriteString("[credential]\n    helper = store\n\n")
	b.WriteString("[url \"git@github.com:\"]\n    insteadOf = https://github.com/\n\n")
	b.WriteString("[filter \"lfs\"]\n")
	b.WriteString("    clean = git-lfs clean -- %f\n")
	b.WriteString("    smudge = git-lfs smudge -- %f\n")
	b.WriteString("    process = git-lfs filter-process\n")
	b.WriteString("    required = true\n")
	return b.String()
}

// gitCredentialsText emits credential-store lines for the configured git
// hosts. Hosts without a saved login are left out.
func gitCredentialsText(id config.Identity, creds map[string]config.ServiceCredential, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Git Credentials\n# Generated: %s\n\n", now.Format("2006-01-02 15:04:05"))
	for _, host := range []string{"github.com", "gitlab.com"} {
		cred, ok := creds[host]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "https://%s:%s@%s\n", id.Username, cred.Password, host)
	}
	return b.String()
}

func sshConfigText(id config.Identity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# SSH Configuration\n# User: %s\n\n", id.Name)
	b.WriteString("# GitHub\nHost github.com\n    HostName github.com\n    User git\n    IdentityFile ~/.ssh/id_rsa_github\n    IdentitiesOnly yes\n\n")
	b.WriteString("# GitLab\nHost gitlab.com\n    HostName gitlab.com\n    User git\n    IdentityFile ~/.ssh/id_rsa_gitlab\n    IdentitiesOnly yes\n\n")
	b.WriteString("# Work Server\nHost work-server\n")
	fmt.Fprintf(&b, "    HostName server.%s\n", strings.ToLower(id.Company))
	fmt.Fprintf(&b, "    User %s\n", id.Username)
	b.WriteString("    Port 22\n    IdentityFile ~/.ssh/id_rsa_work\n    ForwardAgent yes\n\n")
	b.WriteString("# AWS EC2\nHost aws-ec2\n    HostName ec2-54-123-45-67.compute-1.amazonaws.com\n    User ec2-user\n    IdentityFile ~/.ssh/aws-key.pem\n\n")
	b.WriteString("# Default settings\nHost *\n    ServerAliveInterval 60\n    ServerAliveCountMax 10\n    Compression yes\n")
	return b.String()
}

func dockerCredentialsText(id config.Identity, creds map[string]config.ServiceCredential, now time.Time) string {
	password := "D0cker!Hub"
	if cred, ok := creds["docker.com"]; ok {
		password = cred.Password
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Docker Hub Credentials\n# User: %s\n\n", id.Username)
	b.WriteString("Docker Hub:\n")
	fmt.Fprintf(&b, "  Username: %s\n", id.Username)
	fmt.Fprintf(&b, "  Password: %s\n", password)
	fmt.Fprintf(&b, "  Email: %s\n\n", id.Email)
	b.WriteString("Registry: https://index.docker.io/v1/\n\n")
	b.WriteString("Repositories:\n")
	fmt.Fprintf(&b, "  - %s/web-app:latest\n", id.Username)
	fmt.Fprintf(&b, "  - %s/api-server:v1.2\n", id.Username)
	fmt.Fprintf(&b, "  - %s/database:postgres-14\n\n", id.Username)
	fmt.Fprintf(&b, "Last Login: %s\n", now.Format("January 02, 2006"))
	return b.String()
}

func awsCredentialsText(rng *rand.Rand, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# AWS Credentials\n# Generated: %s\n\n", now.Format("2006-01-02"))
	for _, profile := range []struct{ name, region string }{
		{"default", "us-west-2"},
		{"production", "us-east-1"},
		{"staging", "us-west-1"},
	} {
		fmt.Fprintf(&b, "[%s]\n", profile.name)
		fmt.Fprintf(&b, "aws_access_key_id = AKIA%s\n", randutil.UpperString(rng, 16))
		fmt.Fprintf(&b, "aws_secret_access_key = %s\n", randutil.String(rng, 40))
		fmt.Fprintf(&b, "region = %s\noutput = json\n\n", profile.region)
	}
	return b.String()
}

func npmConfigText(id config.Identity, rng *rand.Rand) string {
	token, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		token = uuid.Nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# NPM Configuration\n# User: %s\n\n", id.Username)
	fmt.Fprintf(&b, "//registry.npmjs.org/:_authToken=%s\n", token)
	fmt.Fprintf(&b, "email=%s\n", id.Email)
	fmt.Fprintf(&b, "init-author-name=%s\n", id.Name)
	fmt.Fprintf(&b, "init-author-email=%s\n", id.Email)
	fmt.Fprintf(&b, "init-author-url=https://github.com/%s\n", id.Username)
	b.WriteString("init-license=MIT\n")
	return b.String()
}
