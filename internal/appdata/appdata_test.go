package appdata

import (
	"archive/zip"
	"crypto/sha256"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/patina/internal/config"
	"github.com/runnerr0/patina/internal/layout"
)

func appConfig() *config.Config {
	return &config.Config{
		Identity: config.Identity{
			Name:  "Dana Reyes",
			Email: "dana.reyes@northwind.io",
		},
		Applications: []string{"Google Chrome", "Visual Studio Code", "Putty"},
	}
}

func TestBuildProfiles(t *testing.T) {
	now := time.Date(2025, time.August, 25, 0, 0, 0, 0, time.UTC)
	apps := []string{"Google Chrome", "Slack", "Git"}

	profiles := buildProfiles(apps, rand.New(rand.NewSource(1)), now)
	require.Len(t, profiles, 3)

	for i, p := range profiles {
		assert.Equal(t, apps[i], p.name)
		assert.Regexp(t, `^\d{1,2}\.\d\.\d{1,2}$`, p.version)
		assert.True(t, p.installDate.Before(now))
		assert.True(t, p.installDate.After(now.AddDate(0, 0, -1001)))
		assert.False(t, p.lastUsed.After(now))
		assert.GreaterOrEqual(t, p.sizeMB, 50)
		assert.LessOrEqual(t, p.sizeMB, 2000)
	}

	again := buildProfiles(apps, rand.New(rand.NewSource(1)), now)
	assert.Equal(t, profiles, again)
}

func TestGenerate(t *testing.T) {
	cfg := appConfig()
	tree := layout.New(t.TempDir())
	now := time.Date(2025, time.August, 25, 14, 0, 0, 0, time.UTC)

	written, err := Generate(cfg, tree, rand.New(rand.NewSource(5)), now)
	require.NoError(t, err)
	// 4 inventory files, 9 footprint files, 4 installer files, 8 download
	// artifacts, usage history.
	require.Len(t, written, 26)

	downloads := tree.Downloads()
	for _, name := range []string{
		"Installed_Applications.txt",
		"Recent_App_Activity.txt",
		"Software_Licenses.txt",
		"Download_History.txt",
		"Application_Usage_History.txt",
		"tax_returns_2024.zip",
		"meeting_notes.txt",
		filepath.Join("Software_Installers", "ChromeSetup.exe"),
		filepath.Join("Software_Installers", "INSTALLERS_MANIFEST.txt"),
	} {
		_, err := os.Stat(filepath.Join(downloads, name))
		assert.NoError(t, err, name)
	}

	// Footprints exist for each app under both roots.
	_, err = os.Stat(filepath.Join(tree.ProgramFiles(), "Visual_Studio_Code", "install.log"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(tree.AppDataRoaming(), "Putty", "usage.log"))
	assert.NoError(t, err)
}

func TestInstallerName(t *testing.T) {
	assert.Equal(t, "ChromeSetup.exe", installerName("Google Chrome"))
	assert.Equal(t, "7z2408-x64.exe", installerName("7-Zip"))
	assert.Equal(t, "Putty_Setup.exe", installerName("Putty"))
	assert.Equal(t, "Python_3.11_Setup.exe", installerName("Python 3.11"))
}

func TestInstallerManifestChecksums(t *testing.T) {
	tree := layout.New(t.TempDir())
	now := time.Date(2025, time.August, 25, 0, 0, 0, 0, time.UTC)
	profiles := buildProfiles([]string{"Git", "Slack"}, rand.New(rand.NewSource(2)), now)

	written, err := writeInstallers(profiles, rand.New(rand.NewSource(2)), tree.Downloads())
	require.NoError(t, err)
	require.Len(t, written, 3)

	manifest, err := os.ReadFile(written[len(written)-1])
	require.NoError(t, err)

	for _, path := range written[:len(written)-1] {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, byte('M'), data[0])
		assert.Equal(t, byte('Z'), data[1])

		assert.Contains(t, string(manifest), fmt.Sprintf("sha256=%x", sha256.Sum256(data)))
		assert.Contains(t, string(manifest), filepath.Base(path))
	}
}

func TestDownloadArtifactZipOpens(t *testing.T) {
	cfg := appConfig()
	tree := layout.New(t.TempDir())
	now := time.Date(2025, time.August, 25, 0, 0, 0, 0, time.UTC)

	_, err := writeDownloadArtifacts(cfg.Identity, rand.New(rand.NewSource(3)), now, tree.Downloads())
	require.NoError(t, err)

	r, err := zip.OpenReader(filepath.Join(tree.Downloads(), "tax_returns_2024.zip"))
	require.NoError(t, err)
	defer r.Close()

	require.Len(t, r.File, 1)
	assert.Equal(t, "README.txt", r.File[0].Name)
}

func TestDownloadCatalogDatedNames(t *testing.T) {
	now := time.Date(2025, time.August, 25, 0, 0, 0, 0, time.UTC)
	catalog := downloadCatalog(now)
	require.Len(t, catalog, 22)

	var names []string
	for _, d := range catalog {
		names = append(names, d.name)
	}
	assert.Contains(t, names, "tax_returns_2024.zip")
	assert.Contains(t, names, "logs_archive_2025-07-26.7z")
	assert.Contains(t, names, "invoice_2025-08-15.pdf")
}

func TestLicensesTextRenewals(t *testing.T) {
	cfg := appConfig()
	now := time.Date(2025, time.August, 25, 0, 0, 0, 0, time.UTC)

	text := licensesText(cfg.Identity, rand.New(rand.NewSource(9)), now)

	// Only active subscriptions renew: Office 365, Zoom, Spotify,
	// JetBrains, Slack.
	assert.Equal(t, 5, strings.Count(text, "Next Renewal:"))
	assert.Equal(t, 7, strings.Count(text, "License Key:"))
	assert.Regexp(t, `License Key: [0-9A-F]{8}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{12}`, text)
	assert.Contains(t, text, "Status: Expired (Still works)")
}

func TestInstalledAppsTextListsEveryApp(t *testing.T) {
	cfg := appConfig()
	now := time.Date(2025, time.August, 25, 10, 0, 0, 0, time.UTC)
	profiles := buildProfiles(cfg.Applications, rand.New(rand.NewSource(4)), now)

	text := installedAppsText(cfg.Identity, profiles, now)

	assert.Contains(t, text, "Computer: Dana Reyes's Workstation")
	assert.Contains(t, text, "1. Google Chrome")
	assert.Contains(t, text, "3. Putty")
	assert.Contains(t, text, "Operating System: Windows 11 Pro")
}
