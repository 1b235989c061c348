package appdata

import (
	"archive/zip"
	"bytes"
	"crypto/sha256"
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/runnerr0/patina/internal/config"
	"github.com/runnerr0/patina/internal/layout"
	"github.com/runnerr0/patina/internal/randutil"
	"github.com/runnerr0/patina/internal/render"
)

type downloadRecord struct {
	name        string
	description string
	sizeMB      float64
	source      string
}

// downloadCatalog lists every file the download history reports. Dated
// names derive from the run clock so the history stays inside its
// thirty-day window.
func downloadCatalog(now time.Time) []downloadRecord {
	taxBundle := fmt.Sprintf("tax_returns_%d.zip", now.Year()-1)
	logsArchive := fmt.Sprintf("logs_archive_%s.7z", now.AddDate(0, 0, -30).Format("2006-01-02"))
	invoice := fmt.Sprintf("invoice_%s.pdf", now.AddDate(0, 0, -10).Format("2006-01-02"))

	return []downloadRecord{
		{"ChromeSetup.exe", "Google Chrome installer", 1.3, "Chrome"},
		{"FirefoxInstaller.exe", "Firefox installer", 54.2, "Firefox"},
		{"MicrosoftEdgeSetup.exe", "Edge installer", 2.1, "Edge"},
		{"vlc-3.0.20-win64.exe", "VLC installer", 40.5, "Chrome"},
		{"ZoomInstallerFull.msi", "Zoom client", 67.2, "Edge"},
		{"winrar-x64-701.exe", "WinRAR archive utility", 3.4, "Firefox"},
		{"7z2408-x64.exe", "7-Zip archive utility", 1.7, "Chrome"},
		{"Docker_Desktop_Installer.exe", "Docker Desktop", 512.0, "Chrome"},
		{"Git-2.42.0-64-bit.exe", "Git for Windows", 48.5, "Edge"},
		{"NotepadPlusPlus-8.6.2-x64.exe", "Notepad++", 4.5, "Firefox"},
		{"BoxDrive.msi", "Box Drive client", 34.4, "Chrome"},
		{"SlackSetup.exe", "Slack desktop", 93.7, "Chrome"},
		{"spotify_installer.exe", "Spotify", 1.1, "Edge"},
		{"AdobeReader_DC_Installer.exe", "Adobe Acrobat Reader", 201.2, "Firefox"},
		{"project_budget.xlsx", "Q4 budget spreadsheet", 0.9, "Chrome"},
		{"client_contract.docx", "Client contract draft", 0.4, "Edge"},
		{taxBundle, "Tax returns bundle", 12.8, "Chrome"},
		{logsArchive, "System logs", 6.1, "Firefox"},
		{"meeting_notes.txt", "Team sync notes", 0.02, "Edge"},
		{"design_assets_v3.rar", "Design assets", 48.2, "Chrome"},
		{invoice, "Vendor invoice", 0.3, "Edge"},
		{"aws_architecture_diagram.png", "Architecture diagram", 0.8, "Firefox"},
	}
}

// installerNames maps applications to the installer file each one shipped
// as. Anything unlisted falls back to <App>_Setup.exe.
var installerNames = map[string]string{
	"Google Chrome":           "ChromeSetup.exe",
	"Mozilla Firefox":         "FirefoxInstaller.exe",
	"Microsoft Edge":          "MicrosoftEdgeSetup.exe",
	"Microsoft Teams":         "TeamsSetup.exe",
	"Zoom":                    "ZoomInstallerFull.msi",
	"VLC Media Player":        "vlc-3.0.20-win64.exe",
	"WinRAR":                  "winrar-x64-701.exe",
	"7-Zip":                   "7z2408-x64.exe",
	"Visual Studio Code":      "VSCodeUserSetup-x64-1.84.2.exe",
	"Docker Desktop":          "Docker Desktop Installer.exe",
	"Git":                     "Git-2.42.0-64-bit.exe",
	"Google Drive":            "GoogleDriveFSSetup.exe",
	"Dropbox":                 "DropboxInstaller.exe",
	"Microsoft OneDrive":      "OneDriveSetup.exe",
	"Box":                     "BoxDrive.msi",
	"Spotify":                 "spotify_installer.exe",
	"Slack":                   "SlackSetup.exe",
	"Notepad++":               "NotepadPlusPlus-8.6.2-x64.exe",
	"Adobe Acrobat Reader DC": "AdobeReader_DC_Installer.exe",
}

func installerName(app string) string {
	if name, ok := installerNames[app]; ok {
		return name
	}
	return strings.ReplaceAll(app, " ", "_") + "_Setup.exe"
}

// writeInstallers materializes one stub installer per application plus a
// manifest tying each file to its version, install date, and checksum.
func writeInstallers(profiles []appProfile, rng *rand.Rand, downloadsDir string) ([]string, error) {
	dir := filepath.Join(downloadsDir, "Software_Installers")

	var written []string
	manifest := []string{"FAKE INSTALLERS (placeholders for sandbox realism)\n"}

	for _, p := range profiles {
		name := installerName(p.name)
		path := filepath.Join(dir, name)
		data := stubBinary(rng, randutil.Between(rng, 64, 512))
		if err := layout.WriteFile(path, data); err != nil {
			return nil, err
		}
		written = append(written, path)

		manifest = append(manifest, fmt.Sprintf("%s | v%s | %s | sha256=%x",
			name, p.version, p.installDate.Format("2006-01-02"), sha256.Sum256(data)))
	}

	manifestPath := filepath.Join(dir, "INSTALLERS_MANIFEST.txt")
	if err := layout.WriteString(manifestPath, strings.Join(manifest, "\n")+"\n"); err != nil {
		return nil, err
	}
	written = append(written, manifestPath)
	return written, nil
}

// writeDownloadArtifacts materializes the documents and archives the
// download history references, each with its native container format.
func writeDownloadArtifacts(id config.Identity, rng *rand.Rand, now time.Time, downloadsDir string) ([]string, error) {
	var written []string
	add := func(path string, err error) error {
		if err != nil {
			return err
		}
		written = append(written, path)
		return nil
	}

	taxBundle := filepath.Join(downloadsDir, fmt.Sprintf("tax_returns_%d.zip", now.Year()-1))
	readme := fmt.Sprintf("Tax returns bundle for %d.\nExported from the filing archive for %s.\n", now.Year()-1, id.Name)
	if err := add(taxBundle, writeZip(taxBundle, map[string]string{"README.txt": readme})); err != nil {
		return nil, err
	}

	logsArchive := filepath.Join(downloadsDir, fmt.Sprintf("logs_archive_%s.7z", now.AddDate(0, 0, -30).Format("2006-01-02")))
	sevenZip := append([]byte{'7', 'z', 0xBC, 0xAF, 0x27, 0x1C}, stubBinary(rng, 64)...)
	if err := add(logsArchive, layout.WriteFile(logsArchive, sevenZip)); err != nil {
		return nil, err
	}

	rarPath := filepath.Join(downloadsDir, "design_assets_v3.rar")
	rarData := append([]byte("Rar!\x1a\x07\x01\x00"), stubBinary(rng, 96)...)
	if err := add(rarPath, layout.WriteFile(rarPath, rarData)); err != nil {
		return nil, err
	}

	contractPath := filepath.Join(downloadsDir, "client_contract.docx")
	contract := "Client Contract Draft\n\nContract terms and placeholders for signatures.\n"
	if err := add(contractPath, writeZip(contractPath, map[string]string{"document.txt": contract})); err != nil {
		return nil, err
	}

	budgetPath := filepath.Join(downloadsDir, "project_budget.xlsx")
	budget := []render.Sheet{{
		Name: "Budget",
		Rows: [][]interface{}{
			{"Line Item", "Q4 Budget"},
			{"Headcount", 180000},
			{"Infrastructure", 45000},
			{"Tooling", 25000},
		},
	}}
	if err := add(budgetPath, render.WriteWorkbook(budgetPath, budget)); err != nil {
		return nil, err
	}

	invoicePath := filepath.Join(downloadsDir, fmt.Sprintf("invoice_%s.pdf", now.AddDate(0, 0, -10).Format("2006-01-02")))
	err := add(invoicePath, render.WritePDF(invoicePath, "Vendor Invoice", []render.Section{
		{Heading: "Invoice", Body: "Vendor invoice and line items."},
	}))
	if err != nil {
		return nil, err
	}

	notesPath := filepath.Join(downloadsDir, "meeting_notes.txt")
	if err := add(notesPath, layout.WriteString(notesPath, "Meeting Notes\n\nKey decisions and action items.\n")); err != nil {
		return nil, err
	}

	diagramPath := filepath.Join(downloadsDir, "aws_architecture_diagram.png")
	if err := add(diagramPath, render.WritePhoto(diagramPath, "AWS Architecture", 640, 400, rng)); err != nil {
		return nil, err
	}

	return written, nil
}

// writeZip writes a real zip archive with the given entries so archive
// tools can open it.
func writeZip(path string, entries map[string]string) error {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		f, err := w.Create(name)
		if err != nil {
			return fmt.Errorf("zip entry %s: %w", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			return fmt.Errorf("zip entry %s: %w", name, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finish zip %s: %w", path, err)
	}
	return layout.WriteFile(path, buf.Bytes())
}

func writeUsageHistory(id config.Identity, profiles []appProfile, rng *rand.Rand, now time.Time, downloadsDir string) (string, error) {
	var b strings.Builder
	b.WriteString("APPLICATION USAGE HISTORY - Last 60 Days\n")
	fmt.Fprintf(&b, "User: %s\n", id.Name)
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format("2006-01-02 15:04:05"))

	for _, p := range profiles {
		fmt.Fprintf(&b, "%s\n", p.name)
		fmt.Fprintf(&b, "  Sessions: %d\n", randutil.Between(rng, 3, 45))
		fmt.Fprintf(&b, "  Avg Session Length: %d minutes\n", randutil.Between(rng, 5, 80))
		fmt.Fprintf(&b, "  Last Used: %s\n", p.lastUsed.Format("2006-01-02 15:04:05"))
		b.WriteString("  Launch Method: Start Menu / Taskbar\n")
		b.WriteString(strings.Repeat("-", 70) + "\n")
	}

	path := filepath.Join(downloadsDir, "Application_Usage_History.txt")
	if err := layout.WriteString(path, b.String()); err != nil {
		return "", err
	}
	return path, nil
}
