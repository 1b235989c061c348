package config

// DefaultApplications returns the installed-software inventory for the
// default environment, ordered roughly by how prominent the traces each
// application leaves are.
func DefaultApplications() []string {
	return []string{
		// Browsers
		"Google Chrome",
		"Mozilla Firefox",
		"Microsoft Edge",

		// Cloud storage
		"Google Drive",
		"Box",
		"Dropbox",
		"Microsoft OneDrive",

		// Office & communication
		"Microsoft Office 365",
		"Microsoft Teams",
		"Zoom",
		"Slack",

		// Media & utilities
		"VLC Media Player",
		"WinRAR",
		"7-Zip",
		"Adobe Acrobat Reader DC",
		"Notepad++",
		"Spotify",

		// Development
		"Visual Studio Code",
		"Git",
		"Python 3.11",
		"Node.js",
		"Docker Desktop",
		"FileZilla",
		"Putty",
	}
}
