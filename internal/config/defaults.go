package config

// DefaultConfig returns a Config populated with all default values: one
// complete synthetic identity with browsers, documents, and applications.
func DefaultConfig() *Config {
	return &Config{
		Identity: Identity{
			Name:      "John Mathew",
			FirstName: "John",
			LastName:  "Mathew",
			Email:     "john.mathew@beingMalicious.com",
			Username:  "jmathew",
			Company:   "beingMalicious.com",
			SSN:       "547-82-9163-1234",
			Address:   "18470001 Silicon Blvd, Apt 1998119",
			City:      "San Francisco",
			State:     "California",
			Zip:       "971174",
			Phone:     "(4315) 5545-01452",
			BirthDate: "04/15/1985",
		},
		Browsing: BrowsingConfig{
			Categories: DefaultSiteCatalog(),
			Weights: map[string]int{
				"work":          35,
				"social":        15,
				"news":          20,
				"finance":       10,
				"shopping":      10,
				"entertainment": 8,
				"email":         2,
			},
			LookbackDays: 90,
		},
		Browsers: []BrowserConfig{
			{
				Name:          "chrome",
				Label:         "Google Chrome",
				Family:        FamilyChromium,
				Profile:       "Default",
				HistoryEvents: 250,
			},
			{
				Name:          "firefox",
				Label:         "Mozilla Firefox",
				Family:        FamilyGecko,
				Profile:       "default-release",
				HistoryEvents: 200,
			},
			{
				Name:          "edge",
				Label:         "Microsoft Edge",
				Family:        FamilyChromium,
				Profile:       "Default",
				HistoryEvents: 180,
			},
		},
		Credentials: DefaultCredentialMap(),
		Documents: DocumentsConfig{
			DesktopFolders: map[string][]string{
				"Tax Documents": {"2022", "2023", "2024", "2025"},
				"Investments":   {},
				"Office":        {"Reports", "Presentations", "Spreadsheets", "Projects"},
				"Personal":      {"Music", "Photos", "Health", "Receipts"},
			},
			DocumentsFolders: map[string][]string{
				"Work":           {"Projects", "Meetings", "Budgets", "Performance_Reviews", "Training_Materials"},
				"Personal":       {"Finances", "Medical", "Insurance", "Recipes"},
				"Technical_Docs": {},
				"Code_Snippets":  {},
				"Credentials":    {},
				"Invoices":       {},
				"Contracts":      {},
			},
			DownloadsFolders: []string{"Software_Installers", "Documentation", "Archive", "Temp"},
			MeetingNotes:     8,
			Photos:           15,
			MusicTracks:      20,
		},
		Applications: DefaultApplications(),
		Finance:      DefaultFinance(),
	}
}
