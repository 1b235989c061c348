package cli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	Verbose bool   `long:"verbose" description:"Enable verbose output"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// PopulateCommand — generate the full synthetic environment under a root.
type PopulateCommand struct {
	Root string `long:"root" description:"Destination directory for the synthetic user tree (required)"`
	Seed int64  `long:"seed" description:"Sampling seed; 0 derives one from the clock" default:"0"`
	Only string `long:"only" description:"Run a single stage group: browsers | documents | appdata"`

	globals *GlobalFlags
	version string
}

// StatusCommand — inspect a populated tree without modifying it.
type StatusCommand struct {
	Root string `long:"root" description:"Populated directory to inspect (required)"`
	JSON bool   `long:"json" description:"Output in JSON format"`

	globals *GlobalFlags
	version string
}

// WipeCommand — delete generated content with safety confirmation.
type WipeCommand struct {
	Root  string `long:"root" description:"Populated directory to wipe (required)"`
	All   bool   `long:"all" description:"Required flag to confirm wipe intent"`
	Force bool   `long:"force" description:"Skip safety confirmation prompt"`

	globals *GlobalFlags
	version string
}
