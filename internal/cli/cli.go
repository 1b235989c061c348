package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Populate *PopulateCommand
	Status   *StatusCommand
	Wipe     *WipeCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "patina"
	parser.LongDescription = "Populate a sandbox user directory with a realistic synthetic environment: browser history stores, saved credentials, personal and work documents, and application data."

	cmds := &commands{
		Populate: &PopulateCommand{globals: &globals, version: version},
		Status:   &StatusCommand{globals: &globals, version: version},
		Wipe:     &WipeCommand{globals: &globals, version: version},
	}

	parser.AddCommand("populate", "Generate a synthetic user environment", "Generate the full synthetic user environment under a destination root.", cmds.Populate)
	parser.AddCommand("status", "Inspect a populated tree", "Inspect a populated tree: run manifest summary and per-browser artifact health.", cmds.Status)
	parser.AddCommand("wipe", "Delete generated content", "Delete the generated synthetic content under a root. Destructive operation with safety prompt.", cmds.Wipe)

	return parser, &globals, cmds
}

// Run is the main entry point for the patina CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the matched subcommand.
func RunWithArgs(version string, args []string) error {
	// Handle --version before parser (go-flags requires a subcommand, but
	// --version is valid without one).
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("patina %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
