package cli

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/runnerr0/patina/internal/config"
	"github.com/runnerr0/patina/internal/layout"
	"github.com/runnerr0/patina/internal/logging"
	"github.com/runnerr0/patina/internal/populate"
	"github.com/runnerr0/patina/internal/randutil"
)

// Execute implements the go-flags Commander interface for PopulateCommand.
func (c *PopulateCommand) Execute(args []string) error {
	if c.Root == "" {
		return fmt.Errorf("--root is required for populate command")
	}

	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}

	log := logging.New(c.globals != nil && c.globals.Verbose)
	defer func() { _ = log.Sync() }()

	return c.executeWithConfig(cfg, log, time.Now())
}

// executeWithConfig runs the pipeline against a provided config, logger,
// and clock (for testing).
func (c *PopulateCommand) executeWithConfig(cfg *config.Config, log *zap.SugaredLogger, now time.Time) error {
	pop := populate.New(cfg, layout.New(c.Root), log)
	man, err := pop.Run(c.Seed, c.Only, now)
	if err != nil {
		return err
	}

	c.printSummary(man)
	return nil
}

func (c *PopulateCommand) printSummary(man *populate.Manifest) {
	fmt.Println("Patina Populate")
	fmt.Println("===============")
	fmt.Printf("Run ID:    %s\n", man.RunID)
	fmt.Printf("Seed:      %d\n", man.Seed)
	fmt.Printf("Root:      %s\n", man.Root)
	fmt.Printf("User:      %s <%s>\n", man.User, man.Email)

	fmt.Println()
	fmt.Println("Stages:")
	for _, st := range man.Stages {
		fmt.Printf("  %-14s %5d files %10s\n", st.Name, st.Files, randutil.FileSizeString(st.Bytes))
	}

	fmt.Println()
	fmt.Printf("Total:     %s files, %s in %d directories\n",
		formatNumber(int64(man.TotalFiles)), randutil.FileSizeString(man.TotalBytes), man.Directories)
	fmt.Printf("Manifest:  %s\n", man.Path)
}
