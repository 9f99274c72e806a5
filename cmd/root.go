package cmd

import (
	"fmt"
	"os"

	"github.com/stakahashi/commitspan/config"
	"github.com/stakahashi/commitspan/internal/output"
	"github.com/urfave/cli/v2"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "commitspan",
		Usage:   "Resolve the commit range a work report should cover",
		Version: "1.0.0",
		Commands: []*cli.Command{
			ListCmd(),
			TagsCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		},
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   "Branch to resolve against (default: current HEAD)",
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "Repository backend (go-git, cli)",
			Value: "go-git",
		},
		&cli.IntFlag{
			Name:    "top",
			Aliases: []string{"n"},
			Usage:   "Number of entries to show (0 = all)",
		},
	}
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch s {
	case "json":
		return output.FormatJSON
	case "markdown", "md":
		return output.FormatMarkdown
	default:
		return output.FormatConsole
	}
}

// loadConfig loads configuration from file or defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply author filter overrides from CLI
	if includes := c.StringSlice("author"); len(includes) > 0 {
		cfg.Authors.Include = includes
	}
	if excludes := c.StringSlice("exclude-author"); len(excludes) > 0 {
		cfg.Authors.Exclude = excludes
	}

	return cfg, nil
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
