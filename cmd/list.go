package cmd

import (
	"fmt"
	"time"

	"github.com/stakahashi/commitspan/internal/filter"
	"github.com/stakahashi/commitspan/internal/output"
	"github.com/stakahashi/commitspan/internal/revrange"
	"github.com/urfave/cli/v2"
)

// ListCmd returns the list command.
func ListCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.IntFlag{
			Name:    "days",
			Aliases: []string{"d"},
			Usage:   "Include commits from the last N days",
		},
		&cli.StringFlag{
			Name:    "tag",
			Aliases: []string{"t"},
			Usage:   "Include commits since this tag",
		},
		&cli.StringFlag{
			Name:  "commit",
			Usage: "Include commits since this commit",
		},
		&cli.StringSliceFlag{
			Name:    "author",
			Aliases: []string{"a"},
			Usage:   "Author glob to include (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude-author",
			Usage: "Author glob to exclude (can be specified multiple times)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json, markdown)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
	)

	return &cli.Command{
		Name:    "list",
		Aliases: []string{"l"},
		Usage:   "List the commits in the selected range",
		Flags:   flags,
		Action:  listAction,
	}
}

func listAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	sel, err := buildSelection(c, ctx)
	if err != nil {
		return err
	}

	commits, err := revrange.ResolveCommits(c.Context, ctx.Queryable(), sel)
	if err != nil {
		return fmt.Errorf("failed to resolve commits: %w", err)
	}

	authorFilter := filter.NewAuthorFilter(ctx.Config.Authors.Include, ctx.Config.Authors.Exclude)
	commits = authorFilter.Apply(commits)

	report := &output.RangeReport{
		RepoPath:    ctx.RepoPath,
		Branch:      ctx.Branch,
		Selection:   sel,
		GeneratedAt: time.Now(),
		Commits:     commits,
	}

	format := c.String("format")
	if format == "" {
		format = ctx.Config.Report.Format
	}
	top := c.Int("top")
	if top == 0 {
		top = ctx.Config.Report.Top
	}

	writer := output.NewRangeReportWriter(getOutputFormat(format))
	return writer.Write(report, output.OutputOptions{
		Format:     getOutputFormat(format),
		Top:        top,
		OutputPath: c.String("output"),
	})
}

// buildSelection turns the mutually exclusive range flags into a Selection.
// With no range flag set, the configured default day window applies.
func buildSelection(c *cli.Context, ctx *CommandContext) (revrange.Selection, error) {
	days := c.Int("days")
	tag := c.String("tag")
	commit := c.String("commit")

	set := 0
	for _, chosen := range []bool{days > 0, tag != "", commit != ""} {
		if chosen {
			set++
		}
	}
	if set > 1 {
		return revrange.Selection{}, fmt.Errorf("--days, --tag and --commit are mutually exclusive")
	}

	switch {
	case tag != "":
		target, err := ctx.Repo.GetCommit(c.Context, tag)
		if err != nil {
			return revrange.Selection{}, fmt.Errorf("cannot resolve tag %q: %w", tag, err)
		}
		return revrange.NewTagSelection(tag, target.Hash, target.When), nil
	case commit != "":
		target, err := ctx.Repo.GetCommit(c.Context, commit)
		if err != nil {
			return revrange.Selection{}, fmt.Errorf("cannot resolve commit %q: %w", commit, err)
		}
		return revrange.NewCommitSelection(target.Hash, target.When), nil
	default:
		if days <= 0 {
			days = ctx.Config.Report.DefaultDays
		}
		return revrange.NewDaysSelection(days, time.Now()), nil
	}
}
