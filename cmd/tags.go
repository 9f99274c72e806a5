package cmd

import (
	"fmt"

	"github.com/stakahashi/commitspan/internal/output"
	"github.com/urfave/cli/v2"
)

// TagsCmd returns the tags command.
func TagsCmd() *cli.Command {
	return &cli.Command{
		Name:   "tags",
		Usage:  "List recent tags usable as comparison points",
		Flags:  commonFlags(),
		Action: tagsAction,
	}
}

func tagsAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	tags, err := ctx.Repo.Tags(c.Context)
	if err != nil {
		return fmt.Errorf("failed to list tags: %w", err)
	}

	return output.WriteTagList(tags, c.Int("top"))
}
