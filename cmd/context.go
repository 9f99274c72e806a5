package cmd

import (
	"fmt"

	"github.com/stakahashi/commitspan/config"
	"github.com/stakahashi/commitspan/internal/git"
	"github.com/urfave/cli/v2"
)

// repoBackend is the full capability a command needs from a repository:
// the core query interface plus tag listing.
type repoBackend interface {
	git.Repository
	git.TagLister
}

// CommandContext holds common state for command execution.
// It encapsulates the shared setup logic across commands.
type CommandContext struct {
	Config   *config.Config
	RepoPath string
	Branch   string
	Repo     repoBackend
}

// NewCommandContext creates a context from CLI flags.
// It performs configuration loading and repository opening.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	repoPath := c.String("repo")
	repo, err := openRepository(repoPath, c.String("backend"))
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	return &CommandContext{
		Config:   cfg,
		RepoPath: repoPath,
		Branch:   c.String("branch"),
		Repo:     repo,
	}, nil
}

// Queryable returns the repository scoped to the selected branch, ready for
// range resolution.
func (ctx *CommandContext) Queryable() git.Repository {
	return git.ScopeToRef(ctx.Repo, ctx.Branch)
}

func openRepository(repoPath, backend string) (repoBackend, error) {
	switch backend {
	case "", "go-git":
		return git.NewHistoryReader(repoPath)
	case "cli", "git":
		return git.NewCLIReader(repoPath), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (expected go-git or cli)", backend)
	}
}
