package revrange

import (
	"context"
	"fmt"

	"github.com/stakahashi/commitspan/internal/git"
)

// MaxLogEntries bounds every log fetch and every ancestor-search cap in this
// package. Both sides of a comparison are drawn from windows of the same
// size: comparing an unbounded head log against a capped ancestor search
// could report a false "no common ancestor", whereas capping both
// symmetrically makes the limitation visible as an empty result.
const MaxLogEntries = 200

// ResolveCommits returns the commits on the current branch that fall inside
// the selection's range, in the order the log query delivered them.
//
// For the days variant the bounded log is filtered by author time, cutoff
// inclusive. For the tag and commit variants the result is every head commit
// not reachable from the selection's target within the capped ancestor
// search — an approximation of "commits unique to the current branch" that
// trades exactness at scale for a bounded single-pass computation.
//
// An empty result is not an error. It is returned alike when the head log is
// empty, when head and target share no detected common ancestor within the
// capped windows, and when every head commit is already reachable from the
// target; callers cannot distinguish the three from the return value.
func ResolveCommits(ctx context.Context, repo git.Repository, sel Selection) ([]git.Commit, error) {
	switch sel.Kind {
	case SelectionDays:
		return resolveByDate(ctx, repo, sel)
	case SelectionTag, SelectionCommit:
		return resolveByTarget(ctx, repo, sel)
	default:
		return nil, fmt.Errorf("unknown selection kind %q", sel.Kind)
	}
}

func resolveByDate(ctx context.Context, repo git.Repository, sel Selection) ([]git.Commit, error) {
	commits, err := repo.Log(ctx, git.LogOptions{MaxEntries: MaxLogEntries})
	if err != nil {
		return nil, err
	}

	result := make([]git.Commit, 0, len(commits))
	for _, c := range commits {
		if c.When.Before(sel.Since) {
			continue
		}
		result = append(result, normalizeCommit(c))
	}
	return result, nil
}

func resolveByTarget(ctx context.Context, repo git.Repository, sel Selection) ([]git.Commit, error) {
	headCommits, err := repo.Log(ctx, git.LogOptions{MaxEntries: MaxLogEntries})
	if err != nil {
		return nil, err
	}
	if len(headCommits) == 0 {
		return []git.Commit{}, nil
	}

	targetHashes := CollectAncestors(ctx, repo, sel.TargetHash, MaxLogEntries)

	shared := false
	for _, c := range headCommits {
		if _, ok := targetHashes[NormalizeHash(c.Hash)]; ok {
			shared = true
			break
		}
	}
	if !shared {
		// Head and target share no ancestor within the capped windows.
		// Conservative "unknown divergence" signal, not an error.
		return []git.Commit{}, nil
	}

	result := make([]git.Commit, 0, len(headCommits))
	for _, c := range headCommits {
		if _, ok := targetHashes[NormalizeHash(c.Hash)]; ok {
			continue
		}
		result = append(result, normalizeCommit(c))
	}
	return result, nil
}
