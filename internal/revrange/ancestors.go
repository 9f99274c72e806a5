package revrange

import (
	"context"

	"github.com/stakahashi/commitspan/internal/git"
)

// CollectAncestors walks the parent graph breadth-first from startHash and
// returns the set of commit identifiers reachable from it, including the
// start itself. The walk stops once maxCommits identifiers have been
// collected, so on large histories the set covers only the nearest
// breadth-first shells.
//
// Per-node fetch failures are deliberately absorbed: a missing or unreadable
// commit counts as visited and contributes no parents, and the walk carries
// on through the rest of the frontier. A single unreachable node must not
// abort the whole ancestry computation.
func CollectAncestors(ctx context.Context, repo git.Repository, startHash string, maxCommits int) map[string]struct{} {
	visited := make(map[string]struct{})

	start := NormalizeHash(startHash)
	if start == "" || maxCommits <= 0 {
		return visited
	}

	queue := []string{start}
	visited[start] = struct{}{}

	for len(queue) > 0 && len(visited) < maxCommits {
		hash := queue[0]
		queue = queue[1:]

		commit, err := repo.GetCommit(ctx, hash)
		if err != nil {
			continue
		}

		for _, parent := range commit.Parents {
			raw, ok := parent.Hash()
			if !ok {
				// Unknown parent shape: the edge carries no identifier.
				continue
			}
			p := NormalizeHash(raw)
			if p == "" {
				continue
			}
			if _, seen := visited[p]; seen {
				continue
			}
			if len(visited) >= maxCommits {
				return visited
			}
			// Dedup at enqueue time so highly-merged graphs cannot grow
			// the queue without bound.
			visited[p] = struct{}{}
			queue = append(queue, p)
		}
	}

	return visited
}
