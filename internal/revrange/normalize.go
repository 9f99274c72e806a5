package revrange

import (
	"strings"

	"github.com/stakahashi/commitspan/internal/git"
)

// NormalizeHash trims incidental whitespace from a commit identifier.
// An empty result means the identifier is absent.
func NormalizeHash(hash string) string {
	return strings.TrimSpace(hash)
}

// normalizeCommit returns the commit with a normalized identifier. The hash
// field is rewritten only when trimming actually changed it.
func normalizeCommit(c git.Commit) git.Commit {
	if h := NormalizeHash(c.Hash); h != c.Hash {
		c.Hash = h
	}
	return c
}
