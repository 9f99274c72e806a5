// Package filter narrows a resolved commit list to the authors a report
// should cover.
package filter

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stakahashi/commitspan/internal/git"
)

// AuthorFilter keeps commits whose author matches the include patterns and
// none of the exclude patterns. Patterns are globs matched case-insensitively
// against both the author name and email.
type AuthorFilter struct {
	include []string
	exclude []string
}

// NewAuthorFilter creates a filter from include/exclude glob patterns.
// An empty include list accepts every author.
func NewAuthorFilter(include, exclude []string) *AuthorFilter {
	return &AuthorFilter{include: include, exclude: exclude}
}

// Match reports whether the author passes the filter.
func (f *AuthorFilter) Match(a git.AuthorInfo) bool {
	name := strings.ToLower(a.Name)
	email := strings.ToLower(a.Email)

	// Check exclude patterns first.
	for _, pattern := range f.exclude {
		if matchesAuthor(pattern, name, email) {
			return false
		}
	}

	if len(f.include) == 0 {
		return true
	}

	for _, pattern := range f.include {
		if matchesAuthor(pattern, name, email) {
			return true
		}
	}

	return false
}

// Apply returns the commits whose authors pass the filter, preserving order.
func (f *AuthorFilter) Apply(commits []git.Commit) []git.Commit {
	if len(f.include) == 0 && len(f.exclude) == 0 {
		return commits
	}
	result := make([]git.Commit, 0, len(commits))
	for _, c := range commits {
		if f.Match(c.Author) {
			result = append(result, c)
		}
	}
	return result
}

func matchesAuthor(pattern, name, email string) bool {
	pattern = strings.ToLower(pattern)
	if matched, _ := doublestar.Match(pattern, name); matched {
		return true
	}
	matched, _ := doublestar.Match(pattern, email)
	return matched
}
