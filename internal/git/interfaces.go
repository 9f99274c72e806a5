package git

import (
	"context"
	"errors"
)

// ErrCommitNotFound is returned (wrapped) by GetCommit when an identifier
// cannot be resolved to a commit in the repository.
var ErrCommitNotFound = errors.New("commit not found")

// LogOptions configures a bounded history query.
type LogOptions struct {
	// MaxEntries caps the number of commits returned. Zero or negative means
	// the backend's own limit applies; callers in this codebase always set it.
	MaxEntries int
	// Ref selects the starting point. Empty means the current HEAD.
	Ref string
}

// Repository defines the query capability the range resolver consumes.
// This abstraction allows the core to be tested against an in-memory fake
// rather than any specific version-control backend.
type Repository interface {
	// Log returns commits reachable from the ref, most-recent-first,
	// at most MaxEntries of them.
	Log(ctx context.Context, opts LogOptions) ([]Commit, error)

	// GetCommit returns the commit named by the identifier. The error wraps
	// ErrCommitNotFound when the identifier cannot be resolved.
	GetCommit(ctx context.Context, hash string) (Commit, error)
}

// TagLister lists tags usable as comparison points, most recent first.
type TagLister interface {
	Tags(ctx context.Context) ([]TagRef, error)
}

// ScopeToRef returns a Repository whose Log queries start from the given ref
// unless the caller names one explicitly. GetCommit is unaffected.
func ScopeToRef(repo Repository, ref string) Repository {
	if ref == "" {
		return repo
	}
	return refScoped{Repository: repo, ref: ref}
}

type refScoped struct {
	Repository
	ref string
}

func (r refScoped) Log(ctx context.Context, opts LogOptions) ([]Commit, error) {
	if opts.Ref == "" {
		opts.Ref = r.ref
	}
	return r.Repository.Log(ctx, opts)
}

// Compile-time interface conformance checks.
var (
	_ Repository = (*HistoryReader)(nil)
	_ Repository = (*CLIReader)(nil)

	_ TagLister = (*HistoryReader)(nil)
	_ TagLister = (*CLIReader)(nil)
)
