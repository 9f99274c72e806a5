package git

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// HistoryReader reads commit history from a Git repository via go-git.
type HistoryReader struct {
	repo *gogit.Repository
}

// NewHistoryReader opens the repository at the given path.
func NewHistoryReader(repoPath string) (*HistoryReader, error) {
	repo, err := gogit.PlainOpen(repoPath)
	if err != nil {
		return nil, err
	}
	return &HistoryReader{repo: repo}, nil
}

// Log returns commits reachable from the ref, most-recent-first, capped at
// opts.MaxEntries.
func (r *HistoryReader) Log(ctx context.Context, opts LogOptions) ([]Commit, error) {
	from, err := r.resolve(opts.Ref)
	if err != nil {
		return nil, err
	}

	iter, err := r.repo.Log(&gogit.LogOptions{From: from})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var commits []Commit
	for opts.MaxEntries <= 0 || len(commits) < opts.MaxEntries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c, err := iter.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		commits = append(commits, convertCommit(c))
	}

	return commits, nil
}

// GetCommit resolves the identifier (full or abbreviated hash, or a ref name)
// to a commit. The error wraps ErrCommitNotFound when resolution fails.
func (r *HistoryReader) GetCommit(_ context.Context, hash string) (Commit, error) {
	hash = strings.TrimSpace(hash)
	if hash == "" {
		return Commit{}, fmt.Errorf("%w: empty identifier", ErrCommitNotFound)
	}

	h, err := r.repo.ResolveRevision(plumbing.Revision(hash))
	if err != nil {
		return Commit{}, fmt.Errorf("%w: %s: %v", ErrCommitNotFound, hash, err)
	}

	// The revision may name an annotated tag object; peel it to the commit.
	c, err := r.peelTag(*h)
	if err != nil {
		if errors.Is(err, plumbing.ErrObjectNotFound) {
			return Commit{}, fmt.Errorf("%w: %s", ErrCommitNotFound, hash)
		}
		return Commit{}, err
	}

	return convertCommit(c), nil
}

// Tags lists the repository's tags, most recently authored first. Annotated
// tags are peeled to the commit they point at; tags that do not resolve to a
// commit are skipped.
func (r *HistoryReader) Tags(ctx context.Context) ([]TagRef, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var tags []TagRef
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		c, err := r.peelTag(ref.Hash())
		if err != nil {
			return nil
		}

		tags = append(tags, TagRef{
			Name: ref.Name().Short(),
			Hash: c.Hash.String(),
			When: c.Author.When,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(tags, func(i, j int) bool {
		return tags[i].When.After(tags[j].When)
	})
	return tags, nil
}

// peelTag resolves a tag reference to its target commit, unwrapping one level
// of annotated tag object if present.
func (r *HistoryReader) peelTag(h plumbing.Hash) (*object.Commit, error) {
	if tag, err := r.repo.TagObject(h); err == nil {
		return tag.Commit()
	}
	return r.repo.CommitObject(h)
}

func (r *HistoryReader) resolve(ref string) (plumbing.Hash, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		head, err := r.repo.Head()
		if err != nil {
			return plumbing.ZeroHash, err
		}
		return head.Hash(), nil
	}
	h, err := r.repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return *h, nil
}

func convertCommit(c *object.Commit) Commit {
	parents := make([]string, 0, c.NumParents())
	for _, p := range c.ParentHashes {
		parents = append(parents, p.String())
	}
	return Commit{
		Hash:    c.Hash.String(),
		Parents: parentHashes(parents),
		When:    c.Author.When,
		Author:  AuthorInfo{Name: c.Author.Name, Email: c.Author.Email},
		Message: firstLine(c.Message),
	}
}
