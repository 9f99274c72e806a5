package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// createTestRepo creates a temporary git repository for end-to-end tests.
func createTestRepo(t *testing.T) (string, *gogit.Repository, *gogit.Worktree) {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("Failed to initialize git repo: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}
	return dir, repo, wt
}

// addCommit writes a file and commits it with the given author and time.
func addCommit(t *testing.T, dir string, wt *gogit.Worktree, message, filename, authorName string, when time.Time) string {
	t.Helper()

	full := filepath.Join(dir, filename)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	content := "Content for " + filename + " at " + when.String() + "\n"
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, err := wt.Add(filename); err != nil {
		t.Fatalf("Failed to add file: %v", err)
	}

	sig := &object.Signature{Name: authorName, Email: authorName + "@example.com", When: when}
	hash, err := wt.Commit(message, &gogit.CommitOptions{Author: sig, Committer: sig})
	if err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}
	return hash.String()
}

// checkoutBranch switches branches, creating the branch when asked to.
func checkoutBranch(t *testing.T, wt *gogit.Worktree, name string, create bool) {
	t.Helper()

	err := wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
		Create: create,
	})
	if err != nil {
		t.Fatalf("Failed to checkout %s: %v", name, err)
	}
}
