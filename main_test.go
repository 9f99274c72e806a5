package main

import (
	"context"
	"testing"
	"time"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stakahashi/commitspan/internal/git"
	"github.com/stakahashi/commitspan/internal/revrange"
)

// TestResolveAgainstTag_RealRepository builds an actual repository where main
// and feature diverge, tags main's tip, and checks that resolving a tag
// selection from feature returns exactly the feature-only commits.
func TestResolveAgainstTag_RealRepository(t *testing.T) {
	dir, repo, wt := createTestRepo(t)
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	addCommit(t, dir, wt, "initial", "README.md", "alice", base)

	checkoutBranch(t, wt, "feature", true)
	featureHashes := []string{
		addCommit(t, dir, wt, "feature 1", "f1.txt", "alice", base.Add(1*time.Hour)),
		addCommit(t, dir, wt, "feature 2", "f2.txt", "alice", base.Add(2*time.Hour)),
		addCommit(t, dir, wt, "feature 3", "f3.txt", "bob", base.Add(3*time.Hour)),
		addCommit(t, dir, wt, "feature 4", "f4.txt", "alice", base.Add(4*time.Hour)),
	}

	checkoutBranch(t, wt, "master", false)
	mainTip := addCommit(t, dir, wt, "main advance", "main.txt", "alice", base.Add(90*time.Minute))
	if _, err := repo.CreateTag("target-tag", plumbing.NewHash(mainTip), nil); err != nil {
		t.Fatalf("CreateTag: %v", err)
	}
	checkoutBranch(t, wt, "feature", false)

	reader, err := git.NewHistoryReader(dir)
	if err != nil {
		t.Fatalf("NewHistoryReader: %v", err)
	}

	ctx := context.Background()
	target, err := reader.GetCommit(ctx, "target-tag")
	if err != nil {
		t.Fatalf("GetCommit(target-tag): %v", err)
	}
	if target.Hash != mainTip {
		t.Fatalf("tag resolved to %s, expected %s", target.Hash, mainTip)
	}

	sel := revrange.NewTagSelection("target-tag", target.Hash, target.When)
	commits, err := revrange.ResolveCommits(ctx, reader, sel)
	if err != nil {
		t.Fatalf("ResolveCommits: %v", err)
	}

	if len(commits) != 4 {
		hashes := make([]string, len(commits))
		for i, c := range commits {
			hashes[i] = c.ShortHash() + " " + c.Message
		}
		t.Fatalf("got %d commits, expected 4: %v", len(commits), hashes)
	}

	// Head-log order: most recent feature commit first.
	for i, c := range commits {
		want := featureHashes[len(featureHashes)-1-i]
		if c.Hash != want {
			t.Errorf("commit %d = %s (%s), expected %s", i, c.Hash, c.Message, want)
		}
	}
}

// TestResolveByDays_RealRepository checks the time-window variant end to end,
// including the inclusive cutoff boundary.
func TestResolveByDays_RealRepository(t *testing.T) {
	dir, _, wt := createTestRepo(t)
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	cutoff := now.AddDate(0, 0, -7)

	addCommit(t, dir, wt, "too old", "old.txt", "alice", cutoff.Add(-time.Minute))
	onCutoff := addCommit(t, dir, wt, "on the cutoff", "edge.txt", "alice", cutoff)
	recent := addCommit(t, dir, wt, "recent", "new.txt", "alice", now.Add(-time.Hour))

	reader, err := git.NewHistoryReader(dir)
	if err != nil {
		t.Fatalf("NewHistoryReader: %v", err)
	}

	sel := revrange.NewDaysSelection(7, now)
	commits, err := revrange.ResolveCommits(context.Background(), reader, sel)
	if err != nil {
		t.Fatalf("ResolveCommits: %v", err)
	}

	if len(commits) != 2 {
		t.Fatalf("got %d commits, expected 2", len(commits))
	}
	if commits[0].Hash != recent || commits[1].Hash != onCutoff {
		t.Errorf("got [%s %s], expected [%s %s]",
			commits[0].Hash, commits[1].Hash, recent, onCutoff)
	}
}
