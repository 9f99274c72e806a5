package revrange

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stakahashi/commitspan/internal/git"
	"pgregory.net/rapid"
)

// --- Generators ---

func genHash() *rapid.Generator[string] {
	return rapid.StringMatching(`[ \t]*[0-9a-f]{0,12}[ \t]*`)
}

// --- Property Tests ---

func TestRapidNormalizeHash_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := genHash().Draw(t, "hash")

		once := NormalizeHash(s)
		twice := NormalizeHash(once)

		if once != twice {
			t.Fatalf("NormalizeHash not idempotent: %q -> %q -> %q", s, once, twice)
		}
	})
}

func TestRapidCollectAncestors_NeverExceedsCap(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		chainLen := rapid.IntRange(1, 60).Draw(t, "chainLen")
		maxCommits := rapid.IntRange(1, 80).Draw(t, "maxCommits")

		repo := git.NewMockRepository(nil)
		hashes := make([]string, chainLen)
		for i := range hashes {
			hashes[i] = fmt.Sprintf("h%04d", i)
		}
		for i := range hashes {
			c := git.Commit{Hash: hashes[i], When: time.Unix(int64(i), 0)}
			if i > 0 {
				c.Parents = []git.ParentRef{git.ParentHash(hashes[i-1])}
			}
			repo.Add(c)
		}

		got := CollectAncestors(context.Background(), repo, hashes[chainLen-1], maxCommits)

		want := chainLen
		if maxCommits < want {
			want = maxCommits
		}
		if len(got) != want {
			t.Fatalf("collected %d ancestors from chain %d with cap %d, expected %d",
				len(got), chainLen, maxCommits, want)
		}
	})
}

func TestRapidCollectAncestors_MembersAreNormalized(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		start := genHash().Draw(t, "start")
		repo := git.NewMockRepository(nil)

		got := CollectAncestors(context.Background(), repo, start, 50)

		for h := range got {
			if NormalizeHash(h) != h {
				t.Fatalf("set contains unnormalized identifier %q", h)
			}
			if h == "" {
				t.Fatal("set contains empty identifier")
			}
		}
	})
}
