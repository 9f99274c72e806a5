package filter

import (
	"testing"

	"github.com/stakahashi/commitspan/internal/git"
)

func TestAuthorFilter_Match(t *testing.T) {
	alice := git.AuthorInfo{Name: "Alice Example", Email: "alice@example.com"}
	bot := git.AuthorInfo{Name: "CI Bot", Email: "bot@ci.example.com"}

	tests := []struct {
		name    string
		include []string
		exclude []string
		author  git.AuthorInfo
		want    bool
	}{
		{name: "NoPatternsAcceptsAll", author: alice, want: true},
		{name: "IncludeByEmail", include: []string{"alice@*"}, author: alice, want: true},
		{name: "IncludeByName", include: []string{"alice*"}, author: alice, want: true},
		{name: "IncludeCaseInsensitive", include: []string{"ALICE@*"}, author: alice, want: true},
		{name: "IncludeMiss", include: []string{"carol@*"}, author: alice, want: false},
		{name: "ExcludeBots", exclude: []string{"*bot*"}, author: bot, want: false},
		{name: "ExcludeWins", include: []string{"*"}, exclude: []string{"*@ci.*"}, author: bot, want: false},
		{name: "ExcludeLeavesOthers", exclude: []string{"*bot*"}, author: alice, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewAuthorFilter(tt.include, tt.exclude)
			if got := f.Match(tt.author); got != tt.want {
				t.Errorf("Match(%v) = %v, expected %v", tt.author, got, tt.want)
			}
		})
	}
}

func TestAuthorFilter_Apply(t *testing.T) {
	commits := []git.Commit{
		{Hash: "a", Author: git.AuthorInfo{Name: "Alice", Email: "alice@example.com"}},
		{Hash: "b", Author: git.AuthorInfo{Name: "Bob", Email: "bob@example.com"}},
		{Hash: "c", Author: git.AuthorInfo{Name: "Alice", Email: "alice@example.com"}},
	}

	t.Run("PreservesOrder", func(t *testing.T) {
		f := NewAuthorFilter([]string{"alice@*"}, nil)
		got := f.Apply(commits)
		if len(got) != 2 || got[0].Hash != "a" || got[1].Hash != "c" {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("NoPatternsReturnsInput", func(t *testing.T) {
		f := NewAuthorFilter(nil, nil)
		got := f.Apply(commits)
		if len(got) != 3 {
			t.Fatalf("got %d commits, expected 3", len(got))
		}
	})
}
