package revrange

import (
	"fmt"
	"time"
)

// SelectionKind tags the variants of a range selection.
type SelectionKind string

const (
	// SelectionDays filters the log by a time cutoff.
	SelectionDays SelectionKind = "days"
	// SelectionTag compares the branch head against a tag's commit.
	SelectionTag SelectionKind = "tag"
	// SelectionCommit compares the branch head against a specific commit.
	SelectionCommit SelectionKind = "commit"
)

// Selection describes how far back a report should look. It is built by one
// of the constructors below and never mutated afterwards.
//
// Every variant carries Since as a display/reference instant, but only the
// days variant uses it as the actual filter predicate; the tag and commit
// variants filter by graph ancestry instead.
type Selection struct {
	Kind SelectionKind

	// Days is the day count for the days variant.
	Days int
	// TagName is the tag's name for the tag variant.
	TagName string
	// TargetHash is the comparison commit for the tag and commit variants.
	TargetHash string

	// Since is the reference instant: the cutoff for the days variant, the
	// target commit's author time otherwise.
	Since time.Time
}

// NewDaysSelection selects everything authored in the last `days` days,
// with the cutoff computed from now.
func NewDaysSelection(days int, now time.Time) Selection {
	return Selection{
		Kind:  SelectionDays,
		Days:  days,
		Since: now.AddDate(0, 0, -days),
	}
}

// NewTagSelection selects everything on the current branch since the commit
// the named tag points to.
func NewTagSelection(name, hash string, when time.Time) Selection {
	return Selection{
		Kind:       SelectionTag,
		TagName:    name,
		TargetHash: hash,
		Since:      when,
	}
}

// NewCommitSelection selects everything on the current branch since the given
// commit.
func NewCommitSelection(hash string, when time.Time) Selection {
	return Selection{
		Kind:       SelectionCommit,
		TargetHash: hash,
		Since:      when,
	}
}

// Label returns a short human-readable description of the selection.
func (s Selection) Label() string {
	switch s.Kind {
	case SelectionDays:
		if s.Days == 1 {
			return "last day"
		}
		return fmt.Sprintf("last %d days", s.Days)
	case SelectionTag:
		return fmt.Sprintf("since tag %s", s.TagName)
	case SelectionCommit:
		return fmt.Sprintf("since commit %.8s", NormalizeHash(s.TargetHash))
	default:
		return string(s.Kind)
	}
}
