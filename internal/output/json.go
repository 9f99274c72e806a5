package output

import (
	"time"
)

// JSONRangeWriter writes commit range reports as JSON.
type JSONRangeWriter struct{}

// JSONRangeReport is the JSON output structure for a commit range report.
type JSONRangeReport struct {
	RepoPath     string            `json:"repo"`
	Branch       string            `json:"branch,omitempty"`
	Selection    JSONSelection     `json:"selection"`
	GeneratedAt  string            `json:"generatedAt"`
	TotalCommits int               `json:"totalCommits"`
	Commits      []JSONRangeCommit `json:"commits"`
}

// JSONSelection describes the range selection in JSON form.
type JSONSelection struct {
	Kind   string `json:"kind"`
	Days   int    `json:"days,omitempty"`
	Tag    string `json:"tag,omitempty"`
	Target string `json:"target,omitempty"`
	Since  string `json:"since"`
}

// JSONRangeCommit is the JSON output structure for a single commit.
type JSONRangeCommit struct {
	Hash    string `json:"hash"`
	When    string `json:"when"`
	Author  string `json:"author"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Write outputs the commit range report as JSON.
func (w *JSONRangeWriter) Write(report *RangeReport, options OutputOptions) error {
	commits := limitTop(report.Commits, options.Top)

	jsonCommits := make([]JSONRangeCommit, len(commits))
	for i, c := range commits {
		jsonCommits[i] = JSONRangeCommit{
			Hash:    c.Hash,
			When:    c.When.Format(time.RFC3339),
			Author:  c.Author.Name,
			Email:   c.Author.Email,
			Message: c.Message,
		}
	}

	sel := report.Selection
	jsonReport := JSONRangeReport{
		RepoPath: report.RepoPath,
		Branch:   report.Branch,
		Selection: JSONSelection{
			Kind:   string(sel.Kind),
			Days:   sel.Days,
			Tag:    sel.TagName,
			Target: sel.TargetHash,
			Since:  sel.Since.Format(time.RFC3339),
		},
		GeneratedAt:  report.GeneratedAt.Format(time.RFC3339),
		TotalCommits: len(report.Commits),
		Commits:      jsonCommits,
	}

	return writeJSON(jsonReport, options.OutputPath)
}
