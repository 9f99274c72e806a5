package output

import (
	"fmt"
)

// MarkdownRangeWriter writes commit range reports as Markdown.
type MarkdownRangeWriter struct{}

// Write outputs the commit range report as Markdown.
func (w *MarkdownRangeWriter) Write(report *RangeReport, options OutputOptions) error {
	commits := limitTop(report.Commits, options.Top)

	out, file, err := createWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, "# Commit Report")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	if report.Branch != "" {
		fmt.Fprintf(out, "**Branch:** %s\n\n", report.Branch)
	}
	fmt.Fprintf(out, "**Range:** %s (since %s)\n\n", report.Selection.Label(),
		report.Selection.Since.Format(reportDateLayout))
	fmt.Fprintf(out, "**Total Commits:** %d\n\n", len(report.Commits))

	if len(commits) == 0 {
		fmt.Fprintln(out, "No commits found in the selected range.")
		return nil
	}

	fmt.Fprintln(out, "## Commits")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "| # | Hash | Date | Author | Message |")
	fmt.Fprintln(out, "|---|------|------|--------|---------|")
	for i, c := range commits {
		fmt.Fprintf(out, "| %d | `%s` | %s | %s | %s |\n",
			i+1, c.ShortHash(), c.When.Format(reportDateLayout), c.Author.Name, c.Message)
	}

	return nil
}
