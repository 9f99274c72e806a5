package output

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/stakahashi/commitspan/internal/git"
)

// ConsoleRangeWriter writes commit range reports to the console.
type ConsoleRangeWriter struct{}

// Write outputs the commit range report to the console.
func (w *ConsoleRangeWriter) Write(report *RangeReport, options OutputOptions) error {
	commits := limitTop(report.Commits, options.Top)

	color.Green("Commits in range (%s)", report.Selection.Label())
	fmt.Printf("Repository: %s\n", report.RepoPath)
	if report.Branch != "" {
		fmt.Printf("Branch: %s\n", report.Branch)
	}
	fmt.Printf("Since: %s\n", report.Selection.Since.Format(reportDateTimeLayout))
	fmt.Printf("Total commits: %d\n\n", len(report.Commits))

	if len(commits) == 0 {
		fmt.Println("No commits found in the selected range.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tHash\tDate\tAuthor\tMessage")
	for i, c := range commits {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			i+1, c.ShortHash(), c.When.Format(reportDateLayout), c.Author.Name, c.Message)
	}
	return tw.Flush()
}

// WriteTagList prints tags as a console table, most recent first.
func WriteTagList(tags []git.TagRef, top int) error {
	tags = limitTop(tags, top)

	color.Green("Tags")
	if len(tags) == 0 {
		fmt.Println("No tags found.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Name\tCommit\tDate")
	for _, tag := range tags {
		hash := tag.Hash
		if len(hash) > 8 {
			hash = hash[:8]
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", tag.Name, hash, tag.When.Format(reportDateLayout))
	}
	return tw.Flush()
}
