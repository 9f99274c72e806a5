package output

import (
	"time"

	"github.com/stakahashi/commitspan/internal/git"
	"github.com/stakahashi/commitspan/internal/revrange"
)

// Compile-time interface conformance checks.
var (
	_ RangeReportWriter = (*ConsoleRangeWriter)(nil)
	_ RangeReportWriter = (*JSONRangeWriter)(nil)
	_ RangeReportWriter = (*MarkdownRangeWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatMarkdown OutputFormat = "markdown"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	Top        int
	OutputPath string
}

// RangeReport holds a resolved commit range ready for rendering.
type RangeReport struct {
	RepoPath    string
	Branch      string
	Selection   revrange.Selection
	GeneratedAt time.Time
	Commits     []git.Commit
}

// RangeReportWriter writes commit range reports.
type RangeReportWriter interface {
	Write(report *RangeReport, options OutputOptions) error
}

// NewRangeReportWriter returns the writer for the requested format.
func NewRangeReportWriter(format OutputFormat) RangeReportWriter {
	switch format {
	case FormatJSON:
		return &JSONRangeWriter{}
	case FormatMarkdown:
		return &MarkdownRangeWriter{}
	default:
		return &ConsoleRangeWriter{}
	}
}
