package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// CLIReader reads commit history by shelling out to the git binary. It exists
// for repositories go-git cannot open (exotic extensions, partial clones).
type CLIReader struct {
	repoPath string
}

// NewCLIReader creates a reader rooted at the given repository path.
func NewCLIReader(repoPath string) *CLIReader {
	return &CLIReader{repoPath: repoPath}
}

// logFormat produces one NUL-separated record per commit, newline-terminated:
// hash, parent hashes (space-separated), author date (ISO), name, email, subject.
const logFormat = "%H%x00%P%x00%aI%x00%an%x00%ae%x00%s"

// Log returns commits reachable from the ref, most-recent-first.
func (r *CLIReader) Log(ctx context.Context, opts LogOptions) ([]Commit, error) {
	args := []string{
		"-C", r.repoPath,
		"log",
		"--no-color",
		"--pretty=format:" + logFormat,
	}
	if opts.MaxEntries > 0 {
		args = append(args, fmt.Sprintf("--max-count=%d", opts.MaxEntries))
	}
	rev := strings.TrimSpace(opts.Ref)
	if rev != "" && !strings.EqualFold(rev, "HEAD") {
		args = append(args, rev)
	}

	out, err := exec.CommandContext(ctx, "git", args...).CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("git log failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	return parseLogRecords(string(out))
}

// GetCommit resolves the identifier to a single commit. The error wraps
// ErrCommitNotFound when git cannot resolve it.
func (r *CLIReader) GetCommit(ctx context.Context, hash string) (Commit, error) {
	hash = strings.TrimSpace(hash)
	if hash == "" {
		return Commit{}, fmt.Errorf("%w: empty identifier", ErrCommitNotFound)
	}

	args := []string{
		"-C", r.repoPath,
		"log",
		"-1",
		"--no-color",
		"--pretty=format:" + logFormat,
		hash,
	}

	out, err := exec.CommandContext(ctx, "git", args...).CombinedOutput()
	if err != nil {
		return Commit{}, fmt.Errorf("%w: %s: %s", ErrCommitNotFound, hash, strings.TrimSpace(string(out)))
	}

	commits, err := parseLogRecords(string(out))
	if err != nil {
		return Commit{}, err
	}
	if len(commits) == 0 {
		return Commit{}, fmt.Errorf("%w: %s", ErrCommitNotFound, hash)
	}
	return commits[0], nil
}

// Tags lists tags most recently created first, peeling annotated tags.
func (r *CLIReader) Tags(ctx context.Context) ([]TagRef, error) {
	args := []string{
		"-C", r.repoPath,
		"for-each-ref", "refs/tags",
		"--sort=-creatordate",
		"--format=%(refname:short)%00%(objectname)%00%(*objectname)%00%(creatordate:iso-strict)",
	}

	out, err := exec.CommandContext(ctx, "git", args...).CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("git for-each-ref failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	var tags []TagRef
	for _, line := range strings.Split(string(out), "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\x00")
		if len(fields) != 4 {
			continue
		}
		hash := fields[1]
		if fields[2] != "" {
			// Annotated tag: *objectname is the peeled commit.
			hash = fields[2]
		}
		when, err := time.Parse(time.RFC3339, fields[3])
		if err != nil {
			continue
		}
		tags = append(tags, TagRef{Name: fields[0], Hash: hash, When: when})
	}

	return tags, nil
}

// parseLogRecords parses newline-separated, NUL-delimited log records as
// produced by logFormat.
func parseLogRecords(out string) ([]Commit, error) {
	var commits []Commit
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\x00")
		if len(fields) != 6 {
			return nil, fmt.Errorf("malformed git log record: %d fields", len(fields))
		}

		when, err := time.Parse(time.RFC3339, fields[2])
		if err != nil {
			return nil, fmt.Errorf("malformed commit date %q: %w", fields[2], err)
		}

		commits = append(commits, Commit{
			Hash:    fields[0],
			Parents: parentHashes(strings.Fields(fields[1])),
			When:    when,
			Author:  AuthorInfo{Name: fields[3], Email: fields[4]},
			Message: fields[5],
		})
	}
	return commits, nil
}
