package git

import (
	"context"
	"fmt"
)

// MockRepository is an in-memory test double for Repository.
// It allows tests to provide predefined commit graphs without needing a real
// Git repository.
type MockRepository struct {
	// LogCommits is returned by Log, most-recent-first, capped at MaxEntries.
	LogCommits []Commit
	// LogErr, when set, is returned by Log instead.
	LogErr error
	// ByHash backs GetCommit lookups.
	ByHash map[string]Commit
	// GetErr maps identifiers to injected GetCommit failures.
	GetErr map[string]error

	// GetCalls records every GetCommit identifier, in call order.
	GetCalls []string
}

// NewMockRepository builds a mock from a head log. GetCommit is served from
// the same commits, keyed by hash.
func NewMockRepository(logCommits []Commit) *MockRepository {
	byHash := make(map[string]Commit, len(logCommits))
	for _, c := range logCommits {
		byHash[c.Hash] = c
	}
	return &MockRepository{LogCommits: logCommits, ByHash: byHash}
}

// Add registers commits for GetCommit lookup without adding them to the log.
func (m *MockRepository) Add(commits ...Commit) {
	if m.ByHash == nil {
		m.ByHash = make(map[string]Commit, len(commits))
	}
	for _, c := range commits {
		m.ByHash[c.Hash] = c
	}
}

// FailGet injects an error for a specific identifier.
func (m *MockRepository) FailGet(hash string, err error) {
	if m.GetErr == nil {
		m.GetErr = make(map[string]error)
	}
	m.GetErr[hash] = err
}

// Log returns the predefined commits, capped at opts.MaxEntries.
func (m *MockRepository) Log(_ context.Context, opts LogOptions) ([]Commit, error) {
	if m.LogErr != nil {
		return nil, m.LogErr
	}
	commits := m.LogCommits
	if opts.MaxEntries > 0 && opts.MaxEntries < len(commits) {
		commits = commits[:opts.MaxEntries]
	}
	return commits, nil
}

// GetCommit looks up a commit by exact identifier.
func (m *MockRepository) GetCommit(_ context.Context, hash string) (Commit, error) {
	m.GetCalls = append(m.GetCalls, hash)
	if err, ok := m.GetErr[hash]; ok {
		return Commit{}, err
	}
	c, ok := m.ByHash[hash]
	if !ok {
		return Commit{}, fmt.Errorf("%w: %s", ErrCommitNotFound, hash)
	}
	return c, nil
}

// Compile-time interface conformance check.
var _ Repository = (*MockRepository)(nil)
