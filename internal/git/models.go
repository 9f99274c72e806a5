package git

import (
	"encoding/json"
	"strings"
	"time"
)

// Commit represents minimal information about a Git commit.
type Commit struct {
	Hash    string
	Parents []ParentRef
	When    time.Time
	Author  AuthorInfo
	Message string
}

// ShortHash returns an abbreviated commit identifier for display.
func (c Commit) ShortHash() string {
	h := strings.TrimSpace(c.Hash)
	if len(h) < 8 {
		return h
	}
	return h[:8]
}

// AuthorInfo represents commit author information.
type AuthorInfo struct {
	Name  string
	Email string
}

// ContributorKey returns a normalized identifier for grouping contributors.
func (a AuthorInfo) ContributorKey() string {
	return strings.ToLower(a.Email)
}

// parentHashKeys are the object keys under which backends expose a parent's
// identifier, tried in priority order: "hash" (this codebase's own convention),
// "sha" (hosted REST APIs), "oid" (GraphQL and libgit2 exports).
var parentHashKeys = []string{"hash", "sha", "oid"}

// ParentRef names a parent commit. Backends disagree on the encoding: go-git
// and the git CLI hand back bare hash strings, while JSON exports from hosted
// APIs wrap the hash in an object. ParentRef keeps the raw value and extracts
// the identifier on demand so every known shape resolves the same way.
type ParentRef struct {
	raw any
}

// NewParentRef wraps a raw parent value of any supported shape.
func NewParentRef(raw any) ParentRef {
	return ParentRef{raw: raw}
}

// ParentHash wraps a bare identifier string.
func ParentHash(hash string) ParentRef {
	return ParentRef{raw: hash}
}

// Hash extracts the parent's identifier. The second return is false when the
// underlying value has none of the known shapes; such parent edges carry no
// identifier and are dropped by callers.
func (p ParentRef) Hash() (string, bool) {
	switch v := p.raw.(type) {
	case string:
		return v, true
	case map[string]any:
		for _, key := range parentHashKeys {
			if s, ok := v[key].(string); ok {
				return s, true
			}
		}
	}
	return "", false
}

// UnmarshalJSON accepts either a bare string or an object form.
func (p *ParentRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.raw = s
		return nil
	}
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	p.raw = obj
	return nil
}

// MarshalJSON emits the extracted identifier when one exists, otherwise null.
func (p ParentRef) MarshalJSON() ([]byte, error) {
	if h, ok := p.Hash(); ok {
		return json.Marshal(h)
	}
	return []byte("null"), nil
}

// parentHashes converts a list of bare identifiers into ParentRefs.
func parentHashes(hashes []string) []ParentRef {
	if len(hashes) == 0 {
		return nil
	}
	refs := make([]ParentRef, len(hashes))
	for i, h := range hashes {
		refs[i] = ParentHash(h)
	}
	return refs
}

// TagRef describes a tag usable as a comparison point: its name, the commit
// it points to (annotated tags are peeled), and that commit's author time.
type TagRef struct {
	Name string
	Hash string
	When time.Time
}

// firstLine truncates a commit message to its subject line.
func firstLine(message string) string {
	if idx := strings.IndexByte(message, '\n'); idx != -1 {
		return message[:idx]
	}
	return message
}
