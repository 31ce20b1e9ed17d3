// Package names encodes and decodes wip snapshot branch names.
//
// A snapshot branch is named "wip/{username}/{timestamp}" with an optional
// "-{label}" suffix, e.g. "wip/alice/2024-03-14-15-30-45-spike". The
// timestamp is fixed-width so that lexical order of encoded names equals
// chronological order.
package names

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Prefix is the ref namespace shared by all snapshot branches.
const Prefix = "wip"

// TimestampLayout is the timestamp format embedded in branch names.
const TimestampLayout = "2006-01-02-15-04-05"

// ErrInvalidIdentifier reports a username or label that cannot appear in a
// branch name.
var ErrInvalidIdentifier = errors.New("invalid identifier for branch name")

// forbiddenChars are bytes git rejects in ref name components, plus "/"
// which would break the three-part branch structure, and the space.
const forbiddenChars = "/ ~^:?*[\\"

// BranchName is a decoded snapshot branch name.
type BranchName struct {
	Username  string
	Timestamp time.Time
	Label     string
}

// New builds a BranchName from its parts, validating the identifiers.
// The timestamp is normalized to local time and truncated to second
// precision; a zero timestamp means now.
func New(username string, ts time.Time, label string) (BranchName, error) {
	if err := CheckIdentifier(username); err != nil {
		return BranchName{}, fmt.Errorf("username %q: %w", username, err)
	}
	if label != "" {
		if err := CheckIdentifier(label); err != nil {
			return BranchName{}, fmt.Errorf("label %q: %w", label, err)
		}
	}

	if ts.IsZero() {
		ts = time.Now()
	}

	return BranchName{
		Username:  username,
		Timestamp: ts.Local().Truncate(time.Second),
		Label:     label,
	}, nil
}

// String encodes the branch name.
func (b BranchName) String() string {
	name := Prefix + "/" + b.Username + "/" + b.Timestamp.Format(TimestampLayout)
	if b.Label != "" {
		name += "-" + b.Label
	}
	return name
}

// OwnedBy reports whether the branch belongs to the given username.
func (b BranchName) OwnedBy(username string) bool {
	return b.Username == username
}

// Compare orders branch names chronologically, breaking ties by the full
// encoded name so that orderings are deterministic.
func (b BranchName) Compare(o BranchName) int {
	if c := b.Timestamp.Compare(o.Timestamp); c != 0 {
		return c
	}
	return strings.Compare(b.String(), o.String())
}

// Parse decodes a snapshot branch name. It returns false for anything that
// is not a well-formed snapshot branch name, which makes it usable as a
// filter predicate over arbitrary branch listings.
func Parse(name string) (BranchName, bool) {
	parts := strings.Split(name, "/")
	if len(parts) != 3 || parts[0] != Prefix {
		return BranchName{}, false
	}

	username, rest := parts[1], parts[2]
	if CheckIdentifier(username) != nil {
		return BranchName{}, false
	}
	if len(rest) < len(TimestampLayout) {
		return BranchName{}, false
	}

	ts, err := time.ParseInLocation(TimestampLayout, rest[:len(TimestampLayout)], time.Local)
	if err != nil {
		return BranchName{}, false
	}

	var label string
	if len(rest) > len(TimestampLayout) {
		if rest[len(TimestampLayout)] != '-' {
			return BranchName{}, false
		}
		label = rest[len(TimestampLayout)+1:]
		if CheckIdentifier(label) != nil {
			return BranchName{}, false
		}
	}

	return BranchName{Username: username, Timestamp: ts, Label: label}, true
}

// CheckIdentifier rejects values that would produce an invalid ref name.
// Mirrors git-check-ref-format(1) for a single component.
func CheckIdentifier(s string) error {
	if s == "" {
		return ErrInvalidIdentifier
	}
	if strings.ContainsAny(s, forbiddenChars) {
		return ErrInvalidIdentifier
	}
	if strings.Contains(s, "..") || strings.Contains(s, "@{") {
		return ErrInvalidIdentifier
	}
	if strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".") || strings.HasSuffix(s, ".lock") {
		return ErrInvalidIdentifier
	}
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return ErrInvalidIdentifier
		}
	}
	return nil
}
