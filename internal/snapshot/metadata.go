package snapshot

import (
	"fmt"
	"strings"
	"time"
)

// commitSubject is the first line of every snapshot commit message.
const commitSubject = "chore: saving work in progress"

// metadataVersion is the trailer schema version written by Message.
const metadataVersion = 1

// Trailer keys of the snapshot commit message schema.
const (
	trailerVersion       = "Wip-Version"
	trailerSourceBranch  = "Wip-Source-Branch"
	trailerCreatedAt     = "Wip-Created-At"
	trailerHasStaged     = "Wip-Has-Staged"
	trailerHasUnstaged   = "Wip-Has-Unstaged"
	trailerHasUntracked  = "Wip-Has-Untracked"
	trailerStagedFile    = "Wip-Staged-File"
	trailerUnstagedFile  = "Wip-Unstaged-File"
	trailerUntrackedFile = "Wip-Untracked-File"
)

// Metadata records everything needed to restore a snapshot: where it was
// taken from, when, and the exact partition of the working tree at capture
// time. It is stored as git trailers in the snapshot commit message so a
// snapshot branch is self-describing.
type Metadata struct {
	SourceBranch string
	CreatedAt    time.Time
	HadStaged    bool
	HadUnstaged  bool
	HadUntracked bool
	Files        TreeState
}

// Message encodes the metadata as a snapshot commit message.
func (m Metadata) Message() string {
	lines := []string{
		commitSubject,
		"",
		fmt.Sprintf("%s: %d", trailerVersion, metadataVersion),
		fmt.Sprintf("%s: %s", trailerSourceBranch, m.SourceBranch),
		fmt.Sprintf("%s: %s", trailerCreatedAt, m.CreatedAt.Format(time.RFC3339)),
		fmt.Sprintf("%s: %t", trailerHasStaged, m.HadStaged),
		fmt.Sprintf("%s: %t", trailerHasUnstaged, m.HadUnstaged),
		fmt.Sprintf("%s: %t", trailerHasUntracked, m.HadUntracked),
	}
	for _, p := range m.Files.Staged {
		lines = append(lines, fmt.Sprintf("%s: %s", trailerStagedFile, p))
	}
	for _, p := range m.Files.Unstaged {
		lines = append(lines, fmt.Sprintf("%s: %s", trailerUnstagedFile, p))
	}
	for _, p := range m.Files.Untracked {
		lines = append(lines, fmt.Sprintf("%s: %s", trailerUntrackedFile, p))
	}
	return strings.Join(lines, "\n")
}

// ParseMessage decodes snapshot metadata from a commit message. Decoding is
// forward-compatible: unknown trailer keys and future schema versions are
// ignored, and missing optional trailers leave their fields zero. A message
// without a Wip-Source-Branch trailer was not written by Message and yields
// ErrNoMetadata.
func ParseMessage(msg string) (Metadata, error) {
	var meta Metadata
	found := false

	for _, line := range strings.Split(msg, "\n") {
		key, value, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		switch key {
		case trailerSourceBranch:
			meta.SourceBranch = value
			found = true
		case trailerCreatedAt:
			if ts, err := time.Parse(time.RFC3339, value); err == nil {
				meta.CreatedAt = ts
			}
		case trailerHasStaged:
			meta.HadStaged = value == "true"
		case trailerHasUnstaged:
			meta.HadUnstaged = value == "true"
		case trailerHasUntracked:
			meta.HadUntracked = value == "true"
		case trailerStagedFile:
			meta.Files.Staged = append(meta.Files.Staged, value)
		case trailerUnstagedFile:
			meta.Files.Unstaged = append(meta.Files.Unstaged, value)
		case trailerUntrackedFile:
			meta.Files.Untracked = append(meta.Files.Untracked, value)
		}
	}

	if !found {
		return Metadata{}, ErrNoMetadata
	}
	return meta, nil
}
