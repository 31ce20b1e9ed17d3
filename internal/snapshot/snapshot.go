// Package snapshot provides high-level management of wip branches: saving
// uncommitted working tree changes into branches, listing them, and restoring
// or deleting them locally and on the configured remote.
package snapshot

import (
	"errors"
	"sort"
	"time"

	"github.com/wiptools/git-wip/internal/names"
)

// Sentinel errors for snapshot operations.
var (
	ErrDirtyWorkingTree  = errors.New("working tree has uncommitted changes")
	ErrBranchNotFound    = errors.New("wip branch not found")
	ErrNotOwner          = errors.New("wip branch belongs to another user")
	ErrTargetConflict    = errors.New("source branch has moved since the snapshot was taken")
	ErrRemoteUnavailable = errors.New("remote operation failed")
	ErrStashConflict     = errors.New("stashed changes conflict with the restored state")
	ErrPartialDelete     = errors.New("some remote branches could not be deleted")
	ErrNoMetadata        = errors.New("commit message carries no snapshot metadata")
)

// TreeState partitions working tree paths by how git sees them: staged in
// the index, modified but unstaged, or untracked.
type TreeState struct {
	Staged    []string `json:"staged" yaml:"staged"`
	Unstaged  []string `json:"unstaged" yaml:"unstaged"`
	Untracked []string `json:"untracked" yaml:"untracked"`
}

// Empty reports whether no paths were captured in any category.
func (s TreeState) Empty() bool {
	return len(s.Staged) == 0 && len(s.Unstaged) == 0 && len(s.Untracked) == 0
}

// Paths returns the sorted union of all captured paths. A path staged and
// then modified again appears in two categories but only once here.
func (s TreeState) Paths() []string {
	seen := make(map[string]struct{}, len(s.Staged)+len(s.Unstaged)+len(s.Untracked))
	var paths []string
	for _, group := range [][]string{s.Staged, s.Unstaged, s.Untracked} {
		for _, p := range group {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}

// Snapshot describes one wip branch and where it exists.
type Snapshot struct {
	Branch    string    `json:"branch" yaml:"branch"`
	Username  string    `json:"username" yaml:"username"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	Label     string    `json:"label,omitempty" yaml:"label,omitempty"`
	Local     bool      `json:"local" yaml:"local"`
	Remote    bool      `json:"remote" yaml:"remote"`

	// Name is the decoded form of Branch.
	Name names.BranchName `json:"-" yaml:"-"`
}

// SaveStatus reports the outcome of a save operation.
type SaveStatus string

// Save outcomes.
const (
	SaveCreated       SaveStatus = "created"
	SaveNothingToSave SaveStatus = "nothing-to-save"
)

// SaveOptions configures a save operation.
type SaveOptions struct {
	Local     bool      // Skip pushing the snapshot branch to the remote
	Username  string    // Overrides the resolved username
	Timestamp time.Time // Overrides the snapshot timestamp (zero means now)
	Label     string    // Optional label suffix for the branch name
}

// SaveResult describes a completed save operation.
type SaveResult struct {
	Branch       string     // Created wip branch (empty when nothing was saved)
	SourceBranch string     // Branch the snapshot was taken from
	Pushed       bool       // Whether the branch was pushed to the remote
	State        TreeState  // Captured partition
	Status       SaveStatus // created or nothing-to-save
}

// ListOptions configures a list operation.
type ListOptions struct {
	AllUsers bool // Include snapshots owned by other users
}

// RestoreOptions configures a restore operation.
type RestoreOptions struct {
	Branch    string // Explicit wip branch to restore (empty selects interactively)
	Autostash bool   // Stash a dirty working tree instead of aborting
	AllUsers  bool   // Allow restoring snapshots owned by other users
	Yes       bool   // Take the newest candidate instead of prompting
}

// RestoreResult describes a completed restore operation. A zero Branch with
// Cancelled false means there were no snapshots to restore.
type RestoreResult struct {
	Branch       string    // Consumed wip branch
	SourceBranch string    // Branch the state was restored onto
	State        TreeState // Recreated partition
	Autostashed  bool      // Whether pre-existing changes were stashed and reapplied
	Cancelled    bool      // User cancelled at the selection prompt
}

// DeleteOptions configures a delete operation.
type DeleteOptions struct {
	Branches  []string // Explicit wip branches to delete
	All       bool     // Delete every candidate
	Force     bool     // Skip all confirmations
	LocalOnly bool     // Never touch the remote
	AllUsers  bool     // Allow deleting snapshots owned by other users
}

// BranchDeletion records what happened to one branch during a delete.
type BranchDeletion struct {
	Branch    string // Branch name
	Local     bool   // Local branch was deleted
	Remote    bool   // Remote copy was deleted
	RemoteErr error  // Remote deletion failure, if any
}

// DeleteResult describes a completed delete operation.
type DeleteResult struct {
	Deleted   []BranchDeletion // Per-branch outcomes, in processing order
	Remote    bool             // Whether remote copies were in scope
	Cancelled bool             // User declined or cancelled a confirmation
}
