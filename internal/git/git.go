// Package git provides an abstraction over git operations.
package git

import (
	"context"
	"errors"
)

// Sentinel errors for git operations.
var (
	ErrNotRepository  = errors.New("not a git repository")
	ErrBranchExists   = errors.New("branch already exists")
	ErrBranchNotFound = errors.New("branch not found")
	ErrNoUsername     = errors.New("git user.name is not set")
	ErrDetachedHead   = errors.New("HEAD is detached")
)

// Branch is a branch ref as reported by the repository.
type Branch struct {
	Name   string // Branch name without refs/heads/ or the remote prefix
	Remote bool   // True when the ref is a remote-tracking branch
}

// Repository provides git operations for a repository. Methods are primitive
// wrappers over the git binary; callers compose them into higher-level flows.
//
//go:generate go run github.com/matryer/moq@latest -pkg mocks -out mocks/repository.go . Repository
type Repository interface {
	// Root returns the absolute path to the repository root.
	Root() string

	// CurrentBranch returns the branch HEAD is on.
	// Returns ErrDetachedHead if HEAD is not on a branch.
	CurrentBranch(ctx context.Context) (string, error)

	// Username returns the configured git user.name.
	// Returns ErrNoUsername if the value is unset or blank.
	Username(ctx context.Context) (string, error)

	// BranchExists checks if a branch exists locally.
	BranchExists(ctx context.Context, branch string) (bool, error)

	// ListBranches returns all local and remote-tracking branches.
	// Remote-tracking refs are reported with the remote prefix stripped,
	// so "refs/remotes/origin/main" yields {Name: "main", Remote: true}.
	ListBranches(ctx context.Context) ([]Branch, error)

	// CreateBranch creates and checks out a new branch. An empty startPoint
	// branches from the current HEAD. Returns ErrBranchExists if the branch
	// already exists.
	CreateBranch(ctx context.Context, branch, startPoint string) error

	// Checkout switches to an existing branch.
	// Returns ErrBranchNotFound if the branch does not exist.
	Checkout(ctx context.Context, branch string) error

	// DeleteBranch force-deletes a local branch.
	// Returns ErrBranchNotFound if the branch does not exist.
	DeleteBranch(ctx context.Context, branch string) error

	// DeleteRemoteBranch deletes a branch on the given remote.
	DeleteRemoteBranch(ctx context.Context, remote, branch string) error

	// Push pushes a branch to the given remote and sets its upstream.
	Push(ctx context.Context, remote, branch string) error

	// Fetch fetches a branch from the given remote into the local ref of
	// the same name.
	Fetch(ctx context.Context, remote, branch string) error

	// Remotes returns the names of all configured remotes.
	Remotes(ctx context.Context) ([]string, error)

	// StageAll stages all changes, including deletions and untracked files.
	StageAll(ctx context.Context) error

	// StagePaths stages the given paths. A nil or empty slice is a no-op.
	StagePaths(ctx context.Context, paths []string) error

	// UnstagePaths removes the given paths from the index without touching
	// the working tree. Paths absent from HEAD become untracked again.
	// A nil or empty slice is a no-op.
	UnstagePaths(ctx context.Context, paths []string) error

	// RemovePaths removes the given paths from the index and working tree.
	// Paths that do not match anything are ignored.
	RemovePaths(ctx context.Context, paths []string) error

	// Commit records the staged changes with the given message.
	Commit(ctx context.Context, message string) error

	// CommitMessage returns the full commit message of the given ref.
	CommitMessage(ctx context.Context, ref string) (string, error)

	// RevParse resolves a ref to a commit id.
	RevParse(ctx context.Context, ref string) (string, error)

	// StagedPaths returns the paths with staged changes.
	StagedPaths(ctx context.Context) ([]string, error)

	// UnstagedPaths returns the tracked paths with unstaged changes.
	UnstagedPaths(ctx context.Context) ([]string, error)

	// UntrackedPaths returns the untracked paths, honoring ignore rules.
	UntrackedPaths(ctx context.Context) ([]string, error)

	// TreePaths returns every path in the tree of the given ref.
	TreePaths(ctx context.Context, ref string) ([]string, error)

	// CheckoutPaths copies the given paths from a ref into the index and
	// working tree. A nil or empty slice is a no-op.
	CheckoutPaths(ctx context.Context, ref string, paths []string) error

	// StashPush stashes all changes, including untracked files, under the
	// given message.
	StashPush(ctx context.Context, message string) error

	// StashPop applies and drops the most recent stash entry. On conflict
	// git reports an error and keeps the entry; the error carries git's
	// message.
	StashPop(ctx context.Context) error
}

// Opener opens git repositories.
//
//go:generate go run github.com/matryer/moq@latest -pkg mocks -out mocks/opener.go . Opener
type Opener interface {
	// Open opens the git repository containing the given path.
	// Returns ErrNotRepository if the path is not inside a git repository.
	Open(ctx context.Context, path string) (Repository, error)
}
