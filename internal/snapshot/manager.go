package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/wiptools/git-wip/internal/git"
	"github.com/wiptools/git-wip/internal/names"
	"github.com/wiptools/git-wip/internal/prompt"
)

// gitOpener is the internal interface for opening git repositories.
type gitOpener interface {
	Open(ctx context.Context, path string) (git.Repository, error)
}

// prompter is the internal interface for interactive selection and confirmation.
type prompter interface {
	Confirm(title, description string) (bool, error)
	Choice(title string, options []string) (int, error)
	MultiSelect(title string, options []string) ([]int, error)
}

// ManagerConfig configures the Manager.
type ManagerConfig struct {
	Remote   string // Remote for snapshot branches (default "origin")
	Username string // Overrides git user.name as the snapshot owner
}

// Manager orchestrates snapshot lifecycle operations.
type Manager struct {
	git      gitOpener
	prompt   prompter
	reporter Reporter
	remote   string
	username string
}

// NewManager creates a new snapshot manager.
func NewManager(opener gitOpener, p prompter, reporter Reporter, cfg ManagerConfig) *Manager {
	remote := cfg.Remote
	if remote == "" {
		remote = "origin"
	}
	return &Manager{
		git:      opener,
		prompt:   p,
		reporter: reporter,
		remote:   remote,
		username: cfg.Username,
	}
}

// Save captures the working tree into a new wip branch and leaves the
// working tree exactly as it found it. A clean tree is a successful no-op
// (SaveNothingToSave).
func (m *Manager) Save(ctx context.Context, repoPath string, opts SaveOptions) (*SaveResult, error) {
	repo, err := m.git.Open(ctx, repoPath)
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	if _, err := repo.RevParse(ctx, "HEAD"); err != nil {
		return nil, fmt.Errorf("repository has no commits: %w", err)
	}

	source, err := repo.CurrentBranch(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve current branch: %w", err)
	}

	username, err := m.resolveUsername(ctx, repo, opts.Username)
	if err != nil {
		return nil, err
	}

	m.report(Event{Code: EventSavingWip, Branch: source})

	state, err := capture(ctx, repo)
	if err != nil {
		return nil, err
	}
	if state.Empty() {
		m.report(Event{Code: EventNothingToSave})
		return &SaveResult{SourceBranch: source, Status: SaveNothingToSave}, nil
	}

	name, err := names.New(username, opts.Timestamp, opts.Label)
	if err != nil {
		return nil, fmt.Errorf("build branch name: %w", err)
	}
	branch := name.String()

	meta := Metadata{
		SourceBranch: source,
		CreatedAt:    name.Timestamp,
		HadStaged:    len(state.Staged) > 0,
		HadUnstaged:  len(state.Unstaged) > 0,
		HadUntracked: len(state.Untracked) > 0,
		Files:        state,
	}

	// The branch switch carries the dirty working tree along, so until the
	// commit lands the captured changes exist only in the tree and every
	// failure has to return there.
	if err := repo.CreateBranch(ctx, branch, ""); err != nil {
		return nil, fmt.Errorf("create branch %s: %w", branch, err)
	}
	m.report(Event{Code: EventCreatedBranch, Branch: branch})

	if err := repo.StageAll(ctx); err != nil {
		return nil, m.abandonSave(ctx, repo, source, branch, state, fmt.Errorf("stage changes: %w", err))
	}
	m.report(Event{Code: EventStagedAllChanges})

	if err := repo.Commit(ctx, meta.Message()); err != nil {
		return nil, m.abandonSave(ctx, repo, source, branch, state, fmt.Errorf("commit snapshot: %w", err))
	}
	m.report(Event{Code: EventCommittedChanges})

	// The snapshot is durable from here on: failures below leave the branch
	// in place and the error names it.
	pushed := false
	var pushErr error
	if !opts.Local {
		remotes, err := repo.Remotes(ctx)
		if err != nil {
			return nil, fmt.Errorf("list remotes: %w (snapshot saved as %s)", err, branch)
		}
		if hasRemote(remotes, m.remote) {
			if err := repo.Push(ctx, m.remote, branch); err != nil {
				pushErr = fmt.Errorf("push %s: %w: %w (snapshot kept locally)", branch, ErrRemoteUnavailable, err)
			} else {
				pushed = true
				m.report(Event{Code: EventPushedChanges, Branch: branch})
			}
		} else {
			m.report(Event{Code: EventSkippedPushNoRemote})
		}
	}

	if err := repo.Checkout(ctx, source); err != nil {
		return nil, fmt.Errorf("return to %s: %w (snapshot saved as %s)", source, err, branch)
	}
	m.report(Event{Code: EventSwitchedBack, Branch: source})

	if err := materialize(ctx, repo, branch, state); err != nil {
		return nil, fmt.Errorf("restore working tree: %w (snapshot saved as %s)", err, branch)
	}
	if err := recreate(ctx, repo, state); err != nil {
		return nil, fmt.Errorf("restore working tree: %w (snapshot saved as %s)", err, branch)
	}

	if pushErr != nil {
		return nil, pushErr
	}

	m.report(Event{Code: EventWipBranchCreated, Branch: branch})

	return &SaveResult{
		Branch:       branch,
		SourceBranch: source,
		Pushed:       pushed,
		State:        state,
		Status:       SaveCreated,
	}, nil
}

// List returns the snapshots visible from the repository, newest first.
func (m *Manager) List(ctx context.Context, repoPath string, opts ListOptions) ([]Snapshot, error) {
	repo, err := m.git.Open(ctx, repoPath)
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	var username string
	if !opts.AllUsers {
		username, err = m.resolveUsername(ctx, repo, "")
		if err != nil {
			return nil, err
		}
	}

	return m.list(ctx, repo, username, opts.AllUsers)
}

// Restore applies a snapshot back onto its source branch and consumes the
// wip branch.
func (m *Manager) Restore(ctx context.Context, repoPath string, opts RestoreOptions) (*RestoreResult, error) {
	repo, err := m.git.Open(ctx, repoPath)
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	var username string
	if !opts.AllUsers {
		username, err = m.resolveUsername(ctx, repo, "")
		if err != nil {
			return nil, err
		}
	}

	snapshots, err := m.list(ctx, repo, username, opts.AllUsers)
	if err != nil {
		return nil, err
	}

	var target Snapshot
	switch {
	case opts.Branch != "":
		name, ok := names.Parse(opts.Branch)
		if !ok {
			return nil, fmt.Errorf("%q is not a wip branch name: %w", opts.Branch, names.ErrInvalidIdentifier)
		}
		if !opts.AllUsers && !name.OwnedBy(username) {
			return nil, fmt.Errorf("%s: %w", opts.Branch, ErrNotOwner)
		}
		found := false
		for _, s := range snapshots {
			if s.Branch == opts.Branch {
				target = s
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%s: %w", opts.Branch, ErrBranchNotFound)
		}
	case len(snapshots) == 0:
		m.report(Event{Code: EventNoWipBranches})
		return &RestoreResult{}, nil
	case len(snapshots) == 1 || opts.Yes:
		target = snapshots[0]
	default:
		options := make([]string, len(snapshots))
		for i, s := range snapshots {
			options[i] = describeSnapshot(s)
		}
		idx, err := m.prompt.Choice("Select a wip branch to restore", options)
		if err != nil {
			if errors.Is(err, prompt.ErrCanceled) {
				m.report(Event{Code: EventOperationCancelled})
				return &RestoreResult{Cancelled: true}, nil
			}
			return nil, fmt.Errorf("select wip branch: %w", err)
		}
		target = snapshots[idx]
	}

	m.report(Event{Code: EventRestoringWip, Branch: target.Branch})

	if !target.Local {
		if err := repo.Fetch(ctx, m.remote, target.Branch); err != nil {
			return nil, fmt.Errorf("fetch %s from %s: %w: %w", target.Branch, m.remote, ErrRemoteUnavailable, err)
		}
	}

	msg, err := repo.CommitMessage(ctx, target.Branch)
	if err != nil {
		return nil, fmt.Errorf("read snapshot commit: %w", err)
	}
	meta, err := ParseMessage(msg)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot metadata of %s: %w", target.Branch, err)
	}
	source := meta.SourceBranch

	// Both guards run before any mutation. The divergence check comes first
	// so a dirty tree is never stashed only to hit an unrestorable snapshot.
	sourceExists, err := repo.BranchExists(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("check branch %s: %w", source, err)
	}
	if sourceExists {
		parent, err := repo.RevParse(ctx, target.Branch+"^")
		if err != nil {
			return nil, fmt.Errorf("resolve snapshot parent: %w", err)
		}
		tip, err := repo.RevParse(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", source, err)
		}
		if parent != tip {
			return nil, fmt.Errorf("restore %s onto %s: %w", target.Branch, source, ErrTargetConflict)
		}
	}

	current, err := capture(ctx, repo)
	if err != nil {
		return nil, err
	}
	autostashed := false
	if !current.Empty() {
		if !opts.Autostash {
			return nil, fmt.Errorf("restore %s: %w", target.Branch, ErrDirtyWorkingTree)
		}
		m.report(Event{Code: EventStashingExistingChanges})
		if err := repo.StashPush(ctx, "git-wip: autostash "+source); err != nil {
			return nil, fmt.Errorf("stash existing changes: %w", err)
		}
		autostashed = true
	}

	if sourceExists {
		if err := repo.Checkout(ctx, source); err != nil {
			return nil, fmt.Errorf("check out %s: %w", source, err)
		}
	} else {
		// The recorded branch is gone; recreate it at the snapshot's parent
		// so the restored changes sit on the tip they were taken from.
		if err := repo.CreateBranch(ctx, source, target.Branch+"^"); err != nil {
			return nil, fmt.Errorf("recreate branch %s: %w", source, err)
		}
	}
	m.report(Event{Code: EventCheckedOutBranch, Branch: source})

	if err := materialize(ctx, repo, target.Branch, meta.Files); err != nil {
		return nil, err
	}
	m.report(Event{Code: EventAppliedChanges, Branch: target.Branch})

	if err := recreate(ctx, repo, meta.Files); err != nil {
		return nil, err
	}
	m.report(Event{Code: EventRecreatedFileStates})

	if autostashed {
		m.report(Event{Code: EventRestoringExistingChanges})
		// On conflict the stash entry and the wip branch both survive so
		// nothing is lost.
		if err := repo.StashPop(ctx); err != nil {
			return nil, fmt.Errorf("reapply stashed changes: %w: %w", ErrStashConflict, err)
		}
		m.report(Event{Code: EventAppliedStash})
	}

	if err := repo.DeleteBranch(ctx, target.Branch); err != nil {
		return nil, fmt.Errorf("delete consumed branch %s: %w", target.Branch, err)
	}
	m.report(Event{Code: EventWipBranchDeleted, Branch: target.Branch})

	if target.Remote {
		if err := repo.DeleteRemoteBranch(ctx, m.remote, target.Branch); err != nil {
			m.report(Event{Code: EventRemoteDeleteFailed, Branch: target.Branch, Err: err})
		}
	}

	m.report(Event{Code: EventRestoreComplete, Branch: source})

	return &RestoreResult{
		Branch:       target.Branch,
		SourceBranch: source,
		State:        meta.Files,
		Autostashed:  autostashed,
	}, nil
}

// Delete removes wip branches locally and, after a separate confirmation,
// their remote copies. On partial remote failure the result is returned
// alongside ErrPartialDelete so completed deletions stay visible.
func (m *Manager) Delete(ctx context.Context, repoPath string, opts DeleteOptions) (*DeleteResult, error) {
	repo, err := m.git.Open(ctx, repoPath)
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	var username string
	if !opts.AllUsers {
		username, err = m.resolveUsername(ctx, repo, "")
		if err != nil {
			return nil, err
		}
	}

	snapshots, err := m.list(ctx, repo, username, opts.AllUsers)
	if err != nil {
		return nil, err
	}
	// Explicit names are validated even when nothing matches the scope, so a
	// foreign or unknown branch errors instead of reporting an empty list.
	if len(snapshots) == 0 && len(opts.Branches) == 0 {
		m.report(Event{Code: EventNoWipBranches})
		return &DeleteResult{}, nil
	}

	targets, early, err := m.selectDeleteTargets(snapshots, username, opts)
	if err != nil || early != nil {
		return early, err
	}

	remoteCount := 0
	for _, t := range targets {
		if t.Remote {
			remoteCount++
		}
	}

	includeRemote := false
	if !opts.LocalOnly && remoteCount > 0 {
		remotes, err := repo.Remotes(ctx)
		if err != nil {
			return nil, fmt.Errorf("list remotes: %w", err)
		}
		if hasRemote(remotes, m.remote) {
			if opts.Force {
				includeRemote = true
			} else {
				// Remote deletion is visible to others, so it gets its own
				// question. Declining keeps the operation local.
				ok, err := m.confirmed("Delete remote copies too?",
					fmt.Sprintf("Remote copies on %s: %d.", m.remote, remoteCount))
				if err != nil {
					return nil, err
				}
				includeRemote = ok
			}
		}
	}

	deleted := make([]BranchDeletion, 0, len(targets))
	failures := 0
	for _, t := range targets {
		d := BranchDeletion{Branch: t.Branch}
		if t.Local {
			if err := repo.DeleteBranch(ctx, t.Branch); err != nil {
				return nil, fmt.Errorf("delete %s: %w", t.Branch, err)
			}
			d.Local = true
			m.report(Event{Code: EventDeletedLocalBranch, Branch: t.Branch})
		}
		if includeRemote && t.Remote {
			if err := repo.DeleteRemoteBranch(ctx, m.remote, t.Branch); err != nil {
				d.RemoteErr = err
				failures++
				m.report(Event{Code: EventRemoteDeleteFailed, Branch: t.Branch, Err: err})
			} else {
				d.Remote = true
				m.report(Event{Code: EventDeletedRemoteBranch, Branch: t.Branch})
			}
		}
		deleted = append(deleted, d)
	}

	m.report(Event{Code: EventDeleteComplete, Count: len(deleted)})

	result := &DeleteResult{Deleted: deleted, Remote: includeRemote}
	if failures > 0 {
		return result, fmt.Errorf("%w: %d of %d", ErrPartialDelete, failures, remoteCount)
	}
	return result, nil
}

// selectDeleteTargets picks and confirms the branches to delete. A non-nil
// result means the operation ended early without mutating anything.
func (m *Manager) selectDeleteTargets(snapshots []Snapshot, username string, opts DeleteOptions) ([]Snapshot, *DeleteResult, error) {
	cancel := func() ([]Snapshot, *DeleteResult, error) {
		m.report(Event{Code: EventOperationCancelled})
		return nil, &DeleteResult{Cancelled: true}, nil
	}

	switch {
	case opts.All:
		if opts.Force {
			return snapshots, nil, nil
		}
		ok, err := m.confirmed(fmt.Sprintf("Delete all %s?", branchCount(len(snapshots))), "")
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			return cancel()
		}
		return snapshots, nil, nil

	case len(opts.Branches) > 0:
		targets := make([]Snapshot, 0, len(opts.Branches))
		for _, branch := range opts.Branches {
			name, ok := names.Parse(branch)
			if !ok {
				return nil, nil, fmt.Errorf("%q is not a wip branch name: %w", branch, names.ErrInvalidIdentifier)
			}
			if !opts.AllUsers && !name.OwnedBy(username) {
				return nil, nil, fmt.Errorf("%s: %w", branch, ErrNotOwner)
			}
			found := false
			for _, s := range snapshots {
				if s.Branch == branch {
					targets = append(targets, s)
					found = true
					break
				}
			}
			if !found {
				return nil, nil, fmt.Errorf("%s: %w", branch, ErrBranchNotFound)
			}
		}
		if !opts.Force {
			for _, t := range targets {
				ok, err := m.confirmed(fmt.Sprintf("Delete %s?", t.Branch), "")
				if err != nil {
					return nil, nil, err
				}
				if !ok {
					return cancel()
				}
			}
		}
		return targets, nil, nil

	case len(snapshots) == 1:
		if !opts.Force {
			ok, err := m.confirmed(fmt.Sprintf("Delete %s?", snapshots[0].Branch), "")
			if err != nil {
				return nil, nil, err
			}
			if !ok {
				return cancel()
			}
		}
		return snapshots, nil, nil

	default:
		options := make([]string, len(snapshots))
		for i, s := range snapshots {
			options[i] = describeSnapshot(s)
		}
		picked, err := m.prompt.MultiSelect("Select wip branches to delete", options)
		if err != nil {
			if errors.Is(err, prompt.ErrCanceled) {
				return cancel()
			}
			return nil, nil, fmt.Errorf("select wip branches: %w", err)
		}
		if len(picked) == 0 {
			m.report(Event{Code: EventNoBranchesSelected})
			return nil, &DeleteResult{}, nil
		}
		targets := make([]Snapshot, 0, len(picked))
		for _, i := range picked {
			targets = append(targets, snapshots[i])
		}
		if !opts.Force {
			ok, err := m.confirmed(fmt.Sprintf("Delete %s?", branchCount(len(targets))), "")
			if err != nil {
				return nil, nil, err
			}
			if !ok {
				return cancel()
			}
		}
		return targets, nil, nil
	}
}

// list merges local and remote wip branches into deduplicated snapshots,
// newest first. An empty username with allUsers false matches nothing.
func (m *Manager) list(ctx context.Context, repo git.Repository, username string, allUsers bool) ([]Snapshot, error) {
	branches, err := repo.ListBranches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}

	byName := make(map[string]*Snapshot)
	var order []string
	for _, b := range branches {
		name, ok := names.Parse(b.Name)
		if !ok {
			continue
		}
		if !allUsers && !name.OwnedBy(username) {
			continue
		}
		s, seen := byName[b.Name]
		if !seen {
			s = &Snapshot{
				Branch:    b.Name,
				Username:  name.Username,
				CreatedAt: name.Timestamp,
				Label:     name.Label,
				Name:      name,
			}
			byName[b.Name] = s
			order = append(order, b.Name)
		}
		if b.Remote {
			s.Remote = true
		} else {
			s.Local = true
		}
	}

	snapshots := make([]Snapshot, 0, len(order))
	for _, n := range order {
		snapshots = append(snapshots, *byName[n])
	}
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Name.Compare(snapshots[j].Name) > 0
	})
	return snapshots, nil
}

// resolveUsername picks the snapshot owner: explicit override first, then
// the configured username, then git's user.name. The result must be usable
// as a branch name component, so a user.name like "Jane Doe" errors here
// rather than producing a branch git would reject.
func (m *Manager) resolveUsername(ctx context.Context, repo git.Repository, override string) (string, error) {
	username := override
	if username == "" {
		username = m.username
	}
	if username == "" {
		var err error
		username, err = repo.Username(ctx)
		if err != nil {
			return "", fmt.Errorf("resolve username: %w", err)
		}
	}
	if err := names.CheckIdentifier(username); err != nil {
		return "", fmt.Errorf("username %q: %w", username, err)
	}
	return username, nil
}

// abandonSave is the compensating rollback for failures before the snapshot
// commit exists. The captured changes still sit in the working tree, so it
// returns to the source branch, restores the recorded index state and drops
// the partial wip branch. If the rollback itself fails the returned error
// names the residual state.
func (m *Manager) abandonSave(ctx context.Context, repo git.Repository, source, branch string, state TreeState, failure error) error {
	if err := repo.Checkout(ctx, source); err != nil {
		return fmt.Errorf("%w (rollback failed: %v; repository is still on %s)", failure, err, branch)
	}
	if err := recreate(ctx, repo, state); err != nil {
		return fmt.Errorf("%w (rollback incomplete: %v)", failure, err)
	}
	if err := repo.DeleteBranch(ctx, branch); err != nil {
		return fmt.Errorf("%w (rollback incomplete: partial branch %s remains: %v)", failure, branch, err)
	}
	return failure
}

// confirmed asks a yes/no question. A cancelled prompt counts as a declined
// answer.
func (m *Manager) confirmed(title, description string) (bool, error) {
	ok, err := m.prompt.Confirm(title, description)
	if err != nil {
		if errors.Is(err, prompt.ErrCanceled) {
			return false, nil
		}
		return false, fmt.Errorf("confirm: %w", err)
	}
	return ok, nil
}

// describeSnapshot renders a selection label for a snapshot.
func describeSnapshot(s Snapshot) string {
	switch {
	case s.Local && s.Remote:
		return s.Branch
	case s.Remote:
		return s.Branch + " (remote only)"
	default:
		return s.Branch + " (local only)"
	}
}

// branchCount formats a count with its noun.
func branchCount(n int) string {
	if n == 1 {
		return "1 wip branch"
	}
	return fmt.Sprintf("%d wip branches", n)
}

// hasRemote reports whether name is among the configured remotes.
func hasRemote(remotes []string, name string) bool {
	for _, r := range remotes {
		if r == name {
			return true
		}
	}
	return false
}
