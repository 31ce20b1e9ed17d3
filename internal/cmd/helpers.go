package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wiptools/git-wip/internal/names"
	"github.com/wiptools/git-wip/internal/prompt"
	"github.com/wiptools/git-wip/internal/snapshot"
)

func requireManager(ctx context.Context) (*snapshot.Manager, error) {
	mgr := ManagerFromContext(ctx)
	if mgr == nil {
		return nil, errors.New("snapshot manager not initialized")
	}
	return mgr, nil
}

func repoPath() (string, error) {
	path, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return path, nil
}

// withHints attaches recovery hints to errors the user can act on.
func withHints(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, names.ErrInvalidIdentifier):
		return fmt.Errorf("%w\nPick a snapshot owner usable in a branch name: pass --username or run 'git-wip config username <name>'", err)
	case errors.Is(err, snapshot.ErrDirtyWorkingTree):
		return fmt.Errorf("%w\nCommit or stash them, or re-run with --autostash", err)
	case errors.Is(err, prompt.ErrNotInteractive):
		return fmt.Errorf("%w\nPass --force or --yes, or name branches explicitly", err)
	default:
		return err
	}
}

// printingReporter renders snapshot progress events as console lines.
type printingReporter struct {
	out io.Writer
}

func (r *printingReporter) Report(e snapshot.Event) {
	if text := eventText(e); text != "" {
		fmt.Fprintln(r.out, text)
	}
}

// eventText maps an event to its user-facing line.
func eventText(e snapshot.Event) string {
	switch e.Code {
	case snapshot.EventSavingWip:
		return fmt.Sprintf("Saving work in progress from %s", e.Branch)
	case snapshot.EventCreatedBranch:
		return fmt.Sprintf("Created branch %s", e.Branch)
	case snapshot.EventStagedAllChanges:
		return "Staged all changes"
	case snapshot.EventCommittedChanges:
		return "Committed changes"
	case snapshot.EventPushedChanges:
		return fmt.Sprintf("Pushed %s", e.Branch)
	case snapshot.EventSkippedPushNoRemote:
		return "No remote configured, keeping the snapshot local"
	case snapshot.EventSwitchedBack:
		return fmt.Sprintf("Switched back to %s", e.Branch)
	case snapshot.EventWipBranchCreated:
		return fmt.Sprintf("Work in progress saved to %s", e.Branch)
	case snapshot.EventNothingToSave:
		return "Nothing to save, the working tree is clean"
	case snapshot.EventRestoringWip:
		return fmt.Sprintf("Restoring work in progress from %s", e.Branch)
	case snapshot.EventStashingExistingChanges:
		return "Stashing existing changes"
	case snapshot.EventCheckedOutBranch:
		return fmt.Sprintf("Checked out %s", e.Branch)
	case snapshot.EventAppliedChanges:
		return fmt.Sprintf("Applied changes from %s", e.Branch)
	case snapshot.EventRecreatedFileStates:
		return "Recreated staged, unstaged and untracked file states"
	case snapshot.EventRestoringExistingChanges:
		return "Restoring previously stashed changes"
	case snapshot.EventAppliedStash:
		return "Applied stashed changes"
	case snapshot.EventWipBranchDeleted:
		return fmt.Sprintf("Deleted wip branch %s", e.Branch)
	case snapshot.EventRestoreComplete:
		return fmt.Sprintf("Work in progress restored to %s", e.Branch)
	case snapshot.EventDeletedLocalBranch:
		return fmt.Sprintf("Deleted local branch %s", e.Branch)
	case snapshot.EventDeletedRemoteBranch:
		return fmt.Sprintf("Deleted remote branch %s", e.Branch)
	case snapshot.EventRemoteDeleteFailed:
		return fmt.Sprintf("Could not delete remote branch %s: %v", e.Branch, e.Err)
	case snapshot.EventDeleteComplete:
		if e.Count == 1 {
			return "Deleted 1 wip branch"
		}
		return fmt.Sprintf("Deleted %d wip branches", e.Count)
	case snapshot.EventNoWipBranches:
		return "No wip branches found"
	case snapshot.EventNoBranchesSelected:
		return "No branches selected"
	case snapshot.EventOperationCancelled:
		return "Operation cancelled"
	default:
		return ""
	}
}
