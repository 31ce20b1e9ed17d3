package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiptools/git-wip/internal/git"
	gitmocks "github.com/wiptools/git-wip/internal/git/mocks"
	"github.com/wiptools/git-wip/internal/names"
	"github.com/wiptools/git-wip/internal/prompt"
	promptmocks "github.com/wiptools/git-wip/internal/prompt/mocks"
)

// recordingReporter captures emitted events for assertions.
type recordingReporter struct {
	events []Event
}

func (r *recordingReporter) Report(e Event) {
	r.events = append(r.events, e)
}

func (r *recordingReporter) codes() []EventCode {
	codes := make([]EventCode, len(r.events))
	for i, e := range r.events {
		codes[i] = e.Code
	}
	return codes
}

func openerFor(repo git.Repository) *gitmocks.OpenerMock {
	return &gitmocks.OpenerMock{
		OpenFunc: func(ctx context.Context, path string) (git.Repository, error) {
			return repo, nil
		},
	}
}

func noPaths(ctx context.Context) ([]string, error) {
	return nil, nil
}

// saveRepo builds a repository mock for save flows over the given partition.
func saveRepo(state TreeState) *gitmocks.RepositoryMock {
	return &gitmocks.RepositoryMock{
		RevParseFunc:       func(ctx context.Context, ref string) (string, error) { return "abc123", nil },
		CurrentBranchFunc:  func(ctx context.Context) (string, error) { return "main", nil },
		UsernameFunc:       func(ctx context.Context) (string, error) { return "alice", nil },
		StagedPathsFunc:    func(ctx context.Context) ([]string, error) { return state.Staged, nil },
		UnstagedPathsFunc:  func(ctx context.Context) ([]string, error) { return state.Unstaged, nil },
		UntrackedPathsFunc: func(ctx context.Context) ([]string, error) { return state.Untracked, nil },
		CreateBranchFunc:   func(ctx context.Context, branch, startPoint string) error { return nil },
		StageAllFunc:       func(ctx context.Context) error { return nil },
		CommitFunc:         func(ctx context.Context, message string) error { return nil },
		RemotesFunc:        func(ctx context.Context) ([]string, error) { return []string{"origin"}, nil },
		PushFunc:           func(ctx context.Context, remote, branch string) error { return nil },
		CheckoutFunc:       func(ctx context.Context, branch string) error { return nil },
		TreePathsFunc:      func(ctx context.Context, ref string) ([]string, error) { return state.Paths(), nil },
		CheckoutPathsFunc:  func(ctx context.Context, ref string, paths []string) error { return nil },
		RemovePathsFunc:    func(ctx context.Context, paths []string) error { return nil },
		StagePathsFunc:     func(ctx context.Context, paths []string) error { return nil },
		UnstagePathsFunc:   func(ctx context.Context, paths []string) error { return nil },
		DeleteBranchFunc:   func(ctx context.Context, branch string) error { return nil },
	}
}

// restoreRepo builds a repository mock holding the given branches, with the
// snapshot commit carrying meta and a clean working tree.
func restoreRepo(meta Metadata, branches ...git.Branch) *gitmocks.RepositoryMock {
	return &gitmocks.RepositoryMock{
		UsernameFunc:     func(ctx context.Context) (string, error) { return "alice", nil },
		ListBranchesFunc: func(ctx context.Context) ([]git.Branch, error) { return branches, nil },
		CommitMessageFunc: func(ctx context.Context, ref string) (string, error) {
			return meta.Message(), nil
		},
		BranchExistsFunc: func(ctx context.Context, branch string) (bool, error) {
			return branch == meta.SourceBranch, nil
		},
		RevParseFunc:       func(ctx context.Context, ref string) (string, error) { return "parent1", nil },
		StagedPathsFunc:    noPaths,
		UnstagedPathsFunc:  noPaths,
		UntrackedPathsFunc: noPaths,
		CheckoutFunc:       func(ctx context.Context, branch string) error { return nil },
		TreePathsFunc: func(ctx context.Context, ref string) ([]string, error) {
			return meta.Files.Paths(), nil
		},
		CheckoutPathsFunc: func(ctx context.Context, ref string, paths []string) error { return nil },
		RemovePathsFunc:   func(ctx context.Context, paths []string) error { return nil },
		StagePathsFunc:    func(ctx context.Context, paths []string) error { return nil },
		UnstagePathsFunc:  func(ctx context.Context, paths []string) error { return nil },
		DeleteBranchFunc:  func(ctx context.Context, branch string) error { return nil },
	}
}

// deleteRepo builds a repository mock for delete flows.
func deleteRepo(branches ...git.Branch) *gitmocks.RepositoryMock {
	return &gitmocks.RepositoryMock{
		UsernameFunc:           func(ctx context.Context) (string, error) { return "alice", nil },
		ListBranchesFunc:       func(ctx context.Context) ([]git.Branch, error) { return branches, nil },
		RemotesFunc:            func(ctx context.Context) ([]string, error) { return []string{"origin"}, nil },
		DeleteBranchFunc:       func(ctx context.Context, branch string) error { return nil },
		DeleteRemoteBranchFunc: func(ctx context.Context, remote, branch string) error { return nil },
	}
}

func TestNewManager(t *testing.T) {
	mgr := NewManager(nil, nil, nil, ManagerConfig{})
	require.NotNil(t, mgr)
	assert.Equal(t, "origin", mgr.remote)

	mgr = NewManager(nil, nil, nil, ManagerConfig{Remote: "backup", Username: "alice"})
	assert.Equal(t, "backup", mgr.remote)
	assert.Equal(t, "alice", mgr.username)
}

func TestManager_Save(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2024, 3, 14, 15, 30, 45, 0, time.Local)
	wantBranch := "wip/alice/2024-03-14-15-30-45"

	t.Run("creates a snapshot branch and restores the partition", func(t *testing.T) {
		state := TreeState{
			Staged:    []string{"a.go"},
			Unstaged:  []string{"b.go"},
			Untracked: []string{"new.txt"},
		}
		repo := saveRepo(state)
		rep := &recordingReporter{}
		mgr := NewManager(openerFor(repo), nil, rep, ManagerConfig{})

		result, err := mgr.Save(ctx, "/repo", SaveOptions{Timestamp: ts})

		require.NoError(t, err)
		assert.Equal(t, wantBranch, result.Branch)
		assert.Equal(t, "main", result.SourceBranch)
		assert.True(t, result.Pushed)
		assert.Equal(t, SaveCreated, result.Status)
		assert.Equal(t, state, result.State)

		require.Len(t, repo.CreateBranchCalls(), 1)
		assert.Equal(t, wantBranch, repo.CreateBranchCalls()[0].Branch)
		assert.Empty(t, repo.CreateBranchCalls()[0].StartPoint)

		// The snapshot commit records the full partition.
		require.Len(t, repo.CommitCalls(), 1)
		meta, err := ParseMessage(repo.CommitCalls()[0].Message)
		require.NoError(t, err)
		assert.Equal(t, "main", meta.SourceBranch)
		assert.True(t, meta.HadStaged)
		assert.True(t, meta.HadUnstaged)
		assert.True(t, meta.HadUntracked)
		assert.Equal(t, state, meta.Files)

		require.Len(t, repo.PushCalls(), 1)
		assert.Equal(t, "origin", repo.PushCalls()[0].Remote)
		assert.Equal(t, wantBranch, repo.PushCalls()[0].Branch)

		// Switched back to the source branch, then rebuilt the tree state.
		require.Len(t, repo.CheckoutCalls(), 1)
		assert.Equal(t, "main", repo.CheckoutCalls()[0].Branch)
		require.Len(t, repo.CheckoutPathsCalls(), 1)
		assert.Equal(t, wantBranch, repo.CheckoutPathsCalls()[0].Ref)
		assert.Equal(t, state.Paths(), repo.CheckoutPathsCalls()[0].Paths)

		assert.Equal(t, []EventCode{
			EventSavingWip,
			EventCreatedBranch,
			EventStagedAllChanges,
			EventCommittedChanges,
			EventPushedChanges,
			EventSwitchedBack,
			EventWipBranchCreated,
		}, rep.codes())
	})

	t.Run("reports nothing to save on a clean tree", func(t *testing.T) {
		repo := saveRepo(TreeState{})
		rep := &recordingReporter{}
		mgr := NewManager(openerFor(repo), nil, rep, ManagerConfig{})

		result, err := mgr.Save(ctx, "/repo", SaveOptions{})

		require.NoError(t, err)
		assert.Equal(t, SaveNothingToSave, result.Status)
		assert.Empty(t, result.Branch)
		assert.Equal(t, "main", result.SourceBranch)
		assert.Empty(t, repo.CreateBranchCalls())
		assert.Contains(t, rep.codes(), EventNothingToSave)
	})

	t.Run("skips push when the remote is missing", func(t *testing.T) {
		repo := saveRepo(TreeState{Untracked: []string{"new.txt"}})
		repo.RemotesFunc = func(ctx context.Context) ([]string, error) { return nil, nil }
		rep := &recordingReporter{}
		mgr := NewManager(openerFor(repo), nil, rep, ManagerConfig{})

		result, err := mgr.Save(ctx, "/repo", SaveOptions{Timestamp: ts})

		require.NoError(t, err)
		assert.False(t, result.Pushed)
		assert.Empty(t, repo.PushCalls())
		assert.Contains(t, rep.codes(), EventSkippedPushNoRemote)
	})

	t.Run("never touches the remote with the local option", func(t *testing.T) {
		repo := saveRepo(TreeState{Untracked: []string{"new.txt"}})
		repo.RemotesFunc = nil // a call would panic
		repo.PushFunc = nil
		mgr := NewManager(openerFor(repo), nil, nil, ManagerConfig{})

		result, err := mgr.Save(ctx, "/repo", SaveOptions{Timestamp: ts, Local: true})

		require.NoError(t, err)
		assert.False(t, result.Pushed)
	})

	t.Run("keeps the local snapshot when the push fails", func(t *testing.T) {
		repo := saveRepo(TreeState{Staged: []string{"a.go"}})
		repo.PushFunc = func(ctx context.Context, remote, branch string) error {
			return errors.New("connection reset")
		}
		mgr := NewManager(openerFor(repo), nil, nil, ManagerConfig{})

		_, err := mgr.Save(ctx, "/repo", SaveOptions{Timestamp: ts})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRemoteUnavailable)
		assert.ErrorContains(t, err, "connection reset")
		// The switch back still completed and the branch survived.
		require.Len(t, repo.CheckoutCalls(), 1)
		assert.Equal(t, "main", repo.CheckoutCalls()[0].Branch)
		assert.Empty(t, repo.DeleteBranchCalls())
	})

	t.Run("rolls back the partial branch when the commit fails", func(t *testing.T) {
		repo := saveRepo(TreeState{Staged: []string{"a.go"}, Unstaged: []string{"b.go"}})
		repo.CommitFunc = func(ctx context.Context, message string) error {
			return errors.New("gpg failed")
		}
		mgr := NewManager(openerFor(repo), nil, nil, ManagerConfig{})

		_, err := mgr.Save(ctx, "/repo", SaveOptions{Timestamp: ts})

		require.Error(t, err)
		assert.ErrorContains(t, err, "commit snapshot")
		require.Len(t, repo.CheckoutCalls(), 1)
		assert.Equal(t, "main", repo.CheckoutCalls()[0].Branch)
		require.Len(t, repo.DeleteBranchCalls(), 1)
		assert.Equal(t, wantBranch, repo.DeleteBranchCalls()[0].Branch)
		// The index split was put back for the still-dirty tree.
		require.Len(t, repo.StagePathsCalls(), 1)
		assert.Equal(t, []string{"a.go"}, repo.StagePathsCalls()[0].Paths)
	})

	t.Run("reports residual state when the rollback fails", func(t *testing.T) {
		repo := saveRepo(TreeState{Staged: []string{"a.go"}})
		repo.CommitFunc = func(ctx context.Context, message string) error {
			return errors.New("gpg failed")
		}
		repo.CheckoutFunc = func(ctx context.Context, branch string) error {
			return errors.New("disk full")
		}
		mgr := NewManager(openerFor(repo), nil, nil, ManagerConfig{})

		_, err := mgr.Save(ctx, "/repo", SaveOptions{Timestamp: ts})

		require.Error(t, err)
		assert.ErrorContains(t, err, "gpg failed")
		assert.ErrorContains(t, err, "rollback failed")
		assert.ErrorContains(t, err, wantBranch)
	})

	t.Run("rejects a username with illegal characters", func(t *testing.T) {
		repo := saveRepo(TreeState{Staged: []string{"a.go"}})
		repo.UsernameFunc = func(ctx context.Context) (string, error) { return "Test User", nil }
		mgr := NewManager(openerFor(repo), nil, nil, ManagerConfig{})

		_, err := mgr.Save(ctx, "/repo", SaveOptions{Timestamp: ts})

		assert.ErrorIs(t, err, names.ErrInvalidIdentifier)
		assert.Empty(t, repo.CreateBranchCalls())
	})

	t.Run("prefers the explicit username over config and git", func(t *testing.T) {
		repo := saveRepo(TreeState{Staged: []string{"a.go"}})
		repo.UsernameFunc = nil // a call would panic
		mgr := NewManager(openerFor(repo), nil, nil, ManagerConfig{Username: "teambot"})

		result, err := mgr.Save(ctx, "/repo", SaveOptions{Timestamp: ts, Username: "carol"})

		require.NoError(t, err)
		assert.Equal(t, "wip/carol/2024-03-14-15-30-45", result.Branch)

		result, err = mgr.Save(ctx, "/repo", SaveOptions{Timestamp: ts})

		require.NoError(t, err)
		assert.Equal(t, "wip/teambot/2024-03-14-15-30-45", result.Branch)
	})

	t.Run("refuses a repository without commits", func(t *testing.T) {
		repo := saveRepo(TreeState{Untracked: []string{"new.txt"}})
		repo.RevParseFunc = func(ctx context.Context, ref string) (string, error) {
			return "", errors.New("unknown revision")
		}
		mgr := NewManager(openerFor(repo), nil, nil, ManagerConfig{})

		_, err := mgr.Save(ctx, "/repo", SaveOptions{})

		require.Error(t, err)
		assert.ErrorContains(t, err, "no commits")
		assert.Empty(t, repo.CreateBranchCalls())
	})
}

func TestManager_List(t *testing.T) {
	ctx := context.Background()

	t.Run("merges local and remote copies newest first", func(t *testing.T) {
		repo := deleteRepo(
			git.Branch{Name: "main"},
			git.Branch{Name: "wip/alice/2024-03-14-15-30-45"},
			git.Branch{Name: "wip/alice/2024-03-14-15-30-45", Remote: true},
			git.Branch{Name: "wip/alice/2024-03-15-10-00-00", Remote: true},
			git.Branch{Name: "wip/bob/2024-03-16-09-00-00"},
			git.Branch{Name: "feature/wip-ideas"},
		)
		mgr := NewManager(openerFor(repo), nil, nil, ManagerConfig{})

		snapshots, err := mgr.List(ctx, "/repo", ListOptions{})

		require.NoError(t, err)
		require.Len(t, snapshots, 2)

		assert.Equal(t, "wip/alice/2024-03-15-10-00-00", snapshots[0].Branch)
		assert.False(t, snapshots[0].Local)
		assert.True(t, snapshots[0].Remote)

		assert.Equal(t, "wip/alice/2024-03-14-15-30-45", snapshots[1].Branch)
		assert.True(t, snapshots[1].Local)
		assert.True(t, snapshots[1].Remote)
		assert.Equal(t, "alice", snapshots[1].Username)
	})

	t.Run("includes other users when asked", func(t *testing.T) {
		repo := deleteRepo(
			git.Branch{Name: "wip/alice/2024-03-14-15-30-45"},
			git.Branch{Name: "wip/bob/2024-03-16-09-00-00"},
		)
		mgr := NewManager(openerFor(repo), nil, nil, ManagerConfig{})

		snapshots, err := mgr.List(ctx, "/repo", ListOptions{AllUsers: true})

		require.NoError(t, err)
		require.Len(t, snapshots, 2)
		assert.Equal(t, "bob", snapshots[0].Username)
		assert.Equal(t, "alice", snapshots[1].Username)
	})

	t.Run("returns empty without snapshots", func(t *testing.T) {
		repo := deleteRepo(git.Branch{Name: "main"}, git.Branch{Name: "develop"})
		mgr := NewManager(openerFor(repo), nil, nil, ManagerConfig{})

		snapshots, err := mgr.List(ctx, "/repo", ListOptions{})

		require.NoError(t, err)
		assert.Empty(t, snapshots)
	})

	t.Run("keeps labels visible", func(t *testing.T) {
		repo := deleteRepo(git.Branch{Name: "wip/alice/2024-03-14-15-30-45-login-spike"})
		mgr := NewManager(openerFor(repo), nil, nil, ManagerConfig{})

		snapshots, err := mgr.List(ctx, "/repo", ListOptions{})

		require.NoError(t, err)
		require.Len(t, snapshots, 1)
		assert.Equal(t, "login-spike", snapshots[0].Label)
	})
}

func TestManager_Restore(t *testing.T) {
	ctx := context.Background()
	branch := "wip/alice/2024-03-14-15-30-45"
	meta := Metadata{
		SourceBranch: "main",
		CreatedAt:    time.Date(2024, 3, 14, 15, 30, 45, 0, time.Local),
		HadStaged:    true,
		HadUnstaged:  true,
		Files: TreeState{
			Staged:   []string{"a.go"},
			Unstaged: []string{"b.go"},
		},
	}

	t.Run("restores an explicit snapshot onto its source branch", func(t *testing.T) {
		repo := restoreRepo(meta, git.Branch{Name: branch})
		rep := &recordingReporter{}
		mgr := NewManager(openerFor(repo), nil, rep, ManagerConfig{})

		result, err := mgr.Restore(ctx, "/repo", RestoreOptions{Branch: branch})

		require.NoError(t, err)
		assert.Equal(t, branch, result.Branch)
		assert.Equal(t, "main", result.SourceBranch)
		assert.Equal(t, meta.Files, result.State)
		assert.False(t, result.Autostashed)
		assert.False(t, result.Cancelled)

		require.Len(t, repo.CheckoutCalls(), 1)
		assert.Equal(t, "main", repo.CheckoutCalls()[0].Branch)
		require.Len(t, repo.CheckoutPathsCalls(), 1)
		assert.Equal(t, branch, repo.CheckoutPathsCalls()[0].Ref)
		require.Len(t, repo.StagePathsCalls(), 1)
		assert.Equal(t, []string{"a.go"}, repo.StagePathsCalls()[0].Paths)
		require.Len(t, repo.DeleteBranchCalls(), 1)
		assert.Equal(t, branch, repo.DeleteBranchCalls()[0].Branch)

		assert.Equal(t, []EventCode{
			EventRestoringWip,
			EventCheckedOutBranch,
			EventAppliedChanges,
			EventRecreatedFileStates,
			EventWipBranchDeleted,
			EventRestoreComplete,
		}, rep.codes())
	})

	t.Run("auto-selects the only candidate", func(t *testing.T) {
		repo := restoreRepo(meta, git.Branch{Name: branch})
		prompter := &promptmocks.PrompterMock{} // any prompt would panic
		mgr := NewManager(openerFor(repo), prompter, nil, ManagerConfig{})

		result, err := mgr.Restore(ctx, "/repo", RestoreOptions{})

		require.NoError(t, err)
		assert.Equal(t, branch, result.Branch)
	})

	t.Run("prompts between several candidates", func(t *testing.T) {
		older := "wip/alice/2024-03-10-08-00-00"
		repo := restoreRepo(meta, git.Branch{Name: branch}, git.Branch{Name: older})
		repo.CommitMessageFunc = func(ctx context.Context, ref string) (string, error) {
			require.Equal(t, older, ref)
			return meta.Message(), nil
		}
		prompter := &promptmocks.PrompterMock{
			ChoiceFunc: func(title string, options []string) (int, error) {
				assert.Len(t, options, 2)
				return 1, nil // the older snapshot
			},
		}
		mgr := NewManager(openerFor(repo), prompter, nil, ManagerConfig{})

		result, err := mgr.Restore(ctx, "/repo", RestoreOptions{})

		require.NoError(t, err)
		assert.Equal(t, older, result.Branch)
	})

	t.Run("takes the newest candidate with yes", func(t *testing.T) {
		older := "wip/alice/2024-03-10-08-00-00"
		repo := restoreRepo(meta, git.Branch{Name: older}, git.Branch{Name: branch})
		prompter := &promptmocks.PrompterMock{} // any prompt would panic
		mgr := NewManager(openerFor(repo), prompter, nil, ManagerConfig{})

		result, err := mgr.Restore(ctx, "/repo", RestoreOptions{Yes: true})

		require.NoError(t, err)
		assert.Equal(t, branch, result.Branch)
	})

	t.Run("cancelled selection is a clean outcome", func(t *testing.T) {
		older := "wip/alice/2024-03-10-08-00-00"
		repo := restoreRepo(meta, git.Branch{Name: branch}, git.Branch{Name: older})
		prompter := &promptmocks.PrompterMock{
			ChoiceFunc: func(title string, options []string) (int, error) {
				return 0, prompt.ErrCanceled
			},
		}
		rep := &recordingReporter{}
		mgr := NewManager(openerFor(repo), prompter, rep, ManagerConfig{})

		result, err := mgr.Restore(ctx, "/repo", RestoreOptions{})

		require.NoError(t, err)
		assert.True(t, result.Cancelled)
		assert.Empty(t, repo.CheckoutCalls())
		assert.Contains(t, rep.codes(), EventOperationCancelled)
	})

	t.Run("reports when there is nothing to restore", func(t *testing.T) {
		repo := restoreRepo(meta, git.Branch{Name: "main"})
		rep := &recordingReporter{}
		mgr := NewManager(openerFor(repo), nil, rep, ManagerConfig{})

		result, err := mgr.Restore(ctx, "/repo", RestoreOptions{})

		require.NoError(t, err)
		assert.Empty(t, result.Branch)
		assert.False(t, result.Cancelled)
		assert.Equal(t, []EventCode{EventNoWipBranches}, rep.codes())
	})

	t.Run("rejects a dirty tree without autostash", func(t *testing.T) {
		repo := restoreRepo(meta, git.Branch{Name: branch})
		repo.UnstagedPathsFunc = func(ctx context.Context) ([]string, error) {
			return []string{"local.go"}, nil
		}
		mgr := NewManager(openerFor(repo), nil, nil, ManagerConfig{})

		_, err := mgr.Restore(ctx, "/repo", RestoreOptions{Branch: branch})

		assert.ErrorIs(t, err, ErrDirtyWorkingTree)
		assert.Empty(t, repo.StashPushCalls())
		assert.Empty(t, repo.CheckoutCalls())
	})

	t.Run("autostashes and reapplies existing changes", func(t *testing.T) {
		repo := restoreRepo(meta, git.Branch{Name: branch})
		repo.UnstagedPathsFunc = func(ctx context.Context) ([]string, error) {
			return []string{"local.go"}, nil
		}
		repo.StashPushFunc = func(ctx context.Context, message string) error { return nil }
		repo.StashPopFunc = func(ctx context.Context) error { return nil }
		rep := &recordingReporter{}
		mgr := NewManager(openerFor(repo), nil, rep, ManagerConfig{})

		result, err := mgr.Restore(ctx, "/repo", RestoreOptions{Branch: branch, Autostash: true})

		require.NoError(t, err)
		assert.True(t, result.Autostashed)
		require.Len(t, repo.StashPushCalls(), 1)
		assert.Equal(t, "git-wip: autostash main", repo.StashPushCalls()[0].Message)
		require.Len(t, repo.StashPopCalls(), 1)
		assert.Contains(t, rep.codes(), EventStashingExistingChanges)
		assert.Contains(t, rep.codes(), EventRestoringExistingChanges)
		assert.Contains(t, rep.codes(), EventAppliedStash)
	})

	t.Run("keeps stash and branch on a pop conflict", func(t *testing.T) {
		repo := restoreRepo(meta, git.Branch{Name: branch})
		repo.UnstagedPathsFunc = func(ctx context.Context) ([]string, error) {
			return []string{"local.go"}, nil
		}
		repo.StashPushFunc = func(ctx context.Context, message string) error { return nil }
		repo.StashPopFunc = func(ctx context.Context) error {
			return errors.New("merge conflict in b.go")
		}
		mgr := NewManager(openerFor(repo), nil, nil, ManagerConfig{})

		_, err := mgr.Restore(ctx, "/repo", RestoreOptions{Branch: branch, Autostash: true})

		assert.ErrorIs(t, err, ErrStashConflict)
		assert.ErrorContains(t, err, "merge conflict in b.go")
		assert.Empty(t, repo.DeleteBranchCalls())
	})

	t.Run("refuses to restore onto a moved source tip", func(t *testing.T) {
		repo := restoreRepo(meta, git.Branch{Name: branch})
		repo.UnstagedPathsFunc = func(ctx context.Context) ([]string, error) {
			return []string{"local.go"}, nil
		}
		repo.RevParseFunc = func(ctx context.Context, ref string) (string, error) {
			if ref == "main" {
				return "moved99", nil
			}
			return "parent1", nil
		}
		mgr := NewManager(openerFor(repo), nil, nil, ManagerConfig{})

		_, err := mgr.Restore(ctx, "/repo", RestoreOptions{Branch: branch, Autostash: true})

		assert.ErrorIs(t, err, ErrTargetConflict)
		// The divergence guard runs before the autostash would.
		assert.Empty(t, repo.StashPushCalls())
		assert.Empty(t, repo.CheckoutCalls())
	})

	t.Run("fetches a snapshot that only exists remotely", func(t *testing.T) {
		repo := restoreRepo(meta, git.Branch{Name: branch, Remote: true})
		repo.FetchFunc = func(ctx context.Context, remote, b string) error { return nil }
		repo.DeleteRemoteBranchFunc = func(ctx context.Context, remote, b string) error { return nil }
		mgr := NewManager(openerFor(repo), nil, nil, ManagerConfig{})

		result, err := mgr.Restore(ctx, "/repo", RestoreOptions{Branch: branch})

		require.NoError(t, err)
		assert.Equal(t, branch, result.Branch)
		require.Len(t, repo.FetchCalls(), 1)
		assert.Equal(t, "origin", repo.FetchCalls()[0].Remote)
		require.Len(t, repo.DeleteRemoteBranchCalls(), 1)
		assert.Equal(t, branch, repo.DeleteRemoteBranchCalls()[0].Branch)
	})

	t.Run("recreates a deleted source branch at the snapshot parent", func(t *testing.T) {
		repo := restoreRepo(meta, git.Branch{Name: branch})
		repo.BranchExistsFunc = func(ctx context.Context, b string) (bool, error) { return false, nil }
		repo.CreateBranchFunc = func(ctx context.Context, b, startPoint string) error { return nil }
		mgr := NewManager(openerFor(repo), nil, nil, ManagerConfig{})

		result, err := mgr.Restore(ctx, "/repo", RestoreOptions{Branch: branch})

		require.NoError(t, err)
		assert.Equal(t, "main", result.SourceBranch)
		require.Len(t, repo.CreateBranchCalls(), 1)
		assert.Equal(t, "main", repo.CreateBranchCalls()[0].Branch)
		assert.Equal(t, branch+"^", repo.CreateBranchCalls()[0].StartPoint)
		assert.Empty(t, repo.CheckoutCalls())
	})

	t.Run("remote cleanup failure does not fail the restore", func(t *testing.T) {
		repo := restoreRepo(meta,
			git.Branch{Name: branch},
			git.Branch{Name: branch, Remote: true},
		)
		repo.DeleteRemoteBranchFunc = func(ctx context.Context, remote, b string) error {
			return errors.New("permission denied")
		}
		rep := &recordingReporter{}
		mgr := NewManager(openerFor(repo), nil, rep, ManagerConfig{})

		result, err := mgr.Restore(ctx, "/repo", RestoreOptions{Branch: branch})

		require.NoError(t, err)
		assert.Equal(t, branch, result.Branch)
		assert.Contains(t, rep.codes(), EventRemoteDeleteFailed)
	})

	t.Run("rejects snapshots owned by someone else", func(t *testing.T) {
		other := "wip/bob/2024-03-14-15-30-45"
		repo := restoreRepo(meta, git.Branch{Name: other})
		mgr := NewManager(openerFor(repo), nil, nil, ManagerConfig{})

		_, err := mgr.Restore(ctx, "/repo", RestoreOptions{Branch: other})

		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("errors on an unknown branch", func(t *testing.T) {
		repo := restoreRepo(meta, git.Branch{Name: branch})
		mgr := NewManager(openerFor(repo), nil, nil, ManagerConfig{})

		_, err := mgr.Restore(ctx, "/repo", RestoreOptions{
			Branch: "wip/alice/2030-01-01-00-00-00",
		})

		assert.ErrorIs(t, err, ErrBranchNotFound)
	})

	t.Run("errors on a malformed branch name", func(t *testing.T) {
		repo := restoreRepo(meta, git.Branch{Name: branch})
		mgr := NewManager(openerFor(repo), nil, nil, ManagerConfig{})

		_, err := mgr.Restore(ctx, "/repo", RestoreOptions{Branch: "feature/login"})

		assert.ErrorIs(t, err, names.ErrInvalidIdentifier)
	})
}

func TestManager_Delete(t *testing.T) {
	ctx := context.Background()
	b1 := "wip/alice/2024-03-14-15-30-45"
	b2 := "wip/alice/2024-03-13-10-00-00"
	b3 := "wip/alice/2024-03-12-09-00-00"

	t.Run("delete all confirms once with the count", func(t *testing.T) {
		repo := deleteRepo(
			git.Branch{Name: b1},
			git.Branch{Name: b2},
			git.Branch{Name: b3},
		)
		prompter := &promptmocks.PrompterMock{
			ConfirmFunc: func(title, description string) (bool, error) {
				assert.Contains(t, title, "3 wip branches")
				return true, nil
			},
		}
		mgr := NewManager(openerFor(repo), prompter, nil, ManagerConfig{})

		result, err := mgr.Delete(ctx, "/repo", DeleteOptions{All: true})

		require.NoError(t, err)
		assert.False(t, result.Cancelled)
		assert.Len(t, result.Deleted, 3)
		assert.Len(t, repo.DeleteBranchCalls(), 3)
		// Only the aggregate confirmation: no targets exist remotely.
		assert.Len(t, prompter.ConfirmCalls(), 1)
	})

	t.Run("force skips every prompt", func(t *testing.T) {
		repo := deleteRepo(
			git.Branch{Name: b1},
			git.Branch{Name: b1, Remote: true},
			git.Branch{Name: b2},
		)
		prompter := &promptmocks.PrompterMock{} // any prompt would panic
		mgr := NewManager(openerFor(repo), prompter, nil, ManagerConfig{})

		result, err := mgr.Delete(ctx, "/repo", DeleteOptions{All: true, Force: true})

		require.NoError(t, err)
		assert.True(t, result.Remote)
		assert.Len(t, repo.DeleteBranchCalls(), 2)
		assert.Len(t, repo.DeleteRemoteBranchCalls(), 1)
	})

	t.Run("declining the aggregate cancels everything", func(t *testing.T) {
		repo := deleteRepo(git.Branch{Name: b1}, git.Branch{Name: b2})
		prompter := &prompt.Scripted{Confirms: []bool{false}}
		rep := &recordingReporter{}
		mgr := NewManager(openerFor(repo), prompter, rep, ManagerConfig{})

		result, err := mgr.Delete(ctx, "/repo", DeleteOptions{All: true})

		require.NoError(t, err)
		assert.True(t, result.Cancelled)
		assert.Empty(t, repo.DeleteBranchCalls())
		assert.Contains(t, rep.codes(), EventOperationCancelled)
	})

	t.Run("explicit branches confirm one by one", func(t *testing.T) {
		repo := deleteRepo(git.Branch{Name: b1}, git.Branch{Name: b2}, git.Branch{Name: b3})
		prompter := &promptmocks.PrompterMock{
			ConfirmFunc: func(title, description string) (bool, error) { return true, nil },
		}
		mgr := NewManager(openerFor(repo), prompter, nil, ManagerConfig{})

		result, err := mgr.Delete(ctx, "/repo", DeleteOptions{Branches: []string{b1, b3}})

		require.NoError(t, err)
		assert.Len(t, result.Deleted, 2)
		require.Len(t, prompter.ConfirmCalls(), 2)
		assert.Contains(t, prompter.ConfirmCalls()[0].Title, b1)
		assert.Contains(t, prompter.ConfirmCalls()[1].Title, b3)
	})

	t.Run("one declined branch cancels the whole operation", func(t *testing.T) {
		repo := deleteRepo(git.Branch{Name: b1}, git.Branch{Name: b2})
		prompter := &prompt.Scripted{Confirms: []bool{true, false}}
		mgr := NewManager(openerFor(repo), prompter, nil, ManagerConfig{})

		result, err := mgr.Delete(ctx, "/repo", DeleteOptions{Branches: []string{b1, b2}})

		require.NoError(t, err)
		assert.True(t, result.Cancelled)
		assert.Empty(t, repo.DeleteBranchCalls())
	})

	t.Run("remote copies need a separate confirmation", func(t *testing.T) {
		repo := deleteRepo(
			git.Branch{Name: b1},
			git.Branch{Name: b1, Remote: true},
			git.Branch{Name: b2},
		)
		var remoteDescription string
		calls := 0
		prompter := &promptmocks.PrompterMock{
			ConfirmFunc: func(title, description string) (bool, error) {
				calls++
				if calls == 2 {
					remoteDescription = description
				}
				return true, nil
			},
		}
		mgr := NewManager(openerFor(repo), prompter, nil, ManagerConfig{})

		result, err := mgr.Delete(ctx, "/repo", DeleteOptions{All: true})

		require.NoError(t, err)
		assert.True(t, result.Remote)
		assert.Equal(t, 2, calls)
		assert.Contains(t, remoteDescription, "1")
		require.Len(t, repo.DeleteRemoteBranchCalls(), 1)
		assert.Equal(t, b1, repo.DeleteRemoteBranchCalls()[0].Branch)
	})

	t.Run("declining the remote confirmation keeps deletions local", func(t *testing.T) {
		repo := deleteRepo(
			git.Branch{Name: b1},
			git.Branch{Name: b1, Remote: true},
		)
		prompter := &prompt.Scripted{Confirms: []bool{true, false}}
		mgr := NewManager(openerFor(repo), prompter, nil, ManagerConfig{})

		result, err := mgr.Delete(ctx, "/repo", DeleteOptions{All: true})

		require.NoError(t, err)
		assert.False(t, result.Cancelled)
		assert.False(t, result.Remote)
		assert.Len(t, repo.DeleteBranchCalls(), 1)
		assert.Empty(t, repo.DeleteRemoteBranchCalls())
	})

	t.Run("local-only never asks about the remote", func(t *testing.T) {
		repo := deleteRepo(
			git.Branch{Name: b1},
			git.Branch{Name: b1, Remote: true},
		)
		prompter := &prompt.Scripted{Confirms: []bool{true}}
		mgr := NewManager(openerFor(repo), prompter, nil, ManagerConfig{})

		result, err := mgr.Delete(ctx, "/repo", DeleteOptions{All: true, LocalOnly: true})

		require.NoError(t, err)
		assert.False(t, result.Remote)
		assert.Empty(t, repo.DeleteRemoteBranchCalls())
	})

	t.Run("partial remote failure keeps local deletions and reports", func(t *testing.T) {
		repo := deleteRepo(
			git.Branch{Name: b1},
			git.Branch{Name: b1, Remote: true},
			git.Branch{Name: b2},
			git.Branch{Name: b2, Remote: true},
		)
		repo.DeleteRemoteBranchFunc = func(ctx context.Context, remote, branch string) error {
			if branch == b1 {
				return errors.New("remote hung up")
			}
			return nil
		}
		rep := &recordingReporter{}
		mgr := NewManager(openerFor(repo), nil, rep, ManagerConfig{})

		result, err := mgr.Delete(ctx, "/repo", DeleteOptions{All: true, Force: true})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPartialDelete)
		require.NotNil(t, result)
		require.Len(t, result.Deleted, 2)
		assert.True(t, result.Deleted[0].Local)
		assert.False(t, result.Deleted[0].Remote)
		assert.ErrorContains(t, result.Deleted[0].RemoteErr, "remote hung up")
		assert.True(t, result.Deleted[1].Remote)
		assert.Len(t, repo.DeleteBranchCalls(), 2)
		assert.Contains(t, rep.codes(), EventRemoteDeleteFailed)
	})

	t.Run("multi-select deletes the chosen branches", func(t *testing.T) {
		repo := deleteRepo(
			git.Branch{Name: b1},
			git.Branch{Name: b2},
			git.Branch{Name: b3},
		)
		prompter := &prompt.Scripted{
			Selections: [][]int{{0, 2}},
			Confirms:   []bool{true},
		}
		mgr := NewManager(openerFor(repo), prompter, nil, ManagerConfig{})

		result, err := mgr.Delete(ctx, "/repo", DeleteOptions{})

		require.NoError(t, err)
		require.Len(t, result.Deleted, 2)
		assert.Equal(t, b1, result.Deleted[0].Branch)
		assert.Equal(t, b3, result.Deleted[1].Branch)
	})

	t.Run("empty selection is a clean no-op", func(t *testing.T) {
		repo := deleteRepo(git.Branch{Name: b1}, git.Branch{Name: b2})
		prompter := &prompt.Scripted{Selections: [][]int{{}}}
		rep := &recordingReporter{}
		mgr := NewManager(openerFor(repo), prompter, rep, ManagerConfig{})

		result, err := mgr.Delete(ctx, "/repo", DeleteOptions{})

		require.NoError(t, err)
		assert.False(t, result.Cancelled)
		assert.Empty(t, result.Deleted)
		assert.Empty(t, repo.DeleteBranchCalls())
		assert.Contains(t, rep.codes(), EventNoBranchesSelected)
	})

	t.Run("a single candidate is confirmed directly", func(t *testing.T) {
		repo := deleteRepo(git.Branch{Name: b1})
		prompter := &promptmocks.PrompterMock{
			ConfirmFunc: func(title, description string) (bool, error) {
				assert.Contains(t, title, b1)
				return true, nil
			},
		}
		mgr := NewManager(openerFor(repo), prompter, nil, ManagerConfig{})

		result, err := mgr.Delete(ctx, "/repo", DeleteOptions{})

		require.NoError(t, err)
		require.Len(t, result.Deleted, 1)
		assert.Equal(t, b1, result.Deleted[0].Branch)
		assert.Empty(t, prompter.MultiSelectCalls())
	})

	t.Run("reports when there is nothing to delete", func(t *testing.T) {
		repo := deleteRepo(git.Branch{Name: "main"})
		rep := &recordingReporter{}
		mgr := NewManager(openerFor(repo), nil, rep, ManagerConfig{})

		result, err := mgr.Delete(ctx, "/repo", DeleteOptions{All: true})

		require.NoError(t, err)
		assert.Empty(t, result.Deleted)
		assert.Equal(t, []EventCode{EventNoWipBranches}, rep.codes())
	})

	t.Run("errors on an unknown explicit branch", func(t *testing.T) {
		repo := deleteRepo(git.Branch{Name: b1})
		mgr := NewManager(openerFor(repo), nil, nil, ManagerConfig{})

		_, err := mgr.Delete(ctx, "/repo", DeleteOptions{
			Branches: []string{"wip/alice/2030-01-01-00-00-00"},
			Force:    true,
		})

		assert.ErrorIs(t, err, ErrBranchNotFound)
	})

	t.Run("rejects foreign branches without all-users", func(t *testing.T) {
		other := "wip/bob/2024-03-14-15-30-45"
		repo := deleteRepo(git.Branch{Name: other})
		mgr := NewManager(openerFor(repo), nil, nil, ManagerConfig{})

		_, err := mgr.Delete(ctx, "/repo", DeleteOptions{
			Branches: []string{other},
			Force:    true,
		})

		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("deletes foreign branches with all-users", func(t *testing.T) {
		other := "wip/bob/2024-03-14-15-30-45"
		repo := deleteRepo(git.Branch{Name: other})
		repo.UsernameFunc = nil // scope is all users, ownership is not resolved
		mgr := NewManager(openerFor(repo), nil, nil, ManagerConfig{})

		result, err := mgr.Delete(ctx, "/repo", DeleteOptions{
			Branches: []string{other},
			AllUsers: true,
			Force:    true,
		})

		require.NoError(t, err)
		require.Len(t, result.Deleted, 1)
		assert.Equal(t, other, result.Deleted[0].Branch)
	})
}
