package snapshot

import (
	"context"
	"fmt"

	"github.com/wiptools/git-wip/internal/git"
)

// capture classifies every changed path in the working tree.
func capture(ctx context.Context, repo git.Repository) (TreeState, error) {
	staged, err := repo.StagedPaths(ctx)
	if err != nil {
		return TreeState{}, fmt.Errorf("list staged paths: %w", err)
	}
	unstaged, err := repo.UnstagedPaths(ctx)
	if err != nil {
		return TreeState{}, fmt.Errorf("list unstaged paths: %w", err)
	}
	untracked, err := repo.UntrackedPaths(ctx)
	if err != nil {
		return TreeState{}, fmt.Errorf("list untracked paths: %w", err)
	}
	return TreeState{Staged: staged, Unstaged: unstaged, Untracked: untracked}, nil
}

// materialize copies every path recorded in state out of ref into the
// working tree and index. A recorded path absent from ref's tree was a
// deletion at capture time, so the deletion is replayed instead. After
// materialize all surviving paths sit staged in the index; recreate turns
// that back into the recorded partition.
func materialize(ctx context.Context, repo git.Repository, ref string, state TreeState) error {
	tree, err := repo.TreePaths(ctx, ref)
	if err != nil {
		return fmt.Errorf("list tree of %s: %w", ref, err)
	}

	inTree := make(map[string]struct{}, len(tree))
	for _, p := range tree {
		inTree[p] = struct{}{}
	}

	var present, deleted []string
	for _, p := range state.Paths() {
		if _, ok := inTree[p]; ok {
			present = append(present, p)
		} else {
			deleted = append(deleted, p)
		}
	}

	if err := repo.CheckoutPaths(ctx, ref, present); err != nil {
		return fmt.Errorf("check out paths from %s: %w", ref, err)
	}
	if err := repo.RemovePaths(ctx, deleted); err != nil {
		return fmt.Errorf("replay deletions: %w", err)
	}
	return nil
}

// recreate arranges the index so that capture would observe state again.
// The sequence works whether the paths currently sit fully staged (after
// materialize) or fully unstaged (after a stash pop): staged paths are
// staged, everything else is reset out of the index. A path that was both
// staged and modified on top collapses to unstaged.
func recreate(ctx context.Context, repo git.Repository, state TreeState) error {
	if err := repo.StagePaths(ctx, state.Staged); err != nil {
		return fmt.Errorf("stage recorded paths: %w", err)
	}
	if err := repo.UnstagePaths(ctx, state.Unstaged); err != nil {
		return fmt.Errorf("unstage recorded paths: %w", err)
	}
	if err := repo.UnstagePaths(ctx, state.Untracked); err != nil {
		return fmt.Errorf("unstage untracked paths: %w", err)
	}
	return nil
}
