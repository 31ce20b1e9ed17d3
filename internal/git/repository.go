package git

import (
	"context"
	"strings"

	"github.com/wiptools/git-wip/internal/exec"
)

type repository struct {
	root string
	exec exec.Executor
}

// run executes a git command in the repository root.
func (r *repository) run(ctx context.Context, args ...string) (*exec.Result, error) {
	return r.exec.Run(ctx, exec.RunOptions{
		Name: "git",
		Args: args,
		Dir:  r.root,
	})
}

// splitLines splits command output into trimmed, non-empty lines.
func splitLines(out []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func (r *repository) Root() string {
	return r.root
}

func (r *repository) CurrentBranch(ctx context.Context) (string, error) {
	result, err := r.run(ctx, "branch", "--show-current")
	if err != nil {
		return "", gitError("get current branch", result, err)
	}

	branch := strings.TrimSpace(string(result.Stdout))
	if branch == "" {
		return "", ErrDetachedHead
	}
	return branch, nil
}

func (r *repository) Username(ctx context.Context) (string, error) {
	result, err := r.run(ctx, "config", "user.name")
	if err != nil {
		// Exit code 1 means the key is unset, which is not a command failure
		if result != nil && result.ExitCode == 1 {
			return "", ErrNoUsername
		}
		return "", gitError("get user.name", result, err)
	}

	name := strings.TrimSpace(string(result.Stdout))
	if name == "" {
		return "", ErrNoUsername
	}
	return name, nil
}

func (r *repository) BranchExists(ctx context.Context, branch string) (bool, error) {
	result, err := r.run(ctx, "show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	if err != nil {
		// Exit code 1 means the branch doesn't exist, which is not an error
		if result != nil && result.ExitCode == 1 {
			return false, nil
		}
		return false, gitError("check branch", result, err)
	}
	return true, nil
}

func (r *repository) ListBranches(ctx context.Context) ([]Branch, error) {
	result, err := r.run(ctx, "for-each-ref", "--format=%(refname)", "refs/heads", "refs/remotes")
	if err != nil {
		return nil, gitError("list branches", result, err)
	}

	var branches []Branch
	for _, ref := range splitLines(result.Stdout) {
		switch {
		case strings.HasPrefix(ref, "refs/heads/"):
			branches = append(branches, Branch{Name: strings.TrimPrefix(ref, "refs/heads/")})

		case strings.HasPrefix(ref, "refs/remotes/"):
			// Strip the remote component; skip symbolic HEAD entries
			rest := strings.TrimPrefix(ref, "refs/remotes/")
			_, name, ok := strings.Cut(rest, "/")
			if !ok || name == "HEAD" {
				continue
			}
			branches = append(branches, Branch{Name: name, Remote: true})
		}
	}
	return branches, nil
}

func (r *repository) CreateBranch(ctx context.Context, branch, startPoint string) error {
	args := []string{"checkout", "-b", branch}
	if startPoint != "" {
		args = append(args, startPoint)
	}

	result, err := r.run(ctx, args...)
	if err != nil {
		if result != nil && strings.Contains(string(result.Stderr), "already exists") {
			return ErrBranchExists
		}
		return gitError("create branch", result, err)
	}
	return nil
}

func (r *repository) Checkout(ctx context.Context, branch string) error {
	result, err := r.run(ctx, "checkout", branch)
	if err != nil {
		if result != nil && strings.Contains(string(result.Stderr), "did not match any") {
			return ErrBranchNotFound
		}
		return gitError("checkout branch", result, err)
	}
	return nil
}

func (r *repository) DeleteBranch(ctx context.Context, branch string) error {
	result, err := r.run(ctx, "branch", "-D", branch)
	if err != nil {
		if result != nil && strings.Contains(string(result.Stderr), "not found") {
			return ErrBranchNotFound
		}
		return gitError("delete branch", result, err)
	}
	return nil
}

func (r *repository) DeleteRemoteBranch(ctx context.Context, remote, branch string) error {
	result, err := r.run(ctx, "push", remote, "--delete", branch)
	if err != nil {
		return gitError("delete remote branch", result, err)
	}
	return nil
}

func (r *repository) Push(ctx context.Context, remote, branch string) error {
	result, err := r.run(ctx, "push", "-u", remote, branch)
	if err != nil {
		return gitError("push branch", result, err)
	}
	return nil
}

func (r *repository) Fetch(ctx context.Context, remote, branch string) error {
	result, err := r.run(ctx, "fetch", remote, branch+":"+branch)
	if err != nil {
		return gitError("fetch branch", result, err)
	}
	return nil
}

func (r *repository) Remotes(ctx context.Context) ([]string, error) {
	result, err := r.run(ctx, "remote")
	if err != nil {
		return nil, gitError("list remotes", result, err)
	}
	return splitLines(result.Stdout), nil
}

func (r *repository) StageAll(ctx context.Context) error {
	result, err := r.run(ctx, "add", "--all")
	if err != nil {
		return gitError("stage all", result, err)
	}
	return nil
}

func (r *repository) StagePaths(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	result, err := r.run(ctx, append([]string{"add", "--"}, paths...)...)
	if err != nil {
		return gitError("stage paths", result, err)
	}
	return nil
}

func (r *repository) UnstagePaths(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	result, err := r.run(ctx, append([]string{"reset", "HEAD", "--"}, paths...)...)
	if err != nil {
		return gitError("unstage paths", result, err)
	}
	return nil
}

func (r *repository) RemovePaths(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	result, err := r.run(ctx, append([]string{"rm", "-r", "--quiet", "--ignore-unmatch", "--"}, paths...)...)
	if err != nil {
		return gitError("remove paths", result, err)
	}
	return nil
}

func (r *repository) Commit(ctx context.Context, message string) error {
	result, err := r.run(ctx, "commit", "-m", message)
	if err != nil {
		return gitError("commit", result, err)
	}
	return nil
}

func (r *repository) CommitMessage(ctx context.Context, ref string) (string, error) {
	result, err := r.run(ctx, "log", "-1", "--format=%B", ref)
	if err != nil {
		return "", gitError("read commit message", result, err)
	}
	return strings.TrimRight(string(result.Stdout), "\n"), nil
}

func (r *repository) RevParse(ctx context.Context, ref string) (string, error) {
	result, err := r.run(ctx, "rev-parse", ref)
	if err != nil {
		return "", gitError("resolve ref", result, err)
	}
	return strings.TrimSpace(string(result.Stdout)), nil
}

func (r *repository) StagedPaths(ctx context.Context) ([]string, error) {
	result, err := r.run(ctx, "diff", "--cached", "--name-only")
	if err != nil {
		return nil, gitError("list staged paths", result, err)
	}
	return splitLines(result.Stdout), nil
}

func (r *repository) UnstagedPaths(ctx context.Context) ([]string, error) {
	result, err := r.run(ctx, "diff", "--name-only")
	if err != nil {
		return nil, gitError("list unstaged paths", result, err)
	}
	return splitLines(result.Stdout), nil
}

func (r *repository) UntrackedPaths(ctx context.Context) ([]string, error) {
	result, err := r.run(ctx, "ls-files", "--others", "--exclude-standard")
	if err != nil {
		return nil, gitError("list untracked paths", result, err)
	}
	return splitLines(result.Stdout), nil
}

func (r *repository) TreePaths(ctx context.Context, ref string) ([]string, error) {
	result, err := r.run(ctx, "ls-tree", "-r", "--name-only", ref)
	if err != nil {
		return nil, gitError("list tree paths", result, err)
	}
	return splitLines(result.Stdout), nil
}

func (r *repository) CheckoutPaths(ctx context.Context, ref string, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	result, err := r.run(ctx, append([]string{"checkout", ref, "--"}, paths...)...)
	if err != nil {
		return gitError("checkout paths", result, err)
	}
	return nil
}

func (r *repository) StashPush(ctx context.Context, message string) error {
	result, err := r.run(ctx, "stash", "push", "--include-untracked", "-m", message)
	if err != nil {
		return gitError("stash changes", result, err)
	}
	return nil
}

func (r *repository) StashPop(ctx context.Context) error {
	result, err := r.run(ctx, "stash", "pop")
	if err != nil {
		return gitError("pop stash", result, err)
	}
	return nil
}
