package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/wiptools/git-wip/internal/exec"
)

// gitError formats an error from a failed git command, preferring the
// captured stderr over the bare exit error.
func gitError(operation string, result *exec.Result, err error) error {
	if result != nil {
		stderr := strings.TrimSpace(string(result.Stderr))
		if stderr != "" {
			return fmt.Errorf("%s: %s", operation, stderr)
		}
	}
	return fmt.Errorf("%s: %w", operation, err)
}

type opener struct {
	exec exec.Executor
}

// NewOpener creates a new Opener that uses the provided Executor.
func NewOpener(e exec.Executor) Opener {
	return &opener{exec: e}
}

func (o *opener) Open(ctx context.Context, path string) (Repository, error) {
	result, err := o.exec.Run(ctx, exec.RunOptions{
		Name: "git",
		Args: []string{"rev-parse", "--show-toplevel"},
		Dir:  path,
	})
	if err != nil {
		if result != nil && strings.Contains(string(result.Stderr), "not a git repository") {
			return nil, ErrNotRepository
		}
		return nil, gitError("get repository root", result, err)
	}

	return &repository{
		root: strings.TrimSpace(string(result.Stdout)),
		exec: o.exec,
	}, nil
}
