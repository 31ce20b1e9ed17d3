//go:build integration

// Package integration provides integration tests for the git-wip CLI using testscript.
package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/wiptools/git-wip/internal/cmd"
)

// TestMain sets up the testscript environment. The git-wip command runs
// in process, so scripts exercise the real CLI without a prebuilt binary.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"git-wip": func() int {
			if err := cmd.Execute(); err != nil {
				return 1
			}
			return 0
		},
	}))
}

// TestScripts runs all testscript files in testdata/scripts.
func TestScripts(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found in PATH")
	}

	testscript.Run(t, testscript.Params{
		Dir:   "testdata/scripts",
		Setup: setupTestEnv,
	})
}

// setupTestEnv isolates each script from the host's git and git-wip state.
func setupTestEnv(env *testscript.Env) error {
	testHome := filepath.Join(env.WorkDir, "home")
	if err := os.MkdirAll(filepath.Join(testHome, ".config", "git-wip"), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	env.Setenv("HOME", testHome)
	env.Setenv("XDG_CONFIG_HOME", filepath.Join(testHome, ".config"))

	// Keep the host's git configuration out of the scripts. Identity is
	// set per repository inside each script.
	env.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	env.Setenv("GIT_CONFIG_GLOBAL", filepath.Join(testHome, ".gitconfig"))

	return nil
}
