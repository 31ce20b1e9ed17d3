// Package cmd implements the git-wip CLI commands using Cobra.
// It provides commands for saving, listing, restoring and deleting
// work-in-progress snapshot branches.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wiptools/git-wip/internal/config"
	wipexec "github.com/wiptools/git-wip/internal/exec"
	"github.com/wiptools/git-wip/internal/git"
	"github.com/wiptools/git-wip/internal/prompt"
	"github.com/wiptools/git-wip/internal/slogger"
	"github.com/wiptools/git-wip/internal/snapshot"
)

// baseDeps lists the external binaries that must always be available.
var baseDeps = []string{"git"}

// mgr is the snapshot manager, initialized in PersistentPreRunE.
var mgr *snapshot.Manager

// appConfig holds the loaded application configuration.
var appConfig *config.Config

// configLoader is used for reading and writing configuration values.
var configLoader *config.Loader

// verbosity counts -v occurrences for log level selection.
var verbosity int

var rootCmd = &cobra.Command{
	Use:   "git-wip",
	Short: "Save and restore work-in-progress snapshots",
	Long: `git-wip saves the current state of your working tree into a dedicated
branch named wip/{username}/{timestamp} and restores it later, exactly as
it was: staged changes stay staged, unstaged stay unstaged, untracked stay
untracked.

Snapshots are plain branches, so they survive machine switches when pushed
and need nothing but git to inspect.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := checkDependencies(); err != nil {
			return err
		}

		initManager(cmd)

		// Store dependencies in context for subcommands
		ctx := cmd.Context()
		ctx = slogger.WithLogger(ctx, slogger.New(slogger.Config{Verbosity: verbosity}))
		ctx = WithConfig(ctx, appConfig)
		ctx = WithLoader(ctx, configLoader)
		ctx = WithManager(ctx, mgr)
		cmd.SetContext(ctx)

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (-v info, -vv debug)")
}

func initConfig() {
	loader, err := config.NewLoader()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize config: %v\n", err)
		return
	}

	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		return
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: config validation failed: %v\n", err)
	}

	appConfig = cfg
	configLoader = loader
}

// checkDependencies verifies that all required external binaries are available.
func checkDependencies() error {
	var missing []string

	for _, dep := range baseDeps {
		if _, err := exec.LookPath(dep); err != nil {
			missing = append(missing, dep)
		}
	}

	if len(missing) > 0 {
		return errors.New("missing required dependencies: " + strings.Join(missing, ", "))
	}
	return nil
}

// initManager wires the snapshot manager with all dependencies. Progress
// events print through the command's stdout.
func initManager(cmd *cobra.Command) {
	cfg := snapshot.ManagerConfig{}
	if appConfig != nil {
		cfg.Remote = appConfig.Remote
		cfg.Username = appConfig.Username
	}

	executor := wipexec.New()
	opener := git.NewOpener(executor)
	reporter := &printingReporter{out: cmd.OutOrStdout()}

	mgr = snapshot.NewManager(opener, prompt.New(), reporter, cfg)
}
