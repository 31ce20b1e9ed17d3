package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wiptools/git-wip/internal/slogger"
	"github.com/wiptools/git-wip/internal/snapshot"
)

var restoreCmd = &cobra.Command{
	Use:     "restore [branch]",
	Aliases: []string{"r"},
	Short:   "Restore a wip branch onto its source branch",
	Long: `Restore a saved snapshot: check out the branch it was taken from,
reapply the changes with their original staged, unstaged and untracked
states, and delete the consumed wip branch.

Without an argument the newest snapshot is offered; with several snapshots
available an interactive picker opens. Restoring refuses to run on a dirty
working tree unless --autostash is given.`,
	Example: `  # Restore the latest snapshot
  git-wip restore

  # Restore a specific snapshot
  git-wip restore wip/alice/2024-03-14-15-30-45

  # Stash local edits first and reapply them after
  git-wip restore --autostash`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		autostash, err := cmd.Flags().GetBool("autostash")
		if err != nil {
			return fmt.Errorf("get autostash flag: %w", err)
		}
		allUsers, err := cmd.Flags().GetBool("all-users")
		if err != nil {
			return fmt.Errorf("get all-users flag: %w", err)
		}
		yes, err := cmd.Flags().GetBool("yes")
		if err != nil {
			return fmt.Errorf("get yes flag: %w", err)
		}

		// The config default applies when the flag is not given.
		if !cmd.Flags().Changed("autostash") {
			if cfg := ConfigFromContext(cmd.Context()); cfg != nil {
				autostash = cfg.Restore.Autostash
			}
		}

		opts := snapshot.RestoreOptions{
			Autostash: autostash,
			AllUsers:  allUsers,
			Yes:       yes,
		}
		if len(args) == 1 {
			opts.Branch = args[0]
		}

		mgr, err := requireManager(cmd.Context())
		if err != nil {
			return err
		}
		path, err := repoPath()
		if err != nil {
			return err
		}

		result, err := mgr.Restore(cmd.Context(), path, opts)
		if err != nil {
			return withHints(err)
		}

		slogger.L(cmd.Context()).Debug("restore finished",
			"branch", result.Branch, "source", result.SourceBranch,
			"autostashed", result.Autostashed, "cancelled", result.Cancelled)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)

	restoreCmd.Flags().Bool("autostash", false, "stash local changes before restoring and reapply them after")
	restoreCmd.Flags().Bool("all-users", false, "allow restoring snapshots from other users")
	restoreCmd.Flags().BoolP("yes", "y", false, "restore the newest snapshot without asking")
}
