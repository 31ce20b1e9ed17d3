package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wiptools/git-wip/internal/slogger"
	"github.com/wiptools/git-wip/internal/snapshot"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [branch...]",
	Aliases: []string{"d"},
	Short:   "Delete wip branches",
	Long: `Delete wip branches without restoring them.

Branches can be named explicitly, selected interactively, or removed all at
once with --all. Every deletion is confirmed before anything is touched;
remote copies are only removed after a separate confirmation. Declining any
confirmation cancels the whole operation.`,
	Example: `  # Pick branches to delete interactively
  git-wip delete

  # Delete a specific branch
  git-wip delete wip/alice/2024-03-14-15-30-45

  # Delete everything without prompting, keeping remote copies
  git-wip delete --all --force --local`,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := cmd.Flags().GetBool("all")
		if err != nil {
			return fmt.Errorf("get all flag: %w", err)
		}
		force, err := cmd.Flags().GetBool("force")
		if err != nil {
			return fmt.Errorf("get force flag: %w", err)
		}
		localOnly, err := cmd.Flags().GetBool("local")
		if err != nil {
			return fmt.Errorf("get local flag: %w", err)
		}
		allUsers, err := cmd.Flags().GetBool("all-users")
		if err != nil {
			return fmt.Errorf("get all-users flag: %w", err)
		}

		mgr, err := requireManager(cmd.Context())
		if err != nil {
			return err
		}
		path, err := repoPath()
		if err != nil {
			return err
		}

		result, err := mgr.Delete(cmd.Context(), path, snapshot.DeleteOptions{
			Branches:  args,
			All:       all,
			Force:     force,
			LocalOnly: localOnly,
			AllUsers:  allUsers,
		})
		if err != nil {
			// A partial result still names what was deleted; the events have
			// reported the details already.
			return withHints(err)
		}

		slogger.L(cmd.Context()).Debug("delete finished",
			"deleted", len(result.Deleted), "remote", result.Remote, "cancelled", result.Cancelled)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolP("all", "a", false, "delete all wip branches")
	deleteCmd.Flags().BoolP("force", "f", false, "skip confirmation prompts")
	deleteCmd.Flags().BoolP("local", "l", false, "delete local branches only, keep remote copies")
	deleteCmd.Flags().Bool("all-users", false, "allow deleting snapshots from other users")
}
