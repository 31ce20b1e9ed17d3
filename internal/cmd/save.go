package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wiptools/git-wip/internal/names"
	"github.com/wiptools/git-wip/internal/slogger"
	"github.com/wiptools/git-wip/internal/snapshot"
)

var saveCmd = &cobra.Command{
	Use:     "save",
	Aliases: []string{"s"},
	Short:   "Save the working tree to a wip branch",
	Long: `Save staged, unstaged and untracked changes into a new wip branch.

The working tree is left exactly as it was, so saving is safe to do at any
point. The snapshot is pushed to the configured remote when one exists;
use --local to keep it on this machine only.`,
	Example: `  # Save and push the current state
  git-wip save

  # Save locally with a label
  git-wip save --local --label spike

  # Save under an explicit owner name
  git-wip save --username alice`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		local, err := cmd.Flags().GetBool("local")
		if err != nil {
			return fmt.Errorf("get local flag: %w", err)
		}
		username, err := cmd.Flags().GetString("username")
		if err != nil {
			return fmt.Errorf("get username flag: %w", err)
		}
		datetime, err := cmd.Flags().GetString("datetime")
		if err != nil {
			return fmt.Errorf("get datetime flag: %w", err)
		}
		label, err := cmd.Flags().GetString("label")
		if err != nil {
			return fmt.Errorf("get label flag: %w", err)
		}

		// The config default applies when the flag is not given.
		if !cmd.Flags().Changed("local") {
			if cfg := ConfigFromContext(cmd.Context()); cfg != nil {
				local = cfg.Save.Local
			}
		}

		var timestamp time.Time
		if datetime != "" {
			timestamp, err = time.ParseInLocation(names.TimestampLayout, datetime, time.Local)
			if err != nil {
				return fmt.Errorf("parse datetime %q (want %s): %w", datetime, names.TimestampLayout, err)
			}
		}

		mgr, err := requireManager(cmd.Context())
		if err != nil {
			return err
		}
		path, err := repoPath()
		if err != nil {
			return err
		}

		result, err := mgr.Save(cmd.Context(), path, snapshot.SaveOptions{
			Local:     local,
			Username:  username,
			Timestamp: timestamp,
			Label:     label,
		})
		if err != nil {
			return withHints(err)
		}

		slogger.L(cmd.Context()).Debug("save finished",
			"branch", result.Branch, "status", string(result.Status), "pushed", result.Pushed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)

	saveCmd.Flags().BoolP("local", "l", false, "do not push the snapshot to the remote")
	saveCmd.Flags().StringP("username", "u", "", "owner recorded in the branch name (default: config, then git user.name)")
	saveCmd.Flags().StringP("datetime", "d", "", "timestamp for the branch name in "+names.TimestampLayout+" form (default: now)")
	saveCmd.Flags().String("label", "", "optional label appended to the branch name")
}
