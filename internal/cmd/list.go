package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wiptools/git-wip/internal/snapshot"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List wip branches",
	Long: `List wip branches visible from this repository, newest first.

By default, lists your own snapshots only. Use --all to include snapshots
saved by other users.`,
	Example: `  # List your wip branches
  git-wip list

  # List everyone's wip branches
  git-wip list --all

  # Machine-readable output
  git-wip list --output json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := cmd.Flags().GetBool("all")
		if err != nil {
			return fmt.Errorf("get all flag: %w", err)
		}
		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return fmt.Errorf("get output flag: %w", err)
		}

		mgr, err := requireManager(cmd.Context())
		if err != nil {
			return err
		}
		path, err := repoPath()
		if err != nil {
			return err
		}

		snapshots, err := mgr.List(cmd.Context(), path, snapshot.ListOptions{AllUsers: all})
		if err != nil {
			return withHints(err)
		}

		out := cmd.OutOrStdout()
		switch output {
		case "table":
			if len(snapshots) == 0 {
				fmt.Fprintln(out, "No wip branches found")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "BRANCH\tCREATED\tUSER\tLABEL\tLOCATION")
			for _, s := range snapshots {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					s.Branch, s.CreatedAt.Format("2006-01-02 15:04:05"), s.Username, s.Label, location(s))
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("flush output: %w", err)
			}
		case "json":
			data, err := json.MarshalIndent(snapshots, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal snapshots: %w", err)
			}
			fmt.Fprintln(out, string(data))
		case "yaml":
			data, err := yaml.Marshal(snapshots)
			if err != nil {
				return fmt.Errorf("marshal snapshots: %w", err)
			}
			fmt.Fprint(out, string(data))
		default:
			return fmt.Errorf("unknown output format %q (want table, json or yaml)", output)
		}

		return nil
	},
}

// location describes where a snapshot's copies live.
func location(s snapshot.Snapshot) string {
	switch {
	case s.Local && s.Remote:
		return "local+remote"
	case s.Remote:
		return "remote"
	default:
		return "local"
	}
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("all", "a", false, "include snapshots from all users")
	listCmd.Flags().StringP("output", "o", "table", "output format: table, json or yaml")
}
