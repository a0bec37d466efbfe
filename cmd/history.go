package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/KaramelBytes/labloom-cli/internal/utils"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List or show saved parse runs",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved runs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := currentConfig()
		if err != nil {
			return err
		}
		store, err := historyStore(c)
		if err != nil {
			return err
		}
		runs, err := store.List()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(runs) == 0 {
			fmt.Fprintf(out, "No saved runs in %s\n", store.Dir())
			return nil
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tCREATED\tSOURCE\tPARAMETERS\tALTERED")
		for _, r := range runs {
			n, altered := 0, 0.0
			if r.Result != nil {
				n, altered = r.Result.TotalParameters, r.Result.Statistics.AlteredPercentage
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.1f%%\n", r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Source, n, altered)
		}
		return tw.Flush()
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := currentConfig()
		if err != nil {
			return err
		}
		store, err := historyStore(c)
		if err != nil {
			return err
		}
		run, err := store.Load(args[0])
		if err != nil {
			return err
		}
		if historyFormat != "" && historyFormat != "json" {
			return writeResult(cmd.OutOrStdout(), run.Result, historyFormat, run.Source)
		}
		b, err := utils.PrettyJSON(run)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}

var historyFormat string

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyShowCmd)
	historyShowCmd.Flags().StringVarP(&historyFormat, "format", "f", "json", "output format: json (full run) | markdown (result only)")
}
