package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/KaramelBytes/labloom-cli/internal/knowledge"
	"github.com/KaramelBytes/labloom-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	kbCategory string
	kbJSON     bool
)

var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Inspect the analyte knowledge base",
}

var kbListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known analytes with units and reference ranges",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := currentConfig()
		if err != nil {
			return err
		}
		base, err := loadKnowledge(c)
		if err != nil {
			return err
		}
		var filter knowledge.Category
		if kbCategory != "" {
			if filter, err = knowledge.ParseCategory(kbCategory); err != nil {
				return err
			}
		}
		var entries []knowledge.Entry
		for _, e := range base.Entries() {
			if filter == "" || e.Category == filter {
				entries = append(entries, e)
			}
		}
		out := cmd.OutOrStdout()
		if kbJSON {
			b, err := utils.PrettyJSON(entries)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(b))
			return nil
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tCATEGORY\tUNIT\tRANGE")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Name, e.Category, dash(e.Unit), formatRange(e.Range))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if filter == "" {
			for _, a := range base.Ambiguous() {
				fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Warning: key %q is shared by %s\n", a.Key, strings.Join(a.Names, ", "))
			}
		}
		return nil
	},
}

var kbShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one analyte by canonical name or alias",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := currentConfig()
		if err != nil {
			return err
		}
		base, err := loadKnowledge(c)
		if err != nil {
			return err
		}
		name := strings.Join(args, " ")
		e, ok := base.Find(name)
		if !ok {
			return fmt.Errorf("unknown analyte: %s", name)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "name: %s\n", e.Name)
		fmt.Fprintf(out, "category: %s\n", e.Category)
		fmt.Fprintf(out, "unit: %s\n", dash(e.Unit))
		fmt.Fprintf(out, "range: %s\n", formatRange(e.Range))
		fmt.Fprintf(out, "keys: %s\n", strings.Join(e.Keys, ", "))
		return nil
	},
}

var kbExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the effective knowledge base as YAML (usable as knowledge_file)",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := currentConfig()
		if err != nil {
			return err
		}
		base, err := loadKnowledge(c)
		if err != nil {
			return err
		}
		return knowledge.Export(cmd.OutOrStdout(), base)
	},
}

func init() {
	rootCmd.AddCommand(kbCmd)
	kbCmd.AddCommand(kbListCmd, kbShowCmd, kbExportCmd)
	kbListCmd.Flags().StringVarP(&kbCategory, "category", "c", "", "only list one category")
	kbListCmd.Flags().BoolVar(&kbJSON, "json", false, "print entries as JSON")
}

func formatRange(r *knowledge.Range) string {
	switch {
	case r == nil:
		return "-"
	case r.Max >= knowledge.MaxValue:
		return fmt.Sprintf("> %g", r.Min)
	default:
		return fmt.Sprintf("%g - %g", r.Min, r.Max)
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
