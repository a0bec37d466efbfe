package cmd

import (
	"bytes"
	"fmt"

	cfgpkg "github.com/KaramelBytes/labloom-cli/internal/config"
	"github.com/KaramelBytes/labloom-cli/internal/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	parseFormat string
	parseOutput string
	parseSave   bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file|->",
	Short: "Extract parameters from one report (txt, md, docx, csv, xlsx or stdin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := currentConfig()
		if err != nil {
			return err
		}
		threshold, err := resolveThreshold(c)
		if err != nil {
			return err
		}
		format := c.OutputFormat
		if cmd.Flags().Changed("format") {
			format = parseFormat
		}
		engine, err := buildEngine(c)
		if err != nil {
			return err
		}
		text, err := readReport(cmd, args[0])
		if err != nil {
			return err
		}

		resp := engine.Respond(text, threshold)
		if resp.Err != nil {
			if format != cfgpkg.FormatMarkdown {
				b, _ := utils.PrettyJSON(resp)
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
			}
			return resp.Err
		}
		res := resp.Result
		if res.TotalParameters == 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Warning: no parameters found in %s\n", displayName(args[0]))
		}

		var buf bytes.Buffer
		if err := writeResult(&buf, res, format, displayName(args[0])); err != nil {
			return err
		}
		if parseOutput != "" {
			if err := utils.SafeWriteFile(parseOutput, buf.Bytes()); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "✓ Wrote %d parameters to %s\n", res.TotalParameters, parseOutput)
		} else if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
			return err
		}

		if parseSave || c.SaveReports {
			store, err := historyStore(c)
			if err != nil {
				return err
			}
			run, err := store.Save(args[0], threshold, res)
			if err != nil {
				return fmt.Errorf("save run: %w", err)
			}
			logger.Debug("run saved", zap.String("id", run.ID), zap.String("dir", store.Dir()))
			fmt.Fprintf(cmd.ErrOrStderr(), "✓ Saved run %s\n", run.ID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "json", "output format: json | markdown")
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "write the result to a file instead of stdout")
	parseCmd.Flags().BoolVar(&parseSave, "save", false, "store the run in history (reports_dir)")
}
