package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/KaramelBytes/labloom-cli/internal/extract"
	"github.com/KaramelBytes/labloom-cli/internal/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	pbQuiet bool
	pbSave  bool
)

var errNoInputs = errors.New("no input files matched")

// batchLine is one result row of parse-batch.
type batchLine struct {
	File       string  `json:"file"`
	Parameters int     `json:"parameters"`
	Normal     float64 `json:"normal_percentage"`
	Altered    float64 `json:"altered_percentage"`
	Confidence float64 `json:"confidence_avg"`
	RunID      string  `json:"run_id,omitempty"`
	Error      string  `json:"error,omitempty"`
}

var parseBatchCmd = &cobra.Command{
	Use:   "parse-batch <files...>",
	Short: "Extract parameters from multiple reports with progress and optional history",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files := expandInputs(args)
		if len(files) == 0 {
			return errNoInputs
		}
		c, err := currentConfig()
		if err != nil {
			return err
		}
		threshold, err := resolveThreshold(c)
		if err != nil {
			return err
		}
		engine, err := buildEngine(c)
		if err != nil {
			return err
		}
		save := pbSave || c.SaveReports

		out := cmd.OutOrStdout()
		lines := make([]batchLine, 0, len(files))
		failed := 0
		total := len(files)
		for i, path := range files {
			if !pbQuiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "[%d/%d] Processing %s...\n", i+1, total, filepath.Base(path))
			}
			line, err := parseOne(cmd, engine, path, threshold, save)
			if err != nil {
				failed++
				line.Error = err.Error()
				fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Warning: %s: %v\n", filepath.Base(path), err)
			}
			lines = append(lines, line)
		}
		b, err := utils.PrettyJSON(lines)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(b))
		if failed == total {
			return fmt.Errorf("all %d input files failed", total)
		}
		return nil
	},
}

func parseOne(cmd *cobra.Command, engine *extract.Engine, path string, threshold float64, save bool) (batchLine, error) {
	line := batchLine{File: path}
	text, err := readReport(cmd, path)
	if err != nil {
		return line, err
	}
	res, err := engine.Parse(text, threshold)
	if err != nil {
		logger.Error("parse failed", zap.String("file", path), zap.Error(err))
		return line, err
	}
	line.Parameters = res.TotalParameters
	line.Normal = res.Statistics.NormalPercentage
	line.Altered = res.Statistics.AlteredPercentage
	line.Confidence = res.ConfidenceAvg
	if save {
		c, err := currentConfig()
		if err != nil {
			return line, err
		}
		store, err := historyStore(c)
		if err != nil {
			return line, err
		}
		run, err := store.Save(path, threshold, res)
		if err != nil {
			return line, fmt.Errorf("save run: %w", err)
		}
		line.RunID = run.ID
	}
	return line, nil
}

// expandInputs resolves globs, keeps literal paths that exist, and drops
// duplicates.
func expandInputs(args []string) []string {
	var files []string
	seen := map[string]struct{}{}
	for _, arg := range args {
		matches, _ := filepath.Glob(arg)
		if len(matches) == 0 && fileExists(arg) {
			matches = []string{arg}
		}
		for _, m := range matches {
			if !fileExists(m) {
				continue
			}
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files
}

func init() {
	rootCmd.AddCommand(parseBatchCmd)
	parseBatchCmd.Flags().BoolVar(&pbQuiet, "quiet", false, "suppress progress output")
	parseBatchCmd.Flags().BoolVar(&pbSave, "save", false, "store every run in history (reports_dir)")
}

func fileExists(p string) bool {
	st, err := os.Stat(p)
	return err == nil && !st.IsDir()
}
