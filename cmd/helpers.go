package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	cfgpkg "github.com/KaramelBytes/labloom-cli/internal/config"
	"github.com/KaramelBytes/labloom-cli/internal/extract"
	"github.com/KaramelBytes/labloom-cli/internal/history"
	"github.com/KaramelBytes/labloom-cli/internal/knowledge"
	"github.com/KaramelBytes/labloom-cli/internal/parser"
	"github.com/KaramelBytes/labloom-cli/internal/render"
	"github.com/KaramelBytes/labloom-cli/internal/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// currentConfig returns the loaded configuration, loading it when the
// initializer failed or did not run.
func currentConfig() (*cfgpkg.Global, error) {
	if cfg != nil {
		return cfg, nil
	}
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	cfg = c
	return cfg, nil
}

// resolveThreshold applies --threshold over the configured value.
func resolveThreshold(c *cfgpkg.Global) (float64, error) {
	if rootCmd.PersistentFlags().Changed("threshold") {
		if flagThreshold < 0 || flagThreshold > 1 {
			return 0, fmt.Errorf("--threshold must be within [0,1], got %v", flagThreshold)
		}
		return flagThreshold, nil
	}
	return c.ConfidenceThreshold, nil
}

// loadKnowledge returns the built-in table merged with knowledge_file entries.
func loadKnowledge(c *cfgpkg.Global) (*knowledge.Base, error) {
	base := knowledge.Default()
	if c.KnowledgeFile == "" {
		return base, nil
	}
	path, err := utils.ExpandHome(c.KnowledgeFile)
	if err != nil {
		return nil, err
	}
	entries, err := knowledge.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("knowledge file: %w", err)
	}
	merged, err := base.With(entries...)
	if err != nil {
		return nil, fmt.Errorf("knowledge file %s: %w", path, err)
	}
	logger.Debug("knowledge file merged", zap.String("path", path), zap.Int("entries", len(entries)), zap.Int("total", merged.Len()))
	return merged, nil
}

func buildEngine(c *cfgpkg.Global) (*extract.Engine, error) {
	base, err := loadKnowledge(c)
	if err != nil {
		return nil, err
	}
	opt := extract.Options{ForwardWindow: c.ForwardWindow, MarkerWindow: c.MarkerWindow}
	return extract.New(base, extract.WithLogger(logger), extract.WithOptions(opt)), nil
}

func historyStore(c *cfgpkg.Global) (*history.Store, error) {
	dir, err := utils.ExpandHome(c.ReportsDir)
	if err != nil {
		return nil, err
	}
	return history.NewStore(dir), nil
}

// readReport reads a report file, or stdin when path is "-".
func readReport(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		return parser.ParseReader(cmd.InOrStdin())
	}
	text, err := parser.ParseFile(path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

// writeResult renders res in the requested format.
func writeResult(w io.Writer, res *extract.Result, format, name string) error {
	switch format {
	case cfgpkg.FormatMarkdown, "md":
		_, err := io.WriteString(w, render.Markdown(res, name))
		return err
	case cfgpkg.FormatJSON, "":
		b, err := utils.PrettyJSON(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	default:
		return fmt.Errorf("invalid --format: %s (use json or markdown)", format)
	}
}

func displayName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return filepath.Base(path)
}
