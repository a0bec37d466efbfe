package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by output_format.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Global configuration structure.
type Global struct {
	ConfidenceThreshold float64 `mapstructure:"confidence_threshold" yaml:"confidence_threshold"`
	ForwardWindow       int     `mapstructure:"forward_window" yaml:"forward_window"`
	MarkerWindow        int     `mapstructure:"marker_window" yaml:"marker_window"`
	// Optional YAML file with entries that extend or replace the built-in table.
	KnowledgeFile string `mapstructure:"knowledge_file" yaml:"knowledge_file,omitempty"`
	OutputFormat  string `mapstructure:"output_format" yaml:"output_format"`
	ReportsDir    string `mapstructure:"reports_dir" yaml:"reports_dir"`
	SaveReports   bool   `mapstructure:"save_reports" yaml:"save_reports"`
	LogLevel      string `mapstructure:"log_level" yaml:"log_level"`
}

// Keys lists the settable configuration keys in display order.
var Keys = []string{
	"confidence_threshold", "forward_window", "marker_window", "knowledge_file",
	"output_format", "reports_dir", "save_reports", "log_level",
}

// DotEnvFile is read for LABLOOM_* variables when present. Variables already
// set in the process environment take precedence over it.
var DotEnvFile = ".env"

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".labloom"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.labloom/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("LABLOOM")
	v.AutomaticEnv()

	v.SetDefault("confidence_threshold", 0.3)
	v.SetDefault("forward_window", 3)
	v.SetDefault("marker_window", 4)
	v.SetDefault("knowledge_file", "")
	v.SetDefault("output_format", FormatJSON)
	v.SetDefault("reports_dir", "")
	v.SetDefault("save_reports", false)
	v.SetDefault("log_level", "info")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()
	applyDotEnv(v)

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.ReportsDir == "" {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		c.ReportsDir = filepath.Join(dir, "reports")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func applyDotEnv(v *viper.Viper) {
	vals, err := godotenv.Read(DotEnvFile)
	if err != nil {
		return
	}
	for k, val := range vals {
		key, ok := strings.CutPrefix(k, "LABLOOM_")
		if !ok || os.Getenv(k) != "" {
			continue
		}
		v.Set(strings.ToLower(key), val)
	}
}

// Validate checks value ranges.
func (c *Global) Validate() error {
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidence_threshold must be within [0,1], got %v", c.ConfidenceThreshold)
	}
	if c.ForwardWindow < 0 || c.MarkerWindow < 0 {
		return fmt.Errorf("search windows must not be negative (forward=%d, marker=%d)", c.ForwardWindow, c.MarkerWindow)
	}
	switch c.OutputFormat {
	case FormatJSON, FormatMarkdown:
	default:
		return fmt.Errorf("invalid output_format: %s (use json or markdown)", c.OutputFormat)
	}
	return nil
}

// Set assigns a key from its string form and validates the result.
func (c *Global) Set(key, val string) error {
	switch key {
	case "confidence_threshold":
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("invalid float for confidence_threshold: %w", err)
		}
		c.ConfidenceThreshold = f
	case "forward_window", "marker_window":
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid int for %s: %w", key, err)
		}
		if key == "forward_window" {
			c.ForwardWindow = i
		} else {
			c.MarkerWindow = i
		}
	case "knowledge_file":
		c.KnowledgeFile = val
	case "output_format":
		switch strings.ToLower(val) {
		case "json":
			c.OutputFormat = FormatJSON
		case "markdown", "md":
			c.OutputFormat = FormatMarkdown
		default:
			return fmt.Errorf("invalid output_format: %s (use json or markdown)", val)
		}
	case "reports_dir":
		c.ReportsDir = val
	case "save_reports":
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid bool for save_reports: %w", err)
		}
		c.SaveReports = b
	case "log_level":
		c.LogLevel = strings.ToLower(val)
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	return c.Validate()
}

// Get returns the string form of a key.
func (c *Global) Get(key string) (string, error) {
	switch key {
	case "confidence_threshold":
		return strconv.FormatFloat(c.ConfidenceThreshold, 'f', -1, 64), nil
	case "forward_window":
		return strconv.Itoa(c.ForwardWindow), nil
	case "marker_window":
		return strconv.Itoa(c.MarkerWindow), nil
	case "knowledge_file":
		return c.KnowledgeFile, nil
	case "output_format":
		return c.OutputFormat, nil
	case "reports_dir":
		return c.ReportsDir, nil
	case "save_reports":
		return strconv.FormatBool(c.SaveReports), nil
	case "log_level":
		return c.LogLevel, nil
	}
	return "", fmt.Errorf("unknown key: %s", key)
}
