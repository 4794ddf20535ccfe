package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Mode constants
	ModeBatch = "batch"
	ModeMCP   = "mcp"

	// Default values
	DefaultInputDir    = "./input"
	DefaultOutputDir   = "./output"
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB

	// Directory permissions
	DefaultDirPerm = 0o750
)

// Config holds all configuration for the outline extractor.
type Config struct {
	// Run mode: "batch" processes a directory, "mcp" serves tools over stdio
	Mode string

	// Batch directories
	InputDir  string
	OutputDir string

	// Application configuration
	Version     string
	ServerName  string
	LogLevel    string
	MaxFileSize int64 // Maximum PDF file size in bytes
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Mode:        ModeBatch,
		InputDir:    DefaultInputDir,
		OutputDir:   DefaultOutputDir,
		Version:     "1.0.0",
		ServerName:  "pdf-outline",
		LogLevel:    DefaultLogLevel,
		MaxFileSize: DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and returns a configuration.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	// Expand paths if needed
	if expanded, err := filepath.Abs(cfg.InputDir); err == nil {
		cfg.InputDir = expanded
	}
	if expanded, err := filepath.Abs(cfg.OutputDir); err == nil {
		cfg.OutputDir = expanded
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults.
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("PDF_OUTLINE")
	viper.AutomaticEnv()

	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("input", cfg.InputDir)
	viper.SetDefault("output", cfg.OutputDir)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags.
func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode, "Run mode: 'batch' to process a directory, 'mcp' for MCP standard I/O")
	pflag.String("input", cfg.InputDir, "Directory containing input PDF files")
	pflag.String("output", cfg.OutputDir, "Directory for output JSON files (created if absent)")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration.
func bindFlagsToViper() {
	_ = viper.BindPFlag("mode", pflag.Lookup("mode"))
	_ = viper.BindPFlag("input", pflag.Lookup("input"))
	_ = viper.BindPFlag("output", pflag.Lookup("output"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
}

// setupUsageMessage configures the custom usage message.
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\npdf-outline - Infer document outlines from PDF typography\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                  # batch mode, ./input -> ./output\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --input=/docs --output=/json     # batch mode with custom directories\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=mcp --input=/docs         # serve outline tools over stdio\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  PDF_OUTLINE_MODE        Run mode\n")
		fmt.Fprintf(os.Stderr, "  PDF_OUTLINE_INPUT       Input directory\n")
		fmt.Fprintf(os.Stderr, "  PDF_OUTLINE_OUTPUT      Output directory\n")
		fmt.Fprintf(os.Stderr, "  PDF_OUTLINE_LOGLEVEL    Log level\n")
		fmt.Fprintf(os.Stderr, "  PDF_OUTLINE_MAXFILESIZE Maximum file size\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper.
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.InputDir = viper.GetString("input")
	cfg.OutputDir = viper.GetString("output")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Mode != ModeBatch && c.Mode != ModeMCP {
		return errors.New("mode must be either 'batch' or 'mcp'")
	}

	if c.InputDir == "" {
		return errors.New("input directory cannot be empty")
	}

	if c.OutputDir == "" {
		return errors.New("output directory cannot be empty")
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled.
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, InputDir: %s, OutputDir: %s, LogLevel: %s, MaxFileSize: %d}",
		c.Mode, c.InputDir, c.OutputDir, c.LogLevel, c.MaxFileSize)
}

// IsBatchMode returns true if the tool is running as a batch processor.
func (c *Config) IsBatchMode() bool {
	return c.Mode == ModeBatch
}

// IsMCPMode returns true if the tool is serving MCP over stdio.
func (c *Config) IsMCPMode() bool {
	return c.Mode == ModeMCP
}
