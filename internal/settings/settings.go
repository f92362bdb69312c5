// Package settings loads CLI settings from, in increasing priority: defaults,
// a settings file (YAML or TOML), LSCONFIG_* environment variables and flags.
package settings

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"lsconfig/internal/logging"
	"lsconfig/internal/tags"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LSCONFIG_"

// Output formats of the inspect and sample commands.
const (
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// Settings holds the CLI settings.
type Settings struct {
	LogLevel   string `yaml:"log_level" toml:"log_level"`
	LogFormat  string `yaml:"log_format" toml:"log_format"`
	SampleMode string `yaml:"sample_mode" toml:"sample_mode"`
	SecureMode bool   `yaml:"secure_mode" toml:"secure_mode"`
	Output     string `yaml:"output" toml:"output"`
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	return &Settings{
		LogLevel:   "warn",
		LogFormat:  "text",
		SampleMode: string(tags.ModeUpload),
		Output:     OutputYAML,
	}
}

// FileNames are the settings files looked up in the working directory, in
// order.
var FileNames = []string{"lsconfig.yaml", "lsconfig.yml", "lsconfig.toml", ".lsconfig.yaml", ".lsconfig.toml"}

// FindFile returns the first of FileNames present in dir, or "".
func FindFile(dir string) string {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}

	return ""
}

// LoadFile overlays the settings file at path onto s. The format follows the
// extension: .toml is TOML, anything else YAML.
func LoadFile(s *Settings, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read settings file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), s); err != nil {
			return fmt.Errorf("failed to parse TOML settings: %w", err)
		}

		return nil
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("failed to parse YAML settings: %w", err)
	}

	return nil
}

// ApplyEnv overrides s from LSCONFIG_* variables read through getenv.
func ApplyEnv(s *Settings, getenv func(string) string) {
	if v := getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		s.LogLevel = v
	}

	if v := getenv(EnvPrefix + "LOG_FORMAT"); v != "" {
		s.LogFormat = v
	}

	if v := getenv(EnvPrefix + "SAMPLE_MODE"); v != "" {
		s.SampleMode = v
	}

	if v := getenv(EnvPrefix + "SECURE_MODE"); v != "" {
		s.SecureMode = boolFromString(v)
	}

	if v := getenv(EnvPrefix + "OUTPUT"); v != "" {
		s.Output = v
	}
}

func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}

// BindFlags registers the settings flags on fs with the current values of s
// as defaults.
func BindFlags(fs *flag.FlagSet, s *Settings) {
	fs.StringVar(&s.LogLevel, "log-level", s.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&s.LogFormat, "log-format", s.LogFormat, "Log format (text, json, logfmt)")
	fs.StringVar(&s.SampleMode, "mode", s.SampleMode, "Sample mode (upload, editor_preview)")
	fs.BoolVar(&s.SecureMode, "secure", s.SecureMode, "Never emit external sample URLs")
	fs.StringVar(&s.Output, "o", s.Output, "Output format (yaml, json)")
}

// Load resolves the settings for one command invocation and returns them with
// the positional arguments left after flag parsing. The settings file is the
// -config flag value when given, else the one FindFile picks in the working
// directory.
func Load(fs *flag.FlagSet, args []string, getenv func(string) string) (*Settings, []string, error) {
	s := Defaults()

	path := configFlag(args)
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path = FindFile(wd)
		}
	}

	if path != "" {
		if err := LoadFile(s, path); err != nil {
			return nil, nil, fmt.Errorf("loading settings file %s: %w", path, err)
		}
	}

	ApplyEnv(s, getenv)

	// Already consumed by configFlag; registered so parsing accepts it.
	fs.String("config", path, "Settings file (YAML or TOML)")
	BindFlags(fs, s)

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("parsing flags: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, nil, err
	}

	return s, fs.Args(), nil
}

// configFlag finds the -config value ahead of flag parsing.
func configFlag(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}

		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || name != "config" {
			continue
		}

		if hasValue {
			return value
		}

		if i+1 < len(args) {
			return args[i+1]
		}
	}

	return ""
}

// Validate checks every enumerated setting.
func (s *Settings) Validate() error {
	var errs []error

	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		errs = append(errs, err)
	}

	if _, err := logging.ParseFormatter(s.LogFormat); err != nil {
		errs = append(errs, err)
	}

	if _, err := tags.ParseExampleMode(s.SampleMode); err != nil {
		errs = append(errs, err)
	}

	if s.Output != OutputYAML && s.Output != OutputJSON {
		errs = append(errs, fmt.Errorf("invalid output %q (want %s or %s)", s.Output, OutputYAML, OutputJSON))
	}

	return errors.Join(errs...)
}

// LogOptions returns the logger options these settings select.
func (s *Settings) LogOptions() logging.Options {
	opts := logging.DefaultOptions()
	opts.Level = s.LogLevel
	opts.Format = s.LogFormat

	return opts
}

// ExampleMode returns the validated sample mode.
func (s *Settings) ExampleMode() tags.ExampleMode {
	return tags.ExampleMode(s.SampleMode)
}
