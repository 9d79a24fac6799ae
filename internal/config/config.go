// Package config loads okbase16 settings from a TOML file, an optional .env
// file and OKBASE16_* environment variables, in increasing order of priority.
// Command-line flags override all of them and are applied by the cli package.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/okbase16/internal/filter"
	"github.com/jmylchreest/okbase16/internal/harmony"
	"github.com/jmylchreest/okbase16/internal/state"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "OKBASE16_"

// Environment variable names.
const (
	EnvConfig        = EnvPrefix + "CONFIG"
	EnvState         = EnvPrefix + "STATE"
	EnvName          = EnvPrefix + "NAME"
	EnvAuthor        = EnvPrefix + "AUTHOR"
	EnvMode          = EnvPrefix + "MODE"
	EnvHueShift      = EnvPrefix + "HUE_SHIFT"
	EnvSaturation    = EnvPrefix + "SATURATION"
	EnvLightness     = EnvPrefix + "LIGHTNESS"
	EnvExportDir     = EnvPrefix + "EXPORT_DIR"
	EnvOutputs       = EnvPrefix + "OUTPUTS"
	EnvCompress      = EnvPrefix + "COMPRESS"
	EnvPreviewLang   = EnvPrefix + "PREVIEW_LANG"
	EnvPreviewFormat = EnvPrefix + "PREVIEW_FORMATTER"
	EnvTemplateDir   = EnvPrefix + "TEMPLATE_DIR"
)

const (
	defaultOutput      = "base16"
	defaultLanguage    = "go"
	defaultFormatter   = "terminal16m"
	defaultExportDir   = "."
	configDirName      = "okbase16"
	configFileName     = "config.toml"
	templatesDirectory = "templates"
)

// Config is the resolved configuration.
type Config struct {
	// State is a share hash to start from instead of the default palette.
	State    string         `toml:"state,omitempty"`
	Mode     harmony.Mode   `toml:"mode"`
	Metadata state.Metadata `toml:"metadata"`
	Filters  filter.Filters `toml:"filters"`
	Export   Export         `toml:"export"`
	Preview  Preview        `toml:"preview"`
}

// Export configures the export command.
type Export struct {
	Dir      string   `toml:"dir"`
	Outputs  []string `toml:"outputs"`
	Compress bool     `toml:"compress"`
	// TemplateDir overrides the directory searched for custom templates.
	TemplateDir string `toml:"template_dir,omitempty"`
}

// Preview configures the preview command.
type Preview struct {
	Language  string `toml:"language"`
	Formatter string `toml:"formatter"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Mode:     harmony.ModeManual,
		Metadata: state.DefaultMetadata(),
		Filters:  filter.Default(),
		Export: Export{
			Dir:     defaultExportDir,
			Outputs: []string{defaultOutput},
		},
		Preview: Preview{
			Language:  defaultLanguage,
			Formatter: defaultFormatter,
		},
	}
}

// Dir returns the okbase16 configuration directory, honouring
// XDG_CONFIG_HOME.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, configDirName), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", fmt.Errorf("failed to determine config directory: %w", err)
		}
		return filepath.Join(home, ".config", configDirName), nil
	}
	return filepath.Join(dir, configDirName), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// TemplateBase returns the directory holding custom templates, one
// subdirectory per plugin.
func (c Config) TemplateBase() (string, error) {
	if c.Export.TemplateDir != "" {
		return c.Export.TemplateDir, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, templatesDirectory), nil
}

// Loader resolves configuration from its sources.
type Loader struct {
	// Path is the TOML file. Empty means OKBASE16_CONFIG, then DefaultPath.
	Path string
	// DotEnv is the .env file to load. Empty means ".env" in the working
	// directory.
	DotEnv string
	// Lookup reads environment variables. Defaults to os.LookupEnv.
	Lookup func(string) (string, bool)
	Logger hclog.Logger
}

// Load reads the .env file, the TOML file and the environment overrides.
// Missing files are skipped; malformed files are errors.
func (l Loader) Load() (Config, error) {
	logger := l.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	lookup := l.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	dotenv := l.DotEnv
	if dotenv == "" {
		dotenv = ".env"
	}
	if err := godotenv.Load(dotenv); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", dotenv, err)
		}
	} else {
		logger.Debug("loaded environment file", "path", dotenv)
	}

	path, err := l.ResolvePath()
	if err != nil {
		return Config{}, err
	}

	cfg, err := ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("no config file", "path", path)
		cfg = Default()
	case err != nil:
		return Config{}, err
	default:
		logger.Debug("loaded config file", "path", path)
	}

	if err := cfg.ApplyEnv(lookup); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ResolvePath returns the TOML file Load reads.
func (l Loader) ResolvePath() (string, error) {
	if l.Path != "" {
		return l.Path, nil
	}
	lookup := l.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if p, ok := lookup(EnvConfig); ok && p != "" {
		return p, nil
	}
	return DefaultPath()
}

// ReadFile decodes the TOML file at path over the defaults. Unknown keys are
// rejected. A missing file returns an error wrapping fs.ErrNotExist.
func ReadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(data)
}

// Parse decodes TOML data over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Config{}, fmt.Errorf("failed to parse config at line %d column %d: %w", row, col, err)
		}
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Marshal renders c as TOML.
func (c Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// ApplyEnv overrides fields from OKBASE16_* variables.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *float64) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = f
		return nil
	}

	str(EnvState, &c.State)
	str(EnvName, &c.Metadata.Name)
	str(EnvAuthor, &c.Metadata.Author)
	str(EnvExportDir, &c.Export.Dir)
	str(EnvTemplateDir, &c.Export.TemplateDir)
	str(EnvPreviewLang, &c.Preview.Language)
	str(EnvPreviewFormat, &c.Preview.Formatter)

	if v, ok := lookup(EnvMode); ok && v != "" {
		c.Mode = harmony.Mode(strings.ToLower(strings.TrimSpace(v)))
	}
	if err := num(EnvHueShift, &c.Filters.HueShift); err != nil {
		return err
	}
	if err := num(EnvSaturation, &c.Filters.SaturationScale); err != nil {
		return err
	}
	if err := num(EnvLightness, &c.Filters.LightnessCurve); err != nil {
		return err
	}
	if v, ok := lookup(EnvOutputs); ok && v != "" {
		c.Export.Outputs = SplitList(v)
	}
	if v, ok := lookup(EnvCompress); ok && v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvCompress, err)
		}
		c.Export.Compress = b
	}
	return nil
}

// Validate checks the mode and clamps the filters.
func (c *Config) Validate() error {
	if c.Mode == "" {
		c.Mode = harmony.ModeManual
	}
	mode, err := harmony.ParseMode(string(c.Mode))
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	c.Mode = mode
	c.Filters = c.Filters.Clamp()
	if c.Metadata.Name == "" {
		c.Metadata.Name = state.DefaultName
	}
	if c.Metadata.Author == "" {
		c.Metadata.Author = state.DefaultAuthor
	}
	return nil
}

// SplitList splits a comma separated list, dropping empty items.
func SplitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
