package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	compaterrors "github.com/arthur-debert/flatcompat/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// GetDefaultConfigContent returns the content of the embedded defaults file
func GetDefaultConfigContent() string {
	return string(defaultConfig)
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Output holds output-related settings
type Output struct {
	// Format selects the serialization of translated configs: "json" or "yaml"
	Format string `koanf:"format" toml:"format"`
	// Pretty enables indented output for the json format
	Pretty bool `koanf:"pretty" toml:"pretty"`
}

// Logging holds logging-related settings
type Logging struct {
	// Verbosity is the default log verbosity, overridable with -v
	Verbosity int `koanf:"verbosity" toml:"verbosity"`
}

// Config is the tool-level configuration
type Config struct {
	Output  Output  `koanf:"output" toml:"output"`
	Logging Logging `koanf:"logging" toml:"logging"`
}

// Load builds the effective configuration: embedded defaults, then an
// optional flatcompat.toml in workDir, then FLATCOMPAT_* env variables
func Load(workDir string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, compaterrors.Wrap(err, compaterrors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Work-dir config file if present
	for _, filename := range []string{".flatcompat.toml", "flatcompat.toml"} {
		path := filepath.Join(workDir, filename)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, compaterrors.Wrapf(err, compaterrors.ErrConfigParse,
					"failed to load config from %s", path)
			}
			break
		}
	}

	// 3. Environment variable overrides: FLATCOMPAT_OUTPUT_FORMAT=yaml
	err := k.Load(env.Provider("FLATCOMPAT_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "FLATCOMPAT_")), "_", ".")
	}), nil)
	if err != nil {
		return nil, compaterrors.Wrap(err, compaterrors.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, compaterrors.Wrap(err, compaterrors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if cfg.Output.Format != "json" && cfg.Output.Format != "yaml" {
		return nil, compaterrors.Newf(compaterrors.ErrInvalidInput,
			"output format must be json or yaml, got %q", cfg.Output.Format)
	}

	return &cfg, nil
}
