package resolver

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/flatcompat/pkg/errors"
)

// LoadFile reads a legacy config file into a UserConfig. Both YAML and
// JSON sources are accepted; JSON is parsed as the YAML subset it is.
func LoadFile(path string) (*UserConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad,
			"failed to read config from %s", path)
	}
	return Parse(data, path)
}

// Parse decodes legacy config bytes into a UserConfig. The source name
// is only used in error messages.
func Parse(data []byte, source string) (*UserConfig, error) {
	var cfg UserConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse,
			"failed to parse config from %s", source)
	}
	return &cfg, nil
}
