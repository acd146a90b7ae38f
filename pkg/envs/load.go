package envs

import (
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/flatcompat/pkg/errors"
	"github.com/arthur-debert/flatcompat/pkg/types"
)

// LoadFile reads an environment table from a TOML file. Each top-level
// table defines one environment:
//
//	[hardware]
//	env = ["es6"]
//	[hardware.globals]
//	device = false
//	[hardware.parserOptions]
//	ecmaVersion = 2020
//
// The optional "env" list names environments the fragment itself enables,
// in order.
func LoadFile(path string) (Table, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load environment table from %s", path)
	}

	table := make(Table)
	for name, raw := range k.Raw() {
		fragment, ok := raw.(map[string]interface{})
		if !ok {
			return nil, errors.Newf(errors.ErrConfigParse,
				"environment %q in %s is not a table", name, path)
		}
		cfg, err := fragmentFromMap(fragment)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"environment %q in %s is malformed", name, path)
		}
		table[name] = cfg
	}
	return table, nil
}

// fragmentFromMap converts a decoded TOML table into a config fragment
func fragmentFromMap(m map[string]interface{}) (*types.Config, error) {
	cfg := &types.Config{}

	if globals, ok := m["globals"]; ok {
		gm, ok := globals.(map[string]interface{})
		if !ok {
			return nil, errors.New(errors.ErrInvalidInput, "globals must be a table")
		}
		cfg.Globals = gm
	}

	if opts, ok := m["parserOptions"]; ok {
		om, ok := opts.(map[string]interface{})
		if !ok {
			return nil, errors.New(errors.ErrInvalidInput, "parserOptions must be a table")
		}
		cfg.ParserOptions = om
	}

	if env, ok := m["env"]; ok {
		names, ok := env.([]interface{})
		if !ok {
			return nil, errors.New(errors.ErrInvalidInput, "env must be a list of environment names")
		}
		for _, raw := range names {
			name, ok := raw.(string)
			if !ok {
				return nil, errors.New(errors.ErrInvalidInput, "env entries must be strings")
			}
			cfg.Env = append(cfg.Env, types.EnvFlag{Name: name, Enabled: true})
		}
	}

	return cfg, nil
}
