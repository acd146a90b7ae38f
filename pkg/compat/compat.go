package compat

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/flatcompat/pkg/envs"
	"github.com/arthur-debert/flatcompat/pkg/logging"
	"github.com/arthur-debert/flatcompat/pkg/registry"
	"github.com/arthur-debert/flatcompat/pkg/resolver"
	"github.com/arthur-debert/flatcompat/pkg/translate"
	"github.com/arthur-debert/flatcompat/pkg/types"
)

// Options configures a Compat instance. The zero value resolves against
// empty registries and the builtin environment table.
type Options struct {
	// BaseDirectory anchors relative config references
	BaseDirectory string

	// ResolvePluginsRelativeTo anchors plugin lookup; defaults to
	// BaseDirectory
	ResolvePluginsRelativeTo string

	// Environments is the environment table env flags expand against;
	// defaults to the builtin table
	Environments envs.Table

	// Plugins, Configs and Parsers back the resolver's module lookup
	Plugins registry.Registry[*types.PluginDefinition]
	Configs registry.Registry[*resolver.UserConfig]
	Parsers registry.Registry[*types.Parser]
}

// Compat translates user-authored legacy configs into flat config
// sequences
type Compat struct {
	resolver   *resolver.Resolver
	translator *translate.Translator
	logger     zerolog.Logger
}

// New creates a Compat instance with the given options
func New(opts Options) *Compat {
	table := opts.Environments
	if table == nil {
		table = envs.Builtin()
	}
	return &Compat{
		resolver: resolver.New(resolver.Options{
			BaseDirectory:            opts.BaseDirectory,
			ResolvePluginsRelativeTo: opts.ResolvePluginsRelativeTo,
			Plugins:                  opts.Plugins,
			Configs:                  opts.Configs,
			Parsers:                  opts.Parsers,
		}),
		translator: translate.New(table),
		logger:     logging.GetLogger("compat"),
	}
}

// Config resolves a user config and translates every ordinary config
// node of the resulting cascade, concatenating the sequences in cascade
// order. Entries of other kinds are passed over untranslated.
func (c *Compat) Config(cfg *resolver.UserConfig) ([]types.Element, error) {
	entries, err := c.resolver.Resolve(cfg)
	if err != nil {
		return nil, err
	}

	nodes := make([]*types.Config, 0, len(entries))
	for _, entry := range entries {
		if entry.Kind != resolver.KindConfig {
			c.logger.Debug().Str("name", entry.Name).
				Str("kind", string(entry.Kind)).Msg("Skipping non-config entry")
			continue
		}
		nodes = append(nodes, entry.Config)
	}

	return c.translator.TranslateAll(nodes)
}

// Env translates a bare env map
func (c *Compat) Env(env map[string]bool) ([]types.Element, error) {
	return c.Config(&resolver.UserConfig{Env: env})
}

// Extends translates an extends list
func (c *Compat) Extends(names ...string) ([]types.Element, error) {
	return c.Config(&resolver.UserConfig{Extends: names})
}

// Plugins translates a plugin list
func (c *Compat) Plugins(names ...string) ([]types.Element, error) {
	return c.Config(&resolver.UserConfig{Plugins: names})
}
