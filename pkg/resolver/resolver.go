package resolver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/flatcompat/pkg/errors"
	"github.com/arthur-debert/flatcompat/pkg/logging"
	"github.com/arthur-debert/flatcompat/pkg/registry"
	"github.com/arthur-debert/flatcompat/pkg/types"
)

// Kind classifies a resolved cascade entry
type Kind string

// Entry kinds. Only ordinary config entries are translated; other kinds
// pass through the facade untouched.
const (
	KindConfig Kind = "config"
)

// Entry is one element of the resolved cascade, in precedence order:
// extends targets first, the config itself, then its overrides.
type Entry struct {
	Kind   Kind
	Name   string
	Config *types.Config
}

// Options configures a Resolver. Nil registries default to empty ones.
type Options struct {
	// BaseDirectory anchors relative config references
	BaseDirectory string

	// ResolvePluginsRelativeTo anchors plugin lookup; defaults to
	// BaseDirectory
	ResolvePluginsRelativeTo string

	// Plugins maps plugin names to their loaded definitions
	Plugins registry.Registry[*types.PluginDefinition]

	// Configs maps shareable config names to their authored configs
	Configs registry.Registry[*UserConfig]

	// Parsers maps parser names to their loaded parser references
	Parsers registry.Registry[*types.Parser]
}

// Resolver expands user-authored configs into translator-ready nodes
type Resolver struct {
	opts   Options
	logger zerolog.Logger
}

// New creates a Resolver with the given options
func New(opts Options) *Resolver {
	if opts.ResolvePluginsRelativeTo == "" {
		opts.ResolvePluginsRelativeTo = opts.BaseDirectory
	}
	if opts.Plugins == nil {
		opts.Plugins = registry.New[*types.PluginDefinition]()
	}
	if opts.Configs == nil {
		opts.Configs = registry.New[*UserConfig]()
	}
	if opts.Parsers == nil {
		opts.Parsers = registry.New[*types.Parser]()
	}
	return &Resolver{
		opts:   opts,
		logger: logging.GetLogger("resolver"),
	}
}

// Resolve expands cfg into its ordered cascade of config nodes
func (r *Resolver) Resolve(cfg *UserConfig) ([]Entry, error) {
	return r.resolve(cfg, "user config", nil, nil)
}

// resolve walks one config: extends first, then the config itself, then
// overrides. criteria, when non-nil, scopes every produced node; visiting
// carries the extends names currently being expanded for cycle detection.
func (r *Resolver) resolve(cfg *UserConfig, name string, criteria *types.Criteria, visiting []string) ([]Entry, error) {
	if cfg == nil {
		return nil, nil
	}

	var out []Entry

	for _, extend := range cfg.Extends {
		entries, err := r.resolveExtends(extend, criteria, visiting)
		if err != nil {
			return nil, err
		}
		out = append(out, entries...)
	}

	node, err := r.normalize(cfg, criteria)
	if err != nil {
		return nil, err
	}
	out = append(out, Entry{Kind: KindConfig, Name: name, Config: node})

	for i := range cfg.Overrides {
		override := &cfg.Overrides[i]
		overrideCriteria := extendCriteria(criteria, types.CriteriaPattern{
			Includes: override.Files,
			Excludes: override.ExcludedFiles,
		})
		overrideName := fmt.Sprintf("%s#overrides[%d]", name, i)
		entries, err := r.resolve(&override.UserConfig, overrideName, overrideCriteria, visiting)
		if err != nil {
			return nil, err
		}
		out = append(out, entries...)
	}

	return out, nil
}

// resolveExtends expands one extends target into cascade entries
func (r *Resolver) resolveExtends(name string, criteria *types.Criteria, visiting []string) ([]Entry, error) {
	for _, seen := range visiting {
		if seen == name {
			chain := strings.Join(append(visiting, name), " -> ")
			return nil, errors.Newf(errors.ErrExtendCycle,
				"extends cycle detected: %s", chain).
				WithDetail("name", name)
		}
	}

	r.logger.Debug().Str("name", name).Msg("Resolving extends")

	// sentinel configs pass through as marker nodes for the downstream
	// consumer to expand
	if name == string(types.SentinelAll) || name == string(types.SentinelRecommended) {
		return []Entry{{
			Kind: KindConfig,
			Name: name,
			Config: &types.Config{
				Settings: map[string]interface{}{name: true},
				Criteria: criteria,
			},
		}}, nil
	}

	if rest, ok := strings.CutPrefix(name, "plugin:"); ok {
		pluginName, configName, ok := strings.Cut(rest, "/")
		if !ok {
			return nil, errors.Newf(errors.ErrInvalidInput,
				"plugin config reference %q must have the form plugin:name/config", name)
		}
		plugin, err := r.opts.Plugins.Get(pluginName)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrPluginNotFound,
				"failed to load plugin '%s' referenced by %q relative to %s",
				pluginName, name, r.opts.ResolvePluginsRelativeTo)
		}
		for _, candidate := range plugin.Configs {
			if candidate.Name != configName {
				continue
			}
			target, ok := candidate.Value.(*UserConfig)
			if !ok {
				return nil, errors.Newf(errors.ErrInvalidInput,
					"plugin '%s' exports config '%s' with an unsupported shape",
					pluginName, configName)
			}
			return r.resolve(target, name, criteria, append(visiting, name))
		}
		return nil, errors.Newf(errors.ErrExtendNotFound,
			"plugin '%s' does not export a config named '%s'", pluginName, configName)
	}

	shared, err := r.opts.Configs.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrExtendNotFound,
			"failed to resolve extends %q relative to %s", name, r.opts.BaseDirectory)
	}
	return r.resolve(shared, name, criteria, append(visiting, name))
}

// normalize converts the own fields of a user config into a resolved node
func (r *Resolver) normalize(cfg *UserConfig, criteria *types.Criteria) (*types.Config, error) {
	node := &types.Config{
		Settings:                      cfg.Settings,
		Rules:                         cfg.Rules,
		Processor:                     cfg.Processor,
		Globals:                       cfg.Globals,
		ParserOptions:                 cfg.ParserOptions,
		NoInlineConfig:                cfg.NoInlineConfig,
		ReportUnusedDisableDirectives: cfg.ReportUnusedDisableDirectives,
		Criteria:                      criteria,
	}

	if len(cfg.IgnorePatterns) > 0 {
		node.IgnorePattern = &types.IgnorePattern{Patterns: cfg.IgnorePatterns}
	}

	if cfg.Parser != "" {
		parser, err := r.opts.Parsers.Get(cfg.Parser)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrParserNotFound,
				"failed to load parser '%s' relative to %s", cfg.Parser, r.opts.BaseDirectory)
		}
		node.Parser = parser
	}

	for _, pluginName := range cfg.Plugins {
		definition, err := r.opts.Plugins.Get(pluginName)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrPluginNotFound,
				"failed to load plugin '%s' relative to %s",
				pluginName, r.opts.ResolvePluginsRelativeTo)
		}
		node.Plugins = append(node.Plugins, types.PluginSlot{
			Name:       pluginName,
			Definition: definition,
		})
	}

	// decoded env maps carry no authored order; sort for determinism
	if len(cfg.Env) > 0 {
		names := make([]string, 0, len(cfg.Env))
		for envName := range cfg.Env {
			names = append(names, envName)
		}
		sort.Strings(names)
		for _, envName := range names {
			node.Env = append(node.Env, types.EnvFlag{
				Name:    envName,
				Enabled: cfg.Env[envName],
			})
		}
	}

	return node, nil
}

// extendCriteria returns a new criteria carrying the parent patterns plus
// one more pair; the parent is never mutated
func extendCriteria(parent *types.Criteria, pattern types.CriteriaPattern) *types.Criteria {
	var patterns []types.CriteriaPattern
	if parent != nil {
		patterns = append(patterns, parent.Patterns...)
	}
	patterns = append(patterns, pattern)
	return &types.Criteria{Patterns: patterns}
}
