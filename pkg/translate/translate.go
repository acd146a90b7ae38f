package translate

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/flatcompat/pkg/envs"
	"github.com/arthur-debert/flatcompat/pkg/errors"
	"github.com/arthur-debert/flatcompat/pkg/logging"
	"github.com/arthur-debert/flatcompat/pkg/types"
)

// Translator converts resolved legacy config nodes into flat config
// sequences. It never mutates its inputs; every call returns freshly
// allocated entries. A Translator is safe for concurrent use.
type Translator struct {
	envs   envs.Table
	logger zerolog.Logger
}

// New creates a Translator expanding env flags against the given table
func New(table envs.Table) *Translator {
	return NewWithLogger(table, logging.GetLogger("translate"))
}

// NewWithLogger creates a Translator with an explicit log sink
func NewWithLogger(table envs.Table, logger zerolog.Logger) *Translator {
	return &Translator{
		envs:   table,
		logger: logger,
	}
}

// Translate converts one node into an ordered flat config sequence.
// Plugin-declared environments are only visible to the node that
// registered the plugin; use TranslateAll for a cascade of nodes that
// share plugin registrations.
func (t *Translator) Translate(cfg *types.Config) ([]types.Element, error) {
	return t.translate(cfg, make(map[string]*types.Config), nil)
}

// TranslateAll converts a resolver-ordered cascade of nodes,
// concatenating their sequences. Plugin-declared environments registered
// by one node stay visible to the nodes after it.
func (t *Translator) TranslateAll(cfgs []*types.Config) ([]types.Element, error) {
	pluginEnvs := make(map[string]*types.Config)
	var out []types.Element
	for _, cfg := range cfgs {
		items, err := t.translate(cfg, pluginEnvs, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

// translate is the recursive worker. pluginEnvs accumulates the
// "plugin/env" fragments registered by plugin translation; path is the
// chain of environment names currently being expanded, used to detect
// reference cycles.
func (t *Translator) translate(cfg *types.Config, pluginEnvs map[string]*types.Config, path []string) ([]types.Element, error) {
	if cfg == nil {
		return nil, nil
	}

	// sentinel settings short-circuit everything else on the node
	if cfg.Settings != nil {
		if cfg.Settings[string(types.SentinelAll)] == true {
			return []types.Element{types.SentinelAll}, nil
		}
		if cfg.Settings[string(types.SentinelRecommended)] == true {
			return []types.Element{types.SentinelRecommended}, nil
		}
	}

	own := &types.Entry{}

	// verbatim copies
	if cfg.Settings != nil {
		own.Settings = cfg.Settings
	}
	if cfg.Rules != nil {
		own.Rules = cfg.Rules
	}
	if cfg.Processor != "" {
		own.Processor = cfg.Processor
	}

	// language options; globals and parserOptions are shallow-copied so
	// hoisting below cannot touch the input node
	if cfg.Globals != nil {
		languageOptions(own).Globals = copyMap(cfg.Globals)
	}
	if cfg.Parser != nil {
		languageOptions(own).Parser = cfg.Parser.Definition
	}
	if cfg.ParserOptions != nil {
		languageOptions(own).ParserOptions = copyMap(cfg.ParserOptions)
	}

	// hoist ecmaVersion and sourceType one level up
	if own.LanguageOptions != nil && own.LanguageOptions.ParserOptions != nil {
		opts := own.LanguageOptions.ParserOptions
		if v, ok := opts["ecmaVersion"]; ok {
			own.LanguageOptions.EcmaVersion = v
			delete(opts, "ecmaVersion")
		}
		if v, ok := opts["sourceType"]; ok {
			own.LanguageOptions.SourceType = v
			delete(opts, "sourceType")
		}
		if len(opts) == 0 {
			own.LanguageOptions.ParserOptions = nil
		}
	}

	// linter options
	if cfg.NoInlineConfig != nil {
		linterOptions(own).NoInlineConfig = copyBool(cfg.NoInlineConfig)
	}
	if cfg.ReportUnusedDisableDirectives != nil {
		linterOptions(own).ReportUnusedDisableDirectives = copyBool(cfg.ReportUnusedDisableDirectives)
	}

	var low, high []types.Element

	// prependLow inserts items ahead of everything previously in the low
	// band; repeated calls stack newest-first
	prependLow := func(items ...types.Element) {
		low = append(items, low...)
	}

	if cfg.IgnorePattern != nil {
		prependLow(&types.Entry{Ignores: cfg.IgnorePattern.Patterns})
	}

	// override criteria; every pair overwrites the last, matching the
	// legacy cascade where the final override pattern wins
	if cfg.Criteria != nil {
		for _, pattern := range cfg.Criteria.Patterns {
			if pattern.Includes != nil {
				own.Files = stringsToAny(pattern.Includes)
				if pattern.Excludes != nil {
					own.Ignores = pattern.Excludes
				}
			} else if pattern.Excludes != nil {
				// excludes without includes keep the historical
				// nested-list shape of negated globs
				negated := make([]string, len(pattern.Excludes))
				for i, glob := range pattern.Excludes {
					negated[i] = "!" + glob
				}
				own.Files = []interface{}{negated}
			}
		}
	}

	// plugins: register definitions on the own entry, auto-insert one
	// low-band entry per extension processor, and record declared
	// environments for env expansion below
	if cfg.Plugins != nil {
		own.Plugins = make(map[string]*types.PluginDefinition, len(cfg.Plugins))
		for _, slot := range cfg.Plugins {
			t.logger.Debug().Str("plugin", slot.Name).Msg("Translating plugin")
			own.Plugins[slot.Name] = slot.Definition
			if slot.Definition == nil {
				continue
			}
			for _, proc := range slot.Definition.Processors {
				if strings.HasPrefix(proc.Name, ".") {
					prependLow(&types.Entry{
						Files:     []interface{}{"**/*" + proc.Name},
						Processor: proc.Processor,
					})
				}
			}
			for _, env := range slot.Definition.Environments {
				pluginEnvs[slot.Name+"/"+env.Name] = env.Config
			}
		}
	}

	// env expansion; must follow plugin translation so plugin-declared
	// environments are registered. Builtin environments are defaults and
	// sink to the low band; plugin environments override the plugin
	// registration and go to the high band. Unknown names are skipped.
	for _, flag := range cfg.Env {
		if !flag.Enabled {
			continue
		}
		if fragment, ok := t.envs[flag.Name]; ok {
			items, err := t.expandEnv(flag.Name, fragment, pluginEnvs, path)
			if err != nil {
				return nil, err
			}
			prependLow(items...)
		} else if fragment, ok := pluginEnvs[flag.Name]; ok {
			items, err := t.expandEnv(flag.Name, fragment, pluginEnvs, path)
			if err != nil {
				return nil, err
			}
			high = append(high, items...)
		} else {
			t.logger.Debug().Str("env", flag.Name).Msg("Skipping unknown environment")
		}
	}

	out := low
	if !own.Empty() {
		out = append(out, own)
	}
	out = append(out, high...)
	return out, nil
}

// expandEnv recursively translates an environment fragment, guarding
// against cyclic references through the visited path
func (t *Translator) expandEnv(name string, fragment *types.Config, pluginEnvs map[string]*types.Config, path []string) ([]types.Element, error) {
	for _, visited := range path {
		if visited == name {
			chain := strings.Join(append(path, name), " -> ")
			return nil, errors.Newf(errors.ErrEnvCycle,
				"environment cycle detected: %s", chain).
				WithDetail("environment", name)
		}
	}
	t.logger.Debug().Str("env", name).Msg("Expanding environment")
	return t.translate(fragment, pluginEnvs, append(path, name))
}

// languageOptions lazily creates the languageOptions container
func languageOptions(e *types.Entry) *types.LanguageOptions {
	if e.LanguageOptions == nil {
		e.LanguageOptions = &types.LanguageOptions{}
	}
	return e.LanguageOptions
}

// linterOptions lazily creates the linterOptions container
func linterOptions(e *types.Entry) *types.LinterOptions {
	if e.LinterOptions == nil {
		e.LinterOptions = &types.LinterOptions{}
	}
	return e.LinterOptions
}

func copyMap(m map[string]interface{}) map[string]interface{} {
	copied := make(map[string]interface{}, len(m))
	for k, v := range m {
		copied[k] = v
	}
	return copied
}

func copyBool(b *bool) *bool {
	v := *b
	return &v
}

func stringsToAny(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
