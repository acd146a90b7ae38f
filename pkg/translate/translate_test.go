// pkg/translate/translate_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test legacy-to-flat translation ordering and precedence

package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/flatcompat/pkg/envs"
	"github.com/arthur-debert/flatcompat/pkg/errors"
	"github.com/arthur-debert/flatcompat/pkg/types"
)

func boolPtr(b bool) *bool { return &b }

func TestTranslateEmpty(t *testing.T) {
	tr := New(envs.Builtin())

	result, err := tr.Translate(&types.Config{})
	require.NoError(t, err)
	assert.Empty(t, result)

	result, err = tr.Translate(nil)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestTranslateSentinels(t *testing.T) {
	tr := New(envs.Builtin())

	tests := []struct {
		name string
		cfg  *types.Config
		want []types.Element
	}{
		{
			name: "eslint:all short-circuits",
			cfg: &types.Config{
				Settings: map[string]interface{}{"eslint:all": true},
			},
			want: []types.Element{types.SentinelAll},
		},
		{
			name: "eslint:recommended short-circuits",
			cfg: &types.Config{
				Settings: map[string]interface{}{"eslint:recommended": true},
			},
			want: []types.Element{types.SentinelRecommended},
		},
		{
			name: "eslint:all wins over eslint:recommended",
			cfg: &types.Config{
				Settings: map[string]interface{}{
					"eslint:all":         true,
					"eslint:recommended": true,
				},
			},
			want: []types.Element{types.SentinelAll},
		},
		{
			name: "sentinel ignores every other field",
			cfg: &types.Config{
				Settings: map[string]interface{}{"eslint:all": true},
				Rules:    map[string]interface{}{"semi": "error"},
				Env:      []types.EnvFlag{{Name: "es6", Enabled: true}},
			},
			want: []types.Element{types.SentinelAll},
		},
		{
			name: "non-boolean sentinel value is ignored",
			cfg: &types.Config{
				Settings: map[string]interface{}{"eslint:all": "yes"},
			},
			want: []types.Element{
				&types.Entry{Settings: map[string]interface{}{"eslint:all": "yes"}},
			},
		},
		{
			name: "false sentinel value is ignored",
			cfg: &types.Config{
				Settings: map[string]interface{}{"eslint:recommended": false},
			},
			want: []types.Element{
				&types.Entry{Settings: map[string]interface{}{"eslint:recommended": false}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tr.Translate(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestTranslateVerbatimCopy(t *testing.T) {
	tr := New(envs.Builtin())

	settings := map[string]interface{}{"shared": "value"}
	rules := map[string]interface{}{"semi": "error", "quotes": []interface{}{"error", "double"}}

	result, err := tr.Translate(&types.Config{
		Settings:  settings,
		Rules:     rules,
		Processor: "markdown/markdown",
	})
	require.NoError(t, err)
	require.Len(t, result, 1)

	entry := result[0].(*types.Entry)
	assert.Equal(t, settings, entry.Settings)
	assert.Equal(t, rules, entry.Rules)
	assert.Equal(t, "markdown/markdown", entry.Processor)
}

func TestTranslateLanguageOptions(t *testing.T) {
	tr := New(envs.Builtin())

	t.Run("hoists ecmaVersion and sourceType", func(t *testing.T) {
		result, err := tr.Translate(&types.Config{
			ParserOptions: map[string]interface{}{
				"ecmaVersion":  2018,
				"sourceType":   "module",
				"ecmaFeatures": map[string]interface{}{"jsx": true},
			},
		})
		require.NoError(t, err)
		require.Len(t, result, 1)

		lo := result[0].(*types.Entry).LanguageOptions
		require.NotNil(t, lo)
		assert.Equal(t, 2018, lo.EcmaVersion)
		assert.Equal(t, "module", lo.SourceType)
		assert.Equal(t, map[string]interface{}{
			"ecmaFeatures": map[string]interface{}{"jsx": true},
		}, lo.ParserOptions)
	})

	t.Run("drops parserOptions once emptied by hoisting", func(t *testing.T) {
		result, err := tr.Translate(&types.Config{
			ParserOptions: map[string]interface{}{"ecmaVersion": 6},
		})
		require.NoError(t, err)
		require.Len(t, result, 1)

		lo := result[0].(*types.Entry).LanguageOptions
		require.NotNil(t, lo)
		assert.Equal(t, 6, lo.EcmaVersion)
		assert.Nil(t, lo.ParserOptions)
	})

	t.Run("hoisting never mutates the input node", func(t *testing.T) {
		opts := map[string]interface{}{"ecmaVersion": 2020, "sourceType": "script"}
		_, err := tr.Translate(&types.Config{ParserOptions: opts})
		require.NoError(t, err)
		assert.Equal(t, 2020, opts["ecmaVersion"])
		assert.Equal(t, "script", opts["sourceType"])
	})

	t.Run("parser is replaced by its definition", func(t *testing.T) {
		definition := map[string]interface{}{"parseForESLint": "fn"}
		result, err := tr.Translate(&types.Config{
			Parser: &types.Parser{Name: "babel-eslint", Definition: definition},
		})
		require.NoError(t, err)
		require.Len(t, result, 1)

		lo := result[0].(*types.Entry).LanguageOptions
		require.NotNil(t, lo)
		assert.Equal(t, definition, lo.Parser)
	})

	t.Run("globals are shallow-copied", func(t *testing.T) {
		globals := map[string]interface{}{"window": false}
		result, err := tr.Translate(&types.Config{Globals: globals})
		require.NoError(t, err)

		copied := result[0].(*types.Entry).LanguageOptions.Globals
		copied["document"] = false
		assert.NotContains(t, globals, "document", "input globals must stay untouched")
	})
}

func TestTranslateLinterOptions(t *testing.T) {
	tr := New(envs.Builtin())

	result, err := tr.Translate(&types.Config{
		NoInlineConfig:                boolPtr(true),
		ReportUnusedDisableDirectives: boolPtr(false),
	})
	require.NoError(t, err)
	require.Len(t, result, 1)

	lo := result[0].(*types.Entry).LinterOptions
	require.NotNil(t, lo)
	require.NotNil(t, lo.NoInlineConfig)
	assert.True(t, *lo.NoInlineConfig)
	require.NotNil(t, lo.ReportUnusedDisableDirectives)
	assert.False(t, *lo.ReportUnusedDisableDirectives)
}

func TestTranslateIgnorePatternOrdering(t *testing.T) {
	tr := New(envs.Builtin())

	result, err := tr.Translate(&types.Config{
		IgnorePattern: &types.IgnorePattern{Patterns: []string{"**/*.jsx"}},
		Rules:         map[string]interface{}{"foo": "error"},
	})
	require.NoError(t, err)

	want := []types.Element{
		&types.Entry{Ignores: []string{"**/*.jsx"}},
		&types.Entry{Rules: map[string]interface{}{"foo": "error"}},
	}
	assert.Equal(t, want, result)
}

func TestTranslateCriteria(t *testing.T) {
	tr := New(envs.Builtin())

	tests := []struct {
		name        string
		criteria    *types.Criteria
		wantFiles   []interface{}
		wantIgnores []string
	}{
		{
			name: "includes only",
			criteria: &types.Criteria{Patterns: []types.CriteriaPattern{
				{Includes: []string{"*.ts", "*.tsx"}},
			}},
			wantFiles: []interface{}{"*.ts", "*.tsx"},
		},
		{
			name: "includes with excludes",
			criteria: &types.Criteria{Patterns: []types.CriteriaPattern{
				{Includes: []string{"src/**"}, Excludes: []string{"src/vendor/**"}},
			}},
			wantFiles:   []interface{}{"src/**"},
			wantIgnores: []string{"src/vendor/**"},
		},
		{
			name: "excludes without includes keeps the nested negated shape",
			criteria: &types.Criteria{Patterns: []types.CriteriaPattern{
				{Excludes: []string{"**/*.jsx"}},
			}},
			wantFiles: []interface{}{[]string{"!**/*.jsx"}},
		},
		{
			name: "last pattern pair wins",
			criteria: &types.Criteria{Patterns: []types.CriteriaPattern{
				{Includes: []string{"*.md"}},
				{Includes: []string{"*.ts"}, Excludes: []string{"*.d.ts"}},
			}},
			wantFiles:   []interface{}{"*.ts"},
			wantIgnores: []string{"*.d.ts"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tr.Translate(&types.Config{Criteria: tt.criteria})
			require.NoError(t, err)
			require.Len(t, result, 1)

			entry := result[0].(*types.Entry)
			assert.Equal(t, tt.wantFiles, entry.Files)
			assert.Equal(t, tt.wantIgnores, entry.Ignores)
		})
	}
}

func TestTranslatePlugins(t *testing.T) {
	mdProcessor := map[string]interface{}{"preprocess": "md"}
	mdxProcessor := map[string]interface{}{"preprocess": "mdx"}

	plugin := &types.PluginDefinition{
		Processors: []types.NamedProcessor{
			{Name: ".md", Processor: mdProcessor},
			{Name: ".mdx", Processor: mdxProcessor},
			{Name: "virtual", Processor: map[string]interface{}{"preprocess": "virtual"}},
		},
	}

	tr := New(envs.Builtin())
	result, err := tr.Translate(&types.Config{
		Plugins: []types.PluginSlot{{Name: "fixture2", Definition: plugin}},
	})
	require.NoError(t, err)

	// later extension processors sort earlier; the virtual processor
	// produces no entry; the registration entry comes last
	want := []types.Element{
		&types.Entry{Files: []interface{}{"**/*.mdx"}, Processor: mdxProcessor},
		&types.Entry{Files: []interface{}{"**/*.md"}, Processor: mdProcessor},
		&types.Entry{Plugins: map[string]*types.PluginDefinition{"fixture2": plugin}},
	}
	assert.Equal(t, want, result)
}

func TestTranslateProcessorEntriesSortBeforeIgnores(t *testing.T) {
	plugin := &types.PluginDefinition{
		Processors: []types.NamedProcessor{
			{Name: ".md", Processor: "P"},
		},
	}

	tr := New(envs.Builtin())
	result, err := tr.Translate(&types.Config{
		IgnorePattern: &types.IgnorePattern{Patterns: []string{"dist/**"}},
		Plugins:       []types.PluginSlot{{Name: "fixture2", Definition: plugin}},
	})
	require.NoError(t, err)

	want := []types.Element{
		&types.Entry{Files: []interface{}{"**/*.md"}, Processor: "P"},
		&types.Entry{Ignores: []string{"dist/**"}},
		&types.Entry{Plugins: map[string]*types.PluginDefinition{"fixture2": plugin}},
	}
	assert.Equal(t, want, result)
}

func TestTranslateBuiltinEnv(t *testing.T) {
	tr := New(envs.Builtin())

	result, err := tr.Translate(&types.Config{
		Env: []types.EnvFlag{{Name: "es6", Enabled: true}},
	})
	require.NoError(t, err)
	require.Len(t, result, 1)

	lo := result[0].(*types.Entry).LanguageOptions
	require.NotNil(t, lo)
	assert.Equal(t, 6, lo.EcmaVersion)
	assert.Equal(t, envs.Builtin()["es6"].Globals, lo.Globals)
	assert.Nil(t, lo.ParserOptions)
}

func TestTranslateEnvFlags(t *testing.T) {
	tr := New(envs.Builtin())

	t.Run("disabled env is skipped", func(t *testing.T) {
		result, err := tr.Translate(&types.Config{
			Env: []types.EnvFlag{{Name: "es6", Enabled: false}},
		})
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("unknown env is skipped without error", func(t *testing.T) {
		result, err := tr.Translate(&types.Config{
			Rules: map[string]interface{}{"semi": "error"},
			Env:   []types.EnvFlag{{Name: "no-such-env", Enabled: true}},
		})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.NotNil(t, result[0].(*types.Entry).Rules)
	})
}

func TestTranslateBuiltinEnvOrdering(t *testing.T) {
	table := envs.Table{
		"first":  {Globals: map[string]interface{}{"first": false}},
		"second": {Globals: map[string]interface{}{"second": false}},
	}
	tr := New(table)

	result, err := tr.Translate(&types.Config{
		Rules: map[string]interface{}{"semi": "error"},
		Env: []types.EnvFlag{
			{Name: "first", Enabled: true},
			{Name: "second", Enabled: true},
		},
	})
	require.NoError(t, err)
	require.Len(t, result, 3)

	// each builtin env splices ahead of the previous one, so the env
	// listed last lands earliest
	assert.Contains(t, result[0].(*types.Entry).LanguageOptions.Globals, "second")
	assert.Contains(t, result[1].(*types.Entry).LanguageOptions.Globals, "first")
	assert.NotNil(t, result[2].(*types.Entry).Rules)
}

func TestTranslatePluginEnv(t *testing.T) {
	plugin := &types.PluginDefinition{
		Environments: []types.NamedConfig{
			{Name: "a", Config: &types.Config{
				Globals: map[string]interface{}{"world": true},
			}},
		},
	}

	tr := New(envs.Builtin())
	result, err := tr.Translate(&types.Config{
		Plugins: []types.PluginSlot{{Name: "fixture3", Definition: plugin}},
		Env:     []types.EnvFlag{{Name: "fixture3/a", Enabled: true}},
	})
	require.NoError(t, err)

	// the plugin environment must land after the registration entry
	want := []types.Element{
		&types.Entry{Plugins: map[string]*types.PluginDefinition{"fixture3": plugin}},
		&types.Entry{LanguageOptions: &types.LanguageOptions{
			Globals: map[string]interface{}{"world": true},
		}},
	}
	assert.Equal(t, want, result)
}

func TestTranslateMixedEnvs(t *testing.T) {
	plugin := &types.PluginDefinition{
		Environments: []types.NamedConfig{
			{Name: "a", Config: &types.Config{
				Globals: map[string]interface{}{"world": true},
			}},
		},
	}

	tr := New(envs.Builtin())
	result, err := tr.Translate(&types.Config{
		Rules:   map[string]interface{}{"semi": "error"},
		Plugins: []types.PluginSlot{{Name: "fixture3", Definition: plugin}},
		Env: []types.EnvFlag{
			{Name: "es6", Enabled: true},
			{Name: "fixture3/a", Enabled: true},
		},
	})
	require.NoError(t, err)
	require.Len(t, result, 3)

	// builtin defaults first, then the node's own entry, then the
	// plugin environment
	first := result[0].(*types.Entry)
	require.NotNil(t, first.LanguageOptions)
	assert.Equal(t, 6, first.LanguageOptions.EcmaVersion)

	own := result[1].(*types.Entry)
	assert.NotNil(t, own.Rules)
	assert.Contains(t, own.Plugins, "fixture3")

	last := result[2].(*types.Entry)
	require.NotNil(t, last.LanguageOptions)
	assert.Equal(t, map[string]interface{}{"world": true}, last.LanguageOptions.Globals)
}

func TestTranslateChainedEnvs(t *testing.T) {
	table := envs.Table{
		"outer": {
			Globals: map[string]interface{}{"outer": false},
			Env:     []types.EnvFlag{{Name: "inner", Enabled: true}},
		},
		"inner": {Globals: map[string]interface{}{"inner": false}},
	}
	tr := New(table)

	result, err := tr.Translate(&types.Config{
		Env: []types.EnvFlag{{Name: "outer", Enabled: true}},
	})
	require.NoError(t, err)
	require.Len(t, result, 2)

	// inner is a builtin default of outer's fragment and sorts first
	assert.Contains(t, result[0].(*types.Entry).LanguageOptions.Globals, "inner")
	assert.Contains(t, result[1].(*types.Entry).LanguageOptions.Globals, "outer")
}

func TestTranslateEnvCycle(t *testing.T) {
	t.Run("direct cycle", func(t *testing.T) {
		table := envs.Table{
			"selfish": {
				Globals: map[string]interface{}{"x": false},
				Env:     []types.EnvFlag{{Name: "selfish", Enabled: true}},
			},
		}
		tr := New(table)

		_, err := tr.Translate(&types.Config{
			Env: []types.EnvFlag{{Name: "selfish", Enabled: true}},
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrEnvCycle))
		assert.Contains(t, err.Error(), "selfish -> selfish")
	})

	t.Run("indirect cycle", func(t *testing.T) {
		table := envs.Table{
			"a": {Env: []types.EnvFlag{{Name: "b", Enabled: true}}},
			"b": {Env: []types.EnvFlag{{Name: "a", Enabled: true}}},
		}
		tr := New(table)

		_, err := tr.Translate(&types.Config{
			Env: []types.EnvFlag{{Name: "a", Enabled: true}},
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrEnvCycle))
		assert.Contains(t, err.Error(), "a -> b -> a")
	})

	t.Run("diamond reference is not a cycle", func(t *testing.T) {
		table := envs.Table{
			"shared": {Globals: map[string]interface{}{"shared": false}},
			"a":      {Env: []types.EnvFlag{{Name: "shared", Enabled: true}}},
			"b":      {Env: []types.EnvFlag{{Name: "shared", Enabled: true}}},
		}
		tr := New(table)

		result, err := tr.Translate(&types.Config{
			Env: []types.EnvFlag{
				{Name: "a", Enabled: true},
				{Name: "b", Enabled: true},
			},
		})
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})
}

func TestTranslateAllSharesPluginEnvironments(t *testing.T) {
	plugin := &types.PluginDefinition{
		Environments: []types.NamedConfig{
			{Name: "a", Config: &types.Config{
				Globals: map[string]interface{}{"world": true},
			}},
		},
	}

	tr := New(envs.Builtin())
	result, err := tr.TranslateAll([]*types.Config{
		{Plugins: []types.PluginSlot{{Name: "fixture3", Definition: plugin}}},
		{Env: []types.EnvFlag{{Name: "fixture3/a", Enabled: true}}},
	})
	require.NoError(t, err)

	want := []types.Element{
		&types.Entry{Plugins: map[string]*types.PluginDefinition{"fixture3": plugin}},
		&types.Entry{LanguageOptions: &types.LanguageOptions{
			Globals: map[string]interface{}{"world": true},
		}},
	}
	assert.Equal(t, want, result)
}

func TestTranslateDoesNotMutateEnvironmentTable(t *testing.T) {
	table := envs.Table{
		"custom": {
			Globals:       map[string]interface{}{"thing": false},
			ParserOptions: map[string]interface{}{"ecmaVersion": 2020},
		},
	}
	tr := New(table)

	_, err := tr.Translate(&types.Config{
		Env: []types.EnvFlag{{Name: "custom", Enabled: true}},
	})
	require.NoError(t, err)

	// hoisting works on a copy; the table fragment keeps its shape
	assert.Equal(t, 2020, table["custom"].ParserOptions["ecmaVersion"])
	assert.Equal(t, map[string]interface{}{"thing": false}, table["custom"].Globals)
}
