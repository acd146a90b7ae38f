package types

// Element is one item of a flat config sequence: either an *Entry or a
// Sentinel string deferred to the downstream consumer for expansion.
type Element interface {
	flatConfigElement()
}

// Sentinel is a shareable-config marker passed through translation
// unexpanded. The downstream consumer replaces it with the corresponding
// predefined config.
type Sentinel string

// The two sentinel names recognized in legacy configs
const (
	SentinelAll         Sentinel = "eslint:all"
	SentinelRecommended Sentinel = "eslint:recommended"
)

func (Sentinel) flatConfigElement() {}

// Entry is one flat config entry. Later entries in a sequence override
// earlier ones for any key they set.
type Entry struct {
	// Files holds glob strings; the excludes-only override case
	// contributes a single []string element of negated globs instead
	Files []interface{} `json:"files,omitempty" yaml:"files,omitempty"`

	// Ignores holds glob strings excluded from Files, or, in an
	// entry with no other keys, globally ignored paths
	Ignores []string `json:"ignores,omitempty" yaml:"ignores,omitempty"`

	Settings map[string]interface{} `json:"settings,omitempty" yaml:"settings,omitempty"`
	Rules    map[string]interface{} `json:"rules,omitempty" yaml:"rules,omitempty"`

	// Processor is a processor name for own entries, or a processor
	// object for auto-inserted extension entries
	Processor interface{} `json:"processor,omitempty" yaml:"processor,omitempty"`

	// Plugins maps plugin names to their loaded definitions
	Plugins map[string]*PluginDefinition `json:"plugins,omitempty" yaml:"plugins,omitempty"`

	LanguageOptions *LanguageOptions `json:"languageOptions,omitempty" yaml:"languageOptions,omitempty"`
	LinterOptions   *LinterOptions   `json:"linterOptions,omitempty" yaml:"linterOptions,omitempty"`
}

func (*Entry) flatConfigElement() {}

// Empty reports whether the entry carries no keys at all
func (e *Entry) Empty() bool {
	return e.Files == nil &&
		e.Ignores == nil &&
		e.Settings == nil &&
		e.Rules == nil &&
		e.Processor == nil &&
		e.Plugins == nil &&
		e.LanguageOptions == nil &&
		e.LinterOptions == nil
}

// LanguageOptions groups the language-level settings of a flat entry.
// EcmaVersion and SourceType are hoisted out of ParserOptions during
// translation.
type LanguageOptions struct {
	EcmaVersion   interface{}            `json:"ecmaVersion,omitempty" yaml:"ecmaVersion,omitempty"`
	SourceType    interface{}            `json:"sourceType,omitempty" yaml:"sourceType,omitempty"`
	Globals       map[string]interface{} `json:"globals,omitempty" yaml:"globals,omitempty"`
	Parser        interface{}            `json:"parser,omitempty" yaml:"parser,omitempty"`
	ParserOptions map[string]interface{} `json:"parserOptions,omitempty" yaml:"parserOptions,omitempty"`
}

// LinterOptions groups the linter-level settings of a flat entry
type LinterOptions struct {
	NoInlineConfig                *bool `json:"noInlineConfig,omitempty" yaml:"noInlineConfig,omitempty"`
	ReportUnusedDisableDirectives *bool `json:"reportUnusedDisableDirectives,omitempty" yaml:"reportUnusedDisableDirectives,omitempty"`
}
