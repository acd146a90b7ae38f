package types

// Config is a fully resolved legacy (eslintrc-style) config node as
// produced by the resolver: plugins and parsers are already loaded into
// memory, extends chains already expanded. Every field is optional.
type Config struct {
	// Settings is copied verbatim into the flat entry. The sentinel
	// markers "eslint:all" and "eslint:recommended" may appear here with
	// a boolean value; a true value short-circuits translation.
	Settings map[string]interface{}

	// Rules is copied verbatim into the flat entry
	Rules map[string]interface{}

	// Processor is the processor name for this config, e.g. "markdown/markdown"
	Processor string

	// Globals maps global identifier names to their writability flag
	Globals map[string]interface{}

	// Parser is the already-resolved parser reference, or nil
	Parser *Parser

	// ParserOptions may contain ecmaVersion, sourceType and nested
	// ecmaFeatures; ecmaVersion and sourceType are hoisted during
	// translation
	ParserOptions map[string]interface{}

	// NoInlineConfig and ReportUnusedDisableDirectives become
	// linterOptions on the flat entry; nil means absent
	NoInlineConfig                *bool
	ReportUnusedDisableDirectives *bool

	// IgnorePattern holds file-level ignore globs
	IgnorePattern *IgnorePattern

	// Criteria holds the include/exclude globs of an override block
	Criteria *Criteria

	// Plugins are the loaded plugins, in registration order
	Plugins []PluginSlot

	// Env lists environment flags in authored order; only entries with
	// Enabled true are expanded
	Env []EnvFlag
}

// Parser is a parser module reference resolved ahead of translation.
// Definition is the loaded module object and is treated as opaque.
type Parser struct {
	Name       string
	Definition interface{}
}

// PluginSlot pairs a plugin name with its loaded definition
type PluginSlot struct {
	Name       string
	Definition *PluginDefinition
}

// EnvFlag is one entry of a legacy "env" map
type EnvFlag struct {
	Name    string
	Enabled bool
}

// IgnorePattern holds the ordered ignore globs of a config node
type IgnorePattern struct {
	Patterns []string
}

// Criteria describes which files an override block applies to
type Criteria struct {
	Patterns []CriteriaPattern
}

// CriteriaPattern is one include/exclude glob pair of an override.
// Either list may be nil.
type CriteriaPattern struct {
	Includes []string
	Excludes []string
}
