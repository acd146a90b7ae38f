package types

// PluginDefinition is a loaded plugin module. Translation only reads the
// processor and environment tables; everything else the module exports is
// carried opaquely for the downstream consumer.
type PluginDefinition struct {
	// Processors lists the plugin's processors in declaration order.
	// Names beginning with "." are file extensions and produce an
	// auto-inserted flat entry; other names are virtual processors
	// addressed as "plugin/name".
	Processors []NamedProcessor

	// Environments lists the environments the plugin declares, in
	// declaration order. They are addressed as "plugin/name" in env maps.
	Environments []NamedConfig

	// Rules carries the plugin's rule implementations, opaque to translation
	Rules map[string]interface{}

	// Configs lists shareable configs the plugin exports, addressed as
	// "plugin:plugin/name" in extends lists. Resolved by the resolver,
	// never read by the translator.
	Configs []NamedUserValue
}

// NamedProcessor pairs a processor key with its processor object
type NamedProcessor struct {
	Name      string
	Processor interface{}
}

// NamedConfig pairs an environment name with its config fragment
type NamedConfig struct {
	Name   string
	Config *Config
}

// NamedUserValue pairs a config name with an unresolved, user-authored
// config value. The concrete type is owned by the resolver; keeping it
// opaque here avoids an import cycle between types and resolver.
type NamedUserValue struct {
	Name  string
	Value interface{}
}
