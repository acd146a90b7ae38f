package flatcompat

// User-facing command messages
const (
	MsgRootShort = "Translate legacy eslintrc configs into flat configs"
	MsgRootLong  = `flatcompat translates the legacy, cascading eslintrc configuration
format into the flat, order-significant configuration format. Extends
chains, env bundles, glob-scoped overrides, and plugin processors are
re-expressed as an ordered list of flat entries where later entries win.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Output format: json or yaml (overrides the config file)"
	MsgFlagEnvs    = "Extra environment table file (TOML), may be repeated"

	MsgTranslateShort = "Translate a legacy config file to a flat config sequence"
	MsgTranslateLong  = `Reads a legacy config file (YAML or JSON), resolves its extends
chain and overrides, and prints the ordered flat config sequence.
Sentinel entries like "eslint:all" are printed as bare strings for the
downstream consumer to expand.`

	MsgEnvsShort = "List known environments"
	MsgEnvsLong  = `Lists the names of every environment the translator can expand:
the builtin table plus any extension tables passed with --envs.`

	MsgGenConfigShort = "Print the default tool configuration as TOML"
)
