// Package envs holds the environment tables the translator expands
// "env" flags against. An environment is a named bundle of predefined
// globals and parser-option defaults ("es6", "node", "browser", ...).
//
// The builtin table mirrors the classic eslintrc environments. Extra
// environments can be loaded from TOML files and merged in; tables are
// read-only once handed to a translator.
package envs
