// Package registry provides a generic, type-safe registry for the
// in-memory module tables the resolver consults: plugins, shareable
// configs, and parsers. Registries are constructed by the caller and
// injected at resolver construction time.
package registry
