// Package types defines the core types used throughout flatcompat.
// This includes the legacy (eslintrc-style) config node consumed by the
// translator, the plugin definition shape, and the flat config entry the
// translator produces.
//
// # Ordering
//
// The legacy format relies on JS object key insertion order for plugins,
// environments, and plugin processors. Go maps carry no order, so every
// field whose iteration order changes translation output is an ordered
// slice of named entries. Lookup-only tables stay maps.
package types
