// Package compat is the front door of flatcompat: it wires a resolver
// and a translator together and exposes the convenience entry points for
// translating whole configs, bare env maps, extends lists, or plugin
// lists into flat config sequences.
package compat
