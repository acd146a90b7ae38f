// Package resolver turns a user-authored legacy config into the ordered
// cascade of fully resolved config nodes the translator consumes.
//
// Resolution expands extends chains (sentinel names, "plugin:" configs,
// shareable configs), dereferences plugin and parser names through
// injected registries, and splits override blocks into criteria-scoped
// nodes. All module lookup happens here; the translator never sees an
// unresolved reference.
package resolver
