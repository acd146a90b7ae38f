// Package translate re-expresses one fully resolved legacy config node
// as an ordered sequence of flat config entries. Position encodes
// precedence: a later entry overrides an earlier one for any key it sets.
//
// Per node the output is assembled in three precedence bands:
//
//   - low: ignore-pattern entry, plugin processor entries, and builtin
//     environment expansions. Each addition lands ahead of earlier
//     additions, so the most recently added low item sorts earliest.
//   - own: the node's own settings, rules, language and linter options,
//     override globs, and plugin registrations, as a single entry.
//   - high: plugin-declared environment expansions, which override the
//     plugin registration that introduced them.
//
// The bands merge to low ++ own ++ high. Environment expansion recurses
// into the environment's fragment; a visited path guards against cyclic
// environment references.
package translate
