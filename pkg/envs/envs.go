package envs

import (
	"github.com/arthur-debert/flatcompat/pkg/types"
)

// Table maps an environment name to its legacy-shaped config fragment.
// Tables are lookup-only; the translator never mutates them.
type Table map[string]*types.Config

// Has checks if an environment is defined
func (t Table) Has(name string) bool {
	_, ok := t[name]
	return ok
}

// Merge returns a new table combining t with the given tables.
// Later tables win on name collisions.
func (t Table) Merge(others ...Table) Table {
	merged := make(Table, len(t))
	for name, cfg := range t {
		merged[name] = cfg
	}
	for _, other := range others {
		for name, cfg := range other {
			merged[name] = cfg
		}
	}
	return merged
}

// globals recognized in every ES2015+ environment
var es2015Globals = map[string]interface{}{
	"ArrayBuffer":        false,
	"DataView":           false,
	"Float32Array":       false,
	"Float64Array":       false,
	"Int16Array":         false,
	"Int32Array":         false,
	"Int8Array":          false,
	"Map":                false,
	"Promise":            false,
	"Proxy":              false,
	"Reflect":            false,
	"Set":                false,
	"Symbol":             false,
	"Uint16Array":        false,
	"Uint32Array":        false,
	"Uint8Array":         false,
	"Uint8ClampedArray":  false,
	"WeakMap":            false,
	"WeakSet":            false,
}

var es2017Globals = mergeGlobals(es2015Globals, map[string]interface{}{
	"Atomics":           false,
	"SharedArrayBuffer": false,
})

var es2020Globals = mergeGlobals(es2017Globals, map[string]interface{}{
	"BigInt":         false,
	"BigInt64Array":  false,
	"BigUint64Array": false,
	"globalThis":     false,
})

var es2021Globals = mergeGlobals(es2020Globals, map[string]interface{}{
	"AggregateError":       false,
	"FinalizationRegistry": false,
	"WeakRef":              false,
})

var nodeGlobals = map[string]interface{}{
	"__dirname":      false,
	"__filename":     false,
	"Buffer":         false,
	"console":        false,
	"exports":        true,
	"global":         false,
	"module":         false,
	"process":        false,
	"require":        false,
	"setImmediate":   false,
	"setInterval":    false,
	"setTimeout":     false,
	"clearImmediate": false,
	"clearInterval":  false,
	"clearTimeout":   false,
}

var browserGlobals = map[string]interface{}{
	"alert":          false,
	"atob":           false,
	"btoa":           false,
	"console":        false,
	"document":       false,
	"fetch":          false,
	"history":        false,
	"localStorage":   false,
	"location":       false,
	"navigator":      false,
	"sessionStorage": false,
	"setInterval":    false,
	"setTimeout":     false,
	"window":         false,
	"XMLHttpRequest": false,
}

var workerGlobals = map[string]interface{}{
	"importScripts": false,
	"postMessage":   false,
	"self":          false,
	"fetch":         false,
}

var commonjsGlobals = map[string]interface{}{
	"exports":    true,
	"global":     false,
	"module":     false,
	"require":    false,
}

var mochaGlobals = map[string]interface{}{
	"after":      false,
	"afterEach":  false,
	"before":     false,
	"beforeEach": false,
	"describe":   false,
	"it":         false,
	"xdescribe":  false,
	"xit":        false,
}

var jestGlobals = map[string]interface{}{
	"afterAll":   false,
	"afterEach":  false,
	"beforeAll":  false,
	"beforeEach": false,
	"describe":   false,
	"expect":     false,
	"it":         false,
	"jest":       false,
	"test":       false,
}

// builtin is the classic eslintrc environment table
var builtin = Table{
	"es6": {
		Globals:       es2015Globals,
		ParserOptions: map[string]interface{}{"ecmaVersion": 6},
	},
	"es2017": {
		Globals:       es2017Globals,
		ParserOptions: map[string]interface{}{"ecmaVersion": 2017},
	},
	"es2020": {
		Globals:       es2020Globals,
		ParserOptions: map[string]interface{}{"ecmaVersion": 2020},
	},
	"es2021": {
		Globals:       es2021Globals,
		ParserOptions: map[string]interface{}{"ecmaVersion": 2021},
	},
	"node": {
		Globals: nodeGlobals,
		ParserOptions: map[string]interface{}{
			"ecmaFeatures": map[string]interface{}{"globalReturn": true},
		},
	},
	"node-cjs": {
		Globals: nodeGlobals,
	},
	"browser": {
		Globals: browserGlobals,
	},
	"worker": {
		Globals: workerGlobals,
	},
	"commonjs": {
		Globals: commonjsGlobals,
		ParserOptions: map[string]interface{}{
			"ecmaFeatures": map[string]interface{}{"globalReturn": true},
		},
	},
	"shared-node-browser": {
		Globals: map[string]interface{}{
			"clearInterval":   false,
			"clearTimeout":    false,
			"console":         false,
			"setInterval":     false,
			"setTimeout":      false,
			"URL":             false,
			"URLSearchParams": false,
		},
	},
	"amd": {
		Globals: map[string]interface{}{
			"define":  false,
			"require": false,
		},
	},
	"mocha": {
		Globals: mochaGlobals,
	},
	"jest": {
		Globals: jestGlobals,
	},
}

// Builtin returns the builtin environment table. Callers must treat the
// returned table and every fragment in it as read-only.
func Builtin() Table {
	return builtin
}

func mergeGlobals(maps ...map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{})
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}
