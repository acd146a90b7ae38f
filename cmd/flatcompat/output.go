package flatcompat

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/flatcompat/pkg/config"
	"github.com/arthur-debert/flatcompat/pkg/types"
)

// writeElements serializes a flat config sequence. Sentinels render as
// bare strings, entries as objects.
func writeElements(w io.Writer, elements []types.Element, output config.Output) error {
	// an empty translation still prints an empty sequence
	serializable := make([]interface{}, 0, len(elements))
	for _, element := range elements {
		switch v := element.(type) {
		case types.Sentinel:
			serializable = append(serializable, string(v))
		default:
			serializable = append(serializable, v)
		}
	}

	if output.Format == "yaml" {
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		defer func() { _ = encoder.Close() }()
		return encoder.Encode(serializable)
	}

	encoder := json.NewEncoder(w)
	if output.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(serializable)
}
