package resolver

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// StringList decodes a YAML/JSON value that may be a single string or a
// list of strings, as the legacy schema allows for extends, files,
// excludedFiles and ignorePatterns.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler
func (s *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		*s = StringList{single}
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*s = StringList(list)
	default:
		return fmt.Errorf("expected string or list of strings, got %s", value.Tag)
	}
	return nil
}

// UserConfig is a legacy config as authored: plugin and parser names are
// strings, extends targets are names, overrides are still attached.
// Every field is optional.
type UserConfig struct {
	Root          bool                   `yaml:"root" json:"root"`
	Extends       StringList             `yaml:"extends" json:"extends"`
	Env           map[string]bool        `yaml:"env" json:"env"`
	Globals       map[string]interface{} `yaml:"globals" json:"globals"`
	Parser        string                 `yaml:"parser" json:"parser"`
	ParserOptions map[string]interface{} `yaml:"parserOptions" json:"parserOptions"`
	Plugins       []string               `yaml:"plugins" json:"plugins"`
	Processor     string                 `yaml:"processor" json:"processor"`
	Rules         map[string]interface{} `yaml:"rules" json:"rules"`
	Settings      map[string]interface{} `yaml:"settings" json:"settings"`

	NoInlineConfig                *bool `yaml:"noInlineConfig" json:"noInlineConfig"`
	ReportUnusedDisableDirectives *bool `yaml:"reportUnusedDisableDirectives" json:"reportUnusedDisableDirectives"`

	IgnorePatterns StringList `yaml:"ignorePatterns" json:"ignorePatterns"`
	Overrides      []Override `yaml:"overrides" json:"overrides"`
}

// Override is a glob-scoped sub-config of a user config
type Override struct {
	Files         StringList `yaml:"files" json:"files"`
	ExcludedFiles StringList `yaml:"excludedFiles" json:"excludedFiles"`

	UserConfig `yaml:",inline"`
}
