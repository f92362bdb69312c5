package export

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"lsconfig/internal/labelconfig"
)

// Document is the exported form of a labeling config.
type Document struct {
	Controls    []Control            `yaml:"controls" json:"controls"`
	Objects     []Object             `yaml:"objects" json:"objects"`
	DataTypes   map[string]string    `yaml:"data_types,omitempty" json:"data_types,omitempty"`
	Example     *labelconfig.Example `yaml:"example,omitempty" json:"example,omitempty"`
	Diagnostics []string             `yaml:"diagnostics,omitempty" json:"diagnostics,omitempty"`
}

// Control is one exported control.
type Control struct {
	Name    string   `yaml:"name" json:"name"`
	Type    string   `yaml:"type" json:"type"`
	ToName  []string `yaml:"to_name" json:"to_name"`
	Objects []string `yaml:"objects" json:"objects"`
	// Unresolved lists toName entries that name no object.
	Unresolved []string `yaml:"unresolved,omitempty" json:"unresolved,omitempty"`
	Labels     []string `yaml:"labels,omitempty" json:"labels,omitempty"`
	Dynamic    bool     `yaml:"dynamic,omitempty" json:"dynamic,omitempty"`
	// ValueKeys are the region value keys results of this control carry.
	ValueKeys []string `yaml:"value_keys,omitempty" json:"value_keys,omitempty"`
	// Custom marks a control type whose values are not checked.
	Custom bool `yaml:"custom,omitempty" json:"custom,omitempty"`
}

// Object is one exported object.
type Object struct {
	Name      string   `yaml:"name" json:"name"`
	Type      string   `yaml:"type" json:"type"`
	Value     string   `yaml:"value" json:"value"`
	Variable  bool     `yaml:"variable" json:"variable"`
	ValueType string   `yaml:"value_type,omitempty" json:"value_type,omitempty"`
	Channels  []string `yaml:"channels,omitempty" json:"channels,omitempty"`
}

// Export builds the document for cfg.
func Export(cfg *labelconfig.LabelingConfig) *Document {
	doc := &Document{
		Controls:  []Control{},
		Objects:   []Object{},
		DataTypes: cfg.ExtractDataTypes(),
	}

	for _, c := range cfg.Controls() {
		ctl := Control{
			Name:    c.Name,
			Type:    c.Type(),
			ToName:  c.ToName,
			Objects: c.Objects,
			Labels:  c.Labels,
			Dynamic: c.DynamicValue,
		}

		if c.IsKnownType() {
			ctl.ValueKeys = c.ValueKeys()
		} else {
			ctl.Custom = true
		}

		for _, to := range c.ToName {
			if !c.HasObject(to) {
				ctl.Unresolved = append(ctl.Unresolved, to)
			}
		}

		doc.Controls = append(doc.Controls, ctl)
	}

	for _, o := range cfg.Objects() {
		doc.Objects = append(doc.Objects, Object{
			Name:      o.Name,
			Type:      o.Type(),
			Value:     o.Value,
			Variable:  o.ValueIsVariable,
			ValueType: o.ValueType,
			Channels:  o.Channels,
		})
	}

	if ex := cfg.Example(); !ex.IsZero() {
		doc.Example = &ex
	}

	diags := cfg.Diagnostics()
	for _, d := range diags.All() {
		doc.Diagnostics = append(doc.Diagnostics, d.Severity.String()+": "+d.String())
	}

	return doc
}

// YAML renders the document for cfg as YAML.
func YAML(cfg *labelconfig.LabelingConfig) ([]byte, error) {
	out, err := yaml.Marshal(Export(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}

	return out, nil
}

// JSON renders the document for cfg as indented JSON.
func JSON(cfg *labelconfig.LabelingConfig) ([]byte, error) {
	out, err := json.MarshalIndent(Export(cfg), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return append(out, '\n'), nil
}

// Format renders the document in the named format, "yaml" or "json".
func Format(cfg *labelconfig.LabelingConfig, format string) ([]byte, error) {
	switch format {
	case "yaml", "":
		return YAML(cfg)
	case "json":
		return JSON(cfg)
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}
