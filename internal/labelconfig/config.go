package labelconfig

import (
	"github.com/charmbracelet/log"

	"lsconfig/internal/diagnostic"
	"lsconfig/internal/tags"
)

// LabelingConfig is a parsed and linked labeling config.
type LabelingConfig struct {
	text     string
	tree     *tags.Node
	controls ControlMap
	objects  ObjectMap
	labels   LabelMap
	example  Example
	diags    diagnostic.Diagnostics
	logger   *log.Logger
}

// New parses and links text. Only malformed markup is an error; structural
// problems are left to Validate.
func New(text string, opts ...Option) (*LabelingConfig, error) {
	o := newOptions(opts)

	p, err := Parse(text, opts...)
	if err != nil {
		return nil, err
	}

	c := &LabelingConfig{
		text:    text,
		tree:    p.Tree,
		objects: p.Objects,
		labels:  p.Labels,
		diags:   p.Diagnostics,
		logger:  o.logger,
	}

	linker := Linker{Logger: o.logger, Diagnostics: &c.diags}
	c.controls = linker.Link(p.Controls, p.Objects, p.Labels)
	c.example, _ = extractExample(text, o.logger)

	return c, nil
}

// Text returns the markup the config was built from.
func (c *LabelingConfig) Text() string { return c.text }

// Tree returns the raw element tree.
func (c *LabelingConfig) Tree() *tags.Node { return c.tree }

// Example returns a copy of the embedded example task, zero when there is none.
func (c *LabelingConfig) Example() Example { return c.example.clone() }

// Diagnostics returns a copy of the parse and link findings.
func (c *LabelingConfig) Diagnostics() diagnostic.Diagnostics { return c.diags.Clone() }

// ControlNames returns the control names sorted.
func (c *LabelingConfig) ControlNames() []string { return c.controls.Names() }

// ObjectNames returns the object names sorted.
func (c *LabelingConfig) ObjectNames() []string { return c.objects.Names() }

// Controls returns the controls ordered by name. They must not be modified.
func (c *LabelingConfig) Controls() []*tags.ControlTag { return c.controls.Sorted() }

// Objects returns the objects ordered by name. They must not be modified.
func (c *LabelingConfig) Objects() []*tags.ObjectTag { return c.objects.Sorted() }

// Labels returns a copy of the label map.
func (c *LabelingConfig) Labels() LabelMap { return c.labels.Clone() }

func (c *LabelingConfig) clone() *LabelingConfig {
	out := *c
	out.tree = c.tree.Clone()
	out.controls = c.controls.Clone()
	out.objects = c.objects.Clone()
	out.labels = c.labels.Clone()
	out.diags = c.diags.Clone()
	out.example = c.example.clone()

	return &out
}
