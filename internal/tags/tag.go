package tags

// Tag is a named element of the linked model: a *ControlTag or an *ObjectTag.
type Tag interface {
	// Key returns the value of the name attribute.
	Key() string
	// Type returns the lower-cased tag name.
	Type() string
	Kind() Kind
}

var (
	_ Tag = (*ControlTag)(nil)
	_ Tag = (*ObjectTag)(nil)
)

func (c *ControlTag) Key() string { return c.Name }

func (c *ControlTag) Kind() Kind { return KindControl }

func (o *ObjectTag) Key() string { return o.Name }

func (o *ObjectTag) Kind() Kind { return KindObject }
