package tags

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind is the role a markup element plays in a labeling config.
type Kind int

const (
	KindNone Kind = iota // layout or unrecognized markup
	KindControl
	KindObject
	KindLabel
)
