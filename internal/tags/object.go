package tags

import (
	"fmt"
	"slices"
	"strings"

	"lsconfig/internal/common"
)

// ExampleMode selects what kind of example data objects generate.
type ExampleMode string

const (
	// ModeUpload produces placeholders suitable for building an upload file.
	ModeUpload ExampleMode = "upload"
	// ModeEditorPreview produces values the labeling editor can render.
	ModeEditorPreview ExampleMode = "editor_preview"
)

// ParseExampleMode validates a mode string.
func ParseExampleMode(s string) (ExampleMode, error) {
	switch m := ExampleMode(s); m {
	case ModeUpload, ModeEditorPreview:
		return m, nil
	default:
		return "", fmt.Errorf("unknown example mode %q (want %s or %s)", s, ModeUpload, ModeEditorPreview)
	}
}

const (
	// LocalSamplesPath serves sample files without leaving the host.
	LocalSamplesPath = "/static/samples/"
	// PublicSamplesURL hosts the sample files used in editor previews.
	PublicSamplesURL = "https://htx-pub.s3.amazonaws.com/samples/"

	exampleText = "To have faith is to trust yourself to the water"
	exampleHTML = "<div><h1>Heading</h1><p>To have faith is to trust yourself to the water</p></div>"
)

// ObjectTag is a data source such as Text or Image.
type ObjectTag struct {
	Name string
	// Tag is the markup tag name as written, e.g. "HyperText".
	Tag string
	// Value is the binding expression, e.g. "$text".
	Value string
	// ValueIsVariable is set when Value refers into task data.
	ValueIsVariable bool
	// ValueName is the task data key, Value without its "$" sigil.
	ValueName string
	// ValueType is the valueType attribute ("url", "text", "json", ...).
	ValueType string
	Attrs     map[string]string
	// Channels lists TimeSeries channel columns declared under the object.
	Channels []string
	// Data is the concrete task payload in a task-bound copy, nil otherwise.
	Data any
}

// NewObjectTag builds an ObjectTag from a node classified as KindObject.
func NewObjectTag(n *Node) *ObjectTag {
	attrs := n.AttrMap()
	value := attrs[AttrValue]

	o := &ObjectTag{
		Name:      attrs[AttrName],
		Tag:       n.Tag,
		Value:     value,
		ValueType: attrs["valueType"],
		Attrs:     attrs,
	}

	if len(value) > 1 && strings.HasPrefix(value, "$") {
		o.ValueIsVariable = true
		o.ValueName = value[1:]
	} else {
		o.ValueName = value
	}

	return o
}

// Type returns the lower-cased tag name.
func (o *ObjectTag) Type() string {
	return strings.ToLower(o.Tag)
}

// AddChannel records a TimeSeries channel column.
func (o *ObjectTag) AddChannel(column string) {
	if column != "" {
		o.Channels = append(o.Channels, column)
	}
}

// objectExample describes the example data of one object type. File-backed
// types produce a URL or path to File, the rest produce Inline.
type objectExample struct {
	File   string
	Inline func(o *ObjectTag) any
}

var objectExamples = map[string]objectExample{
	"text":       {File: "sample.txt", Inline: func(*ObjectTag) any { return exampleText }},
	"hypertext":  {File: "sample.html", Inline: func(*ObjectTag) any { return exampleHTML }},
	"paragraphs": {File: "paragraphs.json", Inline: paragraphsExample},
	"image":      {File: "sample.jpg"},
	"audio":      {File: "sample.wav"},
	"audioplus":  {File: "sample.wav"},
	"video":      {File: "sample.mp4"},
	"pdf":        {File: "sample.pdf"},
	"timeseries": {File: "timeseries.csv", Inline: timeSeriesExample},
	"table": {Inline: func(*ObjectTag) any {
		return map[string]any{"id": 1.0, "name": "example", "score": 0.5}
	}},
	"list": {Inline: func(*ObjectTag) any {
		return []any{map[string]any{"id": 1.0, "title": "Example title", "body": exampleText}}
	}},
}

// GenerateExampleValue returns example task data for this object. Secure mode
// never yields an externally reachable URL; upload mode yields local
// placeholder paths.
func (o *ObjectTag) GenerateExampleValue(mode ExampleMode, secure bool) any {
	ex, ok := objectExamples[o.Type()]
	if !ok {
		return ExampleLabel
	}

	if ex.File != "" && o.wantsFile(ex) {
		if secure || mode == ModeUpload {
			return LocalSamplesPath + ex.File
		}

		return PublicSamplesURL + ex.File
	}

	return ex.Inline(o)
}

// wantsFile decides between file and inline example data.
func (o *ObjectTag) wantsFile(ex objectExample) bool {
	if ex.Inline == nil {
		return true
	}

	switch o.Type() {
	case "timeseries":
		// TimeSeries defaults to valueType="url".
		return o.ValueType != "json"
	default:
		return o.ValueType == "url"
	}
}

func paragraphsExample(o *ObjectTag) any {
	nameKey := o.Attrs["nameKey"]
	if nameKey == "" {
		nameKey = "author"
	}

	textKey := o.Attrs["textKey"]
	if textKey == "" {
		textKey = "text"
	}

	return []any{
		map[string]any{nameKey: "Alice", textKey: "Hi, Bob."},
		map[string]any{nameKey: "Bob", textKey: "Hello, Alice!"},
	}
}

func timeSeriesExample(o *ObjectTag) any {
	timeColumn := o.Attrs["timeColumn"]
	if timeColumn == "" {
		timeColumn = "time"
	}

	out := map[string]any{timeColumn: []any{0.0, 1.0, 2.0, 3.0}}

	channels := o.Channels
	if len(channels) == 0 {
		channels = []string{"value"}
	}

	for i, ch := range channels {
		base := float64(i + 1)
		out[ch] = []any{base, base * 2, base * 1.5, base * 3}
	}

	return out
}

// Clone returns a deep copy of o, including its bound task data.
func (o *ObjectTag) Clone() *ObjectTag {
	out := *o
	out.Attrs = common.CloneStringMap(o.Attrs)
	out.Channels = slices.Clone(o.Channels)
	out.Data = common.CloneValue(o.Data)

	return &out
}
