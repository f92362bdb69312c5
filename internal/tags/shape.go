package tags

import (
	"encoding/json"
	"maps"

	"lsconfig/internal/common"
)

// fieldShape is the JSON shape one key of a region value must have.
type fieldShape int

const (
	shapeNumber fieldShape = iota + 1
	shapeString
	shapeNumberOrString
	shapeStringList
	shapeList
	shapeNestedStringList
	shapeObject
)

// valueField is one required key of a region value and the example used when
// a sample region is generated.
type valueField struct {
	Key     string
	Shape   fieldShape
	Example any
}

// valueShape is the contract a control type imposes on region values.
type valueShape struct {
	Fields []valueField
	// LabelKey is the key listing the chosen labels, empty when the control
	// type carries no labels.
	LabelKey string
}

var (
	spanFields = []valueField{
		{Key: "start", Shape: shapeNumberOrString, Example: 0.0},
		{Key: "end", Shape: shapeNumberOrString, Example: 5.0},
	}
	xpathSpanFields = []valueField{
		{Key: "start", Shape: shapeString, Example: "/p[1]/text()[1]"},
		{Key: "end", Shape: shapeString, Example: "/p[1]/text()[1]"},
		{Key: "startOffset", Shape: shapeNumber, Example: 0.0},
		{Key: "endOffset", Shape: shapeNumber, Example: 5.0},
	}
	paragraphSpanFields = []valueField{
		{Key: "start", Shape: shapeNumberOrString, Example: "0"},
		{Key: "end", Shape: shapeNumberOrString, Example: "0"},
		{Key: "startOffset", Shape: shapeNumber, Example: 0.0},
		{Key: "endOffset", Shape: shapeNumber, Example: 5.0},
	}
	rectangleFields = []valueField{
		{Key: "x", Shape: shapeNumber, Example: 10.0},
		{Key: "y", Shape: shapeNumber, Example: 10.0},
		{Key: "width", Shape: shapeNumber, Example: 30.0},
		{Key: "height", Shape: shapeNumber, Example: 20.0},
	}
	polygonFields = []valueField{
		{Key: "points", Shape: shapeList, Example: []any{
			[]any{10.0, 10.0}, []any{40.0, 10.0}, []any{25.0, 35.0},
		}},
	}
	keypointFields = []valueField{
		{Key: "x", Shape: shapeNumber, Example: 15.0},
		{Key: "y", Shape: shapeNumber, Example: 15.0},
	}
	ellipseFields = []valueField{
		{Key: "x", Shape: shapeNumber, Example: 20.0},
		{Key: "y", Shape: shapeNumber, Example: 20.0},
		{Key: "radiusX", Shape: shapeNumber, Example: 5.0},
		{Key: "radiusY", Shape: shapeNumber, Example: 8.0},
	}
	brushFields = []valueField{
		{Key: "format", Shape: shapeString, Example: "rle"},
		{Key: "rle", Shape: shapeList, Example: []any{0.0, 1.0, 2.0}},
	}
)

// controlShapes maps a lower-cased control tag name to its value contract.
var controlShapes = map[string]valueShape{
	"choices":          {LabelKey: "choices"},
	"labels":           {Fields: spanFields, LabelKey: "labels"},
	"hypertextlabels":  {Fields: xpathSpanFields, LabelKey: "hypertextlabels"},
	"paragraphlabels":  {Fields: paragraphSpanFields, LabelKey: "paragraphlabels"},
	"timeserieslabels": {Fields: spanFields, LabelKey: "timeserieslabels"},
	"rectanglelabels":  {Fields: rectangleFields, LabelKey: "rectanglelabels"},
	"rectangle":        {Fields: rectangleFields},
	"polygonlabels":    {Fields: polygonFields, LabelKey: "polygonlabels"},
	"polygon":          {Fields: polygonFields},
	"keypointlabels":   {Fields: keypointFields, LabelKey: "keypointlabels"},
	"keypoint":         {Fields: keypointFields},
	"ellipselabels":    {Fields: ellipseFields, LabelKey: "ellipselabels"},
	"ellipse":          {Fields: ellipseFields},
	"brushlabels":      {Fields: brushFields, LabelKey: "brushlabels"},
	"brush":            {Fields: brushFields},
	"videorectangle": {Fields: []valueField{
		{Key: "sequence", Shape: shapeList, Example: []any{map[string]any{
			"frame": 1.0, "enabled": true, "x": 10.0, "y": 10.0, "width": 30.0, "height": 20.0,
		}}},
	}},
	"textarea": {Fields: []valueField{{Key: "text", Shape: shapeStringList, Example: []any{"example"}}}},
	"rating":   {Fields: []valueField{{Key: "rating", Shape: shapeNumber, Example: 3.0}}},
	"number":   {Fields: []valueField{{Key: "number", Shape: shapeNumber, Example: 1.0}}},
	"datetime": {Fields: []valueField{{Key: "datetime", Shape: shapeString, Example: "2021-01-01T00:00"}}},
	"taxonomy": {Fields: []valueField{{Key: "taxonomy", Shape: shapeNestedStringList}}},
	"pairwise": {Fields: []valueField{{Key: "selected", Shape: shapeString, Example: "left"}}},
	"ranker":   {Fields: []valueField{{Key: "ranker", Shape: shapeObject, Example: map[string]any{}}}},
}

// ControlTypes returns the lower-cased control tag names with a known value
// contract, sorted.
func ControlTypes() []string {
	return common.SortedKeys(controlShapes)
}

// check reports whether v has the shape.
func (s fieldShape) check(v any) bool {
	switch s {
	case shapeNumber:
		return isNumber(v)
	case shapeString:
		_, ok := v.(string)
		return ok
	case shapeNumberOrString:
		_, ok := v.(string)
		return ok || isNumber(v)
	case shapeStringList:
		_, ok := stringList(v)
		return ok
	case shapeList:
		switch v.(type) {
		case []any, []string, []float64, [][]float64:
			return true
		}

		return false
	case shapeNestedStringList:
		items, ok := v.([]any)
		if !ok {
			_, ok = v.([][]string)
			return ok
		}

		for _, item := range items {
			if _, ok := stringList(item); !ok {
				return false
			}
		}

		return true
	case shapeObject:
		_, ok := v.(map[string]any)
		return ok
	default:
		return false
	}
}

func isNumber(v any) bool {
	switch v.(type) {
	case float64, float32, int, int32, int64, uint, uint32, uint64, json.Number:
		return true
	default:
		return false
	}
}

// stringList converts a decoded JSON array of strings.
func stringList(v any) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		return t, true
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}

			out = append(out, s)
		}

		return out, true
	default:
		return nil, false
	}
}

// example returns a fresh copy of the shape's example map without labels.
func (vs valueShape) example() map[string]any {
	out := make(map[string]any, len(vs.Fields)+1)
	for _, f := range vs.Fields {
		out[f.Key] = common.CloneValue(f.Example)
	}

	return out
}

// keys returns the required keys of the shape including the label key.
func (vs valueShape) keys() []string {
	out := make([]string, 0, len(vs.Fields)+1)
	for _, f := range vs.Fields {
		out = append(out, f.Key)
	}

	if vs.LabelKey != "" {
		out = append(out, vs.LabelKey)
	}

	return out
}

// mergeExample overlays extra on top of the shape's example.
func (vs valueShape) mergeExample(extra map[string]any) map[string]any {
	out := vs.example()
	maps.Copy(out, extra)

	return out
}
