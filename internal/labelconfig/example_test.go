package labelconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractExample(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		ok     bool
		expect Example
	}{
		{
			name:   "bare body is data",
			text:   `<View><!-- {"text": "Hello"} --></View>`,
			ok:     true,
			expect: Example{Data: map[string]any{"text": "Hello"}},
		},
		{
			name:   "no space after comment start",
			text:   `<View><!--{"text": "Hi"}--></View>`,
			ok:     true,
			expect: Example{Data: map[string]any{"text": "Hi"}},
		},
		{
			name: "explicit data and annotations",
			text: `<View><!-- {"data": {"text": "Hi"}, "annotations": [{"result": []}]} --></View>`,
			ok:   true,
			expect: Example{
				Data:        map[string]any{"text": "Hi"},
				Annotations: []any{map[string]any{"result": []any{}}},
			},
		},
		{
			name:   "predictions without data",
			text:   `<View><!-- {"predictions": []} --></View>`,
			ok:     true,
			expect: Example{Predictions: []any{}},
		},
		{
			name: "data key without annotations",
			text: `<View><!-- {"data": {"a": 1}, "extra": true} --></View>`,
			ok:   true,
			expect: Example{
				Data: map[string]any{"a": 1.0},
			},
		},
		{name: "plain comment", text: `<View><!-- just a note --></View>`},
		{name: "invalid json", text: `<View><!-- {"text": } --></View>`},
		{name: "unterminated", text: `<View><!-- {"text": "x"}`},
		{name: "non-object data only", text: `<View><!-- {"data": "x"} --></View>`},
		{
			name:   "non-object data keeps annotations",
			text:   `<View><!-- {"data": "x", "annotations": [], "predictions": [{"score": 1}]} --></View>`,
			ok:     true,
			expect: Example{Annotations: []any{}, Predictions: []any{map[string]any{"score": 1.0}}},
		},
		{name: "no comment", text: `<View/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex, ok := ExtractExample(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expect, ex)
			assert.Equal(t, !tt.ok, ex.IsZero())
		})
	}
}

func TestNew_KeepsEmbeddedExample(t *testing.T) {
	c := mustNew(t, `<View>
  <Text name="text" value="$text"/>
  <!-- {"data": {"text": "embedded"}} -->
</View>`)

	require.NotNil(t, c.Example().Data)
	assert.Equal(t, "embedded", c.Example().Data["text"])
}

func TestLabelingConfig_ExampleIsCopy(t *testing.T) {
	c := mustNew(t, `<View>
  <Text name="text" value="$text"/>
  <!-- {"data": {"text": "embedded", "meta": {"k": "v"}}, "annotations": [{"id": 1}]} -->
</View>`)

	ex := c.Example()
	ex.Data["text"] = "changed"
	ex.Data["meta"].(map[string]any)["k"] = "changed"
	ex.Annotations.([]any)[0] = nil

	again := c.Example()
	assert.Equal(t, "embedded", again.Data["text"])
	assert.Equal(t, map[string]any{"k": "v"}, again.Data["meta"])
	assert.Equal(t, []any{map[string]any{"id": 1.0}}, again.Annotations)
}
