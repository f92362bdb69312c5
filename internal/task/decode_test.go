package task

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FullTask(t *testing.T) {
	data := `{
  "data": {"text": "I love it"},
  "annotations": [{"id": 7, "result": [
    {"from_name": "sentiment", "to_name": "t", "type": "choices", "value": {"choices": ["Positive"]}}
  ]}],
  "predictions": [{"model_version": "v1", "score": 0.9, "result": []}]
}`

	tk, err := Parse([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, "I love it", tk.Data["text"])
	require.Len(t, tk.Annotations, 1)
	require.Len(t, tk.Annotations[0].Result, 1)

	r := tk.Annotations[0].Result[0]
	assert.Equal(t, "sentiment", r.FromName)
	assert.Equal(t, "t", r.ToName)
	assert.Equal(t, []any{"Positive"}, r.Value["choices"])

	require.Len(t, tk.Predictions, 1)
	assert.Equal(t, "v1", tk.Predictions[0].ModelVersion)
	require.NotNil(t, tk.Predictions[0].Score)
	assert.InDelta(t, 0.9, *tk.Predictions[0].Score, 1e-9)
}

func TestParse_BareDataObject(t *testing.T) {
	tk, err := Parse([]byte(`{"text": "hello", "image": "a.jpg"}`))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"text": "hello", "image": "a.jpg"}, tk.Data)
	assert.Empty(t, tk.Annotations)
}

func TestParse_EnvelopeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		path string
	}{
		{"data not an object", `{"data": "text"}`, "/data"},
		{"annotations not an array", `{"annotations": {"result": []}}`, "/annotations"},
		{"result not an array", `{"annotations": [{"result": 5}]}`, "/annotations/0/result"},
		{"result item not an object", `{"predictions": [{"result": ["x"]}]}`, "/predictions/0/result/0"},
		{"top level array", `[1, 2]`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)

			var ee *EnvelopeError
			require.True(t, errors.As(err, &ee), "got %T: %v", err, err)
			assert.Equal(t, tt.path, ee.Path)
		})
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{"data": `))
	require.Error(t, err)

	var ee *EnvelopeError
	assert.False(t, errors.As(err, &ee))
}

func TestFromValue_GoValues(t *testing.T) {
	tk, err := FromValue(map[string]any{
		"data": map[string]any{"tags": []string{"a", "b"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, tk.Data["tags"])
}

func TestRegion_Validate(t *testing.T) {
	ok := Region{FromName: "c", ToName: "t", Type: "choices", Value: map[string]any{}}
	assert.NoError(t, ok.Validate())

	missingFrom := Region{ToName: "t", Type: "choices", Value: map[string]any{}}
	assert.ErrorContains(t, missingFrom.Validate(), "FromName")

	missingValue := Region{FromName: "c", ToName: "t", Type: "choices"}
	assert.ErrorContains(t, missingValue.Validate(), "Value")
}
