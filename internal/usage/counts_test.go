package usage

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	a := LabelCounts{"sentiment": {"Negative": 1, "Positive": 1}}
	b := LabelCounts{"sentiment": {"Positive": 2, "Neutral": 1}, "ner": {"PER": 4}}

	got := Merge(a, b)
	want := LabelCounts{
		"sentiment": {"Negative": 1, "Positive": 3, "Neutral": 1},
		"ner":       {"PER": 4},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 1, a["sentiment"]["Positive"], "inputs must not be modified")
	assert.Equal(t, 5, got.Total("sentiment"))
	assert.Equal(t, 0, got.Total("missing"))
}

func TestMerge_NilInputs(t *testing.T) {
	assert.Empty(t, Merge(nil, nil))
	assert.Equal(t, LabelCounts{"c": {"x": 1}}, Merge(nil, LabelCounts{"c": {"x": 1}}))
}

func TestFormatTuple(t *testing.T) {
	assert.Equal(t, "chc|text|choices", FormatTuple("chc", []string{"text"}, "Choices"))
	assert.Equal(t, "lbl|img,txt|labels", FormatTuple("lbl", []string{"img", "txt"}, "labels"))
}

func TestParseTuple(t *testing.T) {
	tup, err := ParseTuple("lbl|img,txt|Labels")
	require.NoError(t, err)
	assert.Equal(t, Tuple{FromName: "lbl", ToName: []string{"img", "txt"}, Type: "labels"}, tup)
	assert.Equal(t, "lbl|img,txt|labels", tup.String())

	_, err = ParseTuple("only|two")
	assert.Error(t, err)

	_, err = ParseTuple("a|b|c|d")
	assert.Error(t, err)
}

func TestDisplayCount(t *testing.T) {
	assert.Equal(t, "", DisplayCount(0, "draft"))
	assert.Equal(t, "1 draft", DisplayCount(1, "draft"))
	assert.Equal(t, "3 annotations", DisplayCount(3, "annotation"))
}
