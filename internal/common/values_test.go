package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneValue_NoAliasing(t *testing.T) {
	orig := map[string]any{
		"text":   "hello",
		"nested": map[string]any{"list": []any{1.0, "two", map[string]any{"k": "v"}}},
		"tags":   []string{"a", "b"},
	}

	cloned := CloneValue(orig).(map[string]any)
	assert.Equal(t, orig, cloned)

	cloned["text"] = "changed"
	cloned["nested"].(map[string]any)["list"].([]any)[2].(map[string]any)["k"] = "changed"
	cloned["tags"].([]string)[0] = "z"

	assert.Equal(t, "hello", orig["text"])
	assert.Equal(t, "v", orig["nested"].(map[string]any)["list"].([]any)[2].(map[string]any)["k"])
	assert.Equal(t, "a", orig["tags"].([]string)[0])
}

func TestCloneMap_Nil(t *testing.T) {
	assert.Nil(t, CloneMap(nil))
	assert.Nil(t, CloneStringMap(nil))
	assert.Equal(t, 3.5, CloneValue(3.5))
}
