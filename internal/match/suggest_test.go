package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank_OrdersByScoreThenName(t *testing.T) {
	ranked := Rank("txt", []string{"video", "text", "texts"})

	require.Len(t, ranked, 3)
	assert.Equal(t, "text", ranked[0].Name)
	assert.Equal(t, "texts", ranked[1].Name)
	assert.Equal(t, "video", ranked[2].Name)
}

func TestSuggest(t *testing.T) {
	known := []string{"text", "image", "sentiment", "audio"}

	assert.Equal(t, []string{"text"}, Suggest("txt", known, 3))
	assert.Equal(t, []string{"image"}, Suggest("Image_", known, 0))
	assert.Empty(t, Suggest("zzzzzz", known, 3))
}

func TestSuggest_Limit(t *testing.T) {
	known := []string{"img1", "img2", "img3"}

	assert.Equal(t, []string{"img1", "img2"}, Suggest("img", known, 2))
}
