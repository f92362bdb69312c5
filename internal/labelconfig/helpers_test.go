package labelconfig

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sentimentConfig = `<View>
  <Text name="text" value="$text"/>
  <Choices name="sentiment" toName="text">
    <Choice value="Positive"/>
    <Choice value="Negative"/>
    <Choice value="Neutral"/>
  </Choices>
</View>`

const nerConfig = `<View>
  <Labels name="label" toName="text">
    <Label value="PER" background="red"/>
    <Label value="ORG" background="blue"/>
  </Labels>
  <Text name="text" value="$text"/>
  <Image name="image" value="$image"/>
  <RectangleLabels name="box" toName="image">
    <Label value="Car"/>
  </RectangleLabels>
  <TextArea name="notes" toName="text"/>
</View>`

func mustNew(t *testing.T, text string) *LabelingConfig {
	t.Helper()

	c, err := New(text)
	require.NoError(t, err)

	return c
}
