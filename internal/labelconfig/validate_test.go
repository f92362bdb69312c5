package labelconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUniqueNames(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		repeated []string
	}{
		{name: "unique", text: sentimentConfig},
		{
			name:     "duplicate object",
			text:     `<View><Text name="t" value="$a"/><Text name="t" value="$b"/></View>`,
			repeated: []string{"t"},
		},
		{
			name:     "single quotes and spaces",
			text:     `<View><Text name = 't' value="$a"/><Image name='t' value="$b"/><Text name="x" value="$c"/><Text name="x" value="$d"/></View>`,
			repeated: []string{"t", "x"},
		},
		{
			name: "commented out element",
			text: `<View><Text name="t" value="$a"/><!-- <Text name="t" value="$b"/> --></View>`,
		},
		{
			name: "toName is not a name",
			text: `<View><Text name="t" value="$a"/><Choices name="c" toName="t"/></View>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUniqueNames(tt.text)
			if tt.repeated == nil {
				assert.NoError(t, err)
				return
			}

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, CodeNonUniqueNames, ve.Code)
			assert.Equal(t, tt.repeated, ve.Items)
			assert.Contains(t, ve.Message, "non-unique names")
		})
	}
}

func TestValidateToNameReferences(t *testing.T) {
	err := ValidateToNameReferences(`<View>
  <Text name="t" value="$text"/>
  <Choices name="sentiment" toName="missing"><Choice value="A"/></Choices>
</View>`)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, CodeToNameNotFound, ve.Code)
	assert.Equal(t, []string{"missing"}, ve.Items)
	assert.Equal(t, `toName="missing" not found in names: [sentiment, t]`, ve.Message)

	assert.NoError(t, ValidateToNameReferences(nerConfig))
	assert.NoError(t, ValidateToNameReferences(`<View>
  <Text name="a" value="$a"/><Text name="b" value="$b"/>
  <Labels name="l" toName="a,b"/>
</View>`))
}

func TestValidateText(t *testing.T) {
	require.NoError(t, ValidateText(sentimentConfig))

	var se *SyntaxError
	require.ErrorAs(t, ValidateText("<View>"), &se)

	assert.True(t, IsValidationError(ValidateText(`<View><Text name="t" value="$a"/><Text name="t" value="$b"/></View>`)))
}

func TestIsValid(t *testing.T) {
	ok, err := IsValid(sentimentConfig)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsValid(`<View><Text name="t" value="$a"/><Choices name="c" toName="nope"/></View>`)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = IsValid("<View")
	assert.False(t, ok)

	var se *SyntaxError
	assert.ErrorAs(t, err, &se)
}

func TestLabelingConfig_Validate(t *testing.T) {
	assert.True(t, mustNew(t, sentimentConfig).IsValid())

	c := mustNew(t, `<View><Text name="t" value="$a"/><Text name="t" value="$b"/></View>`)
	assert.False(t, c.IsValid())
	assert.True(t, IsValidationError(c.Validate()))
}

func TestLabelingConfig_Check(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		errors []string
	}{
		{name: "valid", text: sentimentConfig},
		{
			name:   "unresolved toName",
			text:   `<View><Text name="t" value="$a"/><Choices name="c" toName="x"/></View>`,
			errors: []string{CodeToNameNotFound},
		},
		{
			name:   "every failed check is reported",
			text:   `<View><Text name="t" value="$a"/><Text name="t" value="$b"/><Choices name="c" toName="x"/></View>`,
			errors: []string{CodeNonUniqueNames, CodeToNameNotFound},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustNew(t, tt.text)
			d := c.Check()

			var codes []string
			for _, e := range d.Errors {
				codes = append(codes, e.Code)
			}

			assert.Equal(t, tt.errors, codes)
			assert.Equal(t, len(tt.errors) == 0, d.IsValid())
			assert.Equal(t, d.IsValid(), c.IsValid())

			if len(tt.errors) == 0 {
				assert.NoError(t, d.Error())
				return
			}

			assert.True(t, d.HasErrors())
			require.Error(t, d.Error())
			assert.Contains(t, d.Error().Error(), "["+tt.errors[0]+"]")

			// Parse and link findings are kept alongside the errors.
			assert.Equal(t, c.Diagnostics().Warnings, d.Warnings)
		})
	}
}
