package labelconfig

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lsconfig/internal/diagnostic"
)

func TestLink_ResolvesTargetsAndLabels(t *testing.T) {
	p, err := Parse(nerConfig)
	require.NoError(t, err)

	controls := Link(p.Controls, p.Objects, p.Labels)

	assert.Equal(t, []string{"text"}, controls["label"].Objects)
	assert.Equal(t, []string{"PER", "ORG"}, controls["label"].Labels)
	assert.Equal(t, "blue", controls["label"].LabelAttrs["ORG"]["background"])
	assert.Equal(t, []string{"image"}, controls["box"].Objects)
	assert.Equal(t, []string{"Car"}, controls["box"].Labels)
	assert.Empty(t, controls["notes"].Labels)
}

func TestLink_UnresolvedTargetsSuggest(t *testing.T) {
	p, err := Parse(`<View>
  <Text name="text" value="$text"/>
  <Choices name="c" toName="txt, text">
    <Choice value="A"/>
  </Choices>
</View>`)
	require.NoError(t, err)

	var diags diagnostic.Diagnostics

	linker := Linker{Diagnostics: &diags}
	controls := linker.Link(p.Controls, p.Objects, p.Labels)

	assert.Equal(t, []string{"txt", "text"}, controls["c"].ToName)
	assert.Equal(t, []string{"text"}, controls["c"].Objects)

	found := diags.ByCode(CodeToNameUnresolved)
	require.Len(t, found, 1)
	assert.Equal(t, "c", found[0].Tag)
	assert.Equal(t, "txt", found[0].Attr)
	assert.Equal(t, []string{"text"}, found[0].Suggestions)
}

func TestLink_Idempotent(t *testing.T) {
	p, err := Parse(`<View>
  <Text name="t" value="$text"/>
  <Labels name="l" toName="t,gone"><Label value="A"/><Label value="B"/></Labels>
</View>`)
	require.NoError(t, err)

	var diags diagnostic.Diagnostics

	linker := Linker{Diagnostics: &diags}
	once := linker.Link(p.Controls, p.Objects, p.Labels).Clone()
	onceDiags := diags.Clone()

	twice := linker.Link(p.Controls, p.Objects, p.Labels)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second link changed controls (-once +twice):\n%s", diff)
	}

	assert.Equal(t, onceDiags, diags)
}

func TestNew_CollectsLinkDiagnostics(t *testing.T) {
	c := mustNew(t, `<View>
  <Text name="text" value="$text"/>
  <Choices name="c" toName="missing"><Choice value="A"/></Choices>
</View>`)

	diags := c.Diagnostics()
	assert.Len(t, diags.ByCode(CodeToNameUnresolved), 1)

	ctl, err := c.Control("c")
	require.NoError(t, err)
	assert.Empty(t, ctl.Objects)
}

func TestLink_UnknownControlType(t *testing.T) {
	tests := []struct {
		name    string
		control string
		expect  []string
	}{
		{name: "known type", control: `<Rating name="c" toName="t"/>`},
		{name: "misspelled type", control: `<Choicez name="c" toName="t"/>`, expect: []string{"choices"}},
		{name: "unrelated type", control: `<Widget name="c" toName="t"/>`, expect: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustNew(t, `<View><Text name="t" value="$t"/>`+tt.control+`</View>`)

			diags := c.Diagnostics()
			found := diags.ByCode(CodeUnknownControlType)

			if tt.expect == nil {
				assert.Empty(t, found)
				return
			}

			require.Len(t, found, 1)
			assert.Equal(t, diagnostic.SeverityInfo, found[0].Severity)
			assert.Equal(t, "c", found[0].Tag)

			if len(tt.expect) == 0 {
				assert.Empty(t, found[0].Suggestions)
			} else {
				assert.Equal(t, tt.expect[0], found[0].Suggestions[0])
			}
		})
	}
}
