package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Level
		wantErr bool
	}{
		{in: "", want: log.InfoLevel},
		{in: "debug", want: log.DebugLevel},
		{in: " WARN ", want: log.WarnLevel},
		{in: "error", want: log.ErrorLevel},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormatter(t *testing.T) {
	for in, want := range map[string]log.Formatter{
		"":       log.TextFormatter,
		"text":   log.TextFormatter,
		"JSON":   log.JSONFormatter,
		"logfmt": log.LogfmtFormatter,
	} {
		got, err := ParseFormatter(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormatter("xml")
	assert.Error(t, err)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&buf, Options{Level: "debug", Format: "json", Prefix: "lsconfig"})
	require.NoError(t, err)

	logger.Debug("linked", "controls", 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "linked", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.EqualValues(t, 2, entry["controls"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&buf, DefaultOptions())
	require.NoError(t, err)

	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger.Info("shown")
	assert.Contains(t, buf.String(), "shown")

	_, err = New(&buf, Options{Level: "verbose"})
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Error("nothing") })
}
