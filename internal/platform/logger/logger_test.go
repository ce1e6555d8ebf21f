package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        Info,
		"DEBUG":   Debug,
		" warn ":  Warn,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestLogger_TextFormatIsSortedAndFiltered(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Info, Format: FormatText, App: "animals-api", Out: &buf})

	log.Debug("hidden", nil)
	log.Info("request", map[string]any{"status": 200, "method": "GET", " ": "skip"})

	out := strings.TrimSpace(buf.String())
	require.NotEmpty(t, out)
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.HasPrefix(out, "level=info app=animals-api method=GET msg=request status=200 ts="), out)
}

func TestLogger_JSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	base := New(Options{Level: Debug, Format: FormatJSON, Out: &buf})
	log := base.With(map[string]any{"request_id": "abc"})

	log.Warn("slow", map[string]any{"ms": 12})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "slow", entry["msg"])
	assert.Equal(t, "abc", entry["request_id"])
	assert.EqualValues(t, 12, entry["ms"])
}

func TestNop_WritesNothing(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Error("boom", map[string]any{"x": 1})
	})
}
