package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
}

func newTestLogger(buf *bytes.Buffer, format Format, lvl Level) *StdLogger {
	l := New(Options{Level: lvl, Format: format, App: "cuaderno", Writer: buf}).(*StdLogger)
	l.now = fixedNow
	return l
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel(" DEBUG "))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Error, ParseLevel("error"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Info, ParseLevel("verbose"))
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("pretty"))
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, FormatJSON, Info)

	l.With(map[string]any{"lesson": "monedas"}).Info("lesson finished", map[string]any{"pesos": 1})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "lesson finished", entry["msg"])
	assert.Equal(t, "cuaderno", entry["app"])
	assert.Equal(t, "monedas", entry["lesson"])
	assert.Equal(t, float64(1), entry["pesos"])
	assert.Equal(t, "2025-12-22T10:00:00Z", entry["ts"])
}

func TestLogger_TextIsSortedAndLevelled(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	l := newTestLogger(&buf, FormatText, Warn)

	l.Info("hidden", nil)
	l.Error("lesson failed", map[string]any{"b": 2, "a": 1, " ": "skip"})

	out := strings.TrimSpace(buf.String())
	assert.Equal(t, "ERROR a=1 app=cuaderno b=2 msg=lesson failed ts=2025-12-22T10:00:00Z", out)
}

func TestLogger_WithDoesNotLeakIntoParent(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, FormatJSON, Debug)

	_ = l.With(map[string]any{"run_id": "x"})
	l.Debug("parent", nil)

	assert.NotContains(t, buf.String(), "run_id")
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { Nop().Error("nothing", nil) })
}
