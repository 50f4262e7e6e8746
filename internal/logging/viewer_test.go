package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = `{"time":"2026-03-01T10:00:00.000Z","level":"INFO","msg":"tokenizer_ready","tokenizer":"gse"}
{"time":"2026-03-01T10:00:01.000Z","level":"DEBUG","msg":"language_fallback","requested":"xx","fallback":"en"}
not json at all
{"time":"2026-03-01T10:00:02.500Z","level":"WARN","msg":"tokenizer_init_failed","tokenizer":"kagome"}
`

func writeLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "foodindex.log")
	require.NoError(t, os.WriteFile(path, []byte(sampleLog), 0o644))
	return path
}

func msgs(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		if e.Valid {
			out[i] = e.Msg
		} else {
			out[i] = e.Raw
		}
	}
	return out
}

func TestViewer_Tail(t *testing.T) {
	path := writeLog(t)

	tests := []struct {
		name string
		cfg  ViewerConfig
		n    int
		want []string
	}{
		{"all lines", ViewerConfig{}, 50, []string{"tokenizer_ready", "language_fallback", "not json at all", "tokenizer_init_failed"}},
		{"last two", ViewerConfig{}, 2, []string{"not json at all", "tokenizer_init_failed"}},
		{"level filter keeps raw lines", ViewerConfig{Level: "info"}, 50, []string{"tokenizer_ready", "not json at all", "tokenizer_init_failed"}},
		{"pattern", ViewerConfig{Pattern: regexp.MustCompile(`tokenizer_`)}, 50, []string{"tokenizer_ready", "tokenizer_init_failed"}},
		{"zero lines", ViewerConfig{}, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a viewer with the filter
			v := NewViewer(tt.cfg, &bytes.Buffer{})

			// When: tailing the file
			entries, err := v.Tail(path, tt.n)

			// Then: the expected entries remain, oldest first
			require.NoError(t, err)
			if tt.want == nil {
				assert.Empty(t, entries)
				return
			}
			assert.Equal(t, tt.want, msgs(entries))
		})
	}
}

func TestViewer_TailMissingFile(t *testing.T) {
	v := NewViewer(ViewerConfig{}, &bytes.Buffer{})

	_, err := v.Tail(filepath.Join(t.TempDir(), "missing.log"), 10)

	assert.Error(t, err)
}

func TestViewer_FormatAndPrint(t *testing.T) {
	// Given: a no-color viewer over the sample log
	buf := &bytes.Buffer{}
	v := NewViewer(ViewerConfig{NoColor: true}, buf)
	entries, err := v.Tail(writeLog(t), 50)
	require.NoError(t, err)

	// When: printing
	v.Print(entries)

	// Then: attributes are sorted and invalid lines pass through
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "DEBUG language_fallback fallback=en requested=xx", lines[1][13:])
	assert.Equal(t, "not json at all", lines[2])
	assert.Contains(t, lines[3], "WARN  tokenizer_init_failed tokenizer=kagome")
}

func TestParseLine(t *testing.T) {
	e := ParseLine(`{"time":"2026-03-01T10:00:02.500Z","level":"ERROR","msg":"boom","code":"ERR_303"}`)

	assert.True(t, e.Valid)
	assert.Equal(t, "ERROR", e.Level)
	assert.Equal(t, "boom", e.Msg)
	assert.Equal(t, map[string]any{"code": "ERR_303"}, e.Attrs)
	assert.Equal(t, 2026, e.Time.Year())

	assert.False(t, ParseLine("[1,2]").Valid)
}
