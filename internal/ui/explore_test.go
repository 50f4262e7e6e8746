package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoLookup(calls *[]string) LookupFunc {
	return func(q string) Snapshot {
		*calls = append(*calls, q)
		return Snapshot{Suggestions: []string{q + "汤"}, Intent: "general (0.50)"}
	}
}

func typeRunes(m *exploreModel, s string) {
	for _, r := range s {
		_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestExploreModel_TypingRefreshesSnapshot(t *testing.T) {
	// Given: an explorer with a recording lookup
	var calls []string
	m := newExploreModel(echoLookup(&calls), nil, NoColorStyles())

	// When: typing two characters
	typeRunes(m, "牛肉")

	// Then: lookup ran per keystroke and the view shows the last result
	assert.Equal(t, []string{"牛", "牛肉"}, calls)
	assert.Equal(t, "牛肉", m.snapshot.Query)
	assert.Contains(t, m.View(), "牛肉汤")
}

func TestExploreModel_ClearingInputResetsSnapshot(t *testing.T) {
	// Given: an explorer with one typed character
	var calls []string
	m := newExploreModel(echoLookup(&calls), nil, NoColorStyles())
	typeRunes(m, "鱼")

	// When: deleting it
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	// Then: snapshot is empty and no extra lookup ran
	assert.Equal(t, Snapshot{}, m.snapshot)
	assert.Len(t, calls, 1)
}

func TestExploreModel_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		t.Run(key.String(), func(t *testing.T) {
			m := newExploreModel(nil, nil, NoColorStyles())

			_, cmd := m.Update(tea.KeyMsg{Type: key})

			require.NotNil(t, cmd)
			assert.True(t, m.quitting)
			assert.Empty(t, m.View())
		})
	}
}

func TestExploreModel_WarmingUntilReady(t *testing.T) {
	// Given: tokenizers that are not ready yet
	ready := false
	var calls []string
	m := newExploreModel(echoLookup(&calls), func() bool { return ready }, NoColorStyles())
	require.True(t, m.warming)
	assert.Contains(t, m.View(), "loading tokenizers")

	// When: a poll tick arrives before they are ready
	_, cmd := m.Update(readyTickMsg(time.Now()))

	// Then: polling continues
	assert.NotNil(t, cmd)
	assert.True(t, m.warming)

	// When: they become ready with a query typed
	typeRunes(m, "面")
	ready = true
	_, cmd = m.Update(readyTickMsg(time.Now()))

	// Then: polling stops and the query is looked up again
	assert.Nil(t, cmd)
	assert.False(t, m.warming)
	assert.Equal(t, []string{"面", "面"}, calls)
	assert.NotContains(t, m.View(), "loading tokenizers")
}

func TestExploreModel_WindowSize(t *testing.T) {
	m := newExploreModel(nil, nil, NoColorStyles())

	_, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, 100, m.width)
	assert.Equal(t, 92, m.input.Width)
}

func TestRunExplorer_PlainReadsLines(t *testing.T) {
	// Given: a non-interactive config with two queries and a blank line
	var out bytes.Buffer
	cfg := NewConfig(&out, WithNoColor(true), WithInput(strings.NewReader("牛肉\n\n鱼\n")))
	var calls []string

	// When: running the explorer
	err := RunExplorer(context.Background(), cfg, echoLookup(&calls), nil)

	// Then: each non-blank line is looked up and printed
	require.NoError(t, err)
	assert.Equal(t, []string{"牛肉", "鱼"}, calls)
	assert.Contains(t, out.String(), "> 牛肉\n")
	assert.Contains(t, out.String(), "牛肉汤")
	assert.Contains(t, out.String(), "> 鱼\n")
}

func TestRunExplorer_PlainStopsOnCancel(t *testing.T) {
	// Given: a cancelled context
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := NewConfig(&bytes.Buffer{}, WithInput(strings.NewReader("牛肉\n")))

	// When: running the explorer
	err := RunExplorer(ctx, cfg, func(string) Snapshot { return Snapshot{} }, nil)

	// Then: the context error is returned
	assert.ErrorIs(t, err, context.Canceled)
}
