package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickorder/internal/intent"
)

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestModelReparsesOnEveryKey(t *testing.T) {
	m := New(intent.Default(), intent.DefaultPreviewThreshold)

	m = typeText(t, m, "1k")
	assert.Equal(t, 1000, m.Order().QuantityValue())
	assert.Equal(t, 25, m.Order().MatchPercentage)

	m = typeText(t, m, " instagram followers @me")
	assert.Equal(t, intent.Instagram, m.Order().Platform)
	assert.Equal(t, intent.Followers, m.Order().ServiceType)
	assert.Equal(t, "@me", m.Order().Target)
	assert.Equal(t, 100, m.Order().MatchPercentage)
}

func TestModelBackspace(t *testing.T) {
	m := typeText(t, New(intent.Default(), intent.DefaultPreviewThreshold), "5k")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(Model)
	assert.Equal(t, 5, m.Order().QuantityValue())
}

func TestModelQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := New(intent.Default(), intent.DefaultPreviewThreshold)
		_, cmd := m.Update(key)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestModelView(t *testing.T) {
	m := typeText(t, New(intent.Default(), intent.DefaultPreviewThreshold), "2.5m youtube views")
	view := m.View()

	assert.Contains(t, view, "Quick order")
	assert.Contains(t, view, "2500000")
	assert.Contains(t, view, "YouTube")
	assert.Contains(t, view, "Views")
	assert.Contains(t, view, "82%")
	assert.Contains(t, view, "ready")
	assert.Contains(t, view, "missing")
}

func TestMatchBar(t *testing.T) {
	tests := []struct {
		pct    int
		filled int
	}{
		{0, 0},
		{18, 3},
		{50, 10},
		{100, 20},
		{150, 20},
	}
	for _, tt := range tests {
		bar := matchBar(tt.pct)
		assert.Equal(t, tt.filled, strings.Count(bar, "█"), "pct %d", tt.pct)
		assert.Equal(t, barWidth-tt.filled, strings.Count(bar, "░"), "pct %d", tt.pct)
	}
}
