package editor

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/buildify/internal/build"
	"github.com/alexisbeaulieu97/buildify/internal/catalog"
	"github.com/alexisbeaulieu97/buildify/internal/logger"
	"github.com/alexisbeaulieu97/buildify/internal/store"
	"github.com/alexisbeaulieu97/buildify/internal/templates"
)

type sequentialIDs struct {
	n int
}

func (s *sequentialIDs) NewID(kind string) string {
	s.n++
	return fmt.Sprintf("%s-%d", strings.ToLower(kind), s.n)
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	return newTestModelWithStore(t, store.NewDefault(logger.Nop()))
}

func newTestModelWithStore(t *testing.T, st *store.Store) Model {
	t.Helper()

	cat := catalog.New(catalog.WithIDSource(&sequentialIDs{}))
	gallery, err := templates.NewGallery(cat, logger.Nop())
	require.NoError(t, err)

	return NewModel(Deps{
		Store:   st,
		Catalog: cat,
		Gallery: gallery,
		Builder: build.NewBuilder(t.TempDir(), "com.test", logger.Nop()),
		Logger:  logger.Nop(),
	})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestNewModelInitialisesState(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	require.Equal(t, ModeEdit, m.Mode())
	require.Equal(t, FocusPalette, m.Focus())
	require.False(t, m.Dragging())
	require.Nil(t, m.Init())
	require.Equal(t, "My App", m.State().Document.Name)

	require.NotEmpty(t, m.palette)
	require.Equal(t, "Text", m.palette[0].Kind)
	require.Equal(t, "Button", m.palette[1].Kind)
}

func TestPaletteFollowsCategoryOrder(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	seen := map[string]bool{}
	var order []string
	for _, entry := range m.palette {
		c := string(entry.Category)
		if !seen[c] {
			seen[c] = true
			order = append(order, c)
		}
	}

	var want []string
	for _, c := range m.catalog.Categories() {
		want = append(want, string(c))
	}
	require.Equal(t, want, order)
}

func TestFocusCycles(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, keyOf(tea.KeyTab))
	require.Equal(t, FocusCanvas, m.Focus())
	m = press(t, m, keyOf(tea.KeyTab))
	require.Equal(t, FocusProperties, m.Focus())
	m = press(t, m, keyOf(tea.KeyTab))
	require.Equal(t, FocusPalette, m.Focus())
}

func TestClampCursor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cursor   int
		n        int
		expected int
	}{
		{"empty list", 3, 0, 0},
		{"negative", -1, 4, 0},
		{"in range", 2, 4, 2},
		{"past end", 9, 4, 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, clampCursor(tt.cursor, tt.n))
		})
	}
}
