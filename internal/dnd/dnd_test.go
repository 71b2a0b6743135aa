package dnd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/buildify/internal/catalog"
	"github.com/alexisbeaulieu97/buildify/internal/document"
	"github.com/alexisbeaulieu97/buildify/internal/logger"
	"github.com/alexisbeaulieu97/buildify/internal/store"
	"github.com/alexisbeaulieu97/buildify/internal/tree"
	buildifyerrors "github.com/alexisbeaulieu97/buildify/pkg/errors"
)

type fixedIDs struct {
	ids []string
	n   int
}

func (f *fixedIDs) NewID(kind string) string {
	if f.n < len(f.ids) {
		id := f.ids[f.n]
		f.n++
		return id
	}
	f.n++
	return fmt.Sprintf("%s-%d", kind, f.n)
}

func leaf(id string) document.Node {
	return document.Node{ID: id, Kind: "Text", Category: document.CategoryBasic, Props: document.Props{"text": id}}
}

func stateWith(nodes ...document.Node) store.State {
	state := store.DefaultState()
	state.Document.Screens[0].Components = nodes
	return state
}

func newResolver(state store.State, ids ...string) (*Resolver, *store.Store) {
	st := store.New(state, logger.Nop())
	cat := catalog.New(catalog.WithIDSource(&fixedIDs{ids: ids}))
	return NewResolver(st, cat, logger.Nop()), st
}

func TestCatalogItemOnCanvasRootAddsComponent(t *testing.T) {
	t.Parallel()

	resolver, st := newResolver(stateWith(), "n1")

	require.NoError(t, resolver.Begin(CatalogItem("Button")))
	intent, err := resolver.Drop(CanvasRoot())
	require.NoError(t, err)

	add, ok := intent.(store.AddComponent)
	require.True(t, ok)
	assert.Equal(t, "home-screen", add.ScreenID)
	assert.Nil(t, add.Index)

	screen, ok := st.CurrentScreen()
	require.True(t, ok)
	require.Len(t, screen.Components, 1)
	button := screen.Components[0]
	assert.Equal(t, "n1", button.ID)
	assert.Equal(t, "Button", button.Kind)
	assert.Equal(t, "Click Me", button.Props["text"])
	assert.Nil(t, button.Children)

	_, dragging := resolver.Active()
	assert.False(t, dragging)
}

func TestTreeNodeOnTreeNodeReorders(t *testing.T) {
	t.Parallel()

	resolver, st := newResolver(stateWith(leaf("X"), leaf("Y"), leaf("Z")))

	require.NoError(t, resolver.Begin(TreeNode("Z")))
	intent, err := resolver.Drop(OnNode("X"))
	require.NoError(t, err)
	require.IsType(t, store.ReorderComponents{}, intent)

	screen, _ := st.CurrentScreen()
	assert.Equal(t, []string{"Z", "X", "Y"}, tree.IDs(screen.Components))
}

func TestResolveNoOpGestures(t *testing.T) {
	t.Parallel()

	state := stateWith(leaf("X"), leaf("Y"))
	cat := catalog.New()

	tests := []struct {
		name   string
		source Source
		target Target
	}{
		{name: "same node", source: TreeNode("X"), target: OnNode("X")},
		{name: "no target", source: TreeNode("X"), target: NoTarget()},
		{name: "missing target node", source: TreeNode("X"), target: OnNode("ghost")},
		{name: "missing source node", source: TreeNode("ghost"), target: OnNode("X")},
		{name: "tree node on canvas root", source: TreeNode("X"), target: CanvasRoot()},
		{name: "catalog item on node", source: CatalogItem("Button"), target: OnNode("X")},
		{name: "catalog item dropped outside", source: CatalogItem("Button"), target: NoTarget()},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			intent, err := Resolve(state, tt.source, tt.target, cat)
			require.NoError(t, err)
			assert.Nil(t, intent)
		})
	}
}

func TestResolveNestedNodeDoesNotReorder(t *testing.T) {
	t.Parallel()

	box := document.Node{ID: "box", Kind: "Container", Category: document.CategoryLayout, Props: document.Props{}, Children: []document.Node{leaf("inner")}}
	intent, err := Resolve(stateWith(box, leaf("X")), TreeNode("inner"), OnNode("X"), catalog.New())
	require.NoError(t, err)
	assert.Nil(t, intent)
}

func TestResolveWithoutScreenDoesNothing(t *testing.T) {
	t.Parallel()

	state := store.Reduce(store.DefaultState(), store.ReplaceDocument{Document: document.AppDocument{ID: "empty"}})
	intent, err := Resolve(state, CatalogItem("Button"), CanvasRoot(), catalog.New())
	require.NoError(t, err)
	assert.Nil(t, intent)
}

func TestUnknownKindSurfacesNotFound(t *testing.T) {
	t.Parallel()

	resolver, st := newResolver(stateWith())
	before := st.State()

	require.NoError(t, resolver.Begin(CatalogItem("Hologram")))
	intent, err := resolver.Drop(CanvasRoot())
	require.Error(t, err)
	assert.True(t, buildifyerrors.IsNotFound(err))
	assert.Nil(t, intent)
	assert.Equal(t, before, st.State())

	_, dragging := resolver.Active()
	assert.False(t, dragging)
}

func TestGeneratedIDCollisionIsRetried(t *testing.T) {
	t.Parallel()

	resolver, st := newResolver(stateWith(leaf("taken")), "taken", "fresh")

	require.NoError(t, resolver.Begin(CatalogItem("Text")))
	_, err := resolver.Drop(CanvasRoot())
	require.NoError(t, err)

	screen, _ := st.CurrentScreen()
	assert.Equal(t, []string{"taken", "fresh"}, tree.IDs(screen.Components))
}

func TestResolverStateMachine(t *testing.T) {
	t.Parallel()

	resolver, st := newResolver(stateWith(leaf("X"), leaf("Y")))

	_, err := resolver.Drop(CanvasRoot())
	assert.ErrorIs(t, err, ErrNotDragging)

	require.NoError(t, resolver.Begin(TreeNode("X")))
	assert.ErrorIs(t, resolver.Begin(TreeNode("Y")), ErrAlreadyDragging)

	src, dragging := resolver.Active()
	assert.True(t, dragging)
	assert.Equal(t, TreeNode("X"), src)

	before := st.State()
	resolver.Cancel()
	_, dragging = resolver.Active()
	assert.False(t, dragging)
	assert.Equal(t, before, st.State())

	require.NoError(t, resolver.Begin(TreeNode("Y")))
	intent, err := resolver.Drop(NoTarget())
	require.NoError(t, err)
	assert.Nil(t, intent)
}
