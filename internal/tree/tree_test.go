package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/buildify/internal/document"
)

func text(id string, props document.Props) document.Node {
	return document.Node{ID: id, Kind: "Text", Category: document.CategoryBasic, Props: props}
}

func container(id string, children ...document.Node) document.Node {
	if children == nil {
		children = []document.Node{}
	}
	return document.Node{ID: id, Kind: "Container", Category: document.CategoryLayout, Props: document.Props{"padding": 16}, Children: children}
}

// fixture builds:
//
//	header
//	post
//	  row
//	    avatar
//	    name
//	  caption
//	footer
func fixture() []document.Node {
	return []document.Node{
		text("header", document.Props{"text": "Feed"}),
		container("post",
			container("row",
				text("avatar", document.Props{"text": "A"}),
				text("name", document.Props{"text": "john", "fontSize": 16, "color": "#000"}),
			),
			text("caption", document.Props{"text": "sunset"}),
		),
		text("footer", document.Props{"text": "bye"}),
	}
}

func sameSlice(a, b []document.Node) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

func topIDs(forest []document.Node) []string {
	ids := make([]string, len(forest))
	for i, node := range forest {
		ids[i] = node.ID
	}
	return ids
}

func TestFindByIDNested(t *testing.T) {
	t.Parallel()

	forest := fixture()
	node, ok := FindByID(forest, "name")
	require.True(t, ok)
	assert.Equal(t, "john", node.Props["text"])

	_, ok = FindByID(forest, "missing")
	assert.False(t, ok)
}

func TestMissingIDIsNoOp(t *testing.T) {
	t.Parallel()

	forest := fixture()

	removed := Remove(forest, "missing")
	assert.True(t, sameSlice(forest, removed))
	assert.Equal(t, fixture(), removed)

	updated := UpdateProps(forest, "missing", document.Props{"text": "x"})
	assert.True(t, sameSlice(forest, updated))
	assert.Equal(t, fixture(), updated)
}

func TestInsertThenFind(t *testing.T) {
	t.Parallel()

	for _, index := range []int{0, 1, 2, 3} {
		forest := fixture()
		fresh := text("fresh", document.Props{"text": "new"})

		result := Insert(forest, fresh, index)

		found, ok := FindByID(result, "fresh")
		require.True(t, ok)
		assert.Equal(t, fresh, found)
		assert.Equal(t, index, IndexOf(result, "fresh"))
		assert.Len(t, forest, 3, "input must not grow")
	}
}

func TestInsertClampsIndex(t *testing.T) {
	t.Parallel()

	forest := fixture()

	low := Insert(forest, text("low", nil), -5)
	assert.Equal(t, []string{"low", "header", "post", "footer"}, topIDs(low))

	high := Insert(forest, text("high", nil), 99)
	assert.Equal(t, []string{"header", "post", "footer", "high"}, topIDs(high))

	appended := Append(nil, text("only", nil))
	assert.Equal(t, []string{"only"}, topIDs(appended))
}

func TestUpdatePropsPartialMerge(t *testing.T) {
	t.Parallel()

	forest := fixture()
	result := UpdateProps(forest, "name", document.Props{"fontSize": 20})

	node, ok := FindByID(result, "name")
	require.True(t, ok)
	assert.Equal(t, document.Props{"text": "john", "fontSize": 20, "color": "#000"}, node.Props)

	original, _ := FindByID(forest, "name")
	assert.Equal(t, 16, original.Props["fontSize"], "input tree must be untouched")
}

func TestUpdatePropsDoesNotAliasCallerValue(t *testing.T) {
	t.Parallel()

	items := []any{"one"}
	result := UpdateProps(fixture(), "caption", document.Props{"items": items})
	items[0] = "mutated"

	node, _ := FindByID(result, "caption")
	assert.Equal(t, []any{"one"}, node.Props["items"])
}

func TestUpdatePropsLeavesSiblingsShared(t *testing.T) {
	t.Parallel()

	forest := fixture()
	result := UpdateProps(forest, "caption", document.Props{"text": "dusk"})

	assert.Equal(t, forest[0], result[0])
	assert.Equal(t, forest[2], result[2])
	assert.True(t, sameSlice(forest[1].Children[0].Children, result[1].Children[0].Children),
		"untouched subtree should be reused")
}

func TestRemoveSubtree(t *testing.T) {
	t.Parallel()

	forest := fixture()
	result := Remove(forest, "post")

	assert.Equal(t, []string{"header", "footer"}, topIDs(result))
	for _, id := range []string{"post", "row", "avatar", "name", "caption"} {
		assert.False(t, Contains(result, id), id)
	}
	assert.True(t, Contains(forest, "avatar"), "input tree must be untouched")
}

func TestRemoveNestedKeepsLeafShape(t *testing.T) {
	t.Parallel()

	result := Remove(fixture(), "avatar")

	row, ok := FindByID(result, "row")
	require.True(t, ok)
	assert.Equal(t, []string{"name"}, topIDs(row.Children))

	header, _ := FindByID(result, "header")
	assert.False(t, header.IsContainer())
}

func TestRemoveLastChildKeepsContainer(t *testing.T) {
	t.Parallel()

	forest := []document.Node{container("box", text("only", nil))}
	result := Remove(forest, "only")

	require.Len(t, result, 1)
	assert.True(t, result[0].IsContainer())
	assert.Empty(t, result[0].Children)
}

func TestRemoveIsIdempotent(t *testing.T) {
	t.Parallel()

	once := Remove(fixture(), "name")
	twice := Remove(once, "name")
	assert.Equal(t, once, twice)
	assert.True(t, sameSlice(once, twice))
}

func TestReorderSiblingsIsPermutation(t *testing.T) {
	t.Parallel()

	forest := fixture()
	order := []document.Node{forest[2], forest[0], forest[1]}

	result := ReorderSiblings(forest, order)

	assert.ElementsMatch(t, topIDs(forest), topIDs(result))
	assert.Equal(t, []string{"footer", "header", "post"}, topIDs(result))

	order[0] = forest[1]
	assert.Equal(t, "footer", result[0].ID, "result must not alias the supplied order")
}

func TestMove(t *testing.T) {
	t.Parallel()

	xyz := []document.Node{text("X", nil), text("Y", nil), text("Z", nil)}

	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{name: "last to first", from: 2, to: 0, want: []string{"Z", "X", "Y"}},
		{name: "first to last", from: 0, to: 2, want: []string{"Y", "Z", "X"}},
		{name: "adjacent", from: 0, to: 1, want: []string{"Y", "X", "Z"}},
		{name: "clamped target", from: 0, to: 10, want: []string{"Y", "Z", "X"}},
		{name: "same position", from: 1, to: 1, want: []string{"X", "Y", "Z"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, topIDs(Move(xyz, tt.from, tt.to)))
			assert.Equal(t, []string{"X", "Y", "Z"}, topIDs(xyz))
		})
	}

	assert.Empty(t, Move(nil, 0, 1))
}

func TestWalkAndIDs(t *testing.T) {
	t.Parallel()

	forest := fixture()
	assert.Equal(t, []string{"header", "post", "row", "avatar", "name", "caption", "footer"}, IDs(forest))

	depths := map[string]int{}
	Walk(forest, func(node document.Node, depth int) bool {
		depths[node.ID] = depth
		return node.ID != "row"
	})
	assert.Equal(t, 1, depths["row"])
	_, visited := depths["avatar"]
	assert.False(t, visited, "returning false skips children")
}
