package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/buildify/internal/catalog"
	"github.com/alexisbeaulieu97/buildify/internal/document"
	"github.com/alexisbeaulieu97/buildify/internal/logger"
	"github.com/alexisbeaulieu97/buildify/internal/templates"
	"github.com/alexisbeaulieu97/buildify/internal/tree"
)

func instantiate(t *testing.T, kind string) document.Node {
	t.Helper()
	node, err := catalog.New().Instantiate(kind)
	require.NoError(t, err)
	return node
}

func TestEveryCatalogKindHasRenderer(t *testing.T) {
	t.Parallel()

	r := New(0)
	for _, entry := range catalog.New().Entries() {
		assert.Contains(t, r.Kinds(), entry.Kind)
		out := r.Render(instantiate(t, entry.Kind), false)
		assert.NotContains(t, out, "Unknown component", entry.Kind)
	}
}

func TestUnknownKindFallsBack(t *testing.T) {
	t.Parallel()

	out := New(30).Render(document.Node{ID: "x", Kind: "Hologram"}, false)
	assert.Contains(t, out, "Unknown component: Hologram")
}

func TestRegisterReplacesKind(t *testing.T) {
	t.Parallel()

	r := New(30)
	r.Register("Text", func(_ *Renderer, node document.Node, _ Context) string {
		return "custom:" + node.ID
	})
	assert.Equal(t, "custom:t1", r.Render(document.Node{ID: "t1", Kind: "Text"}, false))
}

func TestTextWrapsToWidth(t *testing.T) {
	t.Parallel()

	node := document.Node{Kind: "Text", Props: document.Props{"text": "one two three four five six seven eight"}}
	out := New(12).Render(node, false)

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 12)
	}
	assert.Contains(t, out, "three")
}

func TestContainerRendersChildrenOrHint(t *testing.T) {
	t.Parallel()

	r := New(30)
	box := instantiate(t, "Container")
	assert.Contains(t, r.Render(box, false), emptyContainerHint)

	box.Children = []document.Node{{ID: "c", Kind: "Text", Props: document.Props{"text": "inside"}}}
	out := r.Render(box, false)
	assert.Contains(t, out, "inside")
	assert.NotContains(t, out, emptyContainerHint)
}

func TestRowPlacesChildrenSideBySide(t *testing.T) {
	t.Parallel()

	row := document.Node{Kind: "Row", Props: document.Props{"gap": 8}, Children: []document.Node{
		{Kind: "Text", Props: document.Props{"text": "left"}},
		{Kind: "Text", Props: document.Props{"text": "right"}},
	}}
	out := New(30).Render(row, false)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "left")
	assert.Contains(t, lines[0], "right")
}

func TestMediaAutoplayOnlyInPreview(t *testing.T) {
	t.Parallel()

	video := instantiate(t, "Video")
	video.Props["autoPlay"] = true
	r := New(36)

	assert.NotContains(t, r.Render(video, false), "autoplay")
	assert.Contains(t, r.Render(video, true), "autoplay")
}

func TestListAndChart(t *testing.T) {
	t.Parallel()

	r := New(36)
	list := r.Render(instantiate(t, "List"), false)
	assert.Contains(t, list, "• Item 1")
	assert.Contains(t, list, "• Item 3")

	chart := r.Render(instantiate(t, "Chart"), false)
	assert.Contains(t, chart, "Chart (bar)")
	assert.Contains(t, chart, "Apr")
	assert.Contains(t, chart, "█")
}

func TestTemplateChartShowsLabelsAndValues(t *testing.T) {
	t.Parallel()

	gallery, err := templates.NewGallery(catalog.New(), logger.Nop())
	require.NoError(t, err)
	fitness, err := gallery.ByID("fitness-app")
	require.NoError(t, err)
	chart, ok := tree.FindByID(fitness.Config.Screens[0].Components, "progress_chart")
	require.True(t, ok)

	out := New(40).Render(chart, false)
	assert.Contains(t, out, "Chart (bar)")
	for _, label := range []string{"Mon", "Thu", "Sun"} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "90")
	assert.Contains(t, out, "█")
}

func TestStructuredItemsAcceptProps(t *testing.T) {
	t.Parallel()

	node := document.Node{ID: "c", Kind: "Chart", Props: document.Props{
		"data": []any{document.Props{"label": "Jan", "value": 7}},
	}}
	out := New(36).Render(node, false)
	assert.Contains(t, out, "Jan")
	assert.Contains(t, out, "7")

	assert.Equal(t, "Jan", field(document.Props{"label": "Jan"}, "label"))
	assert.Equal(t, 7, fieldNum(map[string]any{"value": 7}, "value"))
	assert.Len(t, list(document.Props{"tabs": []document.Props{{"title": "Home"}}}, "tabs"), 1)
}

func TestTabBarShowsTitles(t *testing.T) {
	t.Parallel()

	out := New(36).Render(instantiate(t, "TabBar"), false)
	for _, title := range []string{"Home", "Search", "Profile"} {
		assert.Contains(t, out, title)
	}
}

func TestDeviceFrame(t *testing.T) {
	t.Parallel()

	r := New(30)
	screen := document.Screen{ID: "s", Name: "Home", Components: []document.Node{
		{ID: "a", Kind: "Text", Props: document.Props{"text": "hello"}},
		{ID: "b", Kind: "Row", Props: document.Props{}, Children: []document.Node{
			{ID: "c", Kind: "Text", Props: document.Props{"text": "nested"}},
		}},
	}}

	ios := r.DeviceFrame(document.DeviceIOS, &screen, true)
	assert.Contains(t, ios, "9:41")
	assert.Contains(t, ios, "hello")
	assert.Contains(t, ios, "iPhone")
	assert.Contains(t, ios, Resolution)
	assert.Regexp(t, `Components:\s+2`, ios)

	android := r.DeviceFrame(document.DeviceAndroid, &screen, false)
	assert.Contains(t, android, "Android Phone")
	assert.Contains(t, android, "◁")
}

func TestDeviceFrameWithoutScreen(t *testing.T) {
	t.Parallel()

	out := New(30).DeviceFrame(document.DeviceAndroid, nil, false)
	assert.Contains(t, out, "No screen selected")
	assert.Regexp(t, `Components:\s+0`, out)
}
