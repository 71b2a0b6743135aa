package catalog

import (
	"time"

	"github.com/alexisbeaulieu97/buildify/internal/document"
)

// Entry is a component template the palette can instantiate.
type Entry struct {
	Kind      string
	Name      string
	Icon      string
	Category  document.Category
	Props     document.Props
	Container bool

	// prepare fills props that depend on instantiation time.
	prepare func(props document.Props, now time.Time)
}

// Version identifies the revision of the built-in entry list.
const Version = "1"

func defaultEntries() []Entry {
	return []Entry{
		{
			Kind: "Text", Name: "Text", Icon: "Type", Category: document.CategoryBasic,
			Props: document.Props{
				"text":       "Sample Text",
				"fontSize":   16,
				"color":      "#000000",
				"fontWeight": "normal",
				"textAlign":  "left",
			},
		},
		{
			Kind: "Button", Name: "Button", Icon: "MousePointer", Category: document.CategoryBasic,
			Props: document.Props{
				"text":            "Click Me",
				"backgroundColor": "#3b82f6",
				"textColor":       "#ffffff",
				"borderRadius":    8,
				"padding":         12,
				"fontSize":        16,
			},
		},
		{
			Kind: "Image", Name: "Image", Icon: "Image", Category: document.CategoryMedia,
			Props: document.Props{
				"src":          "/placeholder-image.jpg",
				"alt":          "Placeholder",
				"width":        200,
				"height":       200,
				"borderRadius": 0,
			},
		},
		{
			Kind: "Input", Name: "Text Input", Icon: "AlignLeft", Category: document.CategoryForm,
			Props: document.Props{
				"placeholder":     "Enter text...",
				"type":            "text",
				"borderColor":     "#d1d5db",
				"backgroundColor": "#ffffff",
				"padding":         12,
				"borderRadius":    8,
			},
		},
		{
			Kind: "Container", Name: "Container", Icon: "Square", Category: document.CategoryLayout, Container: true,
			Props: document.Props{
				"backgroundColor": "#f9fafb",
				"padding":         16,
				"margin":          8,
				"borderRadius":    8,
				"borderColor":     "#e5e7eb",
				"borderWidth":     1,
			},
		},
		{
			Kind: "Row", Name: "Row Layout", Icon: "Layout", Category: document.CategoryLayout, Container: true,
			Props: document.Props{
				"justifyContent": "flex-start",
				"alignItems":     "center",
				"gap":            8,
				"padding":        8,
			},
		},
		{
			Kind: "Column", Name: "Column Layout", Icon: "Grid", Category: document.CategoryLayout, Container: true,
			Props: document.Props{
				"justifyContent": "flex-start",
				"alignItems":     "stretch",
				"gap":            8,
				"padding":        8,
			},
		},
		{
			Kind: "List", Name: "List View", Icon: "List", Category: document.CategoryLayout,
			Props: document.Props{
				"items":      []any{"Item 1", "Item 2", "Item 3"},
				"itemHeight": 60,
				"separator":  true,
				"padding":    8,
			},
		},
		{
			Kind: "Checkbox", Name: "Checkbox", Icon: "Square", Category: document.CategoryForm,
			Props: document.Props{
				"label":   "Check this option",
				"checked": false,
				"color":   "#3b82f6",
			},
		},
		{
			Kind: "Switch", Name: "Switch", Icon: "Settings", Category: document.CategoryForm,
			Props: document.Props{
				"label":   "Enable feature",
				"enabled": false,
				"color":   "#3b82f6",
			},
		},
		{
			Kind: "Video", Name: "Video Player", Icon: "Video", Category: document.CategoryMedia,
			Props: document.Props{
				"src":      "/sample-video.mp4",
				"poster":   "/video-thumbnail.jpg",
				"controls": true,
				"autoPlay": false,
				"width":    300,
				"height":   200,
			},
		},
		{
			Kind: "Audio", Name: "Audio Player", Icon: "Music", Category: document.CategoryMedia,
			Props: document.Props{
				"src":      "/sample-audio.mp3",
				"controls": true,
				"autoPlay": false,
			},
		},
		{
			Kind: "Camera", Name: "Camera View", Icon: "Camera", Category: document.CategoryMedia,
			Props: document.Props{
				"facing":       "back",
				"width":        300,
				"height":       200,
				"borderRadius": 8,
			},
		},
		{
			Kind: "NavigationBar", Name: "Navigation Bar", Icon: "Navigation", Category: document.CategoryNavigation,
			Props: document.Props{
				"title":           "App Title",
				"backgroundColor": "#3b82f6",
				"textColor":       "#ffffff",
				"showBackButton":  false,
				"height":          56,
			},
		},
		{
			Kind: "TabBar", Name: "Tab Bar", Icon: "Menu", Category: document.CategoryNavigation,
			Props: document.Props{
				"tabs": []any{
					map[string]any{"id": "home", "title": "Home", "icon": "home"},
					map[string]any{"id": "search", "title": "Search", "icon": "search"},
					map[string]any{"id": "profile", "title": "Profile", "icon": "user"},
				},
				"activeTab":       "home",
				"backgroundColor": "#ffffff",
				"activeColor":     "#3b82f6",
				"inactiveColor":   "#6b7280",
			},
		},
		{
			Kind: "Chart", Name: "Chart", Icon: "BarChart3", Category: document.CategoryAdvanced,
			Props: document.Props{
				"type": "bar",
				"data": []any{
					map[string]any{"label": "Jan", "value": 30},
					map[string]any{"label": "Feb", "value": 45},
					map[string]any{"label": "Mar", "value": 25},
					map[string]any{"label": "Apr", "value": 60},
				},
				"width":        300,
				"height":       200,
				"primaryColor": "#3b82f6",
			},
		},
		{
			Kind: "Calendar", Name: "Calendar", Icon: "Calendar", Category: document.CategoryAdvanced,
			Props: document.Props{
				"selectedDate":   "",
				"highlightToday": true,
				"primaryColor":   "#3b82f6",
			},
			prepare: func(props document.Props, now time.Time) {
				props["selectedDate"] = now.Format(time.DateOnly)
			},
		},
		{
			Kind: "Map", Name: "Map View", Icon: "MapPin", Category: document.CategoryAdvanced,
			Props: document.Props{
				"latitude":    40.7128,
				"longitude":   -74.0060,
				"zoom":        12,
				"width":       300,
				"height":      200,
				"showMarkers": true,
			},
		},
	}
}
