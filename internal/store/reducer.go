package store

import (
	"github.com/alexisbeaulieu97/buildify/internal/document"
	"github.com/alexisbeaulieu97/buildify/internal/tree"
)

// State is the complete editor state. SelectedComponentID is "" when
// nothing is selected.
type State struct {
	Document            document.AppDocument
	SelectedScreenID    string
	SelectedComponentID string
	Device              document.DeviceType
	PreviewMode         bool
}

// DefaultState is the state every editor session starts in.
func DefaultState() State {
	doc := document.Default()
	return State{
		Document:         doc,
		SelectedScreenID: doc.FirstScreenID(),
		Device:           document.DeviceAndroid,
	}
}

// CurrentScreen returns the selected screen, if it exists.
func (s State) CurrentScreen() (document.Screen, bool) {
	screen, _, ok := s.Document.Screen(s.SelectedScreenID)
	return screen, ok
}

// SelectedComponent returns the selected node, searching every screen.
func (s State) SelectedComponent() (document.Node, bool) {
	if s.SelectedComponentID == "" {
		return document.Node{}, false
	}
	return s.findNode(s.SelectedComponentID)
}

func (s State) findNode(id string) (document.Node, bool) {
	for _, screen := range s.Document.Screens {
		if node, ok := tree.FindByID(screen.Components, id); ok {
			return node, true
		}
	}
	return document.Node{}, false
}

// Reduce computes the state that follows applying intent to s. It never
// mutates s; intents it does not recognise return s unchanged.
func Reduce(s State, intent Intent) State {
	switch in := intent.(type) {
	case ReplaceDocument:
		s.Document = in.Document
		s.SelectedScreenID = in.Document.FirstScreenID()
		s.SelectedComponentID = ""
		return s

	case SelectScreen:
		s.SelectedScreenID = in.ScreenID
		s.SelectedComponentID = ""
		return s

	case SelectComponent:
		if in.ComponentID != "" {
			if _, ok := s.findNode(in.ComponentID); !ok {
				return s
			}
		}
		s.SelectedComponentID = in.ComponentID
		return s

	case SetDeviceType:
		s.Device = in.Device
		return s

	case TogglePreviewMode:
		s.PreviewMode = !s.PreviewMode
		return s

	case AddComponent:
		s.Document = withScreen(s.Document, in.ScreenID, func(nodes []document.Node) []document.Node {
			if in.Index == nil {
				return tree.Append(nodes, in.Node)
			}
			return tree.Insert(nodes, in.Node, *in.Index)
		})
		return s

	case UpdateComponentProps:
		s.Document = withEveryScreen(s.Document, func(nodes []document.Node) []document.Node {
			return tree.UpdateProps(nodes, in.ComponentID, in.Props)
		})
		return s

	case RemoveComponent:
		s.Document = withEveryScreen(s.Document, func(nodes []document.Node) []document.Node {
			return tree.Remove(nodes, in.ComponentID)
		})
		if s.SelectedComponentID != "" {
			if _, ok := s.findNode(s.SelectedComponentID); !ok {
				s.SelectedComponentID = ""
			}
		}
		return s

	case ReorderComponents:
		s.Document = withScreen(s.Document, in.ScreenID, func(nodes []document.Node) []document.Node {
			return tree.ReorderSiblings(nodes, in.Order)
		})
		return s

	case RenameApp:
		s.Document.Name = in.Name
		return s

	default:
		return s
	}
}

// withScreen rewrites one screen's forest. The screens slice is only copied
// when the forest actually changes.
func withScreen(doc document.AppDocument, screenID string, fn func([]document.Node) []document.Node) document.AppDocument {
	_, idx, ok := doc.Screen(screenID)
	if !ok {
		return doc
	}
	return replaceForest(doc, idx, fn(doc.Screens[idx].Components))
}

func withEveryScreen(doc document.AppDocument, fn func([]document.Node) []document.Node) document.AppDocument {
	for i := range doc.Screens {
		doc = replaceForest(doc, i, fn(doc.Screens[i].Components))
	}
	return doc
}

func replaceForest(doc document.AppDocument, idx int, forest []document.Node) document.AppDocument {
	if sameForest(doc.Screens[idx].Components, forest) {
		return doc
	}
	screens := make([]document.Screen, len(doc.Screens))
	copy(screens, doc.Screens)
	screens[idx].Components = forest
	doc.Screens = screens
	return doc
}

func sameForest(a, b []document.Node) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return (a == nil) == (b == nil)
	}
	return &a[0] == &b[0]
}
