// Package dnd turns drag gestures into store intents. A gesture starts on a
// source (a catalog item or a node already on the canvas) and ends on a
// target; Resolve decides what, if anything, that gesture means.
package dnd

import (
	"fmt"

	"github.com/alexisbeaulieu97/buildify/internal/document"
	"github.com/alexisbeaulieu97/buildify/internal/store"
	"github.com/alexisbeaulieu97/buildify/internal/tree"
)

// SourceKind identifies what is being dragged.
type SourceKind int

const (
	SourceCatalogItem SourceKind = iota + 1
	SourceTreeNode
)

func (k SourceKind) String() string {
	switch k {
	case SourceCatalogItem:
		return "catalog-item"
	case SourceTreeNode:
		return "tree-node"
	default:
		return "unknown"
	}
}

// Source is the thing picked up at the start of a drag.
type Source struct {
	Kind SourceKind
	// ComponentKind is set for catalog items.
	ComponentKind string
	// NodeID is set for tree nodes.
	NodeID string
}

// CatalogItem is a drag source for a palette entry.
func CatalogItem(kind string) Source {
	return Source{Kind: SourceCatalogItem, ComponentKind: kind}
}

// TreeNode is a drag source for a node already placed on a screen.
func TreeNode(id string) Source {
	return Source{Kind: SourceTreeNode, NodeID: id}
}

func (s Source) String() string {
	if s.Kind == SourceCatalogItem {
		return fmt.Sprintf("%s(%s)", s.Kind, s.ComponentKind)
	}
	return fmt.Sprintf("%s(%s)", s.Kind, s.NodeID)
}

// TargetKind identifies where a drag ended.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetCanvasRoot
	TargetNode
)

// Target is the drop location. The zero value means the drag ended outside
// any drop zone.
type Target struct {
	Kind   TargetKind
	NodeID string
}

// CanvasRoot is the top-level drop zone of the current screen.
func CanvasRoot() Target { return Target{Kind: TargetCanvasRoot} }

// OnNode targets a node on the current screen.
func OnNode(id string) Target { return Target{Kind: TargetNode, NodeID: id} }

// NoTarget is a drop outside every zone.
func NoTarget() Target { return Target{} }

func (t Target) String() string {
	switch t.Kind {
	case TargetCanvasRoot:
		return "canvas-root"
	case TargetNode:
		return "tree-node(" + t.NodeID + ")"
	default:
		return "none"
	}
}

// Instantiator creates fresh nodes for catalog kinds.
type Instantiator interface {
	Instantiate(kind string) (document.Node, error)
}

// maxInstantiateAttempts bounds retries when a generated id collides with a
// node already in the document.
const maxInstantiateAttempts = 3

// Resolve maps a completed gesture to at most one intent. A nil intent with
// a nil error means the gesture does nothing. The only error returned is the
// one produced by instantiating an unknown catalog kind.
func Resolve(state store.State, src Source, target Target, catalog Instantiator) (store.Intent, error) {
	switch {
	case src.Kind == SourceCatalogItem && target.Kind == TargetCanvasRoot:
		return resolveAdd(state, src.ComponentKind, catalog)
	case src.Kind == SourceTreeNode && target.Kind == TargetNode:
		return resolveReorder(state, src.NodeID, target.NodeID), nil
	default:
		return nil, nil
	}
}

func resolveAdd(state store.State, kind string, catalog Instantiator) (store.Intent, error) {
	if _, ok := state.CurrentScreen(); !ok {
		return nil, nil
	}

	for attempt := 0; attempt < maxInstantiateAttempts; attempt++ {
		node, err := catalog.Instantiate(kind)
		if err != nil {
			return nil, err
		}
		if documentHasID(state.Document, node.ID) {
			continue
		}
		return store.AddComponent{ScreenID: state.SelectedScreenID, Node: node}, nil
	}
	return nil, fmt.Errorf("instantiate %s: could not generate a unique id", kind)
}

func resolveReorder(state store.State, activeID, overID string) store.Intent {
	if activeID == "" || activeID == overID {
		return nil
	}
	screen, ok := state.CurrentScreen()
	if !ok {
		return nil
	}

	from := tree.IndexOf(screen.Components, activeID)
	to := tree.IndexOf(screen.Components, overID)
	if from < 0 || to < 0 || from == to {
		return nil
	}
	return store.ReorderComponents{
		ScreenID: screen.ID,
		Order:    tree.Move(screen.Components, from, to),
	}
}

func documentHasID(doc document.AppDocument, id string) bool {
	for _, screen := range doc.Screens {
		if tree.Contains(screen.Components, id) {
			return true
		}
	}
	return false
}
