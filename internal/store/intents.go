package store

import (
	"github.com/alexisbeaulieu97/buildify/internal/document"
)

// Intent is a named request to change the editor state.
type Intent interface {
	IntentName() string
	isIntent()
}

// ReplaceDocument swaps in a whole new document, e.g. when applying a template.
type ReplaceDocument struct {
	Document document.AppDocument
}

// SelectScreen makes ScreenID the current screen and clears the selection.
type SelectScreen struct {
	ScreenID string
}

// SelectComponent selects a node; an empty ComponentID clears the selection.
type SelectComponent struct {
	ComponentID string
}

// SetDeviceType switches the preview device.
type SetDeviceType struct {
	Device document.DeviceType
}

// TogglePreviewMode flips preview mode.
type TogglePreviewMode struct{}

// AddComponent inserts Node into the top level of a screen. A nil Index appends.
type AddComponent struct {
	ScreenID string
	Node     document.Node
	Index    *int
}

// UpdateComponentProps shallow-merges Props into the node with ComponentID.
type UpdateComponentProps struct {
	ComponentID string
	Props       document.Props
}

// RemoveComponent deletes a node and its subtree.
type RemoveComponent struct {
	ComponentID string
}

// ReorderComponents replaces a screen's top level with Order.
type ReorderComponents struct {
	ScreenID string
	Order    []document.Node
}

// RenameApp changes the document name without touching screens or selection.
type RenameApp struct {
	Name string
}

// At returns a pointer suitable for AddComponent.Index.
func At(index int) *int {
	return &index
}

func (ReplaceDocument) IntentName() string      { return "ReplaceDocument" }
func (SelectScreen) IntentName() string         { return "SelectScreen" }
func (SelectComponent) IntentName() string      { return "SelectComponent" }
func (SetDeviceType) IntentName() string        { return "SetDeviceType" }
func (TogglePreviewMode) IntentName() string    { return "TogglePreviewMode" }
func (AddComponent) IntentName() string         { return "AddComponent" }
func (UpdateComponentProps) IntentName() string { return "UpdateComponentProps" }
func (RemoveComponent) IntentName() string      { return "RemoveComponent" }
func (ReorderComponents) IntentName() string    { return "ReorderComponents" }
func (RenameApp) IntentName() string            { return "RenameApp" }

func (ReplaceDocument) isIntent()      {}
func (SelectScreen) isIntent()         {}
func (SelectComponent) isIntent()      {}
func (SetDeviceType) isIntent()        {}
func (TogglePreviewMode) isIntent()    {}
func (AddComponent) isIntent()         {}
func (UpdateComponentProps) isIntent() {}
func (RemoveComponent) isIntent()      {}
func (ReorderComponents) isIntent()    {}
func (RenameApp) isIntent()            {}
