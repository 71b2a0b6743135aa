package editor

import (
	"github.com/alexisbeaulieu97/buildify/internal/build"
)

// Focus is the pane receiving navigation keys.
type Focus int

const (
	FocusPalette Focus = iota
	FocusCanvas
	FocusProperties
)

func (f Focus) next() Focus {
	return (f + 1) % 3
}

// Mode selects what the editor is currently showing.
type Mode int

const (
	ModeEdit Mode = iota
	ModeTemplates
	ModeInput
)

type inputPurpose int

const (
	inputProperty inputPurpose = iota
	inputRename
)

// BuildCompleteMsg reports a finished placeholder build.
type BuildCompleteMsg struct {
	Result build.Result
}

// BuildErrorMsg reports a failed build.
type BuildErrorMsg struct {
	Err error
}

// SavedMsg reports the size of the saved project.
type SavedMsg struct {
	Bytes int
}

// ErrorMsg surfaces a message in the error banner.
type ErrorMsg struct {
	Message string
}
