package editor

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/buildify/internal/build"
	"github.com/alexisbeaulieu97/buildify/internal/document"
)

// buildCmd runs the placeholder build off the UI goroutine.
func buildCmd(ctx context.Context, builder *build.Builder, doc document.AppDocument, platform document.DeviceType) tea.Cmd {
	return func() tea.Msg {
		result, err := builder.Build(ctx, doc, platform)
		if err != nil {
			return BuildErrorMsg{Err: err}
		}
		return BuildCompleteMsg{Result: result}
	}
}

// saveCmd serialises the document.
func saveCmd(builder *build.Builder, doc document.AppDocument) tea.Cmd {
	return func() tea.Msg {
		data, err := builder.Save(doc)
		if err != nil {
			return ErrorMsg{Message: err.Error()}
		}
		return SavedMsg{Bytes: len(data)}
	}
}
