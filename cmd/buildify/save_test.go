package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/buildify/internal/document"
	buildifyerrors "github.com/alexisbeaulieu97/buildify/pkg/errors"
)

func TestSaveCommandPrintsJSON(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand("save")
	require.NoError(t, err)

	var doc document.AppDocument
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, "default-app", doc.ID)
	assert.Equal(t, "My App", doc.Name)
}

// Not parallel: swaps the package-level clipboard writer.
func TestSaveCommandCopiesToClipboard(t *testing.T) {
	original := writeClipboard
	t.Cleanup(func() { writeClipboard = original })

	var copied string
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}

	stdout, _, err := executeCommand("save", "--template", "e-commerce-app", "--clipboard")
	require.NoError(t, err)
	assert.Contains(t, copied, `"id": "e-commerce-template"`)
	assert.Contains(t, stdout, copied)

	writeClipboard = func(string) error { return errors.New("no clipboard utility") }
	_, _, err = executeCommand("save", "--clipboard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copying to clipboard")
}

func TestLoadCommandIsNotImplemented(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand("load")
	require.Error(t, err)
	assert.ErrorIs(t, err, buildifyerrors.ErrNotImplemented)
	assert.Contains(t, err.Error(), "coming soon")
}
