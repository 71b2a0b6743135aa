package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	buildifyerrors "github.com/alexisbeaulieu97/buildify/pkg/errors"
)

func TestBuildCommandWritesArtifact(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	cfg := writeConfig(t, "output_dir: "+out+"\npackage_prefix: com.example\n")

	stdout, _, err := executeCommand("build", "--config", cfg, "--platform", "ios", "--template", "news-app")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Package:  com.example.newsreader")
	assert.Contains(t, stdout, "Platform: ios")
	assert.FileExists(t, filepath.Join(out, "News Reader.ipa"))
}

func TestBuildCommandDefaultsToConfiguredDevice(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	cfg := writeConfig(t, "output_dir: "+out+"\ndevice: android\n")

	stdout, _, err := executeCommand("build", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Version:  1.0.0")
	assert.FileExists(t, filepath.Join(out, "My App.apk"))
}

func TestBuildCommandRejectsUnknownPlatform(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, "output_dir: "+t.TempDir()+"\n")

	_, _, err := executeCommand("build", "--config", cfg, "--platform", "windows")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing platform")
}

func TestBadConfigIsReported(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, "device: blackberry\n")

	_, _, err := executeCommand("build", "--config", cfg)
	require.Error(t, err)

	var validationErr *buildifyerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "loading config")
}

func TestBuildLogsToStderr(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, "output_dir: "+t.TempDir()+"\nlog_level: warn\n")

	stdout, stderr, err := executeCommand("build", "--config", cfg)
	require.NoError(t, err)
	assert.NotContains(t, stderr, "building app")
	assert.NotContains(t, stdout, "building app")

	_, stderr, err = executeCommand("build", "--config", cfg, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "building app")
	assert.Contains(t, stderr, `"component":"build"`)
}
