// Package build holds the placeholder build, save and load actions offered
// from the toolbar. Nothing here compiles a real app.
package build

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/buildify/internal/config"
	"github.com/alexisbeaulieu97/buildify/internal/document"
	"github.com/alexisbeaulieu97/buildify/internal/logger"
	buildifyerrors "github.com/alexisbeaulieu97/buildify/pkg/errors"
)

// DefaultVersion is the version stamped on every placeholder build.
const DefaultVersion = "1.0.0"

// placeholderContents is written to every build artifact.
const placeholderContents = "Mock build file"

// Config describes one placeholder build.
type Config struct {
	AppName      string `json:"appName" validate:"required,excludesall=/\\"`
	PackageName  string `json:"packageName" validate:"required,package_name"`
	Version      string `json:"version" validate:"required,semver"`
	Platform     string `json:"platform" validate:"required,device_type"`
	OutputFormat string `json:"outputFormat" validate:"required,oneof=apk ipa"`
}

// FileName is the artifact name, <AppName>.<OutputFormat>.
func (c Config) FileName() string {
	return c.AppName + "." + c.OutputFormat
}

// ConfigFor derives the build configuration of doc for platform.
func ConfigFor(doc document.AppDocument, platform document.DeviceType, packagePrefix string) Config {
	format := "apk"
	if platform == document.DeviceIOS {
		format = "ipa"
	}
	return Config{
		AppName:      doc.Name,
		PackageName:  packagePrefix + "." + packageSegment(doc.Name),
		Version:      DefaultVersion,
		Platform:     string(platform),
		OutputFormat: format,
	}
}

// packageSegment lower-cases name and keeps only characters a package
// segment may contain.
func packageSegment(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "app"
	}
	return b.String()
}

// Result is what a finished build produced.
type Result struct {
	Config Config
	Path   string
}

// Builder runs placeholder builds into OutputDir.
type Builder struct {
	OutputDir     string
	PackagePrefix string
	log           *logger.Logger
}

// NewBuilder constructs a Builder.
func NewBuilder(outputDir, packagePrefix string, log *logger.Logger) *Builder {
	return &Builder{
		OutputDir:     outputDir,
		PackagePrefix: packagePrefix,
		log:           log.With("component", "build"),
	}
}

// Build validates the derived configuration and writes the placeholder
// artifact for platform.
func (b *Builder) Build(ctx context.Context, doc document.AppDocument, platform document.DeviceType) (Result, error) {
	cfg := ConfigFor(doc, platform, b.PackagePrefix)
	if err := config.ValidateStruct(cfg); err != nil {
		return Result{}, buildifyerrors.NewBuildError(string(platform), err)
	}

	if err := ctx.Err(); err != nil {
		return Result{}, buildifyerrors.NewBuildError(cfg.Platform, err)
	}

	b.log.WithFields(map[string]any{
		"app":          cfg.AppName,
		"package":      cfg.PackageName,
		"version":      cfg.Version,
		"outputFormat": cfg.OutputFormat,
	}).Info("building app")

	if err := os.MkdirAll(b.OutputDir, 0o755); err != nil {
		return Result{}, buildifyerrors.NewBuildError(cfg.Platform, fmt.Errorf("create output dir: %w", err))
	}

	path := filepath.Join(b.OutputDir, cfg.FileName())
	if err := os.WriteFile(path, []byte(placeholderContents), 0o644); err != nil {
		return Result{}, buildifyerrors.NewBuildError(cfg.Platform, fmt.Errorf("write artifact: %w", err))
	}

	b.log.WithFields(map[string]any{"path": path}).Info(strings.ToUpper(cfg.Platform) + " build completed")
	return Result{Config: cfg, Path: path}, nil
}

// Save serialises doc as indented JSON. Nothing is persisted.
func (b *Builder) Save(doc document.AppDocument) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode project: %w", err)
	}
	b.log.WithFields(map[string]any{"document": doc.ID, "bytes": len(data)}).Info("project saved")
	return data, nil
}

// Load is not available yet.
func (b *Builder) Load() (document.AppDocument, error) {
	return document.AppDocument{}, fmt.Errorf("load project: coming soon: %w", buildifyerrors.ErrNotImplemented)
}
