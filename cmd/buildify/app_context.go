package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/buildify/internal/build"
	"github.com/alexisbeaulieu97/buildify/internal/catalog"
	"github.com/alexisbeaulieu97/buildify/internal/config"
	"github.com/alexisbeaulieu97/buildify/internal/document"
	"github.com/alexisbeaulieu97/buildify/internal/logger"
	"github.com/alexisbeaulieu97/buildify/internal/render"
	"github.com/alexisbeaulieu97/buildify/internal/store"
	"github.com/alexisbeaulieu97/buildify/internal/templates"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config   *config.Config
	Logger   *logger.Logger
	Catalog  *catalog.Catalog
	Gallery  *templates.Gallery
	Renderer *render.Renderer
	Builder  *build.Builder
	Store    *store.Store
}

func newAppContext(cmd *cobra.Command, flags *rootFlags, operation string) (*AppContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError(operation, "loading config", err, "Check the file passed with --config.")
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: isTerminal(cmd.ErrOrStderr()),
		Writer:        cmd.ErrOrStderr(),
		Component:     "cli",
	})
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "Use one of debug, info, warn or error for log_level.")
	}

	cat := catalog.New()
	gallery, err := templates.NewGallery(cat, log)
	if err != nil {
		return nil, newCommandError(operation, "loading built-in templates", err, "Reinstall buildify.")
	}
	if cfg.TemplatesDir != "" {
		n, err := gallery.LoadDir(cfg.TemplatesDir)
		if err != nil {
			return nil, newCommandError(operation, "loading templates from "+cfg.TemplatesDir, err, "Fix or remove the reported template file.")
		}
		if n > 0 {
			log.WithFields(map[string]any{"dir": cfg.TemplatesDir, "count": n}).Debug("loaded extra templates")
		}
	}

	state := store.DefaultState()
	state.Device = cfg.DeviceType()

	return &AppContext{
		Config:   cfg,
		Logger:   log,
		Catalog:  cat,
		Gallery:  gallery,
		Renderer: render.New(render.DefaultWidth),
		Builder:  build.NewBuilder(cfg.OutputDir, cfg.PackagePrefix, log),
		Store:    store.New(state, log),
	}, nil
}

// documentFor returns the template document for id, or the editor's
// current document when id is empty.
func (a *AppContext) documentFor(id string) (document.AppDocument, error) {
	if id == "" {
		return a.Store.State().Document, nil
	}
	tmpl, err := a.Gallery.ByID(id)
	if err != nil {
		return document.AppDocument{}, err
	}
	return tmpl.Document(), nil
}

func isTerminal(writer io.Writer) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
