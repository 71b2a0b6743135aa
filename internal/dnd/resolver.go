package dnd

import (
	"errors"

	"github.com/alexisbeaulieu97/buildify/internal/logger"
	"github.com/alexisbeaulieu97/buildify/internal/store"
)

var (
	// ErrAlreadyDragging is returned by Begin when a drag is in progress.
	ErrAlreadyDragging = errors.New("drag already in progress")
	// ErrNotDragging is returned by Drop when no drag was started.
	ErrNotDragging = errors.New("no drag in progress")
)

// Dispatcher is the part of the store the resolver needs.
type Dispatcher interface {
	State() store.State
	Dispatch(store.Intent) store.State
}

// Resolver tracks one drag at a time (Idle -> Dragging -> Idle) and
// dispatches the intent a drop resolves to. It is meant to be driven from a
// single UI goroutine.
type Resolver struct {
	store   Dispatcher
	catalog Instantiator
	log     *logger.Logger

	dragging bool
	source   Source
}

// NewResolver wires a resolver to a store and a catalog.
func NewResolver(st Dispatcher, catalog Instantiator, log *logger.Logger) *Resolver {
	return &Resolver{
		store:   st,
		catalog: catalog,
		log:     log.With("component", "dnd"),
	}
}

// Begin records the drag source.
func (r *Resolver) Begin(src Source) error {
	if r.dragging {
		return ErrAlreadyDragging
	}
	r.dragging = true
	r.source = src
	return nil
}

// Active reports the current drag source, if any.
func (r *Resolver) Active() (Source, bool) {
	return r.source, r.dragging
}

// Cancel abandons the current drag without emitting anything.
func (r *Resolver) Cancel() {
	if r.dragging {
		r.log.WithFields(map[string]any{"source": r.source.String()}).Debug("drag cancelled")
	}
	r.reset()
}

// Drop ends the drag on target. When the gesture resolves to an intent it is
// dispatched and returned. The resolver is Idle afterwards in every case.
func (r *Resolver) Drop(target Target) (store.Intent, error) {
	if !r.dragging {
		return nil, ErrNotDragging
	}
	src := r.source
	r.reset()

	intent, err := Resolve(r.store.State(), src, target, r.catalog)
	if err != nil {
		r.log.Error(err, "drop rejected")
		return nil, err
	}

	fields := map[string]any{"source": src.String(), "target": target.String()}
	if intent == nil {
		r.log.WithFields(fields).Debug("drop ignored")
		return nil, nil
	}

	fields["intent"] = intent.IntentName()
	r.log.WithFields(fields).Debug("drop resolved")
	r.store.Dispatch(intent)
	return intent, nil
}

func (r *Resolver) reset() {
	r.dragging = false
	r.source = Source{}
}
