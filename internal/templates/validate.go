package templates

import (
	"fmt"

	"github.com/alexisbeaulieu97/buildify/internal/catalog"
	"github.com/alexisbeaulieu97/buildify/internal/config"
	"github.com/alexisbeaulieu97/buildify/internal/document"
	buildifyerrors "github.com/alexisbeaulieu97/buildify/pkg/errors"
)

// KindLookup resolves component kinds; *catalog.Catalog satisfies it.
type KindLookup interface {
	Lookup(kind string) (catalog.Entry, bool)
}

// Validate checks the template fields and the structure of its document:
// screen ids and node ids are unique, every kind is known, and only
// container kinds carry children.
func Validate(t Template, kinds KindLookup) error {
	if err := config.ValidateStruct(t); err != nil {
		return err
	}

	screens := make(map[string]struct{}, len(t.Config.Screens))
	nodes := make(map[string]string)

	for i, screen := range t.Config.Screens {
		field := fmt.Sprintf("config.screens[%d]", i)
		if _, dup := screens[screen.ID]; dup {
			return buildifyerrors.NewValidationError(field+".id", fmt.Sprintf("duplicate screen id %q", screen.ID), nil)
		}
		screens[screen.ID] = struct{}{}

		if err := validateNodes(screen.Components, field+".components", screen.ID, nodes, kinds); err != nil {
			return err
		}
	}
	return nil
}

func validateNodes(forest []document.Node, field, screenID string, seen map[string]string, kinds KindLookup) error {
	for i, node := range forest {
		nodeField := fmt.Sprintf("%s[%d]", field, i)
		if node.ID == "" {
			return buildifyerrors.NewValidationError(nodeField+".id", "node id is required", nil)
		}
		if other, dup := seen[node.ID]; dup {
			return buildifyerrors.NewValidationError(nodeField+".id", fmt.Sprintf("duplicate node id %q (also on screen %q)", node.ID, other), nil)
		}
		seen[node.ID] = screenID

		if kinds != nil {
			entry, ok := kinds.Lookup(node.Kind)
			if !ok {
				return buildifyerrors.NewValidationError(nodeField+".type", fmt.Sprintf("unknown component kind %q", node.Kind), nil)
			}
			if node.Children != nil && !entry.Container {
				return buildifyerrors.NewValidationError(nodeField+".children", fmt.Sprintf("%s cannot hold children", node.Kind), nil)
			}
		}

		if err := validateNodes(node.Children, nodeField+".children", screenID, seen, kinds); err != nil {
			return err
		}
	}
	return nil
}
