package document

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Props maps property names to scalars, colour strings or nested lists.
type Props map[string]any

// Clone returns a deep copy of the props, including nested lists and maps.
func (p Props) Clone() Props {
	if p == nil {
		return nil
	}
	out := make(Props, len(p))
	for key, value := range p {
		out[key] = CloneValue(value)
	}
	return out
}

// CloneValue deep copies the list and map shapes that props may hold.
func CloneValue(value any) any {
	switch v := value.(type) {
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = CloneValue(item)
		}
		return out
	case []string:
		return append([]string(nil), v...)
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = CloneValue(item)
		}
		return out
	case Props:
		return v.Clone()
	case []map[string]any:
		out := make([]map[string]any, len(v))
		for i, item := range v {
			out[i] = CloneValue(item).(map[string]any)
		}
		return out
	default:
		return v
	}
}

// Node is one component instance inside a screen's tree.
//
// Children is nil for leaf kinds and non-nil (possibly empty) for container
// kinds, so "cannot hold children" and "holds none" stay distinguishable.
type Node struct {
	ID       string
	Kind     string
	Name     string
	Category Category
	Props    Props
	Children []Node
}

// IsContainer reports whether the node can hold children.
func (n Node) IsContainer() bool {
	return n.Children != nil
}

// Clone returns a deep copy of the node and its subtree.
func (n Node) Clone() Node {
	out := n
	out.Props = n.Props.Clone()
	out.Children = CloneNodes(n.Children)
	return out
}

// CloneNodes deep copies a forest, preserving nil versus empty.
func CloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, node := range nodes {
		out[i] = node.Clone()
	}
	return out
}

type nodeWire struct {
	ID       string   `json:"id" yaml:"id"`
	Kind     string   `json:"type" yaml:"type"`
	Name     string   `json:"name,omitempty" yaml:"name,omitempty"`
	Category Category `json:"category" yaml:"category"`
	Props    Props    `json:"props" yaml:"props"`
	Children *[]Node  `json:"children,omitempty" yaml:"children,omitempty"`
}

func (n Node) wire() nodeWire {
	w := nodeWire{ID: n.ID, Kind: n.Kind, Name: n.Name, Category: n.Category, Props: n.Props}
	if n.Children != nil {
		children := n.Children
		w.Children = &children
	}
	return w
}

func (n *Node) fromWire(w nodeWire) {
	n.ID = w.ID
	n.Kind = w.Kind
	n.Name = w.Name
	n.Category = w.Category
	n.Props = make(Props, len(w.Props))
	for key, value := range w.Props {
		n.Props[key] = plainValue(value)
	}
	n.Children = nil
	if w.Children != nil {
		n.Children = *w.Children
		if n.Children == nil {
			n.Children = []Node{}
		}
	}
}

// plainValue turns nested mappings decoded into Props (yaml.v3 reuses the
// destination map type for nested maps) back into map[string]any.
func plainValue(value any) any {
	switch v := value.(type) {
	case Props:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = plainValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = plainValue(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = plainValue(item)
		}
		return out
	default:
		return v
	}
}

// MarshalJSON writes an empty children list for containers and omits it for leaves.
func (n Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.wire())
}

// UnmarshalJSON restores the container/leaf distinction from the children key.
func (n *Node) UnmarshalJSON(data []byte) error {
	var w nodeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	n.fromWire(w)
	return nil
}

// MarshalYAML mirrors MarshalJSON for template files.
func (n Node) MarshalYAML() (any, error) {
	return n.wire(), nil
}

// UnmarshalYAML mirrors UnmarshalJSON for template files.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	var w nodeWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	n.fromWire(w)
	return nil
}
