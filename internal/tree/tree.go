// Package tree implements copy-on-write operations over a forest of
// component nodes. No function mutates its input; when an operation has
// nothing to do it returns the input slice itself, so callers can detect
// change by slice identity.
package tree

import (
	"github.com/alexisbeaulieu97/buildify/internal/document"
)

// FindByID searches the forest depth-first and returns the first node with id.
func FindByID(forest []document.Node, id string) (document.Node, bool) {
	for _, node := range forest {
		if node.ID == id {
			return node, true
		}
		if found, ok := FindByID(node.Children, id); ok {
			return found, true
		}
	}
	return document.Node{}, false
}

// Contains reports whether any node at any depth has the given id.
func Contains(forest []document.Node, id string) bool {
	_, ok := FindByID(forest, id)
	return ok
}

// IndexOf returns the top-level position of id, or -1.
func IndexOf(forest []document.Node, id string) int {
	for i, node := range forest {
		if node.ID == id {
			return i
		}
	}
	return -1
}

// Insert places node at the top level at index, clamped to [0, len(forest)].
func Insert(forest []document.Node, node document.Node, index int) []document.Node {
	index = clamp(index, 0, len(forest))
	out := make([]document.Node, 0, len(forest)+1)
	out = append(out, forest[:index]...)
	out = append(out, node)
	return append(out, forest[index:]...)
}

// Append places node at the end of the top level.
func Append(forest []document.Node, node document.Node) []document.Node {
	return Insert(forest, node, len(forest))
}

// UpdateProps shallow-merges partial into the props of the node with id.
// Keys absent from partial keep their values. A missing id is a no-op.
func UpdateProps(forest []document.Node, id string, partial document.Props) []document.Node {
	if !Contains(forest, id) {
		return forest
	}
	return updateProps(forest, id, partial)
}

func updateProps(forest []document.Node, id string, partial document.Props) []document.Node {
	out := make([]document.Node, len(forest))
	for i, node := range forest {
		switch {
		case node.ID == id:
			merged := make(document.Props, len(node.Props)+len(partial))
			for key, value := range node.Props {
				merged[key] = value
			}
			for key, value := range partial {
				merged[key] = document.CloneValue(value)
			}
			node.Props = merged
		case Contains(node.Children, id):
			node.Children = updateProps(node.Children, id, partial)
		}
		out[i] = node
	}
	return out
}

// Remove drops the node with id, and with it its whole subtree, at any depth.
// A missing id is a no-op.
func Remove(forest []document.Node, id string) []document.Node {
	if !Contains(forest, id) {
		return forest
	}
	return remove(forest, id)
}

func remove(forest []document.Node, id string) []document.Node {
	out := make([]document.Node, 0, len(forest))
	for _, node := range forest {
		if node.ID == id {
			continue
		}
		if Contains(node.Children, id) {
			node.Children = remove(node.Children, id)
		}
		out = append(out, node)
	}
	return out
}

// ReorderSiblings replaces the top level with newOrder. The caller supplies
// the permutation; the result is a fresh slice.
func ReorderSiblings(forest []document.Node, newOrder []document.Node) []document.Node {
	out := make([]document.Node, len(newOrder))
	copy(out, newOrder)
	return out
}

// Move removes the top-level element at from and reinserts it at to,
// shifting the elements in between. Both positions are clamped; an empty
// forest or equal positions return the input unchanged.
func Move(forest []document.Node, from, to int) []document.Node {
	if len(forest) == 0 {
		return forest
	}
	from = clamp(from, 0, len(forest)-1)
	to = clamp(to, 0, len(forest)-1)
	if from == to {
		return forest
	}

	moved := forest[from]
	rest := make([]document.Node, 0, len(forest))
	rest = append(rest, forest[:from]...)
	rest = append(rest, forest[from+1:]...)
	return Insert(rest, moved, to)
}

// Walk visits every node depth-first with its depth. Returning false from
// fn skips that node's children.
func Walk(forest []document.Node, fn func(node document.Node, depth int) bool) {
	walk(forest, 0, fn)
}

func walk(forest []document.Node, depth int, fn func(document.Node, int) bool) {
	for _, node := range forest {
		if fn(node, depth) {
			walk(node.Children, depth+1, fn)
		}
	}
}

// IDs lists every node id in depth-first order.
func IDs(forest []document.Node) []string {
	var ids []string
	Walk(forest, func(node document.Node, _ int) bool {
		ids = append(ids, node.ID)
		return true
	})
	return ids
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
