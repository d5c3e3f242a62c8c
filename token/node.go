/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the normalized design token tree.
package token

import "strings"

// MetadataPrefix marks keys that carry tool metadata rather than tokens.
// Metadata entries are preserved verbatim and never treated as groups.
const MetadataPrefix = "$"

// Node is one node of a normalized token tree: either a *Group or a *Leaf.
type Node interface {
	node()
}

// Leaf is a terminal token value.
type Leaf struct {
	// Value is the token's primitive value (string, number, or boolean).
	Value any
}

func (*Leaf) node() {}

// Group is an ordered mapping from name to child node. Key order follows
// the order of first insertion so repeated builds traverse identically.
type Group struct {
	names    []string
	children map[string]Node
}

func (*Group) node() {}

// NewGroup creates a new empty group.
func NewGroup() *Group {
	return &Group{children: make(map[string]Node)}
}

// Set inserts or replaces a child. Insertion order is preserved; replacing
// an existing child keeps its original position.
func (g *Group) Set(name string, child Node) {
	if _, exists := g.children[name]; !exists {
		g.names = append(g.names, name)
	}
	g.children[name] = child
}

// Get returns the named child.
func (g *Group) Get(name string) (Node, bool) {
	child, ok := g.children[name]
	return child, ok
}

// Names returns the child names in insertion order.
func (g *Group) Names() []string {
	return g.names
}

// Len returns the number of children, metadata entries included.
func (g *Group) Len() int {
	return len(g.names)
}

// TokenNames returns the child names in insertion order, with metadata
// entries filtered out.
func (g *Group) TokenNames() []string {
	names := make([]string, 0, len(g.names))
	for _, name := range g.names {
		if strings.HasPrefix(name, MetadataPrefix) {
			continue
		}
		names = append(names, name)
	}
	return names
}

// IsMetadata returns true for keys that must pass through unmodified.
func IsMetadata(name string) bool {
	return strings.HasPrefix(name, MetadataPrefix)
}
