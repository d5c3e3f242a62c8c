/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver flattens primitive groups into a lookup table and
// resolves alias references against it.
package resolver

import (
	"sort"

	"bennypowers.dev/motagim/token"
)

// Table maps dot-joined primitive paths to concrete leaf values.
type Table map[string]any

// Merge copies entries from other into the table. Later merges overwrite
// earlier entries on key collision.
func (t Table) Merge(other Table) {
	for key, value := range other {
		t[key] = value
	}
}

// FlattenModes flattens one primitive group into lookup entries for exactly
// one mode. A group is mode-nested when every immediate child is itself a
// group rather than a leaf; in that case the first mode in document order is
// canonical and the rest are dropped. Empty groups flatten to empty tables.
func FlattenModes(group *token.Group) Table {
	out := Table{}
	if group == nil {
		return out
	}

	if mode, ok := firstMode(group); ok {
		flatten(mode, "", out)
		return out
	}

	flatten(group, "", out)
	return out
}

// firstMode returns the first child when the group is mode-nested.
func firstMode(group *token.Group) (*token.Group, bool) {
	names := group.TokenNames()
	if len(names) == 0 {
		return nil, false
	}
	for _, name := range names {
		child, _ := group.Get(name)
		if _, isGroup := child.(*token.Group); !isGroup {
			return nil, false
		}
	}
	first, _ := group.Get(names[0])
	return first.(*token.Group), true
}

// flatten joins nested group keys with the canonical separator.
func flatten(group *token.Group, prefix string, out Table) {
	for _, name := range group.TokenNames() {
		child, _ := group.Get(name)
		key := name
		if prefix != "" {
			key = prefix + token.Separator + name
		}

		switch node := child.(type) {
		case *token.Leaf:
			out[key] = node.Value
		case *token.Group:
			flatten(node, key, out)
		}
	}
}

// Keys returns the table's keys in sorted order, for diagnostics.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
