/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package brand walks one brand's token subtree into the flat ordered list
// the emitters consume.
package brand

import (
	"strings"

	"bennypowers.dev/motagim/internal/logger"
	"bennypowers.dev/motagim/resolver"
	"bennypowers.dev/motagim/token"
)

// ResolvedToken is one flattened, alias-resolved token for a brand. It is
// constructed during the walk and consumed immediately by the emitters.
type ResolvedToken struct {
	// Brand is the brand this token belongs to.
	Brand string

	// Path is the key path from the brand root to the leaf.
	Path []string

	// Name is the logical name: path segments joined with "-".
	Name string

	// Value is the alias-resolved leaf value.
	Value any
}

// Walk traverses a brand's subtree depth-first in document order, resolving
// each leaf against the primitive lookup table. The resulting order is
// deterministic for unchanged input.
func Walk(name string, subtree *token.Group, table resolver.Table) []*ResolvedToken {
	var tokens []*ResolvedToken
	walk(name, subtree, nil, table, &tokens)
	return tokens
}

func walk(brand string, group *token.Group, path []string, table resolver.Table, out *[]*ResolvedToken) {
	for _, key := range group.TokenNames() {
		child, _ := group.Get(key)
		childPath := append(path[:len(path):len(path)], key)

		switch node := child.(type) {
		case *token.Leaf:
			value, resolved := resolver.Resolve(node.Value, table)
			if !resolved {
				logger.Debug("unresolved reference %v at %s/%s", node.Value, brand, strings.Join(childPath, "/"))
			}
			*out = append(*out, &ResolvedToken{
				Brand: brand,
				Path:  childPath,
				Name:  strings.Join(childPath, "-"),
				Value: value,
			})
		case *token.Group:
			walk(brand, node, childPath, table, out)
		}
	}
}
