/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"fmt"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/motagim/fs"
)

// valueMarkers are the keys that identify a mapping as a token leaf.
var valueMarkers = []string{"value", "$value"}

// Parse decodes a token document and normalizes it into a token tree.
// Comments in the input are tolerated and stripped. The document is decoded
// through yaml.v3 mapping nodes so that key order survives into the tree;
// JSON is a YAML subset, so one decoder covers both.
func Parse(data []byte) (*Group, error) {
	clean := jsonc.ToJSON(data)

	var root yaml.Node
	if err := yaml.Unmarshal(clean, &root); err != nil {
		return nil, fmt.Errorf("failed to parse token document: %w", err)
	}
	if len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("token document root must be an object")
	}

	return normalizeGroup(root.Content[0])
}

// ParseFile reads and normalizes a token document from the filesystem.
func ParseFile(filesystem fs.FileSystem, path string) (*Group, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	tree, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return tree, nil
}

// normalizeGroup converts a mapping node into a Group. Each child becomes
// either a Leaf (value-marker mappings and bare primitives) or a nested
// Group. Metadata keys pass through as leaves holding their raw value.
func normalizeGroup(node *yaml.Node) (*Group, error) {
	group := NewGroup()

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]
		key := keyNode.Value

		if IsMetadata(key) {
			var raw any
			if err := valueNode.Decode(&raw); err != nil {
				return nil, fmt.Errorf("invalid metadata entry %q: %w", key, err)
			}
			group.Set(key, &Leaf{Value: raw})
			continue
		}

		child, err := normalizeNode(valueNode)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		group.Set(key, child)
	}

	return group, nil
}

// normalizeNode converts one value node into a tree node.
func normalizeNode(node *yaml.Node) (Node, error) {
	switch node.Kind {
	case yaml.MappingNode:
		if marker, ok := findValueMarker(node); ok {
			value, err := decodeLeafValue(marker)
			if err != nil {
				return nil, err
			}
			return &Leaf{Value: value}, nil
		}
		return normalizeGroup(node)
	default:
		// Bare primitives (and the odd array) wrap into a leaf.
		value, err := decodeLeafValue(node)
		if err != nil {
			return nil, err
		}
		return &Leaf{Value: value}, nil
	}
}

// findValueMarker returns the value node of a recognized value marker key.
func findValueMarker(node *yaml.Node) (*yaml.Node, bool) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		for _, marker := range valueMarkers {
			if node.Content[i].Value == marker {
				return node.Content[i+1], true
			}
		}
	}
	return nil, false
}

// decodeLeafValue decodes a leaf's value and repairs reference separators
// in string values.
func decodeLeafValue(node *yaml.Node) (any, error) {
	var value any
	if err := node.Decode(&value); err != nil {
		return nil, fmt.Errorf("invalid token value: %w", err)
	}
	if s, ok := value.(string); ok {
		return RepairSeparators(s), nil
	}
	return value, nil
}
