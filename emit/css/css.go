/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css emits per-brand CSS custom properties.
package css

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"bennypowers.dev/motagim/brand"
	"bennypowers.dev/motagim/emit"
	"bennypowers.dev/motagim/fs"
)

// OutputDir is the directory CSS themes are written to, relative to root.
const OutputDir = "src/styles"

// propertyPattern matches one custom property declaration per line.
// Hand-added declarations in a previously generated file match too, which
// is what keeps them alive across rebuilds.
var propertyPattern = regexp.MustCompile(`(?m)^\s*(--[A-Za-z0-9_-]+)\s*:\s*(.+?);\s*$`)

// Emitter writes one theme-<brand>.css file per brand, scoped by a
// data-attribute selector.
type Emitter struct{}

// New creates a new CSS emitter.
func New() *Emitter {
	return &Emitter{}
}

// Name implements emit.Emitter.
func (e *Emitter) Name() string {
	return "css"
}

// Emit implements emit.Emitter. Existing custom properties in the
// destination file are preserved; freshly computed tokens win on collision.
func (e *Emitter) Emit(filesystem fs.FileSystem, root string, tokens []*brand.ResolvedToken) error {
	if len(tokens) == 0 {
		return nil
	}

	slug := emit.ToKebabCase(tokens[0].Brand)
	path := filepath.Join(root, OutputDir, "theme-"+slug+".css")

	properties := map[string]string{}
	if filesystem.Exists(path) {
		existing, err := filesystem.ReadFile(path)
		if err != nil {
			return fmt.Errorf("css: failed to read existing %s: %w", path, err)
		}
		for _, match := range propertyPattern.FindAllStringSubmatch(string(existing), -1) {
			properties[match[1]] = match[2]
		}
	}

	for _, tok := range tokens {
		name := "--" + emit.ToKebabCase(emit.Identifier(tok))
		properties[name] = emit.ValueString(tok.Value)
	}

	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("/* " + emit.Header + " */\n")
	sb.WriteString(fmt.Sprintf("[data-theme=%q] {\n", slug))
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("  %s: %s;\n", name, properties[name]))
	}
	sb.WriteString("}\n")

	if err := filesystem.MkdirAll(filepath.Join(root, OutputDir), 0755); err != nil {
		return fmt.Errorf("css: %w", err)
	}
	if err := filesystem.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("css: failed to write %s: %w", path, err)
	}
	return nil
}
