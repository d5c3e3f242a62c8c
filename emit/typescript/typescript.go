/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package typescript emits per-brand TypeScript constant modules.
package typescript

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

// OutputDir is the directory TS themes are written to, relative to root.
const OutputDir = "src/styles"

// constantPattern matches one exported constant declaration per line.
var constantPattern = regexp.MustCompile(`(?m)^export const ([A-Za-z_$][A-Za-z0-9_$]*) = (.+);\s*$`)

// Emitter writes one theme-<brand>.ts module per brand with named constant
// exports.
type Emitter struct{}

// New creates a new TypeScript emitter.
func New() *Emitter {
	return &Emitter{}
}

// Name implements emit.Emitter.
func (e *Emitter) Name() string {
	return "typescript"
}

// Emit implements emit.Emitter. Existing exported constants in the
// destination file are preserved; freshly computed tokens win on collision.
func (e *Emitter) Emit(filesystem fs.FileSystem, root string, tokens []*brand.ResolvedToken) error {
	if len(tokens) == 0 {
		return nil
	}

	slug := emit.ToKebabCase(tokens[0].Brand)
	path := filepath.Join(root, OutputDir, "theme-"+slug+".ts")

	constants := map[string]string{}
	if filesystem.Exists(path) {
		existing, err := filesystem.ReadFile(path)
		if err != nil {
			return fmt.Errorf("typescript: failed to read existing %s: %w", path, err)
		}
		for _, match := range constantPattern.FindAllStringSubmatch(string(existing), -1) {
			constants[match[1]] = match[2]
		}
	}

	for _, tok := range tokens {
		name := emit.ToCamelCase(emit.Identifier(tok))
		constants[name] = literal(tok.Value)
	}

	names := make([]string, 0, len(constants))
	for name := range constants {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("// " + emit.Header + "\n")
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("export const %s = %s;\n", name, constants[name]))
	}

	if err := filesystem.MkdirAll(filepath.Join(root, OutputDir), 0755); err != nil {
		return fmt.Errorf("typescript: %w", err)
	}
	if err := filesystem.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("typescript: failed to write %s: %w", path, err)
	}
	return nil
}

// literal renders a value as a TypeScript literal: numbers and booleans
// stay bare, everything else is a single-quoted string.
func literal(v any) string {
	if emit.IsScalarLiteral(v) {
		return emit.ValueString(v)
	}
	return emit.QuoteSingle(emit.ValueString(v))
}
