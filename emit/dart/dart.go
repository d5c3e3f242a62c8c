/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package dart emits per-brand Dart theme classes for Flutter.
package dart

import (
	"fmt"
	"path/filepath"
	"strings"

	"bennypowers.dev/motagim/brand"
	"bennypowers.dev/motagim/emit"
	"bennypowers.dev/motagim/fs"
)

// OutputDir is the directory Dart themes are written to, relative to root.
const OutputDir = "tokens/flutter"

// Emitter writes one theme_<brand>.dart file per brand containing a class
// of static constants. The file is fully regenerated on every build.
type Emitter struct{}

// New creates a new Dart emitter.
func New() *Emitter {
	return &Emitter{}
}

// Name implements emit.Emitter.
func (e *Emitter) Name() string {
	return "dart"
}

// Emit implements emit.Emitter.
func (e *Emitter) Emit(filesystem fs.FileSystem, root string, tokens []*brand.ResolvedToken) error {
	if len(tokens) == 0 {
		return nil
	}

	slug := emit.ToSnakeCase(tokens[0].Brand)
	className := "Theme" + emit.ToPascalCase(tokens[0].Brand)
	path := filepath.Join(root, OutputDir, "theme_"+slug+".dart")

	sorted := emit.SortByName(tokens, func(tok *brand.ResolvedToken) string {
		return emit.ToCamelCase(emit.Identifier(tok))
	})

	var sb strings.Builder
	sb.WriteString("// " + emit.Header + "\n\n")
	sb.WriteString("class " + className + " {\n")
	sb.WriteString("  " + className + "._();\n\n")
	for _, tok := range sorted {
		name := emit.ToCamelCase(emit.Identifier(tok))
		sb.WriteString(fmt.Sprintf("  static const %s %s = %s;\n", dartType(tok.Value), name, literal(tok.Value)))
	}
	sb.WriteString("}\n")

	if err := filesystem.MkdirAll(filepath.Join(root, OutputDir), 0755); err != nil {
		return fmt.Errorf("dart: %w", err)
	}
	if err := filesystem.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("dart: failed to write %s: %w", path, err)
	}
	return nil
}

// dartType picks the declared type for a token value.
func dartType(v any) string {
	switch x := v.(type) {
	case bool:
		return "bool"
	case int, int64:
		return "int"
	case float64:
		if x == float64(int64(x)) {
			return "int"
		}
		return "double"
	default:
		return "String"
	}
}

// literal renders a value as a Dart literal.
func literal(v any) string {
	if emit.IsScalarLiteral(v) {
		return emit.ValueString(v)
	}
	return emit.QuoteSingle(emit.ValueString(v))
}
