/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package swift emits per-brand Swift theme enums.
package swift

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/motagim/brand"
	"bennypowers.dev/motagim/emit"
	"bennypowers.dev/motagim/fs"
)

// OutputDir is the directory Swift themes are written to, relative to root.
const OutputDir = "tokens/ios"

// Emitter writes one Theme<Brand>.swift file per brand containing an enum
// of static constants. The file is fully regenerated on every build.
type Emitter struct{}

// New creates a new Swift emitter.
func New() *Emitter {
	return &Emitter{}
}

// Name implements emit.Emitter.
func (e *Emitter) Name() string {
	return "swift"
}

// Emit implements emit.Emitter.
func (e *Emitter) Emit(filesystem fs.FileSystem, root string, tokens []*brand.ResolvedToken) error {
	if len(tokens) == 0 {
		return nil
	}

	typeName := "Theme" + emit.ToPascalCase(tokens[0].Brand)
	path := filepath.Join(root, OutputDir, typeName+".swift")

	sorted := emit.SortByName(tokens, func(tok *brand.ResolvedToken) string {
		return emit.ToCamelCase(emit.Identifier(tok))
	})

	hasColor := false
	var body strings.Builder
	for _, tok := range sorted {
		name := emit.ToCamelCase(emit.Identifier(tok))
		value, isColor := swiftLiteral(tok.Value)
		if isColor {
			hasColor = true
		}
		body.WriteString(fmt.Sprintf("    static let %s = %s\n", name, value))
	}

	var sb strings.Builder
	sb.WriteString("// " + emit.Header + "\n\n")
	if hasColor {
		sb.WriteString("import SwiftUI\n\n")
	} else {
		sb.WriteString("import Foundation\n\n")
	}
	sb.WriteString("enum " + typeName + " {\n")
	sb.WriteString(body.String())
	sb.WriteString("}\n")

	if err := filesystem.MkdirAll(filepath.Join(root, OutputDir), 0755); err != nil {
		return fmt.Errorf("swift: %w", err)
	}
	if err := filesystem.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("swift: failed to write %s: %w", path, err)
	}
	return nil
}

// swiftLiteral renders a value as a Swift literal. Color values become
// native SwiftUI Color initializers; the second return reports that case.
func swiftLiteral(v any) (string, bool) {
	switch x := v.(type) {
	case bool, int, int64:
		return emit.ValueString(x), false
	case float64:
		if x == float64(int64(x)) {
			// Keep Double inference for integral floats.
			return emit.ValueString(x) + ".0", false
		}
		return emit.ValueString(x), false
	case string:
		if color, ok := swiftColor(x); ok {
			return color, true
		}
		return emit.QuoteDouble(x), false
	default:
		return emit.QuoteDouble(emit.ValueString(v)), false
	}
}

// swiftColor converts CSS color notation to a SwiftUI Color initializer.
func swiftColor(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	looksLikeColor := strings.HasPrefix(trimmed, "#") ||
		strings.HasPrefix(trimmed, "rgb(") ||
		strings.HasPrefix(trimmed, "rgba(") ||
		strings.HasPrefix(trimmed, "hsl(") ||
		strings.HasPrefix(trimmed, "hsla(")
	if !looksLikeColor {
		return "", false
	}

	c, err := csscolorparser.Parse(trimmed)
	if err != nil {
		return "", false
	}

	return fmt.Sprintf("Color(red: %.4f, green: %.4f, blue: %.4f, opacity: %.4f)",
		c.R, c.G, c.B, c.A), true
}
