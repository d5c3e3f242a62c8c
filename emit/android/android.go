/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package android emits per-brand Android resource XML.
package android

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/motagim/brand"
	"bennypowers.dev/motagim/emit"
	"bennypowers.dev/motagim/fs"
)

// OutputDir is the directory Android themes are written to, relative to root.
const OutputDir = "tokens/android"

// Emitter writes one theme_<brand>.xml resource file per brand. The file is
// fully regenerated on every build; nothing is merged.
type Emitter struct{}

// New creates a new Android emitter.
func New() *Emitter {
	return &Emitter{}
}

// Name implements emit.Emitter.
func (e *Emitter) Name() string {
	return "android"
}

// Emit implements emit.Emitter.
func (e *Emitter) Emit(filesystem fs.FileSystem, root string, tokens []*brand.ResolvedToken) error {
	if len(tokens) == 0 {
		return nil
	}

	slug := emit.ToSnakeCase(tokens[0].Brand)
	path := filepath.Join(root, OutputDir, "theme_"+slug+".xml")

	sorted := emit.SortByName(tokens, func(tok *brand.ResolvedToken) string {
		return emit.ToUpperSnakeCase(emit.Identifier(tok))
	})

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="utf-8"?>`)
	sb.WriteString("\n<!-- " + emit.Header + " -->\n")
	sb.WriteString("<resources>\n")
	for _, tok := range sorted {
		name := emit.ToUpperSnakeCase(emit.Identifier(tok))
		element, value := resourceEntry(tok.Value)
		sb.WriteString(fmt.Sprintf("    <%s name=%q>%s</%s>\n",
			element, name, emit.EscapeXML(value), element))
	}
	sb.WriteString("</resources>\n")

	if err := filesystem.MkdirAll(filepath.Join(root, OutputDir), 0755); err != nil {
		return fmt.Errorf("android: %w", err)
	}
	if err := filesystem.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("android: failed to write %s: %w", path, err)
	}
	return nil
}

// resourceEntry picks the resource element and rendered value for a token.
// Color values are normalized to Android's #AARRGGBB/#RRGGBB hex form.
func resourceEntry(v any) (element, value string) {
	switch x := v.(type) {
	case bool:
		return "bool", emit.ValueString(x)
	case int, int64:
		return "integer", emit.ValueString(x)
	case float64:
		if x == float64(int64(x)) {
			return "integer", emit.ValueString(x)
		}
		return "string", emit.ValueString(x)
	case string:
		if hex, ok := androidColor(x); ok {
			return "color", hex
		}
		return "string", x
	default:
		return "string", emit.ValueString(v)
	}
}

// androidColor converts CSS color notation to Android hex. Only values that
// look like colors are attempted, so arbitrary strings never get rewritten
// just because they happen to parse as a named color.
func androidColor(s string) (string, bool) {
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

	r, g, b, a := c.RGBA255()
	if a < 255 {
		return fmt.Sprintf("#%02X%02X%02X%02X", a, r, g, b), true
	}
	return fmt.Sprintf("#%02X%02X%02X", r, g, b), true
}
