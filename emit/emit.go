/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package emit provides the interface and common utilities for the
// per-platform token emitters.
package emit

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"bennypowers.dev/motagim/brand"
	"bennypowers.dev/motagim/fs"
)

// Header is the comment text marking a file as generated.
const Header = "Generated by motagim. Do not edit directly."

// Emitter writes the artifacts for one brand into the working directory.
// Each emitter owns a distinct file path, so emitters for the same brand
// can run concurrently.
type Emitter interface {
	// Name identifies the emitter in diagnostics.
	Name() string

	// Emit writes the brand's output file(s) under root.
	Emit(filesystem fs.FileSystem, root string, tokens []*brand.ResolvedToken) error
}

// Identifier derives the raw per-target identifier seed for a token:
// "{brand}-{logicalName}". Emitters apply their case convention on top.
func Identifier(tok *brand.ResolvedToken) string {
	return tok.Brand + "-" + tok.Name
}

// SortByName returns a copy of tokens sorted by the given derived name.
func SortByName(tokens []*brand.ResolvedToken, derive func(*brand.ResolvedToken) string) []*brand.ResolvedToken {
	sorted := make([]*brand.ResolvedToken, len(tokens))
	copy(sorted, tokens)
	sort.Slice(sorted, func(i, j int) bool {
		return derive(sorted[i]) < derive(sorted[j])
	})
	return sorted
}

// ValueString renders a token value as plain text. Integral floats drop
// their fractional part so JSON-decoded numbers round-trip cleanly.
func ValueString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		if x == float64(int64(x)) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// IsScalarLiteral returns true when the value can be emitted as a bare
// number or boolean literal in the target language.
func IsScalarLiteral(v any) bool {
	switch v.(type) {
	case bool, int, int64, float64:
		return true
	default:
		return false
	}
}

// QuoteSingle wraps a string in single quotes, escaping as needed.
func QuoteSingle(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}

// QuoteDouble wraps a string in double quotes, escaping as needed.
func QuoteDouble(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// EscapeXML escapes special XML characters.
func EscapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}

// ToCamelCase converts a string to camelCase.
func ToCamelCase(s string) string {
	words := SplitIntoWords(s)
	if len(words) == 0 {
		return ""
	}

	result := strings.ToLower(words[0])
	for i := 1; i < len(words); i++ {
		if len(words[i]) > 0 {
			result += strings.ToUpper(words[i][:1]) + strings.ToLower(words[i][1:])
		}
	}
	return result
}

// ToPascalCase converts a string to PascalCase.
func ToPascalCase(s string) string {
	words := SplitIntoWords(s)
	var result string
	for _, word := range words {
		if len(word) > 0 {
			result += strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}
	return result
}

// ToSnakeCase converts a string to snake_case.
func ToSnakeCase(s string) string {
	words := SplitIntoWords(s)
	return strings.ToLower(strings.Join(words, "_"))
}

// ToUpperSnakeCase converts a string to UPPER_SNAKE_CASE.
func ToUpperSnakeCase(s string) string {
	words := SplitIntoWords(s)
	return strings.ToUpper(strings.Join(words, "_"))
}

// ToKebabCase converts a string to kebab-case.
func ToKebabCase(s string) string {
	words := SplitIntoWords(s)
	return strings.ToLower(strings.Join(words, "-"))
}

// SplitIntoWords splits a string on hyphens, underscores, dots, spaces, and
// camelCase boundaries.
func SplitIntoWords(s string) []string {
	var words []string
	var current strings.Builder

	for i, r := range s {
		if r == '-' || r == '_' || r == '.' || r == ' ' {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		} else if unicode.IsUpper(r) && i > 0 {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
			current.WriteRune(r)
		} else {
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}
