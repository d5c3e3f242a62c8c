/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
	"strings"
)

// Separator joins path segments in reference keys and lookup tables.
const Separator = "."

var (
	// refPattern matches {token.path} references.
	refPattern = regexp.MustCompile(`\{([^{}]+)\}`)

	// wholeRefPattern matches a value that is exactly one reference.
	wholeRefPattern = regexp.MustCompile(`^\{([^{}]+)\}$`)
)

// ParseRef extracts the token path from a value that is entirely a single
// curly-brace reference. Values that merely contain a reference inside a
// larger string are not references.
func ParseRef(value string) (string, bool) {
	matches := wholeRefPattern.FindStringSubmatch(value)
	if len(matches) != 2 {
		return "", false
	}
	return matches[1], true
}

// IsRef returns true if the value is entirely a single reference.
func IsRef(value string) bool {
	return wholeRefPattern.MatchString(value)
}

// RepairSeparators rewrites slash-delimited paths inside references to the
// canonical dot separator. Token sources disagree on the path delimiter;
// the lookup table only ever uses dots.
func RepairSeparators(value string) string {
	if !strings.Contains(value, "{") || !strings.Contains(value, "/") {
		return value
	}
	return refPattern.ReplaceAllStringFunc(value, func(ref string) string {
		return strings.ReplaceAll(ref, "/", Separator)
	})
}
