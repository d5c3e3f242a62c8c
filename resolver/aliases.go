/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import "bennypowers.dev/motagim/token"

// Resolve resolves a leaf value against the primitive lookup table. A value
// that is entirely a single {reference} is replaced by the looked-up value;
// anything else, including strings that merely contain a reference, passes
// through untouched.
//
// Resolution is deliberately single-hop: a looked-up value that is itself a
// reference string is returned as-is, not followed. The second return is
// false only when the value was a reference with no table entry.
func Resolve(value any, table Table) (any, bool) {
	s, ok := value.(string)
	if !ok {
		return value, true
	}

	path, ok := token.ParseRef(s)
	if !ok {
		return value, true
	}

	if resolved, ok := table[path]; ok {
		return resolved, true
	}

	// Unresolved references pass through verbatim. The generated artifact
	// will contain the literal {...} text.
	return value, false
}
