/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package classify assigns semantic roles to the top-level groups of a
// token document: one or more primitive groups and exactly one component
// group holding the per-brand subtrees.
package classify

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"bennypowers.dev/motagim/token"
)

// Sentinel errors for classification.
var (
	// ErrNoGroups indicates the document has no top-level groups.
	ErrNoGroups = errors.New("token document has no top-level groups")

	// ErrComponentGroup indicates the component group is missing or not a group.
	ErrComponentGroup = errors.New("component group is missing or not a group")
)

var (
	// componentPattern matches names that look like the brand/component set.
	componentPattern = regexp.MustCompile(`(?i)component|brand|semantic|token`)

	// primitivePattern matches names that look like shared primitive sets.
	primitivePattern = regexp.MustCompile(`(?i)primitive|base|core|global|spacing`)
)

// Options overrides heuristic group selection. Both fields are backed by
// the DESIGN_TOKENS_PRIMITIVE_GROUP and DESIGN_TOKENS_COMPONENT_GROUP
// environment variables in the build command.
type Options struct {
	// ForcePrimitiveGroup selects the primitive group by key, bypassing heuristics.
	ForcePrimitiveGroup string

	// ForceComponentGroup selects the component group by key, bypassing heuristics.
	ForceComponentGroup string
}

// Roles is the classification result.
type Roles struct {
	// Primitives are the shared token groups, in document order.
	Primitives []string

	// Component is the group whose children are brand subtrees.
	Component string
}

// Classify assigns roles to the document's top-level groups. Classification
// always reaches a decision: when no name matches the component heuristics
// the second group (or the only group) is used, and when no other group is
// left over for the primitive set the first group doubles as it. The only
// fatal condition is a component key that is absent or not a group.
func Classify(doc *token.Group, opts Options) (Roles, error) {
	keys := doc.TokenNames()
	if len(keys) == 0 {
		return Roles{}, ErrNoGroups
	}

	component := opts.ForceComponentGroup
	if component == "" {
		component = pickComponent(keys)
	}

	child, ok := doc.Get(component)
	if !ok {
		return Roles{}, fmt.Errorf("%w: %q not in %v", ErrComponentGroup, component, keys)
	}
	if _, isGroup := child.(*token.Group); !isGroup {
		return Roles{}, fmt.Errorf("%w: %q is not a group (keys: %v)", ErrComponentGroup, component, keys)
	}

	primitives := pickPrimitives(keys, component, opts.ForcePrimitiveGroup)

	return Roles{Primitives: primitives, Component: component}, nil
}

// pickComponent returns the first key matching a component-like name that
// does not also match a primitive-like name, falling back to a fixed
// positional choice.
func pickComponent(keys []string) string {
	for _, key := range keys {
		if componentPattern.MatchString(key) && !primitivePattern.MatchString(key) {
			return key
		}
	}
	// Positional fallback: the second group, or the only one.
	if len(keys) > 1 {
		return keys[1]
	}
	return keys[0]
}

// pickPrimitives returns every key except the component group. The result
// is never empty: a forced key wins outright, and when nothing is left over
// the first key stands in.
func pickPrimitives(keys []string, component, forced string) []string {
	if forced != "" {
		return []string{forced}
	}

	var primitives []string
	for _, key := range keys {
		if key == component {
			continue
		}
		primitives = append(primitives, key)
	}
	if len(primitives) == 0 {
		primitives = []string{keys[0]}
	}
	return primitives
}

// Describe renders a role assignment for diagnostics.
func (r Roles) Describe() string {
	return fmt.Sprintf("primitives=[%s] component=%s", strings.Join(r.Primitives, ", "), r.Component)
}
