/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bennypowers.dev/motagim/resolver"
)

func TestResolve_Hit(t *testing.T) {
	table := resolver.Table{"color.brand.primary": "#c00"}

	value, ok := resolver.Resolve("{color.brand.primary}", table)

	assert.True(t, ok)
	assert.Equal(t, "#c00", value)
}

func TestResolve_MissPassesThrough(t *testing.T) {
	value, ok := resolver.Resolve("{color.missing}", resolver.Table{})

	assert.False(t, ok)
	assert.Equal(t, "{color.missing}", value)
}

func TestResolve_SingleHopOnly(t *testing.T) {
	// b's value is itself a reference. Resolving {b} must return the
	// literal "{a}", not chase it down to "#111".
	table := resolver.Table{
		"a": "#111",
		"b": "{a}",
	}

	value, ok := resolver.Resolve("{b}", table)

	assert.True(t, ok)
	assert.Equal(t, "{a}", value)
}

func TestResolve_EmbeddedReferenceUntouched(t *testing.T) {
	table := resolver.Table{"color.border": "#ddd"}

	value, ok := resolver.Resolve("1px solid {color.border}", table)

	assert.True(t, ok)
	assert.Equal(t, "1px solid {color.border}", value)
}

func TestResolve_NonStringPassesThrough(t *testing.T) {
	value, ok := resolver.Resolve(700, resolver.Table{})

	assert.True(t, ok)
	assert.Equal(t, 700, value)
}

func TestResolve_NonStringTableValue(t *testing.T) {
	table := resolver.Table{"font.weight.bold": 700}

	value, ok := resolver.Resolve("{font.weight.bold}", table)

	assert.True(t, ok)
	assert.Equal(t, 700, value)
}
