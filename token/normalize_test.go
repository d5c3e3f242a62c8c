/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/motagim/token"
)

func leafValue(t *testing.T, g *token.Group, path ...string) any {
	t.Helper()
	var node token.Node = g
	for _, key := range path {
		group, ok := node.(*token.Group)
		require.True(t, ok, "expected group at %v", path)
		node, ok = group.Get(key)
		require.True(t, ok, "missing key %q", key)
	}
	leaf, ok := node.(*token.Leaf)
	require.True(t, ok, "expected leaf at %v", path)
	return leaf.Value
}

func TestParse_WrapsBarePrimitives(t *testing.T) {
	tree, err := token.Parse([]byte(`{
		"color": {
			"primary": "#ff0000",
			"weight": 700,
			"enabled": true
		}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "#ff0000", leafValue(t, tree, "color", "primary"))
	assert.Equal(t, 700, leafValue(t, tree, "color", "weight"))
	assert.Equal(t, true, leafValue(t, tree, "color", "enabled"))
}

func TestParse_ToleratesCanonicalLeaves(t *testing.T) {
	sugar := []byte(`{"color": {"primary": "#ff0000"}}`)
	canonical := []byte(`{"color": {"primary": {"value": "#ff0000"}}}`)

	fromSugar, err := token.Parse(sugar)
	require.NoError(t, err)
	fromCanonical, err := token.Parse(canonical)
	require.NoError(t, err)

	assert.Equal(t,
		leafValue(t, fromSugar, "color", "primary"),
		leafValue(t, fromCanonical, "color", "primary"))
}

func TestParse_DollarValueMarker(t *testing.T) {
	tree, err := token.Parse([]byte(`{"color": {"primary": {"$value": "#0000ff"}}}`))
	require.NoError(t, err)

	assert.Equal(t, "#0000ff", leafValue(t, tree, "color", "primary"))
}

func TestParse_Idempotent(t *testing.T) {
	canonical := []byte(`{"color": {"primary": {"value": "{base.color.red}"}}}`)

	first, err := token.Parse(canonical)
	require.NoError(t, err)
	second, err := token.Parse(canonical)
	require.NoError(t, err)

	assert.Equal(t, leafValue(t, first, "color", "primary"), leafValue(t, second, "color", "primary"))
	assert.Equal(t, first.Names(), second.Names())
}

func TestParse_RepairsReferenceSeparators(t *testing.T) {
	tree, err := token.Parse([]byte(`{
		"button": {
			"background": {"value": "{color/brand/primary}"},
			"label": {"value": "16px/24px"}
		}
	}`))
	require.NoError(t, err)

	// Slashes inside the reference become dots.
	assert.Equal(t, "{color.brand.primary}", leafValue(t, tree, "button", "background"))
	// Slashes outside any reference are untouched.
	assert.Equal(t, "16px/24px", leafValue(t, tree, "button", "label"))
}

func TestParse_MetadataPassesThrough(t *testing.T) {
	tree, err := token.Parse([]byte(`{
		"$schema": "https://example.com/tokens.json",
		"color": {"primary": "#fff"}
	}`))
	require.NoError(t, err)

	meta, ok := tree.Get("$schema")
	require.True(t, ok)
	leaf, ok := meta.(*token.Leaf)
	require.True(t, ok, "metadata must never become a group")
	assert.Equal(t, "https://example.com/tokens.json", leaf.Value)

	assert.Equal(t, []string{"color"}, tree.TokenNames())
}

func TestParse_PreservesKeyOrder(t *testing.T) {
	tree, err := token.Parse([]byte(`{"zebra": {}, "apple": {}, "mango": {}}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"zebra", "apple", "mango"}, tree.Names())
}

func TestParse_StripsComments(t *testing.T) {
	tree, err := token.Parse([]byte(`{
		// exported from the design tool
		"color": {"primary": "#fff"}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "#fff", leafValue(t, tree, "color", "primary"))
}

func TestParse_RejectsNonObjectRoot(t *testing.T) {
	_, err := token.Parse([]byte(`["not", "an", "object"]`))
	assert.Error(t, err)
}
