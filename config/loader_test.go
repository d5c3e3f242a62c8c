/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/motagim/config"
	"bennypowers.dev/motagim/internal/mapfs"
)

func TestLoad_YAML(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/.config/design-tokens.yaml", `files:
  - tokens/core.json
  - tokens/brands/*.json
primitiveGroup: Primitives
componentGroup: Brand Themes
`, 0644)

	cfg, err := config.Load(mfs, "/proj")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, []string{"tokens/core.json", "tokens/brands/*.json"}, cfg.Files)
	assert.Equal(t, "Primitives", cfg.PrimitiveGroup)
	assert.Equal(t, "Brand Themes", cfg.ComponentGroup)
}

func TestLoad_JSON(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/.config/design-tokens.json", `{
		"files": ["tokens/design-tokens.json"],
		"componentGroup": "Themes"
	}`, 0644)

	cfg, err := config.Load(mfs, "/proj")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "Themes", cfg.ComponentGroup)
}

func TestLoad_YAMLTakesPriorityOverJSON(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/.config/design-tokens.yaml", "componentGroup: FromYAML\n", 0644)
	mfs.AddFile("/proj/.config/design-tokens.json", `{"componentGroup": "FromJSON"}`, 0644)

	cfg, err := config.Load(mfs, "/proj")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "FromYAML", cfg.ComponentGroup)
}

func TestLoad_MissingReturnsNil(t *testing.T) {
	cfg, err := config.Load(mapfs.New(), "/proj")
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_EmptyFilesFallsBackToDefault(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/.config/design-tokens.yaml", "primitiveGroup: Primitives\n", 0644)

	cfg, err := config.Load(mfs, "/proj")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, []string{config.DefaultTokensFile}, cfg.Files)
}

func TestLoadOrDefault(t *testing.T) {
	cfg := config.LoadOrDefault(mapfs.New(), "/proj")
	require.NotNil(t, cfg)
	assert.Equal(t, []string{config.DefaultTokensFile}, cfg.Files)
	assert.Empty(t, cfg.PrimitiveGroup)
	assert.Empty(t, cfg.ComponentGroup)
}

func TestExpandFiles_PlainPath(t *testing.T) {
	cfg := &config.Config{Files: []string{"tokens/design-tokens.json"}}

	paths, err := cfg.ExpandFiles(mapfs.New(), "/proj")
	require.NoError(t, err)

	assert.Equal(t, []string{"/proj/tokens/design-tokens.json"}, paths)
}

func TestExpandFiles_Glob(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/tokens/brands/corp.json", "{}", 0644)
	mfs.AddFile("/proj/tokens/brands/zen.json", "{}", 0644)
	mfs.AddFile("/proj/tokens/brands/notes.md", "", 0644)

	cfg := &config.Config{Files: []string{"tokens/brands/*.json"}}
	paths, err := cfg.ExpandFiles(mfs, "/proj")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"/proj/tokens/brands/corp.json",
		"/proj/tokens/brands/zen.json",
	}, paths)
}

func TestExpandFiles_DoublestarGlob(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/tokens/core.json", "{}", 0644)
	mfs.AddFile("/proj/tokens/brands/corp.json", "{}", 0644)

	cfg := &config.Config{Files: []string{"tokens/**/*.json"}}
	paths, err := cfg.ExpandFiles(mfs, "/proj")
	require.NoError(t, err)

	assert.Contains(t, paths, "/proj/tokens/brands/corp.json")
}

func TestClassifyOptions(t *testing.T) {
	cfg := &config.Config{PrimitiveGroup: "Base", ComponentGroup: "Themes"}
	opts := cfg.ClassifyOptions()

	assert.Equal(t, "Base", opts.ForcePrimitiveGroup)
	assert.Equal(t, "Themes", opts.ForceComponentGroup)
}
