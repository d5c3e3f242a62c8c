/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for the theme build.
package config

import (
	"bennypowers.dev/motagim/classify"
)

// DefaultTokensFile is the token document read when no config overrides it.
const DefaultTokensFile = "tokens/design-tokens.json"

// Config represents the build configuration.
type Config struct {
	// Files specifies token documents to load (globs allowed). All matched
	// documents are merged top-level before classification.
	Files []string `yaml:"files" json:"files"`

	// PrimitiveGroup forces the primitive group key, bypassing heuristics.
	PrimitiveGroup string `yaml:"primitiveGroup" json:"primitiveGroup"`

	// ComponentGroup forces the component group key, bypassing heuristics.
	ComponentGroup string `yaml:"componentGroup" json:"componentGroup"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Files: []string{DefaultTokensFile},
	}
}

// ClassifyOptions returns the classifier overrides carried by this config.
func (c *Config) ClassifyOptions() classify.Options {
	return classify.Options{
		ForcePrimitiveGroup: c.PrimitiveGroup,
		ForceComponentGroup: c.ComponentGroup,
	}
}
