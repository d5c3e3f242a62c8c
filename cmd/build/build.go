/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build provides the build command for motagim.
package build

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	buildlib "bennypowers.dev/motagim/build"
	"bennypowers.dev/motagim/config"
	"bennypowers.dev/motagim/fs"
)

// Cmd is the build cobra command.
var Cmd = &cobra.Command{
	Use:   "build [platform]",
	Short: "Generate theme sources for one or all platforms",
	Long: `Generate per-brand theme sources from the design tokens document.

Platforms:
  web      CSS custom properties and a TypeScript constants module
  android  Android resource XML
  ios      Swift theme enum
  flutter  Dart theme class
  all      everything above (default)

The token document is read from tokens/design-tokens.json unless
.config/design-tokens.yaml configures other files. Group classification can
be forced with the DESIGN_TOKENS_PRIMITIVE_GROUP and
DESIGN_TOKENS_COMPONENT_GROUP environment variables or the matching flags.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("tokens", "", "Token document path (overrides config)")
	Cmd.Flags().String("primitive-group", "", "Force the primitive group key")
	Cmd.Flags().String("component-group", "", "Force the component group key")
}

func run(cmd *cobra.Command, args []string) error {
	platform := "all"
	if len(args) == 1 {
		platform = args[0]
	}

	v := viper.New()
	if err := v.BindEnv("primitive-group", "DESIGN_TOKENS_PRIMITIVE_GROUP"); err != nil {
		return err
	}
	if err := v.BindEnv("component-group", "DESIGN_TOKENS_COMPONENT_GROUP"); err != nil {
		return err
	}
	if err := v.BindPFlag("primitive-group", cmd.Flags().Lookup("primitive-group")); err != nil {
		return err
	}
	if err := v.BindPFlag("component-group", cmd.Flags().Lookup("component-group")); err != nil {
		return err
	}

	filesystem := fs.NewOSFileSystem()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg := config.LoadOrDefault(filesystem, cwd)
	if tokens, _ := cmd.Flags().GetString("tokens"); tokens != "" {
		cfg.Files = []string{tokens}
	}
	if forced := v.GetString("primitive-group"); forced != "" {
		cfg.PrimitiveGroup = forced
	}
	if forced := v.GetString("component-group"); forced != "" {
		cfg.ComponentGroup = forced
	}

	return buildlib.Run(filesystem, cfg, cwd, platform)
}
