/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for motagim.
package cmd

import (
	"github.com/spf13/cobra"

	buildcmd "bennypowers.dev/motagim/cmd/build"
	"bennypowers.dev/motagim/cmd/version"
	"bennypowers.dev/motagim/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "motagim",
	Short: "Generate per-brand theme sources from design tokens",
	Long:  `motagim turns a design tokens export into per-brand theme sources for web, Android, iOS, and Flutter.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger.SetVerbose(verbose)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable diagnostic output")

	rootCmd.AddCommand(buildcmd.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
