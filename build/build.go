/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build runs the token build pipeline: normalize, classify,
// flatten, walk each brand, and fan out to the platform emitters.
package build

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"bennypowers.dev/motagim/brand"
	"bennypowers.dev/motagim/classify"
	"bennypowers.dev/motagim/config"
	"bennypowers.dev/motagim/emit"
	"bennypowers.dev/motagim/emit/android"
	"bennypowers.dev/motagim/emit/css"
	"bennypowers.dev/motagim/emit/dart"
	"bennypowers.dev/motagim/emit/swift"
	"bennypowers.dev/motagim/emit/typescript"
	"bennypowers.dev/motagim/fs"
	"bennypowers.dev/motagim/internal/logger"
	"bennypowers.dev/motagim/resolver"
	"bennypowers.dev/motagim/token"
)

// ErrMissingInput indicates no token document was found.
var ErrMissingInput = errors.New("no token document found")

// Platform selects which emitters run for an invocation.
type Platform string

const (
	// PlatformWeb runs the CSS and TypeScript emitters.
	PlatformWeb Platform = "web"

	// PlatformAndroid runs the Android resource emitter.
	PlatformAndroid Platform = "android"

	// PlatformIOS runs the Swift emitter.
	PlatformIOS Platform = "ios"

	// PlatformFlutter runs the Dart emitter.
	PlatformFlutter Platform = "flutter"

	// PlatformAll runs every emitter.
	PlatformAll Platform = "all"
)

// EmittersFor maps a platform selector to its emitter set. An unrecognized
// selector yields an empty set and a warning, not an error.
func EmittersFor(platform string) []emit.Emitter {
	switch Platform(strings.ToLower(platform)) {
	case PlatformWeb:
		return []emit.Emitter{css.New(), typescript.New()}
	case PlatformAndroid:
		return []emit.Emitter{android.New()}
	case PlatformIOS:
		return []emit.Emitter{swift.New()}
	case PlatformFlutter:
		return []emit.Emitter{dart.New()}
	case PlatformAll, "":
		return []emit.Emitter{css.New(), typescript.New(), android.New(), swift.New(), dart.New()}
	default:
		logger.Warn("unknown platform %q (expected web, android, ios, flutter, or all); nothing to generate", platform)
		return nil
	}
}

// Run executes one build invocation rooted at rootDir. Brands are processed
// sequentially; within one brand the selected emitters run concurrently,
// each writing its own file. The first emitter failure aborts the
// invocation; files written for earlier brands stay in place.
func Run(filesystem fs.FileSystem, cfg *config.Config, rootDir, platform string) error {
	doc, err := loadDocument(filesystem, cfg, rootDir)
	if err != nil {
		return err
	}

	roles, err := classify.Classify(doc, cfg.ClassifyOptions())
	if err != nil {
		return fmt.Errorf("failed to classify token groups: %w", err)
	}
	logger.Debug("classified token groups: %s", roles.Describe())

	table := buildTable(doc, roles)
	logger.Debug("primitive lookup table has %d entries: %s", len(table), strings.Join(table.Keys(), ", "))

	emitters := EmittersFor(platform)
	if len(emitters) == 0 {
		return nil
	}

	componentNode, _ := doc.Get(roles.Component)
	component := componentNode.(*token.Group)

	built := 0
	for _, name := range component.TokenNames() {
		child, _ := component.Get(name)
		subtree, ok := child.(*token.Group)
		if !ok {
			logger.Warn("skipping brand %q: not a token group", name)
			continue
		}

		tokens := brand.Walk(name, subtree, table)
		if err := emitBrand(filesystem, rootDir, name, tokens, emitters); err != nil {
			return err
		}
		built++
	}

	logger.Info("generated %d file(s) across %d brand(s)", built*len(emitters), built)
	return nil
}

// loadDocument reads every configured token document and merges their
// top-level groups in discovery order, last write wins.
func loadDocument(filesystem fs.FileSystem, cfg *config.Config, rootDir string) (*token.Group, error) {
	paths, err := cfg.ExpandFiles(filesystem, rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to expand token file patterns: %w", err)
	}

	var found []string
	for _, path := range paths {
		if filesystem.Exists(path) {
			found = append(found, path)
		}
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: looked for %s; export your design tokens there or set files in .config/design-tokens.yaml",
			ErrMissingInput, strings.Join(paths, ", "))
	}

	doc := token.NewGroup()
	for _, path := range found {
		tree, err := token.ParseFile(filesystem, path)
		if err != nil {
			return nil, err
		}
		for _, name := range tree.Names() {
			child, _ := tree.Get(name)
			doc.Set(name, child)
		}
	}
	return doc, nil
}

// buildTable flattens every primitive group into one lookup table, merged
// in discovery order with last-write-wins on collision.
func buildTable(doc *token.Group, roles classify.Roles) resolver.Table {
	table := resolver.Table{}
	for _, name := range roles.Primitives {
		child, ok := doc.Get(name)
		if !ok {
			logger.Warn("primitive group %q not found in token document", name)
			continue
		}
		group, ok := child.(*token.Group)
		if !ok {
			logger.Warn("primitive group %q is not a group", name)
			continue
		}
		table.Merge(resolver.FlattenModes(group))
	}
	return table
}

// emitBrand fans the emitters out for one brand and waits for all of them.
func emitBrand(filesystem fs.FileSystem, rootDir, name string, tokens []*brand.ResolvedToken, emitters []emit.Emitter) error {
	var group errgroup.Group
	for _, e := range emitters {
		e := e
		group.Go(func() error {
			if err := e.Emit(filesystem, rootDir, tokens); err != nil {
				return fmt.Errorf("brand %q: %w", name, err)
			}
			return nil
		})
	}
	return group.Wait()
}
