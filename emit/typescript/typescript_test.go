/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package typescript_test

import (
	"strings"
	"testing"

	"bennypowers.dev/motagim/brand"
	"bennypowers.dev/motagim/emit/typescript"
	"bennypowers.dev/motagim/internal/mapfs"
)

func corpTokens() []*brand.ResolvedToken {
	return []*brand.ResolvedToken{
		{Brand: "Corp", Path: []string{"spacing", "sm"}, Name: "spacing-sm", Value: "4px"},
		{Brand: "Corp", Path: []string{"color", "primary"}, Name: "color-primary", Value: "#c00"},
		{Brand: "Corp", Path: []string{"font", "weight"}, Name: "font-weight", Value: 700},
	}
}

func TestEmit(t *testing.T) {
	mfs := mapfs.New()

	if err := typescript.New().Emit(mfs, "/repo", corpTokens()); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}

	got, err := mfs.ReadFile("/repo/src/styles/theme-corp.ts")
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}

	want := `// Generated by motagim. Do not edit directly.
export const corpColorPrimary = '#c00';
export const corpFontWeight = 700;
export const corpSpacingSm = '4px';
`
	if string(got) != want {
		t.Errorf("output mismatch.\n\nGot:\n%s\n\nWant:\n%s", got, want)
	}
}

func TestEmit_MergePreservesHandwrittenConstants(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/repo/src/styles/theme-corp.ts", `// Generated by motagim. Do not edit directly.
export const corpColorPrimary = '#000';
export const customHandwritten = '1px';
`, 0644)

	if err := typescript.New().Emit(mfs, "/repo", corpTokens()); err != nil {
		t.Fatal(err)
	}

	got, _ := mfs.ReadFile("/repo/src/styles/theme-corp.ts")

	if !strings.Contains(string(got), "export const customHandwritten = '1px';") {
		t.Errorf("hand-added constant was destroyed:\n%s", got)
	}
	if !strings.Contains(string(got), "export const corpColorPrimary = '#c00';") {
		t.Errorf("freshly computed token did not win on collision:\n%s", got)
	}
}

func TestEmit_SortedByIdentifier(t *testing.T) {
	mfs := mapfs.New()

	if err := typescript.New().Emit(mfs, "/repo", corpTokens()); err != nil {
		t.Fatal(err)
	}

	got, _ := mfs.ReadFile("/repo/src/styles/theme-corp.ts")
	lines := strings.Split(strings.TrimSpace(string(got)), "\n")[1:]
	for i := 1; i < len(lines); i++ {
		if lines[i-1] > lines[i] {
			t.Errorf("constants not sorted:\n%s", got)
		}
	}
}
