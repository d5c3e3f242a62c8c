/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package android_test

import (
	"strings"
	"testing"

	"bennypowers.dev/motagim/brand"
	"bennypowers.dev/motagim/emit/android"
	"bennypowers.dev/motagim/internal/mapfs"
)

func TestEmit(t *testing.T) {
	mfs := mapfs.New()
	tokens := []*brand.ResolvedToken{
		{Brand: "Corp Lite", Path: []string{"color", "primary"}, Name: "color-primary", Value: "#cc0000"},
		{Brand: "Corp Lite", Path: []string{"spacing", "sm"}, Name: "spacing-sm", Value: "4px"},
		{Brand: "Corp Lite", Path: []string{"elevation"}, Name: "elevation", Value: 2},
		{Brand: "Corp Lite", Path: []string{"rounded"}, Name: "rounded", Value: true},
	}

	if err := android.New().Emit(mfs, "/repo", tokens); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}

	got, err := mfs.ReadFile("/repo/tokens/android/theme_corp_lite.xml")
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}

	want := `<?xml version="1.0" encoding="utf-8"?>
<!-- Generated by motagim. Do not edit directly. -->
<resources>
    <color name="CORP_LITE_COLOR_PRIMARY">#CC0000</color>
    <integer name="CORP_LITE_ELEVATION">2</integer>
    <bool name="CORP_LITE_ROUNDED">true</bool>
    <string name="CORP_LITE_SPACING_SM">4px</string>
</resources>
`
	if string(got) != want {
		t.Errorf("output mismatch.\n\nGot:\n%s\n\nWant:\n%s", got, want)
	}
}

func TestEmit_FullOverwrite(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/repo/tokens/android/theme_corp.xml", `<resources>
    <string name="HAND_ADDED">keep me?</string>
</resources>
`, 0644)

	tokens := []*brand.ResolvedToken{
		{Brand: "Corp", Path: []string{"color", "primary"}, Name: "color-primary", Value: "#cc0000"},
	}
	if err := android.New().Emit(mfs, "/repo", tokens); err != nil {
		t.Fatal(err)
	}

	got, _ := mfs.ReadFile("/repo/tokens/android/theme_corp.xml")
	if strings.Contains(string(got), "HAND_ADDED") {
		t.Errorf("android output must be fully regenerated, not merged:\n%s", got)
	}
}

func TestEmit_ColorNormalization(t *testing.T) {
	mfs := mapfs.New()
	tokens := []*brand.ResolvedToken{
		{Brand: "Corp", Path: []string{"overlay"}, Name: "overlay", Value: "rgba(0, 0, 0, 0.5)"},
		{Brand: "Corp", Path: []string{"label"}, Name: "label", Value: "red"},
	}

	if err := android.New().Emit(mfs, "/repo", tokens); err != nil {
		t.Fatal(err)
	}

	got, _ := mfs.ReadFile("/repo/tokens/android/theme_corp.xml")

	if !strings.Contains(string(got), `<color name="CORP_OVERLAY">#80000000</color>`) {
		t.Errorf("rgba() should normalize to #AARRGGBB:\n%s", got)
	}
	// Bare words are not treated as colors even when they name one.
	if !strings.Contains(string(got), `<string name="CORP_LABEL">red</string>`) {
		t.Errorf("bare string should stay a string resource:\n%s", got)
	}
}
