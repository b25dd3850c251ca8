// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import "testing"

func TestRenderStars(t *testing.T) {
	tests := []struct {
		rating float64
		want   string
	}{
		{0, "·····"},
		{3, "★★★··"},
		{4.5, "★★★★☆"},
		{4.9, "★★★★☆"},
		{5, "★★★★★"},
		{-1, "·····"},
		{7, "★★★★★"},
	}

	for _, tt := range tests {
		if got := RenderStars(tt.rating); got != tt.want {
			t.Errorf("RenderStars(%v) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}

func TestFormatCount(t *testing.T) {
	if got := FormatCount(1); got != "1 game" {
		t.Errorf("FormatCount(1) = %q", got)
	}
	if got := FormatCount(6); got != "6 games" {
		t.Errorf("FormatCount(6) = %q", got)
	}
}

func TestFormatPending(t *testing.T) {
	if got := FormatPending(1); got != "1 pending" {
		t.Errorf("FormatPending(1) = %q", got)
	}
	if got := FormatPending(3); got != "3 pending" {
		t.Errorf("FormatPending(3) = %q", got)
	}
}
