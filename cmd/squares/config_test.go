package main

import (
	"strings"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(""), "squares.yaml")
	if err != nil {
		t.Fatalf("empty config should parse: %v", err)
	}
	if cfg.Fill != "*" || cfg.Min != 1 || cfg.Max != 10 || cfg.Color != "" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	data := []byte("fill: \"#\"\nmin: 3\nmax: 5\ncolor: cyan\n")
	cfg, err := ParseConfig(data, "squares.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Fill != "#" || cfg.Min != 3 || cfg.Max != 5 || cfg.Color != "cyan" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestParseConfigRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"multi-rune fill", "fill: '**'\n"},
		{"negative min", "min: -1\n"},
		{"max below min", "min: 5\nmax: 2\n"},
		{"unknown color", "color: mauve\n"},
		{"not yaml", ": : :\n"},
	}
	for _, tc := range cases {
		if _, err := ParseConfig([]byte(tc.data), "squares.yaml"); err == nil {
			t.Errorf("%s should be rejected", tc.name)
		}
	}
}

func TestRenderSquare(t *testing.T) {
	got := renderSquare(3, "*")
	want := "***\n***\n***"
	if got != want {
		t.Errorf("renderSquare(3) = %q, want %q", got, want)
	}

	if renderSquare(1, "#") != "#" {
		t.Errorf("renderSquare(1) should be a single fill character")
	}
}

func TestRenderSquareUsesConfiguredFill(t *testing.T) {
	got := renderSquare(2, "#")
	if strings.Contains(got, "*") || !strings.Contains(got, "##") {
		t.Errorf("unexpected rendering: %q", got)
	}
}
