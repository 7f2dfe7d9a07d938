package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeOverridesOnlyPresentKeys(t *testing.T) {
	s, err := Decode(`
balloons = 12
label = "hello"
`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.Balloons != 12 {
		t.Errorf("balloons: got=%d want=12", s.Balloons)
	}
	if s.Label != "hello" {
		t.Errorf("label: got=%q want=%q", s.Label, "hello")
	}
	if s.Prompt != DefaultPrompt {
		t.Errorf("prompt should keep default, got=%q", s.Prompt)
	}
	if s.WindowWidth != ScreenWidth || s.WindowHeight != ScreenHeight {
		t.Errorf("window size should keep default, got=%dx%d", s.WindowWidth, s.WindowHeight)
	}
}

func TestDecodeRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"negative balloons": `balloons = -3`,
		"negative width":    `window_width = -1`,
		"broken toml":       `balloons = `,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode(data); err == nil {
				t.Fatalf("expected error for %q", data)
			}
		})
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s != DefaultSettings() {
		t.Fatalf("got=%+v want defaults", s)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balloons.toml")
	if err := os.WriteFile(path, []byte("seed = 42\nmuted = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Seed != 42 || !s.Muted {
		t.Fatalf("got seed=%d muted=%v", s.Seed, s.Muted)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balloons.toml")
	if err := os.WriteFile(path, []byte("ballons = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for misspelled key")
	}
}

func TestPointsFor(t *testing.T) {
	want := []int{1, 2, -1, 1, -1}
	for i, w := range want {
		if got := PointsFor(i); got != w {
			t.Errorf("palette %d: got=%d want=%d", i, got, w)
		}
	}
	if PointsFor(len(Palette)) != 0 || PointsFor(-1) != 0 {
		t.Error("out of range entries must be worth nothing")
	}
}
