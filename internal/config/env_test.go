package config

import "testing"

func TestEnvLoader_Load(t *testing.T) {
	l := NewEnvLoaderFrom(DefaultEnvPrefix, []string{
		"GRID_GRID_VERTICAL=20",
		"GRID_MAJOR_ENABLED=true",
		"GRID_MAJOR_INTERVAL=1",
		"GRID_COLORS_BACKGROUND=#000",
		"GRID_LOG_LEVEL=debug",
		"HOME=/root",
	})

	config, err := l.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := config["grid"].(map[string]any)["vertical"]; got != int64(20) {
		t.Errorf("grid.vertical = %v (%T), want 20", got, got)
	}
	major := config["major"].(map[string]any)
	if major["enabled"] != true {
		t.Errorf("major.enabled = %v, want true", major["enabled"])
	}
	if major["interval"] != int64(1) {
		t.Errorf("major.interval = %v (%T), want integer 1", major["interval"], major["interval"])
	}
	if got := config["colors"].(map[string]any)["background"]; got != "#000" {
		t.Errorf("colors.background = %v, want #000", got)
	}
	if got := config["logging"].(map[string]any)["level"]; got != "debug" {
		t.Errorf("logging.level = %v, want debug", got)
	}
	if _, ok := config["home"]; ok {
		t.Error("unprefixed variable should be ignored")
	}
}

func TestEnvLoader_ProcessEnvironment(t *testing.T) {
	t.Setenv("GRID_SURFACE_WIDTH", "640")

	config, err := NewEnvLoader(DefaultEnvPrefix).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := config["surface"].(map[string]any)["width"]; got != int64(640) {
		t.Errorf("surface.width = %v, want 640", got)
	}
}

func TestEnvLoader_envToPath(t *testing.T) {
	l := NewEnvLoader(DefaultEnvPrefix)

	tests := []struct {
		env  string
		want string
	}{
		{"GRID_GRID_VERTICAL", "grid.vertical"},
		{"GRID_COLORS_MAJOR", "colors.major"},
		{"GRID_MAJOR_LINE_INTERVAL", "major.lineInterval"},
		{"GRID_OUTPUT", "output"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := l.envToPath(tt.env); got != tt.want {
				t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestEnvLoader_parseValue(t *testing.T) {
	l := NewEnvLoader(DefaultEnvPrefix)

	tests := []struct {
		input string
		want  any
	}{
		{"", ""},
		{"true", true},
		{"Yes", true},
		{"off", false},
		{"1", int64(1)},
		{"0", int64(0)},
		{"-3", int64(-3)},
		{"#FFF", "#FFF"},
		{"rgb(1,2,3)", "rgb(1,2,3)"},
		{"1.5", "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := l.parseValue(tt.input); got != tt.want {
				t.Errorf("parseValue(%q) = %v (%T), want %v (%T)", tt.input, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestEnvLoader_AddMapping(t *testing.T) {
	l := NewEnvLoaderFrom(DefaultEnvPrefix, []string{"GRID_BG=#123"})
	l.AddMapping("GRID_BG", "colors.background")

	config, _ := l.Load()
	if got := config["colors"].(map[string]any)["background"]; got != "#123" {
		t.Errorf("colors.background = %v, want #123", got)
	}
}

func TestEnvLoader_SkipsBareSections(t *testing.T) {
	l := NewEnvLoaderFrom(DefaultEnvPrefix, []string{
		"GRID_GRID=1",
		"GRID_SURFACE=x",
		"GRID_GRID_VERTICAL=12",
	})

	config, err := l.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, ok := config["surface"]; ok {
		t.Errorf("surface = %v, want no entry", config["surface"])
	}
	g, ok := config["grid"].(map[string]any)
	if !ok {
		t.Fatalf("grid = %v (%T), want a section map", config["grid"], config["grid"])
	}
	if g["vertical"] != int64(12) {
		t.Errorf("grid.vertical = %v, want 12", g["vertical"])
	}

	s, err := Load(Options{Env: l})
	if err != nil {
		t.Fatalf("Load() with stray variables error = %v", err)
	}
	if s.Grid.Vertical != 12 {
		t.Errorf("Settings.Grid.Vertical = %d, want 12", s.Grid.Vertical)
	}
}
