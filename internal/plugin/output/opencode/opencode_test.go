package opencode

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/jmylchreest/scalar-themes/internal/colour"
	"github.com/jmylchreest/scalar-themes/internal/plugin/output"
	plugintesting "github.com/jmylchreest/scalar-themes/internal/plugin/output/testing"
)

func newTestPlugin(t *testing.T) *Plugin {
	t.Helper()
	p := New()
	p.resolver = plugintesting.TestResolver(t, "linux")
	return p
}

// TestOpenCodePlugin runs all standard plugin tests using shared utilities.
func TestOpenCodePlugin(t *testing.T) {
	config := plugintesting.TestConfig{
		ExpectedName:  "opencode",
		ExpectedFiles: []string{ThemeFile},
		ExpectedLabel: "OpenCode",
	}

	plugintesting.RunAllTests(t, newTestPlugin(t), config)
}

func TestOpenCodePlugin_ContentValidation(t *testing.T) {
	files, err := newTestPlugin(t).Generate(plugintesting.CreateTestThemeData())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	content := string(files[ThemeFile])

	for _, required := range []string{
		`"lightMuted": "#7d7d7d"`,
		`"lightGreen": "#078657"`,
		`"lightYellow": "#987100"`,
		`"lightBlue": "#007ac2"`,
		`"lightOrange": "#cc4700"`,
		`"darkRed": "#e53b39"`,
	} {
		if !strings.Contains(content, required) {
			t.Errorf("Generated content missing required string: %s", required)
		}
	}
}

func TestOpenCodePlugin_ReferencesResolve(t *testing.T) {
	theme := NewTheme(colour.NewThemeData("Scalar"))

	if len(theme.Defs) != 2*len(colour.Lookup(colour.Dark).Roles()) {
		t.Errorf("got %d defs, want one per role and variant", len(theme.Defs))
	}
	for key, ref := range theme.Theme {
		if _, ok := theme.Defs[ref.Dark]; !ok {
			t.Errorf("%s: dark reference %q is undefined", key, ref.Dark)
		}
		if _, ok := theme.Defs[ref.Light]; !ok {
			t.Errorf("%s: light reference %q is undefined", key, ref.Light)
		}
	}
	if got := theme.Theme["warning"]; got != (AdaptiveRef{Dark: "darkYellow", Light: "lightYellow"}) {
		t.Errorf("warning = %+v", got)
	}
}

func TestOpenCodePlugin_PostExecute(t *testing.T) {
	p := newTestPlugin(t)
	original := `{"$schema": "https://opencode.ai/config.json", "theme": "system", "autoupdate": false}`
	if err := output.WriteFile(p.ConfigPath(), []byte(original)); err != nil {
		t.Fatal(err)
	}

	if err := p.PostExecute(context.Background(), nil); err != nil {
		t.Fatalf("PostExecute() error = %v", err)
	}

	raw, err := os.ReadFile(p.ConfigPath())
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("config is not valid JSON: %v", err)
	}
	if doc["theme"] != ThemeName {
		t.Errorf("theme = %v, want %s", doc["theme"], ThemeName)
	}
	if doc["$schema"] != "https://opencode.ai/config.json" || doc["autoupdate"] != false {
		t.Errorf("existing keys were not preserved: %v", doc)
	}

	want := "{\n  \"$schema\": \"https://opencode.ai/config.json\",\n  \"theme\": \"" + ThemeName + "\",\n  \"autoupdate\": false\n}\n"
	if string(raw) != want {
		t.Errorf("config = %q, want %q", raw, want)
	}
}

func TestOpenCodePlugin_PostExecuteWarnings(t *testing.T) {
	tests := []struct {
		name       string
		config     string
		wantInHint string
	}{
		{name: "missing config", wantInHint: "Create "},
		{name: "invalid config", config: "theme = scalar", wantInHint: `Set "theme"`},
		{name: "non-object config", config: `["scalar"]`, wantInHint: `Set "theme"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlugin(t)
			if tt.config != "" {
				if err := output.WriteFile(p.ConfigPath(), []byte(tt.config)); err != nil {
					t.Fatal(err)
				}
			}

			err := p.PostExecute(context.Background(), nil)
			w, ok := output.AsWarning(err)
			if !ok {
				t.Fatalf("PostExecute() error = %v, want *output.Warning", err)
			}
			if !strings.Contains(w.Hint, tt.wantInHint) {
				t.Errorf("Hint = %q, want it to contain %q", w.Hint, tt.wantInHint)
			}
		})
	}
}
