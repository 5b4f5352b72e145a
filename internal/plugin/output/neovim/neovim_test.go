package neovim

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	plugintesting "github.com/jmylchreest/scalar-themes/internal/plugin/output/testing"
)

func newTestPlugin(t *testing.T) *Plugin {
	t.Helper()
	p := New()
	p.resolver = plugintesting.TestResolver(t, "linux")
	p.lookPath = func(string) (string, error) { return "", errors.New("not found") }
	return p
}

// TestNeovimPlugin runs all standard plugin tests using shared utilities.
func TestNeovimPlugin(t *testing.T) {
	config := plugintesting.TestConfig{
		ExpectedName:         "neovim",
		ExpectedFiles:        []string{"colors/scalar.lua", "lua/lualine/themes/scalar.lua"},
		ExpectedLabel:        "Neovim",
		ExpectedDirSubstring: "nvim", // Plugin uses .config/nvim, not .config/neovim
	}

	plugintesting.RunAllTests(t, newTestPlugin(t), config)
}

// TestNeovimPlugin_ContentValidation tests neovim-specific content requirements.
func TestNeovimPlugin_ContentValidation(t *testing.T) {
	files, err := newTestPlugin(t).Generate(plugintesting.CreateTestThemeData())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	tests := []struct {
		file     string
		required []string
	}{
		{
			file: "colors/scalar.lua",
			required: []string{
				"-- Scalar colorscheme for Neovim",
				`vim.cmd("highlight clear")`,
				"vim.o.termguicolors = true",
				`vim.g.colors_name = "scalar"`,
				"  dark = {\n    bg        = \"#0f0f0f\",\n",
				"  light = {\n    bg        = \"#ffffff\",\n",
				`yellow    = "#987100"`,
				`indent        = "#383838"`,
				`indent_active = "#585858"`,
				`indent        = "#d7d7d7"`,
				`indent_active = "#b8b8b8"`,
				"    ansi = {\n      \"#1a1a1a\",\n      \"#e53b39\",\n",
			},
		},
		{
			file: "lua/lualine/themes/scalar.lua",
			required: []string{
				`theme = "scalar"`,
				`yellow  = "#987100"`,
				`surface = "#1a1a1a"`,
				"return {\n  normal = {",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			content := string(files[tt.file])
			for _, required := range tt.required {
				if !strings.Contains(content, required) {
					t.Errorf("Generated content missing required string: %q", required)
				}
			}
			if strings.Contains(content, "<no value>") {
				t.Error("template rendered a missing value")
			}
		})
	}

	if got := strings.Count(string(files["colors/scalar.lua"]), "\n      \"#"); got != 32 {
		t.Errorf("got %d ansi entries, want 16 per variant", got)
	}
}

func TestNeovimPlugin_ThemeName(t *testing.T) {
	p := newTestPlugin(t)
	p.themeName = "scalar-alt"

	files, err := p.Generate(plugintesting.CreateTestThemeData())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	content, ok := files["colors/scalar-alt.lua"]
	if !ok {
		t.Fatalf("Generate() files = %v", files)
	}
	if !strings.Contains(string(content), `vim.g.colors_name = "scalar-alt"`) {
		t.Error("colors_name does not follow the theme name")
	}

	p.themeName = ""
	if err := p.Validate(); err == nil {
		t.Error("Validate() should reject an empty theme name")
	}
}

func TestNeovimPlugin_CustomTemplate(t *testing.T) {
	p := newTestPlugin(t)
	custom := filepath.Join(p.resolver.TemplateDir(), "neovim", "lualine.lua.tmpl")
	if err := os.MkdirAll(filepath.Dir(custom), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(custom, []byte(`return { bg = "{{ (palette .Theme "dark").Background | hex }}" }`), 0644); err != nil {
		t.Fatal(err)
	}

	files, err := p.Generate(plugintesting.CreateTestThemeData())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got := string(files["lua/lualine/themes/scalar.lua"]); got != `return { bg = "#0f0f0f" }` {
		t.Errorf("custom template output = %q", got)
	}
}

func TestNeovimPlugin_PreExecute(t *testing.T) {
	t.Run("skips without nvim or config", func(t *testing.T) {
		skip, reason, err := newTestPlugin(t).PreExecute(context.Background())
		if err != nil || !skip {
			t.Fatalf("PreExecute() = (%v, %q, %v), want skip", skip, reason, err)
		}
	})

	t.Run("runs when config exists", func(t *testing.T) {
		p := newTestPlugin(t)
		if err := os.MkdirAll(p.DefaultOutputDir(), 0755); err != nil {
			t.Fatal(err)
		}
		if skip, _, _ := p.PreExecute(context.Background()); skip {
			t.Error("PreExecute() should not skip when the config directory exists")
		}
	})

	t.Run("runs when nvim is on PATH", func(t *testing.T) {
		p := newTestPlugin(t)
		p.lookPath = func(string) (string, error) { return "/usr/bin/nvim", nil }
		if skip, _, _ := p.PreExecute(context.Background()); skip {
			t.Error("PreExecute() should not skip when nvim is installed")
		}
	})
}

func TestGetEmbeddedTemplates(t *testing.T) {
	for _, name := range []string{"scalar.lua.tmpl", "lualine.lua.tmpl"} {
		if _, err := GetEmbeddedTemplates().ReadFile(name); err != nil {
			t.Errorf("embedded template %s missing: %v", name, err)
		}
	}
}
