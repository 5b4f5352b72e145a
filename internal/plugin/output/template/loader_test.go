package template

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"test.tmpl":              {Data: []byte("embedded {{ .Name }}\n")},
		"nested/lualine.tmpl":    {Data: []byte("nested\n")},
		"README.md":              {Data: []byte("not a template")},
		"nested/ignored.txt.bak": {Data: []byte("nope")},
	}
}

func TestLoader_Load(t *testing.T) {
	tmpDir := t.TempDir()
	loader := New("testplugin", testFS()).WithCustomBase(tmpDir)

	t.Run("loads embedded template when no custom exists", func(t *testing.T) {
		content, fromCustom, err := loader.Load("test.tmpl")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fromCustom {
			t.Error("expected embedded template, got custom")
		}
		if !strings.HasPrefix(string(content), "embedded") {
			t.Errorf("unexpected content %q", content)
		}
	})

	t.Run("loads custom template when it exists", func(t *testing.T) {
		customContent := []byte("# This is a custom template\n")
		customPath := filepath.Join(tmpDir, "testplugin", "test.tmpl")
		if err := os.MkdirAll(filepath.Dir(customPath), 0755); err != nil {
			t.Fatalf("failed to create custom dir: %v", err)
		}
		if err := os.WriteFile(customPath, customContent, 0644); err != nil {
			t.Fatalf("failed to write custom template: %v", err)
		}

		content, fromCustom, err := loader.Load("test.tmpl")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !fromCustom {
			t.Error("expected custom template, got embedded")
		}
		if string(content) != string(customContent) {
			t.Errorf("expected custom content %q, got %q", customContent, content)
		}
	})

	t.Run("returns error for non-existent template", func(t *testing.T) {
		if _, _, err := loader.Load("nonexistent.tmpl"); err == nil {
			t.Error("expected error for non-existent template")
		}
	})
}

func TestLoader_VerboseLogging(t *testing.T) {
	var lines []string
	loader := New("testplugin", testFS()).
		WithCustomBase(t.TempDir()).
		WithVerbose(true, loggerFunc(func(format string, v ...any) {
			lines = append(lines, format)
		}))

	if _, _, err := loader.Load("test.tmpl"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 || !strings.Contains(lines[0], "embedded") {
		t.Errorf("expected one embedded-template log line, got %v", lines)
	}
}

func TestLoader_Paths(t *testing.T) {
	loader := New("testplugin", testFS()).WithCustomBase("/home/user/.config/scalar-themes/templates")

	if got, want := loader.CustomDir(), filepath.Join("/home/user/.config/scalar-themes/templates", "testplugin"); got != want {
		t.Errorf("CustomDir() = %q, want %q", got, want)
	}
	if got, want := loader.CustomPath("nested/lualine.tmpl"), filepath.Join("/home/user/.config/scalar-themes/templates", "testplugin", "nested", "lualine.tmpl"); got != want {
		t.Errorf("CustomPath() = %q, want %q", got, want)
	}
}

func TestLoader_ListEmbeddedTemplates(t *testing.T) {
	loader := New("testplugin", testFS())

	templates, err := loader.ListEmbeddedTemplates()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(templates) != 2 {
		t.Fatalf("expected 2 templates, got %v", templates)
	}
}

func TestLoader_DumpAllTemplates(t *testing.T) {
	tmpDir := t.TempDir()
	loader := New("testplugin", testFS()).WithCustomBase(tmpDir)

	dumped, err := loader.DumpAllTemplates(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dumped) != 2 {
		t.Fatalf("expected 2 dumped templates, got %v", dumped)
	}
	if !loader.HasCustomTemplate("nested/lualine.tmpl") {
		t.Error("nested template was not dumped")
	}

	t.Run("second dump without force skips existing", func(t *testing.T) {
		dumped, err := loader.DumpAllTemplates(false)
		if !errors.Is(err, ErrTemplateExists) {
			t.Errorf("expected ErrTemplateExists, got %v", err)
		}
		if len(dumped) != 0 {
			t.Errorf("expected nothing dumped, got %v", dumped)
		}
	})

	t.Run("force overwrites", func(t *testing.T) {
		dumped, err := loader.DumpAllTemplates(true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(dumped) != 2 {
			t.Errorf("expected 2 dumped templates, got %v", dumped)
		}
	})
}

func TestLoader_GetInfo(t *testing.T) {
	loader := New("testplugin", testFS()).WithCustomBase(t.TempDir())

	info := loader.GetInfo("test.tmpl")
	if !info.EmbeddedExists || info.CustomExists {
		t.Errorf("GetInfo() = %+v, want embedded only", info)
	}

	info = loader.GetInfo("missing.tmpl")
	if info.EmbeddedExists {
		t.Error("GetInfo() reports missing template as embedded")
	}
}

type loggerFunc func(format string, v ...any)

func (f loggerFunc) Printf(format string, v ...any) { f(format, v...) }
