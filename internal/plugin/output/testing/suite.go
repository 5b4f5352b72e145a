// Package testing provides shared test utilities for output plugins.
package testing

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/scalar-themes/internal/colour"
	"github.com/jmylchreest/scalar-themes/internal/paths"
	"github.com/jmylchreest/scalar-themes/internal/plugin/output"
)

// TestBasicInterface tests the basic plugin interface methods that all plugins must implement.
func TestBasicInterface(t *testing.T, p output.Plugin, expectedName string, expectedDirSubstring string) {
	t.Run("Name", func(t *testing.T) {
		if p.Name() != expectedName {
			t.Errorf("Name() = %s, want %s", p.Name(), expectedName)
		}
	})

	t.Run("Description", func(t *testing.T) {
		desc := p.Description()
		if desc == "" {
			t.Error("Description() should not be empty")
		}
	})

	t.Run("DefaultOutputDir", func(t *testing.T) {
		dir := p.DefaultOutputDir()
		if dir == "" {
			t.Error("DefaultOutputDir() should not be empty")
		}
		// Use expectedDirSubstring if provided, otherwise fall back to expectedName
		checkString := expectedDirSubstring
		if checkString == "" {
			checkString = expectedName
		}
		if !strings.Contains(dir, checkString) {
			t.Errorf("DefaultOutputDir() = %s, should contain '%s'", dir, checkString)
		}
	})

	t.Run("OutputDirs", func(t *testing.T) {
		dirs := output.OutputDirs(p)
		if len(dirs) == 0 {
			t.Fatal("OutputDirs() returned no directories")
		}
		if dirs[0] != p.DefaultOutputDir() {
			t.Errorf("OutputDirs()[0] = %s, want DefaultOutputDir() %s", dirs[0], p.DefaultOutputDir())
		}
	})

	t.Run("Validate", func(t *testing.T) {
		if err := p.Validate(); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})
}

// TestGeneration tests the Generate method with various scenarios.
func TestGeneration(t *testing.T, p output.Plugin, expectedFiles []string) {
	t.Run("Generate", func(t *testing.T) {
		files, err := p.Generate(CreateTestThemeData())
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		if len(files) != len(expectedFiles) {
			t.Fatalf("Generate() returned %d files, want %d", len(files), len(expectedFiles))
		}

		for _, expectedFile := range expectedFiles {
			content, ok := files[expectedFile]
			if !ok {
				t.Errorf("Generate() did not return %s", expectedFile)
				continue
			}
			if len(content) == 0 {
				t.Errorf("Generate() returned empty %s", expectedFile)
			}
		}
	})

	t.Run("GenerateNilThemeData", func(t *testing.T) {
		_, err := p.Generate(nil)
		if err == nil {
			t.Error("Generate() with nil theme data should return error")
		}
	})

	t.Run("GenerateIsDeterministic", func(t *testing.T) {
		first, err := p.Generate(CreateTestThemeData())
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		second, err := p.Generate(CreateTestThemeData())
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		for name, content := range first {
			if !bytes.Equal(content, second[name]) {
				t.Errorf("Generate() output for %s differs between runs", name)
			}
		}
	})
}

// TestLoggerAware tests logger injection if the plugin supports it.
func TestLoggerAware(t *testing.T, p any) {
	la, ok := p.(output.LoggerAware)
	if !ok {
		t.Log("Plugin does not implement SetLogger")
		return
	}

	t.Run("SetLogger", func(_ *testing.T) {
		// Just test that it doesn't panic.
		la.SetLogger(hclog.NewNullLogger())
	})
}

// TestFlags tests plugin-specific flag registration.
func TestFlags(t *testing.T, p output.Plugin, expectedFlagPrefix string) {
	t.Run("RegisterFlags", func(t *testing.T) {
		cmd := &cobra.Command{
			Use: "test",
		}

		p.RegisterFlags(cmd)

		expectedFlag := expectedFlagPrefix + ".output-dir"
		flag := cmd.Flags().Lookup(expectedFlag)
		if flag == nil {
			t.Errorf("RegisterFlags() did not register %s flag", expectedFlag)
		}
	})
}

// TestPreExecuteHook tests the PreExecute hook if the plugin implements it.
func TestPreExecuteHook(t *testing.T, p any, expectedLabel string) {
	peh, ok := p.(output.PreExecuteHook)
	if !ok {
		t.Log("Plugin does not implement PreExecute")
		return
	}

	t.Run("PreExecute", func(t *testing.T) {
		ctx := context.Background()
		skip, reason, err := peh.PreExecute(ctx)

		if err != nil {
			t.Errorf("PreExecute() unexpected error = %v", err)
		}

		// If skipped, reason should mention the application.
		if skip && !strings.Contains(reason, expectedLabel) {
			t.Errorf("PreExecute() skip reason should mention %s, got: %s", expectedLabel, reason)
		}
	})
}

// TestProcessNamer tests the running-process metadata if the plugin provides it.
func TestProcessNamer(t *testing.T, p any, expectedLabel string) {
	pn, ok := p.(output.ProcessNamer)
	if !ok {
		t.Log("Plugin does not implement ProcessNames")
		return
	}

	t.Run("ProcessNames", func(t *testing.T) {
		if pn.Label() != expectedLabel {
			t.Errorf("Label() = %s, want %s", pn.Label(), expectedLabel)
		}
		if len(pn.ProcessNames()) == 0 {
			t.Error("ProcessNames() should not be empty")
		}
	})
}

// CreateTestThemeData returns the theme data every plugin renders.
func CreateTestThemeData() *colour.ThemeData {
	return colour.NewThemeData("Scalar")
}

// TestResolver returns a paths.Resolver rooted at a temporary home directory
// with an empty environment.
func TestResolver(t *testing.T, goos string) paths.Resolver {
	t.Helper()
	return paths.Resolver{
		Home:   t.TempDir(),
		GOOS:   goos,
		Getenv: func(string) string { return "" },
	}
}

// RunAllTests runs all standard tests for a plugin.
func RunAllTests(t *testing.T, p output.Plugin, config TestConfig) {
	TestBasicInterface(t, p, config.ExpectedName, config.ExpectedDirSubstring)
	TestGeneration(t, p, config.ExpectedFiles)
	TestLoggerAware(t, p)
	TestFlags(t, p, config.ExpectedName)
	TestPreExecuteHook(t, p, config.ExpectedLabel)
	TestProcessNamer(t, p, config.ExpectedLabel)
}

// TestConfig holds configuration for running plugin tests.
type TestConfig struct {
	ExpectedName         string   // Plugin name
	ExpectedFiles        []string // Files that Generate() should return
	ExpectedLabel        string   // Application name checked in PreExecute and Label (e.g., "Ghostty")
	ExpectedDirSubstring string   // Optional: substring to check in DefaultOutputDir (defaults to ExpectedName if empty)
}
