// Package template provides utilities for loading plugin templates with custom override support.
package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmylchreest/scalar-themes/internal/paths"
)

// ErrTemplateExists is returned by DumpTemplate when a custom template is
// already present and force is false.
var ErrTemplateExists = errors.New("custom template already exists")

// Loader handles loading templates with support for custom overrides.
// It checks for custom templates in <config>/scalar-themes/templates/{pluginName}/
// and falls back to embedded templates if custom ones don't exist.
type Loader struct {
	pluginName string
	embedFS    fs.FS
	customBase string // Base directory for custom templates
	verbose    bool   // Enable verbose logging
	logger     Logger // Logger for verbose output
}

// Logger is a simple interface for logging messages.
type Logger interface {
	Printf(format string, v ...any)
}

// New creates a new template loader for the specified plugin.
// embedFS should be the embedded filesystem containing the plugin's default templates.
func New(pluginName string, embedFS fs.FS) *Loader {
	return &Loader{
		pluginName: pluginName,
		embedFS:    embedFS,
		customBase: paths.Default().TemplateDir(),
	}
}

// WithCustomBase sets a custom base directory for template storage.
func (l *Loader) WithCustomBase(customBase string) *Loader {
	l.customBase = customBase
	return l
}

// WithVerbose enables verbose logging for template operations.
func (l *Loader) WithVerbose(verbose bool, logger Logger) *Loader {
	l.verbose = verbose
	l.logger = logger
	return l
}

// Load reads a template file, checking for custom overrides first.
// filename should be the template filename (e.g., "scalar.lua.tmpl").
// Returns the template content and whether it was loaded from a custom override.
func (l *Loader) Load(filename string) (content []byte, fromCustom bool, err error) {
	customPath := l.CustomPath(filename)

	if content, err := os.ReadFile(customPath); err == nil {
		l.logf("   Using custom template: %s", customPath)
		return content, true, nil
	}

	l.logf("   Using embedded template: %s", filename)

	content, err = fs.ReadFile(l.embedFS, filename)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load template %q: %w", filename, err)
	}

	return content, false, nil
}

func (l *Loader) logf(format string, v ...any) {
	if l.verbose && l.logger != nil {
		l.logger.Printf(format, v...)
	}
}

// CustomPath returns the path where a custom template would be located.
func (l *Loader) CustomPath(filename string) string {
	return filepath.Join(l.customBase, l.pluginName, filepath.FromSlash(filename))
}

// CustomDir returns the directory where custom templates for this plugin would be located.
func (l *Loader) CustomDir() string {
	return filepath.Join(l.customBase, l.pluginName)
}

// HasCustomTemplate checks if a custom template exists for the given filename.
func (l *Loader) HasCustomTemplate(filename string) bool {
	_, err := os.Stat(l.CustomPath(filename))
	return err == nil
}

// ListEmbeddedTemplates returns a list of all embedded template files.
func (l *Loader) ListEmbeddedTemplates() ([]string, error) {
	var templates []string

	err := fs.WalkDir(l.embedFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".tmpl") {
			templates = append(templates, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded templates: %w", err)
	}

	return templates, nil
}

// DumpTemplate writes an embedded template to the custom templates directory.
// If force is false, it will not overwrite existing custom templates.
func (l *Loader) DumpTemplate(filename string, force bool) error {
	content, err := fs.ReadFile(l.embedFS, filename)
	if err != nil {
		return fmt.Errorf("failed to read embedded template %q: %w", filename, err)
	}

	outputPath := l.CustomPath(filename)

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("%w: %s (use --force to overwrite)", ErrTemplateExists, outputPath)
		}
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", outputDir, err)
	}

	if err := os.WriteFile(outputPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write template to %q: %w", outputPath, err)
	}

	return nil
}

// DumpAllTemplates writes all embedded templates to the custom templates directory.
// Returns the list of successfully dumped templates and any errors encountered.
// If force is false and some templates already exist, it will skip those but continue
// processing remaining templates.
func (l *Loader) DumpAllTemplates(force bool) ([]string, error) {
	templates, err := l.ListEmbeddedTemplates()
	if err != nil {
		return nil, err
	}

	var dumped []string
	var skipped []error

	for _, tmpl := range templates {
		if err := l.DumpTemplate(tmpl, force); err != nil {
			if errors.Is(err, ErrTemplateExists) {
				skipped = append(skipped, err)
				continue
			}
			return dumped, err
		}
		dumped = append(dumped, l.CustomPath(tmpl))
	}

	return dumped, errors.Join(skipped...)
}

// TemplateInfo describes where a template would be loaded from.
type TemplateInfo struct {
	Filename       string
	EmbeddedExists bool
	CustomExists   bool
	CustomPath     string
}

// GetInfo returns information about a specific template.
func (l *Loader) GetInfo(filename string) TemplateInfo {
	_, embeddedErr := fs.Stat(l.embedFS, filename)

	return TemplateInfo{
		Filename:       filename,
		EmbeddedExists: embeddedErr == nil,
		CustomExists:   l.HasCustomTemplate(filename),
		CustomPath:     l.CustomPath(filename),
	}
}
