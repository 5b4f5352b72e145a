// Package output provides the interface and base types for output plugins.
// Each output plugin installs the theme into one application.
package output

import (
	"context"
	"io/fs"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/scalar-themes/internal/colour"
)

// Plugin represents an output plugin that can generate theme files for an
// application from the theme palettes.
type Plugin interface {
	// Name returns the plugin's name (e.g., "ghostty", "zed").
	Name() string

	// Description returns a human-readable description of the plugin.
	Description() string

	// Generate creates output file(s) from the given theme data.
	// Returns map of filename (relative to the output directory) -> content.
	Generate(themeData *colour.ThemeData) (map[string][]byte, error)

	// RegisterFlags registers plugin-specific flags with cobra command.
	RegisterFlags(cmd *cobra.Command)

	// Validate checks if the plugin configuration is valid.
	Validate() error

	// DefaultOutputDir returns the default output directory for this plugin.
	DefaultOutputDir() string
}

// PreExecuteHook is implemented by plugins that need to check their
// environment before generating. A skip with a reason is not an error.
// The reason may span several lines; the first is the summary.
type PreExecuteHook interface {
	PreExecute(ctx context.Context) (skip bool, reason string, err error)
}

// PostExecuteHook is implemented by plugins that patch application config
// after their files have been written.
type PostExecuteHook interface {
	PostExecute(ctx context.Context, writtenFiles []string) error
}

// LoggerAware is implemented by plugins that emit diagnostic logs.
type LoggerAware interface {
	SetLogger(logger hclog.Logger)
}

// MultiDirPlugin is implemented by plugins whose files are written to more
// than one directory. OutputDirs supersedes DefaultOutputDir when present.
type MultiDirPlugin interface {
	OutputDirs() []string
}

// ProcessNamer is implemented by plugins whose application can be detected
// as a running process.
type ProcessNamer interface {
	// Label returns the application's display name (e.g., "Ghostty").
	Label() string

	// ProcessNames returns the executable names the application runs as.
	ProcessNames() []string
}

// Noter is implemented by plugins with follow-up instructions for the user
// once their files are installed.
type Noter interface {
	Notes() []string
}

// TemplateProvider is implemented by plugins that render from embedded
// templates which users can dump and override.
type TemplateProvider interface {
	GetEmbeddedFS() fs.FS
}

// OutputDirs returns the directories a plugin writes into.
func OutputDirs(p Plugin) []string {
	if mp, ok := p.(MultiDirPlugin); ok {
		return mp.OutputDirs()
	}
	return []string{p.DefaultOutputDir()}
}

// Registry holds all registered output plugins.
type Registry struct {
	plugins map[string]Plugin
	order   []string
}

// NewRegistry creates a new plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin to the registry. Registering a name twice replaces
// the earlier plugin but keeps its position.
func (r *Registry) Register(plugin Plugin) {
	if _, exists := r.plugins[plugin.Name()]; !exists {
		r.order = append(r.order, plugin.Name())
	}
	r.plugins[plugin.Name()] = plugin
}

// Get retrieves a plugin by name.
func (r *Registry) Get(name string) (Plugin, bool) {
	plugin, ok := r.plugins[name]
	return plugin, ok
}

// List returns all registered plugin names in registration order.
func (r *Registry) List() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// All returns all registered plugins in registration order.
func (r *Registry) All() []Plugin {
	plugins := make([]Plugin, 0, len(r.order))
	for _, name := range r.order {
		plugins = append(plugins, r.plugins[name])
	}
	return plugins
}
