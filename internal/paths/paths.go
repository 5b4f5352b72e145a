// Package paths resolves where each supported application keeps its
// configuration and themes.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// Resolver computes application paths for a given home directory, operating
// system and environment. The zero value is not usable; use Default or fill
// every field.
type Resolver struct {
	Home   string
	GOOS   string
	Getenv func(string) string
}

// Default returns a Resolver for the current user and platform.
func Default() Resolver {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "" // Fallback to empty if home dir unavailable
	}
	return Resolver{
		Home:   home,
		GOOS:   runtime.GOOS,
		Getenv: os.Getenv,
	}
}

// ConfigHome returns $XDG_CONFIG_HOME, falling back to ~/.config.
func (r Resolver) ConfigHome() string {
	if xdg := r.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(r.Home, ".config")
}

// Ghostty returns the Ghostty config directories to consider: the XDG
// directory always, plus the macOS application support directory on darwin.
func (r Resolver) Ghostty() []string {
	dirs := []string{filepath.Join(r.ConfigHome(), "ghostty")}
	if r.GOOS == "darwin" {
		dirs = append(dirs, filepath.Join(r.Home, "Library", "Application Support", "com.mitchellh.ghostty"))
	}
	return dirs
}

// ZedDir returns Zed's config directory (%APPDATA%\Zed on Windows).
func (r Resolver) ZedDir() string {
	if r.GOOS == "windows" {
		appData := r.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(r.Home, "AppData", "Roaming")
		}
		return filepath.Join(appData, "Zed")
	}
	return filepath.Join(r.ConfigHome(), "zed")
}

// OpenCodeDir returns OpenCode's config directory.
func (r Resolver) OpenCodeDir() string {
	return filepath.Join(r.ConfigHome(), "opencode")
}

// NeovimDir returns Neovim's config directory.
func (r Resolver) NeovimDir() string {
	return filepath.Join(r.ConfigHome(), "nvim")
}

// WarpThemesDir returns the directory Warp scans for custom themes.
func (r Resolver) WarpThemesDir() string {
	return filepath.Join(r.Home, ".warp", "themes")
}

// TemplateDir returns the base directory for user template overrides.
func (r Resolver) TemplateDir() string {
	return filepath.Join(r.ConfigHome(), "scalar-themes", "templates")
}
