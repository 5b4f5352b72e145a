package ghostty

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/pflag"
)

// paletteGenerateConstraint is the first release that understands
// palette-generate.
var paletteGenerateConstraint = mustConstraint(">= 1.3.0")

var versionPattern = regexp.MustCompile(`(\d+)\.(\d+)\.(\d+)`)

// versionArgs are tried in order; older builds only know --version.
var versionArgs = [][]string{{"+version"}, {"--version"}}

// CommandRunner runs an external command and returns its standard output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

// ParseVersion extracts the first x.y.z version from command output.
func ParseVersion(output string) (*semver.Version, error) {
	match := versionPattern.FindString(output)
	if match == "" {
		return nil, fmt.Errorf("no version found in %q", strings.TrimSpace(output))
	}
	v, err := semver.NewVersion(match)
	if err != nil {
		return nil, fmt.Errorf("failed to parse version %q: %w", match, err)
	}
	return v, nil
}

// SupportsPaletteGenerate reports whether v understands palette-generate.
func SupportsPaletteGenerate(v *semver.Version) bool {
	return paletteGenerateConstraint.Check(v)
}

// DetectVersion asks the ghostty binary for its version. It returns an error
// when no invocation produced a parseable version.
func DetectVersion(ctx context.Context, run CommandRunner) (*semver.Version, error) {
	var lastErr error
	for _, args := range versionArgs {
		out, err := run(ctx, "ghostty", args...)
		if err != nil {
			lastErr = err
			continue
		}
		v, err := ParseVersion(string(out))
		if err != nil {
			lastErr = err
			continue
		}
		return v, nil
	}
	return nil, fmt.Errorf("failed to detect ghostty version: %w", lastErr)
}

// Mode selects how the extended palette is produced.
type Mode string

const (
	// ModeAuto picks generate or explicit from the detected version.
	ModeAuto Mode = "auto"
	// ModeGenerate writes palette-generate = true and only the base 16.
	ModeGenerate Mode = "generate"
	// ModeExplicit writes all 256 palette entries.
	ModeExplicit Mode = "explicit"
)

var _ pflag.Value = (*Mode)(nil)

// String implements pflag.Value.
func (m *Mode) String() string {
	return string(*m)
}

// Set implements pflag.Value.
func (m *Mode) Set(s string) error {
	switch Mode(strings.ToLower(s)) {
	case ModeAuto, ModeGenerate, ModeExplicit:
		*m = Mode(strings.ToLower(s))
		return nil
	default:
		return fmt.Errorf("invalid mode %q (expected auto, generate or explicit)", s)
	}
}

// Type implements pflag.Value.
func (m *Mode) Type() string {
	return "mode"
}
