// Package consistency verifies that an exported theme tree carries the
// current palette values and none of the retired ones.
package consistency

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/jmylchreest/scalar-themes/internal/colour"
)

// DeprecatedTokens are colour values from earlier palette revisions.
var DeprecatedTokens = []string{
	"#edbe20",
	"#edbe2015",
	"#edbe2040",
	"#8e8e8e",
	"#069061",
	"#0082d0",
	"#ff5800",
	"#dc1b19",
}

// Rule lists the tokens a file must contain.
type Rule struct {
	File        string
	MustInclude []string
}

// FailureKind says why a check failed.
type FailureKind int

const (
	// Missing means a required token was not found.
	Missing FailureKind = iota
	// Deprecated means a retired token is still present.
	Deprecated
	// Unreadable means the file could not be read.
	Unreadable
)

// Failure is one failed check.
type Failure struct {
	Kind  FailureKind
	File  string
	Token string
	Err   error
}

func (f Failure) String() string {
	switch f.Kind {
	case Deprecated:
		return fmt.Sprintf("Deprecated token still present in %s: %s", f.File, f.Token)
	case Unreadable:
		return fmt.Sprintf("Cannot read %s: %v", f.File, f.Err)
	default:
		return fmt.Sprintf("Missing token in %s: %s", f.File, f.Token)
	}
}

// DefaultRules derives the required tokens for an export tree from the
// built-in palettes.
func DefaultRules() []Rule {
	light := colour.Lookup(colour.Light)
	dark := colour.Lookup(colour.Dark)

	return []Rule{
		{
			File: "palette.json",
			MustInclude: []string{
				jsonPair("muted", light.Muted),
				jsonPair("green", light.Green),
				jsonPair("red", dark.Red),
				jsonPair("yellow", light.Yellow),
				jsonPair("blue", light.Blue),
				jsonPair("orange", light.Orange),
			},
		},
		{
			File: "zed/themes/scalar.json",
			MustInclude: []string{
				jsonPair("editor.indent_guide", dark.IndentGuide),
				jsonPair("editor.indent_guide_active", dark.IndentGuideActive),
				jsonPair("editor.indent_guide", light.IndentGuide),
				jsonPair("editor.indent_guide_active", light.IndentGuideActive),
				jsonPair("warning", light.Yellow),
			},
		},
		{
			File: "neovim/colors/scalar.lua",
			MustInclude: []string{
				luaPair(9, "yellow", light.Yellow),
				luaPair(13, "indent", dark.IndentGuide),
				luaPair(13, "indent_active", dark.IndentGuideActive),
				luaPair(13, "indent", light.IndentGuide),
				luaPair(13, "indent_active", light.IndentGuideActive),
			},
		},
		{
			File: "opencode/themes/scalar-adaptive.json",
			MustInclude: []string{
				jsonPair("lightMuted", light.Muted),
				jsonPair("lightGreen", light.Green),
				jsonPair("lightYellow", light.Yellow),
				jsonPair("lightBlue", light.Blue),
				jsonPair("lightOrange", light.Orange),
				jsonPair("darkRed", dark.Red),
			},
		},
		{
			File: "ghostty/themes/scalar-light",
			MustInclude: []string{
				fmt.Sprintf("palette = 3=%s", light.Yellow.Hex()),
				fmt.Sprintf("palette = 11=%s", light.Yellow.Hex()),
			},
		},
		{
			File:        "warp/scalar_light.yaml",
			MustInclude: []string{fmt.Sprintf("yellow: %q", light.Yellow.Hex())},
		},
		{
			File:        "neovim/lua/lualine/themes/scalar.lua",
			MustInclude: []string{luaPair(7, "yellow", light.Yellow)},
		},
	}
}

// DefaultScanFiles returns the files checked for deprecated tokens.
func DefaultScanFiles() []string {
	rules := DefaultRules()
	files := make([]string, 0, len(rules))
	for _, r := range rules {
		files = append(files, r.File)
	}
	return files
}

func jsonPair(key string, c colour.RGB) string {
	return fmt.Sprintf("%q: %q", key, c.Hex())
}

func luaPair(width int, key string, c colour.RGB) string {
	return fmt.Sprintf("%-*s = %q", width, key, c.Hex())
}

// Check runs every rule and the deprecated-token scan against fsys.
// A file that cannot be read is reported once and its rules are skipped.
func Check(fsys fs.FS, rules []Rule, deprecated []string, scan []string) []Failure {
	var failures []Failure
	cache := make(map[string]string)
	unreadable := make(map[string]bool)

	read := func(file string) (string, bool) {
		if content, ok := cache[file]; ok {
			return content, true
		}
		if unreadable[file] {
			return "", false
		}
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			unreadable[file] = true
			failures = append(failures, Failure{Kind: Unreadable, File: file, Err: err})
			return "", false
		}
		cache[file] = string(data)
		return cache[file], true
	}

	for _, rule := range rules {
		content, ok := read(rule.File)
		if !ok {
			continue
		}
		for _, token := range rule.MustInclude {
			if !strings.Contains(content, token) {
				failures = append(failures, Failure{Kind: Missing, File: rule.File, Token: token})
			}
		}
	}

	for _, file := range scan {
		content, ok := read(file)
		if !ok {
			continue
		}
		for _, token := range deprecated {
			if strings.Contains(content, token) {
				failures = append(failures, Failure{Kind: Deprecated, File: file, Token: token})
			}
		}
	}

	return failures
}
