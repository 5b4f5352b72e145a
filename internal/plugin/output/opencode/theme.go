package opencode

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/scalar-themes/internal/colour"
	"github.com/jmylchreest/scalar-themes/internal/plugin/output/common"
)

const schemaURL = "https://opencode.ai/theme.json"

// Theme is an OpenCode theme file. Every theme key resolves to a pair of
// definitions so the theme follows the terminal's appearance.
type Theme struct {
	Schema string                 `json:"$schema"`
	Defs   map[string]string      `json:"defs"`
	Theme  map[string]AdaptiveRef `json:"theme"`
}

// AdaptiveRef names the definition used for each appearance.
type AdaptiveRef struct {
	Dark  string `json:"dark"`
	Light string `json:"light"`
}

// themeRoles maps OpenCode theme keys to palette roles.
var themeRoles = []struct {
	key  string
	role string
}{
	{"primary", "blue"},
	{"secondary", "purple"},
	{"accent", "orange"},
	{"error", "red"},
	{"warning", "yellow"},
	{"success", "green"},
	{"info", "blue"},
	{"text", "foreground"},
	{"textMuted", "muted"},
	{"background", "background"},
	{"backgroundPanel", "surface"},
	{"backgroundElement", "highlight"},
	{"border", "highlight"},
	{"borderActive", "secondary"},
	{"borderSubtle", "surface"},
	{"diffAdded", "green"},
	{"diffRemoved", "red"},
	{"diffContext", "secondary"},
	{"diffHunkHeader", "muted"},
	{"diffHighlightAdded", "green"},
	{"diffHighlightRemoved", "red"},
	{"diffLineNumber", "muted"},
	{"markdownText", "foreground"},
	{"markdownHeading", "blue"},
	{"markdownLink", "blue"},
	{"markdownLinkText", "purple"},
	{"markdownCode", "green"},
	{"markdownBlockQuote", "muted"},
	{"markdownEmph", "yellow"},
	{"markdownStrong", "orange"},
	{"markdownHorizontalRule", "muted"},
	{"markdownListItem", "blue"},
	{"markdownListEnumeration", "purple"},
	{"markdownImage", "blue"},
	{"markdownImageText", "purple"},
	{"markdownCodeBlock", "foreground"},
	{"syntaxComment", "muted"},
	{"syntaxKeyword", "purple"},
	{"syntaxFunction", "blue"},
	{"syntaxVariable", "foreground"},
	{"syntaxString", "green"},
	{"syntaxNumber", "orange"},
	{"syntaxType", "yellow"},
	{"syntaxOperator", "secondary"},
	{"syntaxPunctuation", "secondary"},
}

// defName returns the definition name for a role, e.g. "darkRed".
func defName(v colour.Variant, role string) string {
	return v.String() + strings.ToUpper(role[:1]) + role[1:]
}

// NewTheme builds the adaptive theme from both palettes.
func NewTheme(td *colour.ThemeData) Theme {
	t := Theme{
		Schema: schemaURL,
		Defs:   make(map[string]string),
		Theme:  make(map[string]AdaptiveRef, len(themeRoles)),
	}

	for _, v := range colour.Variants() {
		for _, nc := range td.Palette(v).Roles() {
			t.Defs[defName(v, nc.Role)] = nc.Colour.Hex()
		}
	}

	for _, r := range themeRoles {
		t.Theme[r.key] = AdaptiveRef{
			Dark:  defName(colour.Dark, r.role),
			Light: defName(colour.Light, r.role),
		}
	}
	return t
}

// Render encodes the adaptive theme as indented JSON.
func Render(td *colour.ThemeData) ([]byte, error) {
	data, err := common.EncodeJSON(NewTheme(td))
	if err != nil {
		return nil, fmt.Errorf("failed to render opencode theme: %w", err)
	}
	return data, nil
}
