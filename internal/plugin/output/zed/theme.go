package zed

import (
	"encoding/json"
	"fmt"

	"github.com/jmylchreest/scalar-themes/internal/colour"
	"github.com/jmylchreest/scalar-themes/internal/plugin/output/common"
)

const schemaURL = "https://zed.dev/schema/themes/v0.2.0.json"

// ThemeFamily is a Zed theme family file.
type ThemeFamily struct {
	Schema string  `json:"$schema"`
	Name   string  `json:"name"`
	Author string  `json:"author"`
	Themes []Theme `json:"themes"`
}

// Theme is one appearance within a family.
type Theme struct {
	Name       string `json:"name"`
	Appearance string `json:"appearance"`
	Style      Style  `json:"style"`
}

// Style maps Zed UI keys to colours. Players and syntax are structured;
// everything else is a flat "key": "#rrggbb" pair.
type Style struct {
	Colours map[string]string
	Players []Player
	Syntax  map[string]Highlight
}

// Player is a collaborator cursor colour set.
type Player struct {
	Cursor     string `json:"cursor"`
	Background string `json:"background"`
	Selection  string `json:"selection"`
}

// Highlight styles a syntax token.
type Highlight struct {
	Color      string `json:"color"`
	FontStyle  string `json:"font_style,omitempty"`
	FontWeight int    `json:"font_weight,omitempty"`
}

// MarshalJSON flattens the colour keys next to players and syntax.
func (s Style) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(s.Colours)+2)
	for k, v := range s.Colours {
		doc[k] = v
	}
	doc["players"] = s.Players
	doc["syntax"] = s.Syntax
	return json.Marshal(doc)
}

// alpha appends a two-digit alpha channel to a colour.
func alpha(c colour.RGB, a string) string {
	return c.Hex() + a
}

var ansiNames = [8]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// NewThemeFamily builds the Zed theme family for both variants.
func NewThemeFamily(td *colour.ThemeData) ThemeFamily {
	family := ThemeFamily{
		Schema: schemaURL,
		Name:   td.Name,
		Author: td.Name,
	}
	for _, v := range colour.Variants() {
		family.Themes = append(family.Themes, Theme{
			Name:       td.DisplayName(v),
			Appearance: v.String(),
			Style:      newStyle(td.Palette(v)),
		})
	}
	return family
}

func newStyle(p colour.Palette) Style {
	c := map[string]string{
		"background":                    p.Surface.Hex(),
		"border":                        p.Highlight.Hex(),
		"border.variant":                p.Highlight.Hex(),
		"border.focused":                p.Blue.Hex(),
		"border.selected":               p.Blue.Hex(),
		"elevated_surface.background":   p.Surface.Hex(),
		"surface.background":            p.Surface.Hex(),
		"element.background":            p.Surface.Hex(),
		"element.hover":                 p.Highlight.Hex(),
		"element.active":                p.Highlight.Hex(),
		"element.selected":              p.Highlight.Hex(),
		"ghost_element.hover":           p.Highlight.Hex(),
		"ghost_element.selected":        p.Highlight.Hex(),
		"text":                          p.Foreground.Hex(),
		"text.muted":                    p.Secondary.Hex(),
		"text.placeholder":              p.Muted.Hex(),
		"text.disabled":                 p.Muted.Hex(),
		"text.accent":                   p.Blue.Hex(),
		"icon":                          p.Foreground.Hex(),
		"icon.muted":                    p.Secondary.Hex(),
		"icon.accent":                   p.Blue.Hex(),
		"status_bar.background":         p.Surface.Hex(),
		"title_bar.background":          p.Surface.Hex(),
		"toolbar.background":            p.Background.Hex(),
		"tab_bar.background":            p.Surface.Hex(),
		"tab.inactive_background":       p.Surface.Hex(),
		"tab.active_background":         p.Background.Hex(),
		"panel.background":              p.Surface.Hex(),
		"scrollbar.thumb.background":    alpha(p.Muted, "4d"),
		"scrollbar.track.background":    p.Background.Hex(),
		"editor.background":             p.Background.Hex(),
		"editor.foreground":             p.Foreground.Hex(),
		"editor.gutter.background":      p.Background.Hex(),
		"editor.active_line.background": p.Surface.Hex(),
		"editor.line_number":            p.Muted.Hex(),
		"editor.active_line_number":     p.Foreground.Hex(),
		"editor.indent_guide":           p.IndentGuide.Hex(),
		"editor.indent_guide_active":    p.IndentGuideActive.Hex(),
		"search.match_background":       alpha(p.Yellow, "40"),
		"terminal.background":           p.Background.Hex(),
		"terminal.foreground":           p.Foreground.Hex(),
		"terminal.dim_foreground":       p.Secondary.Hex(),
		"error":                         p.Red.Hex(),
		"warning":                       p.Yellow.Hex(),
		"success":                       p.Green.Hex(),
		"info":                          p.Blue.Hex(),
		"hint":                          p.Muted.Hex(),
		"created":                       p.Green.Hex(),
		"deleted":                       p.Red.Hex(),
		"modified":                      p.Yellow.Hex(),
		"conflict":                      p.Orange.Hex(),
		"ignored":                       p.Muted.Hex(),
	}

	base := p.Base16()
	for i, name := range ansiNames {
		c["terminal.ansi."+name] = base[i].Hex()
		c["terminal.ansi.bright_"+name] = base[i+8].Hex()
	}

	players := []Player{
		{Cursor: p.Blue.Hex(), Background: p.Blue.Hex(), Selection: alpha(p.Blue, "3d")},
		{Cursor: p.Purple.Hex(), Background: p.Purple.Hex(), Selection: alpha(p.Purple, "3d")},
		{Cursor: p.Green.Hex(), Background: p.Green.Hex(), Selection: alpha(p.Green, "3d")},
		{Cursor: p.Orange.Hex(), Background: p.Orange.Hex(), Selection: alpha(p.Orange, "3d")},
	}

	syntax := map[string]Highlight{
		"attribute":           {Color: p.Orange.Hex()},
		"boolean":             {Color: p.Orange.Hex()},
		"comment":             {Color: p.Muted.Hex(), FontStyle: "italic"},
		"comment.doc":         {Color: p.Muted.Hex(), FontStyle: "italic"},
		"constant":            {Color: p.Orange.Hex()},
		"constructor":         {Color: p.Yellow.Hex()},
		"function":            {Color: p.Blue.Hex()},
		"keyword":             {Color: p.Purple.Hex()},
		"label":               {Color: p.Blue.Hex()},
		"number":              {Color: p.Orange.Hex()},
		"operator":            {Color: p.Secondary.Hex()},
		"property":            {Color: p.Foreground.Hex()},
		"punctuation":         {Color: p.Secondary.Hex()},
		"punctuation.bracket": {Color: p.Secondary.Hex()},
		"string":              {Color: p.Green.Hex()},
		"string.escape":       {Color: p.Orange.Hex()},
		"tag":                 {Color: p.Red.Hex()},
		"title":               {Color: p.Foreground.Hex(), FontWeight: 700},
		"type":                {Color: p.Yellow.Hex()},
		"variable":            {Color: p.Foreground.Hex()},
		"variable.special":    {Color: p.Red.Hex()},
	}

	return Style{Colours: c, Players: players, Syntax: syntax}
}

// Render encodes the theme family as indented JSON with a trailing newline.
func Render(td *colour.ThemeData) ([]byte, error) {
	data, err := common.EncodeJSON(NewThemeFamily(td))
	if err != nil {
		return nil, fmt.Errorf("failed to render zed theme: %w", err)
	}
	return data, nil
}
