package colour

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBase16SlotOrder(t *testing.T) {
	p := Lookup(Dark)
	base := p.Base16()

	want := []RGB{
		p.Surface, p.Red, p.Green, p.Yellow, p.Blue, p.Purple, p.Blue, p.Secondary,
		p.Muted, p.Orange, p.Green, p.Yellow, p.Blue, p.Purple, p.Blue, p.Foreground,
	}

	for i, c := range want {
		if base[i] != c {
			t.Errorf("Base16()[%d] = %s, want %s", i, base[i].Hex(), c.Hex())
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		variant Variant
		role    func(Palette) RGB
		want    string
	}{
		{variant: Dark, role: func(p Palette) RGB { return p.Background }, want: "#0f0f0f"},
		{variant: Dark, role: func(p Palette) RGB { return p.Red }, want: "#e53b39"},
		{variant: Light, role: func(p Palette) RGB { return p.Yellow }, want: "#987100"},
		{variant: Light, role: func(p Palette) RGB { return p.Muted }, want: "#7d7d7d"},
		{variant: Light, role: func(p Palette) RGB { return p.IndentGuide }, want: "#d7d7d7"},
	}

	for _, tt := range tests {
		t.Run(tt.variant.String()+" "+tt.want, func(t *testing.T) {
			if got := tt.role(Lookup(tt.variant)).Hex(); got != tt.want {
				t.Errorf("Lookup(%s) role = %s, want %s", tt.variant, got, tt.want)
			}
		})
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	p := Lookup(Dark)
	p.Background = RGB{R: 1, G: 2, B: 3}

	if Lookup(Dark).Background.Hex() != "#0f0f0f" {
		t.Error("mutating a looked-up palette changed the built-in palette")
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		input   string
		want    Variant
		wantErr bool
	}{
		{input: "dark", want: Dark},
		{input: "Light", want: Light},
		{input: " DARK ", want: Dark},
		{input: "auto", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVariant(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVariant(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseVariant(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestVariantNames(t *testing.T) {
	if Dark.String() != "dark" || Light.String() != "light" {
		t.Errorf("String() = %s/%s, want dark/light", Dark, Light)
	}
	if Dark.Title() != "Dark" || Light.Title() != "Light" {
		t.Errorf("Title() = %s/%s, want Dark/Light", Dark.Title(), Light.Title())
	}
}

func TestPaletteToJSON(t *testing.T) {
	data, err := ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	content := string(data)
	for _, token := range []string{`"muted": "#7d7d7d"`, `"green": "#078657"`, `"red": "#e53b39"`} {
		if !strings.Contains(content, token) {
			t.Errorf("ToJSON() missing %s", token)
		}
	}

	var decoded map[string]Palette
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if decoded["dark"] != Lookup(Dark) {
		t.Error("decoded dark palette does not match Lookup(Dark)")
	}
}

func TestThemeData(t *testing.T) {
	td := NewThemeData("Scalar")

	if td.Slug() != "scalar" {
		t.Errorf("Slug() = %s, want scalar", td.Slug())
	}
	if td.DisplayName(Light) != "Scalar Light" {
		t.Errorf("DisplayName(Light) = %s, want Scalar Light", td.DisplayName(Light))
	}
	if td.Palette(Light) != Lookup(Light) {
		t.Error("Palette(Light) does not match Lookup(Light)")
	}
}

func TestContrastRatio(t *testing.T) {
	black := RGB{}
	white := RGB{R: 255, G: 255, B: 255}

	if got := ContrastRatio(black, white); got < 20.9 || got > 21.1 {
		t.Errorf("ContrastRatio(black, white) = %.2f, want 21", got)
	}
	if got := ContrastRatio(white, white); got != 1 {
		t.Errorf("ContrastRatio(white, white) = %.2f, want 1", got)
	}

	for _, v := range Variants() {
		p := Lookup(v)
		if got := ContrastRatio(p.Foreground, p.Background); got < 4.5 {
			t.Errorf("%s foreground contrast = %.2f, want >= 4.5", v, got)
		}
	}
}
