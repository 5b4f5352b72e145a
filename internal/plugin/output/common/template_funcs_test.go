package common

import (
	"bytes"
	"strings"
	"testing"
	"text/template"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/scalar-themes/internal/colour"
)

func render(t *testing.T, text string, data any) (string, error) {
	t.Helper()
	tmpl, err := template.New("test").Funcs(TemplateFuncs()).Parse(text)
	if err != nil {
		t.Fatalf("Template parse error: %v", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	return buf.String(), err
}

func TestTemplateFuncs_Palette(t *testing.T) {
	themeData := colour.NewThemeData("Scalar")

	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{name: "by name", tmpl: `{{ (palette . "dark").Background | hex }}`, want: "#0f0f0f"},
		{name: "by variant", tmpl: `{{ range variants }}{{ (palette $ .).Yellow | hex }} {{ end }}`, want: "#ffc90d #987100 "},
		{name: "hexNoHash", tmpl: `{{ (palette . "light").Blue | hexNoHash }}`, want: "007ac2"},
		{name: "rgb", tmpl: `{{ (palette . "light").Background | rgb }}`, want: "rgb(255,255,255)"},
		{name: "get", tmpl: `{{ get (palette . "dark") "purple" | hex }}`, want: "#b191f9"},
		{name: "ansi", tmpl: `{{ ansi (palette . "dark") 15 | hex }}`, want: "#e7e7e7"},
		{name: "pad", tmpl: `[{{ pad 9 "yellow" }}]`, want: "[yellow   ]"},
		{name: "trimPrefix", tmpl: `{{ "#abc" | trimPrefix "#" }}`, want: "abc"},
		{name: "replace", tmpl: `{{ "a-b" | replace "-" "_" }}`, want: "a_b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := render(t, tt.tmpl, themeData)
			if err != nil {
				t.Fatalf("Template execute error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTemplateFuncs_Errors(t *testing.T) {
	themeData := colour.NewThemeData("Scalar")

	tests := []struct {
		name string
		tmpl string
	}{
		{name: "unknown variant", tmpl: `{{ palette . "dim" }}`},
		{name: "unknown role", tmpl: `{{ get (palette . "dark") "nonexistent" }}`},
		{name: "ansi out of range", tmpl: `{{ ansi (palette . "dark") 16 }}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := render(t, tt.tmpl, themeData); err == nil {
				t.Error("expected template execution error")
			}
		})
	}
}

func TestTemplateFuncs_Has(t *testing.T) {
	themeData := colour.NewThemeData("Scalar")

	got, err := render(t, `{{ has (palette . "dark") "muted" }} {{ has (palette . "dark") "accent9" }}`, themeData)
	if err != nil {
		t.Fatalf("Template execute error: %v", err)
	}
	if got != "true false" {
		t.Errorf("got %q, want %q", got, "true false")
	}
}

func TestVerboseLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{
		Output:      &buf,
		Level:       hclog.Debug,
		DisableTime: true,
	})

	NewVerboseLogger(logger).Printf("using %s", "embedded")
	if !strings.Contains(buf.String(), "using embedded") {
		t.Errorf("log output = %q, want message", buf.String())
	}

	// A nil logger must not panic.
	NewVerboseLogger(nil).Printf("ignored")
}
