package consistency

import (
	"path"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/jmylchreest/scalar-themes/internal/colour"
	"github.com/jmylchreest/scalar-themes/internal/plugin/output"
	"github.com/jmylchreest/scalar-themes/internal/plugin/output/ghostty"
	"github.com/jmylchreest/scalar-themes/internal/plugin/output/neovim"
	"github.com/jmylchreest/scalar-themes/internal/plugin/output/opencode"
	"github.com/jmylchreest/scalar-themes/internal/plugin/output/warp"
	"github.com/jmylchreest/scalar-themes/internal/plugin/output/zed"
)

// exportTree renders every plugin into an in-memory export layout.
func exportTree(t *testing.T) fstest.MapFS {
	t.Helper()
	td := colour.NewThemeData("Scalar")
	tree := fstest.MapFS{}

	palette, err := colour.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	tree["palette.json"] = &fstest.MapFile{Data: palette}

	plugins := []output.Plugin{ghostty.New(), neovim.New(), zed.New(), opencode.New(), warp.New()}
	for _, p := range plugins {
		files, err := p.Generate(td)
		if err != nil {
			t.Fatalf("%s: Generate() error = %v", p.Name(), err)
		}
		for name, content := range files {
			tree[path.Join(p.Name(), name)] = &fstest.MapFile{Data: content}
		}
	}
	return tree
}

func TestCheck_ExportedTreePasses(t *testing.T) {
	failures := Check(exportTree(t), DefaultRules(), DeprecatedTokens, DefaultScanFiles())
	for _, f := range failures {
		t.Error(f)
	}
}

func TestCheck_Failures(t *testing.T) {
	tree := exportTree(t)
	tree["warp/scalar_light.yaml"] = &fstest.MapFile{Data: []byte("name: Scalar Light\nyellow: \"#edbe20\"\n")}
	delete(tree, "ghostty/themes/scalar-light")

	failures := Check(tree, DefaultRules(), DeprecatedTokens, DefaultScanFiles())

	want := []string{
		`Missing token in warp/scalar_light.yaml: yellow: "#987100"`,
		"Deprecated token still present in warp/scalar_light.yaml: #edbe20",
		"Cannot read ghostty/themes/scalar-light",
	}
	if len(failures) != len(want) {
		t.Fatalf("got %d failures, want %d: %v", len(failures), len(want), failures)
	}
	var got []string
	for _, f := range failures {
		got = append(got, f.String())
	}
	joined := strings.Join(got, "\n")
	for _, w := range want {
		if !strings.Contains(joined, w) {
			t.Errorf("failures missing %q:\n%s", w, joined)
		}
	}
}

func TestDefaultRules_Tokens(t *testing.T) {
	tokens := map[string]bool{}
	for _, r := range DefaultRules() {
		for _, tok := range r.MustInclude {
			tokens[tok] = true
		}
	}

	for _, want := range []string{
		`"muted": "#7d7d7d"`,
		`"red": "#e53b39"`,
		`"editor.indent_guide": "#383838"`,
		`yellow    = "#987100"`,
		`indent_active = "#b8b8b8"`,
		`indent        = "#d7d7d7"`,
		`"darkRed": "#e53b39"`,
		"palette = 11=#987100",
		`yellow  = "#987100"`,
	} {
		if !tokens[want] {
			t.Errorf("DefaultRules() missing token %q", want)
		}
	}
}

func TestFailure_String(t *testing.T) {
	f := Failure{Kind: Missing, File: "a.json", Token: `"x": "#000000"`}
	if got := f.String(); got != `Missing token in a.json: "x": "#000000"` {
		t.Errorf("String() = %q", got)
	}
}
