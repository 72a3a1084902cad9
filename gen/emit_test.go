package gen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iconogen/iconogen/icon"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func testModule() *Module {
	return &Module{
		Name:     "testicons",
		FontName: "Test Icons",
		Shaping:  icon.ShapingBasic,
		Entries: []AccessorEntry{
			{Name: "heart", RawName: "heart", Codepoint: 0xe800},
			{Name: "heart_fill", RawName: "heart-fill", Codepoint: 0xe801},
		},
		Count: 2,
	}
}

func TestRenderModule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconogen.gen")
	defer teardown()
	//
	files, err := testModule().Render()
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file without the advanced surface, got %d", len(files))
	}
	if files[0].Path != "testicons/testicons.go" {
		t.Errorf("unexpected output path %q", files[0].Path)
	}
	src := string(files[0].Content)
	t.Logf("rendered source:\n%s", src)
	for _, want := range []string{
		"// Code generated by iconogen. DO NOT EDIT.",
		"package testicons",
		`var Font = icon.FontWithName("Test Icons")`,
		"const Count = 2",
		"func Heart() icon.Text {",
		"func Heart_fill() icon.Text {",
		"icon.ShapingBasic",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("expected rendered source to contain %q", want)
		}
	}
}

func TestRenderAdvancedSurface(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconogen.gen")
	defer teardown()
	//
	m := testModule()
	m.Advanced = true
	m.Shaping = icon.ShapingAdvanced
	files, err := m.Render()
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files with the advanced surface, got %d", len(files))
	}
	if files[1].Path != "testicons/advancedtext/advancedtext.go" {
		t.Errorf("unexpected output path %q", files[1].Path)
	}
	src := string(files[1].Content)
	for _, want := range []string{
		"package advancedtext",
		"func Heart() (string, icon.Font, icon.Shaping) {",
		"icon.ShapingAdvanced",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("expected rendered source to contain %q", want)
		}
	}
}

func TestRenderDocLink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconogen.gen")
	defer teardown()
	//
	m := testModule()
	m.DocLink = "https://icons.example.org/doc"
	files, err := m.Render()
	if err != nil {
		t.Fatal(err)
	}
	src := string(files[0].Content)
	if !strings.Contains(src, "// See https://icons.example.org/doc/heart-fill.") {
		t.Error("expected doc comment to link the raw glyph name")
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconogen.gen")
	defer teardown()
	//
	first, err := testModule().Render()
	if err != nil {
		t.Fatal(err)
	}
	second, err := testModule().Render()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first[0].Content, second[0].Content) {
		t.Error("expected repeated renders to be byte-identical")
	}
}

func TestAccessorSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconogen.gen")
	defer teardown()
	//
	cases := []struct {
		name, symbol string
	}{
		{"heart", "Heart"},
		{"heart_fill", "Heart_fill"},
		{"one", "One"},
		{"_hidden", "X_hidden"}, // leading underscore cannot be exported directly
		{"underscore", "Underscore"},
	}
	for _, c := range cases {
		e := AccessorEntry{Name: c.name}
		if got := e.Symbol(); got != c.symbol {
			t.Errorf("Symbol(%q): expected %q, got %q", c.name, c.symbol, got)
		}
	}
}
