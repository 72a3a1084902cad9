package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/image/font/gofont/goregular"
)

func TestParseIconFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconogen.fonts")
	defer teardown()
	//
	f, err := ParseIconFont(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("font name = %s", f.Fontname)
	if f.Fontname != "Go Regular" {
		t.Errorf("expected font name 'Go Regular', got %q", f.Fontname)
	}
	if f.SFNT == nil {
		t.Error("expected sfnt container to be set")
	}
}

func TestFallbackFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconogen.fonts")
	defer teardown()
	//
	f := FallbackFont()
	if f == nil {
		t.Fatal("expected fallback font to be present")
	}
	if f.Fontname != "Go Sans" {
		t.Errorf("expected fallback to be Go Sans, got %q", f.Fontname)
	}
}

func TestRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconogen.fonts")
	defer teardown()
	//
	r := NewRegistry()
	f, err := ParseIconFont(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	r.StoreFont(f)
	if got := r.Font("Go Regular"); got != f {
		t.Error("expected to find stored font under its name")
	}
	if got := r.Font("no such font"); got != nil {
		t.Error("expected lookup of unknown font to return nil")
	}
}

func TestGlobalRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconogen.fonts")
	defer teardown()
	//
	r := GlobalRegistry()
	if r == nil {
		t.Fatal("expected a global registry instance")
	}
	if r != GlobalRegistry() {
		t.Error("expected the global registry to be a singleton")
	}
	r.StoreFont(FallbackFont())
	if got := r.Font("Go Sans"); got != FallbackFont() {
		t.Error("expected cached font to be found under its name")
	}
	r.DebugList()
}

func TestNormalizeFontname(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconogen.fonts")
	defer teardown()
	//
	if n := NormalizeFontname("Test Icons.ttf"); n != "test_icons" {
		t.Errorf("expected 'test_icons', got %q", n)
	}
}
