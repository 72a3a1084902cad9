package gen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSanitizeName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconogen.gen")
	defer teardown()
	//
	cases := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"heart", "heart", true},      // clean names pass through unchanged
		{"heart-fill", "heart_fill", true},
		{"arrow-left-circle", "arrow_left_circle", true},
		{"1", "one", true},
		{"1f600", "onefsixzerozero", true},
		{"7segment", "sevensegment", true},
		{"a1b2", "aonebtwo", true},
		{"-", "underscore", true},     // dash becomes '_', lone '_' is spelled out
		{"_", "underscore", true},
		{"unnamed", "unnamed", true},
		{"file.txt", "", false},       // '.' is disallowed
		{"two words", "", false},      // so is ' '
		{"a+b", "", false},
		{"what?", "", false},
		{"semi;colon", "", false},
		{"back\\slash", "", false},
		{"tick`", "", false},
		{"héart", "héart", true},      // non-ASCII letters are identifier-safe
		{"euro€", "", false},          // non-ASCII punctuation is not
		{"bell\x07", "", false},
	}
	for _, c := range cases {
		got, ok := SanitizeName(c.raw)
		if ok != c.ok {
			t.Errorf("SanitizeName(%q): expected ok=%v, got %v", c.raw, c.ok, ok)
			continue
		}
		if ok && got != c.want {
			t.Errorf("SanitizeName(%q): expected %q, got %q", c.raw, c.want, got)
		}
	}
}

func TestSanitizeDashThenDigit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconogen.gen")
	defer teardown()
	//
	// both substitutions in one name
	got, ok := SanitizeName("badge-1-filled")
	if !ok || got != "badge_one_filled" {
		t.Errorf("expected 'badge_one_filled', got %q (%v)", got, ok)
	}
}
