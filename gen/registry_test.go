package gen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRegistryFirstClaimWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconogen.gen")
	defer teardown()
	//
	reg := NewNameRegistry()
	if !reg.Claim("star") {
		t.Error("expected first claim of 'star' to succeed")
	}
	if reg.Claim("star") {
		t.Error("expected second claim of 'star' to be rejected")
	}
	if n := reg.Occurrences("star"); n != 2 {
		t.Errorf("expected 2 occurrences of 'star', got %d", n)
	}
	if reg.Len() != 1 {
		t.Errorf("expected 1 distinct name, got %d", reg.Len())
	}
}

func TestRegistryKeepsClaimOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconogen.gen")
	defer teardown()
	//
	reg := NewNameRegistry()
	for _, name := range []string{"zebra", "apple", "mango", "apple"} {
		reg.Claim(name)
	}
	names := reg.Names()
	want := []string{"zebra", "apple", "mango"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("expected name #%d to be %q, got %q", i, n, names[i])
		}
	}
}

func TestRegistryDroppedDiagnostics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iconogen.gen")
	defer teardown()
	//
	reg := NewNameRegistry()
	reg.Claim("a")
	reg.Claim("b")
	reg.Claim("a")
	reg.Claim("a")
	dropped := reg.Dropped()
	if len(dropped) != 2 || dropped[0] != "a" || dropped[1] != "a" {
		t.Errorf("expected dropped = [a a], got %v", dropped)
	}
	if n := reg.Occurrences("a"); n != 3 {
		t.Errorf("expected 3 occurrences of 'a', got %d", n)
	}
	if n := reg.Occurrences("unknown"); n != 0 {
		t.Errorf("expected 0 occurrences of unclaimed name, got %d", n)
	}
}
