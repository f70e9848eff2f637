package helpers

import (
	"strings"
	"testing"
)

func TestMungeTag(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Lärmbekämpfung", "larmbekampfung"},
		{"e-geo.ch Geoportal", "e-geoch-geoportal"},
		{"Bevölkerung", "bevolkerung"},
		{"Curé d'Ars", "cure-dars"},
		{"already-clean", "already-clean"},
		{"Multiple   Spaces", "multiple-spaces"},
		{"trailing-dash-", "trailing-dash"},
		{"--leading", "leading"},
		{"", ""},
		{"***", ""},
	}
	for _, c := range cases {
		if got := MungeTag(c.in); got != c.want {
			t.Errorf("MungeTag(%q): got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMungeTagTruncates(t *testing.T) {
	long := strings.Repeat("a", 150)
	got := MungeTag(long)
	if len(got) != 100 {
		t.Errorf("MungeTag on long input: got len %d, want 100", len(got))
	}
}
