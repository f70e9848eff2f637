package vocabulary

import (
	"testing"

	"github.com/opendata-swiss/geocat-crosswalk/dcat"
)

func TestLoadEmbeddedData(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	summary := r.Summary()
	// Four concepts, four languages each.
	if summary["rights_labels"] != 16 {
		t.Errorf("rights_labels: got %d, want 16", summary["rights_labels"])
	}
	if summary["formats"] == 0 {
		t.Error("formats table is empty")
	}
	if summary["media_types"] == 0 {
		t.Error("media_types table is empty")
	}
	if !r.IsExcludedProtocol("OPENDATA:SWISS") {
		t.Error("OPENDATA:SWISS should be excluded")
	}
	if !r.IsLandingPageProtocol("WWW:LINK-1.0-http--link") {
		t.Error("WWW:LINK-1.0-http--link should be a landing page protocol")
	}
	if !r.IsRelationProtocol("CHTOPO:specialised-geoportal") {
		t.Error("CHTOPO:specialised-geoportal should be a relation protocol")
	}
	if r.IsExcludedProtocol("WWW:DOWNLOAD-1.0-http--download") {
		t.Error("download protocol should not be excluded")
	}
}

func TestResolveFormat(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cases := []struct{ in, want string }{
		{"INTERLIS", "INTERLIS"},
		{"interlis", "INTERLIS"},
		{"GeoJSON", "GEOJSON"},
		{"text/csv", "CSV"},
		{"  text/csv  ", "CSV"},
		// Unknown values pass through untouched.
		{"SOMETHING-ODD", "SOMETHING-ODD"},
		{"", ""},
	}
	for _, c := range cases {
		if got := r.ResolveFormat(c.in); got != c.want {
			t.Errorf("ResolveFormat(%q): got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestResolveFrequency(t *testing.T) {
	r := NewStatic(Tables{})
	cases := []struct{ in, want string }{
		{"continual", "http://purl.org/cld/freq/continuous"},
		{"annually", "http://purl.org/cld/freq/annual"},
		{"asNeeded", "http://purl.org/cld/freq/completelyIrregular"},
		{"unknownCode", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := r.ResolveFrequency(c.in); got != c.want {
			t.Errorf("ResolveFrequency(%q): got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestResolveLanguage(t *testing.T) {
	r := NewStatic(Tables{})
	cases := []struct{ in, want string }{
		{"ger", "de"},
		{"fra", "fr"},
		{"eng", "en"},
		{"ita", "it"},
		{"roh", ""},
	}
	for _, c := range cases {
		if got := r.ResolveLanguage(c.in); got != c.want {
			t.Errorf("ResolveLanguage(%q): got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestResolveCategories(t *testing.T) {
	r := NewStatic(Tables{})

	got := r.ResolveCategories([]string{"health", "imageryBaseMapsEarthCover", "elevation", "bogus"})
	want := []string{"geography", "health", "territory"}
	if len(got) != len(want) {
		t.Fatalf("ResolveCategories: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ResolveCategories[%d]: got %q, want %q", i, got[i], want[i])
		}
	}

	if empty := r.ResolveCategories(nil); len(empty) != 0 {
		t.Errorf("ResolveCategories(nil): got %v, want empty", empty)
	}
}

func TestResolveRights(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	const fallback = "NonCommercialAllowed-CommercialAllowed-ReferenceRequired"

	text := dcat.NewMultilingualText("Opendata BY: Freie Nutzung. Quellenangabe ist Pflicht.")
	if got := r.ResolveRights(text, fallback); got != "https://opendata.swiss/terms-of-use/#terms_by" {
		t.Errorf("ResolveRights de: got %q", got)
	}

	// Extra whitespace in the record text must not defeat the match.
	text = dcat.NewMultilingualText("Opendata OPEN:   Freie\n Nutzung.")
	if got := r.ResolveRights(text, fallback); got != "https://opendata.swiss/terms-of-use/#terms_open" {
		t.Errorf("ResolveRights whitespace: got %q", got)
	}

	// A French-only record still resolves.
	text = dcat.MultilingualText{FR: "Opendata BY: Utilisation libre. Obligation d'indiquer la source."}
	if got := r.ResolveRights(text, fallback); got != "https://opendata.swiss/terms-of-use/#terms_by" {
		t.Errorf("ResolveRights fr: got %q", got)
	}

	// Unmatched text falls back to the default.
	text = dcat.NewMultilingualText("All rights reserved")
	if got := r.ResolveRights(text, fallback); got != fallback {
		t.Errorf("ResolveRights fallback: got %q", got)
	}
	if got := r.ResolveRights(dcat.MultilingualText{}, fallback); got != fallback {
		t.Errorf("ResolveRights empty: got %q", got)
	}
}

func TestResolveRightsLanguageOrder(t *testing.T) {
	r := NewStatic(Tables{Rights: map[string]string{
		"german text": "uri-de",
		"french text": "uri-fr",
	}})
	text := dcat.MultilingualText{DE: "german text", FR: "french text"}
	if got := r.ResolveRights(text, ""); got != "uri-de" {
		t.Errorf("ResolveRights order: got %q, want uri-de", got)
	}
	text = dcat.MultilingualText{DE: "no match here", FR: "french text"}
	if got := r.ResolveRights(text, ""); got != "uri-fr" {
		t.Errorf("ResolveRights order: got %q, want uri-fr", got)
	}
}
