package dcat

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMultilingualText(t *testing.T) {
	text := NewMultilingualText("Titel")
	for _, lang := range Languages {
		if text.Get(lang) != "Titel" {
			t.Errorf("Get(%s): got %q, want Titel", lang, text.Get(lang))
		}
	}
	if text.IsEmpty() {
		t.Error("replicated text should not be empty")
	}

	var empty MultilingualText
	if !empty.IsEmpty() {
		t.Error("zero value should be empty")
	}
	if empty.Any() != "" {
		t.Errorf("Any on empty: got %q", empty.Any())
	}

	empty.Set("fr", "Titre")
	if empty.FR != "Titre" || empty.DE != "" {
		t.Errorf("Set: got %+v", empty)
	}
	if empty.Any() != "Titre" {
		t.Errorf("Any: got %q", empty.Any())
	}
	// Unknown codes are ignored on both sides.
	empty.Set("rm", "x")
	if empty.Get("rm") != "" {
		t.Error("unknown language code should be ignored")
	}
}

func TestAddLanguage(t *testing.T) {
	ds := NewDataset()
	ds.AddLanguage("de")
	ds.AddLanguage("fr")
	ds.AddLanguage("de")
	ds.AddLanguage("")
	if len(ds.Language) != 2 || ds.Language[0] != "de" || ds.Language[1] != "fr" {
		t.Errorf("Language: got %v", ds.Language)
	}
}

// A sparse dataset must serialize with every list key present as [] and
// every multilingual key carrying all four language slots, since the
// importing catalog treats missing keys as schema violations.
func TestSparseDatasetSerialization(t *testing.T) {
	raw, err := json.Marshal(NewDataset())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	body := string(raw)
	for _, key := range []string{
		`"contact_points":[]`,
		`"groups":[]`,
		`"language":[]`,
		`"temporals":[]`,
		`"relations":[]`,
		`"see_alsos":[]`,
		`"resources":[]`,
		`"keywords":{"de":[],"fr":[],"en":[],"it":[]}`,
		`"title":{"de":"","fr":"","en":"","it":""}`,
	} {
		if !strings.Contains(body, key) {
			t.Errorf("serialized dataset missing %s: %s", key, body)
		}
	}
	if strings.Contains(body, "documentation") {
		t.Error("empty documentation should be omitted")
	}
}
