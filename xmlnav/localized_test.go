package xmlnav

import (
	"testing"

	"github.com/opendata-swiss/geocat-crosswalk/dcat"
)

const localizedRecord = `<?xml version="1.0" encoding="UTF-8"?>
<che:CHE_MD_Metadata xmlns:che="http://www.geocat.ch/2008/che"
    xmlns:gmd="http://www.isotc211.org/2005/gmd"
    xmlns:gco="http://www.isotc211.org/2005/gco"
    xmlns:gmx="http://www.isotc211.org/2005/gmx">
  <gmd:tagged>
    <gco:CharacterString>Titel</gco:CharacterString>
    <gmd:PT_FreeText>
      <gmd:textGroup>
        <gmd:LocalisedCharacterString locale="#DE">Titel</gmd:LocalisedCharacterString>
      </gmd:textGroup>
      <gmd:textGroup>
        <gmd:LocalisedCharacterString locale="#FR">Titre</gmd:LocalisedCharacterString>
      </gmd:textGroup>
    </gmd:PT_FreeText>
  </gmd:tagged>
  <gmd:untagged>
    <gco:CharacterString>Nur Deutsch</gco:CharacterString>
  </gmd:untagged>
  <gmd:anchored>
    <gmx:Anchor href="https://example.org/terms">Opendata BY</gmx:Anchor>
  </gmd:anchored>
  <gmd:empty/>
  <gmd:linkage>
    <che:PT_FreeURL>
      <che:URLGroup>
        <che:LocalisedURL locale="#DE">https://example.org/de</che:LocalisedURL>
      </che:URLGroup>
      <che:URLGroup>
        <che:LocalisedURL locale="#FR">https://example.org/fr</che:LocalisedURL>
      </che:URLGroup>
    </che:PT_FreeURL>
  </gmd:linkage>
</che:CHE_MD_Metadata>`

func parseLocalized(t *testing.T) *Node {
	t.Helper()
	root, err := Parse([]byte(localizedRecord))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return root
}

func TestLocalizedTextTagged(t *testing.T) {
	root := parseLocalized(t)
	node := SingleNode(root, "//gmd:tagged")
	if node == nil {
		t.Fatal("tagged element not found")
	}
	got := LocalizedText(node)
	want := dcat.MultilingualText{DE: "Titel", FR: "Titre"}
	if got != want {
		t.Errorf("LocalizedText: got %+v, want %+v", got, want)
	}
}

func TestLocalizedTextUntaggedReplicates(t *testing.T) {
	root := parseLocalized(t)
	node := SingleNode(root, "//gmd:untagged")
	if node == nil {
		t.Fatal("untagged element not found")
	}
	got := LocalizedText(node)
	for _, lang := range dcat.Languages {
		if got.Get(lang) != "Nur Deutsch" {
			t.Errorf("LocalizedText(%s): got %q, want %q", lang, got.Get(lang), "Nur Deutsch")
		}
	}
}

func TestLocalizedTextEmpty(t *testing.T) {
	root := parseLocalized(t)
	node := SingleNode(root, "//gmd:empty")
	if node == nil {
		t.Fatal("empty element not found")
	}
	if got := LocalizedText(node); !got.IsEmpty() {
		t.Errorf("LocalizedText on empty element: got %+v, want empty", got)
	}
	if got := LocalizedText(nil); !got.IsEmpty() {
		t.Errorf("LocalizedText(nil): got %+v, want empty", got)
	}
}

func TestUntaggedValue(t *testing.T) {
	root := parseLocalized(t)

	if got := UntaggedValue(SingleNode(root, "//gmd:untagged")); got != "Nur Deutsch" {
		t.Errorf("UntaggedValue: got %q, want %q", got, "Nur Deutsch")
	}
	// Falls back to the first locale-tagged value when the plain string is
	// absent: the tagged element here has both, so the plain string wins.
	if got := UntaggedValue(SingleNode(root, "//gmd:tagged")); got != "Titel" {
		t.Errorf("UntaggedValue tagged: got %q, want %q", got, "Titel")
	}
	if got := UntaggedValue(nil); got != "" {
		t.Errorf("UntaggedValue(nil): got %q, want empty", got)
	}
}

func TestRightsTextAnchorFallback(t *testing.T) {
	root := parseLocalized(t)
	node := SingleNode(root, "//gmd:anchored")
	if node == nil {
		t.Fatal("anchored element not found")
	}
	got := RightsText(node)
	for _, lang := range dcat.Languages {
		if got.Get(lang) != "Opendata BY" {
			t.Errorf("RightsText(%s): got %q, want %q", lang, got.Get(lang), "Opendata BY")
		}
	}
}

func TestLocalizedURLs(t *testing.T) {
	root := parseLocalized(t)
	node := SingleNode(root, "//gmd:linkage")
	if node == nil {
		t.Fatal("linkage element not found")
	}
	got := LocalizedURLs(node)
	if len(got) != 2 {
		t.Fatalf("LocalizedURLs: got %d entries, want 2: %v", len(got), got)
	}
	if got["de"] != "https://example.org/de" || got["fr"] != "https://example.org/fr" {
		t.Errorf("LocalizedURLs: got %v", got)
	}
}
