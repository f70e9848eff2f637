package xmlnav

import (
	"strings"

	"github.com/opendata-swiss/geocat-crosswalk/dcat"
)

// Locale tags used by the source schema inside gmd:PT_FreeText groups.
var sourceLocales = []string{"DE", "FR", "EN", "IT"}

// All paths here are node-scoped and start with ".//": they run against one
// element of the record, not the document root.
const (
	untaggedTextPath = ".//gco:CharacterString"
	anchorTextPath   = ".//gmx:Anchor"
)

func localizedTextPath(locale string) string {
	return ".//gmd:textGroup/gmd:LocalisedCharacterString[@locale='#" + locale + "']"
}

func localizedURLPath(locale string) string {
	return ".//che:URLGroup/che:LocalisedURL[@locale='#" + locale + "']"
}

// LocalizedText resolves a multilingual element into all four catalog
// languages. Locale-tagged values fill their own slot; when the element
// carries only a single untagged value, that value is replicated into every
// slot, since many records populate one language and consumers expect the
// structure to be symmetric. An element with no text at all yields the
// all-empty value.
func LocalizedText(node *Node) dcat.MultilingualText {
	var text dcat.MultilingualText
	if node == nil {
		return text
	}
	found := false
	for _, locale := range sourceLocales {
		if value := SingleValue(node, localizedTextPath(locale)); value != "" {
			text.Set(strings.ToLower(locale), value)
			found = true
		}
	}
	if found {
		return text
	}
	if value := SingleValue(node, untaggedTextPath); value != "" {
		return dcat.NewMultilingualText(value)
	}
	return text
}

// UntaggedValue returns an element's single language-neutral value: the
// untagged character string when present, otherwise the first locale-tagged
// value in source order. Used for fields that are flat strings in the target
// schema, like the publisher name.
func UntaggedValue(node *Node) string {
	if node == nil {
		return ""
	}
	if value := SingleValue(node, untaggedTextPath); value != "" {
		return value
	}
	for _, locale := range sourceLocales {
		if value := SingleValue(node, localizedTextPath(locale)); value != "" {
			return value
		}
	}
	return ""
}

// RightsText resolves a constraints element into per-language free text,
// including the gmx:Anchor form some records use instead of plain character
// strings.
func RightsText(node *Node) dcat.MultilingualText {
	if node == nil {
		return dcat.MultilingualText{}
	}
	text := LocalizedText(node)
	if text.IsEmpty() {
		if anchor := SingleValue(node, anchorTextPath); anchor != "" {
			return dcat.NewMultilingualText(anchor)
		}
	}
	return text
}

// LocalizedURLs returns the locale variants of a linkage element as a map
// from lowercase language code to URL. Records advertise per-language URLs
// through che:LocalisedURL groups.
func LocalizedURLs(node *Node) map[string]string {
	urls := make(map[string]string)
	if node == nil {
		return urls
	}
	for _, locale := range sourceLocales {
		if value := SingleValue(node, localizedURLPath(locale)); value != "" {
			urls[strings.ToLower(locale)] = value
		}
	}
	return urls
}
