// Package protocol classifies the free-text protocol strings carried by
// source online resources into a fixed set of normalized kinds, and derives
// the format, media-type, and title rules that follow from each kind.
package protocol

import (
	"strings"

	"github.com/opendata-swiss/geocat-crosswalk/dcat"
)

// Kind is a normalized resource-access kind.
type Kind int

const (
	// Unknown keeps the resource as an un-normalized passthrough.
	Unknown Kind = iota
	Download
	WMTS
	WFS
	WMS
	LinkedData
	EsriRest
	MapPreview
	App
)

const appProtocol = "WWW:DOWNLOAD-APP"

// kindPrefixes is ordered: a raw protocol is classified by the first prefix
// it matches. The app protocol is handled before this table because its
// string starts with the download prefix and must match exactly.
var kindPrefixes = []struct {
	kind   Kind
	prefix string
}{
	{Download, "WWW:DOWNLOAD"},
	{WMTS, "OGC:WMTS"},
	{WFS, "OGC:WFS"},
	{WMS, "OGC:WMS"},
	{LinkedData, "LINKED:DATA"},
	{EsriRest, "ESRI:REST"},
	{MapPreview, "MAP:Preview"},
}

// Classify maps a raw protocol string to its normalized kind. Strings that
// match nothing yield Unknown; the caller logs and keeps the resource
// rather than failing the record.
func Classify(raw string) Kind {
	if raw == appProtocol {
		return App
	}
	for _, kp := range kindPrefixes {
		if strings.HasPrefix(raw, kp.prefix) {
			return kp.kind
		}
	}
	return Unknown
}

func (k Kind) String() string {
	switch k {
	case Download:
		return "DOWNLOAD"
	case WMTS:
		return "WMTS"
	case WFS:
		return "WFS"
	case WMS:
		return "WMS"
	case LinkedData:
		return "LINKED_DATA"
	case EsriRest:
		return "ESRI_REST"
	case MapPreview:
		return "MAP_PREVIEW"
	case App:
		return "APP"
	}
	return "UNKNOWN"
}

// Label returns the human-readable name used as a resource title when the
// source record names the resource nothing at all.
func (k Kind) Label() string {
	switch k {
	case Download:
		return "Download"
	case WMTS:
		return "WMTS"
	case WFS:
		return "WFS"
	case WMS:
		return "WMS"
	case LinkedData:
		return "Linked Data"
	case EsriRest:
		return "API"
	case MapPreview:
		return mapPreviewLabel
	case App:
		return "Application"
	}
	return ""
}

// FormatResolver normalizes raw format values. Satisfied by
// *vocabulary.Resolver.
type FormatResolver interface {
	ResolveFormat(raw string) string
}

// DeriveFormat returns the (format, media type) pair for a resource, given
// its raw protocol string and normalized kind.
//
//   - Download with a ":FORMAT" suffix after the prefix: both values are the
//     suffix run through the format tables.
//   - Download without a suffix: both empty.
//   - LinkedData: format is the token after the last colon of the raw string.
//   - EsriRest: constant "API". App and MapPreview: constant "SERVICE".
//   - WMTS, WFS, WMS: the kind code itself.
//
// The media type is only ever set for download resources.
func DeriveFormat(raw string, kind Kind, formats FormatResolver) (string, string) {
	switch kind {
	case Download:
		rest := strings.TrimPrefix(raw, "WWW:DOWNLOAD")
		if strings.HasPrefix(rest, ":") && len(rest) > 1 {
			format := formats.ResolveFormat(rest[1:])
			return format, format
		}
		return "", ""
	case LinkedData:
		if i := strings.LastIndex(raw, ":"); i >= 0 && i+1 < len(raw) {
			return raw[i+1:], ""
		}
		return "", ""
	case EsriRest:
		return "API", ""
	case App, MapPreview:
		return "SERVICE", ""
	case WMTS, WFS, WMS:
		return kind.String(), ""
	}
	return "", ""
}

const mapPreviewLabel = "Map (Preview)"

// Title derives the display title for a resource from its normalized kind
// and the localized name the source record gives it.
//
// Map previews are prefixed with the fixed preview label in every language;
// an English name that already says "Preview" is kept as-is to avoid
// doubling the word. Every other kind uses the name unchanged, or the
// kind's human label replicated across languages when the record names the
// resource nothing at all.
func Title(kind Kind, name dcat.MultilingualText) dcat.MultilingualText {
	if kind == MapPreview {
		var title dcat.MultilingualText
		for _, lang := range dcat.Languages {
			value := name.Get(lang)
			switch {
			case value == "":
				title.Set(lang, mapPreviewLabel)
			case lang == "en" && strings.Contains(value, "Preview"):
				title.Set(lang, value)
			default:
				title.Set(lang, mapPreviewLabel+" "+value)
			}
		}
		return title
	}
	if name.IsEmpty() && kind != Unknown {
		return dcat.NewMultilingualText(kind.Label())
	}
	return name
}
