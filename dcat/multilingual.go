package dcat

// MultilingualText holds one value per catalog language. All four slots are
// always present; a value missing from the source maps to an empty string,
// never to an absent key.
type MultilingualText struct {
	DE string `json:"de"`
	FR string `json:"fr"`
	EN string `json:"en"`
	IT string `json:"it"`
}

// Languages is the fixed set of catalog languages, in the order used for
// deterministic iteration (rights resolution, fallbacks).
var Languages = []string{"de", "fr", "it", "en"}

// NewMultilingualText replicates a single untagged value into all four
// language slots. Many source records carry only one untagged value and
// consumers expect a symmetric structure in every language.
func NewMultilingualText(value string) MultilingualText {
	return MultilingualText{DE: value, FR: value, EN: value, IT: value}
}

// Get returns the value for a language code, or "" for unknown codes.
func (t MultilingualText) Get(lang string) string {
	switch lang {
	case "de":
		return t.DE
	case "fr":
		return t.FR
	case "en":
		return t.EN
	case "it":
		return t.IT
	}
	return ""
}

// Set stores a value for a language code. Unknown codes are ignored.
func (t *MultilingualText) Set(lang, value string) {
	switch lang {
	case "de":
		t.DE = value
	case "fr":
		t.FR = value
	case "en":
		t.EN = value
	case "it":
		t.IT = value
	}
}

// IsEmpty reports whether every language slot is empty.
func (t MultilingualText) IsEmpty() bool {
	return t.DE == "" && t.FR == "" && t.EN == "" && t.IT == ""
}

// Any returns the first non-empty value in de, fr, it, en order.
func (t MultilingualText) Any() string {
	for _, lang := range Languages {
		if v := t.Get(lang); v != "" {
			return v
		}
	}
	return ""
}
