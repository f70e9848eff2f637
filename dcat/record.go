// Package dcat defines the target record types produced by the crosswalk:
// a flat, typed dataset record with its distributions, approximating the
// DCAT application profile used by the open-data catalog.
package dcat

// Dataset is the top-level output of mapping one source metadata record.
type Dataset struct {
	// Identifier is always "{sourceID}@{organization slug}", never the bare
	// source id.
	Identifier         string            `json:"identifier"`
	Title              MultilingualText  `json:"title"`
	Description        MultilingualText  `json:"description"`
	Publisher          Publisher         `json:"publisher"`
	ContactPoints      []ContactPoint    `json:"contact_points"`
	Issued             string            `json:"issued"`
	Modified           string            `json:"modified"`
	Rights             string            `json:"rights"`
	Keywords           Keywords          `json:"keywords"`
	Groups             []Group           `json:"groups"`
	Language           []string          `json:"language"`
	AccrualPeriodicity string            `json:"accrual_periodicity"`
	Spatial            string            `json:"spatial"`
	Coverage           string            `json:"coverage"`
	Temporals          []Temporal        `json:"temporals"`
	Relations          []Relation        `json:"relations"`
	SeeAlsos           []string          `json:"see_alsos"`
	OwnerOrg           string            `json:"owner_org"`
	URL                string            `json:"url"`
	Documentation      []string          `json:"documentation,omitempty"`
	Resources          []*Distribution   `json:"resources"`
}

// Distribution is one resource of a dataset: a download, a service endpoint,
// or an un-normalized passthrough for protocols the crosswalk does not know.
type Distribution struct {
	Title       MultilingualText `json:"title"`
	Description MultilingualText `json:"description"`
	Issued      string           `json:"issued"`
	Modified    string           `json:"modified"`
	Rights      string           `json:"rights"`
	License     string           `json:"license"`
	Format      string           `json:"format"`
	MediaType   string           `json:"media_type,omitempty"`
	URL         string           `json:"url"`
	// DownloadURL equals URL if and only if the normalized protocol is the
	// download kind.
	DownloadURL string   `json:"download_url,omitempty"`
	Protocol    string   `json:"protocol"`
	Language    []string `json:"language"`
}

// Publisher identifies the organisation responsible for a dataset.
type Publisher struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// ContactPoint is a named email contact for a dataset.
type ContactPoint struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Keywords holds normalized tag lists per catalog language.
type Keywords struct {
	DE []string `json:"de"`
	FR []string `json:"fr"`
	EN []string `json:"en"`
	IT []string `json:"it"`
}

// Append adds a tag to the list for a language. Unknown codes are ignored.
func (k *Keywords) Append(lang, tag string) {
	switch lang {
	case "de":
		k.DE = append(k.DE, tag)
	case "fr":
		k.FR = append(k.FR, tag)
	case "en":
		k.EN = append(k.EN, tag)
	case "it":
		k.IT = append(k.IT, tag)
	}
}

// Get returns the tag list for a language code.
func (k Keywords) Get(lang string) []string {
	switch lang {
	case "de":
		return k.DE
	case "fr":
		return k.FR
	case "en":
		return k.EN
	case "it":
		return k.IT
	}
	return nil
}

// Group is a catalog category assignment.
type Group struct {
	Name string `json:"name"`
}

// Temporal is a start/end date pair in ISO-8601 date form.
type Temporal struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Relation is a labelled link attached to a dataset.
type Relation struct {
	URL   string           `json:"url"`
	Label MultilingualText `json:"label"`
}

// NewDataset creates an empty Dataset with every list field initialized,
// so a sparse source record still serializes with all keys present.
func NewDataset() *Dataset {
	return &Dataset{
		ContactPoints: make([]ContactPoint, 0),
		Keywords: Keywords{
			DE: make([]string, 0),
			FR: make([]string, 0),
			EN: make([]string, 0),
			IT: make([]string, 0),
		},
		Groups:    make([]Group, 0),
		Language:  make([]string, 0),
		Temporals: make([]Temporal, 0),
		Relations: make([]Relation, 0),
		SeeAlsos:  make([]string, 0),
		Resources: make([]*Distribution, 0),
	}
}

// AddLanguage appends a language code if it is non-empty and not already
// present. Insertion order is kept; callers must not depend on it.
func (d *Dataset) AddLanguage(lang string) {
	if lang == "" {
		return
	}
	for _, l := range d.Language {
		if l == lang {
			return
		}
	}
	d.Language = append(d.Language, lang)
}

// HasLanguage reports whether the dataset already lists a language code.
func (d *Dataset) HasLanguage(lang string) bool {
	for _, l := range d.Language {
		if l == lang {
			return true
		}
	}
	return false
}
