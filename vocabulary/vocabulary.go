// Package vocabulary loads the static reference data the crosswalk depends
// on — the terms-of-use rights graph, format and media-type tables, and the
// protocol exclusion list — once per process, and exposes lookup functions
// from source-vocabulary codes to target-vocabulary URIs and labels.
//
// A Resolver is read-only after Load and safe for concurrent use. It is
// passed to the mapper explicitly so unit tests can construct one from
// in-memory data instead of the embedded files.
package vocabulary

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml data/*.ttl
var embeddedData embed.FS

// Resolver holds the loaded reference datasets.
type Resolver struct {
	rights            map[string]string // normalized free text -> rights URI
	formats           map[string]string // lowercase format name -> normalized code
	mediaTypes        map[string]string // lowercase IANA media type -> normalized code
	excludedProtocols []string
	landingProtocols  []string
	relationProtocols []string
}

type protocolLists struct {
	Excluded    []string `yaml:"excluded_protocols"`
	LandingPage []string `yaml:"landing_page_protocols"`
	Relation    []string `yaml:"relation_protocols"`
}

// Load reads the embedded reference data. Call once at startup.
func Load() (*Resolver, error) {
	r := &Resolver{}

	rights, err := loadRightsGraph(embeddedData, "data/terms-of-use.ttl")
	if err != nil {
		return nil, fmt.Errorf("loading terms of use: %w", err)
	}
	r.rights = rights

	if err := loadYAML(embeddedData, "data/formats.yaml", &r.formats); err != nil {
		return nil, fmt.Errorf("loading format table: %w", err)
	}
	r.formats = lowerKeys(r.formats)

	if err := loadYAML(embeddedData, "data/media-types.yaml", &r.mediaTypes); err != nil {
		return nil, fmt.Errorf("loading media type table: %w", err)
	}
	r.mediaTypes = lowerKeys(r.mediaTypes)

	var protocols protocolLists
	if err := loadYAML(embeddedData, "data/mapping.yaml", &protocols); err != nil {
		return nil, fmt.Errorf("loading protocol lists: %w", err)
	}
	r.excludedProtocols = protocols.Excluded
	r.landingProtocols = protocols.LandingPage
	r.relationProtocols = protocols.Relation

	return r, nil
}

func loadYAML(fs embed.FS, name string, out any) error {
	data, err := fs.ReadFile(name)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

func lowerKeys(m map[string]string) map[string]string {
	lowered := make(map[string]string, len(m))
	for k, v := range m {
		lowered[strings.ToLower(k)] = v
	}
	return lowered
}

// ResolveFormat normalizes a raw format value: first via the format-name
// table, then via the IANA media-type table, and finally as a lenient
// passthrough of the raw value when neither table knows it.
func (r *Resolver) ResolveFormat(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	key := strings.ToLower(raw)
	if code, ok := r.formats[key]; ok {
		return code
	}
	if code, ok := r.mediaTypes[key]; ok {
		return code
	}
	return raw
}

// IsExcludedProtocol reports whether a raw protocol string is on the
// exclusion list, e.g. the sentinel marking a permalink back to the
// open-data portal rather than a real resource.
func (r *Resolver) IsExcludedProtocol(protocol string) bool {
	return contains(r.excludedProtocols, protocol)
}

// IsLandingPageProtocol reports whether a protocol marks a resource whose
// URL is promoted to the dataset landing page.
func (r *Resolver) IsLandingPageProtocol(protocol string) bool {
	return contains(r.landingProtocols, protocol)
}

// IsRelationProtocol reports whether a protocol marks a resource kept as a
// labelled relation link instead of a distribution.
func (r *Resolver) IsRelationProtocol(protocol string) bool {
	return contains(r.relationProtocols, protocol)
}

// Summary reports the size of each loaded reference dataset, for the CLI
// and for sanity checks at startup.
func (r *Resolver) Summary() map[string]int {
	return map[string]int{
		"rights_labels":          len(r.rights),
		"formats":                len(r.formats),
		"media_types":            len(r.mediaTypes),
		"excluded_protocols":     len(r.excludedProtocols),
		"landing_page_protocols": len(r.landingProtocols),
		"relation_protocols":     len(r.relationProtocols),
	}
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
