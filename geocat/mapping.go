// Package geocat maps ISO19139/CHE metadata records harvested from the
// geocat.ch catalogue into opendata.swiss dataset records. One call maps one
// record; the mapper is stateless apart from the injected vocabulary
// resolver and safe for concurrent use.
package geocat

import (
	"fmt"

	"github.com/opendata-swiss/geocat-crosswalk/dcat"
	"github.com/opendata-swiss/geocat-crosswalk/vocabulary"
	"github.com/opendata-swiss/geocat-crosswalk/xmlnav"
)

const legalBasisLabel = "legal_basis"

// Mapping holds the per-harvest configuration for mapping records of one
// organization.
type Mapping struct {
	// OrganizationSlug is the target catalog organization the records
	// belong to.
	OrganizationSlug string

	// PermalinkBase and PermalinkLabel describe the permalink relation
	// appended to every dataset: PermalinkBase + source id.
	PermalinkBase  string
	PermalinkLabel string

	// LegalBasisURL, when set, is appended to every dataset's relations.
	LegalBasisURL string

	// DefaultRights is the rights URI used when a record's terms-of-use
	// text matches nothing in the vocabulary.
	DefaultRights string

	// ValidIdentifiers is the set of composite identifiers known to exist
	// in the target catalog. Cross-references to anything else are dropped.
	ValidIdentifiers map[string]struct{}

	// Vocabulary is the loaded static reference data.
	Vocabulary *vocabulary.Resolver
}

// Identifier composes the target catalog identifier for a source record id.
// The composite form is always "{id}@{organization}".
func (m *Mapping) Identifier(sourceID string) string {
	return sourceID + "@" + m.OrganizationSlug
}

// Dataset maps one raw CSW record to a dataset record. A record that is not
// well-formed XML fails with an error matchable as *xmlnav.MetadataFormatError;
// everything else degrades to typed empty values, never to an error.
func (m *Mapping) Dataset(raw []byte, sourceID string) (*dcat.Dataset, error) {
	root, err := xmlnav.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", sourceID, err)
	}

	ds := dcat.NewDataset()
	ds.Identifier = m.Identifier(sourceID)
	ds.OwnerOrg = m.OrganizationSlug

	ds.Title = mapTitle(root)
	ds.Description = mapDescription(root)
	ds.Publisher = mapPublisher(root)
	ds.ContactPoints = mapContactPoints(root)
	ds.Issued = mapIssued(root)
	ds.Modified = mapModified(root)
	if ds.Modified == "" {
		ds.Modified = ds.Issued
	}
	ds.Rights = m.Vocabulary.ResolveRights(mapRightsText(root), m.DefaultRights)
	ds.Keywords = mapKeywords(root)
	ds.Groups = mapGroups(root, m.Vocabulary)
	ds.AccrualPeriodicity = m.Vocabulary.ResolveFrequency(mapFrequencyCode(root))
	ds.Spatial = mapSpatial(root)
	ds.Temporals = mapTemporals(root)
	ds.SeeAlsos = m.resolveSeeAlsos(mapSeeAlsoIDs(root))
	for _, code := range mapLanguageCodes(root) {
		ds.AddLanguage(m.Vocabulary.ResolveLanguage(code))
	}

	ds.Relations = append(ds.Relations, dcat.Relation{
		URL:   m.PermalinkBase + sourceID,
		Label: dcat.NewMultilingualText(m.PermalinkLabel),
	})
	if m.LegalBasisURL != "" {
		ds.Relations = append(ds.Relations, dcat.Relation{
			URL:   m.LegalBasisURL,
			Label: dcat.NewMultilingualText(legalBasisLabel),
		})
	}

	m.mapResources(root, ds)
	m.mapServices(root, ds)

	return ds, nil
}

// resolveSeeAlsos turns raw cross-referenced source ids into composite
// identifiers and keeps only those that exist in the target catalog.
// Dangling references are dropped silently.
func (m *Mapping) resolveSeeAlsos(sourceIDs []string) []string {
	seeAlsos := make([]string, 0, len(sourceIDs))
	for _, id := range sourceIDs {
		composite := m.Identifier(id)
		if _, ok := m.ValidIdentifiers[composite]; ok {
			seeAlsos = append(seeAlsos, composite)
		}
	}
	return seeAlsos
}
