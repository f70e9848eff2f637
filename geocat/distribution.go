package geocat

import (
	"log/slog"

	"github.com/opendata-swiss/geocat-crosswalk/dcat"
	"github.com/opendata-swiss/geocat-crosswalk/protocol"
	"github.com/opendata-swiss/geocat-crosswalk/xmlnav"
)

// The two collection paths run from the document root; the per-resource
// paths run against one onLine or operation node and must stay ".//" so
// each resource reads its own children.
const (
	onlineResourcePath = "//gmd:distributionInfo//gmd:transferOptions//gmd:onLine"

	resourceProtocolPath    = ".//gmd:protocol/gco:CharacterString"
	resourceNamePath        = ".//gmd:name"
	resourceDescriptionPath = ".//gmd:description"
	resourceURLPath         = ".//gmd:linkage/gmd:URL"

	operationMetadataPath = "//gmd:identificationInfo//srv:containsOperations//srv:SV_OperationMetadata"
	operationNamePath     = ".//srv:operationName/gco:CharacterString"
	operationURLPath      = ".//srv:connectPoint//gmd:linkage/gmd:URL"

	serviceLabel = "Service"
)

// mapResources walks every online-resource node of the record and routes it:
// excluded protocols are skipped, landing-page protocols feed the dataset
// url (or its documentation once a url exists), relation protocols become
// labelled relation links, and everything else becomes a distribution.
func (m *Mapping) mapResources(root *xmlnav.Node, ds *dcat.Dataset) {
	for _, node := range xmlnav.AllNodes(root, onlineResourcePath) {
		proto := xmlnav.SingleValue(node, resourceProtocolPath)
		if proto == "" || m.Vocabulary.IsExcludedProtocol(proto) {
			continue
		}
		url := xmlnav.SingleValue(node, resourceURLPath)

		if m.Vocabulary.IsLandingPageProtocol(proto) {
			if url == "" {
				continue
			}
			if ds.URL == "" {
				ds.URL = url
			} else {
				ds.Documentation = append(ds.Documentation, url)
			}
			continue
		}

		if m.Vocabulary.IsRelationProtocol(proto) {
			label := xmlnav.LocalizedText(xmlnav.SingleNode(node, resourceDescriptionPath))
			if label.IsEmpty() {
				label = dcat.NewMultilingualText(url)
			}
			ds.Relations = append(ds.Relations, dcat.Relation{URL: url, Label: label})
			continue
		}

		dist := m.mapDistribution(node, proto, url, ds)
		ds.Resources = append(ds.Resources, dist)
		for _, lang := range dist.Language {
			ds.AddLanguage(lang)
		}
	}
}

// mapDistribution builds one distribution from an online-resource node.
// Issued, modified, and rights always come from the dataset; the download
// URL is set exactly when the normalized protocol is the download kind.
func (m *Mapping) mapDistribution(node *xmlnav.Node, proto, url string, ds *dcat.Dataset) *dcat.Distribution {
	kind := protocol.Classify(proto)
	if kind == protocol.Unknown {
		slog.Warn("unknown resource protocol kept as passthrough",
			"protocol", proto, "identifier", ds.Identifier)
	}

	name := xmlnav.LocalizedText(xmlnav.SingleNode(node, resourceNamePath))
	format, mediaType := protocol.DeriveFormat(proto, kind, m.Vocabulary)

	dist := &dcat.Distribution{
		Title:       protocol.Title(kind, name),
		Description: xmlnav.LocalizedText(xmlnav.SingleNode(node, resourceDescriptionPath)),
		Issued:      ds.Issued,
		Modified:    ds.Modified,
		Rights:      ds.Rights,
		License:     ds.Rights,
		Format:      format,
		MediaType:   mediaType,
		URL:         url,
		Protocol:    proto,
		Language:    resourceLanguages(node),
	}
	if kind == protocol.Download {
		dist.DownloadURL = url
	}
	return dist
}

// resourceLanguages lists the locales for which the resource advertises a
// localized URL variant, in the catalog's fixed language order.
func resourceLanguages(node *xmlnav.Node) []string {
	localized := xmlnav.LocalizedURLs(node)
	languages := make([]string, 0, len(localized))
	for _, lang := range dcat.Languages {
		if _, ok := localized[lang]; ok {
			languages = append(languages, lang)
		}
	}
	return languages
}

// mapServices synthesizes a distribution for each service operation the
// record advertises. These carry their own title and URL but share the
// dataset's description, dates, and rights.
func (m *Mapping) mapServices(root *xmlnav.Node, ds *dcat.Dataset) {
	for _, node := range xmlnav.AllNodes(root, operationMetadataPath) {
		url := xmlnav.SingleValue(node, operationURLPath)
		if url == "" {
			continue
		}
		title := xmlnav.SingleValue(node, operationNamePath)
		if title == "" {
			title = serviceLabel
		}
		ds.Resources = append(ds.Resources, &dcat.Distribution{
			Title:       dcat.NewMultilingualText(title),
			Description: ds.Description,
			Issued:      ds.Issued,
			Modified:    ds.Modified,
			Rights:      ds.Rights,
			License:     ds.Rights,
			Format:      "SERVICE",
			URL:         url,
			Language:    make([]string, 0),
		})
	}
}
