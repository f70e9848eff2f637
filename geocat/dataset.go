package geocat

import (
	"time"

	"github.com/opendata-swiss/geocat-crosswalk/dcat"
	"github.com/opendata-swiss/geocat-crosswalk/helpers"
	"github.com/opendata-swiss/geocat-crosswalk/vocabulary"
	"github.com/opendata-swiss/geocat-crosswalk/xmlnav"
)

// Dataset-level extraction paths. Every extractor has an explicit empty
// default: strings fall back to "", lists to empty slices, localized text to
// the all-empty value. A sparse record maps to a sparse but well-typed
// dataset, never to an error.
const (
	titlePath       = "//gmd:identificationInfo//gmd:citation//gmd:title"
	descriptionPath = "//gmd:identificationInfo//gmd:abstract"
	keywordPath     = "//gmd:identificationInfo//gmd:descriptiveKeywords//gmd:keyword"
	themePath       = "//gmd:identificationInfo//gmd:topicCategory/gmd:MD_TopicCategoryCode"
	frequencyPath   = "//gmd:identificationInfo//che:CHE_MD_MaintenanceInformation/gmd:maintenanceAndUpdateFrequency/gmd:MD_MaintenanceFrequencyCode/@codeListValue"
	spatialPath     = "//gmd:identificationInfo//gmd:extent//gmd:description/gco:CharacterString"
	languagePath    = "//gmd:identificationInfo//gmd:language/gmd:LanguageCode/@codeListValue"
	rightsPath      = "//gmd:identificationInfo//gmd:resourceConstraints//gmd:otherConstraints"

	temporalStartPath = "//gmd:identificationInfo//gmd:extent//gml:TimePeriod/gml:beginPosition"
	temporalEndPath   = "//gmd:identificationInfo//gmd:extent//gml:TimePeriod/gml:endPosition"

	seeAlsoPath = "//gmd:identificationInfo//gmd:aggregationInfo[gmd:MD_AggregateInformation/gmd:associationType/gmd:DS_AssociationTypeCode/@codeListValue='crossReference']//gmd:aggregateDataSetIdentifier//gmd:code/gco:CharacterString"

	genericContactPath    = "//gmd:contact//che:CHE_CI_ResponsibleParty//gmd:organisationName"
	genericContactURLPath = "//gmd:contact//che:CHE_CI_ResponsibleParty//gmd:contactInfo//gmd:linkage/gmd:URL"
	genericEmailPath      = "//gmd:contact//che:CHE_CI_ResponsibleParty//gmd:electronicMailAddress/gco:CharacterString"
)

// The sentinel keyword the source system uses to mark records for harvest
// discovery. It is not a real keyword and never reaches the output.
const harvestSentinelKeyword = "opendata.swiss"

// pointOfContact builds a role-qualified query against the identification
// block's responsible parties.
func pointOfContact(role, element string) string {
	return "//gmd:identificationInfo//gmd:pointOfContact[che:CHE_CI_ResponsibleParty/gmd:role/gmd:CI_RoleCode/@codeListValue='" + role + "']//" + element
}

// publisherRoles is the role preference order for deriving the publisher.
var publisherRoles = []string{"publisher", "owner", "pointOfContact", "distributor", "custodian"}

// contactRoles is the role preference order for deriving the contact point.
var contactRoles = []string{"pointOfContact", "owner", "publisher", "distributor", "custodian"}

func mapTitle(root *xmlnav.Node) dcat.MultilingualText {
	return xmlnav.LocalizedText(xmlnav.SingleNode(root, titlePath))
}

func mapDescription(root *xmlnav.Node) dcat.MultilingualText {
	return xmlnav.LocalizedText(xmlnav.SingleNode(root, descriptionPath))
}

// mapPublisher tries role-qualified organisation names in preference order,
// then the record-level contact. The organisation URL comes from the
// contact-info block sibling to whichever path matched.
func mapPublisher(root *xmlnav.Node) dcat.Publisher {
	namePaths := make([]string, 0, len(publisherRoles)+1)
	urlPaths := make([]string, 0, len(publisherRoles)+1)
	for _, role := range publisherRoles {
		namePaths = append(namePaths, pointOfContact(role, "gmd:organisationName"))
		urlPaths = append(urlPaths, pointOfContact(role, "gmd:contactInfo//gmd:linkage/gmd:URL"))
	}
	namePaths = append(namePaths, genericContactPath)
	urlPaths = append(urlPaths, genericContactURLPath)

	node, matched := xmlnav.FirstNodeOfPaths(root, namePaths)
	if node == nil {
		return dcat.Publisher{}
	}
	name := xmlnav.UntaggedValue(node)
	if name == "" {
		return dcat.Publisher{}
	}
	return dcat.Publisher{
		Name: name,
		URL:  xmlnav.SingleValue(root, urlPaths[matched]),
	}
}

// mapContactPoints takes the first role-qualified email address found and
// uses it as both name and email, matching the target schema's shape.
func mapContactPoints(root *xmlnav.Node) []dcat.ContactPoint {
	paths := make([]string, 0, len(contactRoles)+1)
	for _, role := range contactRoles {
		paths = append(paths, pointOfContact(role, "gmd:address//gmd:electronicMailAddress/gco:CharacterString"))
	}
	paths = append(paths, genericEmailPath)

	email, _ := xmlnav.FirstOfPaths(root, paths)
	if email == "" {
		return []dcat.ContactPoint{}
	}
	return []dcat.ContactPoint{{Name: email, Email: email}}
}

// citationDate builds a query for one citation date of a given type, in
// either the datetime or the date-only representation.
func citationDate(dateType, valueElement string) string {
	return "//gmd:identificationInfo//gmd:citation//gmd:CI_Date[gmd:dateType/gmd:CI_DateTypeCode/@codeListValue='" + dateType + "']//" + valueElement
}

var issuedPaths = []string{
	citationDate("publication", "gco:DateTime"),
	citationDate("publication", "gco:Date"),
	citationDate("creation", "gco:DateTime"),
	citationDate("creation", "gco:Date"),
	citationDate("revision", "gco:DateTime"),
	citationDate("revision", "gco:Date"),
}

var modifiedPaths = []string{
	citationDate("revision", "gco:DateTime"),
	citationDate("revision", "gco:Date"),
}

// mapIssued walks the publication, creation, revision fallback chain.
func mapIssued(root *xmlnav.Node) string {
	value, _ := xmlnav.FirstOfPaths(root, issuedPaths)
	return isoDate(value)
}

// mapModified considers only revision dates; the caller falls back to the
// issued date when no revision date exists.
func mapModified(root *xmlnav.Node) string {
	value, _ := xmlnav.FirstOfPaths(root, modifiedPaths)
	return isoDate(value)
}

// isoDate reduces a source date or datetime value to an ISO-8601 date
// string, reading only the YYYY-MM-DD prefix and ignoring time of day and
// zone. Unparseable values map to "".
func isoDate(value string) string {
	if len(value) < len("2006-01-02") {
		return ""
	}
	t, err := time.Parse("2006-01-02", value[:len("2006-01-02")])
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// mapKeywords localizes every keyword node and normalizes each value into
// tag form. The harvest discovery sentinel is excluded in every language.
func mapKeywords(root *xmlnav.Node) dcat.Keywords {
	keywords := dcat.Keywords{
		DE: make([]string, 0),
		FR: make([]string, 0),
		EN: make([]string, 0),
		IT: make([]string, 0),
	}
	for _, node := range xmlnav.AllNodes(root, keywordPath) {
		localized := xmlnav.LocalizedText(node)
		for _, lang := range dcat.Languages {
			value := localized.Get(lang)
			if value == "" || value == harvestSentinelKeyword {
				continue
			}
			if tag := helpers.MungeTag(value); tag != "" {
				keywords.Append(lang, tag)
			}
		}
	}
	return keywords
}

func mapGroups(root *xmlnav.Node, vocab *vocabulary.Resolver) []dcat.Group {
	codes := xmlnav.AllValues(root, themePath)
	names := vocab.ResolveCategories(codes)
	groups := make([]dcat.Group, 0, len(names))
	for _, name := range names {
		groups = append(groups, dcat.Group{Name: name})
	}
	return groups
}

func mapFrequencyCode(root *xmlnav.Node) string {
	return xmlnav.SingleValue(root, frequencyPath)
}

func mapSpatial(root *xmlnav.Node) string {
	return xmlnav.SingleValue(root, spatialPath)
}

func mapRightsText(root *xmlnav.Node) dcat.MultilingualText {
	return xmlnav.RightsText(xmlnav.SingleNode(root, rightsPath))
}

// mapTemporals yields at most one start/end pair. A missing end date closes
// the period at its start.
func mapTemporals(root *xmlnav.Node) []dcat.Temporal {
	start := isoDate(xmlnav.SingleValue(root, temporalStartPath))
	if start == "" {
		return []dcat.Temporal{}
	}
	end := isoDate(xmlnav.SingleValue(root, temporalEndPath))
	if end == "" {
		end = start
	}
	return []dcat.Temporal{{StartDate: start, EndDate: end}}
}

func mapSeeAlsoIDs(root *xmlnav.Node) []string {
	return xmlnav.AllValues(root, seeAlsoPath)
}

func mapLanguageCodes(root *xmlnav.Node) []string {
	return xmlnav.AllValues(root, languagePath)
}
