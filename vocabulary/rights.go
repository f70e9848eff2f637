package vocabulary

import (
	"embed"
	"strings"

	"github.com/knakk/rdf"

	"github.com/opendata-swiss/geocat-crosswalk/dcat"
)

// prefLabel is the mapping relation in the terms-of-use graph: each canonical
// rights URI carries one label per language with the free text the source
// system uses for it.
const prefLabel = "http://www.w3.org/2004/02/skos/core#prefLabel"

// loadRightsGraph decodes the terms-of-use graph and indexes it by
// normalized label text. Labels are canonical phrases, so a flat index over
// all languages is unambiguous.
func loadRightsGraph(fs embed.FS, name string) (map[string]string, error) {
	data, err := fs.ReadFile(name)
	if err != nil {
		return nil, err
	}
	dec := rdf.NewTripleDecoder(strings.NewReader(string(data)), rdf.Turtle)
	triples, err := dec.DecodeAll()
	if err != nil {
		return nil, err
	}

	rights := make(map[string]string)
	for _, t := range triples {
		if t.Pred.String() != prefLabel {
			continue
		}
		lit, ok := t.Obj.(rdf.Literal)
		if !ok {
			continue
		}
		if label := normalizeRightsText(lit.String()); label != "" {
			rights[label] = t.Subj.String()
		}
	}
	return rights, nil
}

// ResolveRights maps the localized terms-of-use free text of a record to a
// canonical rights URI. Languages are tried in the fixed order de, fr, it,
// en and the first matching text wins, so the result is deterministic even
// when several languages would match. Records whose text matches nothing
// fall back to the caller-supplied default.
func (r *Resolver) ResolveRights(text dcat.MultilingualText, defaultRights string) string {
	for _, lang := range dcat.Languages {
		value := normalizeRightsText(text.Get(lang))
		if value == "" {
			continue
		}
		if uri, ok := r.rights[value]; ok {
			return uri
		}
	}
	return defaultRights
}

func normalizeRightsText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
