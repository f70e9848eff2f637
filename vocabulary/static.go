package vocabulary

// Tables is the raw reference data a Resolver is built from. It exists so
// tests can construct a Resolver from literals instead of the embedded
// files; production code uses Load.
type Tables struct {
	Rights            map[string]string
	Formats           map[string]string
	MediaTypes        map[string]string
	ExcludedProtocols []string
	LandingProtocols  []string
	RelationProtocols []string
}

// NewStatic builds a Resolver from caller-supplied tables.
func NewStatic(t Tables) *Resolver {
	r := &Resolver{
		rights:            make(map[string]string, len(t.Rights)),
		formats:           lowerKeys(t.Formats),
		mediaTypes:        lowerKeys(t.MediaTypes),
		excludedProtocols: t.ExcludedProtocols,
		landingProtocols:  t.LandingProtocols,
		relationProtocols: t.RelationProtocols,
	}
	for text, uri := range t.Rights {
		if label := normalizeRightsText(text); label != "" {
			r.rights[label] = uri
		}
	}
	return r
}
