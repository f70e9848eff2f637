package vocabulary

// The small closed code tables live here as constant maps: they are part of
// the mapping contract, change only with the target catalog, and gain
// nothing from being data files.

// frequencyTable maps ISO maintenance frequency codes to Dublin Core
// collection description frequency URIs.
var frequencyTable = map[string]string{
	"continual":   "http://purl.org/cld/freq/continuous",
	"daily":       "http://purl.org/cld/freq/daily",
	"weekly":      "http://purl.org/cld/freq/weekly",
	"fortnightly": "http://purl.org/cld/freq/biweekly",
	"monthly":     "http://purl.org/cld/freq/monthly",
	"quarterly":   "http://purl.org/cld/freq/quarterly",
	"biannually":  "http://purl.org/cld/freq/semiannual",
	"annually":    "http://purl.org/cld/freq/annual",
	"asNeeded":    "http://purl.org/cld/freq/completelyIrregular",
	"irregular":   "http://purl.org/cld/freq/completelyIrregular",
}

// languageTable maps the three-letter ISO codes used by the source records
// to the two-letter codes of the target catalog.
var languageTable = map[string]string{
	"ger": "de",
	"fra": "fr",
	"eng": "en",
	"ita": "it",
}

// themeTable maps ISO topic category codes to target catalog groups. One
// source code can yield several groups.
var themeTable = map[string][]string{
	"imageryBaseMapsEarthCover":            {"geography", "territory"},
	"imageryBaseMapsEarthCover_BaseMaps":   {"geography", "territory"},
	"imageryBaseMapsEarthCover_EarthCover": {"geography", "territory"},
	"imageryBaseMapsEarthCover_Imagery":    {"geography", "territory"},
	"location":                             {"geography", "territory"},
	"elevation":                            {"geography", "territory"},
	"boundaries":                           {"geography", "territory"},
	"planningCadastre":                     {"geography", "territory"},
	"planningCadastre_Planning":            {"geography", "territory"},
	"planningCadastre_Cadastre":            {"geography", "territory"},
	"geoscientificInformation":             {"geography", "territory"},
	"geoscientificInformation_Geology":     {"geography", "territory"},
	"geoscientificInformation_Soils":       {"geography", "territory"},
	"geoscientificInformation_NaturalHazards": {"geography", "territory"},
	"biota":                            {"geography", "territory", "agriculture"},
	"oceans":                           {"geography", "territory"},
	"inlandWaters":                     {"geography", "territory"},
	"climatologyMeteorologyAtmosphere": {"geography", "territory"},
	"environment":                      {"geography", "territory"},
	"environment_EnvironmentalProtection": {"geography", "territory"},
	"environment_NatureProtection":        {"geography", "territory"},
	"society":                             {"geography", "culture", "population"},
	"health":                              {"geography", "health"},
	"structure":                           {"geography", "construction"},
	"transportation":                      {"geography", "mobility"},
	"utilitiesCommunication":              {"geography", "territory", "energy", "culture"},
	"utilitiesCommunication_Energy":       {"geography", "energy", "territory"},
	"utilitiesCommunication_Utilities":    {"geography", "territory"},
	"utilitiesCommunication_Communication": {"geography", "culture"},
	"intelligenceMilitary":                 {"geography", "public-order"},
	"farming":                              {"geography", "agriculture"},
	"economy":                              {"geography", "work", "national-economy"},
}

// ResolveFrequency maps a maintenance frequency code to its target URI, or
// "" when the code is unknown or absent.
func (r *Resolver) ResolveFrequency(code string) string {
	return frequencyTable[code]
}

// ResolveLanguage maps a source language code to the target form, or ""
// when unrecognized.
func (r *Resolver) ResolveLanguage(code string) string {
	return languageTable[code]
}

// ResolveCategories maps source theme codes to target groups. Unmapped codes
// are silently dropped; the union is deduplicated, keeping first-seen order.
func (r *Resolver) ResolveCategories(codes []string) []string {
	seen := make(map[string]bool)
	var groups []string
	for _, code := range codes {
		for _, group := range themeTable[code] {
			if !seen[group] {
				seen[group] = true
				groups = append(groups, group)
			}
		}
	}
	return groups
}
