package geo

// Country ties together the three identifiers the dataset and catalog use:
// the display name in the CSV, the ISO-2 code in the trends export, and the
// ISO-3 code addressing the catalog files.
type Country struct {
	Name string
	ISO2 string
	ISO3 string
}

// Countries is the fixed set the international export covers.
var Countries = []Country{
	{"Argentina", "AR", "ARG"},
	{"Australia", "AU", "AUS"},
	{"Austria", "AT", "AUT"},
	{"Belgium", "BE", "BEL"},
	{"Brazil", "BR", "BRA"},
	{"Canada", "CA", "CAN"},
	{"Chile", "CL", "CHL"},
	{"Colombia", "CO", "COL"},
	{"Czech Republic", "CZ", "CZE"},
	{"Denmark", "DK", "DNK"},
	{"Egypt", "EG", "EGY"},
	{"Finland", "FI", "FIN"},
	{"France", "FR", "FRA"},
	{"Germany", "DE", "DEU"},
	{"Hungary", "HU", "HUN"},
	{"India", "IN", "IND"},
	{"Indonesia", "ID", "IDN"},
	{"Israel", "IL", "ISR"},
	{"Italy", "IT", "ITA"},
	{"Japan", "JP", "JPN"},
	{"Malaysia", "MY", "MYS"},
	{"Mexico", "MX", "MEX"},
	{"Netherlands", "NL", "NLD"},
	{"New Zealand", "NZ", "NZL"},
	{"Nigeria", "NG", "NGA"},
	{"Norway", "NO", "NOR"},
	{"Philippines", "PH", "PHL"},
	{"Poland", "PL", "POL"},
	{"Portugal", "PT", "PRT"},
	{"Romania", "RO", "ROU"},
	{"Saudi Arabia", "SA", "SAU"},
	{"South Africa", "ZA", "ZAF"},
	{"South Korea", "KR", "KOR"},
	{"Spain", "ES", "ESP"},
	{"Sweden", "SE", "SWE"},
	{"Switzerland", "CH", "CHE"},
	{"Taiwan", "TW", "TWN"},
	{"Thailand", "TH", "THA"},
	{"Turkey", "TR", "TUR"},
	{"Ukraine", "UA", "UKR"},
	{"United Kingdom", "GB", "GBR"},
	{"Vietnam", "VN", "VNM"},
}

var byName = buildIndex(func(c Country) string { return c.Name })
var byISO2 = buildIndex(func(c Country) string { return c.ISO2 })

func buildIndex(key func(Country) string) map[string]Country {
	m := make(map[string]Country, len(Countries))
	for _, c := range Countries {
		m[key(c)] = c
	}
	return m
}

// ISO3ForName resolves a country display name to its ISO-3 code.
func ISO3ForName(name string) (string, bool) {
	c, ok := byName[name]
	return c.ISO3, ok
}

// ISO3ForISO2 resolves an ISO-2 code to its ISO-3 counterpart.
func ISO3ForISO2(code string) (string, bool) {
	c, ok := byISO2[code]
	return c.ISO3, ok
}

// ISO2ForName resolves a country display name to its ISO-2 code.
func ISO2ForName(name string) (string, bool) {
	c, ok := byName[name]
	return c.ISO2, ok
}
