package overrides

// RegionTable maps a cleaned region label to its canonical counterpart in
// the geometry catalog. Lookups are country-scoped first, then fall back to
// a small global bucket, then to identity: a miss is never an error.
//
// The table is hand-verified, static knowledge: diacritic restoration,
// administrative renames, and many-to-one consolidations where several
// historical names map onto one canonical polygon. It is immutable after
// construction; extension happens by shipping an updated table.
type RegionTable struct {
	scoped map[string]map[string]string
	global map[string]string
}

// Apply returns the canonical label for a cleaned label, or the input
// unchanged when no override exists. Applying twice is idempotent: no
// canonical value is itself a key mapping elsewhere.
func (t *RegionTable) Apply(country, cleaned string) string {
	if byCountry, ok := t.scoped[country]; ok {
		if canonical, ok := byCountry[cleaned]; ok {
			return canonical
		}
	}
	if canonical, ok := t.global[cleaned]; ok {
		return canonical
	}
	return cleaned
}

// Countries returns the number of countries with scoped entries.
func (t *RegionTable) Countries() int {
	return len(t.scoped)
}

// Entries returns the total number of mappings.
func (t *RegionTable) Entries() int {
	n := len(t.global)
	for _, m := range t.scoped {
		n += len(m)
	}
	return n
}

// Walk visits every mapping. Used by the idempotence checks.
func (t *RegionTable) Walk(fn func(country, cleaned, canonical string)) {
	for country, m := range t.scoped {
		for cleaned, canonical := range m {
			fn(country, cleaned, canonical)
		}
	}
	for cleaned, canonical := range t.global {
		fn("", cleaned, canonical)
	}
}

// NewRegionTable builds the curated override table.
func NewRegionTable() *RegionTable {
	return &RegionTable{
		// Entries whose cleaned label is unambiguous across the dataset but
		// not tied to one country block in the source material.
		global: map[string]string{
			"AutonomousofBuenosAires": "BuenosAires",
			"Federal":                 "DistritoFederal",
			"YukonTerritory":          "Yukon",
			"Delhi":                   "NCTofDelhi",
			"Free":                    "FreeState",
			"Jeju-do":                 "Jeju",
			"Taoyuan":                 "Taiwan",
			"England":                 "NA",
			"Jonkoping":               "Jönköping",
			"Bangkok":                 "BangkokMetropolis",
		},
		scoped: map[string]map[string]string{
			"Austria": {
				"Carinthia":    "Kärnten",
				"LowerAustria": "Niederösterreich",
				"UpperAustria": "Oberösterreich",
				"Styria":       "Steiermark",
				"Vienna":       "Wien",
			},
			"Belgium": {
				"Flanders": "Vlaanderen",
				"Brussels": "Bruxelles",
			},
			"Chile": {
				"XIRegión": "AyséndelGeneralIbañezdelCam",
				"O'Higgins": "LibertadorGeneralBernardoO'Hi",
			},
			"Colombia": {
				"CaucaDepartment":     "Cauca",
				"AmazonasDepartment":  "Amazonas",
				"Bogota":              "BogotáD.C.",
				"SantanderDepartment": "Santander",
			},
			"Denmark": {
				"NorthDenmark":     "Nordjylland",
				"CapitalofDenmark": "Hovedstaden",
				"CentralDenmark":   "Midtjylland",
				"Zealand":          "Sjælland",
			},
			"Germany": {
				"LowerSaxony":            "Niedersachsen",
				"Bavaria":                "Bayern",
				"Saxony":                 "Sachsen",
				"NorthRhine-Westphalia":  "Nordrhein-Westfalen",
				"Thuringia":              "Thüringen",
				"Rhineland-Palatinate":   "Rheinland-Pfalz",
				"Saxony-Anhalt":          "Sachsen-Anhalt",
			},
			"Israel": {
				"North":  "HaZafon",
				"South":  "HaDarom",
				"Center": "HaMerkaz",
			},
			"Italy": {
				"Aosta":    "Valled'Aosta",
				"Tuscany":  "Toscana",
				"Sardinia": "Sardegna",
				"Trentino-AltoAdige/SouthTyrol": "Trentino-AltoAdige",
			},
			"Malaysia": {
				"LabuanFederalTerritory":        "Labuan",
				"FederalTerritoryofKualaLumpur": "KualaLumpur",
				"Malacca":                       "Melaka",
				// Correct match is Pulau Pinang, not Pahang.
				"Penang": "PulauPinang",
			},
			"Netherlands": {
				"SouthHolland": "NA",
				// Flevoland is the wrong match; the actual spelling is correct.
				"Friesland": "Fryslân",
			},
			"Saudi Arabia": {
				"NorthernBorders": "AlḤudūdashShamāliyah",
				"Eastern":         "AshSharqīyah",
				"Aseer":           "'Asir",
				"Hail":            "Ḥaʼil",
				"Riyadh":          "ArRiyad",
			},
			"Czech Republic": {
				"SouthBohemian":      "Jihočeský",
				"CentralBohemian":    "Středočeský",
				"SouthMoravian":      "Jihomoravský",
				"ÚstínadLabem":       "Ústecký",
				"HradecKrálové":      "Královéhradecký",
				"Moravian-Silesian":  "Moravskoslezský",
				"Zlin":               "Zlínský",
				"Vysocina":           "KrajVysočina",
				"KarlovyVary":        "Karlovarský",
				"Plzeň":              "Plzeňský",
			},
			"Spain": {
				"BasqueCountry":      "PaísVasco",
				"Navarre":            "ComunidadForaldeNavarra",
				"ValencianCommunity": "ComunidadValenciana",
				"BalearicIslands":    "IslasBaleares",
				"CanaryIslands":      "IslasCanarias",
				"ofMurcia":           "RegióndeMurcia",
				"Ceuta":              "CeutayMelilla",
				"Melilla":            "CeutayMelilla",
				"Asturias":           "PrincipadodeAsturias",
				"Catalonia":          "Cataluña",
				"CommunityofMadrid":  "ComunidaddeMadrid",
				"Andalusia":          "Andalucía",
			},
			// The catalog for Turkey carries no diacritics, so these restore
			// in the opposite direction of most countries.
			"Turkey": {
				"Ağrı":            "Agri",
				"Afyonkarahisar":  "Afyon",
				"Muş":             "Mus",
				"Şırnak":          "Sirnak",
				"Kahramanmaraş":   "K.Maras",
				"Kırıkkale":       "Kirikkale",
				"Çankırı":         "Cankiri",
				"Kırşehir":        "Kirsehir",
				"Uşak":            "Usak",
				"Şanlıurfa":       "Sanliurfa",
			},
			"Poland": {
				"WestPomeranianVoivodeship":      "Zachodniopomorskie",
				"PomeranianVoivodeship":          "Pomorskie",
				"SilesianVoivodeship":            "Śląskie",
				"LowerSilesianVoivodeship":       "Dolnośląskie",
				"Kuyavian-PomeranianVoivodeship": "Kujawsko-Pomorskie",
				"GreaterPolandVoivodeship":       "Wielkopolskie",
				"LesserPolandVoivodeship":        "Małopolskie",
				"MasovianVoivodeship":            "Mazowieckie",
				"OpoleVoivodeship":               "Opolskie",
				"ŁódźVoivodeship":                "Łódzkie",
				"LublinVoivodeship":              "Lubelskie",
				"Warmian-MasurianVoivodeship":    "Warmińsko-Mazurskie",
				"LubuszVoivodeship":              "Lubuskie",
				"PodlaskieVoivodeship":           "Podlaskie",
				"PodkarpackieVoivodeship":        "Podkarpackie",
			},
			"Switzerland": {
				"CantonofUri":          "Uri",
				"CantonofZug":          "Zug",
				// 'Grisons' is the French name; the catalog uses German.
				"Grisons":              "Graubünden",
				"CantonofBern":         "Bern",
				"CantonofJura":         "Jura",
				"CantonofGlarus":       "Glarus",
				"CantonofSchwyz":       "Schwyz",
				"CantonofFribourg":     "Fribourg",
				"CantonofObwalden":     "Obwalden",
				"Geneva":               "Genève",
				"CantonofNeuchâtel":    "Neuchâtel",
				"CantonofSolothurn":    "Solothurn",
				"CantonofSchaffhausen": "Schaffhausen",
				"AppenzellOuterRhodes": "AppenzellAusserrhoden",
			},
			// Finland's catalog predates the 2010 regional reform, so modern
			// regions consolidate onto the old provinces.
			"Finland": {
				"Pirkanmaa":            "WesternFinland",
				"Uusimaa":              "SouthernFinland",
				"NorthKarelia":         "EasternFinland",
				"Kymenlaakso":          "SouthernFinland",
				"PäijänneTavastia":     "SouthernFinland",
				"TavastiaProper":       "SouthernFinland",
				"Satakunta":            "WesternFinland",
				"Kainuu":               "Oulu",
				"CentralOstrobothnia":  "WesternFinland",
				"SouthKarelia":         "SouthernFinland",
				"NorthernOstrobothnia": "Oulu",
				"Ostrobothnia":         "WesternFinland",
				"NorthernSavonia":      "EasternFinland",
				"SouthernOstrobothnia": "WesternFinland",
				"CentralFinland":       "WesternFinland",
				"SouthernSavonia":      "EasternFinland",
			},
			// Pre-2016 French regions consolidate onto the merged ones.
			"France": {
				"Languedoc-Roussillon": "Occitanie",
				"Picardy":              "Hauts-de-France",
				"Limousin":             "Nouvelle-Aquitaine",
				"Poitou-Charentes":     "Nouvelle-Aquitaine",
				"Midi-Pyrénées":        "Occitanie",
				"Champagne-Ardenne":    "GrandEst",
				"Alsace":               "GrandEst",
				"Burgundy":             "Bourgogne-Franche-Comté",
				"Nord-Pas-de-Calais":   "Hauts-de-France",
				"Auvergne":             "Auvergne-Rhône-Alpes",
				"Lorraine":             "GrandEst",
				"Brittany":             "Bretagne",
				"LowerNormandy":        "Normandie",
				"UpperNormandy":        "Normandie",
				"Rhone-Alpes":          "Auvergne-Rhône-Alpes",
				"Aquitaine":            "Nouvelle-Aquitaine",
				"Corsica":              "Corse",
				"Franche-Comté":        "Bourgogne-Franche-Comté",
			},
			// Philippine administrative regions map onto a representative
			// first-level province in the catalog.
			"Philippines": {
				"SOCCSKSARGEN":              "SouthCotabato",
				"MIMAROPA":                  "Palawan",
				"CordilleraAdministrative":  "Ifugao",
				"AutonomousinMuslimMindanao": "Maguindanao",
				"CentralLuzon":              "Pampanga",
				"CentralVisayas":            "Cebu",
				"WesternVisayas":            "Iloilo",
				"Calabarzon":                "Batangas",
				"Bicol":                     "Albay",
				"Davao":                     "DavaodelSur",
				"Caraga":                    "AgusandelNorte",
				"NorthernMindanao":          "MisamisOriental",
				"EasternVisayas":            "Leyte",
				"CagayanValley":             "Cagayan",
				"ZamboangaPeninsula":        "ZamboangaSibugay",
				"MetroManila":               "MetropolitanManila",
			},
			"Egypt": {
				"Luxor":        "AlUqsur",
				"NewValley":    "AlWadiAlJadid",
				"RedSea":       "AlBahrAlAhmar",
				"Damietta":     "Dumyat",
				"Suez":         "AsSuways",
				"NorthSinai":   "ShamalSina'",
				"SouthSinai":   "JanubSina'",
				"Cairo":        "AlQahirah",
				"Menia":        "AlMinya",
				"Menofia":      "AlMinufiyah",
				"Giza":         "AlJizah",
				"ElBeheira":    "AlBuhayrah",
				"Sohag":        "Suhaj",
				"PortSaid":     "BurSa`id",
				"KafrElSheikh": "KafrashShaykh",
				"Alexandria":   "AlIskandariyah",
				"BeniSuef":     "BaniSuwayf",
				"Dakahlia":     "AdDaqahliyah",
				"Faiyum":       "AlFayyum",
				"Assiut":       "Asyut",
				"Qena":         "Qina",
				"Ismailia":     "AlIsma`iliyah",
				"Gharbia":      "AlGharbiyah",
			},
			"Indonesia": {
				"SpecialCapitalofJakarta": "JakartaRaya",
				"CentralJava":             "JawaTengah",
				"EastJava":                "JawaTimur",
				"WestJava":                "JawaBarat",
				"RiauIslands":             "KepulauanRiau",
				"SouthEastSulawesi":       "SulawesiTenggara",
				"NorthSumatra":            "SumateraUtara",
				"SouthSumatra":            "SumateraSelatan",
				"CentralSulawesi":         "SulawesiTengah",
				"WestSumatra":             "SumateraBarat",
				"NorthSulawesi":           "SulawesiUtara",
				"SouthSulawesi":           "SulawesiSelatan",
				"WestSulawesi":            "SulawesiBarat",
				"CentralKalimantan":       "KalimantanTengah",
				"NorthKalimantan":         "KalimantanUtara",
				"SouthKalimantan":         "KalimantanSelatan",
				"EastKalimantan":          "KalimantanTimur",
				"WestKalimantan":          "KalimantanBarat",
				"NorthMaluku":             "MalukuUtara",
				"WestPapua":               "PapuaBarat",
				"EastNusaTenggara":        "NusaTenggaraTimur",
				"WestNusaTenggara":        "NusaTenggaraBarat",
			},
			"Ukraine": {
				"Kyivs'ka":      "KievCity",
				"Sums'ka":       "Sumy",
				"Rivnens'ka":    "Rivne",
				"Volyns'ka":     "Volyn",
				// The city of Kyiv; the catalog uses the alternate name.
				"Kyiv":          "Kiev",
				"Mykolaivs'ka":  "Mykolayiv",
				"Cherkas'ka":    "Cherkasy",
				"Khersons'ka":   "Kherson",
				"Chernivets'ka": "Chernivtsi",
				"Zakarpats'ka":  "Zakarpattia",
			},
			"Vietnam": {
				"DaNang":        "ĐàNẵng",
				"Hanoi":         "HàNội",
				"DakNong":       "ĐắkNông",
				"BinhDinh":      "BìnhĐịnh",
				"DienBien":      "ĐiệnBiên",
				"HaiDuong":      "HảiDương",
				"Haiphong":      "HảiPhòng",
				"BinhDuong":     "BìnhDương",
				"BinhPhuoc":     "BìnhPhước",
				"CanTho":        "CầnThơ",
				"HaTinh":        "HàTĩnh",
				"PhuTho":        "PhúThọ",
				"YenBai":        "YênBái",
				"BaRia-VungTau": "BàRịa-VũngTàu",
				"BacLieu":       "BạcLiêu",
				"DongNai":       "ĐồngNai",
				"HoaBinh":       "HoàBình",
				"HungYen":       "HưngYên",
				"LangSon":       "LạngSơn",
				"NamDinh":       "NamĐịnh",
				"KhanhHoa":      "KhánhHòa",
				"SocTrang":      "SócTrăng",
				"ThaiBinh":      "TháiBình",
				"ThuaThienHue":  "ThừaThiênHuế",
				"VinhPhuc":      "VĩnhPhúc",
				"BinhThuan":     "BìnhThuận",
				"HoChiMinh":     "HồChíMinh",
				"QuangBinh":     "QuảngBình",
				"QuangNgai":     "QuảngNgãi",
			},
		},
	}
}
