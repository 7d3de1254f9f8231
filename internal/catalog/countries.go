package catalog

// Continent is the category of country-based quiz types.
type Continent string

const (
	Africa       Continent = "Africa"
	Asia         Continent = "Asia"
	Europe       Continent = "Europe"
	NorthAmerica Continent = "North America"
	SouthAmerica Continent = "South America"
	Oceania      Continent = "Oceania"
)

// Continents returns all continents in display order.
func Continents() []Continent {
	return []Continent{Africa, Asia, Europe, NorthAmerica, SouthAmerica, Oceania}
}

// Country is a row of the bundled country table.
type Country struct {
	Name      string
	Capital   string
	Continent Continent
	ISO       string // ISO 3166-1 alpha-2
}

// CountryCapitalsDefinition returns the "Country Capitals" quiz type.
func CountryCapitalsDefinition() Definition {
	items := make([]Item, 0, len(countries))
	for _, c := range countries {
		items = append(items, Item{
			ID:          c.Name,
			DisplayName: c.Name,
			Answer:      c.Capital,
			Category:    string(c.Continent),
		})
	}
	return Definition{
		Type:           CountryCapitals,
		Title:          "Capitals Quiz",
		Subtitle:       "Test your geography knowledge!",
		PromptTemplate: "What is the capital of %s?",
		CategoryLabel:  "Continent",
		Items:          items,
	}
}

// Countries returns a copy of the bundled country table.
func Countries() []Country {
	out := make([]Country, len(countries))
	copy(out, countries)
	return out
}

var countries = []Country{
	// Africa
	{"Algeria", "Algiers", Africa, "DZ"},
	{"Angola", "Luanda", Africa, "AO"},
	{"Benin", "Porto-Novo", Africa, "BJ"},
	{"Botswana", "Gaborone", Africa, "BW"},
	{"Burkina Faso", "Ouagadougou", Africa, "BF"},
	{"Burundi", "Gitega", Africa, "BI"},
	{"Cabo Verde", "Praia", Africa, "CV"},
	{"Cameroon", "Yaoundé", Africa, "CM"},
	{"Central African Republic", "Bangui", Africa, "CF"},
	{"Chad", "N'Djamena", Africa, "TD"},
	{"Comoros", "Moroni", Africa, "KM"},
	{"Democratic Republic of the Congo", "Kinshasa", Africa, "CD"},
	{"Republic of the Congo", "Brazzaville", Africa, "CG"},
	{"Côte d'Ivoire", "Yamoussoukro", Africa, "CI"},
	{"Djibouti", "Djibouti", Africa, "DJ"},
	{"Egypt", "Cairo", Africa, "EG"},
	{"Equatorial Guinea", "Malabo", Africa, "GQ"},
	{"Eritrea", "Asmara", Africa, "ER"},
	{"Eswatini", "Mbabane", Africa, "SZ"},
	{"Ethiopia", "Addis Ababa", Africa, "ET"},
	{"Gabon", "Libreville", Africa, "GA"},
	{"Gambia", "Banjul", Africa, "GM"},
	{"Ghana", "Accra", Africa, "GH"},
	{"Guinea", "Conakry", Africa, "GN"},
	{"Guinea-Bissau", "Bissau", Africa, "GW"},
	{"Kenya", "Nairobi", Africa, "KE"},
	{"Lesotho", "Maseru", Africa, "LS"},
	{"Liberia", "Monrovia", Africa, "LR"},
	{"Libya", "Tripoli", Africa, "LY"},
	{"Madagascar", "Antananarivo", Africa, "MG"},
	{"Malawi", "Lilongwe", Africa, "MW"},
	{"Mali", "Bamako", Africa, "ML"},
	{"Mauritania", "Nouakchott", Africa, "MR"},
	{"Mauritius", "Port Louis", Africa, "MU"},
	{"Morocco", "Rabat", Africa, "MA"},
	{"Mozambique", "Maputo", Africa, "MZ"},
	{"Namibia", "Windhoek", Africa, "NA"},
	{"Niger", "Niamey", Africa, "NE"},
	{"Nigeria", "Abuja", Africa, "NG"},
	{"Rwanda", "Kigali", Africa, "RW"},
	{"São Tomé and Príncipe", "São Tomé", Africa, "ST"},
	{"Senegal", "Dakar", Africa, "SN"},
	{"Seychelles", "Victoria", Africa, "SC"},
	{"Sierra Leone", "Freetown", Africa, "SL"},
	{"Somalia", "Mogadishu", Africa, "SO"},
	{"South Africa", "Pretoria", Africa, "ZA"},
	{"South Sudan", "Juba", Africa, "SS"},
	{"Sudan", "Khartoum", Africa, "SD"},
	{"Tanzania", "Dodoma", Africa, "TZ"},
	{"Togo", "Lomé", Africa, "TG"},
	{"Tunisia", "Tunis", Africa, "TN"},
	{"Uganda", "Kampala", Africa, "UG"},
	{"Zambia", "Lusaka", Africa, "ZM"},
	{"Zimbabwe", "Harare", Africa, "ZW"},

	// Asia
	{"Afghanistan", "Kabul", Asia, "AF"},
	{"Armenia", "Yerevan", Asia, "AM"},
	{"Azerbaijan", "Baku", Asia, "AZ"},
	{"Bahrain", "Manama", Asia, "BH"},
	{"Bangladesh", "Dhaka", Asia, "BD"},
	{"Bhutan", "Thimphu", Asia, "BT"},
	{"Brunei", "Bandar Seri Begawan", Asia, "BN"},
	{"Cambodia", "Phnom Penh", Asia, "KH"},
	{"China", "Beijing", Asia, "CN"},
	{"Georgia", "Tbilisi", Asia, "GE"},
	{"India", "New Delhi", Asia, "IN"},
	{"Indonesia", "Jakarta", Asia, "ID"},
	{"Iran", "Tehran", Asia, "IR"},
	{"Iraq", "Baghdad", Asia, "IQ"},
	{"Israel", "Jerusalem", Asia, "IL"},
	{"Japan", "Tokyo", Asia, "JP"},
	{"Jordan", "Amman", Asia, "JO"},
	{"Kazakhstan", "Astana", Asia, "KZ"},
	{"Kuwait", "Kuwait City", Asia, "KW"},
	{"Kyrgyzstan", "Bishkek", Asia, "KG"},
	{"Laos", "Vientiane", Asia, "LA"},
	{"Lebanon", "Beirut", Asia, "LB"},
	{"Malaysia", "Kuala Lumpur", Asia, "MY"},
	{"Maldives", "Malé", Asia, "MV"},
	{"Mongolia", "Ulaanbaatar", Asia, "MN"},
	{"Myanmar", "Naypyidaw", Asia, "MM"},
	{"Nepal", "Kathmandu", Asia, "NP"},
	{"North Korea", "Pyongyang", Asia, "KP"},
	{"Oman", "Muscat", Asia, "OM"},
	{"Pakistan", "Islamabad", Asia, "PK"},
	{"Palestine", "Ramallah", Asia, "PS"},
	{"Philippines", "Manila", Asia, "PH"},
	{"Qatar", "Doha", Asia, "QA"},
	{"Saudi Arabia", "Riyadh", Asia, "SA"},
	{"Singapore", "Singapore", Asia, "SG"},
	{"South Korea", "Seoul", Asia, "KR"},
	{"Sri Lanka", "Sri Jayawardenepura Kotte", Asia, "LK"},
	{"Syria", "Damascus", Asia, "SY"},
	{"Tajikistan", "Dushanbe", Asia, "TJ"},
	{"Thailand", "Bangkok", Asia, "TH"},
	{"Timor-Leste", "Dili", Asia, "TL"},
	{"Turkey", "Ankara", Asia, "TR"},
	{"Turkmenistan", "Ashgabat", Asia, "TM"},
	{"United Arab Emirates", "Abu Dhabi", Asia, "AE"},
	{"Uzbekistan", "Tashkent", Asia, "UZ"},
	{"Vietnam", "Hanoi", Asia, "VN"},
	{"Yemen", "Sana'a", Asia, "YE"},

	// Europe
	{"Albania", "Tirana", Europe, "AL"},
	{"Andorra", "Andorra la Vella", Europe, "AD"},
	{"Austria", "Vienna", Europe, "AT"},
	{"Belarus", "Minsk", Europe, "BY"},
	{"Belgium", "Brussels", Europe, "BE"},
	{"Bosnia and Herzegovina", "Sarajevo", Europe, "BA"},
	{"Bulgaria", "Sofia", Europe, "BG"},
	{"Croatia", "Zagreb", Europe, "HR"},
	{"Cyprus", "Nicosia", Europe, "CY"},
	{"Czechia", "Prague", Europe, "CZ"},
	{"Denmark", "Copenhagen", Europe, "DK"},
	{"Estonia", "Tallinn", Europe, "EE"},
	{"Finland", "Helsinki", Europe, "FI"},
	{"France", "Paris", Europe, "FR"},
	{"Germany", "Berlin", Europe, "DE"},
	{"Greece", "Athens", Europe, "GR"},
	{"Hungary", "Budapest", Europe, "HU"},
	{"Iceland", "Reykjavík", Europe, "IS"},
	{"Ireland", "Dublin", Europe, "IE"},
	{"Italy", "Rome", Europe, "IT"},
	{"Kosovo", "Pristina", Europe, "XK"},
	{"Latvia", "Riga", Europe, "LV"},
	{"Liechtenstein", "Vaduz", Europe, "LI"},
	{"Lithuania", "Vilnius", Europe, "LT"},
	{"Luxembourg", "Luxembourg", Europe, "LU"},
	{"Malta", "Valletta", Europe, "MT"},
	{"Moldova", "Chișinău", Europe, "MD"},
	{"Monaco", "Monaco", Europe, "MC"},
	{"Montenegro", "Podgorica", Europe, "ME"},
	{"Netherlands", "Amsterdam", Europe, "NL"},
	{"North Macedonia", "Skopje", Europe, "MK"},
	{"Norway", "Oslo", Europe, "NO"},
	{"Poland", "Warsaw", Europe, "PL"},
	{"Portugal", "Lisbon", Europe, "PT"},
	{"Romania", "Bucharest", Europe, "RO"},
	{"Russia", "Moscow", Europe, "RU"},
	{"San Marino", "San Marino", Europe, "SM"},
	{"Serbia", "Belgrade", Europe, "RS"},
	{"Slovakia", "Bratislava", Europe, "SK"},
	{"Slovenia", "Ljubljana", Europe, "SI"},
	{"Spain", "Madrid", Europe, "ES"},
	{"Sweden", "Stockholm", Europe, "SE"},
	{"Switzerland", "Bern", Europe, "CH"},
	{"Ukraine", "Kyiv", Europe, "UA"},
	{"United Kingdom", "London", Europe, "GB"},
	{"Vatican City", "Vatican City", Europe, "VA"},

	// North America
	{"Antigua and Barbuda", "Saint John's", NorthAmerica, "AG"},
	{"Bahamas", "Nassau", NorthAmerica, "BS"},
	{"Barbados", "Bridgetown", NorthAmerica, "BB"},
	{"Belize", "Belmopan", NorthAmerica, "BZ"},
	{"Canada", "Ottawa", NorthAmerica, "CA"},
	{"Costa Rica", "San José", NorthAmerica, "CR"},
	{"Cuba", "Havana", NorthAmerica, "CU"},
	{"Dominica", "Roseau", NorthAmerica, "DM"},
	{"Dominican Republic", "Santo Domingo", NorthAmerica, "DO"},
	{"El Salvador", "San Salvador", NorthAmerica, "SV"},
	{"Grenada", "Saint George's", NorthAmerica, "GD"},
	{"Guatemala", "Guatemala City", NorthAmerica, "GT"},
	{"Haiti", "Port-au-Prince", NorthAmerica, "HT"},
	{"Honduras", "Tegucigalpa", NorthAmerica, "HN"},
	{"Jamaica", "Kingston", NorthAmerica, "JM"},
	{"Mexico", "Mexico City", NorthAmerica, "MX"},
	{"Nicaragua", "Managua", NorthAmerica, "NI"},
	{"Panama", "Panama City", NorthAmerica, "PA"},
	{"Saint Kitts and Nevis", "Basseterre", NorthAmerica, "KN"},
	{"Saint Lucia", "Castries", NorthAmerica, "LC"},
	{"Saint Vincent and the Grenadines", "Kingstown", NorthAmerica, "VC"},
	{"Trinidad and Tobago", "Port of Spain", NorthAmerica, "TT"},
	{"United States", "Washington, D.C.", NorthAmerica, "US"},

	// South America
	{"Argentina", "Buenos Aires", SouthAmerica, "AR"},
	{"Bolivia", "Sucre", SouthAmerica, "BO"},
	{"Brazil", "Brasília", SouthAmerica, "BR"},
	{"Chile", "Santiago", SouthAmerica, "CL"},
	{"Colombia", "Bogotá", SouthAmerica, "CO"},
	{"Ecuador", "Quito", SouthAmerica, "EC"},
	{"Guyana", "Georgetown", SouthAmerica, "GY"},
	{"Paraguay", "Asunción", SouthAmerica, "PY"},
	{"Peru", "Lima", SouthAmerica, "PE"},
	{"Suriname", "Paramaribo", SouthAmerica, "SR"},
	{"Uruguay", "Montevideo", SouthAmerica, "UY"},
	{"Venezuela", "Caracas", SouthAmerica, "VE"},

	// Oceania
	{"Australia", "Canberra", Oceania, "AU"},
	{"Fiji", "Suva", Oceania, "FJ"},
	{"Kiribati", "South Tarawa", Oceania, "KI"},
	{"Marshall Islands", "Majuro", Oceania, "MH"},
	{"Micronesia", "Palikir", Oceania, "FM"},
	{"Nauru", "Yaren", Oceania, "NR"},
	{"New Zealand", "Wellington", Oceania, "NZ"},
	{"Palau", "Ngerulmud", Oceania, "PW"},
	{"Papua New Guinea", "Port Moresby", Oceania, "PG"},
	{"Samoa", "Apia", Oceania, "WS"},
	{"Solomon Islands", "Honiara", Oceania, "SB"},
	{"Tonga", "Nuku'alofa", Oceania, "TO"},
	{"Tuvalu", "Funafuti", Oceania, "TV"},
	{"Vanuatu", "Port Vila", Oceania, "VU"},
}
