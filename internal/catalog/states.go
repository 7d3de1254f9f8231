package catalog

// US census regions used as the category of the state capitals quiz.
const (
	RegionNortheast = "Northeast"
	RegionMidwest   = "Midwest"
	RegionSouth     = "South"
	RegionWest      = "West"
)

// USStateCapitalsDefinition returns the "US State Capitals" quiz type.
func USStateCapitalsDefinition() Definition {
	items := make([]Item, 0, len(usStates))
	for _, s := range usStates {
		items = append(items, Item{
			ID:          s[0],
			DisplayName: s[0],
			Answer:      s[1],
			Category:    s[2],
		})
	}
	return Definition{
		Type:           USStateCapitals,
		Title:          "US States Quiz",
		Subtitle:       "Master all 50 state capitals!",
		PromptTemplate: "What is the capital of %s?",
		CategoryLabel:  "Region",
		Items:          items,
	}
}

// name, capital, region
var usStates = [][3]string{
	{"Alabama", "Montgomery", RegionSouth},
	{"Alaska", "Juneau", RegionWest},
	{"Arizona", "Phoenix", RegionWest},
	{"Arkansas", "Little Rock", RegionSouth},
	{"California", "Sacramento", RegionWest},
	{"Colorado", "Denver", RegionWest},
	{"Connecticut", "Hartford", RegionNortheast},
	{"Delaware", "Dover", RegionSouth},
	{"Florida", "Tallahassee", RegionSouth},
	{"Georgia", "Atlanta", RegionSouth},
	{"Hawaii", "Honolulu", RegionWest},
	{"Idaho", "Boise", RegionWest},
	{"Illinois", "Springfield", RegionMidwest},
	{"Indiana", "Indianapolis", RegionMidwest},
	{"Iowa", "Des Moines", RegionMidwest},
	{"Kansas", "Topeka", RegionMidwest},
	{"Kentucky", "Frankfort", RegionSouth},
	{"Louisiana", "Baton Rouge", RegionSouth},
	{"Maine", "Augusta", RegionNortheast},
	{"Maryland", "Annapolis", RegionSouth},
	{"Massachusetts", "Boston", RegionNortheast},
	{"Michigan", "Lansing", RegionMidwest},
	{"Minnesota", "Saint Paul", RegionMidwest},
	{"Mississippi", "Jackson", RegionSouth},
	{"Missouri", "Jefferson City", RegionMidwest},
	{"Montana", "Helena", RegionWest},
	{"Nebraska", "Lincoln", RegionMidwest},
	{"Nevada", "Carson City", RegionWest},
	{"New Hampshire", "Concord", RegionNortheast},
	{"New Jersey", "Trenton", RegionNortheast},
	{"New Mexico", "Santa Fe", RegionWest},
	{"New York", "Albany", RegionNortheast},
	{"North Carolina", "Raleigh", RegionSouth},
	{"North Dakota", "Bismarck", RegionMidwest},
	{"Ohio", "Columbus", RegionMidwest},
	{"Oklahoma", "Oklahoma City", RegionSouth},
	{"Oregon", "Salem", RegionWest},
	{"Pennsylvania", "Harrisburg", RegionNortheast},
	{"Rhode Island", "Providence", RegionNortheast},
	{"South Carolina", "Columbia", RegionSouth},
	{"South Dakota", "Pierre", RegionMidwest},
	{"Tennessee", "Nashville", RegionSouth},
	{"Texas", "Austin", RegionSouth},
	{"Utah", "Salt Lake City", RegionWest},
	{"Vermont", "Montpelier", RegionNortheast},
	{"Virginia", "Richmond", RegionSouth},
	{"Washington", "Olympia", RegionWest},
	{"West Virginia", "Charleston", RegionSouth},
	{"Wisconsin", "Madison", RegionMidwest},
	{"Wyoming", "Cheyenne", RegionWest},
}
