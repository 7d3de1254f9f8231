package catalog

import "strings"

// CountryFlagsDefinition returns the "Country Flags" quiz type. The prompt
// shows the flag and the answer is the country name.
func CountryFlagsDefinition() Definition {
	items := make([]Item, 0, len(countries))
	for _, c := range countries {
		items = append(items, Item{
			ID:          c.Name,
			DisplayName: FlagEmoji(c.ISO),
			Answer:      c.Name,
			Category:    string(c.Continent),
		})
	}
	return Definition{
		Type:           CountryFlags,
		Title:          "Flags Quiz",
		Subtitle:       "Identify country flags!",
		PromptTemplate: "Which country has this flag? %s",
		CategoryLabel:  "Continent",
		Items:          items,
	}
}

// FlagEmoji converts an ISO 3166-1 alpha-2 code into its regional-indicator
// flag. Invalid codes are returned unchanged.
func FlagEmoji(iso string) string {
	iso = strings.ToUpper(iso)
	if len(iso) != 2 {
		return iso
	}
	var b strings.Builder
	for _, r := range iso {
		if r < 'A' || r > 'Z' {
			return iso
		}
		b.WriteRune(0x1F1E6 + (r - 'A'))
	}
	return b.String()
}
