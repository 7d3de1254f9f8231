package stats

import (
	"cmp"
	"slices"
	"strings"

	"github.com/abhisek/capitalz/internal/catalog"
)

// SortBy orders item rows.
type SortBy int

const (
	SortByAccuracy SortBy = iota
	SortByName
	SortByTimesAsked
)

func (s SortBy) String() string {
	switch s {
	case SortByName:
		return "name"
	case SortByTimesAsked:
		return "times asked"
	default:
		return "accuracy"
	}
}

// Next cycles to the following sort order.
func (s SortBy) Next() SortBy {
	return (s + 1) % 3
}

// ParseSortBy maps a flag value onto a SortBy.
func ParseSortBy(v string) (SortBy, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "accuracy":
		return SortByAccuracy, true
	case "name":
		return SortByName, true
	case "asked", "times", "times-asked":
		return SortByTimesAsked, true
	}
	return SortByAccuracy, false
}

// ItemRow pairs a catalog item with its stat; Stat is nil if never asked.
type ItemRow struct {
	Item catalog.Item
	Stat *ItemStat
}

// Asked reports the number of times the item was asked.
func (r ItemRow) Asked() int {
	if r.Stat == nil {
		return 0
	}
	return r.Stat.TimesAsked
}

// ItemRows lists every catalog item of qt with its stat. search filters on
// id, display name or answer, case-insensitively. Under accuracy order,
// asked items come first, weakest first.
func (s *Store) ItemRows(qt catalog.QuizType, sortBy SortBy, search string) []ItemRow {
	qs := s.stats[qt]
	needle := strings.ToLower(strings.TrimSpace(search))

	var rows []ItemRow
	for _, it := range s.catalog.Items(qt) {
		if needle != "" && !matches(it, needle) {
			continue
		}
		row := ItemRow{Item: it}
		if qs != nil {
			if st, ok := qs.ItemStats[it.ID]; ok {
				c := st
				row.Stat = &c
			}
		}
		rows = append(rows, row)
	}

	byName := func(a, b ItemRow) int {
		return cmp.Compare(strings.ToLower(a.Item.ID), strings.ToLower(b.Item.ID))
	}
	slices.SortStableFunc(rows, func(a, b ItemRow) int {
		switch sortBy {
		case SortByName:
			return byName(a, b)
		case SortByTimesAsked:
			if c := cmp.Compare(b.Asked(), a.Asked()); c != 0 {
				return c
			}
			return byName(a, b)
		default:
			aAsked, bAsked := a.Asked() > 0, b.Asked() > 0
			if aAsked != bAsked {
				if aAsked {
					return -1
				}
				return 1
			}
			if aAsked {
				if c := cmp.Compare(a.Stat.Accuracy(), b.Stat.Accuracy()); c != 0 {
					return c
				}
				if c := cmp.Compare(b.Asked(), a.Asked()); c != 0 {
					return c
				}
			}
			return byName(a, b)
		}
	})
	return rows
}

func matches(it catalog.Item, needle string) bool {
	return strings.Contains(strings.ToLower(it.ID), needle) ||
		strings.Contains(strings.ToLower(it.DisplayName), needle) ||
		strings.Contains(strings.ToLower(it.Answer), needle)
}
