// Package derive computes the views rendered from an event collection.
// Every function is pure: the input slice is never modified and bad
// upstream records are skipped rather than reported.
package derive

import (
	"cmp"
	"slices"
	"strings"

	"go-gin-attendance-log/internal/model"
)

// FilterAndSort returns the records matching filterText, ordered by sortKey.
// Records that compare equal keep their collection order. An unknown sortKey
// leaves the matches in collection order.
func FilterAndSort(events []*model.EventRecord, filterText string, sortKey model.SortKey, ascending bool) []*model.EventRecord {
	needle := strings.ToLower(filterText)
	out := make([]*model.EventRecord, 0, len(events))
	for _, e := range events {
		if e != nil && matches(e, needle) {
			out = append(out, e)
		}
	}

	if !sortKey.IsValid() {
		return out
	}

	slices.SortStableFunc(out, func(a, b *model.EventRecord) int {
		c := compareBy(a, b, sortKey)
		if !ascending {
			return -c
		}
		return c
	})
	return out
}

// Query applies FilterAndSort with the client's parameters.
func Query(events []*model.EventRecord, params model.QueryParams) []*model.EventRecord {
	return FilterAndSort(events, params.FilterText, params.SortKey, params.SortAscending)
}

func matches(e *model.EventRecord, needle string) bool {
	if needle == "" {
		return true
	}
	for _, field := range []string{e.Title, e.Type, e.Location, e.Tags} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func compareBy(a, b *model.EventRecord, k model.SortKey) int {
	if k == model.SortByRating {
		return cmp.Compare(a.Rating, b.Rating)
	}
	return strings.Compare(a.Text(k), b.Text(k))
}

// EventsOnDate returns the records whose date is exactly date, in collection order.
func EventsOnDate(events []*model.EventRecord, date string) []*model.EventRecord {
	out := make([]*model.EventRecord, 0)
	if !model.IsValidDate(date) {
		return out
	}
	for _, e := range events {
		if e != nil && e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// CountByType groups by exact type string.
func CountByType(events []*model.EventRecord) map[string]int {
	counts := make(map[string]int)
	for _, e := range events {
		if e == nil {
			continue
		}
		counts[e.Type]++
	}
	return counts
}

// CountByMonth counts well-formed records dated in yearMonth (YYYY-MM).
func CountByMonth(events []*model.EventRecord, yearMonth string) int {
	n := 0
	for _, e := range events {
		if e == nil || !model.IsValidDate(e.Date) {
			continue
		}
		if e.Date[:7] == yearMonth {
			n++
		}
	}
	return n
}
