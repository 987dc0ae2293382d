package state

import (
	"sort"
	"strings"

	"github.com/rentledger-dev/rentledger/internal/model"
)

// Sort fields accepted by SortProperties.
const (
	SortByName = "name"
	SortByRent = "rent"
	SortByDate = "date"
)

// FilterByName returns the properties matching name, or all of them when
// name is empty.
func FilterByName(properties []model.Property, name string) []model.Property {
	if name == "" {
		return properties
	}
	var matched []model.Property
	for _, p := range properties {
		if p.Name == name {
			matched = append(matched, p)
		}
	}
	return matched
}

// SortProperties returns a copy sorted by the given field. Unknown fields
// leave the input order untouched; descending reverses the comparison.
func SortProperties(properties []model.Property, by string, descending bool) []model.Property {
	sorted := make([]model.Property, len(properties))
	copy(sorted, properties)

	sort.SliceStable(sorted, func(i, j int) bool {
		var less bool
		switch by {
		case SortByName:
			less = strings.Compare(sorted[i].Name, sorted[j].Name) < 0
		case SortByRent:
			less = sorted[i].Rent.LessThan(sorted[j].Rent)
		case SortByDate:
			less = sorted[i].PaymentDate < sorted[j].PaymentDate
		default:
			return false
		}
		if descending {
			return !less
		}
		return less
	})
	return sorted
}

// Names returns the distinct property names in first-seen order.
func Names(properties []model.Property) []string {
	seen := make(map[string]bool)
	var names []string
	for _, p := range properties {
		if !seen[p.Name] {
			seen[p.Name] = true
			names = append(names, p.Name)
		}
	}
	return names
}

// DateRange returns the earliest and latest payment dates among properties
// with the given name. Used to pre-fill P&L ranges.
func DateRange(properties []model.Property, name string) (start, end string) {
	for _, p := range FilterByName(properties, name) {
		if start == "" || p.PaymentDate < start {
			start = p.PaymentDate
		}
		if end == "" || p.PaymentDate > end {
			end = p.PaymentDate
		}
	}
	return start, end
}
