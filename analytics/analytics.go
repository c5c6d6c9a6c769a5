// ABOUTME: Aggregate counts behind the analytics view
// ABOUTME: Priority buckets, per-category counts, and a summary for dashboards
package analytics

import "github.com/harperreed/rolodex/models"

type Count struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// PriorityCounts counts contacts per known priority, High/Medium/Low order.
func PriorityCounts(contacts []models.Contact) []Count {
	counts := make([]Count, 0, 3)
	for _, p := range models.Priorities() {
		n := 0
		for _, c := range contacts {
			if c.Priority == p {
				n++
			}
		}
		counts = append(counts, Count{Name: string(p), Value: n})
	}
	return counts
}

// CategoryCounts counts contacts per category in category order.
func CategoryCounts(contacts []models.Contact, categories []string) []Count {
	counts := make([]Count, 0, len(categories))
	for _, cat := range categories {
		n := 0
		for _, c := range contacts {
			if c.Category == cat {
				n++
			}
		}
		counts = append(counts, Count{Name: cat, Value: n})
	}
	return counts
}

type Summary struct {
	TotalContacts   int     `json:"total_contacts"`
	TotalCategories int     `json:"total_categories"`
	Uncategorized   int     `json:"uncategorized"`
	ByPriority      []Count `json:"by_priority"`
	ByCategory      []Count `json:"by_category"`
}

// Summarize computes every aggregate for a snapshot. Uncategorized counts
// contacts whose category is blank or not in the category list.
func Summarize(snap models.Snapshot) Summary {
	known := make(map[string]bool, len(snap.Categories))
	for _, c := range snap.Categories {
		known[c] = true
	}
	uncategorized := 0
	for _, c := range snap.Contacts {
		if !known[c.Category] {
			uncategorized++
		}
	}

	return Summary{
		TotalContacts:   len(snap.Contacts),
		TotalCategories: len(snap.Categories),
		Uncategorized:   uncategorized,
		ByPriority:      PriorityCounts(snap.Contacts),
		ByCategory:      CategoryCounts(snap.Contacts, snap.Categories),
	}
}

// Max returns the largest value in counts, or 0.
func Max(counts []Count) int {
	m := 0
	for _, c := range counts {
		if c.Value > m {
			m = c.Value
		}
	}
	return m
}

// Total sums the values in counts.
func Total(counts []Count) int {
	t := 0
	for _, c := range counts {
		t += c.Value
	}
	return t
}
