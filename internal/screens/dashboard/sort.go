package dashboard

import (
	"sort"
	"strings"

	"github.com/intervue-ai/intervue/internal/api"
)

// Sort orders for the candidate list.
const (
	SortByScore = "score"
	SortByName  = "name"
	SortByDate  = "date"
)

var sortOrders = []string{SortByScore, SortByName, SortByDate}

// Status filter cycle. Empty string means all.
var statusFilters = []string{"", "completed", "in-progress", "ready", "collecting-info"}

// filterCandidates returns the candidates matching the search term and
// status filter. Search is a case-insensitive substring match on name,
// email, and phone.
func filterCandidates(in []api.Candidate, search, status string) []api.Candidate {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]api.Candidate, 0, len(in))
	for _, c := range in {
		if status != "" && c.Status != status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(c.Name), needle) &&
			!strings.Contains(strings.ToLower(c.Email), needle) &&
			!strings.Contains(c.Phone, needle) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// sortCandidates orders candidates in place. Score sorts descending with
// unscored candidates always last regardless of direction; name sorts
// case-insensitively ascending with missing names last; date sorts newest
// first.
func sortCandidates(list []api.Candidate, sortBy string) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		switch sortBy {
		case SortByName:
			if (a.Name == "") != (b.Name == "") {
				return a.Name != ""
			}
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case SortByDate:
			return a.CreatedAt > b.CreatedAt
		default:
			if (a.FinalScore == nil) != (b.FinalScore == nil) {
				return a.FinalScore != nil
			}
			if a.FinalScore == nil {
				return false
			}
			return *a.FinalScore > *b.FinalScore
		}
	})
}
