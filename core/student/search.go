package student

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/marksheet/core"
)

// minSearchRatio is the similarity below which a name is not considered a match.
var minSearchRatio = .6

// Match is a search hit with its similarity to the query, 1 being an exact or substring match.
type Match struct {
	Student Student
	Ratio   float64
}

// Search looks students up by ID or by approximate name, best matches first.
// limit <= 0 returns every match.
func (svc *Service) Search(query string, limit int) ([]Match, error) {
	query = core.CleanString(query, true /* lower */)
	if query == "" {
		return nil, core.NewValidationError(nil, core.FieldError{Field: "query", Error: "this field is required"})
	}
	students, err := svc.load()
	if err != nil {
		return nil, err
	}

	var matches []Match
	for _, s := range students {
		if ratio := similarity(query, s); ratio >= minSearchRatio {
			matches = append(matches, Match{Student: s, Ratio: ratio})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Ratio > matches[j].Ratio })
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func similarity(query string, s Student) float64 {
	name := strings.ToLower(s.Name)
	if s.ID == query || strings.Contains(name, query) {
		return 1
	}
	best := ratio(query, name)
	// compare against each word too, so "shearer" finds "Alan Shearer"
	for _, word := range strings.Fields(name) {
		if r := ratio(query, word); r > best {
			best = r
		}
	}
	return best
}

func ratio(a, b string) float64 {
	return difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, "")).Ratio()
}
