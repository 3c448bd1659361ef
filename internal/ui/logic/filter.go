package logic

import (
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"

	"peoplepicker/internal/domain"
)

// SearchFilter handles filtering of the people directory
type SearchFilter struct {
	people []domain.Person
	slab   *util.Slab
}

// NewSearchFilter creates a new search filter over people
func NewSearchFilter(people []domain.Person) *SearchFilter {
	return &SearchFilter{
		people: people,
		slab:   util.MakeSlab(16*1024, 2048),
	}
}

// MatchesFilter checks if a person's name contains the query, ignoring case.
// An empty query matches everyone.
func (sf *SearchFilter) MatchesFilter(person domain.Person, filterQuery string) bool {
	if filterQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(person.Name), strings.ToLower(filterQuery))
}

// Filter returns the people matching the query, in directory order
func (sf *SearchFilter) Filter(filterQuery string) []domain.Person {
	result := make([]domain.Person, 0, len(sf.people))
	for _, p := range sf.people {
		if sf.MatchesFilter(p, filterQuery) {
			result = append(result, p)
		}
	}
	return result
}

// MatchPositions returns the rune offsets in name covered by the
// best-scoring case-insensitive occurrence of query, for highlighting.
// It returns nil when there is nothing to highlight.
func (sf *SearchFilter) MatchPositions(name, query string) []int {
	if query == "" || name == "" {
		return nil
	}

	chars := util.ToChars([]byte(name))
	pattern := []rune(strings.ToLower(query))
	// The exact matcher reports only the matched range, never positions
	result, _ := algo.ExactMatchNaive(false, false, true, &chars, pattern, false, sf.slab)
	if result.Start < 0 || result.End <= result.Start {
		return nil
	}

	out := make([]int, 0, int(result.End-result.Start))
	for i := int(result.Start); i < int(result.End); i++ {
		out = append(out, i)
	}
	return out
}
