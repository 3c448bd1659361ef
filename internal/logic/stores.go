package logic

import (
	"peoplepicker/internal/domain"
)

// MemoryPersonStore is an in-memory, read-only implementation of PersonStore.
// It is filled once at construction and never mutated afterwards, so it
// needs no locking.
type MemoryPersonStore struct {
	people []domain.Person
	slugs  map[string]int
}

// NewMemoryPersonStore creates a store over a copy of people, keeping source order
func NewMemoryPersonStore(people []domain.Person) *MemoryPersonStore {
	s := &MemoryPersonStore{
		people: make([]domain.Person, len(people)),
		slugs:  make(map[string]int, len(people)),
	}
	copy(s.people, people)
	for i, p := range s.people {
		if _, exists := s.slugs[p.Slug]; !exists {
			s.slugs[p.Slug] = i
		}
	}
	return s
}

func (s *MemoryPersonStore) All() []domain.Person {
	// Return a copy to prevent external modification
	result := make([]domain.Person, len(s.people))
	copy(result, s.people)
	return result
}

func (s *MemoryPersonStore) Len() int {
	return len(s.people)
}

func (s *MemoryPersonStore) BySlug(slug string) (domain.Person, bool) {
	i, ok := s.slugs[slug]
	if !ok {
		return domain.Person{}, false
	}
	return s.people[i], true
}

// ByName returns the first person whose name is exactly name
func (s *MemoryPersonStore) ByName(name string) (domain.Person, bool) {
	for _, p := range s.people {
		if p.Name == name {
			return p, true
		}
	}
	return domain.Person{}, false
}
