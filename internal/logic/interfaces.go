package logic

import "peoplepicker/internal/domain"

// PersonStore provides read-only access to the people directory
type PersonStore interface {
	All() []domain.Person
	Len() int
	BySlug(slug string) (domain.Person, bool)
	ByName(name string) (domain.Person, bool)
}
