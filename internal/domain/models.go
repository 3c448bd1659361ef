package domain

import "fmt"

// Person represents a single entry in the people directory
type Person struct {
	Name       string `json:"name" yaml:"name"`
	Sex        string `json:"sex" yaml:"sex"` // "m" or "f"
	Born       int    `json:"born" yaml:"born"`
	Died       int    `json:"died" yaml:"died"`
	FatherName string `json:"fatherName,omitempty" yaml:"fatherName,omitempty"`
	MotherName string `json:"motherName,omitempty" yaml:"motherName,omitempty"`
	Slug       string `json:"slug" yaml:"slug"` // unique key, used as list key
}

// Lifespan renders the person as "Name (born - died)"
func (p Person) Lifespan() string {
	return fmt.Sprintf("%s (%d - %d)", p.Name, p.Born, p.Died)
}
