// Package people loads the read-only directory of people the picker
// suggests from. The built-in dataset is embedded in the binary; an
// alternative file can be supplied in JSON, JSONC or YAML.
package people

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"peoplepicker/internal/domain"
)

// ErrInvalidData is returned when a people file parses but its records
// cannot be used as a directory
var ErrInvalidData = errors.New("invalid people data")

//go:embed data/people.json
var builtinPeople []byte

// Builtin returns the embedded dataset
func Builtin() ([]domain.Person, error) {
	list, err := decodeJSON(builtinPeople)
	if err != nil {
		return nil, fmt.Errorf("failed to parse built-in people: %w", err)
	}
	if err := Validate(list); err != nil {
		return nil, err
	}
	return list, nil
}

// LoadFile reads a people file, choosing the decoder by extension
func LoadFile(path string) ([]domain.Person, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read people file: %w", err)
	}

	var list []domain.Person
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json", ".jsonc":
		list, err = decodeJSON(data)
	case ".yaml", ".yml":
		list, err = decodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: unsupported file extension %q", ErrInvalidData, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := Validate(list); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// Load returns the people from path, or the built-in dataset when path is empty
func Load(path string) ([]domain.Person, error) {
	if path == "" {
		return Builtin()
	}
	return LoadFile(path)
}

// Validate checks that every record has a name and a unique slug
func Validate(list []domain.Person) error {
	seen := make(map[string]int, len(list))
	for i, p := range list {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: record %d has no name", ErrInvalidData, i)
		}
		if strings.TrimSpace(p.Slug) == "" {
			return fmt.Errorf("%w: %q has no slug", ErrInvalidData, p.Name)
		}
		if prev, dup := seen[p.Slug]; dup {
			return fmt.Errorf("%w: slug %q used by records %d and %d", ErrInvalidData, p.Slug, prev, i)
		}
		seen[p.Slug] = i
	}
	return nil
}

// decodeJSON accepts plain JSON as well as JSON with comments and
// trailing commas
func decodeJSON(data []byte) ([]domain.Person, error) {
	var list []domain.Person
	if err := json.Unmarshal(jsonc.ToJSON(data), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func decodeYAML(data []byte) ([]domain.Person, error) {
	var list []domain.Person
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return list, nil
}
