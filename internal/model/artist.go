package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingField is returned by Validate when a required field is empty.
var ErrMissingField = errors.New("missing required field")

// Artist is a single entry in the gallery collection.
//
// Artist values are immutable once built: the catalog hands out copies and
// filtered views, never pointers into its backing slice. ID is the identity;
// two records in one collection never share an ID.
//
// Example:
//
//	a := model.Artist{
//	    ID:     "1",
//	    Name:   "Yayoi Kusama",
//	    Medium: "Installation & Sculpture",
//	    Bio:    "Known for infinity rooms and polka dot patterns",
//	}
//	fmt.Println(a.Summary()) // "Yayoi Kusama (Installation & Sculpture)"
type Artist struct {
	// ID uniquely identifies the artist within a collection.
	ID string `yaml:"id" json:"id"`

	// Name is the display name.
	Name string `yaml:"name" json:"name"`

	// Medium is the primary medium, e.g. "Painting" or "Street Art".
	Medium string `yaml:"medium" json:"medium"`

	// Bio is a one or two sentence description.
	Bio string `yaml:"bio" json:"bio"`

	// Nationality is optional.
	Nationality string `yaml:"nationality,omitempty" json:"nationality,omitempty"`

	// BirthYear is optional; zero means unknown.
	BirthYear int `yaml:"birth_year,omitempty" json:"birth_year,omitempty"`

	// ImageURL points at a portrait or signature artwork.
	// Empty string means no image is available.
	ImageURL string `yaml:"image_url,omitempty" json:"image_url,omitempty"`

	// Website is optional.
	Website string `yaml:"website,omitempty" json:"website,omitempty"`

	// Style is optional, e.g. "Abstract" or "Neo-Pop".
	Style string `yaml:"style,omitempty" json:"style,omitempty"`
}

// HasImage returns true if the artist declares an image reference.
func (a Artist) HasImage() bool {
	return a.ImageURL != ""
}

// HasBirthYear returns true if the birth year is known.
func (a Artist) HasBirthYear() bool {
	return a.BirthYear != 0
}

// Validate checks that all required fields are present.
func (a Artist) Validate() error {
	switch {
	case strings.TrimSpace(a.ID) == "":
		return fmt.Errorf("%w: id", ErrMissingField)
	case strings.TrimSpace(a.Name) == "":
		return fmt.Errorf("%w: name (id %s)", ErrMissingField, a.ID)
	case strings.TrimSpace(a.Medium) == "":
		return fmt.Errorf("%w: medium (id %s)", ErrMissingField, a.ID)
	case strings.TrimSpace(a.Bio) == "":
		return fmt.Errorf("%w: bio (id %s)", ErrMissingField, a.ID)
	}
	return nil
}

// Summary returns a short one-line description, "Name (Medium)".
func (a Artist) Summary() string {
	return fmt.Sprintf("%s (%s)", a.Name, a.Medium)
}

// Matches reports whether the lowercase query is a substring of the name,
// medium, style, nationality or bio. Absent optional fields never match.
// The caller is responsible for lowercasing the query.
func (a Artist) Matches(lowerQuery string) bool {
	if strings.Contains(strings.ToLower(a.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(a.Medium), lowerQuery) {
		return true
	}
	if a.Style != "" && strings.Contains(strings.ToLower(a.Style), lowerQuery) {
		return true
	}
	if a.Nationality != "" && strings.Contains(strings.ToLower(a.Nationality), lowerQuery) {
		return true
	}
	return strings.Contains(strings.ToLower(a.Bio), lowerQuery)
}
