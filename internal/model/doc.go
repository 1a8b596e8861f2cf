// Package model defines the core data structures used throughout
// the artist-gallery application.
//
// # Artist
//
// Artist is the immutable record shown on each carousel card:
//
//	a := model.Artist{ID: "2", Name: "Banksy", Medium: "Street Art", Bio: "..."}
//	if a.HasImage() {
//	    fmt.Println(a.ImageURL)
//	}
//
// Required fields are ID, Name, Medium and Bio; use Validate to check them.
// Nationality, BirthYear, ImageURL, Website and Style are optional and
// simply never match a search when absent.
package model
