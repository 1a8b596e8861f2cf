package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/handiism/artist-gallery/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed artists.yaml
var embeddedArtists []byte

var (
	// ErrDuplicateID is returned when two records share an ID.
	ErrDuplicateID = errors.New("duplicate artist id")

	// ErrInvalidRecord is returned when a record is missing required fields.
	ErrInvalidRecord = errors.New("invalid artist record")
)

// document is the on-disk shape of a catalog file.
type document struct {
	Artists []model.Artist `yaml:"artists"`
}

// Store is an ordered, read-only collection of artist records.
//
// Store has no mutable state after construction, so it is safe for
// concurrent use. Every method that returns records returns a fresh slice;
// callers may keep or reorder it without affecting the store.
type Store struct {
	artists []model.Artist
	byID    map[string]int
}

// NewStore builds a Store from records, preserving their order.
//
// Returns ErrInvalidRecord if a record is missing a required field and
// ErrDuplicateID if two records share an ID.
func NewStore(records []model.Artist) (*Store, error) {
	s := &Store{
		artists: make([]model.Artist, len(records)),
		byID:    make(map[string]int, len(records)),
	}
	copy(s.artists, records)

	for i, a := range s.artists {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrInvalidRecord, i, err)
		}
		if _, exists := s.byID[a.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, a.ID)
		}
		s.byID[a.ID] = i
	}

	return s, nil
}

// Parse builds a Store from a YAML catalog document.
func Parse(data []byte) (*Store, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return NewStore(doc.Artists)
}

// Load reads a YAML catalog file from disk.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Default returns the catalog compiled into the binary.
func Default() *Store {
	s, err := Parse(embeddedArtists)
	if err != nil {
		// The embedded document is covered by tests.
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return s
}

// All returns every record in collection order.
func (s *Store) All() []model.Artist {
	out := make([]model.Artist, len(s.artists))
	copy(out, s.artists)
	return out
}

// Search returns records whose name, medium, style, nationality or bio
// contain query, ignoring case. Collection order is preserved. A blank
// query returns the same sequence as All.
func (s *Store) Search(query string) []model.Artist {
	if strings.TrimSpace(query) == "" {
		return s.All()
	}

	lower := strings.ToLower(query)
	out := make([]model.Artist, 0)
	for _, a := range s.artists {
		if a.Matches(lower) {
			out = append(out, a)
		}
	}
	return out
}

// Count returns the total number of records regardless of any filter.
func (s *Store) Count() int {
	return len(s.artists)
}

// ByID looks up a record by its ID.
func (s *Store) ByID(id string) (model.Artist, bool) {
	i, ok := s.byID[id]
	if !ok {
		return model.Artist{}, false
	}
	return s.artists[i], true
}

// ByMedium returns records whose medium contains medium, ignoring case.
func (s *Store) ByMedium(medium string) []model.Artist {
	lower := strings.ToLower(medium)
	out := make([]model.Artist, 0)
	for _, a := range s.artists {
		if strings.Contains(strings.ToLower(a.Medium), lower) {
			out = append(out, a)
		}
	}
	return out
}

// Random returns up to n distinct records in random order.
func (s *Store) Random(n int, rng *rand.Rand) []model.Artist {
	out := s.All()
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if n < 0 {
		n = 0
	}
	if n < len(out) {
		out = out[:n]
	}
	return out
}
