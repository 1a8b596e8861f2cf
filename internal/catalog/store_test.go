package catalog

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/artist-gallery/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(artists []model.Artist) []string {
	out := make([]string, len(artists))
	for i, a := range artists {
		out[i] = a.ID
	}
	return out
}

func TestDefault_LoadsEmbeddedCatalog(t *testing.T) {
	store := Default()

	assert.Equal(t, 10, store.Count())
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}, ids(store.All()))

	kusama, ok := store.ByID("1")
	require.True(t, ok)
	assert.Equal(t, "Yayoi Kusama", kusama.Name)
	assert.Equal(t, 1929, kusama.BirthYear)
	assert.True(t, kusama.HasImage())

	banksy, ok := store.ByID("2")
	require.True(t, ok)
	assert.False(t, banksy.HasBirthYear())
}

func TestSearch(t *testing.T) {
	store := Default()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"name", "Kusama", []string{"1"}},
		{"case insensitive", "kUsAmA", []string{"1"}},
		{"medium keeps order", "painting", []string{"3", "9", "10"}},
		{"nationality", "japanese", []string{"1", "9"}},
		{"style", "neo-pop", []string{"6"}},
		{"bio", "balloon", []string{"6"}},
		{"no match", "zzz-no-match", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(store.Search(tt.query)))
		})
	}
}

func TestSearch_EmptyQueryEqualsAll(t *testing.T) {
	store := Default()

	assert.Equal(t, store.All(), store.Search(""))
	assert.Equal(t, store.All(), store.Search("   "))
}

func TestSearch_DoesNotChangeCount(t *testing.T) {
	store := Default()
	_ = store.Search("kusama")
	assert.Equal(t, 10, store.Count())
}

func TestAll_ReturnsCopy(t *testing.T) {
	store := Default()
	all := store.All()
	all[0].Name = "changed"

	first, _ := store.ByID("1")
	assert.Equal(t, "Yayoi Kusama", first.Name)
}

func TestByMedium(t *testing.T) {
	store := Default()
	assert.Equal(t, []string{"1", "4", "6", "9"}, ids(store.ByMedium("sculpture")))
}

func TestRandom(t *testing.T) {
	store := Default()
	rng := rand.New(rand.NewPCG(1, 2))

	picked := store.Random(3, rng)
	require.Len(t, picked, 3)

	seen := map[string]bool{}
	for _, a := range picked {
		assert.False(t, seen[a.ID], "duplicate %s", a.ID)
		seen[a.ID] = true
	}

	assert.Len(t, store.Random(50, rng), 10)
	assert.Empty(t, store.Random(-1, rng))
}

func TestNewStore_Errors(t *testing.T) {
	valid := model.Artist{ID: "a", Name: "A", Medium: "M", Bio: "B"}

	_, err := NewStore([]model.Artist{valid, valid})
	assert.ErrorIs(t, err, ErrDuplicateID)

	_, err = NewStore([]model.Artist{{ID: "b", Name: "B"}})
	assert.ErrorIs(t, err, ErrInvalidRecord)

	empty, err := NewStore(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Count())
	assert.Empty(t, empty.Search("anything"))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `artists:
  - id: x1
    name: Test Artist
    medium: Ink
    bio: Draws things
    style: Minimal
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	store, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Count())
	assert.Equal(t, []string{"x1"}, ids(store.Search("minimal")))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("artists: [unterminated"))
	assert.Error(t, err)
}
