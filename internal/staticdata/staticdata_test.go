package staticdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguagesSortedAndComplete(t *testing.T) {
	langs := Languages()
	assert.Equal(t, []string{"English", "Hindi", "Malayalam", "Tamil", "Telugu"}, langs)
}

func TestByLanguageKnown(t *testing.T) {
	records, ok := ByLanguage("Hindi")
	require.True(t, ok)
	require.NotEmpty(t, records)

	for _, raw := range records {
		assert.NotEmpty(t, raw.ID)
		assert.NotEmpty(t, raw.Title)
		assert.Equal(t, "Hindi", raw.Language)
	}
}

func TestByLanguageUnknown(t *testing.T) {
	records, ok := ByLanguage("Klingon")
	assert.False(t, ok)
	assert.Nil(t, records)
}

func TestByLanguageReturnsCopy(t *testing.T) {
	records, ok := ByLanguage("English")
	require.True(t, ok)
	original := records[0].Title

	records[0].Title = "mutated"

	again, _ := ByLanguage("English")
	assert.Equal(t, original, again[0].Title)
}

func TestFindByID(t *testing.T) {
	raw, ok := FindByID("Hindi_2024_3")
	require.True(t, ok)
	assert.Equal(t, "Shaitaan", raw.Title)
	assert.Equal(t, "2024", raw.Year)

	_, ok = FindByID("Hindi_2024_99")
	assert.False(t, ok)

	_, ok = FindByID("tt0468569")
	assert.False(t, ok)
}

func TestIsStaticID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"Hindi_2024_3", true},
		{"English_2023_1", true},
		{"tt0468569", false},
		{"ttHindi_2024_3", false},
		{"Hindi_2024", false},
		{"Klingon_2024_1", false},
		{"", false},
		{"plain", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsStaticID(tt.id), "id %q", tt.id)
	}
}
