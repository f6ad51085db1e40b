// Package movie defines the canonical movie record and the normalization
// that maps heterogeneous source records onto it.
package movie

import (
	"strings"

	"github.com/google/uuid"
)

const (
	// PlaceholderPoster is returned for records with no usable poster.
	PlaceholderPoster = "/Images/placeholder.jpg"
	// posterAssetDir prefixes bare poster filenames from the bundled dataset.
	posterAssetDir = "/Images/"

	notAvailable = "N/A"
)

// Movie is the canonical, UI-ready representation of a movie regardless of
// whether it came from the OMDb API or the bundled dataset.
type Movie struct {
	ID          string `json:"id"`
	ProviderID  string `json:"providerId"`
	Title       string `json:"title"`
	Year        string `json:"year"`
	MediaType   string `json:"mediaType"`
	PosterURL   string `json:"posterUrl"`
	Language    string `json:"language"`
	Rating      string `json:"rating"`
	Genre       string `json:"genre"`
	Overview    string `json:"overview"`
	Director    string `json:"director"`
	Actors      string `json:"actors"`
	ReleaseDate string `json:"releaseDate"`
	Runtime     string `json:"runtime"`
	// IsFavorite is derived at normalization time, never stored upstream.
	IsFavorite bool `json:"isFavorite"`
}

// Raw is a loosely-populated record as delivered by the OMDb API or the
// bundled dataset. Field names follow the OMDb wire format; the bundled
// dataset uses the same shape plus a pre-assigned composite "id".
type Raw struct {
	ID         string `json:"id"`
	ImdbID     string `json:"imdbID"`
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Type       string `json:"Type"`
	Poster     string `json:"Poster"`
	Language   string `json:"Language"`
	ImdbRating string `json:"imdbRating"`
	Rating     string `json:"Rating"`
	Genre      string `json:"Genre"`
	Plot       string `json:"Plot"`
	Overview   string `json:"overview"`
	Director   string `json:"Director"`
	Actors     string `json:"Actors"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
}

// FavoriteFunc reports whether the movie with the given id is a favorite.
type FavoriteFunc func(id string) bool

// Normalize produces a canonical Movie from any partially-populated record.
// It is total: there is no input for which it fails.
//
// Field priority follows the source services: a provider id wins over a
// dataset id, imdbRating over a generic Rating, Plot over a generic overview.
// A record with no identity at all gets a synthesized opaque id.
func Normalize(raw Raw, isFavorite FavoriteFunc) Movie {
	id := raw.ImdbID
	if id == "" {
		id = raw.ID
	}
	if id == "" {
		id = uuid.NewString()
	}

	m := Movie{
		ID:          id,
		ProviderID:  raw.ImdbID,
		Title:       coalesce(raw.Title, "Unknown Movie"),
		Year:        coalesce(raw.Year, notAvailable),
		MediaType:   coalesce(raw.Type, "movie"),
		PosterURL:   ResolvePoster(raw.Poster),
		Language:    coalesce(raw.Language, "English"),
		Rating:      coalesce(raw.ImdbRating, coalesce(raw.Rating, notAvailable)),
		Genre:       coalesce(raw.Genre, notAvailable),
		Overview:    coalesce(raw.Plot, raw.Overview),
		Director:    raw.Director,
		Actors:      raw.Actors,
		ReleaseDate: raw.Released,
		Runtime:     coalesce(raw.Runtime, notAvailable),
	}

	if isFavorite != nil {
		m.IsFavorite = isFavorite(m.ID)
	}
	return m
}

// ResolvePoster maps a raw poster value onto a path the UI can always load.
// Absent values and the OMDb "N/A" sentinel resolve to the placeholder,
// absolute URLs and absolute local paths pass through unchanged, and bare
// filenames are anchored in the local asset directory.
func ResolvePoster(path string) string {
	if path == "" || path == notAvailable {
		return PlaceholderPoster
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if strings.HasPrefix(path, "/") {
		return path
	}
	return posterAssetDir + path
}

func coalesce(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
