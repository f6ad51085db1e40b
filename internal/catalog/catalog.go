// Package catalog is the read side of the application: it answers search,
// detail, and listing queries by combining the OMDb client, the bundled
// dataset, the expiring cache, and the favorites store into canonical movie
// records.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tkarvinen/moviedeck/internal/cache"
	"github.com/tkarvinen/moviedeck/internal/event"
	"github.com/tkarvinen/moviedeck/internal/favorites"
	"github.com/tkarvinen/moviedeck/internal/movie"
	"github.com/tkarvinen/moviedeck/internal/omdb"
	"github.com/tkarvinen/moviedeck/internal/staticdata"
)

const (
	// enrichLimit caps how many summaries per page are kept and upgraded to
	// full records. Results past the cap are dropped; the next page serves
	// them.
	enrichLimit = 10
	// enrichConcurrency bounds parallel detail lookups per search.
	enrichConcurrency = 5
)

var whitespace = regexp.MustCompile(`\s+`)

// Service answers catalog queries. All lookups are cache-first and all
// failures degrade to empty results plus a toast, never an error to the
// caller.
type Service struct {
	client    *omdb.Client
	cache     *cache.Cache
	favorites *favorites.Store
	bus       *event.Bus
}

// New wires a catalog service. bus may be nil when no surface listens for
// toasts.
func New(client *omdb.Client, c *cache.Cache, favs *favorites.Store, bus *event.Bus) *Service {
	return &Service{client: client, cache: c, favorites: favs, bus: bus}
}

// Search returns canonical movie records for a title query. The first
// enrichLimit summaries are kept and upgraded to full records via parallel
// detail lookups; a failed upgrade falls back to the summary. A blank query
// returns an empty result without touching the network.
//
// A newer search does not cancel an in-flight one; sequential callers never
// race, and concurrent callers must discard stale results themselves.
func (s *Service) Search(ctx context.Context, query string, page int) []movie.Movie {
	query = strings.TrimSpace(query)
	if query == "" {
		return []movie.Movie{}
	}
	if page < 1 {
		page = 1
	}

	key := searchKey(query, page)
	if cached, ok := cache.Get[[]movie.Movie](s.cache, key); ok {
		slog.Debug("Search served from cache", "query", query, "page", page)
		return cached
	}

	resp, err := s.client.Search(ctx, query, page)
	if err != nil {
		slog.Warn("Search failed", "query", query, "error", err)
		s.toast("Failed to search movies. Please try again.", event.SeverityError)
		return nil
	}

	if len(resp.Search) == 0 {
		s.toast(fmt.Sprintf("No movies found for %q.", query), event.SeverityInfo)
		return []movie.Movie{}
	}

	results := s.enrich(ctx, resp.Search)
	cache.Set(s.cache, key, results, cache.ListingTTL())
	return results
}

// enrich upgrades summaries to detail records in parallel, preserving the
// original result order. Lookup failures are swallowed per item; the summary
// record stands in. All tasks settle before the batch is returned.
func (s *Service) enrich(ctx context.Context, summaries []omdb.SearchResult) []movie.Movie {
	if len(summaries) > enrichLimit {
		summaries = summaries[:enrichLimit]
	}
	results := make([]movie.Movie, len(summaries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for i := range summaries {
		g.Go(func() error {
			summary := summaries[i]
			detail, err := s.client.FetchByID(gctx, summary.ImdbID, omdb.PlotShort)
			if err != nil || detail == nil {
				if err != nil {
					slog.Warn("Detail enrichment failed, using summary", "imdb_id", summary.ImdbID, "error", err)
				}
				results[i] = movie.Normalize(rawFromSummary(summary), s.favoriteFunc())
				return nil
			}
			results[i] = movie.Normalize(rawFromDetail(detail), s.favoriteFunc())
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// GetByID returns one canonical movie record, or nil when no movie with the
// id exists. Bundled-dataset ids are resolved entirely offline.
func (s *Service) GetByID(ctx context.Context, id string) *movie.Movie {
	key := "movie_" + id
	if cached, ok := cache.Get[movie.Movie](s.cache, key); ok {
		slog.Debug("Detail served from cache", "id", id)
		return &cached
	}

	if staticdata.IsStaticID(id) {
		raw, ok := staticdata.FindByID(id)
		if !ok {
			slog.Debug("Unknown bundled movie id", "id", id)
			return nil
		}
		m := movie.Normalize(raw, s.favoriteFunc())
		cache.Set(s.cache, key, m, cache.DetailTTL())
		return &m
	}

	detail, err := s.client.FetchByID(ctx, id, omdb.PlotFull)
	if err != nil {
		slog.Warn("Detail lookup failed", "id", id, "error", err)
		s.toast("Failed to load movie details. Please try again.", event.SeverityError)
		return nil
	}
	if detail == nil {
		return nil
	}

	m := movie.Normalize(rawFromDetail(detail), s.favoriteFunc())
	cache.Set(s.cache, key, m, cache.DetailTTL())
	return &m
}

// ListingsByLanguage returns the bundled listing for a language. An empty or
// unmodeled language falls back to the default language's listing.
func (s *Service) ListingsByLanguage(language string) []movie.Movie {
	if language == "" {
		language = staticdata.DefaultLanguage
	}

	key := "trending_" + language
	if cached, ok := cache.Get[[]movie.Movie](s.cache, key); ok {
		slog.Debug("Listing served from cache", "language", language)
		return cached
	}

	records, ok := staticdata.ByLanguage(language)
	if !ok {
		slog.Debug("Language not in bundled dataset, using default", "language", language)
		records, _ = staticdata.ByLanguage(staticdata.DefaultLanguage)
	}

	results := make([]movie.Movie, 0, len(records))
	for _, raw := range records {
		results = append(results, movie.Normalize(raw, s.favoriteFunc()))
	}

	cache.Set(s.cache, key, results, cache.ListingTTL())
	return results
}

// favoriteFunc adapts the favorites store to the normalizer's callback.
func (s *Service) favoriteFunc() movie.FavoriteFunc {
	if s.favorites == nil {
		return nil
	}
	return s.favorites.IsFavorite
}

func (s *Service) toast(message string, severity event.Severity) {
	if s.bus != nil {
		s.bus.PublishToast(message, severity)
	}
}

// searchKey builds the cache key for one search page. Queries differing only
// in case or whitespace share an entry.
func searchKey(query string, page int) string {
	normalized := whitespace.ReplaceAllString(strings.ToLower(query), "_")
	return fmt.Sprintf("search_%s_%d", normalized, page)
}

func rawFromSummary(s omdb.SearchResult) movie.Raw {
	return movie.Raw{
		ImdbID: s.ImdbID,
		Title:  s.Title,
		Year:   s.Year,
		Type:   s.Type,
		Poster: s.Poster,
	}
}

func rawFromDetail(d *omdb.Detail) movie.Raw {
	return movie.Raw{
		ImdbID:     d.ImdbID,
		Title:      d.Title,
		Year:       d.Year,
		Type:       d.Type,
		Poster:     d.Poster,
		Language:   d.Language,
		ImdbRating: d.ImdbRating,
		Genre:      d.Genre,
		Plot:       d.Plot,
		Director:   d.Director,
		Actors:     d.Actors,
		Released:   d.Released,
		Runtime:    d.Runtime,
	}
}
