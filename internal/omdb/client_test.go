package omdb

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkarvinen/moviedeck/internal/errors"
	"github.com/tkarvinen/moviedeck/internal/ratelimit"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient("test-key",
		WithBaseURL(server.URL),
		WithHTTPClient(server.Client()),
		WithRateLimiter(ratelimit.New("test", 1000)),
	)
	return client, server
}

func TestSearchSuccess(t *testing.T) {
	var gotQuery, gotType, gotPage string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("s")
		gotType = r.URL.Query().Get("type")
		gotPage = r.URL.Query().Get("page")
		fmt.Fprint(w, `{
			"Search": [
				{"Title": "Batman Begins", "Year": "2005", "imdbID": "tt0372784", "Type": "movie", "Poster": "https://img/bb.jpg"},
				{"Title": "The Batman", "Year": "2022", "imdbID": "tt1877830", "Type": "movie", "Poster": "N/A"}
			],
			"totalResults": "2",
			"Response": "True"
		}`)
	})

	resp, err := client.Search(context.Background(), "batman", 1)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "batman", gotQuery)
	assert.Equal(t, "movie", gotType)
	assert.Equal(t, "1", gotPage)
	require.Len(t, resp.Search, 2)
	assert.Equal(t, "tt0372784", resp.Search[0].ImdbID)
	assert.Equal(t, "N/A", resp.Search[1].Poster)
}

func TestSearchNoResultsIsNotAnError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Response": "False", "Error": "Movie not found!"}`)
	})

	resp, err := client.Search(context.Background(), "zzzzzz", 1)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Empty(t, resp.Search)
}

func TestSearchAPIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Response": "False", "Error": "Invalid API key!"}`)
	})

	_, err := client.Search(context.Background(), "batman", 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API key!")
}

func TestFetchByIDSuccess(t *testing.T) {
	var gotID, gotPlot string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotID = r.URL.Query().Get("i")
		gotPlot = r.URL.Query().Get("plot")
		fmt.Fprint(w, `{
			"Title": "The Dark Knight", "Year": "2008", "Released": "18 Jul 2008",
			"Runtime": "152 min", "Genre": "Action, Crime, Drama",
			"Director": "Christopher Nolan", "Actors": "Christian Bale, Heath Ledger",
			"Plot": "Batman raises the stakes in his war on crime.",
			"Language": "English", "Poster": "https://img/tdk.jpg",
			"imdbRating": "9.0", "imdbID": "tt0468569", "Type": "movie",
			"Response": "True"
		}`)
	})

	detail, err := client.FetchByID(context.Background(), "tt0468569", PlotFull)
	require.NoError(t, err)
	require.NotNil(t, detail)

	assert.Equal(t, "tt0468569", gotID)
	assert.Equal(t, "full", gotPlot)
	assert.Equal(t, "The Dark Knight", detail.Title)
	assert.Equal(t, "9.0", detail.ImdbRating)
}

func TestFetchByIDNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Response": "False", "Error": "Error getting data. Movie not found!"}`)
	})

	detail, err := client.FetchByID(context.Background(), "tt9999999", PlotShort)
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestFetchByIDInvalidPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Response": "True"}`)
	})

	_, err := client.FetchByID(context.Background(), "tt0468569", PlotShort)
	assert.Error(t, err)
}

func TestRateLimitResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"Response": "False", "Error": "Request limit reached!"}`)
	})

	_, err := client.Search(context.Background(), "batman", 1)
	require.Error(t, err)
	assert.True(t, errors.IsRateLimitError(err))
}

func TestNon200WithoutBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Search(context.Background(), "batman", 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestMalformedJSON(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Search": [`)
	})

	_, err := client.Search(context.Background(), "batman", 1)
	assert.Error(t, err)
}
