package openlibrary

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	return client, server
}

func TestSearchModeSelectsQueryParam(t *testing.T) {
	modeParams := map[Mode]string{
		ModeTitle:   "title",
		ModeAuthor:  "author",
		ModeSubject: "subject",
		ModeISBN:    "isbn",
	}

	for mode, param := range modeParams {
		t.Run(string(mode), func(t *testing.T) {
			var got url.Values
			client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				got = r.URL.Query()
				w.Write([]byte(`{"numFound":0,"docs":[]}`))
			})
			defer server.Close()

			_, err := client.Search(context.Background(), "dune messiah", mode)
			require.NoError(t, err)

			assert.Equal(t, "dune messiah", got.Get(param))
			assert.Equal(t, "24", got.Get("limit"))
			assert.NotEmpty(t, got.Get("fields"))

			// Exactly one mode parameter must be present.
			for _, other := range modeParams {
				if other == param {
					continue
				}
				assert.Empty(t, got.Get(other), "unexpected %s param for mode %s", other, mode)
			}
		})
	}
}

func TestSearchEmptyQueryNoRequest(t *testing.T) {
	called := false
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	defer server.Close()

	for _, query := range []string{"", "   ", "\t\n"} {
		_, err := client.Search(context.Background(), query, ModeTitle)
		assert.ErrorIs(t, err, ErrEmptyQuery)
	}
	assert.False(t, called, "empty query must not hit the network")
}

func TestSearchTrimsQuery(t *testing.T) {
	var got string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query().Get("title")
		w.Write([]byte(`{"docs":[]}`))
	})
	defer server.Close()

	_, err := client.Search(context.Background(), "  neuromancer  ", ModeTitle)
	require.NoError(t, err)
	assert.Equal(t, "neuromancer", got)
}

func TestSearchSetsAcceptHeader(t *testing.T) {
	var accept string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		w.Write([]byte(`{"docs":[]}`))
	})
	defer server.Close()

	_, err := client.Search(context.Background(), "dune", ModeTitle)
	require.NoError(t, err)
	assert.Equal(t, "application/json", accept)
}

func TestSearchHTTPError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer server.Close()

	_, err := client.Search(context.Background(), "dune", ModeTitle)
	require.Error(t, err)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "Internal Server Error", httpErr.StatusText)
}

func TestSearchFiltersUnusableTitles(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"numFound":4,"docs":[
			{"key":"/works/OL1W","title":"Dune"},
			{"key":"/works/OL2W","title":""},
			{"key":"/works/OL3W","title":"Unknown"},
			{"key":"/works/OL4W","title":"Dune Messiah"}
		]}`))
	})
	defer server.Close()

	books, err := client.Search(context.Background(), "dune", ModeTitle)
	require.NoError(t, err)

	require.Len(t, books, 2)
	assert.Equal(t, "Dune", books[0].Title)
	assert.Equal(t, "Dune Messiah", books[1].Title)
}

func TestSearchMissingDocsArray(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"numFound":0}`))
	})
	defer server.Close()

	books, err := client.Search(context.Background(), "dune", ModeTitle)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestSearchParsesOptionalFields(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"docs":[{
			"key":"/works/OL45883W",
			"title":"Dune",
			"author_name":["Frank Herbert"],
			"first_publish_year":1965,
			"publisher":["Chilton Books"],
			"subject":["Science fiction"],
			"language":["eng","fre"],
			"number_of_pages_median":412,
			"cover_i":11481354,
			"isbn":["9780441172719"],
			"cover_edition_key":"OL27027582M",
			"edition_key":["OL27027582M"]
		}]}`))
	})
	defer server.Close()

	books, err := client.Search(context.Background(), "dune", ModeTitle)
	require.NoError(t, err)
	require.Len(t, books, 1)

	b := books[0]
	assert.Equal(t, "/works/OL45883W", b.Key)
	assert.Equal(t, []string{"Frank Herbert"}, b.AuthorNames)
	assert.Equal(t, 1965, b.FirstPublishYear)
	assert.True(t, b.HasYear())
	assert.True(t, b.HasPages())
	assert.Equal(t, int64(11481354), b.CoverID)

	lang, ok := b.PrimaryLanguage()
	require.True(t, ok)
	assert.Equal(t, "eng", lang)
}

func TestSearchSparseRecord(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"docs":[{"title":"Anonymous Pamphlet"}]}`))
	})
	defer server.Close()

	books, err := client.Search(context.Background(), "pamphlet", ModeTitle)
	require.NoError(t, err)
	require.Len(t, books, 1)

	b := books[0]
	assert.False(t, b.HasYear())
	assert.False(t, b.HasPages())
	_, ok := b.PrimaryLanguage()
	assert.False(t, ok)
}

func TestSearchCancelled(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"docs":[]}`))
	})
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Search(ctx, "dune", ModeTitle)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchNetworkError(t *testing.T) {
	// A server that is already closed produces a transport failure.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient(WithBaseURL(server.URL))
	server.Close()

	_, err := client.Search(context.Background(), "dune", ModeTitle)
	require.Error(t, err)

	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestSearchBadJSON(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})
	defer server.Close()

	_, err := client.Search(context.Background(), "dune", ModeTitle)
	assert.Error(t, err)
}
