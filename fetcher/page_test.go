package fetcher_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newswatch/fetcher"
	"newswatch/models"
)

const pageDoc = `<!doctype html>
<html>
  <head><title>Consultation on tariffs</title></head>
  <body>
    <nav>Skip this</nav>
    <p>The government opened a consultation   on steel tariffs.</p>
    <p>Responses are due in June.</p>
  </body>
</html>`

func TestPageFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "newswatch/0.1", r.Header.Get("User-Agent"))
		w.Write([]byte(pageDoc))
	}))
	t.Cleanup(srv.Close)

	f := fetcher.NewPageFetcher(5 * time.Second)
	entries, err := f.Fetch(context.Background(), models.Source{URL: srv.URL, Label: "Gov"})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "Consultation on tariffs", entry.Title)
	assert.Equal(t, srv.URL, entry.Link)
	assert.Equal(t, "The government opened a consultation on steel tariffs. Responses are due in June.", entry.Summary)
	assert.Equal(t, "Gov", entry.Source)
	assert.True(t, entry.Published.IsZero())
}

func TestPageFetchNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	f := fetcher.NewPageFetcher(5 * time.Second)
	_, err := f.Fetch(context.Background(), models.Source{URL: srv.URL})
	assert.Error(t, err)
}

func TestPageFetchTitleFallsBackToURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>No title here.</p></body></html>"))
	}))
	t.Cleanup(srv.Close)

	f := fetcher.NewPageFetcher(5 * time.Second)
	entries, err := f.Fetch(context.Background(), models.Source{URL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, srv.URL, entries[0].Title)
}

func TestCleanSummary(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text untouched",
			input:    "plain text",
			expected: "plain text",
		},
		{
			name:     "tags stripped",
			input:    "<p>Hello <b>world</b></p>",
			expected: "Hello world",
		},
		{
			name:     "whitespace collapsed",
			input:    "too   much\n\nspace",
			expected: "too much space",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fetcher.CleanSummary(tt.input))
		})
	}
}

func TestCleanSummaryTruncates(t *testing.T) {
	long := strings.Repeat("a", 2000)
	assert.Len(t, fetcher.CleanSummary(long), 1000)
}
