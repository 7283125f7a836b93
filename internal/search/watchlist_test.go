package search

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const watchlistFixture = `watchlists:
  - name: semis
    description: Memory and logic names
    entity_ids:
      - "228D42"
      - "11EA55"
  - name: evs
    entity_ids:
      - "DD3BB1"
`

func writeWatchlistFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "watchlists.yml")
	require.NoError(t, os.WriteFile(path, []byte(watchlistFixture), 0o644))
	return path
}

func TestLoadWatchlists(t *testing.T) {
	w, err := LoadWatchlists(writeWatchlistFixture(t))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"semis", "evs"}, w.Names())
}

func TestLoadWatchlists_MissingFile(t *testing.T) {
	_, err := LoadWatchlists(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestResolveEntityIDs(t *testing.T) {
	w, err := LoadWatchlists(writeWatchlistFixture(t))
	require.NoError(t, err)

	tests := []struct {
		name    string
		in      []string
		want    []string
		wantErr bool
	}{
		{
			name: "plain ids pass through",
			in:   []string{"ABC123"},
			want: []string{"ABC123"},
		},
		{
			name: "watchlist reference expands",
			in:   []string{"watchlist:semis"},
			want: []string{"228D42", "11EA55"},
		},
		{
			name: "mixed with deduplication",
			in:   []string{"228D42", "watchlist:semis", "watchlist:evs"},
			want: []string{"228D42", "11EA55", "DD3BB1"},
		},
		{
			name:    "unknown watchlist",
			in:      []string{"watchlist:crypto"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := w.resolveEntityIDs(tt.in)
			if tt.wantErr {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_WatchlistReferenceExpandsIntoQuery(t *testing.T) {
	w, err := LoadWatchlists(writeWatchlistFixture(t))
	require.NoError(t, err)

	mock := &mockVendor{}
	svc, _ := newTestService(mock, WithWatchlists(w))

	_, err = svc.SearchNews(context.Background(), NewsRequest{
		Queries:   []string{"memory pricing"},
		EntityIDs: []string{"watchlist:semis"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"228D42", "11EA55"}, mock.lastQuery.EntityIDs)
}

func TestService_WatchlistReferenceWithoutWatchlists(t *testing.T) {
	mock := &mockVendor{}
	svc, _ := newTestService(mock)

	_, err := svc.SearchNews(context.Background(), NewsRequest{
		Queries:   []string{"memory pricing"},
		EntityIDs: []string{"watchlist:semis"},
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Zero(t, mock.searchCalls)
}
