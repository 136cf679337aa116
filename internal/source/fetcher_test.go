package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookprice-service/internal/pricetable"
)

func TestFetcherRefresh(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"productId":"BK-1","title":"甲","cost":"120","salePrice":200},
			{"title":"乙","cost":90}
		]`))
	}))
	defer srv.Close()

	store := pricetable.NewStore()
	f := NewFetcher(srv.URL, time.Second, store)

	count, err := f.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	snap := store.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "BK-1", snap[0].ProductID)
	assert.Equal(t, 120.0, snap[0].Cost.Float64)
	assert.Equal(t, "#1", snap[1].ProductID, "missing id gets the positional key")
}

func TestFetcherRefreshErrors(t *testing.T) {
	t.Run("upstream 5xx", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		store := pricetable.NewStore()
		f := NewFetcher(srv.URL, time.Second, store)

		_, err := f.Refresh(context.Background())
		assert.Error(t, err)
		assert.Equal(t, 0, store.Len(), "failed refresh leaves the store untouched")
	})

	t.Run("malformed payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"not":"an array"}`))
		}))
		defer srv.Close()

		store := pricetable.NewStore()
		f := NewFetcher(srv.URL, time.Second, store)

		_, err := f.Refresh(context.Background())
		assert.Error(t, err)
	})

	t.Run("unreachable upstream", func(t *testing.T) {
		store := pricetable.NewStore()
		f := NewFetcher("http://127.0.0.1:1", 100*time.Millisecond, store)

		_, err := f.Refresh(context.Background())
		assert.Error(t, err)
	})
}

// Two refreshes race; the response belonging to the older request arrives
// last and must be dropped.
func TestFetcherRefreshRace(t *testing.T) {
	firstArrived := make(chan struct{})
	releaseFirst := make(chan struct{})

	var mu sync.Mutex
	requests := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests++
		n := requests
		mu.Unlock()

		if n == 1 {
			close(firstArrived)
			<-releaseFirst
			w.Write([]byte(`[{"productId":"old","title":"stale"}]`))
			return
		}
		w.Write([]byte(`[{"productId":"new","title":"fresh"}]`))
	}))
	defer srv.Close()

	store := pricetable.NewStore()
	f := NewFetcher(srv.URL, 5*time.Second, store)

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = f.Refresh(context.Background())
	}()

	<-firstArrived

	// Second refresh completes while the first response is still pending.
	_, err := f.Refresh(context.Background())
	require.NoError(t, err)

	close(releaseFirst)
	wg.Wait()

	assert.ErrorIs(t, firstErr, pricetable.ErrStaleGeneration)

	snap := store.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "new", snap[0].ProductID, "the newer record set stays")
}
