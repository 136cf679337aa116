package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"bookprice-service/internal/model"
	"bookprice-service/internal/pricetable"
	"bookprice-service/pkg/logger"
)

// Fetcher pulls the full record set from the upstream market-data feed and
// replaces the store contents. There is no retry: a failed refresh leaves
// the current record set in place and the caller surfaces the error.
type Fetcher struct {
	client *http.Client
	url    string
	store  *pricetable.Store
}

// NewFetcher returns a Fetcher for the given feed URL.
func NewFetcher(url string, timeout time.Duration, store *pricetable.Store) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		url:    url,
		store:  store,
	}
}

// Refresh fetches the feed once and installs the result. The generation
// number is reserved before the request goes out, so when two refreshes
// race, the response belonging to the older request is rejected by the
// store with pricetable.ErrStaleGeneration and the newer data stays.
//
// Returns the number of records applied.
func (f *Fetcher) Refresh(ctx context.Context) (int, error) {
	log := logger.GetLogger()
	generation := f.store.NextGeneration()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return 0, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fetch feed: unexpected status %d", resp.StatusCode)
	}

	var records []model.PriceRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return 0, fmt.Errorf("decode feed: %w", err)
	}

	if err := f.store.Replace(records, generation); err != nil {
		if errors.Is(err, pricetable.ErrStaleGeneration) {
			log.Warn("Dropping stale refresh response",
				zap.Uint64("generation", generation),
				zap.Int("records", len(records)))
		}
		return 0, err
	}

	log.Info("Record set refreshed",
		zap.Uint64("generation", generation),
		zap.Int("records", len(records)))
	return len(records), nil
}
