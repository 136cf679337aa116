package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"bookprice-service/internal/pricetable"
	"bookprice-service/internal/source"
	"bookprice-service/pkg/logger"
	"bookprice-service/prometheus"
)

var fetcher *source.Fetcher

// InitRefresh wires the upstream fetcher into the refresh handler
func InitRefresh(f *source.Fetcher) {
	fetcher = f
}

// RefreshRecords handles a manual refresh from the upstream feed. There is
// no automatic retry: on failure the user triggers the refresh again.
func RefreshRecords(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Refreshing record set from upstream feed")

	start := time.Now()
	count, err := fetcher.Refresh(c.Request().Context())
	prometheus.RefreshDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, pricetable.ErrStaleGeneration) {
			// A newer refresh already landed; nothing was lost.
			prometheus.RecordRefresh("stale")
			return c.JSON(http.StatusOK, echo.Map{"applied": false})
		}
		log.Error("Refresh failed", zap.Error(err))
		prometheus.RecordRefresh("error")
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "無法獲取結果數據"})
	}

	prometheus.RecordRefresh("applied")
	prometheus.SetRecordsLoaded(count)
	return c.JSON(http.StatusOK, echo.Map{"applied": true, "count": count})
}
