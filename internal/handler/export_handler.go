package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"bookprice-service/internal/export"
	"bookprice-service/pkg/logger"
	"bookprice-service/prometheus"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var exporter *export.Exporter

// InitExport wires the spreadsheet exporter into the export handler
func InitExport(e *export.Exporter) {
	exporter = e
}

// ExportRequest carries the selected product ids to export
type ExportRequest struct {
	IDs []string `json:"ids"`
}

// ExportRecords handles exporting the selected records as an xlsx download
func ExportRecords(c echo.Context) error {
	log := logger.FromContext(c)

	var req ExportRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid export request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid export request"})
	}

	var buf bytes.Buffer
	filename, err := exporter.Export(store.Snapshot(), req.IDs, time.Now(), &buf)
	if err != nil {
		if errors.Is(err, export.ErrEmptySelection) {
			log.Warn("Export rejected: empty selection")
			prometheus.RecordExport("empty")
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "請選擇要導出的資料"})
		}
		log.Error("Export failed", zap.Error(err))
		prometheus.RecordExport("error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to generate spreadsheet"})
	}

	prometheus.RecordExport("ok")
	prometheus.ExportRowsHistogram.Observe(float64(len(req.IDs)))
	log.Info("Export generated",
		zap.String("filename", filename),
		zap.Int("selected", len(req.IDs)),
		zap.Int("bytes", buf.Len()))

	// RFC 5987 encoding so the CJK filename survives the download
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
