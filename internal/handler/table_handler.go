package handler

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"bookprice-service/internal/model"
	"bookprice-service/internal/pricetable"
	"bookprice-service/pkg/logger"
	"bookprice-service/prometheus"
)

var (
	store    *pricetable.Store
	pageSize int
)

// InitTable wires the record store into the table handlers
func InitTable(s *pricetable.Store, size int) {
	store = s
	pageSize = size
}

// shopOfferResponse is the lowest observed price at one shop
type shopOfferResponse struct {
	Listed bool    `json:"listed"`
	Price  float64 `json:"price,omitempty"`
	URL    string  `json:"url,omitempty"`
}

// rowResponse is one table row: the record plus derived fields
type rowResponse struct {
	model.PriceRecord
	Offers            map[model.Shop]shopOfferResponse `json:"offers"`
	AdjustedMarginPct float64                          `json:"adjustedMarginPct"`
}

// paginationResponse describes the windowed pager
type paginationResponse struct {
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
	TotalItems int   `json:"totalItems"`
	Window     []any `json:"window"`
}

// viewResponse echoes back the view state the result was computed with
type viewResponse struct {
	Query  string       `json:"query"`
	Sort   string       `json:"sort"`
	Dir    string       `json:"dir"`
	Shops  []model.Shop `json:"shops"`
	Adjust model.Shop   `json:"adjust"`
}

type listResponse struct {
	Items      []rowResponse      `json:"items"`
	Pagination paginationResponse `json:"pagination"`
	View       viewResponse       `json:"view"`
}

// ListRecords handles the table view: filter, sort, paginate, and derive
// per-shop lowest prices and the adjusted margin
func ListRecords(c echo.Context) error {
	log := logger.FromContext(c)

	view, err := viewFromParams(c)
	if err != nil {
		log.Warn("Invalid table view parameters", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	result := view.Apply(store.Snapshot())
	prometheus.RecordTableOperation("list")

	log.Info("Table view computed",
		zap.String("query", view.Query),
		zap.String("sort", string(view.Field)),
		zap.Int("page", result.Page),
		zap.Int("total_items", result.TotalItems))

	return c.JSON(http.StatusOK, buildListResponse(view, result))
}

// GetRecord handles retrieving a single record by product id
func GetRecord(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	record, ok := store.ByID(id)
	if !ok {
		log.Warn("Record not found", zap.String("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Record not found"})
	}

	prometheus.RecordTableOperation("get")
	return c.JSON(http.StatusOK, record)
}

// LoadRecords handles the wholesale replacement of the record set by the
// caller (the table consumes records, it does not produce them)
func LoadRecords(c echo.Context) error {
	log := logger.FromContext(c)

	var records []model.PriceRecord
	if err := c.Bind(&records); err != nil {
		log.Error("Invalid record payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid record payload"})
	}

	store.Load(records)
	prometheus.RecordTableOperation("load")
	prometheus.SetRecordsLoaded(store.Len())

	log.Info("Record set loaded", zap.Int("records", store.Len()))
	return c.JSON(http.StatusOK, echo.Map{"count": store.Len()})
}

func viewFromParams(c echo.Context) (pricetable.TableView, error) {
	view := pricetable.NewTableView(pageSize)

	if q := c.QueryParam("q"); q != "" {
		view.SetQuery(q)
	}

	field, err := pricetable.ParseSortField(c.QueryParam("sort"))
	if err != nil {
		return view, err
	}
	dir, err := pricetable.ParseSortDirection(c.QueryParam("dir"))
	if err != nil {
		return view, err
	}
	view.Field = field
	view.Dir = dir

	if raw := c.QueryParam("shops"); raw != "" {
		view.Shops.Clear()
		for _, part := range strings.Split(raw, ",") {
			shop, err := model.ParseShop(strings.TrimSpace(part))
			if err != nil {
				return view, err
			}
			view.Shops.Toggle(shop)
		}
	}
	if raw := c.QueryParam("adjust"); raw != "" {
		shop, err := model.ParseShop(raw)
		if err != nil {
			return view, err
		}
		view.Shops.SetAdjust(shop)
	}

	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return view, fmt.Errorf("invalid page: %q", raw)
		}
		view.SetPage(page)
	}

	return view, nil
}

func buildListResponse(view pricetable.TableView, result pricetable.TableResult) listResponse {
	items := make([]rowResponse, 0, len(result.Rows))
	for _, row := range result.Rows {
		offers := make(map[model.Shop]shopOfferResponse, len(row.Offers))
		for shop, offer := range row.Offers {
			offers[shop] = shopOfferResponse{
				Listed: offer.Listed,
				Price:  offer.Price,
				URL:    offer.URL,
			}
		}
		items = append(items, rowResponse{
			PriceRecord:       row.Record,
			Offers:            offers,
			AdjustedMarginPct: round2(row.AdjustedMargin),
		})
	}

	window := make([]any, 0, len(result.Window))
	for _, p := range result.Window {
		if p == pricetable.Ellipsis {
			window = append(window, "…")
		} else {
			window = append(window, p)
		}
	}

	return listResponse{
		Items: items,
		Pagination: paginationResponse{
			Page:       result.Page,
			TotalPages: result.TotalPages,
			TotalItems: result.TotalItems,
			Window:     window,
		},
		View: viewResponse{
			Query:  view.Query,
			Sort:   string(view.Field),
			Dir:    string(view.Dir),
			Shops:  view.Shops.Selected,
			Adjust: view.Shops.Adjust,
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
