package pricetable

import "bookprice-service/internal/model"

// DefaultPageSize matches the fixed table page size of the product UI.
const DefaultPageSize = 6

// Ellipsis marks an elided run of page numbers in a page window.
const Ellipsis = -1

// Page is one slice of the filtered and sorted sequence.
type Page struct {
	Items      []model.PriceRecord
	Number     int
	TotalPages int
	TotalItems int
}

// TotalPages returns ceil(n/size). Zero items means zero pages.
func TotalPages(n, size int) int {
	if size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// ClampPage forces a 1-based page number into range. An empty sequence
// still has a current page of 1.
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages >= 1 && page > totalPages {
		return totalPages
	}
	return page
}

// Paginate slices records into the requested fixed-size page, clamping the
// page number into range first.
func Paginate(records []model.PriceRecord, page, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := TotalPages(len(records), size)
	page = ClampPage(page, total)

	start := (page - 1) * size
	end := start + size
	if start > len(records) {
		start = len(records)
	}
	if end > len(records) {
		end = len(records)
	}

	return Page{
		Items:      records[start:end],
		Number:     page,
		TotalPages: total,
		TotalItems: len(records),
	}
}

// Window produces the page numbers for a windowed pager: always the first
// page, the last page, and the current page with two neighbors on each
// side. Elided runs collapse to a single Ellipsis marker.
func Window(current, totalPages int) []int {
	if totalPages < 1 {
		return nil
	}

	out := make([]int, 0, totalPages)
	lastShown := 0
	for p := 1; p <= totalPages; p++ {
		show := p == 1 || p == totalPages || (p >= current-2 && p <= current+2)
		if !show {
			continue
		}
		if lastShown != 0 && p-lastShown > 1 {
			out = append(out, Ellipsis)
		}
		out = append(out, p)
		lastShown = p
	}
	return out
}
