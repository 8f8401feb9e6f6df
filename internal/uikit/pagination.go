// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package uikit

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Pagination holds paging data for admin list templates.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalItems  int64
	PerPage     int
	HasPrev     bool
	HasNext     bool
	Pages       []Page
	BaseURL     string
	QueryString string
}

// Page is a single page link.
type Page struct {
	Number     int
	URL        string
	IsCurrent  bool
	IsEllipsis bool
}

// BuildPagination creates paging data for an admin list. baseURL is
// the path without query string; queryParams are preserved on every
// page link (minus any existing page parameter).
func BuildPagination(currentPage, totalItems, perPage int, baseURL string, queryParams url.Values) Pagination {
	totalPages := CalculateTotalPages(totalItems, perPage)

	p := Pagination{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		TotalItems:  int64(totalItems),
		PerPage:     perPage,
		HasPrev:     currentPage > 1,
		HasNext:     currentPage < totalPages,
		BaseURL:     baseURL,
	}

	if queryParams != nil {
		kept := make(url.Values)
		for k, v := range queryParams {
			if k != "page" && len(v) > 0 && v[0] != "" {
				kept[k] = v
			}
		}
		if len(kept) > 0 {
			p.QueryString = kept.Encode()
		}
	}

	p.Pages = buildPages(currentPage, totalPages, p.PageURL)
	return p
}

// PageURL returns the link for a page number.
func (p Pagination) PageURL(page int) string {
	if p.QueryString != "" {
		return fmt.Sprintf("%s?%s&page=%d", p.BaseURL, p.QueryString, page)
	}
	return fmt.Sprintf("%s?page=%d", p.BaseURL, page)
}

// PrevURL returns the link for the previous page.
func (p Pagination) PrevURL() string { return p.PageURL(p.CurrentPage - 1) }

// NextURL returns the link for the next page.
func (p Pagination) NextURL() string { return p.PageURL(p.CurrentPage + 1) }

// ShouldShow reports whether the pager is worth rendering.
func (p Pagination) ShouldShow() bool { return p.TotalPages > 1 }

// PageRange describes the items shown on the current page, e.g. "21-40".
func (p Pagination) PageRange() string {
	start := (p.CurrentPage-1)*p.PerPage + 1
	end := p.CurrentPage * p.PerPage
	if end > int(p.TotalItems) {
		end = int(p.TotalItems)
	}
	return fmt.Sprintf("%d-%d", start, end)
}

// buildPages generates up to five page links centered on the current
// page, with ellipsis entries for gaps; the first and last pages are
// always present.
func buildPages(currentPage, totalPages int, pageURL func(int) string) []Page {
	start := currentPage - 2
	end := currentPage + 2
	if start < 1 {
		start = 1
		end = 5
	}
	if end > totalPages {
		end = totalPages
		start = end - 4
		if start < 1 {
			start = 1
		}
	}

	var pages []Page
	if start > 1 {
		pages = append(pages, Page{Number: 1, URL: pageURL(1)})
		if start > 2 {
			pages = append(pages, Page{IsEllipsis: true})
		}
	}
	for i := start; i <= end; i++ {
		pages = append(pages, Page{Number: i, URL: pageURL(i), IsCurrent: i == currentPage})
	}
	if end < totalPages {
		if end < totalPages-1 {
			pages = append(pages, Page{IsEllipsis: true})
		}
		pages = append(pages, Page{Number: totalPages, URL: pageURL(totalPages)})
	}
	return pages
}

// CalculateTotalPages returns the page count for the given totals,
// never less than one.
func CalculateTotalPages(totalItems, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	totalPages := (totalItems + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	return totalPages
}

// ClampPage bounds page to [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// ParsePageParam reads the "page" query parameter, defaulting to 1.
func ParsePageParam(r *http.Request) int {
	return ParseIntParam(r, "page", 1, 1, 0)
}

// ParseIntParam reads an integer query parameter with bounds. Missing,
// invalid, or out-of-range values return defaultVal. A maxVal of 0
// means unbounded.
func ParseIntParam(r *http.Request, param string, defaultVal, minVal, maxVal int) int {
	str := r.URL.Query().Get(param)
	if str == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(str)
	if err != nil {
		return defaultVal
	}
	if minVal > 0 && val < minVal {
		return defaultVal
	}
	if maxVal > 0 && val > maxVal {
		return defaultVal
	}
	return val
}
