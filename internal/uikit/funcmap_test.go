// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package uikit

import (
	"database/sql"
	"html/template"
	"net/url"
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	funcs := TemplateFuncs()
	truncate := funcs["truncate"].(func(string, int) string)

	tests := []struct {
		s      string
		length int
		want   string
	}{
		{"hello", 10, "hello"},
		{"hello world", 5, "hello..."},
		{"", 5, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.s, tt.length); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.s, tt.length, got, tt.want)
		}
	}
}

func TestContains(t *testing.T) {
	contains := TemplateFuncs()["contains"].(func([]string, string) bool)

	if !contains([]string{"a", "b"}, "b") {
		t.Error("contains should find existing element")
	}
	if contains([]string{"a", "b"}, "c") {
		t.Error("contains should not find absent element")
	}
	if contains(nil, "a") {
		t.Error("contains on nil slice should be false")
	}
}

func TestFormatNullTime(t *testing.T) {
	format := TemplateFuncs()["formatNullTime"].(func(sql.NullTime) string)

	if got := format(sql.NullTime{}); got != "" {
		t.Errorf("invalid time formatted as %q, want empty", got)
	}
	ts := sql.NullTime{Time: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), Valid: true}
	if got := format(ts); got != "Mar 15, 2026" {
		t.Errorf("got %q, want %q", got, "Mar 15, 2026")
	}
}

func TestToJSON(t *testing.T) {
	toJSON := TemplateFuncs()["toJSON"].(func(any) template.JS)

	if got := toJSON([]string{"a", "b"}); got != `["a","b"]` {
		t.Errorf("toJSON = %s", got)
	}
	// Unmarshalable values degrade to an empty array, not a panic.
	if got := toJSON(make(chan int)); got != "[]" {
		t.Errorf("toJSON(chan) = %s, want []", got)
	}
}

func TestFormatBytes(t *testing.T) {
	formatBytes := TemplateFuncs()["formatBytes"].(func(int64) string)

	tests := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDict(t *testing.T) {
	dict := TemplateFuncs()["dict"].(func(...any) map[string]any)

	d := dict("a", 1, "b", "two")
	if d["a"] != 1 || d["b"] != "two" {
		t.Errorf("unexpected dict: %v", d)
	}
	if dict("odd") != nil {
		t.Error("odd argument count should return nil")
	}
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(2, 95, 20, "/admin/events", url.Values{"category": {"auth"}, "page": {"2"}})

	if p.TotalPages != 5 {
		t.Errorf("TotalPages = %d, want 5", p.TotalPages)
	}
	if !p.HasPrev || !p.HasNext {
		t.Error("page 2 of 5 should have prev and next")
	}
	if p.QueryString != "category=auth" {
		t.Errorf("QueryString = %q, page param should be stripped", p.QueryString)
	}
	if want := "/admin/events?category=auth&page=3"; p.NextURL() != want {
		t.Errorf("NextURL = %q, want %q", p.NextURL(), want)
	}
	if p.PageRange() != "21-40" {
		t.Errorf("PageRange = %q, want 21-40", p.PageRange())
	}
}

func TestBuildPaginationEllipsis(t *testing.T) {
	p := BuildPagination(10, 400, 20, "/admin/events", nil)

	if len(p.Pages) == 0 {
		t.Fatal("no pages built")
	}
	// First and last always present, with ellipsis between the window
	// and the edges.
	if p.Pages[0].Number != 1 {
		t.Errorf("first link = %d, want 1", p.Pages[0].Number)
	}
	if last := p.Pages[len(p.Pages)-1]; last.Number != 20 {
		t.Errorf("last link = %d, want 20", last.Number)
	}
	ellipses := 0
	for _, page := range p.Pages {
		if page.IsEllipsis {
			ellipses++
		}
	}
	if ellipses != 2 {
		t.Errorf("ellipses = %d, want 2", ellipses)
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		page, total, want int
	}{
		{0, 5, 1},
		{3, 5, 3},
		{9, 5, 5},
	}
	for _, tt := range tests {
		if got := ClampPage(tt.page, tt.total); got != tt.want {
			t.Errorf("ClampPage(%d, %d) = %d, want %d", tt.page, tt.total, got, tt.want)
		}
	}
}
