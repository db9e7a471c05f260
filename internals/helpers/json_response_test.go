package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	if p.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Fatalf("page 2 of 3 must have both neighbours: %+v", p)
	}

	empty := BuildPaginationFromPage(0, 1, 20)
	if empty.TotalPages != 1 {
		t.Fatalf("empty result still reports 1 page, got %d", empty.TotalPages)
	}
	if empty.HasNext || empty.HasPrev {
		t.Fatalf("single page has no neighbours: %+v", empty)
	}
}

func TestBuildPaginationDefaults(t *testing.T) {
	p := BuildPaginationFromPage(10, 0, 0)
	if p.Page != 1 || p.PerPage != 20 {
		t.Fatalf("zero inputs must fall back to defaults, got page=%d per_page=%d", p.Page, p.PerPage)
	}
}
