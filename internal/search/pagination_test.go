package search

import "testing"

func TestEmptyPagination(t *testing.T) {
	p := emptyPagination()

	if p.CurrentPage != 1 || p.TotalPages != 1 || p.TotalResults != 0 {
		t.Fatalf("unexpected empty pagination: %+v", p)
	}
	if p.HasNextPage || p.HasPreviousPage {
		t.Fatalf("empty pagination must not report paging: %+v", p)
	}
	if p.ResultsPerPage != 20 {
		t.Fatalf("resultsPerPage = %d, want 20", p.ResultsPerPage)
	}
}

func TestFreshPagination(t *testing.T) {
	p := freshPagination(20, true)

	if p.CurrentPage != 1 {
		t.Fatalf("CurrentPage = %d, want 1", p.CurrentPage)
	}
	if p.TotalResults != 20 || p.TotalPages != 1 {
		t.Fatalf("totals wrong: %+v", p)
	}
	if !p.HasNextPage {
		t.Fatal("expected HasNextPage true")
	}
	if p.HasPreviousPage {
		t.Fatal("HasPreviousPage must always be false")
	}
}

func TestFreshPaginationShortPage(t *testing.T) {
	// A post-filtered page can be smaller than the provider page size while
	// more provider pages remain.
	p := freshPagination(7, true)

	if p.TotalResults != 7 || p.TotalPages != 1 {
		t.Fatalf("totals wrong: %+v", p)
	}
	if !p.HasNextPage {
		t.Fatal("a short filtered page must still report HasNextPage when a token exists")
	}
}

func TestAdvanceAccumulates(t *testing.T) {
	p := freshPagination(20, true)
	p = p.advance(38, true)

	if p.CurrentPage != 2 {
		t.Fatalf("CurrentPage = %d, want 2", p.CurrentPage)
	}
	if p.TotalResults != 38 || p.TotalPages != 2 {
		t.Fatalf("totals wrong: %+v", p)
	}
	if p.HasPreviousPage {
		t.Fatal("HasPreviousPage must always be false")
	}

	p = p.advance(52, false)
	if p.CurrentPage != 3 || p.TotalResults != 52 || p.TotalPages != 3 {
		t.Fatalf("totals wrong after final page: %+v", p)
	}
	if p.HasNextPage {
		t.Fatal("expected HasNextPage false on final page")
	}
}

func TestPageCountFloorsAtOne(t *testing.T) {
	if got := pageCount(0); got != 1 {
		t.Fatalf("pageCount(0) = %d, want 1", got)
	}
	if got := pageCount(20); got != 1 {
		t.Fatalf("pageCount(20) = %d, want 1", got)
	}
	if got := pageCount(21); got != 2 {
		t.Fatalf("pageCount(21) = %d, want 2", got)
	}
}
