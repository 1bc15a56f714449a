package search

// resultsPerPage is the provider's fixed page size.
const resultsPerPage = 20

// PaginationInfo describes the state of an incrementally loaded result list.
// It is derived from the latest fetch, never independently mutated. The
// provider exposes no authoritative total up front, so totals reflect the
// records gathered so far. There is no backward paging; HasPreviousPage is
// always false.
type PaginationInfo struct {
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	TotalResults    int  `json:"totalResults"`
	ResultsPerPage  int  `json:"resultsPerPage"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// emptyPagination is the state before any fetch.
func emptyPagination() PaginationInfo {
	return PaginationInfo{
		CurrentPage:    1,
		TotalPages:     1,
		ResultsPerPage: resultsPerPage,
	}
}

// freshPagination derives pagination from the first (filtered) page.
func freshPagination(pageSize int, hasNext bool) PaginationInfo {
	return PaginationInfo{
		CurrentPage:    1,
		TotalPages:     pageCount(pageSize),
		TotalResults:   pageSize,
		ResultsPerPage: resultsPerPage,
		HasNextPage:    hasNext,
	}
}

// advance derives pagination after appending a page, from the cumulative
// count of records gathered so far.
func (p PaginationInfo) advance(cumulative int, hasNext bool) PaginationInfo {
	return PaginationInfo{
		CurrentPage:    p.CurrentPage + 1,
		TotalPages:     pageCount(cumulative),
		TotalResults:   cumulative,
		ResultsPerPage: resultsPerPage,
		HasNextPage:    hasNext,
	}
}

func pageCount(total int) int {
	pages := (total + resultsPerPage - 1) / resultsPerPage
	if pages < 1 {
		return 1
	}
	return pages
}
