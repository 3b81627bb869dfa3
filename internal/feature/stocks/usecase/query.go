package usecase

const (
	// DefaultPageSize is the page size used when the caller omits one.
	DefaultPageSize = 20
	// MaxPageSize caps the page size a caller may request.
	MaxPageSize = 100

	// SortBySymbol orders results by ticker symbol.
	SortBySymbol = "symbol"
	// SortByMarketCap orders results by market capitalization.
	SortByMarketCap = "market_cap"
)

// Query describes the filter, sort and page bounds of a catalog read.
// Filters are conjunctive, case-insensitive substring matches; an
// empty filter is a no-op. The zero value is a valid "first page of
// everything" query once Normalize has run.
type Query struct {
	Symbol      string // substring filter on the ticker symbol
	CompanyName string // substring filter on the company name
	SortBy      string // SortBySymbol, SortByMarketCap or empty (id order)
	Descending  bool
	Page        int // 1-based
	PageSize    int
}

// Normalize clamps the page bounds into their valid ranges. Page
// numbers below 1 are clamped to 1 rather than rejected; a page past
// the end of the result set simply yields an empty slice.
func (q *Query) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > MaxPageSize {
		q.PageSize = DefaultPageSize
	}
}

// Validate checks the sort field against the sortable set. It runs
// before any store access so a bad query never touches the database.
func (q Query) Validate() error {
	switch q.SortBy {
	case "", SortBySymbol, SortByMarketCap:
		return nil
	default:
		return ErrInvalidSortField
	}
}

// Offset returns the number of records to skip for the requested page.
func (q Query) Offset() int {
	return (q.Page - 1) * q.PageSize
}
