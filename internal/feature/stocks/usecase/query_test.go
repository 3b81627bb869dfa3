package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestQuery_Normalize verifies that page bounds are clamped rather
// than rejected.
func TestQuery_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		query        Query
		expectedPage int
		expectedSize int
	}{
		{
			name:         "zero value becomes first page with default size",
			query:        Query{},
			expectedPage: 1,
			expectedSize: DefaultPageSize,
		},
		{
			name:         "negative page is clamped to 1",
			query:        Query{Page: -3, PageSize: 10},
			expectedPage: 1,
			expectedSize: 10,
		},
		{
			name:         "oversized page size falls back to the default",
			query:        Query{Page: 2, PageSize: MaxPageSize + 1},
			expectedPage: 2,
			expectedSize: DefaultPageSize,
		},
		{
			name:         "valid bounds pass through unchanged",
			query:        Query{Page: 3, PageSize: MaxPageSize},
			expectedPage: 3,
			expectedSize: MaxPageSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := tt.query
			q.Normalize()

			assert.Equal(t, tt.expectedPage, q.Page)
			assert.Equal(t, tt.expectedSize, q.PageSize)
		})
	}
}

// TestQuery_Validate verifies the sortable-field check.
func TestQuery_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Query{}.Validate())
	assert.NoError(t, Query{SortBy: SortBySymbol}.Validate())
	assert.NoError(t, Query{SortBy: SortByMarketCap}.Validate())
	assert.ErrorIs(t, Query{SortBy: "purchase"}.Validate(), ErrInvalidSortField)
}

// TestQuery_Offset verifies the page-to-offset translation.
func TestQuery_Offset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Query{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 40, Query{Page: 3, PageSize: 20}.Offset())
}
