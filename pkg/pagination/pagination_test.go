package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateClampsParams(t *testing.T) {
	p := &PaginationParams{Page: 0, PerPage: 500}
	p.Validate()

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PerPage)

	p = &PaginationParams{Page: -2, PerPage: 0}
	p.Validate()

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 15, p.PerPage)
}

func TestOffset(t *testing.T) {
	p := &PaginationParams{Page: 3, PerPage: 15}
	assert.Equal(t, 30, p.Offset())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, TotalPages(31, 15))
	assert.Equal(t, 2, TotalPages(30, 15))
	assert.Equal(t, 0, TotalPages(0, 15))
	assert.Equal(t, 0, TotalPages(10, 0))
}

func TestNewPagination(t *testing.T) {
	pag := NewPagination(2, 15, 68)

	assert.Equal(t, 2, pag.CurrentPage)
	assert.Equal(t, 5, pag.TotalPages)
	assert.True(t, pag.HasNext)
	assert.True(t, pag.HasPrev)

	last := NewPagination(5, 15, 68)
	assert.False(t, last.HasNext)
}
