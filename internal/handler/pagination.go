package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ErrorResponse is the JSON error body of the listing endpoint.
type ErrorResponse struct {
	Error string `json:"error" example:"Failed to retrieve games"`
}

// PaginationMeta describes where a page sits in the full result set.
type PaginationMeta struct {
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
}

// PaginatedResponse wraps one page of rows with its metadata.
type PaginatedResponse[T any] struct {
	Data []T            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// Page is a 1-based page request.
type Page struct {
	Number int
	Size   int
}

// PageFromQuery reads ?page= and ?limit=. Unparseable or out of range values
// fall back to the defaults; limit is capped at maxPageSize.
func PageFromQuery(c *gin.Context) Page {
	p := Page{Number: 1, Size: defaultPageSize}
	if n, err := strconv.Atoi(c.Query("page")); err == nil && n > 0 {
		p.Number = n
	}
	if n, err := strconv.Atoi(c.Query("limit")); err == nil && n > 0 {
		p.Size = min(n, maxPageSize)
	}
	return p
}

func (p Page) offset() int {
	return (p.Number - 1) * p.Size
}

// NewPaginatedResponse builds the envelope. A nil slice is rendered as [].
func NewPaginatedResponse[T any](data []T, totalItems int64, p Page) PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}
	size := max(p.Size, 1)
	return PaginatedResponse[T]{
		Data: data,
		Meta: PaginationMeta{
			TotalItems:  totalItems,
			TotalPages:  int((totalItems + int64(size) - 1) / int64(size)),
			CurrentPage: p.Number,
			PageSize:    size,
		},
	}
}

// Paginate counts the rows matched by db and loads page p of them.
func Paginate[T any](db *gorm.DB, p Page) (*PaginatedResponse[T], error) {
	// Count and Find must not share statement state.
	db = db.Session(&gorm.Session{})

	var total int64
	if err := db.Model(new(T)).Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []T
	if err := db.Offset(p.offset()).Limit(p.Size).Find(&rows).Error; err != nil {
		return nil, err
	}

	resp := NewPaginatedResponse(rows, total, p)
	return &resp, nil
}
