package queries

import (
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// Page bounds a list query. A zero limit selects DefaultPageSize.
type Page struct {
	limit  int
	offset int
}

func NewPage(limit, offset int) (Page, error) {
	if limit == 0 {
		limit = DefaultPageSize
	}
	if limit < 1 || limit > MaxPageSize {
		return Page{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageSize)
	}
	if offset < 0 {
		return Page{}, errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}
	return Page{limit: limit, offset: offset}, nil
}

func DefaultPage() Page {
	return Page{limit: DefaultPageSize}
}

func (p Page) Limit() int  { return p.limit }
func (p Page) Offset() int { return p.offset }

func (p Page) apply(db *gorm.DB) *gorm.DB {
	if p.limit == 0 {
		p.limit = DefaultPageSize
	}
	return db.Limit(p.limit).Offset(p.offset)
}
