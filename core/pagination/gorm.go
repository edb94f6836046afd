package pagination

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Scope limits a query to page. A page size of zero or less leaves the query
// unlimited.
func Scope(page, perPage int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if perPage <= 0 {
			return db
		}
		if page < 1 {
			page = 1
		}
		start, _ := bounds(page, perPage)
		return db.Offset(start).Limit(perPage)
	}
}

// LoadSection counts the rows matched by db and loads page of them.
// db may carry conditions; it is reused for both queries.
func LoadSection[T any](ctx context.Context, db *gorm.DB, page, perPage int) (*Section[T], error) {
	query := db.WithContext(ctx)

	var model T
	var total int64
	if err := query.Model(&model).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count rows: %w", err)
	}

	s := NewSection[T](int(total))
	s.SetPerPage(perPage)
	s.SetPage(page)

	var rows []T
	if start := s.Start(); total > 0 && start >= 0 && start < int(total) {
		// The page size comes from the caller and may be unbounded.
		size := int(total) - start
		if s.PerPage() > 0 {
			size = min(size, s.PerPage())
		}
		rows = make([]T, 0, size)
		if err := query.Scopes(Scope(s.Page(), s.PerPage())).Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to load page %d: %w", s.Page(), err)
		}
	}
	s.SetSection(rows)
	return s, nil
}
