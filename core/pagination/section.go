package pagination

import (
	"encoding/json"
	"slices"
)

// Section holds one page of a larger result set together with the numbers
// needed to render pagination: total item count, page and page size.
type Section[T any] struct {
	totalItems int
	page       int
	perPage    int
	cursor     int
	items      []T
}

// NewSection creates an empty section for a result set of totalItems.
func NewSection[T any](totalItems int) *Section[T] {
	return &Section[T]{
		totalItems: totalItems,
		page:       1,
		perPage:    DefaultPerPage,
	}
}

// SectionOf slices page out of items.
func SectionOf[T any](items []T, page, perPage int) *Section[T] {
	it := NewArrayIterator(items)
	it.SetPerPage(perPage)

	s := NewSection[T](it.TotalItems())
	s.SetPerPage(perPage)
	s.SetPage(page)
	s.SetSection(it.ForPage(s.Page()))
	return s
}

// TotalItems returns the size of the whole result set.
func (s *Section[T]) TotalItems() int {
	return s.totalItems
}

// SetTotalItems overrides the size of the whole result set.
func (s *Section[T]) SetTotalItems(totalItems int) {
	s.totalItems = totalItems
}

// SetPage sets the current page and rewinds. Pages below 1 become 1.
func (s *Section[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.page = page
	s.Rewind()
}

// Page returns the current page.
func (s *Section[T]) Page() int {
	return s.page
}

// SetPerPage sets the page size.
func (s *Section[T]) SetPerPage(perPage int) {
	s.perPage = perPage
}

// PerPage returns the page size.
func (s *Section[T]) PerPage() int {
	return s.perPage
}

// Start returns the zero-based index of the page's first item in the result set.
func (s *Section[T]) Start() int {
	start, _ := bounds(s.page, s.perPage)
	return start
}

// End returns the zero-based index of the page's last item in the result set.
func (s *Section[T]) End() int {
	_, end := bounds(s.page, s.perPage)
	return end
}

// TotalPages returns the number of pages of the whole result set.
func (s *Section[T]) TotalPages() int {
	return totalPages(s.totalItems, s.perPage)
}

// HasPrev reports whether a page precedes the current one.
func (s *Section[T]) HasPrev() bool {
	return s.page > 1
}

// HasNext reports whether a page follows the current one.
func (s *Section[T]) HasNext() bool {
	return s.page < s.TotalPages()
}

// SetSection replaces the items of the current page.
func (s *Section[T]) SetSection(items []T) {
	s.items = items
}

// Items returns the items of the current page.
func (s *Section[T]) Items() []T {
	return s.items
}

// Current returns the item under the cursor.
func (s *Section[T]) Current() (T, bool) {
	return s.OffsetGet(s.cursor)
}

// Next advances the cursor.
func (s *Section[T]) Next() {
	s.cursor++
}

// Key returns the cursor position.
func (s *Section[T]) Key() int {
	return s.cursor
}

// Rewind moves the cursor to the first item.
func (s *Section[T]) Rewind() {
	s.cursor = 0
}

// Valid reports whether the cursor points into the page.
func (s *Section[T]) Valid() bool {
	return s.cursor < len(s.items)
}

// SetCursor moves the cursor. Positions outside the result set are refused.
func (s *Section[T]) SetCursor(position int) bool {
	if position < 0 || position >= s.totalItems {
		return false
	}
	s.cursor = position
	return true
}

// OffsetExists reports whether the page has an item at offset.
func (s *Section[T]) OffsetExists(offset int) bool {
	return offset >= 0 && offset < len(s.items)
}

// OffsetGet returns the item at offset.
func (s *Section[T]) OffsetGet(offset int) (T, bool) {
	if !s.OffsetExists(offset) {
		var zero T
		return zero, false
	}
	return s.items[offset], true
}

// OffsetSet replaces the item at offset, or appends it when offset equals
// Count. Other offsets are ignored.
func (s *Section[T]) OffsetSet(offset int, value T) bool {
	switch {
	case s.OffsetExists(offset):
		s.items[offset] = value
	case offset == len(s.items):
		s.items = append(s.items, value)
	default:
		return false
	}
	return true
}

// OffsetUnset removes the item at offset. Later items move up by one.
func (s *Section[T]) OffsetUnset(offset int) {
	if s.OffsetExists(offset) {
		s.items = slices.Delete(s.items, offset, offset+1)
	}
}

// Count returns the number of items on the page.
func (s *Section[T]) Count() int {
	return len(s.items)
}

type sectionJSON[T any] struct {
	LastPage     int  `json:"lastPage"`
	HasPrev      bool `json:"hasPrev"`
	HasNext      bool `json:"hasNext"`
	TotalEntries int  `json:"totalEntries"`
	ItemsPerPage int  `json:"itemsPerPage"`
	Page         int  `json:"page"`
	Entries      []T  `json:"entries"`
}

// MarshalJSON encodes the page with its pagination numbers.
func (s *Section[T]) MarshalJSON() ([]byte, error) {
	entries := s.items
	if entries == nil {
		entries = []T{}
	}
	return json.Marshal(sectionJSON[T]{
		LastPage:     s.TotalPages(),
		HasPrev:      s.HasPrev(),
		HasNext:      s.HasNext(),
		TotalEntries: s.totalItems,
		ItemsPerPage: s.perPage,
		Page:         s.page,
		Entries:      entries,
	})
}

// ToJSON returns the JSON encoding of the section.
func (s *Section[T]) ToJSON() (string, error) {
	data, err := s.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(data), nil
}
