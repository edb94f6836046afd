package pagination

import (
	"iter"
)

// DefaultPerPage is the page size of a new iterator.
const DefaultPerPage = 15

// ArrayIterator walks a list of items and slices it into pages.
type ArrayIterator[T any] struct {
	items   []T
	cursor  int
	perPage int
}

// NewArrayIterator creates an iterator over items.
func NewArrayIterator[T any](items []T) *ArrayIterator[T] {
	it := &ArrayIterator[T]{perPage: DefaultPerPage}
	it.SetItems(items)
	return it
}

// SetItems replaces the items. The slice is copied.
func (it *ArrayIterator[T]) SetItems(items []T) {
	it.items = append([]T(nil), items...)
}

// Current returns the item under the cursor.
func (it *ArrayIterator[T]) Current() (T, bool) {
	if it.cursor < 0 || it.cursor >= len(it.items) {
		var zero T
		return zero, false
	}
	return it.items[it.cursor], true
}

// Next advances the cursor.
func (it *ArrayIterator[T]) Next() {
	it.cursor++
}

// Key returns the cursor position.
func (it *ArrayIterator[T]) Key() int {
	return it.cursor
}

// Valid reports whether the cursor points at an item.
func (it *ArrayIterator[T]) Valid() bool {
	return it.cursor < len(it.items)
}

// Rewind moves the cursor to the first item.
func (it *ArrayIterator[T]) Rewind() {
	it.cursor = 0
}

// TotalItems returns the number of items.
func (it *ArrayIterator[T]) TotalItems() int {
	return len(it.items)
}

// SetPerPage sets the page size.
func (it *ArrayIterator[T]) SetPerPage(perPage int) {
	it.perPage = perPage
}

// PerPage returns the page size.
func (it *ArrayIterator[T]) PerPage() int {
	return it.perPage
}

// SetCursor moves the cursor to position. Positions outside the items are
// refused and the cursor stays where it was.
func (it *ArrayIterator[T]) SetCursor(position int) bool {
	if position < 0 || position >= it.TotalItems() {
		return false
	}
	it.cursor = position
	return true
}

// TotalPages returns the number of pages, 0 when the page size is not positive.
func (it *ArrayIterator[T]) TotalPages() int {
	return totalPages(it.TotalItems(), it.perPage)
}

// ForPage returns the items of page. Pages start at 1; smaller values read
// the first page. The cursor is left on the last returned item.
func (it *ArrayIterator[T]) ForPage(page int) []T {
	if page <= 0 {
		page = 1
	}
	start, end := bounds(page, it.perPage)
	if end >= it.TotalItems() {
		end = it.TotalItems() - 1
	}

	out := make([]T, 0, max(end-start+1, 0))
	for i := start; i <= end; i++ {
		if !it.SetCursor(i) {
			break
		}
		item, _ := it.Current()
		out = append(out, item)
	}
	return out
}

// All yields every item with its position, independent of the cursor.
func (it *ArrayIterator[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range it.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

func totalPages(total, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// bounds returns the zero-based first and last index of page.
func bounds(page, perPage int) (start, end int) {
	start = page*perPage - perPage
	end = perPage + start - 1
	return start, end
}
