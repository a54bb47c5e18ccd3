package tui

// Selection is an ordered collection with at most one selected index and
// cyclic navigation. It backs the folder list, the model table and the
// tenant picker. The zero value is an empty, unselected collection.
//
// Invariant: if selected >= 0 then selected < len(items). Navigation on an
// empty collection is a defined no-op, so wraparound arithmetic never sees
// len-1 of an empty list.
type Selection[T any] struct {
	items    []T
	selected int // -1 = no selection
}

// NewSelection creates an empty collection.
func NewSelection[T any]() *Selection[T] {
	return &Selection[T]{selected: -1}
}

// Items returns the backing slice. Callers must treat it as read-only.
func (s *Selection[T]) Items() []T {
	return s.items
}

// Len returns the number of items.
func (s *Selection[T]) Len() int {
	return len(s.items)
}

// SelectedIndex returns the selected index and whether one exists.
func (s *Selection[T]) SelectedIndex() (int, bool) {
	if s.selected < 0 {
		return 0, false
	}
	return s.selected, true
}

// Selected returns the selected item and whether one exists.
func (s *Selection[T]) Selected() (T, bool) {
	if s.selected < 0 {
		var zero T
		return zero, false
	}
	return s.items[s.selected], true
}

// Next selects the next item, wrapping to the first after the last.
// Without a selection it selects the first item. Empty: no-op.
func (s *Selection[T]) Next() {
	if len(s.items) == 0 {
		return
	}
	if s.selected < 0 {
		s.selected = 0
		return
	}
	if s.selected == len(s.items)-1 {
		s.selected = 0
		return
	}
	s.selected++
}

// Prev selects the previous item, wrapping to the last before the first.
// Without a selection it selects the first item. Empty: no-op.
func (s *Selection[T]) Prev() {
	if len(s.items) == 0 {
		return
	}
	if s.selected < 0 {
		s.selected = 0
		return
	}
	if s.selected == 0 {
		s.selected = len(s.items) - 1
		return
	}
	s.selected--
}

// First selects the first item. Empty: no-op.
func (s *Selection[T]) First() {
	if len(s.items) == 0 {
		return
	}
	s.selected = 0
}

// Last selects the last item. Empty: no-op, selection stays absent.
func (s *Selection[T]) Last() {
	if len(s.items) == 0 {
		return
	}
	s.selected = len(s.items) - 1
}

// Clear empties the collection and drops the selection.
func (s *Selection[T]) Clear() {
	s.items = nil
	s.selected = -1
}

// ReplaceAll swaps in a fresh item list, preserving argument order.
// Nothing is auto-selected.
func (s *Selection[T]) ReplaceAll(items []T) {
	s.items = make([]T, len(items))
	copy(s.items, items)
	s.selected = -1
}
