package forms

import "fmt"

// ListField is an ordered, variable-length form field. Order is whatever the
// operator entered; no sorting or deduplication is applied.
type ListField[T any] struct {
	values []T
}

func NewListField[T any](values []T) *ListField[T] {
	return &ListField[T]{values: append([]T(nil), values...)}
}

func (f *ListField[T]) Len() int {
	return len(f.values)
}

// Values returns a copy; mutations go through the field's own operations.
func (f *ListField[T]) Values() []T {
	return append([]T(nil), f.values...)
}

func (f *ListField[T]) Append(value T) {
	f.values = append(f.values, value)
}

func (f *ListField[T]) RemoveAt(index int) error {
	if index < 0 || index >= len(f.values) {
		return fmt.Errorf("index %d out of range [0, %d)", index, len(f.values))
	}
	f.values = append(f.values[:index], f.values[index+1:]...)
	return nil
}

func (f *ListField[T]) ReplaceAt(index int, value T) error {
	if index < 0 || index >= len(f.values) {
		return fmt.Errorf("index %d out of range [0, %d)", index, len(f.values))
	}
	f.values[index] = value
	return nil
}
