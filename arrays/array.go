// Package arrays provides Array, an immutable ordered container, together with
// block-style iteration methods on it.
//
// Operations that produce a sequence return a new Array; the receiver is never
// modified. Map and Reduce change the element type and are therefore package
// functions rather than methods.
package arrays

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

var (
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)

// Array is a read-only, ordered sequence of T.
// The zero value is an empty array ready to use.
type Array[T any] struct {
	data []T
}

// Of returns an Array holding values in the given order.
func Of[T any](values ...T) *Array[T] {
	return From(values)
}

// From returns an Array holding a copy of values.
// Later changes to values are not visible through the Array.
func From[T any](values []T) *Array[T] {
	return &Array[T]{data: slices.Clone(values)}
}

// wrap adopts data without copying. Only used for slices nobody else references.
func wrap[T any](data []T) *Array[T] {
	return &Array[T]{data: data}
}

func (a *Array[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(a.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return a.data[index], nil
}

func (a *Array[T]) First() (T, error) {
	return a.Get(0)
}

func (a *Array[T]) Last() (T, error) {
	return a.Get(len(a.data) - 1)
}

func (a *Array[T]) Len() int {
	return len(a.data)
}

func (a *Array[T]) IsEmpty() bool {
	return len(a.data) == 0
}

// ToSlice returns a copy of the elements.
// This is an "escape hatch" for falling back to standard library operations.
func (a *Array[T]) ToSlice() []T {
	if len(a.data) == 0 {
		return []T{}
	}
	return slices.Clone(a.data)
}

// Clone returns a shallow copy of the array.
// Note: If T is a pointer or reference type, the referenced data is shared.
func (a *Array[T]) Clone() *Array[T] {
	return From(a.data)
}

// String implements fmt.Stringer for easier debugging.
func (a *Array[T]) String() string {
	return fmt.Sprintf("%v", a.data)
}

func (a *Array[T]) Values() iter.Seq[T] {
	return slices.Values(a.data)
}

func (a *Array[T]) All() iter.Seq2[int, T] {
	return slices.All(a.data)
}

func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(a.data)
}

// Equal reports whether two arrays hold the same elements in the same order.
// It is a standalone function because it requires T to be comparable.
func Equal[T comparable](a, b *Array[T]) bool {
	return slices.Equal(a.data, b.data)
}
