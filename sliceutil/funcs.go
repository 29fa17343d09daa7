package sliceutil

// Visitor is called for its side effects on a single element.
type Visitor[T any] = func(T)

// Predicate reports whether an element satisfies a condition.
type Predicate[T any] = func(T) bool

// Transform maps one element to exactly one result.
type Transform[T any, R any] = func(T) R

// Accumulator folds the next element into the running value.
type Accumulator[R any, T any] = func(R, T) R

// Fallible counterparts used by the Try family.
type (
	VisitorE[T any]            = func(T) error
	PredicateE[T any]          = func(T) (bool, error)
	TransformE[T any, R any]   = func(T) (R, error)
	AccumulatorE[R any, T any] = func(R, T) (R, error)
)

// Not returns a predicate that negates p.
func Not[T any](p Predicate[T]) Predicate[T] {
	if p == nil {
		panic(nilArgument("Not"))
	}
	return func(v T) bool {
		return !p(v)
	}
}
