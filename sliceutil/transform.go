package sliceutil

import "github.com/go-softwarelab/common/pkg/is"

// ==========================================
//  Pure Functions (Happy Path)
// ==========================================

// Each calls visitor once for every element, in order.
func Each[T any](collection []T, visitor Visitor[T]) {
	if visitor == nil {
		panic(nilArgument("Each"))
	}
	for _, v := range collection {
		visitor(v)
	}
}

// Select returns a new slice with the elements that satisfy the predicate, in their original order.
// The result is empty, never nil, when nothing matches.
func Select[T any](collection []T, predicate Predicate[T]) []T {
	if predicate == nil {
		panic(nilArgument("Select"))
	}
	return filter(collection, predicate, true)
}

// Reject is the complement of Select: it keeps the elements that do not satisfy the predicate.
func Reject[T any](collection []T, predicate Predicate[T]) []T {
	if predicate == nil {
		panic(nilArgument("Reject"))
	}
	return filter(collection, predicate, false)
}

func filter[T any](collection []T, predicate Predicate[T], want bool) []T {
	if len(collection) == 0 {
		return []T{}
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	// Heuristic pre-allocation of capacity
	res := make([]T, 0, len(collection)/2)
	for _, v := range collection {
		if predicate(v) == want {
			res = append(res, v)
		}
	}
	return res
}

// Partition splits the collection into the elements that satisfy the predicate and those that don't.
// The predicate runs once per element. Both halves keep the original relative order,
// and are allocated with their exact size.
func Partition[T any](collection []T, predicate Predicate[T]) (selected, rejected []T) {
	if predicate == nil {
		panic(nilArgument("Partition"))
	}
	if len(collection) == 0 {
		return []T{}, []T{}
	}
	_ = collection[len(collection)-1]

	hits := make([]bool, len(collection))
	n := 0
	for i, v := range collection {
		if predicate(v) {
			hits[i] = true
			n++
		}
	}

	selected = make([]T, 0, n)
	rejected = make([]T, 0, len(collection)-n)
	for i, v := range collection {
		if hits[i] {
			selected = append(selected, v)
		} else {
			rejected = append(rejected, v)
		}
	}
	return selected, rejected
}

// Map transforms a slice of type T to a slice of type R of the same length.
func Map[T any, R any](collection []T, transform Transform[T, R]) []R {
	if transform == nil {
		panic(nilArgument("Map"))
	}
	if len(collection) == 0 {
		return []R{}
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	// Pre-allocate result slice
	res := make([]R, len(collection))
	for i, v := range collection {
		res[i] = transform(v)
	}
	return res
}

// MapStrict is Map for transforms whose result type can hold nil.
// A nil pointer, interface, map, slice, channel or func result fails with ErrInvalidTransformResult.
// Callers that mean "nothing" for an element must return an explicit placeholder value.
func MapStrict[T any, R any](collection []T, transform Transform[T, R]) ([]R, error) {
	if transform == nil {
		return nil, nilArgument("MapStrict")
	}
	res := make([]R, len(collection))
	for i, v := range collection {
		r := transform(v)
		if is.Nil(r) {
			return nil, InvalidTransformResultError("sliceutil", "MapStrict", i)
		}
		res[i] = r
	}
	return res, nil
}

// Reduce reduces a slice of type T to a single value of type R, folding from the left.
// An empty slice returns initial unchanged.
func Reduce[T any, R any](collection []T, initial R, accumulator Accumulator[R, T]) R {
	if accumulator == nil {
		panic(nilArgument("Reduce"))
	}
	if len(collection) == 0 {
		return initial
	}

	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	result := initial
	for _, item := range collection {
		result = accumulator(result, item)
	}
	return result
}

// ==========================================
// Try Functions (Error Handling)
// Suitable for scenarios where errors may occur (Fail Fast)
// ==========================================

// TryEach calls visitor for every element and stops at the first error.
func TryEach[T any](collection []T, visitor VisitorE[T]) error {
	if visitor == nil {
		return nilArgument("TryEach")
	}
	for _, v := range collection {
		if err := visitor(v); err != nil {
			return err
		}
	}
	return nil
}

// TrySelect similar to Select, but predicate may return an error.
// Returns immediately upon encountering an error.
func TrySelect[T any](collection []T, predicate PredicateE[T]) ([]T, error) {
	if predicate == nil {
		return nil, nilArgument("TrySelect")
	}
	return tryFilter(collection, predicate, true)
}

// TryReject similar to Reject, but predicate may return an error.
func TryReject[T any](collection []T, predicate PredicateE[T]) ([]T, error) {
	if predicate == nil {
		return nil, nilArgument("TryReject")
	}
	return tryFilter(collection, predicate, false)
}

func tryFilter[T any](collection []T, predicate PredicateE[T], want bool) ([]T, error) {
	if len(collection) == 0 {
		return []T{}, nil
	}
	_ = collection[len(collection)-1]

	res := make([]T, 0, len(collection)/2)
	for _, v := range collection {
		ok, err := predicate(v)
		if err != nil {
			return nil, err
		}
		if ok == want {
			res = append(res, v)
		}
	}
	return res, nil
}

// TryMap similar to Map, but transform may return an error.
func TryMap[T any, R any](collection []T, transform TransformE[T, R]) ([]R, error) {
	if transform == nil {
		return nil, nilArgument("TryMap")
	}
	if len(collection) == 0 {
		return []R{}, nil
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	res := make([]R, len(collection))
	for i, v := range collection {
		var err error
		res[i], err = transform(v)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// TryReduce similar to Reduce, but accumulator may return an error.
// On error the value accumulated so far is returned along with it.
func TryReduce[T any, R any](collection []T, initial R, accumulator AccumulatorE[R, T]) (R, error) {
	if accumulator == nil {
		return initial, nilArgument("TryReduce")
	}
	if len(collection) == 0 {
		return initial, nil
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	result := initial
	for _, item := range collection {
		next, err := accumulator(result, item)
		if err != nil {
			return result, err
		}
		result = next
	}
	return result, nil
}
