package sliceutil

import "github.com/go-softwarelab/common/pkg/optional"

// Match returns the first element that satisfies the predicate.
// Iteration stops at the first hit. Returns the zero value and false if nothing matches.
func Match[T any](collection []T, predicate Predicate[T]) (T, bool) {
	if predicate == nil {
		panic(nilArgument("Match"))
	}
	var target T
	if len(collection) == 0 {
		return target, false
	}
	_ = collection[len(collection)-1] // BCE hint
	for _, v := range collection {
		if predicate(v) {
			return v, true
		}
	}
	return target, false
}

// MatchIndex returns the index of the first element that satisfies the predicate, or -1.
func MatchIndex[T any](collection []T, predicate Predicate[T]) int {
	if predicate == nil {
		panic(nilArgument("MatchIndex"))
	}
	if len(collection) == 0 {
		return -1
	}
	_ = collection[len(collection)-1]

	for i, item := range collection {
		if predicate(item) {
			return i
		}
	}
	return -1
}

// MatchOptional is Match with the result wrapped in an optional.Value.
// A matching element that is itself nil is still reported as present.
func MatchOptional[T any](collection []T, predicate Predicate[T]) optional.Value[T] {
	if predicate == nil {
		panic(nilArgument("MatchOptional"))
	}
	if v, ok := Match(collection, predicate); ok {
		return optional.Some(v)
	}
	return optional.Empty[T]()
}

// TryMatch is Match with a predicate that may fail.
// The predicate error is returned unchanged and stops the search.
func TryMatch[T any](collection []T, predicate PredicateE[T]) (T, bool, error) {
	var target T
	if predicate == nil {
		return target, false, nilArgument("TryMatch")
	}
	for _, v := range collection {
		ok, err := predicate(v)
		if err != nil {
			return target, false, err
		}
		if ok {
			return v, true, nil
		}
	}
	return target, false, nil
}
