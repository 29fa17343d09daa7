package arrays

import (
	"github.com/go-softwarelab/common/pkg/optional"

	"arrayblocks/sliceutil"
)

func nilArgument(op string) error {
	return sliceutil.NilArgumentError("arrays", op)
}

// check panics unless both the receiver and the function are present.
func check[T any](a *Array[T], fnIsNil bool, op string) {
	if a == nil || fnIsNil {
		panic(nilArgument(op))
	}
}

// Each calls visitor with every element, in order.
func (a *Array[T]) Each(visitor sliceutil.Visitor[T]) {
	check(a, visitor == nil, "Each")
	sliceutil.Each(a.data, visitor)
}

// Match returns the first element that satisfies the predicate.
func (a *Array[T]) Match(predicate sliceutil.Predicate[T]) (T, bool) {
	check(a, predicate == nil, "Match")
	return sliceutil.Match(a.data, predicate)
}

// MatchIndex returns the index of the first element that satisfies the predicate, or -1.
func (a *Array[T]) MatchIndex(predicate sliceutil.Predicate[T]) int {
	check(a, predicate == nil, "MatchIndex")
	return sliceutil.MatchIndex(a.data, predicate)
}

func (a *Array[T]) MatchOptional(predicate sliceutil.Predicate[T]) optional.Value[T] {
	check(a, predicate == nil, "MatchOptional")
	return sliceutil.MatchOptional(a.data, predicate)
}

// Select returns a new Array with the elements that satisfy the predicate.
// It is empty, not nil, when nothing matches.
func (a *Array[T]) Select(predicate sliceutil.Predicate[T]) *Array[T] {
	check(a, predicate == nil, "Select")
	return wrap(sliceutil.Select(a.data, predicate))
}

// Reject returns a new Array with every element except the ones that satisfy the predicate.
//
//	pretty := computers.Reject(func(c Computer) bool {
//		return c.IsUgly()
//	})
func (a *Array[T]) Reject(predicate sliceutil.Predicate[T]) *Array[T] {
	check(a, predicate == nil, "Reject")
	return wrap(sliceutil.Reject(a.data, predicate))
}

// Partition returns Select and Reject of the same predicate, evaluating it once per element.
func (a *Array[T]) Partition(predicate sliceutil.Predicate[T]) (selected, rejected *Array[T]) {
	check(a, predicate == nil, "Partition")
	sel, rej := sliceutil.Partition(a.data, predicate)
	return wrap(sel), wrap(rej)
}

func (a *Array[T]) TryEach(visitor sliceutil.VisitorE[T]) error {
	if a == nil || visitor == nil {
		return nilArgument("TryEach")
	}
	return sliceutil.TryEach(a.data, visitor)
}

func (a *Array[T]) TryMatch(predicate sliceutil.PredicateE[T]) (T, bool, error) {
	if a == nil || predicate == nil {
		var zero T
		return zero, false, nilArgument("TryMatch")
	}
	return sliceutil.TryMatch(a.data, predicate)
}

func (a *Array[T]) TrySelect(predicate sliceutil.PredicateE[T]) (*Array[T], error) {
	if a == nil || predicate == nil {
		return nil, nilArgument("TrySelect")
	}
	res, err := sliceutil.TrySelect(a.data, predicate)
	if err != nil {
		return nil, err
	}
	return wrap(res), nil
}

func (a *Array[T]) TryReject(predicate sliceutil.PredicateE[T]) (*Array[T], error) {
	if a == nil || predicate == nil {
		return nil, nilArgument("TryReject")
	}
	res, err := sliceutil.TryReject(a.data, predicate)
	if err != nil {
		return nil, err
	}
	return wrap(res), nil
}

// Map calls transform once per element and collects the results in a new Array of the same length.
//
//	icons := arrays.Map(names, func(name string) string {
//		return name + ".png"
//	})
func Map[T, R any](a *Array[T], transform sliceutil.Transform[T, R]) *Array[R] {
	check(a, transform == nil, "Map")
	return wrap(sliceutil.Map(a.data, transform))
}

// MapStrict is Map for transforms whose result type can hold nil; a nil result
// fails with sliceutil.ErrInvalidTransformResult.
func MapStrict[T, R any](a *Array[T], transform sliceutil.Transform[T, R]) (*Array[R], error) {
	if a == nil || transform == nil {
		return nil, nilArgument("MapStrict")
	}
	res, err := sliceutil.MapStrict(a.data, transform)
	if err != nil {
		return nil, err
	}
	return wrap(res), nil
}

// Reduce accumulates the elements from left to right, starting with initial.
// The accumulated type can be anything, for example the concatenation of strings:
//
//	joined := arrays.Reduce(words, "", func(sum, w string) string {
//		return sum + w
//	})
//
// or the sum of their lengths:
//
//	total := arrays.Reduce(words, 0, func(sum int, w string) int {
//		return sum + len(w)
//	})
func Reduce[T, R any](a *Array[T], initial R, accumulator sliceutil.Accumulator[R, T]) R {
	check(a, accumulator == nil, "Reduce")
	return sliceutil.Reduce(a.data, initial, accumulator)
}

func TryMap[T, R any](a *Array[T], transform sliceutil.TransformE[T, R]) (*Array[R], error) {
	if a == nil || transform == nil {
		return nil, nilArgument("TryMap")
	}
	res, err := sliceutil.TryMap(a.data, transform)
	if err != nil {
		return nil, err
	}
	return wrap(res), nil
}

func TryReduce[T, R any](a *Array[T], initial R, accumulator sliceutil.AccumulatorE[R, T]) (R, error) {
	if a == nil || accumulator == nil {
		return initial, nilArgument("TryReduce")
	}
	return sliceutil.TryReduce(a.data, initial, accumulator)
}
