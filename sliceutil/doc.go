/*
Package sliceutil provides block-style iteration helpers for plain Go slices.

Every helper takes a caller-supplied function and applies it to the slice in
index order:

  - [Each] visits every element.
  - [Match], [MatchIndex] and [MatchOptional] return the first element that satisfies a predicate.
  - [Select] and [Reject] keep, respectively drop, the elements that satisfy a predicate.
    [Partition] does both in a single pass.
  - [Map] transforms every element, keeping length and order.
  - [Reduce] folds the slice from left to right into an accumulated value.

None of the helpers modify the input slice. A nil slice behaves like an empty one.

# Errors

Passing a nil function is a programming error. The plain helpers panic with an
error wrapping [ErrNilArgument] before the first element is visited, so the
panic value can be inspected with errors.Is after a recover.

The "Try" variants ([TryEach], [TryMatch], [TrySelect], [TryReject], [TryMap],
[TryReduce]) accept callbacks that may fail. The first callback error stops the
traversal and is returned exactly as the callback produced it. A nil function is
reported as an error wrapping [ErrNilArgument] instead of a panic.

[MapStrict] rejects transforms that produce nil pointers, interfaces, maps,
slices, channels or funcs with [ErrInvalidTransformResult].
*/
package sliceutil
