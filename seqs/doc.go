/*
Package seqs provides block-style iteration helpers for Go 1.23+ iterators (iter.Seq).

It mirrors [arrayblocks/sliceutil] for lazy sequences:

  - **Consumers**: [Each], [Match], [MatchIndex], [MatchOptional] and [Reduce] drain the
    sequence (Match stops pulling at the first hit).
  - **Adapters**: [Select], [Reject] and [Map] return new sequences; the caller's function
    runs only as the result is consumed.

Passing a nil sequence or a nil function panics with an error wrapping
[sliceutil.ErrNilArgument]. The check happens when the helper is called, not when
the returned sequence is first ranged over.

# Error Handling

Many functions come in "Try" variants (e.g., [TryMap], [TrySelect]) to handle errors gracefully
within the stream. If a predicate or transformer returns an error, it is propagated to the consumer
unchanged. Lazy Try variants report a nil argument as the first and only (zero, err) pair.

# Concurrency

None. Every helper runs the caller's function on the goroutine that consumes the sequence.
*/
package seqs
