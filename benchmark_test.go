package arrayblocks_test

import (
	"slices"
	"testing"

	"arrayblocks/arrays"
	"arrayblocks/seqs"
	"arrayblocks/sliceutil"
)

// heavyCalc simulates a CPU intensive operation
func heavyCalc(x int) int {
	for i := 0; i < 1000; i++ {
		x = (x + i*i) % 10000
	}
	return x
}

func benchInput(size int) []int {
	input := make([]int, size)
	for i := 0; i < size; i++ {
		input[i] = i
	}
	return input
}

// BenchmarkUnified_Map compares Map across the slice, iterator and Array forms.
func BenchmarkUnified_Map(b *testing.B) {
	input := benchInput(1_000_000)
	arr := arrays.From(input)

	workloads := []struct {
		name      string
		transform func(int) int
	}{
		{name: "Light", transform: func(x int) int { return x * 2 }},
		{name: "Heavy", transform: heavyCalc},
	}

	for _, wl := range workloads {
		b.Run(wl.name, func(b *testing.B) {
			b.Run("Slice", func(b *testing.B) {
				for b.Loop() {
					_ = sliceutil.Map(input, wl.transform)
				}
			})

			b.Run("Seq", func(b *testing.B) {
				for b.Loop() {
					for range seqs.Map(slices.Values(input), wl.transform) {
					}
				}
			})

			b.Run("Array", func(b *testing.B) {
				for b.Loop() {
					_ = arrays.Map(arr, wl.transform)
				}
			})
		})
	}
}

// BenchmarkUnified_Select compares Select across the slice, iterator and Array forms.
func BenchmarkUnified_Select(b *testing.B) {
	input := benchInput(1_000_000)
	arr := arrays.From(input)

	workloads := []struct {
		name      string
		predicate func(int) bool
	}{
		{name: "Light", predicate: func(x int) bool { return x%2 == 0 }},
		{name: "Heavy", predicate: func(x int) bool { return heavyCalc(x)%2 == 0 }},
	}

	for _, wl := range workloads {
		b.Run(wl.name, func(b *testing.B) {
			b.Run("Slice", func(b *testing.B) {
				for b.Loop() {
					_ = sliceutil.Select(input, wl.predicate)
				}
			})

			b.Run("Seq", func(b *testing.B) {
				for b.Loop() {
					for range seqs.Select(slices.Values(input), wl.predicate) {
					}
				}
			})

			b.Run("Array", func(b *testing.B) {
				for b.Loop() {
					_ = arr.Select(wl.predicate)
				}
			})
		})
	}
}

// BenchmarkUnified_Reduce compares Reduce across the three forms.
func BenchmarkUnified_Reduce(b *testing.B) {
	input := benchInput(1_000_000)
	arr := arrays.From(input)
	sum := func(acc, x int) int { return acc + x }

	b.Run("Slice", func(b *testing.B) {
		for b.Loop() {
			_ = sliceutil.Reduce(input, 0, sum)
		}
	})
	b.Run("Seq", func(b *testing.B) {
		for b.Loop() {
			_ = seqs.Reduce(slices.Values(input), 0, sum)
		}
	})
	b.Run("Array", func(b *testing.B) {
		for b.Loop() {
			_ = arrays.Reduce(arr, 0, sum)
		}
	})
}
