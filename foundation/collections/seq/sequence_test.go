// File: sequence_test.go
// Title: Sequence Tests
// Description: Runs one behavioral suite against every Sequence
//              implementation, plus implementation specific checks.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-17

package seq

import (
	"io"
	"os"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Sequence[int] = (*ArrayList[int])(nil)
	_ Sequence[int] = (*LinkedList[int])(nil)
	_ Sequence[int] = (*Synchronized[int])(nil)
)

type constructor struct {
	name string
	make func(values ...int) Sequence[int]
}

func constructors() []constructor {
	return []constructor{
		{"ArrayList", func(v ...int) Sequence[int] { return ArrayListOf(v...) }},
		{"LinkedList", func(v ...int) Sequence[int] { return LinkedListOf(v...) }},
		{"Synchronized", func(v ...int) Sequence[int] { return Synchronize[int](ArrayListOf(v...)) }},
	}
}

func forEach(t *testing.T, fn func(t *testing.T, newSeq func(values ...int) Sequence[int])) {
	for _, c := range constructors() {
		t.Run(c.name, func(t *testing.T) { fn(t, c.make) })
	}
}

func isEven(x int) bool { return x%2 == 0 }

func TestAppendInsert(t *testing.T) {
	forEach(t, func(t *testing.T, newSeq func(...int) Sequence[int]) {
		s := newSeq()
		require.NoError(t, s.Append(1))
		require.NoError(t, s.Insert(1, 3))
		require.NoError(t, s.Insert(1, 2))
		require.NoError(t, s.Insert(0, 0))
		assert.Equal(t, []int{0, 1, 2, 3}, s.Values())

		assert.ErrorIs(t, s.Insert(-1, 9), ErrIndexOutOfRange)
		assert.ErrorIs(t, s.Insert(5, 9), ErrIndexOutOfRange)
		assert.Equal(t, 4, s.Len())
	})
}

func TestBatchInsert(t *testing.T) {
	forEach(t, func(t *testing.T, newSeq func(...int) Sequence[int]) {
		s := newSeq(4)
		require.NoError(t, s.InsertAll(1, []int{1, 2, 3}))
		require.NoError(t, s.InsertAll(0, []int{}))
		require.NoError(t, s.AppendAll([]int{5, 6}))
		require.NoError(t, s.AppendAll(nil))
		assert.Equal(t, []int{4, 1, 2, 3, 5, 6}, s.Values())

		assert.ErrorIs(t, s.InsertAll(7, []int{0}), ErrIndexOutOfRange)
		assert.ErrorIs(t, s.InsertAll(-1, nil), ErrIndexOutOfRange)
		assert.Equal(t, 6, s.Len())
	})
}

func TestSetGet(t *testing.T) {
	forEach(t, func(t *testing.T, newSeq func(...int) Sequence[int]) {
		s := newSeq(1, 2, 3)
		old, err := s.Set(1, 4)
		require.NoError(t, err)
		assert.Equal(t, 2, old)

		v, err := s.Get(1)
		require.NoError(t, err)
		assert.Equal(t, 4, v)

		_, err = s.Set(3, 0)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		_, err = s.Get(-1)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		_, err = newSeq().Get(0)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})
}

func TestRemove(t *testing.T) {
	forEach(t, func(t *testing.T, newSeq func(...int) Sequence[int]) {
		s := newSeq(1, 2, 3, 4)

		v, err := s.RemoveAt(0)
		require.NoError(t, err)
		assert.Equal(t, 1, v)

		assert.True(t, s.RemoveFunc(isEven))
		assert.Equal(t, []int{3, 4}, s.Values())
		assert.False(t, s.RemoveFunc(func(x int) bool { return x > 10 }))

		_, err = s.RemoveAt(2)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})
}

func TestSearch(t *testing.T) {
	forEach(t, func(t *testing.T, newSeq func(...int) Sequence[int]) {
		s := newSeq(1, 3, 4, 6)
		assert.Equal(t, 2, s.IndexFunc(isEven))
		assert.True(t, s.ContainsFunc(isEven))
		assert.Equal(t, -1, s.IndexFunc(func(x int) bool { return x == 0 }))
		assert.Equal(t, -1, s.IndexFunc(nil))
	})
}

func TestIterationAndClear(t *testing.T) {
	forEach(t, func(t *testing.T, newSeq func(...int) Sequence[int]) {
		s := newSeq(7, 8, 9)

		var idx, vals []int
		for i, v := range s.All() {
			idx = append(idx, i)
			vals = append(vals, v)
		}
		assert.Equal(t, []int{0, 1, 2}, idx)
		assert.Equal(t, []int{7, 8, 9}, vals)

		count := 0
		for range s.All() {
			count++
			break
		}
		assert.Equal(t, 1, count)

		s.Clear()
		assert.Zero(t, s.Len())
		assert.Empty(t, s.Values())
		assert.True(t, Equal(s, nil))
	})
}

func TestValuesIsACopy(t *testing.T) {
	forEach(t, func(t *testing.T, newSeq func(...int) Sequence[int]) {
		s := newSeq(1, 2)
		vals := s.Values()
		vals[0] = 100
		v, _ := s.Get(0)
		assert.Equal(t, 1, v)
	})
}

func TestAbsentValuesAreStored(t *testing.T) {
	a := ArrayListOf[*string](nil)
	l := LinkedListOf[*string](nil)
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, l.Len())

	v, err := l.Get(0)
	require.NoError(t, err)
	assert.Nil(t, v)

	e := NewLinkedList[error]()
	require.NoError(t, e.Append(nil))
	got, err := e.Get(0)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestArrayListCapacity(t *testing.T) {
	l := NewArrayList[int](16)
	assert.Zero(t, l.Len())
	assert.GreaterOrEqual(t, l.Cap(), 16)

	assert.Zero(t, NewArrayList[int](-3).Cap())

	var zero ArrayList[int]
	require.NoError(t, zero.Append(1))
	assert.Equal(t, 1, zero.Len())
}

func TestEqualFunc(t *testing.T) {
	s := ArrayListOf(1, 2)
	assert.True(t, Equal[int](s, []int{1, 2}))
	assert.False(t, Equal[int](s, []int{2, 1}))
	assert.True(t, EqualFunc[int](s, []int{10, 20}, func(a, b int) bool { return a*10 == b }))
	assert.False(t, EqualFunc[int](s, []int{1}, func(a, b int) bool { return true }))
}

func TestSynchronizedConcurrentAppend(t *testing.T) {
	s := Synchronize[int](NewLinkedList[int]())

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_ = s.Append(i)
				_ = s.Len()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800, s.Len())

	err := s.Do(func(inner Sequence[int]) error {
		inner.Clear()
		return inner.Append(1)
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, s.Values())
}

func seqOf(n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	return values
}

func batchOf(n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = 100 + i
	}
	return values
}

// valuesOf returns s.Values as a non-nil slice for comparison.
func valuesOf(s Sequence[int]) []int {
	return append([]int{}, s.Values()...)
}

func TestInsertEveryPosition(t *testing.T) {
	forEach(t, func(t *testing.T, newSeq func(...int) Sequence[int]) {
		for size := 0; size <= 8; size++ {
			for index := 0; index <= size; index++ {
				s := newSeq(seqOf(size)...)
				require.NoError(t, s.Insert(index, 100))
				want := slices.Insert(seqOf(size), index, 100)
				assert.Equal(t, want, valuesOf(s), "size %d index %d", size, index)
			}
		}
	})
}

func TestInsertAllEveryPosition(t *testing.T) {
	forEach(t, func(t *testing.T, newSeq func(...int) Sequence[int]) {
		for size := 0; size <= 8; size++ {
			for index := 0; index <= size; index++ {
				for n := 0; n <= 4; n++ {
					s := newSeq(seqOf(size)...)
					require.NoError(t, s.InsertAll(index, batchOf(n)))
					want := slices.Insert(seqOf(size), index, batchOf(n)...)
					assert.Equal(t, want, valuesOf(s), "size %d index %d batch %d", size, index, n)
					assert.Equal(t, size+n, s.Len())
				}
			}
		}
	})
}

func TestSetEveryPosition(t *testing.T) {
	forEach(t, func(t *testing.T, newSeq func(...int) Sequence[int]) {
		for size := 1; size <= 8; size++ {
			for index := 0; index < size; index++ {
				s := newSeq(seqOf(size)...)
				old, err := s.Set(index, 100)
				require.NoError(t, err)
				assert.Equal(t, index, old)

				want := seqOf(size)
				want[index] = 100
				assert.Equal(t, want, valuesOf(s), "size %d index %d", size, index)
			}
		}
	})
}

// captureStdout returns everything fn writes to os.Stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	done := make(chan []byte)
	go func() {
		data, _ := io.ReadAll(r)
		done <- data
	}()

	fn()
	require.NoError(t, w.Close())
	return string(<-done)
}

func TestLinkedListWritesNothingToStdout(t *testing.T) {
	out := captureStdout(t, func() {
		l := LinkedListOf(seqOf(6)...)
		for i := 0; i < l.Len(); i++ {
			_, _ = l.Set(i, i*10)
		}
		_ = l.Insert(5, 1)
		_ = l.InsertAll(4, []int{2, 3})
		_, _ = l.RemoveAt(7)
	})
	assert.Empty(t, out)
}
