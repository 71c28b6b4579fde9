package pushstreams

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestEach(t *testing.T) {
	is := is.New(t)

	loop := NewLoop()

	ints := Produce(loop, []int{1, 2, 3})

	seen := []int{}
	done := Each(ints, func(elem int) {
		seen = append(seen, elem)
	})

	await(t, loop, done)

	is.Equal(seen, []int{1, 2, 3})
}

func TestReduce(t *testing.T) {
	is := is.New(t)

	loop := NewLoop()

	ints := Produce(loop, []int{1, 2, 3, 4, 5})

	sum := Reduce(ints, 0, func(elem int, acc int) int {
		return acc + elem
	})

	is.Equal(await(t, loop, sum), 15)
}

func TestReduce_Pending(t *testing.T) {
	is := is.New(t)

	loop := NewLoop()

	ints, emit, end := controlled[int](loop)

	sum := Reduce(ints, 0, func(elem int, acc int) int {
		return acc + elem
	})

	result := 0
	sum.Then(func(val int) {
		result = val
	})

	emit(1)
	emit(2)
	loop.RunUntilIdle()

	// not yet ended
	is.Equal(result, 0)

	emit(3)
	end()
	loop.RunUntilIdle()

	is.Equal(result, 6)
}

func TestCount(t *testing.T) {
	is := is.New(t)

	loop := NewLoop()

	is.Equal(await(t, loop, Count(Produce(loop, []int{1, 2, 3}))), uint64(3))
	is.Equal(await(t, loop, Count(Empty[int](loop))), uint64(0))
}

func TestFirst(t *testing.T) {
	is := is.New(t)

	loop := NewLoop()

	ints, emit, _ := controlled[int](loop)

	first := First(ints)

	emit(4)
	emit(5)

	// resolves without the stream ending
	is.Equal(await(t, loop, first), 4)
}

func TestFirst_Empty(t *testing.T) {
	is := is.New(t)

	loop := NewLoop()

	_, err := Await(context.Background(), loop, First(Empty[int](loop)))

	is.True(errors.Is(err, ErrNoElements))
}

func TestAnyMatch(t *testing.T) {
	is := is.New(t)

	loop := NewLoop()

	is.True(await(t, loop, AnyMatch(Produce(loop, []int{1, 2, 3}), even)))
	is.True(!await(t, loop, AnyMatch(Produce(loop, []int{1, 3, 5}), even)))
	is.True(!await(t, loop, AnyMatch(Empty[int](loop), even)))
}

func TestAnyMatch_BeforeEnd(t *testing.T) {
	is := is.New(t)

	loop := NewLoop()

	ints, emit, _ := controlled[int](loop)

	match := AnyMatch(ints, even)

	emit(1)
	emit(2)
	emit(3)

	is.True(await(t, loop, match))
}

func TestAllMatch(t *testing.T) {
	is := is.New(t)

	loop := NewLoop()

	is.True(await(t, loop, AllMatch(Produce(loop, []int{2, 4, 6}), even)))
	is.True(!await(t, loop, AllMatch(Produce(loop, []int{2, 3, 4}), even)))
	is.True(await(t, loop, AllMatch(Empty[int](loop), even)))
}
