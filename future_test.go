package pushstreams

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

func TestFuture_Resolve(t *testing.T) {
	is := is.New(t)

	loop := NewLoop()

	fut, resolve, reject := NewFuture[int](loop)

	result := 0
	fut.Then(func(val int) {
		result = val
	})

	rejected := false
	fut.Catch(func(_ error) {
		rejected = true
	})

	resolve(1)
	is.Equal(result, 0)

	resolve(2)
	reject(errors.New("too late"))

	loop.RunUntilIdle()

	is.Equal(result, 1)
	is.True(!rejected)
}

func TestFuture_Reject(t *testing.T) {
	is := is.New(t)

	loop := NewLoop()

	errFail := errors.New("fail")

	fut := Rejected[int](loop, errFail)

	var err error
	fut.Catch(func(e error) {
		err = e
	})

	loop.RunUntilIdle()

	is.True(errors.Is(err, errFail))
}

func TestFuture_ThenAfterSettled(t *testing.T) {
	is := is.New(t)

	loop := NewLoop()

	fut := Resolved(loop, "a")
	loop.RunUntilIdle()

	result := ""
	fut.Then(func(val string) {
		result = val
	})

	is.Equal(result, "")

	loop.RunUntilIdle()
	is.Equal(result, "a")
}

func TestGo(t *testing.T) {
	is := is.New(t)

	loop := NewLoop()

	fut := Go(context.Background(), loop, func(_ context.Context) (int, error) {
		return 42, nil
	})

	is.Equal(await(t, loop, fut), 42)
}

func TestGo_Error(t *testing.T) {
	is := is.New(t)

	loop := NewLoop()

	errFail := errors.New("fail")

	fut := Go(context.Background(), loop, func(_ context.Context) (int, error) {
		return 0, errFail
	})

	_, err := Await(context.Background(), loop, fut)
	is.True(errors.Is(err, errFail))
}

func TestAwait_Canceled(t *testing.T) {
	is := is.New(t)

	loop := NewLoop()

	fut, _, _ := NewFuture[int](loop)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := Await(ctx, loop, fut)
	is.True(errors.Is(err, context.DeadlineExceeded))
}

func TestFuture_ResolveConcurrently(t *testing.T) {
	is := is.New(t)

	loop := NewLoop()

	resolvers := []func(int){}
	futures := []*Future[int]{}

	for i := 0; i < 50; i++ {
		fut, resolve, _ := NewFuture[int](loop)
		futures = append(futures, fut)
		resolvers = append(resolvers, resolve)
	}

	values := Collect(InterleaveFutures(Produce(loop, futures)))

	grp := errgroup.Group{}

	for i, resolve := range resolvers {
		i, resolve := i, resolve
		grp.Go(func() error {
			resolve(i)
			return nil
		})
	}

	is.NoErr(grp.Wait())

	result := await(t, loop, values)
	slices.Sort(result)

	expected := make([]int, 50)
	for i := range expected {
		expected[i] = i
	}

	is.Equal(result, expected)
}
