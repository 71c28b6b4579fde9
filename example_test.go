package pushstreams

import (
	"context"
	"fmt"
	"strconv"
)

func Example() {
	loop := NewLoop()

	// construct a stream from a slice
	ints := Produce(loop, []int{1, 2, 3, 4, 5})

	// keep the even elements
	ints = Filter(ints, func(elem int) bool {
		return elem%2 == 0
	})

	// map elements by converting them to strings
	intStrs := Map(ints, strconv.Itoa)

	// collect the strings into a slice once the stream ends
	strs, _ := Await(context.Background(), loop, Collect(intStrs))

	fmt.Printf("%+v\n", strs)
	// Output: [2 4]
}

func ExampleInterleaveFutures() {
	loop := NewLoop()

	slow, resolveSlow, _ := NewFuture[string](loop)
	fast, resolveFast, _ := NewFuture[string](loop)

	strs := InterleaveFutures(Produce(loop, []*Future[string]{slow, fast}))

	Each(strs, func(elem string) {
		fmt.Println(elem)
	})

	resolveFast("fast")
	resolveSlow("slow")

	loop.RunUntilIdle()
	// Output:
	// fast
	// slow
}
