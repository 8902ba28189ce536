package container_test

import (
	"fmt"

	"github.com/yaman9600/LinkedList/common/container"
)

func ExampleLinkedList() {
	l := container.NewLinkedList[int](container.WithCursorCache[int]())
	l.Append(2)
	l.Append(4)
	l.Prepend(1)
	l.InsertAt(2, 3)

	for i := 0; i < l.Size(); i++ {
		v, _ := l.Get(i)
		fmt.Println(v)
	}

	last, _ := l.RemoveLast()
	first, _ := l.RemoveFirst()
	fmt.Println(first, last, l.Value())

	_, ok := l.Get(5)
	fmt.Println(ok)

	// Output:
	// 1
	// 2
	// 3
	// 4
	// 1 4 [2 3]
	// false
}

func ExampleQueue() {
	q := container.NewQueue[string]()
	q.Push("first")
	q.Push("second")

	fmt.Println(q.Pop())
	fmt.Println(q.Size())

	// Output:
	// first
	// 1
}
