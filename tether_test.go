package tether

import (
	"fmt"
)

func ExampleStore() {
	count := NewStore(0)
	fmt.Println(count.Read())

	count.Write(10)
	fmt.Println(count.Read())

	count.Update(func(v int) int { return v + 1 })
	fmt.Println(count.Read())

	// Output:
	// 0
	// 10
	// 11
}

func ExampleStore_Subscribe() {
	count := NewStore(0)

	unsubscribe := count.Subscribe(func() {
		fmt.Println("count is now", count.Read())
	})

	count.Write(1)
	count.Write(2)
	unsubscribe()
	count.Write(3)

	// Output:
	// count is now 1
	// count is now 2
}

func ExampleNewMemo() {
	count := NewStore(1)
	double := NewMemo(func() int { return count.Read() * 2 })

	fmt.Println(double.Read())

	count.Write(10)
	fmt.Println(double.Read())

	// Output:
	// 2
	// 20
}

func ExampleBinding() {
	count := NewStore(0)

	b := NewBinding[int](count)
	b.Mount(func() {
		fmt.Println("refresh:", b.Value())
	})
	defer b.Unbind()

	count.Write(7)

	// Output:
	// refresh: 7
}
