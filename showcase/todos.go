package showcase

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/google/uuid"
	"github.com/mlegeay/tether"
)

type todo struct {
	ID    string
	Title string
	Done  bool
}

// A list store with stable item identity. Every update replaces the slice
// wholesale; nothing mutates the previous snapshot in place.
func runTodos(ctx context.Context, out io.Writer) error {
	todos := tether.NewStore([]todo{})

	remaining := tether.NewMemo(func() int {
		n := 0
		for _, t := range todos.Read() {
			if !t.Done {
				n++
			}
		}
		return n
	})

	tether.NewEffect(func() {
		fmt.Fprintf(out, "%d item(s) left\n", remaining.Read())
	})

	add := func(title string) string {
		id := uuid.NewString()
		todos.Update(func(list []todo) []todo {
			return append(slices.Clone(list), todo{ID: id, Title: title})
		})
		return id
	}

	complete := func(id string) {
		todos.Update(func(list []todo) []todo {
			next := slices.Clone(list)
			for i, t := range next {
				if t.ID == id {
					next[i].Done = true
				}
			}
			return next
		})
	}

	first := add("write the design notes")
	add("wire the showcase")
	complete(first)
	return nil
}
