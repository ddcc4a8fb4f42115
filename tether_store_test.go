package tether

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore(t *testing.T) {
	t.Run("read and write", func(t *testing.T) {
		count := NewStore(0)
		assert.Equal(t, 0, count.Read())

		count.Write(10)
		assert.Equal(t, 10, count.Read())
	})

	t.Run("update folds mutators in call order", func(t *testing.T) {
		count := NewStore(1)

		count.Update(func(v int) int { return v + 2 })
		count.Update(func(v int) int { return v * 10 })
		count.Update(func(v int) int { return v - 5 })

		assert.Equal(t, 25, count.Read())
	})

	t.Run("zero values", func(t *testing.T) {
		s := NewStore[error](nil)
		assert.Nil(t, s.Read())
	})

	t.Run("notifies each listener exactly once per write", func(t *testing.T) {
		count := NewStore(0)

		calls := make([]int, 3)
		for i := range calls {
			count.Subscribe(func() { calls[i]++ })
		}

		count.Write(1)

		assert.Equal(t, []int{1, 1, 1}, calls)
	})

	t.Run("write without listeners is a no-op pass", func(t *testing.T) {
		count := NewStore(0)
		count.Write(1)
		assert.Equal(t, 1, count.Read())
	})

	t.Run("no equality short-circuit", func(t *testing.T) {
		count := NewStore(0)

		calls := 0
		count.Subscribe(func() { calls++ })

		count.Write(5)
		assert.Equal(t, 5, count.Read())
		assert.Equal(t, 1, calls)

		count.Write(5)
		assert.Equal(t, 5, count.Read())
		assert.Equal(t, 2, calls)
	})

	t.Run("unsubscribe before write", func(t *testing.T) {
		count := NewStore(0)

		l1, l2 := 0, 0
		unsub := count.Subscribe(func() { l1++ })
		count.Subscribe(func() { l2++ })

		unsub()
		count.Update(func(v int) int { return v + 1 })

		assert.Equal(t, 0, l1)
		assert.Equal(t, 1, l2)
	})

	t.Run("double unsubscribe is a no-op", func(t *testing.T) {
		count := NewStore(0)

		l1, l2 := 0, 0
		unsub := count.Subscribe(func() { l1++ })
		count.Subscribe(func() { l2++ })

		unsub()
		unsub()
		count.Write(1)

		assert.Equal(t, 0, l1)
		assert.Equal(t, 1, l2)
	})

	t.Run("same listener subscribed twice runs twice", func(t *testing.T) {
		count := NewStore(0)

		calls := 0
		fn := func() { calls++ }
		unsub := count.Subscribe(fn)
		count.Subscribe(fn)

		count.Write(1)
		assert.Equal(t, 2, calls)

		// removing one registration leaves the other
		unsub()
		count.Write(2)
		assert.Equal(t, 3, calls)
	})

	t.Run("unsubscribe during notification finishes the pass", func(t *testing.T) {
		count := NewStore(0)

		log := []string{}
		var unsubB func()

		count.Subscribe(func() {
			log = append(log, "a")
			unsubB()
		})
		unsubB = count.Subscribe(func() {
			log = append(log, "b")
		})

		count.Write(1)
		count.Write(2)

		// b still runs in the pass that removed it, never again after
		assert.Equal(t, []string{"a", "b", "a"}, log)
	})

	t.Run("subscribe during notification waits for the next pass", func(t *testing.T) {
		count := NewStore(0)

		log := []string{}
		count.Subscribe(func() {
			log = append(log, "outer")

			if len(log) == 1 {
				count.Subscribe(func() { log = append(log, "inner") })
			}
		})

		count.Write(1)
		assert.Equal(t, []string{"outer"}, log)

		count.Write(2)
		assert.Equal(t, []string{"outer", "outer", "inner"}, log)
	})

	t.Run("panicking listener does not stop siblings", func(t *testing.T) {
		var caught []any
		count := NewStore(0, WithErrorHandler(func(recovered any) {
			caught = append(caught, recovered)
		}))

		before, after := 0, 0
		count.Subscribe(func() { before++ })
		count.Subscribe(func() { panic("boom") })
		count.Subscribe(func() { after++ })

		count.Write(1)

		assert.Equal(t, 1, before)
		assert.Equal(t, 1, after)
		assert.Equal(t, []any{"boom"}, caught)
		assert.Equal(t, 1, count.Read())
	})

	t.Run("runtime error handler catches listener panics", func(t *testing.T) {
		var caught []any
		SetErrorHandler(func(recovered any) { caught = append(caught, recovered) })
		defer SetErrorHandler(nil)

		count := NewStore(0)
		count.Subscribe(func() { panic("boom") })
		count.Write(1)

		assert.Equal(t, []any{"boom"}, caught)
	})

	t.Run("concurrent read/write", func(t *testing.T) {
		var wg sync.WaitGroup
		count := NewStore(0)

		wg.Go(func() {
			count.Write(count.Read() + 1)
		})

		wg.Wait()
		assert.Equal(t, 1, count.Read())
	})
}
