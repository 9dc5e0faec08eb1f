package game

import "snake-arcade/game/types"

// InputQueueCapacity is the number of turns a player can buffer between ticks.
const InputQueueCapacity = 2

// InputQueue is a fixed-size FIFO of pending headings. When full, new
// entries are dropped.
type InputQueue struct {
	items [InputQueueCapacity]types.Direction
	head  int
	n     int
}

// Push appends d and reports whether it was kept.
func (q *InputQueue) Push(d types.Direction) bool {
	if q.n == len(q.items) {
		return false
	}
	q.items[(q.head+q.n)%len(q.items)] = d
	q.n++
	return true
}

// Pop removes and returns the oldest entry.
func (q *InputQueue) Pop() (types.Direction, bool) {
	if q.n == 0 {
		return types.None, false
	}
	d := q.items[q.head]
	q.head = (q.head + 1) % len(q.items)
	q.n--
	return d, true
}

func (q *InputQueue) Len() int {
	return q.n
}

func (q *InputQueue) Clear() {
	q.head = 0
	q.n = 0
}

// Pending returns the buffered headings, oldest first.
func (q *InputQueue) Pending() []types.Direction {
	out := make([]types.Direction, q.n)
	for i := range out {
		out[i] = q.items[(q.head+i)%len(q.items)]
	}
	return out
}
