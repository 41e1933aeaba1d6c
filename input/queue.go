package input

import "github.com/lixenwraith/arena/terminal"

// KeySource is the non-blocking half of a terminal.Display
type KeySource interface {
	PollKey() (terminal.KeyEvent, bool)
}

// Queue holds intents gathered at the start of a tick
type Queue struct {
	items []Intent
}

func NewQueue() *Queue {
	return &Queue{items: make([]Intent, 0, 8)}
}

func (q *Queue) Push(i Intent) {
	q.items = append(q.items, i)
}

// Poll drains every pending key from src, queuing bound intents
// Returns the number of intents queued
func (q *Queue) Poll(src KeySource, table *KeyTable) int {
	n := 0
	for {
		ev, ok := src.PollKey()
		if !ok {
			return n
		}
		if i := table.Lookup(ev); i != IntentNone {
			q.Push(i)
			n++
		}
	}
}

// Drain returns queued intents in arrival order and empties the queue
// The returned slice is reused by the next Push
func (q *Queue) Drain() []Intent {
	out := q.items
	q.items = q.items[:0]
	return out
}

func (q *Queue) Len() int {
	return len(q.items)
}
