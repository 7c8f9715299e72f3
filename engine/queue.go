package engine

import (
	"errors"
	"sync"
)

// ErrClosed is returned by Submit once the queue no longer accepts tasks.
var ErrClosed = errors.New("engine: task queue closed")

// Task is a state change marshalled onto the logic goroutine.
type Task func(e *Engine)

// Queue is an ordered FIFO of tasks. Submit is safe from any goroutine;
// Drain runs on the logic goroutine once per frame.
type Queue struct {
	mu     sync.Mutex
	tasks  []Task
	closed bool
}

func NewQueue() *Queue {
	return &Queue{}
}

// Submit appends t. Tasks are never dropped or reordered.
func (q *Queue) Submit(t Task) error {
	if t == nil {
		return nil
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrClosed
	}
	q.tasks = append(q.tasks, t)
	return nil
}

// Drain takes every pending task and runs it against e in submission order.
// Tasks submitted while draining wait for the next call.
func (q *Queue) Drain(e *Engine) int {
	q.mu.Lock()
	pending := q.tasks
	q.tasks = nil
	q.mu.Unlock()

	for _, t := range pending {
		t(e)
	}
	return len(pending)
}

// Len reports how many tasks are waiting.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Close rejects further submissions. Pending tasks can still be drained.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
}
