package sched

import (
	"container/heap"
	"time"
)

// Task is a cosmetic callback. Tasks must not write authoritative game
// state; they only drive presentation (flash hide, tint fade, pose reset).
type Task func()

type entry struct {
	due  time.Time
	seq  uint64
	task Task
}

type entryHeap []entry

func (h entryHeap) Len() int { return len(h) }
func (h entryHeap) Less(i, j int) bool {
	if h[i].due.Equal(h[j].due) {
		return h[i].seq < h[j].seq
	}
	return h[i].due.Before(h[j].due)
}
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *entryHeap) Push(x any)   { *h = append(*h, x.(entry)) }
func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = entry{}
	*h = old[:n-1]
	return e
}

// Queue orders tasks by virtual due time. Ties run in scheduling order.
// Not safe for concurrent use; the game loop owns it.
type Queue struct {
	items entryHeap
	seq   uint64
}

func NewQueue() *Queue {
	return &Queue{}
}

// At schedules t to run at the first RunDue call whose now is not before due.
func (q *Queue) At(due time.Time, t Task) {
	q.seq++
	heap.Push(&q.items, entry{due: due, seq: q.seq, task: t})
}

// RunDue runs every task due at or before now and returns how many ran.
// Tasks scheduled by a running task with a due time <= now run in the same
// call.
func (q *Queue) RunDue(now time.Time) int {
	n := 0
	for len(q.items) > 0 && !q.items[0].due.After(now) {
		e := heap.Pop(&q.items).(entry)
		e.task()
		n++
	}
	return n
}

func (q *Queue) Len() int { return len(q.items) }

// Clear drops every pending task without running it.
func (q *Queue) Clear() {
	q.items = q.items[:0]
}
