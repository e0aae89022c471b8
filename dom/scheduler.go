package dom

import (
	"container/heap"
	"sort"
	"time"
)

// TaskID identifies a scheduled animation frame callback or timer.
// The zero value is never used for a scheduled task.
type TaskID uint64

type task struct {
	id       TaskID
	due      time.Time
	frame    bool // animation frame callback
	seq      uint64
	run      func(time.Time)
	index    int
	canceled bool
}

// before orders tasks by due time; at the same time, animation frames run
// before timers; otherwise tasks run in scheduling order.
func (t *task) before(other *task) bool {
	if !t.due.Equal(other.due) {
		return t.due.Before(other.due)
	}
	if t.frame != other.frame {
		return t.frame
	}
	return t.seq < other.seq
}

// taskQueue implements heap.Interface.
type taskQueue []*task

func (q taskQueue) Len() int           { return len(q) }
func (q taskQueue) Less(i, j int) bool { return q[i].before(q[j]) }
func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x interface{}) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() interface{} {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// schedule enqueues a task and wakes up a running event loop.
func (w *Window) schedule(delay time.Duration, frame bool, run func(time.Time)) TaskID {
	if delay < 0 {
		delay = 0
	}
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		tracer().Debugf("window closed, task not scheduled")
		return 0
	}
	w.seq++
	t := &task{
		id:    TaskID(w.seq),
		due:   w.clock.Now().Add(delay),
		frame: frame,
		seq:   w.seq,
		run:   run,
	}
	heap.Push(&w.queue, t)
	w.tasks[t.id] = t
	w.mu.Unlock()
	select {
	case w.wake <- struct{}{}:
	default:
	}
	return t.id
}

func (w *Window) cancel(id TaskID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	t, ok := w.tasks[id]
	if !ok {
		return
	}
	t.canceled = true
	delete(w.tasks, id)
	if t.index >= 0 {
		heap.Remove(&w.queue, t.index)
	}
}

// due removes all tasks due at now from the queue and returns them in
// execution order.
func (w *Window) due(now time.Time) []*task {
	w.mu.Lock()
	defer w.mu.Unlock()
	var batch []*task
	for len(w.queue) > 0 && !w.queue[0].due.After(now) {
		batch = append(batch, heap.Pop(&w.queue).(*task))
	}
	sort.SliceStable(batch, func(i, j int) bool { return batch[i].before(batch[j]) })
	return batch
}

// next returns the due time of the next task.
func (w *Window) next() (time.Time, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.queue) == 0 {
		return time.Time{}, false
	}
	return w.queue[0].due, true
}

// RunDue runs all animation frame callbacks and timers which are due.
// Tasks scheduled by running tasks are not run before the next call
// to RunDue, even if they are due immediately. RunDue returns the number of
// tasks run.
func (w *Window) RunDue() int {
	now := w.clock.Now()
	count := 0
	for _, t := range w.due(now) {
		w.mu.Lock()
		skip := t.canceled || w.closed
		delete(w.tasks, t.id)
		w.mu.Unlock()
		if skip {
			continue
		}
		t.run(now)
		count++
	}
	return count
}

// Pending returns the number of scheduled tasks.
func (w *Window) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.queue)
}
