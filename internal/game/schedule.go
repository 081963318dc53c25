package game

import (
	"container/heap"
	"sync"
	"time"
)

// Scheduler is a min-heap delayed-task queue keyed by fire time. Scheduled
// tasks are not cancellable individually: an accepted attack always
// eventually resolves. Stop discards whatever has not fired yet; the runner
// goroutine exits and no further tasks run.
//
// Tests drive it without the runner by calling RunDue against a FakeClock.
type Scheduler struct {
	clock Clock

	mu      sync.Mutex
	tasks   taskHeap
	nextSeq uint64
	wake    chan struct{}
	stopped bool
}

type task struct {
	at  time.Time
	seq uint64
	run func()
}

func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{
		clock: clock,
		wake:  make(chan struct{}, 1),
	}
}

// Schedule queues fn to run no earlier than d from now.
func (s *Scheduler) Schedule(d time.Duration, fn func()) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	seq := s.nextSeq
	s.nextSeq++
	heap.Push(&s.tasks, task{at: s.clock.Now().Add(d), seq: seq, run: fn})
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// RunDue executes every task whose fire time is at or before now, in fire
// order, and returns how many ran. Tasks run without the scheduler lock held
// so they may schedule follow-ups.
func (s *Scheduler) RunDue(now time.Time) int {
	ran := 0
	for {
		s.mu.Lock()
		if s.stopped || s.tasks.Len() == 0 || s.tasks[0].at.After(now) {
			s.mu.Unlock()
			return ran
		}
		t := heap.Pop(&s.tasks).(task)
		s.mu.Unlock()
		t.run()
		ran++
	}
}

// Run services the queue against real time until Stop. Intended to be run in
// its own goroutine.
func (s *Scheduler) Run() {
	timer := time.NewTimer(time.Hour)
	defer timer.Stop()
	for {
		s.mu.Lock()
		if s.stopped {
			s.mu.Unlock()
			return
		}
		wait := time.Hour
		if s.tasks.Len() > 0 {
			wait = time.Until(s.tasks[0].at)
		}
		s.mu.Unlock()

		if wait <= 0 {
			s.RunDue(s.clock.Now())
			continue
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(wait)
		select {
		case <-timer.C:
			s.RunDue(s.clock.Now())
		case <-s.wake:
		}
	}
}

// Stop shuts the scheduler down and drops pending tasks.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.tasks = nil
	s.mu.Unlock()
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Pending reports the number of queued tasks.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks.Len()
}

type taskHeap []task

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].at.Equal(h[j].at) {
		return h[i].seq < h[j].seq
	}
	return h[i].at.Before(h[j].at)
}
func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x any) { *h = append(*h, x.(task)) }

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	*h = old[:n-1]
	return t
}
