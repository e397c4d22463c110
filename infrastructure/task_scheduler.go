package infrastructure

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

type pendingTask struct {
	name  string
	fn    func(ctx context.Context) error
	timer *time.Timer
}

// TaskScheduler runs background and delayed side effects outside the event handler that requested them.
// Shutdown fires every pending task early and waits for all of them to finish.
type TaskScheduler struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]*pendingTask
	closed  bool
}

// NewTaskScheduler creates a scheduler ready to accept tasks
func NewTaskScheduler() *TaskScheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &TaskScheduler{
		ctx:     ctx,
		cancel:  cancel,
		pending: make(map[uint64]*pendingTask),
	}
}

// Go runs fn in the background right away
func (s *TaskScheduler) Go(name string, fn func(ctx context.Context) error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		log.WithField("task", name).Warn("Scheduler is shut down, dropping task")
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go s.run(name, fn)
}

// After runs fn once delay has elapsed
func (s *TaskScheduler) After(delay time.Duration, name string, fn func(ctx context.Context) error) {
	if delay <= 0 {
		s.Go(name, fn)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		log.WithField("task", name).Warn("Scheduler is shut down, dropping task")
		return
	}

	id := s.nextID
	s.nextID++
	task := &pendingTask{name: name, fn: fn}
	s.wg.Add(1)
	// Whoever removes the task from pending runs it: the timer or Shutdown.
	task.timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		_, ok := s.pending[id]
		delete(s.pending, id)
		s.mu.Unlock()
		if ok {
			s.run(name, fn)
		}
	})
	s.pending[id] = task
}

// Pending returns how many delayed tasks have not fired yet
func (s *TaskScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Shutdown stops accepting tasks, runs the pending ones now and waits for everything to finish
func (s *TaskScheduler) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	pending := s.pending
	s.pending = make(map[uint64]*pendingTask)
	s.mu.Unlock()

	if len(pending) > 0 {
		log.WithField("tasks", len(pending)).Info("Running pending tasks before shutdown")
	}
	for _, task := range pending {
		task.timer.Stop()
		go s.run(task.name, task.fn)
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	defer s.cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler shutdown interrupted: %w", ctx.Err())
	}
}

func (s *TaskScheduler) run(name string, fn func(ctx context.Context) error) {
	defer s.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(log.Fields{
				"task":  name,
				"panic": r,
			}).Error("Scheduled task panicked")
		}
	}()

	if err := fn(s.ctx); err != nil {
		log.WithFields(log.Fields{
			"task":  name,
			"error": err,
		}).Error("Scheduled task failed")
		return
	}
	log.WithField("task", name).Debug("Scheduled task finished")
}
