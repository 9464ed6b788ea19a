package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/findora-hu/findora/app/cfg"
)

var _ TaskSchedulerInterface = (*Scheduler)(nil)

// Scheduler runs enqueued tasks on a fixed worker pool. Failed tasks are
// retried in place with exponential backoff, so Wait returns only after
// every enqueued task has either succeeded or exhausted its retries.
type Scheduler struct {
	workerCount int
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	pending     sync.WaitGroup
	taskQueue   chan TaskInterface
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		workerCount: cfg.Get().WorkerCount,
		ctx:         ctx,
		cancel:      cancel,
		taskQueue:   make(chan TaskInterface, 300),
	}
}

func (s *Scheduler) Start() {
	for i := 0; i < s.workerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	close(s.taskQueue)
}

// Wait blocks until every enqueued task has finished.
func (s *Scheduler) Wait() {
	s.pending.Wait()
}

func (s *Scheduler) EnqueueTask(task TaskInterface) error {
	s.pending.Add(1)
	select {
	case s.taskQueue <- task:
		return nil
	case <-s.ctx.Done():
		s.pending.Done()
		return s.ctx.Err()
	default:
		s.pending.Done()
		return fmt.Errorf("task queue is full")
	}
}

func (s *Scheduler) worker(id int) {
	defer s.wg.Done()

	for {
		select {
		case task, ok := <-s.taskQueue:
			if !ok {
				return
			}
			s.executeTask(id, task)
			s.pending.Done()

		case <-s.ctx.Done():
			return
		}
	}
}

// executeTask runs a task, retrying on the same worker with capped
// exponential backoff.
func (s *Scheduler) executeTask(workerID int, task TaskInterface) {
	for {
		task.Start()

		taskCtx, cancel := context.WithTimeout(s.ctx, 5*time.Minute)
		err := task.Execute(taskCtx)
		cancel()

		if err == nil {
			return
		}

		slog.Error("Worker task execution failed", "worker_id", workerID, "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "error", err)

		if !task.CanRetry() {
			slog.Error("Task failed after maximum retries", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "max_retries", task.GetMaxRetries(), "last_error", err)
			return
		}

		task.IncrementRetryCount()
		retryDelay := time.Duration(1<<uint(task.GetRetryCount()-1)) * time.Second
		if retryDelay > 30*time.Second {
			retryDelay = 30 * time.Second
		}

		slog.Warn("Task retry scheduled", "type", string(task.GetType()), "partner", task.GetPartnerID(), "retry_count", task.GetRetryCount(), "max_retries", task.GetMaxRetries(), "delay", retryDelay.String())

		select {
		case <-s.ctx.Done():
			slog.Debug("Scheduler stopped, skipping task retry", "type", string(task.GetType()), "id", task.GetID())
			return
		case <-time.After(retryDelay):
		}
	}
}
