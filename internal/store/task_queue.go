package store

import (
	"context"
	"log/slog"
	"sync"

	"freshdeal/config"
	"freshdeal/internal/errors"

	"go.uber.org/fx"
)

const defaultTaskQueueSize = 64

// Task is a unit of deferred work, typically an operation started by a listener.
type Task struct {
	Name string
	Run  func(ctx context.Context)
}

// TaskQueue runs tasks one at a time in FIFO order on a single worker.
type TaskQueue struct {
	tasks   chan Task
	logger  *slog.Logger
	pending sync.WaitGroup

	// mu orders Enqueue against Stop so no task lands after the final drain.
	mu      sync.RWMutex
	stopped bool

	startOnce sync.Once
	stopOnce  sync.Once
	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
}

// TaskQueueParams defines the dependencies of the task queue.
type TaskQueueParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// ProvideTaskQueue creates the queue and ties its worker to the application lifecycle.
func ProvideTaskQueue(params TaskQueueParams) *TaskQueue {
	size := defaultTaskQueueSize
	if params.Config.Store != nil && params.Config.Store.TaskQueueSize > 0 {
		size = params.Config.Store.TaskQueueSize
	}
	queue := NewTaskQueue(size, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			queue.Start()

			return nil
		},
		OnStop: queue.Stop,
	})

	return queue
}

// NewTaskQueue creates a stopped queue holding at most size waiting tasks.
func NewTaskQueue(size int, logger *slog.Logger) *TaskQueue {
	if size <= 0 {
		size = defaultTaskQueueSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &TaskQueue{
		tasks:  make(chan Task, size),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// Start launches the worker. Calling it more than once has no effect.
func (q *TaskQueue) Start() {
	q.startOnce.Do(func() {
		go q.work()
	})
}

// Enqueue adds a task without blocking. It returns false when the queue is full or stopped.
func (q *TaskQueue) Enqueue(task Task) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.stopped {
		q.logger.Warn("Task queue stopped, dropping task", slog.String("task", task.Name))

		return false
	}

	q.pending.Add(1)
	select {
	case q.tasks <- task:
		return true
	default:
		q.pending.Done()
		q.logger.Warn("Task queue full, dropping task", slog.String("task", task.Name))

		return false
	}
}

// Wait blocks until every enqueued task has run.
func (q *TaskQueue) Wait() {
	q.pending.Wait()
}

// Stop cancels running work and waits for the worker to exit.
func (q *TaskQueue) Stop(ctx context.Context) error {
	q.stopOnce.Do(func() {
		q.mu.Lock()
		q.stopped = true
		q.mu.Unlock()

		q.cancel()
		q.startOnce.Do(func() {
			q.drain()
			close(q.done)
		})
	})

	select {
	case <-q.done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "task queue did not stop in time")
	}
}

func (q *TaskQueue) work() {
	defer close(q.done)

	for {
		select {
		case <-q.ctx.Done():
			q.drain()

			return
		case task := <-q.tasks:
			q.run(task)
		}
	}
}

// drain releases tasks that will never run so Wait does not hang after Stop.
func (q *TaskQueue) drain() {
	for {
		select {
		case task := <-q.tasks:
			q.logger.Debug("Task discarded on stop", slog.String("task", task.Name))
			q.pending.Done()
		default:
			return
		}
	}
}

func (q *TaskQueue) run(task Task) {
	defer q.pending.Done()
	defer func() {
		if r := recover(); r != nil {
			q.logger.Error("Task panicked", slog.String("task", task.Name), slog.Any("panic", r))
		}
	}()

	task.Run(q.ctx)
}
