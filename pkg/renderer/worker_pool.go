package renderer

import (
	"errors"
	"sync"

	"github.com/df07/go-interactive-pathtracer/pkg/core"
	"github.com/df07/go-interactive-pathtracer/pkg/geometry"
)

// RowTask represents one image row of a render pass
type RowTask struct {
	pass *renderPass
	Row  int
	Acc  []core.Colour // Accumulation slice of this row only
	Out  []uint32      // Display slice of this row only
}

// RowResult reports a finished row
type RowResult struct {
	Row    int
	Pixels int
}

// ErrPoolStopped is returned for passes submitted to a stopped pool
var ErrPoolStopped = errors.New("worker pool stopped")

// WorkerPool manages parallel row rendering. It serves one pass at a time.
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
	startOnce   sync.Once
	stopOnce    sync.Once

	mu      sync.Mutex // guards stopped and sends on taskQueue
	stopped bool
}

// Worker renders rows with its own traversal stack
type Worker struct {
	ID          int
	tracer      *geometry.Tracer
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// A non-positive count selects DefaultWorkers. rows sizes the queues so a
// full pass can be queued without blocking.
func NewWorkerPool(numWorkers, rows int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = DefaultWorkers()
	}
	rows = max(rows, 1)

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, rows),
		resultQueue: make(chan RowResult, rows),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			tracer:      geometry.NewTracer(),
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers. Calling it again has no effect.
func (wp *WorkerPool) Start() {
	wp.startOnce.Do(func() {
		for _, worker := range wp.workers {
			wp.wg.Add(1)
			go worker.run(&wp.wg)
		}
	})
}

// Stop waits for queued rows to finish and shuts down all workers
func (wp *WorkerPool) Stop() {
	wp.stopOnce.Do(func() {
		wp.mu.Lock()
		wp.stopped = true
		close(wp.taskQueue)
		wp.mu.Unlock()

		wp.wg.Wait()
		close(wp.resultQueue)
	})
}

// SubmitTask queues a row. It returns false once the pool has been stopped.
func (wp *WorkerPool) SubmitTask(task RowTask) bool {
	wp.mu.Lock()
	defer wp.mu.Unlock()
	if wp.stopped {
		return false
	}
	wp.taskQueue <- task
	return true
}

// Stopped reports whether Stop has been called
func (wp *WorkerPool) Stopped() bool {
	wp.mu.Lock()
	defer wp.mu.Unlock()
	return wp.stopped
}

// GetResult retrieves a completed row
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		task.pass.renderRow(w.tracer, task)
		w.resultQueue <- RowResult{Row: task.Row, Pixels: len(task.Acc)}
	}
}
