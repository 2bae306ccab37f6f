package renderer

import (
	"runtime"
	"sync"

	"github.com/vhxs/go-ray-tracing/pkg/core"
)

// RowTask represents a scanline rendering task for the worker pool
type RowTask struct {
	Row int
}

// RowResult contains the quantized pixels of one rendered scanline
type RowResult struct {
	Row    int
	Pixels []core.RGB
}

// WorkerPool manages parallel scanline rendering.
// The scene is read-only during a render; every row owns its random generator, so workers share no mutable state.
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	quit        chan struct{}
	quitOnce    sync.Once
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   <-chan RowTask
	resultQueue chan<- RowResult
	quit        <-chan struct{}
}

// NewWorkerPool creates a worker pool with room to queue maxRows tasks and results without blocking
func NewWorkerPool(raytracer *Raytracer, maxRows, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, maxRows),
		resultQueue: make(chan RowResult, maxRows),
		quit:        make(chan struct{}),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			raytracer:   raytracer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
			quit:        wp.quit,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop closes the task queue, waits for queued tasks to finish and then closes the result queue
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// Cancel tells workers to skip every task they have not started yet. Stop must still be called.
func (wp *WorkerPool) Cancel() {
	wp.quitOnce.Do(func() { close(wp.quit) })
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row; ok is false once the pool is stopped and drained
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
		select {
		case <-w.quit:
			return
		default:
		}
		w.resultQueue <- RowResult{
			Row:    task.Row,
			Pixels: w.raytracer.RenderRow(task.Row),
		}
	}
}
