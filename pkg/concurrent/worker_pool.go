package concurrent

import (
	"sync"
)

type JobFunc[T any, G any] func(job T) G

type indexedJob[T any] struct {
	index int
	job   T
}

type indexedResult[G any] struct {
	index  int
	result G
}

// workerPool buffers every job and every result, so it must be created with a queue size of at
// least the number of jobs that will be added. Map sizes it that way.
type workerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan indexedJob[T]
	results    chan indexedResult[G]
	wg         sync.WaitGroup
	submitted  int
}

func newWorkerPool[T any, G any](numWorkers, jobQueueSize int) *workerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &workerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan indexedJob[T], jobQueueSize),
		results:    make(chan indexedResult[G], jobQueueSize),
	}
}

func (wp *workerPool[T, G]) worker(jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for ij := range wp.jobQueue {
		wp.results <- indexedResult[G]{index: ij.index, result: jobFunc(ij.job)}
	}
}

func (wp *workerPool[T, G]) start(jobFunc JobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(jobFunc)
	}
}

// addJob queues job. Jobs are numbered in the order they are added.
func (wp *workerPool[T, G]) addJob(job T) {
	wp.jobQueue <- indexedJob[T]{index: wp.submitted, job: job}
	wp.submitted++
}

func (wp *workerPool[T, G]) close() {
	close(wp.jobQueue)
}

func (wp *workerPool[T, G]) wait() {
	wp.wg.Wait()
	close(wp.results)
}

// collectResults drains the pool and returns the results in job order. Call it after close.
func (wp *workerPool[T, G]) collectResults() []G {
	go wp.wait()

	out := make([]G, wp.submitted)
	for res := range wp.results {
		out[res.index] = res.result
	}
	return out
}

// Map runs jobFunc over jobs on numWorkers goroutines and returns the results in job order.
func Map[T any, G any](numWorkers int, jobs []T, jobFunc JobFunc[T, G]) []G {
	wp := newWorkerPool[T, G](numWorkers, len(jobs))
	wp.start(jobFunc)
	for _, job := range jobs {
		wp.addJob(job)
	}
	wp.close()
	return wp.collectResults()
}
