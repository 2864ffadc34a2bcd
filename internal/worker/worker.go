// Package worker runs fire-and-forget side tasks, such as asynchronous audit
// writes, on a fixed set of goroutines.
package worker

import (
	"sync"

	"marketplace-api/internal/logger"
)

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool.
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
// The queue is buffered by queueSize so Submit rarely blocks a request.
func NewPool(n, queueSize int) Pool {
	if n <= 0 {
		n = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	p := &pool{jobs: make(chan Task, queueSize)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				run(job)
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
	once sync.Once
}

// run 執行單一工作，panic 不會讓 worker 結束
func run(job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("worker task panicked: %v", r)
		}
	}()
	job()
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// Stop drains queued tasks and waits for the workers to exit.
func (p *pool) Stop() {
	p.once.Do(func() { close(p.jobs) })
	p.wg.Wait()
}

// Inline runs every task on the caller's goroutine. Used in tests and when a
// pool is not wanted.
type Inline struct{}

func (Inline) Submit(t Task) { run(t) }

func (Inline) Stop() {}
