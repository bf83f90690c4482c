package notify

import (
	"sync"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

const (
	// DefaultWorkers is the number of delivery goroutines.
	DefaultWorkers = 3
	// DefaultQueueSize bounds how many undelivered notifications may pile up.
	DefaultQueueSize = 256
)

// Job is one queued notification delivery.
type Job struct {
	ID   string
	Name string
	Run  func() error
}

// Dispatcher runs notification jobs on a small worker pool so the request
// path never waits on the chat webhook or the mail server. Delivery is
// at-most-once: a full queue drops the job with a log line, a failed job is
// logged and not retried.
type Dispatcher struct {
	jobs    chan Job
	workers int
	stopCh  chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
}

// NewDispatcher creates a dispatcher with the given pool and queue size.
func NewDispatcher(workers, queueSize int) *Dispatcher {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Dispatcher{
		jobs:    make(chan Job, queueSize),
		workers: workers,
		stopCh:  make(chan struct{}),
	}
}

// Start launches the workers.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return
	}
	d.running = true
	log.Infof("[Notify] starting %d workers", d.workers)

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
}

// Stop stops the workers after their current job. Queued jobs that no worker
// picked up are dropped; at-most-once delivery makes that acceptable.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.running {
		return
	}
	log.Info("[Notify] stopping workers...")
	close(d.stopCh)
	d.running = false
	d.wg.Wait()
	log.Info("[Notify] all workers stopped")
}

// Enqueue queues a delivery without blocking the caller. Returns false when
// the job was dropped because the queue is full.
func (d *Dispatcher) Enqueue(name string, run func() error) bool {
	job := Job{ID: uuid.New().String(), Name: name, Run: run}
	select {
	case d.jobs <- job:
		return true
	default:
		log.Warnf("[Notify] queue full, dropping job %s (%s)", job.ID, job.Name)
		return false
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for {
		select {
		case <-d.stopCh:
			return
		case job := <-d.jobs:
			if err := job.Run(); err != nil {
				log.Errorf("[Notify] job %s (%s) failed: %v", job.ID, job.Name, err)
			}
		}
	}
}
