// Package worker runs replay scripts on a pool of goroutines.
package worker

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/replay"
)

// WorkItem is a script waiting to be replayed.
type WorkItem struct {
	Script replay.Script
	Index  int // Submission order, used to restore input order
}

// ProcessResult is the outcome of one work item.
type ProcessResult struct {
	Outcome replay.Outcome
	Index   int
}

// Failed reports whether any move of the script was rejected.
func (r ProcessResult) Failed() bool {
	return r.Outcome.Err() != nil
}

// ProcessFunc turns a work item into a result. It runs on a worker
// goroutine and must not share boards between calls.
type ProcessFunc func(item WorkItem) ProcessResult

// ReplayFunc returns a ProcessFunc that runs each script under rules.
func ReplayFunc(rules *config.RulesConfig) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Outcome: replay.Run(item.Script, rules), Index: item.Index}
	}
}

// Pool fans work items out to a fixed number of workers.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size. Values below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool running processFunc. The default is one worker
// and a buffer of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues an item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers skip the items still queued.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close stops accepting work, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// RunAll replays every script and returns the outcomes in input order.
// With stopOnFailure, scripts not yet started when one fails are skipped
// and absent from the result.
func RunAll(scripts []replay.Script, rules *config.RulesConfig, stopOnFailure bool, opts ...PoolOption) []replay.Outcome {
	pool := NewPool(ReplayFunc(rules), opts...)
	pool.Start()

	go func() {
		for i, s := range scripts {
			if pool.IsStopped() {
				break
			}
			pool.Submit(WorkItem{Script: s, Index: i})
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(scripts))
	for r := range pool.Results() {
		if stopOnFailure && r.Failed() {
			pool.Stop()
		}
		results = append(results, r)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	outcomes := make([]replay.Outcome, len(results))
	for i, r := range results {
		outcomes[i] = r.Outcome
	}
	return outcomes
}
