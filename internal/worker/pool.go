// Package worker replays games in parallel. Each game is played on a board
// owned by the worker that picked it up; boards are never shared.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/luchess-go/internal/replay"
)

// WorkItem is a game waiting to be replayed.
type WorkItem struct {
	Game  replay.Game
	Index int // Position in the input, used to restore order
}

// ProcessResult is the replay of one work item.
type ProcessResult struct {
	Index  int
	Result replay.Result
}

// ProcessFunc replays a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// ReplayFunc returns a ProcessFunc that replays each game with r.
func ReplayFunc(r *replay.Replayer) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Index: item.Index, Result: r.Replay(item.Game)}
	}
}

// Pool runs a fixed number of replay workers.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
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

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues a work item. It blocks while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers skip any items still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed once they have.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// ReplayAll replays games with r on a pool configured by opts and returns
// the results in input order. If ctx is cancelled, games not yet started
// are skipped and only the finished results are returned, along with
// ctx.Err().
func ReplayAll(ctx context.Context, r *replay.Replayer, games []replay.Game, opts ...PoolOption) ([]replay.Result, error) {
	pool := NewPool(ReplayFunc(r), opts...)
	pool.Start()

	go func() {
		defer pool.Close()
		for i, g := range games {
			select {
			case <-ctx.Done():
				pool.Stop()
				return
			default:
			}
			pool.Submit(WorkItem{Game: g, Index: i})
		}
	}()

	var collected []ProcessResult
	for res := range pool.Results() {
		collected = append(collected, res)
	}

	sort.Slice(collected, func(i, j int) bool { return collected[i].Index < collected[j].Index })
	results := make([]replay.Result, len(collected))
	for i, c := range collected {
		results[i] = c.Result
	}
	return results, ctx.Err()
}
