// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package byol

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// Executor is the reference host executor: a fixed set of worker goroutines
// draining a FIFO of thunks, waiting with adaptive backoff (iox.Backoff)
// when idle. The scheduler consumes only submission, single-task stealing
// for helping finishers, and Close, so any loop with the same shape can be
// brought instead.
type Executor struct {
	mu     sync.Mutex
	queue  []func()
	closed atomix.Uint32
	wg     sync.WaitGroup
}

// NewExecutor starts an executor with the given number of workers.
//
// workers = 0 is permitted: submitted tasks then run only when a finisher
// helps, which still drives every spawn tree to completion.
func NewExecutor(workers int) *Executor {
	e := &Executor{}
	for range workers {
		e.wg.Add(1)
		go e.work()
	}
	return e
}

// Go starts a detached top-level entry point on the executor.
func (e *Executor) Go(f func()) {
	e.submit(f)
}

// Close lets the workers drain the queue, then stops and joins them.
// Submitting after Close is a programmer error.
func (e *Executor) Close() {
	e.closed.Add(1)
	e.wg.Wait()
}

func (e *Executor) submit(f func()) {
	e.mu.Lock()
	e.queue = append(e.queue, f)
	e.mu.Unlock()
}

func (e *Executor) pop() func() {
	e.mu.Lock()
	if len(e.queue) == 0 {
		e.mu.Unlock()
		return nil
	}
	f := e.queue[0]
	e.queue[0] = nil
	e.queue = e.queue[1:]
	e.mu.Unlock()
	return f
}

// tryRunOne pops and runs a single queued thunk. Called by workers and by
// finishers helping while their mailbox would block.
func (e *Executor) tryRunOne() bool {
	f := e.pop()
	if f == nil {
		return false
	}
	f()
	return true
}

func (e *Executor) work() {
	defer e.wg.Done()
	var bo iox.Backoff
	for {
		if e.tryRunOne() {
			bo.Reset()
			continue
		}
		if e.closed.Load() != 0 {
			return
		}
		bo.Wait()
	}
}
