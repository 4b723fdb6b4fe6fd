// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package byol

import (
	"code.hybscloud.com/atomix"
)

// Scheduler admits or defers spawned tasks against a bound on concurrently
// admitted tasks. The bound is advisory: it caps resource use, it is not a
// correctness gate on shared data. A Scheduler must outlive every handle it
// issues.
type Scheduler struct {
	active   atomix.Uint32
	arena    Arena
	exec     *Executor
	maxTasks uint32
	serial   Serial
}

// Option configures a Scheduler at construction.
type Option func(*Scheduler)

// WithArena installs a custom activation-frame arena.
func WithArena(a Arena) Option {
	return func(s *Scheduler) { s.arena = a }
}

// WithExecutor installs the host executor that admitted tasks are handed to.
// Without one, every task runs inline on its finisher.
func WithExecutor(e *Executor) Option {
	return func(s *Scheduler) { s.exec = e }
}

// New creates a Scheduler with the given admission bound.
//
// maxTasks = 0 is permitted: every spawn is deferred and all work runs
// inline on the callers of Finish.
func New(maxTasks uint32, opts ...Option) *Scheduler {
	s := &Scheduler{maxTasks: maxTasks, serial: nextSerial()}
	for _, opt := range opts {
		opt(s)
	}
	if s.arena == nil {
		s.arena = NewArena()
	}
	return s
}

// Close asserts quiescence. Finishing every handle before Close is the
// caller's obligation: Close panics if admitted tasks are still in flight,
// or if the pooled arena holds unreleased frames.
func (s *Scheduler) Close() {
	if n := s.active.Load(); n != 0 {
		panic("byol: Close with admitted tasks in flight")
	}
	if pa, ok := s.arena.(*PoolArena); ok {
		if n := pa.Outstanding(); n != 0 {
			panic("byol: Close with unreleased activation frames")
		}
	}
}

// Active reports the number of currently admitted tasks.
func (s *Scheduler) Active() uint32 {
	return s.active.Load()
}

// MaxTasks returns the admission bound configured at New.
func (s *Scheduler) MaxTasks() uint32 {
	return s.maxTasks
}

// Serial returns the serial number assigned to this scheduler.
func (s *Scheduler) Serial() Serial {
	return s.serial
}

// admit runs the admission decision: one fetch-add on the fast path, an
// undoing fetch-add on the cold path once the bound is hit. The counter may
// transiently exceed the bound between the two; the transient is invisible
// through Spawn, which has not yet returned.
func (s *Scheduler) admit() bool {
	prev := s.active.Add(1) - 1
	if prev < s.maxTasks {
		return true
	}
	s.active.Add(^uint32(0))
	return false
}

// release undoes one admission.
func (s *Scheduler) release() {
	s.active.Add(^uint32(0))
}
