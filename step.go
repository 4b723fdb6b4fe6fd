// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package byol

import (
	"code.hybscloud.com/kont"
)

// drive advances a task suspension op by op until it completes or parks.
//
// Enter resumes immediately: the publication point has passed by the time
// any driver runs. Yield re-enqueues the continuation of an admitted task on
// the installed executor and returns; deferred tasks, and tasks running
// without an executor, resume in place. Error operations dispatch eagerly:
// a Throw discards the rest of the computation and completes with Left.
func drive[R any](s *Scheduler, fr *Frame, susp *kont.Suspension[kont.Either[error, R]], admitted bool) {
	for {
		var resumeWith kont.Resumed
		switch op := susp.Op().(type) {
		case Enter:
			resumeWith = struct{}{}
		case Yield:
			if admitted && s.exec != nil {
				pending := susp
				s.exec.submit(func() { resume(s, fr, pending, admitted) })
				return
			}
			resumeWith = struct{}{}
		default:
			eop, ok := op.(errorDispatcher)
			if !ok {
				panic("byol: unhandled effect in drive")
			}
			v, err := dispatchErrorOp(eop)
			if err != nil {
				susp.Discard()
				complete(s, fr, kont.Left[error, R](err), admitted)
				return
			}
			resumeWith = v
		}
		result, next := susp.Resume(resumeWith)
		if next == nil {
			complete(s, fr, result, admitted)
			return
		}
		susp = next
	}
}

// resume is the executor-side continuation entry after a Yield.
func resume[R any](s *Scheduler, fr *Frame, susp *kont.Suspension[kont.Either[error, R]], admitted bool) {
	result, next := susp.Resume(struct{}{})
	if next == nil {
		complete(s, fr, result, admitted)
		return
	}
	drive(s, fr, next, admitted)
}

// complete finishes a task: the admission decrement happens before the
// mailbox publish, so a returned Finish implies the admission slot is free
// again. The decrement runs on every exit path, success and error alike.
func complete[R any](s *Scheduler, fr *Frame, result kont.Either[error, R], admitted bool) {
	if admitted {
		s.release()
	}
	fr.slot = result
	if err := fr.mailbox.Enqueue(&fr.slot); err != nil {
		// single producer, one result per task: the mailbox cannot be full
		panic("byol: completion mailbox full")
	}
}
