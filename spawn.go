// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package byol

import (
	"code.hybscloud.com/kont"
)

// Spawn submits an Expr-world task function for execution and returns its
// handle.
//
// Admission is a single fetch-add against the active-task counter: below the
// bound, the task is handed to the installed executor; at the bound, the
// increment is undone and the task defers into its Finish. Either way the
// wrapper parks at its Enter suspension before any user code runs, so the
// handle is published first. A spawner that finds the counter at the bound
// therefore runs the child on its own context later, which is what keeps
// deep recursion under saturation depth-first and bounded.
//
// An arena failure is returned as is, with the admission counter already
// rebalanced and no handle produced.
func Spawn[T, R any](s *Scheduler, f func(T) kont.Expr[R], arg T) (Handle[R], error) {
	admitted := s.admit()
	fr, err := s.arena.Acquire()
	if err != nil {
		if admitted {
			s.release()
		}
		return Handle[R]{}, err
	}
	_, susp := kont.StepExpr(suspendFirst(f, arg))
	if susp == nil {
		panic("byol: wrapper completed before its Enter suspension")
	}
	h := Handle[R]{fr: fr, susp: susp, resumed: admitted}
	if admitted && s.exec != nil {
		h.queued = true
		s.exec.submit(func() { drive(s, fr, susp, true) })
	}
	return h, nil
}

// SpawnFunc submits a direct-world task function. A non-nil error return
// propagates through Finish unchanged.
func SpawnFunc[T, R any](s *Scheduler, f func(T) (R, error), arg T) (Handle[R], error) {
	return Spawn(s, LiftFunc(f), arg)
}

// SpawnEff submits a Cont-world task function.
func SpawnEff[T, R any](s *Scheduler, f func(T) kont.Eff[R], arg T) (Handle[R], error) {
	return Spawn(s, LiftEff(f), arg)
}
