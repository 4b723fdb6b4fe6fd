// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package byol

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Finish retrieves a spawned task's result and releases its activation
// frame, on success and error paths alike. Each handle must be finished
// exactly once.
//
// A deferred task is driven here, on the caller. A queued task is awaited:
// while its mailbox would block, Finish helps by running one queued executor
// task before backing off, so a Finish on a worker cannot strand the tasks
// queued behind it.
func Finish[R any](s *Scheduler, h Handle[R]) (R, error) {
	fr := h.fr
	if fr == nil {
		panic("byol: Finish on a zero handle")
	}
	if !h.queued {
		drive(s, fr, h.susp, h.resumed)
	}
	var bo iox.Backoff
	for {
		v, err := fr.mailbox.Dequeue()
		if err == nil {
			result := v.(kont.Either[error, R])
			s.arena.Release(fr)
			if e, ok := result.GetLeft(); ok {
				var zero R
				return zero, e
			}
			r, _ := result.GetRight()
			return r, nil
		}
		if !iox.IsWouldBlock(err) {
			panic("byol: completion mailbox: " + err.Error())
		}
		if ex := s.exec; ex != nil && ex.tryRunOne() {
			bo.Reset()
			continue
		}
		bo.Wait()
	}
}
