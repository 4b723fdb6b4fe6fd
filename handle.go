// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package byol

import (
	"code.hybscloud.com/kont"
)

// Handle is the token returned by Spawn and consumed by exactly one Finish.
//
// A handle is dual-mode. A queued task lives on the host executor and only
// needs awaiting. A deferred task holds its suspension, parked at Enter, and
// is driven by Finish on the caller. Dropping a handle without finishing it
// leaks its frame and, for admitted tasks that were not queued on an
// executor, an admission slot.
type Handle[R any] struct {
	fr      *Frame
	susp    *kont.Suspension[kont.Either[error, R]]
	resumed bool
	queued  bool
}

// Resumed reports the admission decision: true iff the task absorbed an
// admission slot at Spawn. A task spawned with Resumed false and not yet
// finished has performed no user-observable work.
func (h Handle[R]) Resumed() bool {
	return h.resumed
}
