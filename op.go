// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package byol

import (
	"code.hybscloud.com/kont"
)

// Enter is the effect operation every spawned task performs first.
// The wrapper built by Spawn suspends here before observing its argument,
// so the handle is published before any user code runs. Drivers resume it
// with struct{}{}.
type Enter struct {
	kont.Phantom[struct{}]
}

// Yield is the effect operation for voluntary rescheduling.
// Perform(Yield{}) gives up the current worker; the continuation is
// re-enqueued on the installed executor and resumes later, possibly on
// another worker. Deferred tasks, and tasks running without an executor,
// resume in place.
type Yield struct {
	kont.Phantom[struct{}]
}
