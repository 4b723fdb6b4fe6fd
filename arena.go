// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package byol

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/lfq"
)

// mailboxCapacity is the bounded capacity of the completion mailbox.
// A task produces exactly one result; 4 keeps the ring buffer within a
// single cache line.
const mailboxCapacity = 4

// Frame is the activation storage backing one spawned task: a staging slot
// for the completion value and a bounded single-producer single-consumer
// mailbox. The producer is whichever driver completes the task; the consumer
// is the finisher.
type Frame struct {
	slot    any
	mailbox lfq.SPSC[any]
}

// Arena allocates and recycles activation frames.
// Implementations must tolerate concurrent calls from multiple workers.
// An Acquire error surfaces from Spawn with the admission counter already
// rebalanced.
type Arena interface {
	Acquire() (*Frame, error)
	Release(*Frame)
}

// PoolArena is the default Arena. Frames are recycled through a sync.Pool,
// so acquisition never fails. Outstanding and total acquisitions are counted
// for quiescence asserts and leak tests.
type PoolArena struct {
	pool        sync.Pool
	outstanding atomix.Uint32
	acquired    atomix.Uint32
}

// NewArena creates an empty PoolArena.
func NewArena() *PoolArena {
	return &PoolArena{}
}

// Acquire returns a ready frame, recycled or fresh.
func (a *PoolArena) Acquire() (*Frame, error) {
	a.outstanding.Add(1)
	a.acquired.Add(1)
	if fr, ok := a.pool.Get().(*Frame); ok {
		return fr, nil
	}
	fr := &Frame{}
	fr.mailbox.Init(mailboxCapacity)
	return fr, nil
}

// Release returns a frame to the pool. The mailbox is empty by the time a
// finisher releases, so the frame is immediately reusable.
func (a *PoolArena) Release(fr *Frame) {
	fr.slot = nil
	a.outstanding.Add(^uint32(0))
	a.pool.Put(fr)
}

// Outstanding reports frames acquired and not yet released.
func (a *PoolArena) Outstanding() uint32 {
	return a.outstanding.Load()
}

// Acquired reports the total number of acquisitions since construction.
// Paired with Outstanding, it makes frame leaks observable: after every
// handle is finished, Outstanding is zero and Acquired equals the number
// of successful spawns.
func (a *PoolArena) Acquired() uint32 {
	return a.acquired.Load()
}
