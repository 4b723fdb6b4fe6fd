// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package byol provides cooperative task admission over a bring-your-own
// executor, via algebraic effects on [code.hybscloud.com/kont].
//
// A spawn site is a decision point: against a single shared counter of
// in-flight tasks, [Spawn] either hands the task to the installed host
// executor (widening the execution graph) or defers it into its [Finish]
// (keeping execution depth-first). Deferred tasks look identical to admitted
// ones, so application code is written once and behaves correctly in either
// mode. Deep recursion under a saturated bound serialises naturally, capping
// both parallelism and peak memory.
//
// # Architecture
//
//   - Admission: One fetch-add on [code.hybscloud.com/atomix] per spawn; the
//     undo path only runs once the bound is hit.
//   - Tasks: Suspendable computations are [code.hybscloud.com/kont] Expr
//     values. Every spawned task parks at an [Enter] suspension before any
//     user code runs, so the handle is published first.
//   - Completion: Bounded SPSC mailboxes via [code.hybscloud.com/lfq].
//     [Finish] waits past [code.hybscloud.com/iox.ErrWouldBlock] by helping
//     the executor, then with adaptive backoff (iox.Backoff).
//   - Executor: [Executor] is a reference host loop (worker goroutines over
//     a FIFO). Any loop with the same shape can be brought instead; with no
//     executor installed, everything runs inline on the finishers.
//
// # API Topologies
//
//   - Scheduler: [New], [Scheduler.Close], [Spawn], [Finish].
//   - Worlds: [Spawn] (Expr-world), [SpawnEff] (Cont-world), [SpawnFunc]
//     (direct world). Bridge via [LiftEff] and [LiftFunc].
//   - Rescheduling: [Yield], with fused [YieldThen] and [ExprYieldThen].
//   - One-shot: [Run] and [RunInline] create, drive, and tear down.
//
// # Integration
//
//   - Frames: Activation storage comes from an [Arena]; the default
//     [PoolArena] recycles frames and never fails. Arena errors surface from
//     [Spawn] with the admission counter already rebalanced.
//   - Errors: Task errors travel as kont error effects and surface from
//     [Finish] unchanged.
//
// # Example
//
//	ex := byol.NewExecutor(4)
//	defer ex.Close()
//	s := byol.New(64, byol.WithExecutor(ex))
//	defer s.Close()
//	h, _ := byol.SpawnFunc(s, work, arg)
//	v, err := byol.Finish(s, h)
package byol
