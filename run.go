// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package byol

// Run creates an executor and a scheduler, runs one root task on them, and
// tears both down after the spawn tree completes. The root receives the
// scheduler so it can spawn.
func Run[T, R any](maxTasks uint32, workers int, root func(*Scheduler, T) (R, error), arg T) (R, error) {
	ex := NewExecutor(workers)
	defer ex.Close()
	s := New(maxTasks, WithExecutor(ex))
	defer s.Close()
	h, err := SpawnFunc(s, func(a T) (R, error) { return root(s, a) }, arg)
	if err != nil {
		var zero R
		return zero, err
	}
	return Finish(s, h)
}

// RunInline runs one root task with no executor installed: every spawn in
// the tree is either deferred or admitted-but-undriven, and all work runs on
// the calling goroutine. Does not spawn goroutines or create channels.
func RunInline[T, R any](maxTasks uint32, root func(*Scheduler, T) (R, error), arg T) (R, error) {
	s := New(maxTasks)
	defer s.Close()
	h, err := SpawnFunc(s, func(a T) (R, error) { return root(s, a) }, arg)
	if err != nil {
		var zero R
		return zero, err
	}
	return Finish(s, h)
}
