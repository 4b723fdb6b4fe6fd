// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package byol

import (
	"code.hybscloud.com/kont"
)

// Pre-allocated erased operations and frames to eliminate heap escapes
// when boxing empty structs into any/kont.Frame during Expr-world execution.
var (
	exprReturnFrame kont.Frame  = kont.ReturnFrame{}
	exprEnter       kont.Erased = Enter{}
	exprYield       kont.Erased = Yield{}
)

// identityResume is the identity resume function for EffectFrame construction.
// Named function produces a static function value, consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

// ExprYieldThen yields to the host executor and then continues with next.
// Fuses ExprPerform(Yield{}) + ExprThen.
func ExprYieldThen[B any](next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = exprYield
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

// suspendUnwind invokes the user task function once the Enter suspension
// resumes. Until then neither f nor arg has been observed.
func suspendUnwind[T, R any](data, data2, _ kont.Erased, _ kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(T) kont.Expr[R])
	arg := data2.(T)
	result := f(arg)
	return kont.Erased(result.Value), result.Frame
}

// widenRight lifts a task payload into the Either channel shared with
// thrown errors.
func widenRight[R any](r R) kont.Either[error, R] {
	return kont.Right[error, R](r)
}

// suspendFirst builds the immediate-suspend wrapper around (f, arg): an
// Enter effect as the first frame, then an unwind that invokes f, with the
// result widened to Either[error, R]. Stepping the returned Expr always
// parks at Enter, giving admitted and deferred tasks one uniform shape.
func suspendFirst[T, R any](f func(T) kont.Expr[R], arg T) kont.Expr[kont.Either[error, R]] {
	uf := kont.AcquireUnwindFrame()
	uf.Data1 = f
	uf.Data2 = arg
	uf.Unwind = suspendUnwind[T, R]
	ef := kont.AcquireEffectFrame()
	ef.Operation = exprEnter
	ef.Resume = identityResume
	ef.Next = uf
	return kont.ExprMap(kont.ExprSuspend[R](ef), widenRight[R])
}
