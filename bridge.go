// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package byol

import (
	"code.hybscloud.com/kont"
)

// LiftFunc lifts a direct-world task function into Expr-world.
// A non-nil error becomes a Throw effect, so it surfaces from Finish exactly
// as a thrown error would.
func LiftFunc[T, R any](f func(T) (R, error)) func(T) kont.Expr[R] {
	return func(arg T) kont.Expr[R] {
		r, err := f(arg)
		if err != nil {
			return kont.ExprThrowError[error, R](err)
		}
		return kont.ExprReturn(r)
	}
}

// LiftEff lifts a Cont-world task function into Expr-world (closures become
// frames). Conversion is lazy: each effect step is translated on demand as
// the task is driven.
func LiftEff[T, R any](f func(T) kont.Eff[R]) func(T) kont.Expr[R] {
	return func(arg T) kont.Expr[R] {
		return kont.Reify(f(arg))
	}
}
