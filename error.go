// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package byol

import (
	"code.hybscloud.com/kont"
)

// errorDispatcher is the structural interface for kont error operations
// (Throw, Catch) specialised to the dynamic error type tasks travel with.
type errorDispatcher interface {
	DispatchError(ctx *kont.ErrorContext[error]) (kont.Resumed, bool)
}

// dispatchErrorOp eagerly dispatches an error operation.
// A Throw sets the context error: the caller must discard the suspension and
// complete with Left. A recovered Catch returns the value to resume with.
func dispatchErrorOp(eop errorDispatcher) (kont.Resumed, error) {
	var ctx kont.ErrorContext[error]
	v, _ := eop.DispatchError(&ctx)
	if ctx.HasErr {
		return nil, ctx.Err
	}
	return v, nil
}
