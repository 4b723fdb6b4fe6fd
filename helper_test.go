// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package byol_test

import (
	"code.hybscloud.com/byol"
)

// span is a half-open range [lo, hi) of consecutive integers.
type span struct {
	lo, hi uint64
}

// quickThreshold is the width below which quicksum sums directly instead of
// splitting.
const quickThreshold = 100

// ident is the trivial task function used by handle and admission tests.
func ident(v int) (int, error) {
	return v, nil
}

// sumSerial is the oracle: a plain loop over [lo, hi).
func sumSerial(sp span) uint64 {
	var total uint64
	for k := sp.lo; k < sp.hi; k++ {
		total += k
	}
	return total
}

// quicksum is the parallel divide-and-conquer workload: split the span,
// spawn both halves, finish both. Admission decides, split by split, whether
// a half widens onto the executor or stays inline.
func quicksum(s *byol.Scheduler, sp span) (uint64, error) {
	if sp.hi-sp.lo <= quickThreshold {
		return sumSerial(sp), nil
	}
	mid := sp.lo + (sp.hi-sp.lo)/2
	half := func(p span) (uint64, error) { return quicksum(s, p) }
	left, err := byol.SpawnFunc(s, half, span{sp.lo, mid})
	if err != nil {
		return 0, err
	}
	right, err := byol.SpawnFunc(s, half, span{mid, sp.hi})
	if err != nil {
		_, _ = byol.Finish(s, left)
		return 0, err
	}
	lv, lerr := byol.Finish(s, left)
	rv, rerr := byol.Finish(s, right)
	if lerr != nil {
		return 0, lerr
	}
	if rerr != nil {
		return 0, rerr
	}
	return lv + rv, nil
}
