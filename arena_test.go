// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package byol_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/byol"
)

var errNoFrame = errors.New("no frame")

// flakyArena delegates to an inner arena and fails the nth acquisition.
type flakyArena struct {
	inner byol.Arena
	n     int
	count int
}

func (a *flakyArena) Acquire() (*byol.Frame, error) {
	a.count++
	if a.count == a.n {
		return nil, errNoFrame
	}
	return a.inner.Acquire()
}

func (a *flakyArena) Release(fr *byol.Frame) {
	a.inner.Release(fr)
}

func TestPoolArenaAccounting(t *testing.T) {
	a := byol.NewArena()

	fr1, err := a.Acquire()
	if err != nil {
		t.Fatalf("acquire 1: %v", err)
	}
	fr2, err := a.Acquire()
	if err != nil {
		t.Fatalf("acquire 2: %v", err)
	}
	if n := a.Outstanding(); n != 2 {
		t.Fatalf("outstanding got %d, want 2", n)
	}

	a.Release(fr1)
	a.Release(fr2)
	if n := a.Outstanding(); n != 0 {
		t.Fatalf("outstanding got %d, want 0", n)
	}
	if n := a.Acquired(); n != 2 {
		t.Fatalf("acquired got %d, want 2", n)
	}
}

func TestSpawnArenaFailure(t *testing.T) {
	s := byol.New(4, byol.WithArena(&flakyArena{inner: byol.NewArena(), n: 1}))

	before := s.Active()
	_, err := byol.SpawnFunc(s, ident, 1)
	if err != errNoFrame {
		t.Fatalf("spawn got %v, want errNoFrame", err)
	}
	// The admission increment is undone before the arena error surfaces.
	if after := s.Active(); after != before {
		t.Fatalf("active changed across a failed spawn: %d -> %d", before, after)
	}
	s.Close()
}

func TestArenaFailureMidTree(t *testing.T) {
	inner := byol.NewArena()
	s := byol.New(4, byol.WithArena(&flakyArena{inner: inner, n: 5}))

	if _, err := quicksum(s, span{0, 1600}); err != errNoFrame {
		t.Fatalf("quicksum got %v, want errNoFrame", err)
	}
	// Every frame acquired before the failure was finished and released.
	if n := inner.Outstanding(); n != 0 {
		t.Fatalf("outstanding frames got %d, want 0", n)
	}
	if n := s.Active(); n != 0 {
		t.Fatalf("active got %d, want 0", n)
	}
	s.Close()
}

func TestAcquisitionsMatchSpawns(t *testing.T) {
	a := byol.NewArena()
	s := byol.New(4, byol.WithArena(a))

	// span width 800 splits into 7 internal nodes, each spawning twice.
	got, err := quicksum(s, span{0, 800})
	if err != nil {
		t.Fatalf("quicksum: %v", err)
	}
	if want := sumSerial(span{0, 800}); got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
	if n := a.Acquired(); n != 14 {
		t.Fatalf("acquired got %d, want 14", n)
	}
	if n := a.Outstanding(); n != 0 {
		t.Fatalf("outstanding got %d, want 0", n)
	}
	s.Close()
}
