// Package scratch hands out temporary vectors and transforms for the
// duration of a single computation.
//
// A Pad is acquired at the start of a computation and released with Done,
// usually deferred. Everything a pad handed out returns to the arena on
// release and must not be referenced afterwards. Pads are reused, so a
// steady-state simulation does not allocate here.
//
// Arenas are not safe for concurrent use.
package scratch

import (
	"fmt"

	"github.com/vova616/impulse/transform"
	"github.com/vova616/impulse/vect"
)

// DefaultQuota is the number of objects of each kind a pad may hand out.
const DefaultQuota = 10

type buffer struct {
	arena *Arena
	gen   uint64
	live  bool

	vects []vect.Vect
	nv    int
	xfs   []transform.Transform
	nx    int
}

type Arena struct {
	quota int
	free  []*buffer
	// outstanding pads, for diagnostics.
	active int
}

// Pad is the token returned by Acquire. It is a value; copies refer to the
// same underlying storage and share its lifetime.
type Pad struct {
	buf *buffer
	gen uint64
}

func NewArena(quota int) *Arena {
	if quota <= 0 {
		quota = DefaultQuota
	}
	return &Arena{quota: quota}
}

var defaultArena = NewArena(DefaultQuota)

// Acquire takes a pad from the package arena.
func Acquire() Pad {
	return defaultArena.Acquire()
}

func (a *Arena) Acquire() Pad {
	var buf *buffer
	if n := len(a.free); n > 0 {
		buf = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		buf = &buffer{
			arena: a,
			vects: make([]vect.Vect, a.quota),
			xfs:   make([]transform.Transform, a.quota),
		}
	}
	buf.live = true
	buf.nv = 0
	buf.nx = 0
	a.active++
	return Pad{buf: buf, gen: buf.gen}
}

// Active returns the number of pads acquired and not yet released.
func (a *Arena) Active() int {
	return a.active
}

func (p Pad) check() {
	if p.buf == nil {
		panic("scratch: pad was never acquired")
	}
	if !p.buf.live || p.buf.gen != p.gen {
		panic("scratch: pad used after release")
	}
}

// Vect returns a zeroed vector owned by the pad.
func (p Pad) Vect() *vect.Vect {
	p.check()
	b := p.buf
	if b.nv >= len(b.vects) {
		panic(fmt.Sprintf("scratch: vector quota of %d exceeded", len(b.vects)))
	}
	v := &b.vects[b.nv]
	b.nv++
	v.Zero()
	return v
}

// Transform returns an identity transform owned by the pad.
func (p Pad) Transform() *transform.Transform {
	p.check()
	b := p.buf
	if b.nx >= len(b.xfs) {
		panic(fmt.Sprintf("scratch: transform quota of %d exceeded", len(b.xfs)))
	}
	xf := &b.xfs[b.nx]
	b.nx++
	xf.SetIdentity()
	return xf
}

// Done returns the pad and everything it handed out to the arena.
func (p Pad) Done() {
	p.check()
	b := p.buf
	b.live = false
	b.gen++
	b.arena.active--
	b.arena.free = append(b.arena.free, b)
}
