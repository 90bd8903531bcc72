// Package pool provides a slot arena that recycles high-churn objects such as
// bullets. Slots are preallocated in fixed blocks, leased through generation
// checked handles and returned to a FIFO free queue.
//
// When the free queue is empty the pool grows by one slot instead of failing.
// Every such growth is counted in Stats.Exhaustions so callers can size the
// initial capacity from observed runs.
package pool

import (
	"errors"
	"log/slog"

	"github.com/kamstrup/intmap"
)

const blockSize = 64

// ErrNotLeased is returned by Put when the handle does not refer to a slot
// that is currently leased: a double return or a stale handle.
var ErrNotLeased = errors.New("pool: handle is not leased")

// Stats is a snapshot of a pool's occupancy.
type Stats struct {
	Name        string
	Capacity    int
	InUse       int
	Free        int
	HighWater   int
	Exhaustions int
}

type slot[T any] struct {
	value      T
	generation uint32
}

// Pool is an arena of T slots. The zero value is not usable; call New.
//
// Blocks are allocated individually and never copied, so a *T obtained from
// Get or At stays valid for as long as its handle is leased.
type Pool[T any] struct {
	name   string
	logger *slog.Logger

	blocks []*[blockSize]slot[T]
	free   *fifo
	leased *intmap.Map[uint32, Handle]

	nextIndex   int
	inUse       int
	highWater   int
	exhaustions int
	bursting    bool
}

// Option configures a Pool.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report growth. Defaults to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates a pool with capacity preallocated slots.
func New[T any](name string, capacity int, opts ...Option) *Pool[T] {
	if capacity < 0 {
		panic("pool: negative capacity")
	}

	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	p := &Pool[T]{
		name:   name,
		logger: o.logger,
		free:   newFIFO(capacity),
		leased: intmap.New[uint32, Handle](capacity),
	}
	for range capacity {
		p.free.Push(p.allocSlot())
	}
	return p
}

// allocSlot reserves a brand new slot index, adding a block when needed.
func (p *Pool[T]) allocSlot() uint32 {
	index := p.nextIndex
	p.nextIndex++

	if index/blockSize >= len(p.blocks) {
		p.blocks = append(p.blocks, new([blockSize]slot[T]))
	}
	return uint32(index)
}

func (p *Pool[T]) slot(index uint32) *slot[T] {
	return &p.blocks[index/blockSize][index%blockSize]
}

// Get leases a zeroed slot from the front of the free queue, growing the pool
// if no slot is free.
func (p *Pool[T]) Get() (Handle, *T) {
	index, ok := p.free.Pop()
	if !ok {
		index = p.allocSlot()
		p.exhaustions++
		if !p.bursting {
			p.bursting = true
			p.logger.Warn("pool exhausted, growing",
				"pool", p.name,
				"capacity", p.nextIndex,
				"exhaustions", p.exhaustions)
		}
	}

	s := p.slot(index)
	var zero T
	s.value = zero
	s.generation++
	if s.generation == 0 {
		s.generation = 1
	}

	h := newHandle(s.generation, index)
	p.leased.Put(index, h)

	p.inUse++
	if p.inUse > p.highWater {
		p.highWater = p.inUse
	}
	return h, &s.value
}

// At resolves a leased handle. It returns nil for stale or unknown handles.
func (p *Pool[T]) At(h Handle) *T {
	index := h.Index()
	if cur, ok := p.leased.Get(index); !ok || cur != h {
		return nil
	}
	return &p.slot(index).value
}

// Put returns a leased slot to the back of the free queue. The caller must have
// dropped every reference to it first.
func (p *Pool[T]) Put(h Handle) error {
	index := h.Index()
	if cur, ok := p.leased.Get(index); !ok || cur != h {
		return ErrNotLeased
	}

	p.leased.Del(index)
	s := p.slot(index)
	var zero T
	s.value = zero

	p.free.Push(index)
	p.inUse--
	p.bursting = false
	return nil
}

// Stats returns the current occupancy counters.
func (p *Pool[T]) Stats() Stats {
	return Stats{
		Name:        p.name,
		Capacity:    p.nextIndex,
		InUse:       p.inUse,
		Free:        p.free.Len(),
		HighWater:   p.highWater,
		Exhaustions: p.exhaustions,
	}
}
