package pool

// Handle encodes both the slot generation (upper 32 bits) and the slot index (lower 32 bits).
// The zero Handle never refers to a live slot.
type Handle uint64

func newHandle(generation uint32, index uint32) Handle {
	return Handle(uint64(generation)<<32 | uint64(index))
}

// Generation extracts the lease generation from the handle
func (h Handle) Generation() uint32 {
	return uint32(h >> 32)
}

// Index extracts the slot index from the handle
func (h Handle) Index() uint32 {
	return uint32(h & 0xFFFFFFFF)
}
