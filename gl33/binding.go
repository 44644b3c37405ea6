// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl33

// BindingClass is the kind of binding slot a resource occupies.
type BindingClass int

// Binding slot classes, each with its own independent set of indices.
const (
	BufferBinding BindingClass = iota
	TextureUnit
)

func (c BindingClass) String() string {
	switch c {
	case BufferBinding:
		return "buffer binding"
	case TextureUnit:
		return "texture unit"
	}
	return "unknown binding"
}

// slotPool hands out indices of one class. Released indices are reused
// before new ones are minted.
type slotPool struct {
	next uint32
	free []uint32
}

func (p *slotPool) allocate() uint32 {
	if n := len(p.free); n > 0 {
		slot := p.free[n-1]
		p.free = p.free[:n-1]
		return slot
	}
	slot := p.next
	p.next++
	return slot
}

func (p *slotPool) release(slot uint32) {
	p.free = append(p.free, slot)
}

// BindingStack allocates binding slots for buffers and texture units.
//
// It never fails nor enforces any upper bound: limits of the hardware are
// checked by the context, before allocating. Releasing an index twice, or
// one that was never allocated, corrupts the stack.
type BindingStack struct {
	pools [2]slotPool
}

// Allocate returns a free slot of the class, reusing released ones first.
func (bs *BindingStack) Allocate(class BindingClass) uint32 {
	return bs.pools[class].allocate()
}

// Release gives the slot back to the class free list.
func (bs *BindingStack) Release(class BindingClass, slot uint32) {
	bs.pools[class].release(slot)
}

// Peek returns the slot the next Allocate of the class would return,
// without allocating it.
func (bs *BindingStack) Peek(class BindingClass) uint32 {
	p := &bs.pools[class]
	if n := len(p.free); n > 0 {
		return p.free[n-1]
	}
	return p.next
}

// Free returns the number of released slots waiting for reuse.
func (bs *BindingStack) Free(class BindingClass) int {
	return len(bs.pools[class].free)
}

// HighWater returns the number of slots of the class ever issued.
func (bs *BindingStack) HighWater(class BindingClass) uint32 {
	return bs.pools[class].next
}

// Live returns the number of slots of the class currently held.
func (bs *BindingStack) Live(class BindingClass) int {
	p := &bs.pools[class]
	return int(p.next) - len(p.free)
}

// BindingView exposes the slot counts of a BindingStack without
// the means to allocate or release slots.
type BindingView struct {
	stack *BindingStack
}

// Peek returns the slot the next allocation of the class would return.
func (v BindingView) Peek(class BindingClass) uint32 { return v.stack.Peek(class) }

// Free returns the number of released slots waiting for reuse.
func (v BindingView) Free(class BindingClass) int { return v.stack.Free(class) }

// HighWater returns the number of slots of the class ever issued.
func (v BindingView) HighWater(class BindingClass) uint32 { return v.stack.HighWater(class) }

// Live returns the number of slots of the class currently held.
func (v BindingView) Live(class BindingClass) int { return v.stack.Live(class) }
