// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gl33

// BoundBuffer is a buffer occupying a binding point. The binding point is
// held until Release is called. The buffer is not unbound then, but the
// next buffer bound at the same point is always issued.
//
// A BoundBuffer must not be used after the context it was bound on is
// destroyed.
type BoundBuffer struct {
	binding  uint32
	ctx      *GL33
	released bool
}

// Binding returns the binding point index, used to wire the buffer
// to a uniform block.
func (b *BoundBuffer) Binding() uint32 {
	return b.binding
}

// Release gives the binding point back. Calling it more than once is a no-op.
func (b *BoundBuffer) Release() {
	if b.released {
		return
	}
	b.released = true
	b.ctx.release(BufferBinding, b.binding)
}

// BoundTexture is a texture occupying a texture unit until Release is called.
type BoundTexture struct {
	unit     uint32
	ctx      *GL33
	released bool
}

// Unit returns the texture unit index, used to wire the texture to a sampler.
func (t *BoundTexture) Unit() uint32 {
	return t.unit
}

// Release gives the texture unit back. Calling it more than once is a no-op.
func (t *BoundTexture) Release() {
	if t.released {
		return
	}
	t.released = true
	t.ctx.release(TextureUnit, t.unit)
}
