package common

import (
	"sync/atomic"

	"github.com/valyala/bytebufferpool"
)

var (
	borrowed int32
	bPool    bytebufferpool.Pool
)

// ByteBuff is a growable byte buffer backed by a pool, used by the
// frame codec's emit path to avoid allocating a fresh buffer per frame.
type ByteBuff bytebufferpool.ByteBuffer

// Len returns size of ByteBuff.
func (p *ByteBuff) Len() (n int) {
	if p != nil {
		n = p.bb().Len()
	}
	return
}

// Write writes bytes to the current ByteBuff.
func (p *ByteBuff) Write(bs []byte) (n int, err error) {
	return p.bb().Write(bs)
}

// WriteUint24 encodes and writes a big-endian uint24 to the current
// ByteBuff.
func (p *ByteBuff) WriteUint24(n int) error {
	v := MustNewUint24(n)
	_, err := p.Write(v[:])
	return err
}

// WriteByte writes a byte to the current ByteBuff.
func (p *ByteBuff) WriteByte(b byte) error {
	return p.bb().WriteByte(b)
}

// Reset clears all bytes.
func (p *ByteBuff) Reset() {
	p.bb().Reset()
}

// Bytes returns all bytes in the ByteBuff.
func (p *ByteBuff) Bytes() []byte {
	if p.bb() == nil {
		return nil
	}
	return p.bb().B
}

func (p *ByteBuff) bb() *bytebufferpool.ByteBuffer {
	return (*bytebufferpool.ByteBuffer)(p)
}

// BorrowByteBuffer borrows a ByteBuff from the pool.
func BorrowByteBuffer() (bb *ByteBuff) {
	bb = (*ByteBuff)(bPool.Get())
	atomic.AddInt32(&borrowed, 1)
	return
}

// ReturnByteBuffer returns a ByteBuff to the pool.
func ReturnByteBuffer(b *ByteBuff) {
	bPool.Put((*bytebufferpool.ByteBuffer)(b))
	atomic.AddInt32(&borrowed, -1)
}

// CountByteBuffer returns the number of ByteBuffs currently borrowed.
func CountByteBuffer() int {
	return int(atomic.LoadInt32(&borrowed))
}
