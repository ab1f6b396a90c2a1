package common

import (
	"errors"
	"fmt"
)

// MaxUint24 is the max value of Uint24.
const MaxUint24 = 16777215

var (
	errExceedMaxUint24 = fmt.Errorf("uint24 exceed max value: %d", MaxUint24)
	errNegativeNumber  = errors.New("negative number is illegal")
)

// IsExceedMaximumUint24Error returns true if exceed maximum Uint24. (16777215)
func IsExceedMaximumUint24Error(err error) bool {
	return err == errExceedMaxUint24
}

// IsNegativeUint24Error returns true if number is negative.
func IsNegativeUint24Error(err error) bool {
	return err == errNegativeNumber
}

// Uint24 is a 3-byte big-endian unsigned integer, used for frame and
// metadata length prefixes.
type Uint24 [3]byte

// Bytes returns the encoded bytes.
func (p Uint24) Bytes() []byte {
	return p[:]
}

// AsInt converts to int.
func (p Uint24) AsInt() int {
	return int(p[0])<<16 + int(p[1])<<8 + int(p[2])
}

// MustNewUint24 returns a new Uint24, panicking if v is out of range.
func MustNewUint24(n int) Uint24 {
	v, err := NewUint24(n)
	if err != nil {
		panic(err)
	}
	return v
}

// NewUint24 returns a new Uint24, or an error if v is negative or
// exceeds MaxUint24.
func NewUint24(v int) (n Uint24, err error) {
	if v < 0 {
		err = errNegativeNumber
		return
	}
	if v > MaxUint24 {
		err = errExceedMaxUint24
	}
	n[0] = byte(v >> 16)
	n[1] = byte(v >> 8)
	n[2] = byte(v)
	return
}

// NewUint24Bytes returns a new Uint24 from the first 3 bytes of bs.
func NewUint24Bytes(bs []byte) Uint24 {
	_ = bs[2]
	return [3]byte{bs[0], bs[1], bs[2]}
}

// ReadUint24 reads a big-endian uint24 at buf[off:off+3]. The caller
// must ensure buf has at least off+3 bytes; no bounds error is
// signaled, matching the byte-utility contract that overflow/underflow
// checking is the caller's responsibility.
func ReadUint24(buf []byte, off int) int {
	return NewUint24Bytes(buf[off:]).AsInt()
}

// WriteUint24 writes value, truncated to its low 24 bits, to
// buf[off:off+3] in big-endian order. The caller must ensure buf has at
// least off+3 bytes.
func WriteUint24(buf []byte, off int, value int) {
	buf[off] = byte(value >> 16)
	buf[off+1] = byte(value >> 8)
	buf[off+2] = byte(value)
}
