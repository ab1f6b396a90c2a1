package encoding

import (
	"bytes"

	"github.com/2tvenom/cbor"
	"github.com/rsocket/rsocket-codec/core"
)

// cborEncoder wraps a field's raw bytes in a CBOR byte-string envelope.
// Unlike Text and Binary, which pass bytes through untouched, CBOR adds
// a self-describing header so a field encoded this way can be picked
// back out of a buffer without the caller already knowing its length.
type cborEncoder struct{}

// CBOR is the stateless CBOR-envelope Encoder.
var CBOR Encoder = cborEncoder{}

func (cborEncoder) ByteLength(v []byte) int {
	buf := &bytes.Buffer{}
	enc := cbor.NewEncoder(buf)
	_, _ = enc.Marshal(string(v))
	return buf.Len()
}

func (cborEncoder) Encode(v []byte, dst []byte, offset int) (int, error) {
	buf := &bytes.Buffer{}
	enc := cbor.NewEncoder(buf)
	if _, err := enc.Marshal(string(v)); err != nil {
		return offset, core.NewEncoderMismatch("cbor", err.Error())
	}
	return offset + copy(dst[offset:], buf.Bytes()), nil
}

func (cborEncoder) Decode(src []byte, start, end int) ([]byte, error) {
	enc := cbor.NewEncoder(&bytes.Buffer{})
	var s string
	if _, err := enc.Unmarshal(src[start:end], &s); err != nil {
		return nil, core.NewEncoderMismatch("cbor", err.Error())
	}
	return []byte(s), nil
}
