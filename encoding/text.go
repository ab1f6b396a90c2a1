package encoding

import (
	"unicode/utf8"

	"github.com/rsocket/rsocket-codec/core"
)

// textEncoder treats a field as a UTF-8 string. It is the codec's
// default for every field and the only valid choice for the two
// MIME-type fields and message, regardless of which set is in use
// elsewhere on the same frame.
type textEncoder struct{}

// Text is the stateless UTF-8 Encoder.
var Text Encoder = textEncoder{}

func (textEncoder) ByteLength(v []byte) int {
	return len(v)
}

func (textEncoder) Encode(v []byte, dst []byte, offset int) (int, error) {
	if !utf8.Valid(v) {
		return offset, core.NewEncoderMismatch("text", "invalid utf-8")
	}
	return offset + copy(dst[offset:], v), nil
}

func (textEncoder) Decode(src []byte, start, end int) ([]byte, error) {
	v := src[start:end]
	if !utf8.Valid(v) {
		return nil, core.NewEncoderMismatch("text", "invalid utf-8")
	}
	return v, nil
}
