package encoding

// binaryEncoder treats a field as an opaque byte blob: no validation.
// Encode copies v into dst; Decode returns the src sub-slice itself, or
// nil for an empty range.
type binaryEncoder struct{}

// Binary is the stateless raw-bytes Encoder.
var Binary Encoder = binaryEncoder{}

func (binaryEncoder) ByteLength(v []byte) int {
	return len(v)
}

func (binaryEncoder) Encode(v []byte, dst []byte, offset int) (int, error) {
	return offset + copy(dst[offset:], v), nil
}

func (binaryEncoder) Decode(src []byte, start, end int) ([]byte, error) {
	if start == end {
		return nil, nil
	}
	return src[start:end], nil
}
