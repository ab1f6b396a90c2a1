// Package encoding provides the pluggable byte-level codecs bound to
// the six payload-bearing fields of an RSocket frame: data, metadata,
// dataMimeType, metadataMimeType, message, and resumeToken.
package encoding

// Encoder is a byte-level codec capability over one payload-bearing
// field. ByteLength(v) must always equal the number of bytes a
// matching call to Encode writes.
type Encoder interface {
	// ByteLength returns the number of bytes Encode(v, ...) will write.
	ByteLength(v []byte) int
	// Encode writes the encoded form of v into dst starting at offset
	// and returns the offset immediately past what it wrote. It returns
	// a *core.CodecError of kind KindEncoderMismatch if v is not a value
	// this Encoder can represent.
	Encode(v []byte, dst []byte, offset int) (int, error)
	// Decode reads an encoded value from src[start:end] and returns the
	// decoded bytes.
	Decode(src []byte, start, end int) ([]byte, error)
}
