// Package framing implements the per-variant wire layout of every
// RSocket frame kind: a typed record for each frame, plus the
// decode/encode entry points that dispatch on the frame header's type
// field.
package framing

import (
	"strconv"

	"github.com/rsocket/rsocket-codec/core"
	"github.com/rsocket/rsocket-codec/encoding"
	"github.com/rsocket/rsocket-codec/internal/common"
)

// Frame is implemented by every decoded frame record. Each concrete
// type below carries only the fields its RSocket frame kind defines;
// there is no shared body representation.
type Frame interface {
	// Header returns the frame's 6-byte header.
	Header() core.FrameHeader
}

// Decode parses a single complete frame: header is the already-parsed
// 6-byte header, body is everything after it (not including any
// length prefix). set selects the payload field codecs; a zero Set
// means encoding.TextSet, and any unset field falls back to Text.
func Decode(header core.FrameHeader, body []byte, set encoding.Set) (Frame, error) {
	set = set.OrDefault()
	switch header.Type() {
	case core.FrameTypeSetup:
		return decodeSetup(header, body, set)
	case core.FrameTypeLease:
		return decodeLease(header, body, set)
	case core.FrameTypeKeepalive:
		return decodeKeepalive(header, body, set)
	case core.FrameTypeRequestResponse:
		return decodeRequestResponse(header, body, set)
	case core.FrameTypeRequestFNF:
		return decodeRequestFNF(header, body, set)
	case core.FrameTypeRequestStream:
		return decodeRequestStream(header, body, set)
	case core.FrameTypeRequestChannel:
		return decodeRequestChannel(header, body, set)
	case core.FrameTypeRequestN:
		return decodeRequestN(header, body)
	case core.FrameTypeCancel:
		return decodeCancel(header, body)
	case core.FrameTypePayload:
		return decodePayload(header, body, set)
	case core.FrameTypeError:
		return decodeError(header, body, set)
	default:
		return nil, core.NewInvariantViolation("type", header.Type().String())
	}
}

// Encode serializes f into a newly allocated buffer, header included,
// with no length prefix. set selects the payload field codecs; a zero
// Set means encoding.TextSet, and any unset field falls back to Text.
func Encode(f Frame, set encoding.Set) ([]byte, error) {
	set = set.OrDefault()
	switch v := f.(type) {
	case *SetupFrame:
		return encodeSetup(v, set)
	case *LeaseFrame:
		return encodeLease(v, set)
	case *KeepaliveFrame:
		return encodeKeepalive(v, set)
	case *RequestResponseFrame:
		return encodeRequestResponse(v, set)
	case *RequestFNFFrame:
		return encodeRequestFNF(v, set)
	case *RequestStreamFrame:
		return encodeRequestStream(v, set)
	case *RequestChannelFrame:
		return encodeRequestChannel(v, set)
	case *RequestNFrame:
		return encodeRequestN(v)
	case *CancelFrame:
		return encodeCancel(v)
	case *PayloadFrame:
		return encodePayload(v, set)
	case *ErrorFrame:
		return encodeError(v, set)
	default:
		return nil, core.NewInvariantViolation("type", "unsupported frame implementation")
	}
}

// requireZeroStreamID enforces that connection-level frames (SETUP,
// KEEPALIVE, LEASE) carry stream id 0.
func requireZeroStreamID(h core.FrameHeader) error {
	if h.StreamID() != 0 {
		return core.NewInvariantViolation("streamId", strconv.FormatUint(uint64(h.StreamID()), 10))
	}
	return nil
}

// requirePositiveStreamID enforces that per-stream frames carry a
// nonzero stream id.
func requirePositiveStreamID(h core.FrameHeader) error {
	if h.StreamID() == 0 {
		return core.NewInvariantViolation("streamId", "0")
	}
	return nil
}

// emitFrame borrows a pooled ByteBuff, lets fill write a frame's wire
// bytes into it, and returns a freshly allocated copy sized to
// exactly what was written. The pool buffer goes back before emitFrame
// returns, so every per-variant encode function assembles through it
// rather than sizing and indexing a slice by hand.
func emitFrame(fill func(bb *common.ByteBuff) error) ([]byte, error) {
	bb := common.BorrowByteBuffer()
	defer common.ReturnByteBuffer(bb)
	if err := fill(bb); err != nil {
		return nil, err
	}
	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())
	return out, nil
}

// writeEncoded runs v through enc and writes the result into bb.
func writeEncoded(bb *common.ByteBuff, enc encoding.Encoder, v []byte) error {
	n := enc.ByteLength(v)
	if n == 0 {
		return nil
	}
	tmp := make([]byte, n)
	if _, err := enc.Encode(v, tmp, 0); err != nil {
		return err
	}
	_, err := bb.Write(tmp)
	return err
}

// fmtUint32 renders n for use in a CodecError's Value field.
func fmtUint32(n uint32) string {
	return strconv.FormatUint(uint64(n), 10)
}

// fmtInt32 renders n for use in a CodecError's Value field.
func fmtInt32(n int32) string {
	return strconv.FormatInt(int64(n), 10)
}

