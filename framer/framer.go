// Package framer implements RSocket's length-prefix stream framing: a
// pure function of an accumulated byte buffer, with no I/O of its own.
// It tolerates arbitrary chunking: a frame may arrive split across
// many reads, and a single read may contain several frames plus a
// partial tail.
package framer

import (
	"github.com/rsocket/rsocket-codec/core"
	"github.com/rsocket/rsocket-codec/core/framing"
	"github.com/rsocket/rsocket-codec/encoding"
	"github.com/rsocket/rsocket-codec/internal/common"
)

// LengthPrefixSize is the width in bytes of the length prefix that
// precedes every frame on a stream transport.
const LengthPrefixSize = core.UInt24Size

// ParseFrame decodes a single complete frame from frameBuf, which must
// contain exactly one frame's bytes with no length prefix. set selects
// the payload field codecs; a zero Set means encoding.TextSet.
func ParseFrame(frameBuf []byte, set encoding.Set) (framing.Frame, error) {
	h, err := core.ParseFrameHeader(frameBuf)
	if err != nil {
		return nil, err
	}
	return framing.Decode(h, frameBuf[core.FrameHeaderLen:], set)
}

// EmitFrame serializes f with no length prefix. counter may be nil.
func EmitFrame(f framing.Frame, set encoding.Set, counter *Counter) ([]byte, error) {
	body, err := framing.Encode(f, set)
	if err != nil {
		return nil, err
	}
	if counter != nil {
		counter.IncWriteBytes(len(body))
	}
	return body, nil
}

// ParseLengthPrefixed decodes a single frame whose bytes in buf are
// preceded by a 3-byte big-endian length.
func ParseLengthPrefixed(buf []byte, set encoding.Set) (framing.Frame, error) {
	if len(buf) < LengthPrefixSize {
		return nil, core.NewInvariantViolation("length", "buffer shorter than length prefix")
	}
	n := common.ReadUint24(buf, 0)
	if LengthPrefixSize+n > len(buf) {
		return nil, core.NewInvariantViolation("length", "declared frame length exceeds buffer")
	}
	return ParseFrame(buf[LengthPrefixSize:LengthPrefixSize+n], set)
}

// EmitLengthPrefixed serializes f and prepends a 3-byte big-endian
// length covering the frame bytes that follow. counter may be nil.
func EmitLengthPrefixed(f framing.Frame, set encoding.Set, counter *Counter) ([]byte, error) {
	body, err := framing.Encode(f, set)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, LengthPrefixSize+len(body))
	common.WriteUint24(buf, 0, len(body))
	copy(buf[LengthPrefixSize:], body)
	if counter != nil {
		counter.IncWriteBytes(len(buf))
	}
	return buf, nil
}

// ParseStream peels zero or more complete length-prefixed frames off
// the front of buf and returns them along with whatever unparsed tail
// remains. The tail must be prepended to subsequently received bytes
// by the caller before the next call. ParseStream never blocks
// waiting for more data, it just stops when what's left can't be a
// complete frame yet.
func ParseStream(buf []byte, set encoding.Set, counter *Counter) (frames []framing.Frame, leftover []byte, err error) {
	offset := 0
	for {
		if len(buf)-offset < LengthPrefixSize {
			break
		}
		n := common.ReadUint24(buf, offset)
		frameStart := offset + LengthPrefixSize
		frameEnd := frameStart + n
		if frameEnd > len(buf) {
			break
		}
		var f framing.Frame
		f, err = ParseFrame(buf[frameStart:frameEnd], set)
		if err != nil {
			return
		}
		if counter != nil {
			counter.IncReadBytes(frameEnd - offset)
		}
		frames = append(frames, f)
		offset = frameEnd
	}
	leftover = buf[offset:]
	return
}
