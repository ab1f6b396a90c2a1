package core

import (
	"encoding/binary"
	"strconv"
	"strings"
)

// FrameHeaderLen is the length in bytes of every RSocket frame header.
const FrameHeaderLen = 6

// FrameTypeOffset is the bit offset of the frame type inside the
// header's second 16-bit word.
const FrameTypeOffset = 10

// FrameHeader is the fixed 6-byte header every RSocket frame begins
// with: a big-endian stream id followed by a packed type+flags word.
type FrameHeader [FrameHeaderLen]byte

func (h FrameHeader) String() string {
	bu := strings.Builder{}
	bu.WriteString("FrameHeader{id=")
	bu.WriteString(strconv.FormatUint(uint64(h.StreamID()), 10))
	bu.WriteString(",type=")
	bu.WriteString(h.Type().String())
	bu.WriteString(",flag=")
	bu.WriteString(h.Flag().String())
	bu.WriteByte('}')
	return bu.String()
}

// StreamID returns the stream id carried by this header.
func (h FrameHeader) StreamID() uint32 {
	return binary.BigEndian.Uint32(h[:4])
}

// Type returns the frame type carried by this header.
func (h FrameHeader) Type() FrameType {
	return FrameType(h.word() >> FrameTypeOffset)
}

// Flag returns the flags carried by this header.
func (h FrameHeader) Flag() FrameFlag {
	return FrameFlag(h.word()) & FlagsMask
}

// Bytes returns the raw header bytes.
func (h FrameHeader) Bytes() []byte {
	return h[:]
}

func (h FrameHeader) word() uint16 {
	return binary.BigEndian.Uint16(h[4:])
}

// NewFrameHeader builds a header from its logical fields.
func NewFrameHeader(streamID uint32, frameType FrameType, flags FrameFlag) FrameHeader {
	var h FrameHeader
	binary.BigEndian.PutUint32(h[:], streamID)
	binary.BigEndian.PutUint16(h[4:], uint16(frameType)<<FrameTypeOffset|uint16(flags&FlagsMask))
	return h
}

// ParseFrameHeader decodes a header from the first FrameHeaderLen bytes
// of bs. It rejects a stream id whose sign bit (bit 31) is set: a
// legitimate stream id never uses that bit, so a parser seeing it set
// has been handed a corrupt header.
func ParseFrameHeader(bs []byte) (FrameHeader, error) {
	if len(bs) < FrameHeaderLen {
		return FrameHeader{}, NewInvariantViolation("header", "buffer shorter than FrameHeaderLen")
	}
	var h FrameHeader
	copy(h[:], bs[:FrameHeaderLen])
	if int32(h.StreamID()) < 0 {
		return FrameHeader{}, NewInvariantViolation("streamId", strconv.FormatUint(uint64(h.StreamID()), 10))
	}
	return h, nil
}
