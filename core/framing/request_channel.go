package framing

import (
	"encoding/binary"

	"github.com/rsocket/rsocket-codec/core"
	"github.com/rsocket/rsocket-codec/encoding"
	"github.com/rsocket/rsocket-codec/internal/common"
)

// RequestChannelFrame requests a bidirectional stream of payloads,
// with requestN as the initial demand in the client-to-server
// direction.
type RequestChannelFrame struct {
	header   core.FrameHeader
	requestN int32
	metadata []byte
	data     []byte
}

// NewRequestChannelFrame builds a RequestChannelFrame. requestN must
// be positive.
func NewRequestChannelFrame(streamID uint32, requestN int32, data, metadata []byte, flags core.FrameFlag) *RequestChannelFrame {
	if metadata != nil {
		flags |= core.FlagMetadata
	}
	return &RequestChannelFrame{
		header:   core.NewFrameHeader(streamID, core.FrameTypeRequestChannel, flags),
		requestN: requestN,
		metadata: metadata,
		data:     data,
	}
}

// Header implements Frame.
func (f *RequestChannelFrame) Header() core.FrameHeader { return f.header }

// RequestN returns the initial demand.
func (f *RequestChannelFrame) RequestN() int32 { return f.requestN }

// Metadata returns the frame's metadata block, or nil if absent.
func (f *RequestChannelFrame) Metadata() []byte { return f.metadata }

// Data returns the frame's data block, or nil if absent.
func (f *RequestChannelFrame) Data() []byte { return f.data }

func decodeRequestChannel(h core.FrameHeader, body []byte, set encoding.Set) (*RequestChannelFrame, error) {
	if err := requirePositiveStreamID(h); err != nil {
		return nil, err
	}
	if len(body) < 4 {
		return nil, core.NewInvariantViolation("requestChannel", "frame shorter than requestN field")
	}
	requestN := int32(binary.BigEndian.Uint32(body[:4]))
	if requestN <= 0 {
		return nil, core.NewInvariantViolation("requestN", fmtInt32(requestN))
	}
	metadata, data, err := decodePayloadSection(h, body[4:], set)
	if err != nil {
		return nil, err
	}
	return &RequestChannelFrame{header: h, requestN: requestN, metadata: metadata, data: data}, nil
}

func encodeRequestChannel(f *RequestChannelFrame, set encoding.Set) ([]byte, error) {
	return emitFrame(func(bb *common.ByteBuff) error {
		if _, err := bb.Write(f.header.Bytes()); err != nil {
			return err
		}
		if err := binary.Write(bb, binary.BigEndian, f.requestN); err != nil {
			return err
		}
		return writePayloadSection(bb, f.header, f.metadata, f.data, set)
	})
}
