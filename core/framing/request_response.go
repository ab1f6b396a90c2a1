package framing

import (
	"github.com/rsocket/rsocket-codec/core"
	"github.com/rsocket/rsocket-codec/encoding"
	"github.com/rsocket/rsocket-codec/internal/common"
)

// RequestResponseFrame requests a single response to a single request.
type RequestResponseFrame struct {
	header   core.FrameHeader
	metadata []byte
	data     []byte
}

// NewRequestResponseFrame builds a RequestResponseFrame.
func NewRequestResponseFrame(streamID uint32, data, metadata []byte, flags core.FrameFlag) *RequestResponseFrame {
	if metadata != nil {
		flags |= core.FlagMetadata
	}
	return &RequestResponseFrame{
		header:   core.NewFrameHeader(streamID, core.FrameTypeRequestResponse, flags),
		metadata: metadata,
		data:     data,
	}
}

// Header implements Frame.
func (f *RequestResponseFrame) Header() core.FrameHeader { return f.header }

// Metadata returns the frame's metadata block, or nil if absent.
func (f *RequestResponseFrame) Metadata() []byte { return f.metadata }

// Data returns the frame's data block, or nil if absent.
func (f *RequestResponseFrame) Data() []byte { return f.data }

func decodeRequestResponse(h core.FrameHeader, body []byte, set encoding.Set) (*RequestResponseFrame, error) {
	if err := requirePositiveStreamID(h); err != nil {
		return nil, err
	}
	metadata, data, err := decodePayloadSection(h, body, set)
	if err != nil {
		return nil, err
	}
	return &RequestResponseFrame{header: h, metadata: metadata, data: data}, nil
}

func encodeRequestResponse(f *RequestResponseFrame, set encoding.Set) ([]byte, error) {
	return emitFrame(func(bb *common.ByteBuff) error {
		if _, err := bb.Write(f.header.Bytes()); err != nil {
			return err
		}
		return writePayloadSection(bb, f.header, f.metadata, f.data, set)
	})
}
