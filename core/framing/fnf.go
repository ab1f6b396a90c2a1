package framing

import (
	"github.com/rsocket/rsocket-codec/core"
	"github.com/rsocket/rsocket-codec/encoding"
	"github.com/rsocket/rsocket-codec/internal/common"
)

// RequestFNFFrame requests a fire-and-forget interaction: no response
// is expected.
type RequestFNFFrame struct {
	header   core.FrameHeader
	metadata []byte
	data     []byte
}

// NewRequestFNFFrame builds a RequestFNFFrame.
func NewRequestFNFFrame(streamID uint32, data, metadata []byte, flags core.FrameFlag) *RequestFNFFrame {
	if metadata != nil {
		flags |= core.FlagMetadata
	}
	return &RequestFNFFrame{
		header:   core.NewFrameHeader(streamID, core.FrameTypeRequestFNF, flags),
		metadata: metadata,
		data:     data,
	}
}

// Header implements Frame.
func (f *RequestFNFFrame) Header() core.FrameHeader { return f.header }

// Metadata returns the frame's metadata block, or nil if absent.
func (f *RequestFNFFrame) Metadata() []byte { return f.metadata }

// Data returns the frame's data block, or nil if absent.
func (f *RequestFNFFrame) Data() []byte { return f.data }

func decodeRequestFNF(h core.FrameHeader, body []byte, set encoding.Set) (*RequestFNFFrame, error) {
	if err := requirePositiveStreamID(h); err != nil {
		return nil, err
	}
	metadata, data, err := decodePayloadSection(h, body, set)
	if err != nil {
		return nil, err
	}
	return &RequestFNFFrame{header: h, metadata: metadata, data: data}, nil
}

func encodeRequestFNF(f *RequestFNFFrame, set encoding.Set) ([]byte, error) {
	return emitFrame(func(bb *common.ByteBuff) error {
		if _, err := bb.Write(f.header.Bytes()); err != nil {
			return err
		}
		return writePayloadSection(bb, f.header, f.metadata, f.data, set)
	})
}
