package framing

import (
	"github.com/rsocket/rsocket-codec/core"
	"github.com/rsocket/rsocket-codec/encoding"
	"github.com/rsocket/rsocket-codec/internal/common"
)

// PayloadFrame carries an application payload on an established stream.
type PayloadFrame struct {
	header   core.FrameHeader
	metadata []byte
	data     []byte
}

// NewPayloadFrame builds a PayloadFrame. metadata may be nil; the
// METADATA flag is set automatically when it is not.
func NewPayloadFrame(streamID uint32, data, metadata []byte, flags core.FrameFlag) *PayloadFrame {
	if metadata != nil {
		flags |= core.FlagMetadata
	}
	return &PayloadFrame{
		header:   core.NewFrameHeader(streamID, core.FrameTypePayload, flags),
		metadata: metadata,
		data:     data,
	}
}

// Header implements Frame.
func (f *PayloadFrame) Header() core.FrameHeader { return f.header }

// Metadata returns the frame's metadata block, or nil if absent.
func (f *PayloadFrame) Metadata() []byte { return f.metadata }

// Data returns the frame's data block, or nil if absent.
func (f *PayloadFrame) Data() []byte { return f.data }

func decodePayload(h core.FrameHeader, body []byte, set encoding.Set) (*PayloadFrame, error) {
	if err := requirePositiveStreamID(h); err != nil {
		return nil, err
	}
	metadata, data, err := decodePayloadSection(h, body, set)
	if err != nil {
		return nil, err
	}
	return &PayloadFrame{header: h, metadata: metadata, data: data}, nil
}

func encodePayload(f *PayloadFrame, set encoding.Set) ([]byte, error) {
	return emitFrame(func(bb *common.ByteBuff) error {
		if _, err := bb.Write(f.header.Bytes()); err != nil {
			return err
		}
		return writePayloadSection(bb, f.header, f.metadata, f.data, set)
	})
}

// writePayloadSection writes the metadata+data section of a
// payload-bearing frame into bb: a 3-byte big-endian metadata length
// followed by metadata, then data, when the METADATA flag is set;
// data alone when it is clear.
func writePayloadSection(bb *common.ByteBuff, h core.FrameHeader, metadata, data []byte, set encoding.Set) error {
	if h.Flag().Check(core.FlagMetadata) {
		if err := bb.WriteUint24(set.Metadata.ByteLength(metadata)); err != nil {
			return err
		}
		if err := writeEncoded(bb, set.Metadata, metadata); err != nil {
			return err
		}
	}
	return writeEncoded(bb, set.Data, data)
}

// decodePayloadSection reads the metadata+data section of body
// (everything in the frame after its fixed fields). When the
// METADATA flag is set, the leading 3 bytes are a big-endian length
// gating how much of the remainder is metadata; everything after that
// is data. When the flag is clear, body is entirely data. An empty
// data remainder leaves data nil.
func decodePayloadSection(h core.FrameHeader, body []byte, set encoding.Set) (metadata, data []byte, err error) {
	if !h.Flag().Check(core.FlagMetadata) {
		if len(body) > 0 {
			data, err = set.Data.Decode(body, 0, len(body))
		}
		return
	}
	if len(body) < core.UInt24Size {
		err = core.NewInvariantViolation("metadataLength", "frame shorter than metadata length prefix")
		return
	}
	metaLen := common.ReadUint24(body, 0)
	dataStart := core.UInt24Size + metaLen
	if dataStart > len(body) {
		err = core.NewInvariantViolation("metadataLength", "declared metadata length exceeds frame")
		return
	}
	metadata, err = set.Metadata.Decode(body, core.UInt24Size, dataStart)
	if err != nil {
		return
	}
	if dataStart < len(body) {
		data, err = set.Data.Decode(body, dataStart, len(body))
	}
	return
}
