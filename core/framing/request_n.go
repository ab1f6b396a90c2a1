package framing

import (
	"encoding/binary"

	"github.com/rsocket/rsocket-codec/core"
	"github.com/rsocket/rsocket-codec/internal/common"
)

// RequestNFrame adjusts demand on an existing stream. It carries no
// payload.
type RequestNFrame struct {
	header   core.FrameHeader
	requestN int32
}

// NewRequestNFrame builds a RequestNFrame. requestN must be positive.
func NewRequestNFrame(streamID uint32, requestN int32) *RequestNFrame {
	return &RequestNFrame{
		header:   core.NewFrameHeader(streamID, core.FrameTypeRequestN, 0),
		requestN: requestN,
	}
}

// Header implements Frame.
func (f *RequestNFrame) Header() core.FrameHeader { return f.header }

// RequestN returns the additional demand.
func (f *RequestNFrame) RequestN() int32 { return f.requestN }

func decodeRequestN(h core.FrameHeader, body []byte) (*RequestNFrame, error) {
	if err := requirePositiveStreamID(h); err != nil {
		return nil, err
	}
	if len(body) < 4 {
		return nil, core.NewInvariantViolation("requestN", "frame shorter than requestN field")
	}
	requestN := int32(binary.BigEndian.Uint32(body[:4]))
	if requestN <= 0 {
		return nil, core.NewInvariantViolation("requestN", fmtInt32(requestN))
	}
	return &RequestNFrame{header: h, requestN: requestN}, nil
}

func encodeRequestN(f *RequestNFrame) ([]byte, error) {
	return emitFrame(func(bb *common.ByteBuff) error {
		if _, err := bb.Write(f.header.Bytes()); err != nil {
			return err
		}
		return binary.Write(bb, binary.BigEndian, f.requestN)
	})
}
