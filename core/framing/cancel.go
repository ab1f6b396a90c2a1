package framing

import (
	"github.com/rsocket/rsocket-codec/core"
	"github.com/rsocket/rsocket-codec/internal/common"
)

// CancelFrame cancels an in-flight stream. It carries only a header.
type CancelFrame struct {
	header core.FrameHeader
}

// NewCancelFrame builds a CancelFrame.
func NewCancelFrame(streamID uint32) *CancelFrame {
	return &CancelFrame{header: core.NewFrameHeader(streamID, core.FrameTypeCancel, 0)}
}

// Header implements Frame.
func (f *CancelFrame) Header() core.FrameHeader { return f.header }

func decodeCancel(h core.FrameHeader, body []byte) (*CancelFrame, error) {
	if err := requirePositiveStreamID(h); err != nil {
		return nil, err
	}
	return &CancelFrame{header: h}, nil
}

func encodeCancel(f *CancelFrame) ([]byte, error) {
	return emitFrame(func(bb *common.ByteBuff) error {
		_, err := bb.Write(f.header.Bytes())
		return err
	})
}
