package framing

import (
	"encoding/binary"

	"github.com/rsocket/rsocket-codec/core"
	"github.com/rsocket/rsocket-codec/encoding"
	"github.com/rsocket/rsocket-codec/internal/common"
)

// KeepaliveFrame carries connection liveness information. It never
// carries metadata, only an optional data block.
type KeepaliveFrame struct {
	header               core.FrameHeader
	lastReceivedPosition uint64
	data                 []byte
}

// NewKeepaliveFrame builds a KeepaliveFrame. respond sets FlagRespond,
// asking the peer to echo the keepalive back.
func NewKeepaliveFrame(lastReceivedPosition uint64, data []byte, respond bool) *KeepaliveFrame {
	var flags core.FrameFlag
	if respond {
		flags |= core.FlagRespond
	}
	return &KeepaliveFrame{
		header:               core.NewFrameHeader(0, core.FrameTypeKeepalive, flags),
		lastReceivedPosition: lastReceivedPosition,
		data:                 data,
	}
}

// Header implements Frame.
func (f *KeepaliveFrame) Header() core.FrameHeader { return f.header }

// LastReceivedPosition returns the sender's last received resume
// position.
func (f *KeepaliveFrame) LastReceivedPosition() uint64 { return f.lastReceivedPosition }

// Data returns the frame's data block, or nil if absent.
func (f *KeepaliveFrame) Data() []byte { return f.data }

func decodeKeepalive(h core.FrameHeader, body []byte, set encoding.Set) (*KeepaliveFrame, error) {
	if err := requireZeroStreamID(h); err != nil {
		return nil, err
	}
	if len(body) < 8 {
		return nil, core.NewInvariantViolation("keepalive", "frame shorter than position field")
	}
	pos := binary.BigEndian.Uint64(body[:8])
	var data []byte
	if len(body) > 8 {
		var err error
		data, err = set.Data.Decode(body, 8, len(body))
		if err != nil {
			return nil, err
		}
	}
	return &KeepaliveFrame{header: h, lastReceivedPosition: pos, data: data}, nil
}

func encodeKeepalive(f *KeepaliveFrame, set encoding.Set) ([]byte, error) {
	return emitFrame(func(bb *common.ByteBuff) error {
		if _, err := bb.Write(f.header.Bytes()); err != nil {
			return err
		}
		if err := binary.Write(bb, binary.BigEndian, f.lastReceivedPosition); err != nil {
			return err
		}
		return writeEncoded(bb, set.Data, f.data)
	})
}
