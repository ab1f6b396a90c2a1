package framing

import (
	"encoding/binary"

	"github.com/rsocket/rsocket-codec/core"
	"github.com/rsocket/rsocket-codec/encoding"
	"github.com/rsocket/rsocket-codec/internal/common"
)

// LeaseFrame grants the peer a budget of requests it may issue within
// a time-to-live window. It never carries a data field; any trailing
// bytes are metadata with no length prefix, unlike the METADATA-flag
// convention payload-bearing frames use.
type LeaseFrame struct {
	header       core.FrameHeader
	ttl          uint32
	requestCount uint32
	metadata     []byte
}

// NewLeaseFrame builds a LeaseFrame.
func NewLeaseFrame(ttl, requestCount uint32, metadata []byte) *LeaseFrame {
	var flags core.FrameFlag
	if metadata != nil {
		flags |= core.FlagMetadata
	}
	return &LeaseFrame{
		header:       core.NewFrameHeader(0, core.FrameTypeLease, flags),
		ttl:          ttl,
		requestCount: requestCount,
		metadata:     metadata,
	}
}

// Header implements Frame.
func (f *LeaseFrame) Header() core.FrameHeader { return f.header }

// TTL returns the lease's time-to-live in milliseconds.
func (f *LeaseFrame) TTL() uint32 { return f.ttl }

// RequestCount returns the number of requests this lease grants.
func (f *LeaseFrame) RequestCount() uint32 { return f.requestCount }

// Metadata returns the frame's metadata block, or nil if absent.
func (f *LeaseFrame) Metadata() []byte { return f.metadata }

func decodeLease(h core.FrameHeader, body []byte, set encoding.Set) (*LeaseFrame, error) {
	if err := requireZeroStreamID(h); err != nil {
		return nil, err
	}
	if len(body) < 8 {
		return nil, core.NewInvariantViolation("lease", "frame shorter than fixed section")
	}
	ttl := binary.BigEndian.Uint32(body[:4])
	requestCount := binary.BigEndian.Uint32(body[4:8])
	var metadata []byte
	if len(body) > 8 {
		var err error
		metadata, err = set.Metadata.Decode(body, 8, len(body))
		if err != nil {
			return nil, err
		}
	}
	return &LeaseFrame{header: h, ttl: ttl, requestCount: requestCount, metadata: metadata}, nil
}

func encodeLease(f *LeaseFrame, set encoding.Set) ([]byte, error) {
	return emitFrame(func(bb *common.ByteBuff) error {
		if _, err := bb.Write(f.header.Bytes()); err != nil {
			return err
		}
		if err := binary.Write(bb, binary.BigEndian, f.ttl); err != nil {
			return err
		}
		if err := binary.Write(bb, binary.BigEndian, f.requestCount); err != nil {
			return err
		}
		return writeEncoded(bb, set.Metadata, f.metadata)
	})
}
