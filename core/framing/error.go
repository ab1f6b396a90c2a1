package framing

import (
	"encoding/binary"

	"github.com/rsocket/rsocket-codec/core"
	"github.com/rsocket/rsocket-codec/encoding"
	"github.com/rsocket/rsocket-codec/internal/common"
)

// ErrorFrame reports a stream-level failure; decoding rejects an ERROR
// frame with stream id 0. It implements the error interface so callers
// can raise it directly.
type ErrorFrame struct {
	header  core.FrameHeader
	code    core.ErrorCode
	message string
}

// NewErrorFrame builds an ErrorFrame.
func NewErrorFrame(streamID uint32, code core.ErrorCode, message string) *ErrorFrame {
	return &ErrorFrame{
		header:  core.NewFrameHeader(streamID, core.FrameTypeError, 0),
		code:    code,
		message: message,
	}
}

// Header implements Frame.
func (f *ErrorFrame) Header() core.FrameHeader { return f.header }

// Code returns the error code.
func (f *ErrorFrame) Code() core.ErrorCode { return f.code }

// Message returns the error message, which may be empty.
func (f *ErrorFrame) Message() string { return f.message }

func (f *ErrorFrame) Error() string {
	return f.code.String() + ": " + f.message
}

func decodeError(h core.FrameHeader, body []byte, set encoding.Set) (*ErrorFrame, error) {
	if err := requirePositiveStreamID(h); err != nil {
		return nil, err
	}
	if len(body) < 4 {
		return nil, core.NewInvariantViolation("error", "frame shorter than code field")
	}
	code := binary.BigEndian.Uint32(body[:4])
	if code > core.MaxErrorCode {
		return nil, core.NewInvariantViolation("code", fmtUint32(code))
	}
	message, err := set.Message.Decode(body, 4, len(body))
	if err != nil {
		return nil, err
	}
	return &ErrorFrame{header: h, code: core.ErrorCode(code), message: string(message)}, nil
}

func encodeError(f *ErrorFrame, set encoding.Set) ([]byte, error) {
	return emitFrame(func(bb *common.ByteBuff) error {
		if _, err := bb.Write(f.header.Bytes()); err != nil {
			return err
		}
		if err := binary.Write(bb, binary.BigEndian, uint32(f.code)); err != nil {
			return err
		}
		return writeEncoded(bb, set.Message, []byte(f.message))
	})
}
