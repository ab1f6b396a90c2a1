package framing

import (
	"encoding/binary"

	"github.com/rsocket/rsocket-codec/core"
	"github.com/rsocket/rsocket-codec/encoding"
	"github.com/rsocket/rsocket-codec/internal/common"
)

// minSetupFixedLen is the length in bytes of SETUP's fixed section,
// before the variable-length resume token and MIME-type strings:
// majorVersion(2) + minorVersion(2) + keepAlive(4) + lifetime(4) +
// resumeTokenLen(2).
const minSetupFixedLen = 2 + 2 + 4 + 4 + 2

// SetupFrame negotiates protocol version, keepalive/lifetime timing,
// an optional resume token, and the MIME types governing every
// subsequent frame's data and metadata on the connection.
type SetupFrame struct {
	header           core.FrameHeader
	majorVersion     uint16
	minorVersion     uint16
	keepAlive        uint32
	lifetime         uint32
	resumeToken      []byte
	metadataMimeType string
	dataMimeType     string
	metadata         []byte
	data             []byte
}

// NewSetupFrame builds a SetupFrame. resumeToken may be nil, in which
// case a zero-length token is written on the wire.
func NewSetupFrame(
	majorVersion, minorVersion uint16,
	keepAlive, lifetime uint32,
	resumeToken []byte,
	metadataMimeType, dataMimeType string,
	data, metadata []byte,
	flags core.FrameFlag,
) *SetupFrame {
	if metadata != nil {
		flags |= core.FlagMetadata
	}
	return &SetupFrame{
		header:           core.NewFrameHeader(0, core.FrameTypeSetup, flags),
		majorVersion:     majorVersion,
		minorVersion:     minorVersion,
		keepAlive:        keepAlive,
		lifetime:         lifetime,
		resumeToken:      resumeToken,
		metadataMimeType: metadataMimeType,
		dataMimeType:     dataMimeType,
		metadata:         metadata,
		data:             data,
	}
}

// Header implements Frame.
func (f *SetupFrame) Header() core.FrameHeader { return f.header }

// Version returns the negotiated protocol version.
func (f *SetupFrame) Version() core.Version { return core.NewVersion(f.majorVersion, f.minorVersion) }

// KeepAlive returns the keepalive interval in milliseconds.
func (f *SetupFrame) KeepAlive() uint32 { return f.keepAlive }

// Lifetime returns the max connection lifetime in milliseconds.
func (f *SetupFrame) Lifetime() uint32 { return f.lifetime }

// ResumeToken returns the resume token, or nil if none was sent.
func (f *SetupFrame) ResumeToken() []byte { return f.resumeToken }

// MetadataMimeType returns the MIME type governing every subsequent
// metadata payload on this connection.
func (f *SetupFrame) MetadataMimeType() string { return f.metadataMimeType }

// DataMimeType returns the MIME type governing every subsequent data
// payload on this connection.
func (f *SetupFrame) DataMimeType() string { return f.dataMimeType }

// Metadata returns the frame's own metadata block, or nil if absent.
func (f *SetupFrame) Metadata() []byte { return f.metadata }

// Data returns the frame's own data block, or nil if absent.
func (f *SetupFrame) Data() []byte { return f.data }

func decodeSetup(h core.FrameHeader, body []byte, set encoding.Set) (*SetupFrame, error) {
	if err := requireZeroStreamID(h); err != nil {
		return nil, err
	}
	if len(body) < minSetupFixedLen {
		return nil, core.NewInvariantViolation("setup", "frame shorter than fixed section")
	}
	majorVersion := binary.BigEndian.Uint16(body[0:2])
	minorVersion := binary.BigEndian.Uint16(body[2:4])
	keepAlive := binary.BigEndian.Uint32(body[4:8])
	lifetime := binary.BigEndian.Uint32(body[8:12])
	if keepAlive > core.MaxKeepAliveMillis {
		return nil, core.NewInvariantViolation("keepAlive", fmtUint32(keepAlive))
	}
	if lifetime > core.MaxLifetimeMillis {
		return nil, core.NewInvariantViolation("lifetime", fmtUint32(lifetime))
	}
	resumeTokenLen := int(binary.BigEndian.Uint16(body[12:14]))
	offset := minSetupFixedLen
	if offset+resumeTokenLen > len(body) {
		return nil, core.NewInvariantViolation("resumeTokenLength", fmtUint32(uint32(resumeTokenLen)))
	}
	var resumeToken []byte
	if resumeTokenLen > 0 {
		var err error
		resumeToken, err = set.ResumeToken.Decode(body, offset, offset+resumeTokenLen)
		if err != nil {
			return nil, err
		}
	}
	offset += resumeTokenLen

	metadataMimeType, offset, err := readMimeType(body, offset, set.MetadataMimeType)
	if err != nil {
		return nil, err
	}
	dataMimeType, offset, err := readMimeType(body, offset, set.DataMimeType)
	if err != nil {
		return nil, err
	}

	metadata, data, err := decodePayloadSection(h, body[offset:], set)
	if err != nil {
		return nil, err
	}
	return &SetupFrame{
		header:           h,
		majorVersion:     majorVersion,
		minorVersion:     minorVersion,
		keepAlive:        keepAlive,
		lifetime:         lifetime,
		resumeToken:      resumeToken,
		metadataMimeType: metadataMimeType,
		dataMimeType:     dataMimeType,
		metadata:         metadata,
		data:             data,
	}, nil
}

func readMimeType(body []byte, offset int, enc encoding.Encoder) (string, int, error) {
	if offset >= len(body) {
		return "", offset, core.NewInvariantViolation("mimeTypeLength", "frame shorter than mime length byte")
	}
	l := int(body[offset])
	offset++
	if offset+l > len(body) {
		return "", offset, core.NewInvariantViolation("mimeTypeLength", fmtUint32(uint32(l)))
	}
	if l == 0 {
		return "", offset, nil
	}
	v, err := enc.Decode(body, offset, offset+l)
	return string(v), offset + l, err
}

func encodeSetup(f *SetupFrame, set encoding.Set) ([]byte, error) {
	resumeTokenLen := set.ResumeToken.ByteLength(f.resumeToken)
	if resumeTokenLen > core.MaxResumeTokenLength {
		return nil, core.NewInvariantViolation("resumeTokenLength", fmtUint32(uint32(resumeTokenLen)))
	}
	return emitFrame(func(bb *common.ByteBuff) error {
		if _, err := bb.Write(f.header.Bytes()); err != nil {
			return err
		}
		if err := binary.Write(bb, binary.BigEndian, f.majorVersion); err != nil {
			return err
		}
		if err := binary.Write(bb, binary.BigEndian, f.minorVersion); err != nil {
			return err
		}
		if err := binary.Write(bb, binary.BigEndian, f.keepAlive); err != nil {
			return err
		}
		if err := binary.Write(bb, binary.BigEndian, f.lifetime); err != nil {
			return err
		}
		if err := binary.Write(bb, binary.BigEndian, uint16(resumeTokenLen)); err != nil {
			return err
		}
		if resumeTokenLen > 0 {
			if err := writeEncoded(bb, set.ResumeToken, f.resumeToken); err != nil {
				return err
			}
		}
		if err := writeMimeType(bb, []byte(f.metadataMimeType), set.MetadataMimeType); err != nil {
			return err
		}
		if err := writeMimeType(bb, []byte(f.dataMimeType), set.DataMimeType); err != nil {
			return err
		}
		return writePayloadSection(bb, f.header, f.metadata, f.data, set)
	})
}

func writeMimeType(bb *common.ByteBuff, v []byte, enc encoding.Encoder) error {
	if err := bb.WriteByte(byte(enc.ByteLength(v))); err != nil {
		return err
	}
	return writeEncoded(bb, enc, v)
}
