package framing_test

import (
	"testing"

	"github.com/rsocket/rsocket-codec/core"
	"github.com/rsocket/rsocket-codec/core/framing"
	"github.com/rsocket/rsocket-codec/encoding"
	"github.com/stretchr/testify/assert"
)

func roundTrip(t *testing.T, f framing.Frame, set encoding.Set) framing.Frame {
	buf, err := framing.Encode(f, set)
	assert.NoError(t, err)
	h, err := core.ParseFrameHeader(buf)
	assert.NoError(t, err)
	got, err := framing.Decode(h, buf[core.FrameHeaderLen:], set)
	assert.NoError(t, err)
	return got
}

func TestRoundTrip_Cancel(t *testing.T) {
	f := framing.NewCancelFrame(7)
	got := roundTrip(t, f, encoding.TextSet).(*framing.CancelFrame)
	assert.Equal(t, f.Header(), got.Header())
}

func TestRoundTrip_Cancel_WireBytes(t *testing.T) {
	f := framing.NewCancelFrame(7)
	buf, err := framing.Encode(f, encoding.TextSet)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x07, 0x24, 0x00}, buf)
}

func TestRoundTrip_RequestN(t *testing.T) {
	f := framing.NewRequestNFrame(42, 16)
	buf, err := framing.Encode(f, encoding.TextSet)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x2A, 0x20, 0x00, 0x00, 0x00, 0x00, 0x10}, buf)

	got := roundTrip(t, f, encoding.TextSet).(*framing.RequestNFrame)
	assert.Equal(t, int32(16), got.RequestN())
	assert.Equal(t, uint32(42), got.Header().StreamID())
}

func TestRoundTrip_RequestN_RejectsNonPositive(t *testing.T) {
	_, err := framing.Decode(core.NewFrameHeader(1, core.FrameTypeRequestN, 0), []byte{0, 0, 0, 0}, encoding.TextSet)
	assert.True(t, core.IsInvariantViolation(err))
}

func TestRoundTrip_Payload_MetadataAndData(t *testing.T) {
	f := framing.NewPayloadFrame(1, []byte("abc"), []byte("hi"), core.FlagNext|core.FlagComplete)
	got := roundTrip(t, f, encoding.TextSet).(*framing.PayloadFrame)
	assert.Equal(t, []byte("abc"), got.Data())
	assert.Equal(t, []byte("hi"), got.Metadata())
	assert.True(t, got.Header().Flag().Check(core.FlagMetadata))
	assert.True(t, got.Header().Flag().Check(core.FlagComplete))
}

func TestPayload_MetadataFlagClear_TrailingBytesAreData(t *testing.T) {
	h := core.NewFrameHeader(1, core.FrameTypePayload, core.FlagNext)
	buf, err := framing.Encode(framing.NewPayloadFrame(1, []byte("xyz"), nil, core.FlagNext), encoding.TextSet)
	assert.NoError(t, err)
	got, err := framing.Decode(h, buf[core.FrameHeaderLen:], encoding.TextSet)
	assert.NoError(t, err)
	p := got.(*framing.PayloadFrame)
	assert.Equal(t, []byte("xyz"), p.Data())
	assert.Nil(t, p.Metadata())
}

func TestPayload_MetadataFlagSet_ZeroLengthMetadata(t *testing.T) {
	f := framing.NewPayloadFrame(1, []byte("xyz"), []byte{}, core.FlagNext)
	got := roundTrip(t, f, encoding.TextSet).(*framing.PayloadFrame)
	assert.True(t, got.Header().Flag().Check(core.FlagMetadata))
	assert.Equal(t, []byte{}, got.Metadata())
	assert.Equal(t, []byte("xyz"), got.Data())
}

func TestRoundTrip_RequestResponse_BinarySet(t *testing.T) {
	f := framing.NewRequestResponseFrame(3, []byte{0x01, 0x02}, []byte{0xff, 0xfe}, 0)
	got := roundTrip(t, f, encoding.BinarySet).(*framing.RequestResponseFrame)
	assert.Equal(t, []byte{0x01, 0x02}, got.Data())
	assert.Equal(t, []byte{0xff, 0xfe}, got.Metadata())
}

func TestRoundTrip_RequestFNF(t *testing.T) {
	f := framing.NewRequestFNFFrame(5, []byte("fire"), nil, 0)
	got := roundTrip(t, f, encoding.TextSet).(*framing.RequestFNFFrame)
	assert.Equal(t, []byte("fire"), got.Data())
	assert.Nil(t, got.Metadata())
}

func TestRoundTrip_RequestStream(t *testing.T) {
	f := framing.NewRequestStreamFrame(9, 100, []byte("d"), []byte("m"), 0)
	got := roundTrip(t, f, encoding.TextSet).(*framing.RequestStreamFrame)
	assert.Equal(t, int32(100), got.RequestN())
	assert.Equal(t, []byte("d"), got.Data())
	assert.Equal(t, []byte("m"), got.Metadata())
}

func TestRequestStream_RejectsNonPositiveRequestN(t *testing.T) {
	h := core.NewFrameHeader(9, core.FrameTypeRequestStream, 0)
	_, err := framing.Decode(h, []byte{0, 0, 0, 0}, encoding.TextSet)
	assert.True(t, core.IsInvariantViolation(err))
}

func TestRoundTrip_RequestChannel(t *testing.T) {
	f := framing.NewRequestChannelFrame(11, 1, nil, nil, 0)
	got := roundTrip(t, f, encoding.TextSet).(*framing.RequestChannelFrame)
	assert.Equal(t, int32(1), got.RequestN())
	assert.Nil(t, got.Data())
}

func TestRoundTrip_Keepalive(t *testing.T) {
	f := framing.NewKeepaliveFrame(123456789, []byte("ping"), true)
	got := roundTrip(t, f, encoding.TextSet).(*framing.KeepaliveFrame)
	assert.Equal(t, uint64(123456789), got.LastReceivedPosition())
	assert.Equal(t, []byte("ping"), got.Data())
	assert.True(t, got.Header().Flag().Check(core.FlagRespond))
}

func TestKeepalive_RejectsNonzeroStreamID(t *testing.T) {
	h := core.NewFrameHeader(1, core.FrameTypeKeepalive, 0)
	_, err := framing.Decode(h, make([]byte, 8), encoding.TextSet)
	assert.True(t, core.IsInvariantViolation(err))
}

func TestRoundTrip_Lease(t *testing.T) {
	f := framing.NewLeaseFrame(30000, 5, []byte("lease-meta"))
	got := roundTrip(t, f, encoding.TextSet).(*framing.LeaseFrame)
	assert.Equal(t, uint32(30000), got.TTL())
	assert.Equal(t, uint32(5), got.RequestCount())
	assert.Equal(t, []byte("lease-meta"), got.Metadata())
}

func TestLease_RejectsNonzeroStreamID(t *testing.T) {
	h := core.NewFrameHeader(1, core.FrameTypeLease, 0)
	_, err := framing.Decode(h, make([]byte, 8), encoding.TextSet)
	assert.True(t, core.IsInvariantViolation(err))
}

func TestRoundTrip_Error(t *testing.T) {
	f := framing.NewErrorFrame(1, core.ErrorCodeApplicationError, "boom")
	got := roundTrip(t, f, encoding.TextSet).(*framing.ErrorFrame)
	assert.Equal(t, core.ErrorCodeApplicationError, got.Code())
	assert.Equal(t, "boom", got.Message())
	assert.Equal(t, "APPLICATION_ERROR: boom", got.Error())
}

func TestError_RejectsCodeOutOfRange(t *testing.T) {
	h := core.NewFrameHeader(1, core.FrameTypeError, 0)
	body := []byte{0xff, 0xff, 0xff, 0xff}
	_, err := framing.Decode(h, body, encoding.TextSet)
	assert.True(t, core.IsInvariantViolation(err))
}

func TestRoundTrip_Setup(t *testing.T) {
	f := framing.NewSetupFrame(1, 0, 60000, 180000, nil, "application/json", "application/json", nil, nil, 0)
	buf, err := framing.Encode(f, encoding.TextSet)
	assert.NoError(t, err)
	// resume token length field is zero when no token was given.
	assert.Equal(t, byte(0x00), buf[core.FrameHeaderLen+12])
	assert.Equal(t, byte(0x00), buf[core.FrameHeaderLen+13])

	got := roundTrip(t, f, encoding.TextSet).(*framing.SetupFrame)
	assert.Equal(t, core.NewVersion(1, 0), got.Version())
	assert.Equal(t, uint32(60000), got.KeepAlive())
	assert.Equal(t, uint32(180000), got.Lifetime())
	assert.Nil(t, got.ResumeToken())
	assert.Equal(t, "application/json", got.MetadataMimeType())
	assert.Equal(t, "application/json", got.DataMimeType())
}

func TestRoundTrip_Setup_WithResumeTokenAndPayload(t *testing.T) {
	f := framing.NewSetupFrame(1, 0, 1000, 2000, []byte("resume-me"), "text/plain", "text/plain",
		[]byte("data"), []byte("meta"), core.FlagMetadata)
	got := roundTrip(t, f, encoding.TextSet).(*framing.SetupFrame)
	assert.Equal(t, []byte("resume-me"), got.ResumeToken())
	assert.Equal(t, []byte("data"), got.Data())
	assert.Equal(t, []byte("meta"), got.Metadata())
}

func TestSetup_RejectsNonzeroStreamID(t *testing.T) {
	h := core.NewFrameHeader(1, core.FrameTypeSetup, 0)
	body := make([]byte, 16)
	_, err := framing.Decode(h, body, encoding.TextSet)
	assert.True(t, core.IsInvariantViolation(err))
}

func TestSetup_RejectsKeepAliveOutOfRange(t *testing.T) {
	h := core.NewFrameHeader(0, core.FrameTypeSetup, 0)
	body := make([]byte, 16)
	body[4], body[5], body[6], body[7] = 0xff, 0xff, 0xff, 0xff
	_, err := framing.Decode(h, body, encoding.TextSet)
	assert.True(t, core.IsInvariantViolation(err))
}

func TestSetup_ResumeTokenTooLong(t *testing.T) {
	token := make([]byte, 65536)
	f := framing.NewSetupFrame(1, 0, 0, 0, token, "", "", nil, nil, 0)
	_, err := framing.Encode(f, encoding.TextSet)
	assert.True(t, core.IsInvariantViolation(err))
}

func TestDecode_UnknownFrameType(t *testing.T) {
	h := core.NewFrameHeader(1, core.FrameType(0x3f), 0)
	_, err := framing.Decode(h, nil, encoding.TextSet)
	assert.True(t, core.IsInvariantViolation(err))
}
