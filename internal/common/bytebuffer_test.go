package common_test

import (
	"testing"

	"github.com/rsocket/rsocket-codec/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestByteBuff_Bytes(t *testing.T) {
	data := []byte("foobar")
	b := common.BorrowByteBuffer()
	defer common.ReturnByteBuffer(b)
	wrote, err := b.Write(data)
	assert.NoError(t, err, "write failed")
	assert.Equal(t, len(data), wrote, "wrong wrote size")
	assert.Equal(t, data, b.Bytes(), "wrong data")
}

func TestByteBuff_WriteUint24(t *testing.T) {
	b := common.BorrowByteBuffer()
	defer common.ReturnByteBuffer(b)
	assert.NoError(t, b.WriteUint24(0))
	assert.NoError(t, b.WriteUint24(common.MaxUint24))
	assert.Panics(t, func() {
		_ = b.WriteUint24(0x01FFFFFF)
	})
}

func TestByteBuff_Len(t *testing.T) {
	b := common.BorrowByteBuffer()
	defer common.ReturnByteBuffer(b)
	// 3+1+6
	_ = b.WriteUint24(1)
	_ = b.WriteByte('c')
	_, _ = b.Write([]byte("foobar"))
	assert.Equal(t, 10, b.Len(), "wrong length")
}

func TestByteBuff_Reset(t *testing.T) {
	b := common.BorrowByteBuffer()
	defer common.ReturnByteBuffer(b)
	_, _ = b.Write([]byte("foobar"))
	b.Reset()
	assert.Equal(t, 0, b.Len())
}

func TestCountByteBuffer(t *testing.T) {
	before := common.CountByteBuffer()
	b := common.BorrowByteBuffer()
	assert.Equal(t, before+1, common.CountByteBuffer())
	common.ReturnByteBuffer(b)
	assert.Equal(t, before, common.CountByteBuffer())
}
