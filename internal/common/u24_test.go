package common

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUint24_RoundTrip(t *testing.T) {
	for i := 0; i < 1000; i++ {
		n := rand.Intn(MaxUint24 + 1)
		x := MustNewUint24(n)
		assert.Equal(t, n, x.AsInt(), "bad new from int")
		y := NewUint24Bytes(x.Bytes())
		assert.Equal(t, n, y.AsInt(), "bad new from bytes")
	}
	testSingle(t, 0)
	testSingle(t, MaxUint24)
}

func testSingle(t *testing.T, n int) {
	x := MustNewUint24(n)
	assert.Equal(t, n, x.AsInt())
}

func TestNewUint24_Bounds(t *testing.T) {
	_, err := NewUint24(-1)
	assert.True(t, IsNegativeUint24Error(err))

	_, err = NewUint24(MaxUint24 + 1)
	assert.True(t, IsExceedMaximumUint24Error(err))
}

func TestReadWriteUint24(t *testing.T) {
	buf := make([]byte, 10)
	for i := 0; i < 1000; i++ {
		n := rand.Intn(MaxUint24 + 1)
		WriteUint24(buf, 2, n)
		assert.Equal(t, n, ReadUint24(buf, 2))
	}
}

func TestWriteUint24_Truncates(t *testing.T) {
	buf := make([]byte, 3)
	WriteUint24(buf, 0, MaxUint24+5)
	assert.Equal(t, 4, ReadUint24(buf, 0))
}
