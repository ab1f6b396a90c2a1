package core_test

import (
	"testing"

	"github.com/rsocket/rsocket-codec/core"
	"github.com/stretchr/testify/assert"
)

func TestCodecError(t *testing.T) {
	err := core.NewInvariantViolation("streamId", "-1")
	assert.True(t, core.IsInvariantViolation(err))
	assert.False(t, core.IsEncoderMismatch(err))
	assert.Contains(t, err.Error(), "streamId")
	assert.Contains(t, err.Error(), "-1")

	err2 := core.NewEncoderMismatch("data", "not utf8")
	assert.True(t, core.IsEncoderMismatch(err2))
	assert.False(t, core.IsInvariantViolation(err2))
}

func TestIsInvariantViolation_NonCodecError(t *testing.T) {
	assert.False(t, core.IsInvariantViolation(assertPlainError()))
}

func assertPlainError() error {
	return &plainError{}
}

type plainError struct{}

func (p *plainError) Error() string { return "plain" }
