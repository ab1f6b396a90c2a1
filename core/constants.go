package core

// Wire-format limits enforced by the frame codec at parse and emit time.
const (
	// MaxErrorCode is the largest value an ERROR frame's code field may
	// carry (2^31 - 1; the field is a uint31).
	MaxErrorCode uint32 = 0x7FFFFFFF
	// MaxKeepAliveMillis is the largest value a SETUP frame's keepAlive
	// field may carry.
	MaxKeepAliveMillis uint32 = 0x7FFFFFFF
	// MaxLifetimeMillis is the largest value a SETUP frame's lifetime
	// field may carry.
	MaxLifetimeMillis uint32 = 0x7FFFFFFF
	// MaxResumeTokenLength is the largest length a SETUP frame's
	// resumeToken field may carry.
	MaxResumeTokenLength = 65535
	// UInt24Size is the width in bytes of a uint24 length prefix.
	UInt24Size = 3
)
