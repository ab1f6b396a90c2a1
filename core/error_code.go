package core

// ErrorCode is the well-known code carried by an ERROR frame. The wire
// value is a uint31; codec validation only enforces the range, callers
// are free to use application-specific codes outside this list.
type ErrorCode uint32

const (
	// ErrorCodeInvalidSetup means the setup frame is invalid for the server.
	ErrorCodeInvalidSetup ErrorCode = 0x00000001
	// ErrorCodeUnsupportedSetup means some (or all) of the parameters
	// specified by the client are unsupported by the server.
	ErrorCodeUnsupportedSetup ErrorCode = 0x00000002
	// ErrorCodeRejectedSetup means the server rejected the setup; it can
	// specify the reason in the payload.
	ErrorCodeRejectedSetup ErrorCode = 0x00000003
	// ErrorCodeRejectedResume means the server rejected a resume attempt;
	// it can specify the reason in the payload.
	ErrorCodeRejectedResume ErrorCode = 0x00000004
	// ErrorCodeConnectionError means the connection is being terminated.
	ErrorCodeConnectionError ErrorCode = 0x00000101
	// ErrorCodeConnectionClose means the connection is being terminated
	// and indicates graceful close.
	ErrorCodeConnectionClose ErrorCode = 0x00000102
	// ErrorCodeApplicationError means the application layer generated a
	// Reactive Streams onError event.
	ErrorCodeApplicationError ErrorCode = 0x00000201
	// ErrorCodeRejected means the responder rejected the request.
	ErrorCodeRejected ErrorCode = 0x00000202
	// ErrorCodeCanceled means the responder canceled the request but may
	// have started processing it.
	ErrorCodeCanceled ErrorCode = 0x00000203
	// ErrorCodeInvalid means the request itself is invalid.
	ErrorCodeInvalid ErrorCode = 0x00000204
)

func (c ErrorCode) String() string {
	switch c {
	case ErrorCodeInvalidSetup:
		return "INVALID_SETUP"
	case ErrorCodeUnsupportedSetup:
		return "UNSUPPORTED_SETUP"
	case ErrorCodeRejectedSetup:
		return "REJECTED_SETUP"
	case ErrorCodeRejectedResume:
		return "REJECTED_RESUME"
	case ErrorCodeConnectionError:
		return "CONNECTION_ERROR"
	case ErrorCodeConnectionClose:
		return "CONNECTION_CLOSE"
	case ErrorCodeApplicationError:
		return "APPLICATION_ERROR"
	case ErrorCodeRejected:
		return "REJECTED"
	case ErrorCodeCanceled:
		return "CANCELED"
	case ErrorCodeInvalid:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}
