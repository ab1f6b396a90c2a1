package framer

import "go.uber.org/atomic"

// Counter accumulates the bytes ParseStream, EmitFrame, and
// EmitLengthPrefixed have moved, for callers that want transport-level
// traffic metrics alongside the framing itself. Safe for concurrent
// use; the zero value is not usable, construct with NewCounter.
type Counter struct {
	read    *atomic.Uint64
	written *atomic.Uint64
}

// NewCounter returns a zeroed Counter.
func NewCounter() *Counter {
	return &Counter{read: atomic.NewUint64(0), written: atomic.NewUint64(0)}
}

// ReadBytes returns the total bytes parsed so far.
func (c *Counter) ReadBytes() uint64 { return c.read.Load() }

// WriteBytes returns the total bytes emitted so far.
func (c *Counter) WriteBytes() uint64 { return c.written.Load() }

// IncReadBytes adds n to the read total.
func (c *Counter) IncReadBytes(n int) { c.read.Add(uint64(n)) }

// IncWriteBytes adds n to the write total.
func (c *Counter) IncWriteBytes(n int) { c.written.Add(uint64(n)) }
