package crypto

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// ByteBuffer is an immutable binary value with a declared nominal byte
// length. The declared length is advisory: it may be smaller than the
// payload for bounded-length values, and primitives set it to the exact
// size of the material they produce (derived key length, digest size,
// checksum length).
//
// The zero value is an empty buffer of declared length zero.
type ByteBuffer struct {
	payload []byte
	length  int
}

// NewByteBuffer wraps raw bytes in a buffer whose declared length equals
// the payload size. The input is copied; later mutation of raw does not
// affect the buffer.
func NewByteBuffer(raw []byte) ByteBuffer {
	return wrapBytes(bytes.Clone(raw), len(raw))
}

// NewByteBufferWithLength wraps raw bytes with an explicit declared length.
// The declared length is not validated against the payload size, but a
// negative length is rejected.
func NewByteBufferWithLength(raw []byte, length int) (ByteBuffer, error) {
	if length < 0 {
		return ByteBuffer{}, fmt.Errorf("%w: declared length %d must not be negative", ErrInvalidParameter, length)
	}
	return wrapBytes(bytes.Clone(raw), length), nil
}

// ParseHexByteBuffer decodes a hex string into a buffer.
func ParseHexByteBuffer(s string) (ByteBuffer, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return ByteBuffer{}, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	return wrapBytes(raw, len(raw)), nil
}

// wrapBytes takes ownership of raw without copying. Callers must not retain
// a reference to raw afterwards.
func wrapBytes(raw []byte, length int) ByteBuffer {
	return ByteBuffer{payload: raw, length: length}
}

// Bytes returns a copy of the payload.
func (b ByteBuffer) Bytes() []byte {
	return bytes.Clone(b.payload)
}

// Length returns the declared nominal length in bytes.
func (b ByteBuffer) Length() int {
	return b.length
}

// Size returns the actual payload size in bytes, which may differ from the
// declared length.
func (b ByteBuffer) Size() int {
	return len(b.payload)
}

// Equal reports whether two buffers carry identical payloads. The declared
// length does not participate in equality.
func (b ByteBuffer) Equal(other ByteBuffer) bool {
	return bytes.Equal(b.payload, other.payload)
}

// Hex returns the payload as a lowercase hex string.
func (b ByteBuffer) Hex() string {
	return hex.EncodeToString(b.payload)
}

// String returns a truncated hex form suitable for log output. Use Hex for
// the full payload.
func (b ByteBuffer) String() string {
	const maxShown = 16
	if len(b.payload) <= maxShown {
		return fmt.Sprintf("ByteBuffer(%d:%s)", b.length, hex.EncodeToString(b.payload))
	}
	return fmt.Sprintf("ByteBuffer(%d:%s...)", b.length, hex.EncodeToString(b.payload[:maxShown]))
}
