package pool

import "sync"

// SnapshotBufferDefaultSize is the default size of the ByteBuffer obtained
// from the pool. A 16x16x16 section at 4 bits per item packs into 2KiB of
// words, plus palette and header; 8KiB absorbs typical sections without
// growing.
const (
	SnapshotBufferDefaultSize  = 1024 * 8   // 8KiB
	SnapshotBufferMaxThreshold = 1024 * 256 // 256KiB
)

// ByteBuffer is a reusable byte slice wrapper handed out by GetSnapshotBuffer.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite writes data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

var snapshotBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(SnapshotBufferDefaultSize)
	},
}

// GetSnapshotBuffer retrieves a reset ByteBuffer from the pool.
func GetSnapshotBuffer() *ByteBuffer {
	buf, _ := snapshotBufferPool.Get().(*ByteBuffer)
	buf.Reset()

	return buf
}

// PutSnapshotBuffer returns a ByteBuffer to the pool.
//
// Buffers that grew beyond SnapshotBufferMaxThreshold are dropped so one
// oversized section cannot pin memory for the lifetime of the pool.
func PutSnapshotBuffer(buf *ByteBuffer) {
	if buf == nil || buf.Cap() > SnapshotBufferMaxThreshold {
		return
	}
	snapshotBufferPool.Put(buf)
}
