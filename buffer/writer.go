package buffer

import "sync"

// defaultWriterSize is the initial capacity handed out by the Writer pool.
// OPC UA PDUs are typically small (tens to low thousands of bytes), so this
// avoids most reallocation without over-committing memory.
const defaultWriterSize = 256

// growThreshold is the capacity above which Writer.Grow switches from a fixed
// increment to a proportional one, mirroring the amortized-growth strategy of
// a typical append-only byte buffer.
const growThreshold = 4 * defaultWriterSize

// Writer is an amortized-growth byte accumulator used by encoders. It is not
// safe for concurrent use; each encode call should own one Writer, obtained
// from Get and returned via Put.
type Writer struct {
	b []byte
}

var writerPool = sync.Pool{
	New: func() any {
		return &Writer{b: make([]byte, 0, defaultWriterSize)}
	},
}

// Get retrieves a Writer from the pool, ready for use.
func Get() *Writer {
	w, _ := writerPool.Get().(*Writer)
	return w
}

// Put resets w and returns it to the pool. Callers must not use w after
// calling Put.
func Put(w *Writer) {
	if w == nil {
		return
	}
	w.b = w.b[:0]
	writerPool.Put(w)
}

// Bytes returns the accumulated bytes. The returned slice aliases the
// Writer's internal storage and is only valid until the next Append/Grow/Put.
func (w *Writer) Bytes() []byte {
	return w.b
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.b)
}

// Grow ensures at least n more bytes can be appended without reallocating.
func (w *Writer) Grow(n int) {
	available := cap(w.b) - len(w.b)
	if available >= n {
		return
	}

	growBy := defaultWriterSize
	if cap(w.b) > growThreshold {
		growBy = cap(w.b) / 4
	}
	if growBy < n {
		growBy = n
	}

	next := make([]byte, len(w.b), len(w.b)+growBy)
	copy(next, w.b)
	w.b = next
}

// Append writes data to the buffer, growing it first if necessary.
func (w *Writer) Append(data []byte) {
	w.Grow(len(data))
	w.b = append(w.b, data...)
}

// AppendByte writes a single byte, growing the buffer first if necessary.
func (w *Writer) AppendByte(b byte) {
	w.Grow(1)
	w.b = append(w.b, b)
}
