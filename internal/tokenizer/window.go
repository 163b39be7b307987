package tokenizer

import "io"

// DefaultWindowSize is the rune capacity of the read window when none is given.
const DefaultWindowSize = 4096

// maxEmptyReads bounds consecutive (0, nil) reads from a Source.
const maxEmptyReads = 100

// window is the fixed-capacity read buffer of a Tokenizer.
//
// It tracks three offsets into buf:
//
//	0 <= mark <= pos <= n <= len(buf)
//
// buf[mark:pos] is the pending run: runes that were accepted as field
// content but not yet copied into the field accumulator. Copying is
// deferred until a field boundary or a refill so that long runs of plain
// runes are appended in one call.
type window struct {
	buf  []rune
	n    int
	pos  int
	mark int
	err  error // deferred error from a read that also returned data
}

func newWindow(size int) *window {
	if size <= 0 {
		size = DefaultWindowSize
	}
	return &window{buf: make([]rune, size)}
}

// exhausted reports whether every buffered rune has been looked at.
func (w *window) exhausted() bool {
	return w.pos == w.n
}

// peek returns the rune under the cursor. The window must not be exhausted.
func (w *window) peek() rune {
	if w.pos >= w.n {
		panic("tokenizer: peek past end of window")
	}
	return w.buf[w.pos]
}

// extend accepts the rune under the cursor into the pending run.
func (w *window) extend() {
	if w.pos >= w.n {
		panic("tokenizer: extend past end of window")
	}
	w.pos++
}

// skip consumes the rune under the cursor without keeping it.
// The pending run restarts after it, so it must already be drained.
func (w *window) skip() {
	if w.pos >= w.n {
		panic("tokenizer: skip past end of window")
	}
	if w.mark != w.pos {
		panic("tokenizer: skip with undrained run")
	}
	w.pos++
	w.mark = w.pos
}

// drain appends the pending run to dst and empties it.
func (w *window) drain(dst []rune) []rune {
	if w.pos > w.mark {
		dst = append(dst, w.buf[w.mark:w.pos]...)
	}
	w.mark = w.pos
	return dst
}

// fill reads the next chunk from src into the start of the window.
// The window must be exhausted and drained. It returns io.EOF once src is done.
func (w *window) fill(src Source) error {
	if w.pos != w.n || w.mark != w.pos {
		panic("tokenizer: refill before window is drained")
	}
	w.n, w.pos, w.mark = 0, 0, 0
	if w.err != nil {
		err := w.err
		w.err = nil
		return err
	}
	for i := 0; i < maxEmptyReads; i++ {
		n, err := src.ReadRunes(w.buf)
		if n > 0 {
			w.n = n
			w.err = err
			return nil
		}
		if err != nil {
			return err
		}
	}
	return io.ErrNoProgress
}
