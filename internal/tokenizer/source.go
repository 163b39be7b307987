package tokenizer

import (
	"bufio"
	"io"
)

// Source is a sequential character source.
//
// ReadRunes reads up to len(p) runes into p and returns the number read.
// At the end of input it returns io.EOF; it may return io.EOF together with
// the final runes.
type Source interface {
	ReadRunes(p []rune) (n int, err error)
}

// runeSource decodes UTF-8 from an io.Reader. Invalid bytes decode to
// utf8.RuneError, matching bufio.Reader.ReadRune.
type runeSource struct {
	br *bufio.Reader
}

// NewSource returns a Source reading UTF-8 text from r.
func NewSource(r io.Reader) Source {
	if s, ok := r.(Source); ok {
		return s
	}
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &runeSource{br: br}
}

func (s *runeSource) ReadRunes(p []rune) (int, error) {
	n := 0
	for n < len(p) {
		r, _, err := s.br.ReadRune()
		if err != nil {
			return n, err
		}
		p[n] = r
		n++
		// Return what is already buffered rather than block on the next read.
		if s.br.Buffered() == 0 {
			break
		}
	}
	return n, nil
}

// RuneSlice is a Source over an in-memory rune slice, handing out at most
// Chunk runes per read (all remaining runes when Chunk <= 0).
type RuneSlice struct {
	Runes []rune
	Chunk int
}

func (s *RuneSlice) ReadRunes(p []rune) (int, error) {
	if len(s.Runes) == 0 {
		return 0, io.EOF
	}
	limit := len(p)
	if s.Chunk > 0 && s.Chunk < limit {
		limit = s.Chunk
	}
	n := copy(p[:limit], s.Runes)
	s.Runes = s.Runes[n:]
	return n, nil
}
