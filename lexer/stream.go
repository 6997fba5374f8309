package lexer

import "minilang/token"

// Stream wraps a Lexer with the fixed-capacity-2 ring buffer spec §4.1
// calls for: one slot holds the current token, the other the single token
// of lookahead the parser's grammar needs (e.g. to distinguish `IDENT =`
// from `IDENT (`).
type Stream struct {
	lex *Lexer
	buf *ringBuffer
}

// NewStream primes the ring with the first two tokens of src.
func NewStream(src string) (*Stream, error) {
	s := &Stream{lex: New(src), buf: newRingBuffer(2)}
	if err := s.fill(); err != nil {
		return nil, err
	}
	if err := s.fill(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Stream) fill() error {
	t, err := s.lex.Next()
	if err != nil {
		return err
	}
	s.buf.add(t)
	return nil
}

// Current is the token the parser is presently looking at.
func (s *Stream) Current() token.Token {
	return s.buf.get(2)
}

// Peek is the token one past Current.
func (s *Stream) Peek() token.Token {
	return s.buf.get(1)
}

// Advance consumes Current, refilling the ring from the underlying lexer
// so Peek becomes the new Current and a fresh token becomes the new Peek.
func (s *Stream) Advance() error {
	return s.fill()
}
