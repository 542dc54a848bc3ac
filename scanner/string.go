package scanner

// consumeString consumes an entire string literal, including the delimiting
// quotes. A backslash escapes whatever byte follows it, which covers every
// escape in the grammar; the four hex digits of a \u escape need no special
// casing because they can never terminate a literal. An unterminated literal
// consumes the remainder of the input and is never rescanned.
//
// https://www.rfc-editor.org/rfc/rfc8259#section-7
func (s *Scanner) consumeString() {
	s.offset++
	for s.offset < len(s.src) {
		c := s.src[s.offset]
		s.offset++
		switch c {
		case '"':
			return
		case '\\':
			if s.offset < len(s.src) {
				s.offset++
			}
		}
	}
}
