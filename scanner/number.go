package scanner

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (s *Scanner) consumeDigits() bool {
	start := s.offset
	for s.offset < len(s.src) && isDigit(s.src[s.offset]) {
		s.offset++
	}
	return s.offset > start
}

// consumeFractionalPart consumes a decimal point followed by one or more
// digits. A point with no digit after it is left unconsumed.
func (s *Scanner) consumeFractionalPart() bool {
	if s.offset >= len(s.src) || s.src[s.offset] != '.' || !isDigit(s.peek()) {
		return false
	}
	s.offset++
	s.consumeDigits()
	return true
}

// consumeNumber consumes one number in exponential notation and records its
// component parts. If the text at the cursor turns out not to be one, it
// returns false with the cursor placed so that no later match is skipped: the
// only position strictly inside a failed attempt where a match can begin is
// its first fractional digit, so the cursor rests there when a fractional
// part was consumed and on the byte that broke the attempt otherwise. Each
// byte is consumed at most twice, keeping the scan linear.
//
// https://www.rfc-editor.org/rfc/rfc8259#section-6
func (s *Scanner) consumeNumber() bool {
	matchStart := s.offset
	if s.src[s.offset] == '-' {
		if !isDigit(s.peek()) {
			s.offset++
			return false
		}
		s.offset++
	}
	intStart := s.offset
	s.consumeDigits()
	intEnd := s.offset

	fracStart, fracEnd := intEnd, intEnd
	if s.consumeFractionalPart() {
		fracStart, fracEnd = intEnd+1, s.offset
	}

	if s.offset >= len(s.src) || (s.src[s.offset] != 'e' && s.src[s.offset] != 'E') {
		if fracStart < fracEnd {
			s.offset = fracStart
		}
		return false
	}
	s.offset++
	expStart := s.offset
	if s.offset < len(s.src) && (s.src[s.offset] == '+' || s.src[s.offset] == '-') {
		s.offset++
	}
	if !s.consumeDigits() {
		return false
	}

	s.prefix = s.src[s.start:matchStart]
	s.literal = s.src[matchStart:s.offset]
	s.sign = s.src[matchStart:intStart]
	s.integer = s.src[intStart:intEnd]
	s.fraction = s.src[fracStart:fracEnd]
	s.exponent = s.src[expStart:s.offset]
	return true
}
