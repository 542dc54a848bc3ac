package scanner

// Scanner finds numbers written in exponential notation outside of JSON
// string literals. It makes one left-to-right pass over the document: string
// literals are consumed whole and no byte is consumed more than twice, so a
// scan is linear in the input length no matter how malformed the document is.
//
// Scanning is byte-based. Every byte the JSON grammar gives meaning to here
// is ASCII, and the continuation bytes of a multi-byte UTF-8 sequence can
// never collide with one, so such sequences simply fall through to the
// default advance.
type Scanner struct {
	src    string
	offset int
	start  int

	prefix   string
	literal  string
	sign     string
	integer  string
	fraction string
	exponent string
}

// New returns a scanner that will scan the whole of src from the beginning.
func New(src string) *Scanner {
	return &Scanner{src: src}
}

func (s *Scanner) peek() byte {
	if s.offset+1 < len(s.src) {
		return s.src[s.offset+1]
	}
	return 0
}

// Scan advances to the next number in exponential notation that lies outside
// any string literal, returning false when no more exist. The number and the
// text preceding it are available from the accessors until the next call.
func (s *Scanner) Scan() bool {
	s.start = s.offset
	for s.offset < len(s.src) {
		switch c := s.src[s.offset]; {
		case c == '"':
			s.consumeString()
		case c == '-' || isDigit(c):
			if s.consumeNumber() {
				return true
			}
		default:
			s.offset++
		}
	}
	return false
}

// Prefix returns the text between the end of the previous match and the start
// of the current one, including any string literals it spans.
func (s *Scanner) Prefix() string {
	return s.prefix
}

// Literal returns the entire matched number, including its sign, digits, and
// exponent marker.
func (s *Scanner) Literal() string {
	return s.literal
}

// Sign returns "-" for a negative match and "" otherwise.
func (s *Scanner) Sign() string {
	return s.sign
}

// IntegerPart returns the digits before the decimal point. It is never empty.
func (s *Scanner) IntegerPart() string {
	return s.integer
}

// FractionalPart returns the digits after the decimal point, or "" when the
// match has none.
func (s *Scanner) FractionalPart() string {
	return s.fraction
}

// ExponentPart returns the exponent digits along with their optional sign.
func (s *Scanner) ExponentPart() string {
	return s.exponent
}

// Suffix returns the unmatched tail of the document once Scan has returned
// false. It is valid until the next call to Scan.
func (s *Scanner) Suffix() string {
	return s.src[s.start:]
}
