package wire

// ParseError is the closed set of reasons [Message.Parse] can poison a
// message, encoded as the negative return value itself so that a caller
// checking `n < 0` already has the detail available via ParseError(-n).
//
// It's a small integer type implementing error via String, rather than
// scattered errors.New calls in the hot loop.
type ParseError int32

const (
	_ ParseError = iota // zero is not a valid error; it's the "more data" return

	// ErrInvalidToken covers a non-token byte where a token byte was
	// required: first byte of a request line, a method byte, or a
	// header-name byte.
	ErrInvalidToken
	// ErrMethodTooLong: method exceeded 7 content bytes.
	ErrMethodTooLong
	// ErrEmptyURI: the request-target between SP delimiters was empty.
	ErrEmptyURI
	// ErrInvalidURI: a byte in the request-target was outside ISO-8859-1.
	ErrInvalidURI
	// ErrBadVersion: the HTTP-version token was not exactly 8 bytes
	// matching "HTTP/d.d", or appeared in a position this driver does
	// not accept (e.g. an SP following a request line's version).
	ErrBadVersion
	// ErrBadStatus: status code was out of [100, 999], or the status
	// field contained a non-digit byte.
	ErrBadStatus
	// ErrInvalidValue: a byte in a reason-phrase or header value was
	// outside ISO-8859-1 (HT excepted in header values).
	ErrInvalidValue
	// ErrLineFolding: a header line began with whitespace, i.e. an
	// attempt at obsolete line folding, which this parser rejects.
	ErrLineFolding
	// ErrBareCR: a CR was not immediately followed by LF.
	ErrBareCR
	// ErrOverrun: the message did not terminate within the 32767-byte
	// scanning cap.
	ErrOverrun
	// ErrOOM: xheaders growth failed.
	ErrOOM
)

func (e ParseError) String() string {
	switch e {
	case ErrInvalidToken:
		return "invalid token byte"
	case ErrMethodTooLong:
		return "method too long"
	case ErrEmptyURI:
		return "empty request-target"
	case ErrInvalidURI:
		return "invalid ISO-8859-1 byte in request-target"
	case ErrBadVersion:
		return "malformed HTTP version"
	case ErrBadStatus:
		return "malformed status code"
	case ErrInvalidValue:
		return "invalid ISO-8859-1 byte in value"
	case ErrLineFolding:
		return "obsolete line folding is not supported"
	case ErrBareCR:
		return "bare CR without following LF"
	case ErrOverrun:
		return "message did not terminate within the scanning cap"
	case ErrOOM:
		return "out of memory growing xheaders"
	default:
		return "unknown parse error"
	}
}

func (e ParseError) Error() string { return e.String() }
