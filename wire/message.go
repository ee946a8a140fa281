package wire

import "github.com/JulianDavis/uurl/internal"

// maxSize is SHRT_MAX: the largest offset a [Slice] can represent and the
// hard cap on how many bytes of a single message this package will scan.
const maxSize = 32767

// Slice is a (start, end) pair of byte offsets into a buffer owned by the
// caller, with end >= start. The zero Slice means "absent". A Slice with
// Start == End and Start > 0 means "present but empty", distinguishable
// from absent (e.g. "Host: " with no value).
type Slice struct {
	Start uint16
	End   uint16
}

// Len returns the slice's length in bytes.
func (s Slice) Len() int { return int(s.End) - int(s.Start) }

// Present reports whether s was recorded by a parse, as opposed to being
// the zero value for a header that was never seen.
func (s Slice) Present() bool { return !internal.IsZeroed(s.Start, s.End) }

// Bytes returns the bytes s refers to in buf. buf must be the same buffer
// (or a buffer with identical contents at these offsets) passed to Parse.
func (s Slice) Bytes(buf []byte) []byte { return buf[s.Start:s.End] }

// XHeader is a single (name, value) pair that did not land in a
// well-known header slot, either because the name was unrecognized or
// because a repeatable well-known header's slot was already taken.
type XHeader struct {
	Name  Slice
	Value Slice
}

// Kind selects whether a [Message] parses a request or a response start
// line. It is set by Init and never changes afterwards.
type Kind uint8

const (
	KindRequest Kind = iota
	KindResponse
)

// Version is the recognized HTTP version of a start line.
type Version uint8

const (
	VUnknown Version = iota
	V0_9
	V1_0
	V1_1
)

func (v Version) String() string {
	switch v {
	case V0_9:
		return "HTTP/0.9"
	case V1_0:
		return "HTTP/1.0"
	case V1_1:
		return "HTTP/1.1"
	default:
		return "HTTP/unknown"
	}
}

type parserState uint8

const (
	stateStart parserState = iota
	stateMethod
	stateURI
	stateVersion
	stateStatus
	stateMessage
	stateCR
	stateLF1
	stateName
	stateColon
	stateValue
	stateLF2
)

// Message holds all parser state and results for one HTTP/1.x start line
// plus header section. It carries no heap allocation beyond xheaders, is
// safe to reuse across connections via Reset, and borrows the caller's
// buffer: it never outlives it.
//
// A Message whose last Parse call returned a negative value is poisoned;
// the only valid operation on it afterwards is Free.
type Message struct {
	kind     Kind
	state    parserState
	poisoned bool

	i      int // next byte to examine
	cursor int // anchor for the token currently being scanned

	keyStart, keyEnd int // header name range, valid in stateColon/stateValue

	methodBuf [7]byte
	methodLen uint8

	version Version
	status  uint16

	uri    Slice
	reason Slice

	headers  [headerCount]Slice
	xheaders []XHeader
}

// Init prepares msg to parse a message of the given kind. It zeroes all
// fields and releases any xheaders storage; it performs no allocation.
func Init(msg *Message, kind Kind) {
	*msg = Message{kind: kind}
}

// Reset re-initializes msg for a new message of the same kind, reusing its
// xheaders backing array. Use this instead of Init when recycling a
// Message across many connections to avoid reallocating xheaders.
func (m *Message) Reset() {
	xh := m.xheaders
	internal.SliceReuse(&xh, cap(xh))
	*m = Message{kind: m.kind, xheaders: xh}
}

// Free releases the xheaders storage. It is idempotent and safe to call
// on a zeroed or already-freed Message. It does not touch the input
// buffer, which Message never owned.
func Free(msg *Message) {
	msg.xheaders = nil
}

// Kind returns the message kind fixed at Init.
func (m *Message) Kind() Kind { return m.kind }

// Poisoned reports whether the last Parse call returned a negative value.
// No further Parse calls are valid until Reset or Init.
func (m *Message) Poisoned() bool { return m.poisoned }

// Method returns the uppercased request method. Unlike the other
// accessors this is not a Slice into the caller's buffer: the method
// bytes are uppercased into a small buffer Message owns, since the raw
// input bytes may not already be uppercase.
func (m *Message) Method() string {
	return string(m.methodBuf[:m.methodLen])
}

// URI returns the request-target slice. Only meaningful for KindRequest.
func (m *Message) URI() Slice { return m.uri }

// Version returns the recognized HTTP version of the start line.
func (m *Message) Version() Version { return m.version }

// Status returns the response status code. Only meaningful for
// KindResponse.
func (m *Message) Status() uint16 { return m.status }

// ReasonPhrase returns the response reason-phrase slice. Only meaningful
// for KindResponse.
func (m *Message) ReasonPhrase() Slice { return m.reason }

// Header returns the recorded slice for a well-known header, or the zero
// Slice if it was never present in the message.
func (m *Message) Header(id HeaderID) Slice {
	if id == HeaderUnknown || id >= headerCount {
		return Slice{}
	}
	return m.headers[id]
}

// XHeaders returns the ordered list of headers that did not land in a
// well-known slot. The returned slice aliases Message state and is only
// valid until the next Reset, Init, or Free.
func (m *Message) XHeaders() []XHeader { return m.xheaders }

// XHeaderValue returns the value slice of the first xheader whose name
// matches name (ASCII case-insensitive), and whether one was found. This
// spares callers who recorded an unknown or repeated header from walking
// XHeaders by hand.
func (m *Message) XHeaderValue(buf []byte, name string) (Slice, bool) {
	for _, xh := range m.xheaders {
		if len(xh.Name.Bytes(buf)) != len(name) {
			continue
		}
		if equalFoldASCII(xh.Name.Bytes(buf), name) {
			return xh.Value, true
		}
	}
	return Slice{}, false
}

func equalFoldASCII(b []byte, s string) bool {
	for i := range b {
		if toUpperASCII(b[i]) != toUpperASCII(s[i]) {
			return false
		}
	}
	return true
}

// appendXHeader appends to xheaders with explicit doubling growth
// (capacity 0 -> 1 -> 2 -> 4 -> ...), mirroring the reference parser's
// realloc-on-demand xheaders list. Go's append already amortizes this,
// but modeling the growth explicitly keeps the capacity-doubling
// invariant (and its fallibility, see ErrOOM) a visible part of the
// control flow rather than hidden in the runtime.
func (m *Message) appendXHeader(name, value Slice) error {
	if len(m.xheaders) == cap(m.xheaders) {
		newCap := cap(m.xheaders) * 2
		if newCap == 0 {
			newCap = 1
		}
		if newCap < 0 {
			return ErrOOM
		}
		grown := make([]XHeader, len(m.xheaders), newCap)
		copy(grown, m.xheaders)
		m.xheaders = grown
	}
	m.xheaders = append(m.xheaders, XHeader{Name: name, Value: value})
	return nil
}
