package wire

import "github.com/JulianDavis/uurl/internal"

// Parse feeds buf[0:filledLen] (capacity bytes total) to the state machine,
// resuming from wherever the previous call left off.
//
// Return value:
//   - positive N: parsing succeeded; N is the number of bytes consumed
//     from position 0 up to and including the terminating blank line.
//   - 0: buf was exhausted before a message boundary was found; append
//     more bytes and call again. msg is left in a consistent mid-parse
//     state.
//   - negative: malformed input, encoded as a [ParseError]. msg is
//     poisoned; discard the connection. Only Free is valid afterwards.
func (m *Message) Parse(buf []byte, filledLen, capacity int) int {
	if capacity > maxSize {
		capacity = maxSize
	}
	if filledLen > capacity {
		filledLen = capacity
	}
	if filledLen > maxSize {
		filledLen = maxSize
	}
	if filledLen <= m.i {
		return 0
	}

	for {
		if m.i >= maxSize {
			return m.fail(ErrOverrun)
		}
		if m.i >= filledLen {
			return 0
		}
		b := buf[m.i]

		switch m.state {
		case stateStart:
			if b == '\r' || b == '\n' {
				m.i++
				continue
			}
			m.cursor = m.i
			if m.kind == KindResponse {
				m.state = stateVersion
				continue
			}
			if !IsTokenByte(b) {
				return m.fail(ErrInvalidToken)
			}
			m.methodBuf[0] = toUpperASCII(b)
			m.methodLen = 1
			m.state = stateMethod
			m.i++

		case stateMethod:
			if b == ' ' {
				m.cursor = m.i + 1
				m.state = stateURI
				m.i++
				continue
			}
			if !IsTokenByte(b) {
				return m.fail(ErrInvalidToken)
			}
			if int(m.methodLen) >= len(m.methodBuf) {
				return m.fail(ErrMethodTooLong)
			}
			m.methodBuf[m.methodLen] = toUpperASCII(b)
			m.methodLen++
			m.i++

		case stateURI:
			if b == ' ' || b == '\r' || b == '\n' {
				if m.i == m.cursor {
					return m.fail(ErrEmptyURI)
				}
				m.uri = Slice{uint16(m.cursor), uint16(m.i)}
				switch b {
				case ' ':
					m.cursor = m.i + 1
					m.state = stateVersion
				case '\r':
					m.version = V0_9
					m.state = stateCR
				default: // '\n'
					m.version = V0_9
					m.state = stateLF1
				}
				m.i++
				continue
			}
			if !isISO1(b) {
				return m.fail(ErrInvalidURI)
			}
			m.i++

		case stateVersion:
			if b == ' ' || b == '\r' || b == '\n' {
				v, ok := parseVersionToken(buf[m.cursor:m.i])
				if !ok {
					return m.fail(ErrBadVersion)
				}
				m.version = v
				if m.kind == KindRequest {
					switch b {
					case '\r':
						m.state = stateCR
					case '\n':
						m.state = stateLF1
					default: // ' ' is not a valid terminator on a request line
						return m.fail(ErrBadVersion)
					}
				} else {
					if b != ' ' {
						return m.fail(ErrBadVersion)
					}
					m.cursor = m.i + 1
					m.status = 0
					m.state = stateStatus
				}
				m.i++
				continue
			}
			m.i++

		case stateStatus:
			if b == ' ' || b == '\r' || b == '\n' {
				if m.status < 100 {
					return m.fail(ErrBadStatus)
				}
				switch b {
				case ' ':
					m.cursor = m.i + 1
					m.state = stateMessage
				case '\r':
					m.state = stateCR
				default: // '\n'
					m.state = stateLF1
				}
				m.i++
				continue
			}
			if b < '0' || b > '9' {
				return m.fail(ErrBadStatus)
			}
			m.status = m.status*10 + uint16(b-'0')
			if m.status > 999 {
				return m.fail(ErrBadStatus)
			}
			m.i++

		case stateMessage:
			if b == '\r' || b == '\n' {
				end := m.i
				for end > m.cursor && isWS(buf[end-1]) {
					end--
				}
				m.reason = Slice{uint16(m.cursor), uint16(end)}
				if b == '\r' {
					m.state = stateCR
				} else {
					m.state = stateLF1
				}
				m.i++
				continue
			}
			if !isISO1(b) {
				return m.fail(ErrInvalidValue)
			}
			m.i++

		case stateCR:
			if b != '\n' {
				return m.fail(ErrBareCR)
			}
			m.state = stateLF1
			m.i++

		case stateLF1:
			if b == '\r' {
				m.state = stateLF2
				m.i++
				continue
			}
			if b == '\n' {
				m.i++
				return m.i
			}
			if !IsTokenByte(b) {
				if isWS(b) {
					return m.fail(ErrLineFolding)
				}
				return m.fail(ErrInvalidToken)
			}
			m.keyStart = m.i
			m.state = stateName
			m.i++

		case stateName:
			if b == ':' {
				m.keyEnd = m.i
				m.state = stateColon
				m.i++
				continue
			}
			if !IsTokenByte(b) {
				return m.fail(ErrInvalidToken)
			}
			m.i++

		case stateColon:
			if isWS(b) {
				m.i++
				continue
			}
			m.cursor = m.i
			m.state = stateValue
			continue // re-dispatch this same byte as the first byte of Value

		case stateValue:
			if b == '\r' || b == '\n' {
				end := m.i
				for end > m.cursor && isWS(buf[end-1]) {
					end--
				}
				value := Slice{uint16(m.cursor), uint16(end)}
				id := ClassifyHeaderName(buf[m.keyStart:m.keyEnd])
				// Set-Cookie is not repeatable, but its duplicates still go to
				// xheaders so that every occurrence can be recovered.
				if id == HeaderUnknown || (m.headers[id].Present() && (IsRepeatable(id) || id == HeaderSetCookie)) {
					name := Slice{uint16(m.keyStart), uint16(m.keyEnd)}
					if err := m.appendXHeader(name, value); err != nil {
						return m.fail(ErrOOM)
					}
				} else {
					m.headers[id] = value
				}
				if b == '\r' {
					m.state = stateCR
				} else {
					m.state = stateLF1
				}
				m.i++
				continue
			}
			if !isISO1(b) && b != '\t' {
				return m.fail(ErrInvalidValue)
			}
			m.i++

		case stateLF2:
			if b != '\n' {
				return m.fail(ErrBareCR)
			}
			m.i++
			return m.i
		}
	}
}

// ParseRequest is Parse restricted to a message initialized with
// KindRequest, as a request-mode entry point distinct from ParseResponse.
func (m *Message) ParseRequest(buf []byte, filledLen, capacity int) int {
	if m.kind != KindRequest {
		panic("wire: ParseRequest called on a response-kind Message")
	}
	return m.Parse(buf, filledLen, capacity)
}

// ParseResponse is Parse restricted to a message initialized with
// KindResponse, as a response-mode entry point distinct from ParseRequest.
func (m *Message) ParseResponse(buf []byte, filledLen, capacity int) int {
	if m.kind != KindResponse {
		panic("wire: ParseResponse called on a request-kind Message")
	}
	return m.Parse(buf, filledLen, capacity)
}

func (m *Message) fail(err ParseError) int {
	m.poisoned = true
	internal.LogAttrs(nil, internal.LevelTrace, "parse failed",
		"reason", err.String(), "state", int(m.state), "offset", m.i)
	return -int(err)
}

// parseVersionToken validates an 8-byte "HTTP/d.d" token and classifies
// it. Any length or pattern mismatch is a hard failure; any syntactically
// valid digit pair other than 0.9/1.0/1.1 is accepted and tagged
// VUnknown, leaving the caller to decide whether to reject it.
func parseVersionToken(tok []byte) (Version, bool) {
	if len(tok) != 8 {
		return VUnknown, false
	}
	if tok[0] != 'H' || tok[1] != 'T' || tok[2] != 'T' || tok[3] != 'P' || tok[4] != '/' {
		return VUnknown, false
	}
	if tok[5] < '0' || tok[5] > '9' || tok[6] != '.' || tok[7] < '0' || tok[7] > '9' {
		return VUnknown, false
	}
	switch {
	case tok[5] == '1' && tok[7] == '1':
		return V1_1, true
	case tok[5] == '1' && tok[7] == '0':
		return V1_0, true
	case tok[5] == '0' && tok[7] == '9':
		return V0_9, true
	default:
		return VUnknown, true
	}
}
