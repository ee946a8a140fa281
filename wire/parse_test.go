package wire

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func parseWhole(t *testing.T, kind Kind, input string) (*Message, int) {
	t.Helper()
	buf := []byte(input)
	var msg Message
	Init(&msg, kind)
	n := msg.Parse(buf, len(buf), len(buf))
	return &msg, n
}

func TestParseRequestBasic(t *testing.T) {
	msg, n := parseWhole(t, KindRequest, "GET / HTTP/1.0\r\n\r\n")
	if n <= 0 {
		t.Fatalf("parse returned %d, want positive", n)
	}
	if msg.Method() != "GET" {
		t.Errorf("method = %q, want GET", msg.Method())
	}
	if msg.Version() != V1_0 {
		t.Errorf("version = %v, want V1_0", msg.Version())
	}
	buf := []byte("GET / HTTP/1.0\r\n\r\n")
	if got := string(msg.URI().Bytes(buf)); got != "/" {
		t.Errorf("uri = %q, want /", got)
	}
	for id := HeaderID(1); id.String() != "Unknown"; id++ {
		if msg.Header(id).Present() {
			t.Errorf("header %v unexpectedly present", id)
		}
	}
}

func TestParseRequestOptionsStar(t *testing.T) {
	buf := []byte("OPTIONS * HTTP/1.0\r\n\r\n")
	msg, n := parseWhole(t, KindRequest, string(buf))
	if n <= 0 {
		t.Fatalf("parse returned %d", n)
	}
	if msg.Method() != "OPTIONS" {
		t.Errorf("method = %q, want OPTIONS", msg.Method())
	}
	if got := string(msg.URI().Bytes(buf)); got != "*" {
		t.Errorf("uri = %q, want *", got)
	}
	if msg.Version() != V1_0 {
		t.Errorf("version = %v, want V1_0", msg.Version())
	}
}

func TestParseRequestHTTP09SimpleRequest(t *testing.T) {
	buf := []byte("GET /\r\n\r\n")
	msg, n := parseWhole(t, KindRequest, string(buf))
	if n <= 0 {
		t.Fatalf("parse returned %d", n)
	}
	if n > len(buf) || buf[n-1] != '\n' {
		t.Fatalf("n=%d does not satisfy buf[n-1]=='\\n' (len=%d)", n, len(buf))
	}
	if msg.Method() != "GET" {
		t.Errorf("method = %q, want GET", msg.Method())
	}
	if got := string(msg.URI().Bytes(buf)); got != "/" {
		t.Errorf("uri = %q, want /", got)
	}
	if msg.Version() != V0_9 {
		t.Errorf("version = %v, want V0_9", msg.Version())
	}
}

func TestParseRequestLFOnlyAndUnknownHeaderAbsent(t *testing.T) {
	input := "POST /foo?bar%20hi HTTP/1.0\nHost: foo.example\nContent-Length: 0\n\n\n"
	buf := []byte(input)
	var msg Message
	Init(&msg, KindRequest)
	n := msg.Parse(buf, len(buf), len(buf))
	if n <= 0 {
		t.Fatalf("parse returned %d", n)
	}
	if n >= len(buf) {
		t.Fatalf("expected the trailing LF to remain unconsumed, got n=%d len=%d", n, len(buf))
	}
	if got := string(msg.Header(HeaderHost).Bytes(buf)); got != "foo.example" {
		t.Errorf("Host = %q, want foo.example", got)
	}
	if got := string(msg.Header(HeaderContentLength).Bytes(buf)); got != "0" {
		t.Errorf("Content-Length = %q, want 0", got)
	}
	if msg.Header(HeaderETag).Present() {
		t.Errorf("ETag unexpectedly present")
	}
}

func TestParseRequestRepeatableHeaderCoalescing(t *testing.T) {
	input := "GET / HTTP/1.1\r\nAccept: text/html\r\nAccept: text/plain\r\nAccept: text/csv\r\n\r\n"
	buf := []byte(input)
	msg, n := parseWhole(t, KindRequest, input)
	if n <= 0 {
		t.Fatalf("parse returned %d", n)
	}
	if got := string(msg.Header(HeaderAccept).Bytes(buf)); got != "text/html" {
		t.Errorf("Accept = %q, want text/html", got)
	}
	xh := msg.XHeaders()
	if len(xh) != 2 {
		t.Fatalf("xheaders = %d entries, want 2: %+v", len(xh), xh)
	}
	want := []string{"text/plain", "text/csv"}
	for i, w := range want {
		if got := string(xh[i].Value.Bytes(buf)); got != w {
			t.Errorf("xheaders[%d] = %q, want %q", i, got, w)
		}
		if got := string(xh[i].Name.Bytes(buf)); got != "Accept" {
			t.Errorf("xheaders[%d] name = %q, want Accept", i, got)
		}
	}
}

func TestParseResponseBasic(t *testing.T) {
	buf := []byte("HTTP/1.1 404 Not Found\r\n\r\n")
	msg, n := parseWhole(t, KindResponse, string(buf))
	if n <= 0 {
		t.Fatalf("parse returned %d", n)
	}
	if msg.Status() != 404 {
		t.Errorf("status = %d, want 404", msg.Status())
	}
	if got := string(msg.ReasonPhrase().Bytes(buf)); got != "Not Found" {
		t.Errorf("message = %q, want %q", got, "Not Found")
	}
	if msg.Version() != V1_1 {
		t.Errorf("version = %v, want V1_1", msg.Version())
	}
}

func TestHostEmptyValueIsPresentNotAbsent(t *testing.T) {
	buf := []byte("GET / HTTP/1.1\r\nHost: \r\n\r\n")
	msg, n := parseWhole(t, KindRequest, string(buf))
	if n <= 0 {
		t.Fatalf("parse returned %d", n)
	}
	s := msg.Header(HeaderHost)
	if !s.Present() {
		t.Fatalf("Host slice reported absent, want present-but-empty")
	}
	if s.Len() != 0 {
		t.Errorf("Host slice length = %d, want 0", s.Len())
	}
}

func TestMustFail(t *testing.T) {
	cases := []struct {
		name  string
		kind  Kind
		input string
	}{
		{"leading space", KindRequest, " GET / HTTP/1.1\r\n\r\n"},
		{"empty uri", KindRequest, "GET  HTTP/1.0\r\n\r\n"},
		{"invalid method byte", KindRequest, "ehd@oruc / HTTP/1.0\r\n\r\n"},
		{"line folding", KindRequest, "GET / HTTP/1.0\r\nUser-Agent: hi\r\n there\r\n\r\n"},
		{"bad version extra major digit", KindResponse, "HTTP/01.1 200 OK\r\n\r\n"},
		{"bad version length long", KindResponse, "HTTP/1.01 200 OK\r\n\r\n"},
		{"status too short", KindResponse, "HTTP/1.1 2 OK\r\n\r\n"},
		{"status too long", KindResponse, "HTTP/1.1 2000 OK\r\n\r\n"},
		{"bare cr between headers", KindResponse, "HTTP/1.1 200 OK\r\nFoo: 1\rBar: 2\r\n\r\n"},
		{"C1 byte in value", KindRequest, "OPTIONS * HTTP/1.0\r\nUser-Agent: hi\x88\r\n\r\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, n := parseWhole(t, c.kind, c.input)
			if n >= 0 {
				t.Fatalf("parse returned %d, want negative", n)
			}
		})
	}
}

func TestAcceptISO1HighByteInValue(t *testing.T) {
	buf := []byte("OPTIONS * HTTP/1.0\r\nUser-Agent: hi\xFF\r\n\r\n")
	_, n := parseWhole(t, KindRequest, string(buf))
	if n <= 0 {
		t.Fatalf("parse returned %d, want positive (0xFF is ISO-8859-1)", n)
	}
}

func TestEmptyInputNeedsMore(t *testing.T) {
	var msg Message
	Init(&msg, KindRequest)
	if n := msg.Parse(nil, 0, 0); n != 0 {
		t.Fatalf("parse of empty input = %d, want 0", n)
	}
}

func TestTwoByteInputNeedsMore(t *testing.T) {
	var msg Message
	Init(&msg, KindRequest)
	buf := []byte("HT")
	if n := msg.Parse(buf, len(buf), len(buf)); n != 0 {
		t.Fatalf("parse of %q = %d, want 0", buf, n)
	}
}

func TestLeadingCRLFIgnored(t *testing.T) {
	buf := []byte("\r\nGET / HTTP/1.0\r\n\r\n")
	msg, n := parseWhole(t, KindRequest, string(buf))
	if n <= 0 {
		t.Fatalf("parse returned %d", n)
	}
	if msg.Method() != "GET" {
		t.Errorf("method = %q, want GET", msg.Method())
	}
}

// TestResumptionEquivalence splits every scenario's input at every byte
// offset and checks that feeding the fragments incrementally reaches the
// same result as parsing the whole buffer at once.
func TestResumptionEquivalence(t *testing.T) {
	scenarios := []struct {
		kind  Kind
		input string
	}{
		{KindRequest, "GET / HTTP/1.0\r\n\r\n"},
		{KindRequest, "GET / HTTP/1.1\r\nAccept: text/html\r\nAccept: text/plain\r\nAccept: text/csv\r\n\r\n"},
		{KindRequest, "OPTIONS * HTTP/1.0\r\n\r\n"},
		{KindRequest, "GET /\r\n\r\n"},
		{KindRequest, "POST /foo?bar%20hi HTTP/1.0\nHost: foo.example\nContent-Length: 0\n\n\n"},
		{KindResponse, "HTTP/1.1 404 Not Found\r\n\r\n"},
	}
	for _, sc := range scenarios {
		buf := []byte(sc.input)
		whole, wantN := parseWhole(t, sc.kind, sc.input)
		if wantN <= 0 {
			t.Fatalf("scenario %q: whole-buffer parse returned %d, want positive", sc.input, wantN)
		}
		for split := 0; split <= len(buf); split++ {
			var msg Message
			Init(&msg, sc.kind)
			n := msg.Parse(buf, split, len(buf))
			if n == 0 {
				n = msg.Parse(buf, len(buf), len(buf))
			}
			if n != wantN {
				t.Fatalf("scenario %q split at %d: got n=%d, want %d", sc.input, split, n, wantN)
			}
			if diff := cmp.Diff(whole.headers, msg.headers); diff != "" {
				t.Errorf("scenario %q split at %d: headers mismatch (-whole +split)\n%s", sc.input, split, diff)
			}
			if diff := cmp.Diff(whole.xheaders, msg.xheaders); diff != "" {
				t.Errorf("scenario %q split at %d: xheaders mismatch (-whole +split)\n%s", sc.input, split, diff)
			}
		}
	}
}

func TestFreeIsIdempotentOnZeroValue(t *testing.T) {
	var msg Message
	Free(&msg)
	Free(&msg)
}

func TestResetReusesXHeadersBackingArray(t *testing.T) {
	buf := []byte("GET / HTTP/1.1\r\nAccept: a\r\nAccept: b\r\n\r\n")
	var msg Message
	Init(&msg, KindRequest)
	if n := msg.Parse(buf, len(buf), len(buf)); n <= 0 {
		t.Fatalf("parse returned %d", n)
	}
	before := cap(msg.xheaders)
	msg.Reset()
	if cap(msg.xheaders) != before {
		t.Errorf("Reset changed xheaders capacity: got %d, want %d", cap(msg.xheaders), before)
	}
	if len(msg.xheaders) != 0 {
		t.Errorf("Reset left %d xheaders, want 0", len(msg.xheaders))
	}
}
