// Command httpcheck is a CLI test harness that drives the wire package's
// incremental parser against a literal scenario, a file, or stdin, and
// prints the parsed method/URI/version/status/message, every populated
// well-known header, and the ordered xheaders list.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"braces.dev/errtrace"

	"github.com/JulianDavis/uurl/wire"
	"github.com/JulianDavis/uurl/wirelog"
)

// scenarios mirrors the concrete test inputs a reimplementer is expected
// to exercise; -scenario NAME picks one without needing a file on disk.
var scenarios = map[string]string{
	"get":          "GET / HTTP/1.0\r\n\r\n",
	"options":      "OPTIONS * HTTP/1.0\r\n\r\n",
	"simple":       "GET /\r\n\r\n",
	"lf-only":      "POST /foo?bar%20hi HTTP/1.0\nHost: foo.example\nContent-Length: 0\n\n\n",
	"repeat-accept": "GET / HTTP/1.1\r\nAccept: text/html\r\nAccept: text/plain\r\nAccept: text/csv\r\n\r\n",
	"response":     "HTTP/1.1 404 Not Found\r\n\r\n",
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		flagFile     = ""
		flagScenario = ""
		flagChunk    = 0
		flagResponse = false
		flagDev      = false
	)
	flag.StringVar(&flagFile, "f", flagFile, "Read the HTTP message from this file instead of stdin.")
	flag.StringVar(&flagScenario, "scenario", flagScenario, "Use an embedded scenario by name instead of -f/stdin.")
	flag.IntVar(&flagChunk, "chunk", flagChunk, "Feed the parser this many bytes per call (0: whole buffer at once).")
	flag.BoolVar(&flagResponse, "response", flagResponse, "Parse as a response instead of a request.")
	flag.BoolVar(&flagDev, "dev", flagDev, "Use the verbose development logger.")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "httpcheck drives the wire parser against a byte stream and prints the result.\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	chosen := wirelog.Console()
	if flagDev {
		chosen = wirelog.Develop()
	}
	wirelog.SetDefault(chosen)
	logger := wirelog.Default()

	buf, err := readInput(flagFile, flagScenario)
	if err != nil {
		return errtrace.Wrap(err)
	}

	kind := wire.KindRequest
	if flagResponse {
		kind = wire.KindResponse
	}
	var msg wire.Message
	wire.Init(&msg, kind)

	n, err := feed(&msg, buf, flagChunk)
	if err != nil {
		logger.Error("parse failed", slog.String("reason", err.Error()))
		return err
	}
	report(logger, &msg, buf, n)
	wire.Free(&msg)
	return nil
}

func readInput(file, scenario string) ([]byte, error) {
	switch {
	case scenario != "":
		s, ok := scenarios[scenario]
		if !ok {
			return nil, fmt.Errorf("unknown scenario %q", scenario)
		}
		return []byte(s), nil
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		return b, nil
	default:
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		return b, nil
	}
}

// feed drives msg.Parse over buf in chunkSize increments (or the whole
// buffer at once if chunkSize <= 0), exercising the same
// resumption-equivalence property the wire package's tests check
// automatically.
func feed(msg *wire.Message, buf []byte, chunkSize int) (int, error) {
	if chunkSize <= 0 {
		chunkSize = len(buf)
		if chunkSize == 0 {
			chunkSize = 1
		}
	}
	filled := 0
	for {
		if filled < len(buf) {
			filled += chunkSize
			if filled > len(buf) {
				filled = len(buf)
			}
		}
		n := msg.Parse(buf, filled, len(buf))
		switch {
		case n > 0:
			return n, nil
		case n < 0:
			return 0, wire.ParseError(-n)
		case filled >= len(buf):
			return 0, fmt.Errorf("need more data: input ended mid-message")
		}
	}
}

func report(logger *slog.Logger, msg *wire.Message, buf []byte, consumed int) {
	fmt.Printf("consumed: %d\n", consumed)
	if msg.Kind() == wire.KindRequest {
		fmt.Printf("method: %s\n", msg.Method())
		fmt.Printf("uri: %q\n", msg.URI().Bytes(buf))
	} else {
		fmt.Printf("status: %d\n", msg.Status())
		fmt.Printf("message: %q\n", msg.ReasonPhrase().Bytes(buf))
	}
	fmt.Printf("version: %s\n", msg.Version())

	for id := wire.HeaderID(1); id.String() != "Unknown"; id++ {
		s := msg.Header(id)
		if !s.Present() {
			continue
		}
		fmt.Printf("header[%s]: %q\n", id, s.Bytes(buf))
	}
	for _, xh := range msg.XHeaders() {
		fmt.Printf("xheader: %q = %q\n", xh.Name.Bytes(buf), xh.Value.Bytes(buf))
	}
	logger.Debug("parse complete", slog.Int("consumed", consumed))
}
