// Package wire implements an incremental, zero-copy parser for HTTP/1.x
// start-lines and header sections.
//
// The parser never copies message bytes and never reads from a socket: the
// caller owns a growing byte buffer and drives [Message.Parse] (or the
// [Message.ParseRequest] / [Message.ParseResponse] wrappers) as more bytes
// arrive. A [Message] records everything it parses as byte-offset [Slice]
// pairs into that buffer, with the single exception of the request method,
// which is uppercased into a small fixed buffer owned by the Message itself
// since the input bytes may not already be uppercase.
//
// There is no body parsing, no chunked decoding, and no I/O anywhere in
// this package; the parser stops at the blank line terminating the header
// section and returns control to the caller.
package wire
