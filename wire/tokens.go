package wire

import "bytes"

// HeaderID names a well-known header recognized by [ClassifyHeaderName].
// The zero value, HeaderUnknown, means the header name did not match any
// entry in this closed set and must be recorded as an x-header instead.
//
// Ordering is fixed by declaration order, matching the original reference
// source's enum http_headers. Appending a name at the end of this list is
// backward compatible; reordering or removing an entry is not.
type HeaderID uint8

const (
	HeaderUnknown HeaderID = iota

	HeaderHost
	HeaderCacheControl
	HeaderConnection
	HeaderAccept
	HeaderAcceptLanguage
	HeaderAcceptEncoding
	HeaderUserAgent
	HeaderReferer
	HeaderXForwardedFor
	HeaderOrigin
	HeaderUpgradeInsecureRequests
	HeaderPragma
	HeaderCookie
	HeaderDNT
	HeaderSecGPC
	HeaderFrom
	HeaderIfModifiedSince
	HeaderXRequestedWith
	HeaderXForwardedHost
	HeaderXForwardedProto
	HeaderXCSRFToken
	HeaderSaveData
	HeaderRange
	HeaderContentLength
	HeaderContentType
	HeaderVary
	HeaderDate
	HeaderServer
	HeaderExpires
	HeaderContentEncoding
	HeaderLastModified
	HeaderETag
	HeaderAllow
	HeaderContentRange
	HeaderAcceptCharset
	HeaderAccessControlAllowCredentials
	HeaderAccessControlAllowHeaders
	HeaderAccessControlAllowMethods
	HeaderAccessControlAllowOrigin
	HeaderAccessControlMaxAge
	HeaderAccessControlMethod
	HeaderAccessControlRequestHeaders
	HeaderAccessControlRequestMethod
	HeaderAccessControlRequestMethods
	HeaderAge
	HeaderAuthorization
	HeaderContentBase
	HeaderContentDescription
	HeaderContentDisposition
	HeaderContentLanguage
	HeaderContentLocation
	HeaderContentMD5
	HeaderExpect
	HeaderIfMatch
	HeaderIfNoneMatch
	HeaderIfRange
	HeaderIfUnmodifiedSince
	HeaderKeepAlive
	HeaderLink
	HeaderLocation
	HeaderMaxForwards
	HeaderProxyAuthenticate
	HeaderProxyAuthorization
	HeaderProxyConnection
	HeaderPublic
	HeaderRetryAfter
	HeaderTE
	HeaderTrailer
	HeaderTransferEncoding
	HeaderUpgrade
	HeaderWarning
	HeaderWWWAuthenticate
	HeaderVia
	HeaderStrictTransportSecurity
	HeaderXFrameOptions
	HeaderXContentTypeOptions
	HeaderAltSvc
	HeaderReferrerPolicy
	HeaderXXSSProtection
	HeaderAcceptRanges
	HeaderSetCookie
	HeaderSecCHUA
	HeaderSecCHUAMobile
	HeaderSecCHUAPlatform
	HeaderSecFetchSite
	HeaderSecFetchMode
	HeaderSecFetchUser
	HeaderSecFetchDest
	HeaderCFRay
	HeaderCFVisitor
	HeaderCFConnectingIP
	HeaderCFIPCountry
	HeaderCDNLoop

	headerCount // sentinel; not a valid HeaderID
)

// headerNames is indexed by HeaderID; headerNames[HeaderUnknown] is unused.
var headerNames = [headerCount]string{
	HeaderHost:                           "Host",
	HeaderCacheControl:                   "Cache-Control",
	HeaderConnection:                     "Connection",
	HeaderAccept:                         "Accept",
	HeaderAcceptLanguage:                 "Accept-Language",
	HeaderAcceptEncoding:                 "Accept-Encoding",
	HeaderUserAgent:                      "User-Agent",
	HeaderReferer:                        "Referer",
	HeaderXForwardedFor:                  "X-Forwarded-For",
	HeaderOrigin:                         "Origin",
	HeaderUpgradeInsecureRequests:        "Upgrade-Insecure-Requests",
	HeaderPragma:                         "Pragma",
	HeaderCookie:                         "Cookie",
	HeaderDNT:                            "DNT",
	HeaderSecGPC:                         "Sec-GPC",
	HeaderFrom:                           "From",
	HeaderIfModifiedSince:                "If-Modified-Since",
	HeaderXRequestedWith:                 "X-Requested-With",
	HeaderXForwardedHost:                 "X-Forwarded-Host",
	HeaderXForwardedProto:                "X-Forwarded-Proto",
	HeaderXCSRFToken:                     "X-CSRF-Token",
	HeaderSaveData:                       "Save-Data",
	HeaderRange:                          "Range",
	HeaderContentLength:                  "Content-Length",
	HeaderContentType:                    "Content-Type",
	HeaderVary:                           "Vary",
	HeaderDate:                           "Date",
	HeaderServer:                         "Server",
	HeaderExpires:                        "Expires",
	HeaderContentEncoding:                "Content-Encoding",
	HeaderLastModified:                   "Last-Modified",
	HeaderETag:                           "ETag",
	HeaderAllow:                          "Allow",
	HeaderContentRange:                   "Content-Range",
	HeaderAcceptCharset:                  "Accept-Charset",
	HeaderAccessControlAllowCredentials:  "Access-Control-Allow-Credentials",
	HeaderAccessControlAllowHeaders:      "Access-Control-Allow-Headers",
	HeaderAccessControlAllowMethods:      "Access-Control-Allow-Methods",
	HeaderAccessControlAllowOrigin:       "Access-Control-Allow-Origin",
	HeaderAccessControlMaxAge:            "Access-Control-MaxAge",
	HeaderAccessControlMethod:            "Access-Control-Method",
	HeaderAccessControlRequestHeaders:    "Access-Control-Request-Headers",
	HeaderAccessControlRequestMethod:     "Access-Control-Request-Method",
	HeaderAccessControlRequestMethods:    "Access-Control-Request-Methods",
	HeaderAge:                            "Age",
	HeaderAuthorization:                  "Authorization",
	HeaderContentBase:                    "Content-Base",
	HeaderContentDescription:             "Content-Description",
	HeaderContentDisposition:             "Content-Disposition",
	HeaderContentLanguage:                "Content-Language",
	HeaderContentLocation:                "Content-Location",
	HeaderContentMD5:                     "Content-MD5",
	HeaderExpect:                         "Expect",
	HeaderIfMatch:                        "If-Match",
	HeaderIfNoneMatch:                    "If-None-Match",
	HeaderIfRange:                        "If-Range",
	HeaderIfUnmodifiedSince:              "If-Unmodified-Since",
	HeaderKeepAlive:                      "Keep-Alive",
	HeaderLink:                           "Link",
	HeaderLocation:                       "Location",
	HeaderMaxForwards:                    "Max-Forwards",
	HeaderProxyAuthenticate:              "Proxy-Authenticate",
	HeaderProxyAuthorization:             "Proxy-Authorization",
	HeaderProxyConnection:                "Proxy-Connection",
	HeaderPublic:                         "Public",
	HeaderRetryAfter:                     "Retry-After",
	HeaderTE:                             "TE",
	HeaderTrailer:                        "Trailer",
	HeaderTransferEncoding:               "Transfer-Encoding",
	HeaderUpgrade:                        "Upgrade",
	HeaderWarning:                        "Warning",
	HeaderWWWAuthenticate:                "WWW-Authenticate",
	HeaderVia:                            "Via",
	HeaderStrictTransportSecurity:        "Strict-Transport-Security",
	HeaderXFrameOptions:                  "X-Frame-Options",
	HeaderXContentTypeOptions:            "X-Content-Type-Options",
	HeaderAltSvc:                         "Alt-Svc",
	HeaderReferrerPolicy:                 "Referrer-Policy",
	HeaderXXSSProtection:                 "X-XSS-Protection",
	HeaderAcceptRanges:                   "Accept-Ranges",
	HeaderSetCookie:                      "Set-Cookie",
	HeaderSecCHUA:                        "Sec-CH-UA",
	HeaderSecCHUAMobile:                  "Sec-CH-UA-Mobile",
	HeaderSecCHUAPlatform:                "Sec-CH-UA-Platform",
	HeaderSecFetchSite:                   "Sec-Fetch-Site",
	HeaderSecFetchMode:                   "Sec-Fetch-Mode",
	HeaderSecFetchUser:                   "Sec-Fetch-User",
	HeaderSecFetchDest:                   "Sec-Fetch-Dest",
	HeaderCFRay:                          "CF-Ray",
	HeaderCFVisitor:                      "CF-Visitor",
	HeaderCFConnectingIP:                 "CF-Connecting-IP",
	HeaderCFIPCountry:                    "CF-IPCountry",
	HeaderCDNLoop:                        "CDN-Loop",
}

// String returns the canonical header name, or "Unknown" for HeaderUnknown.
func (id HeaderID) String() string {
	if id == HeaderUnknown || id >= headerCount {
		return "Unknown"
	}
	return headerNames[id]
}

// headersByLength buckets headerNames by byte length so ClassifyHeaderName
// only compares candidates that could possibly match, the way the
// reference perfect hash dispatches on length before comparing bytes.
var headersByLength = buildHeadersByLength()

func buildHeadersByLength() map[int][]HeaderID {
	m := make(map[int][]HeaderID)
	for id := HeaderID(1); id < headerCount; id++ {
		n := len(headerNames[id])
		m[n] = append(m[n], id)
	}
	return m
}

// ClassifyHeaderName maps a header name to its HeaderID using an ASCII
// case-insensitive, exact-length comparison against the closed set above.
// It returns HeaderUnknown if name does not match any well-known header.
//
// The comparison is exact-length, not prefix-bounded: the reference stub
// this is grounded on matches by fixed-length prefix, which would classify
// "Cookie-Foo" as Cookie. This implementation compares the full length of
// name against each same-length candidate, closing that bug.
func ClassifyHeaderName(name []byte) HeaderID {
	candidates := headersByLength[len(name)]
	for _, id := range candidates {
		if bytes.EqualFold(name, []byte(headerNames[id])) {
			return id
		}
	}
	return HeaderUnknown
}

// repeatable is the fixed set of well-known headers whose duplicates are
// coalesced into xheaders instead of overwriting headers[id]. Set-Cookie is
// intentionally absent: duplicate Set-Cookie headers after the first land
// in xheaders too, but via the "already present" branch, not this table.
var repeatable = map[HeaderID]bool{
	HeaderAccept:                      true,
	HeaderAcceptCharset:               true,
	HeaderAcceptEncoding:              true,
	HeaderAcceptLanguage:              true,
	HeaderAllow:                       true,
	HeaderCacheControl:                true,
	HeaderContentEncoding:             true,
	HeaderContentLanguage:             true,
	HeaderExpect:                      true,
	HeaderIfMatch:                     true,
	HeaderIfNoneMatch:                 true,
	HeaderPragma:                      true,
	HeaderProxyAuthenticate:           true,
	HeaderPublic:                      true,
	HeaderTE:                         true,
	HeaderTrailer:                     true,
	HeaderTransferEncoding:            true,
	HeaderUpgrade:                     true,
	HeaderVary:                        true,
	HeaderVia:                         true,
	HeaderWarning:                     true,
	HeaderWWWAuthenticate:             true,
	HeaderXForwardedFor:               true,
	HeaderAccessControlAllowHeaders:   true,
	HeaderAccessControlAllowMethods:   true,
	HeaderAccessControlRequestHeaders: true,
	HeaderAccessControlRequestMethods: true,
}

// IsRepeatable reports whether duplicate occurrences of id must be
// coalesced into xheaders rather than overwriting headers[id].
func IsRepeatable(id HeaderID) bool {
	return repeatable[id]
}

// IsTokenByte reports whether b is in the RFC 7230 tchar set used for
// method bytes and header names:
//
//	!#$%&'*+-.^_`|~  0-9  A-Z  a-z
func IsTokenByte(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= 'a' && b <= 'z':
		return true
	}
	switch b {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}

// isISO1 reports whether b is printable ISO-8859-1: 0x20-0x7E or 0xA0-0xFF.
func isISO1(b byte) bool {
	return (b >= 0x20 && b <= 0x7E) || b >= 0xA0
}

// isWS reports whether b is a space or horizontal tab.
func isWS(b byte) bool {
	return b == ' ' || b == '\t'
}

func toUpperASCII(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
