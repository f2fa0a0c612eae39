// Package placeholder implements the %HOSTGROUP::<name>% token, the portable
// blueprint syntax for deferred host resolution.
//
// The token may be followed by a :<port> suffix. Because the token is part of
// the blueprint export wire format it must round-trip byte-for-byte: Format
// and the scanner in this package are the only places the literal syntax is
// spelled out.
package placeholder
