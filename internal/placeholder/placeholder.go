package placeholder

import (
	"fmt"
	"regexp"
)

// tokenRegex matches one %HOSTGROUP::<name>% token with an optional :<port>
// suffix. Group names follow host-group naming (no '%' and no whitespace).
var tokenRegex = regexp.MustCompile(`%HOSTGROUP::([^%\s]+)%(?::(\d+))?`)

// Token is one scanned placeholder occurrence inside a property value.
type Token struct {
	HostGroup string
	Port      string // empty when the token carries no :<port> suffix
}

// HasPort reports whether the token carried an explicit port suffix.
func (t Token) HasPort() bool {
	return t.Port != ""
}

// Format renders the canonical token for a host group name.
func Format(hostGroup string) string {
	return fmt.Sprintf("%%HOSTGROUP::%s%%", hostGroup)
}

// Contains reports whether the value holds at least one placeholder token.
func Contains(value string) bool {
	return tokenRegex.MatchString(value)
}

// FindAll scans a value and returns every placeholder token in order.
func FindAll(value string) []Token {
	var tokens []Token
	for _, m := range tokenRegex.FindAllStringSubmatch(value, -1) {
		tokens = append(tokens, Token{HostGroup: m[1], Port: m[2]})
	}
	return tokens
}

// ReplaceAll rewrites every placeholder token in value using the supplied
// callback. The callback receives the parsed token (host group plus optional
// port) and returns the full replacement text for it, port included. The
// first callback error aborts the scan and is returned unchanged.
func ReplaceAll(value string, replace func(Token) (string, error)) (string, error) {
	matches := tokenRegex.FindAllStringSubmatchIndex(value, -1)
	if matches == nil {
		return value, nil
	}

	var out []byte
	last := 0
	for _, m := range matches {
		token := Token{HostGroup: value[m[2]:m[3]]}
		if m[4] >= 0 {
			token.Port = value[m[4]:m[5]]
		}

		replacement, err := replace(token)
		if err != nil {
			return "", err
		}

		out = append(out, value[last:m[0]]...)
		out = append(out, replacement...)
		last = m[1]
	}
	out = append(out, value[last:]...)

	return string(out), nil
}
