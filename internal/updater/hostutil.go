package updater

import "strings"

// hostToken is the decomposition of one host-bearing token: optional scheme
// prefix ("hdfs://"), the host itself, optional ":port", and any trailing
// text (path, query, or other literal remainder).
type hostToken struct {
	prefix string // up to and including "://", may be empty
	host   string
	port   string // digits only, no colon, may be empty
	suffix string // from the first '/', '?' or '#' after the authority
}

func (t hostToken) render() string {
	out := t.prefix + t.host
	if t.port != "" {
		out += ":" + t.port
	}
	return out + t.suffix
}

// withHost returns the token re-rendered around a new host.
func (t hostToken) withHost(host string) string {
	t.host = host
	return t.render()
}

// splitHostToken locates the host inside a token of the form
// [scheme://]host[:port][/path...]. It is intentionally permissive: anything
// between the scheme and the first port/path delimiter counts as the host.
// ok is false when no host substring can be identified (empty authority).
func splitHostToken(value string) (hostToken, bool) {
	t := hostToken{}
	rest := value

	if idx := strings.Index(rest, "://"); idx >= 0 {
		t.prefix = rest[:idx+3]
		rest = rest[idx+3:]
	}

	if idx := strings.IndexAny(rest, "/?#"); idx >= 0 {
		t.suffix = rest[idx:]
		rest = rest[:idx]
	}

	if idx := strings.LastIndex(rest, ":"); idx >= 0 && isDigits(rest[idx+1:]) {
		t.port = rest[idx+1:]
		rest = rest[:idx]
	}

	t.host = rest
	if t.host == "" {
		return t, false
	}
	return t, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// splitElements breaks a separator-joined list into trimmed elements.
func splitElements(value, separator string) []string {
	parts := strings.Split(value, separator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
