package updater

import "strings"

// defaultLiterals are example/default hosts that import must replace and
// export must leave alone.
var defaultLiterals = map[string]bool{
	"localhost": true,
	"127.0.0.1": true,
}

// isDefaultHost reports whether a host token is a replaceable default literal.
func isDefaultHost(host string) bool {
	return defaultLiterals[host]
}

// ListHasDefaultHost reports whether any element of a separator-joined list
// carries a replaceable default host literal, i.e. whether import-direction
// resolution would rewrite the value.
func ListHasDefaultHost(value, separator string) bool {
	if separator == "" {
		separator = ","
	}
	return listHasDefaultHost(splitElements(value, separator))
}

// isPassThrough reports whether a value must never be rewritten in either
// direction: wildcard bind addresses, the "undefined" sentinel, and values
// whose authority is a declared HA nameservice rather than a real host.
func isPassThrough(value string, nameservices []string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || trimmed == "undefined" {
		return true
	}

	tok, ok := splitHostToken(trimmed)
	if !ok {
		return false
	}
	if tok.host == "0.0.0.0" {
		return true
	}
	for _, ns := range nameservices {
		if tok.host == ns {
			return true
		}
	}
	return false
}
