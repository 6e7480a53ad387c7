package validators

import (
	"net"
	"strings"
)

// NormalizeEmail lowercases and trims the address before any lookup or
// uniqueness check, so "A@X.com " and "a@x.com" are the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmailDomainValid checks that the address' domain resolves at all (MX or
// plain A/AAAA). It does network lookups, so callers gate it behind config.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
