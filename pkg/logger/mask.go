package logger

import (
	"net"
	"strings"
)

// MaskEmail hides the local part of an email address, keeping at most the
// first three characters for log correlation: "alice@example.com" becomes
// "ali***@example.com". Anything that does not look like an email is
// replaced entirely.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "***"
	}

	local, domain := email[:at], email[at+1:]
	visible := 3
	if len(local) < visible {
		visible = len(local)
	}
	return local[:visible] + "***@" + domain
}

// MaskIP hides the host-identifying part of an IP address. IPv4 keeps the
// first two octets ("203.0.*.*"), IPv6 keeps the first two groups.
// Invalid input is replaced entirely.
func MaskIP(ip string) string {
	parsed := net.ParseIP(strings.TrimSpace(ip))
	if parsed == nil {
		return "***"
	}

	if v4 := parsed.To4(); v4 != nil {
		parts := strings.Split(v4.String(), ".")
		return parts[0] + "." + parts[1] + ".*.*"
	}

	groups := strings.Split(parsed.String(), ":")
	if len(groups) < 2 {
		return "***"
	}
	return groups[0] + ":" + groups[1] + ":*"
}
