package checks

import (
	"net"
	"net/mail"
	"net/url"
	"strings"

	"github.com/dmitrymomot/paramcheck"
)

// Email accepts RFC 5322 addresses with the additional constraints typical
// for web use: a non-empty local part and a dotted domain with no empty
// labels.
func Email() paramcheck.Predicate {
	return func(value any) bool {
		s, ok := value.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return false
		}

		addr, err := mail.ParseAddress(s)
		if err != nil {
			return false
		}

		parts := strings.Split(addr.Address, "@")
		if len(parts) != 2 || parts[0] == "" {
			return false
		}

		domain := parts[1]
		if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
			return false
		}
		for _, part := range strings.Split(domain, ".") {
			if part == "" {
				return false
			}
		}
		return true
	}
}

// URL accepts absolute URLs with a scheme and a host.
func URL() paramcheck.Predicate {
	return func(value any) bool {
		s, ok := value.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return false
		}
		u, err := url.ParseRequestURI(s)
		return err == nil && u.Scheme != "" && u.Host != ""
	}
}

// IPv4 accepts dotted-quad IPv4 addresses.
func IPv4() paramcheck.Predicate {
	return func(value any) bool {
		s, ok := value.(string)
		if !ok {
			return false
		}
		ip := net.ParseIP(s)
		return ip != nil && ip.To4() != nil && strings.Contains(s, ".")
	}
}
