package entities

import (
	"net/url"
	"strings"
)

// isAbsoluteHTTPURL aceita apenas URLs http/https com host que contenha um ponto
// (ou localhost).
func isAbsoluteHTTPURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	host := u.Hostname()
	if host == "localhost" {
		return true
	}
	return strings.Contains(host, ".") && !strings.HasPrefix(host, ".") && !strings.HasSuffix(host, ".")
}

// normalizeWebsite prefixa "http://" quando o esquema não foi informado
func normalizeWebsite(raw string) string {
	raw = strings.TrimSpace(raw)
	lower := strings.ToLower(raw)
	if raw != "" && !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return "http://" + raw
	}
	return raw
}
