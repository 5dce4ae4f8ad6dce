package prodcal

import (
	"net/url"
	"strings"
)

const (
	// DefaultBaseURL is the production-calendar.ru API root
	DefaultBaseURL = "https://production-calendar.ru/"

	// OpGetPeriod is the path of the period operation
	OpGetPeriod = "get-period/"

	// OpGetWorkWeek is the path of the work week operation
	OpGetWorkWeek = "get-work-week/"
)

// BuildURL assembles a request URL:
//
//	{base}{operation}{token}/{country}/{specifier}/json[?k=v&...]
//
// The query string is omitted when params is empty.
func BuildURL(base, operation, token, country, specifier string, params []Param) string {
	var b strings.Builder
	b.WriteString(base)
	b.WriteString(operation)
	b.WriteString(token)
	b.WriteByte('/')
	b.WriteString(country)
	b.WriteByte('/')
	b.WriteString(specifier)
	b.WriteString("/json")

	for i, p := range params {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(escape(p.Key))
		b.WriteByte('=')
		b.WriteString(escape(p.Value))
	}

	return b.String()
}

// escape percent-encodes everything outside the RFC 3986 unreserved set
func escape(s string) string {
	// QueryEscape turns a literal '+' into %2B, so every remaining '+' was a space
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
