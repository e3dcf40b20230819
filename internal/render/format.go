package render

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"
)

// Date layouts accepted from stored content. Resumes edited over time carry
// a mix of bare dates, RFC3339 timestamps and a few driver-rendered forms.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
}

// FormatDate converts a date-like string into "MM/YYYY". Unparseable input
// is returned unchanged so a bad date degrades on screen instead of failing
// the whole document.
func FormatDate(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return fmt.Sprintf("%02d/%d", int(t.Month()), t.Year())
		}
	}
	return s
}

// FormatURLForDisplay strips the scheme and a leading www. for compact
// on-page display. Empty input stays empty.
func FormatURLForDisplay(u string) string {
	if u == "" {
		return ""
	}
	u = strings.TrimPrefix(u, "https://")
	u = strings.TrimPrefix(u, "http://")
	u = strings.TrimPrefix(u, "www.")
	return u
}

// EnsureURLHasProtocol makes a value usable as an href by prefixing https://
// when no scheme is present.
func EnsureURLHasProtocol(u string) string {
	if u == "" {
		return ""
	}
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return "https://" + u
}

const (
	underlineCharWidth = 8
	underlinePadding   = 16
	underlineMaxWidth  = 200
)

// UnderlineWidth sizes the decorative rule under the job title: linear in
// the text length, capped so long titles don't run the rule off the column.
func UnderlineWidth(text string) int {
	w := len([]rune(text))*underlineCharWidth + underlinePadding
	if w > underlineMaxWidth {
		return underlineMaxWidth
	}
	return w
}

// DomainLabel reduces a link to its registrable domain ("coursera.org") for
// tidy display next to course titles. Falls back to the hostname, then the
// raw input, when eTLD+1 extraction is not possible.
func DomainLabel(raw string) string {
	if raw == "" {
		return ""
	}
	candidate := EnsureURLHasProtocol(raw)
	parsed, err := url.Parse(candidate)
	if err != nil {
		return raw
	}
	host := parsed.Hostname()
	if host == "" {
		return raw
	}
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}
