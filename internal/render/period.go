package render

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// Present replaces the end date of a current role.
const Present = "Present"

// FormatPeriod renders "startMonth startYear - endMonth endYear". Unset months
// drop out, so year-only input reads "startYear - endYear". When months is
// false they are left out even if set. A current role ends with Present. A
// period without a start renders empty.
func FormatPeriod(startMonth, startYear, endMonth, endYear string, current, months bool) string {
	if !months {
		startMonth, endMonth = "", ""
	}
	start := joinNonEmpty(startMonth, startYear)
	if start == "" {
		return ""
	}
	end := joinNonEmpty(endMonth, endYear)
	if current {
		end = Present
	}
	if end == "" {
		return start
	}
	return start + " - " + end
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// Href makes a user-typed address clickable by adding a scheme when missing.
func Href(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return "https://" + raw
	}
	return raw
}

// LinkLabel shortens a URL to its registrable domain for display, e.g.
// "https://www.github.com/jane/x" becomes "github.com".
func LinkLabel(raw string) string {
	candidate := Href(raw)
	if candidate == "" {
		return ""
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return strings.TrimSpace(raw)
	}
	host := parsed.Hostname()
	if host == "" {
		return strings.TrimSpace(raw)
	}
	// attempt eTLD+1 extraction for tidy labels
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}
