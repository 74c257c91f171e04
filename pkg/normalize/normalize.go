package normalize

import (
	"net/url"
	"regexp"
	"strings"
	"time"
)

// Platform tags accepted by the service. Input is case-insensitive and
// canonicalized to lowercase.
var platformTags = map[string]bool{
	"iphone":  true,
	"ipad":    true,
	"mac":     true,
	"appletv": true,
	"watch":   true,
	"vision":  true,
}

// Per-endpoint keyword caps, enforced before any network call.
const (
	MaxMetricsKeywords = 50
	MaxTrackedKeywords = 200
)

// MaxPlannedIDLength is the upper bound for planned app identifiers.
const MaxPlannedIDLength = 64

var (
	regionShape  = regexp.MustCompile(`^[A-Z]{2}$`)
	idPrefixed   = regexp.MustCompile(`^[Ii][Dd](\d{6,})$`)
	bareDigits   = regexp.MustCompile(`^\d{6,}$`)
	urlPathID    = regexp.MustCompile(`/id(\d{6,})(?:/|$)`)
	embeddedID   = regexp.MustCompile(`\bid(\d{6,})\b`)
	dateShape    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	quoteCutset  = "\"'“”‘’"
	spaceStrip   = strings.NewReplacer(" ", "", "\t", "", "\n", "", "\r", "")
)

// AppLocator is a resolved reference to a store app. Exactly one of AppID
// (numeric store id) or PlannedID (free-text id for a not-yet-published app)
// is populated.
type AppLocator struct {
	AppID     string
	PlannedID string
}

// IsPlanned reports whether the locator refers to a planned app.
func (l *AppLocator) IsPlanned() bool {
	return l != nil && l.PlannedID != ""
}

// Region canonicalizes a two-letter region code. Invalid input is rejected,
// never coerced.
func Region(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if !regionShape.MatchString(code) {
		return "", ErrInvalidRegion
	}
	return code, nil
}

// Platform canonicalizes a platform tag to lowercase. Empty input yields the
// caller-supplied fallback instead of a rejection.
func Platform(raw, fallback string) (string, error) {
	tag := strings.ToLower(strings.TrimSpace(raw))
	if tag == "" {
		return fallback, nil
	}
	if !platformTags[tag] {
		return "", ErrInvalidPlatform
	}
	return tag, nil
}

// ParseAppLocator extracts a numeric store id from one of the accepted input
// shapes, tried in order: an id-prefixed digit run, a bare digit run, an App
// Store URL path segment, and finally an embedded idNNN token anywhere in the
// string. Returns nil when nothing matches; callers decide whether nil is an
// error or just "no app specified".
func ParseAppLocator(raw string) *AppLocator {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if m := idPrefixed.FindStringSubmatch(s); m != nil {
		return &AppLocator{AppID: m[1]}
	}
	if bareDigits.MatchString(s) {
		return &AppLocator{AppID: s}
	}
	// Malformed URLs are swallowed so the substring strategy below still
	// gets a chance.
	if u, err := url.Parse(s); err == nil && u.Path != "" {
		if m := urlPathID.FindStringSubmatch(u.Path); m != nil {
			return &AppLocator{AppID: m[1]}
		}
	}
	if m := embeddedID.FindStringSubmatch(s); m != nil {
		return &AppLocator{AppID: m[1]}
	}
	return nil
}

// PlannedID normalizes a free-text planned app identifier: trims, strips all
// internal whitespace, and bounds the length.
func PlannedID(raw string) (string, error) {
	id := spaceStrip.Replace(strings.TrimSpace(raw))
	if id == "" {
		return "", ErrEmptyPlannedID
	}
	if len(id) > MaxPlannedIDLength {
		return "", ErrPlannedIDTooLong
	}
	return id, nil
}

// KeywordList normalizes a list of keyword tokens. Per item: trim, strip
// surrounding quote runs, collapse internal whitespace to single spaces.
// Empty results are dropped. Order is preserved and duplicates are kept.
func KeywordList(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		kw := strings.TrimSpace(item)
		kw = strings.Trim(kw, quoteCutset)
		kw = strings.Join(strings.Fields(kw), " ")
		if kw == "" {
			continue
		}
		out = append(out, kw)
	}
	return out
}

// DateOnly validates an exact YYYY-MM-DD string against the calendar at UTC.
func DateOnly(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if !dateShape.MatchString(s) {
		return "", ErrInvalidDate
	}
	if _, err := time.ParseInLocation("2006-01-02", s, time.UTC); err != nil {
		return "", ErrInvalidDate
	}
	return s, nil
}

// Period accepts only the literal reporting windows the service supports.
func Period(raw string) (int, error) {
	switch strings.TrimSpace(raw) {
	case "7":
		return 7, nil
	case "30":
		return 30, nil
	case "90":
		return 90, nil
	}
	return 0, ErrInvalidPeriod
}
