package normalize

import (
	"errors"
	"reflect"
	"testing"
)

func TestRegion(t *testing.T) {
	got, err := Region("se")
	if err != nil {
		t.Fatalf("Region(se) failed: %v", err)
	}
	if got != "SE" {
		t.Errorf("Expected SE, got %s", got)
	}

	if _, err := Region("USA"); !errors.Is(err, ErrInvalidRegion) {
		t.Errorf("Expected ErrInvalidRegion for USA, got %v", err)
	}
	if _, err := Region(""); !errors.Is(err, ErrInvalidRegion) {
		t.Errorf("Expected ErrInvalidRegion for empty input, got %v", err)
	}
	if _, err := Region("s1"); !errors.Is(err, ErrInvalidRegion) {
		t.Errorf("Expected ErrInvalidRegion for s1, got %v", err)
	}

	got, err = Region("  us  ")
	if err != nil || got != "US" {
		t.Errorf("Expected US for padded input, got %q (%v)", got, err)
	}
}

func TestPlatform(t *testing.T) {
	got, err := Platform("IPAD", "iphone")
	if err != nil {
		t.Fatalf("Platform(IPAD) failed: %v", err)
	}
	if got != "ipad" {
		t.Errorf("Expected ipad, got %s", got)
	}

	if _, err := Platform("android", "iphone"); !errors.Is(err, ErrInvalidPlatform) {
		t.Errorf("Expected ErrInvalidPlatform for android, got %v", err)
	}

	// Absent input falls back to the caller-supplied default.
	got, err = Platform("", "mac")
	if err != nil || got != "mac" {
		t.Errorf("Expected fallback mac, got %q (%v)", got, err)
	}
}

func TestParseAppLocator(t *testing.T) {
	tests := []struct {
		input string
		appID string
	}{
		{"1234567", "1234567"},
		{"id1234567", "1234567"},
		{"ID1234567", "1234567"},
		{"Id1234567", "1234567"},
		{"https://apps.apple.com/us/app/run-tracker/id6443551234", "6443551234"},
		{"https://apps.apple.com/se/app/some-app/id123456/", "123456"},
		{"see id987654 over there", "987654"},
		{"123456", "123456"},
	}

	for _, tt := range tests {
		loc := ParseAppLocator(tt.input)
		if loc == nil {
			t.Errorf("ParseAppLocator(%q) returned nil", tt.input)
			continue
		}
		if loc.AppID != tt.appID {
			t.Errorf("ParseAppLocator(%q) = %q, expected %q", tt.input, loc.AppID, tt.appID)
		}
	}

	for _, input := range []string{"", "12345", "id12345", "run tracker", "https://apps.apple.com/us/app/run-tracker"} {
		if loc := ParseAppLocator(input); loc != nil {
			t.Errorf("ParseAppLocator(%q) = %+v, expected nil", input, loc)
		}
	}

	// A malformed URL must fall through to the substring strategy, not fail.
	if loc := ParseAppLocator("ht!tp://bad url id123456 x"); loc == nil || loc.AppID != "123456" {
		t.Errorf("Expected fallback to substring match on malformed URL, got %+v", loc)
	}
}

func TestPlannedID(t *testing.T) {
	got, err := PlannedID("  my planned\tapp  ")
	if err != nil {
		t.Fatalf("PlannedID failed: %v", err)
	}
	if got != "myplannedapp" {
		t.Errorf("Expected myplannedapp, got %s", got)
	}

	if _, err := PlannedID("   "); !errors.Is(err, ErrEmptyPlannedID) {
		t.Errorf("Expected ErrEmptyPlannedID, got %v", err)
	}

	long := make([]byte, 65)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := PlannedID(string(long)); !errors.Is(err, ErrPlannedIDTooLong) {
		t.Errorf("Expected ErrPlannedIDTooLong, got %v", err)
	}
}

func TestKeywordList(t *testing.T) {
	got := KeywordList([]string{`  "run tracker"  `, "", `"a   b"`})
	want := []string{"run tracker", "a b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// Order preserved, duplicates kept.
	got = KeywordList([]string{"b", "a", "b"})
	want = []string{"b", "a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	if got := KeywordList([]string{`""`, "   ", "''"}); len(got) != 0 {
		t.Errorf("Expected all entries dropped, got %v", got)
	}
}

func TestDateOnly(t *testing.T) {
	got, err := DateOnly("2026-02-28")
	if err != nil || got != "2026-02-28" {
		t.Errorf("Expected 2026-02-28, got %q (%v)", got, err)
	}

	for _, input := range []string{"2026-2-28", "2026-02-30", "20260228", "not-a-date", "2026-13-01"} {
		if _, err := DateOnly(input); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("Expected ErrInvalidDate for %q, got %v", input, err)
		}
	}
}

func TestPeriod(t *testing.T) {
	for _, tt := range []struct {
		input string
		want  int
	}{{"7", 7}, {"30", 30}, {"90", 90}} {
		got, err := Period(tt.input)
		if err != nil || got != tt.want {
			t.Errorf("Period(%q) = %d (%v), expected %d", tt.input, got, err, tt.want)
		}
	}

	for _, input := range []string{"14", "0", "", "week"} {
		if _, err := Period(input); !errors.Is(err, ErrInvalidPeriod) {
			t.Errorf("Expected ErrInvalidPeriod for %q, got %v", input, err)
		}
	}
}
