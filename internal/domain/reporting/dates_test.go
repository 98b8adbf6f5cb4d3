package reporting

import (
	"testing"
	"time"
)

func TestParseLocalDate(t *testing.T) {
	loc := time.FixedZone("VET", -4*60*60)

	tests := []struct {
		name    string
		raw     string
		wantDay string
		ok      bool
	}{
		{"date only", "2024-01-15", "2024-01-15", true},
		{"utc midnight keeps the calendar day", "2024-01-15T00:00:00.000Z", "2024-01-15", true},
		{"instant converted to location", "2024-01-15T02:00:00Z", "2024-01-14", true},
		{"empty", "", "", false},
		{"garbage", "15/01/2024", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseLocalDate(tc.raw, loc)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if ok && FormatDay(got) != tc.wantDay {
				t.Fatalf("expected %s, got %s", tc.wantDay, FormatDay(got))
			}
		})
	}
}

func TestParseDay(t *testing.T) {
	loc := time.FixedZone("VET", -4*60*60)

	got, ok := ParseDay("2026-02-11T23:59:00", loc)
	if !ok || FormatDay(got) != "2026-02-11" || got.Hour() != 0 || got.Location() != loc {
		t.Fatalf("unexpected day: %v ok=%v", got, ok)
	}

	for _, raw := range []string{"", "2026-02-30", "2026-2-1", "yesterday"} {
		if _, ok := ParseDay(raw, loc); ok {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestFormatDay_UsesOwnCalendarFields(t *testing.T) {
	loc := time.FixedZone("VET", -4*60*60)
	evening := time.Date(2026, time.February, 11, 20, 0, 0, 0, loc)
	if got := FormatDay(evening); got != "2026-02-11" {
		t.Fatalf("expected local day, got %s", got)
	}
}
