package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-10")
	if err != nil {
		t.Fatalf("failed to parse date: %v", err)
	}
	want := Date{Year: 2026, Month: time.March, Day: 10}
	if d != want {
		t.Errorf("expected %v, got %v", want, d)
	}

	for _, bad := range []string{"", "2026-3-10", "10/03/2026", "2026-03-10T00:00:00Z", "not-a-date"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestDateAddDays(t *testing.T) {
	d := NewDate(2026, time.February, 26)

	if got := d.AddDays(7); got != NewDate(2026, time.March, 5) {
		t.Errorf("expected 2026-03-05, got %s", got)
	}
	if got := d.AddDays(-26); got != NewDate(2026, time.January, 31) {
		t.Errorf("expected 2026-01-31, got %s", got)
	}
}

func TestDateDaysUntil(t *testing.T) {
	today := NewDate(2026, time.March, 10)

	cases := []struct {
		other Date
		want  int
	}{
		{NewDate(2026, time.March, 10), 0},
		{NewDate(2026, time.March, 11), 1},
		{NewDate(2026, time.March, 9), -1},
		{NewDate(2026, time.April, 10), 31},
		{NewDate(2025, time.March, 10), -365},
	}
	for _, tc := range cases {
		if got := today.DaysUntil(tc.other); got != tc.want {
			t.Errorf("DaysUntil(%s) = %d, want %d", tc.other, got, tc.want)
		}
	}
}

func TestDateOfUsesLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+13", 13*60*60)
	// 23:30 local on March 10 is March 10 regardless of what UTC says.
	d := DateOf(time.Date(2026, time.March, 10, 23, 30, 0, 0, loc))
	if d != NewDate(2026, time.March, 10) {
		t.Errorf("expected 2026-03-10, got %s", d)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.March, 5)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	if string(data) != `"2026-03-05"` {
		t.Errorf("expected \"2026-03-05\", got %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip changed date: %s != %s", back, d)
	}

	if err := json.Unmarshal([]byte(`"03/05/2026"`), &back); err == nil {
		t.Error("expected error for malformed date string")
	}
}
