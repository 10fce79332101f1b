package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampLayouts(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{`"2026-08-30T21:15:03"`, time.Date(2026, 8, 30, 21, 15, 3, 0, time.UTC)},
		{`"2026-08-30T21:15:03.123456789"`, time.Date(2026, 8, 30, 21, 15, 3, 123456789, time.UTC)},
		{`"2026-08-30T21:15:03Z"`, time.Date(2026, 8, 30, 21, 15, 3, 0, time.UTC)},
		{`"2026-08-30"`, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		var ts Timestamp
		if err := json.Unmarshal([]byte(tc.in), &ts); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.in, err)
		}
		if !ts.Time.Equal(tc.want) {
			t.Fatalf("%s => %v, want %v", tc.in, ts.Time, tc.want)
		}
	}
}

func TestTimestampNull(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte("null"), &ts); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !ts.Time.IsZero() {
		t.Fatalf("expected zero time, got %v", ts.Time)
	}

	b, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "null" {
		t.Fatalf("marshal zero = %s", b)
	}
}

func TestTimestampGarbage(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"not a date"`), &ts); err == nil {
		t.Fatal("expected error for garbage timestamp")
	}
}

func TestParseDesireCategory(t *testing.T) {
	cases := []struct {
		in   string
		want DesireCategory
		ok   bool
	}{
		{"SHORT_TERM", DesireShortTerm, true},
		{"short-term", DesireShortTerm, true},
		{"short", DesireShortTerm, true},
		{" long ", DesireLongTerm, true},
		{"LONG_TERM", DesireLongTerm, true},
		{"medium", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseDesireCategory(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseDesireCategory(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCanMarkViewed(t *testing.T) {
	if !(Idea{Status: IdeaPending}).CanMarkViewed() {
		t.Fatal("pending idea should allow mark-viewed")
	}
	if (Idea{Status: IdeaViewed}).CanMarkViewed() {
		t.Fatal("viewed idea must not allow mark-viewed")
	}
	if (Idea{Status: IdeaResponded}).CanMarkViewed() {
		t.Fatal("responded idea must not allow mark-viewed")
	}
}

func TestAnnouncementForEveryone(t *testing.T) {
	if !(Announcement{SendTo: AudienceAll}).ForEveryone() {
		t.Fatal("ALL should be for everyone")
	}
	if (Announcement{SendTo: AudienceSpecific, SpecificUsername: "amina"}).ForEveryone() {
		t.Fatal("SPECIFIC should not be for everyone")
	}
}
