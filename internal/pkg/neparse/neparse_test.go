package neparse

import (
	"testing"
	"time"
)

func TestInferValue(t *testing.T) {
	cases := []struct {
		raw  string
		want any
	}{
		{"42", int64(42)},
		{`"42"`, "42"},
		{"true", true},
		{"false", false},
		{`"true"`, "true"},
		{"3.5", float64(3.5)},
		{"2024-01-02T03:04:05Z", "2024-01-02T03:04:05Z"},
		{"hello", "hello"},
		{" hello ", "hello"},
		{" 7 ", int64(7)},
	}
	for _, tc := range cases {
		got := InferValue(tc.raw)
		if got != tc.want {
			t.Fatalf("InferValue(%q) = %#v, want %#v", tc.raw, got, tc.want)
		}
	}
}

func TestOptInt32(t *testing.T) {
	s := "123"
	if v := OptInt32(&s); v == nil || *v != 123 {
		t.Fatalf("expected 123, got %v", v)
	}
	bad := "not-a-number"
	if v := OptInt32(&bad); v != nil {
		t.Fatalf("expected nil for non-numeric input, got %d", *v)
	}
	if v := OptInt32(nil); v != nil {
		t.Fatal("expected nil for nil input")
	}
}

func TestOptBool(t *testing.T) {
	s := "true"
	if v := OptBool(&s); v == nil || !*v {
		t.Fatalf("expected true, got %v", v)
	}
	bad := "yep"
	if v := OptBool(&bad); v != nil {
		t.Fatalf("expected nil for unparsable bool, got %v", *v)
	}
}

func TestOptTimeNormalizesToUTC(t *testing.T) {
	s := "2024-06-01T12:00:00+03:00"
	v := OptTime(&s)
	if v == nil {
		t.Fatal("expected parsed time")
	}
	if v.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", v.Location())
	}
	if v.Hour() != 9 {
		t.Fatalf("expected hour 9 UTC, got %d", v.Hour())
	}

	bad := "yesterday"
	if OptTime(&bad) != nil {
		t.Fatal("expected nil for unparsable time")
	}
}

func TestFormatTimeTruncatesToSeconds(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 0, 0, 987654321, time.FixedZone("X", 3*3600))
	got := FormatTime(&ts)
	if got == nil {
		t.Fatal("expected formatted time")
	}
	if *got != "2024-06-01T09:00:00Z" {
		t.Fatalf("expected 2024-06-01T09:00:00Z, got %s", *got)
	}
	if FormatTime(nil) != nil {
		t.Fatal("expected nil for nil input")
	}
}

func TestStringList(t *testing.T) {
	got := StringList([]any{"a", "b", 3})
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "" {
		t.Fatalf("unexpected list: %v", got)
	}
	if len(StringList(nil)) != 0 {
		t.Fatal("expected empty list for nil input")
	}
	if OptStringList(nil) != nil {
		t.Fatal("expected nil for nil input")
	}
}
