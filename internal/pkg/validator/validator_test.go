package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"123E4567-E89B-12D3-A456-426614174000",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b", // missing dashes
		"not-a-uuid",
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-03-01"); !ok {
		t.Error("IsValidDate(2024-03-01) = false, want true")
	}
	for _, s := range []string{"2024-13-01", "01-03-2024", "2024-03-32", "yesterday", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"09:00", true},
		{"09:00:30", true},
		{"23:59", true},
		{"24:00", false},
		{"9am", false},
		{"", false},
	}
	for _, c := range cases {
		_, got := IsValidTimeOfDay(c.input)
		if got != c.want {
			t.Errorf("IsValidTimeOfDay(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	if _, ok := IsValidDateTime("2024-03-01 08:45:00"); !ok {
		t.Error("IsValidDateTime(2024-03-01 08:45:00) = false, want true")
	}
	if _, ok := IsValidDateTime("2024-03-01T08:45:00Z"); ok {
		t.Error("IsValidDateTime with RFC3339 input = true, want false")
	}
}
