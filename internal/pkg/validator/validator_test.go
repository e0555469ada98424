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

func TestIsValidDate(t *testing.T) {
	valid := []string{"2024-01-15", "2025-12-31"}
	invalid := []string{"2024-13-01", "15-01-2024", "2024/01/15", "", "yesterday"}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"08:00", "23:59", "00:00"}
	invalid := []string{"24:00", "8am", "08:60", ""}
	for _, s := range valid {
		if _, ok := IsValidTimeOfDay(s); !ok {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidTimeOfDay(s); ok {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", s)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"100", "100", true},
		{"100.50", "100.5", true},
		{"0", "0", true},
		{" 25.00 ", "25", true},
		{"-5", "", false},
		{"abc", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := ParseAmount(c.input)
		if ok != c.ok {
			t.Errorf("ParseAmount(%q) ok = %v, want %v", c.input, ok, c.ok)
			continue
		}
		if ok && got.String() != c.want {
			t.Errorf("ParseAmount(%q) = %s, want %s", c.input, got.String(), c.want)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"owner", "abu-ahmed_1", "x.y.z"}
	invalid := []string{"ab", "", "has space", "way@wrong"}
	for _, u := range valid {
		if !IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = false, want true", u)
		}
	}
	for _, u := range invalid {
		if IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = true, want false", u)
		}
	}
}
