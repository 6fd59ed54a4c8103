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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
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
	if _, ok := IsValidDate("2025-06-01"); !ok {
		t.Error("IsValidDate(2025-06-01) = false, want true")
	}
	for _, s := range []string{"2025-13-01", "2025-06-32", "01-06-2025", "2025/06/01", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidYearMonth(t *testing.T) {
	if _, ok := IsValidYearMonth("2025-06"); !ok {
		t.Error("IsValidYearMonth(2025-06) = false, want true")
	}
	for _, s := range []string{"2025-13", "2025-06-01", "06-2025", ""} {
		if _, ok := IsValidYearMonth(s); ok {
			t.Errorf("IsValidYearMonth(%q) = true, want false", s)
		}
	}
}

func TestIsValidNIK(t *testing.T) {
	if !IsValidNIK("3171234567890001") {
		t.Error("IsValidNIK(3171234567890001) = false, want true")
	}
	for _, s := range []string{"317123456789000", "31712345678900011", "317123456789000a", ""} {
		if IsValidNIK(s) {
			t.Errorf("IsValidNIK(%q) = true, want false", s)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "nik", Message: "is required"},
		{Field: "email", Message: "must be a valid email address"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() has %d entries, want 2", len(m))
	}
	if m["nik"] != "is required" {
		t.Errorf("ToMap()[nik] = %q", m["nik"])
	}
	if errs.Error() == "" {
		t.Error("Error() should not be empty")
	}
}
