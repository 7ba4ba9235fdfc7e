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
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
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

func TestIsValidDate(t *testing.T) {
	if !IsValidDate("2024-01-15") {
		t.Error("IsValidDate(\"2024-01-15\") = false, want true")
	}
	for _, s := range []string{"2024-13-01", "15-01-2024", "2024/01/15", ""} {
		if IsValidDate(s) {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"+919876543210", "9876543210", "98 7654-3210"}
	invalid := []string{"12345", "abcdefghij", "", "+12-ab-345678"}
	for _, p := range valid {
		if !IsValidPhoneNumber(p) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if IsValidPhoneNumber(p) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", p)
		}
	}
}

func TestIsValidCoordinates(t *testing.T) {
	if !IsValidLatitude(28.62) || !IsValidLatitude(-90) || !IsValidLatitude(90) {
		t.Error("expected valid latitudes to pass")
	}
	if IsValidLatitude(90.1) || IsValidLatitude(-90.1) {
		t.Error("expected out-of-range latitudes to fail")
	}
	if !IsValidLongitude(77.37) || !IsValidLongitude(-180) || !IsValidLongitude(180) {
		t.Error("expected valid longitudes to pass")
	}
	if IsValidLongitude(180.1) || IsValidLongitude(-180.1) {
		t.Error("expected out-of-range longitudes to fail")
	}
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"pending", "processing", "completed"}
	if !IsInSlice("processing", statuses) {
		t.Error("IsInSlice(\"processing\") = false, want true")
	}
	if IsInSlice("done", statuses) {
		t.Error("IsInSlice(\"done\") = true, want false")
	}
}
