package validate

import "testing"

func TestRequired(t *testing.T) {
	if Required("   ") {
		t.Fatal("blank string should not pass Required")
	}
	if !Required(" x ") {
		t.Fatal("non-blank string should pass Required")
	}
}

func TestEmail(t *testing.T) {
	cases := map[string]bool{
		"admin@atay.ph":   true,
		" admin@atay.ph ": true,
		"not-an-email":    false,
		"a@b":             false,
		"":                false,
	}
	for input, want := range cases {
		if got := Email(input); got != want {
			t.Errorf("Email(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestISODate(t *testing.T) {
	cases := map[string]bool{
		"2024-03-01": true,
		"2024-13-01": false,
		"03/01/2024": false,
		"":           false,
	}
	for input, want := range cases {
		if got := ISODate(input); got != want {
			t.Errorf("ISODate(%q) = %v, want %v", input, got, want)
		}
	}
}
