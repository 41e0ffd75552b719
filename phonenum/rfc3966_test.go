package phonenum

import "testing"

func TestIsPhoneContextValid(t *testing.T) {
	valid := []string{"+64", "+64-3", "example.com", "phone.Example.COM.", "bücher.de"}
	for _, c := range valid {
		if !isPhoneContextValid(c) {
			t.Fatalf("%q should be a valid phone-context", c)
		}
	}
	invalid := []string{"", "+", "+64;", "abc#def", "-example.com"}
	for _, c := range invalid {
		if isPhoneContextValid(c) {
			t.Fatalf("%q should not be a valid phone-context", c)
		}
	}
}

func TestBuildNationalNumberForParsing(t *testing.T) {
	got, err := buildNationalNumberForParsing("tel:331-6005;phone-context=+64-3")
	if err != nil {
		t.Fatalf("buildNationalNumberForParsing: %v", err)
	}
	if got != "+64-3331-6005" {
		t.Fatalf("got %q", got)
	}
	// The isub parameter is dropped.
	got, err = buildNationalNumberForParsing("tel:+64-3-331-6005;isub=12345")
	if err != nil {
		t.Fatalf("buildNationalNumberForParsing: %v", err)
	}
	if got != "+64-3-331-6005" {
		t.Fatalf("got %q", got)
	}
	if _, err := buildNationalNumberForParsing("tel:331-6005;phone-context=#"); err == nil {
		t.Fatalf("bad phone-context should fail")
	}
}
