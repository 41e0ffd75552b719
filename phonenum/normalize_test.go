package phonenum

import "testing"

func TestNormalize(t *testing.T) {
	if got := Normalize("1800 SIX-flag"); got != "18007493524" {
		t.Fatalf("Normalize letters: %q", got)
	}
	if got := Normalize("034-56&+#234"); got != "03456234" {
		t.Fatalf("Normalize punctuation: %q", got)
	}
	// Fullwidth, Arabic-Indic and Devanagari digits fold to ASCII.
	if got := Normalize("１２٣۴१"); got != "12341" {
		t.Fatalf("Normalize digit blocks: %q", got)
	}
}

func TestNormalizeDigitsOnly(t *testing.T) {
	if got := NormalizeDigitsOnly("03-331-6005 ext. 1234"); got != "0333160051234" {
		t.Fatalf("got %q", got)
	}
	if got := NormalizeDigitsOnly("1800 SIX-flag"); got != "1800" {
		t.Fatalf("letters must be dropped, not mapped: %q", got)
	}
}

func TestNormalizeDiallableCharsOnly(t *testing.T) {
	if got := NormalizeDiallableCharsOnly("+1 (650) 253*00#00"); got != "+1650253*00#00" {
		t.Fatalf("got %q", got)
	}
}

func TestConvertAlphaCharactersInNumber(t *testing.T) {
	if got := ConvertAlphaCharactersInNumber("1800 six-flag"); got != "1800 749-3524" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractPossibleNumber(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Tel:0800-345-600", "0800-345-600"},
		{"Phone: +64 3 331 6005.", "+64 3 331 6005"},
		{"call 650 253 0000!!", "650 253 0000"},
		{"no digits here", ""},
		// A second number after a slash-x is cut off.
		{"1234-5678/x2690", "1234-5678"},
	}
	for _, c := range cases {
		if got := extractPossibleNumber(c.in); got != c.want {
			t.Fatalf("extractPossibleNumber(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestIsViablePhoneNumber(t *testing.T) {
	viable := []string{"13", "+1 (650) 253-0000", "0800", "033316005", "1800 six-flag"}
	for _, in := range viable {
		if !isViablePhoneNumber(in) {
			t.Fatalf("%q should be viable", in)
		}
	}
	notViable := []string{"", "1", "ab", "1a", "+-..", "isn't viable"}
	for _, in := range notViable {
		if isViablePhoneNumber(in) {
			t.Fatalf("%q should not be viable", in)
		}
	}
}

func TestIsAlphaNumber(t *testing.T) {
	if !IsAlphaNumber("1800 six-flag") {
		t.Fatalf("vanity number not recognized")
	}
	if !IsAlphaNumber("0800 SIX-FLAG ext. 1234") {
		t.Fatalf("vanity number with extension not recognized")
	}
	if IsAlphaNumber("1800 123-1234") {
		t.Fatalf("plain digits are not a vanity number")
	}
	if IsAlphaNumber("1800 x 1234") {
		t.Fatalf("too few letters for a vanity number")
	}
	if IsAlphaNumber("enterprise") {
		t.Fatalf("words alone are not a number")
	}
}
