package phonenum

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, number, region string) *PhoneNumber {
	t.Helper()
	parsed, err := Parse(number, region)
	if err != nil {
		t.Fatalf("Parse(%q, %q): %v", number, region, err)
	}
	return parsed
}

func TestParseNationalNumber(t *testing.T) {
	nz := mustParse(t, "033316005", "NZ")
	if nz.CountryCode != 64 || nz.NationalNumber != 33316005 {
		t.Fatalf("got +%d %d, want +64 33316005", nz.CountryCode, nz.NationalNumber)
	}
	// National prefix already absent.
	same := mustParse(t, "33316005", "NZ")
	if !nz.Equal(same) {
		t.Fatalf("prefix-less parse differs: %+v vs %+v", nz, same)
	}
	// Spelled internationally in various ways.
	for _, in := range []string{"+64 3 331 6005", "+64 (3) 331-6005", "0064 3 331-6005", "tel:+64-3-331-6005;isub=12345"} {
		got := mustParse(t, in, "NZ")
		if !nz.Equal(got) {
			t.Fatalf("Parse(%q) = %+v, want %+v", in, got, nz)
		}
	}
}

func TestParseWithoutRegionNeedsPlus(t *testing.T) {
	got := mustParse(t, "+64 3 331 6005", "ZZ")
	if got.CountryCode != 64 || got.NationalNumber != 33316005 {
		t.Fatalf("got +%d %d", got.CountryCode, got.NationalNumber)
	}
	if _, err := Parse("03 331 6005", "ZZ"); !errors.Is(err, ErrInvalidCountryCode) {
		t.Fatalf("want ErrInvalidCountryCode, got %v", err)
	}
}

func TestParseUSVariants(t *testing.T) {
	want := mustParse(t, "+16502530000", "ZZ")
	for _, in := range []string{
		"(650) 253-0000",
		"650 253 0000",
		"1-650-253-0000",
		"011 1 650 253 0000", // dialled with the US IDD
		"650.253.0000",
		"１６５０２５３００００", // fullwidth digits
	} {
		got := mustParse(t, in, "US")
		if !want.Equal(got) {
			t.Fatalf("Parse(%q) = %+v, want %+v", in, got, want)
		}
	}
}

func TestParseAlphaNumber(t *testing.T) {
	got := mustParse(t, "1800 six-flag", "US")
	if got.NationalNumber != 8007493524 {
		t.Fatalf("vanity letters not folded: %d", got.NationalNumber)
	}
}

func TestParseItalianLeadingZero(t *testing.T) {
	it := mustParse(t, "+39 02 3661 8300", "ZZ")
	if it.CountryCode != 39 || it.NationalNumber != 236618300 {
		t.Fatalf("got +%d %d", it.CountryCode, it.NationalNumber)
	}
	if !it.ItalianLeadingZero || it.LeadingZeros() != 1 {
		t.Fatalf("leading zero lost: %+v", it)
	}
	if GetNationalSignificantNumber(it) != "0236618300" {
		t.Fatalf("NSN = %q", GetNationalSignificantNumber(it))
	}
	// Two leading zeros are counted explicitly.
	double := mustParse(t, "+39 002 3661 8300", "ZZ")
	if double.LeadingZeros() != 2 || double.NationalNumber != 236618300 {
		t.Fatalf("double zero: %+v", double)
	}
}

func TestParseArgentinaMobileTransform(t *testing.T) {
	// "0 11 15 ..." dialled domestically becomes the 9-prefixed mobile form.
	got := mustParse(t, "0 11 15 4312 5678", "AR")
	if got.CountryCode != 54 || got.NationalNumber != 91143125678 {
		t.Fatalf("got +%d %d, want +54 91143125678", got.CountryCode, got.NationalNumber)
	}
	// A plain fixed-line dial only loses the national prefix.
	fixed := mustParse(t, "011 4312 1234", "AR")
	if fixed.NationalNumber != 1143121234 {
		t.Fatalf("fixed: %d", fixed.NationalNumber)
	}
}

func TestParseMexicoMobileTransform(t *testing.T) {
	got := mustParse(t, "045 55 1234 5678", "MX")
	if got.CountryCode != 52 || got.NationalNumber != 15512345678 {
		t.Fatalf("got +%d %d, want +52 15512345678", got.CountryCode, got.NationalNumber)
	}
}

func TestParseExtensions(t *testing.T) {
	cases := []struct {
		in, region, ext string
	}{
		{"03 331 6005 ext 3456", "NZ", "3456"},
		{"03 331 6005x3456", "NZ", "3456"},
		{"03-331 6005 extension 3456", "NZ", "3456"},
		{"tel:+64-3-331-6005;ext=1234", "ZZ", "1234"},
		{"(800) 234-1234 ,,3456#", "US", "3456"},
		{"(800) 234-1234 1234#", "US", "1234"},
	}
	for _, c := range cases {
		got := mustParse(t, c.in, c.region)
		if got.GetExtension() != c.ext {
			t.Fatalf("Parse(%q) ext = %q, want %q", c.in, got.GetExtension(), c.ext)
		}
	}
	// Digits past the tier cap are an error, never silently truncated.
	if _, err := Parse("(800) 234-1234 x. 1234567890123456789", "US"); !errors.Is(err, ErrNotANumber) {
		t.Fatalf("overlong extension: want ErrNotANumber, got %v", err)
	}
}

func TestParseRFC3966PhoneContext(t *testing.T) {
	got := mustParse(t, "tel:331-6005;phone-context=+64-3", "ZZ")
	if got.CountryCode != 64 || got.NationalNumber != 33316005 {
		t.Fatalf("got +%d %d", got.CountryCode, got.NationalNumber)
	}
	// A domain phone-context is accepted but contributes no digits.
	domain := mustParse(t, "tel:033316005;phone-context=example.com", "NZ")
	if domain.NationalNumber != 33316005 {
		t.Fatalf("domain context: %d", domain.NationalNumber)
	}
	// A malformed phone-context poisons the whole URI.
	for _, in := range []string{
		"tel:331-6005;phone-context=abc#def",
		"tel:331-6005;phone-context=",
	} {
		if _, err := Parse(in, "NZ"); !errors.Is(err, ErrInvalidCountryCode) {
			t.Fatalf("Parse(%q): want ErrInvalidCountryCode, got %v", in, err)
		}
	}
}

func TestParseFailures(t *testing.T) {
	cases := []struct {
		in, region string
		want       error
	}{
		{"", "NZ", ErrNotANumber},
		{"This is not a phone number", "NZ", ErrNotANumber},
		{"1 Still not a number", "NZ", ErrNotANumber},
		{"01495 72553301873 810104", "GB", ErrTooLongNSN},
		{"0044", "GB", ErrTooShortAfterIDD},
		{"011", "US", ErrTooShortAfterIDD}, // the IDD alone, nothing after
		{"+210 3456 56789", "NZ", ErrInvalidCountryCode},
		{"123 456 7890", "ZZ", ErrInvalidCountryCode},
		{"+64 1", "ZZ", ErrTooShortNSN},
	}
	for _, c := range cases {
		if _, err := Parse(c.in, c.region); !errors.Is(err, c.want) {
			t.Fatalf("Parse(%q, %q) err = %v, want %v", c.in, c.region, err, c.want)
		}
	}
	if _, err := Parse("+", "ZZ"); err == nil {
		t.Fatalf("lone plus parsed")
	}
}

func TestParseTooLongInput(t *testing.T) {
	long := make([]byte, 0, 300)
	for i := 0; i < 300; i++ {
		long = append(long, '3')
	}
	if _, err := Parse(string(long), "NZ"); !errors.Is(err, ErrNotANumber) {
		t.Fatalf("want ErrNotANumber, got %v", err)
	}
}

func TestParseAndKeepRawInput(t *testing.T) {
	cases := []struct {
		in, region string
		source     CountryCodeSource
	}{
		{"+64 3 331 6005", "NZ", CountryCodeFromNumberWithPlusSign},
		{"0011 64 3 331 6005", "AU", CountryCodeFromNumberWithIDD},
		{"03 331 6005", "NZ", CountryCodeFromDefaultCountry},
	}
	for _, c := range cases {
		got, err := ParseAndKeepRawInput(c.in, c.region)
		if err != nil {
			t.Fatalf("ParseAndKeepRawInput(%q): %v", c.in, err)
		}
		if got.GetRawInput() != c.in {
			t.Fatalf("raw input %q, want %q", got.GetRawInput(), c.in)
		}
		if got.CountryCodeSource != c.source {
			t.Fatalf("source for %q = %v, want %v", c.in, got.CountryCodeSource, c.source)
		}
		if got.NationalNumber != 33316005 {
			t.Fatalf("national number %d", got.NationalNumber)
		}
	}
	// Plain Parse records none of this.
	bare := mustParse(t, "+64 3 331 6005", "NZ")
	if bare.GetRawInput() != "" || bare.CountryCodeSource != CountryCodeSourceUnspecified {
		t.Fatalf("Parse leaked provenance: %+v", bare)
	}
}

func TestParseCountryCodeWithoutPlus(t *testing.T) {
	// "64 3 331 6005" dialled inside NZ is recognized as carrying its own
	// country code because the bare digits are not a valid NZ number.
	got, err := ParseAndKeepRawInput("64 3 331 6005", "NZ")
	if err != nil {
		t.Fatalf("ParseAndKeepRawInput: %v", err)
	}
	if got.CountryCode != 64 || got.NationalNumber != 33316005 {
		t.Fatalf("got +%d %d", got.CountryCode, got.NationalNumber)
	}
	if got.CountryCodeSource != CountryCodeFromNumberWithoutPlusSign {
		t.Fatalf("source = %v", got.CountryCodeSource)
	}
}
