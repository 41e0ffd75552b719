package phonenum

import (
	"bytes"
	"reflect"
	"testing"
)

func TestRegistryLoads(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	want := []string{"AR", "AU", "BS", "DE", "FR", "GB", "IT", "MX", "NZ", "SG", "US"}
	if got := r.SupportedRegions(); !reflect.DeepEqual(got, want) {
		t.Fatalf("SupportedRegions = %v, want %v", got, want)
	}
	codes := r.SupportedCallingCodes()
	for _, code := range []int{1, 44, 64, 800, 979} {
		found := false
		for _, c := range codes {
			if c == code {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("calling code %d missing from %v", code, codes)
		}
	}
}

func TestRegionAndCodeLookups(t *testing.T) {
	r := DefaultRegistry()
	if got := r.RegionCodesForCountryCode(1); !reflect.DeepEqual(got, []string{"US", "BS"}) {
		t.Fatalf("regions for +1 = %v", got)
	}
	if got := r.RegionCodeForCountryCode(44); got != "GB" {
		t.Fatalf("region for +44 = %q", got)
	}
	if got := r.RegionCodeForCountryCode(800); got != "001" {
		t.Fatalf("region for +800 = %q", got)
	}
	if got := r.RegionCodeForCountryCode(2); got != "ZZ" {
		t.Fatalf("region for unknown code = %q", got)
	}
	if got := r.CountryCodeForRegion("NZ"); got != 64 {
		t.Fatalf("code for NZ = %d", got)
	}
	if got := r.CountryCodeForRegion("ZZ"); got != 0 {
		t.Fatalf("code for ZZ = %d", got)
	}
	if r.MetadataForRegion("001") != nil {
		t.Fatalf("001 is not a geographic region")
	}
	if r.MetadataForNonGeoEntity(800) == nil {
		t.Fatalf("+800 entity missing")
	}
}

func TestClosestRegion(t *testing.T) {
	r := DefaultRegistry()
	cases := []struct{ in, want string }{
		{"nz", "NZ"},  // case folding only
		{"USA", "US"}, // one edit away
		{"GG", "GB"},  // one edit away
		{"QQ", ""},    // nothing close
		{"", ""},
	}
	for _, c := range cases {
		if got := r.ClosestRegion(c.in); got != c.want {
			t.Fatalf("ClosestRegion(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMetadataMsgpackRoundTrip(t *testing.T) {
	orig := DefaultRegistry()
	var buf bytes.Buffer
	if err := orig.WriteMetadataMsgpack(&buf); err != nil {
		t.Fatalf("WriteMetadataMsgpack: %v", err)
	}
	loaded, err := ReadMetadataMsgpack(&buf)
	if err != nil {
		t.Fatalf("ReadMetadataMsgpack: %v", err)
	}
	if !reflect.DeepEqual(orig.SupportedRegions(), loaded.SupportedRegions()) {
		t.Fatalf("regions diverge after round trip")
	}
	if !reflect.DeepEqual(orig.SupportedCallingCodes(), loaded.SupportedCallingCodes()) {
		t.Fatalf("calling codes diverge after round trip")
	}
	// The reloaded registry behaves identically.
	parsed, err := loaded.Parse("033316005", "NZ")
	if err != nil {
		t.Fatalf("Parse on reloaded registry: %v", err)
	}
	if got := loaded.Format(parsed, FormatInternational); got != "+64 3-331 6005" {
		t.Fatalf("format on reloaded registry: %q", got)
	}
	if !loaded.IsValidShortNumberForRegion(&PhoneNumber{CountryCode: 1, NationalNumber: 911}, "US") {
		t.Fatalf("short tables lost in round trip")
	}
}

func TestE164RoundTrip(t *testing.T) {
	r := DefaultRegistry()
	for _, region := range r.SupportedRegions() {
		example := r.GetExampleNumber(region)
		if example == nil {
			continue
		}
		e164 := r.Format(example, FormatE164)
		back, err := r.Parse(e164, "ZZ")
		if err != nil {
			t.Fatalf("%s: Parse(%q): %v", region, e164, err)
		}
		if !example.Equal(back) {
			t.Fatalf("%s: %q round-trips to %+v, want %+v", region, e164, back, example)
		}
	}
}
