package phonenum

import "testing"

func TestLeadingZeros(t *testing.T) {
	n := &PhoneNumber{NationalNumber: 236618300}
	if n.LeadingZeros() != 0 {
		t.Fatalf("no flag, got %d zeros", n.LeadingZeros())
	}
	n.ItalianLeadingZero = true
	if n.LeadingZeros() != 1 {
		t.Fatalf("flag alone should mean one zero, got %d", n.LeadingZeros())
	}
	three := 3
	n.NumberOfLeadingZeros = &three
	if n.LeadingZeros() != 3 || n.nationalNumberString() != "000236618300" {
		t.Fatalf("explicit count: %d zeros, %q", n.LeadingZeros(), n.nationalNumberString())
	}
	negative := -1
	n.NumberOfLeadingZeros = &negative
	if n.LeadingZeros() != 0 {
		t.Fatalf("negative count should have no effect, got %d", n.LeadingZeros())
	}
}

func TestCopyCoreFields(t *testing.T) {
	raw := "+64 3 331 6005"
	carrier := "14"
	ext := ""
	full := &PhoneNumber{
		CountryCode:                  64,
		NationalNumber:               33316005,
		Extension:                    &ext,
		RawInput:                     &raw,
		CountryCodeSource:            CountryCodeFromNumberWithPlusSign,
		PreferredDomesticCarrierCode: &carrier,
	}
	core := full.copyCoreFields()
	if core.RawInput != nil || core.PreferredDomesticCarrierCode != nil ||
		core.CountryCodeSource != CountryCodeSourceUnspecified {
		t.Fatalf("provenance copied: %+v", core)
	}
	// An empty extension is normalized away.
	if core.Extension != nil {
		t.Fatalf("empty extension survived the copy")
	}
	if core.CountryCode != 64 || core.NationalNumber != 33316005 {
		t.Fatalf("identity fields lost: %+v", core)
	}
}

func TestEqual(t *testing.T) {
	a := &PhoneNumber{CountryCode: 64, NationalNumber: 33316005}
	b := &PhoneNumber{CountryCode: 64, NationalNumber: 33316005}
	if !a.Equal(b) {
		t.Fatalf("identical numbers should be equal")
	}
	raw := "033316005"
	b.RawInput = &raw
	if a.Equal(b) {
		t.Fatalf("raw input participates in strict equality")
	}
}
