package phonenum

import "testing"

func TestShortNumberPossibleAndValid(t *testing.T) {
	r := DefaultRegistry()
	emergency := &PhoneNumber{CountryCode: 1, NationalNumber: 911}
	if !r.IsPossibleShortNumberForRegion(emergency, "US") {
		t.Fatalf("911 should be a possible short number in the US")
	}
	if !r.IsPossibleShortNumber(emergency) {
		t.Fatalf("911 should be possible somewhere on +1")
	}
	if !r.IsValidShortNumberForRegion(emergency, "US") || !r.IsValidShortNumberForRegion(emergency, "BS") {
		t.Fatalf("911 should be a valid short number in both NANPA regions")
	}
	if !r.IsValidShortNumber(emergency) {
		t.Fatalf("911 should be valid overall")
	}
	tooLong := &PhoneNumber{CountryCode: 1, NationalNumber: 9112345678}
	if r.IsPossibleShortNumberForRegion(tooLong, "US") {
		t.Fatalf("ten digits is not a short number")
	}
}

func TestShortNumberExpectedCost(t *testing.T) {
	r := DefaultRegistry()
	cases := []struct {
		number PhoneNumber
		region string
		want   ShortNumberCost
	}{
		{PhoneNumber{CountryCode: 1, NationalNumber: 911}, "US", CostTollFree},
		{PhoneNumber{CountryCode: 1, NationalNumber: 90000}, "US", CostPremium},
		{PhoneNumber{CountryCode: 1, NationalNumber: 31000}, "US", CostStandard},
		// Possible in BS by length but in no cost table there.
		{PhoneNumber{CountryCode: 1, NationalNumber: 90000}, "BS", CostUnknown},
		{PhoneNumber{CountryCode: 33, NationalNumber: 3680}, "FR", CostPremium},
		{PhoneNumber{CountryCode: 64, NationalNumber: 111}, "NZ", CostTollFree},
		{PhoneNumber{CountryCode: 64, NationalNumber: 18, ItalianLeadingZero: true}, "NZ", CostStandard},
	}
	for _, c := range cases {
		if got := r.GetExpectedCostForRegion(&c.number, c.region); got != c.want {
			t.Fatalf("cost of %d in %s = %v, want %v", c.number.NationalNumber, c.region, got, c.want)
		}
	}
	// Across the shared +1 code: premium anywhere wins.
	if got := r.GetExpectedCost(&PhoneNumber{CountryCode: 1, NationalNumber: 90000}); got != CostPremium {
		t.Fatalf("shared-code premium: %v", got)
	}
	// Toll-free in every region stays toll-free.
	if got := r.GetExpectedCost(&PhoneNumber{CountryCode: 1, NationalNumber: 911}); got != CostTollFree {
		t.Fatalf("shared-code toll-free: %v", got)
	}
	// Toll-free in one region, unknown in the other: uncertainty wins.
	if got := r.GetExpectedCost(&PhoneNumber{CountryCode: 1, NationalNumber: 211}); got != CostUnknown {
		t.Fatalf("shared-code disagreement: %v", got)
	}
}

func TestConnectsToEmergencyNumber(t *testing.T) {
	r := DefaultRegistry()
	for _, c := range []struct {
		number, region string
		want           bool
	}{
		{"911", "US", true},
		{"112", "US", true},
		{"9-1-1", "US", true},
		{"999", "US", false},
		{"999", "GB", true},
		{"000", "AU", true},
		{"111", "NZ", true},
		// US networks connect anything starting with an emergency code.
		{"9116666666", "US", true},
		{"1126666666", "US", true},
		// Brazil requires the exact digits.
		{"911", "BR", true},
		{"9111", "BR", false},
		// International dialling never reaches emergency services.
		{"+1911", "US", false},
		// No table for the region at all.
		{"911", "XY", false},
	} {
		if got := r.ConnectsToEmergencyNumber(c.number, c.region); got != c.want {
			t.Fatalf("ConnectsToEmergencyNumber(%q, %q) = %v, want %v", c.number, c.region, got, c.want)
		}
	}
}

func TestIsEmergencyNumber(t *testing.T) {
	r := DefaultRegistry()
	if !r.IsEmergencyNumber("911", "US") || !r.IsEmergencyNumber("112", "US") {
		t.Fatalf("exact emergency numbers should match")
	}
	// Exact matching everywhere, even where networks allow suffixes.
	if r.IsEmergencyNumber("9116666666", "US") {
		t.Fatalf("a prefix match is not an emergency number")
	}
	if !r.IsEmergencyNumber("0-0-0", "AU") {
		t.Fatalf("punctuation should be ignored")
	}
}

func TestCarrierSpecificAndSMS(t *testing.T) {
	r := DefaultRegistry()
	carrier := &PhoneNumber{CountryCode: 1, NationalNumber: 33669}
	if !r.IsCarrierSpecific(carrier) {
		t.Fatalf("33669 is carrier specific")
	}
	if r.IsSMSService(carrier) {
		t.Fatalf("33669 is not SMS only")
	}
	sms := &PhoneNumber{CountryCode: 1, NationalNumber: 767123}
	if !r.IsSMSService(sms) {
		t.Fatalf("767xxx is SMS only")
	}
	if r.IsCarrierSpecific(&PhoneNumber{CountryCode: 1, NationalNumber: 911}) {
		t.Fatalf("911 is not carrier specific")
	}
}
