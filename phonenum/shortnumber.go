package phonenum

import "strings"

// ShortNumberCost tiers the price of calling a short code.
type ShortNumberCost int

const (
	CostTollFree ShortNumberCost = iota
	CostStandard
	CostPremium
	CostUnknown
)

func (c ShortNumberCost) String() string {
	switch c {
	case CostTollFree:
		return "TOLL_FREE"
	case CostStandard:
		return "STANDARD_RATE"
	case CostPremium:
		return "PREMIUM_RATE"
	}
	return "UNKNOWN_COST"
}

// Regions where an emergency number must be dialled exactly: appending
// digits does not connect.
var emergencyExactRegions = map[string]bool{"BR": true, "CL": true, "NI": true}

// IsPossibleShortNumberForRegion checks the number's length against the
// region's short-code table.
func (r *Registry) IsPossibleShortNumberForRegion(number *PhoneNumber, regionDialingFrom string) bool {
	md := r.shortMetadataForRegion(regionDialingFrom)
	if md == nil {
		return false
	}
	return containsInt(md.GeneralDesc.PossibleLength, len(GetNationalSignificantNumber(number)))
}

// IsPossibleShortNumber checks the length against every region sharing
// the number's calling code.
func (r *Registry) IsPossibleShortNumber(number *PhoneNumber) bool {
	for _, regionCode := range r.regionCodesForShortNumber(number) {
		if r.IsPossibleShortNumberForRegion(number, regionCode) {
			return true
		}
	}
	return false
}

// IsValidShortNumberForRegion requires the short-code pattern to match in
// full.
func (r *Registry) IsValidShortNumberForRegion(number *PhoneNumber, regionDialingFrom string) bool {
	md := r.shortMetadataForRegion(regionDialingFrom)
	if md == nil {
		return false
	}
	nsn := GetNationalSignificantNumber(number)
	if !md.GeneralDesc.matchesDesc(nsn) {
		return false
	}
	return md.ShortCode.matchesDesc(nsn)
}

// IsValidShortNumber resolves the owning region first when the calling
// code is shared.
func (r *Registry) IsValidShortNumber(number *PhoneNumber) bool {
	regions := r.regionCodesForShortNumber(number)
	regionCode := r.regionCodeForShortNumber(number, regions)
	if len(regions) > 1 && regionCode != "" {
		// The resolved region answers for the shared code.
		return true
	}
	return r.IsValidShortNumberForRegion(number, regionCode)
}

// GetExpectedCostForRegion classifies a short number's cost tier within
// one region. Impossible numbers cost UNKNOWN.
func (r *Registry) GetExpectedCostForRegion(number *PhoneNumber, regionDialingFrom string) ShortNumberCost {
	md := r.shortMetadataForRegion(regionDialingFrom)
	if md == nil {
		return CostUnknown
	}
	if !r.IsPossibleShortNumberForRegion(number, regionDialingFrom) {
		return CostUnknown
	}
	nsn := GetNationalSignificantNumber(number)
	switch {
	case md.PremiumRate.matchesDesc(nsn):
		return CostPremium
	case md.StandardRate.matchesDesc(nsn):
		return CostStandard
	case md.TollFree.matchesDesc(nsn):
		return CostTollFree
	case r.IsEmergencyNumber(nsn, regionDialingFrom):
		return CostTollFree
	}
	return CostUnknown
}

// GetExpectedCost classifies cost across all regions sharing the calling
// code. Premium rate wins over uncertainty; otherwise any disagreement
// yields UNKNOWN_COST.
func (r *Registry) GetExpectedCost(number *PhoneNumber) ShortNumberCost {
	regions := r.regionCodesForShortNumber(number)
	if len(regions) == 0 {
		return CostUnknown
	}
	if len(regions) == 1 {
		return r.GetExpectedCostForRegion(number, regions[0])
	}
	cost := CostTollFree
	for _, regionCode := range regions {
		regionCost := r.GetExpectedCostForRegion(number, regionCode)
		switch regionCost {
		case CostPremium:
			return CostPremium
		case CostUnknown:
			cost = CostUnknown
		case CostStandard:
			if cost != CostUnknown {
				cost = CostStandard
			}
		}
	}
	return cost
}

// regionCodesForShortNumber lists candidate regions for the number's
// calling code that have short-number tables.
func (r *Registry) regionCodesForShortNumber(number *PhoneNumber) []string {
	var out []string
	for _, regionCode := range r.RegionCodesForCountryCode(number.CountryCode) {
		if r.shortMetadataForRegion(regionCode) != nil {
			out = append(out, regionCode)
		}
	}
	return out
}

// regionCodeForShortNumber picks the single region whose short-code
// table claims the number, or "" when several could.
func (r *Registry) regionCodeForShortNumber(number *PhoneNumber, regions []string) string {
	if len(regions) == 0 {
		return ""
	}
	if len(regions) == 1 {
		return regions[0]
	}
	nsn := GetNationalSignificantNumber(number)
	for _, regionCode := range regions {
		md := r.shortMetadataForRegion(regionCode)
		if md != nil && md.ShortCode.matchesDesc(nsn) {
			return regionCode
		}
	}
	return ""
}

// ConnectsToEmergencyNumber reports whether dialling the digits reaches
// emergency services, tolerating extra trailing digits where the region's
// network allows that.
func (r *Registry) ConnectsToEmergencyNumber(number, regionDialingFrom string) bool {
	return r.matchesEmergencyNumberHelper(number, regionDialingFrom,
		!emergencyExactRegions[strings.ToUpper(regionDialingFrom)])
}

// IsEmergencyNumber requires the digits to be exactly an emergency
// number: appending digits to a valid one invalidates it.
func (r *Registry) IsEmergencyNumber(number, regionDialingFrom string) bool {
	return r.matchesEmergencyNumberHelper(number, regionDialingFrom, false)
}

func (r *Registry) matchesEmergencyNumberHelper(number, regionDialingFrom string, allowPrefixMatch bool) bool {
	possible := extractPossibleNumber(number)
	if plusCharsPattern.MatchString(possible) {
		// Numbers dialled internationally are never emergency numbers.
		return false
	}
	md := r.shortMetadataForRegion(regionDialingFrom)
	if md == nil || md.Emergency == nil || md.Emergency.pattern == nil {
		return false
	}
	normalized := NormalizeDigitsOnly(possible)
	if md.Emergency.matchesFully(normalized) {
		return true
	}
	if !allowPrefixMatch {
		return false
	}
	return md.Emergency.matchesPrefix(normalized)
}

// IsCarrierSpecific reports whether the short number must be dialled on a
// particular carrier's network.
func (r *Registry) IsCarrierSpecific(number *PhoneNumber) bool {
	regions := r.regionCodesForShortNumber(number)
	regionCode := r.regionCodeForShortNumber(number, regions)
	md := r.shortMetadataForRegion(regionCode)
	if md == nil {
		return false
	}
	return md.CarrierSpecific.matchesDesc(GetNationalSignificantNumber(number))
}

// IsSMSService reports whether the short number only answers SMS.
func (r *Registry) IsSMSService(number *PhoneNumber) bool {
	regions := r.regionCodesForShortNumber(number)
	regionCode := r.regionCodeForShortNumber(number, regions)
	md := r.shortMetadataForRegion(regionCode)
	if md == nil {
		return false
	}
	return md.SMSServices.matchesDesc(GetNationalSignificantNumber(number))
}
