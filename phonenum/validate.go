package phonenum

import "strconv"

// PhoneNumberType classifies a number by its descriptor tables.
type PhoneNumberType int

const (
	FixedLine PhoneNumberType = iota
	Mobile
	FixedLineOrMobile
	TollFree
	PremiumRate
	SharedCost
	VoIP
	PersonalNumber
	Pager
	UAN
	Voicemail
	UnknownType
)

func (t PhoneNumberType) String() string {
	switch t {
	case FixedLine:
		return "FIXED_LINE"
	case Mobile:
		return "MOBILE"
	case FixedLineOrMobile:
		return "FIXED_LINE_OR_MOBILE"
	case TollFree:
		return "TOLL_FREE"
	case PremiumRate:
		return "PREMIUM_RATE"
	case SharedCost:
		return "SHARED_COST"
	case VoIP:
		return "VOIP"
	case PersonalNumber:
		return "PERSONAL_NUMBER"
	case Pager:
		return "PAGER"
	case UAN:
		return "UAN"
	case Voicemail:
		return "VOICEMAIL"
	}
	return "UNKNOWN"
}

// ValidationResult is the fine-grained outcome of a possible-number check.
type ValidationResult int

const (
	ResultIsPossible ValidationResult = iota
	ResultIsPossibleLocalOnly
	ResultInvalidCountryCode
	ResultTooShort
	// ResultInvalidLength means numbers of this length exist nowhere in
	// the region/type, as opposed to falling short of or beyond an
	// existing range.
	ResultInvalidLength
	ResultTooLong
)

func (v ValidationResult) String() string {
	switch v {
	case ResultIsPossible:
		return "IS_POSSIBLE"
	case ResultIsPossibleLocalOnly:
		return "IS_POSSIBLE_LOCAL_ONLY"
	case ResultInvalidCountryCode:
		return "INVALID_COUNTRY_CODE"
	case ResultTooShort:
		return "TOO_SHORT"
	case ResultInvalidLength:
		return "INVALID_LENGTH"
	case ResultTooLong:
		return "TOO_LONG"
	}
	return "UNKNOWN"
}

// GetNationalSignificantNumber renders the digits of the national number,
// restoring recorded leading zeros.
func GetNationalSignificantNumber(number *PhoneNumber) string {
	return number.nationalNumberString()
}

// testNumberLength checks the national number's digit count against the
// possible lengths of the requested type.
func testNumberLength(nsn string, md *Metadata, numberType PhoneNumberType) ValidationResult {
	desc := md.descForType(numberType)
	possibleLengths := md.GeneralDesc.PossibleLength
	localLengths := []int(nil)
	if desc != nil {
		if len(desc.PossibleLength) > 0 {
			possibleLengths = desc.PossibleLength
		}
		localLengths = desc.PossibleLengthLocalOnly
	}
	if numberType != UnknownType && desc == nil {
		// The region has no numbers of this type at all.
		return ResultInvalidLength
	}
	if numberType == FixedLineOrMobile {
		possibleLengths = mergedLengths(md.FixedLine, md.Mobile, md.GeneralDesc)
		localLengths = mergedLocalLengths(md.FixedLine, md.Mobile)
	}
	if len(possibleLengths) == 0 {
		possibleLengths = md.GeneralDesc.PossibleLength
	}
	if len(possibleLengths) == 0 {
		return ResultInvalidLength
	}
	actual := len(nsn)
	if containsInt(localLengths, actual) {
		return ResultIsPossibleLocalOnly
	}
	minimum := possibleLengths[0]
	switch {
	case minimum == actual:
		return ResultIsPossible
	case minimum > actual:
		return ResultTooShort
	case possibleLengths[len(possibleLengths)-1] < actual:
		return ResultTooLong
	case containsInt(possibleLengths[1:], actual):
		return ResultIsPossible
	}
	return ResultInvalidLength
}

func mergedLengths(a, b, general *PhoneNumberDesc) []int {
	var out []int
	for _, d := range []*PhoneNumberDesc{a, b} {
		if d == nil {
			continue
		}
		lengths := d.PossibleLength
		if len(lengths) == 0 {
			lengths = general.PossibleLength
		}
		for _, l := range lengths {
			if !containsInt(out, l) {
				out = append(out, l)
			}
		}
	}
	sortInts(out)
	return out
}

func mergedLocalLengths(a, b *PhoneNumberDesc) []int {
	var out []int
	for _, d := range []*PhoneNumberDesc{a, b} {
		if d == nil {
			continue
		}
		for _, l := range d.PossibleLengthLocalOnly {
			if !containsInt(out, l) {
				out = append(out, l)
			}
		}
	}
	sortInts(out)
	return out
}

func sortInts(v []int) {
	for i := 1; i < len(v); i++ {
		for j := i; j > 0 && v[j-1] > v[j]; j-- {
			v[j-1], v[j] = v[j], v[j-1]
		}
	}
}

// IsPossibleNumber reports whether the number's length is plausible for
// its region, accepting local-only lengths.
func IsPossibleNumber(number *PhoneNumber) bool {
	return DefaultRegistry().IsPossibleNumber(number)
}

// IsPossibleNumber over this registry's tables.
func (r *Registry) IsPossibleNumber(number *PhoneNumber) bool {
	result := r.IsPossibleNumberWithReason(number)
	return result == ResultIsPossible || result == ResultIsPossibleLocalOnly
}

// IsPossibleNumberWithReason explains why a number is or is not possible.
func IsPossibleNumberWithReason(number *PhoneNumber) ValidationResult {
	return DefaultRegistry().IsPossibleNumberWithReason(number)
}

// IsPossibleNumberWithReason over this registry's tables.
func (r *Registry) IsPossibleNumberWithReason(number *PhoneNumber) ValidationResult {
	return r.IsPossibleNumberForTypeWithReason(number, UnknownType)
}

// IsPossibleNumberForType restricts the possible check to one number type.
func (r *Registry) IsPossibleNumberForType(number *PhoneNumber, numberType PhoneNumberType) bool {
	result := r.IsPossibleNumberForTypeWithReason(number, numberType)
	return result == ResultIsPossible || result == ResultIsPossibleLocalOnly
}

// IsPossibleNumberForTypeWithReason explains the type-scoped possible
// check.
func (r *Registry) IsPossibleNumberForTypeWithReason(number *PhoneNumber, numberType PhoneNumberType) ValidationResult {
	nsn := GetNationalSignificantNumber(number)
	countryCode := number.CountryCode
	regionCode := r.RegionCodeForCountryCode(countryCode)
	md := r.metadataForRegionOrCallingCode(countryCode, regionCode)
	if md == nil {
		return ResultInvalidCountryCode
	}
	return testNumberLength(nsn, md, numberType)
}

// IsPossibleNumberForString parses leniently and applies the possible
// check; unparseable input is simply not possible.
func (r *Registry) IsPossibleNumberForString(number, regionDialingFrom string) bool {
	parsed, err := r.Parse(number, regionDialingFrom)
	if err != nil {
		return false
	}
	return r.IsPossibleNumber(parsed)
}

// IsValidNumber reports whether the number matches the pattern tables of
// the region its calling code and leading digits select.
func IsValidNumber(number *PhoneNumber) bool {
	return DefaultRegistry().IsValidNumber(number)
}

// IsValidNumber over this registry's tables.
func (r *Registry) IsValidNumber(number *PhoneNumber) bool {
	regionCode := r.GetRegionCodeForNumber(number)
	return r.IsValidNumberForRegion(number, regionCode)
}

// IsValidNumberForRegion additionally pins the number to one region of a
// shared calling code.
func (r *Registry) IsValidNumberForRegion(number *PhoneNumber, regionCode string) bool {
	md := r.metadataForRegionOrCallingCode(number.CountryCode, regionCode)
	if md == nil {
		return false
	}
	if regionCode != nonGeoEntityRegionCode && number.CountryCode != r.CountryCodeForRegion(regionCode) {
		return false
	}
	nsn := GetNationalSignificantNumber(number)
	return getNumberTypeHelper(nsn, md) != UnknownType
}

// GetRegionCodeForNumber resolves which region of the number's calling
// code claims it: non-main regions win through their leading-digits
// pattern or type tables; the main country is the fallback.
func (r *Registry) GetRegionCodeForNumber(number *PhoneNumber) string {
	regions := r.RegionCodesForCountryCode(number.CountryCode)
	if len(regions) == 0 {
		return ""
	}
	if len(regions) == 1 {
		return regions[0]
	}
	nsn := GetNationalSignificantNumber(number)
	for _, regionCode := range regions {
		md := r.metadataForRegionOrCallingCode(number.CountryCode, regionCode)
		if md == nil {
			continue
		}
		if md.leadingDigitsPattern != nil {
			if loc := md.leadingDigitsPattern.FindStringIndex(nsn); loc != nil && loc[0] == 0 {
				return regionCode
			}
			continue
		}
		if getNumberTypeHelper(nsn, md) != UnknownType {
			return regionCode
		}
	}
	return ""
}

// GetNumberType classifies the number; UnknownType doubles as "not valid
// anywhere".
func GetNumberType(number *PhoneNumber) PhoneNumberType {
	return DefaultRegistry().GetNumberType(number)
}

// GetNumberType over this registry's tables.
func (r *Registry) GetNumberType(number *PhoneNumber) PhoneNumberType {
	regionCode := r.GetRegionCodeForNumber(number)
	md := r.metadataForRegionOrCallingCode(number.CountryCode, regionCode)
	if md == nil {
		return UnknownType
	}
	return getNumberTypeHelper(GetNationalSignificantNumber(number), md)
}

// getNumberTypeHelper tests the descriptors in fixed priority order. A
// number that fails the general pattern is unknown regardless of any
// sub-type match.
func getNumberTypeHelper(nsn string, md *Metadata) PhoneNumberType {
	if !md.GeneralDesc.matchesDesc(nsn) {
		return UnknownType
	}
	switch {
	case md.PremiumRate.matchesDesc(nsn):
		return PremiumRate
	case md.TollFree.matchesDesc(nsn):
		return TollFree
	case md.SharedCost.matchesDesc(nsn):
		return SharedCost
	case md.VoIP.matchesDesc(nsn):
		return VoIP
	case md.PersonalNumber.matchesDesc(nsn):
		return PersonalNumber
	case md.Pager.matchesDesc(nsn):
		return Pager
	case md.UAN.matchesDesc(nsn):
		return UAN
	case md.Voicemail.matchesDesc(nsn):
		return Voicemail
	}
	if md.FixedLine.matchesDesc(nsn) {
		if md.sameMobileAndFixedLinePattern() || md.Mobile.matchesDesc(nsn) {
			return FixedLineOrMobile
		}
		return FixedLine
	}
	if !md.sameMobileAndFixedLinePattern() && md.Mobile.matchesDesc(nsn) {
		return Mobile
	}
	return UnknownType
}

// TruncateTooLongNumber strips trailing digits until the number validates.
// It reports false when no valid truncation exists; the number is then
// left unchanged.
func (r *Registry) TruncateTooLongNumber(number *PhoneNumber) bool {
	if r.IsValidNumber(number) {
		return true
	}
	copied := *number
	national := number.NationalNumber
	for {
		national /= 10
		copied.NationalNumber = national
		if national == 0 || r.IsPossibleNumberWithReason(&copied) == ResultTooShort {
			return false
		}
		if r.IsValidNumber(&copied) {
			number.NationalNumber = national
			return true
		}
	}
}

// Calling codes whose mobile numbers are geographically bound.
var geoMobileCountryCodes = map[int]bool{52: true, 54: true, 55: true, 62: true, 86: true}

// Mobile tokens dialled between country code and area code.
var mobileTokenMappings = map[int]string{52: "1", 54: "9"}

// IsNumberGeographical reports whether the number's type binds it to a
// physical area.
func (r *Registry) IsNumberGeographical(number *PhoneNumber) bool {
	numberType := r.GetNumberType(number)
	if numberType == FixedLine || numberType == FixedLineOrMobile {
		return true
	}
	return geoMobileCountryCodes[number.CountryCode] && numberType == Mobile
}

// GetCountryMobileToken returns the digits dialled after the country code
// for mobile numbers in some regions, or "".
func GetCountryMobileToken(countryCode int) string {
	return mobileTokenMappings[countryCode]
}

// GetLengthOfGeographicalAreaCode measures the area code of the number,
// or 0 when the region has no area-code concept or the number is not
// geographical.
func (r *Registry) GetLengthOfGeographicalAreaCode(number *PhoneNumber) int {
	regionCode := r.GetRegionCodeForNumber(number)
	md := r.MetadataForRegion(regionCode)
	if md == nil {
		return 0
	}
	if md.NationalPrefix == "" && !number.ItalianLeadingZero {
		return 0
	}
	if !r.IsNumberGeographical(number) {
		return 0
	}
	return r.GetLengthOfNationalDestinationCode(number)
}

// GetLengthOfNationalDestinationCode measures the national destination
// code using the international format's first grouping.
func (r *Registry) GetLengthOfNationalDestinationCode(number *PhoneNumber) int {
	copied := *number
	copied.Extension = nil
	formatted := r.Format(&copied, FormatInternational)
	groups := splitDigitGroups(formatted)
	// groups[0] is the country code; the NDC is the next grouping.
	if len(groups) <= 2 {
		return 0
	}
	if r.GetNumberType(number) == Mobile {
		if token := GetCountryMobileToken(number.CountryCode); token != "" && len(groups) > 3 {
			return len(groups[2]) + len(token)
		}
	}
	return len(groups[1])
}

func splitDigitGroups(formatted string) []string {
	parts := nonDigitsPattern.Split(formatted, -1)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// CanBeInternationallyDialled reports whether the number is reachable from
// abroad; regions list purely domestic ranges in a dedicated descriptor.
func (r *Registry) CanBeInternationallyDialled(number *PhoneNumber) bool {
	md := r.MetadataForRegion(r.GetRegionCodeForNumber(number))
	if md == nil {
		return true
	}
	return !md.NoInternational.matchesDesc(GetNationalSignificantNumber(number))
}

// GetExampleNumber returns a valid example number for the region, or nil.
func (r *Registry) GetExampleNumber(regionCode string) *PhoneNumber {
	return r.GetExampleNumberForType(regionCode, FixedLine)
}

// GetExampleNumberForType returns an example of the given type, or nil
// when the region has none.
func (r *Registry) GetExampleNumberForType(regionCode string, numberType PhoneNumberType) *PhoneNumber {
	md := r.MetadataForRegion(regionCode)
	if md == nil {
		return nil
	}
	desc := md.descForType(numberType)
	if desc == nil || desc.ExampleNumber == "" {
		return nil
	}
	number, err := r.Parse("+"+strconv.Itoa(md.CountryCode)+desc.ExampleNumber, unknownRegion)
	if err != nil {
		return nil
	}
	return number
}
