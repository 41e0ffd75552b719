package phonenum

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Parse interprets a number written in arbitrary notation against the
// default region's dialling conventions. The default region may be "" or
// "ZZ" when the number carries its own country code (a leading '+' or a
// tel: URI with a global phone-context).
func Parse(numberToParse, defaultRegion string) (*PhoneNumber, error) {
	return DefaultRegistry().Parse(numberToParse, defaultRegion)
}

// ParseAndKeepRawInput parses like Parse but records the raw input, the
// country-code provenance and any dialled carrier code on the result.
func ParseAndKeepRawInput(numberToParse, defaultRegion string) (*PhoneNumber, error) {
	return DefaultRegistry().ParseAndKeepRawInput(numberToParse, defaultRegion)
}

// Parse interprets a number against this registry's tables.
func (r *Registry) Parse(numberToParse, defaultRegion string) (*PhoneNumber, error) {
	return r.parseHelper(numberToParse, defaultRegion, false, true)
}

// ParseAndKeepRawInput parses and keeps provenance fields.
func (r *Registry) ParseAndKeepRawInput(numberToParse, defaultRegion string) (*PhoneNumber, error) {
	return r.parseHelper(numberToParse, defaultRegion, true, true)
}

func (r *Registry) parseHelper(numberToParse, defaultRegion string, keepRawInput, checkRegion bool) (*PhoneNumber, error) {
	if numberToParse == "" {
		return nil, fmt.Errorf("%w: empty input", ErrNotANumber)
	}
	if len(numberToParse) > maxInputStringLength {
		return nil, fmt.Errorf("%w: input over %d characters", ErrNotANumber, maxInputStringLength)
	}
	nationalNumber, err := buildNationalNumberForParsing(numberToParse)
	if err != nil {
		return nil, fmt.Errorf("%w: unusable phone-context", ErrInvalidCountryCode)
	}
	if !isViablePhoneNumber(nationalNumber) {
		return nil, fmt.Errorf("%w: %q", ErrNotANumber, numberToParse)
	}
	if checkRegion && !r.checkRegionForParsing(nationalNumber, defaultRegion) {
		return nil, fmt.Errorf("%w: missing or unknown default region", ErrInvalidCountryCode)
	}

	number := &PhoneNumber{}
	if keepRawInput {
		number.RawInput = strPtr(numberToParse)
	}
	ext, err := maybeStripExtension(&nationalNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: extension too long", err)
	}
	if ext != "" {
		number.Extension = &ext
	}

	regionMetadata := r.MetadataForRegion(defaultRegion)
	countryCode, normalizedNational, err := r.maybeExtractCountryCode(nationalNumber, regionMetadata, keepRawInput, number)
	if err != nil {
		// A spurious leading plus is forgiven once: retry without it.
		if errors.Is(err, ErrInvalidCountryCode) {
			if loc := plusCharsPattern.FindStringIndex(nationalNumber); loc != nil {
				countryCode, normalizedNational, err = r.maybeExtractCountryCode(
					nationalNumber[loc[1]:], regionMetadata, keepRawInput, number)
				if err != nil {
					return nil, err
				}
				if countryCode == 0 {
					return nil, fmt.Errorf("%w: plus sign with unrecognized country code", ErrInvalidCountryCode)
				}
			} else {
				return nil, err
			}
		} else {
			return nil, err
		}
	}
	if countryCode != 0 {
		phoneNumberRegion := r.RegionCodeForCountryCode(countryCode)
		if phoneNumberRegion != defaultRegion {
			regionMetadata = r.metadataForRegionOrCallingCode(countryCode, phoneNumberRegion)
		}
	} else {
		// No country code in the number itself: assume the default
		// region's.
		normalizedNational = Normalize(nationalNumber)
		if regionMetadata != nil {
			countryCode = regionMetadata.CountryCode
		}
	}
	if len(normalizedNational) < minLengthForNSN {
		return nil, fmt.Errorf("%w: %d digits", ErrTooShortNSN, len(normalizedNational))
	}

	if regionMetadata != nil {
		potential := normalizedNational
		carrierCode := maybeStripNationalPrefixAndCarrierCode(&potential, regionMetadata)
		// The strip is only accepted when it does not push the number
		// below every regular possible length: a real leading digit may
		// just look like a national prefix.
		result := testNumberLength(potential, regionMetadata, UnknownType)
		if result != ResultTooShort && result != ResultIsPossibleLocalOnly && result != ResultInvalidLength {
			normalizedNational = potential
			if keepRawInput && carrierCode != "" {
				number.PreferredDomesticCarrierCode = &carrierCode
			}
		}
	}

	switch n := len(normalizedNational); {
	case n < minLengthForNSN:
		return nil, fmt.Errorf("%w: %d digits", ErrTooShortNSN, n)
	case n > maxLengthForNSN:
		return nil, fmt.Errorf("%w: %d digits", ErrTooLongNSN, n)
	}
	setItalianLeadingZerosIfNeeded(normalizedNational, number)
	number.CountryCode = countryCode
	value, err := strconv.ParseUint(normalizedNational, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotANumber, normalizedNational)
	}
	number.NationalNumber = value
	return number, nil
}

// checkRegionForParsing requires either a known default region or a
// number that announces its own country code with a plus sign.
func (r *Registry) checkRegionForParsing(numberToParse, defaultRegion string) bool {
	if r.isValidRegionCode(defaultRegion) {
		return true
	}
	return numberToParse != "" && plusCharsPattern.MatchString(numberToParse)
}

// maybeExtractCountryCode strips any leading '+', IDD or bare country
// calling code and returns the code with the remaining national number.
// A zero code with nil error means the default region's code applies.
func (r *Registry) maybeExtractCountryCode(number string, defaultMetadata *Metadata, keepRawInput bool, phoneNumber *PhoneNumber) (int, string, error) {
	if number == "" {
		return 0, "", fmt.Errorf("%w: empty number", ErrInvalidCountryCode)
	}
	fullNumber := number
	source := maybeStripInternationalPrefixAndNormalize(&fullNumber, defaultMetadata)
	if keepRawInput {
		phoneNumber.CountryCodeSource = source
	}
	if source != CountryCodeFromDefaultCountry {
		if len(fullNumber) <= minLengthForNSN {
			return 0, "", fmt.Errorf("%w: %q", ErrTooShortAfterIDD, number)
		}
		if code, rest := r.extractCountryCode(fullNumber); code != 0 {
			return code, rest, nil
		}
		return 0, "", fmt.Errorf("%w: no known code at start of %q", ErrInvalidCountryCode, fullNumber)
	}
	if defaultMetadata != nil {
		// The number may still begin with the default region's calling
		// code dialled without any international marker. Accept that
		// reading only when it explains an otherwise invalid or too-long
		// number.
		codeString := strconv.Itoa(defaultMetadata.CountryCode)
		if strings.HasPrefix(fullNumber, codeString) {
			potential := fullNumber[len(codeString):]
			maybeStripNationalPrefixAndCarrierCode(&potential, defaultMetadata)
			general := defaultMetadata.GeneralDesc
			if (!general.matchesFully(fullNumber) && general.matchesFully(potential)) ||
				testNumberLength(fullNumber, defaultMetadata, UnknownType) == ResultTooLong {
				if keepRawInput {
					phoneNumber.CountryCodeSource = CountryCodeFromNumberWithoutPlusSign
				}
				return defaultMetadata.CountryCode, potential, nil
			}
		}
	}
	return 0, "", nil
}

// extractCountryCode scans calling-code candidates of length 1 to 3 from
// the front of the digits; codes are not prefix-free, so the first (i.e.
// shortest) known code wins.
func (r *Registry) extractCountryCode(fullNumber string) (int, string) {
	if fullNumber == "" || fullNumber[0] == '0' {
		// Country calling codes never start with zero.
		return 0, ""
	}
	for i := 1; i <= maxLengthCountryCode && i <= len(fullNumber); i++ {
		code, err := strconv.Atoi(fullNumber[:i])
		if err != nil {
			return 0, ""
		}
		if r.callingCodes[code] {
			return code, fullNumber[i:]
		}
	}
	return 0, ""
}

// maybeStripInternationalPrefixAndNormalize removes a leading plus sign or
// the default region's IDD and normalizes the remainder in place.
func maybeStripInternationalPrefixAndNormalize(number *string, defaultMetadata *Metadata) CountryCodeSource {
	if *number == "" {
		return CountryCodeFromDefaultCountry
	}
	if loc := plusCharsPattern.FindStringIndex(*number); loc != nil {
		*number = Normalize((*number)[loc[1]:])
		return CountryCodeFromNumberWithPlusSign
	}
	*number = Normalize(*number)
	if defaultMetadata == nil || defaultMetadata.iddPattern == nil {
		return CountryCodeFromDefaultCountry
	}
	if parsePrefixAsIdd(defaultMetadata.iddPattern, number) {
		return CountryCodeFromNumberWithIDD
	}
	return CountryCodeFromDefaultCountry
}

// parsePrefixAsIdd strips an IDD match from the start unless the digit
// right after it is a zero, which would make the reading ambiguous with a
// national-prefix dial.
func parsePrefixAsIdd(iddPattern *regexp.Regexp, number *string) bool {
	loc := iddPattern.FindStringIndex(*number)
	if loc == nil || loc[0] != 0 {
		return false
	}
	rest := (*number)[loc[1]:]
	if m := capturingDigit.FindStringSubmatch(rest); m != nil {
		if NormalizeDigitsOnly(m[1]) == "0" {
			return false
		}
	}
	*number = rest
	return true
}

// maybeStripNationalPrefixAndCarrierCode removes a national prefix and
// carrier-selection code, applying the region's transform rule when one is
// set. Whichever of the stripped and unstripped forms matches the region's
// general pattern is preferred; an unviable strip is rolled back. Returns
// the carrier code when one was captured.
func maybeStripNationalPrefixAndCarrierCode(number *string, md *Metadata) string {
	if *number == "" || md.nationalPrefixRe == nil {
		return ""
	}
	m := md.nationalPrefixRe.FindStringSubmatchIndex(*number)
	if m == nil {
		return ""
	}
	general := md.GeneralDesc
	isViableOriginal := general.matchesFully(*number)
	numGroups := md.nationalPrefixRe.NumSubexp()
	transform := md.NationalPrefixTransformRule
	lastGroupPresent := numGroups > 0 && m[numGroups*2] >= 0
	if transform == "" || !lastGroupPresent {
		candidate := (*number)[m[1]:]
		if isViableOriginal && !general.matchesFully(candidate) {
			return ""
		}
		carrier := ""
		if numGroups > 0 && m[2] >= 0 {
			carrier = (*number)[m[2]:m[3]]
		}
		*number = candidate
		return carrier
	}
	// The transform rule re-injects digits (e.g. a mobile token) in place
	// of the matched prefix.
	expanded := md.nationalPrefixRe.ExpandString(nil, transform, *number, m)
	candidate := string(expanded) + (*number)[m[1]:]
	if isViableOriginal && !general.matchesFully(candidate) {
		return ""
	}
	*number = candidate
	return ""
}

// setItalianLeadingZerosIfNeeded records leading zeros that the integer
// national number cannot carry.
func setItalianLeadingZerosIfNeeded(nationalNumber string, number *PhoneNumber) {
	if len(nationalNumber) < 2 || nationalNumber[0] != '0' {
		return
	}
	number.ItalianLeadingZero = true
	zeros := 0
	for zeros < len(nationalNumber)-1 && nationalNumber[zeros] == '0' {
		zeros++
	}
	if zeros != 1 {
		number.NumberOfLeadingZeros = intPtr(zeros)
	}
}
