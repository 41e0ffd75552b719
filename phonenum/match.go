package phonenum

import (
	"errors"
	"strconv"
	"strings"
)

// MatchType grades how strongly two inputs denote the same number.
type MatchType int

const (
	MatchInvalidNumber MatchType = iota
	MatchNone
	MatchShortNSN
	MatchNSN
	MatchExact
)

func (m MatchType) String() string {
	switch m {
	case MatchNone:
		return "NO_MATCH"
	case MatchShortNSN:
		return "SHORT_NSN_MATCH"
	case MatchNSN:
		return "NSN_MATCH"
	case MatchExact:
		return "EXACT_MATCH"
	}
	return "INVALID_NUMBER"
}

// The shortest suffix overlap still reported as a short-NSN match; the
// boundary where a shared tail stops being evidence of sameness.
const shortNSNMatchMinLength = 4

// IsNumberMatch compares two textual numbers using the default registry.
func IsNumberMatch(first, second string) MatchType {
	return DefaultRegistry().IsNumberMatch(first, second)
}

// IsNumberMatch compares two textual numbers, each parsed leniently with
// no region. When one side's country code explains the other's missing
// one, the comparison retries with the borrowed region; an exact hit
// found that way is reported as an NSN match.
func (r *Registry) IsNumberMatch(first, second string) MatchType {
	firstNumber, err := r.Parse(first, unknownRegion)
	if err == nil {
		return r.IsNumberMatchWithOneNumber(firstNumber, second)
	}
	if !errors.Is(err, ErrInvalidCountryCode) {
		return MatchInvalidNumber
	}
	secondNumber, err := r.Parse(second, unknownRegion)
	if err == nil {
		return r.IsNumberMatchWithOneNumber(secondNumber, first)
	}
	if !errors.Is(err, ErrInvalidCountryCode) {
		return MatchInvalidNumber
	}
	// Neither side announces a country code; compare their bare digit
	// structure.
	firstNumber, err1 := r.parseHelper(first, "", false, false)
	secondNumber, err2 := r.parseHelper(second, "", false, false)
	if err1 != nil || err2 != nil {
		return MatchInvalidNumber
	}
	return r.IsNumberMatchWithNumbers(firstNumber, secondNumber)
}

// IsNumberMatchWithOneNumber compares a structured number against a
// textual one.
func (r *Registry) IsNumberMatchWithOneNumber(firstNumber *PhoneNumber, second string) MatchType {
	secondNumber, err := r.Parse(second, unknownRegion)
	if err == nil {
		return r.IsNumberMatchWithNumbers(firstNumber, secondNumber)
	}
	if !errors.Is(err, ErrInvalidCountryCode) {
		return MatchInvalidNumber
	}
	firstRegion := r.RegionCodeForCountryCode(firstNumber.CountryCode)
	if firstRegion != unknownRegion {
		secondNumber, err := r.Parse(second, firstRegion)
		if err != nil {
			return MatchInvalidNumber
		}
		match := r.IsNumberMatchWithNumbers(firstNumber, secondNumber)
		if match == MatchExact {
			// The agreement depended on the borrowed region, so it is
			// only as strong as an NSN match.
			return MatchNSN
		}
		return match
	}
	secondNumber, err = r.parseHelper(second, "", false, false)
	if err != nil {
		return MatchInvalidNumber
	}
	return r.IsNumberMatchWithNumbers(firstNumber, secondNumber)
}

// IsNumberMatchWithNumbers compares two structured numbers on their
// identity fields only.
func (r *Registry) IsNumberMatchWithNumbers(firstNumberIn, secondNumberIn *PhoneNumber) MatchType {
	if firstNumberIn == nil || secondNumberIn == nil {
		return MatchInvalidNumber
	}
	firstNumber := firstNumberIn.copyCoreFields()
	secondNumber := secondNumberIn.copyCoreFields()
	firstExt, secondExt := firstNumber.GetExtension(), secondNumber.GetExtension()
	if firstExt != "" && secondExt != "" && firstExt != secondExt {
		return MatchNone
	}
	firstCode, secondCode := firstNumber.CountryCode, secondNumber.CountryCode
	if firstCode != 0 && secondCode != 0 {
		if firstNumber.coreEqual(secondNumber) {
			return MatchExact
		}
		if firstCode == secondCode && isNationalNumberSuffixOfTheOther(firstNumber, secondNumber) {
			return MatchShortNSN
		}
		return MatchNone
	}
	// At least one side has no country code; pretend they agree and see
	// what remains.
	firstNumber.CountryCode = secondCode
	if firstNumber.coreEqual(secondNumber) {
		return MatchNSN
	}
	if isNationalNumberSuffixOfTheOther(firstNumber, secondNumber) {
		return MatchShortNSN
	}
	return MatchNone
}

// isNationalNumberSuffixOfTheOther reports whether the shorter national
// number is a full trailing run of the longer one, long enough to matter.
func isNationalNumberSuffixOfTheOther(first, second *PhoneNumber) bool {
	firstStr := strconv.FormatUint(first.NationalNumber, 10)
	secondStr := strconv.FormatUint(second.NationalNumber, 10)
	shorter := firstStr
	if len(secondStr) < len(shorter) {
		shorter = secondStr
	}
	if len(shorter) < shortNSNMatchMinLength {
		return false
	}
	return strings.HasSuffix(firstStr, secondStr) || strings.HasSuffix(secondStr, firstStr)
}
