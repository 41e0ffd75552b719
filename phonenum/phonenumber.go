package phonenum

import "strconv"

// CountryCodeSource records how the country calling code of a parsed number
// was derived from its input text.
type CountryCodeSource int

const (
	CountryCodeSourceUnspecified CountryCodeSource = iota
	CountryCodeFromNumberWithPlusSign
	CountryCodeFromNumberWithIDD
	CountryCodeFromNumberWithoutPlusSign
	CountryCodeFromDefaultCountry
)

func (s CountryCodeSource) String() string {
	switch s {
	case CountryCodeFromNumberWithPlusSign:
		return "FROM_NUMBER_WITH_PLUS_SIGN"
	case CountryCodeFromNumberWithIDD:
		return "FROM_NUMBER_WITH_IDD"
	case CountryCodeFromNumberWithoutPlusSign:
		return "FROM_NUMBER_WITHOUT_PLUS_SIGN"
	case CountryCodeFromDefaultCountry:
		return "FROM_DEFAULT_COUNTRY"
	}
	return "UNSPECIFIED"
}

// PhoneNumber is the structured result of parsing. NationalNumber drops
// leading zeros; ItalianLeadingZero and NumberOfLeadingZeros restore them
// losslessly. NumberOfLeadingZeros is only meaningful when the flag is set
// and defaults to one when nil.
//
// Pointer fields distinguish absent from present-but-empty, which matters
// for extension comparison and preferred carrier codes.
type PhoneNumber struct {
	CountryCode                  int               `json:"country_code"`
	NationalNumber               uint64            `json:"national_number"`
	Extension                    *string           `json:"extension,omitempty"`
	ItalianLeadingZero           bool              `json:"italian_leading_zero,omitempty"`
	NumberOfLeadingZeros         *int              `json:"number_of_leading_zeros,omitempty"`
	RawInput                     *string           `json:"raw_input,omitempty"`
	CountryCodeSource            CountryCodeSource `json:"country_code_source,omitempty"`
	PreferredDomesticCarrierCode *string           `json:"preferred_domestic_carrier_code,omitempty"`
}

// LeadingZeros reports how many '0' characters precede the national number
// when reconstructing its original decimal form. Unset counts default to
// one; non-positive stored values have zero effect.
func (n *PhoneNumber) LeadingZeros() int {
	if !n.ItalianLeadingZero {
		return 0
	}
	if n.NumberOfLeadingZeros == nil {
		return 1
	}
	if *n.NumberOfLeadingZeros < 0 {
		return 0
	}
	return *n.NumberOfLeadingZeros
}

// GetExtension returns the extension, or "" when absent.
func (n *PhoneNumber) GetExtension() string {
	if n.Extension == nil {
		return ""
	}
	return *n.Extension
}

// GetRawInput returns the raw input, or "" when absent.
func (n *PhoneNumber) GetRawInput() string {
	if n.RawInput == nil {
		return ""
	}
	return *n.RawInput
}

// Equal reports whether two numbers are exactly the same across all fields,
// including parse provenance.
func (n *PhoneNumber) Equal(o *PhoneNumber) bool {
	if n == nil || o == nil {
		return n == o
	}
	return n.coreEqual(o) &&
		strPtrEqual(n.RawInput, o.RawInput) &&
		n.CountryCodeSource == o.CountryCodeSource &&
		strPtrEqual(n.PreferredDomesticCarrierCode, o.PreferredDomesticCarrierCode)
}

// coreEqual compares the fields that identify a number for matching:
// raw input, source and carrier preference are ignored. The leading-zero
// count participates only when both sides carry the flag.
func (n *PhoneNumber) coreEqual(o *PhoneNumber) bool {
	if n.CountryCode != o.CountryCode || n.NationalNumber != o.NationalNumber {
		return false
	}
	if n.ItalianLeadingZero != o.ItalianLeadingZero {
		return false
	}
	if n.ItalianLeadingZero && o.ItalianLeadingZero {
		if n.LeadingZeros() != o.LeadingZeros() {
			return false
		}
	}
	return n.GetExtension() == o.GetExtension()
}

// copyCoreFields duplicates the identity fields of a number, normalizing an
// explicitly-empty extension to absent.
func (n *PhoneNumber) copyCoreFields() *PhoneNumber {
	out := &PhoneNumber{
		CountryCode:    n.CountryCode,
		NationalNumber: n.NationalNumber,
	}
	if n.ItalianLeadingZero {
		out.ItalianLeadingZero = true
		if n.NumberOfLeadingZeros != nil {
			z := *n.NumberOfLeadingZeros
			out.NumberOfLeadingZeros = &z
		}
	}
	if ext := n.GetExtension(); ext != "" {
		out.Extension = &ext
	}
	return out
}

// nationalNumberString renders the national number with restored leading
// zeros. This is the canonical national significant number.
func (n *PhoneNumber) nationalNumberString() string {
	s := strconv.FormatUint(n.NationalNumber, 10)
	for i := n.LeadingZeros(); i > 0; i-- {
		s = "0" + s
	}
	return s
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
