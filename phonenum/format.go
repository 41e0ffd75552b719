package phonenum

import (
	"regexp"
	"strconv"
	"strings"
)

// PhoneNumberFormat selects the textual rendering of a number.
type PhoneNumberFormat int

const (
	FormatE164 PhoneNumberFormat = iota
	FormatInternational
	FormatNational
	FormatRFC3966
)

func (f PhoneNumberFormat) String() string {
	switch f {
	case FormatE164:
		return "E164"
	case FormatInternational:
		return "INTERNATIONAL"
	case FormatNational:
		return "NATIONAL"
	case FormatRFC3966:
		return "RFC3966"
	}
	return "UNKNOWN"
}

const (
	defaultExtnPrefix = " ext. "
	nanpaCountryCode  = 1
)

var (
	firstGroupToken   = regexp.MustCompile(`\$\d`)
	separatorPattern  = regexp.MustCompile(`[` + validPunctuation + `]+`)
	leadingSeparators = regexp.MustCompile(`^[` + validPunctuation + `]+`)
	// An IDD that is plain digits (possibly with a wave-dialling pause)
	// can be shown to the user as-is.
	uniqueInternationalPrefix = regexp.MustCompile(`^\p{Nd}+(?:[~\x{2053}\x{223C}\x{FF5E}]\p{Nd}+)?$`)
)

// Format renders the number in the requested format using the default
// registry.
func Format(number *PhoneNumber, format PhoneNumberFormat) string {
	return DefaultRegistry().Format(number, format)
}

// Format renders the number in the requested format. Formatting never
// fails: numbers with no applicable rule degrade to bare digits.
func (r *Registry) Format(number *PhoneNumber, format PhoneNumberFormat) string {
	if number.NationalNumber == 0 {
		// An all-zero national number cannot be meaningfully reformatted;
		// echo what the user typed when we have it.
		if raw := number.GetRawInput(); raw != "" {
			return raw
		}
	}
	countryCode := number.CountryCode
	nsn := GetNationalSignificantNumber(number)
	if format == FormatE164 {
		return "+" + strconv.Itoa(countryCode) + nsn
	}
	if !r.hasValidCountryCallingCode(countryCode) {
		return nsn
	}
	regionCode := r.RegionCodeForCountryCode(countryCode)
	md := r.metadataForRegionOrCallingCode(countryCode, regionCode)
	if md == nil {
		return nsn
	}
	formatted := formatNsn(nsn, md, format, "")
	maybeAppendFormattedExtension(number, md, format, &formatted)
	return prefixWithCountryCode(countryCode, format, formatted)
}

func (r *Registry) hasValidCountryCallingCode(countryCode int) bool {
	return r.callingCodes[countryCode]
}

func prefixWithCountryCode(countryCode int, format PhoneNumberFormat, formatted string) string {
	switch format {
	case FormatInternational:
		return "+" + strconv.Itoa(countryCode) + " " + formatted
	case FormatRFC3966:
		return rfc3966Prefix + "+" + strconv.Itoa(countryCode) + "-" + formatted
	}
	return formatted
}

// formatNsn selects the applicable rule list and renders the national
// significant number, falling back to the bare digits when no rule
// matches.
func formatNsn(nsn string, md *Metadata, format PhoneNumberFormat, carrierCode string) string {
	formats := md.NumberFormats
	if len(md.IntlNumberFormats) > 0 && format != FormatNational {
		formats = md.IntlNumberFormats
	}
	f := chooseFormattingPatternForNumber(formats, nsn)
	if f == nil {
		return nsn
	}
	return formatNsnUsingPattern(nsn, f, format, carrierCode)
}

func chooseFormattingPatternForNumber(formats []*NumberFormat, nsn string) *NumberFormat {
	for _, f := range formats {
		if f.matches(nsn) {
			return f
		}
	}
	return nil
}

// formatNsnUsingPattern substitutes the capture groups of the rule's
// pattern into its template, weaving in the national-prefix or carrier
// formatting rule for national output.
func formatNsnUsingPattern(nsn string, f *NumberFormat, format PhoneNumberFormat, carrierCode string) string {
	template := f.Format
	switch {
	case format == FormatNational && carrierCode != "" && f.DomesticCarrierCodeFormattingRule != "":
		rule := strings.ReplaceAll(f.DomesticCarrierCodeFormattingRule, tokenCarrierCode, carrierCode)
		template = replaceFirstGroup(template, rule)
	case format == FormatNational && f.NationalPrefixFormattingRule != "":
		template = replaceFirstGroup(template, f.NationalPrefixFormattingRule)
	}
	formatted := f.pattern.ReplaceAllString(nsn, template)
	if format == FormatRFC3966 {
		formatted = leadingSeparators.ReplaceAllString(formatted, "")
		formatted = separatorPattern.ReplaceAllString(formatted, "-")
	}
	return formatted
}

// replaceFirstGroup splices a formatting rule over the first group token
// of a template: "$1 $2" with rule "0$1" becomes "0$1 $2".
func replaceFirstGroup(template, rule string) string {
	loc := firstGroupToken.FindStringIndex(template)
	if loc == nil {
		return template
	}
	return template[:loc[0]] + rule + template[loc[1]:]
}

func maybeAppendFormattedExtension(number *PhoneNumber, md *Metadata, format PhoneNumberFormat, formatted *string) {
	ext := number.GetExtension()
	if ext == "" {
		return
	}
	if format == FormatRFC3966 {
		*formatted += rfc3966ExtnPrefix + ext
		return
	}
	if md != nil && md.PreferredExtnPrefix != "" {
		*formatted += md.PreferredExtnPrefix + ext
		return
	}
	*formatted += defaultExtnPrefix + ext
}

// FormatNationalNumberWithCarrierCode renders the national format with a
// carrier-selection code in the rule's $CC slot.
func (r *Registry) FormatNationalNumberWithCarrierCode(number *PhoneNumber, carrierCode string) string {
	countryCode := number.CountryCode
	nsn := GetNationalSignificantNumber(number)
	if !r.hasValidCountryCallingCode(countryCode) {
		return nsn
	}
	regionCode := r.RegionCodeForCountryCode(countryCode)
	md := r.metadataForRegionOrCallingCode(countryCode, regionCode)
	if md == nil {
		return nsn
	}
	formatted := formatNsn(nsn, md, FormatNational, carrierCode)
	maybeAppendFormattedExtension(number, md, FormatNational, &formatted)
	return formatted
}

// FormatNationalNumberWithPreferredCarrierCode prefers the carrier code
// remembered from parsing over the caller's fallback. A stored carrier
// code that is present but blank suppresses the carrier entirely.
func (r *Registry) FormatNationalNumberWithPreferredCarrierCode(number *PhoneNumber, fallbackCarrierCode string) string {
	carrier := fallbackCarrierCode
	if number.PreferredDomesticCarrierCode != nil {
		carrier = strings.TrimSpace(*number.PreferredDomesticCarrierCode)
		if carrier == "" {
			return r.Format(number, FormatNational)
		}
	}
	return r.FormatNationalNumberWithCarrierCode(number, carrier)
}

// FormatOutOfCountryCallingNumber renders the number as dialled from
// another region: national format at home, IDD-prefixed international
// format abroad, empty when the number cannot be dialled internationally.
func (r *Registry) FormatOutOfCountryCallingNumber(number *PhoneNumber, regionCallingFrom string) string {
	if !r.isValidRegionCode(regionCallingFrom) {
		return r.Format(number, FormatInternational)
	}
	regionCallingFrom = strings.ToUpper(regionCallingFrom)
	countryCode := number.CountryCode
	nsn := GetNationalSignificantNumber(number)
	if !r.hasValidCountryCallingCode(countryCode) {
		return nsn
	}
	if countryCode == nanpaCountryCode && r.isNANPACountry(regionCallingFrom) {
		// Within the NANPA the country code doubles as the long-distance
		// marker.
		return strconv.Itoa(countryCode) + " " + r.Format(number, FormatNational)
	}
	if countryCode == r.CountryCodeForRegion(regionCallingFrom) {
		return r.Format(number, FormatNational)
	}
	if !r.CanBeInternationallyDialled(number) {
		return ""
	}
	mdCallingFrom := r.MetadataForRegion(regionCallingFrom)
	prefix := internationalPrefixForFormatting(mdCallingFrom)
	regionCode := r.RegionCodeForCountryCode(countryCode)
	mdTarget := r.metadataForRegionOrCallingCode(countryCode, regionCode)
	formatted := formatNsn(nsn, mdTarget, FormatInternational, "")
	maybeAppendFormattedExtension(number, mdTarget, FormatInternational, &formatted)
	if prefix != "" {
		return prefix + " " + strconv.Itoa(countryCode) + " " + formatted
	}
	return prefixWithCountryCode(countryCode, FormatInternational, formatted)
}

func (r *Registry) isNANPACountry(regionCode string) bool {
	return r.CountryCodeForRegion(regionCode) == nanpaCountryCode
}

// internationalPrefixForFormatting picks an IDD the user can actually
// dial: the region's prefix when it is plain digits, its preferred prefix
// otherwise, or the first alternative of an enumerated pattern.
func internationalPrefixForFormatting(md *Metadata) string {
	if md == nil {
		return ""
	}
	if uniqueInternationalPrefix.MatchString(md.InternationalPrefix) {
		return md.InternationalPrefix
	}
	if md.PreferredInternationalPrefix != "" {
		return md.PreferredInternationalPrefix
	}
	first := strings.SplitN(md.InternationalPrefix, "|", 2)[0]
	if uniqueInternationalPrefix.MatchString(first) {
		return first
	}
	return ""
}

// FormatInOriginalFormat reproduces the user's own grouping where the
// stored rules agree with the digits they typed; when reformatting would
// alter significant digits, the raw input wins.
func (r *Registry) FormatInOriginalFormat(number *PhoneNumber, regionCallingFrom string) string {
	raw := number.GetRawInput()
	if raw != "" && !r.hasFormattingPatternForNumber(number) {
		return raw
	}
	if raw == "" {
		return r.Format(number, FormatNational)
	}
	var formatted string
	switch number.CountryCodeSource {
	case CountryCodeFromNumberWithPlusSign:
		formatted = r.Format(number, FormatInternational)
	case CountryCodeFromNumberWithIDD:
		formatted = r.FormatOutOfCountryCallingNumber(number, regionCallingFrom)
	case CountryCodeFromNumberWithoutPlusSign:
		formatted = strings.TrimPrefix(r.Format(number, FormatInternational), "+")
	default:
		formatted = r.formatNationalLikeRawInput(number, raw)
	}
	// Never show digits the user did not dial.
	if formatted != "" && NormalizeDiallableCharsOnly(formatted) != NormalizeDiallableCharsOnly(raw) {
		return raw
	}
	return formatted
}

func (r *Registry) formatNationalLikeRawInput(number *PhoneNumber, raw string) string {
	regionCode := r.RegionCodeForCountryCode(number.CountryCode)
	md := r.MetadataForRegion(regionCode)
	formatted := r.Format(number, FormatNational)
	if md == nil || md.NationalPrefix == "" {
		return formatted
	}
	if rawInputContainsNationalPrefix(raw, md.NationalPrefix) {
		return formatted
	}
	// The user dialled without the national prefix; pick the same rule
	// but silence its prefix.
	nsn := GetNationalSignificantNumber(number)
	f := chooseFormattingPatternForNumber(md.NumberFormats, nsn)
	if f == nil || f.NationalPrefixFormattingRule == "" || f.NationalPrefixOptionalWhenFormatting {
		return formatted
	}
	bare := *f
	bare.NationalPrefixFormattingRule = ""
	return formatNsnUsingPattern(nsn, &bare, FormatNational, "")
}

func rawInputContainsNationalPrefix(raw, nationalPrefix string) bool {
	return strings.HasPrefix(NormalizeDigitsOnly(raw), nationalPrefix)
}

func (r *Registry) hasFormattingPatternForNumber(number *PhoneNumber) bool {
	regionCode := r.RegionCodeForCountryCode(number.CountryCode)
	md := r.metadataForRegionOrCallingCode(number.CountryCode, regionCode)
	if md == nil {
		return false
	}
	return chooseFormattingPatternForNumber(md.NumberFormats, GetNationalSignificantNumber(number)) != nil
}

// FormatOutOfCountryKeepingAlphaChars is FormatOutOfCountryCallingNumber
// for vanity numbers: the raw alpha grouping is preserved and only the
// dialling prefix is adjusted.
func (r *Registry) FormatOutOfCountryKeepingAlphaChars(number *PhoneNumber, regionCallingFrom string) string {
	raw := number.GetRawInput()
	if raw == "" {
		return r.FormatOutOfCountryCallingNumber(number, regionCallingFrom)
	}
	countryCode := number.CountryCode
	if !r.hasValidCountryCallingCode(countryCode) {
		return raw
	}
	raw = strings.TrimLeft(raw, " \t")
	if strings.HasPrefix(raw, "+") {
		return raw
	}
	if r.CountryCodeForRegion(regionCallingFrom) == countryCode {
		return raw
	}
	mdCallingFrom := r.MetadataForRegion(regionCallingFrom)
	prefix := internationalPrefixForFormatting(mdCallingFrom)
	if prefix == "" {
		return "+" + strconv.Itoa(countryCode) + " " + raw
	}
	return prefix + " " + strconv.Itoa(countryCode) + " " + raw
}

// FormatNumberForMobileDialing renders the digits a mobile handset in the
// given region should dial, or "" when the number is unreachable from
// there.
func (r *Registry) FormatNumberForMobileDialing(number *PhoneNumber, regionCallingFrom string, withFormatting bool) string {
	if !r.hasValidCountryCallingCode(number.CountryCode) {
		return number.GetRawInput()
	}
	numberNoExt := *number
	numberNoExt.Extension = nil
	regionCode := r.RegionCodeForCountryCode(number.CountryCode)
	var formatted string
	switch {
	case strings.EqualFold(regionCallingFrom, regionCode):
		formatted = r.Format(&numberNoExt, FormatNational)
	case r.CanBeInternationallyDialled(&numberNoExt):
		if withFormatting {
			return r.Format(&numberNoExt, FormatInternational)
		}
		return r.Format(&numberNoExt, FormatE164)
	default:
		return ""
	}
	if !withFormatting {
		return NormalizeDiallableCharsOnly(formatted)
	}
	return formatted
}

// FormatByPattern formats with caller-supplied rules instead of the
// region's own list. Rules may carry unresolved $NP/$FG tokens; they are
// resolved against the number's region here.
func (r *Registry) FormatByPattern(number *PhoneNumber, format PhoneNumberFormat, userFormats []*NumberFormat) string {
	countryCode := number.CountryCode
	nsn := GetNationalSignificantNumber(number)
	if !r.hasValidCountryCallingCode(countryCode) {
		return nsn
	}
	regionCode := r.RegionCodeForCountryCode(countryCode)
	md := r.metadataForRegionOrCallingCode(countryCode, regionCode)
	if md == nil {
		return nsn
	}
	f := chooseFormattingPatternForNumber(userFormats, nsn)
	if f == nil {
		return r.Format(number, format)
	}
	resolved := *f
	resolved.NationalPrefixFormattingRule = resolveFormattingRule(f.NationalPrefixFormattingRule, md.NationalPrefix)
	formatted := formatNsnUsingPattern(nsn, &resolved, format, "")
	maybeAppendFormattedExtension(number, md, format, &formatted)
	return prefixWithCountryCode(countryCode, format, formatted)
}

// NewNumberFormat builds a caller-supplied formatting rule for
// FormatByPattern. The national-prefix rule may use $NP and $FG tokens.
func NewNumberFormat(pattern, format, nationalPrefixFormattingRule string, leadingDigits ...string) (*NumberFormat, error) {
	// $NP is left unresolved here by substituting it with itself;
	// FormatByPattern binds it to the number's own region later.
	return compileFormat(&formatSpec{
		Pattern:        pattern,
		Format:         format,
		LeadingDigits:  leadingDigits,
		NationalPrefix: nationalPrefixFormattingRule,
	}, tokenNationalPrefix)
}
