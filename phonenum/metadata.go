package phonenum

import (
	"fmt"
	"regexp"
	"strings"
)

// descSpec is the authored form of a PhoneNumberDesc.
type descSpec struct {
	Pattern          string `yaml:"pattern" msgpack:"p"`
	Lengths          []int  `yaml:"lengths" msgpack:"l"`
	LocalOnlyLengths []int  `yaml:"local_lengths" msgpack:"o"`
	Example          string `yaml:"example" msgpack:"e"`
}

// formatSpec is the authored form of a NumberFormat.
type formatSpec struct {
	Pattern                string   `yaml:"pattern" msgpack:"p"`
	Format                 string   `yaml:"format" msgpack:"f"`
	LeadingDigits          []string `yaml:"leading_digits" msgpack:"d"`
	NationalPrefix         string   `yaml:"national_prefix_formatting_rule" msgpack:"n"`
	NationalPrefixOptional bool     `yaml:"national_prefix_optional" msgpack:"x"`
	CarrierCode            string   `yaml:"carrier_code_formatting_rule" msgpack:"c"`
}

// regionSpec is the authored form of one region or non-geographic entity.
// Metadata files are maps from region code (or calling code, for entities)
// to regionSpec.
type regionSpec struct {
	CountryCode                  int          `yaml:"country_code" msgpack:"cc"`
	NonGeographic                bool         `yaml:"nongeo" msgpack:"ng"`
	MainCountryForCode           bool         `yaml:"main_country_for_code" msgpack:"mc"`
	MobilePortable               bool         `yaml:"mobile_portable" msgpack:"mp"`
	LeadingZeroPossible          bool         `yaml:"leading_zero_possible" msgpack:"lz"`
	LeadingDigits                string       `yaml:"leading_digits" msgpack:"ld"`
	InternationalPrefix          string       `yaml:"international_prefix" msgpack:"ip"`
	PreferredInternationalPrefix string       `yaml:"preferred_international_prefix" msgpack:"pp"`
	NationalPrefix               string       `yaml:"national_prefix" msgpack:"np"`
	NationalPrefixForParsing     string       `yaml:"national_prefix_for_parsing" msgpack:"pn"`
	NationalPrefixTransformRule  string       `yaml:"national_prefix_transform_rule" msgpack:"tr"`
	PreferredExtnPrefix          string       `yaml:"preferred_extn_prefix" msgpack:"ep"`

	General         *descSpec `yaml:"general" msgpack:"ge"`
	FixedLine       *descSpec `yaml:"fixed_line" msgpack:"fl"`
	Mobile          *descSpec `yaml:"mobile" msgpack:"mo"`
	TollFree        *descSpec `yaml:"toll_free" msgpack:"tf"`
	PremiumRate     *descSpec `yaml:"premium_rate" msgpack:"pr"`
	SharedCost      *descSpec `yaml:"shared_cost" msgpack:"sc"`
	VoIP            *descSpec `yaml:"voip" msgpack:"vo"`
	PersonalNumber  *descSpec `yaml:"personal_number" msgpack:"pe"`
	Pager           *descSpec `yaml:"pager" msgpack:"pg"`
	UAN             *descSpec `yaml:"uan" msgpack:"ua"`
	Voicemail       *descSpec `yaml:"voicemail" msgpack:"vm"`
	NoInternational *descSpec `yaml:"no_international_dialling" msgpack:"ni"`

	// Short-code descriptors, only present in the short-number tables.
	ShortCode       *descSpec `yaml:"short_code" msgpack:"sh"`
	StandardRate    *descSpec `yaml:"standard_rate" msgpack:"sr"`
	CarrierSpecific *descSpec `yaml:"carrier_specific" msgpack:"cs"`
	SMSServices     *descSpec `yaml:"sms_services" msgpack:"sm"`
	Emergency       *descSpec `yaml:"emergency" msgpack:"em"`

	Formats     []*formatSpec `yaml:"formats" msgpack:"ft"`
	IntlFormats []*formatSpec `yaml:"intl_formats" msgpack:"if"`
}

// PhoneNumberDesc is the compiled per-type descriptor: an anchored pattern
// over the full national number plus the set of lengths such numbers can
// have.
type PhoneNumberDesc struct {
	PossibleLength          []int
	PossibleLengthLocalOnly []int
	ExampleNumber           string

	pattern       *regexp.Regexp
	prefixPattern *regexp.Regexp
}

// matchesFully reports whether the whole national number matches the
// descriptor pattern. Descriptors without a pattern match nothing.
func (d *PhoneNumberDesc) matchesFully(nsn string) bool {
	if d == nil || d.pattern == nil {
		return false
	}
	return d.pattern.MatchString(nsn)
}

// matchesDesc additionally enforces the descriptor's length set when it
// carries one.
func (d *PhoneNumberDesc) matchesDesc(nsn string) bool {
	if d == nil {
		return false
	}
	if len(d.PossibleLength) > 0 && !containsInt(d.PossibleLength, len(nsn)) {
		return false
	}
	return d.matchesFully(nsn)
}

// NumberFormat is one compiled formatting rule: an anchored pattern whose
// capture groups feed the format template, pre-filtered by leading-digits
// patterns.
type NumberFormat struct {
	Format                               string
	NationalPrefixFormattingRule         string
	NationalPrefixOptionalWhenFormatting bool
	DomesticCarrierCodeFormattingRule    string

	pattern *regexp.Regexp
	leading []*regexp.Regexp
}

// matches reports whether this rule applies to the national number: the
// last leading-digits pattern (the most refined one) must match a prefix
// and the full pattern must consume the entire number.
func (f *NumberFormat) matches(nsn string) bool {
	if len(f.leading) > 0 {
		last := f.leading[len(f.leading)-1]
		loc := last.FindStringIndex(nsn)
		if loc == nil || loc[0] != 0 {
			return false
		}
	}
	return f.pattern.MatchString(nsn)
}

// Metadata describes one geographic region or one non-geographic
// country-calling-code entity. It is immutable after construction.
type Metadata struct {
	ID                           string
	CountryCode                  int
	MainCountryForCode           bool
	MobileNumberPortableRegion   bool
	LeadingZeroPossible          bool
	LeadingDigits                string
	InternationalPrefix          string
	PreferredInternationalPrefix string
	NationalPrefix               string
	NationalPrefixForParsing     string
	NationalPrefixTransformRule  string
	PreferredExtnPrefix          string

	GeneralDesc     *PhoneNumberDesc
	FixedLine       *PhoneNumberDesc
	Mobile          *PhoneNumberDesc
	TollFree        *PhoneNumberDesc
	PremiumRate     *PhoneNumberDesc
	SharedCost      *PhoneNumberDesc
	VoIP            *PhoneNumberDesc
	PersonalNumber  *PhoneNumberDesc
	Pager           *PhoneNumberDesc
	UAN             *PhoneNumberDesc
	Voicemail       *PhoneNumberDesc
	NoInternational *PhoneNumberDesc

	ShortCode       *PhoneNumberDesc
	StandardRate    *PhoneNumberDesc
	CarrierSpecific *PhoneNumberDesc
	SMSServices     *PhoneNumberDesc
	Emergency       *PhoneNumberDesc

	NumberFormats     []*NumberFormat
	IntlNumberFormats []*NumberFormat

	iddPattern           *regexp.Regexp
	nationalPrefixRe     *regexp.Regexp
	leadingDigitsPattern *regexp.Regexp
}

const nonGeoEntityRegionCode = "001"

// Placeholder tokens in authored formatting rules, substituted at load
// time ($NP, $FG) or at format time ($CC).
const (
	tokenNationalPrefix = "$NP"
	tokenFirstGroup     = "$FG"
	tokenCarrierCode    = "$CC"
)

func compileAnchored(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	// Authored patterns assume implicit anchoring at both ends.
	return regexp.Compile(`^(?:` + pattern + `)$`)
}

func compileDesc(spec *descSpec) (*PhoneNumberDesc, error) {
	if spec == nil {
		return nil, nil
	}
	re, err := compileAnchored(spec.Pattern)
	if err != nil {
		return nil, err
	}
	var prefixRe *regexp.Regexp
	if spec.Pattern != "" {
		if prefixRe, err = regexp.Compile(`^(?:` + spec.Pattern + `)`); err != nil {
			return nil, err
		}
	}
	return &PhoneNumberDesc{
		PossibleLength:          spec.Lengths,
		PossibleLengthLocalOnly: spec.LocalOnlyLengths,
		ExampleNumber:           spec.Example,
		pattern:                 re,
		prefixPattern:           prefixRe,
	}, nil
}

// matchesPrefix reports whether the pattern matches at the start of the
// digits, regardless of what follows.
func (d *PhoneNumberDesc) matchesPrefix(nsn string) bool {
	if d == nil || d.prefixPattern == nil {
		return false
	}
	loc := d.prefixPattern.FindStringIndex(nsn)
	return loc != nil && loc[0] == 0
}

func compileFormat(spec *formatSpec, nationalPrefix string) (*NumberFormat, error) {
	re, err := compileAnchored(spec.Pattern)
	if err != nil {
		return nil, err
	}
	if re == nil {
		return nil, fmt.Errorf("number format without pattern")
	}
	f := &NumberFormat{
		Format:                               spec.Format,
		NationalPrefixOptionalWhenFormatting: spec.NationalPrefixOptional,
		pattern:                              re,
	}
	// $NP and $FG are resolved once; $CC stays for format time.
	f.NationalPrefixFormattingRule = resolveFormattingRule(spec.NationalPrefix, nationalPrefix)
	f.DomesticCarrierCodeFormattingRule = resolveFormattingRule(spec.CarrierCode, nationalPrefix)
	for _, ld := range spec.LeadingDigits {
		lre, err := regexp.Compile(ld)
		if err != nil {
			return nil, err
		}
		f.leading = append(f.leading, lre)
	}
	return f, nil
}

func resolveFormattingRule(rule, nationalPrefix string) string {
	if rule == "" {
		return ""
	}
	rule = strings.ReplaceAll(rule, tokenNationalPrefix, nationalPrefix)
	rule = strings.ReplaceAll(rule, tokenFirstGroup, "$1")
	return rule
}

// newMetadata compiles an authored region spec into immutable runtime
// metadata. The id is the region code, or "001" for non-geographic
// entities.
func newMetadata(id string, spec *regionSpec) (*Metadata, error) {
	md := &Metadata{
		ID:                           id,
		CountryCode:                  spec.CountryCode,
		MainCountryForCode:           spec.MainCountryForCode,
		MobileNumberPortableRegion:   spec.MobilePortable,
		LeadingZeroPossible:          spec.LeadingZeroPossible,
		LeadingDigits:                spec.LeadingDigits,
		InternationalPrefix:          spec.InternationalPrefix,
		PreferredInternationalPrefix: spec.PreferredInternationalPrefix,
		NationalPrefix:               spec.NationalPrefix,
		NationalPrefixForParsing:     spec.NationalPrefixForParsing,
		NationalPrefixTransformRule:  spec.NationalPrefixTransformRule,
		PreferredExtnPrefix:          spec.PreferredExtnPrefix,
	}
	if md.NationalPrefixForParsing == "" {
		md.NationalPrefixForParsing = spec.NationalPrefix
	}
	var err error
	descs := []struct {
		dst **PhoneNumberDesc
		src *descSpec
	}{
		{&md.GeneralDesc, spec.General},
		{&md.FixedLine, spec.FixedLine},
		{&md.Mobile, spec.Mobile},
		{&md.TollFree, spec.TollFree},
		{&md.PremiumRate, spec.PremiumRate},
		{&md.SharedCost, spec.SharedCost},
		{&md.VoIP, spec.VoIP},
		{&md.PersonalNumber, spec.PersonalNumber},
		{&md.Pager, spec.Pager},
		{&md.UAN, spec.UAN},
		{&md.Voicemail, spec.Voicemail},
		{&md.NoInternational, spec.NoInternational},
		{&md.ShortCode, spec.ShortCode},
		{&md.StandardRate, spec.StandardRate},
		{&md.CarrierSpecific, spec.CarrierSpecific},
		{&md.SMSServices, spec.SMSServices},
		{&md.Emergency, spec.Emergency},
	}
	for _, d := range descs {
		if *d.dst, err = compileDesc(d.src); err != nil {
			return nil, fmt.Errorf("metadata %s: %w", id, err)
		}
	}
	if md.GeneralDesc == nil {
		return nil, fmt.Errorf("metadata %s: missing general descriptor", id)
	}
	for _, fs := range spec.Formats {
		f, err := compileFormat(fs, md.NationalPrefix)
		if err != nil {
			return nil, fmt.Errorf("metadata %s: %w", id, err)
		}
		md.NumberFormats = append(md.NumberFormats, f)
	}
	for _, fs := range spec.IntlFormats {
		f, err := compileFormat(fs, md.NationalPrefix)
		if err != nil {
			return nil, fmt.Errorf("metadata %s: %w", id, err)
		}
		md.IntlNumberFormats = append(md.IntlNumberFormats, f)
	}
	if md.InternationalPrefix != "" {
		if md.iddPattern, err = regexp.Compile(`^(?:` + md.InternationalPrefix + `)`); err != nil {
			return nil, fmt.Errorf("metadata %s: %w", id, err)
		}
	}
	if md.NationalPrefixForParsing != "" {
		if md.nationalPrefixRe, err = regexp.Compile(`^(?:` + md.NationalPrefixForParsing + `)`); err != nil {
			return nil, fmt.Errorf("metadata %s: %w", id, err)
		}
	}
	if md.LeadingDigits != "" {
		if md.leadingDigitsPattern, err = regexp.Compile(`^(?:` + md.LeadingDigits + `)`); err != nil {
			return nil, fmt.Errorf("metadata %s: %w", id, err)
		}
	}
	return md, nil
}

// descForType selects the descriptor for a number type; the general
// descriptor answers for the unknown type.
func (m *Metadata) descForType(t PhoneNumberType) *PhoneNumberDesc {
	switch t {
	case FixedLine, FixedLineOrMobile:
		return m.FixedLine
	case Mobile:
		return m.Mobile
	case TollFree:
		return m.TollFree
	case PremiumRate:
		return m.PremiumRate
	case SharedCost:
		return m.SharedCost
	case VoIP:
		return m.VoIP
	case PersonalNumber:
		return m.PersonalNumber
	case Pager:
		return m.Pager
	case UAN:
		return m.UAN
	case Voicemail:
		return m.Voicemail
	}
	return m.GeneralDesc
}

// sameMobileAndFixedLinePattern reports whether fixed-line and mobile
// numbers are indistinguishable in this region.
func (m *Metadata) sameMobileAndFixedLinePattern() bool {
	if m.FixedLine == nil || m.Mobile == nil {
		return false
	}
	if m.FixedLine.pattern == nil || m.Mobile.pattern == nil {
		return false
	}
	return m.FixedLine.pattern.String() == m.Mobile.pattern.String()
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
