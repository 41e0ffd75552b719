package phonenum

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minLengthForNSN      = 2
	maxLengthForNSN      = 17
	maxLengthCountryCode = 3
	// Inputs longer than this are degenerate and rejected before any
	// pattern work.
	maxInputStringLength = 250
)

const (
	plusChars = `+\x{FF0B}`
	// Dashes, dots, brackets, slashes, waves and the space family, in both
	// ASCII and fullwidth forms.
	validPunctuation = `-x\x{2010}-\x{2015}\x{2212}\x{30FC}\x{FF0D}-\x{FF0F} ` +
		`\x{00A0}\x{00AD}\x{200B}\x{2060}\x{3000}()\x{FF08}\x{FF09}\x{FF3B}\x{FF3D}.\[\]/~\x{2053}\x{223C}\x{FF5E}`
	validAlpha = `A-Za-z`
)

var (
	plusCharsPattern  = regexp.MustCompile(`^[` + plusChars + `]+`)
	capturingDigit    = regexp.MustCompile(`(\p{Nd})`)
	validStartChar    = regexp.MustCompile(`[` + plusChars + `\p{Nd}]`)
	unwantedEndChars  = regexp.MustCompile(`[^\p{Nd}\p{L}#]+$`)
	secondNumberStart = regexp.MustCompile(`[\\/] *x`)
	nonDigitsPattern  = regexp.MustCompile(`\D+`)

	// A viable number: an optional plus, then at least three digits
	// interleaved with punctuation, then optionally more digits,
	// punctuation and alpha characters, then an optional extension.
	// A bare two-digit string is also accepted as the degenerate minimum.
	validPhoneNumber = regexp.MustCompile(
		`^\p{Nd}{2}$|^[` + plusChars + `]{0,2}(?:[` + validPunctuation + `]*\p{Nd}){3,}` +
			`[` + validPunctuation + validAlpha + `\p{Nd}]*` +
			`(?i:(?:` + extnPatternsForParsing + `))?$`)
)

// Telephone keypad mapping for Latin letters. Lowercase is folded before
// lookup.
var alphaMappings = map[rune]rune{
	'A': '2', 'B': '2', 'C': '2',
	'D': '3', 'E': '3', 'F': '3',
	'G': '4', 'H': '4', 'I': '4',
	'J': '5', 'K': '5', 'L': '5',
	'M': '6', 'N': '6', 'O': '6',
	'P': '7', 'Q': '7', 'R': '7', 'S': '7',
	'T': '8', 'U': '8', 'V': '8',
	'W': '9', 'X': '9', 'Y': '9', 'Z': '9',
}

// Decimal digit blocks folded to ASCII: fullwidth, Arabic-Indic,
// Eastern Arabic-Indic and Devanagari.
var digitBlockStarts = []rune{'0', 0xFF10, 0x0660, 0x06F0, 0x0966}

func asciiDigit(r rune) (rune, bool) {
	for _, lo := range digitBlockStarts {
		if r >= lo && r <= lo+9 {
			return '0' + (r - lo), true
		}
	}
	return 0, false
}

func isPlusRune(r rune) bool { return r == '+' || r == 0xFF0B }

// extractPossibleNumber trims a candidate number out of surrounding text:
// everything before the first digit or plus sign goes, as do trailing
// characters that are neither letters, digits nor '#', and any second
// number introduced by a slash-x sequence.
func extractPossibleNumber(text string) string {
	start := validStartChar.FindStringIndex(text)
	if start == nil {
		return ""
	}
	candidate := text[start[0]:]
	candidate = unwantedEndChars.ReplaceAllString(candidate, "")
	if loc := secondNumberStart.FindStringIndex(candidate); loc != nil {
		candidate = candidate[:loc[0]]
		candidate = unwantedEndChars.ReplaceAllString(candidate, "")
	}
	// A candidate that opens a bracket it never closes keeps a stray
	// closing bracket from the surrounding text; drop the orphan.
	if strings.HasPrefix(candidate, "(") && !strings.Contains(candidate, ")") {
		candidate = strings.TrimPrefix(candidate, "(")
	}
	return candidate
}

// isViablePhoneNumber checks a candidate for the minimum structure of a
// phone number. It rejects strings with fewer than two digits, alphabetic
// runs before the third digit, characters outside the dialling allow-list
// between the first and last digit, and invalid-interchange input.
func isViablePhoneNumber(number string) bool {
	if utf8.RuneCountInString(number) < minLengthForNSN {
		return false
	}
	if !utf8.ValidString(number) || strings.ContainsAny(number, "￾￿") {
		return false
	}
	return validPhoneNumber.MatchString(number)
}

// ConvertAlphaCharactersInNumber replaces Latin letters by their keypad
// digits, case-insensitively, leaving every other character untouched.
func ConvertAlphaCharactersInNumber(number string) string {
	var b strings.Builder
	b.Grow(len(number))
	for _, r := range number {
		if d, ok := alphaMappings[upperLatin(r)]; ok {
			b.WriteRune(d)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func upperLatin(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

// Normalize folds letters to keypad digits and all recognized decimal
// digit blocks to ASCII, dropping everything else.
func Normalize(number string) string {
	var b strings.Builder
	b.Grow(len(number))
	for _, r := range number {
		if d, ok := asciiDigit(r); ok {
			b.WriteRune(d)
			continue
		}
		if d, ok := alphaMappings[upperLatin(r)]; ok {
			b.WriteRune(d)
		}
	}
	return b.String()
}

// NormalizeDigitsOnly keeps only digits, folding non-ASCII decimal digits
// to ASCII.
func NormalizeDigitsOnly(number string) string {
	var b strings.Builder
	b.Grow(len(number))
	for _, r := range number {
		if d, ok := asciiDigit(r); ok {
			b.WriteRune(d)
		}
	}
	return b.String()
}

// NormalizeDiallableCharsOnly keeps digits and the diallable symbols
// '+', '*' and '#'.
func NormalizeDiallableCharsOnly(number string) string {
	var b strings.Builder
	b.Grow(len(number))
	for _, r := range number {
		if d, ok := asciiDigit(r); ok {
			b.WriteRune(d)
			continue
		}
		if isPlusRune(r) {
			b.WriteRune('+')
			continue
		}
		if r == '*' || r == '#' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsAlphaNumber reports whether the string is a viable vanity number:
// it must parse like a phone number yet carry at least three letters,
// as in "1800 MICROSOFT".
func IsAlphaNumber(number string) bool {
	if !isViablePhoneNumber(number) {
		return false
	}
	stripped := number
	maybeStripExtension(&stripped)
	letters := 0
	for _, r := range stripped {
		if _, ok := alphaMappings[upperLatin(r)]; ok {
			letters++
			if letters >= 3 {
				return true
			}
		}
	}
	return false
}
