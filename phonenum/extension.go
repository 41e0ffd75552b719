package phonenum

import (
	"regexp"
	"strconv"
)

// Extension digit caps per label tier. Looser labels carry more
// false-positive risk, so they accept fewer digits.
const (
	extLimitAfterExplicitLabel = 20
	extLimitAfterLikelyLabel   = 15
	extLimitAfterAmbiguousChar = 9
	extLimitWhenNotSure        = 7
)

func extnDigits(max int) string {
	return `(\p{Nd}{1,` + strconv.Itoa(max) + `})`
}

// extnPatternsForParsing is the extension grammar, one alternative per
// tier:
//  1. RFC3966 ";ext=" and explicit textual labels (ext, extension, xtn,
//     anexo, Cyrillic "доб") take up to 20 digits.
//  2. Auto-dialling DTMF separators ("," repeated, or ";") take up to 15
//     digits.
//  3. An ambiguous lone "x" takes up to 9 digits.
//  4. A bare trailing group introduced by '~' or closed by '#' with no
//     label at all takes up to 7 digits.
var extnPatternsForParsing = func() string {
	separators := `[ \x{00A0}\t,-]*`
	leadIn := `[ \x{00A0}\t,]*`
	afterLabel := `[:\.\x{FF0E}]?` + separators

	rfcExtn := `;ext=` + extnDigits(extLimitAfterExplicitLabel)
	explicitExtn := leadIn +
		`(?:e?xt(?:ensio)?n?|\x{FF58}\x{FF54}\x{FF4E}?|доб|anexo)` +
		afterLabel + extnDigits(extLimitAfterExplicitLabel) + `#?`
	autoDiallingExtn := leadIn + `(?:,{2}|;)` + afterLabel +
		extnDigits(extLimitAfterLikelyLabel) + `#`
	onlyCommasExtn := leadIn + `,+` + afterLabel +
		extnDigits(extLimitAfterLikelyLabel) + `#?`
	ambiguousExtn := leadIn + `x` + afterLabel +
		extnDigits(extLimitAfterAmbiguousChar) + `#?`
	bareExtn := `[- ]*(?:~\p{Nd}*)?` + extnDigits(extLimitWhenNotSure) + `#`

	return rfcExtn + `|` + explicitExtn + `|` + autoDiallingExtn + `|` +
		onlyCommasExtn + `|` + ambiguousExtn + `|` + bareExtn
}()

var extnPattern = regexp.MustCompile(`(?i)(?:` + extnPatternsForParsing + `)`)

// A trailing token that looks like a second extension; discarded when it
// follows an accepted one.
var secondExtn = regexp.MustCompile(`(?i)^[- ]*(?:x|ext\.?|;ext=)?[:\. ]*\p{Nd}{1,9}#?[- ]*$`)

var anyDigit = regexp.MustCompile(`\p{Nd}`)

// maybeStripExtension removes an extension token from the end of the
// candidate and returns its digits. The number must stay viable without
// the extension for the strip to be accepted. Digits left over past a
// tier's cap fail the parse instead of being truncated.
func maybeStripExtension(number *string) (string, error) {
	loc := extnPattern.FindStringSubmatchIndex(*number)
	if loc == nil {
		return "", nil
	}
	prefix := (*number)[:loc[0]]
	if !isViablePhoneNumber(prefix) {
		return "", nil
	}
	ext := ""
	for g := 1; g*2 < len(loc); g++ {
		if loc[g*2] >= 0 {
			ext = (*number)[loc[g*2]:loc[g*2+1]]
			break
		}
	}
	if ext == "" {
		return "", nil
	}
	rest := (*number)[loc[1]:]
	if rest != "" {
		// A full second extension token is discarded; loose digits mean
		// the extension overflowed its tier cap.
		if anyDigit.MatchString(rest) && !secondExtn.MatchString(rest) {
			return "", ErrNotANumber
		}
	}
	*number = prefix
	return NormalizeDigitsOnly(ext), nil
}
