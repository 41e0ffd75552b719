package phonenum

import (
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

const (
	rfc3966Prefix         = "tel:"
	rfc3966PhoneContext   = ";phone-context="
	rfc3966ISDNSubaddress = ";isub="
	rfc3966ExtnPrefix     = ";ext="
	rfc3966Visual         = "-"
)

// A global number digit string per RFC3966: digits with optional visual
// separators, starting with a digit.
var rfc3966GlobalNumberDigits = regexp.MustCompile(`^\p{Nd}[\p{Nd}\-\.\(\)]*$`)

// One label of a domain name.
var rfc3966DomainLabel = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?$`)

// isPhoneContextValid accepts either a '+'-prefixed global number or a
// bare domain name, checked through IDNA conversion the way email domains
// are. Anything else makes the tel: URI unparseable.
func isPhoneContextValid(context string) bool {
	if context == "" {
		return false
	}
	if strings.HasPrefix(context, "+") {
		return rfc3966GlobalNumberDigits.MatchString(context[1:])
	}
	domain := strings.TrimSuffix(strings.ToLower(context), ".")
	puny, err := idna.ToASCII(domain)
	if err != nil || puny == "" {
		return false
	}
	for _, label := range strings.Split(puny, ".") {
		if !rfc3966DomainLabel.MatchString(label) {
			return false
		}
	}
	return true
}

// buildNationalNumberForParsing assembles the digits to parse from either
// an RFC3966 tel: URI or free-form text. A phone-context that is itself a
// global number contributes its digits ahead of the local part; the isub
// parameter is parsed and discarded.
func buildNationalNumberForParsing(numberToParse string) (string, error) {
	indexOfPhoneContext := strings.Index(numberToParse, rfc3966PhoneContext)
	var b strings.Builder
	if indexOfPhoneContext >= 0 {
		contextStart := indexOfPhoneContext + len(rfc3966PhoneContext)
		context := numberToParse[contextStart:]
		if end := strings.IndexByte(context, ';'); end >= 0 {
			context = context[:end]
		}
		if !isPhoneContextValid(context) {
			return "", ErrInvalidCountryCode
		}
		if strings.HasPrefix(context, "+") {
			b.WriteString(context)
		}
		// The local part sits between the tel: scheme and the first
		// parameter.
		localStart := 0
		if i := strings.Index(numberToParse, rfc3966Prefix); i >= 0 {
			localStart = i + len(rfc3966Prefix)
		}
		b.WriteString(numberToParse[localStart:indexOfPhoneContext])
	} else {
		b.WriteString(extractPossibleNumber(numberToParse))
	}
	number := b.String()
	if i := strings.Index(number, rfc3966ISDNSubaddress); i >= 0 {
		number = number[:i]
	}
	return number, nil
}
