package phonenum

import "errors"

// Parse failures are expected outcomes the caller branches on with
// errors.Is; none of them represent programming errors.
var (
	// ErrNotANumber marks input that failed the viability pre-check,
	// degenerate input, or an extension exceeding its tier's digit cap.
	ErrNotANumber = errors.New("the string supplied did not seem to be a phone number")
	// ErrInvalidCountryCode marks a missing or unrecognizable country
	// calling code, including an unusable RFC3966 phone-context.
	ErrInvalidCountryCode = errors.New("could not interpret a country calling code")
	// ErrTooShortAfterIDD marks input that had an international dialling
	// prefix but too few digits after it.
	ErrTooShortAfterIDD = errors.New("phone number too short after IDD")
	// ErrTooShortNSN marks a national number below the minimum length.
	ErrTooShortNSN = errors.New("the string supplied is too short to be a phone number")
	// ErrTooLongNSN marks a national number above the maximum length.
	ErrTooLongNSN = errors.New("the string supplied is too long to be a phone number")
)
