package versions

import "unicode"

const (
	MinNameLength = 2
	MaxNameLength = 32
)

// ValidationError reports a resource name the caller has to correct.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

var (
	ErrNameLength  = &ValidationError{"Resource names must be between 2-32 characters in length"}
	ErrNameCharset = &ValidationError{"Resource names must only contain alphanumeric characters"}
)

// ValidateName checks a caller supplied resource name. Rules apply in order:
// encoded length in bytes within [2, 32], then alphabetic and numeric
// code points only.
func ValidateName(name string) error {
	if len(name) < MinNameLength || len(name) > MaxNameLength {
		return ErrNameLength
	}
	for _, r := range name {
		if !isAlphanumeric(r) {
			return ErrNameCharset
		}
	}
	return nil
}

// isAlphanumeric reports whether r has the Unicode Alphabetic or Numeric property.
func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Other_Alphabetic, r)
}
