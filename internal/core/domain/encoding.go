package domain

import (
	"fmt"
	"strings"
)

// EncodingMode is the input encoding the user asked for.
// Auto lets the detector decide; Zawgyi and Unicode force a direction.
type EncodingMode string

// Available encoding modes.
const (
	// EncodingAuto asks the pipeline to detect the input encoding.
	EncodingAuto EncodingMode = "auto"

	// EncodingZawgyi forces the input to be treated as Zawgyi.
	EncodingZawgyi EncodingMode = "zg"

	// EncodingUnicode forces the input to be treated as Myanmar Unicode.
	EncodingUnicode EncodingMode = "uni"
)

// IsValid returns true if the mode is recognised.
func (m EncodingMode) IsValid() bool {
	switch m {
	case EncodingAuto, EncodingZawgyi, EncodingUnicode:
		return true
	default:
		return false
	}
}

// IsForced returns true if the mode pins the direction (not auto).
func (m EncodingMode) IsForced() bool {
	return m == EncodingZawgyi || m == EncodingUnicode
}

// String returns the string representation.
func (m EncodingMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m EncodingMode) Description() string {
	switch m {
	case EncodingAuto:
		return "Auto detect"
	case EncodingZawgyi:
		return "Zawgyi"
	case EncodingUnicode:
		return "Unicode"
	default:
		return "Unknown"
	}
}

// Next cycles auto -> zg -> uni -> auto. Used by selector controls.
func (m EncodingMode) Next() EncodingMode {
	switch m {
	case EncodingAuto:
		return EncodingZawgyi
	case EncodingZawgyi:
		return EncodingUnicode
	default:
		return EncodingAuto
	}
}

// AllEncodingModes returns the modes in selector order.
func AllEncodingModes() []EncodingMode {
	return []EncodingMode{EncodingAuto, EncodingZawgyi, EncodingUnicode}
}

// ParseEncodingMode parses user input such as "auto", "zawgyi" or "uni".
func ParseEncodingMode(s string) (EncodingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return EncodingAuto, nil
	case "zg", "zawgyi":
		return EncodingZawgyi, nil
	case "uni", "unicode":
		return EncodingUnicode, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, s)
	}
}

// DetectedEncoding is the outcome of detection.
// The zero value means nothing was detected.
type DetectedEncoding string

// Detected encodings.
const (
	// DetectedNone means the detector was not confident.
	DetectedNone DetectedEncoding = ""

	// DetectedZawgyi means the text looks like Zawgyi.
	DetectedZawgyi DetectedEncoding = "zg"

	// DetectedUnicode means the text looks like Myanmar Unicode.
	DetectedUnicode DetectedEncoding = "uni"
)

// IsNone returns true if nothing was detected.
func (d DetectedEncoding) IsNone() bool {
	return d == DetectedNone
}

// Opposite returns the implied target encoding.
func (d DetectedEncoding) Opposite() DetectedEncoding {
	switch d {
	case DetectedZawgyi:
		return DetectedUnicode
	case DetectedUnicode:
		return DetectedZawgyi
	default:
		return DetectedNone
	}
}

// String returns the string representation, "none" for the zero value.
func (d DetectedEncoding) String() string {
	if d == DetectedNone {
		return "none"
	}
	return string(d)
}

// DetectedFromMode maps a forced mode to its detected encoding.
func DetectedFromMode(m EncodingMode) DetectedEncoding {
	switch m {
	case EncodingZawgyi:
		return DetectedZawgyi
	case EncodingUnicode:
		return DetectedUnicode
	default:
		return DetectedNone
	}
}

// RuleName names a directional transliteration rule table.
type RuleName string

// Available rules.
const (
	// RuleNone means no rule was applied (pass-through).
	RuleNone RuleName = ""

	// RuleZawgyiToUnicode converts Zawgyi input to Unicode.
	RuleZawgyiToUnicode RuleName = "zg2uni"

	// RuleUnicodeToZawgyi converts Unicode input to Zawgyi.
	RuleUnicodeToZawgyi RuleName = "uni2zg"
)

// IsValid returns true if the rule names a real table.
func (r RuleName) IsValid() bool {
	return r == RuleZawgyiToUnicode || r == RuleUnicodeToZawgyi
}

// String returns the string representation.
func (r RuleName) String() string {
	return string(r)
}

// RuleFor selects the conversion rule for a detected source encoding.
// Anything other than Zawgyi converts Unicode to Zawgyi.
func RuleFor(d DetectedEncoding) RuleName {
	if d == DetectedZawgyi {
		return RuleZawgyiToUnicode
	}
	return RuleUnicodeToZawgyi
}

// ParseRuleName parses a rule name.
func ParseRuleName(s string) (RuleName, error) {
	r := RuleName(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsValid() {
		return RuleNone, fmt.Errorf("%w: %q", ErrUnsupportedRule, s)
	}
	return r, nil
}
