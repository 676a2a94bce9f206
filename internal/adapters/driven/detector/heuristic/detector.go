package heuristic

import (
	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
)

// Ensure Detector implements the interface.
var _ driven.Detector = (*Detector)(nil)

// Myanmar code points referenced by the scoring rules.
const (
	myanmarFirst = 0x1000
	myanmarLast  = 0x109F

	consonantFirst = 0x1000
	consonantLast  = 0x1021

	letterNga    = 0x1004
	vowelSignE   = 0x1031
	signVirama   = 0x1039
	signAsat     = 0x103A
	medialYa     = 0x103B
	medialRa     = 0x103C
	medialHa     = 0x103E
	zgStackFirst = 0x1060
	zgStackLast  = 0x1097
)

// Weights of the individual signals.
const (
	weightZgOnly      = 3
	weightLeadingE    = 2
	weightLeadingRa   = 2
	weightUniKinzi    = 3
	weightTrailingE   = 2
	weightUniMedialHa = 1
)

// Detector scores text for Zawgyi and Unicode evidence.
// It is deterministic and safe for concurrent use.
type Detector struct {
	// Threshold is the minimum probability for a confident answer.
	Threshold float64
}

// New creates a detector with the default threshold.
func New() *Detector {
	return &Detector{Threshold: 0.6}
}

// Detect classifies text. Text without Myanmar characters, or with
// evidence too balanced to call, is reported as DetectedNone.
func (d *Detector) Detect(text string, opts driven.DetectOptions) driven.DetectResult {
	zg, uni, myanmar := score([]rune(text))
	if myanmar == 0 {
		return driven.DetectResult{Encoding: domain.DetectedNone}
	}

	total := zg + uni
	if total == 0 {
		// Plain consonant/vowel text renders identically in both.
		return driven.DetectResult{Encoding: domain.DetectedUnicode, Probability: 0.5}
	}

	res := driven.DetectResult{Mixed: opts.MixType && zg > 0 && uni > 0}
	pZg := float64(zg) / float64(total)
	switch {
	case pZg >= d.Threshold:
		res.Encoding = domain.DetectedZawgyi
		res.Probability = pZg
	case 1-pZg >= d.Threshold:
		res.Encoding = domain.DetectedUnicode
		res.Probability = 1 - pZg
	default:
		res.Encoding = domain.DetectedNone
		res.Probability = pZg
	}
	return res
}

func isMyanmar(r rune) bool {
	return r >= myanmarFirst && r <= myanmarLast
}

func isConsonant(r rune) bool {
	return r >= consonantFirst && r <= consonantLast
}

// score returns Zawgyi evidence, Unicode evidence and the number of
// Myanmar runes in text.
func score(runes []rune) (zg, uni, myanmar int) {
	for i, r := range runes {
		if !isMyanmar(r) {
			continue
		}
		myanmar++

		var prev, next rune
		if i > 0 {
			prev = runes[i-1]
		}
		if i+1 < len(runes) {
			next = runes[i+1]
		}

		switch {
		case r >= zgStackFirst && r <= zgStackLast:
			zg += weightZgOnly
		case r == 0x1033 || r == 0x1034:
			zg += weightZgOnly
		case r == vowelSignE:
			// Zawgyi stores the E vowel before its consonant. Between two
			// consonants it could belong to either, so it is not scored.
			after := isConsonant(prev) || isMedial(prev)
			before := isConsonant(next) || isMedial(next)
			switch {
			case !after && before:
				zg += weightLeadingE
			case after && !before:
				uni += weightTrailingE
			}
		case r == medialYa:
			// Zawgyi's medial ra glyph sits on 0x103B and precedes the consonant.
			if !isConsonant(prev) && isConsonant(next) {
				zg += weightLeadingRa
			}
		case r == medialRa:
			if !isConsonant(prev) && isConsonant(next) {
				zg += weightLeadingRa
			}
		case r == letterNga:
			// Unicode kinzi is NGA, ASAT, VIRAMA; Zawgyi has a single code point.
			if next == signAsat && i+2 < len(runes) && runes[i+2] == signVirama {
				uni += weightUniKinzi
			}
		case r == medialHa:
			uni += weightUniMedialHa
		}
	}
	return zg, uni, myanmar
}

func isMedial(r rune) bool {
	return r >= medialYa && r <= medialHa
}
