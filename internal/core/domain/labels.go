package domain

// Font encoding selector texts.
const (
	LabelAutoDetect      = "AUTO DETECT"
	LabelZawgyiDetected  = "ZAWGYI DETECTED"
	LabelUnicodeDetected = "UNICODE DETECTED"
	LabelZawgyi          = "ZAWGYI"
	LabelUnicode         = "UNICODE"
)

// Placeholder texts for the source and output areas.
const (
	SourcePlaceholderAuto    = "Enter Zawgyi or Unicode text here"
	SourcePlaceholderZawgyi  = "Enter Zawgyi text here"
	SourcePlaceholderUnicode = "Enter Unicode text here"

	TargetPlaceholderAuto    = "Converted text will be appeared here"
	TargetPlaceholderZawgyi  = "Converted Zawgyi text will be appeared here"
	TargetPlaceholderUnicode = "Converted Unicode text will be appeared here"
)

// Labels is the UI-visible label state maintained by the pipeline.
type Labels struct {
	// FontEncSelected is the text shown on the encoding selector.
	FontEncSelected string

	// SourcePlaceholder is shown in an empty source area.
	SourcePlaceholder string

	// TargetPlaceholder is shown in an empty output area.
	TargetPlaceholder string
}

// AutoLabels returns the generic auto-detect label state.
func AutoLabels() Labels {
	return Labels{
		FontEncSelected:   LabelAutoDetect,
		SourcePlaceholder: SourcePlaceholderAuto,
		TargetPlaceholder: TargetPlaceholderAuto,
	}
}

// ForcedLabels returns the label state for an explicitly chosen mode.
func ForcedLabels(m EncodingMode) Labels {
	switch m {
	case EncodingZawgyi:
		return Labels{
			FontEncSelected:   LabelZawgyi,
			SourcePlaceholder: SourcePlaceholderZawgyi,
			TargetPlaceholder: TargetPlaceholderUnicode,
		}
	case EncodingUnicode:
		return Labels{
			FontEncSelected:   LabelUnicode,
			SourcePlaceholder: SourcePlaceholderUnicode,
			TargetPlaceholder: TargetPlaceholderZawgyi,
		}
	default:
		return AutoLabels()
	}
}

// DetectedLabel returns the selector text after a successful detection.
func DetectedLabel(d DetectedEncoding) string {
	switch d {
	case DetectedZawgyi:
		return LabelZawgyiDetected
	case DetectedUnicode:
		return LabelUnicodeDetected
	default:
		return LabelAutoDetect
	}
}

// EncodingLabel returns "ZAWGYI", "UNICODE" or "".
func EncodingLabel(d DetectedEncoding) string {
	switch d {
	case DetectedZawgyi:
		return LabelZawgyi
	case DetectedUnicode:
		return LabelUnicode
	default:
		return ""
	}
}
