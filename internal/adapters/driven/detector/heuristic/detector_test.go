package heuristic

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
)

const (
	zgMetta     = "\u1031\u1019\u1010\u1071\u102C"             // metta, Zawgyi
	uniMingala  = "\u1019\u1004\u103A\u1039\u1002\u101C\u102C" // mingala, Unicode
	uniKyay     = "\u1000\u103B\u1031\u1038"
	zgLeadingE  = "\u1031\u1000"
	plainLetter = "\u1000\u1001"
)

func TestDetector_Detect(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		opts     driven.DetectOptions
		want     domain.DetectedEncoding
		wantProb float64
		mixed    bool
	}{
		{name: "empty", text: "", want: domain.DetectedNone},
		{name: "latin only", text: "hello world", want: domain.DetectedNone},
		{name: "zawgyi stacked and leading E", text: zgMetta, want: domain.DetectedZawgyi, wantProb: 1},
		{name: "unicode kinzi", text: uniMingala, want: domain.DetectedUnicode, wantProb: 1},
		{name: "unicode trailing E", text: uniKyay, want: domain.DetectedUnicode, wantProb: 1},
		{name: "no evidence defaults to unicode", text: plainLetter, want: domain.DetectedUnicode, wantProb: 0.5},
		{name: "balanced evidence", text: zgLeadingE + " " + uniKyay, want: domain.DetectedNone, wantProb: 0.5},
		{
			name:     "mixed without mix type",
			text:     zgMetta + " " + uniMingala,
			want:     domain.DetectedZawgyi,
			wantProb: 0.625,
		},
		{
			name:     "mixed with mix type",
			text:     zgMetta + " " + uniMingala,
			opts:     driven.DetectOptions{MixType: true},
			want:     domain.DetectedZawgyi,
			wantProb: 0.625,
			mixed:    true,
		},
	}

	d := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Detect(tt.text, tt.opts)
			assert.Equal(t, tt.want, got.Encoding)
			assert.InDelta(t, tt.wantProb, got.Probability, 0.001)
			assert.Equal(t, tt.mixed, got.Mixed)
		})
	}
}

func TestDetector_Threshold(t *testing.T) {
	d := &Detector{Threshold: 0.7}

	got := d.Detect(zgMetta+" "+uniMingala, driven.DetectOptions{})

	assert.Equal(t, domain.DetectedNone, got.Encoding)
}

func TestDetector_Deterministic(t *testing.T) {
	d := New()
	want := d.Detect(zgMetta, driven.DetectOptions{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, d.Detect(zgMetta, driven.DetectOptions{}))
		}()
	}
	wg.Wait()
}
