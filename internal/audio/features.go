// Package audio defines the feature summary produced by the external audio
// extraction service. The engine only reads the RMS energy series and the
// tempo; the remaining descriptors are carried through for diagnostics.
package audio

// FeatureSummary holds per-utterance audio descriptors. It is supplied by
// the caller alongside a transcription and is never mutated by the engine.
type FeatureSummary struct {
	MFCCs    []float64 `json:"mfccs,omitempty"`
	Chroma   []float64 `json:"chroma,omitempty"`
	Mel      []float64 `json:"mel,omitempty"`
	Contrast []float64 `json:"contrast,omitempty"`
	Tonnetz  []float64 `json:"tonnetz,omitempty"`
	ZCR      []float64 `json:"zcr,omitempty"`
	Tempo    float64   `json:"tempo"`
	RMS      []float64 `json:"rms"`
}

// MeanRMS returns the arithmetic mean of the RMS energy series, or 0 when
// the series is empty.
func (f *FeatureSummary) MeanRMS() float64 {
	if f == nil || len(f.RMS) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range f.RMS {
		sum += v
	}
	return sum / float64(len(f.RMS))
}
