package decoder

import (
	"fmt"
	"time"

	"github.com/cardea-access/cardea/internal/cardea/types"
)

// Classifier decides which modality produced a finalized entry. code is the
// raw collected digits, span the interval between the first and last
// character. It returns the credential kind and the normalized code (framing
// stripped where applicable).
//
// New reader types are added as new Classifier variants, not as branches in
// the decoder.
type Classifier interface {
	Classify(code string, span time.Duration) (types.CredentialKind, string, error)
}

// TimingClassifier disambiguates the shared keypad/RFID channel by
// inter-character timing: a Wiegand-style burst delivers its full sequence
// within BurstThreshold, while human keypad entry has inter-key gaps of
// hundreds of milliseconds.
type TimingClassifier struct {
	// BurstThreshold is the maximum first-to-last span of a reader burst.
	BurstThreshold time.Duration
}

func (c TimingClassifier) Classify(code string, span time.Duration) (types.CredentialKind, string, error) {
	if span <= c.BurstThreshold {
		return types.KindRFID, code, nil
	}
	return types.KindPIN, code, nil
}

// FramedClassifier validates fixed framing from a dedicated reader: a known
// prefix/suffix length around an exact digit count. It never consults
// timing. Wrong length fails decoding; the framing characters are stripped
// from the emitted code.
type FramedClassifier struct {
	PrefixLen int
	SuffixLen int
	Digits    int
	// Kind is what a valid frame is emitted as (TOKEN or RFID depending
	// on the reader model).
	Kind types.CredentialKind
}

func (c FramedClassifier) Classify(code string, _ time.Duration) (types.CredentialKind, string, error) {
	want := c.PrefixLen + c.Digits + c.SuffixLen
	if len(code) != want {
		return "", "", fmt.Errorf("frame length %d, want %d", len(code), want)
	}
	payload := code[c.PrefixLen : c.PrefixLen+c.Digits]
	return c.Kind, payload, nil
}
