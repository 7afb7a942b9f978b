package seed

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/matzehuels/seedglyph/pkg/errors"
)

// maxTokenAttempts bounds the salted retries in NewToken. Each attempt
// fails with probability ~0.4, so running out is practically impossible.
const maxTokenAttempts = 64

// Entropy is the host's source of fresh randomness. It is only consulted to
// manufacture a new token; generation itself never touches it.
type Entropy interface {
	Now() time.Time
	Float64() float64
}

// SystemEntropy reads the wall clock and the process-wide random source.
type SystemEntropy struct{}

// Now returns the current time.
func (SystemEntropy) Now() time.Time { return time.Now() }

// Float64 returns a non-deterministic float in [0, 1).
func (SystemEntropy) Float64() float64 { return rand.Float64() }

// EntropyString concatenates a millisecond timestamp with one random draw.
func EntropyString(src Entropy) string {
	return strconv.FormatInt(src.Now().UnixMilli(), 10) + strconv.FormatFloat(src.Float64(), 'f', -1, 64)
}

// NewToken manufactures a fresh token that is guaranteed to decode.
func NewToken(src Entropy) (Token, error) {
	base := EntropyString(src)
	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		e := base
		if attempt > 0 {
			e += "#" + strconv.Itoa(attempt)
		}
		tok := Generate(e)
		if _, err := DeriveState(tok); err == nil {
			return tok, nil
		}
	}
	return "", errors.New(errors.ErrCodeInternal, "no decodable token after %d attempts", maxTokenAttempts)
}

// Resolve returns s parsed as a token, or a fresh token when s is empty or
// malformed. The boolean reports whether a fresh token replaced s.
func Resolve(s string, src Entropy) (Token, bool, error) {
	if s != "" {
		if tok, err := ParseToken(s); err == nil {
			return tok, false, nil
		} else if !errors.Is(err, errors.ErrCodeMalformedToken) {
			return "", false, err
		}
	}
	tok, err := NewToken(src)
	return tok, true, err
}
