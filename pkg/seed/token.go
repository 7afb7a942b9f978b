package seed

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/matzehuels/seedglyph/pkg/errors"
)

// tokenPrefix marks every token.
const tokenPrefix = "0x"

// Token is the shareable identity of a run, e.g. "0x3e07f56d".
type Token string

// String returns the token text.
func (t Token) String() string { return string(t) }

// State is the generator state derived from a token.
type State struct {
	A, B, C, D uint32
}

// Generate hashes an entropy string into a token.
//
// The hash is the classic 31-multiplier rolling hash over UTF-16 code units,
// wrapped to a signed 32-bit integer. Its absolute value is printed as eight
// lowercase hex digits. Identical input always yields the identical token;
// nothing here is meant to be collision resistant.
func Generate(entropy string) Token {
	var h int32
	for _, c := range utf16.Encode([]rune(entropy)) {
		h = h*31 + int32(c)
	}
	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	return Token(fmt.Sprintf("%s%08x", tokenPrefix, abs))
}

// ParseToken validates s and returns it as a Token.
func ParseToken(s string) (Token, error) {
	tok := Token(strings.TrimSpace(s))
	if _, err := DeriveState(tok); err != nil {
		return "", err
	}
	return tok, nil
}

// DeriveState decodes the four generator words from a token.
//
// The hex body is cut into four chunks of len/4 characters; a remainder
// shorter than a chunk is ignored. Each chunk is base58-decoded.
func DeriveState(tok Token) (State, error) {
	body, ok := strings.CutPrefix(string(tok), tokenPrefix)
	if !ok {
		return State{}, errors.New(errors.ErrCodeMalformedToken, "token %q must start with %s", tok, tokenPrefix)
	}
	if body == "" {
		return State{}, errors.New(errors.ErrCodeMalformedToken, "token %q has no digits", tok)
	}
	for i := 0; i < len(body); i++ {
		if !isHex(body[i]) {
			return State{}, errors.New(errors.ErrCodeMalformedToken, "token %q contains non-hex character %q", tok, body[i])
		}
	}
	n := len(body) / 4
	if n == 0 {
		return State{}, errors.New(errors.ErrCodeMalformedToken, "token %q needs at least 4 digits", tok)
	}

	var words [4]uint32
	for i := range words {
		w, err := base58Decode(body[i*n : (i+1)*n])
		if err != nil {
			return State{}, errors.Wrap(errors.ErrCodeMalformedToken, err, "decode token %q", tok)
		}
		words[i] = w
	}
	// Trailing characters never reach the generator but must still be valid.
	if _, err := base58Decode(body[4*n:]); err != nil {
		return State{}, errors.Wrap(errors.ErrCodeMalformedToken, err, "decode token %q", tok)
	}
	return State{A: words[0], B: words[1], C: words[2], D: words[3]}, nil
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
