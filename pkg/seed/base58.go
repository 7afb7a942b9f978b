package seed

import (
	"strings"

	"github.com/matzehuels/seedglyph/pkg/errors"
)

// base58Alphabet omits 0, O, I and l.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// base58Decode accumulates s positionally (acc = acc*58 + digit) and
// truncates the result to 32 bits.
func base58Decode(s string) (uint32, error) {
	var acc uint64
	for i := 0; i < len(s); i++ {
		d := strings.IndexByte(base58Alphabet, s[i])
		if d < 0 {
			return 0, errors.New(errors.ErrCodeMalformedToken, "character %q is not in the base58 alphabet", s[i])
		}
		acc = acc*58 + uint64(d)
	}
	return uint32(acc), nil
}
