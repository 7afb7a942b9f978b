// Package seed turns a short shareable token into a reproducible stream of
// random numbers.
//
// # Tokens
//
// A [Token] is the only state a run needs to be replayed: "0x" followed by
// hex digits (eight when produced by [Generate]). [DeriveState] splits the
// digits into four equal chunks and base58-decodes each one into a 32-bit
// word; the four words seed the generator.
//
//	tok, _ := seed.ParseToken("0xA1B2C3D4")
//	r, _ := seed.FromToken(tok)
//	x := r.Float64() // identical on every platform, every run
//
// Hex digit '0' is not part of the base58 alphabet, so roughly four in ten
// hashed tokens cannot be decoded. [NewToken] retries with a salted entropy
// string until it finds one that can.
//
// # Generator
//
// [Random] implements the sfc32 small fast counting generator over four
// uint32 words. All arithmetic wraps at 2^32, which Go's uint32 type gives us
// for free. The order of draws is part of the reproducibility contract:
// consumers must never reorder the calls they make.
//
// A Random is not safe for concurrent use. Build one per generation pass.
package seed
