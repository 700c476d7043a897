package token

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// ByteLength is the raw entropy size of a gateway token. Rendered as
// hex it yields 64 characters.
const ByteLength = 32

// ErrNoProvider is returned when every provider in the chain failed.
var ErrNoProvider = errors.New("no usable random source for token generation")

// Token is a gateway bearer token generated for a single run. It is
// never persisted outside the manifest and never reused across runs.
type Token struct {
	hex    string
	source Source
}

// Hex returns the token as 64 lowercase hexadecimal characters.
func (t *Token) Hex() string { return t.hex }

// Source reports which provider produced the token.
func (t *Token) Source() Source { return t.source }

// Weak reports whether the token came from the non-cryptographic
// fallback and should be flagged to the user.
func (t *Token) Weak() bool { return t.source == SourceTimestamp }

// Generate produces a fresh token from the default provider chain.
func Generate() (*Token, error) {
	return generate(defaultProviders())
}

// generate walks the chain in order and returns a token from the first
// provider that succeeds.
func generate(providers []Provider) (*Token, error) {
	var errs []error
	for _, p := range providers {
		raw, err := p.Generate(ByteLength)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p.Source, err))
			continue
		}
		if len(raw) != ByteLength {
			errs = append(errs, fmt.Errorf("%s: short read (%d bytes)", p.Source, len(raw)))
			continue
		}
		return &Token{hex: hex.EncodeToString(raw), source: p.Source}, nil
	}
	return nil, fmt.Errorf("%w: %w", ErrNoProvider, errors.Join(errs...))
}
