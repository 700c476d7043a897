package token

import (
	"errors"
	"regexp"
	"testing"
)

var hexPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestGenerate_Format(t *testing.T) {
	t.Parallel()
	tok, err := Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !hexPattern.MatchString(tok.Hex()) {
		t.Errorf("token %q does not match 64-char lowercase hex pattern", tok.Hex())
	}

	if tok.Source() != SourceCryptoRand {
		t.Errorf("expected crypto/rand source on a healthy host, got %s", tok.Source())
	}

	if tok.Weak() {
		t.Error("crypto/rand token must not be flagged weak")
	}
}

func TestGenerate_Uniqueness(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := Generate()
		if err != nil {
			t.Fatalf("Generate failed on iteration %d: %v", i, err)
		}
		if seen[tok.Hex()] {
			t.Fatalf("duplicate token generated: %s", tok.Hex())
		}
		seen[tok.Hex()] = true
	}
}

func TestGenerate_FallbackChain(t *testing.T) {
	t.Parallel()
	unavailable := errors.New("source unavailable")

	chain := []Provider{
		{Source: SourceCryptoRand, Generate: func(int) ([]byte, error) { return nil, unavailable }},
		{Source: SourceURandom, Generate: func(int) ([]byte, error) { return nil, unavailable }},
		{Source: SourceTimestamp, Generate: timestampBytes},
	}

	tok, err := generate(chain)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if tok.Source() != SourceTimestamp {
		t.Errorf("expected timestamp fallback, got %s", tok.Source())
	}
	if !tok.Weak() {
		t.Error("timestamp-sourced token must be flagged weak")
	}
	if !hexPattern.MatchString(tok.Hex()) {
		t.Errorf("fallback token %q does not match hex pattern", tok.Hex())
	}
}

func TestGenerate_AllProvidersFail(t *testing.T) {
	t.Parallel()
	unavailable := errors.New("source unavailable")

	chain := []Provider{
		{Source: SourceCryptoRand, Generate: func(int) ([]byte, error) { return nil, unavailable }},
	}

	_, err := generate(chain)
	if !errors.Is(err, ErrNoProvider) {
		t.Fatalf("expected ErrNoProvider, got %v", err)
	}
}

func TestGenerate_ShortReadRejected(t *testing.T) {
	t.Parallel()
	chain := []Provider{
		{Source: SourceCryptoRand, Generate: func(int) ([]byte, error) { return []byte{0x01}, nil }},
		{Source: SourceTimestamp, Generate: timestampBytes},
	}

	tok, err := generate(chain)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if tok.Source() != SourceTimestamp {
		t.Errorf("short read should fall through to next provider, got %s", tok.Source())
	}
}

func TestProviders_EachYieldsValidTokenBytes(t *testing.T) {
	t.Parallel()
	for _, p := range defaultProviders() {
		p := p
		t.Run(string(p.Source), func(t *testing.T) {
			t.Parallel()
			raw, err := p.Generate(ByteLength)
			if err != nil {
				t.Skipf("provider %s unavailable on this host: %v", p.Source, err)
			}
			if len(raw) != ByteLength {
				t.Errorf("expected %d bytes, got %d", ByteLength, len(raw))
			}
		})
	}
}
